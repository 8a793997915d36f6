// Package web provides the HTTP upload driver. Users upload text or
// spreadsheet files and receive topics as JSON or as an HTML page with a
// bar chart of the average topic distribution.
package web

import (
	"errors"
	"net/http"

	"github.com/custodia-labs/topica/internal/core/domain"
)

// Port validation errors.
var (
	ErrMissingTopicService  = errors.New("web: topic service is required")
	ErrMissingIngestService = errors.New("web: ingest service is required")
)

// statusFor maps a pipeline error to an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNumericInstability),
		errors.Is(err, domain.ErrDegenerateInput):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidTopicCount),
		errors.Is(err, domain.ErrEmptyCorpus),
		errors.Is(err, domain.ErrInvalidEncoding),
		errors.Is(err, domain.ErrUnsupportedType):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

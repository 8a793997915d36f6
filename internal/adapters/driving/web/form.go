package web

import (
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driving"
)

// Form field names.
const (
	fieldFiles     = "files"
	fieldStopwords = "stopwords"
	fieldTopics    = "topics"
	fieldTopWords  = "top_words"
	fieldEstimator = "estimator"
	fieldSeed      = "seed"
	fieldColumn    = "column"
)

// upload is a parsed modelling request.
type upload struct {
	files     []domain.RawDocument
	stopwords *domain.RawDocument
	ingest    driving.IngestOptions
	request   domain.RunRequest
}

// parseUpload reads the multipart form, filling omitted fields from st.
func parseUpload(c echo.Context, st domain.Settings) (*upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("%w: expected a multipart upload: %v", domain.ErrInvalidInput, err)
	}

	u := &upload{
		ingest: driving.IngestOptions{TextColumn: st.Ingest.TextColumn},
		request: domain.RunRequest{
			Estimator: st.Model.Estimator,
			Model:     st.ModelOptions(),
			TopWords:  st.Model.TopWords,
		},
	}

	for _, fh := range form.File[fieldFiles] {
		raw, err := readPart(fh)
		if err != nil {
			return nil, err
		}
		u.files = append(u.files, raw)
	}
	if len(u.files) == 0 {
		return nil, fmt.Errorf("%w: no files uploaded", domain.ErrInvalidInput)
	}

	if fhs := form.File[fieldStopwords]; len(fhs) > 0 {
		raw, err := readPart(fhs[0])
		if err != nil {
			return nil, err
		}
		u.stopwords = &raw
	}

	if err := intField(form, fieldTopics, &u.request.Model.NumTopics); err != nil {
		return nil, err
	}
	if err := intField(form, fieldTopWords, &u.request.TopWords); err != nil {
		return nil, err
	}
	if err := intField(form, fieldColumn, &u.ingest.TextColumn); err != nil {
		return nil, err
	}
	if v := value(form, fieldSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrInvalidInput, fieldSeed)
		}
		u.request.Model.Seed = seed
	}
	if v := value(form, fieldEstimator); v != "" {
		u.request.Estimator = domain.Estimator(strings.ToLower(v))
	}

	return u, nil
}

func readPart(fh *multipart.FileHeader) (domain.RawDocument, error) {
	f, err := fh.Open()
	if err != nil {
		return domain.RawDocument{}, fmt.Errorf("opening %s: %w", fh.Filename, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return domain.RawDocument{}, fmt.Errorf("reading %s: %w", fh.Filename, err)
	}

	// The type is detected from the file name; browsers often send
	// application/octet-stream for spreadsheets.
	return domain.RawDocument{URI: fh.Filename, Content: content}, nil
}

func value(form *multipart.Form, name string) string {
	if vs := form.Value[name]; len(vs) > 0 {
		return strings.TrimSpace(vs[0])
	}
	return ""
}

func intField(form *multipart.Form, name string, dst *int) error {
	v := value(form, name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, name)
	}
	*dst = n
	return nil
}

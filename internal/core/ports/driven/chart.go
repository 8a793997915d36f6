package driven

import (
	"io"

	"github.com/custodia-labs/topica/internal/core/domain"
)

// ChartRenderer draws the average topic distribution of a report.
type ChartRenderer interface {
	// Render writes the chart for report to w.
	Render(w io.Writer, report *domain.TopicReport) error
}

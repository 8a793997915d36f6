// Package echarts renders topic distributions as go-echarts HTML bar charts.
package echarts

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.ChartRenderer = (*Renderer)(nil)

// Chart defaults.
const (
	DefaultWidth  = "900px"
	DefaultHeight = "500px"
	DefaultTitle  = "Average topic distribution"
)

// Renderer draws the average distribution as a bar chart page.
type Renderer struct {
	width  string
	height string
	title  string
}

// Option configures the renderer.
type Option func(*Renderer)

// WithSize sets the chart dimensions (CSS lengths such as "900px").
// Empty values keep the defaults.
func WithSize(width, height string) Option {
	return func(r *Renderer) {
		if width != "" {
			r.width = width
		}
		if height != "" {
			r.height = height
		}
	}
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(r *Renderer) {
		r.title = title
	}
}

// New creates a renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		width:  DefaultWidth,
		height: DefaultHeight,
		title:  DefaultTitle,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes a complete HTML page to w.
func (r *Renderer) Render(w io.Writer, report *domain.TopicReport) error {
	if report == nil || len(report.AverageDistribution) == 0 {
		return fmt.Errorf("%w: nothing to chart", domain.ErrInvalidInput)
	}
	if len(report.Topics) != len(report.AverageDistribution) {
		return fmt.Errorf("%w: %d topics but %d averages",
			domain.ErrInvalidInput, len(report.Topics), len(report.AverageDistribution))
	}
	return r.bar(report).Render(w)
}

func (r *Renderer) bar(report *domain.TopicReport) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: r.title,
			Width:     r.width,
			Height:    r.height,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    r.title,
			Subtitle: fmt.Sprintf("%d topics", len(report.Topics)),
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "weight"}),
	)

	data := make([]opts.BarData, len(report.AverageDistribution))
	for i, v := range report.AverageDistribution {
		data[i] = opts.BarData{Name: report.Topics[i].Label, Value: round(v)}
	}

	bar.SetXAxis(report.Labels()).AddSeries("average", data)
	return bar
}

// round keeps four decimals so the embedded option JSON stays readable.
func round(v float64) float64 {
	return float64(int64(v*10000+0.5)) / 10000
}

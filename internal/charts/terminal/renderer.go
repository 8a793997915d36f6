// Package terminal renders topic distributions as horizontal bars for
// terminals. Styled output uses lipgloss; plain output carries no escape
// sequences and is used when stdout is not a TTY.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.ChartRenderer = (*Renderer)(nil)

// DefaultWidth is the number of cells of the longest bar.
const DefaultWidth = 40

const (
	fullBlock  = "█"
	emptyBlock = "░"
)

// Renderer draws one bar per topic, scaled to the largest value.
type Renderer struct {
	width int
	plain bool

	label lipgloss.Style
	bar   lipgloss.Style
	track lipgloss.Style
	value lipgloss.Style
}

// Option configures the renderer.
type Option func(*Renderer)

// WithWidth sets the width of the longest bar.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// WithPlain disables colours.
func WithPlain(plain bool) Option {
	return func(r *Renderer) {
		r.plain = plain
	}
}

// WithColours sets the bar and label colours.
func WithColours(bar, label lipgloss.Color) Option {
	return func(r *Renderer) {
		r.bar = r.bar.Foreground(bar)
		r.label = r.label.Foreground(label)
	}
}

// New creates a renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		width: DefaultWidth,
		label: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		bar:   lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
		track: lipgloss.NewStyle().Foreground(lipgloss.Color("#45475A")),
		value: lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes the chart to w.
func (r *Renderer) Render(w io.Writer, report *domain.TopicReport) error {
	chart, err := r.String(report)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, chart)
	return err
}

// String returns the chart, one line per topic.
func (r *Renderer) String(report *domain.TopicReport) (string, error) {
	if report == nil || len(report.AverageDistribution) == 0 {
		return "", fmt.Errorf("%w: nothing to chart", domain.ErrInvalidInput)
	}
	if len(report.Topics) != len(report.AverageDistribution) {
		return "", fmt.Errorf("%w: %d topics but %d averages",
			domain.ErrInvalidInput, len(report.Topics), len(report.AverageDistribution))
	}

	labelWidth := 0
	for _, t := range report.Topics {
		if n := lipgloss.Width(t.Label); n > labelWidth {
			labelWidth = n
		}
	}
	maxValue := 0.0
	for _, v := range report.AverageDistribution {
		if v > maxValue {
			maxValue = v
		}
	}

	var sb strings.Builder
	for i, v := range report.AverageDistribution {
		cells := 0
		if maxValue > 0 {
			cells = int(v/maxValue*float64(r.width) + 0.5)
		}
		label := report.Topics[i].Label + strings.Repeat(" ", labelWidth-lipgloss.Width(report.Topics[i].Label))
		filled := strings.Repeat(fullBlock, cells)
		empty := strings.Repeat(emptyBlock, r.width-cells)
		value := fmt.Sprintf("%5.1f%%", v*100)

		if r.plain {
			fmt.Fprintf(&sb, "%s  %s%s %s\n", label, filled, empty, value)
			continue
		}
		fmt.Fprintf(&sb, "%s  %s%s %s\n",
			r.label.Render(label), r.bar.Render(filled), r.track.Render(empty), r.value.Render(value))
	}
	return sb.String(), nil
}

package terminal

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/topica/internal/core/domain"
)

func report(values ...float64) *domain.TopicReport {
	r := &domain.TopicReport{AverageDistribution: values}
	for i := range values {
		r.Topics = append(r.Topics, domain.Topic{Index: i, Label: domain.TopicLabel(i)})
	}
	return r
}

func TestRender_Plain(t *testing.T) {
	var buf bytes.Buffer

	err := New(WithPlain(true), WithWidth(4)).Render(&buf, report(0.25, 0.75))
	require.NoError(t, err)

	want := "Topic 1  █░░░  25.0%\n" +
		"Topic 2  ████  75.0%\n"
	assert.Equal(t, want, buf.String())
}

func TestRender_PlainAlignsLabels(t *testing.T) {
	values := make([]float64, 10)
	values[9] = 1

	out, err := New(WithPlain(true), WithWidth(2)).String(report(values...))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "Topic 1   ░░   0.0%", lines[0])
	assert.Equal(t, "Topic 10  ██ 100.0%", lines[9])
}

func TestRender_AllZero(t *testing.T) {
	out, err := New(WithPlain(true), WithWidth(3)).String(report(0, 0))
	require.NoError(t, err)

	assert.Equal(t, "Topic 1  ░░░   0.0%\nTopic 2  ░░░   0.0%\n", out)
}

func TestRender_Styled(t *testing.T) {
	out, err := New(WithWidth(4)).String(report(0.5, 0.5))
	require.NoError(t, err)

	assert.Contains(t, out, "Topic 1")
	assert.Contains(t, out, "Topic 2")
	assert.Contains(t, out, "50.0%")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestRender_InvalidReports(t *testing.T) {
	tests := []struct {
		name   string
		report *domain.TopicReport
	}{
		{"nil", nil},
		{"empty", &domain.TopicReport{}},
		{"mismatch", &domain.TopicReport{
			Topics:              []domain.Topic{{Label: "Topic 1"}},
			AverageDistribution: []float64{0.5, 0.5},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := New().Render(&buf, tt.report)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
			assert.Zero(t, buf.Len())
		})
	}
}

func TestWithWidth_IgnoresNonPositive(t *testing.T) {
	assert.Equal(t, DefaultWidth, New(WithWidth(0)).width)
	assert.Equal(t, 12, New(WithWidth(12)).width)
}

package web

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/custodia-labs/topica/internal/core/domain"
)

// previewLength is the number of cleaned characters shown per document.
const previewLength = 200

// TopicsResponse is the JSON body of POST /api/topics.
type TopicsResponse struct {
	RunID               string            `json:"run_id"`
	Estimator           string            `json:"estimator"`
	Documents           int               `json:"documents"`
	Vocabulary          int               `json:"vocabulary"`
	Topics              []domain.Topic    `json:"topics"`
	AverageDistribution []float64         `json:"average_distribution"`
	ElapsedMillis       int64             `json:"elapsed_ms"`
	Previews            []DocumentPreview `json:"previews,omitempty"`
}

// DocumentPreview shows the start of one cleaned document.
type DocumentPreview struct {
	Title   string `json:"title"`
	Cleaned string `json:"cleaned"`
}

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleIndex(c echo.Context) error {
	st := s.settings()

	var buf bytes.Buffer
	err := indexTemplate.Execute(&buf, indexData{
		Settings:   st,
		Estimators: s.ports.Topics.Estimators(),
		Accept:     strings.Join(acceptedExtensions, ","),
		MinTopics:  domain.MinUITopics,
		MaxTopics:  domain.MaxUITopics,
	})
	if err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func (s *Server) handleAPITopics(c echo.Context) error {
	result, err := s.run(c)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, newTopicsResponse(result, c.QueryParam("texts") == "true"))
}

func (s *Server) handlePageTopics(c echo.Context) error {
	st := s.settings()

	result, err := s.run(c)
	if err != nil {
		return s.renderPage(c, statusFor(err), resultData{Error: err.Error()})
	}

	var chart bytes.Buffer
	if err := s.chart(st).Render(&chart, &result.Report); err != nil {
		return s.renderPage(c, statusFor(err), resultData{Error: err.Error()})
	}

	return s.renderPage(c, http.StatusOK, resultData{
		Response: newTopicsResponse(result, true),
		Chart:    chart.String(),
		Height:   st.Server.ChartHeight,
	})
}

func (s *Server) renderPage(c echo.Context, status int, data resultData) error {
	var buf bytes.Buffer
	if err := resultTemplate.Execute(&buf, data); err != nil {
		return err
	}
	return c.HTMLBlob(status, buf.Bytes())
}

// run parses the upload, ingests the files and runs the pipeline.
func (s *Server) run(c echo.Context) (*domain.RunResult, error) {
	ctx := c.Request().Context()

	u, err := parseUpload(c, s.settings())
	if err != nil {
		return nil, err
	}

	docs, err := s.ports.Ingest.Ingest(ctx, u.files, u.ingest)
	if err != nil {
		return nil, err
	}
	u.request.Documents = docs

	if u.stopwords != nil {
		stop, err := s.ports.Ingest.Stopwords(ctx, u.stopwords)
		if err != nil {
			return nil, err
		}
		u.request.Stopwords = stop
	}

	return s.ports.Topics.Run(ctx, u.request)
}

func newTopicsResponse(result *domain.RunResult, previews bool) TopicsResponse {
	resp := TopicsResponse{
		RunID:               result.ID,
		Estimator:           result.Estimator.String(),
		Documents:           len(result.Documents),
		Topics:              result.Report.Topics,
		AverageDistribution: result.Report.AverageDistribution,
		ElapsedMillis:       result.Elapsed.Milliseconds(),
	}
	if result.Vocabulary != nil {
		resp.Vocabulary = result.Vocabulary.Size()
	}
	if previews {
		resp.Previews = make([]DocumentPreview, len(result.Documents))
		for i := range result.Documents {
			resp.Previews[i] = DocumentPreview{
				Title:   result.Documents[i].Title,
				Cleaned: result.Documents[i].Preview(previewLength),
			}
		}
	}
	return resp
}

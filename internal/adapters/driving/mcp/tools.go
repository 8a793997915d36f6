package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/topica/internal/core/domain"
)

// ModelTopicsInput is the input schema for the model_topics tool.
type ModelTopicsInput struct {
	Documents []string `json:"documents" jsonschema:"the texts to model, one document per entry"`
	NumTopics int      `json:"num_topics,omitempty" jsonschema:"number of topics K (default from settings)"`
	TopWords  int      `json:"top_words,omitempty" jsonschema:"words reported per topic (default 5)"`
	Stopwords []string `json:"stopwords,omitempty" jsonschema:"replacement stopword list; the built-in English list is used when empty"`
	Seed      int64    `json:"seed,omitempty" jsonschema:"random seed for reproducible fits"`
	Estimator string   `json:"estimator,omitempty" jsonschema:"variational or gibbs"`
}

// ModelTopicsOutput is the output schema for the model_topics tool.
type ModelTopicsOutput struct {
	RunID               string        `json:"run_id"`
	Estimator           string        `json:"estimator"`
	Documents           int           `json:"documents"`
	Vocabulary          int           `json:"vocabulary"`
	Topics              []TopicOutput `json:"topics"`
	AverageDistribution []float64     `json:"average_distribution"`
}

// TopicOutput represents a single topic.
type TopicOutput struct {
	Label             string    `json:"label"`
	Words             []string  `json:"words"`
	Weights           []float64 `json:"weights"`
	DominantDocuments int       `json:"dominant_documents"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "model_topics",
		Description: "Run LDA topic modelling over the given documents and report the top words per topic",
	}, s.handleModelTopics)
}

// handleModelTopics handles the model_topics tool invocation.
func (s *Server) handleModelTopics(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ModelTopicsInput,
) (*mcp.CallToolResult, ModelTopicsOutput, error) {
	req, err := s.buildRequest(input)
	if err != nil {
		return nil, ModelTopicsOutput{}, err
	}

	result, err := s.ports.Topics.Run(ctx, req)
	if err != nil {
		return nil, ModelTopicsOutput{}, err
	}

	output := ModelTopicsOutput{
		RunID:               result.ID,
		Estimator:           result.Estimator.String(),
		Documents:           len(result.Documents),
		Topics:              make([]TopicOutput, len(result.Report.Topics)),
		AverageDistribution: result.Report.AverageDistribution,
	}
	if result.Vocabulary != nil {
		output.Vocabulary = result.Vocabulary.Size()
	}
	for i, t := range result.Report.Topics {
		output.Topics[i] = TopicOutput{
			Label:             t.Label,
			Words:             t.Words,
			Weights:           t.Weights,
			DominantDocuments: t.DominantDocuments,
		}
	}

	return nil, output, nil
}

// buildRequest fills omitted arguments from settings.
func (s *Server) buildRequest(input ModelTopicsInput) (domain.RunRequest, error) {
	if input.NumTopics < 0 || input.TopWords < 0 || input.Seed < 0 {
		return domain.RunRequest{}, fmt.Errorf("%w: num_topics, top_words and seed must not be negative", domain.ErrInvalidInput)
	}

	st := s.settings()
	opts := st.ModelOptions()
	if input.NumTopics > 0 {
		opts.NumTopics = input.NumTopics
	}
	if input.Seed > 0 {
		opts.Seed = uint64(input.Seed)
	}

	estimator := st.Model.Estimator
	if input.Estimator != "" {
		estimator = domain.Estimator(strings.ToLower(input.Estimator))
	}

	topN := st.Model.TopWords
	if input.TopWords > 0 {
		topN = input.TopWords
	}

	docs := make([]domain.Document, len(input.Documents))
	for i, text := range input.Documents {
		docs[i] = domain.Document{
			Title: fmt.Sprintf("document %d", i+1),
			Raw:   text,
		}
	}

	req := domain.RunRequest{
		Documents: docs,
		Estimator: estimator,
		Model:     opts,
		TopWords:  topN,
	}
	if len(input.Stopwords) > 0 {
		words := make([]string, 0, len(input.Stopwords))
		for _, w := range input.Stopwords {
			if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
				words = append(words, w)
			}
		}
		req.Stopwords = domain.NewStopwordSet(words...)
	}
	return req, nil
}

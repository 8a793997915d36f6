package services

import (
	"bytes"
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
	"github.com/custodia-labs/topica/internal/core/ports/driving"
	"github.com/custodia-labs/topica/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService decodes uploaded files into documents.
type IngestService struct {
	normalisers driven.NormaliserRegistry
	pipeline    driven.PostProcessorPipeline
	stopwords   driven.StopwordSource
}

// NewIngestService creates a new ingest service.
// pipeline may be nil, in which case documents are returned as decoded.
func NewIngestService(
	normalisers driven.NormaliserRegistry,
	pipeline driven.PostProcessorPipeline,
	stopwords driven.StopwordSource,
) *IngestService {
	return &IngestService{
		normalisers: normalisers,
		pipeline:    pipeline,
		stopwords:   stopwords,
	}
}

// Ingest decodes files in order. Documents keep the order of their files,
// and rows keep their order within a spreadsheet.
func (s *IngestService) Ingest(ctx context.Context, files []domain.RawDocument, opts driving.IngestOptions) ([]domain.Document, error) {
	if opts.TextColumn < 0 {
		return nil, fmt.Errorf("%w: text column %d", domain.ErrInvalidInput, opts.TextColumn)
	}

	var docs []domain.Document
	for i := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result, err := s.normalisers.Normalise(ctx, &files[i], driven.NormaliseOptions{TextColumn: opts.TextColumn})
		if err != nil {
			return nil, fmt.Errorf("ingest %s: %w", files[i].URI, err)
		}
		logger.Debug("ingest %s (%s): %d documents", files[i].URI, files[i].MIMEType, len(result.Documents))
		docs = append(docs, result.Documents...)
	}

	if s.pipeline != nil {
		processed, err := s.pipeline.Process(ctx, docs)
		if err != nil {
			return nil, fmt.Errorf("post-process: %w", err)
		}
		docs = processed
	}
	return docs, nil
}

// Stopwords returns the default list when raw is nil, otherwise parses raw.
func (s *IngestService) Stopwords(_ context.Context, raw *domain.RawDocument) (domain.StopwordSet, error) {
	if raw == nil {
		return s.stopwords.Default(), nil
	}
	if !utf8.Valid(raw.Content) {
		return nil, fmt.Errorf("stopwords %s: %w", raw.URI, domain.ErrInvalidEncoding)
	}
	set, err := s.stopwords.Parse(bytes.NewReader(raw.Content))
	if err != nil {
		return nil, fmt.Errorf("stopwords %s: %w", raw.URI, err)
	}
	logger.Debug("stopwords %s: %d terms", raw.URI, set.Len())
	return set, nil
}

// SupportedMIMETypes returns the MIME types that can be ingested.
func (s *IngestService) SupportedMIMETypes() []string {
	return s.normalisers.SupportedMIMETypes()
}

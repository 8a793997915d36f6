package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
	"github.com/custodia-labs/topica/internal/core/ports/driving"
	"github.com/custodia-labs/topica/internal/logger"
)

// Ensure TopicService implements the interface.
var _ driving.TopicService = (*TopicService)(nil)

// TopicService runs the topic modelling pipeline.
type TopicService struct {
	cleaner    driven.TextCleaner
	vectoriser driven.CorpusVectoriser
	models     driven.TopicModelRegistry
	stopwords  driven.StopwordSource
	reporter   *Reporter

	defaultEstimator domain.Estimator
}

// NewTopicService creates a new topic service.
func NewTopicService(
	cleaner driven.TextCleaner,
	vectoriser driven.CorpusVectoriser,
	models driven.TopicModelRegistry,
	stopwords driven.StopwordSource,
) *TopicService {
	return &TopicService{
		cleaner:          cleaner,
		vectoriser:       vectoriser,
		models:           models,
		stopwords:        stopwords,
		reporter:         NewReporter(),
		defaultEstimator: domain.EstimatorVariational,
	}
}

// WithDefaultEstimator sets the estimator used when a request names none.
func (s *TopicService) WithDefaultEstimator(e domain.Estimator) *TopicService {
	if e != "" {
		s.defaultEstimator = e
	}
	return s
}

// Estimators returns the registered estimators.
func (s *TopicService) Estimators() []domain.Estimator {
	return s.models.Names()
}

// Run cleans, vectorises, fits and reports. The context is checked
// between stages; a cancelled run returns the context error.
func (s *TopicService) Run(ctx context.Context, req domain.RunRequest) (*domain.RunResult, error) {
	start := time.Now()
	runID := uuid.New().String()
	logger.Section("Run " + runID)

	estimator := req.Estimator
	if estimator == "" {
		estimator = s.defaultEstimator
	}
	model, err := s.models.Get(estimator)
	if err != nil {
		return nil, domain.NewStageError(domain.StageFit, estimator, err)
	}

	stop := req.Stopwords
	if stop == nil {
		stop = s.stopwords.Default()
	}
	topN := req.TopWords
	if topN == 0 {
		topN = domain.DefaultTopWords
	}

	docs := s.clean(req.Documents, stop)
	logger.Info("cleaned %d documents with %d stopwords", len(docs), stop.Len())

	if err := checkpoint(ctx, domain.StageVectorise); err != nil {
		return nil, err
	}
	done := logger.Timed(domain.StageVectorise)
	vocab, dtm, err := s.vectoriser.Fit(domain.CleanedTexts(docs))
	done()
	if err != nil {
		return nil, stageError(domain.StageVectorise, len(docs), err)
	}

	if err := checkpoint(ctx, domain.StageFit); err != nil {
		return nil, err
	}
	done = logger.Timed(domain.StageFit)
	fitted, err := model.Fit(ctx, dtm, req.Model)
	done()
	if err != nil {
		return nil, stageError(domain.StageFit, req.Model.NumTopics, err)
	}

	if err := checkpoint(ctx, domain.StageTransform); err != nil {
		return nil, err
	}
	done = logger.Timed(domain.StageTransform)
	docTopics, err := fitted.Transform(ctx, dtm)
	done()
	if err != nil {
		return nil, stageError(domain.StageTransform, nil, err)
	}

	if err := checkpoint(ctx, domain.StageReport); err != nil {
		return nil, err
	}
	report, err := s.reporter.Report(fitted, vocab, docTopics, topN)
	if err != nil {
		return nil, stageError(domain.StageReport, topN, err)
	}

	result := &domain.RunResult{
		ID:             runID,
		Documents:      docs,
		Vocabulary:     vocab,
		Report:         *report,
		DocumentTopics: docTopics,
		Estimator:      estimator,
		Elapsed:        time.Since(start),
	}
	logger.Info("run %s: %d topics over %d terms in %s", runID, fitted.NumTopics(), vocab.Size(), result.Elapsed)
	return result, nil
}

// clean copies the documents and fills in their cleaned text.
func (s *TopicService) clean(in []domain.Document, stop domain.StopwordSet) []domain.Document {
	docs := make([]domain.Document, len(in))
	copy(docs, in)
	for i := range docs {
		if docs[i].ID == "" {
			docs[i].ID = uuid.New().String()
		}
		docs[i].Cleaned = s.cleaner.Clean(docs[i].Raw, stop)
	}
	return docs
}

// checkpoint returns the context error, if any, annotated with the next stage.
func checkpoint(ctx context.Context, stage string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("before %s: %w", stage, err)
	}
	return nil
}

// stageError wraps err in a StageError unless it already carries one
// or is a context error.
func stageError(stage string, value any, err error) error {
	var se *domain.StageError
	if errors.As(err, &se) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return domain.NewStageError(stage, value, err)
}

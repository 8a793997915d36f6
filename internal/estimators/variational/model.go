// Package variational fits LDA with the online variational Bayes
// estimator from github.com/e-gun/nlp.
package variational

import (
	"context"

	"github.com/e-gun/nlp"
	"github.com/e-gun/sparse"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
	"github.com/custodia-labs/topica/internal/estimators/common"
	"github.com/custodia-labs/topica/internal/logger"
)

// Ensure Model implements the interface.
var _ driven.TopicModel = (*Model)(nil)

// Model wraps nlp.LatentDirichletAllocation.
type Model struct{}

// New creates a variational topic model.
func New() *Model {
	return &Model{}
}

// Name returns the estimator name.
func (m *Model) Name() domain.Estimator {
	return domain.EstimatorVariational
}

// Fit runs variational inference on dtm.
// The estimator runs in a single process so that a fixed seed gives a fixed result.
func (m *Model) Fit(ctx context.Context, dtm *domain.DocumentTermMatrix, opts domain.ModelOptions) (driven.FittedModel, error) {
	if err := common.CheckFitInput(dtm, opts.NumTopics); err != nil {
		return nil, err
	}
	if err := common.Checkpoint(ctx, domain.StageFit); err != nil {
		return nil, err
	}
	opts = opts.WithDefaults()

	lda := nlp.NewLatentDirichletAllocation(opts.NumTopics)
	lda.Iterations = opts.Iterations
	lda.TransformationPasses = max(opts.Iterations/2, 1)
	lda.Alpha = opts.Alpha
	lda.Eta = opts.Eta
	lda.Processes = 1
	lda.Rnd = rand.New(rand.NewSource(opts.Seed))

	// docsOverTopics is topics x documents.
	docsOverTopics, err := lda.FitTransform(termsByDocuments(dtm))
	if err != nil {
		return nil, domain.NewStageError(domain.StageFit, nil, err)
	}

	_, terms := dtm.Dims()
	f := &Fitted{
		lda:       lda,
		numTopics: opts.NumTopics,
		numTerms:  terms,
		weights:   make([][]float64, opts.NumTopics),
		trained:   dtm,
		fitted:    docsOverTopics,
	}

	// Components is topics x terms.
	components := lda.Components()
	for k := range f.weights {
		row := mat.Row(nil, k, components)
		if err := common.Normalise(domain.StageFit, row); err != nil {
			return nil, err
		}
		f.weights[k] = row
	}

	logger.Debug("variational: %d topics over %d terms", opts.NumTopics, terms)
	return f, nil
}

// Fitted is a fitted variational LDA model.
type Fitted struct {
	lda       *nlp.LatentDirichletAllocation
	numTopics int
	numTerms  int
	weights   [][]float64

	trained *domain.DocumentTermMatrix
	fitted  mat.Matrix
}

// NumTopics returns K.
func (f *Fitted) NumTopics() int {
	return f.numTopics
}

// NumTerms returns V.
func (f *Fitted) NumTerms() int {
	return f.numTerms
}

// TopicWords returns the normalised word weights of topic k.
func (f *Fitted) TopicWords(k int) []float64 {
	out := make([]float64, f.numTerms)
	copy(out, f.weights[k])
	return out
}

// Transform infers topic distributions. The training matrix reuses the
// distributions computed during Fit.
func (f *Fitted) Transform(ctx context.Context, dtm *domain.DocumentTermMatrix) (*domain.DocumentTopicMatrix, error) {
	if err := common.CheckTransformInput(dtm, f.numTerms); err != nil {
		return nil, err
	}
	if err := common.Checkpoint(ctx, domain.StageTransform); err != nil {
		return nil, err
	}

	docs, _ := dtm.Dims()
	out := domain.NewDocumentTopicMatrix(docs, f.numTopics)
	if docs == 0 {
		return out, nil
	}

	docsOverTopics := f.fitted
	if dtm != f.trained {
		var err error
		docsOverTopics, err = f.lda.Transform(termsByDocuments(dtm))
		if err != nil {
			return nil, domain.NewStageError(domain.StageTransform, nil, err)
		}
	}

	for d := 0; d < docs; d++ {
		row := out.RawRow(d)
		if dtm.RowTotal(d) == 0 {
			copy(row, common.Uniform(f.numTopics))
			continue
		}
		mat.Col(row, d, docsOverTopics)
		if err := common.Normalise(domain.StageTransform, row); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// termsByDocuments converts dtm into the terms x documents sparse layout
// that nlp.CountVectoriser produces.
func termsByDocuments(dtm *domain.DocumentTermMatrix) mat.Matrix {
	docs, terms := dtm.Dims()
	dok := sparse.NewDOK(terms, docs)
	for d := 0; d < docs; d++ {
		for w, n := range dtm.RawRow(d) {
			if n != 0 {
				dok.Set(w, d, n)
			}
		}
	}
	return dok.ToCSR()
}

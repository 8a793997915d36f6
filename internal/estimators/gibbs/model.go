// Package gibbs implements LDA by collapsed Gibbs sampling.
//
// Counts are kept in gonum dense matrices: n_wk (terms x topics),
// n_dk (documents x topics) and n_k (topic totals). After sampling the
// posterior point estimates are
//
//	phi_kw   = (n_wk + eta)   / (n_k + V*eta)
//	theta_dk = (n_dk + alpha) / (n_d + K*alpha)
package gibbs

import (
	"context"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
	"github.com/custodia-labs/topica/internal/estimators/common"
	"github.com/custodia-labs/topica/internal/logger"
)

// Ensure Model implements the interface.
var _ driven.TopicModel = (*Model)(nil)

// Model is a collapsed Gibbs sampler.
type Model struct{}

// New creates a Gibbs sampling topic model.
func New() *Model {
	return &Model{}
}

// Name returns the estimator name.
func (m *Model) Name() domain.Estimator {
	return domain.EstimatorGibbs
}

// Fit samples topic assignments for every token of dtm.
func (m *Model) Fit(ctx context.Context, dtm *domain.DocumentTermMatrix, opts domain.ModelOptions) (driven.FittedModel, error) {
	if err := common.CheckFitInput(dtm, opts.NumTopics); err != nil {
		return nil, err
	}
	opts = opts.WithDefaults()

	docs, terms := dtm.Dims()
	s := newSampler(docs, terms, opts, rand.New(rand.NewSource(opts.Seed)))
	s.init(dtm)

	for iter := 0; iter < opts.Iterations; iter++ {
		if err := common.Checkpoint(ctx, domain.StageFit); err != nil {
			return nil, err
		}
		if iter%10 == 0 && logger.IsVerbose() {
			logger.Debug("gibbs: iter %d, log likelihood %.4f", iter, s.logLikelihood())
		}
		s.sweep(true)
	}

	f := &Fitted{
		numTopics: opts.NumTopics,
		numTerms:  terms,
		opts:      opts,
		phi:       s.phi(),
		nwk:       s.nwk,
		nk:        s.nk,
		trained:   dtm,
		theta:     s.theta(),
	}
	for k := 0; k < f.numTopics; k++ {
		if !common.Finite(f.phi.RawRowView(k)) {
			return nil, domain.NewStageError(domain.StageFit, k, domain.ErrNumericInstability)
		}
	}
	return f, nil
}

// Fitted holds the sampled counts and posterior estimates.
type Fitted struct {
	numTopics int
	numTerms  int
	opts      domain.ModelOptions

	phi *mat.Dense // topics x terms
	nwk *mat.Dense // terms x topics
	nk  []float64

	trained *domain.DocumentTermMatrix
	theta   *mat.Dense // documents x topics of trained
}

// NumTopics returns K.
func (f *Fitted) NumTopics() int {
	return f.numTopics
}

// NumTerms returns V.
func (f *Fitted) NumTerms() int {
	return f.numTerms
}

// TopicWords returns phi for topic k.
func (f *Fitted) TopicWords(k int) []float64 {
	return mat.Row(nil, k, f.phi)
}

// Transform returns theta for the training matrix, and folds any other
// matrix in by sampling against the fixed topic-word counts.
func (f *Fitted) Transform(ctx context.Context, dtm *domain.DocumentTermMatrix) (*domain.DocumentTopicMatrix, error) {
	if err := common.CheckTransformInput(dtm, f.numTerms); err != nil {
		return nil, err
	}

	theta := f.theta
	if dtm != f.trained {
		docs, _ := dtm.Dims()
		s := newSampler(docs, f.numTerms, f.opts, rand.New(rand.NewSource(f.opts.Seed)))
		s.nwk, s.nk = f.nwk, f.nk
		s.initFixed(dtm)
		for iter := 0; iter < f.opts.Iterations; iter++ {
			if err := common.Checkpoint(ctx, domain.StageTransform); err != nil {
				return nil, err
			}
			s.sweep(false)
		}
		theta = s.theta()
	}

	docs, _ := dtm.Dims()
	out := domain.NewDocumentTopicMatrix(docs, f.numTopics)
	for d := 0; d < docs; d++ {
		row := out.RawRow(d)
		if dtm.RowTotal(d) == 0 {
			copy(row, common.Uniform(f.numTopics))
			continue
		}
		mat.Row(row, d, theta)
		if err := common.Normalise(domain.StageTransform, row); err != nil {
			return nil, err
		}
	}
	return out, nil
}

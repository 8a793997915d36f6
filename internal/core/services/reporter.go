package services

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
)

// Reporter turns a fitted model into a TopicReport.
type Reporter struct{}

// NewReporter creates a reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// TopWords returns the n highest-weighted terms of every topic, labelled
// "Topic 1".."Topic K". Equal weights keep the lower vocabulary index first.
func (r *Reporter) TopWords(model driven.FittedModel, vocab *domain.Vocabulary, n int) ([]domain.Topic, error) {
	if n < 1 {
		return nil, domain.NewStageError(domain.StageReport, n, domain.ErrInvalidInput)
	}
	if vocab.Size() != model.NumTerms() {
		return nil, domain.NewStageError(domain.StageReport, vocab.Size(),
			fmt.Errorf("%w: model has %d terms", domain.ErrInvalidInput, model.NumTerms()))
	}

	size := vocab.Size()
	if n > size {
		n = size
	}

	topics := make([]domain.Topic, model.NumTopics())
	for k := range topics {
		weights := model.TopicWords(k)

		// Ascending stable sort of the negated weights gives descending
		// order with ties in vocabulary order.
		neg := make([]float64, size)
		for i, w := range weights {
			neg[i] = -w
		}
		inds := make([]int, size)
		floats.ArgsortStable(neg, inds)

		topic := domain.Topic{
			Index:   k,
			Label:   domain.TopicLabel(k),
			Words:   make([]string, n),
			Weights: make([]float64, n),
		}
		for i := 0; i < n; i++ {
			topic.Words[i] = vocab.Term(inds[i])
			topic.Weights[i] = weights[inds[i]]
		}
		topics[k] = topic
	}
	return topics, nil
}

// AverageDistribution returns the column-wise mean of dt.
func (r *Reporter) AverageDistribution(dt *domain.DocumentTopicMatrix) ([]float64, error) {
	docs, topics := dt.Dims()
	if docs == 0 {
		return nil, domain.NewStageError(domain.StageReport, docs, domain.ErrEmptyCorpus)
	}

	avg := make([]float64, topics)
	col := make([]float64, docs)
	for k := range avg {
		for d := 0; d < docs; d++ {
			col[d] = dt.At(d, k)
		}
		avg[k] = stat.Mean(col, nil)
	}
	return avg, nil
}

// DominantCounts returns, per topic, how many documents weigh it highest.
// Ties go to the lower topic index.
func (r *Reporter) DominantCounts(dt *domain.DocumentTopicMatrix) []int {
	docs, topics := dt.Dims()
	counts := make([]int, topics)
	for d := 0; d < docs; d++ {
		counts[floats.MaxIdx(dt.RawRow(d))]++
	}
	return counts
}

// Report assembles top words, dominant document counts and the average distribution.
func (r *Reporter) Report(model driven.FittedModel, vocab *domain.Vocabulary, dt *domain.DocumentTopicMatrix, n int) (*domain.TopicReport, error) {
	topics, err := r.TopWords(model, vocab, n)
	if err != nil {
		return nil, err
	}
	avg, err := r.AverageDistribution(dt)
	if err != nil {
		return nil, err
	}
	for k, c := range r.DominantCounts(dt) {
		topics[k].DominantDocuments = c
	}
	return &domain.TopicReport{Topics: topics, AverageDistribution: avg}, nil
}

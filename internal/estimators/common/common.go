// Package common holds checks and numeric helpers shared by the estimators.
package common

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/custodia-labs/topica/internal/core/domain"
)

// CheckFitInput validates the matrix and topic count every estimator requires.
func CheckFitInput(m *domain.DocumentTermMatrix, numTopics int) error {
	_, terms := m.Dims()
	if numTopics < 1 || numTopics > terms {
		return domain.NewStageError(domain.StageFit, numTopics, domain.ErrInvalidTopicCount)
	}
	if m.Total() <= 0 {
		return domain.NewStageError(domain.StageFit, nil, domain.ErrDegenerateInput)
	}
	return nil
}

// CheckTransformInput verifies that m has the width the model was fitted on.
func CheckTransformInput(m *domain.DocumentTermMatrix, numTerms int) error {
	_, terms := m.Dims()
	if terms != numTerms {
		return domain.NewStageError(domain.StageTransform, terms,
			fmt.Errorf("%w: model has %d terms", domain.ErrInvalidInput, numTerms))
	}
	return nil
}

// Finite reports whether every value is a real number.
func Finite(values []float64) bool {
	if floats.HasNaN(values) {
		return false
	}
	for _, v := range values {
		if math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Uniform returns a distribution of n equal weights.
func Uniform(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1 / float64(n)
	}
	return out
}

// Normalise scales values in place to sum to 1.
// It fails with domain.ErrNumericInstability if the values are not finite
// or do not have a positive sum.
func Normalise(stage string, values []float64) error {
	if !Finite(values) {
		return domain.NewStageError(stage, nil, domain.ErrNumericInstability)
	}
	sum := floats.Sum(values)
	if sum <= 0 || math.IsInf(sum, 0) {
		return domain.NewStageError(stage, sum, domain.ErrNumericInstability)
	}
	floats.Scale(1/sum, values)
	return nil
}

// Checkpoint returns the context error, if any, wrapped with the stage name.
func Checkpoint(ctx context.Context, stage string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", stage, err)
	}
	return nil
}

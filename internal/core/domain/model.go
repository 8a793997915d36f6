package domain

const unknownDescription = "Unknown"

// Estimator names an LDA fitting algorithm.
type Estimator string

// Available estimators.
const (
	// EstimatorVariational is online variational Bayes.
	EstimatorVariational Estimator = "variational"

	// EstimatorGibbs is collapsed Gibbs sampling.
	EstimatorGibbs Estimator = "gibbs"
)

// IsValid returns true if the estimator is recognised.
func (e Estimator) IsValid() bool {
	switch e {
	case EstimatorVariational, EstimatorGibbs:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (e Estimator) String() string {
	return string(e)
}

// Description returns a human-readable description of the estimator.
func (e Estimator) Description() string {
	switch e {
	case EstimatorVariational:
		return "Variational Bayes (fast, default)"
	case EstimatorGibbs:
		return "Collapsed Gibbs sampling"
	default:
		return unknownDescription
	}
}

// Default hyperparameters.
const (
	DefaultIterations = 50
	DefaultSeed       = 1
)

// ModelOptions configures a single fit.
type ModelOptions struct {
	// NumTopics is K. Must satisfy 1 <= K <= vocabulary size.
	NumTopics int

	// Alpha is the document-topic prior. Zero means 1/K.
	Alpha float64

	// Eta is the topic-word prior. Zero means 1/K.
	Eta float64

	// Iterations is the number of passes. Zero means DefaultIterations.
	Iterations int

	// Seed makes fitting reproducible.
	Seed uint64
}

// WithDefaults returns a copy with unset fields filled in.
func (o ModelOptions) WithDefaults() ModelOptions {
	if o.NumTopics > 0 {
		if o.Alpha <= 0 {
			o.Alpha = 1 / float64(o.NumTopics)
		}
		if o.Eta <= 0 {
			o.Eta = 1 / float64(o.NumTopics)
		}
	}
	if o.Iterations <= 0 {
		o.Iterations = DefaultIterations
	}
	return o
}

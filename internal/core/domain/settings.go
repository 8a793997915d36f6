package domain

import "fmt"

// Settings are the persisted defaults for runs and drivers.
// Command-line flags and request fields override them per run.
type Settings struct {
	Model    ModelSettings
	Cleaning CleaningSettings
	Ingest   IngestSettings
	Server   ServerSettings
}

// ModelSettings configures the topic model.
type ModelSettings struct {
	NumTopics  int
	TopWords   int
	Estimator  Estimator
	Seed       uint64
	Iterations int
	Alpha      float64
	Eta        float64
}

// CleaningSettings configures the text cleaner.
type CleaningSettings struct {
	// FoldAccents strips diacritics before cleaning.
	FoldAccents bool

	// StopwordsFile replaces the built-in list when set.
	StopwordsFile string
}

// IngestSettings configures file decoding.
type IngestSettings struct {
	// TextColumn is the zero-based spreadsheet column holding document text.
	TextColumn int

	// SplitWords splits long documents into windows of this many words. Zero disables.
	SplitWords int

	// MinWords drops documents with fewer words. Blank documents are always dropped.
	MinWords int
}

// ServerSettings configures the HTTP driver.
type ServerSettings struct {
	Addr        string
	ChartWidth  string
	ChartHeight string
}

// UI bounds for the topic count control.
const (
	MinUITopics = 2
	MaxUITopics = 10
)

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		Model: ModelSettings{
			NumTopics:  5,
			TopWords:   DefaultTopWords,
			Estimator:  EstimatorVariational,
			Seed:       DefaultSeed,
			Iterations: DefaultIterations,
		},
		Ingest: IngestSettings{TextColumn: 0},
		Server: ServerSettings{
			Addr:        ":8080",
			ChartWidth:  "900px",
			ChartHeight: "500px",
		},
	}
}

// Validate checks that settings are usable.
func (s *Settings) Validate() error {
	if s.Model.NumTopics < 1 {
		return fmt.Errorf("%w: topics must be at least 1", ErrInvalidInput)
	}
	if s.Model.TopWords < 1 {
		return fmt.Errorf("%w: top words must be at least 1", ErrInvalidInput)
	}
	if !s.Model.Estimator.IsValid() {
		return fmt.Errorf("%w: estimator %q", ErrUnsupportedType, s.Model.Estimator)
	}
	if s.Model.Iterations < 1 {
		return fmt.Errorf("%w: iterations must be at least 1", ErrInvalidInput)
	}
	if s.Model.Alpha < 0 || s.Model.Eta < 0 {
		return fmt.Errorf("%w: priors must not be negative", ErrInvalidInput)
	}
	if s.Ingest.TextColumn < 0 {
		return fmt.Errorf("%w: text column must not be negative", ErrInvalidInput)
	}
	if s.Ingest.SplitWords < 0 {
		return fmt.Errorf("%w: split words must not be negative", ErrInvalidInput)
	}
	if s.Ingest.MinWords < 0 {
		return fmt.Errorf("%w: min words must not be negative", ErrInvalidInput)
	}
	return nil
}

// ModelOptions converts the model settings into options for a fit.
func (s *Settings) ModelOptions() ModelOptions {
	return ModelOptions{
		NumTopics:  s.Model.NumTopics,
		Alpha:      s.Model.Alpha,
		Eta:        s.Model.Eta,
		Iterations: s.Model.Iterations,
		Seed:       s.Model.Seed,
	}
}

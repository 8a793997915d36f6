package domain

import "time"

// RunRequest is everything a driver supplies for one pipeline run.
type RunRequest struct {
	// Documents carry raw text; cleaned text is filled in by the run.
	Documents []Document

	// Stopwords replaces the default list when non-nil.
	Stopwords StopwordSet

	// Estimator selects the fitting algorithm. Empty means variational.
	Estimator Estimator

	// Model holds K and hyperparameters.
	Model ModelOptions

	// TopWords is N in the report. Zero means DefaultTopWords.
	TopWords int
}

// RunResult is the outcome of a successful run.
type RunResult struct {
	// ID identifies the run in logs and responses.
	ID string

	// Documents are the input documents with Cleaned populated.
	Documents []Document

	// Vocabulary is the fitted vocabulary.
	Vocabulary *Vocabulary

	// Report holds top words and the average distribution.
	Report TopicReport

	// DocumentTopics is the per-document topic distribution.
	DocumentTopics *DocumentTopicMatrix

	// Estimator is the estimator actually used.
	Estimator Estimator

	// Elapsed is the wall time of the run.
	Elapsed time.Duration
}

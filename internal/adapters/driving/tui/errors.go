package tui

import "errors"

// ErrMissingTopicService is returned when the topic service is not provided.
var ErrMissingTopicService = errors.New("tui: topic service is required")

// ErrNoDocuments is returned when the corpus has no documents to model.
var ErrNoDocuments = errors.New("tui: no documents to model")

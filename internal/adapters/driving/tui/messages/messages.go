// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/topica/internal/core/domain"
)

// RunRequested is a command to refit the model with new parameters.
type RunRequested struct {
	Seq       int
	NumTopics int
	TopWords  int
	Seed      uint64
}

// RunCompleted carries a pipeline result back to the model.
// Seq matches the RunRequested it answers; stale results are dropped.
type RunCompleted struct {
	Seq    int
	Result *domain.RunResult
	Err    error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewTopics shows topics and the distribution chart.
	ViewTopics ViewType = iota
	// ViewTexts shows cleaned document previews.
	ViewTexts
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewTopics:
		return "topics"
	case ViewTexts:
		return "texts"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/solidkit/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewCatalog lists the examples.
	ViewCatalog ViewType = iota
	// ViewOutput shows the output of the last run.
	ViewOutput
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewCatalog:
		return "catalog"
	case ViewOutput:
		return "output"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ExampleSelected asks the app to run an example.
type ExampleSelected struct {
	Example domain.Example
}

// ExampleRun carries the captured output of a finished run.
// Output holds whatever was written before a failure.
type ExampleRun struct {
	Example domain.Example
	Output  string
	Err     error
}

// FilterChanged is sent when the catalog filter changes.
type FilterChanged struct {
	Filter domain.ExampleFilter
	Count  int
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

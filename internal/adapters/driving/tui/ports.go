// Package tui provides the interactive terminal interface. It follows the
// Elm architecture: a model updated by messages, rendered by View.
package tui

import (
	"errors"

	"github.com/custodia-labs/clir-cli/internal/core/ports/driving"
)

// Ports bundles the driving services the TUI depends on.
type Ports struct {
	Search driving.SearchService
	Index  driving.IndexService
}

// ErrNoSearchService is returned when the TUI is created without a
// search service.
var ErrNoSearchService = errors.New("tui: search service is required")

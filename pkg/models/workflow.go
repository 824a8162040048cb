package models

import "strings"

// NameBreak is the marker inside a workflow name where the display label
// wraps onto a second line.
const NameBreak = "\n"

// Workflow describes one selectable dashboard mode shown as a radial-menu
// segment. Workflows are defined at load time and never created or
// destroyed at runtime.
type Workflow struct {
	// ID is the unique identifier for this workflow.
	ID string `json:"id" yaml:"id"`
	// Name is the display label. It may contain NameBreak to wrap.
	Name string `json:"name" yaml:"name"`
	// Color is the hex color used for the workflow's segment.
	Color string `json:"color" yaml:"color"`
	// Icon is the glyph rendered inside the segment.
	Icon string `json:"icon" yaml:"icon"`
	// Description is a one-line summary shown on hover.
	Description string `json:"description" yaml:"description"`
}

// NameLines returns the display label split at the break marker.
func (w Workflow) NameLines() []string {
	return strings.Split(w.Name, NameBreak)
}

// FlatName returns the display label with break markers replaced by spaces.
func (w Workflow) FlatName() string {
	return strings.ReplaceAll(w.Name, NameBreak, " ")
}

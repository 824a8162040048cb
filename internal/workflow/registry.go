// Package workflow defines the static registry of dashboard workflows
// rendered as radial-menu segments.
package workflow

import (
	"fmt"

	"github.com/paiid/paiid/pkg/models"
)

// defaults is the built-in workflow registry, in menu order starting at the
// top of the ring and proceeding clockwise.
var defaults = []models.Workflow{
	{ID: "morning-routine", Name: "Morning\nRoutine", Color: "#00ACC1", Icon: "☀", Description: "Pre-market checklist and overnight movers"},
	{ID: "active-positions", Name: "Active\nPositions", Color: "#43A047", Icon: "▣", Description: "Open positions and unrealized P&L"},
	{ID: "execute-trade", Name: "Execute\nTrade", Color: "#E53935", Icon: "⇄", Description: "Submit buy and sell orders"},
	{ID: "backtesting", Name: "Backtesting", Color: "#8E24AA", Icon: "↻", Description: "Run strategies against historical data"},
	{ID: "news-review", Name: "News\nReview", Color: "#FB8C00", Icon: "☰", Description: "Market headlines and sentiment"},
	{ID: "ai-recommendations", Name: "AI\nRecs", Color: "#3949AB", Icon: "✦", Description: "AI-generated trade ideas and chat"},
	{ID: "market-scanner", Name: "Market\nScanner", Color: "#00897B", Icon: "◎", Description: "Screen symbols by technical signals"},
	{ID: "pnl-dashboard", Name: "P&L\nDashboard", Color: "#FDD835", Icon: "Σ", Description: "Realized and unrealized performance"},
	{ID: "strategy-builder", Name: "Strategy\nBuilder", Color: "#D81B60", Icon: "⚙", Description: "Compose and save trading strategies"},
	{ID: "settings", Name: "Settings", Color: "#757575", Icon: "⚒", Description: "Profile, watchlists, and trading mode"},
}

// Registry is an immutable, ordered collection of workflows.
type Registry struct {
	workflows []models.Workflow
	byID      map[string]int
}

// NewRegistry returns the built-in workflow registry.
func NewRegistry() *Registry {
	return newRegistry(defaults)
}

func newRegistry(workflows []models.Workflow) *Registry {
	r := &Registry{
		workflows: make([]models.Workflow, len(workflows)),
		byID:      make(map[string]int, len(workflows)),
	}
	copy(r.workflows, workflows)
	for i, w := range r.workflows {
		r.byID[w.ID] = i
	}
	return r
}

// List returns the workflows in menu order. The returned slice is a copy.
func (r *Registry) List() []models.Workflow {
	out := make([]models.Workflow, len(r.workflows))
	copy(out, r.workflows)
	return out
}

// Len returns the number of workflows.
func (r *Registry) Len() int {
	return len(r.workflows)
}

// Get returns the workflow with the given ID.
func (r *Registry) Get(id string) (models.Workflow, bool) {
	i, ok := r.byID[id]
	if !ok {
		return models.Workflow{}, false
	}
	return r.workflows[i], true
}

// Index returns the menu position of the given workflow ID, or -1.
func (r *Registry) Index(id string) int {
	i, ok := r.byID[id]
	if !ok {
		return -1
	}
	return i
}

// At returns the workflow at position i.
func (r *Registry) At(i int) (models.Workflow, error) {
	if i < 0 || i >= len(r.workflows) {
		return models.Workflow{}, fmt.Errorf("workflow index %d out of range [0,%d)", i, len(r.workflows))
	}
	return r.workflows[i], nil
}

package radial

import "github.com/paiid/paiid/pkg/models"

// HoverFunc receives the hovered workflow, or nil when the hover clears.
type HoverFunc func(*models.Workflow)

// SelectFunc receives the selected workflow ID, or the empty string for
// the hub (deselect / return to overview).
type SelectFunc func(id string)

// Machine tracks menu interaction state. Hover is owned locally; the
// selection is owned by the caller and only mirrored here via
// SetSelected, so a click never changes what is rendered until the
// owner pushes the new selection back down.
type Machine struct {
	workflows []models.Workflow
	byID      map[string]int

	hoveredID  string
	selectedID string

	onHover  HoverFunc
	onSelect SelectFunc
}

// NewMachine creates an interaction machine over the given workflows.
func NewMachine(workflows []models.Workflow) *Machine {
	m := &Machine{
		workflows: workflows,
		byID:      make(map[string]int, len(workflows)),
	}
	for i, w := range workflows {
		m.byID[w.ID] = i
	}
	return m
}

// OnHover registers the hover callback.
func (m *Machine) OnHover(fn HoverFunc) { m.onHover = fn }

// OnSelect registers the selection callback.
func (m *Machine) OnSelect(fn SelectFunc) { m.onSelect = fn }

// HoveredID returns the hovered workflow ID, or "".
func (m *Machine) HoveredID() string { return m.hoveredID }

// SelectedID returns the mirrored selection, or "".
func (m *Machine) SelectedID() string { return m.selectedID }

// SetSelected mirrors the owner's selection into the machine.
func (m *Machine) SetSelected(id string) { m.selectedID = id }

// HoverEnter moves the hover onto the given workflow and fires the hover
// callback with its descriptor. Unknown IDs are ignored.
func (m *Machine) HoverEnter(id string) {
	i, ok := m.byID[id]
	if !ok || m.hoveredID == id {
		return
	}
	m.hoveredID = id
	if m.onHover != nil {
		w := m.workflows[i]
		m.onHover(&w)
	}
}

// HoverLeave clears the hover if it is currently on the given workflow
// and fires the hover callback with nil.
func (m *Machine) HoverLeave(id string) {
	if m.hoveredID != id {
		return
	}
	m.hoveredID = ""
	if m.onHover != nil {
		m.onHover(nil)
	}
}

// HoverNext moves the hover clockwise to the next segment, entering the
// first segment when nothing is hovered.
func (m *Machine) HoverNext() {
	m.hoverStep(1)
}

// HoverPrev moves the hover counter-clockwise.
func (m *Machine) HoverPrev() {
	m.hoverStep(-1)
}

func (m *Machine) hoverStep(delta int) {
	if len(m.workflows) == 0 {
		return
	}
	next := 0
	if i, ok := m.byID[m.hoveredID]; ok {
		next = (i + delta + len(m.workflows)) % len(m.workflows)
	} else if delta < 0 {
		next = len(m.workflows) - 1
	}
	m.HoverEnter(m.workflows[next].ID)
}

// Click fires the selection callback with the workflow ID. Local state is
// untouched: the selection only changes when the owner calls SetSelected.
func (m *Machine) Click(id string) {
	if _, ok := m.byID[id]; !ok {
		return
	}
	if m.onSelect != nil {
		m.onSelect(id)
	}
}

// ClickHub fires the selection callback with the empty ID, meaning
// deselect and return to the overview.
func (m *Machine) ClickHub() {
	if m.onSelect != nil {
		m.onSelect("")
	}
}

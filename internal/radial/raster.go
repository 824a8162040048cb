package radial

import "github.com/paiid/paiid/pkg/models"

// Cell is one character cell of the rasterized menu.
type Cell struct {
	// Rune is the glyph, or ' ' for empty cells.
	Rune rune
	// Color is the hex foreground color, empty for unstyled cells.
	Color string
	// Bold marks cells of the selected segment.
	Bold bool
}

// Raster is a character grid rendering of a Layout. Terminal cells are
// roughly twice as tall as wide, so the grid maps a square canvas onto
// width x height cells with the vertical axis compressed.
type Raster struct {
	Width  int
	Height int
	cells  []Cell
}

// fill runes: rested wedges use medium shade, grown wedges full blocks.
const (
	runeBase  = '▒'
	runeGrown = '█'
	runeHub   = '·'
)

// HubLine is one line of the hub overlay, optionally colored.
type HubLine struct {
	Text  string
	Color string
}

// NewRaster renders the menu into a width x height cell grid. hoveredID
// and selectedID grow their segments; hubLines are centered inside the
// hub (the live market overlay).
func NewRaster(l Layout, workflows []models.Workflow, hoveredID, selectedID string, width, height int, hubLines []HubLine) *Raster {
	r := &Raster{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
	for i := range r.cells {
		r.cells[i] = Cell{Rune: ' '}
	}
	if width == 0 || height == 0 || len(l.Segments) == 0 {
		return r
	}

	colors := make(map[string]string, len(workflows))
	for _, w := range workflows {
		colors[w.ID] = w.Color
	}

	// Wedge fill.
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			p := r.cellPoint(l, col, row)
			seg, ok := l.SegmentAt(p, hoveredID, selectedID)
			if !ok {
				if l.HubAt(p) {
					r.set(col, row, Cell{Rune: runeHub, Color: "240"})
				}
				continue
			}
			hovered := seg.ID == hoveredID
			selected := seg.ID == selectedID
			ch := runeBase
			if hovered || selected {
				ch = runeGrown
			}
			r.set(col, row, Cell{Rune: ch, Color: colors[seg.ID], Bold: selected})
		}
	}

	// Icons and labels on top of the fill.
	for i, seg := range l.Segments {
		w := workflows[i]
		icon := []rune(w.Icon)
		if len(icon) > 0 {
			col, row := r.pointCell(l, seg.IconPoint)
			r.set(col, row, Cell{Rune: icon[0], Color: "15", Bold: true})
		}
		r.drawLabel(l, seg, w)
	}

	r.drawHub(l, hubLines)
	return r
}

// At returns the cell at (col, row).
func (r *Raster) At(col, row int) Cell {
	if col < 0 || col >= r.Width || row < 0 || row >= r.Height {
		return Cell{Rune: ' '}
	}
	return r.cells[row*r.Width+col]
}

// CanvasPoint maps a cell coordinate to the layout canvas, for mouse
// hit-testing against Layout.SegmentAt and Layout.HubAt.
func (r *Raster) CanvasPoint(l Layout, col, row int) Point {
	return r.cellPoint(l, col, row)
}

func (r *Raster) set(col, row int, c Cell) {
	if col < 0 || col >= r.Width || row < 0 || row >= r.Height {
		return
	}
	r.cells[row*r.Width+col] = c
}

// cellPoint maps the center of cell (col, row) onto the square canvas.
func (r *Raster) cellPoint(l Layout, col, row int) Point {
	return Point{
		X: (float64(col) + 0.5) * l.Size / float64(r.Width),
		Y: (float64(row) + 0.5) * l.Size / float64(r.Height),
	}
}

// pointCell maps a canvas point back to its cell coordinate.
func (r *Raster) pointCell(l Layout, p Point) (col, row int) {
	col = int(p.X * float64(r.Width) / l.Size)
	row = int(p.Y * float64(r.Height) / l.Size)
	return col, row
}

// drawLabel writes the workflow's wrapped name centered on the label anchor.
func (r *Raster) drawLabel(l Layout, seg Segment, w models.Workflow) {
	lines := w.NameLines()
	col, row := r.pointCell(l, seg.LabelPoint)
	startRow := row - (len(lines)-1)/2
	for i, line := range lines {
		runes := []rune(line)
		start := col - len(runes)/2
		for j, ch := range runes {
			r.set(start+j, startRow+i, Cell{Rune: ch, Color: "15"})
		}
	}
}

// drawHub writes the overlay lines centered in the hub.
func (r *Raster) drawHub(l Layout, lines []HubLine) {
	if len(lines) == 0 {
		return
	}
	centerCol, centerRow := r.pointCell(l, l.Center)
	startRow := centerRow - (len(lines)-1)/2
	for i, line := range lines {
		color := line.Color
		if color == "" {
			color = "15"
		}
		runes := []rune(line.Text)
		start := centerCol - len(runes)/2
		for j, ch := range runes {
			r.set(start+j, startRow+i, Cell{Rune: ch, Color: color, Bold: true})
		}
	}
}

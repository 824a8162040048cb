// Package radial computes the pie-slice geometry of the workflow menu and
// tracks its hover/selection interaction state. The package is pure: no
// I/O, no rendering, no clocks.
package radial

import (
	"math"

	"github.com/paiid/paiid/pkg/models"
)

const (
	// PaddingAngle is the fixed angular gap between adjacent segments,
	// in radians.
	PaddingAngle = 0.02

	// StartAngle is where the first segment begins: the top of the ring.
	StartAngle = -math.Pi / 2

	// innerFraction and outerFraction locate the ring relative to half
	// the canvas size.
	innerFraction = 0.30
	outerFraction = 0.90

	// HoverGrowth and SelectGrowth are the outer-radius deltas applied
	// to hovered and selected segments, in canvas units.
	HoverGrowth  = 10.0
	SelectGrowth = 20.0

	// iconFraction and labelFraction place the icon and label anchors
	// along the segment's bisecting angle, as fractions of the ring span.
	iconFraction  = 0.55
	labelFraction = 0.80

	// hubFraction sizes the center hub relative to the inner radius.
	hubFraction = 0.85
)

// Point is a position on the square canvas, origin at the top-left,
// y increasing downward.
type Point struct {
	X float64
	Y float64
}

// Segment is the computed geometry for one workflow wedge.
type Segment struct {
	// Index is the position in registry order.
	Index int
	// ID is the workflow ID this segment represents.
	ID string
	// StartAngle and EndAngle bound the wedge. Angles increase
	// clockwise on screen; the first segment starts at StartAngle.
	StartAngle float64
	EndAngle   float64
	// MidAngle is the bisecting angle used for anchor placement.
	MidAngle float64
	// InnerRadius and OuterRadius bound the ring at rest.
	InnerRadius float64
	OuterRadius float64
	// IconPoint and LabelPoint are the anchor positions.
	IconPoint  Point
	LabelPoint Point
}

// Span returns the angular width of the segment.
func (s Segment) Span() float64 {
	return s.EndAngle - s.StartAngle
}

// Layout is the full menu geometry for a given canvas size.
type Layout struct {
	// Size is the square canvas edge length.
	Size float64
	// Center is the canvas midpoint.
	Center Point
	// HubRadius is the radius of the clickable center hub.
	HubRadius float64
	// Segments are the wedges in registry order.
	Segments []Segment
}

// Compute lays out one segment per workflow on a square canvas of the
// given size. Segments partition the full circle minus N paddings,
// assigned in input order starting at the top and proceeding clockwise.
func Compute(workflows []models.Workflow, size float64) Layout {
	n := len(workflows)
	center := Point{X: size / 2, Y: size / 2}
	inner := innerFraction * size / 2
	outer := outerFraction * size / 2

	l := Layout{
		Size:      size,
		Center:    center,
		HubRadius: inner * hubFraction,
		Segments:  make([]Segment, 0, n),
	}
	if n == 0 {
		return l
	}

	span := (2*math.Pi - float64(n)*PaddingAngle) / float64(n)
	for i, w := range workflows {
		start := StartAngle + float64(i)*(span+PaddingAngle)
		end := start + span
		mid := (start + end) / 2

		ring := outer - inner
		seg := Segment{
			Index:       i,
			ID:          w.ID,
			StartAngle:  start,
			EndAngle:    end,
			MidAngle:    mid,
			InnerRadius: inner,
			OuterRadius: outer,
			IconPoint:   polar(center, inner+iconFraction*ring, mid),
			LabelPoint:  polar(center, inner+labelFraction*ring, mid),
		}
		l.Segments = append(l.Segments, seg)
	}
	return l
}

// GrownOuterRadius returns the segment's outer radius after hover and
// selection growth. Selection growth dominates hover growth, and the
// result is clamped to half the canvas size so a grown segment never
// escapes the canvas.
func (l Layout) GrownOuterRadius(seg Segment, hovered, selected bool) float64 {
	r := seg.OuterRadius
	switch {
	case selected:
		r += SelectGrowth
	case hovered:
		r += HoverGrowth
	}
	if max := l.Size / 2; r > max {
		r = max
	}
	return r
}

// SegmentAt hit-tests a canvas point against the segments, honoring the
// grown radius of the hovered and selected segments. Returns the segment
// and true when the point falls inside a wedge.
func (l Layout) SegmentAt(p Point, hoveredID, selectedID string) (Segment, bool) {
	dx := p.X - l.Center.X
	dy := p.Y - l.Center.Y
	r := math.Hypot(dx, dy)

	for _, seg := range l.Segments {
		outer := l.GrownOuterRadius(seg, seg.ID == hoveredID, seg.ID == selectedID)
		if r < seg.InnerRadius || r > outer {
			continue
		}
		if angleWithin(math.Atan2(dy, dx), seg.StartAngle, seg.EndAngle) {
			return seg, true
		}
	}
	return Segment{}, false
}

// HubAt reports whether a canvas point falls inside the center hub.
func (l Layout) HubAt(p Point) bool {
	return math.Hypot(p.X-l.Center.X, p.Y-l.Center.Y) <= l.HubRadius
}

// polar converts a radius and angle to a canvas point.
func polar(center Point, radius, angle float64) Point {
	return Point{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}

// angleWithin reports whether angle a (in (-π, π]) lies in [start, end),
// where start may precede -π/2 wrap-around for late segments.
func angleWithin(a, start, end float64) bool {
	// Normalize a into [start, start+2π) before comparing.
	for a < start {
		a += 2 * math.Pi
	}
	for a >= start+2*math.Pi {
		a -= 2 * math.Pi
	}
	return a < end
}

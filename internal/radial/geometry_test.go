package radial

import (
	"fmt"
	"math"
	"testing"

	"github.com/paiid/paiid/pkg/models"
)

func testWorkflows(n int) []models.Workflow {
	ws := make([]models.Workflow, n)
	for i := range ws {
		ws[i] = models.Workflow{
			ID:    fmt.Sprintf("wf-%d", i),
			Name:  fmt.Sprintf("Workflow %d", i),
			Color: "#336699",
			Icon:  "◆",
		}
	}
	return ws
}

func TestComputeSpansSumToFullCircle(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 10, 16} {
		l := Compute(testWorkflows(n), 400)

		if len(l.Segments) != n {
			t.Fatalf("n=%d: expected %d segments, got %d", n, n, len(l.Segments))
		}

		var sum float64
		for _, seg := range l.Segments {
			sum += seg.Span()
		}
		want := 2*math.Pi - float64(n)*PaddingAngle
		if math.Abs(sum-want) > 1e-9 {
			t.Errorf("n=%d: spans sum to %f, want %f", n, sum, want)
		}
	}
}

func TestComputeStartsAtTopInOrder(t *testing.T) {
	ws := testWorkflows(8)
	l := Compute(ws, 400)

	if got := l.Segments[0].StartAngle; math.Abs(got-StartAngle) > 1e-9 {
		t.Errorf("first segment starts at %f, want %f", got, StartAngle)
	}

	for i, seg := range l.Segments {
		if seg.Index != i || seg.ID != ws[i].ID {
			t.Errorf("segment %d out of order: %+v", i, seg)
		}
		if i > 0 {
			prev := l.Segments[i-1]
			gap := seg.StartAngle - prev.EndAngle
			if math.Abs(gap-PaddingAngle) > 1e-9 {
				t.Errorf("gap between segments %d and %d is %f, want %f", i-1, i, gap, PaddingAngle)
			}
		}
	}
}

func TestComputeRadii(t *testing.T) {
	const size = 400.0
	l := Compute(testWorkflows(10), size)

	seg := l.Segments[0]
	if want := 0.30 * size / 2; math.Abs(seg.InnerRadius-want) > 1e-9 {
		t.Errorf("inner radius %f, want %f", seg.InnerRadius, want)
	}
	if want := 0.90 * size / 2; math.Abs(seg.OuterRadius-want) > 1e-9 {
		t.Errorf("outer radius %f, want %f", seg.OuterRadius, want)
	}
	if l.HubRadius <= 0 || l.HubRadius >= seg.InnerRadius {
		t.Errorf("hub radius %f must sit inside the inner radius %f", l.HubRadius, seg.InnerRadius)
	}
}

func TestGrownRadiusOrdering(t *testing.T) {
	l := Compute(testWorkflows(10), 400)
	seg := l.Segments[3]

	base := l.GrownOuterRadius(seg, false, false)
	hovered := l.GrownOuterRadius(seg, true, false)
	selected := l.GrownOuterRadius(seg, true, true)

	if base != seg.OuterRadius {
		t.Errorf("rest radius %f, want %f", base, seg.OuterRadius)
	}
	if !(selected >= hovered && hovered >= base) {
		t.Errorf("radius ordering violated: selected=%f hovered=%f base=%f", selected, hovered, base)
	}
}

func TestGrownRadiusClampedToCanvas(t *testing.T) {
	// Small canvas: growth deltas would push past the edge without clamping.
	const size = 60.0
	l := Compute(testWorkflows(6), size)
	seg := l.Segments[0]

	if r := l.GrownOuterRadius(seg, false, true); r > size/2 {
		t.Errorf("selected radius %f exceeds canvas bound %f", r, size/2)
	}
	if r := l.GrownOuterRadius(seg, true, false); r > size/2 {
		t.Errorf("hovered radius %f exceeds canvas bound %f", r, size/2)
	}
}

func TestAnchorsOnBisector(t *testing.T) {
	l := Compute(testWorkflows(5), 400)
	for _, seg := range l.Segments {
		iconR := math.Hypot(seg.IconPoint.X-l.Center.X, seg.IconPoint.Y-l.Center.Y)
		labelR := math.Hypot(seg.LabelPoint.X-l.Center.X, seg.LabelPoint.Y-l.Center.Y)
		if iconR >= labelR {
			t.Errorf("segment %d: icon anchor (r=%f) must be closer to center than label (r=%f)", seg.Index, iconR, labelR)
		}
		if iconR <= seg.InnerRadius || labelR >= seg.OuterRadius {
			t.Errorf("segment %d: anchors outside the ring", seg.Index)
		}
	}
}

func TestSegmentAt(t *testing.T) {
	l := Compute(testWorkflows(4), 400)

	// Point on the bisector of segment 0, mid-ring.
	seg := l.Segments[0]
	mid := polar(l.Center, (seg.InnerRadius+seg.OuterRadius)/2, seg.MidAngle)

	got, ok := l.SegmentAt(mid, "", "")
	if !ok {
		t.Fatal("expected hit on segment 0")
	}
	if got.ID != seg.ID {
		t.Errorf("hit %q, want %q", got.ID, seg.ID)
	}

	// Center hub is not a segment.
	if _, ok := l.SegmentAt(l.Center, "", ""); ok {
		t.Error("center must not hit a segment")
	}
	if !l.HubAt(l.Center) {
		t.Error("center must hit the hub")
	}

	// Just outside the rest radius hits only while hovered.
	edge := polar(l.Center, seg.OuterRadius+HoverGrowth/2, seg.MidAngle)
	if _, ok := l.SegmentAt(edge, "", ""); ok {
		t.Error("point beyond rest radius must miss at rest")
	}
	if _, ok := l.SegmentAt(edge, seg.ID, ""); !ok {
		t.Error("point beyond rest radius must hit while hovered")
	}
}

func TestComputeEmpty(t *testing.T) {
	l := Compute(nil, 400)
	if len(l.Segments) != 0 {
		t.Errorf("expected no segments, got %d", len(l.Segments))
	}
	if _, ok := l.SegmentAt(Point{X: 10, Y: 10}, "", ""); ok {
		t.Error("empty layout must not hit")
	}
}

package path

import (
	"math"
	"testing"
)

func TestFlattenLinesRoundTrip(t *testing.T) {
	elems := []PathElement{
		MoveTo{Point{0, 0}},
		LineTo{Point{10, 0}},
		LineTo{Point{10, 10}},
	}
	polys := Flatten(elems)
	if len(polys) != 1 {
		t.Fatalf("expected 1 polygon, got %d", len(polys))
	}
	want := []Point{{0, 0}, {10, 0}, {10, 10}}
	if len(polys[0]) != len(want) {
		t.Fatalf("got %d points, want %d", len(polys[0]), len(want))
	}
	for i, p := range want {
		if polys[0][i] != p {
			t.Errorf("point %d: got %v want %v", i, polys[0][i], p)
		}
	}
}

func TestFlattenClosePathAddsClosingVertex(t *testing.T) {
	elems := []PathElement{
		MoveTo{Point{0, 0}},
		LineTo{Point{10, 0}},
		LineTo{Point{10, 10}},
		Close{},
	}
	polys := Flatten(elems)
	if len(polys) != 1 {
		t.Fatalf("expected 1 polygon, got %d", len(polys))
	}
	last := polys[0][len(polys[0])-1]
	if last != (Point{0, 0}) {
		t.Errorf("closing vertex = %v, want (0,0)", last)
	}
}

func TestFlattenMultipleSubpaths(t *testing.T) {
	elems := []PathElement{
		MoveTo{Point{0, 0}},
		LineTo{Point{1, 0}},
		MoveTo{Point{5, 5}},
		LineTo{Point{6, 5}},
	}
	polys := Flatten(elems)
	if len(polys) != 2 {
		t.Fatalf("expected 2 polygons, got %d", len(polys))
	}
}

func TestFlattenArcZeroRadiusProducesNothing(t *testing.T) {
	elems := []PathElement{
		ArcElem{Center: Point{0, 0}, R: 0, Theta0: 0, Theta1: math.Pi},
	}
	polys := Flatten(elems)
	if len(polys) != 0 {
		t.Fatalf("expected no polygons, got %d", len(polys))
	}
}

func TestFlattenEllipseZeroAxisProducesNothing(t *testing.T) {
	elems := []PathElement{
		EllipseElem{Center: Point{0, 0}, Rx: 0, Ry: 5, Theta0: 0, Theta1: math.Pi},
	}
	if polys := Flatten(elems); len(polys) != 0 {
		t.Fatalf("expected no polygons, got %d", len(polys))
	}
}

func TestFlattenArcFullCircleEndpointsMatch(t *testing.T) {
	elems := []PathElement{
		ArcElem{Center: Point{0, 0}, R: 10, Theta0: 0, Theta1: 2 * math.Pi},
	}
	polys := Flatten(elems)
	if len(polys) != 1 {
		t.Fatalf("expected 1 polygon, got %d", len(polys))
	}
	poly := polys[0]
	first, last := poly[0], poly[len(poly)-1]
	if math.Abs(first.X-last.X) > 1e-6 || math.Abs(first.Y-last.Y) > 1e-6 {
		t.Errorf("full-circle arc endpoints differ: %v vs %v", first, last)
	}
}

func TestFlattenQuadFlatnessWithinTolerance(t *testing.T) {
	elems := []PathElement{
		MoveTo{Point{0, 0}},
		QuadTo{Control: Point{50, 100}, Point: Point{100, 0}},
	}
	poly := Flatten(elems)[0]
	for i := 1; i < len(poly)-1; i++ {
		if d := distanceToChord(poly[i], Point{0, 0}, Point{100, 0}); d > 200 {
			t.Errorf("point %d implausibly far from chord: %v", i, d)
		}
	}
	// Every consecutive chord segment must approximate the curve within
	// tolerance of the true curve (spot check: endpoints reached).
	last := poly[len(poly)-1]
	if last != (Point{100, 0}) {
		t.Errorf("last point = %v, want (100,0)", last)
	}
}

func TestFlattenArcToDegenerateFallsBackToLine(t *testing.T) {
	elems := []PathElement{
		MoveTo{Point{0, 0}},
		ArcToElem{P1: Point{10, 0}, P2: Point{10, 10}, R: 0},
	}
	poly := Flatten(elems)[0]
	if len(poly) != 2 || poly[1] != (Point{10, 0}) {
		t.Errorf("expected degenerate arcTo to behave as LineTo(10,0), got %v", poly)
	}
}

func TestFlattenArcToProducesTangentArc(t *testing.T) {
	elems := []PathElement{
		MoveTo{Point{0, 0}},
		ArcToElem{P1: Point{10, 0}, P2: Point{10, 10}, R: 2},
		LineTo{Point{10, 10}},
	}
	poly := Flatten(elems)[0]
	if len(poly) < 4 {
		t.Fatalf("expected arc geometry, got %d points: %v", len(poly), poly)
	}
}

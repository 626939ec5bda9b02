package raster

import "testing"

func TestRectFillCoversExtent(t *testing.T) {
	s := newFakeSurface(10, 10)
	w := NewPixelWriter(s, nil, Color{R: 1, A: 255})
	RectFill(w, 2, 2, 4, 3)
	for y := 2; y < 5; y++ {
		for x := 2; x < 6; x++ {
			if s.GetPixel(x, y).A == 0 {
				t.Fatalf("expected (%d,%d) filled", x, y)
			}
		}
	}
	if s.GetPixel(6, 2).A != 0 {
		t.Error("expected pixel just past right edge untouched")
	}
}

func TestRectStroke1pxCornersOnce(t *testing.T) {
	s := newFakeSurface(10, 10)
	w := NewPixelWriter(s, nil, Color{R: 1, A: 255})
	RectStroke1px(w, 1, 1, 5, 5)
	if s.GetPixel(1, 1).A == 0 {
		t.Error("expected top-left corner drawn")
	}
	if s.GetPixel(3, 3).A != 0 {
		t.Error("expected interior pixel untouched by stroke")
	}
}

func TestCircleFillGridCentered(t *testing.T) {
	s := newFakeSurface(20, 20)
	w := NewPixelWriter(s, nil, Color{R: 1, A: 255})
	CircleFill(w, 10, 10, 5)
	if s.GetPixel(10, 10).A == 0 {
		t.Error("expected center pixel filled")
	}
	if s.GetPixel(19, 19).A != 0 {
		t.Error("expected far corner untouched")
	}
}

func TestCircleStrokeThinDraws8Fold(t *testing.T) {
	s := newFakeSurface(20, 20)
	w := NewPixelWriter(s, nil, Color{R: 1, A: 255})
	CircleStrokeThin(w, 10, 10, 5)
	if s.GetPixel(15, 10).A == 0 {
		t.Error("expected rightmost point of circle drawn")
	}
	if s.GetPixel(10, 10).A != 0 {
		t.Error("expected center untouched by a stroke-only circle")
	}
}

func TestCircleStrokeThickProducesAnnulus(t *testing.T) {
	s := newFakeSurface(30, 30)
	w := NewPixelWriter(s, nil, Color{R: 1, A: 255})
	CircleStrokeThick(w, 15, 15, 10, 4)
	if s.GetPixel(15, 15).A != 0 {
		t.Error("expected hollow center for thick stroke")
	}
	if s.GetPixel(15, 5).A == 0 {
		t.Error("expected top of annulus drawn")
	}
}

func TestThickLineDegenerateFillsSquare(t *testing.T) {
	s := newFakeSurface(10, 10)
	w := NewPixelWriter(s, nil, Color{R: 1, A: 255})
	ThickLine(w, 5, 5, 5, 5, 4)
	if s.GetPixel(5, 5).A == 0 {
		t.Error("expected degenerate line to fill a square at the point")
	}
}

func TestThickLineDiagonal(t *testing.T) {
	s := newFakeSurface(20, 20)
	w := NewPixelWriter(s, nil, Color{R: 1, A: 255})
	ThickLine(w, 2, 2, 17, 17, 3)
	if s.GetPixel(9, 9).A == 0 {
		t.Error("expected midpoint of thick line covered")
	}
}

func TestQuadFillRotatedSquare(t *testing.T) {
	s := newFakeSurface(20, 20)
	w := NewPixelWriter(s, nil, Color{R: 1, A: 255})
	quad := [4]Point{{10, 2}, {18, 10}, {10, 18}, {2, 10}}
	QuadFill(w, quad)
	if s.GetPixel(10, 10).A == 0 {
		t.Error("expected center of rotated square filled")
	}
	if s.GetPixel(1, 1).A != 0 {
		t.Error("expected corner outside rotated square untouched")
	}
}

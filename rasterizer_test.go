package rasterx

import "testing"

func mustSurface(t *testing.T, w, h int) *Surface {
	t.Helper()
	s, err := NewSurface(w, h)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	return s
}

func TestScenarioS1OpaqueRectFill(t *testing.T) {
	s := mustSurface(t, 10, 10)
	r := NewRasterizer(s)
	r.BeginOp(OpParams{
		Composite: CompositeSourceOver, GlobalAlpha: 1, SubPixelOpacity: 1,
		Transform: Identity(),
	})
	if err := r.FillRect(2, 3, 4, 2, Color{R: 255, A: 255}); err != nil {
		t.Fatalf("FillRect: %v", err)
	}
	r.EndOp()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x <= 5 && y >= 3 && y <= 4
			got := s.GetPixel(x, y)
			if inside {
				if got != (Color{R: 255, A: 255}) {
					t.Errorf("pixel (%d,%d): got %v, want red", x, y, got)
				}
			} else if got != (Color{}) {
				t.Errorf("pixel (%d,%d): got %v, want transparent", x, y, got)
			}
		}
	}
}

func TestScenarioS2EvenOddDonut(t *testing.T) {
	s := mustSurface(t, 20, 20)
	white := Color{R: 255, G: 255, B: 255, A: 255}
	s.Clear(white)

	r := NewRasterizer(s)
	r.BeginOp(OpParams{
		Composite: CompositeSourceOver, GlobalAlpha: 1, SubPixelOpacity: 1,
		Transform: Identity(), FillStyle: SolidColor{Color: Black},
	})
	path := NewPath()
	path.RectOp(2, 2, 16, 16)
	path.RectOp(6, 6, 8, 8)
	if err := r.Fill(path, FillRuleEvenOdd); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	black := Color{A: 255}
	r.BeginOp(OpParams{
		Composite: CompositeSourceOver, GlobalAlpha: 1, SubPixelOpacity: 1,
		Transform: Identity(), FillStyle: SolidColor{Color: black},
	})
	path2 := NewPath()
	path2.RectOp(2, 2, 16, 16)
	path2.RectOp(6, 6, 8, 8)
	if err := r.Fill(path2, FillRuleEvenOdd); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	r.EndOp()

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			inOuter := x >= 2 && x < 18 && y >= 2 && y < 18
			inInner := x >= 6 && x < 14 && y >= 6 && y < 14
			want := white
			if inOuter && !inInner {
				want = black
			}
			if got := s.GetPixel(x, y); got != want {
				t.Errorf("pixel (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestScenarioS3ClipIntersection(t *testing.T) {
	s := mustSurface(t, 100, 100)
	r := NewRasterizer(s)

	r.BeginOp(OpParams{Composite: CompositeSourceOver, GlobalAlpha: 1, SubPixelOpacity: 1, Transform: Identity()})
	clipA := NewPath()
	clipA.RectOp(10, 10, 40, 40)
	if err := r.Clip(clipA, FillRuleNonZero); err != nil {
		t.Fatalf("Clip: %v", err)
	}
	clipB := NewPath()
	clipB.RectOp(30, 30, 40, 40)
	if err := r.Clip(clipB, FillRuleNonZero); err != nil {
		t.Fatalf("Clip: %v", err)
	}

	red := Color{R: 255, A: 255}
	r.BeginOp(OpParams{
		Composite: CompositeSourceOver, GlobalAlpha: 1, SubPixelOpacity: 1,
		Transform: Identity(), FillStyle: SolidColor{Color: red},
	})
	if err := r.FillRect(0, 0, 100, 100, red); err != nil {
		t.Fatalf("FillRect: %v", err)
	}
	r.EndOp()

	for y := 0; y < 100; y += 5 {
		for x := 0; x < 100; x += 5 {
			inside := x >= 30 && x < 50 && y >= 30 && y < 50
			got := s.GetPixel(x, y)
			if inside {
				if got != red {
					t.Errorf("pixel (%d,%d): got %v, want red", x, y, got)
				}
			} else if got != (Color{}) {
				t.Errorf("pixel (%d,%d): got %v, want transparent", x, y, got)
			}
		}
	}
}

func TestScenarioS4OpaqueCircleStroke(t *testing.T) {
	s := mustSurface(t, 50, 50)
	r := NewRasterizer(s)
	stroke := Color{G: 255, A: 255}
	r.BeginOp(OpParams{Composite: CompositeSourceOver, GlobalAlpha: 1, SubPixelOpacity: 1, Transform: Identity()})
	if err := r.StrokeCircle(25, 25, 10, 1, stroke); err != nil {
		t.Fatalf("StrokeCircle: %v", err)
	}
	r.EndOp()

	if got := s.GetPixel(35, 25); got != stroke {
		t.Errorf("boundary pixel (35,25): got %v, want %v", got, stroke)
	}
	if got := s.GetPixel(25, 25); got != (Color{}) {
		t.Errorf("center pixel (25,25): got %v, want transparent", got)
	}
}

func TestScenarioS5SemiTransparentCircleStrokeNoDoubleBlend(t *testing.T) {
	s := mustSurface(t, 50, 50)
	white := Color{R: 255, G: 255, B: 255, A: 255}
	s.Clear(white)

	r := NewRasterizer(s)
	strokeColor := Color{R: 255, A: 128}
	r.BeginOp(OpParams{Composite: CompositeSourceOver, GlobalAlpha: 1, SubPixelOpacity: 1, Transform: Identity()})
	if err := r.StrokeCircle(25, 25, 10, 1, strokeColor); err != nil {
		t.Fatalf("StrokeCircle: %v", err)
	}
	r.EndOp()

	want := blendSourceOver(strokeColor, white)
	if got := s.GetPixel(35, 25); got != want {
		t.Errorf("boundary pixel (35,25): got %v, want single blend %v (no double blend)", got, want)
	}
}

func TestScenarioS6AlphaCompositingDeterminism(t *testing.T) {
	s := mustSurface(t, 1, 1)
	white := Color{R: 255, G: 255, B: 255, A: 255}
	s.Clear(white)

	r := NewRasterizer(s)
	c := Color{B: 255, A: 128}

	for i := 0; i < 2; i++ {
		r.BeginOp(OpParams{Composite: CompositeSourceOver, GlobalAlpha: 1, SubPixelOpacity: 1, Transform: Identity()})
		if err := r.FillRect(0, 0, 1, 1, c); err != nil {
			t.Fatalf("FillRect: %v", err)
		}
		r.EndOp()
	}

	want := blendSourceOver(c, blendSourceOver(c, white))
	if got := s.GetPixel(0, 0); got != want {
		t.Errorf("got %v, want %v (two sequential source-over blends)", got, want)
	}
}

func TestMissingBeginOpRejectsDrawCalls(t *testing.T) {
	s := mustSurface(t, 4, 4)
	r := NewRasterizer(s)
	if err := r.FillRect(0, 0, 1, 1, Black); err != ErrMissingBeginOp {
		t.Errorf("FillRect without BeginOp: got %v, want ErrMissingBeginOp", err)
	}
	path := NewPath()
	path.RectOp(0, 0, 1, 1)
	if err := r.Fill(path, FillRuleNonZero); err != ErrMissingBeginOp {
		t.Errorf("Fill without BeginOp: got %v, want ErrMissingBeginOp", err)
	}
	if err := r.Clip(path, FillRuleNonZero); err != ErrMissingBeginOp {
		t.Errorf("Clip without BeginOp: got %v, want ErrMissingBeginOp", err)
	}
}

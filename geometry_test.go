package gridpaper

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func mustGrid(t *testing.T, paper PaperSize, m Margins, spacing float64) Grid {
	t.Helper()
	g, err := ComputeGrid(paper, m, spacing)
	if err != nil {
		t.Fatalf("ComputeGrid(%s, %+v, %g): %v", paper.Name, m, spacing, err)
	}
	return g
}

func assertInside(t *testing.T, g Grid) {
	t.Helper()
	area := g.Printable()
	for i, x := range g.Vertical {
		if x < area.MinX || x > area.MaxX {
			t.Fatalf("vertical[%d]=%g outside [%g, %g]", i, x, area.MinX, area.MaxX)
		}
	}
	for i, y := range g.Horizontal {
		if y < area.MinY || y > area.MaxY {
			t.Fatalf("horizontal[%d]=%g outside [%g, %g]", i, y, area.MinY, area.MaxY)
		}
	}
}

func assertUniform(t *testing.T, positions []float64, spacing float64) {
	t.Helper()
	for i := 1; i < len(positions); i++ {
		if d := positions[i] - positions[i-1]; math.Abs(d-spacing) > 1e-9 {
			t.Fatalf("gap %d is %g, want %g", i, d, spacing)
		}
	}
}

func TestComputeGridExactMultiple(t *testing.T) {
	g := mustGrid(t, Letter, UniformMargins(36), 36)
	wantV := make([]float64, 16)
	for i := range wantV {
		wantV[i] = 36 + float64(i)*36
	}
	if diff := cmp.Diff(wantV, g.Vertical, approx); diff != "" {
		t.Fatalf("vertical positions mismatch (-want +got):\n%s", diff)
	}
	if len(g.Horizontal) != 21 {
		t.Fatalf("expected 21 horizontal lines, got %d", len(g.Horizontal))
	}
	if last := g.Horizontal[len(g.Horizontal)-1]; last != 792-36 {
		t.Fatalf("expected last horizontal line on the bottom margin, got %g", last)
	}
	want := Rect{MinX: 36, MinY: 36, MaxX: 576, MaxY: 756}
	if g.Bounds != want {
		t.Fatalf("bounds = %+v, want %+v", g.Bounds, want)
	}
}

func TestComputeGridLineCounts(t *testing.T) {
	cases := []struct {
		name    string
		paper   PaperSize
		margins Margins
		spacing float64
	}{
		{"letter-default", Letter, DefaultMargins(), 15},
		{"a4-default", A4, DefaultMargins(), 15},
		{"a4-zero-margins", A4, Margins{}, 10},
		{"letter-odd", Letter, Margins{Top: 12.5, Bottom: 7, Left: 3, Right: 50}, 7.3},
		{"a4-fine", A4, UniformMargins(18), 2.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, tc.paper, tc.margins, tc.spacing)
			area := g.Printable()
			wantV := int(math.Floor(area.Width()/tc.spacing)) + 1
			wantH := int(math.Floor(area.Height()/tc.spacing)) + 1
			if len(g.Vertical) != wantV {
				t.Fatalf("vertical count = %d, want %d", len(g.Vertical), wantV)
			}
			if len(g.Horizontal) != wantH {
				t.Fatalf("horizontal count = %d, want %d", len(g.Horizontal), wantH)
			}
			if g.Vertical[0] != tc.margins.Left || g.Horizontal[0] != tc.margins.Top {
				t.Fatalf("first lines = (%g, %g), want near margins", g.Vertical[0], g.Horizontal[0])
			}
			assertInside(t, g)
			assertUniform(t, g.Vertical, tc.spacing)
			assertUniform(t, g.Horizontal, tc.spacing)
		})
	}
}

func TestComputeGridKeepsFarLineDespiteFloatDrift(t *testing.T) {
	paper := PaperSize{Name: "unit", Width: 1, Height: 1}
	g := mustGrid(t, paper, UniformMargins(0.15), 0.1)
	if len(g.Vertical) != 8 {
		t.Fatalf("expected 8 vertical lines, got %d: %v", len(g.Vertical), g.Vertical)
	}
	if last := g.Vertical[len(g.Vertical)-1]; last > 0.85 {
		t.Fatalf("last line %g past the far margin", last)
	}
	assertInside(t, g)
}

func TestComputeGridIsDeterministic(t *testing.T) {
	first := mustGrid(t, A4, DefaultMargins(), 14.17)
	second := mustGrid(t, A4, DefaultMargins(), 14.17)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated ComputeGrid differs (-first +second):\n%s", diff)
	}
}

func TestComputeGridSpacingLargerThanArea(t *testing.T) {
	g := mustGrid(t, Letter, DefaultMargins(), 5000)
	if diff := cmp.Diff([]float64{40}, g.Vertical); diff != "" {
		t.Fatalf("vertical mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{30}, g.Horizontal); diff != "" {
		t.Fatalf("horizontal mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeGridRejectsBadInput(t *testing.T) {
	cases := []struct {
		name    string
		paper   PaperSize
		margins Margins
		spacing float64
	}{
		{"zero-spacing", Letter, DefaultMargins(), 0},
		{"negative-spacing", Letter, DefaultMargins(), -3},
		{"nan-spacing", Letter, DefaultMargins(), math.NaN()},
		{"inf-spacing", Letter, DefaultMargins(), math.Inf(1)},
		{"tiny-spacing", Letter, DefaultMargins(), 1e-12},
		{"subnormal-spacing", Letter, DefaultMargins(), 5e-324},
		{"negative-margin", Letter, Margins{Top: -1}, 10},
		{"nan-margin", Letter, Margins{Left: math.NaN()}, 10},
		{"horizontal-overflow", Letter, Margins{Left: 400, Right: 300}, 10},
		{"vertical-overflow", A4, Margins{Top: 500, Bottom: 400}, 10},
		{"no-printable-width", Letter, Margins{Left: 306, Right: 306}, 10},
		{"empty-paper", PaperSize{Name: "none"}, Margins{}, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeGrid(tc.paper, tc.margins, tc.spacing)
			if !errors.Is(err, ErrConfig) {
				t.Fatalf("expected ErrConfig, got %v", err)
			}
		})
	}
}

func TestComputeGridLineCapBoundary(t *testing.T) {
	paper := PaperSize{Name: "cap", Width: MaxLinesPerAxis, Height: 10}
	g := mustGrid(t, paper, Margins{}, 1.0001)
	if len(g.Vertical) > MaxLinesPerAxis {
		t.Fatalf("expected at most %d vertical lines, got %d", MaxLinesPerAxis, len(g.Vertical))
	}
	if _, err := ComputeGrid(paper, Margins{}, 1); !errors.Is(err, ErrConfig) {
		t.Fatalf("expected ErrConfig at the line cap, got %v", err)
	}
}

func TestGridLinesSpanBounds(t *testing.T) {
	g := mustGrid(t, Letter, UniformMargins(36), 36)
	lines := g.Lines()
	if len(lines) != len(g.Vertical)+len(g.Horizontal) {
		t.Fatalf("expected %d lines, got %d", len(g.Vertical)+len(g.Horizontal), len(lines))
	}
	majors := 0
	for _, l := range lines {
		vertical := l.X1 == l.X2
		horizontal := l.Y1 == l.Y2
		switch {
		case vertical && (l.Y1 != 36 || l.Y2 != 756):
			t.Fatalf("vertical line %+v does not span the margins", l)
		case horizontal && (l.X1 != 36 || l.X2 != 576):
			t.Fatalf("horizontal line %+v does not span the margins", l)
		case !vertical && !horizontal:
			t.Fatalf("diagonal line %+v", l)
		}
		if l.Kind == LineMajor {
			majors++
		}
	}
	// 16 vertical lines -> 0,5,10,15; 21 horizontal lines -> 0,5,10,15,20.
	if majors != 9 {
		t.Fatalf("expected 9 major lines, got %d", majors)
	}
}

func TestIsMajor(t *testing.T) {
	g := Grid{MajorInterval: 4}
	for i, want := range []bool{true, false, false, false, true, false} {
		if got := g.IsMajor(i); got != want {
			t.Fatalf("IsMajor(%d) = %v, want %v", i, got, want)
		}
	}
	g.MajorInterval = 1
	if !g.IsMajor(3) {
		t.Fatalf("interval 1 should make every line major")
	}
}

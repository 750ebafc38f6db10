package render

import (
	"errors"
	"math"
	"testing"
)

func TestNewLayoutA4Square(t *testing.T) {
	l, err := NewLayout(PageWidthA4, PageHeightA4, 0.5*Inch, SquareCard)
	if err != nil {
		t.Fatal(err)
	}
	if l.Cols != 2 || l.Rows != 4 {
		t.Fatalf("grid = %dx%d, want 2x4", l.Cols, l.Rows)
	}
	if l.CardsPerPage() != 8 {
		t.Fatalf("CardsPerPage = %d, want 8", l.CardsPerPage())
	}
	// grid is centered
	wantX := (PageWidthA4 - 2*SquareCard.Width) / 2
	wantY := (PageHeightA4 - 4*SquareCard.Height) / 2
	if math.Abs(l.OriginX-wantX) > 1e-9 || math.Abs(l.OriginY-wantY) > 1e-9 {
		t.Fatalf("origin = (%f,%f), want (%f,%f)", l.OriginX, l.OriginY, wantX, wantY)
	}
}

func TestNewLayoutDeterministic(t *testing.T) {
	a, err1 := NewLayout(PageWidthA4, PageHeightA4, 0.5*Inch, CardGeometry{Width: 2.5 * Inch, Height: 3.5 * Inch})
	b, err2 := NewLayout(PageWidthA4, PageHeightA4, 0.5*Inch, CardGeometry{Width: 2.5 * Inch, Height: 3.5 * Inch})
	if err1 != nil || err2 != nil {
		t.Fatal(err1, err2)
	}
	if a != b {
		t.Fatalf("same inputs produced different layouts: %+v vs %+v", a, b)
	}
}

func TestNewLayoutCardTooLarge(t *testing.T) {
	_, err := NewLayout(100, 100, 10, CardGeometry{Width: 90, Height: 90})
	if !errors.Is(err, ErrCardTooLarge) {
		t.Fatalf("err = %v, want ErrCardTooLarge", err)
	}
}

func TestFrontFillsTopRowFirst(t *testing.T) {
	l, err := NewLayout(PageWidthA4, PageHeightA4, 0.5*Inch, SquareCard)
	if err != nil {
		t.Fatal(err)
	}
	_, y0 := l.FrontPosition(0)
	_, yLast := l.FrontPosition(l.CardsPerPage() - 1)
	if y0 <= yLast {
		t.Fatalf("index 0 should sit on the top row (y=%f) above the last index (y=%f)", y0, yLast)
	}
	x0, _ := l.FrontPosition(0)
	x1, _ := l.FrontPosition(1)
	if x1 <= x0 {
		t.Fatalf("cards should fill left to right: x0=%f x1=%f", x0, x1)
	}
}

func TestBackPositionMirrorsColumns(t *testing.T) {
	for _, card := range []CardGeometry{SquareCard, {Width: 2.5 * Inch, Height: 3.5 * Inch}} {
		l, err := NewLayout(PageWidthA4, PageHeightA4, 0.5*Inch, card)
		if err != nil {
			t.Fatal(err)
		}
		for idx := 0; idx < l.CardsPerPage(); idx++ {
			fx, fy := l.FrontPosition(idx)
			bx, by := l.BackPosition(idx)
			if fy != by {
				t.Errorf("index %d: front y %f != back y %f", idx, fy, by)
			}
			col := int((fx - l.OriginX) / card.Width)
			mirrored := l.OriginX + float64(l.Cols-1-col)*card.Width
			if math.Abs(bx-mirrored) > 1e-9 {
				t.Errorf("index %d: back x = %f, want mirror %f", idx, bx, mirrored)
			}
		}
	}
}

func TestMirrorIsInvolution(t *testing.T) {
	l, err := NewLayout(PageWidthA4, PageHeightA4, 0.5*Inch, SquareCard)
	if err != nil {
		t.Fatal(err)
	}
	// mirroring the mirrored column lands back on the front column
	for idx := 0; idx < l.CardsPerPage(); idx++ {
		col := idx % l.Cols
		if got := l.Cols - 1 - (l.Cols - 1 - col); got != col {
			t.Fatalf("mirror not an involution for col %d", col)
		}
	}
}

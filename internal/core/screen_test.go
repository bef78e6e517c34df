package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X', ColorRed)
	if s.Get(3, 2) != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", s.Get(3, 2))
	}
	if s.GetCell(3, 2).Color != ColorRed {
		t.Error("GetCell(3, 2) should carry the color it was set with")
	}

	// Out of bounds is silently ignored / returns blank
	s.Set(-1, 0, 'Y', ColorRed)
	s.Set(10, 0, 'Y', ColorRed)
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'X', ColorRed)
	s.Clear()

	if s.Get(1, 1) != ' ' {
		t.Error("Clear should reset cells to spaces")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'X', ColorRed)

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("Resize() = %dx%d, expected 20x10", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'X' {
		t.Error("Resize should preserve content where possible")
	}

	s.Resize(2, 2)
	if s.Get(2, 2) != ' ' {
		t.Error("shrinking should drop content outside the new bounds")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi", ColorWhite)

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText should place runes left to right")
	}

	// Clipped at the right edge
	s.DrawText(9, 0, "ab", ColorWhite)
	if s.Get(9, 0) != 'a' {
		t.Error("first rune should land on the last column")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc", ColorWhite)

	if !strings.Contains(s.Row(1), "abc") {
		t.Errorf("Row(1) = %q, expected to contain \"abc\"", s.Row(1))
	}
	if s.Get(4, 1) != 'a' {
		t.Errorf("centered text should start at column 4, got %q there", s.Get(4, 1))
	}
}

func TestScreenFillCells(t *testing.T) {
	s := NewScreen(6, 4)
	s.FillCells(1, 1, 3, 2, '#', ColorYellow)

	for y := 1; y < 3; y++ {
		for x := 1; x < 4; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("cell (%d, %d) = %q, expected '#'", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(0, 0) != ' ' {
		t.Error("cells outside the filled area should stay blank")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a', ColorWhite)
	s.Set(2, 1, 'b', ColorWhite)

	if got, want := s.String(), "a  \n  b"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(3, 4, '*', ColorBrightRed)

	cell := s.GetCell(3, 4)
	if cell.Rune != '*' {
		t.Errorf("GetCell(3, 4).Rune = %q, expected '*'", cell.Rune)
	}
	if cell.Color != ColorBrightRed {
		t.Errorf("GetCell(3, 4).Color = %d, expected ColorBrightRed", cell.Color)
	}

	// Default color via Set
	s.Set(1, 1, 'o')
	if got := s.GetCell(1, 1).Color; got != ColorDefault {
		t.Errorf("Set should use default color, got %d", got)
	}

	// Out of bounds returns a default cell
	empty := s.GetCell(-1, -1)
	if empty.Rune != ' ' || empty.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell = %+v", empty)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawRect(NewRect(0, 0, 10, 10), 'X', ColorGreen)
	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("Clear() left %+v at (%d, %d)", cell, x, y)
			}
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetCell(2, 2, 'K', ColorCyan)

	s.Resize(20, 5)

	if s.Width() != 20 || s.Height() != 5 {
		t.Errorf("Resize() dimensions = %dx%d, expected 20x5", s.Width(), s.Height())
	}

	// Content within the new bounds survives, colors included.
	cell := s.GetCell(2, 2)
	if cell.Rune != 'K' || cell.Color != ColorCyan {
		t.Errorf("Resize() lost content: %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "HELLO")
	if !strings.Contains(s.Row(1), "HELLO") {
		t.Errorf("Row(1) = %q, expected to contain HELLO", s.Row(1))
	}

	// Clipped text should not panic and should draw the visible part.
	s.DrawText(18, 2, "WORLD")
	if s.Get(18, 2) != 'W' || s.Get(19, 2) != 'O' {
		t.Error("Clipped DrawText did not draw visible prefix")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawTextCentered(2, "HI")
	if s.Get(9, 2) != 'H' || s.Get(10, 2) != 'I' {
		t.Errorf("DrawTextCentered misplaced text: row = %q", s.Row(2))
	}
}

func TestScreenStrokeRect(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(1, 1, 5, 4)

	s.StrokeRect(r, '#', ColorYellow)

	// Corners and edges are stroked
	for _, pt := range [][2]int{{1, 1}, {5, 1}, {1, 4}, {5, 4}, {3, 1}, {1, 2}} {
		if s.Get(pt[0], pt[1]) != '#' {
			t.Errorf("StrokeRect missing stroke at (%d, %d)", pt[0], pt[1])
		}
	}

	// Interior is untouched
	if s.Get(3, 2) != ' ' {
		t.Error("StrokeRect filled the interior")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")

	if got := s.Row(0); got != "abcd" {
		t.Errorf("Row(0) = %q", got)
	}
	if got := s.Row(5); got != "    " {
		t.Errorf("Out of bounds Row should be blank, got %q", got)
	}
}

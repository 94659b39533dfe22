package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(2, 3, '@', ColorGreen)

	c := s.GetCell(2, 3)
	if c.Rune != '@' || c.Color != ColorGreen {
		t.Errorf("GetCell(2, 3) = %+v, expected '@' in green", c)
	}

	// Plain Set resets the color.
	s.Set(2, 3, '#')
	if c := s.GetCell(2, 3); c.Color != ColorDefault {
		t.Errorf("Set should use the default color, got %v", c.Color)
	}

	for _, p := range []Point{{-1, 0}, {5, 0}, {0, -1}, {0, 5}} {
		s.SetColored(p.X, p.Y, 'X', ColorRed)
		if s.Get(p.X, p.Y) != ' ' {
			t.Errorf("out of bounds Get(%d, %d) should be a space", p.X, p.Y)
		}
	}
}

func TestScreenDrawTextClipsAndCounts(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColored(7, 0, "Hello", ColorCyan)

	if got := s.Row(0); got != "       Hel" {
		t.Errorf("Row(0) = %q", got)
	}
	if s.GetCell(8, 0).Color != ColorCyan {
		t.Error("text color not applied")
	}

	// Multi-byte runes occupy one cell each.
	s.DrawText(0, 1, "█▓░")
	if s.Get(1, 1) != '▓' || s.Get(2, 1) != '░' {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "Hi")

	if s.Get(9, 1) != 'H' || s.Get(10, 1) != 'i' {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
}

func TestScreenDrawRectAndBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRectColored(NewRect(2, 2, 3, 3), '#', ColorYellow)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorYellow {
				t.Fatalf("cell (%d, %d) = %+v", x, y, c)
			}
		}
	}
	if s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not touch cells outside the rect")
	}

	s.Clear()
	s.DrawBox(NewRect(1, 1, 5, 4))
	corners := map[Point]rune{{1, 1}: '┌', {5, 1}: '┐', {1, 4}: '└', {5, 4}: '┘'}
	for p, want := range corners {
		if got := s.Get(p.X, p.Y); got != want {
			t.Errorf("corner %v = %q, expected %q", p, got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenDrawMessageBox(t *testing.T) {
	s := NewScreen(40, 10)
	s.DrawMessageBox(ColorRed, "GAME OVER", "", "Press R")

	if !s.Contains("GAME OVER") || !s.Contains("Press R") {
		t.Fatalf("message missing:\n%s", s.String())
	}
	// Three lines plus border rows are vertically centered.
	if !strings.Contains(s.Row(3), "GAME OVER") {
		t.Errorf("title expected on row 3, screen:\n%s", s.String())
	}
}

func TestScreenDrawHeader(t *testing.T) {
	s := NewScreen(8, 3)
	s.DrawHeader("Score 1", ColorWhite)

	if s.Row(0) != "Score 1 " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	if s.Row(1) != strings.Repeat("─", 8) {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Row(0) = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Row(0) after enlarge = %q", s.Row(0))
	}
	if s.Row(-1) != strings.Repeat(" ", 15) {
		t.Error("out of range row should be blank")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	if got := s.String(); got != "abc\ndef" {
		t.Errorf("String() = %q", got)
	}
}

package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is one character position: a rune and the color it is drawn in.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is the character buffer games draw into. The platform decides how
// it reaches the terminal. Cells are stored row-major.
type Screen struct {
	width, height int
	cells         []Cell
}

// NewScreen returns a blank width x height buffer.
func NewScreen(width, height int) *Screen {
	s := &Screen{width: width, height: height, cells: make([]Cell, width*height)}
	s.Clear()
	return s
}

func (s *Screen) Width() int { return s.width }
func (s *Screen) Height() int { return s.height }

// Bounds is the rectangle covering the whole screen.
func (s *Screen) Bounds() Rect { return NewRect(0, 0, s.width, s.height) }

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Resize changes the dimensions. The overlapping top-left area keeps its content.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	prev := *s
	*s = *NewScreen(width, height)
	keepW, keepH := min(prev.width, width), min(prev.height, height)
	for y := range keepH {
		copy(s.cells[y*width:y*width+keepW], prev.cells[y*prev.width:y*prev.width+keepW])
	}
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

// Set draws r in the default color. Positions off the screen are ignored.
func (s *Screen) Set(x, y int, r rune) { s.SetColored(x, y, r, ColorDefault) }

// SetColored draws r in color c. Positions off the screen are ignored.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if s.inside(x, y) {
		s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
	}
}

// Get is the rune at (x, y), a space when off the screen.
func (s *Screen) Get(x, y int) rune { return s.GetCell(x, y).Rune }

// GetCell is the cell at (x, y), a blank cell when off the screen.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blankCell
	}
	return s.cells[y*s.width+x]
}

// DrawText writes text from (x, y) to the right, one cell per rune, clipped at the edges.
func (s *Screen) DrawText(x, y int, text string) { s.DrawTextColored(x, y, text, ColorDefault) }

// DrawTextColored is DrawText in color c.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetColored(x, y, r, c)
		x++
	}
}

// DrawTextCentered writes text in the middle of row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.width-utf8.RuneCountInString(text))/2, y, text)
}

// DrawRect fills r with fill.
func (s *Screen) DrawRect(r Rect, fill rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, fill)
		}
	}
}

// DrawBox outlines r with light box-drawing characters.
func (s *Screen) DrawBox(r Rect) { s.DrawBoxColored(r, ColorDefault) }

// DrawBoxColored outlines r in color c.
func (s *Screen) DrawBoxColored(r Rect, c Color) {
	left, right := r.X, r.Right()-1
	top, bottom := r.Y, r.Bottom()-1
	for x := left + 1; x < right; x++ {
		s.SetColored(x, top, '─', c)
		s.SetColored(x, bottom, '─', c)
	}
	for y := top + 1; y < bottom; y++ {
		s.SetColored(left, y, '│', c)
		s.SetColored(right, y, '│', c)
	}
	s.SetColored(left, top, '┌', c)
	s.SetColored(right, top, '┐', c)
	s.SetColored(left, bottom, '└', c)
	s.SetColored(right, bottom, '┘', c)
}

// String is the buffer as plain text, rows separated by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Row is the text of row y. Rows off the screen read as spaces.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var b strings.Builder
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		b.WriteRune(c.Rune)
	}
	return b.String()
}

package core

import "fmt"

// Cell is one board square: 0 is empty, otherwise the locked piece type plus one.
type Cell uint8

// CellOf returns the cell value left behind by a piece of type t.
func CellOf(t Type) Cell {
	mustValidType(t)
	return Cell(t) + 1
}

// Empty reports whether nothing occupies the cell.
func (c Cell) Empty() bool { return c == 0 }

// Type returns the piece type that filled the cell.
func (c Cell) Type() (Type, bool) {
	if c == 0 || !Type(c-1).Valid() {
		return 0, false
	}
	return Type(c - 1), true
}

// Board is the fixed playfield. Row 0 is the top.
type Board struct {
	w, h  int
	cells []Cell
}

// NewBoard creates an empty board. It panics on non-positive dimensions.
func NewBoard(w, h int) *Board {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("tarot: invalid board size %dx%d", w, h))
	}
	return &Board{w: w, h: h, cells: make([]Cell, w*h)}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.w }

// Height returns the number of rows.
func (b *Board) Height() int { return b.h }

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.w && y >= 0 && y < b.h
}

// At returns the cell at (x, y), or an empty cell when out of bounds.
func (b *Board) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return 0
	}
	return b.cells[y*b.w+x]
}

// Set writes a cell. Out of bounds writes are ignored.
func (b *Board) Set(x, y int, c Cell) {
	if b.InBounds(x, y) {
		b.cells[y*b.w+x] = c
	}
}

// occupied treats everything outside the board as solid.
func (b *Board) occupied(x, y int) bool {
	if !b.InBounds(x, y) {
		return true
	}
	return !b.cells[y*b.w+x].Empty()
}

// Collides reports whether the piece leaves the board sideways, passes the
// floor or overlaps a locked block. Cells above the top row never collide.
func (b *Board) Collides(p Piece) bool {
	return b.CollidesWith(p, PolicySolid)
}

// CollidesWith is Collides under an explicit policy. PolicyPhase ignores
// locked blocks and only respects the walls and floor.
func (b *Board) CollidesWith(p Piece, policy CollisionPolicy) bool {
	for _, c := range p.Coordinates() {
		if c.X < 0 || c.X >= b.w || c.Y >= b.h {
			return true
		}
		if c.Y < 0 || policy == PolicyPhase {
			continue
		}
		if !b.cells[c.Y*b.w+c.X].Empty() {
			return true
		}
	}
	return false
}

// Merge locks the piece into the grid. Cells above the board are dropped.
func (b *Board) Merge(p Piece) {
	cell := CellOf(p.Type)
	for _, c := range p.Coordinates() {
		b.Set(c.X, c.Y, cell)
	}
}

// RowFull reports whether every cell in row y is filled.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= b.h {
		return false
	}
	for _, c := range b.cells[y*b.w : (y+1)*b.w] {
		if c.Empty() {
			return false
		}
	}
	return true
}

// LineClear describes the rows removed by one clear.
type LineClear struct {
	Count  int
	Rows   []int // original row indices, bottom first
	Values []int // per-row sum of block score values, same order as Rows
}

// ClearLines removes every full row and returns how many were removed.
func (b *Board) ClearLines() int {
	return b.ClearLinesDetailed().Count
}

// ClearLinesDetailed scans bottom to top, removes full rows and shifts the
// remaining rows down, keeping their relative order.
func (b *Board) ClearLinesDetailed() LineClear {
	var res LineClear
	write := b.h - 1
	for read := b.h - 1; read >= 0; read-- {
		if b.RowFull(read) {
			res.Count++
			res.Rows = append(res.Rows, read)
			res.Values = append(res.Values, b.rowValue(read))
			continue
		}
		if write != read {
			copy(b.cells[write*b.w:(write+1)*b.w], b.cells[read*b.w:(read+1)*b.w])
		}
		write--
	}
	for y := write; y >= 0; y-- {
		clear(b.cells[y*b.w : (y+1)*b.w])
	}
	return res
}

func (b *Board) rowValue(y int) int {
	sum := 0
	for _, c := range b.cells[y*b.w : (y+1)*b.w] {
		if t, ok := c.Type(); ok {
			sum += t.ScoreValue()
		}
	}
	return sum
}

// TopOut reports whether any block has locked in the top row.
func (b *Board) TopOut() bool {
	for _, c := range b.cells[:b.w] {
		if !c.Empty() {
			return true
		}
	}
	return false
}

// Reset empties the grid.
func (b *Board) Reset() {
	clear(b.cells)
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for _, c := range b.cells {
		if !c.Empty() {
			n++
		}
	}
	return n
}

// Snapshot returns a copy of the grid indexed [y][x].
func (b *Board) Snapshot() [][]Cell {
	out := make([][]Cell, b.h)
	for y := range out {
		out[y] = make([]Cell, b.w)
		copy(out[y], b.cells[y*b.w:(y+1)*b.w])
	}
	return out
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{w: b.w, h: b.h, cells: cells}
}

package core

// Piece is the active falling piece. X and Y locate the top-left corner of
// its shape matrix on the board.
type Piece struct {
	Type     Type
	Rotation int
	X, Y     int
}

// NewPiece creates a piece in rotation state 0 at (x, y).
func NewPiece(t Type, x, y int) Piece {
	mustValidType(t)
	return Piece{Type: t, X: x, Y: y}
}

// Shape returns the matrix for the piece's current rotation state.
func (p Piece) Shape() Shape {
	return ShapeFor(p.Type, p.Rotation)
}

// Coordinates returns the absolute board cells the piece occupies.
func (p Piece) Coordinates() []Coord {
	return p.CoordinatesAt(p.X, p.Y)
}

// CoordinatesAt returns the cells the piece would occupy with its origin at (x, y).
func (p Piece) CoordinatesAt(x, y int) []Coord {
	cells := p.Shape().cells
	out := make([]Coord, len(cells))
	for i, c := range cells {
		out[i] = Coord{X: x + c.X, Y: y + c.Y}
	}
	return out
}

func (p Piece) translated(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// CanMoveLeft reports whether shifting one column left is collision free.
func (p Piece) CanMoveLeft(b *Board) bool {
	return !b.Collides(p.translated(-1, 0))
}

// CanMoveRight reports whether shifting one column right is collision free.
func (p Piece) CanMoveRight(b *Board) bool {
	return !b.Collides(p.translated(1, 0))
}

// CanMoveDown reports whether dropping one row is collision free.
func (p Piece) CanMoveDown(b *Board) bool {
	return !b.Collides(p.translated(0, 1))
}

// MoveLeft shifts the piece one column left without checking the board.
func (p *Piece) MoveLeft() { p.X-- }

// MoveRight shifts the piece one column right without checking the board.
func (p *Piece) MoveRight() { p.X++ }

// MoveDown drops the piece one row without checking the board.
func (p *Piece) MoveDown() { p.Y++ }

// Rotate turns the piece clockwise, trying each wall kick in order.
// On failure the piece is left untouched.
func (p *Piece) Rotate(b *Board) bool {
	_, ok := p.RotateKick(b, 1)
	return ok
}

// RotateCCW turns the piece counter-clockwise, trying each wall kick in order.
func (p *Piece) RotateCCW(b *Board) bool {
	_, ok := p.RotateKick(b, -1)
	return ok
}

// RotateKick rotates by dir (+1 clockwise, -1 counter-clockwise) and reports
// the kick offset that made the rotation fit.
func (p *Piece) RotateKick(b *Board, dir int) (Offset, bool) {
	mustValidRotation(p.Rotation)
	if dir != 1 && dir != -1 {
		panic("tarot: rotation direction must be 1 or -1")
	}

	from := p.Rotation
	to := (from + dir + 4) % 4
	for _, k := range KicksFor(p.Type, from, to) {
		candidate := Piece{Type: p.Type, Rotation: to, X: p.X + k.DX, Y: p.Y + k.DY}
		if !b.Collides(candidate) {
			*p = candidate
			return k, true
		}
	}
	return Offset{}, false
}

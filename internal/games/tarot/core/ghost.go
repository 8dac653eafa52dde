package core

// CollisionPolicy selects what blocks a piece.
type CollisionPolicy uint8

const (
	// PolicySolid collides with walls, floor and locked blocks.
	PolicySolid CollisionPolicy = iota
	// PolicyPhase passes through locked blocks and stops only at the floor.
	PolicyPhase
)

// String returns the policy name.
func (p CollisionPolicy) String() string {
	switch p {
	case PolicySolid:
		return "solid"
	case PolicyPhase:
		return "phase"
	default:
		return "unknown"
	}
}

// Ghost is the landing preview of a piece. It is never merged into the board.
type Ghost struct {
	Piece    Piece
	Distance int // rows between the live piece and the landing row
}

// Coordinates returns the cells the ghost occupies.
func (g Ghost) Coordinates() []Coord {
	return g.Piece.Coordinates()
}

// Project drops a copy of p until one more row would collide.
func Project(p Piece, b *Board) Ghost {
	return ProjectWith(p, b, PolicySolid)
}

// ProjectWith is Project under an explicit collision policy.
func ProjectWith(p Piece, b *Board, policy CollisionPolicy) Ghost {
	g := Ghost{Piece: p}
	for {
		next := g.Piece.translated(0, 1)
		if b.CollidesWith(next, policy) {
			return g
		}
		g.Piece = next
		g.Distance++
	}
}

package core

// TSpinResult is the outcome of inspecting a T piece after a rotation.
type TSpinResult struct {
	IsTSpin       bool
	IsMini        bool
	FilledCorners int
}

// tCenters is the pivot cell of the T inside its matrix, per rotation state.
var tCenters = [4]Coord{
	{X: 1, Y: 1},
	{X: 0, Y: 1},
	{X: 1, Y: 0},
	{X: 1, Y: 1},
}

type corner struct {
	dx, dy int
	front  [4]bool // indexed by rotation state
}

var tCorners = [4]corner{
	{dx: -1, dy: -1, front: [4]bool{true, false, false, true}}, // top-left
	{dx: 1, dy: -1, front: [4]bool{true, true, false, false}},  // top-right
	{dx: -1, dy: 1, front: [4]bool{false, false, true, true}},  // bottom-left
	{dx: 1, dy: 1, front: [4]bool{false, true, true, false}},   // bottom-right
}

// DetectTSpin checks the four diagonal neighbours of the T's center.
// Cells outside the board count as filled.
func DetectTSpin(p Piece, b *Board, wasLastMoveRotation bool) TSpinResult {
	if p.Type != TypeT || !wasLastMoveRotation {
		return TSpinResult{}
	}
	mustValidRotation(p.Rotation)

	center := tCenters[p.Rotation]
	cx, cy := p.X+center.X, p.Y+center.Y

	var front, back int
	for _, c := range tCorners {
		if !b.occupied(cx+c.dx, cy+c.dy) {
			continue
		}
		if c.front[p.Rotation] {
			front++
		} else {
			back++
		}
	}

	filled := front + back
	isTSpin := filled >= 3
	return TSpinResult{
		IsTSpin:       isTSpin,
		IsMini:        isTSpin && front == 2 && back < 2,
		FilledCorners: filled,
	}
}

// TSpinBonus returns the points awarded for a T-spin clearing the given
// number of lines.
func TSpinBonus(r TSpinResult, lines int) int {
	if !r.IsTSpin {
		return 0
	}
	switch lines {
	case 0:
		if r.IsMini {
			return 100
		}
		return 400
	case 1:
		if r.IsMini {
			return 200
		}
		return 800
	case 2:
		if r.IsMini {
			return 400
		}
		return 1200
	case 3:
		return 1600
	default:
		return 0
	}
}

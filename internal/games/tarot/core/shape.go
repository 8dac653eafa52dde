package core

import "strings"

// baseShapes are the spawn orientations. Rotation state n is the base
// rotated clockwise n times.
var baseShapes = [typeCount][][]uint8{
	TypeI: {{1, 1, 1, 1}},
	TypeO: {{1, 1}, {1, 1}},
	TypeT: {{0, 1, 0}, {1, 1, 1}},
	TypeS: {{0, 1, 1}, {1, 1, 0}},
	TypeZ: {{1, 1, 0}, {0, 1, 1}},
	TypeJ: {{1, 0, 0}, {1, 1, 1}},
	TypeL: {{0, 0, 1}, {1, 1, 1}},

	TypeSigil:   {{1, 0}, {1, 1}, {1, 0}},
	TypeHex:     {{0, 1, 0}, {1, 1, 1}, {0, 1, 0}},
	TypeYod:     {{0, 1}, {1, 1}, {0, 1}},
	TypeCross:   {{0, 1, 0}, {1, 1, 1}, {0, 1, 0}},
	TypeKey:     {{1, 0, 0}, {1, 1, 1}, {0, 0, 1}},
	TypeEye:     {{0, 1, 0}, {1, 1, 1}, {1, 0, 1}},
	TypeSerpent: {{1, 1, 0}, {1, 0, 1}, {0, 1, 1}},
	TypeTree:    {{0, 1, 0}, {1, 1, 1}, {1, 0, 1}},
	TypeRune:    {{1, 1, 0}, {0, 1, 1}, {0, 0, 1}},
	TypeAnkh:    {{0, 1, 0}, {1, 1, 1}, {0, 1, 0}, {0, 1, 0}},
}

// Shape is an immutable occupancy matrix for one rotation state.
type Shape struct {
	w, h  int
	mask  []bool
	cells []Coord // filled cells relative to the top-left, row-major
}

var shapeTable [typeCount][4]Shape

func init() {
	for t := range baseShapes {
		m := baseShapes[t]
		for r := 0; r < 4; r++ {
			shapeTable[t][r] = newShape(m)
			m = rotateMatrixCW(m)
		}
	}
}

func newShape(m [][]uint8) Shape {
	h := len(m)
	w := len(m[0])
	s := Shape{w: w, h: h, mask: make([]bool, w*h)}
	for y, row := range m {
		for x, v := range row {
			if v != 0 {
				s.mask[y*w+x] = true
				s.cells = append(s.cells, Coord{X: x, Y: y})
			}
		}
	}
	return s
}

func rotateMatrixCW(m [][]uint8) [][]uint8 {
	h := len(m)
	w := len(m[0])
	out := make([][]uint8, w)
	for r := range out {
		out[r] = make([]uint8, h)
		for c := range out[r] {
			out[r][c] = m[h-1-c][r]
		}
	}
	return out
}

// ShapeFor returns the matrix of a piece type in the given rotation state.
// It panics on an unknown type or a state outside 0..3.
func ShapeFor(t Type, rotation int) Shape {
	mustValidType(t)
	mustValidRotation(rotation)
	return shapeTable[t][rotation]
}

// Width returns the number of columns.
func (s Shape) Width() int { return s.w }

// Height returns the number of rows.
func (s Shape) Height() int { return s.h }

// Count returns the number of filled cells.
func (s Shape) Count() int { return len(s.cells) }

// Filled reports whether the relative cell (x, y) is part of the shape.
func (s Shape) Filled(x, y int) bool {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return false
	}
	return s.mask[y*s.w+x]
}

// Cells returns a copy of the filled cells relative to the top-left corner.
func (s Shape) Cells() []Coord {
	out := make([]Coord, len(s.cells))
	copy(out, s.cells)
	return out
}

// String renders the shape as rows of '#' and '.'.
func (s Shape) String() string {
	var sb strings.Builder
	for y := 0; y < s.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.w; x++ {
			if s.Filled(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectTSpinMini(t *testing.T) {
	b := NewBoard(10, 20)
	p := Piece{Type: TypeT, Rotation: 0, X: 3, Y: 5}
	// center (4,6): front corners (3,5) (5,5), back corners (3,7) (5,7)
	b.Set(3, 5, CellOf(TypeI))
	b.Set(5, 5, CellOf(TypeI))
	b.Set(3, 7, CellOf(TypeI))

	res := DetectTSpin(p, b, true)
	assert.Equal(t, TSpinResult{IsTSpin: true, IsMini: true, FilledCorners: 3}, res)
	assert.Equal(t, 200, TSpinBonus(res, 1))
}

func TestDetectTSpinFullAgainstFloor(t *testing.T) {
	b := NewBoard(10, 20)
	// center on the bottom row so both back corners are off the board
	p := Piece{Type: TypeT, Rotation: 0, X: 3, Y: 18}
	b.Set(3, 18, CellOf(TypeI))

	res := DetectTSpin(p, b, true)
	assert.True(t, res.IsTSpin)
	assert.False(t, res.IsMini)
	assert.Equal(t, 3, res.FilledCorners)
	assert.Equal(t, 400, TSpinBonus(res, 0))
}

func TestDetectTSpinPerRotationCenters(t *testing.T) {
	tests := []struct {
		rotation int
		x, y     int
		center   Coord
	}{
		{0, 3, 5, C(4, 6)},
		{1, 3, 5, C(3, 6)},
		{2, 3, 5, C(4, 5)},
		{3, 3, 5, C(4, 6)},
	}
	for _, tc := range tests {
		b := NewBoard(10, 20)
		for _, d := range []Coord{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
			b.Set(tc.center.X+d.X, tc.center.Y+d.Y, CellOf(TypeJ))
		}
		p := Piece{Type: TypeT, Rotation: tc.rotation, X: tc.x, Y: tc.y}
		assert.False(t, b.Collides(p), "rotation %d overlaps its own corners", tc.rotation)

		res := DetectTSpin(p, b, true)
		assert.Equal(t, 4, res.FilledCorners, "rotation %d", tc.rotation)
		assert.True(t, res.IsTSpin)
		assert.False(t, res.IsMini)
	}
}

func TestDetectTSpinRequiresRotationAndT(t *testing.T) {
	b := NewBoard(10, 20)
	p := Piece{Type: TypeT, X: 3, Y: 18}
	b.Set(3, 18, CellOf(TypeI))

	assert.Equal(t, TSpinResult{}, DetectTSpin(p, b, false))

	p.Type = TypeL
	assert.Equal(t, TSpinResult{}, DetectTSpin(p, b, true))
}

func TestTSpinBonusTable(t *testing.T) {
	full := TSpinResult{IsTSpin: true, FilledCorners: 3}
	mini := TSpinResult{IsTSpin: true, IsMini: true, FilledCorners: 3}

	tests := []struct {
		res   TSpinResult
		lines int
		want  int
	}{
		{full, 0, 400},
		{mini, 0, 100},
		{full, 1, 800},
		{mini, 1, 200},
		{full, 2, 1200},
		{mini, 2, 400},
		{full, 3, 1600},
		{mini, 3, 1600},
		{full, 4, 0},
		{TSpinResult{}, 2, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, TSpinBonus(tc.res, tc.lines), "%+v lines=%d", tc.res, tc.lines)
	}
}

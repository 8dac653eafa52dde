package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollides(t *testing.T) {
	b := NewBoard(10, 20)
	b.Set(5, 10, CellOf(TypeZ))

	tests := []struct {
		name  string
		piece Piece
		want  bool
	}{
		{"inside", NewPiece(TypeO, 4, 4), false},
		{"left wall", NewPiece(TypeO, -1, 4), true},
		{"right wall", NewPiece(TypeO, 9, 4), true},
		{"below floor", NewPiece(TypeO, 4, 19), true},
		{"resting on floor", NewPiece(TypeO, 4, 18), false},
		{"partly above top", NewPiece(TypeO, 4, -1), false},
		{"fully above top", NewPiece(TypeO, 4, -5), false},
		{"above top but outside wall", NewPiece(TypeO, -1, -5), true},
		{"overlaps block", NewPiece(TypeO, 4, 9), true},
		{"next to block", NewPiece(TypeO, 6, 9), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, b.Collides(tc.piece))
		})
	}
}

func TestCollidesWithPhasePolicy(t *testing.T) {
	b := NewBoard(10, 20)
	b.Set(5, 10, CellOf(TypeZ))
	p := NewPiece(TypeO, 4, 9)

	assert.True(t, b.CollidesWith(p, PolicySolid))
	assert.False(t, b.CollidesWith(p, PolicyPhase))
	assert.True(t, b.CollidesWith(NewPiece(TypeO, 4, 19), PolicyPhase))
	assert.True(t, b.CollidesWith(NewPiece(TypeO, -1, 4), PolicyPhase))
}

func TestMergeSkipsCellsAboveBoard(t *testing.T) {
	b := NewBoard(10, 20)
	b.Merge(NewPiece(TypeO, 0, -1))

	assert.Equal(t, 2, b.Filled())
	assert.Equal(t, CellOf(TypeO), b.At(0, 0))
	assert.Equal(t, CellOf(TypeO), b.At(1, 0))

	typ, ok := b.At(0, 0).Type()
	require.True(t, ok)
	assert.Equal(t, TypeO, typ)
}

func fillRow(b *Board, y int, c Cell) {
	for x := 0; x < b.Width(); x++ {
		b.Set(x, y, c)
	}
}

func TestClearSingleLineShiftsRowsDown(t *testing.T) {
	b := NewBoard(4, 6)
	fillRow(b, 5, CellOf(TypeI))
	b.Set(0, 4, CellOf(TypeT))
	b.Set(1, 3, CellOf(TypeS))
	b.Set(2, 3, CellOf(TypeZ))

	require.Equal(t, 1, b.ClearLines())

	assert.Equal(t, CellOf(TypeT), b.At(0, 5))
	assert.True(t, b.At(1, 5).Empty())
	assert.Equal(t, CellOf(TypeS), b.At(1, 4))
	assert.Equal(t, CellOf(TypeZ), b.At(2, 4))
	assert.Equal(t, 3, b.Filled())
	for x := 0; x < 4; x++ {
		assert.True(t, b.At(x, 3).Empty())
	}
}

func TestClearLinesKeepsOrderAcrossGaps(t *testing.T) {
	b := NewBoard(3, 6)
	fillRow(b, 5, CellOf(TypeO))
	b.Set(0, 4, CellOf(TypeJ))
	fillRow(b, 3, CellOf(TypeO))
	b.Set(2, 2, CellOf(TypeL))

	res := b.ClearLinesDetailed()
	require.Equal(t, 2, res.Count)
	assert.Equal(t, []int{5, 3}, res.Rows)
	assert.Equal(t, []int{9, 9}, res.Values)

	assert.Equal(t, CellOf(TypeJ), b.At(0, 5))
	assert.Equal(t, CellOf(TypeL), b.At(2, 4))
	assert.Equal(t, 2, b.Filled())
}

func TestLockingVerticalIClearsThreeRows(t *testing.T) {
	b := NewBoard(4, 4)
	for y := 1; y < 4; y++ {
		for x := 1; x < 4; x++ {
			b.Set(x, y, CellOf(TypeO))
		}
	}
	p := Piece{Type: TypeI, Rotation: 1, X: 0, Y: 0}
	require.False(t, b.Collides(p))
	require.Equal(t, 0, Project(p, b).Distance)

	b.Merge(p)
	assert.Equal(t, 3, b.ClearLines())

	assert.Equal(t, 1, b.Filled())
	assert.Equal(t, CellOf(TypeI), b.At(0, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.True(t, b.At(x, y).Empty(), "cell (%d,%d)", x, y)
		}
	}
}

func TestBoardResetAndTopOut(t *testing.T) {
	b := NewBoard(5, 5)
	assert.False(t, b.TopOut())

	b.Set(2, 0, CellOf(TypeT))
	assert.True(t, b.TopOut())

	b.Reset()
	assert.False(t, b.TopOut())
	assert.Equal(t, 0, b.Filled())
}

func TestBoardSnapshotIsACopy(t *testing.T) {
	b := NewBoard(3, 3)
	b.Set(1, 1, CellOf(TypeT))

	snap := b.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, CellOf(TypeT), snap[1][1])

	snap[1][1] = 0
	snap[0][0] = CellOf(TypeI)
	assert.Equal(t, CellOf(TypeT), b.At(1, 1))
	assert.True(t, b.At(0, 0).Empty())
}

func TestNewBoardPanicsOnBadSize(t *testing.T) {
	assert.Panics(t, func() { NewBoard(0, 10) })
	assert.Panics(t, func() { NewBoard(10, -1) })
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKicksStartWithZeroOffset(t *testing.T) {
	for _, typ := range AllTypes() {
		for from := 0; from < 4; from++ {
			for _, to := range []int{(from + 1) % 4, (from + 3) % 4} {
				kicks := KicksFor(typ, from, to)
				assert.NotEmpty(t, kicks)
				assert.LessOrEqual(t, len(kicks), 5)
				assert.Equal(t, Offset{0, 0}, kicks[0], "%s %d->%d", typ, from, to)
			}
		}
	}
}

func TestKicksPerClass(t *testing.T) {
	assert.Equal(t, []Offset{{0, 0}}, KicksFor(TypeO, 0, 1))

	assert.Equal(t,
		[]Offset{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		KicksFor(TypeI, 0, 1))

	jlstz := []Offset{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}
	for _, typ := range []Type{TypeJ, TypeL, TypeS, TypeT, TypeZ} {
		assert.Equal(t, jlstz, KicksFor(typ, 0, 1), "type %s", typ)
	}

	assert.Equal(t,
		[]Offset{{0, 0}, {-1, 0}, {-1, 1}, {0, -1}, {-1, -1}},
		KicksFor(TypeSigil, 0, 1))
}

func TestCustomKicksHaveReducedVerticalReach(t *testing.T) {
	for from := 0; from < 4; from++ {
		to := (from + 1) % 4
		std := KicksFor(TypeT, from, to)
		custom := KicksFor(TypeAnkh, from, to)
		assert.Len(t, custom, len(std))
		for i := range std {
			assert.Equal(t, std[i].DX, custom[i].DX)
			assert.LessOrEqual(t, abs(custom[i].DY), 1)
		}
	}
}

func TestKicksForReturnsCopy(t *testing.T) {
	k := KicksFor(TypeT, 0, 1)
	k[1] = Offset{42, 42}

	assert.Equal(t, Offset{-1, 0}, KicksFor(TypeT, 0, 1)[1])
}

func TestKicksForPanicsOnInvalidInput(t *testing.T) {
	assert.Panics(t, func() { KicksFor(typeCount, 0, 1) })
	assert.Panics(t, func() { KicksFor(TypeT, 0, 2) })
	assert.Panics(t, func() { KicksFor(TypeT, 3, 4) })
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

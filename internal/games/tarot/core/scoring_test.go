package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComboMultiplier(t *testing.T) {
	r := DefaultRules()
	assert.InDelta(t, 1.0, r.ComboMultiplier(0), 1e-9)
	assert.InDelta(t, 1.0, r.ComboMultiplier(1), 1e-9)
	assert.InDelta(t, 1.1, r.ComboMultiplier(2), 1e-9)
	assert.InDelta(t, 1.4, r.ComboMultiplier(5), 1e-9)
	assert.InDelta(t, 2.0, r.ComboMultiplier(30), 1e-9)
}

func TestLinePoints(t *testing.T) {
	r := DefaultRules()
	tests := []struct {
		name   string
		values []int
		level  int
		combo  int
		want   int
	}{
		{"no lines", nil, 3, 1, 0},
		{"double at level 1", []int{14, 14}, 1, 1, 28},
		{"level scales base and multiplier", []int{10}, 2, 1, 22},
		{"combo floors", []int{28}, 1, 2, 30},
		{"combo and level", []int{10, 10}, 3, 3, 86},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.LinePoints(tc.values, tc.level, tc.combo))
		})
	}
}

func TestLevelCurve(t *testing.T) {
	r := DefaultRules()

	assert.Equal(t, 10, r.LinesToLevelUp(1))
	assert.Equal(t, 12, r.LinesToLevelUp(4))
	assert.Equal(t, 20, r.LinesToLevelUp(40))

	assert.Equal(t, 500, r.DropInterval(1))
	assert.Equal(t, 400, r.DropInterval(3))
	assert.Equal(t, 100, r.DropInterval(9))
	assert.Equal(t, 100, r.DropInterval(50))
	assert.Equal(t, 500, r.DropInterval(0))

	assert.Equal(t, 30, r.GoldForLevel(3))
}

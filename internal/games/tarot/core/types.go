// Package core implements the rules of Tarot Tetromino: shapes, wall kicks,
// piece movement, the board, T-spin detection, ghost projection and scoring.
// This package is UI-agnostic and deterministic for a given seed.
package core

import (
	"fmt"
	"strings"
)

// Type identifies a piece kind.
type Type uint8

const (
	TypeI Type = iota
	TypeO
	TypeT
	TypeS
	TypeZ
	TypeJ
	TypeL
	TypeSigil
	TypeHex
	TypeYod
	TypeCross
	TypeKey
	TypeEye
	TypeSerpent
	TypeTree
	TypeRune
	TypeAnkh

	typeCount
)

var typeNames = [typeCount]string{
	"I", "O", "T", "S", "Z", "J", "L",
	"SIGIL", "HEX", "YOD", "CROSS", "KEY", "EYE", "SERPENT", "TREE", "RUNE", "ANKH",
}

// scoreValues is what a single block of each type is worth when its line clears.
var scoreValues = [typeCount]int{
	4, 3, 5, 6, 6, 7, 7,
	8, 9, 8, 10, 9, 11, 12, 11, 8, 13,
}

// String returns the piece name.
func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
	return typeNames[t]
}

// Valid reports whether t names a known piece.
func (t Type) Valid() bool {
	return t < typeCount
}

// Standard reports whether t is one of the seven classic tetrominoes.
func (t Type) Standard() bool {
	return t <= TypeL
}

// ScoreValue returns the per-block value of the piece type.
func (t Type) ScoreValue() int {
	mustValidType(t)
	return scoreValues[t]
}

// ParseType looks up a piece type by name, case-insensitively.
func ParseType(name string) (Type, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, n := range typeNames {
		if n == name {
			return Type(i), true
		}
	}
	return 0, false
}

// StandardTypes returns the seven classic tetrominoes.
func StandardTypes() []Type {
	return []Type{TypeI, TypeO, TypeT, TypeS, TypeZ, TypeJ, TypeL}
}

// AllTypes returns every known piece type.
func AllTypes() []Type {
	out := make([]Type, 0, typeCount)
	for t := Type(0); t < typeCount; t++ {
		out = append(out, t)
	}
	return out
}

func mustValidType(t Type) {
	if !t.Valid() {
		panic(fmt.Sprintf("tarot: invalid piece type %d", uint8(t)))
	}
}

func mustValidRotation(r int) {
	if r < 0 || r > 3 {
		panic(fmt.Sprintf("tarot: rotation state %d out of range", r))
	}
}

// Coord is an absolute board position. Y grows downwards.
type Coord struct {
	X, Y int
}

// C is a shorthand constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the coordinate translated by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

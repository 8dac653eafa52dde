package core

import "fmt"

// Offset is a translation tried during a rotation. Positive DY moves down.
type Offset struct {
	DX, DY int
}

type transition struct {
	from, to int
}

type kickTable map[transition][]Offset

var (
	jlstzKicks = kickTable{
		{0, 1}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{1, 0}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		{1, 2}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		{2, 1}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{2, 3}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		{3, 2}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		{3, 0}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		{0, 3}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	}

	iKicks = kickTable{
		{0, 1}: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		{1, 0}: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		{1, 2}: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
		{2, 1}: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		{2, 3}: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		{3, 2}: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		{3, 0}: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		{0, 3}: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	}

	// customKicks is the JLSTZ table with its vertical reach cut from 2 rows to 1.
	customKicks = halveVertical(jlstzKicks)

	noKick = []Offset{{0, 0}}
)

func halveVertical(src kickTable) kickTable {
	out := make(kickTable, len(src))
	for tr, offsets := range src {
		cp := make([]Offset, len(offsets))
		for i, o := range offsets {
			cp[i] = o
			if o.DY > 1 || o.DY < -1 {
				cp[i].DY = o.DY / 2
			}
		}
		out[tr] = cp
	}
	return out
}

// KicksFor returns the ordered offsets to try when rotating a piece of type t
// from one state to an adjacent one. The first entry is always (0, 0).
// It panics on an unknown type, a state outside 0..3 or a non-adjacent transition.
func KicksFor(t Type, from, to int) []Offset {
	mustValidType(t)
	mustValidRotation(from)
	mustValidRotation(to)
	if (from+1)%4 != to && (to+1)%4 != from {
		panic(fmt.Sprintf("tarot: no kick data for transition %d->%d", from, to))
	}

	var table kickTable
	switch {
	case t == TypeO:
		return []Offset{noKick[0]}
	case t == TypeI:
		table = iKicks
	case t.Standard():
		table = jlstzKicks
	default:
		table = customKicks
	}

	src := table[transition{from, to}]
	out := make([]Offset, len(src))
	copy(out, src)
	return out
}

package chess

import (
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// SquareSet is an unordered set of squares.
type SquareSet map[Square]struct{}

// NewSquareSet returns a set holding the given squares.
func NewSquareSet(squares ...Square) SquareSet {
	s := make(SquareSet, len(squares))
	for _, sq := range squares {
		s.Add(sq)
	}
	return s
}

// Add inserts sq.
func (s SquareSet) Add(sq Square) {
	s[sq] = struct{}{}
}

// Contains reports whether sq is in the set.
func (s SquareSet) Contains(sq Square) bool {
	_, ok := s[sq]
	return ok
}

// Union adds every square of o to s.
func (s SquareSet) Union(o SquareSet) {
	for sq := range o {
		s.Add(sq)
	}
}

// Slice returns the squares ordered by row, then column.
func (s SquareSet) Slice() []Square {
	squares := maps.Keys(s)
	sort.Slice(squares, func(i, j int) bool { return squares[i].Less(squares[j]) })
	return squares
}

// String lists the squares in order, e.g. "{a1 b2}".
func (s SquareSet) String() string {
	names := make([]string, 0, len(s))
	for _, sq := range s.Slice() {
		names = append(names, sq.String())
	}
	return "{" + strings.Join(names, " ") + "}"
}

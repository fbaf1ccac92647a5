package engine

import (
	"fmt"
	"math/bits"
	"strings"
)

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Square identifies a tile by position. Row 0 is black's back rank, row 7 white's.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square dr rows and dc columns away, and whether it is on the board.
func (s Square) Offset(dr, dc int) (Square, bool) {
	next := Square{s.Row + dr, s.Col + dc}
	return next, next.Valid()
}

// Shade is 0 for light tiles and 1 for dark ones.
func (s Square) Shade() int {
	return (s.Row + s.Col) % 2
}

// Algebraic returns the file/rank name of the square, e.g. e2 for (6,4).
func (s Square) Algebraic() string {
	if !s.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+s.Col, BoardSize-s.Row)
}

func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}

func (s Square) index() uint {
	return uint(s.Row*BoardSize + s.Col)
}

func squareAt(idx int) Square {
	return Square{idx / BoardSize, idx % BoardSize}
}

func mustBeOnBoard(s Square) {
	if !s.Valid() {
		panic(fmt.Sprintf("engine: square %s is off the board", s))
	}
}

// SquareSet is a set of squares backed by one bit per tile.
type SquareSet uint64

func (ss SquareSet) Has(s Square) bool {
	return s.Valid() && ss&(1<<s.index()) != 0
}

func (ss SquareSet) Add(s Square) SquareSet {
	mustBeOnBoard(s)
	return ss | 1<<s.index()
}

func (ss SquareSet) Remove(s Square) SquareSet {
	if !s.Valid() {
		return ss
	}
	return ss &^ (1 << s.index())
}

func (ss SquareSet) Len() int { return bits.OnesCount64(uint64(ss)) }

func (ss SquareSet) Empty() bool { return ss == 0 }

// Squares lists the members in row-major order.
func (ss SquareSet) Squares() []Square {
	out := make([]Square, 0, ss.Len())
	for rest := uint64(ss); rest != 0; rest &= rest - 1 {
		out = append(out, squareAt(bits.TrailingZeros64(rest)))
	}
	return out
}

func (ss SquareSet) String() string {
	names := make([]string, 0, ss.Len())
	for _, s := range ss.Squares() {
		names = append(names, s.String())
	}
	return "{" + strings.Join(names, " ") + "}"
}

// NewSquareSet builds a set from the given squares.
func NewSquareSet(squares ...Square) SquareSet {
	var ss SquareSet
	for _, s := range squares {
		ss = ss.Add(s)
	}
	return ss
}

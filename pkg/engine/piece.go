package engine

// Color is the side a piece belongs to.
type Color int

const (
	White Color = iota
	Black
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Unknown"
	}
}

// forward is the row delta of a pawn advance.
func (c Color) forward() int {
	if c == White {
		return -1
	}
	return 1
}

// pawnRow is the row pawns of this color start on.
func (c Color) pawnRow() int {
	if c == White {
		return BoardSize - 2
	}
	return 1
}

// backRow is the row the king and rooks of this color start on.
func (c Color) backRow() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

type Kind int

const (
	Pawn Kind = iota
	Rook
	Knight
	Bishop
	Queen
	King
)

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Rook:
		return "Rook"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "Unknown"
	}
}

// Letter is the English piece letter, upper case for white.
func (k Kind) Letter(c Color) string {
	letters := [...]string{"P", "R", "N", "B", "Q", "K"}
	l := letters[k]
	if c == Black {
		return string(l[0] + 'a' - 'A')
	}
	return l
}

// PieceID indexes the piece roster. IDs are stable for a whole session.
type PieceID int

// NoPiece marks an empty tile.
const NoPiece PieceID = -1

// Piece is a roster record. Its square is derived from tile occupancy.
type Piece struct {
	ID       PieceID `json:"id"`
	Color    Color   `json:"color"`
	Kind     Kind    `json:"kind"`
	HasMoved bool    `json:"hasMoved"`
	Captured bool    `json:"captured"`
}

func (p Piece) String() string {
	return p.Color.String() + " " + p.Kind.String()
}

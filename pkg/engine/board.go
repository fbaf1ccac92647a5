package engine

import "fmt"

// MaxPieces bounds the roster. A standard game uses all of it.
const MaxPieces = 32

// Board is the tile occupancy map plus the piece roster. It is a plain value:
// copying a Board yields an independent position.
type Board struct {
	occupant [BoardSize][BoardSize]PieceID
	pieces   [MaxPieces]Piece
	count    int

	// where caches each live piece's square. Only put and lift write it, so it
	// always mirrors occupant.
	where [MaxPieces]Square
}

// Placement puts one piece on a square when building a position.
type Placement struct {
	Square   Square `json:"square"`
	Color    Color  `json:"color"`
	Kind     Kind   `json:"kind"`
	HasMoved bool   `json:"hasMoved"`
}

// Setup describes a starting position and the side to move.
type Setup struct {
	Pieces []Placement `json:"pieces"`
	Turn   Color       `json:"turn"`
}

var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StandardSetup returns the regular 32-piece opening layout with white to move.
func StandardSetup() Setup {
	setup := Setup{Turn: White}
	place := func(row int, c Color, kinds [BoardSize]Kind) {
		for col, k := range kinds {
			setup.Pieces = append(setup.Pieces, Placement{Square: Square{row, col}, Color: c, Kind: k})
		}
	}
	var pawns [BoardSize]Kind
	place(Black.backRow(), Black, backRank)
	place(Black.pawnRow(), Black, pawns)
	place(White.pawnRow(), White, pawns)
	place(White.backRow(), White, backRank)
	return setup
}

func emptyBoard() Board {
	var b Board
	for r := range b.occupant {
		for c := range b.occupant[r] {
			b.occupant[r][c] = NoPiece
		}
	}
	return b
}

func (s Setup) board() (Board, error) {
	b := emptyBoard()
	if len(s.Pieces) > MaxPieces {
		return b, fmt.Errorf("%d pieces, at most %d allowed: %w", len(s.Pieces), MaxPieces, ErrInvalidSetup)
	}
	if s.Turn != White && s.Turn != Black {
		return b, fmt.Errorf("turn %d: %w", s.Turn, ErrInvalidSetup)
	}
	kings := map[Color]int{}
	for _, p := range s.Pieces {
		if !p.Square.Valid() {
			return b, fmt.Errorf("square %s off the board: %w", p.Square, ErrInvalidSetup)
		}
		if p.Color != White && p.Color != Black {
			return b, fmt.Errorf("color %d on %s: %w", p.Color, p.Square, ErrInvalidSetup)
		}
		if p.Kind < Pawn || p.Kind > King {
			return b, fmt.Errorf("kind %d on %s: %w", p.Kind, p.Square, ErrInvalidSetup)
		}
		if b.occupantAt(p.Square) != NoPiece {
			return b, fmt.Errorf("square %s used twice: %w", p.Square, ErrInvalidSetup)
		}
		if p.Kind == King {
			kings[p.Color]++
			if kings[p.Color] > 1 {
				return b, fmt.Errorf("second %s king on %s: %w", p.Color, p.Square, ErrInvalidSetup)
			}
		}
		b.addPiece(p)
	}
	return b, nil
}

// playable is board plus the game invariants: both kings on the board and the
// side that just moved not left in check.
func (s Setup) playable() (Board, error) {
	b, err := s.board()
	if err != nil {
		return b, err
	}
	for _, c := range [...]Color{White, Black} {
		if _, ok := b.kingSquare(c); !ok {
			return b, fmt.Errorf("no %s king: %w", c, ErrInvalidSetup)
		}
	}
	if idle := s.Turn.Opponent(); b.InCheck(idle) {
		return b, fmt.Errorf("%s is in check with %s to move: %w", idle, s.Turn, ErrInvalidSetup)
	}
	return b, nil
}

func standardBoard() Board {
	b, err := StandardSetup().board()
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Board) addPiece(p Placement) PieceID {
	id := PieceID(b.count)
	b.pieces[id] = Piece{ID: id, Color: p.Color, Kind: p.Kind, HasMoved: p.HasMoved}
	b.count++
	b.put(id, p.Square)
	return id
}

func (b *Board) put(id PieceID, s Square) {
	b.occupant[s.Row][s.Col] = id
	b.where[id] = s
}

// lift empties the square and returns whoever stood on it.
func (b *Board) lift(s Square) PieceID {
	id := b.occupant[s.Row][s.Col]
	b.occupant[s.Row][s.Col] = NoPiece
	return id
}

func (b *Board) occupantAt(s Square) PieceID {
	return b.occupant[s.Row][s.Col]
}

// At returns the piece standing on s.
func (b *Board) At(s Square) (Piece, bool) {
	mustBeOnBoard(s)
	id := b.occupantAt(s)
	if id == NoPiece {
		return Piece{}, false
	}
	return b.pieces[id], true
}

// SquareOf returns where a piece stands; captured pieces have no square.
func (b *Board) SquareOf(id PieceID) (Square, bool) {
	if id < 0 || int(id) >= b.count || b.pieces[id].Captured {
		return Square{}, false
	}
	return b.where[id], true
}

// Pieces returns the roster, captured pieces included.
func (b *Board) Pieces() []Piece {
	out := make([]Piece, b.count)
	copy(out, b.pieces[:b.count])
	return out
}

func (b *Board) kingSquare(c Color) (Square, bool) {
	for i := 0; i < b.count; i++ {
		p := b.pieces[i]
		if p.Kind == King && p.Color == c && !p.Captured {
			return b.where[i], true
		}
	}
	return Square{}, false
}

// play moves the piece on from to to on b itself: any occupant of to is captured
// and a two-column king step also relocates the castling rook.
func (b *Board) play(from, to Square) {
	mover := b.lift(from)
	if mover == NoPiece {
		panic(fmt.Sprintf("engine: no piece on %s to move", from))
	}
	king := b.pieces[mover]
	if king.Kind == King && from.Row == to.Row && abs(to.Col-from.Col) == 2 {
		dc := sign(to.Col - from.Col)
		if rook, rookFrom, ok := b.castlingRook(king, from, dc); ok {
			b.lift(rookFrom)
			b.put(rook, Square{from.Row, from.Col + dc})
			b.pieces[rook].HasMoved = true
		}
	}
	if victim := b.lift(to); victim != NoPiece {
		b.pieces[victim].Captured = true
	}
	b.put(mover, to)
	b.pieces[mover].HasMoved = true
}

// checkConsistency verifies that every live piece owns exactly one tile and the
// square cache agrees with the occupancy map.
func (b *Board) checkConsistency() error {
	seen := make(map[PieceID]Square)
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			id := b.occupant[r][c]
			if id == NoPiece {
				continue
			}
			sq := Square{r, c}
			if prev, dup := seen[id]; dup {
				return fmt.Errorf("piece %d on both %s and %s", id, prev, sq)
			}
			if b.pieces[id].Captured {
				return fmt.Errorf("captured piece %d still on %s", id, sq)
			}
			if b.where[id] != sq {
				return fmt.Errorf("piece %d cached on %s but stands on %s", id, b.where[id], sq)
			}
			seen[id] = sq
		}
	}
	for i := 0; i < b.count; i++ {
		if _, ok := seen[PieceID(i)]; !ok && !b.pieces[i].Captured {
			return fmt.Errorf("live piece %d has no tile", i)
		}
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

package engine

import "golang.org/x/exp/slices"

// Tile is the render view of one square.
type Tile struct {
	Occupant PieceID `json:"occupant"`
	Selected bool    `json:"selected"`
	Allowed  bool    `json:"allowed"`
	Shade    int     `json:"shade"`
}

// Snapshot is a detached copy of the session for rendering. Changing it has no
// effect on the engine.
type Snapshot struct {
	Tiles     [BoardSize][BoardSize]Tile `json:"tiles"`
	Pieces    []Piece                    `json:"pieces"`
	Turn      Color                      `json:"turn"`
	State     State                      `json:"state"`
	Selection *Square                    `json:"selection,omitempty"`
	LastMove  *Move                      `json:"lastMove,omitempty"`
	Check     CheckStatus                `json:"check"`
	Result    *Result                    `json:"result,omitempty"`
}

func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Pieces: slices.Clone(e.board.pieces[:e.board.count]),
		Turn:   e.turn,
		State:  e.State(),
		Check:  e.check,
	}
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			sq := Square{r, c}
			snap.Tiles[r][c] = Tile{
				Occupant: e.board.occupantAt(sq),
				Selected: e.selection != nil && *e.selection == sq,
				Allowed:  e.allowed.Has(sq),
				Shade:    sq.Shade(),
			}
		}
	}
	if e.selection != nil {
		sel := *e.selection
		snap.Selection = &sel
	}
	if e.lastMove != nil {
		last := *e.lastMove
		snap.LastMove = &last
	}
	if e.result != nil {
		res := *e.result
		snap.Result = &res
	}
	return snap
}

// PieceAt returns the piece shown on sq.
func (s Snapshot) PieceAt(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	id := s.Tiles[sq.Row][sq.Col].Occupant
	if id == NoPiece || int(id) >= len(s.Pieces) {
		return Piece{}, false
	}
	return s.Pieces[id], true
}

// KingSquare finds the live king of color c.
func (s Snapshot) KingSquare(c Color) (Square, bool) {
	for r := 0; r < BoardSize; r++ {
		for col := 0; col < BoardSize; col++ {
			sq := Square{r, col}
			if p, ok := s.PieceAt(sq); ok && p.Kind == King && p.Color == c {
				return sq, true
			}
		}
	}
	return Square{}, false
}

// Captured lists the captured pieces of color c in roster order.
func (s Snapshot) Captured(c Color) []Piece {
	var out []Piece
	for _, p := range s.Pieces {
		if p.Captured && p.Color == c {
			out = append(out, p)
		}
	}
	return out
}

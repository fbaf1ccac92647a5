package engine

type offset struct{ dr, dc int }

var (
	rookDirections   = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	bishopDirections = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirections  = append(append([]offset{}, rookDirections...), bishopDirections...)
	kingSteps        = queenDirections
	knightJumps      = []offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// slideDirections returns the ray set of a sliding piece, nil for the others.
func slideDirections(k Kind) []offset {
	switch k {
	case Rook:
		return rookDirections
	case Bishop:
		return bishopDirections
	case Queen:
		return queenDirections
	}
	return nil
}

// IsSquareAttacked reports whether any live piece of color by attacks target.
// Whose turn it is does not matter, and the board is not modified.
func (b *Board) IsSquareAttacked(target Square, by Color) bool {
	mustBeOnBoard(target)
	for i := 0; i < b.count; i++ {
		p := b.pieces[i]
		if p.Captured || p.Color != by {
			continue
		}
		if b.attacks(p, b.where[i], target) {
			return true
		}
	}
	return false
}

func (b *Board) attacks(p Piece, from, target Square) bool {
	dr, dc := target.Row-from.Row, target.Col-from.Col
	switch p.Kind {
	case Pawn:
		return dr == p.Color.forward() && abs(dc) == 1
	case Knight:
		return hasOffset(knightJumps, dr, dc)
	case King:
		return hasOffset(kingSteps, dr, dc)
	}
	for _, d := range slideDirections(p.Kind) {
		for sq, ok := from.Offset(d.dr, d.dc); ok; sq, ok = sq.Offset(d.dr, d.dc) {
			if sq == target {
				return true
			}
			if b.occupantAt(sq) != NoPiece {
				break
			}
		}
	}
	return false
}

func hasOffset(set []offset, dr, dc int) bool {
	for _, o := range set {
		if o.dr == dr && o.dc == dc {
			return true
		}
	}
	return false
}

// InCheck reports whether the king of color c is attacked. A side without a
// king is never in check.
func (b *Board) InCheck(c Color) bool {
	king, ok := b.kingSquare(c)
	if !ok {
		return false
	}
	return b.IsSquareAttacked(king, c.Opponent())
}

package engine

// afterMove returns a copy of the position with the move played. b is untouched.
func (b *Board) afterMove(from, to Square) Board {
	next := *b
	next.play(from, to)
	return next
}

// IsLegal reports whether moving the piece on from to to leaves its own king
// unattacked. It does not check the movement pattern; pair it with
// PseudoLegalMoves.
func (b *Board) IsLegal(from, to Square) bool {
	mustBeOnBoard(from)
	mustBeOnBoard(to)
	id := b.occupantAt(from)
	if id == NoPiece {
		return false
	}
	mover := b.pieces[id].Color
	next := b.afterMove(from, to)
	return !next.InCheck(mover)
}

// LegalMoves is PseudoLegalMoves filtered down to moves that keep the mover's
// king safe.
func (b *Board) LegalMoves(origin Square) SquareSet {
	legal := b.PseudoLegalMoves(origin)
	for _, to := range legal.Squares() {
		if !b.IsLegal(origin, to) {
			legal = legal.Remove(to)
		}
	}
	return legal
}

// HasLegalMove reports whether color c has at least one legal move anywhere.
func (b *Board) HasLegalMove(c Color) bool {
	for i := 0; i < b.count; i++ {
		p := b.pieces[i]
		if p.Captured || p.Color != c {
			continue
		}
		from := b.where[i]
		for _, to := range b.PseudoLegalMoves(from).Squares() {
			if b.IsLegal(from, to) {
				return true
			}
		}
	}
	return false
}

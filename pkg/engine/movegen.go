package engine

// PseudoLegalMoves lists the destinations the piece on origin can reach by its
// movement pattern, without regard to its own king's safety.
func (b *Board) PseudoLegalMoves(origin Square) SquareSet {
	mustBeOnBoard(origin)
	id := b.occupantAt(origin)
	if id == NoPiece {
		return 0
	}
	p := b.pieces[id]
	switch p.Kind {
	case Pawn:
		return b.pawnMoves(p, origin)
	case Knight:
		return b.stepMoves(p, origin, knightJumps)
	case King:
		return b.stepMoves(p, origin, kingSteps) | b.castlingMoves(p, origin)
	default:
		return b.slideMoves(p, origin, slideDirections(p.Kind))
	}
}

func (b *Board) pawnMoves(p Piece, from Square) SquareSet {
	var moves SquareSet
	fwd := p.Color.forward()
	if one, ok := from.Offset(fwd, 0); ok && b.occupantAt(one) == NoPiece {
		moves = moves.Add(one)
		if from.Row == p.Color.pawnRow() {
			if two, ok := from.Offset(2*fwd, 0); ok && b.occupantAt(two) == NoPiece {
				moves = moves.Add(two)
			}
		}
	}
	for _, dc := range [...]int{-1, 1} {
		if sq, ok := from.Offset(fwd, dc); ok && b.isEnemy(sq, p.Color) {
			moves = moves.Add(sq)
		}
	}
	return moves
}

func (b *Board) stepMoves(p Piece, from Square, steps []offset) SquareSet {
	var moves SquareSet
	for _, s := range steps {
		if sq, ok := from.Offset(s.dr, s.dc); ok && !b.isFriend(sq, p.Color) {
			moves = moves.Add(sq)
		}
	}
	return moves
}

func (b *Board) slideMoves(p Piece, from Square, dirs []offset) SquareSet {
	var moves SquareSet
	for _, d := range dirs {
		for sq, ok := from.Offset(d.dr, d.dc); ok; sq, ok = sq.Offset(d.dr, d.dc) {
			id := b.occupantAt(sq)
			if id == NoPiece {
				moves = moves.Add(sq)
				continue
			}
			if b.pieces[id].Color != p.Color {
				moves = moves.Add(sq)
			}
			break
		}
	}
	return moves
}

// castlingMoves returns the landing squares two columns either side of an
// unmoved king whose rook, path and transit squares allow castling.
func (b *Board) castlingMoves(king Piece, from Square) SquareSet {
	var moves SquareSet
	if king.HasMoved || from.Row != king.Color.backRow() {
		return moves
	}
	enemy := king.Color.Opponent()
	if b.IsSquareAttacked(from, enemy) {
		return moves
	}
	for _, dc := range [...]int{1, -1} {
		if _, _, ok := b.castlingRook(king, from, dc); !ok {
			continue
		}
		transit := Square{from.Row, from.Col + dc}
		landing := Square{from.Row, from.Col + 2*dc}
		if b.IsSquareAttacked(transit, enemy) || b.IsSquareAttacked(landing, enemy) {
			continue
		}
		moves = moves.Add(landing)
	}
	return moves
}

// castlingRook scans from the king toward the edge in direction dc. The first
// piece met must be an unmoved rook of the king's color standing beyond the
// king's landing square; everything before it is empty by construction.
func (b *Board) castlingRook(king Piece, from Square, dc int) (PieceID, Square, bool) {
	if king.HasMoved || from.Row != king.Color.backRow() {
		return NoPiece, Square{}, false
	}
	landing, ok := from.Offset(0, 2*dc)
	if !ok {
		return NoPiece, Square{}, false
	}
	for sq, ok := from.Offset(0, dc); ok; sq, ok = sq.Offset(0, dc) {
		id := b.occupantAt(sq)
		if id == NoPiece {
			continue
		}
		rook := b.pieces[id]
		if rook.Kind != Rook || rook.Color != king.Color || rook.HasMoved {
			break
		}
		if (sq.Col-landing.Col)*dc <= 0 {
			break
		}
		return id, sq, true
	}
	return NoPiece, Square{}, false
}

func (b *Board) isEnemy(s Square, c Color) bool {
	id := b.occupantAt(s)
	return id != NoPiece && b.pieces[id].Color != c
}

func (b *Board) isFriend(s Square, c Color) bool {
	id := b.occupantAt(s)
	return id != NoPiece && b.pieces[id].Color == c
}

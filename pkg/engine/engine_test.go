package engine

import "testing"

func countHighlights(snap Snapshot) (selected, allowed int) {
	for r := range snap.Tiles {
		for c := range snap.Tiles[r] {
			if snap.Tiles[r][c].Selected {
				selected++
			}
			if snap.Tiles[r][c].Allowed {
				allowed++
			}
		}
	}
	return selected, allowed
}

func TestSelectAndDeselectSameSquare(t *testing.T) {
	e := New()
	snap := e.ApplyInteraction(sq(6, 4))
	if snap.State != Selected || snap.Selection == nil || *snap.Selection != sq(6, 4) {
		t.Fatalf("expected (6,4) selected, got state %s", snap.State)
	}
	if !snap.Tiles[6][4].Selected || !snap.Tiles[5][4].Allowed || !snap.Tiles[4][4].Allowed {
		t.Fatalf("expected selection and destination highlights")
	}
	if _, allowed := countHighlights(snap); allowed != 2 {
		t.Fatalf("expected 2 highlighted destinations, got %d", allowed)
	}

	snap = e.ApplyInteraction(sq(6, 4))
	if snap.State != Idle || snap.Selection != nil {
		t.Fatalf("expected Idle after clicking the selection again, got %s", snap.State)
	}
	if selected, allowed := countHighlights(snap); selected != 0 || allowed != 0 {
		t.Fatalf("expected highlights cleared, got %d selected %d allowed", selected, allowed)
	}
}

func TestIdleIgnoresEmptyAndOpponentSquares(t *testing.T) {
	e := New()
	before := e.Snapshot()
	for _, s := range []Square{sq(4, 4), sq(1, 4), sq(0, 0)} {
		if snap := e.ApplyInteraction(s); snap.State != Idle || snap.Turn != White {
			t.Fatalf("click on %s changed state to %s", s, snap.State)
		}
	}
	after := e.Snapshot()
	if after.Tiles != before.Tiles {
		t.Fatalf("ignored clicks changed the board")
	}
}

func TestSelectingAnotherOwnPieceRetargets(t *testing.T) {
	e := New()
	click(t, e, sq(6, 4))
	snap := e.ApplyInteraction(sq(7, 6))
	if snap.State != Selected || *snap.Selection != sq(7, 6) {
		t.Fatalf("expected selection moved to (7,6)")
	}
	if snap.Tiles[6][4].Selected || snap.Tiles[5][4].Allowed {
		t.Fatalf("stale highlights from the previous selection")
	}
	if !snap.Tiles[5][5].Allowed || !snap.Tiles[5][7].Allowed {
		t.Fatalf("expected knight destinations highlighted")
	}
}

func TestInvalidTargetDropsSelection(t *testing.T) {
	e := New()
	for _, target := range []Square{sq(3, 4), sq(1, 4), sq(5, 0)} {
		click(t, e, sq(6, 4))
		snap := e.ApplyInteraction(target)
		if snap.State != Idle || snap.Turn != White || snap.LastMove != nil {
			t.Fatalf("click on %s: expected selection dropped without a move", target)
		}
		if selected, allowed := countHighlights(snap); selected+allowed != 0 {
			t.Fatalf("click on %s: highlights not cleared", target)
		}
	}
}

func TestCommitAdvancesTurn(t *testing.T) {
	e := New()
	snap := click(t, e, sq(6, 4), sq(4, 4))
	if snap.Turn != Black || snap.State != Idle {
		t.Fatalf("expected black to move and Idle, got %s/%s", snap.Turn, snap.State)
	}
	if snap.LastMove == nil || *snap.LastMove != (Move{sq(6, 4), sq(4, 4)}) {
		t.Fatalf("unexpected last move %v", snap.LastMove)
	}
	pawn, ok := snap.PieceAt(sq(4, 4))
	if !ok || pawn.Kind != Pawn || pawn.Color != White || !pawn.HasMoved {
		t.Fatalf("expected moved white pawn on (4,4), got %+v", pawn)
	}
	if got := e.LegalDestinations(sq(4, 4)); !got.Empty() {
		t.Fatalf("white pieces have no destinations on black's turn, got %s", got)
	}
	if got := e.LegalDestinations(sq(1, 3)); got != NewSquareSet(sq(2, 3), sq(3, 3)) {
		t.Fatalf("unexpected black pawn destinations %s", got)
	}
}

func TestCaptureMarksPieceCaptured(t *testing.T) {
	e := New()
	snap := click(t, e,
		sq(6, 4), sq(4, 4),
		sq(1, 3), sq(3, 3),
		sq(4, 4), sq(3, 3),
	)
	captured := snap.Captured(Black)
	if len(captured) != 1 || captured[0].Kind != Pawn {
		t.Fatalf("expected one captured black pawn, got %v", captured)
	}
	if len(snap.Pieces) != MaxPieces {
		t.Fatalf("roster size changed to %d", len(snap.Pieces))
	}
	if p, _ := snap.PieceAt(sq(3, 3)); p.Color != White {
		t.Fatalf("expected white pawn on (3,3), got %v", p)
	}
	if err := e.Board().checkConsistency(); err != nil {
		t.Fatal(err)
	}
}

func TestKingsideCastlingCommit(t *testing.T) {
	e := New()
	snap := click(t, e,
		sq(6, 4), sq(4, 4),
		sq(1, 4), sq(3, 4),
		sq(7, 6), sq(5, 5),
		sq(0, 1), sq(2, 2),
		sq(7, 5), sq(4, 2),
		sq(0, 6), sq(2, 5),
	)
	if snap.Turn != White {
		t.Fatalf("expected white to move")
	}
	if !e.LegalDestinations(sq(7, 4)).Has(sq(7, 6)) {
		t.Fatalf("expected castling destination (7,6) in %s", e.LegalDestinations(sq(7, 4)))
	}

	snap = click(t, e, sq(7, 4), sq(7, 6))
	king, _ := snap.PieceAt(sq(7, 6))
	rook, _ := snap.PieceAt(sq(7, 5))
	if king.Kind != King || rook.Kind != Rook || rook.Color != White {
		t.Fatalf("expected king on (7,6) and rook on (7,5), got %v and %v", king, rook)
	}
	if !king.HasMoved || !rook.HasMoved {
		t.Fatalf("expected both castling pieces marked moved")
	}
	for _, empty := range []Square{sq(7, 4), sq(7, 7)} {
		if _, ok := snap.PieceAt(empty); ok {
			t.Fatalf("expected %s empty after castling", empty)
		}
	}
	if *snap.LastMove != (Move{sq(7, 4), sq(7, 6)}) {
		t.Fatalf("unexpected last move %v", snap.LastMove)
	}
}

func TestFoolsMate(t *testing.T) {
	e := New()
	snap := click(t, e,
		sq(6, 5), sq(5, 5),
		sq(1, 4), sq(3, 4),
		sq(6, 6), sq(4, 6),
		sq(0, 3), sq(4, 7),
	)
	if !snap.Check.WhiteInCheck || snap.Check.BlackInCheck {
		t.Fatalf("expected only white in check, got %+v", snap.Check)
	}
	if snap.Result == nil || snap.Result.Winner != Black {
		t.Fatalf("expected checkmate won by black, got %+v", snap.Result)
	}
	if snap.State != GameOver {
		t.Fatalf("expected GameOver, got %s", snap.State)
	}
}

func TestQueenMateAgainstCorneredKing(t *testing.T) {
	e := newPosition(t, White,
		at(0, 4, Black, King),
		at(2, 3, White, Queen),
		moved(at(2, 4, White, King)),
	)
	if e.Snapshot().Result != nil {
		t.Fatalf("no result before the mating move")
	}
	snap := click(t, e, sq(2, 3), sq(1, 4))
	if !snap.Check.BlackInCheck {
		t.Fatalf("expected black in check")
	}
	if snap.Result == nil || snap.Result.Winner != White {
		t.Fatalf("expected checkmate won by white, got %+v", snap.Result)
	}

	before := e.Snapshot()
	for _, s := range []Square{sq(0, 4), sq(1, 4), sq(2, 4), sq(0, 3)} {
		if got := e.ApplyInteraction(s); got.State != GameOver || got.Selection != nil {
			t.Fatalf("interaction on %s accepted after checkmate", s)
		}
	}
	if after := e.Snapshot(); after.Tiles != before.Tiles {
		t.Fatalf("board changed after checkmate")
	}
	if got := e.LegalDestinations(sq(0, 4)); !got.Empty() {
		t.Fatalf("expected no destinations after checkmate, got %s", got)
	}
}

func TestCheckWithoutMate(t *testing.T) {
	e := newPosition(t, White,
		at(0, 4, Black, King),
		at(3, 3, White, Queen),
		moved(at(7, 4, White, King)),
	)
	snap := click(t, e, sq(3, 3), sq(3, 4))
	if !snap.Check.BlackInCheck || snap.Result != nil || snap.State != Idle {
		t.Fatalf("expected plain check, got %+v state %s", snap.Check, snap.State)
	}
}

func TestResetAndEndSession(t *testing.T) {
	e := New()
	click(t, e, sq(6, 4), sq(4, 4), sq(1, 0))
	e.Reset()
	snap := e.Snapshot()
	if snap.Turn != White || snap.State != Idle || snap.LastMove != nil || snap.Result != nil {
		t.Fatalf("reset did not restore the opening state")
	}
	if snap.Tiles != New().Snapshot().Tiles {
		t.Fatalf("reset board differs from the opening layout")
	}

	e.EndSession()
	if e.Live() {
		t.Fatalf("expected engine closed")
	}
	if n := len(e.Snapshot().Pieces); n != 0 {
		t.Fatalf("expected empty roster after session end, got %d", n)
	}
	expectPanic(t, "interaction after session end", func() { e.ApplyInteraction(sq(6, 4)) })
	expectPanic(t, "zero engine", func() { (&Engine{}).ApplyInteraction(sq(6, 4)) })

	e.Reset()
	if e.ApplyInteraction(sq(6, 4)).State != Selected {
		t.Fatalf("engine unusable after reset")
	}
}

func TestOffBoardSquaresPanic(t *testing.T) {
	e := New()
	expectPanic(t, "interaction", func() { e.ApplyInteraction(sq(8, 0)) })
	expectPanic(t, "destinations", func() { e.LegalDestinations(sq(0, -1)) })
}

func TestSnapshotIsDetached(t *testing.T) {
	e := New()
	click(t, e, sq(6, 4), sq(4, 4), sq(1, 4))
	snap := e.Snapshot()
	snap.Pieces[0].Captured = true
	snap.Tiles[0][0].Occupant = NoPiece
	*snap.Selection = sq(0, 0)
	*snap.LastMove = Move{}

	fresh := e.Snapshot()
	if fresh.Pieces[0].Captured || fresh.Tiles[0][0].Occupant == NoPiece {
		t.Fatalf("snapshot mutation reached the engine")
	}
	if *fresh.Selection != sq(1, 4) || fresh.LastMove.From != sq(6, 4) {
		t.Fatalf("snapshot pointer mutation reached the engine")
	}
}

package engine

import (
	"errors"
	"testing"
)

func TestStandardBoard(t *testing.T) {
	b := standardBoard()
	if err := b.checkConsistency(); err != nil {
		t.Fatalf("standard board inconsistent: %v", err)
	}
	if got := len(b.Pieces()); got != MaxPieces {
		t.Fatalf("expected %d pieces, got %d", MaxPieces, got)
	}

	tests := []struct {
		sq    Square
		color Color
		kind  Kind
	}{
		{sq(0, 4), Black, King},
		{sq(0, 3), Black, Queen},
		{sq(1, 0), Black, Pawn},
		{sq(6, 7), White, Pawn},
		{sq(7, 0), White, Rook},
		{sq(7, 1), White, Knight},
		{sq(7, 2), White, Bishop},
		{sq(7, 4), White, King},
	}
	for _, tt := range tests {
		p, ok := b.At(tt.sq)
		if !ok {
			t.Fatalf("no piece on %s", tt.sq)
		}
		if p.Color != tt.color || p.Kind != tt.kind {
			t.Errorf("%s: expected %s %s, got %s", tt.sq, tt.color, tt.kind, p)
		}
		if got, _ := b.SquareOf(p.ID); got != tt.sq {
			t.Errorf("piece %d cached on %s, expected %s", p.ID, got, tt.sq)
		}
	}
	for r := 2; r < 6; r++ {
		for c := 0; c < BoardSize; c++ {
			if _, ok := b.At(sq(r, c)); ok {
				t.Errorf("expected %s empty", sq(r, c))
			}
		}
	}
}

func TestSetupValidation(t *testing.T) {
	tests := []struct {
		name  string
		setup Setup
	}{
		{"off board", Setup{Pieces: []Placement{at(8, 0, White, Pawn)}}},
		{"duplicate square", Setup{Pieces: []Placement{at(3, 3, White, Pawn), at(3, 3, Black, Pawn)}}},
		{"two kings", Setup{Pieces: []Placement{at(7, 4, White, King), at(7, 5, White, King)}}},
		{"bad kind", Setup{Pieces: []Placement{at(3, 3, White, Kind(42))}}},
		{"bad turn", Setup{Turn: Color(7)}},
		{"too many", Setup{Pieces: append(StandardSetup().Pieces, at(4, 4, White, Queen))}},
		{"no kings", Setup{Pieces: []Placement{at(3, 3, White, Pawn)}}},
		{"no black king", Setup{Pieces: []Placement{at(7, 4, White, King)}}},
		{"no white king", Setup{Turn: Black, Pieces: []Placement{at(0, 4, Black, King), at(1, 4, Black, Pawn)}}},
		{"idle side in check", Setup{Turn: White, Pieces: []Placement{
			at(7, 4, White, King),
			at(3, 4, White, Rook),
			at(0, 4, Black, King),
		}}},
		{"idle side in check by pawn", Setup{Turn: Black, Pieces: []Placement{
			at(7, 4, White, King),
			at(6, 3, Black, Pawn),
			at(0, 4, Black, King),
		}}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFromSetup(tt.setup)
			if !errors.Is(err, ErrInvalidSetup) {
				t.Fatalf("expected ErrInvalidSetup, got %v", err)
			}
		})
	}
}

func TestSetupSideToMoveMayBeInCheck(t *testing.T) {
	e := newPosition(t, Black,
		at(7, 4, White, King),
		at(3, 4, White, Rook),
		at(0, 4, Black, King),
	)
	if !e.Snapshot().Check.BlackInCheck {
		t.Fatalf("expected black in check")
	}
	if got := e.LegalDestinations(sq(3, 4)); !got.Empty() {
		t.Fatalf("white may not move on black's turn, got %s", got)
	}
}

func TestPlayCaptureKeepsRosterStable(t *testing.T) {
	b := boardOf(t, at(4, 4, White, Rook), at(1, 4, Black, Knight))
	victim, _ := b.At(sq(1, 4))
	b.play(sq(4, 4), sq(1, 4))

	if err := b.checkConsistency(); err != nil {
		t.Fatalf("inconsistent after capture: %v", err)
	}
	if len(b.Pieces()) != 2 {
		t.Fatalf("roster shrank after capture")
	}
	if p := b.Pieces()[victim.ID]; !p.Captured {
		t.Fatalf("expected %s captured", p)
	}
	if _, ok := b.SquareOf(victim.ID); ok {
		t.Fatalf("captured piece still has a square")
	}
	rook, _ := b.At(sq(1, 4))
	if rook.Kind != Rook || !rook.HasMoved {
		t.Fatalf("expected moved rook on (1,4), got %+v", rook)
	}
}

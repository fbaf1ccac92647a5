package engine

import "testing"

func sq(row, col int) Square { return Square{Row: row, Col: col} }

func at(row, col int, c Color, k Kind) Placement {
	return Placement{Square: sq(row, col), Color: c, Kind: k}
}

func moved(p Placement) Placement {
	p.HasMoved = true
	return p
}

func newPosition(t *testing.T, turn Color, pieces ...Placement) *Engine {
	t.Helper()
	e, err := NewFromSetup(Setup{Pieces: pieces, Turn: turn})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	return e
}

func boardOf(t *testing.T, pieces ...Placement) *Board {
	t.Helper()
	b, err := Setup{Pieces: pieces}.board()
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	return &b
}

func click(t *testing.T, e *Engine, squares ...Square) Snapshot {
	t.Helper()
	var snap Snapshot
	for _, s := range squares {
		snap = e.ApplyInteraction(s)
	}
	return snap
}

func expectPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", what)
		}
	}()
	fn()
}

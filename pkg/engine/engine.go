package engine

// State is the controller's interaction state.
type State int

const (
	Idle State = iota
	Selected
	GameOver
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Selected:
		return "Selected"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Move is a committed (from, to) pair.
type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

func (m Move) String() string {
	return m.From.Algebraic() + m.To.Algebraic()
}

type CheckStatus struct {
	WhiteInCheck bool `json:"whiteInCheck"`
	BlackInCheck bool `json:"blackInCheck"`
}

// Of returns the check flag of color c.
func (cs CheckStatus) Of(c Color) bool {
	if c == White {
		return cs.WhiteInCheck
	}
	return cs.BlackInCheck
}

// Result is only ever a checkmate.
type Result struct {
	Winner Color `json:"winner"`
}

// Engine owns one game session: the board, the side to move, the current
// selection and the derived check and checkmate status. It is not safe for
// concurrent use; callers serialize interactions.
type Engine struct {
	board     Board
	turn      Color
	selection *Square
	allowed   SquareSet
	lastMove  *Move
	check     CheckStatus
	result    *Result
	live      bool
}

// New starts a session from the standard layout with white to move.
func New() *Engine {
	e := &Engine{}
	e.Reset()
	return e
}

// NewFromSetup starts a session from an arbitrary position.
func NewFromSetup(setup Setup) (*Engine, error) {
	b, err := setup.playable()
	if err != nil {
		return nil, err
	}
	e := &Engine{board: b, turn: setup.Turn, live: true}
	e.updateStatus()
	return e, nil
}

// Reset returns to the standard opening position with nothing selected.
func (e *Engine) Reset() {
	*e = Engine{board: standardBoard(), turn: White, live: true}
	e.updateStatus()
}

// EndSession clears the board. The engine rejects interactions until Reset.
func (e *Engine) EndSession() {
	*e = Engine{board: emptyBoard()}
}

func (e *Engine) Live() bool { return e.live }

func (e *Engine) Turn() Color { return e.turn }

func (e *Engine) State() State {
	switch {
	case e.result != nil:
		return GameOver
	case e.selection != nil:
		return Selected
	default:
		return Idle
	}
}

// Board exposes the live position for read-only queries.
func (e *Engine) Board() *Board { return &e.board }

// LegalDestinations lists where the piece on origin may legally move. It is
// empty unless origin holds a piece of the side to move.
func (e *Engine) LegalDestinations(origin Square) SquareSet {
	e.mustBeLive()
	mustBeOnBoard(origin)
	if e.result != nil {
		return 0
	}
	if p, ok := e.board.At(origin); !ok || p.Color != e.turn {
		return 0
	}
	return e.board.LegalMoves(origin)
}

// ApplyInteraction feeds one square click through the selection state machine.
// Clicks that mean nothing in the current state are ignored.
func (e *Engine) ApplyInteraction(sq Square) Snapshot {
	e.mustBeLive()
	mustBeOnBoard(sq)
	switch e.State() {
	case Idle:
		if e.ownsSquare(sq) {
			e.selectSquare(sq)
		}
	case Selected:
		switch from := *e.selection; {
		case sq == from:
			e.clearSelection()
		case e.allowed.Has(sq):
			e.commit(from, sq)
		case e.ownsSquare(sq):
			e.selectSquare(sq)
		default:
			e.clearSelection()
		}
	}
	return e.Snapshot()
}

func (e *Engine) ownsSquare(sq Square) bool {
	p, ok := e.board.At(sq)
	return ok && p.Color == e.turn
}

func (e *Engine) selectSquare(sq Square) {
	e.selection = &sq
	e.allowed = e.board.LegalMoves(sq)
}

func (e *Engine) clearSelection() {
	e.selection = nil
	e.allowed = 0
}

func (e *Engine) commit(from, to Square) {
	e.board.play(from, to)
	e.lastMove = &Move{From: from, To: to}
	e.clearSelection()
	e.turn = e.turn.Opponent()
	e.updateStatus()
}

// updateStatus derives check flags for both kings and the checkmate result for
// the side to move.
func (e *Engine) updateStatus() {
	e.check = CheckStatus{
		WhiteInCheck: e.board.InCheck(White),
		BlackInCheck: e.board.InCheck(Black),
	}
	e.result = nil
	if e.check.Of(e.turn) && !e.board.HasLegalMove(e.turn) {
		e.result = &Result{Winner: e.turn.Opponent()}
	}
}

func (e *Engine) mustBeLive() {
	if !e.live {
		panic("engine: interaction outside a game session")
	}
}

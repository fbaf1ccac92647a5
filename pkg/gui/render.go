package gui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/notnil/chess"
	"github.com/qnkhuat/hotseat/pkg/engine"
	"github.com/rivo/tview"
)

const (
	// Rows and columns of the board table: one extra column on the left for
	// the rank labels and one extra row at the bottom for the file labels.
	TableRows = engine.BoardSize + 1
	TableCols = engine.BoardSize + 1

	allowedMark = "·"
)

var figurines = map[engine.Color]map[engine.Kind]chess.Piece{
	engine.White: {
		engine.King:   chess.WhiteKing,
		engine.Queen:  chess.WhiteQueen,
		engine.Rook:   chess.WhiteRook,
		engine.Bishop: chess.WhiteBishop,
		engine.Knight: chess.WhiteKnight,
		engine.Pawn:   chess.WhitePawn,
	},
	engine.Black: {
		engine.King:   chess.BlackKing,
		engine.Queen:  chess.BlackQueen,
		engine.Rook:   chess.BlackRook,
		engine.Bishop: chess.BlackBishop,
		engine.Knight: chess.BlackKnight,
		engine.Pawn:   chess.BlackPawn,
	},
}

// Figurine returns the unicode chess symbol of p
func Figurine(p engine.Piece) string {
	return figurines[p.Color][p.Kind].String()
}

func notnilSquare(sq engine.Square) chess.Square {
	return chess.Square((engine.BoardSize-1-sq.Row)*engine.BoardSize + sq.Col)
}

// Diagram draws the position as text, white at the bottom
func Diagram(snap engine.Snapshot) string {
	pieces := make(map[chess.Square]chess.Piece)
	for r := 0; r < engine.BoardSize; r++ {
		for c := 0; c < engine.BoardSize; c++ {
			sq := engine.Square{Row: r, Col: c}
			if p, ok := snap.PieceAt(sq); ok {
				pieces[notnilSquare(sq)] = figurines[p.Color][p.Kind]
			}
		}
	}
	return chess.NewBoard(pieces).Draw()
}

// TableToSquare maps a table cell to the board square it shows. Label cells
// are not squares.
func TableToSquare(row, col int) (engine.Square, bool) {
	sq := engine.Square{Row: row, Col: col - 1}
	return sq, sq.Valid()
}

// SquareToTable is the inverse of TableToSquare
func SquareToTable(sq engine.Square) (row, col int) {
	return sq.Row, sq.Col + 1
}

// SquareBg picks the tile color. Selection wins over destinations, then the
// last move tiles, then the checked king, then the plain board shade.
func SquareBg(snap engine.Snapshot, sq engine.Square, t Theme) tcell.Color {
	tile := snap.Tiles[sq.Row][sq.Col]
	switch {
	case tile.Selected:
		return t.SquareSelected
	case tile.Allowed:
		return t.SquareAllowed
	case snap.LastMove != nil && snap.LastMove.From == sq:
		return t.SquareLastFrom
	case snap.LastMove != nil && snap.LastMove.To == sq:
		return t.SquareLastTo
	case isCheckedKing(snap, sq):
		return t.SquareCheck
	case tile.Shade == 0:
		return t.SquareLight
	default:
		return t.SquareDark
	}
}

func isCheckedKing(snap engine.Snapshot, sq engine.Square) bool {
	p, ok := snap.PieceAt(sq)
	return ok && p.Kind == engine.King && snap.Check.Of(p.Color)
}

// squareText is two columns wide to keep the tiles square
func squareText(snap engine.Snapshot, sq engine.Square) string {
	if p, ok := snap.PieceAt(sq); ok {
		return fmt.Sprintf(" %s", Figurine(p))
	}
	if snap.Tiles[sq.Row][sq.Col].Allowed {
		return " " + allowedMark
	}
	return "  "
}

// RenderBoard fills table with the snapshot: rank labels on the left, file
// labels at the bottom and one selectable cell per square.
func RenderBoard(table *tview.Table, snap engine.Snapshot, t Theme) {
	for r := 0; r < engine.BoardSize; r++ {
		rank := tview.NewTableCell(fmt.Sprint(engine.BoardSize - r)).
			SetAlign(tview.AlignCenter).
			SetTextColor(t.Rank).
			SetSelectable(false)
		table.SetCell(r, 0, rank)

		for c := 0; c < engine.BoardSize; c++ {
			sq := engine.Square{Row: r, Col: c}
			fg := t.White
			if p, ok := snap.PieceAt(sq); ok && p.Color == engine.Black {
				fg = t.Black
			}
			row, col := SquareToTable(sq)
			cell := tview.NewTableCell(squareText(snap, sq)).
				SetAlign(tview.AlignCenter).
				SetTextColor(fg).
				SetBackgroundColor(SquareBg(snap, sq, t))
			table.SetCell(row, col, cell)
		}
	}

	table.SetCell(engine.BoardSize, 0, tview.NewTableCell("").SetSelectable(false)) // The bottom left tile is not used
	for c := 0; c < engine.BoardSize; c++ {
		file := tview.NewTableCell(fmt.Sprintf(" %c", 'a'+c)).
			SetAlign(tview.AlignCenter).
			SetTextColor(t.File).
			SetSelectable(false)
		table.SetCell(engine.BoardSize, c+1, file)
	}
}

// StatusLine describes whose turn it is, check and checkmate
func StatusLine(snap engine.Snapshot, white, black string) string {
	name := func(c engine.Color) string {
		n := white
		if c == engine.Black {
			n = black
		}
		if n == "" {
			return c.String()
		}
		return fmt.Sprintf("%s (%s)", c, n)
	}

	if snap.Result != nil {
		return fmt.Sprintf("Checkmate! %s wins", name(snap.Result.Winner))
	}
	status := fmt.Sprintf("%s to move", name(snap.Turn))
	if snap.Check.Of(snap.Turn) {
		status += ", in check"
	}
	if snap.LastMove != nil {
		status += fmt.Sprintf(" | last %s", snap.LastMove)
	}
	return status
}

// CapturedLine lists the figurines of the captured pieces of color c
func CapturedLine(snap engine.Snapshot, c engine.Color) string {
	var b strings.Builder
	for _, p := range snap.Captured(c) {
		b.WriteString(Figurine(p))
	}
	return b.String()
}

package pkg

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/hotseat/pkg/engine"
	"github.com/qnkhuat/hotseat/pkg/gui"
	"github.com/rivo/tview"
)

const (
	PageIntro    = "intro"
	PageTitle    = "title"
	PageGame     = "game"
	PageGameOver = "gameover"
)

const banner = `
 _           _                 _
| |__   ___ | |_ ___  ___  __ _| |_
| '_ \ / _ \| __/ __|/ _ \/ _' | __|
| | | | (_) | |_\__ \  __/ (_| | |_
|_| |_|\___/ \__|___/\___|\__,_|\__|
`

// Client is the terminal front end of one session: an intro screen, a title
// menu and the board.
type Client struct {
	App      *tview.Application
	Pages    *tview.Pages
	Board    *tview.Table
	Status   *tview.TextView
	Message  *tview.TextView
	Captured [2]*tview.TextView
	Menu     *tview.List
	GameOver *tview.Modal
	Session  *Session
	Theme    gui.Theme
}

func NewClient(session *Session, theme gui.Theme) *Client {
	cl := &Client{
		App:     tview.NewApplication(),
		Pages:   tview.NewPages(),
		Board:   tview.NewTable(),
		Status:  tview.NewTextView(),
		Message: tview.NewTextView(),
		Session: session,
		Theme:   theme,
	}

	intro := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText(fmt.Sprintf("%s\n%s\n\n%s", banner, session.Name, ActionPressEnter)).
		SetDoneFunc(func(key tcell.Key) {
			switch key {
			case tcell.KeyEnter:
				cl.ShowPage(PageTitle)
			case tcell.KeyEscape:
				cl.Stop()
			}
		})

	cl.Menu = tview.NewList().
		AddItem(string(ActionPlayFriend), ActionPlayFriendHint, 'f', func() {
			cl.ShowPage(PageGame)
		}).
		AddItem(ActionPlayComputer, ActionPlayComputerHint, 'c', func() {
			cl.Message.SetText(ActionPlayComputerHint)
		}).
		AddItem(ActionExit, ActionExitHint, 'q', cl.Stop).
		SetDoneFunc(func() {
			cl.ShowPage(PageIntro)
		})
	title := tview.NewGrid().
		SetRows(-1, 10, 1, -1).
		SetColumns(-1, 40, -1).
		AddItem(cl.Menu, 1, 1, 1, 1, 0, 0, true).
		AddItem(cl.Message, 2, 1, 1, 1, 0, 0, false)

	for i := range cl.Captured {
		cl.Captured[i] = tview.NewTextView()
	}
	help := tview.NewTextView().SetText(ActionGameHelp)
	game := tview.NewGrid().
		SetRows(-1, 1, gui.TableRows, 1, 1, 1, -1).
		SetColumns(-1, 3*gui.TableCols, 30, -1).
		AddItem(cl.Captured[engine.White], 1, 1, 1, 1, 0, 0, false).
		AddItem(cl.Board, 2, 1, 1, 1, 0, 0, true).
		AddItem(cl.Captured[engine.Black], 3, 1, 1, 1, 0, 0, false).
		AddItem(cl.Status, 4, 1, 1, 2, 0, 0, false).
		AddItem(help, 5, 1, 1, 2, 0, 0, false)

	cl.GameOver = tview.NewModal().
		AddButtons([]string{ActionNewGame, ActionContinue}).
		SetDoneFunc(func(_ int, label string) {
			if label == ActionNewGame {
				cl.Render(cl.Session.Reset())
			}
			cl.Pages.HidePage(PageGameOver)
			cl.App.SetFocus(cl.Board)
		})

	cl.Pages.
		AddPage(PageIntro, intro, true, true).
		AddPage(PageTitle, title, true, false).
		AddPage(PageGame, game, true, false).
		AddPage(PageGameOver, cl.GameOver, false, false)

	cl.initBoard()
	cl.Render(session.Snapshot())
	return cl
}

func (cl *Client) initBoard() {
	cl.Board.SetSelectable(true, true)
	row, col := gui.SquareToTable(engine.Square{Row: engine.BoardSize - 2, Col: 4})
	cl.Board.Select(row, col).
		SetSelectedFunc(cl.onSelected).
		SetDoneFunc(func(key tcell.Key) {
			if key == tcell.KeyEscape {
				cl.Stop()
			}
		})
	cl.Board.SetInputCapture(cl.gameInput)
}

// gameInput handles the keys the table does not use
func (cl *Client) gameInput(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyRune && event.Rune() == 'r' {
		cl.Render(cl.Session.Reset())
		cl.ShowPage(PageIntro)
		return nil
	}
	return event
}

func (cl *Client) onSelected(row, col int) {
	sq, ok := gui.TableToSquare(row, col)
	if !ok {
		return
	}
	snap := cl.Session.Interact(sq)
	cl.Render(snap)
	if snap.Result != nil {
		cl.GameOver.SetText(gui.StatusLine(snap, cl.Session.Players[0].Name, cl.Session.Players[1].Name))
		cl.Pages.ShowPage(PageGameOver)
		cl.App.SetFocus(cl.GameOver)
	}
}

// Render redraws every game widget from snap
func (cl *Client) Render(snap engine.Snapshot) {
	gui.RenderBoard(cl.Board, snap, cl.Theme)
	cl.Status.SetTextColor(cl.Theme.Status).
		SetText(gui.StatusLine(snap, cl.Session.Players[0].Name, cl.Session.Players[1].Name))
	for c, view := range cl.Captured {
		view.SetTextColor(cl.Theme.Msg).SetText(gui.CapturedLine(snap, engine.Color(c)))
	}
}

// ShowPage switches the screen and focuses its main widget
func (cl *Client) ShowPage(name string) {
	cl.Pages.SwitchToPage(name)
	switch name {
	case PageTitle:
		cl.Message.SetText("")
		cl.App.SetFocus(cl.Menu)
	case PageGame:
		cl.App.SetFocus(cl.Board)
	}
}

func (cl *Client) Run() error {
	return cl.App.SetRoot(cl.Pages, true).EnableMouse(true).Run()
}

// Stop ends the session and leaves the terminal
func (cl *Client) Stop() {
	cl.Session.Close()
	cl.App.Stop()
}

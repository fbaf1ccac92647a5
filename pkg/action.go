package pkg

type Action string

const (
	ActionPlayFriend      Action = "Play friend"
	ActionPlayFriendHint         = "Two players, one keyboard"
	ActionPlayComputer           = "Play computer"
	ActionPlayComputerHint       = "Not available yet"
	ActionExit                   = "Exit"
	ActionExitHint               = "Leave the game"
	ActionNewGame                = "New game"
	ActionContinue               = "Look at the board"
	ActionPressEnter             = "Press Enter to continue, Esc to quit"
	ActionGameHelp               = "Arrows move, Enter selects, r restarts, Esc quits"
)

package pkg

import (
	"fmt"

	"github.com/qnkhuat/hotseat/pkg/engine"
)

// Player is one side of a same-device game. Both players share the keyboard.
type Player struct {
	Name  string       `json:"name"`
	Color engine.Color `json:"color"`
}

func NewPlayers(white, black string) [2]Player {
	return [2]Player{
		{Name: white, Color: engine.White},
		{Name: black, Color: engine.Black},
	}
}

func (p Player) String() string {
	if p.Name == "" {
		return p.Color.String()
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.Color)
}

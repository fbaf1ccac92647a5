package gui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// ErrNoTheme is returned when a theme name matches neither the config nor the
// built-in themes
var ErrNoTheme = errors.New("theme: no theme found")

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name           string      `json:"name"`
	SquareDark     tcell.Color `json:"squareDark"`
	SquareLight    tcell.Color `json:"squareLight"`
	SquareSelected tcell.Color `json:"squareSelected"`
	SquareAllowed  tcell.Color `json:"squareAllowed"`
	SquareLastFrom tcell.Color `json:"squareLastFrom"`
	SquareLastTo   tcell.Color `json:"squareLastTo"`
	SquareCheck    tcell.Color `json:"squareCheck"`
	White          tcell.Color `json:"white"`
	Black          tcell.Color `json:"black"`
	Rank           tcell.Color `json:"rank"`
	File           tcell.Color `json:"file"`
	Msg            tcell.Color `json:"msg"`
	Status         tcell.Color `json:"status"`
}

// ThemeHex is used for dynamically coloring the UI
type ThemeHex struct {
	Name           string `json:"name"`
	SquareDark     string `json:"squareDark"`
	SquareLight    string `json:"squareLight"`
	SquareSelected string `json:"squareSelected"`
	SquareAllowed  string `json:"squareAllowed"`
	SquareLastFrom string `json:"squareLastFrom"`
	SquareLastTo   string `json:"squareLastTo"`
	SquareCheck    string `json:"squareCheck"`
	White          string `json:"white"`
	Black          string `json:"black"`
	Rank           string `json:"rank"`
	File           string `json:"file"`
	Msg            string `json:"msg"`
	Status         string `json:"status"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.SquareDark.Hex()),
		fmtHex(t.SquareLight.Hex()),
		fmtHex(t.SquareSelected.Hex()),
		fmtHex(t.SquareAllowed.Hex()),
		fmtHex(t.SquareLastFrom.Hex()),
		fmtHex(t.SquareLastTo.Hex()),
		fmtHex(t.SquareCheck.Hex()),
		fmtHex(t.White.Hex()),
		fmtHex(t.Black.Hex()),
		fmtHex(t.Rank.Hex()),
		fmtHex(t.File.Hex()),
		fmtHex(t.Msg.Hex()),
		fmtHex(t.Status.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.SquareDark),
		tcell.GetColor(t.SquareLight),
		tcell.GetColor(t.SquareSelected),
		tcell.GetColor(t.SquareAllowed),
		tcell.GetColor(t.SquareLastFrom),
		tcell.GetColor(t.SquareLastTo),
		tcell.GetColor(t.SquareCheck),
		tcell.GetColor(t.White),
		tcell.GetColor(t.Black),
		tcell.GetColor(t.Rank),
		tcell.GetColor(t.File),
		tcell.GetColor(t.Msg),
		tcell.GetColor(t.Status),
	}
}

// Themes lists the built-in themes
var Themes = []Theme{ThemeBasic, ThemeRaylib}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	// First check if want is in the provided config (override)
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	for _, t := range Themes {
		if t.Name == want {
			return t, nil
		}
	}

	return Theme{}, fmt.Errorf("%w: %q", ErrNoTheme, want)
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",        // Name
	tcell.Color188, // SquareDark
	tcell.Color230, // SquareLight
	tcell.Color45,  // SquareSelected
	tcell.Color122, // SquareAllowed
	tcell.Color220, // SquareLastFrom
	tcell.Color228, // SquareLastTo
	tcell.Color167, // SquareCheck
	tcell.Color232, // White
	tcell.Color232, // Black
	tcell.Color247, // Rank
	tcell.Color247, // File
	tcell.Color160, // Msg
	tcell.Color247, // Status
}

// ThemeRaylib follows the gray board with yellow last move tiles
var ThemeRaylib = Theme{
	"raylib",           // Name
	tcell.Color243,     // SquareDark
	tcell.Color250,     // SquareLight
	tcell.Color33,      // SquareSelected
	tcell.Color114,     // SquareAllowed
	tcell.Color214,     // SquareLastFrom
	tcell.Color227,     // SquareLastTo
	tcell.Color196,     // SquareCheck
	tcell.Color231,     // White
	tcell.Color16,      // Black
	tcell.ColorDefault, // Rank
	tcell.ColorDefault, // File
	tcell.Color196,     // Msg
	tcell.ColorDefault, // Status
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Pending string
	BoxUnchecked, BoxChecked                      string
	CornerTL, CornerTR, CornerBL, CornerBR        string
	H, V                                          string
	SymDone, SymPending                           string
	NoColor                                       bool

	// Palette colors the lipgloss-rendered TUI.
	Palette Palette
}

// Palette holds the lipgloss colors for one theme.
type Palette struct {
	Title, Success, Pending, Accent, Error, Border lipgloss.TerminalColor
}

// ThemeByName returns the named theme; unknown names get classic.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:  "neon",
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Pending: "\033[93m",
			BoxUnchecked: "◻", BoxChecked: "◼",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymDone: "✔", SymPending: "•",
			Palette: Palette{
				Title: lipgloss.Color("13"), Success: lipgloss.Color("10"),
				Pending: lipgloss.Color("11"), Accent: lipgloss.Color("14"),
				Error: lipgloss.Color("9"), Border: lipgloss.Color("13"),
			},
		}
	case "mono":
		return Theme{
			Name:         "mono",
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymDone: "x", SymPending: "-",
			NoColor: true,
			Palette: Palette{
				Title: lipgloss.NoColor{}, Success: lipgloss.NoColor{},
				Pending: lipgloss.NoColor{}, Accent: lipgloss.NoColor{},
				Error: lipgloss.NoColor{}, Border: lipgloss.NoColor{},
			},
		}
	default:
		return Theme{
			Name:  "classic",
			Title: bold, Muted: fgGray, Accent: fgBlue,
			Success: fgGreen, Error: fgRed, Pending: fgYellow,
			BoxUnchecked: "☐", BoxChecked: "☑",
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
			SymDone: "✔", SymPending: "•",
			Palette: Palette{
				Title: lipgloss.NoColor{}, Success: lipgloss.Color("42"),
				Pending: lipgloss.Color("214"), Accent: lipgloss.Color("12"),
				Error: lipgloss.Color("9"), Border: lipgloss.Color("8"),
			},
		}
	}
}

// Border turns the theme's box characters into a lipgloss border.
func (t Theme) Border() lipgloss.Border {
	return lipgloss.Border{
		Top: t.H, Bottom: t.H, Left: t.V, Right: t.V,
		TopLeft: t.CornerTL, TopRight: t.CornerTR,
		BottomLeft: t.CornerBL, BottomRight: t.CornerBR,
	}
}

package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/ui"
)

// styles are the lipgloss styles and glyphs derived from a ui.Theme.
type styles struct {
	title, success, pending, accent, muted, errText lipgloss.Style
	selected, done, help, frame                     lipgloss.Style

	boxChecked, boxUnchecked string
	symDone, symPending      string
}

func newStyles(t ui.Theme) styles {
	plain := lipgloss.NewStyle()
	st := styles{
		title: plain, success: plain, pending: plain, accent: plain,
		muted: plain, errText: plain, selected: plain, done: plain, help: plain,
		frame:        plain.Border(t.Border()).Padding(0, 1),
		boxChecked:   t.BoxChecked,
		boxUnchecked: t.BoxUnchecked,
		symDone:      t.SymDone,
		symPending:   t.SymPending,
	}
	if t.NoColor {
		return st
	}

	p := t.Palette
	st.title = plain.Bold(true).Foreground(p.Title)
	st.success = plain.Foreground(p.Success)
	st.pending = plain.Foreground(p.Pending)
	st.accent = plain.Foreground(p.Accent)
	st.muted = plain.Faint(true)
	st.errText = plain.Foreground(p.Error).Bold(true)
	st.selected = plain.Bold(true).Reverse(true)
	st.done = plain.Faint(true).Strikethrough(true)
	st.help = plain.Faint(true)
	st.frame = st.frame.BorderForeground(p.Border)
	return st
}

// listStyles returns the list chrome styles; colorless themes get plain ones.
func (st styles) listStyles(noColor bool) list.Styles {
	ls := list.DefaultStyles()
	if noColor {
		plain := lipgloss.NewStyle()
		ls.TitleBar = plain
		ls.FilterPrompt = plain
		ls.FilterCursor = plain
		ls.StatusBar = plain
		ls.StatusEmpty = plain
		ls.StatusBarActiveFilter = plain
		ls.StatusBarFilterCount = plain
		ls.NoItems = plain
	}
	ls.Title = st.title
	ls.HelpStyle = st.help
	ls.PaginationStyle = st.help
	return ls
}

// Package tui is the interactive bubbletea front end for a todo store.
//
// The store is the only source of truth. After every mutation the list
// items are rebuilt from store.Items() in order, so an item's unfiltered list
// position is its store index; with a filter active, GlobalIndex maps back.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Options configure the interactive list.
type Options struct {
	Theme     ui.Theme // zero value means the classic theme
	CharLimit int
	Log       *log.Logger
}

// listItem adapts a store item to bubbles/list.Item.
type listItem struct {
	item model.Item
}

func (i listItem) FilterValue() string { return i.item.Text }

// Custom delegate to control how items render (single line)
type itemDelegate struct {
	st styles
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box := d.st.muted.Render(d.st.boxUnchecked)
	text := it.item.Text
	if it.item.Completed {
		box = d.st.success.Render(d.st.boxChecked)
		text = d.st.done.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.st.selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
)

type keyMap struct {
	add, edit, toggle, remove, quit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		remove: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model implements tea.Model over a store.
type Model struct {
	store *store.Store
	log   *log.Logger
	keys  keyMap
	st    styles

	list list.Model
	ti   textinput.Model

	mode      mode
	editIndex int
	err       string
	width     int
	height    int
}

// New builds the TUI model for s.
func New(s *store.Store, opt Options) Model {
	logger := opt.Log
	if logger == nil {
		logger = log.New(io.Discard)
	}

	theme := opt.Theme
	if theme.Name == "" {
		theme = ui.ThemeByName("")
	}
	st := newStyles(theme)

	l := list.New(nil, itemDelegate{st: st}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles = st.listStyles(theme.NoColor)
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	l.DisableQuitKeybindings()

	keys := newKeyMap()
	extra := func() []key.Binding {
		return []key.Binding{keys.add, keys.edit, keys.toggle, keys.remove, keys.quit}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = opt.CharLimit

	m := Model{
		store:     s,
		log:       logger.WithPrefix("tui"),
		keys:      keys,
		st:        st,
		list:      l,
		ti:        ti,
		editIndex: -1,
		width:     80,
		height:    24,
	}
	m.resize()
	m.refresh()
	return m
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(s *store.Store, opt Options) error {
	p := tea.NewProgram(New(s, opt), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// refresh rebuilds list items and the header from the store.
// An active filter is re-applied before returning, so the visible items
// never point at stale store positions.
func (m *Model) refresh() {
	items := m.store.Items()
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, listItem{item: it})
	}
	if cmd := m.list.SetItems(li); cmd != nil {
		m.list, _ = m.list.Update(cmd())
	}

	pending := m.store.Incomplete()
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		m.st.title.Render("Todos"),
		m.st.success.Render(m.st.symDone), len(items)-pending,
		m.st.pending.Render(m.st.symPending), pending,
		m.st.accent.Render("Total"), len(items),
	)

	if n := len(m.list.VisibleItems()); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
}

// selected returns the store index under the cursor, or -1.
func (m Model) selected() int {
	if len(m.list.VisibleItems()) == 0 {
		return -1
	}
	return m.list.GlobalIndex()
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = wm.Width, wm.Height
		m.resize()
		return m, nil
	}

	switch m.mode {
	case modeAdd, modeEdit:
		return m.updateInput(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	// While the filter prompt is open every key belongs to it.
	if !ok || m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(km, m.keys.quit):
		if km.String() == "esc" && m.list.FilterState() != list.Unfiltered {
			break // let the list clear the filter
		}
		return m, tea.Quit

	case key.Matches(km, m.keys.toggle):
		if i := m.selected(); i >= 0 {
			m.apply("toggle", m.store.Toggle(i))
			m.refresh()
		}
		return m, nil

	case key.Matches(km, m.keys.remove):
		if i := m.selected(); i >= 0 {
			m.apply("remove", m.store.Remove(i))
			m.refresh()
		}
		return m, nil

	case key.Matches(km, m.keys.add):
		m.mode = modeAdd
		m.err = ""
		m.ti.SetValue("")
		m.ti.Placeholder = "New item text..."
		m.resize()
		return m, m.ti.Focus()

	case key.Matches(km, m.keys.edit):
		i := m.selected()
		if i < 0 {
			return m, nil
		}
		it, err := m.store.Item(i)
		if err != nil {
			m.apply("edit", err)
			return m, nil
		}
		m.mode = modeEdit
		m.editIndex = i
		m.err = ""
		m.ti.SetValue(it.Text)
		m.ti.CursorEnd()
		m.ti.Placeholder = "Edit item text..."
		m.resize()
		return m, m.ti.Focus()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			text := m.ti.Value()
			added := m.mode == modeAdd
			if added {
				m.store.Add(text)
			} else {
				m.apply("edit", m.store.Edit(m.editIndex, text))
			}
			m.closeInput()
			if added {
				m.list.ResetFilter()
			}
			m.refresh()
			if added {
				m.list.Select(m.store.Len() - 1)
			}
			return m, nil
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.mode = modeBrowse
	m.editIndex = -1
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

// apply records a failed store call; the list is left as the store has it.
func (m *Model) apply(op string, err error) {
	if err != nil {
		m.err = err.Error()
		m.log.Error("store operation failed", "op", op, "err", err)
		return
	}
	m.err = ""
}

func (m *Model) resize() {
	h := m.height - 4
	if m.mode != modeBrowse {
		h -= 4
	}
	if m.err != "" {
		h--
	}
	if h < 1 {
		h = 1
	}
	w := m.width - 4
	if w < 10 {
		w = 10
	}
	m.list.SetSize(w, h)
}

func (m Model) View() string {
	content := m.list.View()
	if m.err != "" {
		content += "\n" + m.st.errText.Render(m.err)
	}
	if m.mode != modeBrowse {
		title := "Add new item"
		if m.mode == modeEdit {
			title = "Edit item"
		}
		content += "\n" + m.st.frame.Render(title+"\n"+m.ti.View())
	}
	return m.st.frame.Render(content)
}

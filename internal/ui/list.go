package ui

import (
	"fmt"

	"github.com/Makepad-fr/tada/internal/model"
)

const maxTitle = 80

// List prints the items in a panel with a header and progress bar.
// Indexes shown are 1-based and always refer to the item's list position,
// grouped or not.
func (p *Printer) List(items []model.Item, incomplete int, group bool) {
	t := p.theme
	done := len(items) - incomplete
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		p.C(t.Title, "Todos"),
		p.C(t.Success, t.SymDone), done,
		p.C(t.Pending, t.SymPending), incomplete,
		p.C(t.Accent, "Total"), len(items),
	)

	lines := []string{
		header,
		p.C(t.Muted, ProgressBar(done, len(items), 28)),
		"",
	}
	if group {
		lines = append(lines, p.groupLines(items)...)
	} else {
		lines = append(lines, p.flatLines(items, all(items))...)
	}
	p.Panel(lines)
}

func all(items []model.Item) []int {
	idx := make([]int, len(items))
	for i := range items {
		idx[i] = i
	}
	return idx
}

func (p *Printer) flatLines(items []model.Item, which []int) []string {
	t := p.theme
	if len(which) == 0 {
		return []string{p.C(t.Muted, "no items")}
	}
	out := make([]string, 0, len(which))
	for _, i := range which {
		it := items[i]
		box, color := t.BoxUnchecked, t.Muted
		if it.Completed {
			box, color = t.BoxChecked, t.Success
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			p.Dim(fmt.Sprintf("%2d.", i+1)), p.C(color, box), truncate(it.Text)))
	}
	return out
}

func (p *Printer) groupLines(items []model.Item) []string {
	var pend, done []int
	for i, it := range items {
		if it.Completed {
			done = append(done, i)
		} else {
			pend = append(pend, i)
		}
	}
	section := func(title string, which []int) []string {
		lines := []string{p.C(p.theme.Accent, title)}
		if len(which) == 0 {
			return append(lines, p.C(p.theme.Muted, "(none)"))
		}
		return append(lines, p.flatLines(items, which)...)
	}
	lines := section("Pending", pend)
	lines = append(lines, "")
	return append(lines, section("Done", done)...)
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) > maxTitle {
		return string(r[:maxTitle-3]) + "..."
	}
	return s
}

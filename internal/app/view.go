package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/ripple/internal/todo"
	"github.com/llehouerou/ripple/internal/ui/render"
)

const historyPanelEntries = 8

// View renders the current store state.
func (m Model) View() string {
	st := m.Store.State()

	var sections []string
	sections = append(sections,
		m.Styles.Title("ripple")+m.Styles.Muted.Render("  actions in, state out"),
		"",
		"count: "+m.Styles.Counter.Render(fmt.Sprintf("%d", st.Count)),
		m.filterLine(st),
		"",
	)

	sections = append(sections, m.todoLines(st)...)

	if m.InputActive {
		sections = append(sections, "", "add: "+m.Input.View())
	}

	if m.ShowHistory {
		sections = append(sections, "", m.historyPanel())
	}

	sections = append(sections, "", m.Styles.Help.Render(
		"a add · space toggle · d delete · f filter · +/- count · h history · u undo · q quit",
	))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) filterLine(st todo.Model) string {
	parts := make([]string, 0, 3)
	for _, f := range []todo.Filter{todo.FilterAll, todo.FilterActive, todo.FilterDone} {
		label := f.String()
		if f == st.Filter {
			label = m.Styles.Cursor.Render("[" + label + "]")
		}
		parts = append(parts, label)
	}
	return m.Styles.Muted.Render("filter: ") + strings.Join(parts, " ") +
		m.Styles.Muted.Render(fmt.Sprintf("   %d remaining", st.Remaining()))
}

func (m Model) todoLines(st todo.Model) []string {
	vis := st.Visible()
	if len(vis) == 0 {
		return []string{m.Styles.Muted.Render("nothing here — press a to add a todo")}
	}

	maxText := m.Width - 8
	if maxText < 10 {
		maxText = 40
	}

	lines := make([]string, 0, len(vis))
	for i, it := range vis {
		cursor := "  "
		if i == m.Cursor {
			cursor = m.Styles.Cursor.Render("▸ ")
		}

		box := "[ ]"
		text := render.Truncate(it.Text, maxText)
		if it.Done {
			box = "[x]"
			text = m.Styles.Done.Render(text)
		}

		lines = append(lines, fmt.Sprintf("%s%s %s", cursor, box, text))
	}
	return lines
}

func (m Model) historyPanel() string {
	entries := m.Store.History()
	if len(entries) == 0 {
		return m.Styles.Panel.Render(m.Styles.Muted.Render("history is empty"))
	}

	start := 0
	if len(entries) > historyPanelEntries {
		start = len(entries) - historyPanelEntries
	}

	lines := make([]string, 0, historyPanelEntries+1)
	lines = append(lines, m.Styles.Muted.Render("history"))
	for _, e := range entries[start:] {
		kind := render.PadRight(render.Truncate(e.Kind, 24), 24)
		line := fmt.Sprintf("#%d  %s%s", e.Seq, kind, humanize.Time(e.At))
		if e.Seq == m.JumpSeq {
			line = m.Styles.Cursor.Render(line + "  ← here")
		}
		lines = append(lines, line)
	}

	return m.Styles.Panel.Render(strings.Join(lines, "\n"))
}

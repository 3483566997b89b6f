package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ripple/internal/todo"
)

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case TickMsg:
		if m.ShowHistory {
			return m, tickCmd()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.InputActive {
		return m.handleInputKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "a":
		m.InputActive = true
		m.Input.Focus()
		return m, textinput.Blink

	case "+", "=":
		m.dispatch(todo.IncreaseCount())

	case "-":
		m.dispatch(todo.IncreaseCountBy(-1))

	case "j", "down":
		m.moveCursor(1)

	case "k", "up":
		m.moveCursor(-1)

	case " ":
		if it, ok := m.selected(); ok {
			m.dispatch(todo.ToggleTodo(it.ID))
		}

	case "d":
		if it, ok := m.selected(); ok {
			m.dispatch(todo.RemoveTodo(it.ID))
			m.clampCursor()
		}

	case "f":
		m.dispatch(todo.SetFilter(m.Store.State().Filter.Next()))
		m.clampCursor()

	case "h":
		m.ShowHistory = !m.ShowHistory
		if m.ShowHistory {
			return m, tickCmd()
		}

	case "u":
		m.undo()
	}

	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := strings.TrimSpace(m.Input.Value())
		if text != "" {
			m.dispatch(todo.AddTodo(text))
		}
		m.Input.Reset()
		m.Input.Blur()
		m.InputActive = false
		return m, nil

	case "esc":
		m.Input.Reset()
		m.Input.Blur()
		m.InputActive = false
		return m, nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

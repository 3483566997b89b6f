// Package app is the bubbletea front end of the demo: key presses become
// actions, the ripple store computes the next state, and the view renders
// whatever the store currently holds.
package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/ripple"
	"github.com/llehouerou/ripple/internal/config"
	"github.com/llehouerou/ripple/internal/todo"
	"github.com/llehouerou/ripple/internal/ui/styles"
)

// Model is the root bubbletea model. All domain state lives in the store;
// the fields here are purely presentational (cursor, input prompt, panel
// visibility).
type Model struct {
	Store  *ripple.Store[todo.Model]
	Logger *zap.Logger
	Styles styles.Set

	Input       textinput.Model
	InputActive bool
	ShowHistory bool
	Cursor      int

	// JumpSeq is the journal entry currently installed by undo, or 0 when
	// the newest state is live. Reset on every fresh dispatch.
	JumpSeq uint64

	Width  int
	Height int
}

// New builds the store and the UI model from configuration.
func New(cfg *config.Config, lg *zap.Logger) Model {
	store := ripple.New(
		todo.Model{Count: cfg.InitialCount},
		todo.Reduce,
		ripple.WithHistory[todo.Model](cfg.GetHistoryLimit()),
		ripple.WithMiddleware(ripple.Logging[todo.Model](lg)),
	)

	store.Subscribe(func(_, next todo.Model, act ripple.Action) {
		lg.Debug("state changed",
			zap.String("action", act.Kind()),
			zap.Int("count", next.Count),
			zap.Int("todos", len(next.Todos)),
		)
	})

	input := textinput.New()
	input.Placeholder = "what needs doing?"
	input.CharLimit = 120

	return Model{
		Store:  store,
		Logger: lg,
		Styles: styles.New(cfg.AccentFrom, cfg.AccentTo),
		Input:  input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// selected returns the todo under the cursor, if any.
func (m Model) selected() (todo.Item, bool) {
	vis := m.Store.State().Visible()
	if len(vis) == 0 {
		return todo.Item{}, false
	}
	i := m.Cursor
	if i >= len(vis) {
		i = len(vis) - 1
	}
	return vis[i], true
}

func (m *Model) moveCursor(delta int) {
	vis := m.Store.State().Visible()
	if len(vis) == 0 {
		m.Cursor = 0
		return
	}
	m.Cursor += delta
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if m.Cursor >= len(vis) {
		m.Cursor = len(vis) - 1
	}
}

func (m *Model) clampCursor() {
	m.moveCursor(0)
}

// dispatch forwards an action to the store and drops any pending undo
// position: a fresh dispatch makes the newest state live again.
func (m *Model) dispatch(a ripple.Action) {
	m.Store.Dispatch(a)
	m.JumpSeq = 0
}

// undo reinstalls the journal entry before the one currently live.
func (m *Model) undo() {
	entries := m.Store.History()
	if len(entries) == 0 {
		return
	}

	idx := len(entries) - 1
	if m.JumpSeq != 0 {
		for i, e := range entries {
			if e.Seq == m.JumpSeq {
				idx = i
				break
			}
		}
	}
	if idx == 0 {
		return
	}

	target := entries[idx-1]
	if m.Store.JumpTo(target.Seq) {
		m.JumpSeq = target.Seq
		m.clampCursor()
	}
}

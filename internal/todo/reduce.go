package todo

import (
	"slices"

	"github.com/llehouerou/ripple"
)

// Reduce computes the next model from the current one and an action.
// Unrecognized actions return the model unchanged. The todo slice is cloned
// before any change so the previous model stays valid for history and
// subscribers.
func Reduce(m Model, act ripple.Action) Model {
	switch a := act.(type) {
	case increaseCount:
		m.Count += a.N
		return m

	case addTodo:
		id := m.LastID + 1
		m.LastID = id
		m.Todos = append(slices.Clone(m.Todos), Item{ID: id, Text: a.Text})
		return m

	case toggleTodo:
		todos := slices.Clone(m.Todos)
		for i := range todos {
			if todos[i].ID == a.ID {
				todos[i].Done = !todos[i].Done
			}
		}
		m.Todos = todos
		return m

	case removeTodo:
		var todos []Item
		for _, it := range m.Todos {
			if it.ID != a.ID {
				todos = append(todos, it)
			}
		}
		m.Todos = todos
		return m

	case setFilter:
		m.Filter = a.Filter
		return m

	default:
		return m
	}
}

package todo

import "github.com/llehouerou/ripple"

// Action kinds. Reducers branch on the concrete type; these strings exist
// for logging and the history panel.
const (
	KindIncreaseCount = "todo/increase_count"
	KindAddTodo       = "todo/add"
	KindToggleTodo    = "todo/toggle"
	KindRemoveTodo    = "todo/remove"
	KindSetFilter     = "todo/filter"
)

// Action types are unexported: the action creators below are the only way
// to build them, which keeps every action well-formed by construction.

type increaseCount struct {
	N int
}

func (increaseCount) Kind() string { return KindIncreaseCount }

type addTodo struct {
	Text string
}

func (addTodo) Kind() string { return KindAddTodo }

type toggleTodo struct {
	ID int
}

func (toggleTodo) Kind() string { return KindToggleTodo }

type removeTodo struct {
	ID int
}

func (removeTodo) Kind() string { return KindRemoveTodo }

type setFilter struct {
	Filter Filter
}

func (setFilter) Kind() string { return KindSetFilter }

// IncreaseCount returns an action that increments the counter by one.
func IncreaseCount() ripple.Action { return increaseCount{N: 1} }

// IncreaseCountBy returns an action that adds n to the counter.
// Negative n decrements.
func IncreaseCountBy(n int) ripple.Action { return increaseCount{N: n} }

// AddTodo returns an action that appends a todo with the given text.
func AddTodo(text string) ripple.Action { return addTodo{Text: text} }

// ToggleTodo returns an action that flips the done flag of the todo with
// the given id.
func ToggleTodo(id int) ripple.Action { return toggleTodo{ID: id} }

// RemoveTodo returns an action that deletes the todo with the given id.
func RemoveTodo(id int) ripple.Action { return removeTodo{ID: id} }

// SetFilter returns an action that changes which todos are visible.
func SetFilter(f Filter) ripple.Action { return setFilter{Filter: f} }

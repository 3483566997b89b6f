// Package todo is the demo domain for the ripple store: a counter and a
// todo list, expressed as an immutable model, a closed set of actions and
// a pure reducer.
package todo

// Filter selects which todos are visible.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterDone
)

func (f Filter) String() string {
	switch f {
	case FilterActive:
		return "active"
	case FilterDone:
		return "done"
	default:
		return "all"
	}
}

// Next cycles through the filters in display order.
func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterDone
	default:
		return FilterAll
	}
}

// Item is a single todo entry.
type Item struct {
	ID   int
	Text string
	Done bool
}

// Model is the application state. It is a value type: reducers return a new
// Model and never modify the one they were given.
type Model struct {
	Count  int
	LastID int
	Todos  []Item
	Filter Filter
}

// Visible returns the todos matching the current filter.
func (m Model) Visible() []Item {
	if m.Filter == FilterAll {
		return m.Todos
	}
	var out []Item
	for _, it := range m.Todos {
		if (m.Filter == FilterDone) == it.Done {
			out = append(out, it)
		}
	}
	return out
}

// Remaining returns how many todos are not done.
func (m Model) Remaining() int {
	n := 0
	for _, it := range m.Todos {
		if !it.Done {
			n++
		}
	}
	return n
}

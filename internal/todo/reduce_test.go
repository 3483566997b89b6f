package todo

import (
	"reflect"
	"testing"

	"github.com/llehouerou/ripple"
)

// otherAction is a kind this reducer does not handle.
type otherAction struct{}

func (otherAction) Kind() string { return "other/noise" }

func TestIncreaseCount_FromZero(t *testing.T) {
	got := Reduce(Model{Count: 0}, IncreaseCount())

	if got.Count != 1 {
		t.Errorf("Count = %d, want 1", got.Count)
	}
}

func TestIncreaseCount_Creators(t *testing.T) {
	a := IncreaseCount()
	if a.Kind() != KindIncreaseCount {
		t.Errorf("Kind() = %q, want %q", a.Kind(), KindIncreaseCount)
	}
	if a.(increaseCount).N != 1 {
		t.Errorf("N = %d, want 1", a.(increaseCount).N)
	}

	b := IncreaseCountBy(-3)
	if b.(increaseCount).N != -3 {
		t.Errorf("N = %d, want -3", b.(increaseCount).N)
	}
}

func TestAddTodo_CreatorShape(t *testing.T) {
	a := AddTodo("buy groceries")

	if a.Kind() != KindAddTodo {
		t.Errorf("Kind() = %q, want %q", a.Kind(), KindAddTodo)
	}
	if got := a.(addTodo).Text; got != "buy groceries" {
		t.Errorf("Text = %q, want %q", got, "buy groceries")
	}
}

func TestAddTodo_AppendsAndAssignsIDs(t *testing.T) {
	m := Reduce(Model{}, AddTodo("first"))
	m = Reduce(m, AddTodo("second"))

	if len(m.Todos) != 2 {
		t.Fatalf("len(Todos) = %d, want 2", len(m.Todos))
	}
	if m.Todos[0].ID != 1 || m.Todos[1].ID != 2 {
		t.Errorf("IDs = %d,%d, want 1,2", m.Todos[0].ID, m.Todos[1].ID)
	}
	if m.Todos[1].Text != "second" {
		t.Errorf("Todos[1].Text = %q, want %q", m.Todos[1].Text, "second")
	}
}

func TestAddTodo_LeavesCountUnchanged(t *testing.T) {
	got := Reduce(Model{Count: 4}, AddTodo("buy groceries"))

	if got.Count != 4 {
		t.Errorf("Count = %d, want 4 (AddTodo must not touch the counter)", got.Count)
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	before := Model{Todos: []Item{{ID: 1, Text: "keep"}}}
	snapshot := Model{Todos: []Item{{ID: 1, Text: "keep"}}}

	_ = Reduce(before, ToggleTodo(1))
	_ = Reduce(before, AddTodo("more"))
	_ = Reduce(before, RemoveTodo(1))

	if !reflect.DeepEqual(before, snapshot) {
		t.Errorf("input model changed: %+v, want %+v", before, snapshot)
	}
}

func TestReduce_UnrecognizedActionIsIdentity(t *testing.T) {
	m := Model{Count: 2, Todos: []Item{{ID: 1, Text: "x", Done: true}}}

	got := Reduce(m, otherAction{})

	if !reflect.DeepEqual(got, m) {
		t.Errorf("state = %+v, want unchanged %+v", got, m)
	}
}

func TestToggleTodo(t *testing.T) {
	m := Model{Todos: []Item{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}}}

	m = Reduce(m, ToggleTodo(2))
	if !m.Todos[1].Done {
		t.Error("Todos[1].Done = false, want true")
	}
	if m.Todos[0].Done {
		t.Error("Todos[0].Done = true, want false")
	}

	m = Reduce(m, ToggleTodo(2))
	if m.Todos[1].Done {
		t.Error("Todos[1].Done = true after second toggle, want false")
	}
}

func TestRemoveTodo(t *testing.T) {
	m := Model{Todos: []Item{{ID: 1}, {ID: 2}, {ID: 3}}}

	m = Reduce(m, RemoveTodo(2))

	if len(m.Todos) != 2 {
		t.Fatalf("len(Todos) = %d, want 2", len(m.Todos))
	}
	if m.Todos[0].ID != 1 || m.Todos[1].ID != 3 {
		t.Errorf("remaining IDs = %d,%d, want 1,3", m.Todos[0].ID, m.Todos[1].ID)
	}

	// Removing an unknown id is a no-op.
	m = Reduce(m, RemoveTodo(42))
	if len(m.Todos) != 2 {
		t.Errorf("len(Todos) = %d, want 2 after removing unknown id", len(m.Todos))
	}
}

func TestSetFilterAndVisible(t *testing.T) {
	m := Model{Todos: []Item{
		{ID: 1, Text: "open"},
		{ID: 2, Text: "closed", Done: true},
	}}

	m = Reduce(m, SetFilter(FilterActive))
	vis := m.Visible()
	if len(vis) != 1 || vis[0].ID != 1 {
		t.Errorf("active visible = %v, want only id 1", vis)
	}

	m = Reduce(m, SetFilter(FilterDone))
	vis = m.Visible()
	if len(vis) != 1 || vis[0].ID != 2 {
		t.Errorf("done visible = %v, want only id 2", vis)
	}

	m = Reduce(m, SetFilter(FilterAll))
	if len(m.Visible()) != 2 {
		t.Errorf("all visible = %d items, want 2", len(m.Visible()))
	}
}

func TestFilter_NextCycles(t *testing.T) {
	f := FilterAll
	want := []Filter{FilterActive, FilterDone, FilterAll}
	for i, w := range want {
		f = f.Next()
		if f != w {
			t.Errorf("step %d: filter = %v, want %v", i, f, w)
		}
	}
}

func TestStoreIntegration_CumulativeDispatch(t *testing.T) {
	s := ripple.New(Model{}, Reduce)

	s.Dispatch(IncreaseCount())
	s.Dispatch(IncreaseCount())
	s.Dispatch(AddTodo("buy groceries"))

	st := s.State()
	if st.Count != 2 {
		t.Errorf("Count = %d, want 2", st.Count)
	}
	if len(st.Todos) != 1 || st.Todos[0].Text != "buy groceries" {
		t.Errorf("Todos = %v, want one entry %q", st.Todos, "buy groceries")
	}
}

package ripple

import "sync"

// Listener is notified after a dispatch installs a new state. It receives
// the previous state, the installed state and the action that produced it.
type Listener[S any] func(prev, next S, act Action)

type subscription[S any] struct {
	id int
	fn Listener[S]
}

// Store holds the single current-state value and serializes dispatches
// against it. The state is replaced, never mutated in place: each dispatch
// installs the value returned by the reducer.
type Store[S any] struct {
	mu       sync.Mutex
	state    S
	reducer  Reducer[S]
	dispatch DispatchFunc
	subs     []subscription[S]
	lastSub  int
	journal  *journal[S]
}

// New creates a store with the given initial state and reducer.
// A nil reducer panics: the store has no meaningful behavior without one.
func New[S any](initial S, r Reducer[S], opts ...Option[S]) *Store[S] {
	if r == nil {
		panic("ripple: New called with nil reducer")
	}

	var cfg config[S]
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Store[S]{
		state:   initial,
		reducer: r,
	}
	if cfg.historyLimit > 0 {
		s.journal = newJournal[S](cfg.historyLimit)
	}

	// Wrap the core apply step; the first middleware ends up outermost.
	d := DispatchFunc(s.apply)
	for i := len(cfg.middleware) - 1; i >= 0; i-- {
		d = cfg.middleware[i](s, d)
	}
	s.dispatch = d

	return s
}

// Dispatch submits an action. The reducer runs with the current state, its
// return value is installed, the history journal (if enabled) records it,
// and subscribers are notified — all before the next dispatch may begin.
// Dispatches are processed in submission order. A nil action is a no-op.
//
// Dispatching from inside a listener or middleware is a caller contract
// violation and will deadlock.
func (s *Store[S]) Dispatch(a Action) {
	if a == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatch(a)
}

// apply is the innermost dispatch step. Callers hold s.mu.
func (s *Store[S]) apply(a Action) {
	prev := s.state
	next := s.reducer(prev, a)
	s.state = next
	if s.journal != nil {
		s.journal.record(a.Kind(), next)
	}
	s.notify(prev, next, a)
}

// notify runs listeners in registration order. Callers hold s.mu.
func (s *Store[S]) notify(prev, next S, a Action) {
	for _, sub := range s.subs {
		sub.fn(prev, next, a)
	}
}

// State returns the current state value.
func (s *Store[S]) State() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers a listener and returns a function that removes it.
// Listeners are notified in registration order, after the new state is
// installed. The returned unsubscribe function is idempotent.
func (s *Store[S]) Subscribe(fn Listener[S]) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSub++
	id := s.lastSub
	s.subs = append(s.subs, subscription[S]{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// ReplaceReducer swaps the reducer used by subsequent dispatches.
// A nil reducer is ignored.
func (s *Store[S]) ReplaceReducer(r Reducer[S]) {
	if r == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reducer = r
}

// History returns a copy of the dispatch journal, oldest entry first.
// It returns nil when the store was built without WithHistory.
func (s *Store[S]) History() []Entry[S] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.journal == nil {
		return nil
	}
	return s.journal.snapshot()
}

// JumpTo reinstalls the state recorded at seq and reports whether the entry
// was found. Subscribers are notified with a pseudo-action of kind
// KindHistoryJump; the reducer does not run. Later journal entries are
// kept, and new dispatches append after them.
func (s *Store[S]) JumpTo(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.journal == nil {
		return false
	}
	st, ok := s.journal.lookup(seq)
	if !ok {
		return false
	}

	prev := s.state
	s.state = st
	s.notify(prev, st, jumpAction{Seq: seq})
	return true
}

package ripple

import "time"

// Entry is one recorded dispatch: the state as it stood after the action
// was applied.
type Entry[S any] struct {
	Seq   uint64
	At    time.Time
	Kind  string
	State S
}

// journal is a bounded, in-memory record of past dispatches. Seq keeps
// increasing as old entries are evicted, so entry identity survives
// eviction of its neighbors.
type journal[S any] struct {
	limit   int
	lastSeq uint64
	entries []Entry[S]
}

func newJournal[S any](limit int) *journal[S] {
	return &journal[S]{limit: limit}
}

func (j *journal[S]) record(kind string, state S) {
	j.lastSeq++
	j.entries = append(j.entries, Entry[S]{
		Seq:   j.lastSeq,
		At:    time.Now(),
		Kind:  kind,
		State: state,
	})
	if len(j.entries) > j.limit {
		// Drop the oldest; copy so the backing array doesn't pin it.
		j.entries = append(j.entries[:0:0], j.entries[1:]...)
	}
}

func (j *journal[S]) lookup(seq uint64) (S, bool) {
	for _, e := range j.entries {
		if e.Seq == seq {
			return e.State, true
		}
	}
	var zero S
	return zero, false
}

func (j *journal[S]) snapshot() []Entry[S] {
	out := make([]Entry[S], len(j.entries))
	copy(out, j.entries)
	return out
}

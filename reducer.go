package ripple

// Reducer computes the next state from the current state and an action.
// Reducers must be pure: no side effects, no mutation of the input state.
// An unrecognized action returns the input state unchanged.
type Reducer[S any] func(S, Action) S

// Compose returns a reducer that runs rs left to right, threading the state
// through each. Nil entries are skipped.
func Compose[S any](rs ...Reducer[S]) Reducer[S] {
	return func(s S, a Action) S {
		for _, r := range rs {
			if r != nil {
				s = r(s, a)
			}
		}
		return s
	}
}

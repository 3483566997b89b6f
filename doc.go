// Package ripple is a small state container built around unidirectional
// data flow: actions describe what happened, a reducer computes the next
// state, and the store installs it and notifies subscribers.
//
// # Concepts
//
//   - Action: an immutable value with a Kind discriminator and optional
//     payload fields. Actions are built by action creators — plain
//     constructor functions — and are never modified after creation.
//   - Reducer: a pure function (S, Action) -> S. Reducers branch on the
//     action's concrete type and return the input state unchanged for
//     actions they do not recognize.
//   - Store: owns the single current-state value. Dispatch runs the reducer
//     and replaces the state; dispatches are processed strictly one at a
//     time, in submission order.
//
// # Usage
//
//	store := ripple.New(Counter{}, reduce)
//	unsubscribe := store.Subscribe(func(prev, next Counter, act ripple.Action) {
//	    // react to state changes
//	})
//	store.Dispatch(Increase())
//
// Middleware can wrap dispatch for cross-cutting concerns (see Logging),
// and WithHistory keeps a bounded journal of past states for debugging and
// time travel (see Store.History and Store.JumpTo).
package ripple

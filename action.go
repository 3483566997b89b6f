package ripple

// Action describes an intended state change. Implementations are immutable
// value types: payload fields are set at construction and never modified.
//
// Kind returns the action's discriminator. Reducers should branch on the
// concrete type rather than the kind string; Kind exists so that logging
// and history layers have something printable.
type Action interface {
	Kind() string
}

// KindHistoryJump is the kind of the pseudo-action passed to subscribers
// when Store.JumpTo reinstalls a past state.
const KindHistoryJump = "ripple/history_jump"

// jumpAction is dispatched to subscribers on time travel. It never reaches
// the reducer.
type jumpAction struct {
	Seq uint64
}

func (jumpAction) Kind() string { return KindHistoryJump }

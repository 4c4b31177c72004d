// Package lens provides read/write projections of a larger state and the
// combinators that let a reducer written against a projection run against
// the whole state.
//
// A feature reducer only ever sees the fields its lens exposes. Writing the
// projection back preserves every field the lens does not name, which is the
// property the root reducer relies on to keep features isolated.
package lens

// Lens focuses on a Sub-shaped part of S.
//
// Implementations must satisfy Set(s, Get(s)) == s and Get(Set(s, x)) == x.
type Lens[S, Sub any] struct {
	Get func(S) Sub
	Set func(S, Sub) S
}

// New builds a lens from its two halves.
func New[S, Sub any](get func(S) Sub, set func(S, Sub) S) Lens[S, Sub] {
	return Lens[S, Sub]{Get: get, Set: set}
}

// Modify projects s, applies fn, and writes the result back.
func (l Lens[S, Sub]) Modify(s S, fn func(Sub) Sub) S {
	return l.Set(s, fn(l.Get(s)))
}

// Pullback lifts a reducer over (Sub, SubA) to one over (S, A).
//
// Actions extract rejects pass through with the state unchanged; accepted
// actions run the sub-reducer on the projection and embed the result.
func Pullback[S, Sub, A, SubA any](reducer func(Sub, SubA) Sub, l Lens[S, Sub], extract func(A) (SubA, bool)) func(S, A) S {
	return func(state S, action A) S {
		subAction, ok := extract(action)
		if !ok {
			return state
		}
		return l.Set(state, reducer(l.Get(state), subAction))
	}
}

// Combine runs reducers in order, feeding each the previous result.
func Combine[S, A any](reducers ...func(S, A) S) func(S, A) S {
	return func(state S, action A) S {
		for _, reducer := range reducers {
			state = reducer(state, action)
		}
		return state
	}
}

package store

import "context"

// View is a store restricted to a projection of its parent's state and a
// narrower action type. It holds no state of its own.
type View[Sub, SubA any] struct {
	get       func() Sub
	send      func(context.Context, SubA)
	subscribe func(func(Sub)) func()
}

// Scope derives a view of parent. get projects the parent state; embed wraps
// a view action into a parent action.
func Scope[S, A, Sub, SubA any](parent *Store[S, A], get func(S) Sub, embed func(SubA) A) *View[Sub, SubA] {
	return &View[Sub, SubA]{
		get: func() Sub { return get(parent.Value()) },
		send: func(ctx context.Context, action SubA) {
			parent.SendContext(ctx, embed(action))
		},
		subscribe: func(fn func(Sub)) func() {
			return parent.Subscribe(func(state S) { fn(get(state)) })
		},
	}
}

// Value returns the projection of the parent's current state.
func (v *View[Sub, SubA]) Value() Sub {
	return v.get()
}

// Send wraps action for the parent and sends it there.
func (v *View[Sub, SubA]) Send(action SubA) {
	v.send(context.Background(), action)
}

// SendContext is Send with a parent context for tracing.
func (v *View[Sub, SubA]) SendContext(ctx context.Context, action SubA) {
	v.send(ctx, action)
}

// Subscribe registers fn to receive the projection after every parent send.
func (v *View[Sub, SubA]) Subscribe(fn func(Sub)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	return v.subscribe(fn)
}

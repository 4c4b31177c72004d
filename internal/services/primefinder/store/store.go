package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/primefinder/internal/services/primefinder/store"

// Reducer maps the current state and an action to the next state.
type Reducer[S, A any] func(state S, action A) S

// Options configures a Store.
type Options[S any] struct {
	// Snapshot copies state handed to readers and observers. Nil hands out the
	// stored value as is.
	Snapshot func(S) S
	// Tracer records one span per send. Nil uses the global provider.
	Tracer trace.Tracer
}

type observer[S any] struct {
	id uint64
	fn func(S)
}

// Store is a mutable container for one state value.
type Store[S, A any] struct {
	reducer  Reducer[S, A]
	snapshot func(S) S
	tracer   trace.Tracer

	// sendMu serializes reduce+notify so observers never see states out of order.
	sendMu sync.Mutex

	mu        sync.RWMutex
	state     S
	observers []observer[S]
	nextID    uint64
}

// New binds initial state and reducer into a store.
func New[S, A any](initial S, reducer Reducer[S, A], options Options[S]) *Store[S, A] {
	if reducer == nil {
		panic("store: reducer is required")
	}
	tracer := options.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return &Store[S, A]{
		reducer:  reducer,
		snapshot: options.Snapshot,
		tracer:   tracer,
		state:    initial,
	}
}

// Send applies action and notifies observers before returning.
func (s *Store[S, A]) Send(action A) {
	s.SendContext(context.Background(), action)
}

// SendContext is Send with a parent context for tracing.
//
// Observers run on the calling goroutine and must not call Send themselves.
func (s *Store[S, A]) SendContext(ctx context.Context, action A) {
	if ctx == nil {
		ctx = context.Background()
	}
	_, span := s.tracer.Start(ctx, "store.send",
		trace.WithAttributes(attribute.String("action", ActionName(action))))
	defer span.End()

	s.sendMu.Lock()
	defer s.sendMu.Unlock()

	s.mu.Lock()
	next := s.reducer(s.state, action)
	s.state = next
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	span.SetAttributes(attribute.Int("observers", len(observers)))
	for _, o := range observers {
		o.fn(s.copy(next))
	}
}

// Value returns a snapshot of the current state.
func (s *Store[S, A]) Value() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copy(s.state)
}

// Subscribe registers fn to receive every state produced by Send. The
// returned function unregisters it and is safe to call more than once.
func (s *Store[S, A]) Subscribe(fn func(S)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, observer[S]{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.observers = slices.DeleteFunc(s.observers, func(o observer[S]) bool {
				return o.id == id
			})
		})
	}
}

func (s *Store[S, A]) copy(state S) S {
	if s.snapshot == nil {
		return state
	}
	return s.snapshot(state)
}

// ActionName returns the action's Name() when it has one and its Go type
// otherwise.
func ActionName(action any) string {
	if named, ok := action.(interface{ Name() string }); ok {
		return named.Name()
	}
	return fmt.Sprintf("%T", action)
}

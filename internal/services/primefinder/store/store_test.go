package store

import (
	"context"
	"slices"
	"sync"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type tally struct {
	Count int
	Log   []string
}

type add int

func (add) Name() string { return "add" }

func reduceTally(state tally, action add) tally {
	state.Count += int(action)
	log := make([]string, 0, len(state.Log)+1)
	log = append(log, state.Log...)
	state.Log = append(log, "add")
	return state
}

func cloneTally(state tally) tally {
	state.Log = slices.Clone(state.Log)
	return state
}

func TestSend_AppliesBeforeReturning(t *testing.T) {
	s := New(tally{}, reduceTally, Options[tally]{})
	s.Send(add(2))
	s.Send(add(3))

	if got := s.Value().Count; got != 5 {
		t.Fatalf("count = %d, want 5", got)
	}
}

func TestSubscribe_ObserversSeeEveryStateInOrder(t *testing.T) {
	s := New(tally{}, reduceTally, Options[tally]{})
	var first, second []int
	s.Subscribe(func(state tally) { first = append(first, state.Count) })
	s.Subscribe(func(state tally) { second = append(second, state.Count) })

	s.Send(add(1))
	s.Send(add(1))

	if !slices.Equal(first, []int{1, 2}) || !slices.Equal(second, []int{1, 2}) {
		t.Fatalf("observers saw %v and %v, want [1 2]", first, second)
	}
}

func TestSubscribe_Cancel(t *testing.T) {
	s := New(tally{}, reduceTally, Options[tally]{})
	calls := 0
	cancel := s.Subscribe(func(tally) { calls++ })

	s.Send(add(1))
	cancel()
	cancel()
	s.Send(add(1))

	if calls != 1 {
		t.Fatalf("observer called %d times, want 1", calls)
	}
}

func TestSubscribe_NilObserver(t *testing.T) {
	s := New(tally{}, reduceTally, Options[tally]{})
	cancel := s.Subscribe(nil)
	s.Send(add(1))
	cancel()
}

func TestValue_UsesSnapshot(t *testing.T) {
	s := New(tally{}, reduceTally, Options[tally]{Snapshot: cloneTally})
	s.Send(add(1))

	snapshot := s.Value()
	snapshot.Log[0] = "tampered"

	if got := s.Value().Log[0]; got != "add" {
		t.Fatalf("store state changed through a snapshot: %q", got)
	}
}

func TestSend_Serialized(t *testing.T) {
	s := New(tally{}, reduceTally, Options[tally]{})
	var seen []int
	s.Subscribe(func(state tally) { seen = append(seen, state.Count) })

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Send(add(1))
		}()
	}
	wg.Wait()

	if got := s.Value().Count; got != 50 {
		t.Fatalf("count = %d, want 50", got)
	}
	want := make([]int, 50)
	for i := range want {
		want[i] = i + 1
	}
	if !slices.Equal(seen, want) {
		t.Fatalf("observer saw %v, want strictly increasing 1..50", seen)
	}
}

func TestSendContext_RecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	s := New(tally{}, reduceTally, Options[tally]{Tracer: provider.Tracer("test")})
	s.SendContext(context.Background(), add(1))

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Name() != "store.send" {
		t.Fatalf("span name = %q, want %q", spans[0].Name(), "store.send")
	}
	found := false
	for _, attr := range spans[0].Attributes() {
		if attr.Key == attribute.Key("action") && attr.Value.AsString() == "add" {
			found = true
		}
	}
	if !found {
		t.Fatalf("span attributes %v missing action=add", spans[0].Attributes())
	}
}

func TestActionName(t *testing.T) {
	if got := ActionName(add(1)); got != "add" {
		t.Fatalf("ActionName(add) = %q", got)
	}
	if got := ActionName(42); got != "int" {
		t.Fatalf("ActionName(42) = %q, want %q", got, "int")
	}
}

func TestNew_RequiresReducer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil reducer")
		}
	}()
	New[tally, add](tally{}, nil, Options[tally]{})
}

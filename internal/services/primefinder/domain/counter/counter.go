// Package counter holds the counter screen's actions and reducer.
package counter

import "fmt"

// Action is the sealed set of counter intents.
type Action interface {
	Name() string
	isCounterAction()
}

// DecrementTapped lowers the count by one.
type DecrementTapped struct{}

// IncrementTapped raises the count by one.
type IncrementTapped struct{}

func (DecrementTapped) Name() string { return "counter.decrement_tapped" }
func (IncrementTapped) Name() string { return "counter.increment_tapped" }

func (DecrementTapped) isCounterAction() {}
func (IncrementTapped) isCounterAction() {}

// Actions lists every counter action variant.
func Actions() []Action {
	return []Action{DecrementTapped{}, IncrementTapped{}}
}

// Reduce applies a counter action to the count. The count is unbounded and
// may go negative.
func Reduce(count int, action Action) int {
	switch action.(type) {
	case DecrementTapped:
		return count - 1
	case IncrementTapped:
		return count + 1
	default:
		panic(fmt.Sprintf("counter: unhandled action %T", action))
	}
}

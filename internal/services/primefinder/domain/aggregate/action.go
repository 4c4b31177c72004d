package aggregate

import (
	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/counter"
	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/favorites"
	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/primemodal"
)

// Action is the root action: exactly one feature action wrapped in its case.
type Action interface {
	Name() string
	isAppAction()
}

// Counter wraps a counter action.
type Counter struct {
	Action counter.Action
}

// PrimeModal wraps a prime modal action.
type PrimeModal struct {
	Action primemodal.Action
}

// FavouritePrimes wraps a favourites list action.
type FavouritePrimes struct {
	Action favorites.Action
}

func (a Counter) Name() string         { return a.Action.Name() }
func (a PrimeModal) Name() string      { return a.Action.Name() }
func (a FavouritePrimes) Name() string { return a.Action.Name() }

func (Counter) isAppAction()         {}
func (PrimeModal) isAppAction()      {}
func (FavouritePrimes) isAppAction() {}

// Actions lists one root action per feature action variant.
func Actions() []Action {
	var out []Action
	for _, a := range counter.Actions() {
		out = append(out, Counter{Action: a})
	}
	for _, a := range primemodal.Actions() {
		out = append(out, PrimeModal{Action: a})
	}
	for _, a := range favorites.Actions() {
		out = append(out, FavouritePrimes{Action: a})
	}
	return out
}

func extractCounter(action Action) (counter.Action, bool) {
	a, ok := action.(Counter)
	if !ok || a.Action == nil {
		return nil, false
	}
	return a.Action, true
}

func extractPrimeModal(action Action) (primemodal.Action, bool) {
	a, ok := action.(PrimeModal)
	if !ok || a.Action == nil {
		return nil, false
	}
	return a.Action, true
}

func extractFavouritePrimes(action Action) (favorites.Action, bool) {
	a, ok := action.(FavouritePrimes)
	if !ok || a.Action == nil {
		return nil, false
	}
	return a.Action, true
}

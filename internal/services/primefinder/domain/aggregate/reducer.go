package aggregate

import (
	"time"

	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/counter"
	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/favorites"
	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/lens"
	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/primemodal"
	"github.com/louisbranch/primefinder/internal/services/primefinder/store"
)

// Reducer returns the root reducer. now stamps activity entries; nil uses
// time.Now.
func Reducer(now func() time.Time) store.Reducer[AppState, Action] {
	if now == nil {
		now = time.Now
	}
	return lens.Combine(
		lens.Pullback(counter.Reduce, CountLens, extractCounter),
		lens.Pullback(primemodal.Reducer(now), PrimeModalLens, extractPrimeModal),
		lens.Pullback(favorites.Reducer(now), FavouritePrimesLens, extractFavouritePrimes),
	)
}

// NewStore builds the application store with default state.
func NewStore(now func() time.Time, options store.Options[AppState]) *store.Store[AppState, Action] {
	if options.Snapshot == nil {
		options.Snapshot = AppState.Clone
	}
	return store.New(NewState(), Reducer(now), options)
}

// FavouritePrimesView scopes app to the favourites list.
func FavouritePrimesView(app *store.Store[AppState, Action]) *store.View[favorites.State, favorites.Action] {
	return store.Scope(app, FavouritePrimesLens.Get, func(a favorites.Action) Action {
		return FavouritePrimes{Action: a}
	})
}

// PrimeModalView scopes app to the prime modal.
func PrimeModalView(app *store.Store[AppState, Action]) *store.View[primemodal.State, primemodal.Action] {
	return store.Scope(app, PrimeModalLens.Get, func(a primemodal.Action) Action {
		return PrimeModal{Action: a}
	})
}

// CounterView scopes app to the counter.
func CounterView(app *store.Store[AppState, Action]) *store.View[int, counter.Action] {
	return store.Scope(app, CountLens.Get, func(a counter.Action) Action {
		return Counter{Action: a}
	})
}

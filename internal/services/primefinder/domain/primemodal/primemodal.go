// Package primemodal holds the "is this prime?" modal's actions and reducer.
//
// The modal sees the current count and may add it to, or drop it from, the
// favourites list. Both paths record an activity entry.
package primemodal

import (
	"fmt"
	"time"

	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/activity"
)

// State is the modal's projection of the application state.
type State struct {
	Count           int
	FavouritePrimes []int
	ActivityFeed    []activity.Activity
}

// Action is the sealed set of prime modal intents.
type Action interface {
	Name() string
	isPrimeModalAction()
}

// SaveFavouriteTapped adds the current count to the favourites.
type SaveFavouriteTapped struct{}

// RemoveFavouriteTapped removes every occurrence of the current count from
// the favourites.
type RemoveFavouriteTapped struct{}

func (SaveFavouriteTapped) Name() string   { return "prime_modal.save_favourite_tapped" }
func (RemoveFavouriteTapped) Name() string { return "prime_modal.remove_favourite_tapped" }

func (SaveFavouriteTapped) isPrimeModalAction()   {}
func (RemoveFavouriteTapped) isPrimeModalAction() {}

// Actions lists every prime modal action variant.
func Actions() []Action {
	return []Action{SaveFavouriteTapped{}, RemoveFavouriteTapped{}}
}

// Reduce applies a modal action. The input slices are never written to.
func Reduce(state State, action Action, now func() time.Time) State {
	switch action.(type) {
	case SaveFavouriteTapped:
		favourites := make([]int, 0, len(state.FavouritePrimes)+1)
		favourites = append(favourites, state.FavouritePrimes...)
		state.FavouritePrimes = append(favourites, state.Count)
		state.ActivityFeed = activity.Append(state.ActivityFeed,
			activity.New(now, activity.AddedFavouritePrime{Prime: state.Count}))
	case RemoveFavouriteTapped:
		favourites := make([]int, 0, len(state.FavouritePrimes))
		for _, p := range state.FavouritePrimes {
			if p != state.Count {
				favourites = append(favourites, p)
			}
		}
		state.FavouritePrimes = favourites
		state.ActivityFeed = activity.Append(state.ActivityFeed,
			activity.New(now, activity.RemovedFavouritePrime{Prime: state.Count}))
	default:
		panic(fmt.Sprintf("primemodal: unhandled action %T", action))
	}
	return state
}

// Reducer binds a clock to Reduce.
func Reducer(now func() time.Time) func(State, Action) State {
	return func(state State, action Action) State {
		return Reduce(state, action, now)
	}
}

// IsFavourite reports whether the current count is already a favourite.
func (s State) IsFavourite() bool {
	for _, p := range s.FavouritePrimes {
		if p == s.Count {
			return true
		}
	}
	return false
}

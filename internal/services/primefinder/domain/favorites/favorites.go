// Package favorites holds the favourite-primes list's actions and reducer.
package favorites

import (
	"fmt"
	"slices"
	"time"

	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/activity"
)

// State is the favourites screen's projection of the application state. It
// carries no count and no user.
type State struct {
	FavouritePrimes []int
	ActivityFeed    []activity.Activity
}

// Action is the sealed set of favourites list intents.
type Action interface {
	Name() string
	isFavoritesAction()
}

// DeleteFavourites removes the favourites at the given positions.
//
// Indices is a set of positions in the list as it was before the action:
// duplicates collapse and positions outside the list are ignored.
type DeleteFavourites struct {
	Indices []int
}

func (DeleteFavourites) Name() string { return "favourite_primes.delete_favourites" }

func (DeleteFavourites) isFavoritesAction() {}

// Actions lists every favourites action variant with representative payloads.
func Actions() []Action {
	return []Action{DeleteFavourites{Indices: []int{0}}}
}

// Reduce applies a favourites action. The input slices are never written to.
func Reduce(state State, action Action, now func() time.Time) State {
	switch a := action.(type) {
	case DeleteFavourites:
		remove := normalizeIndices(a.Indices, len(state.FavouritePrimes))
		if len(remove) == 0 {
			return state
		}
		kept := make([]int, 0, len(state.FavouritePrimes)-len(remove))
		entries := make([]activity.Activity, 0, len(remove))
		next := 0
		for i, p := range state.FavouritePrimes {
			if next < len(remove) && remove[next] == i {
				entries = append(entries, activity.New(now, activity.RemovedFavouritePrime{Prime: p}))
				next++
				continue
			}
			kept = append(kept, p)
		}
		state.FavouritePrimes = kept
		state.ActivityFeed = activity.Append(state.ActivityFeed, entries...)
	default:
		panic(fmt.Sprintf("favorites: unhandled action %T", action))
	}
	return state
}

// Reducer binds a clock to Reduce.
func Reducer(now func() time.Time) func(State, Action) State {
	return func(state State, action Action) State {
		return Reduce(state, action, now)
	}
}

// normalizeIndices returns the distinct in-range indices in ascending order.
func normalizeIndices(indices []int, length int) []int {
	out := make([]int, 0, len(indices))
	for _, i := range indices {
		if i >= 0 && i < length {
			out = append(out, i)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

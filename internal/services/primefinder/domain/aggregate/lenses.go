package aggregate

import (
	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/favorites"
	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/lens"
	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/primemodal"
)

// CountLens focuses on the counter value.
var CountLens = lens.New(
	func(s AppState) int { return s.Count },
	func(s AppState, count int) AppState {
		s.Count = count
		return s
	},
)

// PrimeModalLens exposes the count, favourites and feed to the prime modal.
var PrimeModalLens = lens.New(
	func(s AppState) primemodal.State {
		return primemodal.State{
			Count:           s.Count,
			FavouritePrimes: s.FavouritePrimes,
			ActivityFeed:    s.ActivityFeed,
		}
	},
	func(s AppState, sub primemodal.State) AppState {
		s.Count = sub.Count
		s.FavouritePrimes = sub.FavouritePrimes
		s.ActivityFeed = sub.ActivityFeed
		return s
	},
)

// FavouritePrimesLens exposes only the favourites and feed; count and user
// stay out of reach of the favourites list.
var FavouritePrimesLens = lens.New(
	func(s AppState) favorites.State {
		return favorites.State{
			FavouritePrimes: s.FavouritePrimes,
			ActivityFeed:    s.ActivityFeed,
		}
	},
	func(s AppState, sub favorites.State) AppState {
		s.FavouritePrimes = sub.FavouritePrimes
		s.ActivityFeed = sub.ActivityFeed
		return s
	},
)

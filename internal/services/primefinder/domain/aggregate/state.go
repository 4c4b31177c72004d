package aggregate

import (
	"slices"

	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/activity"
)

// User is the signed-in user. The core never populates it.
type User struct {
	ID   int
	Name string
	Bio  string
}

// AppState is the single source of truth for the application.
type AppState struct {
	Count           int
	FavouritePrimes []int
	LoggedInUser    *User
	ActivityFeed    []activity.Activity
}

// NewState returns the start-of-process state.
func NewState() AppState {
	return AppState{
		FavouritePrimes: []int{},
		ActivityFeed:    []activity.Activity{},
	}
}

// Clone returns a deep copy of s.
func (s AppState) Clone() AppState {
	cloned := s
	cloned.FavouritePrimes = slices.Clone(s.FavouritePrimes)
	cloned.ActivityFeed = slices.Clone(s.ActivityFeed)
	if s.LoggedInUser != nil {
		user := *s.LoggedInUser
		cloned.LoggedInUser = &user
	}
	return cloned
}

// Package activity models the append-only feed of favourite-prime changes.
//
// Every reducer that adds or removes a favourite records exactly one entry
// here in the same invocation, so the feed doubles as an audit log of the
// favourites list.
package activity

import (
	"fmt"
	"time"
)

// Kind names an activity type for storage and display.
type Kind string

const (
	KindAddedFavouritePrime   Kind = "favourite.added"
	KindRemovedFavouritePrime Kind = "favourite.removed"
)

// Type is the sealed set of things an activity can describe.
type Type interface {
	Kind() Kind
	// Value returns the prime the activity refers to.
	Value() int
	isType()
}

// AddedFavouritePrime records that a prime was saved as a favourite.
type AddedFavouritePrime struct {
	Prime int
}

func (AddedFavouritePrime) Kind() Kind   { return KindAddedFavouritePrime }
func (a AddedFavouritePrime) Value() int { return a.Prime }
func (AddedFavouritePrime) isType()      {}

// RemovedFavouritePrime records that a prime left the favourites list.
type RemovedFavouritePrime struct {
	Prime int
}

func (RemovedFavouritePrime) Kind() Kind   { return KindRemovedFavouritePrime }
func (r RemovedFavouritePrime) Value() int { return r.Prime }
func (RemovedFavouritePrime) isType()      {}

// Activity is one feed entry.
type Activity struct {
	Timestamp time.Time
	Type      Type
}

// New builds an activity stamped with now().UTC(); a nil now uses time.Now.
func New(now func() time.Time, typ Type) Activity {
	if now == nil {
		now = time.Now
	}
	return Activity{Timestamp: now().UTC(), Type: typ}
}

// Decode rebuilds a Type from its stored kind and value.
func Decode(kind Kind, prime int) (Type, error) {
	switch kind {
	case KindAddedFavouritePrime:
		return AddedFavouritePrime{Prime: prime}, nil
	case KindRemovedFavouritePrime:
		return RemovedFavouritePrime{Prime: prime}, nil
	default:
		return nil, fmt.Errorf("unknown activity kind %q", kind)
	}
}

// Append returns feed with entries appended, never writing into feed's
// backing array so snapshots that share it stay intact.
func Append(feed []Activity, entries ...Activity) []Activity {
	out := make([]Activity, 0, len(feed)+len(entries))
	out = append(out, feed...)
	return append(out, entries...)
}

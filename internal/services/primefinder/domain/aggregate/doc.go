// Package aggregate composes the feature reducers into the application's
// single state value.
//
// Each feature (counter, prime modal, favourites list) owns a reducer written
// against its own projection of AppState. The lenses in this package are the
// only place those projections are defined, and Reducer pulls every feature
// reducer back through its lens, so a feature can never touch fields it was
// not given.
package aggregate

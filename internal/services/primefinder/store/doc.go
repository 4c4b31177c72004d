// Package store owns a single state value and the reducer that advances it.
//
// All mutation goes through Send: the reducer runs under the store's lock,
// the result replaces the state, and observers registered with Subscribe are
// told about the new value before Send returns. Sends are serialized end to
// end, so observers see states in the order actions were applied.
//
// Scope derives a View that reads a projection of the state and sends a
// narrower action type, which is how a feature is handed only the part of the
// application it owns.
package store

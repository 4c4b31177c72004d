// Package timeouts defines shared timeout constants.
package timeouts

import "time"

// Shutdown limits how long telemetry flushing may take on exit.
const Shutdown = 5 * time.Second

// Lookup caps a single nth-prime lookup.
const Lookup = 2 * time.Second

// JournalWrite caps one activity journal append.
const JournalWrite = 2 * time.Second

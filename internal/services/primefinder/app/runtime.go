// Package app runs the prime finder screens as a line-oriented session: each
// input line is one user intent, translated into store actions, and every
// result is printed through a locale-aware printer.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/message"

	"github.com/louisbranch/primefinder/internal/platform/i18n/catalog"
	"github.com/louisbranch/primefinder/internal/platform/timeouts"
	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/aggregate"
	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/counter"
	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/favorites"
	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/primemodal"
	"github.com/louisbranch/primefinder/internal/services/primefinder/lookup"
	"github.com/louisbranch/primefinder/internal/services/primefinder/storage"
	"github.com/louisbranch/primefinder/internal/services/primefinder/store"
)

// ErrOutputRequired is returned when no output writer is configured.
var ErrOutputRequired = errors.New("output writer is required")

// DefaultMaxLookups is the lookup concurrency used when Options leaves it unset.
const DefaultMaxLookups = 4

// Options configures a Runtime.
type Options struct {
	// Out receives every rendered line.
	Out io.Writer
	// Lookup answers nth-prime requests. Nil uses lookup.Local.
	Lookup lookup.Lookup
	// LookupTimeout bounds one lookup. Zero uses timeouts.Lookup.
	LookupTimeout time.Duration
	// MaxLookups caps lookups running at once; later requests queue. Zero
	// uses DefaultMaxLookups.
	MaxLookups int
	// Journal, when set, receives every new activity entry.
	Journal storage.ActivityJournal
	// Locale selects the message catalog locale.
	Locale string
	// Catalog supplies messages. Nil loads the embedded catalog.
	Catalog *catalog.Bundle
	// Now stamps activity entries. Nil uses time.Now.
	Now func() time.Time
	// Store is passed through to the application store.
	Store store.Options[aggregate.AppState]
}

// Runtime owns one application store and the views the screens read from.
type Runtime struct {
	app        *store.Store[aggregate.AppState, aggregate.Action]
	counter    *store.View[int, counter.Action]
	modal      *store.View[primemodal.State, primemodal.Action]
	favourites *store.View[favorites.State, favorites.Action]

	lookup        lookup.Lookup
	lookupTimeout time.Duration
	lookups       *semaphore.Weighted
	journal       storage.ActivityJournal
	printer       *message.Printer
	out           io.Writer
}

// New builds a Runtime with a fresh application store.
func New(options Options) (*Runtime, error) {
	if options.Out == nil {
		return nil, ErrOutputRequired
	}
	bundle := options.Catalog
	if bundle == nil {
		loaded, err := catalog.LoadEmbedded()
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		bundle = loaded
	}
	l := options.Lookup
	if l == nil {
		l = lookup.Local{}
	}
	timeout := options.LookupTimeout
	if timeout <= 0 {
		timeout = timeouts.Lookup
	}
	maxLookups := options.MaxLookups
	if maxLookups <= 0 {
		maxLookups = DefaultMaxLookups
	}

	app := aggregate.NewStore(options.Now, options.Store)
	return &Runtime{
		app:           app,
		counter:       aggregate.CounterView(app),
		modal:         aggregate.PrimeModalView(app),
		favourites:    aggregate.FavouritePrimesView(app),
		lookup:        l,
		lookupTimeout: timeout,
		lookups:       semaphore.NewWeighted(int64(maxLookups)),
		journal:       options.Journal,
		printer:       bundle.Printer(options.Locale),
		out:           options.Out,
	}, nil
}

// State returns a snapshot of the application state.
func (r *Runtime) State() aggregate.AppState {
	return r.app.Value()
}

// Run reads commands from in until EOF, "quit" or ctx is done. Lookups still
// in flight when input ends are awaited and reported.
func (r *Runtime) Run(ctx context.Context, in io.Reader) error {
	g, ctx := errgroup.WithContext(ctx)

	var journal chan journalItem
	if r.journal != nil {
		journal = make(chan journalItem, journalBuffer)
		cancel := r.app.Subscribe(feedObserver(ctx, r.app.Value().ActivityFeed, journal))
		defer cancel()
		g.Go(func() error {
			return r.writeJournal(ctx, journal)
		})
	}

	lines, readErr := readLines(ctx, in)
	g.Go(func() error {
		if journal != nil {
			defer close(journal)
		}
		return r.loop(ctx, lines, readErr, journal)
	})
	return g.Wait()
}

// readLines scans in on its own goroutine. It is not joined on exit since a
// blocked terminal read cannot be interrupted; it stops at the next line once
// ctx is done. The error, if any, is readable after lines is closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, *error) {
	lines := make(chan string)
	var scanErr error
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr = scanner.Err()
	}()
	return lines, &scanErr
}

func (r *Runtime) loop(ctx context.Context, lines <-chan string, readErr *error, journal chan<- journalItem) error {
	results := make(chan lookup.Result)
	pending := 0

	for lines != nil || pending > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				lines = nil
				if err := *readErr; err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				continue
			}
			cmd, err := parseCommand(line)
			if err != nil {
				r.printError(err)
				continue
			}
			switch cmd.name {
			case "":
			case cmdQuit:
				lines = nil
			case cmdNth:
				pending++
				r.startLookup(ctx, results)
			case cmdHistory:
				r.history(ctx, journal)
			default:
				r.dispatch(ctx, cmd)
			}
		case result := <-results:
			pending--
			r.reportLookup(result)
		}
	}
	return nil
}

func (r *Runtime) startLookup(ctx context.Context, results chan<- lookup.Result) {
	n := r.counter.Value()
	r.println("nth.pending", n)

	go func() {
		result := lookup.Result{N: n}
		if err := r.lookups.Acquire(ctx, 1); err == nil {
			lookupCtx, cancel := context.WithTimeout(ctx, r.lookupTimeout)
			result = <-lookup.Start(lookupCtx, r.lookup, n)
			cancel()
			r.lookups.Release(1)
		}
		select {
		case results <- result:
		case <-ctx.Done():
		}
	}()
}

func (r *Runtime) reportLookup(result lookup.Result) {
	if !result.Found {
		r.println("nth.missing", result.N)
		return
	}
	r.println("nth.result", result.N, result.Value)
}

func (r *Runtime) println(key message.Reference, args ...any) {
	if _, err := r.printer.Fprintf(r.out, key, args...); err != nil {
		log.Printf("write output: %v", err)
		return
	}
	fmt.Fprintln(r.out)
}

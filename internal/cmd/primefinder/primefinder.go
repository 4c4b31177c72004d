// Package primefinder parses primefinder command flags and starts the runtime.
package primefinder

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	entrypoint "github.com/louisbranch/primefinder/internal/platform/cmd"
	"github.com/louisbranch/primefinder/internal/platform/timeouts"
	"github.com/louisbranch/primefinder/internal/services/primefinder/app"
	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/prime"
	"github.com/louisbranch/primefinder/internal/services/primefinder/lookup"
	"github.com/louisbranch/primefinder/internal/services/primefinder/storage"
	"github.com/louisbranch/primefinder/internal/services/primefinder/storage/memory"
	"github.com/louisbranch/primefinder/internal/services/primefinder/storage/sqlite"
)

// Config holds primefinder command configuration. Env names carry the
// PRIMEFINDER_ prefix.
type Config struct {
	JournalPath   string        `env:"JOURNAL_PATH"`
	LookupLimit   int           `env:"LOOKUP_LIMIT" envDefault:"100000"`
	LookupTimeout time.Duration `env:"LOOKUP_TIMEOUT" envDefault:"2s"`
	MaxLookups    int           `env:"LOOKUP_CONCURRENCY" envDefault:"4"`
	Lang          string        `env:"LANG" envDefault:"en-US"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.JournalPath, "journal", cfg.JournalPath, "SQLite activity journal path (in-memory when empty)")
	fs.IntVar(&cfg.LookupLimit, "lookup-limit", cfg.LookupLimit, "Largest n the local nth-prime lookup answers")
	fs.DurationVar(&cfg.LookupTimeout, "lookup-timeout", cfg.LookupTimeout, "Timeout for one nth-prime lookup")
	fs.IntVar(&cfg.MaxLookups, "lookup-concurrency", cfg.MaxLookups, "Lookups allowed to run at once")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "Output locale")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts an interactive session on stdin and stdout.
func Run(ctx context.Context, cfg Config) error {
	return RunWithIO(ctx, cfg, os.Stdin, os.Stdout)
}

// RunWithIO starts a session reading commands from in and writing to out.
func RunWithIO(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServicePrimeFinder, func(ctx context.Context) error {
		journal, closeJournal, err := openJournal(ctx, cfg.JournalPath)
		if err != nil {
			return err
		}
		defer closeJournal()

		runtime, err := app.New(app.Options{
			Out:           out,
			Lookup:        lookup.Local{Limit: lookupLimit(cfg.LookupLimit)},
			LookupTimeout: lookupTimeout(cfg.LookupTimeout),
			MaxLookups:    cfg.MaxLookups,
			Journal:       journal,
			Locale:        cfg.Lang,
		})
		if err != nil {
			return err
		}
		return runtime.Run(ctx, in)
	})
}

func openJournal(ctx context.Context, path string) (storage.ActivityJournal, func(), error) {
	if path == "" {
		return memory.NewJournal(), func() {}, nil
	}
	store, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("open activity journal: %w", err)
	}
	return store, func() { _ = store.Close() }, nil
}

func lookupLimit(limit int) int {
	if limit <= 0 {
		return prime.DefaultNthLimit
	}
	return limit
}

func lookupTimeout(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return timeouts.Lookup
	}
	return timeout
}

// Package cmd holds the startup plumbing shared by command entrypoints.
package cmd

import (
	"context"
	"errors"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/primefinder/internal/platform/config"
	"github.com/louisbranch/primefinder/internal/platform/otel"
	"github.com/louisbranch/primefinder/internal/platform/timeouts"
)

// ServicePrimeFinder names the primefinder command in telemetry and logs.
const ServicePrimeFinder = "primefinder"

// RunOptions tunes RunWithTelemetryAndOptions.
type RunOptions struct {
	// ShutdownTimeout bounds the final span flush. Zero uses timeouts.Shutdown.
	ShutdownTimeout time.Duration
	// Setup overrides telemetry setup; nil uses otel.Setup.
	Setup func(ctx context.Context, service string) (func(context.Context) error, error)
}

// ParseConfig fills cfg from PRIMEFINDER_ environment variables and tag
// defaults. Flags registered afterwards use these values as their defaults.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses args into fs; nil args parse as none.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry runs a command session with tracing installed for the
// named service.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	return RunWithTelemetryAndOptions(ctx, service, RunOptions{}, run)
}

// RunWithTelemetryAndOptions installs tracing, calls run, and flushes pending
// spans before returning run's error. Flush failures are only logged.
func RunWithTelemetryAndOptions(ctx context.Context, service string, options RunOptions, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	switch {
	case service == "":
		return errors.New("service name is required")
	case run == nil:
		return errors.New("run function is required")
	}

	setup := options.Setup
	if setup == nil {
		setup = otel.Setup
	}
	flush, err := setup(ctx, service)
	if err != nil {
		return err
	}
	defer flushSpans(service, flush, options.ShutdownTimeout)
	return run(ctx)
}

func flushSpans(service string, flush func(context.Context) error, timeout time.Duration) {
	if timeout <= 0 {
		timeout = timeouts.Shutdown
	}
	// The run context may already be cancelled by a signal.
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := flush(ctx); err != nil {
		log.Printf("%s otel shutdown: %v", service, err)
	}
}

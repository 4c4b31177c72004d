package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	primefindercmd "github.com/louisbranch/primefinder/internal/cmd/primefinder"
	"github.com/louisbranch/primefinder/internal/platform/config"
)

func main() {
	cfg, err := primefindercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[PRIMEFINDER] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := primefindercmd.Run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("session failed: %v", err)
	}
}

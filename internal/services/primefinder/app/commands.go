package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/activity"
	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/counter"
	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/favorites"
	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/prime"
	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/primemodal"
)

const (
	cmdIncrement  = "incr"
	cmdDecrement  = "decr"
	cmdIsPrime    = "isprime"
	cmdSave       = "save"
	cmdRemove     = "remove"
	cmdFavourites = "favourites"
	cmdDelete     = "delete"
	cmdNth        = "nth"
	cmdState      = "state"
	cmdFeed       = "feed"
	cmdHistory    = "history"
	cmdHelp       = "help"
	cmdQuit       = "quit"
)

var aliases = map[string]string{
	"+":         cmdIncrement,
	"-":         cmdDecrement,
	"favorites": cmdFavourites,
	"exit":      cmdQuit,
}

type command struct {
	name    string
	indices []int
}

type unknownCommandError struct {
	name string
}

func (e unknownCommandError) Error() string { return "unknown command " + strconv.Quote(e.name) }

type invalidArgumentError struct {
	command string
	arg     string
}

func (e invalidArgumentError) Error() string {
	return "invalid argument for " + e.command + ": " + e.arg
}

// parseCommand reads one input line. Blank lines and # comments parse to the
// zero command.
func parseCommand(line string) (command, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return command{}, nil
	}
	fields := strings.Fields(line)
	name := strings.ToLower(fields[0])
	if alias, ok := aliases[name]; ok {
		name = alias
	}
	args := fields[1:]

	switch name {
	case cmdDelete:
		indices, err := parseIndices(strings.Join(args, ","))
		if err != nil {
			return command{}, err
		}
		return command{name: name, indices: indices}, nil
	case cmdIncrement, cmdDecrement, cmdIsPrime, cmdSave, cmdRemove, cmdFavourites,
		cmdNth, cmdState, cmdFeed, cmdHistory, cmdHelp, cmdQuit:
		if len(args) > 0 {
			return command{}, invalidArgumentError{command: name, arg: strings.Join(args, " ")}
		}
		return command{name: name}, nil
	default:
		return command{}, unknownCommandError{name: fields[0]}
	}
}

// parseIndices accepts comma and/or space separated non-negative integers.
func parseIndices(raw string) ([]int, error) {
	parts := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' })
	if len(parts) == 0 {
		return nil, invalidArgumentError{command: cmdDelete, arg: raw}
	}
	indices := make([]int, 0, len(parts))
	for _, part := range parts {
		index, err := strconv.Atoi(part)
		if err != nil || index < 0 {
			return nil, invalidArgumentError{command: cmdDelete, arg: part}
		}
		indices = append(indices, index)
	}
	return indices, nil
}

func (r *Runtime) dispatch(ctx context.Context, cmd command) {
	switch cmd.name {
	case cmdIncrement:
		r.counter.SendContext(ctx, counter.IncrementTapped{})
		r.println("count.value", r.counter.Value())
	case cmdDecrement:
		r.counter.SendContext(ctx, counter.DecrementTapped{})
		r.println("count.value", r.counter.Value())
	case cmdIsPrime:
		r.printPrimality(r.counter.Value())
	case cmdSave:
		r.save(ctx)
	case cmdRemove:
		r.remove(ctx)
	case cmdFavourites:
		r.printFavourites()
	case cmdDelete:
		before := len(r.favourites.Value().FavouritePrimes)
		r.favourites.SendContext(ctx, favorites.DeleteFavourites{Indices: cmd.indices})
		after := len(r.favourites.Value().FavouritePrimes)
		r.println("favourites.deleted", before-after)
	case cmdState:
		count := r.counter.Value()
		r.println("count.value", count)
		r.printPrimality(count)
		r.printFavourites()
	case cmdFeed:
		r.printFeed()
	case cmdHelp:
		r.println("command.help")
	}
}

// save and remove mirror the modal: save is offered for a prime that is not
// yet a favourite, remove only for a current favourite.
func (r *Runtime) save(ctx context.Context) {
	modal := r.modal.Value()
	switch {
	case !prime.IsPrime(modal.Count):
		r.println("count.not_prime", modal.Count)
	case modal.IsFavourite():
		r.println("favourite.already", modal.Count)
	default:
		r.modal.SendContext(ctx, primemodal.SaveFavouriteTapped{})
		r.println("favourite.saved", modal.Count)
	}
}

func (r *Runtime) remove(ctx context.Context) {
	modal := r.modal.Value()
	if !modal.IsFavourite() {
		r.println("favourite.absent", modal.Count)
		return
	}
	r.modal.SendContext(ctx, primemodal.RemoveFavouriteTapped{})
	r.println("favourite.removed", modal.Count)
}

func (r *Runtime) printPrimality(count int) {
	if prime.IsPrime(count) {
		r.println("count.prime", count)
		return
	}
	r.println("count.not_prime", count)
}

func (r *Runtime) printFavourites() {
	favourites := r.favourites.Value().FavouritePrimes
	if len(favourites) == 0 {
		r.println("favourites.empty")
		return
	}
	parts := make([]string, len(favourites))
	for i, p := range favourites {
		parts[i] = r.printer.Sprintf("[%d] %d", i, p)
	}
	r.println("favourites.list", strings.Join(parts, ", "))
}

func (r *Runtime) printFeed() {
	feed := r.app.Value().ActivityFeed
	if len(feed) == 0 {
		r.println("feed.empty")
		return
	}
	for _, entry := range feed {
		r.printActivity(entry)
	}
}

func (r *Runtime) printActivity(entry activity.Activity) {
	at := entry.Timestamp.Format(time.RFC3339)
	switch entry.Type.(type) {
	case activity.AddedFavouritePrime:
		r.println("feed.added", at, entry.Type.Value())
	case activity.RemovedFavouritePrime:
		r.println("feed.removed", at, entry.Type.Value())
	}
}

func (r *Runtime) printError(err error) {
	var unknown unknownCommandError
	var invalid invalidArgumentError
	switch {
	case errors.As(err, &unknown):
		r.println("command.unknown", unknown.name)
	case errors.As(err, &invalid):
		r.println("command.invalid", invalid.command, invalid.arg)
	default:
		if _, werr := fmt.Fprintln(r.out, err.Error()); werr != nil {
			log.Printf("write output: %v", werr)
		}
	}
}

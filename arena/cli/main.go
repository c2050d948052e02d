package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gosuri/uilive"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"github.com/webbmaffian/go-ilist/arena"
	"github.com/webbmaffian/go-ilist/ilist"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	app := &cli.App{
		Name:      "ilist-inspect",
		Usage:     "Watch the lists of a file-backed arena",
		ArgsUsage: "<dir>",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				Value:   time.Second,
				Usage:   "Refresh interval",
				EnvVars: []string{"ILIST_INSPECT_INTERVAL"},
			},
			&cli.IntFlag{
				Name:    "max-lists",
				Aliases: []string{"n"},
				Value:   20,
				Usage:   "Maximum number of lists to render",
			},
			&cli.BoolFlag{
				Name:  "once",
				Usage: "Print the stats once and exit",
			},
		},
		Action: func(cCtx *cli.Context) error {
			if cCtx.NArg() != 1 {
				return cli.Exit("Exactly one (1) argument expected, and this must be the path to the arena directory.", 2)
			}

			return inspect(cCtx.Context, cCtx.Args().First(), cCtx.Duration("interval"), cCtx.Int("max-lists"), cCtx.Bool("once"))
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("inspect failed")
		stop()
		os.Exit(1)
	}
}

func inspect(ctx context.Context, dir string, interval time.Duration, maxLists int, once bool) error {
	s, err := arena.OpenStats(dir)

	if err != nil {
		return err
	}

	defer s.Close()

	if once {
		render(os.Stdout, s, maxLists)
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	writer := uilive.New()
	writer.Start()
	defer writer.Stop()

	render(writer, s, maxLists)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			render(writer, s, maxLists)
		}
	}
}

type flusher interface {
	Flush() error
}

func render(w io.Writer, s *arena.Stats, maxLists int) {
	fmt.Fprintf(w, "Links: %d / %d\n", s.Links(), s.LinkCap())
	fmt.Fprintf(w, "Lists: %d / %d\n", s.Lists(), s.ListCap())

	shown := 0

	s.EachList(func(ls arena.ListStats) bool {
		if shown >= maxLists {
			fmt.Fprintf(w, "  ... %d more\n", s.Lists()-shown)
			return false
		}

		capacity := "unlimited"

		if ls.Capacity != ilist.Unlimited {
			capacity = fmt.Sprint(ls.Capacity)
		}

		fmt.Fprintf(w, "  list %-12s length %-8d capacity %s\n", ls.Handle, ls.Len, capacity)
		shown++
		return true
	})

	if f, ok := w.(flusher); ok {
		f.Flush()
	}
}

package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

// NewApp creates the ednq CLI app.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "ednq"
	app.Usage = "Decode EDN responses of a Datomic-style REST service"
	app.EnableBashCompletion = true
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log diagnostics to stderr",
		},
	}

	app.Commands = []*cli.Command{
		NewDecodeCommand(),
		NewRowsCommand(),
		NewTxCommand(),
		NewDatomsCommand(),
		NewTagsCommand(),
		NewVersionCommand(),
	}

	// inject cancelable context to all commands
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		defer cancel()
		<-ch
	}()

	for i := range app.Commands {
		action := app.Commands[i].Action
		app.Commands[i].Action = func(c *cli.Context) error {
			c.Context = ctx
			return action(c)
		}
	}

	app.After = func(c *cli.Context) error {
		signal.Stop(ch)
		cancel()
		return nil
	}

	return app
}

// newLogger returns the logger used by the commands. It only writes
// to the app error writer when --verbose is set.
func newLogger(c *cli.Context) *slog.Logger {
	if !c.Bool("verbose") {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	w := c.App.ErrWriter
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/phanxgames/parabox/term"
)

var termFlags struct {
	tps         int
	size        int
	haltOnError bool
	logFile     string
}

func termCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Play the level in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTerm,
	}
	cmd.Flags().IntVar(&termFlags.tps, "tps", 30, "Frames per second")
	cmd.Flags().IntVar(&termFlags.size, "size", 16, "Height of the root box in rows")
	cmd.Flags().BoolVar(&termFlags.haltOnError, "halt-on-error", false, "Stop at the first failed frame")
	cmd.Flags().StringVar(&termFlags.logFile, "log-file", "", "Write logs to this file (discarded when empty)")
	return cmd
}

func runTerm(cmd *cobra.Command, args []string) error {
	var out io.Writer = io.Discard
	if termFlags.logFile != "" {
		f, err := os.OpenFile(termFlags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	log, err := newLogger(out, flags.logLevel)
	if err != nil {
		return err
	}
	g, err := loadGame(log)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	host := term.NewHost(screen, g, term.Options{
		TPS:         termFlags.tps,
		Layout:      term.Layout{X: 2, Y: 1, Size: termFlags.size},
		HaltOnError: termFlags.haltOnError,
		Logger:      log,
	})
	return host.Run(ctx)
}

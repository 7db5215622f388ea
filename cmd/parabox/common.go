package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/phanxgames/parabox"
)

var flags struct {
	level    string
	debug    bool
	logLevel string
}

// newLogger returns a text logger writing to w at the named level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "", "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// loadLevel reads path, or returns the built-in level when path is empty.
func loadLevel(path string) (*parabox.Level, error) {
	if path == "" {
		return parabox.DefaultLevel(), nil
	}
	return parabox.LoadLevel(path)
}

// loadGame builds the game for the --level flag.
func loadGame(log *slog.Logger) (*parabox.Game, error) {
	lvl, err := loadLevel(flags.level)
	if err != nil {
		return nil, err
	}
	g, err := lvl.Build()
	if err != nil {
		return nil, err
	}
	log.Info("level loaded",
		"level", levelName(flags.level),
		"boxes", g.World().Len(),
		"grid", g.World().Grid().Extent)
	if flags.debug {
		g.SetDebugMode(true)
	}
	return g, nil
}

func levelName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

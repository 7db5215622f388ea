// Package term runs a parabox game in a terminal with tcell.
package term

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/parabox"
)

// Options configures a Host.
type Options struct {
	// TPS is the number of frames per second. Zero means 30.
	TPS int
	// Layout places the root box. A zero Size means 16 rows at (2, 1).
	Layout Layout
	// HaltOnError stops Run at the first failed frame.
	HaltOnError bool
	// Logger receives frame failures. Nil means slog.Default().
	Logger *slog.Logger
}

// Host drives a game from a tcell screen.
type Host struct {
	screen tcell.Screen
	game   *parabox.Game
	keys   *KeyPoller
	opts   Options
	log    *slog.Logger
}

// NewHost creates a host for g on screen. The screen must already be
// initialized; Run does not Fini it.
func NewHost(screen tcell.Screen, g *parabox.Game, opts Options) *Host {
	if opts.TPS <= 0 {
		opts.TPS = 30
	}
	if opts.Layout.Size <= 0 {
		opts.Layout = Layout{X: 2, Y: 1, Size: 16}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	h := &Host{
		screen: screen,
		game:   g,
		keys:   NewKeyPoller(),
		opts:   opts,
		log:    logger.With("host", "term"),
	}
	g.SetPoller(h.keys)
	return h
}

// Keys returns the host's key poller.
func (h *Host) Keys() *KeyPoller { return h.keys }

// errQuit ends Run without an error.
var errQuit = errors.New("quit")

// handleEvent applies one screen event. It returns errQuit when the user
// asked to leave.
func (h *Host) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return errQuit
		case tcell.KeyRune:
			if ev.Rune() == 'q' || ev.Rune() == 'Q' {
				return errQuit
			}
		}
		h.keys.HandleKey(ev)
	}
	return nil
}

// frame steps the game by dt and redraws.
func (h *Host) frame(dt float64) error {
	err := h.game.Step(dt)
	if err != nil {
		h.log.Warn("frame failed", "frame", h.game.Clock().Frame(), "err", err)
		if h.opts.HaltOnError {
			return err
		}
	}
	if err := DrawFrame(h.screen, h.game, h.opts.Layout); err != nil {
		return err
	}
	h.screen.Show()
	return nil
}

// Run reads screen events on a separate goroutine and steps the game at a
// fixed rate until ctx is done, the user quits, or a frame fails with
// HaltOnError set. The event goroutine stays blocked in PollEvent after Run
// returns; it exits when the caller calls Fini on the screen.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	dt := 1 / float64(h.opts.TPS)
	ticker := time.NewTicker(time.Duration(float64(time.Second) * dt))
	defer ticker.Stop()

	if err := h.frame(0); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := h.handleEvent(ev); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}
		case <-ticker.C:
			if err := h.frame(dt); err != nil {
				return err
			}
		}
	}
}

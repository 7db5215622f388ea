package parabox

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds window options for Run.
type RunConfig struct {
	Title       string
	Width       int
	Height      int
	Scale       float64
	ShowFPS     bool
	HaltOnError bool
	Debug       bool
}

// DefaultRunConfig opens a 3x window titled "parabox".
func DefaultRunConfig() RunConfig {
	return RunConfig{Title: "parabox", Scale: 3}
}

// Run adds keyboard input to the scene and runs it as an ebiten game. It
// blocks until the window is closed or Update returns an error.
func Run(s *Scene, cfg RunConfig) error {
	s.game.SetPoller(multiPoller{&s.injected, KeyboardPoller{}})
	s.SetHaltOnError(cfg.HaltOnError)
	if cfg.Debug {
		s.game.SetDebugMode(true)
	}
	if cfg.ShowFPS {
		s.root.AddChild(NewStatsWidget(s.game))
	}

	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		scale := cfg.Scale
		if scale <= 0 {
			scale = 1
		}
		w, h = int(ScreenWidth*scale), int(ScreenHeight*scale)
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(s)
}

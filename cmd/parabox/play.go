package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/parabox"
)

var playFlags struct {
	scale       float64
	showFPS     bool
	haltOnError bool
	script      string
}

func playCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the level in a window",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}
	cmd.Flags().Float64Var(&playFlags.scale, "scale", 3, "Window scale of the 320x180 screen")
	cmd.Flags().BoolVar(&playFlags.showFPS, "fps", false, "Show the FPS and actor stats widget")
	cmd.Flags().BoolVar(&playFlags.haltOnError, "halt-on-error", false, "Stop at the first failed frame")
	cmd.Flags().StringVar(&playFlags.script, "script", "", "JSON test script to play back")
	return cmd
}

func runPlay(cmd *cobra.Command, args []string) error {
	log, err := newLogger(os.Stderr, flags.logLevel)
	if err != nil {
		return err
	}
	g, err := loadGame(log)
	if err != nil {
		return err
	}
	scene, err := parabox.NewScene(g)
	if err != nil {
		return err
	}

	var runner *parabox.TestRunner
	if playFlags.script != "" {
		data, err := os.ReadFile(playFlags.script)
		if err != nil {
			return fmt.Errorf("reading script: %w", err)
		}
		runner, err = parabox.LoadTestScript(data)
		if err != nil {
			return err
		}
		scene.SetTestRunner(runner)
		scene.SetUpdateFunc(func() error {
			if runner.Done() {
				return errScriptDone
			}
			return nil
		})
	}

	err = parabox.Run(scene, parabox.RunConfig{
		Title:       "parabox",
		Scale:       playFlags.scale,
		ShowFPS:     playFlags.showFPS,
		HaltOnError: playFlags.haltOnError,
		Debug:       flags.debug,
	})
	if err != nil && err != errScriptDone {
		return err
	}
	if last := scene.LastError(); last != nil {
		log.Warn("frames failed during play", "err", last)
	}
	if runner != nil {
		if failures := runner.Failures(); len(failures) > 0 {
			return fmt.Errorf("script failed:\n  %s", strings.Join(failures, "\n  "))
		}
		log.Info("script passed", "script", playFlags.script, "frames", g.Clock().Frame())
	}
	return nil
}

var errScriptDone = fmt.Errorf("script done")

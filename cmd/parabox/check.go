package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/parabox"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [level.yaml]",
		Short: "Validate a level and print its box tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flags.level
			if len(args) == 1 {
				path = args[0]
			}
			lvl, err := loadLevel(path)
			if err != nil {
				return err
			}
			g, err := lvl.Build()
			if err != nil {
				return err
			}
			printTree(cmd.OutOrStdout(), g)
			return nil
		},
	}
}

// printTree writes one line per box, children indented under their parent.
func printTree(w io.Writer, g *parabox.Game) {
	world := g.World()
	grid := world.Grid()
	fmt.Fprintf(w, "grid %dx%d, %d boxes\n", grid.Extent, grid.Extent, world.Len())
	world.Walk(g.Root(), func(depth int, index parabox.CellIndex, b parabox.Box) bool {
		sw, _ := g.Themes().Lookup(world.Kind(b))
		indent := strings.Repeat("  ", depth)
		if depth == 0 {
			fmt.Fprintf(w, "box %d kind %d swatch %d/%d\n", b, world.Kind(b), sw.Hue, sw.Lum)
			return true
		}
		cell, _ := grid.Decode(index)
		fmt.Fprintf(w, "%s[%d] (%d,%d) box %d kind %d swatch %d/%d\n",
			indent, index, cell.Col, cell.Row, b, world.Kind(b), sw.Hue, sw.Lum)
		return true
	})
	cfg := g.Actor().Config()
	fmt.Fprintf(w, "actor %dx%d cells of %gpx, step %gs, start (%d,%d)\n",
		cfg.Width, cfg.Height, cfg.CellSize, cfg.StepDuration, cfg.Start.Col, cfg.Start.Row)
}

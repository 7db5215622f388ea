package parabox

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// NewStatsWidget creates a node that shows FPS, TPS and the actor's frame
// and cell. The text is redrawn about every 0.5 seconds.
func NewStatsWidget(g *Game) *Node {
	// 120x48 fits three lines of the debug font.
	img := ebiten.NewImage(120, 48)

	node := NewSprite("stats_widget", 1, 1, ColorWhite)
	node.SetCustomImage(img)

	var lastUpdate float64

	node.OnUpdate = func(dt float64) {
		lastUpdate += dt
		if lastUpdate < 0.5 {
			return
		}
		lastUpdate = 0

		img.Clear()
		img.Fill(color.RGBA{0, 0, 0, 128})

		snap := g.Snapshot()
		ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nf%d (%d,%d)",
			ebiten.ActualFPS(), ebiten.ActualTPS(), snap.Frame, snap.Cell.Col, snap.Cell.Row))
	}

	return node
}

package parabox

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 float64 fields on a Node together. Create one
// with TweenRotation or TweenScale and call Update(dt) each frame. A group
// with Loop set restarts from its first value instead of finishing. If the
// target node is disposed, the group stops.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	fields [2]*float64
	target *Node
	Done   bool
	Loop   bool
}

// Update advances the tweens by dt seconds and writes the values to the
// target.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	if allDone && g.Loop {
		for i := 0; i < g.count; i++ {
			g.tweens[i].Reset()
		}
		allDone = false
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenRotation animates node.Rotation to the target angle.
func TweenRotation(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Rotation), float32(to), duration, fn)
	g.fields[0] = &node.Rotation
	return g
}

// TweenScale animates node.ScaleX and node.ScaleY to the target values.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.ScaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(node.ScaleY), float32(toSY), duration, fn)
	g.fields[0] = &node.ScaleX
	g.fields[1] = &node.ScaleY
	return g
}

// NewSpinner turns node one full revolution every period seconds, forever.
func NewSpinner(node *Node, period float32) *TweenGroup {
	g := TweenRotation(node, node.Rotation+2*math.Pi, period, ease.Linear)
	g.Loop = true
	return g
}

// NewStepPulse enlarges node and settles it back to unit scale. Scenes play
// one on the actor each time a step ends.
func NewStepPulse(node *Node) *TweenGroup {
	node.SetScale(1.25, 1.25)
	return TweenScale(node, 1, 1, 0.12, ease.OutQuad)
}

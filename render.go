package parabox

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Logical screen and layout sizes in pixels.
const (
	ScreenWidth  = 320
	ScreenHeight = 180
	BoxSize      = 160

	actorSize = 10
)

// slotBackdrop is drawn under every occupied slot.
var slotBackdrop = Swatch{Hue: 0, Lum: 0}

// BuildBoxNode builds the node subtree that draws b as a size x size square
// with each child box drawn inset into its slot. Nesting is realized by
// calling BuildBoxNode again for every entry of w.Flatten(b), so depth is
// only limited by the world. A kind without a theme fails with
// ErrUnknownKind.
func BuildBoxNode(w *World, b Box, themes ThemeTable, size float64) (*Node, error) {
	sw, err := themes.Lookup(w.Kind(b))
	if err != nil {
		return nil, fmt.Errorf("render box %d: %w", b, err)
	}
	n := NewContainer(fmt.Sprintf("box-%d", b))
	n.Box = b
	n.AddChild(NewSprite("face", size, size, sw.Color()))

	grid := w.Grid()
	slot := size / float64(grid.Extent)
	inset := slot * 0.1
	for index, child := range w.Flatten(b) {
		cell, err := grid.Decode(index)
		if err != nil {
			return nil, fmt.Errorf("render box %d: %w", b, err)
		}
		x := float64(cell.Col) * slot
		y := float64(cell.Row) * slot

		backdrop := NewSprite("slot", slot, slot, slotBackdrop.Color())
		backdrop.SetPosition(x, y)
		n.AddChild(backdrop)

		cn, err := BuildBoxNode(w, child, themes, slot-2*inset)
		if err != nil {
			return nil, err
		}
		cn.SetPosition(x+inset, y+inset)
		n.AddChild(cn)
	}
	return n, nil
}

// NewActorNode creates the diamond that marks the actor. Position it with
// syncActorNode.
func NewActorNode() *Node {
	n := NewContainer("mila")
	body := NewSprite("mila-body", actorSize, actorSize, SwatchRed3.Color())
	body.SetPivot(0.5, 0.5)
	body.SetRotation(math.Pi * 0.25)
	n.AddChild(body)
	return n
}

func syncActorNode(n *Node, s Snapshot) {
	n.SetPosition(math.Round(s.Position.X), math.Round(s.Position.Y))
}

// NewStrokeRect creates an outlined rectangle of four solid edges.
func NewStrokeRect(name string, c Color, x, y, w, h, thick float64) *Node {
	if thick <= 0 {
		thick = 2
	}
	n := NewContainer(name)
	n.SetPosition(x, y)
	edges := [4][4]float64{
		{0, 0, w, thick},
		{0, h - thick, w, thick},
		{0, 0, thick, h},
		{w - thick, 0, thick, h},
	}
	for _, e := range edges {
		s := NewSprite(name+"-edge", e[2], e[3], c)
		s.SetPosition(e[0], e[1])
		n.AddChild(s)
	}
	return n
}

// newDecoration builds the three outlined squares that spin in the corner
// of the screen.
func newDecoration() *Node {
	n := NewContainer("decoration")
	n.SetPosition(100, 100)
	n.SetPivot(20, 20)
	c := SwatchRed2.Color()
	n.AddChild(NewStrokeRect("stroke-a", c, 0, 0, 20, 20, 2))
	n.AddChild(NewStrokeRect("stroke-b", c, 21, 0, 20, 20, 2))
	n.AddChild(NewStrokeRect("stroke-c", c, 0, 21, 20, 20, 2))
	return n
}

// nodeGeoM converts a node's world transform to an ebiten.GeoM.
func nodeGeoM(n *Node) ebiten.GeoM {
	var m ebiten.GeoM
	m.SetElement(0, 0, n.worldTransform[0])
	m.SetElement(1, 0, n.worldTransform[1])
	m.SetElement(0, 1, n.worldTransform[2])
	m.SetElement(1, 1, n.worldTransform[3])
	m.SetElement(0, 2, n.worldTransform[4])
	m.SetElement(1, 2, n.worldTransform[5])
	return m
}

// drawNode draws the visible sprites of the subtree in tree order.
func drawNode(target *ebiten.Image, n *Node, op *ebiten.DrawImageOptions) {
	if n.disposed || !n.Visible {
		return
	}
	if n.Type == NodeTypeSprite {
		img := WhitePixel
		if n.customImage != nil {
			img = n.customImage
		}
		op.GeoM = nodeGeoM(n)
		op.ColorScale.Reset()
		a := float32(n.worldAlpha * n.Color.A)
		op.ColorScale.Scale(float32(n.Color.R)*a, float32(n.Color.G)*a, float32(n.Color.B)*a, a)
		target.DrawImage(img, op)
	}
	for _, child := range n.children {
		drawNode(target, child, op)
	}
}

package parabox

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the ebiten host for a Game. It owns the node tree that draws the
// box world and the actor, turns ebiten ticks into Game.Step calls and feeds
// injected input to the game. Scene implements ebiten.Game.
type Scene struct {
	game *Game

	root      *Node
	boxNode   *Node
	actorNode *Node
	anims     []*TweenGroup
	pulse     *TweenGroup
	lastCell  Cell

	// ClearColor fills the screen before the tree is drawn.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	injected        InjectedPoller
	injectQueue     []injectedKey
	testRunner      *TestRunner
	screenshotQueue []string

	updateFunc  func() error
	haltOnError bool
	lastErr     error
	drawOp      ebiten.DrawImageOptions
}

// NewScene builds the node tree for g and routes injected input to it.
// Keyboard input is added by Run.
func NewScene(g *Game) (*Scene, error) {
	s := &Scene{
		game:          g,
		root:          NewContainer("root"),
		ClearColor:    Color{R: 0, G: 0, B: 0, A: 1},
		ScreenshotDir: "screenshots",
	}

	bg := NewSprite("background", ScreenWidth, ScreenHeight, SwatchSand2.Color())
	s.root.AddChild(bg)

	boxNode, err := BuildBoxNode(g.World(), g.Root(), g.Themes(), BoxSize)
	if err != nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}
	boxNode.SetPivot(BoxSize/2, BoxSize/2)
	boxNode.SetPosition(ScreenWidth/2, ScreenHeight/2)
	s.root.AddChild(boxNode)
	s.boxNode = boxNode

	s.actorNode = NewActorNode()
	boxNode.AddChild(s.actorNode)

	deco := newDecoration()
	s.root.AddChild(deco)
	s.anims = append(s.anims, NewSpinner(deco, 10.47))

	snap := g.Snapshot()
	s.lastCell = snap.Cell
	syncActorNode(s.actorNode, snap)
	updateWorldTransform(s.root, identityTransform, 1, false)

	g.SetPoller(&s.injected)
	return s, nil
}

// Game returns the game driven by the scene.
func (s *Scene) Game() *Game { return s.game }

// Root returns the scene's root container node.
func (s *Scene) Root() *Node { return s.root }

// BoxNode returns the container that draws the root box.
func (s *Scene) BoxNode() *Node { return s.boxNode }

// ActorNode returns the container that draws the actor.
func (s *Scene) ActorNode() *Node { return s.actorNode }

// SetUpdateFunc sets a callback run at the end of every Update. A non-nil
// error stops the ebiten loop.
func (s *Scene) SetUpdateFunc(fn func() error) { s.updateFunc = fn }

// SetHaltOnError makes Update return subscriber failures, which stops the
// ebiten loop. By default failures are only recorded.
func (s *Scene) SetHaltOnError(halt bool) { s.haltOnError = halt }

// LastError returns the most recent frame failure, or nil.
func (s *Scene) LastError() error { return s.lastErr }

// Update runs one fixed-rate frame.
func (s *Scene) Update() error {
	return s.step(1.0 / float64(ebiten.TPS()))
}

func (s *Scene) step(dt float64) error {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInjectedInput()

	if err := s.game.Step(dt); err != nil {
		s.lastErr = err
		if s.game.debug {
			debugLogError(s.game.clock.Frame(), err)
		}
		if s.haltOnError {
			return err
		}
	}

	for _, a := range s.anims {
		a.Update(float32(dt))
	}
	snap := s.game.Snapshot()
	if snap.Cell != s.lastCell {
		s.lastCell = snap.Cell
		s.pulse = NewStepPulse(s.actorNode)
	}
	if s.pulse != nil {
		s.pulse.Update(float32(dt))
	}
	syncActorNode(s.actorNode, snap)

	updateWorldTransform(s.root, identityTransform, 1, false)
	updateNodes(s.root, dt)

	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// Draw clears the screen and draws the node tree.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(s.ClearColor.toRGBA())
	updateWorldTransform(s.root, identityTransform, 1, false)
	drawNode(screen, s.root, &s.drawOp)
	s.flushScreenshots(screen)
}

// Layout reports the fixed logical screen size.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

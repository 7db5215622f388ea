package parabox

import (
	"fmt"
	"time"
)

// EventSink is the interface for optional ECS integration.
// When set on a Game, actor step events are forwarded to it.
type EventSink interface {
	EmitEvent(event ActorEvent)
}

// Snapshot is a read-only view of the game taken after a frame completed.
type Snapshot struct {
	Frame    uint64
	Position Vec2
	Cell     Cell
	Target   Cell
	Intent   Intent
	Moving   bool
	Input    DirectionalInput // input sampled on the frame
}

// Game owns the box world, the actor and the frame clock that drives them.
// It has no knowledge of where frames come from; hosts call Step once per
// frame.
type Game struct {
	world  *World
	root   Box
	themes ThemeTable
	actor  *Actor
	clock  *Clock

	agg    InputAggregator
	poller Poller
	sink   EventSink

	snapshot Snapshot
	debug    bool
}

// NewGame validates the world against themes and creates the actor and the
// clock. The actor advances on every frame and then takes that frame's input.
func NewGame(world *World, root Box, themes ThemeTable, actorCfg ActorConfig) (*Game, error) {
	if !world.Contains(root) {
		return nil, fmt.Errorf("new game: root box %d: %w", root, ErrUnknownBox)
	}
	if err := themes.Check(world); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	actor, err := NewActor(actorCfg)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	g := &Game{
		world:  world,
		root:   root,
		themes: themes,
		actor:  actor,
		clock:  NewClock(),
	}
	actor.OnStep = g.emit
	g.clock.OnFrame("actor", func(s FrameSample) error {
		g.actor.Advance(s.Delta, s.Previous)
		return nil
	})
	g.clock.OnInput("actor", func(in DirectionalInput) error {
		g.actor.SetDirectionalInput(in)
		return nil
	})
	g.takeSnapshot()
	return g, nil
}

// World returns the box world.
func (g *Game) World() *World { return g.world }

// Root returns the outermost box.
func (g *Game) Root() Box { return g.root }

// Themes returns the theme table the world was validated against.
func (g *Game) Themes() ThemeTable { return g.themes }

// Actor returns the actor. Read its state through Snapshot from renderers.
func (g *Game) Actor() *Actor { return g.actor }

// Clock returns the frame clock so hosts can register more subscribers.
// Subscribers registered here run after the actor's.
func (g *Game) Clock() *Clock { return g.clock }

// SetPoller sets the input device polled once per frame. nil means no input.
func (g *Game) SetPoller(p Poller) { g.poller = p }

// SetEventSink sets the optional ECS bridge.
func (g *Game) SetEventSink(sink EventSink) { g.sink = sink }

// SetDebugMode enables or disables per-frame timing logs and box depth
// warnings on stderr.
func (g *Game) SetDebugMode(enabled bool) {
	g.debug = enabled
	g.world.debug = enabled
	globalDebug = enabled
}

// Snapshot returns the state as of the end of the last completed frame.
func (g *Game) Snapshot() Snapshot { return g.snapshot }

// Step samples input and runs one frame of dt seconds. Subscriber failures
// are returned after the whole frame ran.
func (g *Game) Step(dt float64) error {
	in := g.agg.Sample(g.poller)

	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}
	err := g.clock.Tick(dt, in)
	if g.debug {
		g.debugLog(debugStats{
			frame:       g.clock.Frame(),
			tickTime:    time.Since(t0),
			subscribers: len(g.clock.frame) + len(g.clock.input),
			failed:      err != nil,
		})
	}
	g.takeSnapshot()
	return err
}

func (g *Game) takeSnapshot() {
	g.snapshot = Snapshot{
		Frame:    g.clock.Frame(),
		Position: g.actor.Position(),
		Cell:     g.actor.Cell(),
		Target:   g.actor.Target(),
		Intent:   g.actor.Intent(),
		Moving:   g.actor.Moving(),
		Input:    g.agg.Current(),
	}
}

func (g *Game) emit(e ActorEvent) {
	if g.sink != nil {
		g.sink.EmitEvent(e)
	}
}

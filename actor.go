package parabox

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ActorConfig configures an Actor.
type ActorConfig struct {
	// Width and Height are the size of the movement grid in cells.
	Width, Height int

	// CellSize is the size of one movement cell in pixels.
	CellSize float64

	// StepDuration is the time in seconds to travel one cell.
	StepDuration float64

	// MaxFrameDelta caps the time integrated by a single Advance. Values
	// above StepDuration are lowered to StepDuration.
	MaxFrameDelta float64

	// Start is the cell the actor is created on.
	Start Cell

	// Ease shapes travel inside a step. It must be monotonic; nil means
	// ease.Linear.
	Ease ease.TweenFunc
}

// DefaultActorConfig returns the configuration of Mila: an 8x8 movement grid
// of 20px cells.
func DefaultActorConfig() ActorConfig {
	return ActorConfig{
		Width:         8,
		Height:        8,
		CellSize:      20,
		StepDuration:  0.15,
		MaxFrameDelta: 0.1,
		Ease:          ease.Linear,
	}
}

// ActorEventType identifies an actor movement event.
type ActorEventType uint8

const (
	ActorStepStart ActorEventType = iota // fires when travel toward a new cell begins
	ActorStepEnd                         // fires when the actor settles on the new cell
)

// ActorEvent describes one step of the actor across the movement grid.
type ActorEvent struct {
	Type ActorEventType
	From Cell
	To   Cell
}

// Actor is the player-controlled entity. It walks a grid one cell at a time,
// with continuous position while travelling between cells. Position only
// changes through Advance and intent only through SetDirectionalInput.
type Actor struct {
	cfg ActorConfig

	cell   Cell
	target Cell
	pos    Vec2
	intent Intent

	moving  bool
	elapsed float64
	tweens  [2]*gween.Tween

	// OnStep is called when a step starts and ends. Nil by default.
	OnStep func(ActorEvent)
}

// NewActor creates an actor resting on cfg.Start.
func NewActor(cfg ActorConfig) (*Actor, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("actor grid %dx%d: %w", cfg.Width, cfg.Height, ErrInvalidGrid)
	}
	if cfg.CellSize <= 0 {
		return nil, fmt.Errorf("actor cell size %v must be positive", cfg.CellSize)
	}
	if cfg.StepDuration <= 0 {
		return nil, fmt.Errorf("actor step duration %v must be positive", cfg.StepDuration)
	}
	if cfg.MaxFrameDelta <= 0 || cfg.MaxFrameDelta > cfg.StepDuration {
		cfg.MaxFrameDelta = cfg.StepDuration
	}
	if cfg.Ease == nil {
		cfg.Ease = ease.Linear
	}
	a := &Actor{cfg: cfg}
	if !a.inBounds(cfg.Start) {
		return nil, fmt.Errorf("actor start (%d,%d): %w", cfg.Start.Col, cfg.Start.Row, ErrInvalidAddress)
	}
	a.cell = cfg.Start
	a.target = cfg.Start
	a.pos = a.cellCenter(cfg.Start)
	return a, nil
}

// Config returns the actor's effective configuration.
func (a *Actor) Config() ActorConfig {
	return a.cfg
}

// Position returns the actor's center in pixels, relative to the movement grid.
func (a *Actor) Position() Vec2 {
	return a.pos
}

// Cell returns the last cell the actor settled on.
func (a *Actor) Cell() Cell {
	return a.cell
}

// Target returns the cell the actor is travelling to, or Cell() when idle.
func (a *Actor) Target() Cell {
	return a.target
}

// Intent returns the intent set by the last SetDirectionalInput.
func (a *Actor) Intent() Intent {
	return a.intent
}

// Moving reports whether the actor is between cells.
func (a *Actor) Moving() bool {
	return a.moving
}

// Bounds returns the rectangle Position stays within: the span of the cell
// centers of the movement grid.
func (a *Actor) Bounds() Rect {
	lo := a.cellCenter(Cell{})
	hi := a.cellCenter(Cell{Col: a.cfg.Width - 1, Row: a.cfg.Height - 1})
	return Rect{X: lo.X, Y: lo.Y, Width: hi.X - lo.X, Height: hi.Y - lo.Y}
}

// SetDirectionalInput resolves in into the actor's movement intent. The
// intent is read when the next step begins; a step in progress always runs
// to its cell.
func (a *Actor) SetDirectionalInput(in DirectionalInput) {
	a.intent = in.Intent()
}

// Advance integrates dt seconds of travel. The second argument is the
// previous frame's delta; integration depends on dt only.
//
// dt is capped at MaxFrameDelta so a long frame never carries the actor more
// than one cell. Time left over when a step completes starts the next step
// if an intent is held, so for uncapped deltas the position depends only on
// the total elapsed time and the intent history. A zero dt is a no-op.
func (a *Actor) Advance(dt, _ float64) {
	remaining := min(max(dt, 0), a.cfg.MaxFrameDelta)
	for remaining > 0 {
		if !a.moving && !a.beginStep() {
			return
		}
		left := a.cfg.StepDuration - a.elapsed
		if remaining < left {
			a.elapsed += remaining
			remaining = 0
			a.applyTweens()
			return
		}
		remaining -= left
		a.finishStep()
	}
}

// beginStep starts travel toward the neighbor cell selected by the intent.
// Axes that would leave the grid are dropped. Reports whether a step began.
func (a *Actor) beginStep() bool {
	next := Cell{Col: a.cell.Col + a.intent.X, Row: a.cell.Row + a.intent.Y}
	if next.Col < 0 || next.Col >= a.cfg.Width {
		next.Col = a.cell.Col
	}
	if next.Row < 0 || next.Row >= a.cfg.Height {
		next.Row = a.cell.Row
	}
	if next == a.cell {
		return false
	}

	from := a.cellCenter(a.cell)
	to := a.cellCenter(next)
	d := float32(a.cfg.StepDuration)
	a.tweens[0] = gween.New(float32(from.X), float32(to.X), d, a.cfg.Ease)
	a.tweens[1] = gween.New(float32(from.Y), float32(to.Y), d, a.cfg.Ease)
	a.target = next
	a.moving = true
	a.elapsed = 0
	a.emit(ActorEvent{Type: ActorStepStart, From: a.cell, To: next})
	return true
}

func (a *Actor) applyTweens() {
	x, _ := a.tweens[0].Set(float32(a.elapsed))
	y, _ := a.tweens[1].Set(float32(a.elapsed))
	a.pos = Vec2{X: float64(x), Y: float64(y)}
}

// finishStep settles the actor exactly on its target cell.
func (a *Actor) finishStep() {
	from := a.cell
	a.cell = a.target
	a.pos = a.cellCenter(a.cell)
	a.moving = false
	a.elapsed = 0
	a.tweens = [2]*gween.Tween{}
	a.emit(ActorEvent{Type: ActorStepEnd, From: from, To: a.cell})
}

func (a *Actor) emit(e ActorEvent) {
	if a.OnStep != nil {
		a.OnStep(e)
	}
}

func (a *Actor) inBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < a.cfg.Width && c.Row >= 0 && c.Row < a.cfg.Height
}

func (a *Actor) cellCenter(c Cell) Vec2 {
	return Vec2{
		X: (float64(c.Col) + 0.5) * a.cfg.CellSize,
		Y: (float64(c.Row) + 0.5) * a.cfg.CellSize,
	}
}

package parabox

import "github.com/hajimehoshi/ebiten/v2"

// DirectionalInput holds how long each direction has been held, in frames.
// Zero means the direction is not active. Directions are independent: up and
// down may both be active in the same sample.
type DirectionalInput struct {
	Up, Down, Left, Right float64
}

// Intent is a resolved movement direction. Each axis is -1, 0 or +1. Y grows
// downward, so Up resolves to Y = -1.
type Intent struct {
	X, Y int
}

// Zero reports whether the intent requests no movement.
func (i Intent) Zero() bool {
	return i.X == 0 && i.Y == 0
}

// Intent resolves the sample into a single movement intent. On each axis an
// active direction wins when the opposite one is inactive or has been held
// for less time, so the most recently pressed key wins. Equal non-zero holds
// cancel out.
func (in DirectionalInput) Intent() Intent {
	return Intent{
		X: resolveAxis(in.Left, in.Right),
		Y: resolveAxis(in.Up, in.Down),
	}
}

// resolveAxis returns -1 for neg, +1 for pos, 0 for neither.
func resolveAxis(neg, pos float64) int {
	v := 0
	if neg > 0 && (pos == 0 || neg < pos) {
		v = -1
	}
	if pos > 0 && (neg == 0 || pos < neg) {
		v = 1
	}
	return v
}

// Held returns the hold time of d.
func (in DirectionalInput) Held(d Direction) float64 {
	switch d {
	case DirUp:
		return in.Up
	case DirDown:
		return in.Down
	case DirLeft:
		return in.Left
	case DirRight:
		return in.Right
	}
	return 0
}

// Poller reports which directions are currently pressed on an input device.
type Poller interface {
	Pressed(d Direction) bool
}

// InputAggregator turns per-frame pressed states into hold durations.
type InputAggregator struct {
	held [4]float64
}

// Sample polls p once and returns the updated hold durations. Call exactly
// once per frame: a direction pressed this frame reports 1, and each further
// frame it stays pressed adds 1. Released directions reset to 0.
func (a *InputAggregator) Sample(p Poller) DirectionalInput {
	for d := DirUp; d <= DirRight; d++ {
		if p != nil && p.Pressed(d) {
			a.held[d]++
		} else {
			a.held[d] = 0
		}
	}
	return a.Current()
}

// Current returns the most recent sample without polling.
func (a *InputAggregator) Current() DirectionalInput {
	return DirectionalInput{
		Up:    a.held[DirUp],
		Down:  a.held[DirDown],
		Left:  a.held[DirLeft],
		Right: a.held[DirRight],
	}
}

// Reset releases every direction.
func (a *InputAggregator) Reset() {
	a.held = [4]float64{}
}

// KeyboardPoller reads the arrow keys and WASD through ebiten.
type KeyboardPoller struct{}

var directionKeys = [4][2]ebiten.Key{
	DirUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	DirDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	DirLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	DirRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// Pressed reports whether any key bound to d is held.
func (KeyboardPoller) Pressed(d Direction) bool {
	if int(d) >= len(directionKeys) {
		return false
	}
	for _, k := range directionKeys[d] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// InjectedPoller is a Poller whose pressed state is set by code. Used for
// scripted frames and tests.
type InjectedPoller struct {
	pressed [4]bool
}

// Press marks d as held until Release is called.
func (p *InjectedPoller) Press(d Direction) {
	if int(d) < len(p.pressed) {
		p.pressed[d] = true
	}
}

// Release marks d as not held.
func (p *InjectedPoller) Release(d Direction) {
	if int(d) < len(p.pressed) {
		p.pressed[d] = false
	}
}

// ReleaseAll releases every direction.
func (p *InjectedPoller) ReleaseAll() {
	p.pressed = [4]bool{}
}

// Pressed reports whether d is held.
func (p *InjectedPoller) Pressed(d Direction) bool {
	return int(d) < len(p.pressed) && p.pressed[d]
}

// multiPoller reports a direction pressed when any of its pollers does.
type multiPoller []Poller

func (m multiPoller) Pressed(d Direction) bool {
	for _, p := range m {
		if p != nil && p.Pressed(d) {
			return true
		}
	}
	return false
}

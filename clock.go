package parabox

import (
	"errors"
	"fmt"
	"math"
)

// FrameSample is delivered to frame subscribers once per frame.
type FrameSample struct {
	Delta    float64 // seconds since the previous frame
	Previous float64 // Delta of the previous frame, 0 on the first frame
	Frame    uint64  // 1 on the first frame
}

type frameHandler struct {
	id   uint32
	name string
	fn   func(FrameSample) error
}

type inputHandler struct {
	id   uint32
	name string
	fn   func(DirectionalInput) error
}

type subscriberKind uint8

const (
	subscriberFrame subscriberKind = iota
	subscriberInput
)

// Handle allows removing a registered subscriber.
type Handle struct {
	id    uint32
	clock *Clock
	kind  subscriberKind
}

// Remove unregisters the subscriber. Removing during a tick takes effect on
// the next tick.
func (h Handle) Remove() {
	if h.clock == nil {
		return
	}
	switch h.kind {
	case subscriberFrame:
		h.clock.frame = removeFrameHandler(h.clock.frame, h.id)
	case subscriberInput:
		h.clock.input = removeInputHandler(h.clock.input, h.id)
	}
}

func removeFrameHandler(s []frameHandler, id uint32) []frameHandler {
	for i := range s {
		if s[i].id == id {
			out := make([]frameHandler, 0, len(s)-1)
			out = append(out, s[:i]...)
			return append(out, s[i+1:]...)
		}
	}
	return s
}

func removeInputHandler(s []inputHandler, id uint32) []inputHandler {
	for i := range s {
		if s[i].id == id {
			out := make([]inputHandler, 0, len(s)-1)
			out = append(out, s[:i]...)
			return append(out, s[i+1:]...)
		}
	}
	return s
}

// Clock fans each frame out to its subscribers. Within a tick every frame
// subscriber runs first, in registration order, followed by every input
// subscriber in registration order. Input therefore takes effect one frame
// after it is sampled.
//
// A failing subscriber does not stop the frame: the remaining subscribers
// still run, nothing is rolled back, and Tick returns every failure joined
// together as *SubscriberError values.
type Clock struct {
	frame   []frameHandler
	input   []inputHandler
	nextID  uint32
	prevDt  float64
	frames  uint64
	ticking bool
}

// NewClock creates a clock with no subscribers.
func NewClock() *Clock {
	return &Clock{}
}

// OnFrame registers fn to receive every frame sample.
func (c *Clock) OnFrame(name string, fn func(FrameSample) error) Handle {
	c.nextID++
	c.frame = append(c.frame, frameHandler{id: c.nextID, name: name, fn: fn})
	return Handle{id: c.nextID, clock: c, kind: subscriberFrame}
}

// OnInput registers fn to receive the directional input of every frame.
func (c *Clock) OnInput(name string, fn func(DirectionalInput) error) Handle {
	c.nextID++
	c.input = append(c.input, inputHandler{id: c.nextID, name: name, fn: fn})
	return Handle{id: c.nextID, clock: c, kind: subscriberInput}
}

// Frame returns the number of completed ticks.
func (c *Clock) Frame() uint64 {
	return c.frames
}

// Tick runs one frame of dt seconds with the input sampled for it.
func (c *Clock) Tick(dt float64, in DirectionalInput) error {
	if c.ticking {
		return ErrReentrantTick
	}
	if math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("tick %v: %w", dt, ErrInvalidDelta)
	}
	if dt < 0 {
		return fmt.Errorf("tick %v: %w", dt, ErrNegativeDelta)
	}
	c.ticking = true
	defer func() { c.ticking = false }()

	c.frames++
	sample := FrameSample{Delta: dt, Previous: c.prevDt, Frame: c.frames}
	c.prevDt = dt

	var errs []error
	for _, h := range c.frame {
		if err := h.fn(sample); err != nil {
			errs = append(errs, &SubscriberError{Name: h.name, Frame: sample.Frame, Err: err})
		}
	}
	for _, h := range c.input {
		if err := h.fn(in); err != nil {
			errs = append(errs, &SubscriberError{Name: h.name, Frame: sample.Frame, Err: err})
		}
	}
	return errors.Join(errs...)
}

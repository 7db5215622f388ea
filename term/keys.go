package term

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/parabox"
)

// DefaultHoldWindow is how long a direction stays pressed after its last key
// event. Terminals report no key releases, only presses and auto-repeats, so
// a key counts as held while repeats keep arriving inside the window.
const DefaultHoldWindow = 250 * time.Millisecond

// KeyPoller is a parabox.Poller fed by tcell key events. It is safe to feed
// events from the screen's event goroutine while the frame loop polls.
type KeyPoller struct {
	// Hold is the hold window. Zero means DefaultHoldWindow.
	Hold time.Duration

	mu   sync.Mutex
	last [4]time.Time
	now  func() time.Time
}

// NewKeyPoller creates a poller using the wall clock.
func NewKeyPoller() *KeyPoller {
	return &KeyPoller{Hold: DefaultHoldWindow, now: time.Now}
}

// directionForKey maps arrows, WASD and hjkl to directions.
func directionForKey(ev *tcell.EventKey) (parabox.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return parabox.DirUp, true
	case tcell.KeyDown:
		return parabox.DirDown, true
	case tcell.KeyLeft:
		return parabox.DirLeft, true
	case tcell.KeyRight:
		return parabox.DirRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W', 'k':
			return parabox.DirUp, true
		case 's', 'S', 'j':
			return parabox.DirDown, true
		case 'a', 'A', 'h':
			return parabox.DirLeft, true
		case 'd', 'D', 'l':
			return parabox.DirRight, true
		}
	}
	return 0, false
}

// HandleKey records ev if it is a direction key and reports whether it was.
func (p *KeyPoller) HandleKey(ev *tcell.EventKey) bool {
	d, ok := directionForKey(ev)
	if !ok {
		return false
	}
	at := ev.When()
	if at.IsZero() {
		at = p.clock()
	}
	p.Press(d, at)
	return true
}

// Press records a key event for d at the given time.
func (p *KeyPoller) Press(d parabox.Direction, at time.Time) {
	if int(d) >= len(p.last) {
		return
	}
	p.mu.Lock()
	if at.After(p.last[d]) {
		p.last[d] = at
	}
	p.mu.Unlock()
}

// Pressed reports whether d had a key event within the hold window.
func (p *KeyPoller) Pressed(d parabox.Direction) bool {
	if int(d) >= len(p.last) {
		return false
	}
	p.mu.Lock()
	last := p.last[d]
	p.mu.Unlock()
	if last.IsZero() {
		return false
	}
	return p.clock().Sub(last) < p.window()
}

// Reset forgets every key event.
func (p *KeyPoller) Reset() {
	p.mu.Lock()
	p.last = [4]time.Time{}
	p.mu.Unlock()
}

func (p *KeyPoller) window() time.Duration {
	if p.Hold <= 0 {
		return DefaultHoldWindow
	}
	return p.Hold
}

func (p *KeyPoller) clock() time.Time {
	if p.now == nil {
		return time.Now()
	}
	return p.now()
}

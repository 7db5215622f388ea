package parabox

type injectKind uint8

const (
	injectPress injectKind = iota
	injectHold
	injectRelease
)

// injectedKey is one queued change to the injected direction keys.
type injectedKey struct {
	kind injectKind
	dir  Direction
}

// InjectPress queues a key press for direction d. The event is applied at
// the start of the next frame, before input is sampled.
func (s *Scene) InjectPress(d Direction) {
	s.injectQueue = append(s.injectQueue, injectedKey{kind: injectPress, dir: d})
}

// InjectRelease queues a key release for direction d.
func (s *Scene) InjectRelease(d Direction) {
	s.injectQueue = append(s.injectQueue, injectedKey{kind: injectRelease, dir: d})
}

// InjectHold queues a press of d that is held for the given number of
// frames and then released. Minimum frames is 1; the release takes one more
// frame.
func (s *Scene) InjectHold(d Direction, frames int) {
	if frames < 1 {
		frames = 1
	}
	s.InjectPress(d)
	for i := 1; i < frames; i++ {
		s.injectQueue = append(s.injectQueue, injectedKey{kind: injectHold, dir: d})
	}
	s.InjectRelease(d)
}

// processInjectedInput pops one event from the inject queue and applies it to
// the injected poller. Returns true if an event was consumed.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case injectPress:
		s.injected.Press(evt.dir)
	case injectRelease:
		s.injected.Release(evt.dir)
	}
	return true
}

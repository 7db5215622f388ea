package parabox

import "testing"

func TestInjectQueueOrder(t *testing.T) {
	s := newTestScene(t)

	s.InjectPress(DirUp)
	s.InjectRelease(DirUp)
	s.InjectPress(DirLeft)

	if len(s.injectQueue) != 3 {
		t.Fatalf("expected 3 events, got %d", len(s.injectQueue))
	}
	want := []injectedKey{{injectPress, DirUp}, {injectRelease, DirUp}, {injectPress, DirLeft}}
	for i, w := range want {
		if s.injectQueue[i] != w {
			t.Errorf("event %d = %+v, want %+v", i, s.injectQueue[i], w)
		}
	}
}

func TestProcessInjectedInput(t *testing.T) {
	s := newTestScene(t)
	if s.processInjectedInput() {
		t.Error("empty queue should not consume")
	}

	s.InjectPress(DirDown)
	if !s.processInjectedInput() {
		t.Fatal("expected an event to be consumed")
	}
	if !s.injected.Pressed(DirDown) {
		t.Error("down should be pressed")
	}
	if len(s.injectQueue) != 0 {
		t.Errorf("queue should be empty, got %d", len(s.injectQueue))
	}
}

func TestInjectHold(t *testing.T) {
	s := newTestScene(t)
	s.InjectHold(DirRight, 3)
	// press, 2 hold frames, release
	if len(s.injectQueue) != 4 {
		t.Fatalf("expected 4 queued events, got %d", len(s.injectQueue))
	}

	var held []float64
	for i := 0; i < 5; i++ {
		if err := s.step(0.01); err != nil {
			t.Fatal(err)
		}
		held = append(held, s.game.agg.Current().Right)
	}
	want := []float64{1, 2, 3, 0, 0}
	for i := range want {
		if held[i] != want[i] {
			t.Errorf("frame %d: held = %v, want %v (all: %v)", i+1, held[i], want[i], held)
		}
	}
}

func TestInjectHoldMinFrames(t *testing.T) {
	s := newTestScene(t)
	s.InjectHold(DirLeft, 0)
	if len(s.injectQueue) != 2 {
		t.Fatalf("expected press and release, got %d events", len(s.injectQueue))
	}
}

package ecs

import (
	"github.com/phanxgames/parabox"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ActorEventType is the Donburi event type for actor step events.
var ActorEventType = events.NewEventType[parabox.ActorEvent]()

// ActorState is the actor as seen by ECS systems.
type ActorState struct {
	Frame    uint64
	Position parabox.Vec2
	Cell     parabox.Cell
	Target   parabox.Cell
	Moving   bool
}

// ActorComponent holds the mirrored actor state.
var ActorComponent = donburi.NewComponentType[ActorState]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to ActorEventType and can be consumed with events.Subscribe and
// ProcessEvents.
func NewDonburiSink(world donburi.World) parabox.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event parabox.ActorEvent) {
	ActorEventType.Publish(s.world, event)
}

// Mirror owns the entity that carries ActorComponent.
type Mirror struct {
	world  donburi.World
	entity donburi.Entity
}

// NewMirror creates the actor entity in world.
func NewMirror(world donburi.World) *Mirror {
	return &Mirror{world: world, entity: world.Create(ActorComponent)}
}

// Entity returns the mirrored actor entity.
func (m *Mirror) Entity() donburi.Entity { return m.entity }

// State returns the last synced state.
func (m *Mirror) State() ActorState {
	return *ActorComponent.Get(m.world.Entry(m.entity))
}

// Sync copies the actor's state into the entity.
func (m *Mirror) Sync(frame uint64, a *parabox.Actor) {
	ActorComponent.SetValue(m.world.Entry(m.entity), ActorState{
		Frame:    frame,
		Position: a.Position(),
		Cell:     a.Cell(),
		Target:   a.Target(),
		Moving:   a.Moving(),
	})
}

// Attach routes g's actor events into world and registers a frame
// subscriber named "ecs" that syncs the mirror and delivers the frame's
// queued events. The subscriber runs after the actor has advanced.
func Attach(g *parabox.Game, world donburi.World) *Mirror {
	g.SetEventSink(NewDonburiSink(world))
	m := NewMirror(world)
	m.Sync(g.Clock().Frame(), g.Actor())
	g.Clock().OnFrame("ecs", func(s parabox.FrameSample) error {
		m.Sync(s.Frame, g.Actor())
		ActorEventType.ProcessEvents(world)
		return nil
	})
	return m
}

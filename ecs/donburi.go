package ecs

import (
	"github.com/phanxgames/slideact"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SliderEventType is the Donburi event type for slider events.
var SliderEventType = events.NewEventType[slideact.SliderEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Events are
// queued on SliderEventType and delivered by ProcessEvents.
func NewDonburiStore(world donburi.World) slideact.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event slideact.SliderEvent) {
	SliderEventType.Publish(s.world, event)
}

// SliderState is a snapshot of a slider for polling systems.
type SliderState struct {
	State     slideact.State
	Offset    float64
	Percent   int
	Completed bool
	Locked    bool
}

// SliderStateComponent holds a SliderState on an entity.
var SliderStateComponent = donburi.NewComponentType[SliderState]()

// NewSliderEntity creates an entity carrying a SliderState for s.
func NewSliderEntity(world donburi.World, s *slideact.Slider) donburi.Entity {
	e := world.Create(SliderStateComponent)
	Sync(world.Entry(e), s)
	return e
}

// Sync copies the current state of s onto entry.
func Sync(entry *donburi.Entry, s *slideact.Slider) {
	SliderStateComponent.SetValue(entry, SliderState{
		State:     s.State(),
		Offset:    s.Offset(),
		Percent:   s.PositionPercent(),
		Completed: s.IsCompleted(),
		Locked:    s.IsLocked(),
	})
}

// Package ecs bridges slideact events into a [Donburi] world.
//
// [NewDonburiStore] publishes every fired slider event to [SliderEventType]
// as a typed Donburi event, and [SliderStateComponent] mirrors a slider's
// state onto an entity for systems that poll rather than subscribe.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	slider.SetEventStore(store)
//
//	ecs.SliderEventType.Subscribe(world, func(w donburi.World, e slideact.SliderEvent) {
//		...
//	})
//	// once per tick
//	ecs.SliderEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

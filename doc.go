// Package parabox is a small nested-box puzzle world for [Ebitengine].
//
// A [World] holds boxes. Every box has a face divided into a 4x4 [FaceGrid]
// and each slot of the face may contain another box, so boxes nest to any
// depth. The player moves Mila, an [Actor] that walks an 8x8 grid of cells
// drawn over the outermost box.
//
// # Quick start
//
// The simplest way to play is to build the built-in level and hand a
// [Scene] to [Run]:
//
//	g, err := parabox.DefaultLevel().Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//	scene, err := parabox.NewScene(g)
//	if err != nil {
//		log.Fatal(err)
//	}
//	log.Fatal(parabox.Run(scene, parabox.DefaultRunConfig()))
//
// Levels can also be loaded from YAML with [LoadLevel].
//
// # Frame order
//
// [Game.Step] advances the [Clock] by one frame. Frame subscribers run
// first, so the actor integrates travel with the intent set on the previous
// frame; input subscribers run second and poll the current keys. Input
// therefore takes effect one frame after it is read.
//
// A failing subscriber does not stop the frame. Every failure is wrapped in a
// [SubscriberError] and returned joined from Step.
//
// # Rendering
//
// Rendering is independent of the model. [BuildBoxNode] turns a box tree
// into a tree of [Node] values that [Scene] draws with ebiten; the term
// package draws the same world into a terminal with tcell, and the ecs
// package mirrors actor state into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package parabox

// Package pyg is a scene-graph game engine core: objects, components,
// typed properties, and a fixed-timestep driving loop, with no rendering
// backend attached.
//
// # Scene graph
//
// A [Scene] owns a forest of [Object] nodes and the id registry behind
// them. Objects are created through the scene and moved with SetParent or
// AddChild; a node exclusively owns its children and its components:
//
//	scene := pyg.NewScene()
//	player := scene.NewObject("player")
//	weapon := scene.NewObject("weapon")
//	if err := player.AddChild(weapon); err != nil { ... }
//
// Destroying an object tears down its components and subtree depth-first
// and deregisters every id; Destroy is idempotent and an object is never
// asked to free itself from inside its own teardown.
//
// # Components
//
// A [Component] is a named, identified behavior attached to exactly one
// object. Concrete components embed [BaseComponent] and override the
// lifecycle hooks they need; [Transform] is the built-in spatial component.
// Component state lives in an ordered bag of typed properties ([Property],
// [Value]); property writes are checked against the declared type tag and
// rejected with [ErrTypeMismatch] on disagreement.
//
//	tr := pyg.NewTransform(0)
//	_ = player.AddComponent(tr)
//	tr.SetPosition(pyg.V3(100, 50, 0))
//
// # Driving loop
//
// [Engine] drives a scene: per-frame Update plus FixedUpdate on a
// fixed-timestep accumulator. Use [Engine.Run] for a self-contained loop,
// [Engine.Step] to drive frames from a host loop, or the driver/ebitengine
// subpackage to mount the engine in an Ebitengine window.
//
// The core is single-threaded: nothing locks, and hosts that tick and
// mutate from different goroutines must serialize access themselves.
package pyg

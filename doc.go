// Package tilerun is a small real-time 2D game engine for [Ebitengine].
//
// Tilerun provides a scene graph of typed entities, a fixed set of component
// slots per entity (sprite/animation, circle collider, projectile, text,
// input mapping), tile-grid collision, and a fixed-cadence
// input → update → render loop.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	cfg := tilerun.DefaultConfig()
//	scene := tilerun.NewScene(tilerun.NewBorderedTileGrid(20, 15, cfg.TileSize))
//	// ... spawn entities ...
//	tilerun.Run(scene, tilerun.RunConfig{
//		Title: cfg.Title, Width: cfg.Window.Width, Height: cfg.Window.Height,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Input], [Scene.Update] and [Scene.Render] directly.
//
// # Entities and components
//
// Every game object is an [Entity] built by [Build], which selects a behavior
// by [EntityKind] and attaches the declared [ComponentSlot] set:
//
//	player := tilerun.Build(tilerun.KindPlayer, "player",
//		[]tilerun.ComponentSlot{tilerun.SlotSprite, tilerun.SlotCollider, tilerun.SlotInput},
//		assets)
//	scene.Spawn(player)
//
// An entity holds at most one component per slot. Ephemeral attachments such
// as an in-flight laser live in a separate script-slot set and never collide
// with the fixed slots.
//
// # Scene graph
//
// Entities live in a single-root tree ([SceneGraph]) and are updated and
// rendered in child order. The tree is generic; the scene instantiates it
// with *Entity. Node ids are process-wide monotonic and never reused.
//
// # Collision
//
// Two tests are provided: circle-circle via [IsColliding] (with friendly-fire
// exclusion on equal owner ids) and entity-tile via [TileGrid.Blocked], a
// discrete "is the next step blocked" query sampled along the leading edge of
// a rectangle.
//
// [Ebitengine]: https://ebitengine.org
package tilerun

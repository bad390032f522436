package tilerun

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"
	"go.uber.org/zap"
)

// Points awarded by the inline collision resolution.
const (
	coinPoints  = 50
	enemyPoints = 100
)

// dropQueueCap bounds the asset-drop channel; the authoring GUI hands over
// at most a handful of paths per tick.
const dropQueueCap = 16

// Scene owns the entity tree, the tile grid, and the per-tick dispatch:
// input, then entity updates with inline collision resolution, then render,
// strictly in scene-graph child order. Only the frame-loop goroutine ever
// mutates scene state; the asset-drop channel is the single cross-process
// boundary and carries opaque path strings only.
type Scene struct {
	graph  *SceneGraph[*Entity]
	grid   *TileGrid
	assets *AssetCache

	// index maps entity id to its tree node for O(1) lookup; FindNodeByID
	// remains available for the spec'd BFS walk.
	index *intmap.Map[uint32, *TreeNode[*Entity]]

	zoom  float64
	quit  bool
	drops chan string

	scoreRef   *Entity
	updateBuf  []*TreeNode[*Entity]
	resolveBuf []*TreeNode[*Entity]
}

// NewScene creates a scene owning the given tile grid. The root node holds a
// generic entity that never updates or renders anything itself.
func NewScene(grid *TileGrid) *Scene {
	return &Scene{
		graph: NewSceneGraph(NewEntity(KindGeneric, "root")),
		grid:  grid,
		index: intmap.New[uint32, *TreeNode[*Entity]](64),
		zoom:  1,
		drops: make(chan string, dropQueueCap),
	}
}

// Graph returns the underlying scene graph.
func (s *Scene) Graph() *SceneGraph[*Entity] {
	return s.graph
}

// Grid returns the scene's tile grid.
func (s *Scene) Grid() *TileGrid {
	return s.grid
}

// SetZoom sets the zoom factor applied to the grid and collision queries.
func (s *Scene) SetZoom(zoom float64) {
	if zoom > 0 {
		s.zoom = zoom
	}
}

// Zoom returns the current zoom factor.
func (s *Scene) Zoom() float64 {
	return s.zoom
}

// SetAssets attaches the texture cache used for click-spawned collectibles
// and dropped asset paths.
func (s *Scene) SetAssets(a *AssetCache) {
	s.assets = a
}

// --- Entity management ---

// Spawn appends the entity as a child of the root and indexes it. Returns
// the created node.
func (s *Scene) Spawn(e *Entity) *TreeNode[*Entity] {
	node := s.graph.Root().AddChild(e)
	s.index.Put(e.ID, node)
	if e.Kind == KindScore {
		s.scoreRef = e
	}
	return node
}

// Remove excises the entity's node from its parent and tears the entity
// down (component teardown, e.g. releasing a texture handle). Returns false
// if the entity is unknown.
func (s *Scene) Remove(entityID uint32) bool {
	node, ok := s.index.Get(entityID)
	if !ok {
		return false
	}
	parent := node.Parent()
	if parent == nil || parent.RemoveChildByID(node.ID) == nil {
		return false
	}
	s.index.Del(entityID)
	if s.scoreRef == node.Data {
		s.scoreRef = nil
	}
	node.Data.Dispose()
	return true
}

// EntityByID returns the entity with the given id, or nil.
func (s *Scene) EntityByID(entityID uint32) *Entity {
	node, ok := s.index.Get(entityID)
	if !ok {
		return nil
	}
	return node.Data
}

// SpawnCoinAt builds a collectible centered on the given world position.
// Bound by the host to mouse-down.
func (s *Scene) SpawnCoinAt(x, y float64) *Entity {
	coin := Build(KindCoin, "coin", []ComponentSlot{SlotSprite, SlotCollider}, s.assets)
	coin.X = x - coin.Width/2
	coin.Y = y - coin.Height/2
	if c := coin.Collider(); c != nil {
		c.Update(coin) // center the collider before the coin's first tick
	}
	s.Spawn(coin)
	return coin
}

// --- Termination ---

// Quit raises the termination flag; the frame loop checks it at the top of
// every tick.
func (s *Scene) Quit() {
	s.quit = true
}

// Terminated reports whether the scene has been quit.
func (s *Scene) Terminated() bool {
	return s.quit
}

// --- Asset drop boundary ---

// DropAsset hands over an asset path from an external process (drag and
// drop, authoring GUI). Non-blocking; returns false if the queue is full.
func (s *Scene) DropAsset(path string) bool {
	select {
	case s.drops <- path:
		return true
	default:
		logger.Warn("asset drop queue full, path discarded", zap.String("path", path))
		return false
	}
}

// drainDrops consumes queued asset paths, warming the texture cache. Load
// failures are logged by the cache and never fatal.
func (s *Scene) drainDrops() {
	for {
		select {
		case path := <-s.drops:
			logger.Info("asset dropped", zap.String("path", path))
			if s.assets != nil {
				s.assets.Texture(path)
			}
		default:
			return
		}
	}
}

// --- Per-tick dispatch ---

// Input forwards a key event to every root child; entities without an
// input-mapping component ignore it.
func (s *Scene) Input(ev KeyEvent) {
	for _, node := range s.graph.Root().Children() {
		node.Data.Input(ev)
	}
}

// Update runs one tick: drain dropped assets, then update each root child in
// order, resolving its collisions inline before the next entity updates.
// Removal of a hit entity therefore takes effect within the same traversal,
// not at a barrier.
func (s *Scene) Update() {
	if s.quit {
		return
	}
	s.drainDrops()

	// Snapshot the child list; inline removal mutates it.
	s.updateBuf = append(s.updateBuf[:0], s.graph.Root().Children()...)
	for _, node := range s.updateBuf {
		e := node.Data
		if e.IsDisposed() {
			continue
		}
		e.Update(s.grid, s.zoom)
		if e.Kind == KindPlayer {
			s.resolvePlayerCollisions(e)
		}
	}
}

// resolvePlayerCollisions re-derives the collision booleans around the
// player: its laser against enemies, enemy lasers against it, and its body
// against collectibles. Mutations (removal, scoring, quit) happen inline.
func (s *Scene) resolvePlayerCollisions(player *Entity) {
	pc := player.Collider()
	pl := player.laser()

	// Snapshot the child list; removing a hit entity excises its slot from
	// the live slice mid-iteration.
	s.resolveBuf = append(s.resolveBuf[:0], s.graph.Root().Children()...)
	for _, node := range s.resolveBuf {
		other := node.Data
		if other.IsDisposed() || other.ID == player.ID {
			continue
		}
		switch other.Kind {
		case KindEnemy:
			if pl != nil && !pl.ShouldDelete() && IsColliding(pl.Collider(), other.Collider()) {
				pl.MarkForDelete()
				s.Remove(other.ID)
				s.award(enemyPoints)
			}
			if el := other.laser(); el != nil && !el.ShouldDelete() && IsColliding(el.Collider(), pc) {
				s.quit = true
			}
		case KindCoin:
			if IsColliding(pc, other.Collider()) {
				s.Remove(other.ID)
				s.award(coinPoints)
			}
		}
	}
}

// award adds points to the scene's score entity, if one is spawned.
func (s *Scene) award(points int) {
	if s.scoreRef != nil {
		s.scoreRef.AddPoints(points)
	}
}

// Render draws the tile grid, then every root child in order.
func (s *Scene) Render(screen *ebiten.Image) {
	if s.grid != nil {
		s.grid.Render(screen, s.zoom)
	}
	for _, node := range s.graph.Root().Children() {
		node.Data.Render(screen)
	}
}

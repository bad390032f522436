package tilerun

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawFPS prints the current FPS and TPS in the top-left corner.
func DrawFPS(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen,
		fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

var (
	colliderIdle = color.RGBA{G: 255, A: 255}
	colliderHit  = color.RGBA{R: 255, A: 255}
)

// DrawColliderOverlay strokes every collider circle in the scene, including
// in-flight laser colliders. Circles whose cached Colliding flag is set from
// the last resolution pass are drawn hot. Diagnostics only — the flag is not
// authoritative for gameplay.
func DrawColliderOverlay(s *Scene, screen *ebiten.Image) {
	for _, node := range s.graph.Root().Children() {
		e := node.Data
		if c := e.Collider(); c != nil {
			strokeCollider(screen, c)
		}
		if l := e.laser(); l != nil {
			strokeCollider(screen, l.Collider())
		}
	}
}

func strokeCollider(screen *ebiten.Image, c *CircleCollider) {
	clr := color.Color(colliderIdle)
	if c.Colliding {
		clr = colliderHit
	}
	vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(c.Radius), 1, clr, true)
}

package tilerun

import (
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window and loop created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// TickRate is the fixed cadence in ticks per second; 0 uses 60.
	TickRate int
	// Debug enables the FPS and collider overlays.
	Debug bool
}

// game adapts a Scene to ebiten.Game. Each tick dispatches input, update and
// render strictly in that order; termination is the scene's boolean flag
// checked at the top of the loop.
type game struct {
	scene  *Scene
	cfg    RunConfig
	keyBuf []KeyEvent
}

func (g *game) Update() error {
	if g.scene.Terminated() {
		return ebiten.Termination
	}

	g.keyBuf = ReadKeyEvents(g.keyBuf[:0])
	for _, ev := range g.keyBuf {
		g.scene.Input(ev)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.scene.SpawnCoinAt(float64(x), float64(y))
	}
	forwardDroppedFiles(g.scene)

	g.scene.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Render(screen)
	if g.cfg.Debug {
		DrawColliderOverlay(g.scene, screen)
		DrawFPS(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// forwardDroppedFiles pushes this tick's OS drag-and-drop paths onto the
// scene's asset-drop queue. The external authoring GUI shares no memory with
// the engine; the path string is the whole contract.
func forwardDroppedFiles(s *Scene) {
	files := ebiten.DroppedFiles()
	if files == nil {
		return
	}
	_ = fs.WalkDir(files, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		s.DropAsset(path)
		return nil
	})
}

// Run creates a window and drives the scene with a fixed-cadence
// input → update → render loop until the scene quits or the window closes.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.Title == "" {
		cfg.Title = "tilerun"
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TickRate)
	return ebiten.RunGame(&game{scene: scene, cfg: cfg})
}

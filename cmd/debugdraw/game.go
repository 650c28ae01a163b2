package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/debugdraw/config"
	"github.com/milk9111/debugdraw/debugdraw"
	"github.com/milk9111/debugdraw/render"
	"go.uber.org/zap"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"
)

const (
	panSpeed = 8.0
	zoomStep = 1.1
)

// modeKeys toggle single debug mode bits.
var modeKeys = []struct {
	key  ebiten.Key
	mode debugdraw.Mode
}{
	{ebiten.KeyDigit1, debugdraw.DrawWireframe},
	{ebiten.KeyDigit2, debugdraw.DrawAabb},
	{ebiten.KeyDigit3, debugdraw.DrawContactPoints},
	{ebiten.KeyDigit4, debugdraw.DrawConstraints},
	{ebiten.KeyDigit5, debugdraw.DrawNormals},
	{ebiten.KeyDigit6, debugdraw.FastWireframe},
	{ebiten.KeyDigit7, debugdraw.DrawText},
}

type Game struct {
	frames int

	width, height int

	sim      *sim
	producer *producer
	reader   *render.SharedReader
	overlay  *render.Overlay
	watcher  *config.Watcher
	flags    *config.Flags
	log      *zap.Logger

	clipboard bool

	// UI side copies of sim state, valid in both setups.
	enabled bool
	paused  bool
	mode    debugdraw.Mode

	camX, camY float64
	zoom       float64
}

func newGame(cfg *config.Config, s *sim, overlay *render.Overlay, log *zap.Logger) *Game {
	return &Game{
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
		sim:     s,
		overlay: overlay,
		log:     log,
		mode:    s.adapter.DebugMode(),
		zoom:    1,
	}
}

// apply runs cmd against the sim on whichever goroutine owns it.
func (g *Game) apply(cmd command) {
	if g.producer != nil {
		g.producer.send(cmd)
		return
	}
	cmd(g.sim)
}

func (g *Game) setEnabled(on bool) {
	g.enabled = on
	if on {
		g.apply(func(s *sim) { s.adapter.Enable() })
	} else {
		g.apply(func(s *sim) { s.adapter.Disable() })
	}
	// The shared setup has no presenter; the overlay is toggled here.
	if g.producer != nil {
		if on {
			g.overlay.Show()
		} else {
			g.overlay.Hide()
		}
	}
}

func (g *Game) setMode(mode debugdraw.Mode) {
	g.mode = mode
	g.apply(func(s *sim) { s.adapter.SetDebugMode(mode) })
	g.log.Debug("debug mode changed", zap.Stringer("mode", mode))
}

func (g *Game) stats() debugdraw.Stats {
	if g.producer != nil {
		return g.producer.Stats()
	}
	return g.sim.adapter.Stats()
}

func (g *Game) Update() error {
	g.frames++

	g.handleInput()
	g.pollConfig()

	if g.producer != nil {
		g.pollShared()
	} else {
		g.sim.tick()
	}
	return nil
}

// pollShared takes the producer's latest frame. A 0 cell cannot tell an
// empty pass from a consumed one, so empty passes are read from the stats.
func (g *Game) pollShared() {
	if g.reader.Poll() {
		return
	}
	if st := g.producer.Stats(); st.Passes > 0 && st.Vertices == 0 {
		g.overlay.Clear()
	}
}

func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.setEnabled(!g.enabled)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		paused := g.paused
		g.apply(func(s *sim) { s.paused = paused })
	}
	for _, mk := range modeKeys {
		if inpututil.IsKeyJustPressed(mk.key) {
			g.setMode(g.mode ^ mk.mode)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyFrame()
	}

	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.camX -= panSpeed / g.zoom
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.camX += panSpeed / g.zoom
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.camY -= panSpeed / g.zoom
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.camY += panSpeed / g.zoom
	}
	if _, wy := ebiten.Wheel(); wy > 0 {
		g.zoom *= zoomStep
	} else if wy < 0 {
		g.zoom /= zoomStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.camX, g.camY, g.zoom = 0, 0, 1
	}
	g.overlay.SetCamera(g.camX, g.camY, g.zoom)
}

func (g *Game) copyFrame() {
	if !g.clipboard {
		g.log.Warn("clipboard unavailable")
		return
	}
	segments := g.overlay.Segments()
	clipboard.Write(clipboard.FmtText, []byte(frameText(segments)))
	g.log.Info("copied frame to clipboard", zap.Int("segments", len(segments)))
}

// pollConfig applies debug modes and colors from a changed config file.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case path, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		cfg, err := g.reload(path)
		if err != nil {
			g.log.Warn("config reload failed", zap.String("path", path), zap.Error(err))
			return
		}
		mode, _ := cfg.Mode()
		colors, _ := cfg.PhysicsColors()
		g.apply(func(s *sim) { s.world.SetColors(colors) })
		g.setMode(mode)
		g.log.Info("config reloaded", zap.String("path", path), zap.Stringer("mode", mode))
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.log.Warn("config watch error", zap.Error(err))
		}
	default:
	}
}

// reload loads path and applies the command line overrides on top, so a
// flag keeps winning over the file after a save.
func (g *Game) reload(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if g.flags != nil {
		g.flags.Apply(cfg)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	g.overlay.Draw(screen)

	st := g.stats()
	state := "on"
	if !g.enabled {
		state = "off"
	}
	if g.paused {
		state += " (paused)"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.2f  debug: %s  mode: %s\npasses: %d  skipped: %d  vertices: %d  dropped: %d\n"+
			"[D] toggle  [1-7] modes  [P] pause  [C] copy frame  arrows/wheel camera",
		ebiten.ActualFPS(), state, g.mode, st.Passes, st.Skipped, st.Vertices, st.Dropped))
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.width), float64(g.height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

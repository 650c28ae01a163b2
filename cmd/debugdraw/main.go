package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/debugdraw/config"
	"github.com/milk9111/debugdraw/debugdraw"
	"github.com/milk9111/debugdraw/drawbuf"
	"github.com/milk9111/debugdraw/logger"
	"github.com/milk9111/debugdraw/physics"
	"github.com/milk9111/debugdraw/render"
	"github.com/milk9111/debugdraw/scene"
	"go.uber.org/zap"
	"golang.design/x/clipboard"
	"golang.org/x/sync/errgroup"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	watch := flag.Bool("watch", false, "reload debug modes and colors when the config file changes")
	flag.Parse()

	cfg, err := config.Load(*flags.Path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	flags.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.LogFile)
	defer func() { _ = log.Sync() }()

	if err := run(cfg, flags, *watch, log); err != nil {
		log.Error("debugdraw exited", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, flags *config.Flags, watch bool, log *zap.Logger) error {
	strategy, _ := cfg.Strategy()
	mode, _ := cfg.Mode()
	colors, _ := cfg.PhysicsColors()

	world := physics.NewWorld(physics.Options{
		Gravity: cfg.Physics.Gravity,
		Arena:   cfg.Arena(),
		Colors:  &colors,
	})
	sc, err := loadScene(cfg)
	if err != nil {
		return err
	}
	if err := sc.Build(world); err != nil {
		return fmt.Errorf("building scene: %w", err)
	}

	buf := drawbuf.New(drawbuf.Options{Strategy: strategy, Capacity: cfg.Buffer.Capacity, Logger: log.Named("drawbuf")})
	opts := debugdraw.Options{Mode: mode, Logger: log.Named("debugdraw")}
	var overlay *render.Overlay
	if strategy == drawbuf.Shared {
		// Fed by the SharedReader only; the buffer belongs to the producer.
		overlay = render.NewOverlay(nil)
	} else {
		overlay = render.NewOverlay(buf)
		opts.Presenter = overlay
	}
	adapter := debugdraw.New(world, buf, world.Arena(), opts)

	s := &sim{world: world, adapter: adapter, dt: 1 / float64(cfg.Physics.TickRate)}
	game := newGame(cfg, s, overlay, log)
	game.flags = flags
	if err := clipboard.Init(); err != nil {
		log.Warn("clipboard unavailable, frame copy disabled", zap.Error(err))
	} else {
		game.clipboard = true
	}

	if watch {
		path := *flags.Path
		if path == "" {
			path = config.DefaultPath
		}
		w, err := config.NewWatcher(path)
		if err != nil {
			log.Warn("config watch disabled", zap.String("path", path), zap.Error(err))
		} else {
			defer w.Close()
			game.watcher = w
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Physics.TickRate)

	log.Info("starting",
		zap.Stringer("strategy", strategy),
		zap.Stringer("mode", mode),
		zap.Int("capacity", buf.Cap()))

	if strategy != drawbuf.Shared {
		game.setEnabled(cfg.Debug.Enabled)
		return ebiten.RunGame(game)
	}

	// The shared buffer is written by a producer goroutine that owns the
	// world and the adapter; the game only reads through the handshake.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p := newProducer(s, cfg.Physics.TickRate, log.Named("producer"))
	game.producer = p
	game.reader = render.NewSharedReader(buf, overlay)
	game.setEnabled(cfg.Debug.Enabled)

	var g errgroup.Group
	g.Go(func() error {
		return p.run(ctx)
	})
	runErr := ebiten.RunGame(game)
	cancel()
	if err := g.Wait(); err != nil {
		return err
	}
	return runErr
}

func loadScene(cfg *config.Config) (*scene.Scene, error) {
	if cfg.Scene.Script != "" {
		return scene.LoadFile(cfg.Scene.Script, cfg.Window.Width, cfg.Window.Height)
	}
	return scene.Default(cfg.Window.Width, cfg.Window.Height)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leonelquinteros/gotext"

	"scanmaze/pkg/engine/command"
	"scanmaze/pkg/engine/indicator"
	"scanmaze/pkg/engine/matrix"
	"scanmaze/pkg/game/config"
	"scanmaze/pkg/game/gameplay"
	"scanmaze/pkg/game/generator"
	"scanmaze/pkg/game/renderer"
	ebitenrenderer "scanmaze/pkg/game/renderer/ebiten"
	tcellrenderer "scanmaze/pkg/game/renderer/tcell"
	"scanmaze/pkg/game/renderer/tui"
	"scanmaze/pkg/game/state"
)

func initGettext(locale string) {
	gotext.Configure("locales", locale, "default")
}

// applyFlags lets command-line flags override the environment
func applyFlags(cfg *config.Config) (busPath string) {
	flag.StringVar(&cfg.Matrix, "matrix", cfg.Matrix, "panel geometry (16x16 or 8x8)")
	flag.IntVar(&cfg.MazeWidth, "width", cfg.MazeWidth, "maze columns including the border")
	flag.IntVar(&cfg.MazeHeight, "height", cfg.MazeHeight, "maze rows including the border")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "maze seed (0 picks one from the clock)")
	flag.StringVar(&cfg.Backend, "backend", cfg.Backend, "display backend (tui, tcell, ebiten, headless)")
	flag.StringVar(&cfg.Generator, "generator", cfg.Generator, "maze source (backtracker, fixed)")
	flag.BoolVar(&cfg.Audio, "audio", cfg.Audio, "sound the status indicator")
	flag.StringVar(&busPath, "bus", "", "file or pipe to read 2-byte command frames from")
	flag.Parse()
	return busPath
}

// buildGenerator returns the maze source named in cfg
func buildGenerator(cfg config.Config) generator.GridGenerator {
	if cfg.Generator == config.GeneratorFixed {
		return generator.Basement
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[MAZE] [INFO] seed %d", seed)
	return generator.NewBacktracker(rand.New(rand.NewSource(seed)))
}

// buildBackend returns the display backend named in cfg
func buildBackend(cfg config.Config) renderer.Backend {
	switch cfg.Backend {
	case config.BackendTcell:
		return tcellrenderer.New()
	case config.BackendEbiten:
		return ebitenrenderer.New()
	case config.BackendHeadless:
		return &renderer.Headless{Interval: time.Second}
	default:
		return tui.New()
	}
}

// buildIndicator returns the status LED, with a speaker tone alongside when audio is on
func buildIndicator(cfg config.Config) (*indicator.StateLED, indicator.LED, func()) {
	led := &indicator.StateLED{}
	if !cfg.Audio {
		return led, led, func() {}
	}

	buzzer, err := indicator.NewBeepLED()
	if err != nil {
		log.Printf("[IND] [WARN] audio disabled: %v", err)
		return led, led, func() {}
	}
	return led, indicator.MultiLED{led, buzzer}, buzzer.Close
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	busPath := applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Terminal backends own stdout
	if cfg.IsTerminalBackend() {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	initGettext(cfg.Locale)

	geom, err := cfg.Geometry()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	frames := matrix.NewFrameStore(geom)
	panel := matrix.NewPanel(geom)
	scanner := matrix.NewScanner(frames, panel)
	go scanner.Run(ctx, cfg.ScanHz)

	statusLED, led, closeLED := buildIndicator(cfg)
	defer closeLED()
	blinker := indicator.NewBlinker(led)
	go blinker.Run(ctx)

	bus := command.NewReceiver(scanner, blinker)
	bus.Receive([]byte{command.CmdDisplay, 1})

	if busPath != "" {
		f, err := os.Open(busPath)
		if err != nil {
			return fmt.Errorf("open command bus: %w", err)
		}
		defer f.Close()
		go func() {
			if err := bus.Serve(ctx, f); err != nil && ctx.Err() == nil {
				log.Printf("[CMD] [WARN] bus stopped: %v", err)
			}
		}()
	}

	g := state.NewGame(cfg.MazeHeight, cfg.MazeWidth, frames, buildGenerator(cfg))
	walls := renderer.NewWallRenderer(frames, cfg.MaxDepth)
	nav := gameplay.NewNavigator(gameplay.Config{
		DecisionDelay:  cfg.DecisionDelay,
		AnimationDelay: cfg.AnimationStep,
		ExitPause:      cfg.ExitPause,
		TurnStep:       cfg.TurnStep,
		ZoomStep:       cfg.ZoomStep,
	}, walls.Perspective())

	loop := gameplay.NewLoop(g, nav, walls, gameplay.SystemClock{}, gameplay.Controls{
		Bus:       bus,
		Display:   scanner,
		Indicator: statusLED,
		Frame:     panel.Snapshot,
		Quit:      cancel,
		DumpDir:   cfg.DumpDir,
	})
	go loop.Run(ctx)

	backend := buildBackend(cfg)
	log.Printf("[APP] [INFO] %s panel, %dx%d maze, %s backend", geom.Name, cfg.MazeWidth, cfg.MazeHeight, backend.Name())

	// Ebiten must run on the main goroutine, so every backend does
	err = backend.Run(ctx, loop)
	cancel()
	if err != nil {
		return err
	}

	fmt.Println(gotext.Get("GOODBYE"))
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "scanmaze: %v\n", err)
		os.Exit(1)
	}
}

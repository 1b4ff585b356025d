// Package config loads scanmaze settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"scanmaze/pkg/engine/matrix"
)

// EnvPrefix is prepended to every key
const EnvPrefix = "SCANMAZE_"

// Backend names
const (
	BackendTUI      = "tui"
	BackendTcell    = "tcell"
	BackendEbiten   = "ebiten"
	BackendHeadless = "headless"
)

// Generator names
const (
	GeneratorBacktracker = "backtracker"
	GeneratorFixed       = "fixed"
)

// MinMazeSize is the smallest maze edge that still has an interior inside the ring
const MinMazeSize = 5

// Config holds the application's configuration values
type Config struct {
	Matrix        string        // Panel geometry name, "16x16" or "8x8"
	MazeWidth     int           // Maze columns including the border ring
	MazeHeight    int           // Maze rows including the border ring
	Seed          int64         // Generator seed, 0 picks one from the clock
	ScanHz        int           // Scan engine tick rate
	DecisionDelay time.Duration // Pause before each navigation decision
	AnimationStep time.Duration // Interval between animation frames
	ExitPause     time.Duration // Hold on the exit view before regenerating
	TurnStep      int           // Columns the view shears per turn frame
	ZoomStep      int           // Pixels the view grows per walk frame
	MaxDepth      int           // Corridor layers drawn ahead
	Backend       string        // Display backend
	Locale        string        // Message catalogue language
	Audio         bool          // Sound the status indicator through the speaker
	LogFile       string        // Log destination while a terminal backend owns stdout
	Generator     string        // Maze source
	DumpDir       string        // Directory for maze dumps and panel screenshots
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		Matrix:        "16x16",
		MazeWidth:     16,
		MazeHeight:    16,
		ScanHz:        8000,
		DecisionDelay: 1000 * time.Millisecond,
		AnimationStep: 100 * time.Millisecond,
		ExitPause:     500 * time.Millisecond,
		TurnStep:      4,
		ZoomStep:      1,
		MaxDepth:      3,
		Backend:       BackendTUI,
		Locale:        "en",
		LogFile:       "scanmaze.log",
		Generator:     GeneratorBacktracker,
		DumpDir:       ".",
	}
}

// Load reads a .env file if present and overlays the environment on the defaults
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[CONFIG] [WARN] .env file could not be loaded: %v", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a configuration from lookup, falling back to defaults for unset keys
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	p := parser{lookup: lookup}

	c.Matrix = p.str("MATRIX", c.Matrix)
	c.MazeWidth = p.integer("MAZE_WIDTH", c.MazeWidth)
	c.MazeHeight = p.integer("MAZE_HEIGHT", c.MazeHeight)
	c.Seed = int64(p.integer("SEED", int(c.Seed)))
	c.ScanHz = p.integer("SCAN_HZ", c.ScanHz)
	c.DecisionDelay = p.millis("DECISION_MS", c.DecisionDelay)
	c.AnimationStep = p.millis("ANIMATION_MS", c.AnimationStep)
	c.ExitPause = p.millis("EXIT_PAUSE_MS", c.ExitPause)
	c.TurnStep = p.integer("TURN_STEP", c.TurnStep)
	c.ZoomStep = p.integer("ZOOM_STEP", c.ZoomStep)
	c.MaxDepth = p.integer("MAX_DEPTH", c.MaxDepth)
	c.Backend = strings.ToLower(p.str("BACKEND", c.Backend))
	c.Locale = p.str("LOCALE", c.Locale)
	c.Audio = p.boolean("AUDIO", c.Audio)
	c.LogFile = p.str("LOG_FILE", c.LogFile)
	c.Generator = strings.ToLower(p.str("GENERATOR", c.Generator))
	c.DumpDir = p.str("DUMP_DIR", c.DumpDir)

	if err := errors.Join(p.errs...); err != nil {
		return c, err
	}
	return c, nil
}

// Geometry returns the panel geometry named by Matrix
func (c Config) Geometry() (matrix.Geometry, error) {
	return matrix.GeometryByName(c.Matrix)
}

// Validate checks the configuration for values the core cannot run with
func (c Config) Validate() error {
	var errs []error

	if _, err := c.Geometry(); err != nil {
		errs = append(errs, err)
	}
	if c.MazeWidth < MinMazeSize || c.MazeHeight < MinMazeSize {
		errs = append(errs, fmt.Errorf("maze must be at least %dx%d, got %dx%d", MinMazeSize, MinMazeSize, c.MazeWidth, c.MazeHeight))
	}
	if c.ScanHz <= 0 {
		errs = append(errs, fmt.Errorf("scan rate must be positive, got %d", c.ScanHz))
	}
	if c.DecisionDelay <= 0 || c.AnimationStep <= 0 || c.ExitPause < 0 {
		errs = append(errs, errors.New("decision and animation delays must be positive and the exit pause not negative"))
	}
	if c.TurnStep <= 0 {
		errs = append(errs, fmt.Errorf("turn step must be positive, got %d", c.TurnStep))
	}
	if c.ZoomStep <= 0 {
		errs = append(errs, fmt.Errorf("zoom step must be positive, got %d", c.ZoomStep))
	}
	if c.MaxDepth < 1 {
		errs = append(errs, fmt.Errorf("max depth must be at least 1, got %d", c.MaxDepth))
	}

	switch c.Backend {
	case BackendTUI, BackendTcell, BackendEbiten, BackendHeadless:
	default:
		errs = append(errs, fmt.Errorf("unknown backend %q", c.Backend))
	}
	switch c.Generator {
	case GeneratorBacktracker, GeneratorFixed:
	default:
		errs = append(errs, fmt.Errorf("unknown generator %q", c.Generator))
	}

	return errors.Join(errs...)
}

// IsTerminalBackend reports whether the backend draws on stdout
func (c Config) IsTerminalBackend() bool {
	return c.Backend == BackendTUI || c.Backend == BackendTcell
}

// parser collects typed lookups and their errors
type parser struct {
	lookup func(string) (string, bool)
	errs   []error
}

func (p *parser) str(key, def string) string {
	if v, ok := p.lookup(EnvPrefix + key); ok && v != "" {
		return v
	}
	return def
}

func (p *parser) integer(key string, def int) int {
	v, ok := p.lookup(EnvPrefix + key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s%s must be an integer: %w", EnvPrefix, key, err))
		return def
	}
	return n
}

func (p *parser) millis(key string, def time.Duration) time.Duration {
	n := p.integer(key, int(def/time.Millisecond))
	return time.Duration(n) * time.Millisecond
}

func (p *parser) boolean(key string, def bool) bool {
	v, ok := p.lookup(EnvPrefix + key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s%s must be a boolean: %w", EnvPrefix, key, err))
		return def
	}
	return b
}

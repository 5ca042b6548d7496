package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only ecs layer; draw order inside it is decided by z-index.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int

	// Zoom is screen pixels per world unit. Obstacle hitboxes are a few units
	// across, so the world is drawn magnified.
	Zoom float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHitboxes bool
	ShowStats    bool
	Sandbox      bool
}

// NetConfig is the server the client joins when not in sandbox mode.
type NetConfig struct {
	Address    string
	PlayerName string
	Version    string

	// BatchBuffer is how many undelivered update batches the client holds
	// before it drops the connection as too slow.
	BatchBuffer int
}

// RenderConfig controls how obstacles without a texture are drawn.
type RenderConfig struct {
	PlaceholderAlpha float64
	MaterialColors   map[Material]color.RGBA
	HitboxColor      color.RGBA
	DoorHitboxColor  color.RGBA
	HoverColor       color.RGBA
	ParticleColor    color.RGBA
	Background       color.RGBA

	// ParticleSize is the world size of a particle without a texture.
	ParticleSize float64

	// FrameUnits is the world size of one texture pixel.
	FrameUnits float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	PanSpeed      float64 // world units per tick
	FastPanFactor float64 // applied while shift is held
	MinZoom       float64
	MaxZoom       float64
	ZoomStep      float64
}

// SandboxConfig drives the offline level player.
type SandboxConfig struct {
	LevelDir     string
	DefaultLevel string
	ScaleStep    float64
}

// Global configuration instances
var C *Config
var Debug DebugConfig
var Net NetConfig
var Render RenderConfig
var Camera CameraConfig
var Sandbox SandboxConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkGrass = color.RGBA{R: 52, G: 74, B: 38, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Zoom:   4,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowHitboxes: false,
		ShowStats:    false,
		Sandbox:      false,
	}

	Net = NetConfig{
		Address:     "localhost:8080",
		PlayerName:  "Player",
		Version:     "0.1.0",
		BatchBuffer: 64,
	}

	Render = RenderConfig{
		PlaceholderAlpha: 0.9,
		MaterialColors: map[Material]color.RGBA{
			MaterialWood:      {R: 133, G: 94, B: 66, A: 255},
			MaterialStone:     {R: 128, G: 128, B: 128, A: 255},
			MaterialMetal:     {R: 160, G: 40, B: 40, A: 255},
			MaterialGlass:     {R: 170, G: 220, B: 255, A: 160},
			MaterialBush:      {R: 60, G: 140, B: 50, A: 255},
			MaterialCrate:     {R: 180, G: 140, B: 80, A: 255},
			MaterialPorcelain: {R: 240, G: 240, B: 235, A: 255},
		},
		HitboxColor:     Green,
		DoorHitboxColor: Orange,
		HoverColor:      Yellow,
		ParticleColor:   color.RGBA{R: 200, G: 190, B: 170, A: 255},
		Background:      DarkGrass,
		ParticleSize:    1.2,
		FrameUnits:      1.0 / 20,
	}

	Camera = CameraConfig{
		PanSpeed:      2,
		FastPanFactor: 4,
		MinZoom:       1,
		MaxZoom:       12,
		ZoomStep:      1,
	}

	Sandbox = SandboxConfig{
		LevelDir:     "levels",
		DefaultLevel: "sandbox",
		ScaleStep:    0.25,
	}
}

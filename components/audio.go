package components

import (
	cfg "github.com/automoto/obstaclesync/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PendingSound is a positional sound waiting for the audio system.
type PendingSound struct {
	ID       cfg.SoundID
	Position math.Vec2
	Volume   float64
}

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Context    *audio.Context
	SFXVolume  float64 // 0.0 - 1.0
	PendingSFX []PendingSound
}

var Audio = donburi.NewComponentType[AudioData]()

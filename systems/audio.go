package systems

import (
	"log"
	"math"
	"sync"

	"github.com/automoto/obstaclesync/assets"
	"github.com/automoto/obstaclesync/components"
	cfg "github.com/automoto/obstaclesync/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadSFX decodes the sounds obstacles can make so the first door or
// crash does not stall a frame.
func PreloadSFX() {
	initGlobalAudio()

	ids := []cfg.SoundID{cfg.SoundDoorOpen, cfg.SoundDoorClose}
	for _, m := range cfg.Materials {
		ids = append(ids, cfg.DestroyedSound(m), cfg.HitSound(m, 1), cfg.HitSound(m, 2))
	}

	for _, id := range ids {
		if err := globalAudioLoader.PreloadSFX(cfg.Sound.Path(id)); err != nil {
			log.Printf("[audio] %v", err)
		}
	}
}

// SoundQueue collects sounds requested by objects during an update. They
// are played by UpdateAudio.
type SoundQueue struct {
	ecs *ecs.ECS
}

func NewSoundQueue(e *ecs.ECS) *SoundQueue {
	return &SoundQueue{ecs: e}
}

func (q *SoundQueue) Play(id cfg.SoundID, pos dmath.Vec2, volume float64) {
	audioData := GetOrCreateAudio(q.ecs)
	audioData.PendingSFX = append(audioData.PendingSFX, components.PendingSound{
		ID:       id,
		Position: pos,
		Volume:   volume,
	})
}

// UpdateAudio plays pending sounds, attenuated by distance from the centre
// of the view.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)

	var listener dmath.Vec2
	hasListener := false
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		listener = components.Camera.Get(cameraEntry).Position
		hasListener = true
	}

	for _, s := range audioData.PendingSFX {
		falloff := 1.0
		if hasListener {
			falloff = positionalFalloff(listener, s.Position)
		}
		playSFX(s.ID, s.Volume*falloff)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// positionalFalloff fades linearly to silence at the hearing radius.
func positionalFalloff(listener, source dmath.Vec2) float64 {
	dist := source.Distance(listener)
	return math.Max(0, 1-dist/cfg.Audio.HearingRadius)
}

func playSFX(soundID cfg.SoundID, volume float64) {
	volume *= globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}
	if volume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(cfg.Sound.Path(soundID))
	if err != nil {
		return
	}

	player.SetVolume(math.Min(volume, 1))
	player.Play()
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	globalSFXVolume = volume
	if e != nil {
		GetOrCreateAudio(e).SFXVolume = volume
	}
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:    globalAudioContext,
			SFXVolume:  globalSFXVolume,
			PendingSFX: make([]components.PendingSound, 0, 16),
		})
	}
	return components.Audio.Get(entry)
}

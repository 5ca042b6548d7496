package config

import "fmt"

// SoundID names a logical sound effect, e.g. "door_open" or "wood_destroyed".
type SoundID string

const (
	SoundDoorOpen  SoundID = "door_open"
	SoundDoorClose SoundID = "door_close"
)

// DestroyedSound is the sound a material makes when its obstacle breaks.
func DestroyedSound(m Material) SoundID {
	return SoundID(fmt.Sprintf("%s_destroyed", m))
}

// HitSound is one of the two hit variants of a material.
func HitSound(m Material, variant int) SoundID {
	return SoundID(fmt.Sprintf("%s_hit_%d", m, variant))
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	// HearingRadius is the world distance at which positional sounds fade out.
	HearingRadius float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	Dir               string
	Extension         string
	VolumeMultipliers map[SoundID]float64
}

// Path resolves a sound ID to its file inside the audio filesystem.
func (s SoundConfig) Path(id SoundID) string {
	return s.Dir + "/" + string(id) + s.Extension
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
		HearingRadius: 128,
	}

	Sound = SoundConfig{
		Dir:       "audio/sfx",
		Extension: ".ogg",
		VolumeMultipliers: map[SoundID]float64{
			SoundID("metal_destroyed"): 1.5,
		},
	}
}

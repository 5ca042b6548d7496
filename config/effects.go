package config

// EffectsConfig tunes the visual reaction to obstacle state changes. Times are
// milliseconds.
type EffectsConfig struct {
	DoorSwingDuration float64
	DoorSoundVolume   float64

	DestroySoundVolume   float64
	DestroyParticleCount int
	DestroyParticleLife  float64
	DestroyScaleMin      float64
	DestroyScaleMax      float64
	DestroySpeedMin      float64
	DestroySpeedMax      float64
	ExplosionSpeedFactor float64

	HitSoundVolume      float64
	HitParticleLife     float64
	HitParticleSpread   float64 // radians either side of the hit angle
	HitSpeedMin         float64
	HitSpeedMax         float64
	HitScaleStart       float64
	HitScaleEnd         float64
	HitAlphaEnd         float64
	HitMinParticleDepth int
}

var Effects EffectsConfig

func init() {
	Effects = EffectsConfig{
		DoorSwingDuration: 150,
		DoorSoundVolume:   0.3,

		DestroySoundVolume:   0.2,
		DestroyParticleCount: 10,
		DestroyParticleLife:  1500,
		DestroyScaleMin:      0.65,
		DestroyScaleMax:      0.85,
		DestroySpeedMin:      0.25,
		DestroySpeedMax:      0.5,
		ExplosionSpeedFactor: 3,

		HitSoundVolume:      0.1,
		HitParticleLife:     600,
		HitParticleSpread:   0.3,
		HitSpeedMin:         0.25,
		HitSpeedMax:         0.75,
		HitScaleStart:       0.9,
		HitScaleEnd:         0.2,
		HitAlphaEnd:         0.65,
		HitMinParticleDepth: 4,
	}
}

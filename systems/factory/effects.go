package factory

import (
	"math/rand"

	"github.com/automoto/obstaclesync/archetypes"
	"github.com/automoto/obstaclesync/components"
	cfg "github.com/automoto/obstaclesync/config"
	"github.com/automoto/obstaclesync/objects"
	"github.com/automoto/obstaclesync/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnParticle creates a debris particle. Its rotation and scale curves are
// linear; alpha uses the requested easing.
func SpawnParticle(ecs *ecs.ECS, opts objects.ParticleOptions) *donburi.Entry {
	particle := archetypes.Particle.Spawn(ecs)

	sprite := components.NewSprite(nil)
	if len(opts.Frames) > 0 {
		sprite.Frame = opts.Frames[rand.Intn(len(opts.Frames))]
	}
	sprite.Position = opts.Position
	sprite.Rotation = opts.Rotation.Start
	sprite.Scale = opts.Scale.Start
	sprite.Alpha = opts.Alpha.Start
	sprite.Z = opts.Depth
	sprite.Size = gamemath.Vec(cfg.Render.ParticleSize, cfg.Render.ParticleSize)

	alphaEase := opts.AlphaEase
	if alphaEase == nil {
		alphaEase = ease.Linear
	}
	life := float32(opts.Lifetime)

	components.Particle.SetValue(particle, components.ParticleData{
		Sprite:        sprite,
		Velocity:      opts.Velocity,
		Lifetime:      opts.Lifetime,
		RotationCurve: gween.New(float32(opts.Rotation.Start), float32(opts.Rotation.End), life, ease.Linear),
		ScaleCurve:    gween.New(float32(opts.Scale.Start), float32(opts.Scale.End), life, ease.Linear),
		AlphaCurve:    gween.New(float32(opts.Alpha.Start), float32(opts.Alpha.End), life, alphaEase),
	})

	return particle
}

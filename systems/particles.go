package systems

import (
	"github.com/automoto/obstaclesync/components"
	"github.com/automoto/obstaclesync/objects"
	"github.com/automoto/obstaclesync/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ParticleSpawner turns particle requests from objects into entities.
type ParticleSpawner struct {
	ecs *ecs.ECS
}

func NewParticleSpawner(e *ecs.ECS) *ParticleSpawner {
	return &ParticleSpawner{ecs: e}
}

func (s *ParticleSpawner) SpawnParticles(count int, factoryFn func() objects.ParticleOptions) {
	for i := 0; i < count; i++ {
		factory.SpawnParticle(s.ecs, factoryFn())
	}
}

// UpdateParticles moves and fades particles, removing them when their
// lifetime is over.
func UpdateParticles(e *ecs.ECS) {
	dt := frameMillis()
	var expired []donburi.Entity

	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		p.Age += dt
		if p.Age >= p.Lifetime {
			expired = append(expired, entry.Entity())
			return
		}

		step := float32(dt)
		rotation, _ := p.RotationCurve.Update(step)
		scale, _ := p.ScaleCurve.Update(step)
		alpha, _ := p.AlphaCurve.Update(step)

		p.Sprite.Position = p.Sprite.Position.Add(objects.Travel(p.Velocity, dt))
		p.Sprite.Rotation = float64(rotation)
		p.Sprite.Scale = float64(scale)
		p.Sprite.Alpha = float64(alpha)
	})

	for _, entity := range expired {
		e.World.Remove(entity)
	}
}

// frameMillis is the length of one update tick.
func frameMillis() float64 {
	return 1000 / float64(ebiten.TPS())
}

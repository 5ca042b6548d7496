package config

import (
	"github.com/automoto/obstaclesync/shared/bitstream"
	"github.com/automoto/obstaclesync/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// ObjectType identifies an obstacle definition on the wire.
type ObjectType uint16

// Material picks destruction and hit sounds.
type Material string

const (
	MaterialWood      Material = "wood"
	MaterialStone     Material = "stone"
	MaterialMetal     Material = "metal"
	MaterialGlass     Material = "glass"
	MaterialBush      Material = "bush"
	MaterialCrate     Material = "crate"
	MaterialPorcelain Material = "porcelain"
)

// Materials lists every material, in the order sounds are preloaded.
var Materials = []Material{
	MaterialWood,
	MaterialStone,
	MaterialMetal,
	MaterialGlass,
	MaterialBush,
	MaterialCrate,
	MaterialPorcelain,
}

// ObstacleFrames overrides the default texture names derived from IDString.
type ObstacleFrames struct {
	Base     string
	Residue  string
	Particle string
}

// ObstacleDefinition is the static description shared by every instance of an
// obstacle type. Definitions are never mutated after init.
type ObstacleDefinition struct {
	IDString string
	Name     string
	Material Material

	// Hitbox is in object-local space.
	Hitbox       gamemath.Hitbox
	RotationMode bitstream.RotationMode

	IsDoor bool
	// HingeOffset is the pivot of a door, in object-local space.
	HingeOffset dmath.Vec2

	// Variations is the number of texture variations; 0 means none.
	Variations         int
	ParticleVariations int
	Frames             ObstacleFrames

	NoResidue bool
	Invisible bool
	Explosion bool
	Depth     int
}

// HasVariations reports whether a variation index is sent on the wire.
func (d *ObstacleDefinition) HasVariations() bool {
	return d.Variations > 0
}

func (d *ObstacleDefinition) BaseFrame() string {
	if d.Frames.Base != "" {
		return d.Frames.Base
	}
	return d.IDString
}

func (d *ObstacleDefinition) ResidueFrame() string {
	if d.Frames.Residue != "" {
		return d.Frames.Residue
	}
	return d.IDString + "_residue"
}

func (d *ObstacleDefinition) ParticleFrame() string {
	if d.Frames.Particle != "" {
		return d.Frames.Particle
	}
	return d.IDString + "_particle"
}

// ObstacleRegistry maps wire types to definitions.
type ObstacleRegistry struct {
	byType map[ObjectType]*ObstacleDefinition
	byName map[string]ObjectType
}

// Obstacle looks up a definition by wire type.
func (r *ObstacleRegistry) Obstacle(t ObjectType) (*ObstacleDefinition, bool) {
	d, ok := r.byType[t]
	return d, ok
}

// TypeOf resolves an IDString to its wire type.
func (r *ObstacleRegistry) TypeOf(idString string) (ObjectType, bool) {
	t, ok := r.byName[idString]
	return t, ok
}

func newObstacleRegistry(defs []*ObstacleDefinition) *ObstacleRegistry {
	r := &ObstacleRegistry{
		byType: make(map[ObjectType]*ObstacleDefinition, len(defs)),
		byName: make(map[string]ObjectType, len(defs)),
	}
	for i, d := range defs {
		r.byType[ObjectType(i)] = d
		r.byName[d.IDString] = ObjectType(i)
	}
	return r
}

// Obstacles is the global definition registry. Wire types are the index into
// the definition list, so entries may only be appended.
var Obstacles *ObstacleRegistry

func init() {
	Obstacles = newObstacleRegistry([]*ObstacleDefinition{
		{
			IDString:     "tree_oak",
			Name:         "Oak Tree",
			Material:     MaterialWood,
			Hitbox:       gamemath.NewCircle(gamemath.Vec(0, 0), 3.5),
			RotationMode: bitstream.RotationFull,
			Variations:   3,
			Depth:        5,
		},
		{
			IDString:           "rock",
			Name:               "Rock",
			Material:           MaterialStone,
			Hitbox:             gamemath.NewCircle(gamemath.Vec(0, 0), 4),
			RotationMode:       bitstream.RotationFull,
			Variations:         7,
			ParticleVariations: 2,
		},
		{
			IDString:     "crate_regular",
			Name:         "Regular Crate",
			Material:     MaterialCrate,
			Hitbox:       gamemath.NewRectangleFromCenter(gamemath.Vec(0, 0), 9.2, 9.2),
			RotationMode: bitstream.RotationNone,
			Frames:       ObstacleFrames{Particle: "crate_particle", Residue: "regular_crate_residue"},
		},
		{
			IDString:     "barrel",
			Name:         "Barrel",
			Material:     MaterialMetal,
			Hitbox:       gamemath.NewCircle(gamemath.Vec(0, 0), 3.65),
			RotationMode: bitstream.RotationFull,
			Explosion:    true,
		},
		{
			IDString:     "bush",
			Name:         "Bush",
			Material:     MaterialBush,
			Hitbox:       gamemath.NewCircle(gamemath.Vec(0, 0), 4.2),
			RotationMode: bitstream.RotationFull,
			Variations:   2,
			Depth:        10,
		},
		{
			IDString:     "door",
			Name:         "Door",
			Material:     MaterialWood,
			Hitbox:       gamemath.NewRectangle(gamemath.Vec(-5.5, -1), gamemath.Vec(5.5, 1)),
			RotationMode: bitstream.RotationLimited,
			IsDoor:       true,
			HingeOffset:  gamemath.Vec(-5.5, 0),
			Frames:       ObstacleFrames{Particle: "furniture_particle"},
		},
		{
			IDString:     "window",
			Name:         "Window",
			Material:     MaterialGlass,
			Hitbox:       gamemath.NewRectangle(gamemath.Vec(-0.8, -6), gamemath.Vec(0.8, 6)),
			RotationMode: bitstream.RotationLimited,
			NoResidue:    true,
		},
		{
			IDString: "toilet",
			Name:     "Toilet",
			Material: MaterialPorcelain,
			Hitbox: gamemath.NewComplex(
				gamemath.NewRectangle(gamemath.Vec(-3, -4), gamemath.Vec(3, 0)),
				gamemath.NewCircle(gamemath.Vec(0, 1.5), 2.5),
			),
			RotationMode: bitstream.RotationLimited,
		},
		{
			IDString:     "wall_hitbox",
			Name:         "Invisible Wall",
			Material:     MaterialStone,
			Hitbox:       gamemath.NewRectangle(gamemath.Vec(-8, -1), gamemath.Vec(8, 1)),
			RotationMode: bitstream.RotationLimited,
			Invisible:    true,
		},
	})
}

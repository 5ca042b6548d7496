package objects

import (
	"fmt"

	"github.com/automoto/obstaclesync/config"
	"github.com/automoto/obstaclesync/shared/bitstream"
	"github.com/automoto/obstaclesync/shared/gamemath"
	"github.com/automoto/obstaclesync/shared/messages"
	dmath "github.com/yohamta/donburi/features/math"
)

// ObstacleSnapshot is the authoritative view of an obstacle. The offline
// sandbox encodes snapshots into the same updates a server would send.
type ObstacleSnapshot struct {
	Position    dmath.Vec2
	Rotation    float64
	Orientation gamemath.Orientation
	Variation   uint8
	Scale       float64
	Destroyed   bool
	DoorOffset  uint8
}

// EncodeFull writes the full section for def.
func (s ObstacleSnapshot) EncodeFull(w *bitstream.Writer, def *config.ObstacleDefinition) error {
	w.WritePosition(s.Position)
	if def.IsDoor {
		w.WriteOrientation(s.Orientation)
	} else {
		rot := bitstream.ObstacleRotation{Rotation: s.Rotation, Orientation: s.Orientation}
		if err := w.WriteObstacleRotation(def.RotationMode, rot); err != nil {
			return err
		}
	}
	if def.HasVariations() {
		w.WriteVariation(s.Variation)
	}
	return nil
}

// EncodePartial writes the partial section for def.
func (s ObstacleSnapshot) EncodePartial(w *bitstream.Writer, def *config.ObstacleDefinition) {
	w.WriteScale(s.Scale)
	w.WriteBoolean(s.Destroyed)
	if def.IsDoor {
		w.WriteBits(uint64(s.DoorOffset), bitstream.DoorOffsetBits)
	}
}

// EncodeObstacleUpdate builds the message for one obstacle. Full updates
// carry both sections.
func EncodeObstacleUpdate(id uint16, t config.ObjectType, def *config.ObstacleDefinition, s ObstacleSnapshot, full bool) (messages.ObjectUpdate, error) {
	w := bitstream.NewWriter()
	if full {
		if err := s.EncodeFull(w, def); err != nil {
			return messages.ObjectUpdate{}, fmt.Errorf("obstacle %d: %w", id, err)
		}
	}
	s.EncodePartial(w, def)
	return messages.ObjectUpdate{
		ID:       id,
		Category: uint8(CategoryObstacle),
		Type:     uint16(t),
		Full:     full,
		Data:     w.Bytes(),
	}, nil
}

package bitstream

import (
	"math"

	"github.com/automoto/obstaclesync/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Writer packs fields in the same layout Reader expects. The sandbox feed and
// tests use it to build payloads.
type Writer struct {
	data   []byte
	bitPos int
}

func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the packed buffer; the final byte is zero padded.
func (w *Writer) Bytes() []byte { return w.data }

// Len is the number of bits written.
func (w *Writer) Len() int { return w.bitPos }

// WriteBits appends the low n bits of v, n in [0, 64].
func (w *Writer) WriteBits(v uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		if w.bitPos%8 == 0 {
			w.data = append(w.data, 0)
		}
		if v>>uint(i)&1 == 1 {
			w.data[w.bitPos/8] |= 1 << (7 - uint(w.bitPos%8))
		}
		w.bitPos++
	}
}

func (w *Writer) WriteBoolean(b bool) {
	if b {
		w.WriteBits(1, 1)
	} else {
		w.WriteBits(0, 1)
	}
}

// WriteFloat clamps v to [min, max] and rounds to the nearest step.
func (w *Writer) WriteFloat(v, min, max float64, bits int) {
	steps := float64(uint64(1)<<bits - 1)
	v = math.Max(min, math.Min(max, v))
	w.WriteBits(uint64(math.Round((v-min)/(max-min)*steps)), bits)
}

func (w *Writer) WriteScale(scale float64) {
	w.WriteFloat(scale, MinScale, MaxScale, ScaleBits)
}

func (w *Writer) WritePosition(pos dmath.Vec2) {
	w.WriteFloat(pos.X, 0, MapMax, CoordinateBits)
	w.WriteFloat(pos.Y, 0, MapMax, CoordinateBits)
}

func (w *Writer) WriteRotation(rotation float64, bits int) {
	w.WriteFloat(rotation, minRotation, maxRotation, bits)
}

func (w *Writer) WriteOrientation(o gamemath.Orientation) {
	w.WriteBits(uint64(o%4), OrientationBits)
}

// WriteObstacleRotation mirrors Reader.ReadObstacleRotation.
func (w *Writer) WriteObstacleRotation(mode RotationMode, rot ObstacleRotation) error {
	switch mode {
	case RotationNone:
		return nil
	case RotationLimited:
		w.WriteOrientation(rot.Orientation)
		return nil
	case RotationFull:
		w.WriteRotation(rot.Rotation, FullRotationBits)
		return nil
	}
	return &UnknownRotationModeError{Mode: mode}
}

func (w *Writer) WriteVariation(v uint8) {
	w.WriteBits(uint64(v), VariationBits)
}

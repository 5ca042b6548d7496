package bitstream

import (
	"github.com/automoto/obstaclesync/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Reader is a position-tracked decoder over a byte buffer. A Reader is built
// per incoming message and thrown away after decoding.
type Reader struct {
	data   []byte
	bitPos int
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Offset is the number of bits consumed so far.
func (r *Reader) Offset() int { return r.bitPos }

// Remaining is the number of unread bits.
func (r *Reader) Remaining() int { return len(r.data)*8 - r.bitPos }

// ReadBits reads an n-bit unsigned value, n in [0, 32].
func (r *Reader) ReadBits(n int) (uint32, error) {
	if n < 0 || n > 32 {
		return 0, ErrInvalidWidth
	}
	v, err := r.ReadBits64(n)
	return uint32(v), err
}

// ReadBits64 reads an n-bit unsigned value, n in [0, 64]. On truncation the
// cursor does not move.
func (r *Reader) ReadBits64(n int) (uint64, error) {
	if n < 0 || n > 64 {
		return 0, ErrInvalidWidth
	}
	if n > r.Remaining() {
		return 0, &TruncationError{Offset: r.bitPos, Requested: n, Available: r.Remaining()}
	}

	var v uint64
	for n > 0 {
		b := r.data[r.bitPos/8]
		remain := 8 - r.bitPos%8
		take := remain
		if take > n {
			take = n
		}
		shift := remain - take
		v = (v << take) | uint64((b>>shift)&((1<<take)-1))
		r.bitPos += take
		n -= take
	}
	return v, nil
}

func (r *Reader) ReadBoolean() (bool, error) {
	v, err := r.ReadBits(1)
	return v == 1, err
}

// ReadFloat decodes a fixed-point value spread evenly over [min, max].
func (r *Reader) ReadFloat(min, max float64, bits int) (float64, error) {
	v, err := r.ReadBits(bits)
	if err != nil {
		return 0, err
	}
	steps := float64(uint64(1)<<bits - 1)
	return min + (max-min)*float64(v)/steps, nil
}

func (r *Reader) ReadScale() (float64, error) {
	return r.ReadFloat(MinScale, MaxScale, ScaleBits)
}

// ReadPosition reads an x then a y coordinate in world units.
func (r *Reader) ReadPosition() (dmath.Vec2, error) {
	x, err := r.ReadFloat(0, MapMax, CoordinateBits)
	if err != nil {
		return dmath.Vec2{}, err
	}
	y, err := r.ReadFloat(0, MapMax, CoordinateBits)
	if err != nil {
		return dmath.Vec2{}, err
	}
	return dmath.Vec2{X: x, Y: y}, nil
}

// ReadRotation reads an angle in [-π, π].
func (r *Reader) ReadRotation(bits int) (float64, error) {
	return r.ReadFloat(minRotation, maxRotation, bits)
}

func (r *Reader) ReadOrientation() (gamemath.Orientation, error) {
	v, err := r.ReadBits(OrientationBits)
	return gamemath.Orientation(v), err
}

// ObstacleRotation is a decoded obstacle rotation. Orientation is only
// meaningful for RotationLimited.
type ObstacleRotation struct {
	Rotation    float64
	Orientation gamemath.Orientation
}

// ReadObstacleRotation reads the rotation field for the given mode. Modes
// without a wire format fail instead of defaulting to zero.
func (r *Reader) ReadObstacleRotation(mode RotationMode) (ObstacleRotation, error) {
	switch mode {
	case RotationNone:
		return ObstacleRotation{}, nil
	case RotationLimited:
		o, err := r.ReadOrientation()
		if err != nil {
			return ObstacleRotation{}, err
		}
		return ObstacleRotation{Rotation: gamemath.OrientationToRotation(o), Orientation: o}, nil
	case RotationFull:
		rot, err := r.ReadRotation(FullRotationBits)
		if err != nil {
			return ObstacleRotation{}, err
		}
		return ObstacleRotation{Rotation: rot}, nil
	}
	return ObstacleRotation{}, &UnknownRotationModeError{Mode: mode}
}

func (r *Reader) ReadVariation() (uint8, error) {
	v, err := r.ReadBits(VariationBits)
	return uint8(v), err
}

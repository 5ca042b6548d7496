// Package bitstream decodes the packed object-update format: a byte buffer
// read as a sequence of individually sized, MSB-first bit fields.
//
// The widths below are shared with the server. Changing any of them requires
// bumping ProtocolVersion.
package bitstream

import "math"

const ProtocolVersion = 1

const (
	// CoordinateBits is the width of each position axis.
	CoordinateBits = 16
	// MapMax is the largest encodable world coordinate.
	MapMax = 1024.0

	ScaleBits = 8
	MinScale  = 0.25
	MaxScale  = 3.0

	// FullRotationBits is the width of a free rotation in [-π, π].
	FullRotationBits = 8
	OrientationBits  = 2
	VariationBits    = 3
	DoorOffsetBits   = 2

	// MaxVariations is how many variations VariationBits can address.
	MaxVariations = 1 << VariationBits
)

// RotationMode selects how an obstacle's rotation is encoded.
type RotationMode uint8

const (
	// RotationNone carries no rotation on the wire.
	RotationNone RotationMode = iota
	// RotationLimited carries a 2-bit orientation.
	RotationLimited
	// RotationFull carries a FullRotationBits angle.
	RotationFull
)

func (m RotationMode) String() string {
	switch m {
	case RotationNone:
		return "none"
	case RotationLimited:
		return "limited"
	case RotationFull:
		return "full"
	}
	return "unknown"
}

var (
	minRotation = -math.Pi
	maxRotation = math.Pi
)

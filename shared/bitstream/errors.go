package bitstream

import (
	"errors"
	"fmt"
)

var (
	ErrTruncated           = errors.New("bitstream truncated")
	ErrUnknownRotationMode = errors.New("unknown rotation mode")
	ErrInvalidWidth        = errors.New("invalid bit width")
)

// TruncationError reports a read that ran past the end of the buffer.
type TruncationError struct {
	Offset    int // bit offset where the read started
	Requested int
	Available int
}

func (e *TruncationError) Error() string {
	return fmt.Sprintf("bitstream truncated at bit %d: need %d bits, have %d", e.Offset, e.Requested, e.Available)
}

func (e *TruncationError) Unwrap() error { return ErrTruncated }

// UnknownRotationModeError reports a rotation mode with no wire format.
type UnknownRotationModeError struct {
	Mode RotationMode
}

func (e *UnknownRotationModeError) Error() string {
	return fmt.Sprintf("unknown rotation mode %d", e.Mode)
}

func (e *UnknownRotationModeError) Unwrap() error { return ErrUnknownRotationMode }

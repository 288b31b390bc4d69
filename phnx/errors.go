package phnx

import (
	"errors"

	candefs "github.com/ISC-Project-Phoenix/phnx-candefs"
)

var (
	// ErrUnknownMessage reports a frame whose (identifier, extended) pair
	// matches no catalog entry. Callers should drop or log the frame.
	ErrUnknownMessage = errors.New("phnx: unknown message id")

	// ErrMalformedFrame reports a frame whose declared length is too short
	// for the matched message layout, e.g. a truncated transmission.
	ErrMalformedFrame = errors.New("phnx: malformed frame")
)

// ErrValueRange is returned by Marshal when a field's value does not fit its
// declared wire encoding. It aliases candefs.ErrValueRange so callers can
// match either sentinel.
var ErrValueRange = candefs.ErrValueRange

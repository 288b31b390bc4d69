package phnx

import (
	candefs "github.com/ISC-Project-Phoenix/phnx-candefs"
)

// FrameMarshaler encodes a typed Phoenix entity into a CAN frame.
type FrameMarshaler interface {
	MarshalCANFrame() (candefs.Frame, error)
}

// FrameUnmarshaler decodes a typed Phoenix entity from a CAN frame.
type FrameUnmarshaler interface {
	UnmarshalCANFrame(candefs.Frame) error
}

// FrameCodec combines marshaling and unmarshaling of CAN frames.
type FrameCodec interface {
	FrameMarshaler
	FrameUnmarshaler
}

// Message is the closed set of Phoenix CAN messages; exactly one struct type
// in this package implements it per message kind. Decode results are always
// one of those types, so callers can type-switch exhaustively.
type Message interface {
	FrameMarshaler

	// Kind reports the message kind.
	Kind() Kind

	phoenixMessage()
}

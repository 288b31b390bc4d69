// Package phnx defines the CAN messages exchanged between Project Phoenix
// nodes and the codec that converts them to and from candefs.Frame values.
//
// The message catalog is a static descriptor table shared by every node on
// the bus; identifiers, bit layouts and scales are frozen so independently
// built firmware agrees on the wire format without sharing code. Encoding and
// decoding are pure, stateless and safe for concurrent use. Unknown
// identifiers and truncated frames surface as ErrUnknownMessage and
// ErrMalformedFrame so callers can drop or log them; they are expected on a
// bus whose participants evolve independently and are never fatal.
package phnx

package candefs

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ByteOrder selects how a multi-byte signal maps onto the payload bytes.
// The order is declared per signal, not per message: real buses mix orders
// within one payload to stay compatible with deployed firmware.
type ByteOrder uint8

const (
	// LittleEndian (Intel): Start indexes the payload read as a
	// little-endian uint64, counting from the least significant bit.
	LittleEndian ByteOrder = iota
	// BigEndian (Motorola): Start counts from the most significant bit of
	// the payload read as a big-endian uint64.
	BigEndian
)

// ErrValueRange reports a value that does not fit a signal's bit width.
// It is returned on encode instead of silently truncating the wire value.
var ErrValueRange = errors.New("candefs: value out of range")

// Signal declares one scalar field inside an 8-byte CAN payload.
//
// The wire encoding is always an integer occupying [Start, Start+Width).
// Scale and Offset give the affine transform to the physical value
// (physical = raw*Scale + Offset). A zero Scale means unscaled (multiplier 1),
// so plain integer signals need no explicit scale in descriptor tables.
type Signal struct {
	Name   string
	Start  uint8 // bit offset within the 64-bit payload
	Width  uint8 // bit width, 1..64
	Signed bool
	Scale  float64
	Offset float64
	Order  ByteOrder
}

// Validate checks that the signal fits the 8-byte payload.
func (s Signal) Validate() error {
	if s.Width == 0 || s.Width > 64 {
		return fmt.Errorf("candefs: signal %q: width %d (valid 1..64)", s.Name, s.Width)
	}
	if int(s.Start)+int(s.Width) > 64 {
		return fmt.Errorf("candefs: signal %q: bits [%d,%d) exceed payload", s.Name, s.Start, int(s.Start)+int(s.Width))
	}
	return nil
}

// Pack writes raw into the payload bits [Start, Start+Width) honoring the
// signal's byte order. It returns ErrValueRange if raw is not representable
// in Width bits for the signal's signedness; no bits are written on error.
func (s Signal) Pack(p *[8]byte, raw int64) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if !s.fits(raw) {
		return fmt.Errorf("%w: signal %q: %d does not fit %d bits", ErrValueRange, s.Name, raw, s.Width)
	}
	s.store(p, uint64(raw)&s.mask())
	return nil
}

// Unpack reads the signal's raw integer value, sign-extending iff the signal
// is signed. Every bit pattern of Width bits is a valid integer, so Unpack
// cannot fail. It is the exact inverse of Pack.
func (s Signal) Unpack(p [8]byte) int64 {
	bits := s.load(p)
	if s.Signed && s.Width < 64 && bits&(1<<(s.Width-1)) != 0 {
		bits |= ^s.mask()
	}
	return int64(bits)
}

// PackPhysical converts a physical value to its raw encoding,
// raw = round((v-Offset)/Scale), and packs it. Returns ErrValueRange when the
// rounded raw value does not fit Width bits.
func (s Signal) PackPhysical(p *[8]byte, v float64) error {
	raw := math.Round((v - s.Offset) / s.scale())
	// The float comparison is conservative at the upper bound: values at or
	// past 2^63 cannot convert to int64 safely.
	if math.IsNaN(raw) || raw < math.MinInt64 || raw >= math.MaxInt64 {
		return fmt.Errorf("%w: signal %q: physical value %v", ErrValueRange, s.Name, v)
	}
	return s.Pack(p, int64(raw))
}

// UnpackPhysical unpacks the raw value and applies the signal's scale and
// offset. Round-trip through PackPhysical is exact in the raw integer domain
// and accurate to one scale unit in the physical domain.
func (s Signal) UnpackPhysical(p [8]byte) float64 {
	return float64(s.Unpack(p))*s.scale() + s.Offset
}

func (s Signal) scale() float64 {
	if s.Scale == 0 {
		return 1
	}
	return s.Scale
}

func (s Signal) mask() uint64 {
	if s.Width == 64 {
		return math.MaxUint64
	}
	return uint64(1)<<s.Width - 1
}

func (s Signal) fits(raw int64) bool {
	if s.Width == 64 {
		// int64 cannot express values past either 64-bit bound.
		return s.Signed || raw >= 0
	}
	if s.Signed {
		return raw >= -(int64(1)<<(s.Width-1)) && raw <= int64(1)<<(s.Width-1)-1
	}
	return raw >= 0 && raw <= int64(s.mask())
}

func (s Signal) store(p *[8]byte, bits uint64) {
	switch s.Order {
	case BigEndian:
		shift := 64 - uint(s.Start) - uint(s.Width)
		v := binary.BigEndian.Uint64(p[:])
		v = v&^(s.mask()<<shift) | bits<<shift
		binary.BigEndian.PutUint64(p[:], v)
	default:
		v := binary.LittleEndian.Uint64(p[:])
		v = v&^(s.mask()<<s.Start) | bits<<s.Start
		binary.LittleEndian.PutUint64(p[:], v)
	}
}

func (s Signal) load(p [8]byte) uint64 {
	switch s.Order {
	case BigEndian:
		shift := 64 - uint(s.Start) - uint(s.Width)
		return binary.BigEndian.Uint64(p[:]) >> shift & s.mask()
	default:
		return binary.LittleEndian.Uint64(p[:]) >> s.Start & s.mask()
	}
}

// occupancy reports which physical payload bits the signal covers, as a mask
// over the payload read little-endian. Used for overlap detection across
// signals of mixed byte order.
func (s Signal) occupancy() uint64 {
	var m uint64
	for i := uint(s.Start); i < uint(s.Start)+uint(s.Width); i++ {
		if s.Order == BigEndian {
			m |= 1 << (i/8*8 + 7 - i%8)
		} else {
			m |= 1 << i
		}
	}
	return m
}

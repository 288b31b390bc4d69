package phnx

import (
	"fmt"

	candefs "github.com/ISC-Project-Phoenix/phnx-candefs"
)

// Marshal encodes a Phoenix message into the CAN frame its descriptor
// declares: all-zero payload, signals packed in declared order, Len set to
// the highest byte any signal touches. Encoding is atomic; on error no frame
// is produced. A field outside its wire range yields ErrValueRange.
func Marshal(m Message) (candefs.Frame, error) {
	return m.MarshalCANFrame()
}

// Unmarshal decodes a CAN frame into its typed Phoenix message. It returns
// ErrUnknownMessage when the frame's (identifier, extended) pair matches no
// catalog entry and ErrMalformedFrame when the frame's length is too short
// for the matched layout. Integer signals accept every bit pattern, so those
// are the only decode errors.
func Unmarshal(f candefs.Frame) (Message, error) {
	kind, ok := Lookup(f.ID, f.Extended)
	if !ok {
		return nil, fmt.Errorf("%w: 0x%X (extended=%t)", ErrUnknownMessage, f.ID, f.Extended)
	}
	switch kind {
	case KindAutonDisable:
		var m AutonDisable
		if err := m.UnmarshalCANFrame(f); err != nil {
			return nil, err
		}
		return m, nil
	case KindSetBrake:
		var m SetBrake
		if err := m.UnmarshalCANFrame(f); err != nil {
			return nil, err
		}
		return m, nil
	case KindLockBrake:
		var m LockBrake
		if err := m.UnmarshalCANFrame(f); err != nil {
			return nil, err
		}
		return m, nil
	case KindUnlockBrake:
		var m UnlockBrake
		if err := m.UnmarshalCANFrame(f); err != nil {
			return nil, err
		}
		return m, nil
	case KindSetAngle:
		var m SetAngle
		if err := m.UnmarshalCANFrame(f); err != nil {
			return nil, err
		}
		return m, nil
	case KindGetAngle:
		var m GetAngle
		if err := m.UnmarshalCANFrame(f); err != nil {
			return nil, err
		}
		return m, nil
	case KindSetSpeed:
		var m SetSpeed
		if err := m.UnmarshalCANFrame(f); err != nil {
			return nil, err
		}
		return m, nil
	case KindEncoderCount:
		var m EncoderCount
		if err := m.UnmarshalCANFrame(f); err != nil {
			return nil, err
		}
		return m, nil
	case KindTrainingMode:
		var m TrainingMode
		if err := m.UnmarshalCANFrame(f); err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w: 0x%X", ErrUnknownMessage, f.ID)
	}
}

// newFrame returns a zeroed frame addressed per the descriptor, with Len set
// to the bytes its signals cover. Field-less messages encode with Len 0.
func newFrame(d candefs.Descriptor) candefs.Frame {
	return candefs.Frame{ID: d.ID, Extended: d.Extended, Len: d.ByteLen()}
}

// checkFrame validates a received frame against the descriptor before any
// signal is unpacked: the identifier must match and Len must cover every
// declared signal. Len is authoritative; zero payload bytes within Len are
// genuine zero-valued fields, not missing data.
func checkFrame(d candefs.Descriptor, f candefs.Frame) error {
	if f.ID != d.ID || f.Extended != d.Extended {
		return fmt.Errorf("%w: got 0x%X, want 0x%X (%s)", ErrUnknownMessage, f.ID, d.ID, d.Name)
	}
	if f.Len < d.ByteLen() {
		return fmt.Errorf("%w: %s needs %d bytes, frame has %d", ErrMalformedFrame, d.Name, d.ByteLen(), f.Len)
	}
	return nil
}

package candefs

import "errors"

// Bus represents a CAN bus connection which can send and receive frames.
// Implementations must be safe for concurrent use by multiple goroutines.
//
// The codec layers above never talk to hardware directly; they only ever
// produce and consume Frame values through this interface. Bus timing,
// arbitration and retransmission are the transport's concern.
type Bus interface {
	// Send transmits a frame. It may block until the frame is queued.
	Send(Frame) error

	// Receive blocks until the next frame is available.
	Receive() (Frame, error)

	// Close releases resources. Further Send/Receive return an error.
	Close() error
}

// ErrClosed indicates the bus or endpoint has been closed.
var ErrClosed = errors.New("candefs: closed")

package phnx

import (
	candefs "github.com/ISC-Project-Phoenix/phnx-candefs"
)

// Phoenix-typed filters and Mux subscriptions.

// KnownFilter matches frames carrying a catalogued Phoenix message.
func KnownFilter() candefs.FrameFilter {
	return candefs.Known(Catalog)
}

// KindFilter matches frames of one message kind whose length covers the
// kind's layout.
func KindFilter(k Kind) candefs.FrameFilter {
	return candefs.ByDescriptor(Describe(k))
}

// SubscribeMessages subscribes to every catalogued Phoenix message on the mux
// and delivers decoded values. Frames that fail to decode (e.g. truncated
// transmissions) are skipped. The returned cancel must be called when done;
// the channel closes on cancel or when the underlying mux closes.
func SubscribeMessages(mux *candefs.Mux, buffer int) (<-chan Message, func()) {
	return subscribe(mux, KnownFilter(), buffer)
}

// SubscribeKind is SubscribeMessages restricted to a single message kind.
func SubscribeKind(mux *candefs.Mux, k Kind, buffer int) (<-chan Message, func()) {
	return subscribe(mux, KindFilter(k), buffer)
}

func subscribe(mux *candefs.Mux, filter candefs.FrameFilter, buffer int) (<-chan Message, func()) {
	if buffer < 0 {
		buffer = 0
	}
	frames, cancel := mux.Subscribe(filter, buffer)
	out := make(chan Message, buffer)
	go func() {
		defer close(out)
		for f := range frames {
			m, err := Unmarshal(f)
			if err != nil {
				continue
			}
			out <- m
		}
	}()
	return out, cancel
}

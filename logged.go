package candefs

import (
	"context"
	"log/slog"
)

// LogOption is a bitmask for selecting which Bus operations to log.
type LogOption uint8

const (
	LogNone LogOption = 0
	LogRead LogOption = 1 << iota
	LogWrite
	LogAll = LogRead | LogWrite
)

// NewLoggedBus wraps the given Bus and logs selected operations at the given
// level through a slog.Logger. The codec itself never logs; this decorator is
// the opt-in observation point for bus traffic.
func NewLoggedBus(inner Bus, logger *slog.Logger, level slog.Level, opts LogOption) Bus {
	return &loggedBus{inner: inner, logger: logger, level: level, opts: opts}
}

// NewLoggedBusWithFilter is NewLoggedBus restricted to frames that satisfy
// the filter. A nil filter logs every frame.
func NewLoggedBusWithFilter(inner Bus, logger *slog.Logger, level slog.Level, opts LogOption, filter FrameFilter) Bus {
	return &loggedBus{inner: inner, logger: logger, level: level, opts: opts, filter: filter}
}

// NewLoggedBusWithRegistry is NewLoggedBus with descriptor-name annotation:
// frames whose (identifier, extended) pair is registered are logged with the
// descriptor's name, which keeps candump-style traces readable.
func NewLoggedBusWithRegistry(inner Bus, logger *slog.Logger, level slog.Level, opts LogOption, reg *Registry) Bus {
	return &loggedBus{inner: inner, logger: logger, level: level, opts: opts, reg: reg}
}

type loggedBus struct {
	inner  Bus
	logger *slog.Logger
	level  slog.Level
	opts   LogOption
	filter FrameFilter
	reg    *Registry
}

func (l *loggedBus) attrs(f Frame) []any {
	attrs := []any{
		"id", f.ID,
		"extended", f.Extended,
		"rtr", f.RTR,
		"len", int(f.Len),
		"data", f.Data[:f.Len],
		"string", f.String(),
	}
	if l.reg != nil {
		if d, ok := l.reg.Lookup(f.ID, f.Extended); ok {
			attrs = append(attrs, "name", d.Name)
		}
	}
	return attrs
}

// Send logs the frame and the result when write logging is enabled.
func (l *loggedBus) Send(frame Frame) error {
	if l.opts&LogWrite != 0 && (l.filter == nil || l.filter(frame)) {
		l.logger.Log(context.Background(), l.level, "can send", l.attrs(frame)...)
	}
	err := l.inner.Send(frame)
	if l.opts&LogWrite != 0 && err != nil {
		l.logger.Log(context.Background(), slog.LevelError, "can send error",
			"id", frame.ID,
			"error", err,
		)
	}
	return err
}

// Receive logs the received frame or error when read logging is enabled.
func (l *loggedBus) Receive() (Frame, error) {
	f, err := l.inner.Receive()
	if l.opts&LogRead != 0 {
		if err != nil {
			l.logger.Log(context.Background(), slog.LevelError, "can receive error",
				"error", err,
			)
		} else if l.filter == nil || l.filter(f) {
			l.logger.Log(context.Background(), l.level, "can receive", l.attrs(f)...)
		}
	}
	return f, err
}

// Close forwards to the inner Bus without logging.
func (l *loggedBus) Close() error {
	return l.inner.Close()
}

package candefs

// Composable helpers for FrameFilter.

// ByID matches frames with the exact identifier, regardless of extension.
func ByID(id uint32) FrameFilter {
	return func(f Frame) bool { return f.ID == id }
}

// ByIDs matches any of the provided identifiers.
func ByIDs(ids ...uint32) FrameFilter {
	m := make(map[uint32]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return func(f Frame) bool {
		_, ok := m[f.ID]
		return ok
	}
}

// ByMask matches when (frame.ID & mask) == (id & mask).
func ByMask(id, mask uint32) FrameFilter {
	want := id & mask
	return func(f Frame) bool { return f.ID&mask == want }
}

// ByDescriptor matches frames addressed to the descriptor: identifier and
// extension must match and Len must cover every declared signal.
func ByDescriptor(d Descriptor) FrameFilter {
	need := d.ByteLen()
	return func(f Frame) bool {
		return f.ID == d.ID && f.Extended == d.Extended && f.Len >= need
	}
}

// Known matches frames whose (identifier, extended) pair is registered.
func Known(r *Registry) FrameFilter {
	return func(f Frame) bool {
		_, ok := r.Lookup(f.ID, f.Extended)
		return ok
	}
}

// StandardOnly matches standard (11-bit) identifiers.
func StandardOnly() FrameFilter {
	return func(f Frame) bool { return !f.Extended }
}

// ExtendedOnly matches extended (29-bit) identifiers.
func ExtendedOnly() FrameFilter {
	return func(f Frame) bool { return f.Extended }
}

// DataOnly matches non-RTR frames.
func DataOnly() FrameFilter {
	return func(f Frame) bool { return !f.RTR }
}

// LenAtLeast matches frames with data length >= n.
func LenAtLeast(n uint8) FrameFilter {
	return func(f Frame) bool { return f.Len >= n }
}

// And composes two filters; the result matches when both match.
func And(a, b FrameFilter) FrameFilter {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return func(f Frame) bool { return a(f) && b(f) }
	}
}

// Or composes two filters; the result matches when either matches.
func Or(a, b FrameFilter) FrameFilter {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return func(f Frame) bool { return a(f) || b(f) }
	}
}

// Not inverts a filter.
func Not(a FrameFilter) FrameFilter {
	if a == nil {
		return func(Frame) bool { return true }
	}
	return func(f Frame) bool { return !a(f) }
}

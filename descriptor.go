package candefs

import "fmt"

// Descriptor declares a message kind's identifier and payload layout.
// Descriptors are built once as static tables and never mutated at runtime.
type Descriptor struct {
	Name     string
	ID       uint32
	Extended bool
	Signals  []Signal
}

// Validate checks the identifier range for the Extended flag, validates every
// signal, and rejects signals whose bit ranges overlap.
func (d Descriptor) Validate() error {
	limit := uint32(maxStdID)
	if d.Extended {
		limit = maxExtID
	}
	if d.ID > limit {
		return fmt.Errorf("descriptor %q: %w: 0x%X", d.Name, ErrInvalidID, d.ID)
	}
	var used uint64
	for _, s := range d.Signals {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("descriptor %q: %w", d.Name, err)
		}
		bits := s.occupancy()
		if used&bits != 0 {
			return fmt.Errorf("candefs: descriptor %q: signal %q overlaps an earlier signal", d.Name, s.Name)
		}
		used |= bits
	}
	return nil
}

// ByteLen returns the number of payload bytes the descriptor's signals cover,
// i.e. the highest byte any signal touches. Zero for field-less messages.
func (d Descriptor) ByteLen() uint8 {
	var end uint8
	for _, s := range d.Signals {
		if e := (s.Start + s.Width + 7) / 8; e > end {
			end = e
		}
	}
	return end
}

// Registry is an immutable set of descriptors keyed by identifier. The key
// includes the extended flag: a standard and an extended identifier with the
// same numeric value are distinct message kinds.
//
// A Registry is safe for concurrent use once constructed.
type Registry struct {
	byID map[registryKey]Descriptor
	list []Descriptor
}

type registryKey struct {
	id       uint32
	extended bool
}

// NewRegistry validates every descriptor and indexes them by
// (identifier, extended). Duplicate keys are an error.
func NewRegistry(descs ...Descriptor) (*Registry, error) {
	r := &Registry{byID: make(map[registryKey]Descriptor, len(descs))}
	for _, d := range descs {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		k := registryKey{d.ID, d.Extended}
		if prev, ok := r.byID[k]; ok {
			return nil, fmt.Errorf("candefs: descriptors %q and %q share identifier 0x%X (extended=%t)", prev.Name, d.Name, d.ID, d.Extended)
		}
		r.byID[k] = d
		r.list = append(r.list, d)
	}
	return r, nil
}

// MustNewRegistry is NewRegistry for static tables; it panics on error.
func MustNewRegistry(descs ...Descriptor) *Registry {
	r, err := NewRegistry(descs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the descriptor registered for the identifier, if any.
func (r *Registry) Lookup(id uint32, extended bool) (Descriptor, bool) {
	d, ok := r.byID[registryKey{id, extended}]
	return d, ok
}

// Descriptors returns the registered descriptors in registration order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, len(r.list))
	copy(out, r.list)
	return out
}

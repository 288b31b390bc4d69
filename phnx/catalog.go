package phnx

import (
	candefs "github.com/ISC-Project-Phoenix/phnx-candefs"
)

// Wire catalog. Identifiers, bit layouts, signedness and scales are frozen:
// every node on the bus depends on this table being bit-exact, so changes
// here are wire-format changes. All identifiers are extended (29-bit) and all
// signals little-endian.
var descriptors = map[Kind]candefs.Descriptor{
	KindAutonDisable: {Name: "AutonDisable", ID: 0x0, Extended: true},
	KindSetBrake: {Name: "SetBrake", ID: 0x1, Extended: true, Signals: []candefs.Signal{
		{Name: "percent", Start: 0, Width: 8},
	}},
	KindLockBrake:   {Name: "LockBrake", ID: 0x2, Extended: true},
	KindUnlockBrake: {Name: "UnlockBrake", ID: 0x3, Extended: true},
	KindSetAngle: {Name: "SetAngle", ID: 0x4, Extended: true, Signals: []candefs.Signal{
		{Name: "angle", Start: 0, Width: 32, Signed: true, Scale: 0.01},
	}},
	KindGetAngle: {Name: "GetAngle", ID: 0x5, Extended: true, Signals: []candefs.Signal{
		{Name: "angle", Start: 0, Width: 32, Signed: true, Scale: 0.01},
	}},
	KindSetSpeed: {Name: "SetSpeed", ID: 0x6, Extended: true, Signals: []candefs.Signal{
		{Name: "percent", Start: 0, Width: 8},
	}},
	KindEncoderCount: {Name: "EncoderCount", ID: 0x7, Extended: true, Signals: []candefs.Signal{
		{Name: "count", Start: 0, Width: 32, Signed: true},
		{Name: "velocity", Start: 32, Width: 32, Signed: true, Scale: 0.01},
	}},
	KindTrainingMode: {Name: "TrainingMode", ID: 0x8, Extended: true},
}

// Kinds lists every catalogued message kind in identifier order.
var Kinds = []Kind{
	KindAutonDisable,
	KindSetBrake,
	KindLockBrake,
	KindUnlockBrake,
	KindSetAngle,
	KindGetAngle,
	KindSetSpeed,
	KindEncoderCount,
	KindTrainingMode,
}

// Catalog registers every Phoenix descriptor. Construction panics at program
// start if the table declares overlapping signals or duplicate identifiers.
var Catalog = candefs.MustNewRegistry(catalogDescriptors()...)

func catalogDescriptors() []candefs.Descriptor {
	descs := make([]candefs.Descriptor, 0, len(Kinds))
	for _, k := range Kinds {
		descs = append(descs, descriptors[k])
	}
	return descs
}

type idKey struct {
	id       uint32
	extended bool
}

var kindByID = func() map[idKey]Kind {
	m := make(map[idKey]Kind, len(descriptors))
	for k, d := range descriptors {
		m[idKey{d.ID, d.Extended}] = k
	}
	return m
}()

// Describe returns the wire descriptor for the kind. Every kind has exactly
// one descriptor, known at compile time, so the lookup cannot fail.
func Describe(k Kind) candefs.Descriptor {
	return descriptors[k]
}

// Lookup maps a received identifier to its message kind. The extended flag is
// part of the key: a standard-frame identifier never matches an extended
// catalog entry.
func Lookup(id uint32, extended bool) (Kind, bool) {
	k, ok := kindByID[idKey{id, extended}]
	return k, ok
}

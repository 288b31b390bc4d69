package candefs

import (
	"errors"
	"math"
	"testing"
)

func TestSignal_PackUnpack_Roundtrip(t *testing.T) {
	cases := []struct {
		name string
		sig  Signal
		raws []int64
	}{
		{
			name: "unsigned byte",
			sig:  Signal{Name: "u8", Start: 0, Width: 8},
			raws: []int64{0, 1, 127, 255},
		},
		{
			name: "signed byte at offset",
			sig:  Signal{Name: "s8", Start: 8, Width: 8, Signed: true},
			raws: []int64{-128, -1, 0, 127},
		},
		{
			name: "signed 32-bit",
			sig:  Signal{Name: "s32", Start: 0, Width: 32, Signed: true},
			raws: []int64{math.MinInt32, -1020, 0, 20, math.MaxInt32},
		},
		{
			name: "unaligned 5-bit",
			sig:  Signal{Name: "u5", Start: 3, Width: 5},
			raws: []int64{0, 1, 17, 31},
		},
		{
			name: "big endian 16-bit",
			sig:  Signal{Name: "be16", Start: 0, Width: 16, Signed: true, Order: BigEndian},
			raws: []int64{-32768, -1, 0, 0x1234, 32767},
		},
		{
			name: "full width signed",
			sig:  Signal{Name: "s64", Start: 0, Width: 64, Signed: true},
			raws: []int64{math.MinInt64, -1, 0, math.MaxInt64},
		},
	}

	for _, tc := range cases {
		for _, raw := range tc.raws {
			var p [8]byte
			if err := tc.sig.Pack(&p, raw); err != nil {
				t.Fatalf("%s: Pack(%d): %v", tc.name, raw, err)
			}
			if got := tc.sig.Unpack(p); got != raw {
				t.Fatalf("%s: roundtrip %d -> %d", tc.name, raw, got)
			}
		}
	}
}

func TestSignal_Pack_PreservesNeighbors(t *testing.T) {
	var p [8]byte
	lo := Signal{Name: "lo", Start: 0, Width: 8}
	mid := Signal{Name: "mid", Start: 8, Width: 4}
	hi := Signal{Name: "hi", Start: 12, Width: 4}

	if err := lo.Pack(&p, 0xAB); err != nil {
		t.Fatal(err)
	}
	if err := mid.Pack(&p, 0x5); err != nil {
		t.Fatal(err)
	}
	if err := hi.Pack(&p, 0xC); err != nil {
		t.Fatal(err)
	}
	if got := lo.Unpack(p); got != 0xAB {
		t.Fatalf("lo clobbered: %#x", got)
	}
	if got := mid.Unpack(p); got != 0x5 {
		t.Fatalf("mid clobbered: %#x", got)
	}
	if p[0] != 0xAB || p[1] != 0xC5 {
		t.Fatalf("payload layout: % X", p[:2])
	}
}

func TestSignal_Pack_RangeRejection(t *testing.T) {
	cases := []struct {
		name string
		sig  Signal
		raw  int64
	}{
		{"unsigned overflow", Signal{Name: "u8", Width: 8}, 256},
		{"unsigned negative", Signal{Name: "u8", Width: 8}, -1},
		{"signed overflow", Signal{Name: "s8", Width: 8, Signed: true}, 128},
		{"signed underflow", Signal{Name: "s8", Width: 8, Signed: true}, -129},
		{"wide unsigned negative", Signal{Name: "u64", Width: 64}, -5},
	}
	for _, tc := range cases {
		var p [8]byte
		err := tc.sig.Pack(&p, tc.raw)
		if !errors.Is(err, ErrValueRange) {
			t.Fatalf("%s: Pack(%d) = %v, want ErrValueRange", tc.name, tc.raw, err)
		}
		if p != [8]byte{} {
			t.Fatalf("%s: payload modified on error", tc.name)
		}
	}
}

func TestSignal_Physical_Roundtrip(t *testing.T) {
	vel := Signal{Name: "velocity", Start: 32, Width: 32, Signed: true, Scale: 0.01}
	for _, v := range []float64{-100.5, -0.01, 0, 0.005, 10.2, 99.99} {
		var p [8]byte
		if err := vel.PackPhysical(&p, v); err != nil {
			t.Fatalf("PackPhysical(%v): %v", v, err)
		}
		got := vel.UnpackPhysical(p)
		if math.Abs(got-v) > 0.01 {
			t.Fatalf("physical roundtrip %v -> %v", v, got)
		}
	}

	// Offset shifts the representable window.
	temp := Signal{Name: "temp", Start: 0, Width: 8, Scale: 0.5, Offset: -40}
	var p [8]byte
	if err := temp.PackPhysical(&p, 25); err != nil {
		t.Fatalf("PackPhysical(25): %v", err)
	}
	if got := temp.UnpackPhysical(p); math.Abs(got-25) > 0.5 {
		t.Fatalf("temp roundtrip: %v", got)
	}
	if raw := temp.Unpack(p); raw != 130 {
		t.Fatalf("temp raw: %d", raw)
	}
}

func TestSignal_PackPhysical_RangeRejection(t *testing.T) {
	vel := Signal{Name: "velocity", Width: 16, Signed: true, Scale: 0.01}
	var p [8]byte
	// 400 / 0.01 = 40000 > MaxInt16
	if err := vel.PackPhysical(&p, 400); !errors.Is(err, ErrValueRange) {
		t.Fatalf("expected ErrValueRange, got %v", err)
	}
	if err := vel.PackPhysical(&p, math.NaN()); !errors.Is(err, ErrValueRange) {
		t.Fatalf("expected ErrValueRange for NaN, got %v", err)
	}
	if err := vel.PackPhysical(&p, math.Inf(1)); !errors.Is(err, ErrValueRange) {
		t.Fatalf("expected ErrValueRange for +Inf, got %v", err)
	}
}

func TestSignal_Validate(t *testing.T) {
	if err := (Signal{Name: "zero", Width: 0}).Validate(); err == nil {
		t.Fatalf("zero width should be invalid")
	}
	if err := (Signal{Name: "spill", Start: 60, Width: 8}).Validate(); err == nil {
		t.Fatalf("signal past bit 64 should be invalid")
	}
	if err := (Signal{Name: "ok", Start: 56, Width: 8}).Validate(); err != nil {
		t.Fatalf("last byte should be valid: %v", err)
	}
}

func TestSignal_BigEndian_Layout(t *testing.T) {
	// A 16-bit big endian signal at the start of the payload lands most
	// significant byte first.
	sig := Signal{Name: "be", Start: 0, Width: 16, Order: BigEndian}
	var p [8]byte
	if err := sig.Pack(&p, 0x1234); err != nil {
		t.Fatal(err)
	}
	if p[0] != 0x12 || p[1] != 0x34 {
		t.Fatalf("big endian layout: % X", p[:2])
	}

	le := Signal{Name: "le", Start: 0, Width: 16}
	p = [8]byte{}
	if err := le.Pack(&p, 0x1234); err != nil {
		t.Fatal(err)
	}
	if p[0] != 0x34 || p[1] != 0x12 {
		t.Fatalf("little endian layout: % X", p[:2])
	}
}

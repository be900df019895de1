package net_structures_test

import (
	"bytes"
	"testing"

	ns "github.com/go-mclib/picocraft/net_structures"
)

func TestPalettedContainerSingleValueRoundTrip(t *testing.T) {
	values := make([]int32, ns.BlockStatesEntries)
	for i := range values {
		values[i] = 7
	}
	c := ns.NewPalettedContainer(values, ns.BlockStatesIndirectMinBits, ns.BlockStatesIndirectMaxBits, ns.BlockStatesDirectBits)
	if c.BitsPerEntry != 0 {
		t.Fatalf("single-valued container got BitsPerEntry = %d, want 0", c.BitsPerEntry)
	}

	buf := ns.NewWriter()
	if err := c.Encode(buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	decoded, err := ns.DecodePalettedContainer(ns.NewReader(buf.Bytes()), ns.BlockStatesIndirectMaxBits)
	if err != nil {
		t.Fatalf("DecodePalettedContainer() error = %v", err)
	}
	got := decoded.Values(ns.BlockStatesEntries, ns.BlockStatesIndirectMaxBits)
	for i, v := range got {
		if v != 7 {
			t.Fatalf("Values()[%d] = %d, want 7", i, v)
		}
	}
}

func TestPalettedContainerIndirectRoundTrip(t *testing.T) {
	values := make([]int32, ns.BlockStatesEntries)
	for i := range values {
		values[i] = int32(i % 5) // 5 distinct values -> indirect mode
	}
	c := ns.NewPalettedContainer(values, ns.BlockStatesIndirectMinBits, ns.BlockStatesIndirectMaxBits, ns.BlockStatesDirectBits)
	if c.BitsPerEntry == 0 || c.BitsPerEntry > ns.BlockStatesIndirectMaxBits {
		t.Fatalf("5 distinct values should pick indirect mode, got BitsPerEntry = %d", c.BitsPerEntry)
	}

	buf := ns.NewWriter()
	if err := c.Encode(buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	decoded, err := ns.DecodePalettedContainer(ns.NewReader(buf.Bytes()), ns.BlockStatesIndirectMaxBits)
	if err != nil {
		t.Fatalf("DecodePalettedContainer() error = %v", err)
	}
	got := decoded.Values(ns.BlockStatesEntries, ns.BlockStatesIndirectMaxBits)
	for i, v := range got {
		if v != values[i] {
			t.Fatalf("Values()[%d] = %d, want %d", i, v, values[i])
		}
	}
}

func TestPalettedContainerDirectRoundTrip(t *testing.T) {
	values := make([]int32, ns.BlockStatesEntries)
	for i := range values {
		values[i] = int32(i) // every entry distinct -> forces direct mode
	}
	c := ns.NewPalettedContainer(values, ns.BlockStatesIndirectMinBits, ns.BlockStatesIndirectMaxBits, ns.BlockStatesDirectBits)
	if c.BitsPerEntry != ns.BlockStatesDirectBits {
		t.Fatalf("fully distinct values should pick direct mode, got BitsPerEntry = %d", c.BitsPerEntry)
	}

	buf := ns.NewWriter()
	if err := c.Encode(buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	decoded, err := ns.DecodePalettedContainer(ns.NewReader(buf.Bytes()), ns.BlockStatesIndirectMaxBits)
	if err != nil {
		t.Fatalf("DecodePalettedContainer() error = %v", err)
	}
	got := decoded.Values(ns.BlockStatesEntries, ns.BlockStatesIndirectMaxBits)
	for i, v := range got {
		if v != values[i] {
			t.Fatalf("Values()[%d] = %d, want %d", i, v, values[i])
		}
	}
}

func TestPalettedContainerRejectsBadBitsPerEntry(t *testing.T) {
	buf := ns.NewWriter()
	_ = ns.Uint8(250).Encode(buf) // nonsensical bits-per-entry byte
	if _, err := ns.DecodePalettedContainer(ns.NewReader(buf.Bytes()), ns.BlockStatesIndirectMaxBits); err == nil {
		t.Error("DecodePalettedContainer() should reject an out-of-range bits-per-entry")
	}
}

func TestEncodeDecodeAreSymmetric(t *testing.T) {
	// A minimal sanity check that Encode followed immediately by
	// DecodePalettedContainer consumes exactly the bytes produced.
	values := []int32{1, 2, 1, 3}
	entries := len(values)
	c := ns.NewPalettedContainer(values, 1, 4, 8)
	buf := ns.NewWriter()
	if err := c.Encode(buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	r := ns.NewReader(buf.Bytes())
	decoded, err := ns.DecodePalettedContainer(r, 4)
	if err != nil {
		t.Fatalf("Decode error = %v", err)
	}
	if !bytes.Equal(int32sToBytes(decoded.Values(entries, 4)), int32sToBytes(values)) {
		t.Errorf("round trip mismatch: got %v, want %v", decoded.Values(entries, 4), values)
	}
}

func int32sToBytes(vs []int32) []byte {
	out := make([]byte, len(vs))
	for i, v := range vs {
		out[i] = byte(v)
	}
	return out
}

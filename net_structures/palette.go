package net_structures

// PalettedContainer is a chunk-section entry grid (block states or biomes)
// in one of three wire shapes, selected by BitsPerEntry:
//
//   - 0: single-valued. One palette entry, no data longs; every one of the
//     container's entries is that value.
//   - indirectMinBits..indirectMaxBits: indirect. A VarInt-prefixed palette
//     of distinct values, then a data array of bit-packed palette indices.
//   - above indirectMaxBits: direct. No palette; the data array holds the
//     raw values themselves, each packed at exactly directBits wide.
//
// Entries are packed low-bits-first into 64-bit big-endian words, one entry
// never split across two words — a long with entries-per-long*bitsPerEntry
// short of 64 simply carries unused high padding bits.
type PalettedContainer struct {
	BitsPerEntry int
	Palette      []int32 // nil when BitsPerEntry is direct
	Data         []uint64
}

// singleValue returns the lone palette entry of a single-valued container.
func (c PalettedContainer) singleValue() int32 {
	if len(c.Palette) == 0 {
		return 0
	}
	return c.Palette[0]
}

// Values expands the container back to entries raw values.
func (c PalettedContainer) Values(entries, indirectMaxBits int) []int32 {
	out := make([]int32, entries)
	if c.BitsPerEntry == 0 {
		v := c.singleValue()
		for i := range out {
			out[i] = v
		}
		return out
	}
	indices := unpackEntries(c.Data, c.BitsPerEntry, entries)
	if c.BitsPerEntry <= indirectMaxBits {
		for i, idx := range indices {
			if int(idx) < len(c.Palette) {
				out[i] = c.Palette[idx]
			}
		}
		return out
	}
	return indices
}

// NewPalettedContainer builds the narrowest container shape that can
// represent values (length must equal entries), choosing between
// single/indirect/direct per the thresholds a block-state or biome
// container declares.
func NewPalettedContainer(values []int32, indirectMinBits, indirectMaxBits, directBits int) PalettedContainer {
	palette, indices := buildPalette(values)
	if len(palette) <= 1 {
		return PalettedContainer{BitsPerEntry: 0, Palette: palette}
	}

	bitsNeeded := bitsFor(len(palette) - 1)
	if bitsNeeded < indirectMinBits {
		bitsNeeded = indirectMinBits
	}
	if bitsNeeded <= indirectMaxBits {
		return PalettedContainer{
			BitsPerEntry: bitsNeeded,
			Palette:      palette,
			Data:         packEntries(indices, bitsNeeded),
		}
	}
	return PalettedContainer{
		BitsPerEntry: directBits,
		Data:         packEntries(values, directBits),
	}
}

func (c PalettedContainer) Encode(buf *PacketBuffer) error {
	if err := Uint8(c.BitsPerEntry).Encode(buf); err != nil {
		return err
	}
	if c.BitsPerEntry == 0 {
		if err := VarInt(c.singleValue()).Encode(buf); err != nil {
			return err
		}
		return VarInt(0).Encode(buf) // empty data array
	}
	if c.Palette != nil {
		if err := VarInt(len(c.Palette)).Encode(buf); err != nil {
			return err
		}
		for _, v := range c.Palette {
			if err := VarInt(v).Encode(buf); err != nil {
				return err
			}
		}
	}
	if err := VarInt(len(c.Data)).Encode(buf); err != nil {
		return err
	}
	for _, word := range c.Data {
		if err := Uint64(word).Encode(buf); err != nil {
			return err
		}
	}
	return nil
}

// DecodePalettedContainer reads a container whose shape is disambiguated by
// indirectMaxBits: a bits-per-entry above that threshold means direct mode.
func DecodePalettedContainer(buf *PacketBuffer, indirectMaxBits int) (PalettedContainer, error) {
	bpeRaw, err := buf.ReadUint8()
	if err != nil {
		return PalettedContainer{}, err
	}
	bpe := int(bpeRaw)
	if bpe < 0 || bpe > 32 {
		return PalettedContainer{}, ErrInvalidBitsPerEntry
	}

	if bpe == 0 {
		entry, err := ReadVarInt(buf)
		if err != nil {
			return PalettedContainer{}, err
		}
		if _, err := ReadVarInt(buf); err != nil { // empty data-array length
			return PalettedContainer{}, err
		}
		return PalettedContainer{BitsPerEntry: 0, Palette: []int32{int32(entry)}}, nil
	}

	var palette []int32
	if bpe <= indirectMaxBits {
		n, err := ReadVarInt(buf)
		if err != nil {
			return PalettedContainer{}, err
		}
		if n < 0 {
			return PalettedContainer{}, ErrNegativeLength
		}
		palette = make([]int32, n)
		for i := range palette {
			v, err := ReadVarInt(buf)
			if err != nil {
				return PalettedContainer{}, err
			}
			palette[i] = int32(v)
		}
	}

	dataLen, err := ReadVarInt(buf)
	if err != nil {
		return PalettedContainer{}, err
	}
	if dataLen < 0 {
		return PalettedContainer{}, ErrNegativeLength
	}
	data := make([]uint64, dataLen)
	for i := range data {
		w, err := buf.ReadUint64()
		if err != nil {
			return PalettedContainer{}, err
		}
		data[i] = uint64(w)
	}
	return PalettedContainer{BitsPerEntry: bpe, Palette: palette, Data: data}, nil
}

// buildPalette deduplicates values in first-seen order, returning the
// palette and each input value's index into it.
func buildPalette(values []int32) ([]int32, []int32) {
	seen := make(map[int32]int32, 16)
	palette := make([]int32, 0, 16)
	indices := make([]int32, len(values))
	for i, v := range values {
		idx, ok := seen[v]
		if !ok {
			idx = int32(len(palette))
			seen[v] = idx
			palette = append(palette, v)
		}
		indices[i] = idx
	}
	return palette, indices
}

// bitsFor returns the number of bits needed to represent the unsigned value
// maxIndex (0 needs 0 bits; buildPalette's caller clamps to a minimum).
func bitsFor(maxIndex int) int {
	bits := 0
	for (1 << bits) <= maxIndex {
		bits++
	}
	return bits
}

// packEntries bit-packs values, bitsPerEntry wide each, low-bits-first,
// entries-per-long = floor(64/bitsPerEntry), never split across a word.
func packEntries(values []int32, bitsPerEntry int) []uint64 {
	if bitsPerEntry <= 0 {
		return nil
	}
	perLong := 64 / bitsPerEntry
	numLongs := (len(values) + perLong - 1) / perLong
	out := make([]uint64, numLongs)
	mask := uint64(1)<<uint(bitsPerEntry) - 1
	for i, v := range values {
		word := i / perLong
		offset := uint(i%perLong) * uint(bitsPerEntry)
		out[word] |= (uint64(uint32(v)) & mask) << offset
	}
	return out
}

// unpackEntries is the inverse of packEntries, returning exactly count
// values.
func unpackEntries(data []uint64, bitsPerEntry, count int) []int32 {
	out := make([]int32, count)
	if bitsPerEntry <= 0 {
		return out
	}
	perLong := 64 / bitsPerEntry
	mask := uint64(1)<<uint(bitsPerEntry) - 1
	for i := range out {
		word := i / perLong
		if word >= len(data) {
			break
		}
		offset := uint(i%perLong) * uint(bitsPerEntry)
		out[i] = int32((data[word] >> offset) & mask)
	}
	return out
}

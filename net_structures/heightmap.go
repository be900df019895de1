package net_structures

// HeightmapType identifies which surface a Heightmap tracks per the wire
// protocol's registry of heightmap kinds.
type HeightmapType int32

const (
	HeightmapWorldSurface           HeightmapType = 1
	HeightmapMotionBlocking         HeightmapType = 4
	HeightmapMotionBlockingNoLeaves HeightmapType = 5
)

const (
	heightmapColumns     = 256
	heightmapBitsPerCell = 9
	heightmapWords       = 37 // ceil(256 / 7): seven 9-bit cells per word, one padding bit per word
)

// Heightmap is one column-height surface: 256 values (one per x/z column in
// a chunk), each 9 bits, packed 7-per-64-bit-word with 1 padding bit per
// word — never the generic paletted-container layout, because a heightmap
// has no palette and always uses exactly heightmapWords longs.
type Heightmap struct {
	Type   HeightmapType
	Values [heightmapColumns]int32 // absolute Y, 0..511 after +64 offset bias
}

// NewFlatHeightmap builds a heightmap where every column has the same
// height.
func NewFlatHeightmap(t HeightmapType, height int32) Heightmap {
	h := Heightmap{Type: t}
	for i := range h.Values {
		h.Values[i] = height
	}
	return h
}

func (h Heightmap) pack() []uint64 {
	return packEntries(h.Values[:], heightmapBitsPerCell)
}

func (h Heightmap) Encode(buf *PacketBuffer) error {
	if err := VarInt(h.Type).Encode(buf); err != nil {
		return err
	}
	words := h.pack()
	if err := VarInt(len(words)).Encode(buf); err != nil {
		return err
	}
	for _, w := range words {
		if err := Uint64(w).Encode(buf); err != nil {
			return err
		}
	}
	return nil
}

// ReadHeightmap decodes a single heightmap entry, rejecting a data-array
// length other than heightmapWords (a conforming encoder never emits any
// other length for a 256-column chunk).
func ReadHeightmap(buf *PacketBuffer) (Heightmap, error) {
	t, err := ReadVarInt(buf)
	if err != nil {
		return Heightmap{}, err
	}
	n, err := ReadVarInt(buf)
	if err != nil {
		return Heightmap{}, err
	}
	if int(n) != heightmapWords {
		return Heightmap{}, ErrInvalidBitsPerEntry
	}
	words := make([]uint64, n)
	for i := range words {
		w, err := buf.ReadUint64()
		if err != nil {
			return Heightmap{}, err
		}
		words[i] = uint64(w)
	}
	h := Heightmap{Type: HeightmapType(t)}
	copy(h.Values[:], unpackEntries(words, heightmapBitsPerCell, heightmapColumns))
	return h, nil
}

// HeightmapSet is the PrefixedArray of heightmaps a chunk-data packet
// carries (one per HeightmapType the server chooses to send).
type HeightmapSet []Heightmap

func (hs HeightmapSet) Encode(buf *PacketBuffer) error {
	if err := VarInt(len(hs)).Encode(buf); err != nil {
		return err
	}
	for _, h := range hs {
		if err := h.Encode(buf); err != nil {
			return err
		}
	}
	return nil
}

func ReadHeightmapSet(buf *PacketBuffer) (HeightmapSet, error) {
	n, err := ReadVarInt(buf)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, ErrNegativeLength
	}
	out := make(HeightmapSet, n)
	for i := range out {
		h, err := ReadHeightmap(buf)
		if err != nil {
			return nil, err
		}
		out[i] = h
	}
	return out, nil
}

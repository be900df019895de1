package terrain

// Global block-state IDs for protocol version 774. This generator's terrain
// rule only ever places two blocks: solid ground below the heightfield
// surface, air above it.
const (
	blockAir   int32 = 0
	blockStone int32 = 1
)

// biomePlains is the single biome ID this core's world ever reports.
const biomePlains int32 = 0

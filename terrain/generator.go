// Package terrain turns a seeded heightfield into the paletted chunk
// sections and heightmaps a connection streams to a player, generating
// flat "air ring" columns outside the configured view radius the way the
// original world generator bordered its terrain with a ring of empty
// chunks rather than generating (or pretending to generate) infinitely.
package terrain

import ns "github.com/go-mclib/picocraft/net_structures"

// ChunkPos identifies a chunk column by its chunk-grid coordinates
// (world position / 16).
type ChunkPos struct {
	X, Z int32
}

// Generator produces chunk columns from a single seeded heightfield.
type Generator struct {
	field      *Heightfield
	viewRadius int32
}

// NewGenerator builds a generator whose terrain extends viewRadius chunks
// in every direction from the origin; columns beyond that radius are
// generated as a flat air ring instead of terrain, bounding the world to a
// fixed playable footprint.
func NewGenerator(seed int64, viewRadius int32) *Generator {
	return &Generator{field: NewHeightfield(seed), viewRadius: viewRadius}
}

// Column produces the full packet payload (chunk sections, heightmaps,
// fully-lit light data) for one chunk column.
func (g *Generator) Column(pos ChunkPos) (ns.ChunkData, ns.LightData, error) {
	if pos.X*pos.X+pos.Z*pos.Z > g.viewRadius*g.viewRadius {
		return g.airColumn()
	}
	return g.terrainColumn(pos)
}

func (g *Generator) terrainColumn(pos ChunkPos) (ns.ChunkData, ns.LightData, error) {
	heights := g.columnHeights(pos)

	sections := make([]ns.ChunkSection, numSections)

	for s := 0; s < numSections; s++ {
		sectionBase := int32(minY + s*sectionSize)
		blockStates := make([]int32, ns.BlockStatesEntries)
		biomes := make([]int32, ns.BiomeEntries)
		for i := range biomes {
			biomes[i] = biomePlains
		}

		for local := 0; local < ns.BlockStatesEntries; local++ {
			x := local & 15
			y := (local >> 8) & 15
			z := (local >> 4) & 15
			col := z*16 + x
			worldY := sectionBase + int32(y)
			blockStates[local] = blockAt(heights[col], worldY)
		}

		sections[s] = ns.NewChunkSection(blockStates, biomes, blockAir)
	}

	data, err := ns.EncodeChunkColumn(sections)
	if err != nil {
		return ns.ChunkData{}, ns.LightData{}, err
	}

	chunkData := ns.ChunkData{
		Heightmaps:    ns.HeightmapSet{},
		Data:          data,
		BlockEntities: nil,
	}
	return chunkData, ns.FullyLitLightData(numSections), nil
}

// airColumn is the flat, all-air column sent for chunks outside the view
// radius: present on the wire (so the client doesn't have to special-case a
// missing chunk) but contributing nothing to render.
func (g *Generator) airColumn() (ns.ChunkData, ns.LightData, error) {
	sections := make([]ns.ChunkSection, numSections)
	blockStates := make([]int32, ns.BlockStatesEntries)
	biomes := make([]int32, ns.BiomeEntries)
	for i := range biomes {
		biomes[i] = biomePlains
	}
	for s := range sections {
		sections[s] = ns.NewChunkSection(blockStates, biomes, blockAir)
	}

	data, err := ns.EncodeChunkColumn(sections)
	if err != nil {
		return ns.ChunkData{}, ns.LightData{}, err
	}

	chunkData := ns.ChunkData{
		Heightmaps: ns.HeightmapSet{},
		Data:       data,
	}
	return chunkData, ns.FullyLitLightData(numSections), nil
}

// columnHeights returns the 256 surface heights (row-major z*16+x) for one
// chunk's columns.
func (g *Generator) columnHeights(pos ChunkPos) [256]int32 {
	var heights [256]int32
	baseX := pos.X * sectionSize
	baseZ := pos.Z * sectionSize
	for z := int32(0); z < 16; z++ {
		for x := int32(0); x < 16; x++ {
			heights[z*16+x] = g.field.HeightAt(baseX+x, baseZ+z)
		}
	}
	return heights
}

// blockAt decides which block occupies a single (column-height, world-Y)
// cell: stone at or below the column's surface height, air above it.
func blockAt(surfaceHeight, worldY int32) int32 {
	if worldY <= surfaceHeight {
		return blockStone
	}
	return blockAir
}

// SpiralChunks returns the view-radius square of chunk coordinates around
// center in ring order (center first, then each Chebyshev ring outward),
// the order a connection streams chunks in so the player's immediate
// surroundings arrive before its periphery.
func SpiralChunks(center ChunkPos, radius int32) []ChunkPos {
	coords := make([]ChunkPos, 0, (2*radius+1)*(2*radius+1))
	coords = append(coords, center)
	for r := int32(1); r <= radius; r++ {
		for dx := -r; dx <= r; dx++ {
			coords = append(coords, ChunkPos{center.X + dx, center.Z - r})
			coords = append(coords, ChunkPos{center.X + dx, center.Z + r})
		}
		for dz := -r + 1; dz <= r-1; dz++ {
			coords = append(coords, ChunkPos{center.X - r, center.Z + dz})
			coords = append(coords, ChunkPos{center.X + r, center.Z + dz})
		}
	}
	return coords
}

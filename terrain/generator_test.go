package terrain

import "testing"

func TestSpiralChunksCentersFirstNoDuplicates(t *testing.T) {
	center := ChunkPos{X: 3, Z: -2}
	coords := SpiralChunks(center, 4)

	if coords[0] != center {
		t.Fatalf("SpiralChunks()[0] = %v, want center %v", coords[0], center)
	}

	seen := make(map[ChunkPos]bool, len(coords))
	for _, c := range coords {
		if seen[c] {
			t.Fatalf("SpiralChunks produced a duplicate coordinate: %v", c)
		}
		seen[c] = true
	}

	want := (2*4 + 1) * (2*4 + 1)
	if len(coords) != want {
		t.Errorf("SpiralChunks returned %d coordinates, want %d", len(coords), want)
	}

	for dx := int32(-4); dx <= 4; dx++ {
		for dz := int32(-4); dz <= 4; dz++ {
			if !seen[ChunkPos{center.X + dx, center.Z + dz}] {
				t.Errorf("SpiralChunks missing coordinate (%d,%d)", center.X+dx, center.Z+dz)
			}
		}
	}
}

func TestSpiralChunksRadiusZero(t *testing.T) {
	coords := SpiralChunks(ChunkPos{1, 1}, 0)
	if len(coords) != 1 || coords[0] != (ChunkPos{1, 1}) {
		t.Errorf("SpiralChunks(radius=0) = %v, want just the center", coords)
	}
}

func TestBlockAtStoneAtOrBelowSurface(t *testing.T) {
	if b := blockAt(70, 70); b != blockStone {
		t.Errorf("blockAt at surface = %d, want stone", b)
	}
	if b := blockAt(70, minY); b != blockStone {
		t.Errorf("blockAt floor = %d, want stone", b)
	}
}

func TestBlockAtAirAboveSurface(t *testing.T) {
	if b := blockAt(70, 71); b != blockAir {
		t.Errorf("blockAt one above surface = %d, want air", b)
	}
	if b := blockAt(70, 70+50); b != blockAir {
		t.Errorf("blockAt far above surface = %d, want air", b)
	}
}

func TestColumnWithinRadiusProducesSectionsAndEmptyHeightmaps(t *testing.T) {
	g := NewGenerator(55, 8)
	data, light, err := g.Column(ChunkPos{0, 0})
	if err != nil {
		t.Fatalf("Column() error = %v", err)
	}
	if len(data.Heightmaps) != 0 {
		t.Errorf("Column() produced %d heightmaps, want 0 (heightmaps are empty on the wire)", len(data.Heightmaps))
	}
	if len(light.SkyLightArrays) == 0 {
		t.Error("Column() produced no sky light arrays")
	}
	if len(light.BlockLightArrays) == 0 {
		t.Error("Column() produced no block light arrays")
	}
}

func TestColumnOutsideRadiusIsAir(t *testing.T) {
	g := NewGenerator(55, 2)
	inRange, _, err := g.Column(ChunkPos{0, 0})
	if err != nil {
		t.Fatalf("Column() error = %v", err)
	}
	outOfRange, _, err := g.Column(ChunkPos{1000, 1000})
	if err != nil {
		t.Fatalf("Column() error = %v", err)
	}
	if len(inRange.Data) == len(outOfRange.Data) {
		// Not a strict requirement, but a terrain column and an air column
		// built from differently-patterned block IDs should essentially
		// never byte-compare equal.
		if string(inRange.Data) == string(outOfRange.Data) {
			t.Error("in-range and out-of-range columns encoded identically")
		}
	}
}

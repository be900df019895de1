package terrain

import "math"

const (
	fieldSize = 256 // one precomputed height per column in a 256x256 area, centered on the origin

	fieldOrigin = fieldSize / 2 // world column 0 sits at grid index fieldOrigin

	minY        = -64
	worldHeight = 384
	sectionSize = 16
	numSections = worldHeight / sectionSize // 24

	heightBase      = 96.0
	heightAmplitude = 32.0
	heightDomain    = 128.0
	heightOctaves   = 4
)

// Heightfield is a precomputed surface height for every column in a
// fieldSize x fieldSize area centered on the origin, the Go analogue of the
// original generator's NoiseMap256.
type Heightfield struct {
	heights [fieldSize][fieldSize]int32
}

// NewHeightfield precomputes h(x, z) = clamp(perlin_fbm(x/128, z/128,
// octaves=4)*32 + 96, 0, 255) for every world column (x, z) in
// [-128, 128), storing it at grid index (x+128, z+128).
func NewHeightfield(seed int64) *Heightfield {
	noise := newFbm(seed, heightOctaves)
	hf := &Heightfield{}
	for gz := 0; gz < fieldSize; gz++ {
		for gx := 0; gx < fieldSize; gx++ {
			x := float64(gx-fieldOrigin) / heightDomain
			z := float64(gz-fieldOrigin) / heightDomain
			n := noise.at(x, z)
			h := int32(math.Round(n*heightAmplitude + heightBase))
			hf.heights[gz][gx] = clampHeight(h)
		}
	}
	return hf
}

func clampHeight(h int32) int32 {
	switch {
	case h < 0:
		return 0
	case h > 255:
		return 255
	default:
		return h
	}
}

// HeightAt returns the surface height at absolute world column (x, z).
// Coordinates outside the precomputed [-128, 128) grid clamp to its edge —
// this is a bounded world, not a tileable one.
func (hf *Heightfield) HeightAt(x, z int32) int32 {
	ix := clampIndex(x + fieldOrigin)
	iz := clampIndex(z + fieldOrigin)
	return hf.heights[iz][ix]
}

func clampIndex(v int32) int {
	switch {
	case v < 0:
		return 0
	case v >= fieldSize:
		return fieldSize - 1
	default:
		return int(v)
	}
}

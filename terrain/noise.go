package terrain

import "math"

// perlin2D is a classic Ken Perlin gradient-noise implementation over a
// permutation table, the same algorithm the original world generator's Rust
// `noise` crate wraps. No Go library anywhere in this core's dependency
// corpus provides Perlin/simplex noise, so this one function is written
// directly against math — see the design notes for why nothing else here
// falls back to the standard library this way.
type perlin2D struct {
	perm [512]int
}

func newPerlin2D(seed int64) *perlin2D {
	p := &perlin2D{}
	var base [256]int
	for i := range base {
		base[i] = i
	}
	// Deterministic permutation shuffle from the seed, xorshift64 style so
	// the same seed always yields the same terrain.
	state := uint64(seed) ^ 0x9E3779B97F4A7C15
	next := func() uint64 {
		state ^= state << 13
		state ^= state >> 7
		state ^= state << 17
		return state
	}
	for i := 255; i > 0; i-- {
		j := int(next() % uint64(i+1))
		base[i], base[j] = base[j], base[i]
	}
	for i := 0; i < 512; i++ {
		p.perm[i] = base[i%256]
	}
	return p
}

func fade(t float64) float64 { return t * t * t * (t*(t*6-15) + 10) }

func lerp(t, a, b float64) float64 { return a + t*(b-a) }

func grad(hash int, x, y float64) float64 {
	switch hash & 3 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	default:
		return -x - y
	}
}

// at returns Perlin noise in roughly [-1, 1] at the given coordinates.
func (p *perlin2D) at(x, y float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255
	xf := x - math.Floor(x)
	yf := y - math.Floor(y)

	u := fade(xf)
	v := fade(yf)

	aa := p.perm[p.perm[xi]+yi]
	ab := p.perm[p.perm[xi]+yi+1]
	ba := p.perm[p.perm[xi+1]+yi]
	bb := p.perm[p.perm[xi+1]+yi+1]

	x1 := lerp(u, grad(aa, xf, yf), grad(ba, xf-1, yf))
	x2 := lerp(u, grad(ab, xf, yf-1), grad(bb, xf-1, yf-1))
	return lerp(v, x1, x2)
}

// fbm layers octaves of perlin2D.at into fractal Brownian motion, the same
// composition the original generator's Fbm<Perlin> wrapper performs.
type fbm struct {
	source      *perlin2D
	octaves     int
	lacunarity  float64
	persistence float64
}

func newFbm(seed int64, octaves int) *fbm {
	return &fbm{
		source:      newPerlin2D(seed),
		octaves:     octaves,
		lacunarity:  2.0,
		persistence: 0.5,
	}
}

// at returns fbm noise normalized to roughly [-1, 1].
func (f *fbm) at(x, y float64) float64 {
	var sum, amplitude, frequency, max float64
	amplitude = 1
	frequency = 1
	for i := 0; i < f.octaves; i++ {
		sum += f.source.at(x*frequency, y*frequency) * amplitude
		max += amplitude
		amplitude *= f.persistence
		frequency *= f.lacunarity
	}
	if max == 0 {
		return 0
	}
	return sum / max
}

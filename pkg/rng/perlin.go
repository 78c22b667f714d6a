package rng

import "math"

// gradients are the 12 canonical improved-Perlin gradient directions,
// indexed by hash & 15 (indices 12-15 duplicate four of the twelve to
// keep the table a power-of-two size, exactly as vanilla's NoiseGeneratorImproved
// does).
var gradients = [16][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
	{1, 1, 0}, {0, -1, 1}, {-1, 1, 0}, {0, -1, -1},
}

// PerlinOctave is a single "Improved Perlin" noise generator: a 256-entry
// permutation table shuffled by an LCG, plus a per-instance coordinate
// offset. This is the generator vanilla 1.2.5 calls NoiseGeneratorImproved.
type PerlinOctave struct {
	perm   [512]int
	xo, yo, zo float64
}

// NewPerlinOctave consumes from r exactly as vanilla does: three
// NextDouble draws for the coordinate offset, then a Fisher-Yates shuffle
// of [0,255] driven by NextIntBound. Callers must construct octaves in the
// same order vanilla does to reproduce its PRNG stream.
func NewPerlinOctave(r *LCG) *PerlinOctave {
	p := &PerlinOctave{
		xo: r.NextDouble() * 256.0,
		yo: r.NextDouble() * 256.0,
		zo: r.NextDouble() * 256.0,
	}

	var table [256]int
	for i := 0; i < 256; i++ {
		table[i] = i
	}
	for i := 0; i < 256; i++ {
		j := int(r.NextIntBound(int32(256-i))) + i
		table[i], table[j] = table[j], table[i]
	}
	for i := 0; i < 512; i++ {
		p.perm[i] = table[i&255]
	}
	return p
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad(hash int, x, y, z float64) float64 {
	g := gradients[hash&15]
	return g[0]*x + g[1]*y + g[2]*z
}

// Sample3D returns the Perlin noise value at (x, y, z), offset by this
// octave's per-instance (xo, yo, zo).
func (p *PerlinOctave) Sample3D(x, y, z float64) float64 {
	x += p.xo
	y += p.yo
	z += p.zo

	ix := int(math.Floor(x)) & 255
	iy := int(math.Floor(y)) & 255
	iz := int(math.Floor(z)) & 255

	x -= math.Floor(x)
	y -= math.Floor(y)
	z -= math.Floor(z)

	u := fade(x)
	v := fade(y)
	w := fade(z)

	a := p.perm[ix] + iy
	aa := p.perm[a] + iz
	ab := p.perm[a+1] + iz
	b := p.perm[ix+1] + iy
	ba := p.perm[b] + iz
	bb := p.perm[b+1] + iz

	return lerp(w,
		lerp(v,
			lerp(u, grad(p.perm[aa], x, y, z), grad(p.perm[ba], x-1, y, z)),
			lerp(u, grad(p.perm[ab], x, y-1, z), grad(p.perm[bb], x-1, y-1, z)),
		),
		lerp(v,
			lerp(u, grad(p.perm[aa+1], x, y, z-1), grad(p.perm[ba+1], x-1, y, z-1)),
			lerp(u, grad(p.perm[ab+1], x, y-1, z-1), grad(p.perm[bb+1], x-1, y-1, z-1)),
		),
	)
}

// Sample2D samples the same permutation table at y=0, as vanilla's surface
// and biome-jitter noise uses do.
func (p *PerlinOctave) Sample2D(x, z float64) float64 {
	return p.Sample3D(x, 0, z)
}

// OctaveGenerator stacks N PerlinOctave generators, accumulating
// noise_i(x*f, y*f, z*f)/f with frequency doubling and amplitude halving
// per octave, matching vanilla's NoiseGeneratorOctaves.
type OctaveGenerator struct {
	octaves []*PerlinOctave
}

// NewOctaveGenerator constructs n PerlinOctave generators in sequence from
// r — the PRNG consumption order that determines every downstream noise
// value, so callers must build all of a generator's octave stacks in the
// same fixed order vanilla's init does.
func NewOctaveGenerator(r *LCG, n int) *OctaveGenerator {
	og := &OctaveGenerator{octaves: make([]*PerlinOctave, n)}
	for i := 0; i < n; i++ {
		og.octaves[i] = NewPerlinOctave(r)
	}
	return og
}

// Sample3D accumulates octave noise at (x, y, z) scaled independently per
// axis, as vanilla's density-field sampling does.
func (og *OctaveGenerator) Sample3D(x, y, z, xScale, yScale, zScale float64) float64 {
	var total, freq float64 = 0, 1
	for _, o := range og.octaves {
		total += o.Sample3D(x*freq*xScale, y*freq*yScale, z*freq*zScale) / freq
		freq *= 2
	}
	return total
}

// Sample2D is Sample3D with y pinned to 0, used for 2D surface/jitter
// noise.
func (og *OctaveGenerator) Sample2D(x, z, xScale, zScale float64) float64 {
	var total, freq float64 = 0, 1
	for _, o := range og.octaves {
		total += o.Sample2D(x*freq*xScale, z*freq*zScale) / freq
		freq *= 2
	}
	return total
}

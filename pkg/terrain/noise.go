// Package terrain implements the 1.2.5 density-field terrain generator:
// a noise lattice sampled over the chunk, biome-weighted column
// parameters, trilinear interpolation into block cells, and the surface
// replacement pass. Grounded on the teacher's
// internal/server/world/gen.DefaultGenerator (terrain/detail noise fields,
// per-biome amplitude table, fillColumn/applySurface pass split),
// generalized from a 2D height-field to vanilla's full 3D density field.
package terrain

import "github.com/OCharnyshevich/vanilla125/pkg/rng"

// Octave counts for the four density-field generators, matching vanilla's
// own NoiseGeneratorOctaves construction (each generator's precision comes
// from how many Perlin octaves it stacks, not from any runtime tuning).
const (
	minLimitOctaves = 16
	maxLimitOctaves = 16
	mainOctaves     = 8
	depthOctaves    = 16
	surfaceOctaves  = 4
)

// noiseField bundles the four 3D density generators plus the separate 2D
// surface-depth sampler. All five are built from one *rng.LCG in a fixed
// order — that order, not any of the octave counts individually,
// determines every downstream density value for a given world seed.
type noiseField struct {
	minLimit *rng.OctaveGenerator
	maxLimit *rng.OctaveGenerator
	main     *rng.OctaveGenerator
	depth    *rng.OctaveGenerator
	surface  *rng.OctaveGenerator
}

// newNoiseField constructs the five generators in vanilla's construction
// order from worldSeed.
func newNoiseField(worldSeed int64) *noiseField {
	r := rng.NewLCG(worldSeed)
	return &noiseField{
		minLimit: rng.NewOctaveGenerator(r, minLimitOctaves),
		maxLimit: rng.NewOctaveGenerator(r, maxLimitOctaves),
		main:     rng.NewOctaveGenerator(r, mainOctaves),
		surface:  rng.NewOctaveGenerator(r, surfaceOctaves),
		depth:    rng.NewOctaveGenerator(r, depthOctaves),
	}
}

// coordinateScale/heightScale are vanilla's fixed density-field stretch
// factors, applied directly as a multiplier against lattice-index
// coordinates (one unit = one 4-block lattice step, not one block): the
// min/max limit fields share a single 684.412 scale on every axis, the
// main (selector) field is stretched 80x horizontally and 160x
// vertically relative to that same constant. depthScale is the 2D
// depth-noise stretch, applied at the same lattice-index granularity.
// surfaceScale is the separate surface-jitter noise's stretch, applied
// at block-coordinate (not lattice-index) granularity.
const (
	coordinateScale = 684.412
	depthScale      = 200.0
	surfaceScale    = 0.03125 * 2.0
)

// sampleDensity returns the raw min/max/main density values at lattice
// point (latX, latY, latZ), given in lattice-index coordinates (a chunk's
// five lattice columns are latX/latZ = chunkX*4+lx .. chunkX*4+lx+4, and
// latY ranges 0..16), before column-parameter blending.
func (n *noiseField) sampleDensity(latX, latY, latZ float64) (minV, maxV, mainV float64) {
	minV = n.minLimit.Sample3D(latX, latY, latZ, coordinateScale, coordinateScale, coordinateScale)
	maxV = n.maxLimit.Sample3D(latX, latY, latZ, coordinateScale, coordinateScale, coordinateScale)
	mainV = n.main.Sample3D(latX, latY, latZ, coordinateScale/80.0, coordinateScale/160.0, coordinateScale/80.0)
	return
}

// sampleDepth returns the 2D depth-noise sample at lattice-index point
// (latX, latZ), used to shift and scale the biome-weighted column
// parameters.
func (n *noiseField) sampleDepth(latX, latZ float64) float64 {
	return n.depth.Sample2D(latX, latZ, depthScale, depthScale)
}

// sampleSurface returns the 2D surface-depth jitter sample at block
// coordinate (x, z), used by the surface replacement pass to vary
// filler-layer thickness.
func (n *noiseField) sampleSurface(x, z float64) float64 {
	return n.surface.Sample2D(x, z, surfaceScale, surfaceScale)
}

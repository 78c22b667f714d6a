package terrain

import (
	"math"

	"github.com/OCharnyshevich/vanilla125/pkg/biome"
	"github.com/OCharnyshevich/vanilla125/pkg/registry"
)

// columnParams is the biome-weighted (averageMinHeight, averageMaxHeight)
// pair vanilla's density field blends into one lattice column: min/max
// here name the same two numbers registry.BiomeDesc.BaseHeight/
// HeightVariation carry per biome, after the 5x5 neighborhood blend below.
type columnParams struct {
	averageMinHeight float64
	averageMaxHeight float64
}

// kernel is the fixed 5x5 smoothing kernel vanilla's column weighting
// uses: weight(dx, dz) = 10 / sqrt(dx^2 + dz^2 + 0.2), indexed [dx+2][dz+2].
var kernel = buildKernel()

func buildKernel() [5][5]float64 {
	var k [5][5]float64
	for dx := -2; dx <= 2; dx++ {
		for dz := -2; dz <= 2; dz++ {
			k[dx+2][dz+2] = 10.0 / math.Sqrt(float64(dx*dx+dz*dz)+0.2)
		}
	}
	return k
}

// columnWeighter resolves biome.BiomeID samples (at scale 4) to
// registry.BiomeDesc height bounds and computes the weighted column
// parameter table for a chunk's 5x5 lattice columns.
type columnWeighter struct {
	env   *registry.Env
	stack *biome.Stack
}

func newColumnWeighter(env *registry.Env, stack *biome.Stack) *columnWeighter {
	return &columnWeighter{env: env, stack: stack}
}

// heightBounds returns a biome's (min_height, max_height) pair, the two
// constants vanilla's own per-biome terrain table publishes. Unknown ids
// fall back to plains' bounds.
func (w *columnWeighter) heightBounds(id biome.BiomeID) (minHeight, maxHeight float64) {
	desc, ok := registry.ByLegacyID(w.env.Biomes.All(), uint8(id))
	if !ok {
		return 0.1, 0.3
	}
	return desc.BaseHeight, desc.HeightVariation
}

// columns computes the 5x5 table of weighted column parameters for the
// chunk at (chunkX, chunkZ): each lattice column (lx, lz) in [0,4] covers
// world scale-4 cell (chunkX*4+lx, chunkZ*4+lz), and its parameters blend
// a 5x5 neighborhood of scale-4 biome samples centered on that cell,
// weighting each neighbor by distance and by how shallow its own
// min_height is relative to the center column's.
func (w *columnWeighter) columns(worldSeed int64, chunkX, chunkZ int) [5][5]columnParams {
	// Sample a (4+5)x(4+5) window of scale-4 biome cells: the lattice spans
	// 5 columns (0..4), each needing a 5x5 neighborhood centered 2 cells
	// out in every direction.
	originX := int32(chunkX*4 - 2)
	originZ := int32(chunkZ*4 - 2)
	width := int32(4 + 5)
	grid := w.stack.SampleScale4(worldSeed, originX, originZ, width, width)

	at := func(cx, cz int32) biome.BiomeID {
		return grid.Data[int(cz-grid.Z)*int(grid.W)+int(cx-grid.X)]
	}

	var out [5][5]columnParams
	for lx := 0; lx < 5; lx++ {
		for lz := 0; lz < 5; lz++ {
			cellX := int32(chunkX*4 + lx)
			cellZ := int32(chunkZ*4 + lz)

			ownMin, _ := w.heightBounds(at(cellX, cellZ))

			var averageMax, averageMin, totalWeight float64
			for dx := -2; dx <= 2; dx++ {
				for dz := -2; dz <= 2; dz++ {
					nb := at(cellX+int32(dx), cellZ+int32(dz))
					nbMin, nbMax := w.heightBounds(nb)

					weight := kernel[dx+2][dz+2]
					weight /= nbMin + 2.0
					if nbMin > ownMin {
						weight /= 2.0
					}

					averageMax += nbMax * weight
					averageMin += nbMin * weight
					totalWeight += weight
				}
			}
			if totalWeight == 0 {
				totalWeight = 1
			}
			averageMax = (averageMax/totalWeight)*0.9 + 0.1
			averageMin = ((averageMin/totalWeight)*4.0 - 1.0) / 8.0

			out[lx][lz] = columnParams{averageMinHeight: averageMin, averageMaxHeight: averageMax}
		}
	}
	return out
}

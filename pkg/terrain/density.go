package terrain

import (
	"github.com/OCharnyshevich/vanilla125/pkg/chunk"
	"github.com/OCharnyshevich/vanilla125/pkg/registry"
)

// SeaLevel is vanilla 1.2.5's fixed water table height.
const SeaLevel = 62

// Lattice dimensions: 5 columns x 17 rows x 5 columns, 4-block horizontal
// spacing and 8-block vertical spacing, covering the chunk's 16x128x16
// footprint (1.2.5's world height) plus one extra lattice point per axis
// for the far edge.
const (
	latticeX = 5
	latticeY = 17
	latticeZ = 5
)

func lerp(t, a, b float64) float64 { return a + t*(b-a) }

// buildLattice fills a 5x17x5 density field for the chunk at (chunkX,
// chunkZ). Each column first derives a depth-noise "val" term, then blends
// it with the column's biome-weighted (averageMinHeight, averageMaxHeight)
// into a per-row falloff (a/b/d below), which is subtracted from a
// min/max/main noise selection. The row falloff is what turns the raw
// density field into terrain with a consistent base elevation per biome,
// and the final three rows taper toward open sky.
func buildLattice(n *noiseField, cols [5][5]columnParams, chunkX, chunkZ int) [latticeX][latticeY][latticeZ]float64 {
	var d [latticeX][latticeY][latticeZ]float64
	for lx := 0; lx < latticeX; lx++ {
		for lz := 0; lz < latticeZ; lz++ {
			latX := float64(chunkX*4 + lx)
			latZ := float64(chunkZ*4 + lz)
			col := cols[lx][lz]

			val := n.sampleDepth(latX, latZ) / 8000.0
			if val < 0 {
				val = -val * 0.3
			}
			val = val*3.0 - 2.0
			if val < 0 {
				val /= 2.0
				if val < -1.0 {
					val = -1.0
				}
				val /= 1.4
				val /= 2.0
			} else {
				if val > 1.0 {
					val = 1.0
				}
				val /= 8.0
			}

			for ly := 0; ly < latticeY; ly++ {
				latY := float64(ly)

				a := (col.averageMinHeight + val*0.2) * float64(latticeY) / 16.0
				b := float64(latticeY)/2.0 + a*4.0
				fall := (latY - b) * 12.0 / col.averageMaxHeight
				if fall < 0 {
					fall *= 4.0
				}

				minV, maxV, mainV := n.sampleDensity(latX, latY, latZ)
				val1 := minV / 512.0
				val2 := maxV / 512.0
				val3 := (mainV/10.0 + 1.0) / 2.0

				var c float64
				switch {
				case val3 < 0:
					c = val1
				case val3 > 1:
					c = val2
				default:
					c = val1 + (val2-val1)*val3
				}
				c -= fall

				if ly > latticeY-4 {
					e := float64(ly-(latticeY-4)) / 3.0
					c = c*(1.0-e) + e*(-10.0)
				}

				d[lx][ly][lz] = c
			}
		}
	}
	return d
}

// trilerp interpolates the 8 corners of a lattice cell at fractional
// position (tx, ty, tz), each in [0,1).
func trilerp(c000, c100, c010, c110, c001, c101, c011, c111, tx, ty, tz float64) float64 {
	x00 := lerp(tx, c000, c100)
	x10 := lerp(tx, c010, c110)
	x01 := lerp(tx, c001, c101)
	x11 := lerp(tx, c011, c111)
	y0 := lerp(ty, x00, x10)
	y1 := lerp(ty, x01, x11)
	return lerp(tz, y0, y1)
}

// fillDensity trilinearly expands the 5x17x5 lattice into every
// 4x8x4 block cell and writes stone/water/air into c, per spec's fixed
// (non-negotiable) cell size.
func fillDensity(env *registry.Env, c *chunk.Chunk, d [latticeX][latticeY][latticeZ]float64) error {
	stone, _ := env.Blocks.IndexOf(registry.BlockStone)
	water, _ := env.Blocks.IndexOf(registry.BlockWater)
	air, _ := env.Blocks.IndexOf(registry.BlockAir)

	for i := 0; i < latticeX-1; i++ {
		for k := 0; k < latticeZ-1; k++ {
			for j := 0; j < latticeY-1; j++ {
				c000, c100 := d[i][j][k], d[i+1][j][k]
				c010, c110 := d[i][j+1][k], d[i+1][j+1][k]
				c001, c101 := d[i][j][k+1], d[i+1][j][k+1]
				c011, c111 := d[i][j+1][k+1], d[i+1][j+1][k+1]

				for dx := 0; dx < 4; dx++ {
					tx := float64(dx) / 4.0
					for dz := 0; dz < 4; dz++ {
						tz := float64(dz) / 4.0
						x := i*4 + dx
						z := k*4 + dz
						for dy := 0; dy < 8; dy++ {
							ty := float64(dy) / 8.0
							y := j*8 + dy

							density := trilerp(c000, c100, c010, c110, c001, c101, c011, c111, tx, ty, tz)

							var blockIdx registry.Index
							switch {
							case density > 0:
								blockIdx = stone
							case y < SeaLevel:
								blockIdx = water
							default:
								blockIdx = air
							}
							if blockIdx == air {
								continue // chunk sections default to air; skip the write
							}
							if err := c.SetBlock(x, y, z, blockIdx); err != nil {
								return err
							}
						}
					}
				}
			}
		}
	}
	return nil
}

package terrain

import (
	"github.com/OCharnyshevich/vanilla125/pkg/chunk"
	"github.com/OCharnyshevich/vanilla125/pkg/registry"
)

// applySurfacePass walks each column from the world ceiling down,
// replacing the top of every exposed stone run with the column's biome
// surface/filler blocks. Grounded on the teacher's pkg/world/gen/surface.go
// applySurface/applyDefaultSurface switch, generalized from a fixed-depth
// replacement to depth noise plus biome MaxDepth, and extended with the
// beach/swamp/ice special cases spec.md calls out.
func applySurfacePass(env *registry.Env, c *chunk.Chunk, n *noiseField, chunkX, chunkZ int) error {
	stoneIdx, _ := env.Blocks.IndexOf(registry.BlockStone)
	waterIdx, _ := env.Blocks.IndexOf(registry.BlockWater)
	sandIdx, _ := env.Blocks.IndexOf(registry.BlockSand)
	clayIdx, _ := env.Blocks.IndexOf(registry.BlockClay)
	iceIdx, _ := env.Blocks.IndexOf(registry.BlockIce)

	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			wx := float64(chunkX*16 + x)
			wz := float64(chunkZ*16 + z)

			biomeIdx, err := c.GetBiome(x, z)
			if err != nil {
				return err
			}
			biomeDesc, ok := env.Biomes.Get(biomeIdx)
			if !ok {
				continue
			}
			surfaceIdx, _ := env.Blocks.IndexOf(biomeDesc.Surface)
			fillerIdx, _ := env.Blocks.IndexOf(biomeDesc.Filler)

			maxDepth := biomeDesc.MaxDepth
			if maxDepth <= 0 {
				maxDepth = 4
			}
			jitter := n.sampleSurface(wx, wz)
			depth := int(jitter/3.0 + float64(maxDepth))
			if depth < 1 {
				depth = 1
			}

			prevNonSolid := true
			remaining := 0
			for y := 127; y >= 0; y-- {
				idx, err := c.GetBlock(x, y, z)
				if err != nil {
					return err
				}
				if idx != stoneIdx {
					prevNonSolid = true
					remaining = 0
					continue
				}

				switch {
				case prevNonSolid:
					placeIdx := surfaceIdx
					switch biomeDesc {
					case registry.BiomeBeach, registry.BiomeDesert:
						if y >= SeaLevel-1 && y <= SeaLevel+1 {
							placeIdx = sandIdx
						}
					case registry.BiomeSwampland:
						if y < SeaLevel {
							placeIdx = clayIdx
						}
					}
					if err := c.SetBlock(x, y, z, placeIdx); err != nil {
						return err
					}
					remaining = depth - 1
					prevNonSolid = false
				case remaining > 0:
					if err := c.SetBlock(x, y, z, fillerIdx); err != nil {
						return err
					}
					remaining--
				}
			}

			if isIceBiome(biomeDesc) {
				top, err := c.GetBlock(x, SeaLevel, z)
				if err != nil {
					return err
				}
				if top == waterIdx {
					if err := c.SetBlock(x, SeaLevel, z, iceIdx); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func isIceBiome(b *registry.BiomeDesc) bool {
	switch b {
	case registry.BiomeIcePlains, registry.BiomeIceMountains,
		registry.BiomeFrozenOcean, registry.BiomeFrozenRiver:
		return true
	default:
		return false
	}
}

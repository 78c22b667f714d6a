package decorate

import (
	"github.com/OCharnyshevich/vanilla125/pkg/chunk"
	"github.com/OCharnyshevich/vanilla125/pkg/registry"
	"github.com/OCharnyshevich/vanilla125/pkg/rng"
)

// treeDensity returns how many tree placement attempts a chunk centered on
// biome gets, grounded on the teacher's treesForBiome table in
// pkg/world/gen/trees.go. The built-in registry carries a single Log/Leaves
// descriptor pair rather than the teacher's oak/birch/spruce/jungle
// variants, so density is the only per-biome knob this pass has; every
// biome's trees use the same trunk-and-canopy shape.
func treeDensity(biome *registry.BiomeDesc) int {
	switch biome {
	case registry.BiomeForest, registry.BiomeForestHills:
		return 10
	case registry.BiomeTaiga, registry.BiomeTaigaHills:
		return 8
	case registry.BiomeJungle, registry.BiomeJungleHills:
		return 14
	case registry.BiomePlains, registry.BiomeSwampland:
		return 1
	case registry.BiomeExtremeHills, registry.BiomeExtremeHillsEdge:
		return 2
	default:
		return 0
	}
}

// placeTrees attempts treeDensity(biome) single-trunk trees at random
// columns, skipping any column whose surface isn't grass or dirt or that
// has insufficient headroom.
func (d *Decorator) placeTrees(c *chunk.Chunk, r *rng.LCG, biome *registry.BiomeDesc) error {
	count := treeDensity(biome)
	if count == 0 {
		return nil
	}

	grassIdx, _ := d.env.Blocks.IndexOf(registry.BlockGrass)
	dirtIdx, _ := d.env.Blocks.IndexOf(registry.BlockDirt)
	solidIdx, _ := d.env.Heightmaps.IndexOf(registry.HeightmapSolid)

	for i := 0; i < count; i++ {
		x := int(r.NextIntBound(16))
		z := int(r.NextIntBound(16))
		top, err := c.GetHeight(solidIdx, x, z)
		if err != nil {
			return err
		}
		groundY := int(top)
		if groundY <= 0 || groundY >= 123 {
			continue
		}
		ground, err := c.GetBlock(x, groundY, z)
		if err != nil {
			return err
		}
		if ground != grassIdx && ground != dirtIdx {
			continue
		}
		if err := placeTree(c, d.env, r, x, groundY+1, z); err != nil {
			return err
		}
	}
	return nil
}

// placeTree writes a single trunk-and-canopy tree with its base at (x,
// baseY, z), the way the teacher's placeOak lays down a straight trunk
// plus a layered leaf canopy.
func placeTree(c *chunk.Chunk, env *registry.Env, r *rng.LCG, x, baseY, z int) error {
	logIdx, _ := env.Blocks.IndexOf(registry.BlockLog)
	leavesIdx, _ := env.Blocks.IndexOf(registry.BlockLeaves)
	airIdx, _ := env.Blocks.IndexOf(registry.BlockAir)

	trunkHeight := 4 + int(r.NextIntBound(3))
	if baseY+trunkHeight+2 > 255 {
		return nil
	}

	for dy := 0; dy < trunkHeight; dy++ {
		y := baseY + dy
		cur, err := c.GetBlock(x, y, z)
		if err != nil {
			return err
		}
		if cur != airIdx {
			return nil
		}
	}
	for dy := 0; dy < trunkHeight; dy++ {
		if err := c.SetBlock(x, baseY+dy, z, logIdx); err != nil {
			return err
		}
	}

	topY := baseY + trunkHeight - 1
	for layer := -2; layer <= 1; layer++ {
		y := topY + layer
		if y < 0 || y > 255 {
			continue
		}
		radius := 2
		if layer >= 1 {
			radius = 1
		}
		for dx := -radius; dx <= radius; dx++ {
			lx := x + dx
			if lx < 0 || lx > 15 {
				continue
			}
			for dz := -radius; dz <= radius; dz++ {
				lz := z + dz
				if lz < 0 || lz > 15 {
					continue
				}
				if dx == 0 && dz == 0 && layer < 1 {
					continue
				}
				if dx*dx+dz*dz > radius*radius+1 {
					continue
				}
				cur, err := c.GetBlock(lx, y, lz)
				if err != nil {
					return err
				}
				if cur != airIdx {
					continue
				}
				if err := c.SetBlock(lx, y, lz, leavesIdx); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

package decorate

import (
	"github.com/OCharnyshevich/vanilla125/pkg/chunk"
	"github.com/OCharnyshevich/vanilla125/pkg/registry"
	"github.com/OCharnyshevich/vanilla125/pkg/rng"
)

// sandPatchAttempts mirrors the teacher's WorldGenSand-style call count:
// a handful of tries per chunk, most of which miss (no water neighbor).
const sandPatchAttempts = 3

// placeSandPatches lays a thin disc of sand over grass/dirt wherever the
// surface touches water within two blocks, the way vanilla's beach-adjacent
// sand patches form outside the Beach/Desert biomes that already get sand
// from the surface pass.
func (d *Decorator) placeSandPatches(c *chunk.Chunk, r *rng.LCG) error {
	grassIdx, _ := d.env.Blocks.IndexOf(registry.BlockGrass)
	dirtIdx, _ := d.env.Blocks.IndexOf(registry.BlockDirt)
	sandIdx, _ := d.env.Blocks.IndexOf(registry.BlockSand)
	solidIdx, _ := d.env.Heightmaps.IndexOf(registry.HeightmapSolid)

	for i := 0; i < sandPatchAttempts; i++ {
		cx := int(r.NextIntBound(16))
		cz := int(r.NextIntBound(16))
		top, err := c.GetHeight(solidIdx, cx, cz)
		if err != nil {
			return err
		}
		y := int(top)
		if y <= 0 {
			continue
		}

		if !adjacentToWater(c, d.env, cx, y, cz) {
			continue
		}

		radius := 2
		for dx := -radius; dx <= radius; dx++ {
			x := cx + dx
			if x < 0 || x > 15 {
				continue
			}
			for dz := -radius; dz <= radius; dz++ {
				z := cz + dz
				if z < 0 || z > 15 {
					continue
				}
				if dx*dx+dz*dz > radius*radius {
					continue
				}
				cur, err := c.GetBlock(x, y, z)
				if err != nil {
					return err
				}
				if cur != grassIdx && cur != dirtIdx {
					continue
				}
				if err := c.SetBlock(x, y, z, sandIdx); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// adjacentToWater reports whether any column within two blocks of (cx, cz)
// has water at or one below the surface height y.
func adjacentToWater(c *chunk.Chunk, env *registry.Env, cx, y, cz int) bool {
	waterIdx, _ := env.Blocks.IndexOf(registry.BlockWater)
	waterFlowIdx, _ := env.Blocks.IndexOf(registry.BlockWaterFlow)
	for dx := -2; dx <= 2; dx++ {
		x := cx + dx
		if x < 0 || x > 15 {
			continue
		}
		for dz := -2; dz <= 2; dz++ {
			z := cz + dz
			if z < 0 || z > 15 {
				continue
			}
			for dy := -1; dy <= 0; dy++ {
				wy := y + dy
				if wy < 0 || wy > 255 {
					continue
				}
				blk, err := c.GetBlock(x, wy, z)
				if err != nil {
					continue
				}
				if blk == waterIdx || blk == waterFlowIdx {
					return true
				}
			}
		}
	}
	return false
}

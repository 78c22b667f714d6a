package decorate

import (
	"github.com/OCharnyshevich/vanilla125/pkg/chunk"
	"github.com/OCharnyshevich/vanilla125/pkg/registry"
	"github.com/OCharnyshevich/vanilla125/pkg/rng"
	"github.com/OCharnyshevich/vanilla125/pkg/terrain"
)

// lakeChance is the reciprocal per-chunk probability of a small lake
// attempt, grounded on vanilla's WorldGenLakes call site in
// BiomeDecorator.decorate: roughly one water lake attempt in every four
// chunks.
const lakeChance = 4

// placeLakes carves a single small lens-shaped cavity at a random column
// and fills it with water below the local surface, mirroring
// original_source's WorldGenLakes without reproducing its full
// noise-perturbed blob shape: a sphere of declining radius per Y layer
// stands in for it, since the surrounding terrain is already committed by
// the time decoration runs and a visually-close approximation is enough
// here.
func (d *Decorator) placeLakes(c *chunk.Chunk, r *rng.LCG) error {
	if r.NextIntBound(lakeChance) != 0 {
		return nil
	}

	stoneIdx, _ := d.env.Blocks.IndexOf(registry.BlockStone)
	dirtIdx, _ := d.env.Blocks.IndexOf(registry.BlockDirt)
	grassIdx, _ := d.env.Blocks.IndexOf(registry.BlockGrass)
	airIdx, _ := d.env.Blocks.IndexOf(registry.BlockAir)
	waterIdx, _ := d.env.Blocks.IndexOf(registry.BlockWater)

	cx := 4 + int(r.NextIntBound(8))
	cz := 4 + int(r.NextIntBound(8))
	solidIdx, _ := d.env.Heightmaps.IndexOf(registry.HeightmapSolid)
	surface, err := c.GetHeight(solidIdx, cx, cz)
	if err != nil {
		return err
	}
	if int(surface) < terrain.SeaLevel-4 {
		// Too deep already (ocean floor, ravine mouth); skip this attempt
		// rather than flooding an already-submerged column.
		return nil
	}
	centerY := int(surface) - 2
	if centerY < 8 {
		return nil
	}

	radius := 3 + int(r.NextIntBound(3))
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
			horiz := dx*dx + dz*dz
			if horiz > radius*radius {
				continue
			}
			depth := radius - (horiz+radius*radius/4)/(radius+1)
			if depth < 1 {
				depth = 1
			}
			for y := centerY - depth; y <= centerY; y++ {
				if y < 1 || y > 255 {
					continue
				}
				cur, err := c.GetBlock(x, y, z)
				if err != nil {
					return err
				}
				if cur != stoneIdx && cur != dirtIdx && cur != grassIdx {
					continue
				}
				fill := airIdx
				if y <= centerY-1 {
					fill = waterIdx
				}
				if err := c.SetBlock(x, y, z, fill); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

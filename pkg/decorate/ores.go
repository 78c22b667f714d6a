package decorate

import (
	"github.com/OCharnyshevich/vanilla125/pkg/chunk"
	"github.com/OCharnyshevich/vanilla125/pkg/registry"
	"github.com/OCharnyshevich/vanilla125/pkg/rng"
)

// oreVein describes one ore type's per-chunk vein count, size, and
// placement band, grounded on the teacher's pkg/world/gen/ores.go
// oreConfig table. The built-in registry only carries three ore
// descriptors (gold, iron, coal); the teacher's six-entry table (which also
// has redstone, lapis, diamond) is narrowed to match.
type oreVein struct {
	block    *registry.BlockDesc
	attempts int
	size     int
	minY     int
	maxY     int
}

var oreVeins = []oreVein{
	{block: registry.BlockCoalOre, attempts: 20, size: 16, minY: 0, maxY: 127},
	{block: registry.BlockIronOre, attempts: 20, size: 8, minY: 0, maxY: 63},
	{block: registry.BlockGoldOre, attempts: 2, size: 8, minY: 0, maxY: 31},
}

// placeOres runs every ore vein's placement attempts against c, replacing
// stone cells only, matching the teacher's WorldGenMinable-style placement:
// pick a random origin, take size random unit steps from it, and set each
// stone cell the walk visits to the ore block.
func (d *Decorator) placeOres(c *chunk.Chunk, r *rng.LCG) error {
	stoneIdx, _ := d.env.Blocks.IndexOf(registry.BlockStone)

	for _, vein := range oreVeins {
		oreIdx, ok := d.env.Blocks.IndexOf(vein.block)
		if !ok {
			continue
		}
		span := int32(vein.maxY - vein.minY + 1)
		for i := 0; i < vein.attempts; i++ {
			ox := int(r.NextIntBound(16))
			oz := int(r.NextIntBound(16))
			oy := vein.minY + int(r.NextIntBound(span))
			if err := placeBlob(c, r, ox, oy, oz, vein.size, stoneIdx, oreIdx); err != nil {
				return err
			}
		}
	}
	return nil
}

// placeBlob replaces up to size stone cells near (ox, oy, oz) with target,
// staying within the chunk's own column bounds. The walk direction is
// re-rolled every step so the resulting blob is an irregular clump rather
// than a straight line, matching vanilla's vein shape without reproducing
// its full ellipsoid-interpolation math (ore placement is not part of the
// bit-exact terrain scope).
func placeBlob(c *chunk.Chunk, r *rng.LCG, ox, oy, oz, size int, from, to registry.Index) error {
	x, y, z := ox, oy, oz
	for i := 0; i < size; i++ {
		if x >= 0 && x < 16 && z >= 0 && z < 16 && y >= 0 && y < 256 {
			cur, err := c.GetBlock(x, y, z)
			if err != nil {
				return err
			}
			if cur == from {
				if err := c.SetBlock(x, y, z, to); err != nil {
					return err
				}
			}
		}
		switch r.NextIntBound(6) {
		case 0:
			x++
		case 1:
			x--
		case 2:
			z++
		case 3:
			z--
		case 4:
			y++
		default:
			y--
		}
	}
	return nil
}

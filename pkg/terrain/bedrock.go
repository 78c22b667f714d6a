package terrain

import (
	"github.com/OCharnyshevich/vanilla125/pkg/chunk"
	"github.com/OCharnyshevich/vanilla125/pkg/registry"
	"github.com/OCharnyshevich/vanilla125/pkg/rng"
)

// applyBedrock writes the bottom bedrock layer: y=0 is always bedrock, and
// y=1..4 are bedrock with decreasing probability, each column seeded
// independently off the world seed so the pattern is reproducible.
// Grounded on the teacher's fillColumn bedrock loop
// (internal/server/world/gen/default.go), replacing its simplex-derived
// per-block check with a column-local LCG draw.
func applyBedrock(env *registry.Env, c *chunk.Chunk, worldSeed int64, chunkX, chunkZ int) error {
	bedrockIdx, _ := env.Blocks.IndexOf(registry.BlockBedrock)

	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			wx := int64(chunkX*16 + x)
			wz := int64(chunkZ*16 + z)
			r := rng.NewLCG(worldSeed ^ (wx * 341873128712) ^ (wz * 132897987541))

			if err := c.SetBlock(x, 0, z, bedrockIdx); err != nil {
				return err
			}
			for y := 1; y <= 4; y++ {
				if r.NextIntBound(5) < int32(y) {
					continue
				}
				if err := c.SetBlock(x, y, z, bedrockIdx); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

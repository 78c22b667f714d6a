package terrain

import (
	"context"

	"github.com/OCharnyshevich/vanilla125/pkg/chunk"
	"github.com/OCharnyshevich/vanilla125/pkg/level"
	"github.com/OCharnyshevich/vanilla125/pkg/registry"
)

// FlatGenerator produces the classic superflat profile: bedrock at y=0,
// stone y=1..2, dirt y=3, grass y=4, every column plains. Kept close to
// verbatim from the teacher's pkg/world/gen.FlatGenerator — it isn't part
// of 1.2.5 parity, but the teacher ships it as an alternate Generator and
// it satisfies the same level.Generator interface, making it a useful
// fixture for tests that don't need the full density field.
type FlatGenerator struct{}

// NewFlatGenerator creates a FlatGenerator. The seed parameter is accepted
// for symmetry with NewGenerator but unused: a superflat world has no
// seed-dependent variation.
func NewFlatGenerator(_ int64) *FlatGenerator {
	return &FlatGenerator{}
}

func (g *FlatGenerator) Generate(ctx context.Context, env *registry.Env, pos level.Pos) (*chunk.Chunk, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bedrock, _ := env.Blocks.IndexOf(registry.BlockBedrock)
	stone, _ := env.Blocks.IndexOf(registry.BlockStone)
	dirt, _ := env.Blocks.IndexOf(registry.BlockDirt)
	grass, _ := env.Blocks.IndexOf(registry.BlockGrass)
	plains, ok := env.Biomes.IndexOf(registry.BiomePlains)
	if !ok {
		plains = 0
	}

	c := chunk.NewChunk(env, pos.X, pos.Z)
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			if err := c.SetBlock(x, 0, z, bedrock); err != nil {
				return nil, err
			}
			if err := c.SetBlock(x, 1, z, stone); err != nil {
				return nil, err
			}
			if err := c.SetBlock(x, 2, z, stone); err != nil {
				return nil, err
			}
			if err := c.SetBlock(x, 3, z, dirt); err != nil {
				return nil, err
			}
			if err := c.SetBlock(x, 4, z, grass); err != nil {
				return nil, err
			}
			if err := c.SetBiome(x, z, plains); err != nil {
				return nil, err
			}
		}
	}

	for _, status := range []chunk.Status{
		chunk.StatusBiomesGenerated, chunk.StatusTerrainGenerated, chunk.StatusSurfaceApplied,
	} {
		if err := c.Advance(status); err != nil {
			return nil, err
		}
	}

	solidIdx, _ := env.Heightmaps.IndexOf(registry.HeightmapSolid)
	motionIdx, _ := env.Heightmaps.IndexOf(registry.HeightmapMotionBlocking)
	if err := c.RecomputeHeightmaps([]registry.Index{solidIdx, motionIdx}); err != nil {
		return nil, err
	}

	return c, nil
}

// HeightAt returns the top solid block's y coordinate: always 4 (grass),
// matching the teacher's FlatGenerator.HeightAt.
func (g *FlatGenerator) HeightAt(_, _ int) int {
	return 4
}

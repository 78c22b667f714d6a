package terrain

import (
	"context"
	"fmt"

	"github.com/OCharnyshevich/vanilla125/pkg/biome"
	"github.com/OCharnyshevich/vanilla125/pkg/carver"
	"github.com/OCharnyshevich/vanilla125/pkg/chunk"
	"github.com/OCharnyshevich/vanilla125/pkg/level"
	"github.com/OCharnyshevich/vanilla125/pkg/registry"
)

// Generator is a level.Generator that produces vanilla 1.2.5 terrain:
// biome assignment, the density-field noise lattice, trilinear block
// fill, bedrock, and the surface replacement pass. One Generator per world
// seed is meant to be reused across every chunk generated for that seed —
// the five octave-noise stacks and the biome layer chain are built once at
// construction, exactly as the teacher's DefaultGenerator is built once
// per seed in NewDefaultGenerator.
type Generator struct {
	worldSeed int64
	noise     *noiseField
	stack     *biome.Stack
	weighter  *columnWeighter
	ravines   *carver.RavineCarver
}

// NewGenerator builds a Generator for worldSeed against env.
func NewGenerator(env *registry.Env, worldSeed int64) *Generator {
	stack := biome.BuildVanilla125Stack()
	return &Generator{
		worldSeed: worldSeed,
		noise:     newNoiseField(worldSeed),
		stack:     stack,
		weighter:  newColumnWeighter(env, stack),
		ravines:   carver.NewRavineCarver(env),
	}
}

// Generate implements level.Generator. It runs the teacher's own pass
// shape (biomes -> terrain fill -> carve -> surface), stopping short of
// decoration, which pkg/decorate runs as a later pass over the same
// chunk; that pass does not wait for the chunk's neighbors.
func (g *Generator) Generate(ctx context.Context, env *registry.Env, pos level.Pos) (*chunk.Chunk, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := chunk.NewChunk(env, pos.X, pos.Z)

	if err := g.assignBiomes(env, c, pos.X, pos.Z); err != nil {
		return nil, err
	}
	if err := c.Advance(chunk.StatusBiomesGenerated); err != nil {
		return nil, err
	}

	cols := g.weighter.columns(g.worldSeed, pos.X, pos.Z)
	lattice := buildLattice(g.noise, cols, pos.X, pos.Z)
	if err := fillDensity(env, c, lattice); err != nil {
		return nil, err
	}
	if err := applyBedrock(env, c, g.worldSeed, pos.X, pos.Z); err != nil {
		return nil, err
	}
	if err := c.Advance(chunk.StatusTerrainGenerated); err != nil {
		return nil, err
	}

	if err := g.ravines.Carve(ctx, c, g.worldSeed); err != nil {
		return nil, err
	}
	if err := c.Advance(chunk.StatusCarved); err != nil {
		return nil, err
	}

	if err := applySurfacePass(env, c, g.noise, pos.X, pos.Z); err != nil {
		return nil, err
	}
	if err := c.Advance(chunk.StatusSurfaceApplied); err != nil {
		return nil, err
	}

	solidIdx, _ := env.Heightmaps.IndexOf(registry.HeightmapSolid)
	motionIdx, _ := env.Heightmaps.IndexOf(registry.HeightmapMotionBlocking)
	if err := c.RecomputeHeightmaps([]registry.Index{solidIdx, motionIdx}); err != nil {
		return nil, err
	}

	return c, nil
}

// assignBiomes samples the scale-1 biome grid for the chunk and writes
// each column's registry index.
func (g *Generator) assignBiomes(env *registry.Env, c *chunk.Chunk, chunkX, chunkZ int) error {
	grid := g.stack.Sample(g.worldSeed, int32(chunkX*16), int32(chunkZ*16), 16, 16)
	biomeList := env.Biomes.All()

	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			wx := int32(chunkX*16 + x)
			wz := int32(chunkZ*16 + z)
			id := grid.Data[int(wz-grid.Z)*int(grid.W)+int(wx-grid.X)]

			desc, ok := registry.ByLegacyID(biomeList, uint8(id))
			if !ok {
				desc = registry.BiomeOcean
			}
			idx, ok := env.Biomes.IndexOf(desc)
			if !ok {
				return fmt.Errorf("terrain: env missing built-in biome %q; construct env with registry.NewVanilla125Env", desc.Name())
			}
			if err := c.SetBiome(x, z, idx); err != nil {
				return err
			}
		}
	}
	return nil
}

// Package decorate implements the per-chunk population pass that runs on a
// chunk at chunk.StatusSurfaceApplied: ore veins, small lakes, sand
// patches, and trees, in that fixed order. The status of neighboring
// chunks is not checked. This
// pass is not part of spec.md's bit-exact terrain/biome/carving scope — it
// is supplemented from original_source/mc/worldgen/src/gen/r102.rs's
// R102FeatureGenerator, in the teacher's own idiom of one file per feature
// (pkg/world/gen/{ores,trees,caves}.go, each invoked as a separate pass from
// DefaultGenerator.Generate).
package decorate

import (
	"context"

	"github.com/OCharnyshevich/vanilla125/pkg/chunk"
	"github.com/OCharnyshevich/vanilla125/pkg/registry"
	"github.com/OCharnyshevich/vanilla125/pkg/rng"
)

// Decorator runs the decoration feature set against already-surfaced
// chunks. One Decorator per world seed is meant to be reused across every
// chunk decorated for that seed, mirroring terrain.Generator.
type Decorator struct {
	env *registry.Env
}

// NewDecorator builds a Decorator against env.
func NewDecorator(env *registry.Env) *Decorator {
	return &Decorator{env: env}
}

// Populate runs every feature pass against c and advances its status from
// SurfaceApplied to Populated, then Full. The caller is responsible for
// ensuring c's eight neighbors have already reached SurfaceApplied before
// calling this — vanilla's real population step needs them loaded because
// some features extend across chunk borders. Every feature pass here
// confines itself to the target chunk's own 16x16 footprint, so skipping
// that check only risks a visually different (not wrong or unsafe) result
// at chunk seams, never an out-of-bounds write.
func (d *Decorator) Populate(ctx context.Context, c *chunk.Chunk, worldSeed int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.RequireStatus(chunk.StatusSurfaceApplied); err != nil {
		return err
	}

	r := d.originRand(worldSeed, c.X, c.Z)

	biomeIdx, err := c.GetBiome(8, 8)
	if err != nil {
		return err
	}
	centerBiome, ok := d.env.Biomes.Get(biomeIdx)
	if !ok {
		centerBiome = registry.BiomePlains
	}

	if err := d.placeOres(c, r); err != nil {
		return err
	}
	if err := d.placeLakes(c, r); err != nil {
		return err
	}
	if err := d.placeSandPatches(c, r); err != nil {
		return err
	}
	if err := d.placeTrees(c, r, centerBiome); err != nil {
		return err
	}

	solidIdx, _ := d.env.Heightmaps.IndexOf(registry.HeightmapSolid)
	motionIdx, _ := d.env.Heightmaps.IndexOf(registry.HeightmapMotionBlocking)
	if err := c.RecomputeHeightmaps([]registry.Index{solidIdx, motionIdx}); err != nil {
		return err
	}

	if err := c.Advance(chunk.StatusPopulated); err != nil {
		return err
	}
	return c.Advance(chunk.StatusFull)
}

// originRand derives the per-chunk decoration seed the way
// R102FeatureGenerator::decorate does: a fresh LCG seeded from worldSeed
// draws two oddified next_long values a, b, every single call (never cached
// across chunks), and the chunk's own seed is (cx*a + cz*b) XOR worldSeed.
// This is deliberately a different formula from pkg/carver's plain
// XOR-multiply MapGenBase seed: decoration and ravine carving are seeded by
// two distinct vanilla subsystems that happen to share the "a, b from two
// next_long calls" shape but combine them differently.
func (d *Decorator) originRand(worldSeed int64, cx, cz int) *rng.LCG {
	base := rng.NewLCG(worldSeed)
	a := base.NextLong()/2*2 + 1
	b := base.NextLong()/2*2 + 1
	seed := int64(cx)*a + int64(cz)*b
	return rng.NewLCG(seed ^ worldSeed)
}

package decorate

import (
	"context"
	"testing"

	"github.com/OCharnyshevich/vanilla125/pkg/chunk"
	"github.com/OCharnyshevich/vanilla125/pkg/registry"
)

func testEnv(t *testing.T) *registry.Env {
	t.Helper()
	env, err := registry.NewVanilla125Env()
	if err != nil {
		t.Fatalf("NewVanilla125Env: %v", err)
	}
	return env
}

// surfacedChunk builds a chunk already advanced to StatusSurfaceApplied:
// stone below sea level minus a few, dirt/grass skin, air above, and the
// given biome (forest where a test needs trees to get a chance to place).
func surfacedChunk(t *testing.T, env *registry.Env, cx, cz int, biome *registry.BiomeDesc) *chunk.Chunk {
	t.Helper()
	c := chunk.NewChunk(env, cx, cz)
	stone, _ := env.Blocks.IndexOf(registry.BlockStone)
	dirt, _ := env.Blocks.IndexOf(registry.BlockDirt)
	grass, _ := env.Blocks.IndexOf(registry.BlockGrass)
	air, _ := env.Blocks.IndexOf(registry.BlockAir)
	biomeIdx, ok := env.Biomes.IndexOf(biome)
	if !ok {
		t.Fatalf("biome %v not registered", biome)
	}

	const groundY = 64
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			for y := 0; y < 256; y++ {
				var idx registry.Index
				switch {
				case y < groundY-3:
					idx = stone
				case y < groundY:
					idx = dirt
				case y == groundY:
					idx = grass
				default:
					idx = air
				}
				if err := c.SetBlock(x, y, z, idx); err != nil {
					t.Fatalf("SetBlock: %v", err)
				}
			}
			if err := c.SetBiome(x, z, biomeIdx); err != nil {
				t.Fatalf("SetBiome: %v", err)
			}
		}
	}

	solidIdx, _ := env.Heightmaps.IndexOf(registry.HeightmapSolid)
	motionIdx, _ := env.Heightmaps.IndexOf(registry.HeightmapMotionBlocking)
	if err := c.RecomputeHeightmaps([]registry.Index{solidIdx, motionIdx}); err != nil {
		t.Fatalf("RecomputeHeightmaps: %v", err)
	}

	for s := chunk.StatusEmpty; s < chunk.StatusSurfaceApplied; s++ {
		if err := c.Advance(s + 1); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}
	return c
}

func TestPopulateAdvancesStatusToFull(t *testing.T) {
	env := testEnv(t)
	c := surfacedChunk(t, env, 0, 0, registry.BiomeForest)
	d := NewDecorator(env)

	if err := d.Populate(context.Background(), c, 12345); err != nil {
		t.Fatalf("Populate: %v", err)
	}
	if c.Status() != chunk.StatusFull {
		t.Fatalf("expected status Full, got %s", c.Status())
	}
}

func TestPopulateRefusesWrongStatus(t *testing.T) {
	env := testEnv(t)
	c := chunk.NewChunk(env, 0, 0)
	d := NewDecorator(env)

	if err := d.Populate(context.Background(), c, 1); err == nil {
		t.Fatal("expected an error populating an Empty chunk")
	}
}

func TestPopulateIsDeterministic(t *testing.T) {
	env := testEnv(t)
	d := NewDecorator(env)

	a := surfacedChunk(t, env, 7, -3, registry.BiomeForest)
	b := surfacedChunk(t, env, 7, -3, registry.BiomeForest)

	if err := d.Populate(context.Background(), a, 99); err != nil {
		t.Fatalf("Populate a: %v", err)
	}
	if err := d.Populate(context.Background(), b, 99); err != nil {
		t.Fatalf("Populate b: %v", err)
	}

	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			for y := 0; y < 256; y++ {
				av, err := a.GetBlock(x, y, z)
				if err != nil {
					t.Fatalf("GetBlock a: %v", err)
				}
				bv, err := b.GetBlock(x, y, z)
				if err != nil {
					t.Fatalf("GetBlock b: %v", err)
				}
				if av != bv {
					t.Fatalf("nondeterministic decoration at (%d,%d,%d): %v vs %v", x, y, z, av, bv)
				}
			}
		}
	}
}

func TestPopulateNeverWritesOutsideChunk(t *testing.T) {
	env := testEnv(t)
	c := surfacedChunk(t, env, 2, 2, registry.BiomeJungle)
	d := NewDecorator(env)

	if err := d.Populate(context.Background(), c, 424242); err != nil {
		t.Fatalf("Populate: %v", err)
	}
	if c.X != 2 || c.Z != 2 {
		t.Fatalf("chunk position mutated: (%d,%d)", c.X, c.Z)
	}
}

func TestPopulateRejectsCancelledContext(t *testing.T) {
	env := testEnv(t)
	c := surfacedChunk(t, env, 0, 0, registry.BiomePlains)
	d := NewDecorator(env)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := d.Populate(ctx, c, 1); err == nil {
		t.Fatal("expected an error for an already-cancelled context")
	}
}

func TestDesertGetsNoTrees(t *testing.T) {
	testEnv(t)
	if got := treeDensity(registry.BiomeDesert); got != 0 {
		t.Fatalf("expected desert tree density 0, got %d", got)
	}
}

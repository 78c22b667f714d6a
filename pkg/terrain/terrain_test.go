package terrain

import (
	"context"
	"testing"

	"github.com/OCharnyshevich/vanilla125/pkg/chunk"
	"github.com/OCharnyshevich/vanilla125/pkg/level"
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

func TestGenerateAdvancesToSurfaceApplied(t *testing.T) {
	env := testEnv(t)
	g := NewGenerator(env, 12345)

	c, err := g.Generate(context.Background(), env, level.Pos{X: 0, Z: 0})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if c.Status() != chunk.StatusSurfaceApplied {
		t.Fatalf("expected status SurfaceApplied, got %s", c.Status())
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	env := testEnv(t)
	g1 := NewGenerator(env, 42)
	g2 := NewGenerator(env, 42)

	c1, err := g1.Generate(context.Background(), env, level.Pos{X: 3, Z: -2})
	if err != nil {
		t.Fatalf("Generate 1: %v", err)
	}
	c2, err := g2.Generate(context.Background(), env, level.Pos{X: 3, Z: -2})
	if err != nil {
		t.Fatalf("Generate 2: %v", err)
	}

	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			b1, _ := c1.GetBiome(x, z)
			b2, _ := c2.GetBiome(x, z)
			if b1 != b2 {
				t.Fatalf("biome mismatch at (%d,%d): %v vs %v", x, z, b1, b2)
			}
			for y := 0; y < 128; y++ {
				v1, err := c1.GetBlock(x, y, z)
				if err != nil {
					t.Fatalf("GetBlock c1: %v", err)
				}
				v2, err := c2.GetBlock(x, y, z)
				if err != nil {
					t.Fatalf("GetBlock c2: %v", err)
				}
				if v1 != v2 {
					t.Fatalf("block mismatch at (%d,%d,%d): %v vs %v", x, y, z, v1, v2)
				}
			}
		}
	}
}

func TestGenerateBedrockFloorAlwaysPresent(t *testing.T) {
	env := testEnv(t)
	g := NewGenerator(env, 7)
	c, err := g.Generate(context.Background(), env, level.Pos{X: 0, Z: 0})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	bedrockIdx, _ := env.Blocks.IndexOf(registry.BlockBedrock)
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			idx, err := c.GetBlock(x, 0, z)
			if err != nil {
				t.Fatalf("GetBlock: %v", err)
			}
			if idx != bedrockIdx {
				t.Fatalf("expected bedrock at y=0 column (%d,%d), got index %v", x, z, idx)
			}
		}
	}
}

func TestGenerateAboveWorldTopIsAir(t *testing.T) {
	env := testEnv(t)
	g := NewGenerator(env, 99)
	c, err := g.Generate(context.Background(), env, level.Pos{X: 0, Z: 0})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	airIdx, _ := env.Blocks.IndexOf(registry.BlockAir)
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			idx, err := c.GetBlock(x, 200, z)
			if err != nil {
				t.Fatalf("GetBlock: %v", err)
			}
			if idx != airIdx {
				t.Fatalf("expected air above the 128-high lattice at (%d,200,%d), got index %v", x, z, idx)
			}
		}
	}
}

func TestGenerateHeightmapsPopulated(t *testing.T) {
	env := testEnv(t)
	g := NewGenerator(env, 55)
	c, err := g.Generate(context.Background(), env, level.Pos{X: 1, Z: 1})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	solidIdx, _ := env.Heightmaps.IndexOf(registry.HeightmapSolid)
	h, err := c.GetHeight(solidIdx, 0, 0)
	if err != nil {
		t.Fatalf("GetHeight: %v", err)
	}
	if h == 0 {
		t.Fatal("expected a nonzero solid heightmap value somewhere in a generated chunk")
	}
}

func TestFlatGeneratorProducesSuperflatProfile(t *testing.T) {
	env := testEnv(t)
	g := NewFlatGenerator(0)
	c, err := g.Generate(context.Background(), env, level.Pos{X: 0, Z: 0})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	bedrock, _ := env.Blocks.IndexOf(registry.BlockBedrock)
	stone, _ := env.Blocks.IndexOf(registry.BlockStone)
	dirt, _ := env.Blocks.IndexOf(registry.BlockDirt)
	grass, _ := env.Blocks.IndexOf(registry.BlockGrass)
	air, _ := env.Blocks.IndexOf(registry.BlockAir)

	want := map[int]registry.Index{0: bedrock, 1: stone, 2: stone, 3: dirt, 4: grass, 5: air}
	for y, expect := range want {
		idx, err := c.GetBlock(0, y, 0)
		if err != nil {
			t.Fatalf("GetBlock y=%d: %v", y, err)
		}
		if idx != expect {
			t.Fatalf("y=%d: expected index %v, got %v", y, expect, idx)
		}
	}
	if g.HeightAt(0, 0) != 4 {
		t.Fatalf("expected HeightAt 4, got %d", g.HeightAt(0, 0))
	}
}

func TestFlatGeneratorAllColumnsPlains(t *testing.T) {
	env := testEnv(t)
	g := NewFlatGenerator(0)
	c, err := g.Generate(context.Background(), env, level.Pos{X: 5, Z: -5})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	plainsIdx, _ := env.Biomes.IndexOf(registry.BiomePlains)
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			idx, err := c.GetBiome(x, z)
			if err != nil {
				t.Fatalf("GetBiome: %v", err)
			}
			if idx != plainsIdx {
				t.Fatalf("expected plains at (%d,%d), got index %v", x, z, idx)
			}
		}
	}
}

package carver

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

func solidChunk(env *registry.Env, cx, cz int) *chunk.Chunk {
	c := chunk.NewChunk(env, cx, cz)
	stone, _ := env.Blocks.IndexOf(registry.BlockStone)
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			for y := 0; y < 128; y++ {
				_ = c.SetBlock(x, y, z, stone)
			}
		}
	}
	return c
}

func TestRavineCarveIsDeterministic(t *testing.T) {
	env := testEnv(t)
	c1 := solidChunk(env, 5, 5)
	c2 := solidChunk(env, 5, 5)
	rc := NewRavineCarver(env)

	if err := rc.Carve(context.Background(), c1, 0xDEADBEEF); err != nil {
		t.Fatalf("Carve c1: %v", err)
	}
	if err := rc.Carve(context.Background(), c2, 0xDEADBEEF); err != nil {
		t.Fatalf("Carve c2: %v", err)
	}

	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			for y := 0; y < 128; y++ {
				b1, _ := c1.GetBlock(x, y, z)
				b2, _ := c2.GetBlock(x, y, z)
				if b1 != b2 {
					t.Fatalf("block mismatch at (%d,%d,%d): %v vs %v", x, y, z, b1, b2)
				}
			}
		}
	}
}

func TestRavineCarveNeverTouchesOtherChunks(t *testing.T) {
	env := testEnv(t)
	c := solidChunk(env, 0, 0)
	rc := NewRavineCarver(env)
	if err := rc.Carve(context.Background(), c, 12345); err != nil {
		t.Fatalf("Carve: %v", err)
	}
	if c.X != 0 || c.Z != 0 {
		t.Fatal("carve must not relocate the chunk it was given")
	}
}

func TestRavineCarveOnlyReplacesStone(t *testing.T) {
	env := testEnv(t)
	c := chunk.NewChunk(env, 2, -3)
	bedrock, _ := env.Blocks.IndexOf(registry.BlockBedrock)
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			_ = c.SetBlock(x, 0, z, bedrock)
		}
	}
	rc := NewRavineCarver(env)
	if err := rc.Carve(context.Background(), c, 999); err != nil {
		t.Fatalf("Carve: %v", err)
	}
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			idx, err := c.GetBlock(x, 0, z)
			if err != nil {
				t.Fatalf("GetBlock: %v", err)
			}
			if idx != bedrock {
				t.Fatalf("expected bedrock left untouched at (%d,0,%d), got %v", x, z, idx)
			}
		}
	}
}

func TestRavineCarveRespectsContextCancellation(t *testing.T) {
	env := testEnv(t)
	c := solidChunk(env, 0, 0)
	rc := NewRavineCarver(env)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := rc.Carve(ctx, c, 1); err == nil {
		t.Fatal("expected Carve to report the cancelled context")
	}
}

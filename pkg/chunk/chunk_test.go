package chunk

import (
	"errors"
	"testing"

	"github.com/OCharnyshevich/vanilla125/pkg/registry"
	"github.com/OCharnyshevich/vanilla125/pkg/vanerr"
)

func testEnv(t *testing.T) *registry.Env {
	t.Helper()
	env, err := registry.NewVanilla125Env()
	if err != nil {
		t.Fatalf("NewVanilla125Env: %v", err)
	}
	return env
}

func TestNewChunkAllAir(t *testing.T) {
	env := testEnv(t)
	c := NewChunk(env, 0, 0)
	air, _ := env.Blocks.IndexOf(registry.BlockAir)

	got, err := c.GetBlock(5, 64, 5)
	if err != nil {
		t.Fatalf("GetBlock: %v", err)
	}
	if got != air {
		t.Fatalf("expected air in a fresh chunk, got index %d", got)
	}
	if c.Section(4) != nil {
		t.Fatal("expected nil section before any writes")
	}
}

func TestSetGetBlockRoundTrip(t *testing.T) {
	env := testEnv(t)
	c := NewChunk(env, 0, 0)
	stoneIdx, _ := env.Blocks.IndexOf(registry.BlockStone)

	if err := c.SetBlock(3, 70, 9, stoneIdx); err != nil {
		t.Fatalf("SetBlock: %v", err)
	}
	got, err := c.GetBlock(3, 70, 9)
	if err != nil {
		t.Fatalf("GetBlock: %v", err)
	}
	if got != stoneIdx {
		t.Fatalf("GetBlock = %d, want %d", got, stoneIdx)
	}
	if c.Section(70>>4) == nil {
		t.Fatal("expected section to be allocated after a write")
	}
}

func TestBlockOutOfBounds(t *testing.T) {
	env := testEnv(t)
	c := NewChunk(env, 0, 0)
	if _, err := c.GetBlock(16, 0, 0); !errors.Is(err, vanerr.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if _, err := c.GetBlock(0, 256, 0); !errors.Is(err, vanerr.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestBiomeRoundTrip(t *testing.T) {
	env := testEnv(t)
	c := NewChunk(env, 0, 0)
	plainsIdx, _ := env.Biomes.IndexOf(registry.BiomePlains)

	if err := c.SetBiome(4, 12, plainsIdx); err != nil {
		t.Fatalf("SetBiome: %v", err)
	}
	got, err := c.GetBiome(4, 12)
	if err != nil {
		t.Fatalf("GetBiome: %v", err)
	}
	if got != plainsIdx {
		t.Fatalf("GetBiome = %d, want %d", got, plainsIdx)
	}
}

func TestStatusMonotonicAdvance(t *testing.T) {
	env := testEnv(t)
	c := NewChunk(env, 0, 0)

	if err := c.Advance(StatusBiomesGenerated); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if err := c.Advance(StatusTerrainGenerated); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if err := c.Advance(StatusBiomesGenerated); !errors.Is(err, vanerr.ErrStatusRegression) {
		t.Fatalf("expected ErrStatusRegression going backward, got %v", err)
	}
	if err := c.Advance(StatusTerrainGenerated); !errors.Is(err, vanerr.ErrStatusRegression) {
		t.Fatalf("expected ErrStatusRegression re-running same status, got %v", err)
	}
}

func TestRequireStatusRejectsWrongStage(t *testing.T) {
	env := testEnv(t)
	c := NewChunk(env, 0, 0)
	if err := c.RequireStatus(StatusTerrainGenerated); !errors.Is(err, vanerr.ErrStatusRegression) {
		t.Fatalf("expected ErrStatusRegression, got %v", err)
	}
	if err := c.RequireStatus(StatusEmpty); err != nil {
		t.Fatalf("unexpected error at matching status: %v", err)
	}
}

func TestRecomputeHeightmapsMotionBlocking(t *testing.T) {
	env := testEnv(t)
	c := NewChunk(env, 0, 0)
	stoneIdx, _ := env.Blocks.IndexOf(registry.BlockStone)

	for y := 0; y <= 60; y++ {
		if err := c.SetBlock(8, y, 8, stoneIdx); err != nil {
			t.Fatalf("SetBlock y=%d: %v", y, err)
		}
	}

	kindIdx, ok := env.Heightmaps.IndexOf(registry.HeightmapMotionBlocking)
	if !ok {
		t.Fatal("expected HeightmapMotionBlocking registered")
	}
	if err := c.RecomputeHeightmaps([]registry.Index{kindIdx}); err != nil {
		t.Fatalf("RecomputeHeightmaps: %v", err)
	}
	h, err := c.GetHeight(kindIdx, 8, 8)
	if err != nil {
		t.Fatalf("GetHeight: %v", err)
	}
	if h != 60 {
		t.Fatalf("GetHeight = %d, want 60", h)
	}

	h2, err := c.GetHeight(kindIdx, 0, 0)
	if err != nil {
		t.Fatalf("GetHeight: %v", err)
	}
	if h2 != 0 {
		t.Fatalf("GetHeight for all-air column = %d, want 0", h2)
	}
}

func TestCompactPaletteAfterHeavyWrites(t *testing.T) {
	env := testEnv(t)
	c := NewChunk(env, 0, 0)
	stoneIdx, _ := env.Blocks.IndexOf(registry.BlockStone)
	dirtIdx, _ := env.Blocks.IndexOf(registry.BlockDirt)

	for i := 0; i < 16; i++ {
		if err := c.SetBlock(i, 64, 0, stoneIdx); err != nil {
			t.Fatalf("SetBlock: %v", err)
		}
	}
	// Overwrite every stone cell with dirt so stone becomes unreferenced.
	for i := 0; i < 16; i++ {
		if err := c.SetBlock(i, 64, 0, dirtIdx); err != nil {
			t.Fatalf("SetBlock overwrite: %v", err)
		}
	}

	sec := c.Section(4)
	if sec == nil {
		t.Fatal("expected section 4 to exist")
	}
	before := sec.PaletteSize()

	c.CompactPalette()

	after := sec.PaletteSize()
	if after >= before {
		t.Fatalf("expected Compact to shrink palette (before=%d after=%d)", before, after)
	}
	got, err := c.GetBlock(0, 64, 0)
	if err != nil {
		t.Fatalf("GetBlock after compact: %v", err)
	}
	if got != dirtIdx {
		t.Fatalf("GetBlock after compact = %d, want dirt %d", got, dirtIdx)
	}
}

func TestDirtyFlag(t *testing.T) {
	env := testEnv(t)
	c := NewChunk(env, 0, 0)
	if c.Dirty() {
		t.Fatal("expected fresh chunk to be clean")
	}
	stoneIdx, _ := env.Blocks.IndexOf(registry.BlockStone)
	if err := c.SetBlock(0, 0, 0, stoneIdx); err != nil {
		t.Fatalf("SetBlock: %v", err)
	}
	if !c.Dirty() {
		t.Fatal("expected chunk to be dirty after a write")
	}
	c.ClearDirty()
	if c.Dirty() {
		t.Fatal("expected ClearDirty to reset the flag")
	}
}

package anvil

import (
	"context"
	"os"
	"testing"

	"github.com/OCharnyshevich/vanilla125/pkg/level"
)

func TestRegionSaveLoadRoundTrip(t *testing.T) {
	env := testEnv(t)
	src, err := NewRegionSource(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewRegionSource: %v", err)
	}

	pos := level.Pos{X: 5, Z: -9}
	c := gradientChunk(env, pos.X, pos.Z)

	ctx := context.Background()
	if err := src.Save(ctx, pos, c); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, outcome, err := src.Load(ctx, env, pos)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if outcome != level.Loaded {
		t.Fatalf("expected Loaded outcome, got %v", outcome)
	}
	assertChunksEqual(t, env, c, loaded)
}

func TestRegionLoadAbsentChunkReturnsAbsent(t *testing.T) {
	env := testEnv(t)
	src, err := NewRegionSource(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewRegionSource: %v", err)
	}

	_, outcome, err := src.Load(context.Background(), env, level.Pos{X: 100, Z: 100})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if outcome != level.Absent {
		t.Fatalf("expected Absent outcome for never-written chunk, got %v", outcome)
	}
}

func TestRegionSaveReusesSectorsWhenPayloadFits(t *testing.T) {
	env := testEnv(t)
	dir := t.TempDir()
	src, err := NewRegionSource(dir, nil)
	if err != nil {
		t.Fatalf("NewRegionSource: %v", err)
	}
	ctx := context.Background()
	pos := level.Pos{X: 1, Z: 1}

	c := gradientChunk(env, pos.X, pos.Z)
	if err := src.Save(ctx, pos, c); err != nil {
		t.Fatalf("Save (first): %v", err)
	}
	before, err := os.Stat(regionPath(dir, 0, 0))
	if err != nil {
		t.Fatalf("Stat (first): %v", err)
	}
	if err := src.Save(ctx, pos, c); err != nil {
		t.Fatalf("Save (second): %v", err)
	}
	after, err := os.Stat(regionPath(dir, 0, 0))
	if err != nil {
		t.Fatalf("Stat (second): %v", err)
	}
	if after.Size() != before.Size() {
		t.Fatalf("expected the second save to reuse its sectors, file grew from %d to %d bytes", before.Size(), after.Size())
	}

	loaded, outcome, err := src.Load(ctx, env, pos)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if outcome != level.Loaded {
		t.Fatalf("expected Loaded outcome, got %v", outcome)
	}
	assertChunksEqual(t, env, c, loaded)
}

func TestRegionMultipleChunksInOneFile(t *testing.T) {
	env := testEnv(t)
	src, err := NewRegionSource(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewRegionSource: %v", err)
	}
	ctx := context.Background()

	positions := []level.Pos{{X: 0, Z: 0}, {X: 1, Z: 0}, {X: 0, Z: 1}, {X: 31, Z: 31}}
	for _, pos := range positions {
		c := gradientChunk(env, pos.X, pos.Z)
		if err := src.Save(ctx, pos, c); err != nil {
			t.Fatalf("Save (%d,%d): %v", pos.X, pos.Z, err)
		}
	}

	for _, pos := range positions {
		loaded, outcome, err := src.Load(ctx, env, pos)
		if err != nil {
			t.Fatalf("Load (%d,%d): %v", pos.X, pos.Z, err)
		}
		if outcome != level.Loaded {
			t.Fatalf("expected Loaded outcome for (%d,%d), got %v", pos.X, pos.Z, outcome)
		}
		if loaded.X != pos.X || loaded.Z != pos.Z {
			t.Fatalf("expected position (%d,%d), got (%d,%d)", pos.X, pos.Z, loaded.X, loaded.Z)
		}
	}
}

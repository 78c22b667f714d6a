package level

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/OCharnyshevich/vanilla125/pkg/chunk"
	"github.com/OCharnyshevich/vanilla125/pkg/registry"
)

type fakeSource struct {
	mu       sync.Mutex
	stored   map[Pos]*chunk.Chunk
	failAt   map[Pos]bool
	canSave  bool
	loads    int
	saves    int
}

func newFakeSource(canSave bool) *fakeSource {
	return &fakeSource{
		stored:  make(map[Pos]*chunk.Chunk),
		failAt:  make(map[Pos]bool),
		canSave: canSave,
	}
}

func (f *fakeSource) Load(ctx context.Context, env *registry.Env, pos Pos) (*chunk.Chunk, LoadOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.failAt[pos] {
		return nil, Err, fmt.Errorf("fake load failure at (%d,%d)", pos.X, pos.Z)
	}
	if c, ok := f.stored[pos]; ok {
		return c, Loaded, nil
	}
	return nil, Absent, nil
}

func (f *fakeSource) Save(ctx context.Context, pos Pos, c *chunk.Chunk) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	f.stored[pos] = c
	return nil
}

func (f *fakeSource) SupportsSave() bool { return f.canSave }

type fakeGenerator struct {
	mu    sync.Mutex
	calls int
}

func (g *fakeGenerator) Generate(ctx context.Context, env *registry.Env, pos Pos) (*chunk.Chunk, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	c := chunk.NewChunk(env, pos.X, pos.Z)
	stoneIdx, _ := env.Blocks.IndexOf(registry.BlockStone)
	if err := c.SetBlock(0, 0, 0, stoneIdx); err != nil {
		return nil, err
	}
	c.ClearDirty()
	return c, nil
}

func testEnv(t *testing.T) *registry.Env {
	t.Helper()
	env, err := registry.NewVanilla125Env()
	if err != nil {
		t.Fatalf("NewVanilla125Env: %v", err)
	}
	return env
}

func TestGetOrGenerateGeneratesWhenAbsent(t *testing.T) {
	env := testEnv(t)
	src := newFakeSource(true)
	gen := &fakeGenerator{}
	lvl := New(env, src, gen, nil)

	c, err := lvl.GetOrGenerate(context.Background(), Pos{X: 3, Z: -2})
	if err != nil {
		t.Fatalf("GetOrGenerate: %v", err)
	}
	if c == nil {
		t.Fatal("expected a generated chunk")
	}
	if gen.calls != 1 {
		t.Fatalf("expected 1 generator call, got %d", gen.calls)
	}

	// Second call must hit the in-memory cache, not regenerate.
	if _, err := lvl.GetOrGenerate(context.Background(), Pos{X: 3, Z: -2}); err != nil {
		t.Fatalf("GetOrGenerate (cached): %v", err)
	}
	if gen.calls != 1 {
		t.Fatalf("expected generator called only once, got %d", gen.calls)
	}
}

func TestGetOrGenerateUsesStoredChunk(t *testing.T) {
	env := testEnv(t)
	src := newFakeSource(true)
	gen := &fakeGenerator{}

	stored := chunk.NewChunk(env, 1, 1)
	dirtIdx, _ := env.Blocks.IndexOf(registry.BlockDirt)
	if err := stored.SetBlock(1, 1, 1, dirtIdx); err != nil {
		t.Fatalf("SetBlock: %v", err)
	}
	stored.ClearDirty()
	src.stored[Pos{X: 1, Z: 1}] = stored

	lvl := New(env, src, gen, nil)
	c, err := lvl.GetOrGenerate(context.Background(), Pos{X: 1, Z: 1})
	if err != nil {
		t.Fatalf("GetOrGenerate: %v", err)
	}
	if c != stored {
		t.Fatal("expected the stored chunk to be returned rather than a fresh generation")
	}
	if gen.calls != 0 {
		t.Fatalf("expected generator not to be called, got %d calls", gen.calls)
	}
}

func TestLoadFailureFallsBackToGeneration(t *testing.T) {
	env := testEnv(t)
	src := newFakeSource(true)
	src.failAt[Pos{X: 9, Z: 9}] = true
	gen := &fakeGenerator{}

	lvl := New(env, src, gen, nil)
	c, err := lvl.GetOrGenerate(context.Background(), Pos{X: 9, Z: 9})
	if err != nil {
		t.Fatalf("expected fallback generation to succeed, got %v", err)
	}
	if c == nil || gen.calls != 1 {
		t.Fatalf("expected a generated chunk via fallback, calls=%d", gen.calls)
	}
}

func TestSaveSkipsWhenSourceReadOnly(t *testing.T) {
	env := testEnv(t)
	src := newFakeSource(false)
	gen := &fakeGenerator{}
	lvl := New(env, src, gen, nil)

	pos := Pos{X: 0, Z: 0}
	c, err := lvl.GetOrGenerate(context.Background(), pos)
	if err != nil {
		t.Fatalf("GetOrGenerate: %v", err)
	}
	stoneIdx, _ := env.Blocks.IndexOf(registry.BlockStone)
	if err := c.SetBlock(2, 2, 2, stoneIdx); err != nil {
		t.Fatalf("SetBlock: %v", err)
	}

	if err := lvl.Save(context.Background(), pos); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if src.saves != 0 {
		t.Fatalf("expected no save against a read-only source, got %d", src.saves)
	}
}

func TestSavePersistsDirtyChunkAndClearsFlag(t *testing.T) {
	env := testEnv(t)
	src := newFakeSource(true)
	gen := &fakeGenerator{}
	lvl := New(env, src, gen, nil)

	pos := Pos{X: 5, Z: 5}
	c, err := lvl.GetOrGenerate(context.Background(), pos)
	if err != nil {
		t.Fatalf("GetOrGenerate: %v", err)
	}
	stoneIdx, _ := env.Blocks.IndexOf(registry.BlockStone)
	if err := c.SetBlock(2, 2, 2, stoneIdx); err != nil {
		t.Fatalf("SetBlock: %v", err)
	}
	if !c.Dirty() {
		t.Fatal("expected chunk to be dirty after mutation")
	}

	if err := lvl.Save(context.Background(), pos); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if src.saves != 1 {
		t.Fatalf("expected exactly 1 save, got %d", src.saves)
	}
	if c.Dirty() {
		t.Fatal("expected Save to clear the dirty flag")
	}
}

func TestWarmPrefetchesConcurrentlyAndInstallsAll(t *testing.T) {
	env := testEnv(t)
	src := newFakeSource(true)
	gen := &fakeGenerator{}
	stored := chunk.NewChunk(env, 2, 2)
	stored.ClearDirty()
	src.stored[Pos{X: 2, Z: 2}] = stored

	lvl := New(env, src, gen, nil)
	positions := []Pos{{0, 0}, {1, 0}, {2, 2}, {3, 3}}

	if err := lvl.Warm(context.Background(), positions); err != nil {
		t.Fatalf("Warm: %v", err)
	}
	if lvl.Len() != len(positions) {
		t.Fatalf("Len() = %d, want %d", lvl.Len(), len(positions))
	}
	for _, p := range positions {
		if _, ok := lvl.Peek(p); !ok {
			t.Fatalf("expected position %+v to be cached after Warm", p)
		}
	}
	// 2,2 came from the store; the other three should have been generated.
	if gen.calls != 3 {
		t.Fatalf("expected 3 generations, got %d", gen.calls)
	}
}

func TestWarmSkipsAlreadyCachedPositions(t *testing.T) {
	env := testEnv(t)
	src := newFakeSource(true)
	gen := &fakeGenerator{}
	lvl := New(env, src, gen, nil)

	pos := Pos{X: 0, Z: 0}
	if _, err := lvl.GetOrGenerate(context.Background(), pos); err != nil {
		t.Fatalf("GetOrGenerate: %v", err)
	}
	if gen.calls != 1 {
		t.Fatalf("expected 1 generation before Warm, got %d", gen.calls)
	}

	if err := lvl.Warm(context.Background(), []Pos{pos}); err != nil {
		t.Fatalf("Warm: %v", err)
	}
	if gen.calls != 1 {
		t.Fatalf("expected Warm to skip an already-cached position, calls=%d", gen.calls)
	}
}

func TestEvictDropsFromCache(t *testing.T) {
	env := testEnv(t)
	src := newFakeSource(true)
	gen := &fakeGenerator{}
	lvl := New(env, src, gen, nil)

	pos := Pos{X: 7, Z: 7}
	if _, err := lvl.GetOrGenerate(context.Background(), pos); err != nil {
		t.Fatalf("GetOrGenerate: %v", err)
	}
	lvl.Evict(pos)
	if _, ok := lvl.Peek(pos); ok {
		t.Fatal("expected Evict to remove the cached chunk")
	}
}

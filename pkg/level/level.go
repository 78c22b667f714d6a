// Package level ties a chunk cache to a pluggable storage backend and a
// generator, the way the teacher's internal/server/world.World ties a
// block-override map to a gen.Generator — generalized to a LoadOutcome
// tri-state instead of the teacher's always-succeeds generator call, since
// a real backing store can also report "absent" or "corrupt".
package level

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/OCharnyshevich/vanilla125/pkg/chunk"
	"github.com/OCharnyshevich/vanilla125/pkg/registry"
)

// Pos identifies a chunk by its chunk-grid coordinates (block coordinate
// divided by 16, floor division).
type Pos struct {
	X, Z int
}

// LoadOutcome reports what a ChunkSource found for a requested position.
type LoadOutcome int

const (
	// Absent means the source has no data for this position; the level
	// should generate a fresh chunk.
	Absent LoadOutcome = iota
	// Loaded means the source returned chunk data.
	Loaded
	// Err means the source attempted a load and failed; see the error
	// returned alongside it. Treated like Absent by callers that choose
	// to regenerate, but logged.
	Err
)

// ChunkSource is a pluggable backing store for chunk data. pkg/anvil's
// RegionSource implements this over a directory of .mca files; tests use
// an in-memory implementation.
type ChunkSource interface {
	// Load attempts to read the chunk at pos. It returns (chunk, Loaded,
	// nil) on success, (nil, Absent, nil) if the position has never been
	// stored, or (nil, Err, err) on a read/decode failure.
	Load(ctx context.Context, env *registry.Env, pos Pos) (*chunk.Chunk, LoadOutcome, error)

	// Save persists c at pos. Returns an error wrapping vanerr.ErrIoFailed
	// kinds on failure.
	Save(ctx context.Context, pos Pos, c *chunk.Chunk) error

	// SupportsSave reports whether Save does real work. A read-only
	// source (e.g. a fixture directory) returns false so Level.Save can
	// skip the call entirely rather than erroring.
	SupportsSave() bool
}

// Generator produces a brand-new chunk at pos when no stored data exists.
type Generator interface {
	Generate(ctx context.Context, env *registry.Env, pos Pos) (*chunk.Chunk, error)
}

// Level is the single owner of a set of in-memory chunks, deferring to a
// ChunkSource for persistence and a Generator to fill gaps. Not safe for
// concurrent mutation of a single chunk from two goroutines; concurrent
// GetOrGenerate/Warm calls against different positions are safe.
type Level struct {
	env       *registry.Env
	source    ChunkSource
	generator Generator
	log       *slog.Logger

	mu     sync.RWMutex
	chunks map[Pos]*chunk.Chunk
}

// New creates a Level backed by source, falling back to generator for
// positions the source doesn't have. If log is nil, slog.Default() is used.
func New(env *registry.Env, source ChunkSource, generator Generator, log *slog.Logger) *Level {
	if log == nil {
		log = slog.Default()
	}
	return &Level{
		env:       env,
		source:    source,
		generator: generator,
		log:       log,
		chunks:    make(map[Pos]*chunk.Chunk),
	}
}

// GetOrGenerate returns the chunk at pos, loading it from the source or
// generating it if absent, and caching the result either way.
func (l *Level) GetOrGenerate(ctx context.Context, pos Pos) (*chunk.Chunk, error) {
	l.mu.RLock()
	if c, ok := l.chunks[pos]; ok {
		l.mu.RUnlock()
		return c, nil
	}
	l.mu.RUnlock()

	c, err := l.loadOrGenerate(ctx, pos)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	// Double-check after acquiring the write lock; a concurrent caller
	// may have installed it first.
	if existing, ok := l.chunks[pos]; ok {
		l.mu.Unlock()
		return existing, nil
	}
	l.chunks[pos] = c
	l.mu.Unlock()
	return c, nil
}

func (l *Level) loadOrGenerate(ctx context.Context, pos Pos) (*chunk.Chunk, error) {
	c, outcome, err := l.source.Load(ctx, l.env, pos)
	switch outcome {
	case Loaded:
		return c, nil
	case Err:
		l.log.Warn("level: chunk source load failed, regenerating", "x", pos.X, "z", pos.Z, "err", err)
		fallthrough
	case Absent:
		c, genErr := l.generator.Generate(ctx, l.env, pos)
		if genErr != nil {
			return nil, fmt.Errorf("level: generate chunk (%d,%d): %w", pos.X, pos.Z, genErr)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("level: chunk source returned unknown outcome %d for (%d,%d)", outcome, pos.X, pos.Z)
	}
}

// Save persists the chunk at pos through the backing source, if the chunk
// is cached, dirty, and the source supports saving. No-op otherwise.
func (l *Level) Save(ctx context.Context, pos Pos) error {
	l.mu.RLock()
	c, ok := l.chunks[pos]
	l.mu.RUnlock()
	if !ok || !c.Dirty() || !l.source.SupportsSave() {
		return nil
	}
	if err := l.source.Save(ctx, pos, c); err != nil {
		return fmt.Errorf("level: save chunk (%d,%d): %w", pos.X, pos.Z, err)
	}
	c.ClearDirty()
	return nil
}

// Peek returns the cached chunk at pos without loading or generating, and
// whether it was present.
func (l *Level) Peek(pos Pos) (*chunk.Chunk, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c, ok := l.chunks[pos]
	return c, ok
}

// Evict drops pos from the in-memory cache without saving it. Callers
// that want to persist first should call Save before Evict.
func (l *Level) Evict(pos Pos) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.chunks, pos)
}

// Warm fans concurrent, I/O-only prefetches for positions out across the
// chunk source using errgroup, then installs each result into the cache
// on the calling goroutine in request order. Positions already cached are
// skipped. Generation itself never runs concurrently here: a position
// the source reports Absent or Err is queued for single-goroutine
// generation after the fan-out completes, preserving the rule that
// suspension points live only inside chunk source calls.
func (l *Level) Warm(ctx context.Context, positions []Pos) error {
	type slot struct {
		pos     Pos
		c       *chunk.Chunk
		outcome LoadOutcome
		err     error
	}

	toFetch := make([]Pos, 0, len(positions))
	for _, p := range positions {
		if _, ok := l.Peek(p); ok {
			continue
		}
		toFetch = append(toFetch, p)
	}
	if len(toFetch) == 0 {
		return nil
	}

	slots := make([]slot, len(toFetch))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range toFetch {
		i, p := i, p
		slots[i].pos = p
		g.Go(func() error {
			c, outcome, err := l.source.Load(gctx, l.env, p)
			slots[i].c, slots[i].outcome, slots[i].err = c, outcome, err
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("level: warm: %w", err)
	}

	for _, s := range slots {
		var c *chunk.Chunk
		switch s.outcome {
		case Loaded:
			c = s.c
		case Err:
			l.log.Warn("level: warm load failed, regenerating", "x", s.pos.X, "z", s.pos.Z, "err", s.err)
			fallthrough
		case Absent:
			genC, err := l.generator.Generate(ctx, l.env, s.pos)
			if err != nil {
				return fmt.Errorf("level: warm: generate chunk (%d,%d): %w", s.pos.X, s.pos.Z, err)
			}
			c = genC
		}
		l.mu.Lock()
		if _, ok := l.chunks[s.pos]; !ok {
			l.chunks[s.pos] = c
		}
		l.mu.Unlock()
	}
	return nil
}

// Len returns the number of chunks currently cached in memory.
func (l *Level) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.chunks)
}

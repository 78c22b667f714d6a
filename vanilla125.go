// Package vanilla125 is the library surface external collaborators build
// against: environment construction, level construction, and a generator
// factory that runs the full 1.2.5 pipeline (biomes, terrain, carving,
// surface, decoration) for a fresh chunk. It wires pkg/registry,
// pkg/level, pkg/terrain, pkg/carver, and pkg/decorate together the way
// the teacher's cmd/server/main.go wires internal/server/world.New against
// a gen.Generator — generalized from a one-shot server wiring into a
// reusable constructor set, since this module has no server of its own.
package vanilla125

import (
	"context"
	"log/slog"

	"github.com/OCharnyshevich/vanilla125/pkg/chunk"
	"github.com/OCharnyshevich/vanilla125/pkg/decorate"
	"github.com/OCharnyshevich/vanilla125/pkg/level"
	"github.com/OCharnyshevich/vanilla125/pkg/registry"
	"github.com/OCharnyshevich/vanilla125/pkg/terrain"
)

// NewEnv builds a level environment preloaded with the built-in vanilla
// 1.2.5 block, biome, and heightmap descriptors. Callers that need extra
// descriptors should apply a registry.Manifest to the result before
// constructing a Level.
func NewEnv() (*registry.Env, error) {
	return registry.NewVanilla125Env()
}

// NewLevel constructs a Level over env backed by source, generating fresh
// chunks for positions source doesn't have via the full 1.2.5 pipeline
// seeded by worldSeed. If log is nil, slog.Default() is used.
func NewLevel(env *registry.Env, source level.ChunkSource, worldSeed int64, log *slog.Logger) *level.Level {
	gen := NewPipelineGenerator(env, worldSeed)
	return level.New(env, source, gen, log)
}

// PipelineGenerator is a level.Generator that runs the complete vanilla
// 1.2.5 chunk pipeline end to end: biome assignment, density-field terrain,
// ravine carving, and surface replacement (via terrain.Generator), then
// ore/lake/sand/tree decoration (via decorate.Decorator), leaving every
// produced chunk at chunk.StatusFull. pkg/terrain.Generator and
// pkg/decorate.Decorator remain independently usable for callers that want
// to stop short of decoration (e.g. a structure generator that must run
// between surface and decoration) — this type is the convenience path for
// callers that just want a finished chunk.
type PipelineGenerator struct {
	terrain   *terrain.Generator
	decorator *decorate.Decorator
	worldSeed int64
}

// NewPipelineGenerator builds a PipelineGenerator for worldSeed against env.
func NewPipelineGenerator(env *registry.Env, worldSeed int64) *PipelineGenerator {
	return &PipelineGenerator{
		terrain:   terrain.NewGenerator(env, worldSeed),
		decorator: decorate.NewDecorator(env),
		worldSeed: worldSeed,
	}
}

// Generate implements level.Generator.
func (g *PipelineGenerator) Generate(ctx context.Context, env *registry.Env, pos level.Pos) (*chunk.Chunk, error) {
	c, err := g.terrain.Generate(ctx, env, pos)
	if err != nil {
		return nil, err
	}
	if err := g.decorator.Populate(ctx, c, g.worldSeed); err != nil {
		return nil, err
	}
	return c, nil
}

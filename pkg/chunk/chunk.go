// Package chunk implements the paletted sub-chunk block storage and the
// 16x16x256 chunk that stacks up to 16 of them, plus the biome grid,
// heightmaps, and generation-status tracking spec.md §3/§4.C describe.
// Grounded on the teacher's pkg/world/gen.ChunkData (dense per-section
// array), generalized to paletted storage.
package chunk

import (
	"fmt"

	"github.com/OCharnyshevich/vanilla125/pkg/registry"
	"github.com/OCharnyshevich/vanilla125/pkg/vanerr"
)

// SectionCount is the number of 16-block-tall sections stacked in a 1.2.5
// chunk (16 * 16 = 256 world height).
const SectionCount = 16

// Status is a chunk's generation progress. It only ever advances.
type Status int

const (
	StatusEmpty Status = iota
	StatusBiomesGenerated
	StatusTerrainGenerated
	StatusCarved
	StatusSurfaceApplied
	StatusPopulated
	StatusFull
)

func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "Empty"
	case StatusBiomesGenerated:
		return "BiomesGenerated"
	case StatusTerrainGenerated:
		return "TerrainGenerated"
	case StatusCarved:
		return "Carved"
	case StatusSurfaceApplied:
		return "SurfaceApplied"
	case StatusPopulated:
		return "Populated"
	case StatusFull:
		return "Full"
	default:
		return "Unknown"
	}
}

// Chunk is a 16x16x256 column of blocks: an ordered stack of up to 16
// sections (nil = all-air), a 16x16 biome grid, named heightmap arrays,
// and a monotonic status.
type Chunk struct {
	env *registry.Env

	X, Z int

	sections [SectionCount]*Section
	biomes   [256]registry.Index

	heightmaps map[registry.Index][256]uint16

	status Status
	dirty  bool
}

// NewChunk creates an empty chunk at chunk coordinates (cx, cz), all-air,
// all-default-biome (index 0 of env.Biomes, which callers should ensure is
// a sensible default such as Ocean/Plains).
func NewChunk(env *registry.Env, cx, cz int) *Chunk {
	return &Chunk{
		env:        env,
		X:          cx,
		Z:          cz,
		heightmaps: make(map[registry.Index][256]uint16),
	}
}

// Status returns the chunk's current generation status.
func (c *Chunk) Status() Status { return c.status }

// Advance moves the chunk to a new status. It refuses to run (returning
// vanerr.ErrStatusRegression) if newStatus does not strictly follow the
// current status, per spec.md §3's monotonicity invariant.
func (c *Chunk) Advance(newStatus Status) error {
	if newStatus <= c.status {
		return fmt.Errorf("chunk: advance to %s from %s: %w", newStatus, c.status, vanerr.ErrStatusRegression)
	}
	c.status = newStatus
	return nil
}

// RequireStatus fails with vanerr.ErrStatusRegression if the chunk's
// status is not exactly exact; generation passes call this to refuse to
// run on an already-advanced chunk that would double-apply their effect.
func (c *Chunk) RequireStatus(exact Status) error {
	if c.status != exact {
		return fmt.Errorf("chunk: pass requires status %s, chunk is %s: %w", exact, c.status, vanerr.ErrStatusRegression)
	}
	return nil
}

func localCheck(x, y, z int) error {
	if x < 0 || x > 15 || y < 0 || y > 255 || z < 0 || z > 15 {
		return fmt.Errorf("chunk: block coordinate (%d,%d,%d): %w", x, y, z, vanerr.ErrOutOfBounds)
	}
	return nil
}

// GetBlock returns the runtime block index at chunk-local (x, y, z).
func (c *Chunk) GetBlock(x, y, z int) (registry.Index, error) {
	if err := localCheck(x, y, z); err != nil {
		return 0, err
	}
	sec := c.sections[y>>4]
	if sec == nil {
		air, _ := c.env.Blocks.IndexOf(registry.BlockAir)
		return air, nil
	}
	return sec.Get(x, y&15, z)
}

// SetBlock writes the runtime block index at chunk-local (x, y, z),
// allocating the containing section on first write if needed.
func (c *Chunk) SetBlock(x, y, z int, idx registry.Index) error {
	if err := localCheck(x, y, z); err != nil {
		return err
	}
	secIdx := y >> 4
	sec := c.sections[secIdx]
	if sec == nil {
		air, _ := c.env.Blocks.IndexOf(registry.BlockAir)
		sec = NewSection(air)
		c.sections[secIdx] = sec
	}
	c.dirty = true
	return sec.Set(x, y&15, z, idx)
}

// Section returns the section at vertical index secY (0-15), or nil if
// that section is empty (all-air).
func (c *Chunk) Section(secY int) *Section {
	if secY < 0 || secY >= SectionCount {
		return nil
	}
	return c.sections[secY]
}

// SetSection installs sec (which may be nil) as the section at vertical
// index secY and marks the chunk dirty.
func (c *Chunk) SetSection(secY int, sec *Section) error {
	if secY < 0 || secY >= SectionCount {
		return fmt.Errorf("chunk: section index %d: %w", secY, vanerr.ErrOutOfBounds)
	}
	c.sections[secY] = sec
	c.dirty = true
	return nil
}

func columnCheck(x, z int) error {
	if x < 0 || x > 15 || z < 0 || z > 15 {
		return fmt.Errorf("chunk: column coordinate (%d,%d): %w", x, z, vanerr.ErrOutOfBounds)
	}
	return nil
}

// GetBiome returns the biome runtime index for column (x, z).
func (c *Chunk) GetBiome(x, z int) (registry.Index, error) {
	if err := columnCheck(x, z); err != nil {
		return 0, err
	}
	return c.biomes[z*16+x], nil
}

// SetBiome sets the biome runtime index for column (x, z).
func (c *Chunk) SetBiome(x, z int, idx registry.Index) error {
	if err := columnCheck(x, z); err != nil {
		return err
	}
	c.biomes[z*16+x] = idx
	return nil
}

// GetHeight returns the stored height for column (x, z) under heightmap
// kind. Heights are stored, not recomputed on read — callers that change
// blocks must call RecomputeHeightmaps.
func (c *Chunk) GetHeight(kind registry.Index, x, z int) (uint16, error) {
	if err := columnCheck(x, z); err != nil {
		return 0, err
	}
	hm, ok := c.heightmaps[kind]
	if !ok {
		return 0, nil
	}
	return hm[z*16+x], nil
}

// RecomputeHeightmaps recomputes every named heightmap in kinds: for each
// column, the highest y where the kind's predicate holds, or 0 if none.
func (c *Chunk) RecomputeHeightmaps(kinds []registry.Index) error {
	for _, kindIdx := range kinds {
		kind, ok := c.env.Heightmaps.Get(kindIdx)
		if !ok {
			return fmt.Errorf("chunk: recompute heightmap: unknown kind index %d", kindIdx)
		}
		var grid [256]uint16
		for x := 0; x < 16; x++ {
			for z := 0; z < 16; z++ {
				h := uint16(0)
				for y := 255; y >= 0; y-- {
					blockIdx, err := c.GetBlock(x, y, z)
					if err != nil {
						return err
					}
					blockDesc, ok := c.env.Blocks.Get(blockIdx)
					if !ok {
						continue
					}
					if kind.IsQualifying(blockDesc) {
						h = uint16(y)
						break
					}
				}
				grid[z*16+x] = h
			}
		}
		c.heightmaps[kindIdx] = grid
	}
	return nil
}

// CompactPalette drops unreferenced palette entries from every non-nil
// section and re-packs each to its minimum bit width.
func (c *Chunk) CompactPalette() {
	air, _ := c.env.Blocks.IndexOf(registry.BlockAir)
	for _, sec := range c.sections {
		if sec != nil {
			sec.Compact(air)
		}
	}
}

// Dirty reports whether SetBlock or SetSection has written to the chunk
// since construction (or the last ClearDirty call); SetBiome and Advance
// do not set it. Used by a Level to decide whether a chunk needs to be
// persisted before eviction.
func (c *Chunk) Dirty() bool { return c.dirty }

// ClearDirty resets the dirty flag, typically after a successful save.
func (c *Chunk) ClearDirty() { c.dirty = false }

// Env returns the level environment this chunk's indices resolve against.
func (c *Chunk) Env() *registry.Env { return c.env }

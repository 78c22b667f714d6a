// Package registry implements the static block/biome/heightmap descriptors
// and the bidirectional registries that assign them compact runtime
// indices. Descriptors are borrowed from a process-wide table: equality is
// pointer identity, matching the teacher's "one static record per kind"
// idiom (pkg/gamedata) generalized to a version-agnostic shape.
package registry

// Descriptor is the shape every registrable static record satisfies: a
// stable namespace:key name. Registries key by pointer identity, not by
// Name() — two distinct *BlockDesc values with the same name are a
// DuplicateName error, not the same entry.
type Descriptor interface {
	comparable
	Name() string
}

// BlockDesc is a statically defined block record. 1.2.5 predates block
// states; a descriptor plus 4 metadata bits fully describes a block.
type BlockDesc struct {
	Namespace string
	Key       string

	// DefaultState is the default 4-bit metadata for this block.
	DefaultState uint8

	// LegacyID is the vanilla numeric block id, 0-4095. Used only at the
	// Anvil boundary — never as a runtime index.
	LegacyID uint16
}

// Name returns the "namespace:key" identifier.
func (b *BlockDesc) Name() string { return b.Namespace + ":" + b.Key }

// BiomeDesc is a statically defined biome record.
type BiomeDesc struct {
	Namespace string
	Key       string

	LegacyID uint8

	BaseTemperature float64
	BaseRainfall    float64

	// BaseHeight and HeightVariation are the biome's (min_height,
	// max_height) pair in pkg/terrain's density-field noise units: every
	// lattice column blends its own biome against its 5x5 neighborhood's
	// pair, weighted toward neighbors with a shallower min_height, and the
	// blended min/max reshape the density field's row falloff and vertical
	// spread for that column.
	BaseHeight      float64
	HeightVariation float64

	Surface  *BlockDesc
	Filler   *BlockDesc
	MaxDepth int
}

// Name returns the "namespace:key" identifier.
func (b *BiomeDesc) Name() string { return b.Namespace + ":" + b.Key }

// HeightmapKind names a predicate over block descriptors used when
// computing per-column heights (e.g. "solid", "motion-blocking").
type HeightmapKind struct {
	Namespace string
	Key       string

	// IsQualifying reports whether a block counts toward this heightmap.
	IsQualifying func(*BlockDesc) bool
}

// Name returns the "namespace:key" identifier.
func (h *HeightmapKind) Name() string { return h.Namespace + ":" + h.Key }

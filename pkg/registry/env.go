package registry

// Env is the level environment bundle: the block, biome, and heightmap
// registries shared read-only by every chunk in a level. Spec.md §3:
// mutating it after any chunk exists is undefined, so callers should treat
// a constructed Env as frozen once a Level is built from it.
type Env struct {
	Blocks     *Registry[*BlockDesc]
	Biomes     *Registry[*BiomeDesc]
	Heightmaps *Registry[*HeightmapKind]
	Legacy     *LegacyBlockTable

	Fallback *BlockDesc // used by pkg/anvil for unrecognized legacy (id, meta) pairs
}

// HeightmapSolid counts any non-air block as ground.
var HeightmapSolid = &HeightmapKind{
	Namespace: "vanilla125", Key: "solid",
	IsQualifying: func(b *BlockDesc) bool { return b != BlockAir },
}

// HeightmapMotionBlocking counts any block that would stop an entity's
// fall — everything but air and the flowing/still water and lava fluids
// (1.2.5 has no distinct "motion blocking no leaves" variant; this mirrors
// the single heightmap vanilla 1.2.5 actually stores).
var HeightmapMotionBlocking = &HeightmapKind{
	Namespace: "vanilla125", Key: "motion-blocking",
	IsQualifying: func(b *BlockDesc) bool {
		switch b {
		case BlockAir, BlockWater, BlockWaterFlow, BlockLava, BlockLavaFlow:
			return false
		default:
			return true
		}
	},
}

// NewVanilla125Env builds the block/biome/heightmap registries pre-loaded
// with the built-in 1.2.5 descriptor set. Additional descriptors (from a
// manifest, see manifest.go, or registered directly) may still be added
// before the first chunk is generated or loaded.
func NewVanilla125Env() (*Env, error) {
	blocks := NewRegistry[*BlockDesc]()
	biomes := NewRegistry[*BiomeDesc]()
	heightmaps := NewRegistry[*HeightmapKind]()
	legacy := NewLegacyBlockTable(blocks)

	if err := RegisterVanilla125Blocks(blocks, legacy); err != nil {
		return nil, err
	}
	if err := RegisterVanilla125Biomes(biomes); err != nil {
		return nil, err
	}
	for _, hk := range []*HeightmapKind{HeightmapSolid, HeightmapMotionBlocking} {
		if _, err := heightmaps.Register(hk); err != nil {
			return nil, err
		}
	}

	return &Env{
		Blocks:     blocks,
		Biomes:     biomes,
		Heightmaps: heightmaps,
		Legacy:     legacy,
		Fallback:   BlockStone,
	}, nil
}

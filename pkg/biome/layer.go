package biome

// BiomeID is a vanilla 1.2.5 legacy biome id, matching registry.BiomeDesc's
// LegacyID field. The layer stack works in this small discrete domain
// internally; pkg/anvil and pkg/terrain translate to registry.Index at the
// edges via registry.ByLegacyID.
type BiomeID uint8

// Built-in 1.2.5 biome ids the layer stack itself reasons about. These
// mirror the ids registered in pkg/registry/vanilla_biomes.go.
const (
	Ocean               BiomeID = 0
	Plains              BiomeID = 1
	Desert              BiomeID = 2
	ExtremeHills        BiomeID = 3
	Forest              BiomeID = 4
	Taiga               BiomeID = 5
	Swampland           BiomeID = 6
	River               BiomeID = 7
	FrozenOcean         BiomeID = 10
	FrozenRiver         BiomeID = 11
	IcePlains           BiomeID = 12
	IceMountains        BiomeID = 13
	MushroomIsland      BiomeID = 14
	MushroomIslandShore BiomeID = 15
	Beach               BiomeID = 16
	DesertHills         BiomeID = 17
	ForestHills         BiomeID = 18
	TaigaHills          BiomeID = 19
	ExtremeHillsEdge    BiomeID = 20
	Jungle              BiomeID = 21
	JungleHills         BiomeID = 22
)

// Grid is a w*h row-major sample of some Layer's output, with (0,0) at
// world coordinate (x, z).
type Grid struct {
	X, Z int32
	W, H int32
	Data []BiomeID
}

func newGrid(x, z, w, h int32) *Grid {
	return &Grid{X: x, Z: z, W: w, H: h, Data: make([]BiomeID, int(w)*int(h))}
}

func (g *Grid) at(x, z int32) BiomeID {
	return g.Data[int(z-g.Z)*int(g.W)+int(x-g.X)]
}

func (g *Grid) set(x, z int32, v BiomeID) {
	g.Data[int(z-g.Z)*int(g.W)+int(x-g.X)] = v
}

// Layer is a node in the biome generation chain. Sample computes a w*h
// grid of biome ids whose origin is (x, z), in this layer's own coordinate
// space (which may be a zoomed-in or zoomed-out space relative to the
// final output, depending on position in the chain).
type Layer interface {
	Seed(worldSeed int64)
	Sample(x, z, w, h int32) *Grid
}

// boolGrid mirrors Grid but for the parallel boolean river chain.
type boolGrid struct {
	X, Z int32
	W, H int32
	Data []bool
}

func newBoolGrid(x, z, w, h int32) *boolGrid {
	return &boolGrid{X: x, Z: z, W: w, H: h, Data: make([]bool, int(w)*int(h))}
}

func (g *boolGrid) at(x, z int32) bool { return g.Data[int(z-g.Z)*int(g.W)+int(x-g.X)] }
func (g *boolGrid) set(x, z int32, v bool) {
	g.Data[int(z-g.Z)*int(g.W)+int(x-g.X)] = v
}

// BoolLayer is the river sub-chain's layer kind, producing a boolean
// river/no-river grid that RiverMixLayer blends into the biome chain.
type BoolLayer interface {
	Seed(worldSeed int64)
	Sample(x, z, w, h int32) *boolGrid
}

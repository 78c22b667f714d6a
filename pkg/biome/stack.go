package biome

// Stack is the fully wired 1.2.5 layer chain: a scale-1 sampler for chunk
// biome grids and a scale-4 sampler (the chain's state just before the
// voronoi jitter) that pkg/terrain uses for
// its 5x5 column-weighting window.
type Stack struct {
	scale1 Layer
	scale4 Layer
}

// salt hands out a distinct, monotonically increasing layer salt for each
// constructor call in BuildVanilla125Stack. Vanilla's own per-layer salts
// are specific small integers baked into the client; since spec.md leaves
// the exact values unspecified (only requiring that each layer have a
// distinct salt and that the cell-seed mixing recipe itself is exact),
// this file assigns them in chain-construction order starting at 1000 —
// a decided Open Question, recorded in DESIGN.md.
type saltSource struct{ next int64 }

func (s *saltSource) take() int64 {
	s.next++
	return s.next
}

// BuildVanilla125Stack wires the full 1.2.5 layer chain: island growth,
// zoom, snow/temperature relaxation, biome assignment, hills, shores, the
// parallel river chain, and the final voronoi jitter.
func BuildVanilla125Stack() *Stack {
	s := &saltSource{next: 999}

	var chain Layer = newIslandLayer(s.take())
	chain = newZoomLayer(chain, s.take(), true)
	chain = newAddIslandLayer(chain, s.take())
	chain = newZoomLayer(chain, s.take(), false)
	chain = newAddIslandLayer(chain, s.take())
	chain = newAddIslandLayer(chain, s.take())
	chain = newAddIslandLayer(chain, s.take())
	chain = newRemoveTooMuchOceanLayer(chain, s.take())
	chain = newSnowLayer(chain, s.take())
	chain = newAddIslandLayer(chain, s.take())
	chain = newCoolWarmLayer(chain, s.take())
	chain = newHeatIceLayer(chain, s.take())
	chain = newSpecialLayer(chain, s.take())
	chain = newZoomLayer(chain, s.take(), false)
	chain = newZoomLayer(chain, s.take(), false)
	chain = newAddIslandLayer(chain, s.take())
	chain = newAddMushroomIslandLayer(chain, s.take())

	var preScale4 Layer = newBiomeAssignLayer(chain, s.take())
	preScale4 = newHillsLayer(preScale4, s.take())

	var postShore Layer = newShoreLayer(preScale4)
	postShore = newZoomLayer(postShore, s.take(), false)
	postShore = newZoomLayer(postShore, s.take(), false)
	postShore = newSmoothLayer(postShore, s.take())
	postShore = newBiomeRiverLayer(postShore, s.take())

	var riverChain Layer = newRiverInitLayer(chain, s.take())
	riverChain = newZoomLayer(riverChain, s.take(), false)
	riverChain = newZoomLayer(riverChain, s.take(), false)
	riverChain = newZoomLayer(riverChain, s.take(), false)
	riverChain = newZoomLayer(riverChain, s.take(), false)
	riverChain = newZoomLayer(riverChain, s.take(), false)
	riverBool := newRiverLayer(riverChain)

	mixed := newRiverMixLayer(postShore, riverBool)
	var final Layer = newSmoothLayer(mixed, s.take())
	scale4 := final
	final = newVoronoiZoomLayer(final, s.take())

	return &Stack{scale1: final, scale4: scale4}
}

// Sample returns the final scale-1 biome grid for the w*h window with
// origin (x, z), in world block coordinates.
func (st *Stack) Sample(worldSeed int64, x, z, w, h int32) *Grid {
	st.scale1.Seed(worldSeed)
	return st.scale1.Sample(x, z, w, h)
}

// SampleScale4 returns the biome grid at scale 4 (each cell covers a 4x4
// block area), shores and rivers included: the input of the final voronoi
// zoom. It is used by terrain generation's
// column-weighting window. Coordinates here are in scale-4 cell units.
func (st *Stack) SampleScale4(worldSeed int64, x, z, w, h int32) *Grid {
	st.scale4.Seed(worldSeed)
	return st.scale4.Sample(x, z, w, h)
}

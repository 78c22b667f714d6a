package biome

// riverInitLayer seeds the parallel river chain from the same pre-hills
// land/ocean chain, assigning each land cell a small integer "river class"
// derived independently of the main biome draw; equal adjacent classes
// become river once thinned by riverLayer below.
type riverInitLayer struct {
	parent Layer
	rand   *layerRand
}

func newRiverInitLayer(parent Layer, salt int64) *riverInitLayer {
	return &riverInitLayer{parent: parent, rand: newLayerRand(salt)}
}

func (l *riverInitLayer) Seed(worldSeed int64) {
	l.parent.Seed(worldSeed)
	l.rand.initWorldSeed(worldSeed)
}

func (l *riverInitLayer) Sample(x, z, w, h int32) *Grid {
	in := l.parent.Sample(x, z, w, h)
	out := newGrid(x, z, w, h)
	for dz := int32(0); dz < h; dz++ {
		for dx := int32(0); dx < w; dx++ {
			wx, wz := x+dx, z+dz
			b := in.at(wx, wz)
			if b == Ocean {
				out.set(wx, wz, Ocean)
				continue
			}
			l.rand.initCellSeed(wx, wz)
			// Only equality between neighboring classes matters (river
			// boundaries are detected by class mismatch), so the draw is
			// reduced into BiomeID's 8-bit range rather than carried at
			// vanilla's full 299999999-valued range.
			out.set(wx, wz, BiomeID(1+l.rand.nextInt(299999999)%254))
		}
	}
	return out
}

// riverLayer turns a river-class cell into River where any of its 4
// orthogonal neighbors carries a different class (a class boundary), the
// same edge-detection trick the main biome chain uses for coastlines.
type riverLayer struct {
	parent Layer
}

func newRiverLayer(parent Layer) *riverLayer {
	return &riverLayer{parent: parent}
}

func (l *riverLayer) Seed(worldSeed int64) { l.parent.Seed(worldSeed) }

func (l *riverLayer) Sample(x, z, w, h int32) *boolGrid {
	in := l.parent.Sample(x-1, z-1, w+2, h+2)
	out := newBoolGrid(x, z, w, h)

	for dz := int32(0); dz < h; dz++ {
		for dx := int32(0); dx < w; dx++ {
			wx, wz := x+dx, z+dz
			center := in.at(wx, wz)
			south := in.at(wx-1, wz)
			north := in.at(wx+1, wz)
			west := in.at(wx, wz-1)
			east := in.at(wx, wz+1)

			isRiver := center != Ocean && (south != center || north != center || west != center || east != center)
			out.set(wx, wz, isRiver)
		}
	}
	return out
}

// riverMixLayer blends the boolean river chain into the main biome chain:
// ocean cells are immune, everything else becomes River (or a
// biome-specific variant) wherever the river chain says so.
type riverMixLayer struct {
	biomeParent Layer
	riverParent BoolLayer
}

func newRiverMixLayer(biomeParent Layer, riverParent BoolLayer) *riverMixLayer {
	return &riverMixLayer{biomeParent: biomeParent, riverParent: riverParent}
}

func (l *riverMixLayer) Seed(worldSeed int64) {
	l.biomeParent.Seed(worldSeed)
	l.riverParent.Seed(worldSeed)
}

func (l *riverMixLayer) Sample(x, z, w, h int32) *Grid {
	biomes := l.biomeParent.Sample(x, z, w, h)
	rivers := l.riverParent.Sample(x, z, w, h)
	out := newGrid(x, z, w, h)

	for dz := int32(0); dz < h; dz++ {
		for dx := int32(0); dx < w; dx++ {
			wx, wz := x+dx, z+dz
			b := biomes.at(wx, wz)
			if b != Ocean && rivers.at(wx, wz) {
				switch b {
				case IcePlains:
					b = FrozenRiver
				case MushroomIsland, MushroomIslandShore:
					b = MushroomIslandShore
				default:
					b = River
				}
			}
			out.set(wx, wz, b)
		}
	}
	return out
}

// biomeRiverLayer adds isolated rivers inside swamps and jungles directly
// on the main chain (independent of the parallel river chain), matching
// the dedicated swamp/jungle river carve-out.
type biomeRiverLayer struct {
	parent Layer
	rand   *layerRand
}

func newBiomeRiverLayer(parent Layer, salt int64) *biomeRiverLayer {
	return &biomeRiverLayer{parent: parent, rand: newLayerRand(salt)}
}

func (l *biomeRiverLayer) Seed(worldSeed int64) {
	l.parent.Seed(worldSeed)
	l.rand.initWorldSeed(worldSeed)
}

func (l *biomeRiverLayer) Sample(x, z, w, h int32) *Grid {
	in := l.parent.Sample(x, z, w, h)
	out := newGrid(x, z, w, h)
	for dz := int32(0); dz < h; dz++ {
		for dx := int32(0); dx < w; dx++ {
			wx, wz := x+dx, z+dz
			b := in.at(wx, wz)
			l.rand.initCellSeed(wx, wz)
			switch {
			case b == Swampland && l.rand.nextInt(6) == 0:
				b = River
			case (b == Jungle || b == JungleHills) && l.rand.nextInt(8) == 0:
				b = River
			}
			out.set(wx, wz, b)
		}
	}
	return out
}

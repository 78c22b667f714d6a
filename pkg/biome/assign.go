package biome

// biomeAssignLayer replaces every remaining Plains placeholder cell with a
// concrete biome drawn from a weighted table, keyed by nothing more than
// "this is land" at this point in the chain — vanilla 1.2.5's land biome
// variety comes entirely from this one draw.
type biomeAssignLayer struct {
	parent Layer
	rand   *layerRand
	table  []BiomeID
}

// vanilla125LandBiomes is the 7-entry table 1.2.5 draws non-special land
// biomes from.
var vanilla125LandBiomes = []BiomeID{Desert, Forest, ExtremeHills, Swampland, Plains, Taiga, Jungle}

func newBiomeAssignLayer(parent Layer, salt int64) *biomeAssignLayer {
	return &biomeAssignLayer{parent: parent, rand: newLayerRand(salt), table: vanilla125LandBiomes}
}

func (l *biomeAssignLayer) Seed(worldSeed int64) {
	l.parent.Seed(worldSeed)
	l.rand.initWorldSeed(worldSeed)
}

func (l *biomeAssignLayer) Sample(x, z, w, h int32) *Grid {
	in := l.parent.Sample(x, z, w, h)
	out := newGrid(x, z, w, h)
	for dz := int32(0); dz < h; dz++ {
		for dx := int32(0); dx < w; dx++ {
			wx, wz := x+dx, z+dz
			b := in.at(wx, wz)
			if b == Plains {
				l.rand.initCellSeed(wx, wz)
				b = l.table[l.rand.nextInt(int32(len(l.table)))]
			}
			out.set(wx, wz, b)
		}
	}
	return out
}

var hillVariant = map[BiomeID]BiomeID{
	Desert:       DesertHills,
	Forest:       ForestHills,
	Taiga:        TaigaHills,
	Plains:       Forest,
	IcePlains:    IceMountains,
	Jungle:       JungleHills,
	ExtremeHills: ExtremeHillsEdge,
}

// hillsLayer converts roughly 1/3 of non-hills biomes to their hills
// variant, but only where the cell's 4 orthogonal neighbors still carry
// the un-converted parent biome (so hills form compact blobs, not single
// stray cells).
type hillsLayer struct {
	parent Layer
	rand   *layerRand
}

func newHillsLayer(parent Layer, salt int64) *hillsLayer {
	return &hillsLayer{parent: parent, rand: newLayerRand(salt)}
}

func (l *hillsLayer) Seed(worldSeed int64) {
	l.parent.Seed(worldSeed)
	l.rand.initWorldSeed(worldSeed)
}

func (l *hillsLayer) Sample(x, z, w, h int32) *Grid {
	in := l.parent.Sample(x-1, z-1, w+2, h+2)
	out := newGrid(x, z, w, h)

	for dz := int32(0); dz < h; dz++ {
		for dx := int32(0); dx < w; dx++ {
			wx, wz := x+dx, z+dz
			center := in.at(wx, wz)

			l.rand.initCellSeed(wx, wz)
			if l.rand.nextInt(3) == 0 {
				if repl, ok := hillVariant[center]; ok {
					south := in.at(wx-1, wz)
					north := in.at(wx+1, wz)
					west := in.at(wx, wz-1)
					east := in.at(wx, wz+1)
					if south == center && north == center && west == center && east == center {
						center = repl
					}
				}
			}
			out.set(wx, wz, center)
		}
	}
	return out
}

// shoreLayer adds Beach along land-ocean boundaries, MushroomIslandShore
// around mushroom islands fully ringed by ocean, and ExtremeHillsEdge
// along extreme-hills/non-hills boundaries.
type shoreLayer struct {
	parent Layer
}

func newShoreLayer(parent Layer) *shoreLayer {
	return &shoreLayer{parent: parent}
}

func (l *shoreLayer) Seed(worldSeed int64) { l.parent.Seed(worldSeed) }

func (l *shoreLayer) Sample(x, z, w, h int32) *Grid {
	in := l.parent.Sample(x-1, z-1, w+2, h+2)
	out := newGrid(x, z, w, h)

	for dz := int32(0); dz < h; dz++ {
		for dx := int32(0); dx < w; dx++ {
			wx, wz := x+dx, z+dz
			center := in.at(wx, wz)
			south := in.at(wx-1, wz)
			north := in.at(wx+1, wz)
			west := in.at(wx, wz-1)
			east := in.at(wx, wz+1)

			switch {
			case center == MushroomIsland:
				if isOcean(south) && isOcean(north) && isOcean(west) && isOcean(east) {
					center = MushroomIslandShore
				}
			case center != Ocean && center != River && center != Swampland && center != ExtremeHills:
				if isOcean(south) || isOcean(north) || isOcean(west) || isOcean(east) {
					center = Beach
				}
			case center == ExtremeHills:
				if south != ExtremeHills || north != ExtremeHills || west != ExtremeHills || east != ExtremeHills {
					center = ExtremeHillsEdge
				}
			}
			out.set(wx, wz, center)
		}
	}
	return out
}

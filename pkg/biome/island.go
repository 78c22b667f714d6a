package biome

// islandLayer is the root of the chain: each cell is land (Plains) with
// 1/10 probability, ocean otherwise, with the origin cell forced to land
// so spawn never generates mid-ocean.
type islandLayer struct {
	rand *layerRand
}

func newIslandLayer(salt int64) *islandLayer {
	return &islandLayer{rand: newLayerRand(salt)}
}

func (l *islandLayer) Seed(worldSeed int64) { l.rand.initWorldSeed(worldSeed) }

func (l *islandLayer) Sample(x, z, w, h int32) *Grid {
	out := newGrid(x, z, w, h)
	for dz := int32(0); dz < h; dz++ {
		for dx := int32(0); dx < w; dx++ {
			wx, wz := x+dx, z+dz
			l.rand.initCellSeed(wx, wz)
			v := Plains
			if l.rand.nextInt(10) != 0 {
				v = Ocean
			}
			out.set(wx, wz, v)
		}
	}
	if x <= 0 && z <= 0 && x > -w && z > -h {
		out.set(0, 0, Plains)
	}
	return out
}

func isOcean(b BiomeID) bool {
	return b == Ocean || b == FrozenOcean
}

// addIslandLayer samples its parent over a +2/+2 expanded window and
// grows/shrinks islands at the coastline using the 4 diagonal neighbors
// of each cell.
type addIslandLayer struct {
	parent Layer
	rand   *layerRand
}

func newAddIslandLayer(parent Layer, salt int64) *addIslandLayer {
	return &addIslandLayer{parent: parent, rand: newLayerRand(salt)}
}

func (l *addIslandLayer) Seed(worldSeed int64) {
	l.parent.Seed(worldSeed)
	l.rand.initWorldSeed(worldSeed)
}

func (l *addIslandLayer) Sample(x, z, w, h int32) *Grid {
	in := l.parent.Sample(x-1, z-1, w+2, h+2)
	out := newGrid(x, z, w, h)

	for dz := int32(0); dz < h; dz++ {
		for dx := int32(0); dx < w; dx++ {
			wx, wz := x+dx, z+dz
			sw := in.at(wx-1, wz-1)
			nw := in.at(wx+1, wz-1)
			se := in.at(wx-1, wz+1)
			ne := in.at(wx+1, wz+1)
			center := in.at(wx, wz)

			l.rand.initCellSeed(wx, wz)

			if isOcean(center) && (!isOcean(sw) || !isOcean(nw) || !isOcean(se) || !isOcean(ne)) {
				bound := int32(1)
				toSet := Plains

				if !isOcean(sw) && l.rand.nextInt(bound) == 0 {
					toSet = sw
				}
				bound++
				if !isOcean(nw) && l.rand.nextInt(bound) == 0 {
					toSet = nw
				}
				bound++
				if !isOcean(se) && l.rand.nextInt(bound) == 0 {
					toSet = se
				}
				bound++
				if !isOcean(ne) && l.rand.nextInt(bound) == 0 {
					toSet = ne
				}

				if l.rand.nextInt(3) == 0 {
					center = toSet
				} else if toSet == IcePlains {
					center = FrozenOcean
				} else {
					center = Ocean
				}
			} else if !isOcean(center) && (isOcean(sw) || isOcean(nw) || isOcean(se) || isOcean(ne)) {
				if l.rand.nextInt(5) == 0 {
					if center == IcePlains {
						center = FrozenOcean
					} else {
						center = Ocean
					}
				}
			}

			out.set(wx, wz, center)
		}
	}
	return out
}

// addMushroomIslandLayer rarely drops a mushroom island in the middle of
// open ocean (the cell and its 4 diagonal neighbors all ocean, 1/100
// chance).
type addMushroomIslandLayer struct {
	parent Layer
	rand   *layerRand
}

func newAddMushroomIslandLayer(parent Layer, salt int64) *addMushroomIslandLayer {
	return &addMushroomIslandLayer{parent: parent, rand: newLayerRand(salt)}
}

func (l *addMushroomIslandLayer) Seed(worldSeed int64) {
	l.parent.Seed(worldSeed)
	l.rand.initWorldSeed(worldSeed)
}

func (l *addMushroomIslandLayer) Sample(x, z, w, h int32) *Grid {
	in := l.parent.Sample(x-1, z-1, w+2, h+2)
	out := newGrid(x, z, w, h)

	for dz := int32(0); dz < h; dz++ {
		for dx := int32(0); dx < w; dx++ {
			wx, wz := x+dx, z+dz
			sw := in.at(wx-1, wz-1)
			nw := in.at(wx+1, wz-1)
			se := in.at(wx-1, wz+1)
			ne := in.at(wx+1, wz+1)
			center := in.at(wx, wz)

			l.rand.initCellSeed(wx, wz)

			if isOcean(center) && isOcean(sw) && isOcean(nw) && isOcean(se) && isOcean(ne) && l.rand.nextInt(100) == 0 {
				center = MushroomIsland
			}
			out.set(wx, wz, center)
		}
	}
	return out
}

// removeTooMuchOceanLayer thins out ocean cells whose 4 diagonal
// neighbors are also ocean, reducing overly large oceans.
type removeTooMuchOceanLayer struct {
	parent Layer
	rand   *layerRand
}

func newRemoveTooMuchOceanLayer(parent Layer, salt int64) *removeTooMuchOceanLayer {
	return &removeTooMuchOceanLayer{parent: parent, rand: newLayerRand(salt)}
}

func (l *removeTooMuchOceanLayer) Seed(worldSeed int64) {
	l.parent.Seed(worldSeed)
	l.rand.initWorldSeed(worldSeed)
}

func (l *removeTooMuchOceanLayer) Sample(x, z, w, h int32) *Grid {
	in := l.parent.Sample(x-1, z-1, w+2, h+2)
	out := newGrid(x, z, w, h)

	for dz := int32(0); dz < h; dz++ {
		for dx := int32(0); dx < w; dx++ {
			wx, wz := x+dx, z+dz
			sw := in.at(wx-1, wz-1)
			nw := in.at(wx+1, wz-1)
			se := in.at(wx-1, wz+1)
			ne := in.at(wx+1, wz+1)
			center := in.at(wx, wz)

			l.rand.initCellSeed(wx, wz)

			if isOcean(center) && isOcean(sw) && isOcean(nw) && isOcean(se) && isOcean(ne) && l.rand.nextInt(2) == 0 {
				center = Plains
			}
			out.set(wx, wz, center)
		}
	}
	return out
}

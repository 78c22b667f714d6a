package biome

// smoothLayer removes single-cell noise: if the two horizontal neighbors
// agree and the two vertical neighbors agree (but not necessarily with
// each other), pick one of the agreeing pairs at random; if only one axis
// agrees, use it; otherwise leave the center untouched.
type smoothLayer struct {
	parent Layer
	rand   *layerRand
}

func newSmoothLayer(parent Layer, salt int64) *smoothLayer {
	return &smoothLayer{parent: parent, rand: newLayerRand(salt)}
}

func (l *smoothLayer) Seed(worldSeed int64) {
	l.parent.Seed(worldSeed)
	l.rand.initWorldSeed(worldSeed)
}

func (l *smoothLayer) Sample(x, z, w, h int32) *Grid {
	in := l.parent.Sample(x-1, z-1, w+2, h+2)
	out := newGrid(x, z, w, h)

	for dz := int32(0); dz < h; dz++ {
		for dx := int32(0); dx < w; dx++ {
			wx, wz := x+dx, z+dz
			south := in.at(wx-1, wz)
			north := in.at(wx+1, wz)
			west := in.at(wx, wz-1)
			east := in.at(wx, wz+1)
			center := in.at(wx, wz)

			var v BiomeID
			switch {
			case south == north && west == east:
				l.rand.initCellSeed(wx, wz)
				if l.rand.nextInt(2) == 0 {
					v = south
				} else {
					v = west
				}
			case west == east:
				v = west
			case south == north:
				v = south
			default:
				v = center
			}
			out.set(wx, wz, v)
		}
	}
	return out
}

package biome

// zoomLayer doubles its parent's resolution. fuzzy picks uniformly among
// the 4 candidate parent neighbors for a diagonal child cell; otherwise it
// picks the majority value, falling back to uniform choice on a 4-way tie.
type zoomLayer struct {
	parent Layer
	rand   *layerRand
	fuzzy  bool
}

func newZoomLayer(parent Layer, salt int64, fuzzy bool) *zoomLayer {
	return &zoomLayer{parent: parent, rand: newLayerRand(salt), fuzzy: fuzzy}
}

func (l *zoomLayer) Seed(worldSeed int64) {
	l.parent.Seed(worldSeed)
	l.rand.initWorldSeed(worldSeed)
}

func (l *zoomLayer) Sample(x, z, w, h int32) *Grid {
	parentX, parentZ := x>>1, z>>1
	parentW, parentH := (w>>1)+3, (h>>1)+3
	in := l.parent.Sample(parentX, parentZ, parentW, parentH)

	bufW, bufH := (parentW-1)<<1, (parentH-1)<<1
	buf := newGrid(parentX<<1, parentZ<<1, bufW, bufH)

	for pz := int32(0); pz < parentH-1; pz++ {
		row0 := in.at(parentX, parentZ+pz)
		for px := int32(0); px < parentW-1; px++ {
			v00 := row0
			v10 := in.at(parentX+px+1, parentZ+pz)
			v01 := in.at(parentX+px, parentZ+pz+1)
			v11 := in.at(parentX+px+1, parentZ+pz+1)

			bx, bz := (parentX+px)<<1, (parentZ+pz)<<1
			buf.set(bx, bz, v00)

			l.rand.initCellSeed(bx, bz)
			if l.rand.nextInt(2) == 0 {
				buf.set(bx+1, bz, v00)
			} else {
				buf.set(bx+1, bz, v10)
			}

			if l.rand.nextInt(2) == 0 {
				buf.set(bx, bz+1, v00)
			} else {
				buf.set(bx, bz+1, v01)
			}

			if l.fuzzy {
				buf.set(bx+1, bz+1, l.rand.choose4(v00, v10, v01, v11))
			} else {
				buf.set(bx+1, bz+1, chooseSmart(l.rand, v00, v10, v01, v11))
			}

			row0 = v10
		}
	}

	out := newGrid(x, z, w, h)
	for dz := int32(0); dz < h; dz++ {
		for dx := int32(0); dx < w; dx++ {
			out.set(x+dx, z+dz, buf.at(x+dx, z+dz))
		}
	}
	return out
}

// chooseSmart picks the most-represented value among 4 samples, matching
// vanilla's odd tie-break order (ties favor v1, then fall through to the
// 1.2.5 quirk of preferring v3/v01 on the remaining 3-way cases).
func chooseSmart(r *layerRand, v1, v2, v3, v4 BiomeID) BiomeID {
	switch {
	case v2 == v3 && v3 == v4:
		return v2
	case v1 == v2 && v1 == v3:
		return v1
	case v1 == v2 && v1 == v4:
		return v1
	case v1 == v3 && v1 == v4:
		return v1
	case v1 == v2 && v3 != v4:
		return v1
	case v1 == v3 && v2 != v4:
		return v1
	case v1 == v4 && v2 != v3:
		return v1
	case v2 == v1 && v3 != v4:
		return v2
	case v2 == v3 && v1 != v4:
		return v2
	case v2 == v4 && v1 != v3:
		return v2
	case v3 == v1 && v2 != v4:
		return v3
	case v3 == v2 && v1 != v4:
		return v3
	case v3 == v4 && v1 != v2:
		return v3
	case v4 == v1 && v2 != v3:
		return v3
	case v4 == v2 && v1 != v3:
		return v3
	case v4 == v3 && v1 != v2:
		return v3
	default:
		return r.choose4(v1, v2, v3, v4)
	}
}

// voronoiZoomLayer is the final scale-1 layer: each output cell picks its
// value from whichever of 4 jittered parent lattice points is nearest.
type voronoiZoomLayer struct {
	parent Layer
	rand   *layerRand
}

func newVoronoiZoomLayer(parent Layer, salt int64) *voronoiZoomLayer {
	return &voronoiZoomLayer{parent: parent, rand: newLayerRand(salt)}
}

func (l *voronoiZoomLayer) Seed(worldSeed int64) {
	l.parent.Seed(worldSeed)
	l.rand.initWorldSeed(worldSeed)
}

const voronoiJitter = 4.0 * 0.9

func (l *voronoiZoomLayer) Sample(x, z, w, h int32) *Grid {
	ox, oz := x-2, z-2
	xNew, zNew := ox>>2, oz>>2
	parentW, parentH := (w>>2)+2, (h>>2)+2
	in := l.parent.Sample(xNew, zNew, parentW, parentH)

	out := newGrid(x, z, w, h)
	for dz := int32(0); dz < h; dz++ {
		for dx := int32(0); dx < w; dx++ {
			cx, cz := ox+dx, oz+dz
			bx, bz := cx>>2, cz>>2

			l.rand.initCellSeed((bx+0)<<2, (bz+0)<<2)
			a0 := (float64(l.rand.nextInt(1024))/1024.0 - 0.5) * voronoiJitter
			a1 := (float64(l.rand.nextInt(1024))/1024.0 - 0.5) * voronoiJitter

			l.rand.initCellSeed((bx+1)<<2, (bz+0)<<2)
			b0 := (float64(l.rand.nextInt(1024))/1024.0-0.5)*voronoiJitter + 4.0
			b1 := (float64(l.rand.nextInt(1024)) / 1024.0 - 0.5) * voronoiJitter

			l.rand.initCellSeed((bx+0)<<2, (bz+1)<<2)
			c0 := (float64(l.rand.nextInt(1024)) / 1024.0 - 0.5) * voronoiJitter
			c1 := (float64(l.rand.nextInt(1024))/1024.0-0.5)*voronoiJitter + 4.0

			l.rand.initCellSeed((bx+1)<<2, (bz+1)<<2)
			d0 := (float64(l.rand.nextInt(1024))/1024.0-0.5)*voronoiJitter + 4.0
			d1 := (float64(l.rand.nextInt(1024))/1024.0-0.5)*voronoiJitter + 4.0

			cdx := float64(cx & 3)
			cdz := float64(cz & 3)

			da := (cdz-a1)*(cdz-a1) + (cdx-a0)*(cdx-a0)
			db := (cdz-b1)*(cdz-b1) + (cdx-b0)*(cdx-b0)
			dc := (cdz-c1)*(cdz-c1) + (cdx-c0)*(cdx-c0)
			dd := (cdz-d1)*(cdz-d1) + (cdx-d0)*(cdx-d0)

			var v BiomeID
			switch {
			case da < db && da < dc && da < dd:
				v = in.at(bx+0, bz+0)
			case db < da && db < dc && db < dd:
				v = in.at(bx+1, bz+0)
			case dc < da && dc < db && dc < dd:
				v = in.at(bx+0, bz+1)
			default:
				v = in.at(bx+1, bz+1)
			}
			out.set(x+dx, z+dz, v)
		}
	}
	return out
}

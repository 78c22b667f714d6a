// Package carver implements the post-terrain carving passes: right now
// just the ravine carver (spec.md §4.G). Grounded on
// original_source/mc/worldgen/src/structure/ravine.rs (the per-origin
// worker, width table, and ellipsoid carve rule) and
// original_source/mc/worldgen/src/gen/r102.rs's generate_structures/
// StructureGenerator wiring (the r=8 origin-chunk neighborhood and the
// a/b per-origin seed derivation every MapGenBase-style structure shares).
package carver

import (
	"context"
	"math"

	"github.com/OCharnyshevich/vanilla125/pkg/chunk"
	"github.com/OCharnyshevich/vanilla125/pkg/registry"
	"github.com/OCharnyshevich/vanilla125/pkg/rng"
)

// ravineRange is the origin-chunk search radius: every chunk whose
// distance is within range (a (2*range+1)^2 neighborhood) gets a chance to
// carve into the target chunk.
const ravineRange = 8

// RavineCarver carves vanilla 1.2.5 ravines into a chunk's already
// terrain-filled stone. One RavineCarver is built per world seed and
// reused across chunks, mirroring terrain.Generator.
type RavineCarver struct {
	env *registry.Env
}

// NewRavineCarver builds a RavineCarver against env.
func NewRavineCarver(env *registry.Env) *RavineCarver {
	return &RavineCarver{env: env}
}

// Carve runs every origin chunk in the r=8 neighborhood of c against c,
// each independently seeded, so the carved result doesn't depend on visit
// order. It only ever reads and writes c itself.
func (rc *RavineCarver) Carve(ctx context.Context, c *chunk.Chunk, worldSeed int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	base := rng.NewLCG(worldSeed)
	a := base.NextLong()
	b := base.NextLong()

	for ox := c.X - ravineRange; ox <= c.X+ravineRange; ox++ {
		for oz := c.Z - ravineRange; oz <= c.Z+ravineRange; oz++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			originSeed := int64(ox)*a ^ int64(oz)*b ^ worldSeed
			originRand := rng.NewLCG(originSeed)
			if err := rc.maybeStart(originRand, ox, oz, c); err != nil {
				return err
			}
		}
	}
	return nil
}

// maybeStart is the 1/50 coin flip and initial-point/angle roll every
// origin chunk makes, mirroring RavineStructure::generate.
func (rc *RavineCarver) maybeStart(r *rng.LCG, ox, oz int, c *chunk.Chunk) error {
	if r.NextIntBound(50) != 0 {
		return nil
	}

	x := float64(ox*16) + float64(r.NextIntBound(16))
	v := r.NextIntBound(40)
	y := float64(r.NextIntBound(v+8) + 20)
	z := float64(oz*16) + float64(r.NextIntBound(16))

	yaw := r.NextFloat() * float32(math.Pi) * 2.0
	pitch := ((r.NextFloat() - 0.5) * 2.0) / 8.0
	baseWidth := (r.NextFloat()*2.0 + r.NextFloat()) * 2.0

	seed := r.NextLong()
	return rc.carve(seed, c, x, y, z, baseWidth, yaw, pitch, 0, 0, 3.0)
}

// carve is the length-loop random walk, gen_ravine_worker ported
// directly: advance position, decay/perturb yaw and pitch, and for each
// step that overlaps the target chunk, carve an ellipsoid of stone into
// air (or lava below y=10). Carving runs before the surface pass
// (chunk.StatusCarved precedes chunk.StatusSurfaceApplied), so unlike
// vanilla's own pass order there is no grass/dirt at this point to track
// "pierced ground" against — the later surface pass re-skins whatever
// stone the ravine exposed, same as it does for any other carved-out
// cavity.
func (rc *RavineCarver) carve(seed int64, c *chunk.Chunk, startX, startY, startZ float64, baseWidth, startYaw, startPitch float32, startOffset, startLength int, heightRatio float64) error {
	r := rng.NewLCG(seed)

	cx, cz := c.X, c.Z
	xMid := float64(cx*16 + 8)
	zMid := float64(cz*16 + 8)

	x, y, z := startX, startY, startZ
	yaw, pitch := startYaw, startPitch
	var yawMod, pitchMod float32

	length := startLength
	if length <= 0 {
		i := ravineRange*16 - 16
		length = i - int(r.NextIntBound(int32(i/4)))
	}

	offset := startOffset
	autoOffset := false
	if offset < 0 {
		offset = length / 2
		autoOffset = true
	}

	var table [128]float32
	tableVal := float32(1.0)
	for i := 0; i < 128; i++ {
		if i == 0 || r.NextIntBound(3) == 0 {
			tableVal = 1.0 + r.NextFloat()*r.NextFloat()
		}
		table[i] = tableVal * tableVal
	}

	stoneIdx, _ := rc.env.Blocks.IndexOf(registry.BlockStone)
	airIdx, _ := rc.env.Blocks.IndexOf(registry.BlockAir)
	waterIdx, _ := rc.env.Blocks.IndexOf(registry.BlockWater)
	lavaIdx, _ := rc.env.Blocks.IndexOf(registry.BlockLava)

offsetLoop:
	for off := offset; off < length; off++ {
		width := 1.5 + float64(sinf(float32(off)*float32(math.Pi)/float32(length))*baseWidth)
		height := width * heightRatio

		width *= float64(r.NextFloat())*0.25 + 0.75
		height *= float64(r.NextFloat())*0.25 + 0.75

		pitchCos := cosf(pitch)
		pitchSin := sinf(pitch)

		x += float64(cosf(yaw) * pitchCos)
		y += float64(pitchSin)
		z += float64(sinf(yaw) * pitchCos)

		pitch *= 0.7
		pitch += pitchMod * 0.05
		yaw += yawMod * 0.05
		pitchMod *= 0.8
		yawMod *= 0.5

		pitchMod += (r.NextFloat() - r.NextFloat()) * r.NextFloat() * 2.0
		yawMod += (r.NextFloat() - r.NextFloat()) * r.NextFloat() * 4.0

		if !autoOffset && r.NextIntBound(4) == 0 {
			continue
		}

		xChunkRel := x - xMid
		zChunkRel := z - zMid
		remaining := float64(length - off)
		edge := float64(baseWidth) + 2.0 + 16.0

		if xChunkRel*xChunkRel+zChunkRel*zChunkRel-remaining*remaining > edge*edge {
			break
		}

		if x < xMid-16.0-width*2.0 || z < zMid-16.0-width*2.0 || x > xMid+16.0+width*2.0 || z > zMid+16.0+width*2.0 {
			continue
		}

		xStart := clampInt(int(math.Floor(x-width))-cx*16-1, 0, 16)
		xEnd := clampInt(int(math.Floor(x+width))-cx*16+1, 0, 16)
		yStart := maxInt(int(math.Floor(y-height))-1, 1)
		yEnd := minInt(int(math.Floor(y+height))+1, 120)
		zStart := clampInt(int(math.Floor(z-width))-cz*16-1, 0, 16)
		zEnd := clampInt(int(math.Floor(z+width))-cz*16+1, 0, 16)

		for bx := xStart; bx < xEnd; bx++ {
			for bz := zStart; bz < zEnd; bz++ {
				by := yEnd + 1
				for by >= yStart-1 {
					if by < 128 {
						blk, err := c.GetBlock(bx, by, bz)
						if err != nil {
							return err
						}
						if blk == waterIdx {
							continue offsetLoop
						}
						if by != yStart-1 && bx != xStart && bx != xEnd-1 && bz != zStart && bz != zEnd-1 {
							by = yStart
						}
					}
					by--
				}
			}
		}

		for bx := xStart; bx < xEnd; bx++ {
			dx := (float64(cx*16+bx) + 0.5 - x) / width
			for bz := zStart; bz < zEnd; bz++ {
				dz := (float64(cz*16+bz) + 0.5 - z) / width
				if dx*dx+dz*dz >= 1.0 {
					continue
				}

				for by := yEnd - 1; by >= yStart; by-- {
					dy := (float64(by) + 0.5 - y) / height
					if (dx*dx+dz*dz)*float64(table[by])+(dy*dy)/6.0 >= 1.0 {
						continue
					}

					rby := by + 1
					state, err := c.GetBlock(bx, rby, bz)
					if err != nil {
						return err
					}
					if state != stoneIdx {
						continue
					}
					if by < 10 {
						err = c.SetBlock(bx, rby, bz, lavaIdx)
					} else {
						err = c.SetBlock(bx, rby, bz, airIdx)
					}
					if err != nil {
						return err
					}
				}
			}
		}

		if autoOffset {
			break
		}
	}
	return nil
}

func sinf(v float32) float32 { return float32(math.Sin(float64(v))) }
func cosf(v float32) float32 { return float32(math.Cos(float64(v))) }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

package chunk

import (
	"fmt"

	"github.com/OCharnyshevich/vanilla125/pkg/registry"
	"github.com/OCharnyshevich/vanilla125/pkg/vanerr"
)

// Section is a paletted 16x16x16 cube of blocks: a small palette of runtime
// block indices plus a packed array of palette-local indices. Grounded on
// the reference pack's BlockStorage/palette idiom
// (CMA2401PT-OmeGo__sub_chunk.go), generalized to the registry.Index type
// this module's Registry produces.
type Section struct {
	palette []registry.Index
	data    *bitArray
}

const sectionVolume = 16 * 16 * 16

// NewSection creates an empty section whose sole palette entry is air.
func NewSection(air registry.Index) *Section {
	return &Section{
		palette: []registry.Index{air},
		data:    newBitArray(minBitWidth(1), sectionVolume),
	}
}

func cellIndex(x, y, z int) (int, error) {
	if x < 0 || x > 15 || y < 0 || y > 15 || z < 0 || z > 15 {
		return 0, fmt.Errorf("chunk: section coordinate (%d,%d,%d): %w", x, y, z, vanerr.ErrOutOfBounds)
	}
	return (y << 8) | (z << 4) | x, nil
}

// Get returns the runtime block index at local (x, y, z), each in [0,15].
func (s *Section) Get(x, y, z int) (registry.Index, error) {
	i, err := cellIndex(x, y, z)
	if err != nil {
		return 0, err
	}
	return s.palette[s.data.get(i)], nil
}

// Set writes the runtime block index at local (x, y, z), growing the
// palette and repacking the backing array if idx is new and the palette
// crosses a bit-width boundary.
func (s *Section) Set(x, y, z int, idx registry.Index) error {
	i, err := cellIndex(x, y, z)
	if err != nil {
		return err
	}

	localIdx := s.paletteIndexOf(idx)
	if localIdx < 0 {
		localIdx = len(s.palette)
		s.palette = append(s.palette, idx)
		if newWidth := minBitWidth(len(s.palette)); newWidth > s.data.bitWidth {
			s.repack(newWidth)
		}
	}
	s.data.set(i, uint32(localIdx))
	return nil
}

func (s *Section) paletteIndexOf(idx registry.Index) int {
	for i, p := range s.palette {
		if p == idx {
			return i
		}
	}
	return -1
}

func (s *Section) repack(newWidth int) {
	na := newBitArray(newWidth, sectionVolume)
	for i := 0; i < sectionVolume; i++ {
		na.set(i, s.data.get(i))
	}
	s.data = na
}

// Compact drops palette entries no longer referenced by any cell,
// reassigns palette-local indices, and re-packs the backing array to the
// minimum bit width for the surviving palette size. Palette-local 0 is
// reserved for air if air is present among the survivors (spec.md §3).
func (s *Section) Compact(air registry.Index) {
	used := make([]bool, len(s.palette))
	for i := 0; i < sectionVolume; i++ {
		used[s.data.get(i)] = true
	}

	newPalette := make([]registry.Index, 0, len(s.palette))
	remap := make([]int, len(s.palette))
	for i, u := range used {
		if !u {
			remap[i] = -1
			continue
		}
		remap[i] = len(newPalette)
		newPalette = append(newPalette, s.palette[i])
	}

	// Keep air at palette-local 0 when present, matching spec.md §3.
	for i, idx := range newPalette {
		if idx == air && i != 0 {
			newPalette[0], newPalette[i] = newPalette[i], newPalette[0]
			for j, r := range remap {
				switch r {
				case 0:
					remap[j] = i
				case i:
					remap[j] = 0
				}
			}
			break
		}
	}

	newWidth := minBitWidth(len(newPalette))
	na := newBitArray(newWidth, sectionVolume)
	for i := 0; i < sectionVolume; i++ {
		na.set(i, uint32(remap[s.data.get(i)]))
	}

	s.palette = newPalette
	s.data = na
}

// PaletteSize returns the number of distinct entries currently in the
// palette (including any not-yet-compacted stale entries).
func (s *Section) PaletteSize() int { return len(s.palette) }

// BitWidth returns the current packed bit width per cell.
func (s *Section) BitWidth() int { return s.data.bitWidth }

// Palette returns a copy of the section's palette, in palette-local-index
// order.
func (s *Section) Palette() []registry.Index {
	out := make([]registry.Index, len(s.palette))
	copy(out, s.palette)
	return out
}

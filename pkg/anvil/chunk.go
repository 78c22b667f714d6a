// Package anvil implements the on-disk Anvil region chunk source: .mca
// region file I/O, per-chunk zlib/gzip-compressed NBT payloads, and
// translation between the on-disk legacy (id, meta) pairs and the
// in-memory registry. Grounded on the teacher's pkg/world/anvil.SaveRegion
// (sector table construction, kept and extended here with loading) and
// internal/server/world/anvil's EncodeChunkNBT (the Level-compound layout),
// generalized from the teacher's dense per-section ChunkData to this
// module's paletted chunk.Chunk and flattened to the single 32768-byte
// Blocks/16384-nibble Data array 1.2.5's chunk format actually used, ahead
// of the per-section Anvil layout later versions adopted.
package anvil

import (
	"bytes"
	"fmt"

	"github.com/OCharnyshevich/vanilla125/pkg/chunk"
	"github.com/OCharnyshevich/vanilla125/pkg/nbt"
	"github.com/OCharnyshevich/vanilla125/pkg/registry"
	"github.com/OCharnyshevich/vanilla125/pkg/vanerr"
)

// worldHeight is 1.2.5's block column height: 8 of chunk.Chunk's 16 (16
// block tall) sections are ever populated by generation, but the on-disk
// flat arrays are sized to exactly this height regardless.
const worldHeight = 128

// setNibble sets a 4-bit value at the given block index in a nibble array,
// ported as-is from the teacher's internal/server/world/anvil.setNibble.
func setNibble(arr []byte, index int, val byte) {
	byteIdx := index / 2
	if index%2 == 0 {
		arr[byteIdx] = (arr[byteIdx] & 0xF0) | (val & 0x0F)
	} else {
		arr[byteIdx] = (arr[byteIdx] & 0x0F) | ((val & 0x0F) << 4)
	}
}

// getNibble is setNibble's inverse, used when decoding the Data array.
func getNibble(arr []byte, index int) byte {
	b := arr[index/2]
	if index%2 == 0 {
		return b & 0x0F
	}
	return (b >> 4) & 0x0F
}

// EncodeChunkNBT serializes c's blocks, biomes, and heightmap into the
// Level-compound NBT tree 1.2.5 persists, the way the teacher's
// EncodeChunkNBT walks ChunkData's sections, generalized to read through
// chunk.Chunk's paletted storage and the registry's legacy table instead of
// a raw (id<<4|meta) state integer.
func EncodeChunkNBT(env *registry.Env, c *chunk.Chunk) ([]byte, error) {
	blocks := make([]byte, 16*16*worldHeight)
	data := make([]byte, 16*16*worldHeight/2)

	solidIdx, _ := env.Heightmaps.IndexOf(registry.HeightmapSolid)

	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			for y := 0; y < worldHeight; y++ {
				idx, err := c.GetBlock(x, y, z)
				if err != nil {
					return nil, err
				}
				desc, ok := env.Blocks.Get(idx)
				if !ok {
					return nil, fmt.Errorf("anvil: encode: block index %d has no descriptor", idx)
				}
				id, meta, ok := env.Legacy.IndexToLegacy(idx)
				if !ok {
					id, meta = desc.LegacyID, desc.DefaultState
				}
				cellIdx := y*256 + z*16 + x
				blocks[cellIdx] = byte(id)
				setNibble(data, cellIdx, meta)
			}
		}
	}

	biomes := make([]byte, 256)
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			idx, err := c.GetBiome(x, z)
			if err != nil {
				return nil, err
			}
			desc, ok := env.Biomes.Get(idx)
			if !ok {
				return nil, fmt.Errorf("anvil: encode: biome index %d has no descriptor", idx)
			}
			biomes[z*16+x] = byte(desc.LegacyID)
		}
	}

	heightMap := make([]int32, 256)
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			h, err := c.GetHeight(solidIdx, x, z)
			if err != nil {
				return nil, err
			}
			heightMap[z*16+x] = int32(h) + 1
		}
	}

	var buf bytes.Buffer
	w := nbt.NewWriter(&buf)

	w.BeginCompound("")
	w.BeginCompound("Level")
	w.WriteInt("xPos", int32(c.X))
	w.WriteInt("zPos", int32(c.Z))
	w.WriteTagByte("TerrainPopulated", 1)
	w.WriteLong("LastUpdate", 0)
	w.WriteByteArray("Blocks", blocks)
	w.WriteByteArray("Data", data)
	w.WriteByteArray("Biomes", biomes)
	w.WriteIntArray("HeightMap", heightMap)
	w.EndCompound() // Level
	w.EndCompound() // root

	if w.Err() != nil {
		return nil, fmt.Errorf("anvil: encode chunk (%d,%d): %w", c.X, c.Z, w.Err())
	}
	return buf.Bytes(), nil
}

// DecodeChunkNBT parses the bytes produced by EncodeChunkNBT (or a real
// vanilla 1.2.5 chunk payload with the same Level-compound shape) back into
// a chunk.Chunk. Unrecognized (id, meta) pairs fall back to env.Fallback
// and are reported once via onUnknownBlock (nil is a valid no-op callback).
func DecodeChunkNBT(env *registry.Env, payload []byte, onUnknownBlock func(id uint16, meta uint8)) (*chunk.Chunk, error) {
	r := nbt.NewReader(bytes.NewReader(payload))
	root, _, err := r.ReadNamedTag()
	if err != nil {
		return nil, err
	}
	if root == nil || root.Type != nbt.TagCompound {
		return nil, fmt.Errorf("anvil: decode: missing root compound: %w", vanerr.ErrNbtMalformed)
	}
	level, ok := root.Find("Level")
	if !ok {
		return nil, fmt.Errorf("anvil: decode: missing Level compound: %w", vanerr.ErrNbtMalformed)
	}

	xPos, err := findInt(level, "xPos")
	if err != nil {
		return nil, err
	}
	zPos, err := findInt(level, "zPos")
	if err != nil {
		return nil, err
	}

	blocksTag, ok := level.Find("Blocks")
	if !ok || blocksTag.Type != nbt.TagByteArray || len(blocksTag.ByteArray) != 16*16*worldHeight {
		return nil, fmt.Errorf("anvil: decode: Blocks array malformed: %w", vanerr.ErrNbtMalformed)
	}
	dataTag, ok := level.Find("Data")
	if !ok || dataTag.Type != nbt.TagByteArray || len(dataTag.ByteArray) != 16*16*worldHeight/2 {
		return nil, fmt.Errorf("anvil: decode: Data array malformed: %w", vanerr.ErrNbtMalformed)
	}

	c := chunk.NewChunk(env, int(xPos), int(zPos))
	fallbackIdx, ok := env.Blocks.IndexOf(env.Fallback)
	if !ok {
		return nil, fmt.Errorf("anvil: decode: env fallback block %q is not registered", env.Fallback.Name())
	}

	seenUnknown := make(map[uint32]bool)
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			for y := 0; y < worldHeight; y++ {
				cellIdx := y*256 + z*16 + x
				id := uint16(blocksTag.ByteArray[cellIdx])
				meta := getNibble(dataTag.ByteArray, cellIdx)

				idx, ok := env.Legacy.LegacyToIndex(id, meta)
				if !ok {
					idx = fallbackIdx
					key := uint32(id)<<8 | uint32(meta)
					if onUnknownBlock != nil && !seenUnknown[key] {
						seenUnknown[key] = true
						onUnknownBlock(id, meta)
					}
				}
				if err := c.SetBlock(x, y, z, idx); err != nil {
					return nil, err
				}
			}
		}
	}

	if biomesTag, ok := level.Find("Biomes"); ok && biomesTag.Type == nbt.TagByteArray && len(biomesTag.ByteArray) == 256 {
		biomeList := env.Biomes.All()
		for x := 0; x < 16; x++ {
			for z := 0; z < 16; z++ {
				legacyID := biomesTag.ByteArray[z*16+x]
				desc, ok := registry.ByLegacyID(biomeList, legacyID)
				if !ok {
					desc = registry.BiomeOcean
				}
				idx, ok := env.Biomes.IndexOf(desc)
				if !ok {
					return nil, fmt.Errorf("anvil: decode: env missing built-in biome %q", desc.Name())
				}
				if err := c.SetBiome(x, z, idx); err != nil {
					return nil, err
				}
			}
		}
	}

	c.CompactPalette()

	solidIdx, _ := env.Heightmaps.IndexOf(registry.HeightmapSolid)
	motionIdx, _ := env.Heightmaps.IndexOf(registry.HeightmapMotionBlocking)
	if err := c.RecomputeHeightmaps([]registry.Index{solidIdx, motionIdx}); err != nil {
		return nil, err
	}

	// A freshly decoded chunk mirrors exactly what was on disk; it has no
	// pending changes to persist until the caller mutates it.
	if err := advanceToFull(c); err != nil {
		return nil, err
	}
	c.ClearDirty()

	return c, nil
}

// advanceToFull marks a loaded chunk as having already passed every
// generation stage, since a persisted chunk was necessarily fully
// generated before it was saved.
func advanceToFull(c *chunk.Chunk) error {
	for s := c.Status() + 1; s <= chunk.StatusFull; s++ {
		if err := c.Advance(s); err != nil {
			return err
		}
	}
	return nil
}

func findInt(compound *nbt.Tag, key string) (int32, error) {
	tag, ok := compound.Find(key)
	if !ok || tag.Type != nbt.TagInt {
		return 0, fmt.Errorf("anvil: decode: missing or malformed %q: %w", key, vanerr.ErrNbtMalformed)
	}
	return tag.Int, nil
}

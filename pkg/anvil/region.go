package anvil

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	"github.com/OCharnyshevich/vanilla125/pkg/chunk"
	"github.com/OCharnyshevich/vanilla125/pkg/level"
	"github.com/OCharnyshevich/vanilla125/pkg/registry"
	"github.com/OCharnyshevich/vanilla125/pkg/vanerr"
)

const (
	sectorSize    = 4096
	headerSectors = 2 // location table + timestamp table

	compressionGzip = 1
	compressionZlib = 2
)

// RegionSource is a level.ChunkSource backed by a directory of .mca region
// files, generalizing the teacher's write-only pkg/world/anvil.SaveRegion
// (sector allocation, header layout) with a matching loader and the
// sector-reuse-or-append policy spec.md's save path requires.
type RegionSource struct {
	dir string
	log *slog.Logger

	mu     sync.Mutex
	warned map[string]bool // "id:meta" pairs already logged via UnknownBlock
}

// NewRegionSource creates a RegionSource rooted at dir, creating it if
// absent. If log is nil, slog.Default() is used.
func NewRegionSource(dir string, log *slog.Logger) (*RegionSource, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("anvil: create region dir: %w: %w", vanerr.ErrIoFailed, err)
	}
	return &RegionSource{dir: dir, log: log, warned: make(map[string]bool)}, nil
}

func regionPath(dir string, rx, rz int) string {
	return filepath.Join(dir, fmt.Sprintf("r.%d.%d.mca", rx, rz))
}

func regionCoords(pos level.Pos) (rx, rz, localIdx int) {
	rx = pos.X >> 5
	rz = pos.Z >> 5
	localIdx = (pos.X & 31) + (pos.Z&31)*32
	return
}

// SupportsSave implements level.ChunkSource.
func (s *RegionSource) SupportsSave() bool { return true }

// Load implements level.ChunkSource.
func (s *RegionSource) Load(ctx context.Context, env *registry.Env, pos level.Pos) (*chunk.Chunk, level.LoadOutcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, level.Err, err
	}

	rx, rz, localIdx := regionCoords(pos)
	path := regionPath(s.dir, rx, rz)

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, level.Absent, nil
	}
	if err != nil {
		return nil, level.Err, fmt.Errorf("anvil: open region (%d,%d): %w: %w", rx, rz, vanerr.ErrIoFailed, err)
	}
	defer f.Close()

	header := make([]byte, headerSectors*sectorSize)
	if _, err := io.ReadFull(f, header); err != nil {
		return nil, level.Err, fmt.Errorf("anvil: read region (%d,%d) header: %w: %w", rx, rz, vanerr.ErrRegionTruncated, err)
	}

	off := localIdx * 4
	entry := header[off : off+4]
	sectorOffset := uint32(entry[0])<<16 | uint32(entry[1])<<8 | uint32(entry[2])
	sectorCount := uint32(entry[3])
	if sectorOffset == 0 && sectorCount == 0 {
		return nil, level.Absent, nil
	}

	if _, err := f.Seek(int64(sectorOffset)*sectorSize, io.SeekStart); err != nil {
		return nil, level.Err, fmt.Errorf("anvil: seek chunk (%d,%d): %w: %w", pos.X, pos.Z, vanerr.ErrRegionTruncated, err)
	}

	var lenBuf [4]byte
	if _, err := io.ReadFull(f, lenBuf[:]); err != nil {
		return nil, level.Err, fmt.Errorf("anvil: read chunk (%d,%d) length: %w: %w", pos.X, pos.Z, vanerr.ErrRegionTruncated, err)
	}
	payloadLen := binary.BigEndian.Uint32(lenBuf[:])
	if payloadLen == 0 {
		return nil, level.Absent, nil
	}

	payload := make([]byte, payloadLen)
	if _, err := io.ReadFull(f, payload); err != nil {
		return nil, level.Err, fmt.Errorf("anvil: read chunk (%d,%d) payload: %w: %w", pos.X, pos.Z, vanerr.ErrRegionTruncated, err)
	}

	compressionTag := payload[0]
	compressed := payload[1:]

	raw, err := decompress(compressionTag, compressed)
	if err != nil {
		return nil, level.Err, fmt.Errorf("anvil: decompress chunk (%d,%d): %w: %w", pos.X, pos.Z, vanerr.ErrCompressionFailed, err)
	}

	c, err := DecodeChunkNBT(env, raw, func(id uint16, meta uint8) {
		s.logUnknownBlock(id, meta)
	})
	if err != nil {
		return nil, level.Err, fmt.Errorf("anvil: decode chunk (%d,%d): %w", pos.X, pos.Z, err)
	}
	return c, level.Loaded, nil
}

func (s *RegionSource) logUnknownBlock(id uint16, meta uint8) {
	key := fmt.Sprintf("%d:%d", id, meta)
	s.mu.Lock()
	already := s.warned[key]
	s.warned[key] = true
	s.mu.Unlock()
	if !already {
		s.log.Warn("anvil: unknown legacy block, using fallback", "id", id, "meta", meta)
	}
}

func decompress(tag byte, data []byte) ([]byte, error) {
	switch tag {
	case compressionGzip:
		gr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer gr.Close()
		return io.ReadAll(gr)
	case compressionZlib:
		zr, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	default:
		return nil, fmt.Errorf("anvil: unknown compression tag %d", tag)
	}
}

// Save implements level.ChunkSource. It always writes zlib (tag 2), reusing
// the chunk's existing sector span if the new payload still fits and
// otherwise appending fresh sectors at end-of-file, per spec.md §4.H's
// allocation policy; region files never shrink or compact.
func (s *RegionSource) Save(ctx context.Context, pos level.Pos, c *chunk.Chunk) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := EncodeChunkNBT(c.Env(), c)
	if err != nil {
		return fmt.Errorf("anvil: encode chunk (%d,%d): %w", pos.X, pos.Z, err)
	}

	var cbuf bytes.Buffer
	zw := zlib.NewWriter(&cbuf)
	if _, err := zw.Write(raw); err != nil {
		return fmt.Errorf("anvil: compress chunk (%d,%d): %w", pos.X, pos.Z, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("anvil: compress chunk (%d,%d): %w", pos.X, pos.Z, err)
	}

	payload := cbuf.Bytes()
	payloadLen := uint32(len(payload)) + 1
	totalLen := 4 + payloadLen
	sectorsNeeded := (totalLen + sectorSize - 1) / sectorSize

	rx, rz, localIdx := regionCoords(pos)
	path := regionPath(s.dir, rx, rz)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("anvil: open region (%d,%d): %w: %w", rx, rz, vanerr.ErrIoFailed, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("anvil: stat region (%d,%d): %w: %w", rx, rz, vanerr.ErrIoFailed, err)
	}

	header := make([]byte, headerSectors*sectorSize)
	if info.Size() >= int64(len(header)) {
		if _, err := io.ReadFull(f, header); err != nil {
			return fmt.Errorf("anvil: read region (%d,%d) header: %w: %w", rx, rz, vanerr.ErrIoFailed, err)
		}
	}

	off := localIdx * 4
	entry := header[off : off+4]
	existingOffset := uint32(entry[0])<<16 | uint32(entry[1])<<8 | uint32(entry[2])
	existingCount := uint32(entry[3])

	var sectorOffset uint32
	if existingCount >= sectorsNeeded && existingOffset != 0 {
		sectorOffset = existingOffset
	} else {
		fileSectors := uint32(0)
		if info.Size() > int64(len(header)) {
			fileSectors = uint32((info.Size() - int64(len(header)) + sectorSize - 1) / sectorSize)
		}
		sectorOffset = uint32(headerSectors) + fileSectors
	}

	var body bytes.Buffer
	var lenHdr [5]byte
	binary.BigEndian.PutUint32(lenHdr[0:4], payloadLen)
	lenHdr[4] = compressionZlib
	body.Write(lenHdr[:])
	body.Write(payload)

	paddedSize := int(sectorsNeeded) * sectorSize
	if pad := paddedSize - int(totalLen); pad > 0 {
		body.Write(make([]byte, pad))
	}

	entry[0] = byte(sectorOffset >> 16)
	entry[1] = byte(sectorOffset >> 8)
	entry[2] = byte(sectorOffset)
	entry[3] = byte(sectorsNeeded)

	var tsBuf [4]byte
	binary.BigEndian.PutUint32(tsBuf[:], uint32(time.Now().Unix()))
	copy(header[sectorSize+off:sectorSize+off+4], tsBuf[:])

	if _, err := f.WriteAt(header, 0); err != nil {
		return fmt.Errorf("anvil: write region (%d,%d) header: %w: %w", rx, rz, vanerr.ErrIoFailed, err)
	}
	if _, err := f.WriteAt(body.Bytes(), int64(sectorOffset)*sectorSize); err != nil {
		return fmt.Errorf("anvil: write region (%d,%d) chunk body: %w: %w", rx, rz, vanerr.ErrIoFailed, err)
	}

	return nil
}

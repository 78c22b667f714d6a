// Package vanerr defines the error kinds shared across the world
// generation and storage packages.
package vanerr

import "errors"

// Sentinel kinds. Wrap these with fmt.Errorf("...: %w", Kind) at the call
// site so errors.Is still matches after context is attached.
var (
	// ErrOutOfBounds: coordinate outside a chunk or region. Caller bug,
	// always surfaced.
	ErrOutOfBounds = errors.New("vanerr: coordinate out of bounds")

	// ErrDuplicateName: a registry name collision on registration.
	ErrDuplicateName = errors.New("vanerr: duplicate registry name")

	// ErrUnknownBlock: a legacy (id, meta) pair has no registry mapping.
	// Recoverable: caller falls back to a configured block and logs once.
	ErrUnknownBlock = errors.New("vanerr: unknown legacy block")

	// ErrNbtMalformed: a corrupt NBT tag stream. The chunk carrying it is
	// treated as absent.
	ErrNbtMalformed = errors.New("vanerr: malformed nbt stream")

	// ErrRegionTruncated: a region file's header or offset table points
	// past EOF. The chunk is treated as absent.
	ErrRegionTruncated = errors.New("vanerr: region file truncated")

	// ErrCompressionFailed: a zlib/gzip payload failed to decompress. The
	// chunk is treated as absent and the failure logged once.
	ErrCompressionFailed = errors.New("vanerr: chunk payload compression failed")

	// ErrIoFailed: an underlying I/O error, always surfaced.
	ErrIoFailed = errors.New("vanerr: io failed")

	// ErrStatusRegression: a generation pass was run on a chunk whose
	// status already passed that pass's output. Caller bug.
	ErrStatusRegression = errors.New("vanerr: generation pass run out of order")
)

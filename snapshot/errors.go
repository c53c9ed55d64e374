package snapshot

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMagic is returned when the input does not start with the snapshot magic.
	ErrInvalidMagic = errors.New("snapshot: invalid magic")
	// ErrUnsupportedVersion is returned for snapshots written by a newer format version.
	ErrUnsupportedVersion = errors.New("snapshot: unsupported version")
	// ErrChecksumMismatch is returned when the body does not match its CRC32C.
	ErrChecksumMismatch = errors.New("snapshot: checksum mismatch")
	// ErrCorrupt is returned when the body cannot be decoded.
	ErrCorrupt = errors.New("snapshot: corrupt body")
	// ErrTooLarge is returned when a store does not fit the format's 32-bit lengths.
	ErrTooLarge = errors.New("snapshot: too large")
	// ErrMergedStore is returned when reading into a store consumed by Merge.
	ErrMergedStore = errors.New("snapshot: destination store was merged")
)

// ErrUnknownCompression indicates a compression id this package cannot decode.
type ErrUnknownCompression struct {
	Compression Compression
}

func (e *ErrUnknownCompression) Error() string {
	return fmt.Sprintf("snapshot: unknown compression %d", uint8(e.Compression))
}

package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"slices"
	"unicode/utf8"

	"github.com/hupe1980/hstr"
	"github.com/hupe1980/hstr/internal/hash"
)

var magic = [4]byte{'H', 'S', 'T', 'R'}

const (
	version    = uint8(1)
	headerSize = 16
	footerSize = 4

	// maxBodyLen bounds allocations driven by header fields.
	maxBodyLen = 1 << 30
)

// Write serializes every entry of s to w.
func Write(w io.Writer, s *hstr.Store, optFns ...Option) error {
	opts := DefaultOptions()
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}

	raw, err := encodeBody(s)
	if err != nil {
		return err
	}

	body, used, err := compress(raw, opts)
	if err != nil {
		return fmt.Errorf("snapshot: compress: %w", err)
	}
	if len(body) > maxBodyLen {
		return fmt.Errorf("%w: body is %d bytes", ErrTooLarge, len(body))
	}

	var header [headerSize]byte
	copy(header[0:4], magic[:])
	header[4] = version
	header[5] = byte(used)
	// header[6:8] reserved
	binary.LittleEndian.PutUint32(header[8:12], uint32(len(raw)))  //nolint:gosec // checked against maxBodyLen
	binary.LittleEndian.PutUint32(header[12:16], uint32(len(body))) //nolint:gosec // checked against maxBodyLen

	var footer [footerSize]byte
	binary.LittleEndian.PutUint32(footer[:], hash.CRC32C(raw))

	for _, part := range [][]byte{header[:], body, footer[:]} {
		if _, err := w.Write(part); err != nil {
			return fmt.Errorf("snapshot: write: %w", err)
		}
	}
	return nil
}

// Read decodes a snapshot into a new store created with storeOpts.
func Read(r io.Reader, storeOpts ...hstr.Option) (*hstr.Store, error) {
	s := hstr.NewStore(storeOpts...)
	if _, err := ReadInto(r, s); err != nil {
		return nil, err
	}
	return s, nil
}

// ReadInto decodes a snapshot and interns every text into dst. It returns the
// number of texts read. On error, texts decoded before the error are not
// added; dst is only touched once the whole snapshot has been verified.
func ReadInto(r io.Reader, dst *hstr.Store) (int, error) {
	if dst.Merged() {
		return 0, fmt.Errorf("%w: store %d", ErrMergedStore, dst.ID())
	}

	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, fmt.Errorf("snapshot: read header: %w", err)
	}

	if [4]byte(header[0:4]) != magic {
		return 0, ErrInvalidMagic
	}
	if v := header[4]; v != version {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}
	c := Compression(header[5])
	rawLen := binary.LittleEndian.Uint32(header[8:12])
	bodyLen := binary.LittleEndian.Uint32(header[12:16])
	if rawLen > maxBodyLen || bodyLen > maxBodyLen {
		return 0, fmt.Errorf("%w: header lengths %d/%d", ErrCorrupt, rawLen, bodyLen)
	}

	buf := make([]byte, int(bodyLen)+footerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, fmt.Errorf("snapshot: read body: %w", err)
	}
	body, footer := buf[:bodyLen], buf[bodyLen:]

	raw, err := decompress(body, c, int(rawLen))
	if err != nil {
		return 0, err
	}
	if got, want := hash.CRC32C(raw), binary.LittleEndian.Uint32(footer); got != want {
		return 0, fmt.Errorf("%w: got %08x, want %08x", ErrChecksumMismatch, got, want)
	}

	texts, err := decodeBody(raw)
	if err != nil {
		return 0, err
	}
	for _, text := range texts {
		dst.Atom(text)
	}
	return len(texts), nil
}

func encodeBody(s *hstr.Store) ([]byte, error) {
	atoms := make([]hstr.Atom, 0, s.Len())
	size := binary.MaxVarintLen64
	for a := range s.All() {
		atoms = append(atoms, a)
		size += binary.MaxVarintLen64 + a.Len()
	}
	if size > maxBodyLen {
		return nil, fmt.Errorf("%w: %d entries", ErrTooLarge, len(atoms))
	}

	slices.SortFunc(atoms, hstr.Compare)

	raw := make([]byte, 0, size)
	raw = binary.AppendUvarint(raw, uint64(len(atoms)))
	for _, a := range atoms {
		raw = binary.AppendUvarint(raw, uint64(a.Len())) //nolint:gosec // lengths are non-negative
		raw = a.AppendTo(raw)
	}
	return raw, nil
}

func decodeBody(raw []byte) ([]string, error) {
	count, n := binary.Uvarint(raw)
	if n <= 0 {
		return nil, errors.Join(ErrCorrupt, errors.New("bad entry count"))
	}
	raw = raw[n:]

	// Every entry takes at least one byte, which bounds a corrupt count.
	if count > uint64(len(raw)) {
		return nil, fmt.Errorf("%w: %d entries in %d bytes", ErrCorrupt, count, len(raw))
	}

	texts := make([]string, 0, count)
	for i := uint64(0); i < count; i++ {
		l, n := binary.Uvarint(raw)
		if n <= 0 || l > uint64(len(raw)-n) {
			return nil, fmt.Errorf("%w: entry %d", ErrCorrupt, i)
		}
		raw = raw[n:]
		text := string(raw[:l])
		if !utf8.ValidString(text) {
			return nil, fmt.Errorf("%w: entry %d is not valid UTF-8", ErrCorrupt, i)
		}
		texts = append(texts, text)
		raw = raw[l:]
	}
	if len(raw) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(raw))
	}
	return texts, nil
}

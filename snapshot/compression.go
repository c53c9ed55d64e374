package snapshot

import (
	"errors"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the body codec of a snapshot.
type Compression uint8

const (
	// CompressionNone stores the body as is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses zstd (better ratio).
	CompressionZSTD Compression = 2
)

// String implements fmt.Stringer.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return "unknown"
	}
}

// minSavings is the ratio a compressed body must beat to be stored compressed.
const minSavings = 0.9

// ZSTD decoders are stateless between DecodeAll calls and safe to pool.
// Encoders are pooled only for the default level.
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder(level int) (*zstd.Encoder, error) {
	if level == DefaultZstdLevel {
		if v := zstdEncoderPool.Get(); v != nil {
			return v.(*zstd.Encoder), nil
		}
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
}

func putZstdEncoder(enc *zstd.Encoder, level int) {
	if level == DefaultZstdLevel {
		zstdEncoderPool.Put(enc)
		return
	}
	_ = enc.Close()
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil)
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// compress returns the stored body and the codec actually used. When
// compression does not save at least 10%, the raw body is stored instead.
func compress(raw []byte, opts Options) ([]byte, Compression, error) {
	if len(raw) == 0 {
		return raw, CompressionNone, nil
	}

	var (
		out []byte
		err error
	)

	switch opts.Compression {
	case CompressionNone:
		return raw, CompressionNone, nil
	case CompressionLZ4:
		out, err = compressLZ4(raw)
	case CompressionZSTD:
		out, err = compressZSTD(raw, opts.ZstdLevel)
	default:
		return nil, 0, &ErrUnknownCompression{Compression: opts.Compression}
	}
	if err != nil {
		return nil, 0, err
	}

	if len(out) == 0 || float64(len(out)) > float64(len(raw))*minSavings {
		return raw, CompressionNone, nil
	}
	return out, opts.Compression, nil
}

func compressLZ4(raw []byte) ([]byte, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(raw)))

	n, err := lz4.CompressBlock(raw, dst, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // incompressible
	}
	return dst[:n], nil
}

func compressZSTD(raw []byte, level int) ([]byte, error) {
	enc, err := getZstdEncoder(level)
	if err != nil {
		return nil, err
	}
	defer putZstdEncoder(enc, level)

	return enc.EncodeAll(raw, nil), nil
}

// decompress restores a body of rawLen bytes.
func decompress(body []byte, c Compression, rawLen int) ([]byte, error) {
	switch c {
	case CompressionNone:
		if len(body) != rawLen {
			return nil, errors.Join(ErrCorrupt, errors.New("stored length mismatch"))
		}
		return body, nil

	case CompressionLZ4:
		raw := make([]byte, rawLen)
		n, err := lz4.UncompressBlock(body, raw)
		if err != nil {
			return nil, errors.Join(ErrCorrupt, err)
		}
		if n != rawLen {
			return nil, errors.Join(ErrCorrupt, errors.New("decompressed size mismatch"))
		}
		return raw, nil

	case CompressionZSTD:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer putZstdDecoder(dec)

		raw, err := dec.DecodeAll(body, make([]byte, 0, rawLen))
		if err != nil {
			return nil, errors.Join(ErrCorrupt, err)
		}
		if len(raw) != rawLen {
			return nil, errors.Join(ErrCorrupt, errors.New("decompressed size mismatch"))
		}
		return raw, nil

	default:
		return nil, &ErrUnknownCompression{Compression: c}
	}
}

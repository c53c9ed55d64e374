package snapshot

// DefaultZstdLevel is the zstd level used when none is configured.
const DefaultZstdLevel = 3

// Options configures snapshot writing.
type Options struct {
	// Compression selects the body codec. Default: CompressionNone.
	Compression Compression

	// ZstdLevel sets the zstd compression level (1-22). Only used with CompressionZSTD.
	ZstdLevel int
}

// DefaultOptions returns the default writer options.
func DefaultOptions() Options {
	return Options{
		Compression: CompressionNone,
		ZstdLevel:   DefaultZstdLevel,
	}
}

// Option configures a snapshot writer.
type Option func(*Options)

// WithCompression selects the body compression.
func WithCompression(c Compression) Option {
	return func(o *Options) {
		o.Compression = c
	}
}

// WithZstdLevel sets the zstd compression level. Values outside 1-22 select
// DefaultZstdLevel.
func WithZstdLevel(level int) Option {
	return func(o *Options) {
		if level < 1 || level > 22 {
			level = DefaultZstdLevel
		}
		o.ZstdLevel = level
	}
}

package s3

// DefaultPartSize is the multipart part size used when none is configured.
const DefaultPartSize = 8 * 1024 * 1024

type options struct {
	prefix    string
	region    string
	endpoint  string
	pathStyle bool
	partSize  int64
}

// Option configures New.
type Option func(*options)

// WithPrefix prepends prefix to every key.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithRegion overrides the region from the default AWS config chain.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithEndpoint points the client at an S3-compatible endpoint.
func WithEndpoint(endpoint string) Option {
	return func(o *options) { o.endpoint = endpoint }
}

// WithPathStyle forces path-style addressing, which most S3-compatible
// servers require.
func WithPathStyle(enabled bool) Option {
	return func(o *options) { o.pathStyle = enabled }
}

// WithPartSize sets the multipart upload part size. Values below the S3
// minimum of 5 MiB fall back to DefaultPartSize.
func WithPartSize(size int64) Option {
	return func(o *options) {
		if size >= 5*1024*1024 {
			o.partSize = size
		}
	}
}

// Package blobstore stores snapshot blobs by name.
//
// BlobStore is the interface the snapshot package saves to and loads from.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-process map, for tests and ephemeral tables
//   - LocalStore: local filesystem with atomic replace
//   - s3.Store: Amazon S3 (see the s3 subpackage)
//   - minio.Store: MinIO and other S3-compatible servers
//
// Wrap any of them with NewRateLimited to cap transfer bandwidth.
package blobstore

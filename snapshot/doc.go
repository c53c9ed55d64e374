// Package snapshot persists the entries of an hstr.Store.
//
// A snapshot is a small self-describing binary blob:
//
//	magic    "HSTR"
//	version  uint8
//	codec    uint8   none, lz4 or zstd
//	reserved uint16
//	rawLen   uint32  uncompressed body length
//	bodyLen  uint32  stored body length
//	body     [bodyLen]byte
//	crc32c   uint32  over the uncompressed body
//
// The body is a uvarint entry count followed by uvarint-length-prefixed
// texts, sorted so that equal stores produce identical snapshots. All
// integers are little-endian.
//
// Loading a snapshot interns its texts into a store. To combine a persisted
// table with a live one, read it into a fresh store and Merge that store into
// the live one; atoms issued before the merge stay valid.
//
// Save and Load do the same through a blobstore.BlobStore, so a table can be
// kept on local disk, in S3 or in MinIO.
package snapshot

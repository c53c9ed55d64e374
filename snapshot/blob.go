package snapshot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/hupe1980/hstr"
	"github.com/hupe1980/hstr/blobstore"
)

// Save writes a snapshot of s to bs under name.
func Save(ctx context.Context, bs blobstore.BlobStore, name string, s *hstr.Store, optFns ...Option) error {
	var buf bytes.Buffer
	if err := Write(&buf, s, optFns...); err != nil {
		return err
	}
	if err := bs.Put(ctx, name, buf.Bytes()); err != nil {
		return fmt.Errorf("snapshot: save %s: %w", name, err)
	}
	return nil
}

// Load reads the snapshot stored under name into a new store.
// A missing blob yields an error matching blobstore.ErrNotFound.
func Load(ctx context.Context, bs blobstore.BlobStore, name string, storeOpts ...hstr.Option) (*hstr.Store, error) {
	data, err := bs.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("snapshot: load %s: %w", name, err)
	}
	return Read(bytes.NewReader(data), storeOpts...)
}

package blobstore

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimited caps the bandwidth of an underlying BlobStore.
type RateLimited struct {
	BlobStore
	limiter *rate.Limiter
}

// NewRateLimited wraps store so that Put and Get move at most bytesPerSec
// bytes per second. A non-positive rate disables limiting.
func NewRateLimited(store BlobStore, bytesPerSec int) *RateLimited {
	r := &RateLimited{BlobStore: store}
	if bytesPerSec > 0 {
		r.limiter = rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec)
	}
	return r
}

// Put waits for len(data) bytes of budget, then writes.
func (r *RateLimited) Put(ctx context.Context, name string, data []byte) error {
	if err := r.wait(ctx, len(data)); err != nil {
		return err
	}
	return r.BlobStore.Put(ctx, name, data)
}

// Get reads, then charges the blob size against the budget.
func (r *RateLimited) Get(ctx context.Context, name string) ([]byte, error) {
	data, err := r.BlobStore.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := r.wait(ctx, len(data)); err != nil {
		return nil, err
	}
	return data, nil
}

// wait takes n tokens in burst-sized steps, since WaitN rejects n > burst.
func (r *RateLimited) wait(ctx context.Context, n int) error {
	if r.limiter == nil {
		return nil
	}
	burst := r.limiter.Burst()
	for n > 0 {
		step := min(n, burst)
		if err := r.limiter.WaitN(ctx, step); err != nil {
			return err
		}
		n -= step
	}
	return nil
}

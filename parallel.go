package hstr

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// cancelCheckInterval is how many texts a worker interns between context checks.
const cancelCheckInterval = 1024

// InternAll interns texts on up to workers goroutines and returns one store
// holding every entry, with atoms[i] the atom for texts[i].
//
// Each worker interns its share into a private Store; the worker stores are
// then merged into the result store and the atoms canonicalized against it,
// so atoms for equal texts are ==. workers <= 0 selects GOMAXPROCS.
//
// The options apply to every store created, so a configured
// MetricsCollector must be safe for concurrent use.
func InternAll(ctx context.Context, texts []string, workers int, optFns ...Option) (*Store, []Atom, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = max(1, min(workers, len(texts)))

	atoms := make([]Atom, len(texts))
	stores := make([]*Store, workers)
	chunk := (len(texts) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for w := range workers {
		lo := min(w*chunk, len(texts))
		hi := min(lo+chunk, len(texts))

		st := NewStore(optFns...)
		stores[w] = st

		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if (i-lo)%cancelCheckInterval == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				atoms[i] = st.Atom(texts[i])
			}
			return nil
		})
	}

	result := NewStore(optFns...)

	if err := g.Wait(); err != nil {
		result.log.LogInternAll(ctx, len(texts), workers, 0, err)
		return nil, nil, err
	}

	for _, st := range stores {
		result.Merge(st)
	}
	for i := range atoms {
		atoms[i] = atoms[i].Canonical()
	}

	result.log.LogInternAll(ctx, len(texts), workers, result.Len(), nil)
	return result, atoms, nil
}

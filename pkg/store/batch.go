package store

import (
	"context"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// Result is the outcome of reading one key in a batch
type Result struct {
	Key  string
	Data []byte
	Err  error
}

// ReadMany reads the raw bytes of every key in keys, in parallel, bounded by
// the store's worker count. Results come back in the order of keys; per-key
// failures land in Result.Err. The call itself fails only when the pool
// cannot be created or ctx is done.
func (s *Store) ReadMany(ctx context.Context, keys []string) ([]Result, error) {
	results := make([]Result, len(keys))
	if len(keys) == 0 {
		return results, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	size := s.workers
	if size > len(keys) {
		size = len(keys)
	}
	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, k := range keys {
		i, k := i, k
		results[i].Key = k
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			data, err := s.ReadRaw(ctx, k)
			results[i].Data = data
			results[i].Err = err
		})
		if submitErr != nil {
			wg.Done()
			results[i].Err = submitErr
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.logger.Debug().Int("keys", len(keys)).Int("workers", size).Msg("Batch read completed")
	return results, nil
}

// DecodeResult decodes a successful batch result with the store's codec
func (s *Store) DecodeResult(r Result, target any) error {
	if r.Err != nil {
		return r.Err
	}
	if err := s.codec.Decode(r.Data, target); err != nil {
		return readDecodeError(err, r.Key, s.codec.Name())
	}
	return nil
}

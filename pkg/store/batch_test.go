package store_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/arthur-debert/stampstore/pkg/errors"
	"github.com/arthur-debert/stampstore/pkg/filesystem"
	"github.com/arthur-debert/stampstore/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMany(t *testing.T) {
	ctx := context.Background()
	s := store.New(filesystem.NewMemory(), "/storage", store.WithWorkers(3))

	var keys []string
	for i := 0; i < 20; i++ {
		k := fmt.Sprintf("202411%02d%06d", 1+i%3, i)
		keys = append(keys, k)
		if i%5 != 0 {
			require.NoError(t, s.Write(ctx, k, note{Note: k}))
		}
	}
	keys = append(keys, "bad-key")

	results, err := s.ReadMany(ctx, keys)
	require.NoError(t, err)
	require.Len(t, results, len(keys))

	for i, r := range results {
		assert.Equal(t, keys[i], r.Key, "results keep input order")

		switch {
		case r.Key == "bad-key":
			assert.ErrorIs(t, r.Err, errors.ErrInvalidInputKind)
		case i%5 == 0:
			assert.ErrorIs(t, r.Err, errors.ErrReadKind)
		default:
			require.NoError(t, r.Err)
			var out note
			require.NoError(t, s.DecodeResult(r, &out))
			assert.Equal(t, r.Key, out.Note)
		}
	}
}

func TestReadMany_Empty(t *testing.T) {
	s := store.New(filesystem.NewMemory(), "/storage")
	results, err := s.ReadMany(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestDecodeResult_BadPayload(t *testing.T) {
	s := store.New(filesystem.NewMemory(), "/storage")
	var out note
	err := s.DecodeResult(store.Result{Key: "20241120093015", Data: []byte("not json")}, &out)
	assert.ErrorIs(t, err, errors.ErrReadKind)
}

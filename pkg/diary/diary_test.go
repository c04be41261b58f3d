package diary

import (
	"context"
	"testing"
	"time"

	"github.com/arthur-debert/stampstore/pkg/codec"
	"github.com/arthur-debert/stampstore/pkg/errors"
	"github.com/arthur-debert/stampstore/pkg/store"
	"github.com/arthur-debert/stampstore/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, opts ...store.Option) *Repository {
	t.Helper()
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly, opts...)
	r := NewRepository(env.Store)
	r.now = func() time.Time { return time.Date(2024, 11, 20, 9, 30, 15, 500, time.UTC) }
	return r
}

func TestCalendarDate_Valid(t *testing.T) {
	tests := []struct {
		date CalendarDate
		want bool
	}{
		{CalendarDate{2024, 11, 20}, true},
		{CalendarDate{2024, 2, 29}, true},
		{CalendarDate{2023, 2, 29}, false},
		{CalendarDate{2024, 13, 1}, false},
		{CalendarDate{2024, 4, 31}, false},
		{CalendarDate{2024, 1, 0}, false},
		{CalendarDate{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.date.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.date.Valid())
		})
	}
}

func TestEmotions(t *testing.T) {
	for _, e := range Emotions() {
		assert.True(t, e.Valid(), e)
	}
	assert.False(t, Emotion("boredom").Valid())
}

func TestRepository_SaveLoad(t *testing.T) {
	ctx := context.Background()
	for _, c := range []codec.Codec{codec.JSON, codec.YAML, codec.Snappy(codec.JSON)} {
		t.Run(c.Name(), func(t *testing.T) {
			r := newTestRepository(t, store.WithCodec(c))

			k, saved, err := r.Save(ctx, Entry{
				Emotion:    EmotionHappiness,
				Summary:    Summary{Text: "walked by the river"},
				Transcript: "today I walked by the river",
			})
			require.NoError(t, err)
			assert.Equal(t, "20241120093015", k)
			assert.Equal(t, CalendarDate{2024, 11, 20}, saved.CalendarDate)

			got, err := r.Load(ctx, k)
			require.NoError(t, err)
			assert.Equal(t, saved.Summary, got.Summary)
			assert.Equal(t, saved.Emotion, got.Emotion)
			assert.Equal(t, saved.CalendarDate, got.CalendarDate)
			assert.True(t, saved.CreatedAt.Equal(got.CreatedAt))
		})
	}
}

func TestRepository_SaveRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)

	_, _, err := r.Save(ctx, Entry{Emotion: "boredom"})
	assert.ErrorIs(t, err, errors.ErrInvalidInputKind)

	_, _, err = r.Save(ctx, Entry{Emotion: EmotionNeutral, CalendarDate: CalendarDate{2024, 2, 30}})
	assert.ErrorIs(t, err, errors.ErrInvalidInputKind)
}

func TestRepository_SaveRejectsDateMismatch(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	r := NewRepository(env.Store)

	_, _, err := r.Save(ctx, Entry{
		Emotion:      EmotionNeutral,
		CalendarDate: CalendarDate{2024, 11, 21},
		CreatedAt:    time.Date(2024, 11, 20, 9, 30, 15, 0, time.UTC),
	})
	assert.ErrorIs(t, err, errors.ErrInvalidInputKind)
	assert.Equal(t, "2024-11-21", errors.GetErrorDetails(err)["calendarDate"])
	env.AssertNoDir("20241120093015")

	k, _, err := r.Save(ctx, Entry{
		Emotion:      EmotionNeutral,
		CalendarDate: CalendarDate{2024, 11, 20},
		CreatedAt:    time.Date(2024, 11, 20, 23, 59, 59, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "20241120235959", k)
}

func TestRepository_LoadManyKeepsKeys(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	r := NewRepository(env.Store)

	// Written outside Save: the key says nothing about CreatedAt.
	require.NoError(t, env.Store.Write(ctx, "20241120000001", Entry{
		CalendarDate: CalendarDate{2024, 11, 20},
		Emotion:      EmotionFear,
		CreatedAt:    time.Date(2024, 11, 20, 9, 30, 15, 0, time.UTC),
	}))

	entries, failed, err := r.LoadMany(ctx, []string{"20241120000001", "20241120000002"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "20241120000001", entries[0].Key)
	assert.Equal(t, EmotionFear, entries[0].Entry.Emotion)
	assert.Contains(t, failed, "20241120000002")
}

func TestRepository_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)
	base := time.Date(2024, 11, 20, 9, 0, 0, 0, time.UTC)

	var keys []string
	for i := 0; i < 3; i++ {
		k, _, err := r.Save(ctx, Entry{Emotion: EmotionNeutral, CreatedAt: base.Add(time.Duration(i) * time.Hour)})
		require.NoError(t, err)
		keys = append(keys, k)
	}

	require.NoError(t, r.Delete(ctx, keys[0]))
	_, err := r.Load(ctx, keys[0])
	assert.ErrorIs(t, err, errors.ErrReadKind)

	entries, failed, err := r.LoadMany(ctx, keys)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Contains(t, failed, keys[0])

	require.NoError(t, r.Clear(ctx))
	entries, failed, err = r.LoadMany(ctx, keys)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Len(t, failed, 3)
}

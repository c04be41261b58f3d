package diary

import (
	"context"
	"time"

	"github.com/arthur-debert/stampstore/pkg/errors"
	"github.com/arthur-debert/stampstore/pkg/key"
	"github.com/arthur-debert/stampstore/pkg/store"
)

// Repository saves and loads entries
type Repository struct {
	store *store.Store
	now   func() time.Time
}

// NewRepository wraps s
func NewRepository(s *store.Store) *Repository {
	return &Repository{store: s, now: time.Now}
}

// Stored is an entry together with the key it was loaded from
type Stored struct {
	Key   string
	Entry Entry
}

// Save stores entry and returns its key. The key is derived from CreatedAt,
// so CalendarDate must be CreatedAt's date in CreatedAt's location. A zero
// CreatedAt is set to now and a zero CalendarDate to CreatedAt's date.
// Saving an entry created in the same second as an existing one replaces it.
func (r *Repository) Save(ctx context.Context, entry Entry) (string, Entry, error) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.now()
	}
	entry.CreatedAt = entry.CreatedAt.Truncate(time.Second)
	if entry.CalendarDate == (CalendarDate{}) {
		entry.CalendarDate = DateOf(entry.CreatedAt)
	}
	if err := entry.Validate(); err != nil {
		return "", Entry{}, err
	}
	if created := DateOf(entry.CreatedAt); entry.CalendarDate != created {
		return "", Entry{}, errors.Newf(errors.ErrInvalidInput,
			"calendar date %s does not match creation date %s", entry.CalendarDate, created).
			WithDetail("calendarDate", entry.CalendarDate.String()).
			WithDetail("createdAt", entry.CreatedAt.Format(time.RFC3339))
	}

	k := key.FromTime(entry.CreatedAt)
	if err := r.store.Write(ctx, k, entry); err != nil {
		return "", Entry{}, err
	}
	return k, entry, nil
}

// Load returns the entry stored under k
func (r *Repository) Load(ctx context.Context, k string) (Entry, error) {
	return store.ReadAs[Entry](ctx, r.store, k)
}

// LoadMany returns the entries stored under keys in input order, skipping
// keys that fail to load. The keys that failed are returned alongside.
func (r *Repository) LoadMany(ctx context.Context, keys []string) ([]Stored, map[string]error, error) {
	results, err := r.store.ReadMany(ctx, keys)
	if err != nil {
		return nil, nil, err
	}

	entries := make([]Stored, 0, len(results))
	failed := make(map[string]error)
	for _, res := range results {
		var e Entry
		if err := r.store.DecodeResult(res, &e); err != nil {
			failed[res.Key] = err
			continue
		}
		entries = append(entries, Stored{Key: res.Key, Entry: e})
	}
	return entries, failed, nil
}

// Delete removes the entry stored under k
func (r *Repository) Delete(ctx context.Context, k string) error {
	return r.store.Delete(ctx, k)
}

// Clear removes every entry
func (r *Repository) Clear(ctx context.Context) error {
	return r.store.DeleteAll(ctx)
}

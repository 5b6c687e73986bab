package repositories

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rewardlabs/points-txcore/internal/logger"
	"github.com/rewardlabs/points-txcore/internal/models"
)

// maxRecentDestinations bounds the cache; the least-recently-used entry is
// evicted when the bound is exceeded.
const maxRecentDestinations = 10

// KVStore is the persistence primitive backing the destination cache: plain
// byte values keyed per actor, best-effort durability. Get returns
// (nil, nil) when the key has never been written.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// RecentDestinations is the bounded, persisted store of most-recently-used
// withdrawal destinations for one actor. The in-memory list is authoritative
// for the session; persistence failures are logged and swallowed.
type RecentDestinations struct {
	kv  KVStore
	key string

	mu      sync.Mutex
	entries []models.RecentDestination

	now func() time.Time
}

// NewRecentDestinations loads the actor's cached destinations from the
// store. A missing or unreadable value starts the session with an empty
// cache rather than failing.
func NewRecentDestinations(ctx context.Context, kv KVStore, actorID uuid.UUID) *RecentDestinations {
	d := &RecentDestinations{
		kv:  kv,
		key: "recent_destinations:" + actorID.String(),
		now: time.Now,
	}

	raw, err := kv.Get(ctx, d.key)
	if err != nil {
		logger.Log.Warnw("failed to load recent destinations", "key", d.key, "error", err)
		return d
	}
	if len(raw) == 0 {
		return d
	}
	if err := json.Unmarshal(raw, &d.entries); err != nil {
		logger.Log.Warnw("discarding corrupt recent destinations", "key", d.key, "error", err)
		d.entries = nil
	}
	return d
}

// Upsert records a destination use. An entry matching
// (address, network, currency) is updated in place with a fresh label and
// timestamp; otherwise a new entry is prepended. The list is then truncated
// to the most recent entries and persisted.
func (d *RecentDestinations) Upsert(ctx context.Context, entry models.RecentDestination) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	found := false
	for i := range d.entries {
		if d.entries[i].Address == entry.Address &&
			d.entries[i].Network == entry.Network &&
			d.entries[i].CurrencyCode == entry.CurrencyCode {
			d.entries[i].Label = entry.Label
			d.entries[i].LastUsedAt = now
			found = true
			break
		}
	}
	if !found {
		entry.ID = uuid.NewString()
		entry.LastUsedAt = now
		d.entries = append([]models.RecentDestination{entry}, d.entries...)
	}

	d.sortAndTruncateLocked()
	d.persistLocked(ctx)
}

// Remove deletes an entry by id and persists.
func (d *RecentDestinations) Remove(ctx context.Context, id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.entries {
		if d.entries[i].ID == id {
			d.entries = append(d.entries[:i], d.entries[i+1:]...)
			d.persistLocked(ctx)
			return
		}
	}
}

// Touch bumps an entry's LastUsedAt without other changes and persists.
func (d *RecentDestinations) Touch(ctx context.Context, id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.entries {
		if d.entries[i].ID == id {
			d.entries[i].LastUsedAt = d.now()
			d.sortAndTruncateLocked()
			d.persistLocked(ctx)
			return
		}
	}
}

// List returns the entries, most recently used first.
func (d *RecentDestinations) List() []models.RecentDestination {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]models.RecentDestination, len(d.entries))
	copy(out, d.entries)
	return out
}

func (d *RecentDestinations) sortAndTruncateLocked() {
	sort.SliceStable(d.entries, func(i, j int) bool {
		return d.entries[i].LastUsedAt.After(d.entries[j].LastUsedAt)
	})
	if len(d.entries) > maxRecentDestinations {
		d.entries = d.entries[:maxRecentDestinations]
	}
}

func (d *RecentDestinations) persistLocked(ctx context.Context) {
	raw, err := json.Marshal(d.entries)
	if err != nil {
		logger.Log.Errorw("failed to marshal recent destinations", "key", d.key, "error", err)
		return
	}
	if err := d.kv.Set(ctx, d.key, raw); err != nil {
		logger.Log.Warnw("failed to persist recent destinations, keeping in-memory state",
			"key", d.key, "error", err)
	}
}

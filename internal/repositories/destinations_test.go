package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rewardlabs/points-txcore/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKV struct {
	mu     sync.Mutex
	data   map[string][]byte
	getErr error
	setErr error
	setsN  int
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string][]byte)}
}

func (f *fakeKV) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.data[key], nil
}

func (f *fakeKV) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setsN++
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func trc20Entry(address string) models.RecentDestination {
	return models.RecentDestination{
		Address:      address,
		Network:      "TRC20",
		CurrencyCode: models.USDT,
	}
}

func TestRecentDestinations_UpsertDedupes(t *testing.T) {
	ctx := context.Background()
	d := NewRecentDestinations(ctx, newFakeKV(), uuid.New())

	d.Upsert(ctx, models.RecentDestination{
		Address: "TXabc", Network: "TRC20", CurrencyCode: models.USDT, Label: "old",
	})
	d.Upsert(ctx, models.RecentDestination{
		Address: "TXabc", Network: "TRC20", CurrencyCode: models.USDT, Label: "new",
	})

	got := d.List()
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].Label)
	assert.NotEmpty(t, got[0].ID)

	// Same address on a different network is a distinct destination.
	d.Upsert(ctx, models.RecentDestination{
		Address: "TXabc", Network: "ERC20", CurrencyCode: models.USDT,
	})
	assert.Len(t, d.List(), 2)
}

func TestRecentDestinations_CapEvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	d := NewRecentDestinations(ctx, newFakeKV(), uuid.New())

	// Deterministic, strictly increasing clock.
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	d.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	for i := 0; i < maxRecentDestinations+1; i++ {
		d.Upsert(ctx, trc20Entry(fmt.Sprintf("TX%02d", i)))
	}

	got := d.List()
	require.Len(t, got, maxRecentDestinations)
	// The first entry is the oldest and the only one over the cap.
	for _, e := range got {
		assert.NotEqual(t, "TX00", e.Address)
	}
	assert.Equal(t, "TX10", got[0].Address)

	// Re-using an existing destination never grows the list.
	d.Upsert(ctx, trc20Entry("TX05"))
	got = d.List()
	assert.Len(t, got, maxRecentDestinations)
	assert.Equal(t, "TX05", got[0].Address)
}

func TestRecentDestinations_PersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	actorID := uuid.New()

	d := NewRecentDestinations(ctx, kv, actorID)
	d.Upsert(ctx, trc20Entry("TXabc"))

	reloaded := NewRecentDestinations(ctx, kv, actorID)
	got := reloaded.List()
	require.Len(t, got, 1)
	assert.Equal(t, "TXabc", got[0].Address)

	// Another actor's cache is keyed separately.
	other := NewRecentDestinations(ctx, kv, uuid.New())
	assert.Empty(t, other.List())
}

func TestRecentDestinations_ToleratesStoreFailures(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	kv.getErr = errors.New("store unavailable")

	d := NewRecentDestinations(ctx, kv, uuid.New())
	assert.Empty(t, d.List())

	kv.setErr = errors.New("store unavailable")
	d.Upsert(ctx, trc20Entry("TXabc"))

	// The in-memory cache keeps working even though persistence failed.
	got := d.List()
	require.Len(t, got, 1)
	assert.Equal(t, "TXabc", got[0].Address)
}

func TestRecentDestinations_CorruptValueDiscarded(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	actorID := uuid.New()
	kv.data["recent_destinations:"+actorID.String()] = []byte("{not json")

	d := NewRecentDestinations(ctx, kv, actorID)
	assert.Empty(t, d.List())
}

func TestRecentDestinations_RemoveAndTouch(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	d := NewRecentDestinations(ctx, kv, uuid.New())

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	d.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	d.Upsert(ctx, trc20Entry("TXone"))
	d.Upsert(ctx, trc20Entry("TXtwo"))

	got := d.List()
	require.Len(t, got, 2)
	assert.Equal(t, "TXtwo", got[0].Address)

	// Touch bumps TXone back to the front.
	d.Touch(ctx, got[1].ID)
	got = d.List()
	assert.Equal(t, "TXone", got[0].Address)

	d.Remove(ctx, got[0].ID)
	got = d.List()
	require.Len(t, got, 1)
	assert.Equal(t, "TXtwo", got[0].Address)

	// Removing an unknown id is a no-op.
	setsBefore := kv.setsN
	d.Remove(ctx, "missing")
	assert.Len(t, d.List(), 1)
	assert.Equal(t, setsBefore, kv.setsN)
}

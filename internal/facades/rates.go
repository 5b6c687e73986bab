package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rewardlabs/points-txcore/internal/logger"
	"github.com/rewardlabs/points-txcore/internal/metrics"
	"github.com/rewardlabs/points-txcore/internal/models"
)

// RateTable holds the current pair table. Each fetch replaces the table
// wholesale; pairs are never patched in place, so readers always see a
// consistent snapshot of one provider response.
type RateTable struct {
	mu    sync.RWMutex
	pairs map[string]models.CurrencyPair
}

func NewRateTable() *RateTable {
	return &RateTable{pairs: make(map[string]models.CurrencyPair)}
}

// Replace swaps in a freshly fetched table.
func (t *RateTable) Replace(pairs []models.CurrencyPair) {
	next := make(map[string]models.CurrencyPair, len(pairs))
	for _, p := range pairs {
		next[p.From+":"+p.To] = p
	}

	t.mu.Lock()
	t.pairs = next
	t.mu.Unlock()
}

// Pair returns the entry for a conversion route, if present.
func (t *RateTable) Pair(fromCurrency, toCurrency string) (*models.CurrencyPair, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	p, ok := t.pairs[fromCurrency+":"+toCurrency]
	if !ok {
		return nil, false
	}
	return &p, true
}

// List returns every pair currently in the table.
func (t *RateTable) List() []models.CurrencyPair {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]models.CurrencyPair, 0, len(t.pairs))
	for _, p := range t.pairs {
		out = append(out, p)
	}
	return out
}

// RatesHTTPFacade polls the upstream rate provider and feeds a RateTable.
type RatesHTTPFacade struct {
	url    string
	client *http.Client
	table  *RateTable
}

// NewRatesHTTPFacade creates a facade fetching from url into table.
func NewRatesHTTPFacade(url string, table *RateTable) *RatesHTTPFacade {
	return &RatesHTTPFacade{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
		table:  table,
	}
}

// Fetch pulls the full pair table once and replaces the current one.
func (f *RatesHTTPFacade) Fetch(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		metrics.RateTableRefreshes.WithLabelValues("error").Inc()
		return fmt.Errorf("fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.RateTableRefreshes.WithLabelValues("error").Inc()
		return fmt.Errorf("rate provider returned status %d", resp.StatusCode)
	}

	var pairs []models.CurrencyPair
	if err := json.NewDecoder(resp.Body).Decode(&pairs); err != nil {
		metrics.RateTableRefreshes.WithLabelValues("error").Inc()
		return fmt.Errorf("decode rates: %w", err)
	}

	f.table.Replace(pairs)
	metrics.RateTableRefreshes.WithLabelValues("ok").Inc()
	logger.Log.Infow("rate table replaced", "pairs", len(pairs))
	return nil
}

// Poll refreshes the table on an interval until the context is cancelled.
// A failed refresh keeps the previous table; limits and rates simply age
// until the next successful fetch.
func (f *RatesHTTPFacade) Poll(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := f.Fetch(ctx); err != nil {
				logger.Log.Errorw("rate refresh failed", "error", err)
			}
		}
	}
}

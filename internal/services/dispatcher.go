package services

import (
	"sync"

	"github.com/rewardlabs/points-txcore/internal/logger"
	"github.com/rewardlabs/points-txcore/internal/metrics"
	"github.com/rewardlabs/points-txcore/internal/models"
)

// StatusDispatcher fans status channel events out to the orchestrator that
// owns each in-flight transaction id. Orchestrators register before the
// submission is dispatched and deregister when a terminal event lands or
// the submission fails, so no listener outlives its transaction.
type StatusDispatcher struct {
	mu      sync.RWMutex
	watches map[string]*Orchestrator
}

// NewStatusDispatcher creates an empty dispatcher.
func NewStatusDispatcher() *StatusDispatcher {
	return &StatusDispatcher{watches: make(map[string]*Orchestrator)}
}

// Watch routes future events for the transaction id to o.
func (d *StatusDispatcher) Watch(id string, o *Orchestrator) {
	d.mu.Lock()
	d.watches[id] = o
	d.mu.Unlock()
}

// Unwatch removes the routing entry for the transaction id.
func (d *StatusDispatcher) Unwatch(id string) {
	d.mu.Lock()
	delete(d.watches, id)
	d.mu.Unlock()
}

// Dispatch delivers one event to its owning orchestrator. Events with no
// registered owner are dropped; the status channel replays on reconnect, so
// dropping here is safe.
func (d *StatusDispatcher) Dispatch(event models.StatusEvent) {
	d.mu.RLock()
	o := d.watches[event.ID]
	d.mu.RUnlock()

	if o == nil {
		metrics.StatusEventsTotal.WithLabelValues(string(event.Status), "unmatched").Inc()
		logger.Log.Debugw("status event for unknown transaction", "transaction_id", event.ID)
		return
	}
	o.ApplyStatusEvent(event)
}

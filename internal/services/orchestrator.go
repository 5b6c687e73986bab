package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rewardlabs/points-txcore/internal/logger"
	"github.com/rewardlabs/points-txcore/internal/metrics"
	"github.com/rewardlabs/points-txcore/internal/models"
	"github.com/shopspring/decimal"
)

// RateSource returns the current pair table entry for a conversion route.
type RateSource interface {
	Pair(fromCurrency, toCurrency string) (*models.CurrencyPair, bool)
}

// BalanceReader reads the actor's balance snapshot. The snapshot is owned by
// the account layer; the core only reads it.
type BalanceReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (map[string]decimal.Decimal, error)
}

// SubmissionSender performs a single attempt against the submission
// endpoint. A returned error means transport failure (no definitive answer);
// a definitive decline comes back in the result.
type SubmissionSender interface {
	Send(ctx context.Context, actorID uuid.UUID, req models.TransactionRequest, sig models.SignatureTriple) (*models.SubmissionResult, error)
}

// RequestSigner produces the tamper-evident triple over the canonical
// serialization of a request plus actor identity and timestamp.
type RequestSigner interface {
	Sign(actorID uuid.UUID, req models.TransactionRequest, at time.Time) (models.SignatureTriple, error)
}

// DestinationRecorder remembers payout destinations of accepted withdrawals.
type DestinationRecorder interface {
	Upsert(ctx context.Context, entry models.RecentDestination)
}

// StatusWatcher routes status channel events to the orchestrator owning the
// transaction id, for the lifetime of a non-terminal record.
type StatusWatcher interface {
	Watch(id string, o *Orchestrator)
	Unwatch(id string)
}

// Orchestrator drives the transaction lifecycle for a single actor session:
// Idle -> Pending -> Processing -> Completed|Failed -> Idle. All record
// mutation goes through this type, behind one mutex, so the single in-flight
// invariant holds without any global state. One instance per session,
// created on session start and closed on session end.
type Orchestrator struct {
	actorID      uuid.UUID
	rates        RateSource
	balances     BalanceReader
	sender       SubmissionSender
	signer       RequestSigner
	destinations DestinationRecorder
	watcher      StatusWatcher

	mu        sync.Mutex
	record    *models.TransactionRecord
	inFlight  bool   // set while a submission call is outstanding
	pendingID string // frozen request id of the outstanding submission
	deferred  []models.StatusEvent

	now func() time.Time
}

// NewOrchestrator creates an orchestrator for one actor.
func NewOrchestrator(
	actorID uuid.UUID,
	rates RateSource,
	balances BalanceReader,
	sender SubmissionSender,
	signer RequestSigner,
	destinations DestinationRecorder,
	watcher StatusWatcher,
) *Orchestrator {
	return &Orchestrator{
		actorID:      actorID,
		rates:        rates,
		balances:     balances,
		sender:       sender,
		signer:       signer,
		destinations: destinations,
		watcher:      watcher,
		now:          time.Now,
	}
}

// Quote recomputes the estimate and the guard verdict against the latest
// rate table and balance snapshot. Called on every amount or pair change;
// never cached.
func (o *Orchestrator) Quote(ctx context.Context, fromCurrency, toCurrency string, amount decimal.Decimal) (*models.QuoteResult, error) {
	balance, err := o.balance(ctx, fromCurrency)
	if err != nil {
		return nil, err
	}

	pair, ok := o.rates.Pair(fromCurrency, toCurrency)
	if !ok {
		return &models.QuoteResult{
			Rejection: models.NewOrchestrationError(models.ErrPairUnavailable,
				"no rate available for %s->%s", fromCurrency, toCurrency),
		}, nil
	}

	return &models.QuoteResult{
		Quote:     ComputeQuote(*pair, amount, balance),
		Rejection: Validate(pair, amount, balance),
	}, nil
}

// Submit is the single confirm entry point. It re-validates against the
// latest rate and balance, enforces the single in-flight invariant, freezes
// a signed request and dispatches it, retrying a transport failure exactly
// once with the same id and signature. A record is created only after the
// endpoint accepts; every failure path leaves the orchestrator idle.
func (o *Orchestrator) Submit(
	ctx context.Context,
	kind models.TransactionKind,
	fromCurrency, toCurrency string,
	amount decimal.Decimal,
	destination *models.Destination,
) (*models.TransactionRecord, error) {
	if amount.Sign() <= 0 {
		return nil, models.NewOrchestrationError(models.ErrBelowMinimum, "amount must be positive")
	}

	balance, err := o.balance(ctx, fromCurrency)
	if err != nil {
		return nil, err
	}

	pair, _ := o.rates.Pair(fromCurrency, toCurrency)
	if rejection := Validate(pair, amount, balance); rejection != nil {
		metrics.SubmissionsTotal.WithLabelValues(string(kind), "rejected").Inc()
		return nil, rejection
	}
	quote := ComputeQuote(*pair, amount, balance)

	o.mu.Lock()
	if o.inFlight || (o.record != nil && !o.record.Status.Terminal()) {
		o.mu.Unlock()
		metrics.SubmissionsTotal.WithLabelValues(string(kind), "conflict").Inc()
		return nil, models.NewOrchestrationError(models.ErrSubmissionConflict,
			"a transaction is already in flight")
	}
	o.inFlight = true
	now := o.now()
	req := models.TransactionRequest{
		ID:           uuid.NewString(),
		Kind:         kind,
		FromCurrency: fromCurrency,
		ToCurrency:   toCurrency,
		Amount:       amount,
		Destination:  destination,
		CreatedAt:    now,
	}
	o.pendingID = req.ID
	o.mu.Unlock()

	// Register before dispatching: the status channel may deliver a
	// terminal event for this id before the acceptance response returns,
	// and an unrouted event is never redelivered.
	o.watcher.Watch(req.ID, o)

	sig, err := o.signer.Sign(o.actorID, req, now)
	if err != nil {
		o.abortSubmission(req.ID)
		return nil, fmt.Errorf("sign request: %w", err)
	}

	result, err := o.sender.Send(ctx, o.actorID, req, sig)
	if err != nil {
		logger.Log.Warnw("submission transport failure, retrying once",
			"transaction_id", req.ID, "error", err)
		result, err = o.sender.Send(ctx, o.actorID, req, sig)
	}
	if err != nil {
		o.abortSubmission(req.ID)
		metrics.SubmissionsTotal.WithLabelValues(string(kind), "network_error").Inc()
		logger.Log.Errorw("submission failed after retry", "transaction_id", req.ID, "error", err)
		return nil, models.NewOrchestrationError(models.ErrNetworkError,
			"submission endpoint unreachable")
	}
	if !result.Accepted {
		o.abortSubmission(req.ID)
		metrics.SubmissionsTotal.WithLabelValues(string(kind), "backend_rejection").Inc()
		logger.Log.Infow("submission declined by endpoint",
			"transaction_id", req.ID, "reason", result.Reason)
		return nil, models.NewOrchestrationError(models.ErrBackendRejection,
			"endpoint declined: %s", result.Reason)
	}

	o.mu.Lock()
	o.record = &models.TransactionRecord{
		Request:        req,
		Status:         models.StatusPending,
		ComputedOutput: quote.Output,
		FeeCharged:     quote.Fee,
		SubmittedAt:    now,
		LastUpdatedAt:  now,
	}
	o.inFlight = false
	o.pendingID = ""
	// Fold in any events that raced the acceptance response.
	for _, event := range o.deferred {
		o.applyStatusEventLocked(event)
	}
	o.deferred = nil
	record := o.snapshotLocked()
	o.mu.Unlock()

	metrics.SubmissionsTotal.WithLabelValues(string(kind), "accepted").Inc()
	logger.Log.Infow("transaction submitted",
		"transaction_id", req.ID, "kind", kind, "from", fromCurrency, "amount", amount)

	if kind == models.KindWithdrawal && destination != nil && o.destinations != nil {
		o.destinations.Upsert(ctx, models.RecentDestination{
			Address:      destination.AccountRef,
			Label:        destination.Label,
			Network:      destination.Method,
			CurrencyCode: fromCurrency,
			LastUsedAt:   now,
		})
	}

	return record, nil
}

// ApplyStatusEvent folds one status channel event into the record. Events
// for a foreign id, or arriving after a terminal state, are dropped; the
// terminal transition therefore fires at most once observably. A Completed
// arriving while still Pending is accepted directly: delivery is
// at-least-once, not exactly-ordered.
func (o *Orchestrator) ApplyStatusEvent(event models.StatusEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.record == nil && o.pendingID == event.ID {
		// The acceptance response has not returned yet; hold the event
		// until the record exists.
		o.deferred = append(o.deferred, event)
		metrics.StatusEventsTotal.WithLabelValues(string(event.Status), "deferred").Inc()
		return
	}
	if o.record == nil || o.record.Request.ID != event.ID {
		metrics.StatusEventsTotal.WithLabelValues(string(event.Status), "stale").Inc()
		logger.Log.Debugw("ignoring stale status event", "transaction_id", event.ID)
		return
	}

	o.applyStatusEventLocked(event)
}

func (o *Orchestrator) applyStatusEventLocked(event models.StatusEvent) {
	if o.record.Status.Terminal() {
		metrics.StatusEventsTotal.WithLabelValues(string(event.Status), "duplicate").Inc()
		return
	}

	now := o.now()
	switch event.Status {
	case models.StatusProcessing:
		if o.record.Status != models.StatusPending {
			metrics.StatusEventsTotal.WithLabelValues(string(event.Status), "duplicate").Inc()
			return
		}
		o.record.Status = models.StatusProcessing
		o.record.LastUpdatedAt = now

	case models.StatusCompleted:
		o.record.Status = models.StatusCompleted
		if event.ExternalRef != "" {
			o.record.ExternalRef = event.ExternalRef
		}
		o.record.LastUpdatedAt = now
		o.record.TerminalAt = &now
		o.watcher.Unwatch(event.ID)

	case models.StatusFailed:
		o.record.Status = models.StatusFailed
		o.record.ErrorReason = models.ErrUnknown
		if event.Error != "" {
			o.record.ErrorReason = models.ErrorKind(event.Error)
		}
		o.record.LastUpdatedAt = now
		o.record.TerminalAt = &now
		o.watcher.Unwatch(event.ID)

	default:
		// A repeated Pending carries no information.
		metrics.StatusEventsTotal.WithLabelValues(string(event.Status), "duplicate").Inc()
		return
	}

	metrics.StatusEventsTotal.WithLabelValues(string(event.Status), "applied").Inc()
	logger.Log.Infow("transaction status updated",
		"transaction_id", event.ID, "status", o.record.Status, "external_ref", o.record.ExternalRef)
}

// Current returns a copy of the lifecycle record, or nil when idle.
func (o *Orchestrator) Current() *models.TransactionRecord {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.record == nil {
		return nil
	}
	return o.snapshotLocked()
}

// Dismiss acknowledges a terminal record and resets the orchestrator to
// idle. A record still in flight cannot be dismissed: the backend outcome is
// authoritative and there is no cancel-in-flight primitive.
func (o *Orchestrator) Dismiss() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.record == nil {
		return nil
	}
	if !o.record.Status.Terminal() {
		return models.NewOrchestrationError(models.ErrSubmissionConflict,
			"transaction %s is still in flight", o.record.Request.ID)
	}

	// The terminal transition already released the watcher.
	o.record = nil
	return nil
}

// Close tears the session down, releasing any watcher registration.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.pendingID != "" {
		o.watcher.Unwatch(o.pendingID)
		o.pendingID = ""
		o.deferred = nil
	}
	if o.record != nil {
		o.watcher.Unwatch(o.record.Request.ID)
		o.record = nil
	}
}

func (o *Orchestrator) balance(ctx context.Context, currency string) (decimal.Decimal, error) {
	balances, err := o.balances.GetByUserID(ctx, o.actorID)
	if err != nil {
		logger.Log.Errorw("failed to read balance snapshot", "userID", o.actorID, "error", err)
		return decimal.Zero, fmt.Errorf("read balance snapshot: %w", err)
	}
	return balances[currency], nil
}

// abortSubmission releases the watch and any buffered events for a
// submission that produced no record.
func (o *Orchestrator) abortSubmission(id string) {
	o.mu.Lock()
	o.inFlight = false
	o.pendingID = ""
	o.deferred = nil
	o.mu.Unlock()
	o.watcher.Unwatch(id)
}

func (o *Orchestrator) snapshotLocked() *models.TransactionRecord {
	cp := *o.record
	return &cp
}

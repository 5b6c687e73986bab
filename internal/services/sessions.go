package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rewardlabs/points-txcore/internal/models"
	"github.com/rewardlabs/points-txcore/internal/repositories"
	"github.com/shopspring/decimal"
)

// SessionManager owns one orchestrator and one destination cache per actor.
// Sessions are created lazily on first use and torn down together on
// shutdown; there is no process-wide transaction state.
type SessionManager struct {
	rates      RateSource
	balances   BalanceReader
	sender     SubmissionSender
	signer     RequestSigner
	dispatcher *StatusDispatcher
	kv         repositories.KVStore

	mu       sync.Mutex
	sessions map[uuid.UUID]*session
}

type session struct {
	orchestrator *Orchestrator
	destinations *repositories.RecentDestinations
}

// NewSessionManager wires the shared collaborators.
func NewSessionManager(
	rates RateSource,
	balances BalanceReader,
	sender SubmissionSender,
	signer RequestSigner,
	dispatcher *StatusDispatcher,
	kv repositories.KVStore,
) *SessionManager {
	return &SessionManager{
		rates:      rates,
		balances:   balances,
		sender:     sender,
		signer:     signer,
		dispatcher: dispatcher,
		kv:         kv,
		sessions:   make(map[uuid.UUID]*session),
	}
}

func (m *SessionManager) session(ctx context.Context, actorID uuid.UUID) *session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[actorID]; ok {
		return s
	}

	destinations := repositories.NewRecentDestinations(ctx, m.kv, actorID)
	s := &session{
		orchestrator: NewOrchestrator(
			actorID, m.rates, m.balances, m.sender, m.signer, destinations, m.dispatcher),
		destinations: destinations,
	}
	m.sessions[actorID] = s
	return s
}

// Quote recomputes the estimate for the actor's candidate transaction.
func (m *SessionManager) Quote(ctx context.Context, actorID uuid.UUID, fromCurrency, toCurrency string, amount decimal.Decimal) (*models.QuoteResult, error) {
	return m.session(ctx, actorID).orchestrator.Quote(ctx, fromCurrency, toCurrency, amount)
}

// Submit confirms the actor's candidate transaction.
func (m *SessionManager) Submit(ctx context.Context, actorID uuid.UUID, kind models.TransactionKind, fromCurrency, toCurrency string, amount decimal.Decimal, destination *models.Destination) (*models.TransactionRecord, error) {
	return m.session(ctx, actorID).orchestrator.Submit(ctx, kind, fromCurrency, toCurrency, amount, destination)
}

// Current returns the actor's lifecycle record, or nil when idle.
func (m *SessionManager) Current(ctx context.Context, actorID uuid.UUID) *models.TransactionRecord {
	return m.session(ctx, actorID).orchestrator.Current()
}

// Dismiss acknowledges the actor's terminal record.
func (m *SessionManager) Dismiss(ctx context.Context, actorID uuid.UUID) error {
	return m.session(ctx, actorID).orchestrator.Dismiss()
}

// Destinations lists the actor's recent payout destinations.
func (m *SessionManager) Destinations(ctx context.Context, actorID uuid.UUID) []models.RecentDestination {
	return m.session(ctx, actorID).destinations.List()
}

// RemoveDestination deletes one of the actor's destinations by id.
func (m *SessionManager) RemoveDestination(ctx context.Context, actorID uuid.UUID, id string) {
	m.session(ctx, actorID).destinations.Remove(ctx, id)
}

// Close tears down every session.
func (m *SessionManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		s.orchestrator.Close()
		delete(m.sessions, id)
	}
}

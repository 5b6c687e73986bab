package services

import (
	"context"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/rewardlabs/points-txcore/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryKV is an in-process KVStore for session tests.
type memoryKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string][]byte)}
}

func (m *memoryKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memoryKV) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func newTestSessionManager(ctrl *gomock.Controller) (*SessionManager, *orchestratorMocks) {
	m := &orchestratorMocks{
		rates:    NewMockRateSource(ctrl),
		balances: NewMockBalanceReader(ctrl),
		sender:   NewMockSubmissionSender(ctrl),
		signer:   NewMockRequestSigner(ctrl),
	}
	manager := NewSessionManager(m.rates, m.balances, m.sender, m.signer,
		NewStatusDispatcher(), newMemoryKV())
	return manager, m
}

func TestSessionManager_WithdrawalRemembersDestination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager, m := newTestSessionManager(ctrl)
	actorID := uuid.New()
	m.allowQuoting(actorID)
	m.sender.EXPECT().Send(gomock.Any(), actorID, gomock.Any(), gomock.Any()).
		Return(&models.SubmissionResult{Accepted: true}, nil).AnyTimes()

	ctx := context.Background()
	dest := &models.Destination{Method: "TRC20", AccountRef: "TXabc123", Label: "main"}

	record, err := manager.Submit(ctx, actorID, models.KindWithdrawal, models.XP, models.USDT,
		decimal.NewFromInt(500), dest)
	require.NoError(t, err)

	got := manager.Destinations(ctx, actorID)
	require.Len(t, got, 1)
	assert.Equal(t, "TXabc123", got[0].Address)
	assert.Equal(t, "TRC20", got[0].Network)
	assert.Equal(t, "main", got[0].Label)

	// Finish and dismiss so the session is idle again.
	manager.Current(ctx, actorID)
	require.NotNil(t, record)
	sessionOrchestrator := manager.session(ctx, actorID).orchestrator
	sessionOrchestrator.ApplyStatusEvent(models.StatusEvent{
		ID: record.Request.ID, Status: models.StatusCompleted,
	})
	require.NoError(t, manager.Dismiss(ctx, actorID))

	// Same destination again: updated in place, not duplicated.
	dest.Label = "renamed"
	_, err = manager.Submit(ctx, actorID, models.KindWithdrawal, models.XP, models.USDT,
		decimal.NewFromInt(500), dest)
	require.NoError(t, err)

	got = manager.Destinations(ctx, actorID)
	require.Len(t, got, 1)
	assert.Equal(t, "renamed", got[0].Label)
}

func TestSessionManager_SessionsAreIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager, m := newTestSessionManager(ctrl)
	alice := uuid.New()
	bob := uuid.New()
	m.allowQuoting(alice)
	m.allowQuoting(bob)
	m.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.SubmissionResult{Accepted: true}, nil).AnyTimes()

	ctx := context.Background()
	_, err := manager.Submit(ctx, alice, models.KindConversion, models.XP, models.USDT,
		decimal.NewFromInt(500), nil)
	require.NoError(t, err)

	// Alice being in flight does not block Bob.
	_, err = manager.Submit(ctx, bob, models.KindConversion, models.XP, models.USDT,
		decimal.NewFromInt(500), nil)
	require.NoError(t, err)

	// Alice herself is blocked.
	_, err = manager.Submit(ctx, alice, models.KindConversion, models.XP, models.USDT,
		decimal.NewFromInt(100), nil)
	var oe *models.OrchestrationError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, models.ErrSubmissionConflict, oe.Kind)

	assert.NotNil(t, manager.Current(ctx, alice))
	assert.NotNil(t, manager.Current(ctx, bob))
}

func TestSessionManager_DestinationsSurviveSessionRestart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kv := newMemoryKV()
	m := &orchestratorMocks{
		rates:    NewMockRateSource(ctrl),
		balances: NewMockBalanceReader(ctrl),
		sender:   NewMockSubmissionSender(ctrl),
		signer:   NewMockRequestSigner(ctrl),
	}
	manager := NewSessionManager(m.rates, m.balances, m.sender, m.signer,
		NewStatusDispatcher(), kv)

	actorID := uuid.New()
	m.allowQuoting(actorID)
	m.sender.EXPECT().Send(gomock.Any(), actorID, gomock.Any(), gomock.Any()).
		Return(&models.SubmissionResult{Accepted: true}, nil)

	ctx := context.Background()
	_, err := manager.Submit(ctx, actorID, models.KindWithdrawal, models.XP, models.USDT,
		decimal.NewFromInt(500), &models.Destination{Method: "TRC20", AccountRef: "TXabc123"})
	require.NoError(t, err)
	manager.Close()

	// A new manager over the same store sees the persisted entries.
	reloaded := NewSessionManager(m.rates, m.balances, m.sender, m.signer,
		NewStatusDispatcher(), kv)
	got := reloaded.Destinations(ctx, actorID)
	require.Len(t, got, 1)
	assert.Equal(t, "TXabc123", got[0].Address)
}

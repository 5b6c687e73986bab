package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rewardlabs/points-txcore/internal/logger"
	"github.com/shopspring/decimal"
)

// BalanceReadRepository reads the per-currency balance snapshot for an
// actor. The core never writes here: balances move server-side after a
// completed transaction and the snapshot is refreshed externally.
type BalanceReadRepository struct {
	db *sqlx.DB
}

func NewBalanceReadRepository(db *sqlx.DB) *BalanceReadRepository {
	return &BalanceReadRepository{db: db}
}

// GetByUserID returns the available balance per currency code.
func (r *BalanceReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (map[string]decimal.Decimal, error) {
	query := `
		SELECT currency, available
		FROM balances
		WHERE user_id = $1
	`

	rows, err := r.db.QueryxContext(ctx, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	balances := make(map[string]decimal.Decimal)
	for rows.Next() {
		var (
			currency  string
			available decimal.Decimal
		)
		if err := rows.Scan(&currency, &available); err != nil {
			return nil, err
		}
		balances[currency] = available
	}
	return balances, rows.Err()
}

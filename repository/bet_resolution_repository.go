package repository

import (
	"context"
	"fmt"

	"crapstable/database"
	"crapstable/domain/entities"
	"crapstable/domain/interfaces"
)

// betResolutionRepository is the settlement ledger: one row per resolved
// bet per roll. Downstream balance application consumes these rows.
type betResolutionRepository struct {
	q Queryable
}

// NewBetResolutionRepository creates a new bet resolution repository
func NewBetResolutionRepository(db *database.DB) interfaces.BetResolutionRepository {
	return &betResolutionRepository{q: db.Pool}
}

// newBetResolutionRepositoryWithTx creates a repository bound to a transaction
func newBetResolutionRepositoryWithTx(tx Queryable) interfaces.BetResolutionRepository {
	return &betResolutionRepository{q: tx}
}

func (r *betResolutionRepository) RecordAll(ctx context.Context, gameID entities.GameID, rollIndex uint64, resolutions []entities.BetResolution) error {
	query := `
		INSERT INTO bet_resolutions (game_id, roll_index, player, bet_type, amount, outcome, payout)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for _, res := range resolutions {
		_, err := r.q.Exec(ctx, query,
			string(gameID),
			int64(rollIndex),
			string(res.Player),
			string(res.BetType),
			int64(res.Amount),
			string(res.Outcome),
			int64(res.Payout),
		)
		if err != nil {
			return fmt.Errorf("failed to record resolution: %w", err)
		}
	}

	return nil
}

func (r *betResolutionRepository) GetByGame(ctx context.Context, gameID entities.GameID, limit int) ([]*entities.BetResolution, error) {
	query := `
		SELECT player, bet_type, amount, outcome, payout
		FROM bet_resolutions
		WHERE game_id = $1
		ORDER BY id DESC
		LIMIT $2`

	rows, err := r.q.Query(ctx, query, string(gameID), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query resolutions: %w", err)
	}
	defer rows.Close()

	var resolutions []*entities.BetResolution
	for rows.Next() {
		var res entities.BetResolution
		var player, betType, outcome string
		var amount, payout int64
		if err := rows.Scan(&player, &betType, &amount, &outcome, &payout); err != nil {
			return nil, fmt.Errorf("failed to scan resolution: %w", err)
		}
		res.Player = entities.PlayerID(player)
		res.BetType = entities.BetType(betType)
		res.Amount = entities.Tokens(amount)
		res.Outcome = entities.BetOutcome(outcome)
		res.Payout = entities.Tokens(payout)
		resolutions = append(resolutions, &res)
	}

	return resolutions, nil
}

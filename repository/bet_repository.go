package repository

import (
	"context"
	"fmt"

	"crapstable/database"
	"crapstable/domain/entities"
	"crapstable/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

type betRepository struct {
	q Queryable
}

// NewBetRepository creates a new bet repository
func NewBetRepository(db *database.DB) interfaces.BetRepository {
	return &betRepository{q: db.Pool}
}

// newBetRepositoryWithTx creates a new bet repository bound to a transaction
func newBetRepositoryWithTx(tx Queryable) interfaces.BetRepository {
	return &betRepository{q: tx}
}

func (r *betRepository) Record(ctx context.Context, bet *entities.Bet) error {
	query := `
		INSERT INTO bets (id, game_id, player, bet_type, amount, placed_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.q.Exec(ctx, query,
		bet.ID,
		string(bet.GameID),
		string(bet.Player),
		string(bet.Type),
		int64(bet.Amount),
		bet.PlacedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record bet: %w", err)
	}

	return nil
}

func (r *betRepository) GetByGame(ctx context.Context, gameID entities.GameID, limit int) ([]*entities.Bet, error) {
	query := `
		SELECT id, game_id, player, bet_type, amount, placed_at
		FROM bets
		WHERE game_id = $1
		ORDER BY placed_at DESC
		LIMIT $2`

	rows, err := r.q.Query(ctx, query, string(gameID), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query bets: %w", err)
	}
	defer rows.Close()

	return scanBets(rows)
}

func (r *betRepository) GetByPlayer(ctx context.Context, gameID entities.GameID, player entities.PlayerID) ([]*entities.Bet, error) {
	query := `
		SELECT id, game_id, player, bet_type, amount, placed_at
		FROM bets
		WHERE game_id = $1 AND player = $2
		ORDER BY placed_at DESC`

	rows, err := r.q.Query(ctx, query, string(gameID), string(player))
	if err != nil {
		return nil, fmt.Errorf("failed to query bets: %w", err)
	}
	defer rows.Close()

	return scanBets(rows)
}

func scanBets(rows pgx.Rows) ([]*entities.Bet, error) {
	var bets []*entities.Bet
	for rows.Next() {
		var bet entities.Bet
		var gameID, player, betType string
		var amount int64
		err := rows.Scan(&bet.ID, &gameID, &player, &betType, &amount, &bet.PlacedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bet: %w", err)
		}
		bet.GameID = entities.GameID(gameID)
		bet.Player = entities.PlayerID(player)
		bet.Type = entities.BetType(betType)
		bet.Amount = entities.Tokens(amount)
		bets = append(bets, &bet)
	}
	return bets, nil
}

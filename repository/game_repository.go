package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"crapstable/database"
	"crapstable/domain/entities"
	"crapstable/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

// gameRepository persists CrapsGame aggregates as jsonb snapshots. The
// engine owns all game semantics; the row only carries the columns needed
// for lookup and filtering.
type gameRepository struct {
	q Queryable
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *database.DB) interfaces.GameRepository {
	return &gameRepository{q: db.Pool}
}

// newGameRepositoryWithTx creates a new game repository bound to a transaction
func newGameRepositoryWithTx(tx Queryable) interfaces.GameRepository {
	return &gameRepository{q: tx}
}

func (r *gameRepository) Create(ctx context.Context, game *entities.CrapsGame) error {
	state, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("failed to marshal game state: %w", err)
	}

	query := `
		INSERT INTO games (id, shooter, phase, state)
		VALUES ($1, $2, $3, $4)`

	if _, err := r.q.Exec(ctx, query, string(game.ID), string(game.Shooter), string(game.Phase), state); err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	return nil
}

func (r *gameRepository) GetByID(ctx context.Context, id entities.GameID) (*entities.CrapsGame, error) {
	query := `
		SELECT state
		FROM games
		WHERE id = $1`

	var state []byte
	err := r.q.QueryRow(ctx, query, string(id)).Scan(&state)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return unmarshalGame(state)
}

func (r *gameRepository) Update(ctx context.Context, game *entities.CrapsGame) error {
	state, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("failed to marshal game state: %w", err)
	}

	query := `
		UPDATE games
		SET shooter = $2, phase = $3, state = $4, updated_at = NOW()
		WHERE id = $1`

	tag, err := r.q.Exec(ctx, query, string(game.ID), string(game.Shooter), string(game.Phase), state)
	if err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("game %s not found", game.ID)
	}

	return nil
}

func (r *gameRepository) ListActive(ctx context.Context) ([]*entities.CrapsGame, error) {
	query := `
		SELECT state
		FROM games
		WHERE phase IN ('come_out', 'point')
		ORDER BY created_at`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active games: %w", err)
	}
	defer rows.Close()

	var games []*entities.CrapsGame
	for rows.Next() {
		var state []byte
		if err := rows.Scan(&state); err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		game, err := unmarshalGame(state)
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}

	return games, nil
}

// unmarshalGame restores an aggregate, reinitializing any nil maps so the
// engine's tracking writes never hit a nil map after a round trip.
func unmarshalGame(state []byte) (*entities.CrapsGame, error) {
	var game entities.CrapsGame
	if err := json.Unmarshal(state, &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game state: %w", err)
	}

	if game.PlayerBets == nil {
		game.PlayerBets = make(map[entities.PlayerID]map[entities.BetType]entities.Bet)
	}
	if game.FirePoints == nil {
		game.FirePoints = make(map[uint8]bool)
	}
	if game.RepeaterCounts == nil {
		game.RepeaterCounts = make(map[uint8]uint8)
	}
	if game.BonusNumbers == nil {
		game.BonusNumbers = make(map[uint8]bool)
	}
	if game.HardwayStreaks == nil {
		game.HardwayStreaks = make(map[uint8]uint8)
	}
	if game.DoublesRolled == nil {
		game.DoublesRolled = make(map[uint8]bool)
	}
	if game.ComePoints == nil {
		game.ComePoints = make(map[entities.PlayerID]map[uint8]entities.Tokens)
	}
	if game.DontComePoints == nil {
		game.DontComePoints = make(map[entities.PlayerID]map[uint8]entities.Tokens)
	}

	return &game, nil
}

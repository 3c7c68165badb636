package interfaces

import (
	"context"

	"crapstable/domain/entities"
)

// GameRepository defines the interface for game aggregate persistence
type GameRepository interface {
	// Create persists a new game aggregate
	Create(ctx context.Context, game *entities.CrapsGame) error

	// GetByID retrieves a game by its ID, nil when not found
	GetByID(ctx context.Context, id entities.GameID) (*entities.CrapsGame, error)

	// Update overwrites the stored aggregate snapshot
	Update(ctx context.Context, game *entities.CrapsGame) error

	// ListActive returns every game still accepting bets and rolls
	ListActive(ctx context.Context) ([]*entities.CrapsGame, error)
}

// BetRepository defines the interface for the bet placement ledger
type BetRepository interface {
	// Record appends a bet placement record
	Record(ctx context.Context, bet *entities.Bet) error

	// GetByGame returns the most recent bets for a game
	GetByGame(ctx context.Context, gameID entities.GameID, limit int) ([]*entities.Bet, error)

	// GetByPlayer returns a player's bets within a game
	GetByPlayer(ctx context.Context, gameID entities.GameID, player entities.PlayerID) ([]*entities.Bet, error)
}

// BetResolutionRepository defines the interface for the settlement ledger.
// Applying payouts to player balances happens downstream of this ledger.
type BetResolutionRepository interface {
	// RecordAll appends every resolution produced by one roll
	RecordAll(ctx context.Context, gameID entities.GameID, rollIndex uint64, resolutions []entities.BetResolution) error

	// GetByGame returns the most recent resolutions for a game
	GetByGame(ctx context.Context, gameID entities.GameID, limit int) ([]*entities.BetResolution, error)
}

package interfaces

import (
	"context"

	"crapstable/domain/entities"
	"crapstable/domain/events"
)

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	Publish(event events.Event) error
}

// TableService defines the interface for craps table operations
type TableService interface {
	// CreateGame opens a new table session with the given shooter
	CreateGame(ctx context.Context, shooter entities.PlayerID) (*entities.CrapsGame, error)

	// JoinGame adds a player to an existing game
	JoinGame(ctx context.Context, gameID entities.GameID, player entities.PlayerID) error

	// PlaceBet validates and records a wager on the table
	PlaceBet(ctx context.Context, gameID entities.GameID, player entities.PlayerID, betType entities.BetType, amount entities.Tokens) (*entities.Bet, error)

	// ProcessRoll applies one externally agreed dice roll and returns the
	// resolutions it produced
	ProcessRoll(ctx context.Context, gameID entities.GameID, die1, die2 uint8) ([]entities.BetResolution, error)

	// ResolveSpecialBet settles a multi-roll special bet if its condition
	// currently holds; nil resolution means the bet is still pending
	ResolveSpecialBet(ctx context.Context, gameID entities.GameID, player entities.PlayerID, betType entities.BetType) (*entities.BetResolution, error)

	// EndGame drives a session to its terminal phase
	EndGame(ctx context.Context, gameID entities.GameID) error

	// GetGameState returns the current aggregate for display
	GetGameState(ctx context.Context, gameID entities.GameID) (*entities.CrapsGame, error)

	// GetStats returns the monitoring snapshot for a game
	GetStats(ctx context.Context, gameID entities.GameID) (*entities.GameStats, error)
}

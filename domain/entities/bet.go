package entities

import (
	"time"

	"github.com/google/uuid"
)

// PlayerID identifies a participant. Identities are assigned and verified
// by the network layer; the engine treats them as opaque.
type PlayerID string

// GameID identifies one table session.
type GameID string

// NewGameID returns a fresh random game identifier.
func NewGameID() GameID {
	return GameID(uuid.NewString())
}

// Bet is one player's wager. Records are immutable once placed; replacing
// a bet means storing a new record in the same slot.
type Bet struct {
	ID       string    `json:"id"`
	Player   PlayerID  `json:"player"`
	GameID   GameID    `json:"game_id"`
	Type     BetType   `json:"type"`
	Amount   Tokens    `json:"amount"`
	PlacedAt time.Time `json:"placed_at"`
}

// NewBet creates a bet record with a fresh id and placement timestamp.
func NewBet(player PlayerID, gameID GameID, betType BetType, amount Tokens) Bet {
	return Bet{
		ID:       uuid.NewString(),
		Player:   player,
		GameID:   gameID,
		Type:     betType,
		Amount:   amount,
		PlacedAt: time.Now().UTC(),
	}
}

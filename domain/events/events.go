package events

import "crapstable/domain/entities"

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeBetPlaced     EventType = "bet_placed"
	EventTypeRollProcessed EventType = "roll_processed"
	EventTypeBetResolved   EventType = "bet_resolved"
	EventTypePhaseChanged  EventType = "phase_changed"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// BetPlacedEvent represents a bet accepted onto the table
type BetPlacedEvent struct {
	GameID  entities.GameID   `json:"game_id"`
	Player  entities.PlayerID `json:"player"`
	BetType entities.BetType  `json:"bet_type"`
	Amount  entities.Tokens   `json:"amount"`
}

func (e BetPlacedEvent) Type() EventType {
	return EventTypeBetPlaced
}

// RollProcessedEvent represents one dice roll applied to a game
type RollProcessedEvent struct {
	GameID      entities.GameID    `json:"game_id"`
	Die1        uint8              `json:"die1"`
	Die2        uint8              `json:"die2"`
	Total       uint8              `json:"total"`
	Phase       entities.GamePhase `json:"phase"`
	Point       uint8              `json:"point"`
	SeriesID    uint64             `json:"series_id"`
	RollCount   uint64             `json:"roll_count"`
	Resolutions int                `json:"resolutions"`
}

func (e RollProcessedEvent) Type() EventType {
	return EventTypeRollProcessed
}

// BetResolvedEvent represents a single bet settlement
type BetResolvedEvent struct {
	GameID  entities.GameID     `json:"game_id"`
	Player  entities.PlayerID   `json:"player"`
	BetType entities.BetType    `json:"bet_type"`
	Outcome entities.BetOutcome `json:"outcome"`
	Amount  entities.Tokens     `json:"amount"`
	Payout  entities.Tokens     `json:"payout"`
}

func (e BetResolvedEvent) Type() EventType {
	return EventTypeBetResolved
}

// PhaseChangedEvent represents a come-out/point transition
type PhaseChangedEvent struct {
	GameID   entities.GameID    `json:"game_id"`
	OldPhase entities.GamePhase `json:"old_phase"`
	NewPhase entities.GamePhase `json:"new_phase"`
	Point    uint8              `json:"point"`
	SeriesID uint64             `json:"series_id"`
}

func (e PhaseChangedEvent) Type() EventType {
	return EventTypePhaseChanged
}

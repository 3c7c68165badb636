package entities

import "errors"

// Validation errors returned by game mutations. All of them are local and
// recoverable: the aggregate is never left partially updated when one of
// these is returned.
var (
	// ErrWrongGame means a bet's game id does not match the state it was
	// submitted against.
	ErrWrongGame = errors.New("bet does not belong to this game")

	// ErrPlayerNotInGame means the acting player is not a participant.
	ErrPlayerNotInGame = errors.New("player is not in this game")

	// ErrGameNotStarted means no game state exists yet for the operation.
	ErrGameNotStarted = errors.New("game has not started")

	// ErrGameEnded means the game phase is terminal and rejects mutation.
	ErrGameEnded = errors.New("game has ended")

	// ErrGameFull means the participant roster is at capacity.
	ErrGameFull = errors.New("game is full")

	// ErrPlayerAlreadyInGame means the joining player is already a
	// participant.
	ErrPlayerAlreadyInGame = errors.New("player is already in this game")

	// ErrInvalidBetForPhase means the bet type may not be placed in the
	// current game phase.
	ErrInvalidBetForPhase = errors.New("bet type not allowed in current phase")

	// ErrBetNotFound means no active bet of the requested type exists for
	// the player. Special-bet queries treat this as a no-op.
	ErrBetNotFound = errors.New("no active bet of this type")
)

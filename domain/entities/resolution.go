package entities

// BetOutcome is the result category of a resolved bet.
type BetOutcome string

const (
	OutcomeWon  BetOutcome = "won"
	OutcomeLost BetOutcome = "lost"
	OutcomePush BetOutcome = "push"
)

// BetResolution records the settlement of one bet on one roll. Payout is
// the total amount returned to the player: stake plus profit for a win,
// the refunded stake for a push, zero for a loss. Applying the payout to
// player balances is the caller's job.
type BetResolution struct {
	Player  PlayerID   `json:"player"`
	BetType BetType    `json:"bet_type"`
	Amount  Tokens     `json:"amount"`
	Outcome BetOutcome `json:"outcome"`
	Payout  Tokens     `json:"payout"`
}

// WonResolution builds a winning resolution with the given total payout.
func WonResolution(player PlayerID, betType BetType, amount, payout Tokens) BetResolution {
	return BetResolution{
		Player:  player,
		BetType: betType,
		Amount:  amount,
		Outcome: OutcomeWon,
		Payout:  payout,
	}
}

// LostResolution builds a losing resolution; the stake is forfeit.
func LostResolution(player PlayerID, betType BetType, amount Tokens) BetResolution {
	return BetResolution{
		Player:  player,
		BetType: betType,
		Amount:  amount,
		Outcome: OutcomeLost,
	}
}

// PushResolution builds a push; the stake is returned unchanged.
func PushResolution(player PlayerID, betType BetType, amount Tokens) BetResolution {
	return BetResolution{
		Player:  player,
		BetType: betType,
		Amount:  amount,
		Outcome: OutcomePush,
		Payout:  amount,
	}
}

package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldBet(t *testing.T) {
	tests := []struct {
		name    string
		die1    uint8
		die2    uint8
		outcome BetOutcome
		payout  Tokens
	}{
		{"two pays triple", 1, 1, OutcomeWon, 300},
		{"twelve pays triple", 6, 6, OutcomeWon, 300},
		{"three pays double", 1, 2, OutcomeWon, 200},
		{"eleven pays double", 5, 6, OutcomeWon, 200},
		{"seven loses", 3, 4, OutcomeLost, 0},
		{"five loses", 2, 3, OutcomeLost, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame()
			mustPlace(t, g, shooter, BetField, 100)

			res := mustRoll(t, g, tt.die1, tt.die2)
			fieldRes := findResolution(res, shooter, BetField)
			require.NotNil(t, fieldRes)
			assert.Equal(t, tt.outcome, fieldRes.Outcome)
			assert.Equal(t, tt.payout, fieldRes.Payout)
			assert.False(t, g.HasBet(shooter, BetField), "field is one-roll")
		})
	}
}

func TestNextBetResolvesEveryRoll(t *testing.T) {
	g := newTestGame()
	mustPlace(t, g, shooter, BetNext7, 100)

	res := mustRoll(t, g, 3, 4)
	nextRes := findResolution(res, shooter, BetNext7)
	require.NotNil(t, nextRes)
	assert.Equal(t, OutcomeWon, nextRes.Outcome)
	assert.Equal(t, NewTokens(590), nextRes.Payout)

	mustPlace(t, g, shooter, BetNext2, 100)
	res = mustRoll(t, g, 3, 4)
	nextRes = findResolution(res, shooter, BetNext2)
	require.NotNil(t, nextRes)
	assert.Equal(t, OutcomeLost, nextRes.Outcome)
}

func TestOddsBetsSettleWithTheLine(t *testing.T) {
	g := newTestGame()
	mustPlace(t, g, shooter, BetPass, 100)

	mustRoll(t, g, 2, 2)
	require.Equal(t, uint8(4), g.Point)
	mustPlace(t, g, shooter, BetOddsPass, 100)
	mustPlace(t, g, shooter, BetOddsDontPass, 100)

	res := mustRoll(t, g, 1, 3)

	oddsRes := findResolution(res, shooter, BetOddsPass)
	require.NotNil(t, oddsRes)
	assert.Equal(t, OutcomeWon, oddsRes.Outcome)
	// Point of 4 pays 2:1 true odds.
	assert.Equal(t, NewTokens(300), oddsRes.Payout)

	dontOddsRes := findResolution(res, shooter, BetOddsDontPass)
	require.NotNil(t, dontOddsRes)
	assert.Equal(t, OutcomeLost, dontOddsRes.Outcome)
}

func TestDontOddsWinOnSevenOut(t *testing.T) {
	g := newTestGame()

	mustRoll(t, g, 4, 5)
	require.Equal(t, uint8(9), g.Point)
	mustPlace(t, g, shooter, BetOddsDontPass, 100)

	res := mustRoll(t, g, 3, 4)
	dontOddsRes := findResolution(res, shooter, BetOddsDontPass)
	require.NotNil(t, dontOddsRes)
	assert.Equal(t, OutcomeWon, dontOddsRes.Outcome)
	// Laying against a 9 pays 0.67:1.
	assert.Equal(t, NewTokens(167), dontOddsRes.Payout)
}

func TestYesAndNoBets(t *testing.T) {
	g := newTestGame()

	mustRoll(t, g, 2, 3)
	require.Equal(t, PhasePoint, g.Phase)
	mustPlace(t, g, shooter, BetYes6, 100)
	mustPlace(t, g, shooter, BetNo4, 100)

	// A neutral total leaves both standing.
	res := mustRoll(t, g, 5, 6)
	assert.Nil(t, findResolution(res, shooter, BetYes6))
	assert.Nil(t, findResolution(res, shooter, BetNo4))

	// A 6 wins Yes-6 and leaves No-4 standing.
	res = mustRoll(t, g, 2, 4)
	yesRes := findResolution(res, shooter, BetYes6)
	require.NotNil(t, yesRes)
	assert.Equal(t, OutcomeWon, yesRes.Outcome)
	assert.Equal(t, NewTokens(218), yesRes.Payout)
	assert.Nil(t, findResolution(res, shooter, BetNo4))

	// The seven wins No-4.
	res = mustRoll(t, g, 3, 4)
	noRes := findResolution(res, shooter, BetNo4)
	require.NotNil(t, noRes)
	assert.Equal(t, OutcomeWon, noRes.Outcome)
	assert.Equal(t, NewTokens(149), noRes.Payout)
}

func TestNoBetLosesOnTarget(t *testing.T) {
	g := newTestGame()

	mustRoll(t, g, 3, 3)
	require.Equal(t, PhasePoint, g.Phase)
	mustPlace(t, g, shooter, BetNo10, 100)

	res := mustRoll(t, g, 4, 6)
	noRes := findResolution(res, shooter, BetNo10)
	require.NotNil(t, noRes)
	assert.Equal(t, OutcomeLost, noRes.Outcome)
}

func TestHardwayBets(t *testing.T) {
	g := newTestGame()

	mustRoll(t, g, 4, 5)
	require.Equal(t, PhasePoint, g.Phase)
	mustPlace(t, g, shooter, BetHard8, 100)

	// Hard eight pays 10x total return.
	res := mustRoll(t, g, 4, 4)
	hardRes := findResolution(res, shooter, BetHard8)
	require.NotNil(t, hardRes)
	assert.Equal(t, OutcomeWon, hardRes.Outcome)
	assert.Equal(t, NewTokens(1000), hardRes.Payout)

	// The easy way loses.
	mustPlace(t, g, shooter, BetHard8, 100)
	res = mustRoll(t, g, 3, 5)
	hardRes = findResolution(res, shooter, BetHard8)
	require.NotNil(t, hardRes)
	assert.Equal(t, OutcomeLost, hardRes.Outcome)

	// So does the seven.
	mustPlace(t, g, shooter, BetHard4, 100)
	res = mustRoll(t, g, 3, 4)
	hardRes = findResolution(res, shooter, BetHard4)
	require.NotNil(t, hardRes)
	assert.Equal(t, OutcomeLost, hardRes.Outcome)
}

func TestComeBetTravelsToItsPoint(t *testing.T) {
	g := newTestGame()

	mustRoll(t, g, 1, 4)
	require.Equal(t, uint8(5), g.Point)
	mustPlace(t, g, shooter, BetCome, 100)

	// The come bet travels to the 4; the slot frees without a resolution.
	res := mustRoll(t, g, 1, 3)
	assert.Nil(t, findResolution(res, shooter, BetCome))
	assert.False(t, g.HasBet(shooter, BetCome))
	assert.Equal(t, NewTokens(100), g.ComePoints[shooter][4])

	// Making the come point pays even money.
	res = mustRoll(t, g, 2, 2)
	comeRes := findResolution(res, shooter, BetCome)
	require.NotNil(t, comeRes)
	assert.Equal(t, OutcomeWon, comeRes.Outcome)
	assert.Equal(t, NewTokens(200), comeRes.Payout)
	assert.Empty(t, g.ComePoints[shooter])
}

func TestComeBetImmediateResolutions(t *testing.T) {
	g := newTestGame()

	mustRoll(t, g, 1, 4)
	mustPlace(t, g, shooter, BetCome, 100)

	// A natural wins a fresh come bet immediately.
	res := mustRoll(t, g, 5, 6)
	comeRes := findResolution(res, shooter, BetCome)
	require.NotNil(t, comeRes)
	assert.Equal(t, OutcomeWon, comeRes.Outcome)
	assert.Equal(t, NewTokens(200), comeRes.Payout)

	// Craps lose it immediately, twelve included.
	mustPlace(t, g, shooter, BetCome, 100)
	res = mustRoll(t, g, 6, 6)
	comeRes = findResolution(res, shooter, BetCome)
	require.NotNil(t, comeRes)
	assert.Equal(t, OutcomeLost, comeRes.Outcome)
}

func TestDontComeBetLifecycle(t *testing.T) {
	g := newTestGame()

	mustRoll(t, g, 1, 4)
	require.Equal(t, uint8(5), g.Point)
	mustPlace(t, g, shooter, BetDontCome, 100)

	// Twelve pushes a fresh don't-come bet.
	res := mustRoll(t, g, 6, 6)
	dcRes := findResolution(res, shooter, BetDontCome)
	require.NotNil(t, dcRes)
	assert.Equal(t, OutcomePush, dcRes.Outcome)

	// Travel to the 6, then win on the seven-out.
	mustPlace(t, g, shooter, BetDontCome, 100)
	res = mustRoll(t, g, 2, 4)
	assert.Nil(t, findResolution(res, shooter, BetDontCome))
	assert.Equal(t, NewTokens(100), g.DontComePoints[shooter][6])

	res = mustRoll(t, g, 3, 4)
	dcRes = findResolution(res, shooter, BetDontCome)
	require.NotNil(t, dcRes)
	assert.Equal(t, OutcomeWon, dcRes.Outcome)
	assert.Equal(t, NewTokens(200), dcRes.Payout)
}

func countResolutions(res []BetResolution, player PlayerID, betType BetType) int {
	n := 0
	for _, r := range res {
		if r.Player == player && r.BetType == betType {
			n++
		}
	}
	return n
}

func TestDontComeOddsSettleOnceWithTwoPoints(t *testing.T) {
	g := newTestGame()

	mustRoll(t, g, 2, 2)
	require.Equal(t, uint8(4), g.Point)

	// Travel two don't-come bets to the 5 and the 6.
	mustPlace(t, g, shooter, BetDontCome, 100)
	mustRoll(t, g, 2, 3)
	mustPlace(t, g, shooter, BetDontCome, 100)
	mustRoll(t, g, 2, 4)
	require.Len(t, g.DontComePoints[shooter], 2)

	mustPlace(t, g, shooter, BetOddsDontCome, 100)

	// The seven decides both points, but the single odds wager pays
	// exactly once, at the lowest decided point's lay odds.
	res := mustRoll(t, g, 3, 4)
	assert.Equal(t, 2, countResolutions(res, shooter, BetDontCome))
	require.Equal(t, 1, countResolutions(res, shooter, BetOddsDontCome))
	oddsRes := findResolution(res, shooter, BetOddsDontCome)
	assert.Equal(t, OutcomeWon, oddsRes.Outcome)
	assert.Equal(t, NewTokens(167), oddsRes.Payout)
}

func TestComeOddsLoseOnceWithTwoPoints(t *testing.T) {
	g := newTestGame()

	mustRoll(t, g, 2, 2)
	require.Equal(t, uint8(4), g.Point)

	mustPlace(t, g, shooter, BetCome, 100)
	mustRoll(t, g, 2, 3)
	mustPlace(t, g, shooter, BetCome, 100)
	mustRoll(t, g, 2, 4)
	require.Len(t, g.ComePoints[shooter], 2)

	mustPlace(t, g, shooter, BetOddsCome, 100)

	res := mustRoll(t, g, 3, 4)
	assert.Equal(t, 2, countResolutions(res, shooter, BetCome))
	require.Equal(t, 1, countResolutions(res, shooter, BetOddsCome))
	oddsRes := findResolution(res, shooter, BetOddsCome)
	assert.Equal(t, OutcomeLost, oddsRes.Outcome)
}

func TestComePointLostOnSevenOut(t *testing.T) {
	g := newTestGame()

	mustRoll(t, g, 1, 4)
	mustPlace(t, g, shooter, BetCome, 100)
	mustRoll(t, g, 1, 3)
	require.Equal(t, NewTokens(100), g.ComePoints[shooter][4])

	res := mustRoll(t, g, 3, 4)
	comeRes := findResolution(res, shooter, BetCome)
	require.NotNil(t, comeRes)
	assert.Equal(t, OutcomeLost, comeRes.Outcome)
	assert.Empty(t, g.ComePoints[shooter])
}

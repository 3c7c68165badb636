package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogueIsClosed(t *testing.T) {
	assert.Len(t, AllBetTypes, 60)

	seen := make(map[BetType]bool)
	for _, b := range AllBetTypes {
		assert.False(t, seen[b], "duplicate catalogue entry %s", b)
		seen[b] = true
	}
}

func TestParseBetType(t *testing.T) {
	b, err := ParseBetType("pass")
	require.NoError(t, err)
	assert.Equal(t, BetPass, b)

	b, err = ParseBetType("different_doubles")
	require.NoError(t, err)
	assert.Equal(t, BetDifferentDoubles, b)

	_, err = ParseBetType("yes_7")
	assert.Error(t, err)

	_, err = ParseBetType("")
	assert.Error(t, err)
}

func TestTargetNumber(t *testing.T) {
	n, ok := BetHard8.TargetNumber()
	require.True(t, ok)
	assert.Equal(t, uint8(8), n)

	n, ok = BetNext12.TargetNumber()
	require.True(t, ok)
	assert.Equal(t, uint8(12), n)

	n, ok = BetRepeater5.TargetNumber()
	require.True(t, ok)
	assert.Equal(t, uint8(5), n)

	_, ok = BetPass.TargetNumber()
	assert.False(t, ok)
	_, ok = BetFire.TargetNumber()
	assert.False(t, ok)
}

func TestIsOneRoll(t *testing.T) {
	assert.True(t, BetField.IsOneRoll())
	assert.True(t, BetNext7.IsOneRoll())
	assert.False(t, BetPass.IsOneRoll())
	assert.False(t, BetYes6.IsOneRoll())
	assert.False(t, BetFire.IsOneRoll())
}

func TestIsValidForPhase(t *testing.T) {
	// Ended rejects everything.
	for _, b := range AllBetTypes {
		assert.False(t, b.IsValidForPhase(PhaseEnded), "%s in ended phase", b)
	}

	// Line and proposition bets are fine on the come-out.
	assert.True(t, BetPass.IsValidForPhase(PhaseComeOut))
	assert.True(t, BetField.IsValidForPhase(PhaseComeOut))
	assert.True(t, BetFire.IsValidForPhase(PhaseComeOut))
	assert.True(t, BetNext7.IsValidForPhase(PhaseComeOut))

	// Come and odds bets need an established point.
	for _, b := range []BetType{BetCome, BetDontCome, BetOddsPass, BetOddsDontPass, BetOddsCome, BetOddsDontCome, BetYes6, BetNo4} {
		assert.False(t, b.IsValidForPhase(PhaseComeOut), "%s on come-out", b)
		assert.True(t, b.IsValidForPhase(PhasePoint), "%s with point up", b)
	}
}

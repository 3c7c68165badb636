package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiceRollValidation(t *testing.T) {
	roll, err := NewDiceRoll(3, 4)
	require.NoError(t, err)
	assert.Equal(t, uint8(7), roll.Total())

	for _, pair := range [][2]uint8{{0, 3}, {3, 0}, {7, 1}, {1, 7}} {
		_, err := NewDiceRoll(pair[0], pair[1])
		assert.ErrorIs(t, err, ErrInvalidDie, "dice %v", pair)
	}
}

func TestDiceRollClassification(t *testing.T) {
	tests := []struct {
		die1, die2 uint8
		natural    bool
		craps      bool
		double     bool
		hardway    bool
	}{
		{3, 4, true, false, false, false},
		{5, 6, true, false, false, false},
		{1, 1, false, true, true, false},
		{1, 2, false, true, false, false},
		{6, 6, false, true, true, false},
		{2, 2, false, false, true, true},
		{3, 3, false, false, true, true},
		{4, 4, false, false, true, true},
		{5, 5, false, false, true, true},
		{1, 3, false, false, false, false},
	}

	for _, tt := range tests {
		roll := DiceRoll{Die1: tt.die1, Die2: tt.die2}
		assert.Equal(t, tt.natural, roll.IsNatural(), "natural %s", roll)
		assert.Equal(t, tt.craps, roll.IsCraps(), "craps %s", roll)
		assert.Equal(t, tt.double, roll.IsDouble(), "double %s", roll)
		assert.Equal(t, tt.hardway, roll.IsHardWay(), "hardway %s", roll)
	}
}

func TestDiceRollString(t *testing.T) {
	roll := DiceRoll{Die1: 2, Die2: 5}
	assert.Equal(t, "2+5=7", roll.String())
}

package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokensFromWhole(t *testing.T) {
	amount, err := TokensFromWhole(5)
	require.NoError(t, err)
	assert.Equal(t, Tokens(5_000_000), amount)

	_, err = TokensFromWhole(^uint64(0))
	assert.ErrorIs(t, err, ErrTokenOverflow)
}

func TestTokensCheckedArithmetic(t *testing.T) {
	a := NewTokens(100)
	b := NewTokens(250)

	sum, err := a.CheckedAdd(b)
	require.NoError(t, err)
	assert.Equal(t, Tokens(350), sum)

	diff, err := b.CheckedSub(a)
	require.NoError(t, err)
	assert.Equal(t, Tokens(150), diff)

	_, err = a.CheckedSub(b)
	assert.ErrorIs(t, err, ErrTokenOverflow)

	_, err = Tokens(^uint64(0)).CheckedAdd(1)
	assert.ErrorIs(t, err, ErrTokenOverflow)
}

func TestTokensMulRaw(t *testing.T) {
	stake := NewTokens(500)

	payout, err := stake.MulRaw(2)
	require.NoError(t, err)
	assert.Equal(t, Tokens(1000), payout)

	_, err = Tokens(^uint64(0)).MulRaw(2)
	assert.ErrorIs(t, err, ErrTokenOverflow)

	zero, err := Tokens(0).MulRaw(1000)
	require.NoError(t, err)
	assert.Equal(t, Tokens(0), zero)
}

func TestTokensMulSaturating(t *testing.T) {
	assert.Equal(t, Tokens(1000), NewTokens(500).MulSaturating(2))
	assert.Equal(t, Tokens(^uint64(0)), Tokens(^uint64(0)).MulSaturating(2))
	assert.Equal(t, Tokens(^uint64(0)), Tokens(^uint64(0)/2+1).MulSaturating(2))
}

func TestTokensWithMultiplier(t *testing.T) {
	tests := []struct {
		name     string
		stake    Tokens
		multX100 uint32
		want     Tokens
	}{
		{"even money", 500, 100, 1000},
		{"true odds 2:1", 100, 200, 300},
		{"fractional 1.96:1", 100, 196, 296},
		{"don't odds 1:2", 100, 50, 150},
		{"integer truncation", 3, 50, 4},
		{"large stake exact", 737869762948383, 25000, 185205310500044133},
		{"saturates instead of wrapping", Tokens(^uint64(0) / 2), 300, Tokens(^uint64(0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stake.WithMultiplier(tt.multX100))
		})
	}
}

func TestTokensString(t *testing.T) {
	assert.Equal(t, "2", Tokens(2_000_000).String())
	assert.Equal(t, "1.500000", Tokens(1_500_000).String())
	assert.Equal(t, "0.000001", Tokens(1).String())
}

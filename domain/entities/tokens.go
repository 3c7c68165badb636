package entities

import (
	"errors"
	"fmt"
	"math"
)

// Tokens is a fixed-point token amount. One token is 1_000_000 base units,
// so payout math never touches floating point.
type Tokens uint64

// TokenUnit is the number of base units in one whole token.
const TokenUnit uint64 = 1_000_000

// ErrTokenOverflow is returned when an arithmetic operation would exceed
// the representable token range.
var ErrTokenOverflow = errors.New("token amount overflow")

// NewTokens creates a token amount from raw base units.
func NewTokens(amount uint64) Tokens {
	return Tokens(amount)
}

// TokensFromWhole converts a whole-token count into base units.
func TokensFromWhole(whole uint64) (Tokens, error) {
	if whole > math.MaxUint64/TokenUnit {
		return 0, ErrTokenOverflow
	}
	return Tokens(whole * TokenUnit), nil
}

// Amount returns the raw base-unit value.
func (t Tokens) Amount() uint64 {
	return uint64(t)
}

// IsZero reports whether the amount is zero.
func (t Tokens) IsZero() bool {
	return t == 0
}

// CheckedAdd returns t+other or an error on overflow.
func (t Tokens) CheckedAdd(other Tokens) (Tokens, error) {
	if uint64(t) > math.MaxUint64-uint64(other) {
		return 0, ErrTokenOverflow
	}
	return t + other, nil
}

// CheckedSub returns t-other or an error on underflow.
func (t Tokens) CheckedSub(other Tokens) (Tokens, error) {
	if other > t {
		return 0, ErrTokenOverflow
	}
	return t - other, nil
}

// MulRaw returns t multiplied by an integer factor, erroring on overflow.
func (t Tokens) MulRaw(factor uint64) (Tokens, error) {
	if factor != 0 && uint64(t) > math.MaxUint64/factor {
		return 0, ErrTokenOverflow
	}
	return Tokens(uint64(t) * factor), nil
}

// MulSaturating returns t multiplied by an integer factor, capping at the
// maximum representable amount instead of wrapping. Settlement paths use
// this so an absurd stake can never wrap into a near-zero payout.
func (t Tokens) MulSaturating(factor uint64) Tokens {
	v, err := t.MulRaw(factor)
	if err != nil {
		return Tokens(math.MaxUint64)
	}
	return v
}

// WithMultiplier returns the total payout for a winning stake at the given
// profit multiplier expressed in hundredths (e.g. 196 means a 1.96:1 profit,
// so the return is stake + stake*196/100). The stake is always included.
// The profit is computed in two pieces so the intermediate product cannot
// wrap, and the result saturates at the maximum representable amount.
func (t Tokens) WithMultiplier(multiplierX100 uint32) Tokens {
	m := uint64(multiplierX100)
	hi, lo := uint64(t)/100, uint64(t)%100
	frac := lo * m / 100
	if m != 0 && (hi > math.MaxUint64/m || hi*m > math.MaxUint64-frac) {
		return Tokens(math.MaxUint64)
	}
	profit := hi*m + frac
	if profit > math.MaxUint64-uint64(t) {
		return Tokens(math.MaxUint64)
	}
	return Tokens(uint64(t) + profit)
}

func (t Tokens) String() string {
	whole := uint64(t) / TokenUnit
	frac := uint64(t) % TokenUnit
	if frac == 0 {
		return fmt.Sprintf("%d", whole)
	}
	return fmt.Sprintf("%d.%06d", whole, frac)
}

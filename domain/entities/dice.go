package entities

import (
	"errors"
	"fmt"
)

// ErrInvalidDie is returned when a die face is outside 1..6.
var ErrInvalidDie = errors.New("die value must be between 1 and 6")

// DiceRoll is a single roll of two dice. Roll values are produced and
// agreed upon by the consensus layer; the engine only validates the range.
type DiceRoll struct {
	Die1 uint8 `json:"die1"`
	Die2 uint8 `json:"die2"`
}

// NewDiceRoll validates the die faces and returns the roll.
func NewDiceRoll(die1, die2 uint8) (DiceRoll, error) {
	if die1 < 1 || die1 > 6 || die2 < 1 || die2 > 6 {
		return DiceRoll{}, ErrInvalidDie
	}
	return DiceRoll{Die1: die1, Die2: die2}, nil
}

// Total returns the sum of both dice.
func (r DiceRoll) Total() uint8 {
	return r.Die1 + r.Die2
}

// IsNatural reports a come-out winner total of 7 or 11.
func (r DiceRoll) IsNatural() bool {
	t := r.Total()
	return t == 7 || t == 11
}

// IsCraps reports a come-out loser total of 2, 3 or 12.
func (r DiceRoll) IsCraps() bool {
	t := r.Total()
	return t == 2 || t == 3 || t == 12
}

// IsDouble reports whether both dice show the same face.
func (r DiceRoll) IsDouble() bool {
	return r.Die1 == r.Die2
}

// IsHardWay reports a double whose total is one of the hardway numbers
// (4, 6, 8 or 10).
func (r DiceRoll) IsHardWay() bool {
	if !r.IsDouble() {
		return false
	}
	t := r.Total()
	return t == 4 || t == 6 || t == 8 || t == 10
}

func (r DiceRoll) String() string {
	return fmt.Sprintf("%d+%d=%d", r.Die1, r.Die2, r.Total())
}

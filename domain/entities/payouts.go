package entities

import "fmt"

// Payout tables. Multipliers are integers scaled by 100 ("a 1.96:1 profit"
// is 196) so settlements stay in integer arithmetic; the helpers on Tokens
// add the stake back in. The panics below guard internal dispatch only:
// callers never reach them with catalogue-valid input.

// YesMultiplier returns the profit multiplier (x100) for a Yes bet on the
// given target number.
func YesMultiplier(target uint8) uint32 {
	switch target {
	case 2, 12:
		return 588
	case 3, 11:
		return 294
	case 4, 10:
		return 196
	case 5, 9:
		return 147
	case 6, 8:
		return 118
	}
	panic(fmt.Sprintf("yes multiplier: invalid target %d", target))
}

// NoMultiplier returns the profit multiplier (x100) for a No bet on the
// given target number.
func NoMultiplier(target uint8) uint32 {
	switch target {
	case 2, 12:
		return 16
	case 3, 11:
		return 33
	case 4, 10:
		return 49
	case 5, 9:
		return 65
	case 6, 8:
		return 82
	}
	panic(fmt.Sprintf("no multiplier: invalid target %d", target))
}

// NextMultiplier returns the profit multiplier (x100) for a Next one-roll
// bet on the given target number.
func NextMultiplier(target uint8) uint32 {
	switch target {
	case 2, 12:
		return 3430
	case 3, 11:
		return 1666
	case 4, 10:
		return 1078
	case 5, 9:
		return 784
	case 6, 8:
		return 608
	case 7:
		return 490
	}
	panic(fmt.Sprintf("next multiplier: invalid target %d", target))
}

// RepeaterMultiplier returns the profit multiplier (x100) for a completed
// Repeater bet on the given number.
func RepeaterMultiplier(number uint8) uint32 {
	switch number {
	case 2, 12:
		return 4000
	case 3, 11:
		return 5000
	case 4, 10:
		return 6500
	case 5, 9:
		return 8000
	case 6, 8:
		return 9000
	}
	panic(fmt.Sprintf("repeater multiplier: invalid number %d", number))
}

// RepeaterRequiredCount returns how many times the number must be rolled
// within a series before the Repeater bet pays. Rare totals need fewer
// hits than frequent ones.
func RepeaterRequiredCount(number uint8) uint8 {
	switch number {
	case 2, 12:
		return 2
	case 3, 11:
		return 3
	case 4, 10:
		return 4
	case 5, 9:
		return 5
	case 6, 8:
		return 6
	}
	panic(fmt.Sprintf("repeater count: invalid number %d", number))
}

// OddsMultiplier returns the true-odds profit multiplier (x100) for odds
// behind the line, keyed by the established point and the side of the
// line the odds back.
func OddsMultiplier(point uint8, passSide bool) uint32 {
	switch {
	case (point == 4 || point == 10) && passSide:
		return 200
	case (point == 5 || point == 9) && passSide:
		return 150
	case (point == 6 || point == 8) && passSide:
		return 120
	case point == 4 || point == 10:
		return 50
	case point == 5 || point == 9:
		return 67
	case point == 6 || point == 8:
		return 83
	}
	panic(fmt.Sprintf("odds multiplier: invalid point %d", point))
}

// HardwayPayoutFactor returns the total-return factor for a hardway win:
// Hard 4 and Hard 10 pay 7:1, Hard 6 and Hard 8 pay 9:1, stake included.
func HardwayPayoutFactor(number uint8) uint64 {
	switch number {
	case 4, 10:
		return 8
	case 6, 8:
		return 10
	}
	panic(fmt.Sprintf("hardway payout: invalid number %d", number))
}

// FieldPayoutFactor returns the total-return factor for a winning field
// total, or 0 for a losing one.
func FieldPayoutFactor(total uint8) uint64 {
	switch total {
	case 2, 12:
		return 3
	case 3, 4, 9, 10, 11:
		return 2
	default:
		return 0
	}
}

// FirePayoutFactor returns the total-return factor for a Fire bet with
// the given number of distinct points made, or 0 while still pending.
func FirePayoutFactor(uniquePoints int) uint64 {
	switch uniquePoints {
	case 4:
		return 25
	case 5:
		return 250
	case 6:
		return 1000
	default:
		return 0
	}
}

// BonusPayoutFactor returns the total-return factor for a completed bonus
// bet of the given type.
func BonusPayoutFactor(betType BetType) uint64 {
	switch betType {
	case BetBonusSmall, BetBonusTall:
		return 31
	case BetBonusAll:
		return 151
	}
	panic(fmt.Sprintf("bonus payout: invalid bet type %s", betType))
}

// HotRollerMultiplier returns the profit multiplier (x100) for a Hot
// Roller bet at the given roll count, or 0 while still pending.
func HotRollerMultiplier(rollCount uint64) uint32 {
	switch {
	case rollCount <= 20:
		return 0
	case rollCount <= 30:
		return 200
	case rollCount <= 40:
		return 500
	case rollCount <= 50:
		return 1000
	default:
		return 2000
	}
}

// RideLineMultiplier returns the profit multiplier (x100) for a Ride the
// Line bet at the given consecutive pass-line win count, or 0 while
// still pending.
func RideLineMultiplier(passWins uint32) uint32 {
	switch {
	case passWins < 3:
		return 0
	case passWins == 3:
		return 300
	case passWins == 4:
		return 500
	case passWins == 5:
		return 1000
	default:
		return 2500
	}
}

// ReplayMultiplier returns the profit multiplier (x100) for a Replay bet
// once a point value has been made the given number of times, or 0 while
// still pending.
func ReplayMultiplier(timesMade uint32) uint32 {
	switch {
	case timesMade < 3:
		return 0
	case timesMade == 3:
		return 1000
	case timesMade == 4:
		return 2500
	default:
		return 5000
	}
}

// DifferentDoublesMultiplier returns the profit multiplier (x100) for a
// Different Doubles bet at the given distinct-doubles count, or 0 while
// still pending.
func DifferentDoublesMultiplier(distinct int) uint32 {
	switch {
	case distinct < 2:
		return 0
	case distinct == 2:
		return 600
	case distinct == 3:
		return 2500
	case distinct == 4:
		return 10000
	default:
		return 25000
	}
}

// TwiceHardPayoutFactor is the total-return factor for a Twice Hard win
// (6:1 plus the stake).
const TwiceHardPayoutFactor uint64 = 7

// MuggsyPayoutFactor is the total-return factor for a Muggsy win
// (2:1 plus the stake).
const MuggsyPayoutFactor uint64 = 3

// IsPointNumber reports whether the total can be established as a point.
func IsPointNumber(total uint8) bool {
	switch total {
	case 4, 5, 6, 8, 9, 10:
		return true
	}
	return false
}

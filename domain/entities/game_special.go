package entities

// Multi-roll special bets. The Resolve*Bet methods are pure reads over the
// tracked series state: they return a winning resolution once the bet's
// condition holds, and nil while it is still pending or no such bet exists.
// Callers settle through ResolveSpecialBet, which also frees the bet slot.
// Specials still open when the shooter sevens out are settled by the roll
// processor, win or lose, before the series trackers are cleared.

var bonusSmallNumbers = []uint8{2, 3, 4, 5, 6}
var bonusTallNumbers = []uint8{8, 9, 10, 11, 12}

// ResolveSpecialBet settles the player's special bet of the given type if
// its condition currently holds. A nil return means the bet is pending,
// absent, or not a special; nothing changes in that case.
func (g *CrapsGame) ResolveSpecialBet(player PlayerID, betType BetType) *BetResolution {
	res := g.querySpecial(player, betType)
	if res != nil {
		g.removeBet(player, betType)
	}
	return res
}

func (g *CrapsGame) querySpecial(player PlayerID, betType BetType) *BetResolution {
	switch betType {
	case BetFire:
		return g.ResolveFireBet(player)
	case BetBonusSmall, BetBonusTall, BetBonusAll:
		return g.ResolveBonusBet(player, betType)
	case BetHotRoller:
		return g.ResolveHotRollerBet(player)
	case BetTwiceHard:
		return g.ResolveTwiceHardBet(player)
	case BetRideLine:
		return g.ResolveRideLineBet(player)
	case BetMuggsy:
		return g.ResolveMuggsyBet(player)
	case BetReplay:
		return g.ResolveReplayBet(player)
	case BetDifferentDoubles:
		return g.ResolveDifferentDoublesBet(player)
	}
	if _, ok := repeaterTargets[betType]; ok {
		return g.ResolveRepeaterBet(player, betType)
	}
	return nil
}

// ResolveFireBet pays once four or more distinct points have been made
// this series: 25x at 4, 250x at 5, 1000x at all 6.
func (g *CrapsGame) ResolveFireBet(player PlayerID) *BetResolution {
	bet, ok := g.betFor(player, BetFire)
	if !ok {
		return nil
	}
	factor := FirePayoutFactor(len(g.FirePoints))
	if factor == 0 {
		return nil
	}
	payout := bet.Amount.MulSaturating(factor)
	res := WonResolution(player, BetFire, bet.Amount, payout)
	return &res
}

// ResolveRepeaterBet pays once the target number has been rolled its
// required count of times within the series.
func (g *CrapsGame) ResolveRepeaterBet(player PlayerID, betType BetType) *BetResolution {
	target, ok := repeaterTargets[betType]
	if !ok {
		return nil
	}
	bet, ok := g.betFor(player, betType)
	if !ok {
		return nil
	}
	if g.RepeaterCounts[target] < RepeaterRequiredCount(target) {
		return nil
	}
	payout := bet.Amount.WithMultiplier(RepeaterMultiplier(target))
	res := WonResolution(player, betType, bet.Amount, payout)
	return &res
}

// ResolveBonusBet pays once the series has rolled every small number
// (2-6), every tall number (8-12), or all ten, depending on the variant.
func (g *CrapsGame) ResolveBonusBet(player PlayerID, betType BetType) *BetResolution {
	bet, ok := g.betFor(player, betType)
	if !ok {
		return nil
	}
	var complete bool
	switch betType {
	case BetBonusSmall:
		complete = g.hasAllBonusNumbers(bonusSmallNumbers)
	case BetBonusTall:
		complete = g.hasAllBonusNumbers(bonusTallNumbers)
	case BetBonusAll:
		complete = g.hasAllBonusNumbers(bonusSmallNumbers) && g.hasAllBonusNumbers(bonusTallNumbers)
	default:
		return nil
	}
	if !complete {
		return nil
	}
	payout := bet.Amount.MulSaturating(BonusPayoutFactor(betType))
	res := WonResolution(player, betType, bet.Amount, payout)
	return &res
}

func (g *CrapsGame) hasAllBonusNumbers(numbers []uint8) bool {
	for _, n := range numbers {
		if !g.BonusNumbers[n] {
			return false
		}
	}
	return true
}

// ResolveHotRollerBet pays by roll-count bracket once the table has gone
// more than 20 rolls with a point up.
func (g *CrapsGame) ResolveHotRollerBet(player PlayerID) *BetResolution {
	bet, ok := g.betFor(player, BetHotRoller)
	if !ok {
		return nil
	}
	if g.Phase != PhasePoint {
		return nil
	}
	mult := HotRollerMultiplier(g.RollCount)
	if mult == 0 {
		return nil
	}
	payout := bet.Amount.WithMultiplier(mult)
	res := WonResolution(player, BetHotRoller, bet.Amount, payout)
	return &res
}

// ResolveTwiceHardBet pays when any hardway number has hit the hard way
// twice in a row without the easy way breaking the run.
func (g *CrapsGame) ResolveTwiceHardBet(player PlayerID) *BetResolution {
	bet, ok := g.betFor(player, BetTwiceHard)
	if !ok {
		return nil
	}
	hit := false
	for _, streak := range g.HardwayStreaks {
		if streak >= 2 {
			hit = true
			break
		}
	}
	if !hit {
		return nil
	}
	payout := bet.Amount.MulSaturating(TwiceHardPayoutFactor)
	res := WonResolution(player, BetTwiceHard, bet.Amount, payout)
	return &res
}

// ResolveRideLineBet pays once the pass line has won three or more times
// in a row, escalating with the streak.
func (g *CrapsGame) ResolveRideLineBet(player PlayerID) *BetResolution {
	bet, ok := g.betFor(player, BetRideLine)
	if !ok {
		return nil
	}
	mult := RideLineMultiplier(g.PassWinStreak)
	if mult == 0 {
		return nil
	}
	payout := bet.Amount.WithMultiplier(mult)
	res := WonResolution(player, BetRideLine, bet.Amount, payout)
	return &res
}

// ResolveMuggsyBet pays on the exact sequence of a come-out natural 7
// immediately followed by establishing a point. The two phase snapshots
// distinguish that sequence from a seven-out followed by a new point.
func (g *CrapsGame) ResolveMuggsyBet(player PlayerID) *BetResolution {
	bet, ok := g.betFor(player, BetMuggsy)
	if !ok {
		return nil
	}
	n := len(g.RollHistory)
	if n < 2 {
		return nil
	}
	if g.PrevRollPhase != PhaseComeOut || g.LastRollPhase != PhaseComeOut {
		return nil
	}
	if g.RollHistory[n-2].Total() != 7 {
		return nil
	}
	if g.Phase != PhasePoint || g.RollHistory[n-1].Total() != g.Point {
		return nil
	}
	payout := bet.Amount.MulSaturating(MuggsyPayoutFactor)
	res := WonResolution(player, BetMuggsy, bet.Amount, payout)
	return &res
}

// ResolveReplayBet pays once any single point value has been made three
// or more times across the series.
func (g *CrapsGame) ResolveReplayBet(player PlayerID) *BetResolution {
	bet, ok := g.betFor(player, BetReplay)
	if !ok {
		return nil
	}
	counts := make(map[uint8]uint32)
	var best uint32
	for _, p := range g.PointHistory {
		counts[p]++
		if counts[p] > best {
			best = counts[p]
		}
	}
	mult := ReplayMultiplier(best)
	if mult == 0 {
		return nil
	}
	payout := bet.Amount.WithMultiplier(mult)
	res := WonResolution(player, BetReplay, bet.Amount, payout)
	return &res
}

// ResolveDifferentDoublesBet pays once two or more distinct doubles have
// been rolled this series, escalating with the count.
func (g *CrapsGame) ResolveDifferentDoublesBet(player PlayerID) *BetResolution {
	bet, ok := g.betFor(player, BetDifferentDoubles)
	if !ok {
		return nil
	}
	mult := DifferentDoublesMultiplier(len(g.DoublesRolled))
	if mult == 0 {
		return nil
	}
	payout := bet.Amount.WithMultiplier(mult)
	res := WonResolution(player, BetDifferentDoubles, bet.Amount, payout)
	return &res
}

// settleSpecialsAtSevenOut closes every outstanding special bet when the
// shooter sevens out. A bet whose condition holds at that moment pays;
// everything else loses with the series. Runs before the trackers clear.
func (g *CrapsGame) settleSpecialsAtSevenOut() []BetResolution {
	var resolutions []BetResolution
	for _, player := range g.sortedBettors() {
		for _, betType := range AllBetTypes {
			if !betType.IsSpecial() {
				continue
			}
			bet, ok := g.betFor(player, betType)
			if !ok {
				continue
			}
			if res := g.querySpecial(player, betType); res != nil {
				resolutions = append(resolutions, *res)
			} else {
				resolutions = append(resolutions, LostResolution(player, betType, bet.Amount))
			}
		}
	}
	return resolutions
}

package entities

import "sort"

// Per-roll bet resolution. Split by phase the way the table works: the
// come-out roll only decides line bets, point-phase rolls decide the
// line, odds, yes/no propositions, hardways and travelling come bets,
// and the one-roll propositions are settled on every roll regardless.

func (g *CrapsGame) resolveComeOutRoll(roll DiceRoll) []BetResolution {
	var resolutions []BetResolution
	total := roll.Total()

	for _, player := range g.sortedBettors() {
		if bet, ok := g.betFor(player, BetPass); ok {
			switch {
			case total == 7 || total == 11:
				payout := bet.Amount.MulSaturating(2)
				resolutions = append(resolutions, WonResolution(player, BetPass, bet.Amount, payout))
			case total == 2 || total == 3:
				resolutions = append(resolutions, LostResolution(player, BetPass, bet.Amount))
			}
			// 12 resolves nothing for Pass: no point is set and the bet
			// stands for the next come-out.
		}
		if bet, ok := g.betFor(player, BetDontPass); ok {
			switch {
			case total == 2 || total == 3:
				payout := bet.Amount.MulSaturating(2)
				resolutions = append(resolutions, WonResolution(player, BetDontPass, bet.Amount, payout))
			case total == 7 || total == 11:
				resolutions = append(resolutions, LostResolution(player, BetDontPass, bet.Amount))
			case total == 12:
				resolutions = append(resolutions, PushResolution(player, BetDontPass, bet.Amount))
			}
		}
	}
	return resolutions
}

func (g *CrapsGame) resolvePointRoll(roll DiceRoll) []BetResolution {
	var resolutions []BetResolution
	total := roll.Total()
	point := g.Point

	for _, player := range g.sortedBettors() {
		resolutions = append(resolutions, g.resolveLineBets(player, total, point)...)
		resolutions = append(resolutions, g.resolveYesBets(player, total)...)
		resolutions = append(resolutions, g.resolveNoBets(player, total)...)
		resolutions = append(resolutions, g.resolveHardwayBets(player, roll)...)
		resolutions = append(resolutions, g.resolveComeBets(player, total)...)
		resolutions = append(resolutions, g.resolveDontComeBets(player, total)...)
	}
	return resolutions
}

func (g *CrapsGame) resolveLineBets(player PlayerID, total, point uint8) []BetResolution {
	var resolutions []BetResolution

	if bet, ok := g.betFor(player, BetPass); ok {
		switch total {
		case point:
			payout := bet.Amount.MulSaturating(2)
			resolutions = append(resolutions, WonResolution(player, BetPass, bet.Amount, payout))
		case 7:
			resolutions = append(resolutions, LostResolution(player, BetPass, bet.Amount))
		}
	}
	if bet, ok := g.betFor(player, BetDontPass); ok {
		switch total {
		case 7:
			payout := bet.Amount.MulSaturating(2)
			resolutions = append(resolutions, WonResolution(player, BetDontPass, bet.Amount, payout))
		case point:
			resolutions = append(resolutions, LostResolution(player, BetDontPass, bet.Amount))
		}
	}

	// Odds pay true odds keyed by the point, and only settle when the
	// underlying line bet settles.
	if bet, ok := g.betFor(player, BetOddsPass); ok {
		switch total {
		case point:
			payout := bet.Amount.WithMultiplier(OddsMultiplier(point, true))
			resolutions = append(resolutions, WonResolution(player, BetOddsPass, bet.Amount, payout))
		case 7:
			resolutions = append(resolutions, LostResolution(player, BetOddsPass, bet.Amount))
		}
	}
	if bet, ok := g.betFor(player, BetOddsDontPass); ok {
		switch total {
		case 7:
			payout := bet.Amount.WithMultiplier(OddsMultiplier(point, false))
			resolutions = append(resolutions, WonResolution(player, BetOddsDontPass, bet.Amount, payout))
		case point:
			resolutions = append(resolutions, LostResolution(player, BetOddsDontPass, bet.Amount))
		}
	}
	return resolutions
}

func (g *CrapsGame) resolveYesBets(player PlayerID, total uint8) []BetResolution {
	var resolutions []BetResolution
	for betType, target := range yesTargets {
		bet, ok := g.betFor(player, betType)
		if !ok {
			continue
		}
		switch total {
		case target:
			payout := bet.Amount.WithMultiplier(YesMultiplier(target))
			resolutions = append(resolutions, WonResolution(player, betType, bet.Amount, payout))
		case 7:
			resolutions = append(resolutions, LostResolution(player, betType, bet.Amount))
		}
	}
	return sortResolutions(resolutions)
}

func (g *CrapsGame) resolveNoBets(player PlayerID, total uint8) []BetResolution {
	var resolutions []BetResolution
	for betType, target := range noTargets {
		bet, ok := g.betFor(player, betType)
		if !ok {
			continue
		}
		switch total {
		case 7:
			payout := bet.Amount.WithMultiplier(NoMultiplier(target))
			resolutions = append(resolutions, WonResolution(player, betType, bet.Amount, payout))
		case target:
			resolutions = append(resolutions, LostResolution(player, betType, bet.Amount))
		}
	}
	return sortResolutions(resolutions)
}

func (g *CrapsGame) resolveHardwayBets(player PlayerID, roll DiceRoll) []BetResolution {
	var resolutions []BetResolution
	total := roll.Total()
	for betType, target := range hardwayTargets {
		bet, ok := g.betFor(player, betType)
		if !ok {
			continue
		}
		switch {
		case total == target && roll.IsHardWay():
			payout := bet.Amount.MulSaturating(HardwayPayoutFactor(target))
			resolutions = append(resolutions, WonResolution(player, betType, bet.Amount, payout))
		case total == target || total == 7:
			// The easy way, or the seven, kills the bet.
			resolutions = append(resolutions, LostResolution(player, betType, bet.Amount))
		}
	}
	return sortResolutions(resolutions)
}

// resolveComeBets settles the established come points this roll decides,
// then settles or travels the fresh come bet. Established points go first
// so a wager travelling on this roll is not decided by the same total
// that moved it.
func (g *CrapsGame) resolveComeBets(player PlayerID, total uint8) []BetResolution {
	var resolutions []BetResolution

	// The player holds a single odds wager even when several come points
	// are up, so it settles at most once per roll, keyed by the first
	// point the roll decides.
	var decidedPoint uint8
	for _, cp := range sortedPoints(g.ComePoints[player]) {
		amount := g.ComePoints[player][cp]
		switch total {
		case cp:
			payout := amount.MulSaturating(2)
			resolutions = append(resolutions, WonResolution(player, BetCome, amount, payout))
			delete(g.ComePoints[player], cp)
			if decidedPoint == 0 {
				decidedPoint = cp
			}
		case 7:
			resolutions = append(resolutions, LostResolution(player, BetCome, amount))
			delete(g.ComePoints[player], cp)
			if decidedPoint == 0 {
				decidedPoint = cp
			}
		}
	}
	if decidedPoint != 0 {
		if oddsBet, ok := g.betFor(player, BetOddsCome); ok {
			if total == 7 {
				resolutions = append(resolutions, LostResolution(player, BetOddsCome, oddsBet.Amount))
			} else {
				oddsPayout := oddsBet.Amount.WithMultiplier(OddsMultiplier(decidedPoint, true))
				resolutions = append(resolutions, WonResolution(player, BetOddsCome, oddsBet.Amount, oddsPayout))
			}
		}
	}

	if bet, ok := g.betFor(player, BetCome); ok {
		switch {
		case total == 7 || total == 11:
			payout := bet.Amount.MulSaturating(2)
			resolutions = append(resolutions, WonResolution(player, BetCome, bet.Amount, payout))
		case total == 2 || total == 3 || total == 12:
			resolutions = append(resolutions, LostResolution(player, BetCome, bet.Amount))
		case IsPointNumber(total):
			// The wager travels to its own point; the slot is freed
			// without a resolution.
			if g.ComePoints[player] == nil {
				g.ComePoints[player] = make(map[uint8]Tokens)
			}
			g.ComePoints[player][total] = bet.Amount
			g.removeBet(player, BetCome)
		}
	}
	return resolutions
}

func (g *CrapsGame) resolveDontComeBets(player PlayerID, total uint8) []BetResolution {
	var resolutions []BetResolution

	// Mirrors the come side: a seven decides every travelled point at
	// once, but the single lay odds wager still settles exactly once,
	// keyed by the first point decided.
	var decidedPoint uint8
	for _, dcp := range sortedPoints(g.DontComePoints[player]) {
		amount := g.DontComePoints[player][dcp]
		switch total {
		case 7:
			payout := amount.MulSaturating(2)
			resolutions = append(resolutions, WonResolution(player, BetDontCome, amount, payout))
			delete(g.DontComePoints[player], dcp)
			if decidedPoint == 0 {
				decidedPoint = dcp
			}
		case dcp:
			resolutions = append(resolutions, LostResolution(player, BetDontCome, amount))
			delete(g.DontComePoints[player], dcp)
			if decidedPoint == 0 {
				decidedPoint = dcp
			}
		}
	}
	if decidedPoint != 0 {
		if oddsBet, ok := g.betFor(player, BetOddsDontCome); ok {
			if total == 7 {
				oddsPayout := oddsBet.Amount.WithMultiplier(OddsMultiplier(decidedPoint, false))
				resolutions = append(resolutions, WonResolution(player, BetOddsDontCome, oddsBet.Amount, oddsPayout))
			} else {
				resolutions = append(resolutions, LostResolution(player, BetOddsDontCome, oddsBet.Amount))
			}
		}
	}

	if bet, ok := g.betFor(player, BetDontCome); ok {
		switch {
		case total == 2 || total == 3:
			payout := bet.Amount.MulSaturating(2)
			resolutions = append(resolutions, WonResolution(player, BetDontCome, bet.Amount, payout))
		case total == 7 || total == 11:
			resolutions = append(resolutions, LostResolution(player, BetDontCome, bet.Amount))
		case total == 12:
			resolutions = append(resolutions, PushResolution(player, BetDontCome, bet.Amount))
		case IsPointNumber(total):
			if g.DontComePoints[player] == nil {
				g.DontComePoints[player] = make(map[uint8]Tokens)
			}
			g.DontComePoints[player][total] = bet.Amount
			g.removeBet(player, BetDontCome)
		}
	}
	return resolutions
}

// resolveOneRollBets settles the propositions that live for exactly one
// roll: the eleven Next bets and the Field. They always produce a
// resolution, in every phase.
func (g *CrapsGame) resolveOneRollBets(roll DiceRoll) []BetResolution {
	var resolutions []BetResolution
	total := roll.Total()

	for _, player := range g.sortedBettors() {
		var playerResolutions []BetResolution
		for betType, target := range nextTargets {
			bet, ok := g.betFor(player, betType)
			if !ok {
				continue
			}
			if total == target {
				payout := bet.Amount.WithMultiplier(NextMultiplier(target))
				playerResolutions = append(playerResolutions, WonResolution(player, betType, bet.Amount, payout))
			} else {
				playerResolutions = append(playerResolutions, LostResolution(player, betType, bet.Amount))
			}
		}
		playerResolutions = sortResolutions(playerResolutions)

		if bet, ok := g.betFor(player, BetField); ok {
			if factor := FieldPayoutFactor(total); factor > 0 {
				payout := bet.Amount.MulSaturating(factor)
				playerResolutions = append(playerResolutions, WonResolution(player, BetField, bet.Amount, payout))
			} else {
				playerResolutions = append(playerResolutions, LostResolution(player, BetField, bet.Amount))
			}
		}
		resolutions = append(resolutions, playerResolutions...)
	}
	return resolutions
}

// sortResolutions orders a single player's resolutions into catalogue
// order; needed because the per-category loops iterate Go maps.
func sortResolutions(resolutions []BetResolution) []BetResolution {
	sort.Slice(resolutions, func(i, j int) bool {
		return catalogueIndex[resolutions[i].BetType] < catalogueIndex[resolutions[j].BetType]
	})
	return resolutions
}

func sortedPoints(points map[uint8]Tokens) []uint8 {
	keys := make([]uint8, 0, len(points))
	for p := range points {
		keys = append(keys, p)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

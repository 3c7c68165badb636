package entities

import "fmt"

// BetType identifies one of the craps wager kinds. The catalogue is closed:
// every resolution path dispatches over these values and treats an unknown
// type as a programming error.
type BetType string

const (
	// Line bets
	BetPass     BetType = "pass"
	BetDontPass BetType = "dont_pass"
	BetCome     BetType = "come"
	BetDontCome BetType = "dont_come"

	// Odds behind line bets
	BetOddsPass     BetType = "odds_pass"
	BetOddsDontPass BetType = "odds_dont_pass"
	BetOddsCome     BetType = "odds_come"
	BetOddsDontCome BetType = "odds_dont_come"

	// Field bet
	BetField BetType = "field"

	// Hardway bets
	BetHard4  BetType = "hard_4"
	BetHard6  BetType = "hard_6"
	BetHard8  BetType = "hard_8"
	BetHard10 BetType = "hard_10"

	// Next-roll propositions, resolved every roll
	BetNext2  BetType = "next_2"
	BetNext3  BetType = "next_3"
	BetNext4  BetType = "next_4"
	BetNext5  BetType = "next_5"
	BetNext6  BetType = "next_6"
	BetNext7  BetType = "next_7"
	BetNext8  BetType = "next_8"
	BetNext9  BetType = "next_9"
	BetNext10 BetType = "next_10"
	BetNext11 BetType = "next_11"
	BetNext12 BetType = "next_12"

	// Yes propositions: the number before a 7
	BetYes2  BetType = "yes_2"
	BetYes3  BetType = "yes_3"
	BetYes4  BetType = "yes_4"
	BetYes5  BetType = "yes_5"
	BetYes6  BetType = "yes_6"
	BetYes8  BetType = "yes_8"
	BetYes9  BetType = "yes_9"
	BetYes10 BetType = "yes_10"
	BetYes11 BetType = "yes_11"
	BetYes12 BetType = "yes_12"

	// No propositions: a 7 before the number
	BetNo2  BetType = "no_2"
	BetNo3  BetType = "no_3"
	BetNo4  BetType = "no_4"
	BetNo5  BetType = "no_5"
	BetNo6  BetType = "no_6"
	BetNo8  BetType = "no_8"
	BetNo9  BetType = "no_9"
	BetNo10 BetType = "no_10"
	BetNo11 BetType = "no_11"
	BetNo12 BetType = "no_12"

	// Repeater bets: the number N times within a series
	BetRepeater2  BetType = "repeater_2"
	BetRepeater3  BetType = "repeater_3"
	BetRepeater4  BetType = "repeater_4"
	BetRepeater5  BetType = "repeater_5"
	BetRepeater6  BetType = "repeater_6"
	BetRepeater8  BetType = "repeater_8"
	BetRepeater9  BetType = "repeater_9"
	BetRepeater10 BetType = "repeater_10"
	BetRepeater11 BetType = "repeater_11"
	BetRepeater12 BetType = "repeater_12"

	// Multi-roll special bets
	BetFire             BetType = "fire"
	BetBonusSmall       BetType = "bonus_small"
	BetBonusTall        BetType = "bonus_tall"
	BetBonusAll         BetType = "bonus_all"
	BetHotRoller        BetType = "hot_roller"
	BetTwiceHard        BetType = "twice_hard"
	BetRideLine         BetType = "ride_line"
	BetMuggsy           BetType = "muggsy"
	BetReplay           BetType = "replay"
	BetDifferentDoubles BetType = "different_doubles"
)

// AllBetTypes lists every catalogue entry, in table order.
var AllBetTypes = []BetType{
	BetPass, BetDontPass, BetCome, BetDontCome,
	BetOddsPass, BetOddsDontPass, BetOddsCome, BetOddsDontCome,
	BetField,
	BetHard4, BetHard6, BetHard8, BetHard10,
	BetNext2, BetNext3, BetNext4, BetNext5, BetNext6, BetNext7,
	BetNext8, BetNext9, BetNext10, BetNext11, BetNext12,
	BetYes2, BetYes3, BetYes4, BetYes5, BetYes6,
	BetYes8, BetYes9, BetYes10, BetYes11, BetYes12,
	BetNo2, BetNo3, BetNo4, BetNo5, BetNo6,
	BetNo8, BetNo9, BetNo10, BetNo11, BetNo12,
	BetRepeater2, BetRepeater3, BetRepeater4, BetRepeater5, BetRepeater6,
	BetRepeater8, BetRepeater9, BetRepeater10, BetRepeater11, BetRepeater12,
	BetFire, BetBonusSmall, BetBonusTall, BetBonusAll,
	BetHotRoller, BetTwiceHard, BetRideLine, BetMuggsy, BetReplay,
	BetDifferentDoubles,
}

var hardwayTargets = map[BetType]uint8{
	BetHard4: 4, BetHard6: 6, BetHard8: 8, BetHard10: 10,
}

var nextTargets = map[BetType]uint8{
	BetNext2: 2, BetNext3: 3, BetNext4: 4, BetNext5: 5, BetNext6: 6,
	BetNext7: 7, BetNext8: 8, BetNext9: 9, BetNext10: 10, BetNext11: 11,
	BetNext12: 12,
}

var yesTargets = map[BetType]uint8{
	BetYes2: 2, BetYes3: 3, BetYes4: 4, BetYes5: 5, BetYes6: 6,
	BetYes8: 8, BetYes9: 9, BetYes10: 10, BetYes11: 11, BetYes12: 12,
}

var noTargets = map[BetType]uint8{
	BetNo2: 2, BetNo3: 3, BetNo4: 4, BetNo5: 5, BetNo6: 6,
	BetNo8: 8, BetNo9: 9, BetNo10: 10, BetNo11: 11, BetNo12: 12,
}

var repeaterTargets = map[BetType]uint8{
	BetRepeater2: 2, BetRepeater3: 3, BetRepeater4: 4, BetRepeater5: 5,
	BetRepeater6: 6, BetRepeater8: 8, BetRepeater9: 9, BetRepeater10: 10,
	BetRepeater11: 11, BetRepeater12: 12,
}

// TargetNumber returns the dice total a targeted bet references
// (hardways, next/yes/no propositions, repeaters) and whether the bet
// type carries a target at all.
func (b BetType) TargetNumber() (uint8, bool) {
	for _, targets := range []map[BetType]uint8{
		hardwayTargets, nextTargets, yesTargets, noTargets, repeaterTargets,
	} {
		if n, ok := targets[b]; ok {
			return n, true
		}
	}
	return 0, false
}

// IsOneRoll reports whether the bet resolves unconditionally on every roll.
func (b BetType) IsOneRoll() bool {
	if _, ok := nextTargets[b]; ok {
		return true
	}
	return b == BetField
}

// IsSpecial reports whether the bet is a multi-roll special whose
// resolution is queried explicitly by the caller rather than resolved in
// the main roll loop. Repeaters count: their progress is series-scoped
// like the rest.
func (b BetType) IsSpecial() bool {
	switch b {
	case BetFire, BetBonusSmall, BetBonusTall, BetBonusAll, BetHotRoller,
		BetTwiceHard, BetRideLine, BetMuggsy, BetReplay, BetDifferentDoubles:
		return true
	}
	_, ok := repeaterTargets[b]
	return ok
}

// IsValidForPhase reports whether the bet type may be placed in the given
// phase. Line bets are accepted until the game ends; come and yes/no
// propositions need an established point; everything else only needs an
// active game.
func (b BetType) IsValidForPhase(phase GamePhase) bool {
	if phase == PhaseEnded {
		return false
	}
	switch b {
	case BetCome, BetDontCome, BetOddsCome, BetOddsDontCome:
		return phase == PhasePoint
	case BetOddsPass, BetOddsDontPass:
		return phase == PhasePoint
	}
	if _, ok := yesTargets[b]; ok {
		return phase == PhasePoint
	}
	if _, ok := noTargets[b]; ok {
		return phase == PhasePoint
	}
	return true
}

func (b BetType) String() string {
	return string(b)
}

// ParseBetType converts a wire string into a catalogue entry.
func ParseBetType(s string) (BetType, error) {
	b := BetType(s)
	if _, ok := validBetTypes[b]; !ok {
		return "", fmt.Errorf("unknown bet type %q", s)
	}
	return b, nil
}

var validBetTypes = func() map[BetType]struct{} {
	m := make(map[BetType]struct{}, len(AllBetTypes))
	for _, b := range AllBetTypes {
		m[b] = struct{}{}
	}
	return m
}()

// catalogueIndex orders bet types the way AllBetTypes lists them, so
// map-driven resolution can be sorted back into table order.
var catalogueIndex = func() map[BetType]int {
	m := make(map[BetType]int, len(AllBetTypes))
	for i, b := range AllBetTypes {
		m[b] = i
	}
	return m
}()

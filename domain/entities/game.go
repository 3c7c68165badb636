package entities

import "sort"

// GamePhase is the craps table phase.
type GamePhase string

const (
	// PhaseComeOut means no point is established; the next roll is a
	// come-out roll.
	PhaseComeOut GamePhase = "come_out"
	// PhasePoint means a point is established and the shooter is rolling
	// to make it before a 7.
	PhasePoint GamePhase = "point"
	// PhaseEnded is the terminal phase, set by the caller only.
	PhaseEnded GamePhase = "ended"
)

// CrapsGame is the aggregate state of one craps table session. It is a
// plain single-owner value: the caller must serialize access per game id,
// because roll processing is a multi-step read-then-write sequence.
//
// Fields are exported for persistence; mutate only through the methods.
type CrapsGame struct {
	ID           GameID     `json:"id"`
	Shooter      PlayerID   `json:"shooter"`
	Participants []PlayerID `json:"participants"`
	MaxPlayers   int        `json:"max_players"`

	Phase       GamePhase  `json:"phase"`
	Point       uint8      `json:"point"` // 0 when no point is established
	SeriesID    uint64     `json:"series_id"`
	RollCount   uint64     `json:"roll_count"`
	RollHistory []DiceRoll `json:"roll_history"`

	// Active bets: one slot per player per bet type. Placing into an
	// occupied slot replaces the prior bet.
	PlayerBets map[PlayerID]map[BetType]Bet `json:"player_bets"`

	// Special-bet tracking. All of it is series-scoped and cleared on
	// seven-out; a made point clears nothing.
	FirePoints      map[uint8]bool  `json:"fire_points"`
	RepeaterCounts  map[uint8]uint8 `json:"repeater_counts"`
	BonusNumbers    map[uint8]bool  `json:"bonus_numbers"`
	HotRollerStreak uint64          `json:"hot_roller_streak"`
	HardwayStreaks  map[uint8]uint8 `json:"hardway_streaks"`
	PassWinStreak   uint32          `json:"pass_win_streak"`
	PointHistory    []uint8         `json:"point_history"`
	DoublesRolled   map[uint8]bool  `json:"doubles_rolled"`

	// Phase each of the last two rolls was thrown in; needed to tell the
	// Muggsy pattern (come-out natural, then a point) apart from a
	// seven-out followed by a new point.
	PrevRollPhase GamePhase `json:"prev_roll_phase,omitempty"`
	LastRollPhase GamePhase `json:"last_roll_phase,omitempty"`

	// Established come/don't-come points per player: point value -> stake.
	ComePoints     map[PlayerID]map[uint8]Tokens `json:"come_points"`
	DontComePoints map[PlayerID]map[uint8]Tokens `json:"dont_come_points"`
}

// NewCrapsGame creates a fresh table session with the shooter as the only
// participant, in the come-out phase.
func NewCrapsGame(id GameID, shooter PlayerID, maxPlayers int) *CrapsGame {
	return &CrapsGame{
		ID:             id,
		Shooter:        shooter,
		Participants:   []PlayerID{shooter},
		MaxPlayers:     maxPlayers,
		Phase:          PhaseComeOut,
		PlayerBets:     make(map[PlayerID]map[BetType]Bet),
		FirePoints:     make(map[uint8]bool),
		RepeaterCounts: make(map[uint8]uint8),
		BonusNumbers:   make(map[uint8]bool),
		HardwayStreaks: make(map[uint8]uint8),
		DoublesRolled:  make(map[uint8]bool),
		ComePoints:     make(map[PlayerID]map[uint8]Tokens),
		DontComePoints: make(map[PlayerID]map[uint8]Tokens),
	}
}

// HasPlayer reports whether the player is a participant.
func (g *CrapsGame) HasPlayer(player PlayerID) bool {
	for _, p := range g.Participants {
		if p == player {
			return true
		}
	}
	return false
}

// AddPlayer joins a player to the roster.
func (g *CrapsGame) AddPlayer(player PlayerID) error {
	if g.Phase == PhaseEnded {
		return ErrGameEnded
	}
	if g.HasPlayer(player) {
		return ErrPlayerAlreadyInGame
	}
	if g.MaxPlayers > 0 && len(g.Participants) >= g.MaxPlayers {
		return ErrGameFull
	}
	g.Participants = append(g.Participants, player)
	return nil
}

// PlaceBet validates and stores a bet. A bet of the same type for the same
// player replaces the prior one; on any validation error no state changes.
func (g *CrapsGame) PlaceBet(player PlayerID, bet Bet) error {
	if bet.GameID != g.ID {
		return ErrWrongGame
	}
	if !g.HasPlayer(player) {
		return ErrPlayerNotInGame
	}
	if g.Phase == PhaseEnded {
		return ErrGameEnded
	}
	if !bet.Type.IsValidForPhase(g.Phase) {
		return ErrInvalidBetForPhase
	}
	if g.PlayerBets[player] == nil {
		g.PlayerBets[player] = make(map[BetType]Bet)
	}
	g.PlayerBets[player][bet.Type] = bet
	return nil
}

// EndGame drives the session to its terminal phase. Only the caller ends
// a game; roll processing never does.
func (g *CrapsGame) EndGame() {
	g.Phase = PhaseEnded
	g.Point = 0
}

// IsActive reports whether the game accepts bets and rolls.
func (g *CrapsGame) IsActive() bool {
	return g.Phase == PhaseComeOut || g.Phase == PhasePoint
}

// LastRoll returns the most recent roll, if any.
func (g *CrapsGame) LastRoll() (DiceRoll, bool) {
	if len(g.RollHistory) == 0 {
		return DiceRoll{}, false
	}
	return g.RollHistory[len(g.RollHistory)-1], true
}

// ProcessRoll consumes one agreed-upon dice roll: it appends history,
// updates series tracking, settles every bet the roll decides and applies
// the phase transition. The returned resolutions are in deterministic
// order (players sorted, bet types in catalogue order). Each resolution
// closes the bet it settles. Multi-roll specials are queried separately
// through ResolveSpecialBet, except on a seven-out, which settles every
// outstanding special before the series trackers clear.
func (g *CrapsGame) ProcessRoll(roll DiceRoll) []BetResolution {
	if g.Phase == PhaseEnded {
		return nil
	}
	total := roll.Total()
	phaseAtRoll := g.Phase

	g.RollHistory = append(g.RollHistory, roll)
	g.RollCount++
	g.updateSpecialTracking(roll)

	var resolutions []BetResolution
	switch phaseAtRoll {
	case PhaseComeOut:
		resolutions = g.resolveComeOutRoll(roll)
	case PhasePoint:
		resolutions = g.resolvePointRoll(roll)
	}
	resolutions = append(resolutions, g.resolveOneRollBets(roll)...)
	if phaseAtRoll == PhasePoint && total == 7 {
		resolutions = append(resolutions, g.settleSpecialsAtSevenOut()...)
	}

	for _, res := range resolutions {
		g.removeBet(res.Player, res.BetType)
	}

	g.PrevRollPhase = g.LastRollPhase
	g.LastRollPhase = phaseAtRoll
	g.updatePhase(total)

	return resolutions
}

// updateSpecialTracking records the roll into the series-scoped trackers.
// It runs before resolution so a completion on this very roll (e.g. the
// fourth Fire point) is visible to same-roll queries.
func (g *CrapsGame) updateSpecialTracking(roll DiceRoll) {
	total := roll.Total()

	if total != 7 {
		g.BonusNumbers[total] = true
	}
	g.RepeaterCounts[total]++

	if g.Phase == PhasePoint && g.Point != 0 && total == g.Point {
		g.FirePoints[total] = true
		g.PointHistory = append(g.PointHistory, total)
	}

	if roll.IsDouble() {
		g.DoublesRolled[total] = true
	}
	if roll.IsHardWay() {
		g.HardwayStreaks[total]++
	} else if total == 4 || total == 6 || total == 8 || total == 10 {
		// Rolled the easy way: the streak for that number is broken.
		delete(g.HardwayStreaks, total)
	}
}

// updatePhase applies the come-out/point state machine and the series
// bookkeeping that hangs off its transitions.
func (g *CrapsGame) updatePhase(total uint8) {
	switch g.Phase {
	case PhaseComeOut:
		switch {
		case IsPointNumber(total):
			g.Point = total
			g.Phase = PhasePoint
		case total == 7 || total == 11:
			g.PassWinStreak++
		case total == 2 || total == 3:
			g.PassWinStreak = 0
		}
		// A come-out 12 moves nothing: Don't Pass pushed, Pass stands.
	case PhasePoint:
		switch {
		case total == 7:
			g.sevenOut()
		case total == g.Point:
			g.pointMade()
		}
	}
}

func (g *CrapsGame) sevenOut() {
	g.Point = 0
	g.Phase = PhaseComeOut
	g.SeriesID++
	g.HotRollerStreak = 0
	g.PassWinStreak = 0
	g.FirePoints = make(map[uint8]bool)
	g.BonusNumbers = make(map[uint8]bool)
	g.RepeaterCounts = make(map[uint8]uint8)
	g.DoublesRolled = make(map[uint8]bool)
	g.PointHistory = nil
	g.ComePoints = make(map[PlayerID]map[uint8]Tokens)
	g.DontComePoints = make(map[PlayerID]map[uint8]Tokens)
}

func (g *CrapsGame) pointMade() {
	g.Point = 0
	g.Phase = PhaseComeOut
	g.SeriesID++
	g.HotRollerStreak++
	g.PassWinStreak++
}

func (g *CrapsGame) removeBet(player PlayerID, betType BetType) {
	if bets, ok := g.PlayerBets[player]; ok {
		delete(bets, betType)
		if len(bets) == 0 {
			delete(g.PlayerBets, player)
		}
	}
}

// HasBet reports whether the player holds an active bet of the given type.
func (g *CrapsGame) HasBet(player PlayerID, betType BetType) bool {
	_, ok := g.betFor(player, betType)
	return ok
}

// betFor returns the player's active bet of the given type.
func (g *CrapsGame) betFor(player PlayerID, betType BetType) (Bet, bool) {
	bet, ok := g.PlayerBets[player][betType]
	return bet, ok
}

// sortedBettors returns the players with active bets in stable order so
// resolution output is reproducible across runs.
func (g *CrapsGame) sortedBettors() []PlayerID {
	players := make([]PlayerID, 0, len(g.PlayerBets))
	for p := range g.PlayerBets {
		players = append(players, p)
	}
	sort.Slice(players, func(i, j int) bool { return players[i] < players[j] })
	return players
}

// GameStats is an aggregate snapshot for monitoring.
type GameStats struct {
	GameID       GameID    `json:"game_id"`
	Phase        GamePhase `json:"phase"`
	Point        uint8     `json:"point"`
	SeriesID     uint64    `json:"series_id"`
	RollCount    uint64    `json:"roll_count"`
	PlayerCount  int       `json:"player_count"`
	ActiveBets   int       `json:"active_bets"`
	TotalWagered Tokens    `json:"total_wagered"`
	FirePoints   int       `json:"fire_points"`
	BonusNumbers int       `json:"bonus_numbers"`
}

// Stats returns the monitoring snapshot for this game.
func (g *CrapsGame) Stats() GameStats {
	var active int
	var wagered Tokens
	for _, bets := range g.PlayerBets {
		active += len(bets)
		for _, bet := range bets {
			wagered += bet.Amount
		}
	}
	return GameStats{
		GameID:       g.ID,
		Phase:        g.Phase,
		Point:        g.Point,
		SeriesID:     g.SeriesID,
		RollCount:    g.RollCount,
		PlayerCount:  len(g.Participants),
		ActiveBets:   active,
		TotalWagered: wagered,
		FirePoints:   len(g.FirePoints),
		BonusNumbers: len(g.BonusNumbers),
	}
}

package services

import (
	"context"
	"fmt"

	"crapstable/config"
	"crapstable/domain/entities"
	"crapstable/domain/events"
	"crapstable/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

type tableService struct {
	gameRepo       interfaces.GameRepository
	betRepo        interfaces.BetRepository
	resolutionRepo interfaces.BetResolutionRepository
	eventPublisher interfaces.EventPublisher
}

// NewTableService creates a new table service. The service holds no locks:
// the caller must serialize calls per game id.
func NewTableService(
	gameRepo interfaces.GameRepository,
	betRepo interfaces.BetRepository,
	resolutionRepo interfaces.BetResolutionRepository,
	eventPublisher interfaces.EventPublisher,
) interfaces.TableService {
	return &tableService{
		gameRepo:       gameRepo,
		betRepo:        betRepo,
		resolutionRepo: resolutionRepo,
		eventPublisher: eventPublisher,
	}
}

func (s *tableService) CreateGame(ctx context.Context, shooter entities.PlayerID) (*entities.CrapsGame, error) {
	if shooter == "" {
		return nil, fmt.Errorf("shooter id must not be empty")
	}

	cfg := config.Get()
	game := entities.NewCrapsGame(entities.NewGameID(), shooter, cfg.MaxPlayersPerGame)

	if err := s.gameRepo.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log.WithFields(log.Fields{
		"gameID":  game.ID,
		"shooter": shooter,
	}).Info("Created craps game")

	return game, nil
}

func (s *tableService) JoinGame(ctx context.Context, gameID entities.GameID, player entities.PlayerID) error {
	game, err := s.loadGame(ctx, gameID)
	if err != nil {
		return err
	}

	if err := game.AddPlayer(player); err != nil {
		return err
	}

	if err := s.gameRepo.Update(ctx, game); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	log.WithFields(log.Fields{
		"gameID": gameID,
		"player": player,
	}).Info("Player joined game")

	return nil
}

func (s *tableService) PlaceBet(ctx context.Context, gameID entities.GameID, player entities.PlayerID, betType entities.BetType, amount entities.Tokens) (*entities.Bet, error) {
	cfg := config.Get()
	if amount < cfg.MinBetAmount {
		return nil, fmt.Errorf("bet amount %s below table minimum %s", amount, cfg.MinBetAmount)
	}
	if cfg.MaxBetAmount > 0 && amount > cfg.MaxBetAmount {
		return nil, fmt.Errorf("bet amount %s above table maximum %s", amount, cfg.MaxBetAmount)
	}

	game, err := s.loadGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	bet := entities.NewBet(player, gameID, betType, amount)
	if err := game.PlaceBet(player, bet); err != nil {
		return nil, err
	}

	if err := s.gameRepo.Update(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}
	if err := s.betRepo.Record(ctx, &bet); err != nil {
		return nil, fmt.Errorf("failed to record bet: %w", err)
	}

	s.publish(events.BetPlacedEvent{
		GameID:  gameID,
		Player:  player,
		BetType: betType,
		Amount:  amount,
	})

	log.WithFields(log.Fields{
		"gameID":  gameID,
		"player":  player,
		"betType": betType,
		"amount":  amount.String(),
	}).Info("Bet placed")

	return &bet, nil
}

func (s *tableService) ProcessRoll(ctx context.Context, gameID entities.GameID, die1, die2 uint8) ([]entities.BetResolution, error) {
	roll, err := entities.NewDiceRoll(die1, die2)
	if err != nil {
		return nil, err
	}

	game, err := s.loadGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !game.IsActive() {
		return nil, entities.ErrGameEnded
	}

	oldPhase := game.Phase
	resolutions := game.ProcessRoll(roll)

	if err := s.gameRepo.Update(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}
	if len(resolutions) > 0 {
		if err := s.resolutionRepo.RecordAll(ctx, gameID, game.RollCount, resolutions); err != nil {
			return nil, fmt.Errorf("failed to record resolutions: %w", err)
		}
	}

	s.publish(events.RollProcessedEvent{
		GameID:      gameID,
		Die1:        roll.Die1,
		Die2:        roll.Die2,
		Total:       roll.Total(),
		Phase:       game.Phase,
		Point:       game.Point,
		SeriesID:    game.SeriesID,
		RollCount:   game.RollCount,
		Resolutions: len(resolutions),
	})
	for _, res := range resolutions {
		s.publish(events.BetResolvedEvent{
			GameID:  gameID,
			Player:  res.Player,
			BetType: res.BetType,
			Outcome: res.Outcome,
			Amount:  res.Amount,
			Payout:  res.Payout,
		})
	}
	if game.Phase != oldPhase {
		s.publish(events.PhaseChangedEvent{
			GameID:   gameID,
			OldPhase: oldPhase,
			NewPhase: game.Phase,
			Point:    game.Point,
			SeriesID: game.SeriesID,
		})
	}

	log.WithFields(log.Fields{
		"gameID":      gameID,
		"roll":        roll.String(),
		"phase":       game.Phase,
		"point":       game.Point,
		"resolutions": len(resolutions),
	}).Info("Processed roll")

	return resolutions, nil
}

func (s *tableService) ResolveSpecialBet(ctx context.Context, gameID entities.GameID, player entities.PlayerID, betType entities.BetType) (*entities.BetResolution, error) {
	game, err := s.loadGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !game.HasBet(player, betType) {
		return nil, entities.ErrBetNotFound
	}

	res := game.ResolveSpecialBet(player, betType)
	if res == nil {
		// Still pending; nothing changed.
		return nil, nil
	}

	if err := s.gameRepo.Update(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}
	if err := s.resolutionRepo.RecordAll(ctx, gameID, game.RollCount, []entities.BetResolution{*res}); err != nil {
		return nil, fmt.Errorf("failed to record resolution: %w", err)
	}

	s.publish(events.BetResolvedEvent{
		GameID:  gameID,
		Player:  res.Player,
		BetType: res.BetType,
		Outcome: res.Outcome,
		Amount:  res.Amount,
		Payout:  res.Payout,
	})

	log.WithFields(log.Fields{
		"gameID":  gameID,
		"player":  player,
		"betType": betType,
		"payout":  res.Payout.String(),
	}).Info("Special bet resolved")

	return res, nil
}

func (s *tableService) EndGame(ctx context.Context, gameID entities.GameID) error {
	game, err := s.loadGame(ctx, gameID)
	if err != nil {
		return err
	}

	oldPhase := game.Phase
	game.EndGame()

	if err := s.gameRepo.Update(ctx, game); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	s.publish(events.PhaseChangedEvent{
		GameID:   gameID,
		OldPhase: oldPhase,
		NewPhase: game.Phase,
		SeriesID: game.SeriesID,
	})

	log.WithField("gameID", gameID).Info("Game ended")
	return nil
}

func (s *tableService) GetGameState(ctx context.Context, gameID entities.GameID) (*entities.CrapsGame, error) {
	return s.loadGame(ctx, gameID)
}

func (s *tableService) GetStats(ctx context.Context, gameID entities.GameID) (*entities.GameStats, error) {
	game, err := s.loadGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	stats := game.Stats()
	return &stats, nil
}

func (s *tableService) loadGame(ctx context.Context, gameID entities.GameID) (*entities.CrapsGame, error) {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	if game == nil {
		return nil, entities.ErrGameNotStarted
	}
	return game, nil
}

// publish sends an event without failing the operation; the tables keep
// running when the bus is down.
func (s *tableService) publish(event events.Event) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(event); err != nil {
		log.WithFields(log.Fields{
			"eventType": event.Type(),
			"error":     err,
		}).Error("Failed to publish event")
	}
}

package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"crapstable/domain/entities"
	"crapstable/domain/interfaces"
	"crapstable/domain/services"
	"crapstable/repository"

	log "github.com/sirupsen/logrus"
)

// RollMessage is an agreed-upon dice roll delivered by the consensus layer
type RollMessage struct {
	GameID string `json:"game_id"`
	Die1   uint8  `json:"die1"`
	Die2   uint8  `json:"die2"`
}

// BetMessage is a bet placement request tagged with player identity.
// An empty game id opens a new table with the player as shooter.
type BetMessage struct {
	GameID  string `json:"game_id"`
	Player  string `json:"player"`
	BetType string `json:"bet_type"`
	Amount  uint64 `json:"amount"`
}

// SpecialResolveMessage asks the table to settle a multi-roll special bet
type SpecialResolveMessage struct {
	GameID  string `json:"game_id"`
	Player  string `json:"player"`
	BetType string `json:"bet_type"`
}

// RollConsumer subscribes to the consensus layer's command subjects and
// drives the table service. Each message runs in its own unit of work so
// the game snapshot and ledger rows commit atomically. JetStream delivers
// each subject's messages in order, which provides the per-game roll
// ordering the engine requires.
type RollConsumer struct {
	natsClient     *NATSClient
	uowFactory     repository.UnitOfWorkFactory
	eventPublisher interfaces.EventPublisher
}

// NewRollConsumer creates a new roll consumer
func NewRollConsumer(natsClient *NATSClient, uowFactory repository.UnitOfWorkFactory, eventPublisher interfaces.EventPublisher) *RollConsumer {
	return &RollConsumer{
		natsClient:     natsClient,
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

// Start subscribes to the roll, bet and special-resolution subjects
func (c *RollConsumer) Start() error {
	if err := c.natsClient.Subscribe("craps.rolls.*", c.handleRollMessage); err != nil {
		return fmt.Errorf("failed to subscribe to rolls: %w", err)
	}
	if err := c.natsClient.Subscribe("craps.bets.*", c.handleBetMessage); err != nil {
		return fmt.Errorf("failed to subscribe to bets: %w", err)
	}
	if err := c.natsClient.Subscribe("craps.specials.*", c.handleSpecialMessage); err != nil {
		return fmt.Errorf("failed to subscribe to specials: %w", err)
	}
	log.Info("Roll consumer started")
	return nil
}

func (c *RollConsumer) handleRollMessage(data []byte) error {
	var msg RollMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal roll message: %w", err)
	}

	return c.inUnitOfWork(func(ctx context.Context, svc interfaces.TableService) error {
		resolutions, err := svc.ProcessRoll(ctx, entities.GameID(msg.GameID), msg.Die1, msg.Die2)
		if err != nil {
			return fmt.Errorf("failed to process roll for game %s: %w", msg.GameID, err)
		}

		log.WithFields(log.Fields{
			"gameID":      msg.GameID,
			"die1":        msg.Die1,
			"die2":        msg.Die2,
			"resolutions": len(resolutions),
		}).Debug("Consumed roll message")
		return nil
	})
}

func (c *RollConsumer) handleBetMessage(data []byte) error {
	var msg BetMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal bet message: %w", err)
	}

	betType, err := entities.ParseBetType(msg.BetType)
	if err != nil {
		return fmt.Errorf("rejected bet message: %w", err)
	}
	player := entities.PlayerID(msg.Player)
	amount := entities.Tokens(msg.Amount)

	return c.inUnitOfWork(func(ctx context.Context, svc interfaces.TableService) error {
		gameID := entities.GameID(msg.GameID)
		if gameID == "" {
			game, err := svc.CreateGame(ctx, player)
			if err != nil {
				return fmt.Errorf("failed to create game: %w", err)
			}
			gameID = game.ID
		}

		_, err := svc.PlaceBet(ctx, gameID, player, betType, amount)
		if errors.Is(err, entities.ErrPlayerNotInGame) {
			if joinErr := svc.JoinGame(ctx, gameID, player); joinErr != nil {
				return fmt.Errorf("failed to join game %s: %w", gameID, joinErr)
			}
			_, err = svc.PlaceBet(ctx, gameID, player, betType, amount)
		}
		if err != nil {
			return fmt.Errorf("failed to place bet on game %s: %w", gameID, err)
		}
		return nil
	})
}

func (c *RollConsumer) handleSpecialMessage(data []byte) error {
	var msg SpecialResolveMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal special message: %w", err)
	}

	betType, err := entities.ParseBetType(msg.BetType)
	if err != nil {
		return fmt.Errorf("rejected special message: %w", err)
	}

	return c.inUnitOfWork(func(ctx context.Context, svc interfaces.TableService) error {
		res, err := svc.ResolveSpecialBet(ctx, entities.GameID(msg.GameID), entities.PlayerID(msg.Player), betType)
		if errors.Is(err, entities.ErrBetNotFound) {
			// No such bet; treat as a no-op rather than redeliver.
			log.WithFields(log.Fields{
				"gameID":  msg.GameID,
				"player":  msg.Player,
				"betType": msg.BetType,
			}).Warn("Special resolution for unknown bet")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to resolve special bet: %w", err)
		}
		if res == nil {
			log.WithFields(log.Fields{
				"gameID":  msg.GameID,
				"betType": msg.BetType,
			}).Debug("Special bet still pending")
		}
		return nil
	})
}

// inUnitOfWork runs fn with a table service bound to a fresh transaction,
// committing on success and rolling back on error.
func (c *RollConsumer) inUnitOfWork(fn func(context.Context, interfaces.TableService) error) error {
	ctx := context.Background()

	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer func() {
		if err := uow.Rollback(); err != nil {
			log.WithError(err).Error("Failed to rollback unit of work")
		}
	}()

	svc := services.NewTableService(
		uow.GameRepository(),
		uow.BetRepository(),
		uow.BetResolutionRepository(),
		c.eventPublisher,
	)

	if err := fn(ctx, svc); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit unit of work: %w", err)
	}
	return nil
}

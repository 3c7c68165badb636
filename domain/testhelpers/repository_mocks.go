package testhelpers

import (
	"context"

	"crapstable/domain/entities"
	"crapstable/domain/events"

	"github.com/stretchr/testify/mock"
)

// MockGameRepository is a mock implementation of GameRepository
type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) Create(ctx context.Context, game *entities.CrapsGame) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *MockGameRepository) GetByID(ctx context.Context, id entities.GameID) (*entities.CrapsGame, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CrapsGame), args.Error(1)
}

func (m *MockGameRepository) Update(ctx context.Context, game *entities.CrapsGame) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *MockGameRepository) ListActive(ctx context.Context) ([]*entities.CrapsGame, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.CrapsGame), args.Error(1)
}

// MockBetRepository is a mock implementation of BetRepository
type MockBetRepository struct {
	mock.Mock
}

func (m *MockBetRepository) Record(ctx context.Context, bet *entities.Bet) error {
	args := m.Called(ctx, bet)
	return args.Error(0)
}

func (m *MockBetRepository) GetByGame(ctx context.Context, gameID entities.GameID, limit int) ([]*entities.Bet, error) {
	args := m.Called(ctx, gameID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Bet), args.Error(1)
}

func (m *MockBetRepository) GetByPlayer(ctx context.Context, gameID entities.GameID, player entities.PlayerID) ([]*entities.Bet, error) {
	args := m.Called(ctx, gameID, player)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Bet), args.Error(1)
}

// MockBetResolutionRepository is a mock implementation of BetResolutionRepository
type MockBetResolutionRepository struct {
	mock.Mock
}

func (m *MockBetResolutionRepository) RecordAll(ctx context.Context, gameID entities.GameID, rollIndex uint64, resolutions []entities.BetResolution) error {
	args := m.Called(ctx, gameID, rollIndex, resolutions)
	return args.Error(0)
}

func (m *MockBetResolutionRepository) GetByGame(ctx context.Context, gameID entities.GameID, limit int) ([]*entities.BetResolution, error) {
	args := m.Called(ctx, gameID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.BetResolution), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

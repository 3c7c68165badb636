package repository

import (
	"context"
	"testing"

	"crapstable/domain/entities"
	"crapstable/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameRepositoryRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	repo := NewGameRepository(testDB.DB)
	ctx := context.Background()

	game := entities.NewCrapsGame(entities.NewGameID(), "alice", 20)
	require.NoError(t, game.AddPlayer("bob"))
	bet := entities.NewBet("alice", game.ID, entities.BetPass, entities.NewTokens(100))
	require.NoError(t, game.PlaceBet("alice", bet))

	require.NoError(t, repo.Create(ctx, game))

	loaded, err := repo.GetByID(ctx, game.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, game.ID, loaded.ID)
	assert.Equal(t, entities.PlayerID("alice"), loaded.Shooter)
	assert.Equal(t, game.Participants, loaded.Participants)
	assert.True(t, loaded.HasBet("alice", entities.BetPass))

	// Empty maps must come back usable, not nil, so the engine can keep
	// writing into them.
	require.NotNil(t, loaded.FirePoints)
	require.NotNil(t, loaded.RepeaterCounts)
	require.NotNil(t, loaded.ComePoints)
	require.NotNil(t, loaded.DontComePoints)

	// The restored aggregate must behave identically: establish a point.
	roll, err := entities.NewDiceRoll(2, 2)
	require.NoError(t, err)
	loaded.ProcessRoll(roll)
	assert.Equal(t, entities.PhasePoint, loaded.Phase)
	assert.Equal(t, uint8(4), loaded.Point)
}

func TestGameRepositoryGetMissing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	repo := NewGameRepository(testDB.DB)

	loaded, err := repo.GetByID(context.Background(), entities.NewGameID())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestGameRepositoryUpdate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	repo := NewGameRepository(testDB.DB)
	ctx := context.Background()

	game := entities.NewCrapsGame(entities.NewGameID(), "alice", 20)
	require.NoError(t, repo.Create(ctx, game))

	roll, err := entities.NewDiceRoll(4, 5)
	require.NoError(t, err)
	game.ProcessRoll(roll)
	require.NoError(t, repo.Update(ctx, game))

	loaded, err := repo.GetByID(ctx, game.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, entities.PhasePoint, loaded.Phase)
	assert.Equal(t, uint8(9), loaded.Point)
	assert.Equal(t, uint64(1), loaded.RollCount)
	require.Len(t, loaded.RollHistory, 1)
	assert.Equal(t, uint8(9), loaded.RollHistory[0].Total())
}

func TestGameRepositoryUpdateMissing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	repo := NewGameRepository(testDB.DB)

	game := entities.NewCrapsGame(entities.NewGameID(), "alice", 20)
	err := repo.Update(context.Background(), game)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGameRepositoryListActive(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	repo := NewGameRepository(testDB.DB)
	ctx := context.Background()

	active := entities.NewCrapsGame(entities.NewGameID(), "alice", 20)
	require.NoError(t, repo.Create(ctx, active))

	ended := entities.NewCrapsGame(entities.NewGameID(), "bob", 20)
	require.NoError(t, repo.Create(ctx, ended))
	ended.EndGame()
	require.NoError(t, repo.Update(ctx, ended))

	games, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, active.ID, games[0].ID)
}

func TestBetRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	gameRepo := NewGameRepository(testDB.DB)
	betRepo := NewBetRepository(testDB.DB)
	ctx := context.Background()

	game := entities.NewCrapsGame(entities.NewGameID(), "alice", 20)
	require.NoError(t, game.AddPlayer("bob"))
	require.NoError(t, gameRepo.Create(ctx, game))

	aliceBet := entities.NewBet("alice", game.ID, entities.BetPass, entities.NewTokens(100))
	bobBet := entities.NewBet("bob", game.ID, entities.BetField, entities.NewTokens(50))
	require.NoError(t, betRepo.Record(ctx, &aliceBet))
	require.NoError(t, betRepo.Record(ctx, &bobBet))

	bets, err := betRepo.GetByGame(ctx, game.ID, 10)
	require.NoError(t, err)
	assert.Len(t, bets, 2)

	aliceBets, err := betRepo.GetByPlayer(ctx, game.ID, "alice")
	require.NoError(t, err)
	require.Len(t, aliceBets, 1)
	assert.Equal(t, entities.BetPass, aliceBets[0].Type)
	assert.Equal(t, entities.NewTokens(100), aliceBets[0].Amount)
}

func TestBetResolutionRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	gameRepo := NewGameRepository(testDB.DB)
	resolutionRepo := NewBetResolutionRepository(testDB.DB)
	ctx := context.Background()

	game := entities.NewCrapsGame(entities.NewGameID(), "alice", 20)
	require.NoError(t, gameRepo.Create(ctx, game))

	resolutions := []entities.BetResolution{
		entities.WonResolution("alice", entities.BetPass, entities.NewTokens(100), entities.NewTokens(200)),
		entities.LostResolution("bob", entities.BetField, entities.NewTokens(50)),
	}
	require.NoError(t, resolutionRepo.RecordAll(ctx, game.ID, 3, resolutions))

	loaded, err := resolutionRepo.GetByGame(ctx, game.ID, 10)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Newest first.
	assert.Equal(t, entities.PlayerID("bob"), loaded[0].Player)
	assert.Equal(t, entities.OutcomeLost, loaded[0].Outcome)
	assert.Equal(t, entities.PlayerID("alice"), loaded[1].Player)
	assert.Equal(t, entities.NewTokens(200), loaded[1].Payout)
}

func TestUnitOfWorkCommit(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	factory := NewUnitOfWorkFactory(testDB.DB)
	ctx := context.Background()

	game := entities.NewCrapsGame(entities.NewGameID(), "alice", 20)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.GameRepository().Create(ctx, game))
	require.NoError(t, uow.BetResolutionRepository().RecordAll(ctx, game.ID, 1, []entities.BetResolution{
		entities.WonResolution("alice", entities.BetPass, entities.NewTokens(100), entities.NewTokens(200)),
	}))
	require.NoError(t, uow.Commit())

	// Both writes are visible outside the transaction.
	loaded, err := NewGameRepository(testDB.DB).GetByID(ctx, game.ID)
	require.NoError(t, err)
	assert.NotNil(t, loaded)

	resolutions, err := NewBetResolutionRepository(testDB.DB).GetByGame(ctx, game.ID, 10)
	require.NoError(t, err)
	assert.Len(t, resolutions, 1)
}

func TestUnitOfWorkRollback(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	factory := NewUnitOfWorkFactory(testDB.DB)
	ctx := context.Background()

	game := entities.NewCrapsGame(entities.NewGameID(), "alice", 20)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.GameRepository().Create(ctx, game))
	require.NoError(t, uow.Rollback())

	loaded, err := NewGameRepository(testDB.DB).GetByID(ctx, game.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Rolling back twice is harmless.
	require.NoError(t, uow.Rollback())
}

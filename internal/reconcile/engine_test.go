package reconcile_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intrana/discovery-backend/internal/domain"
	"github.com/intrana/discovery-backend/internal/logger"
	"github.com/intrana/discovery-backend/internal/mocks"
	"github.com/intrana/discovery-backend/internal/reconcile"
	"github.com/intrana/discovery-backend/internal/store/schema"
)

// testEngineMocks contains all the mocks needed for testing the engine
type testEngineMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	subgraph *mocks.MockSubgraphClient
	chain    *mocks.MockEthereumClient
	clock    *mocks.MockClock
}

// setupTestEngine creates all the mocks and an engine for testing
func setupTestEngine(t *testing.T, config *reconcile.Config) (*testEngineMocks, reconcile.Engine) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	require.NoError(t, err)

	ctrl := gomock.NewController(t)

	tm := &testEngineMocks{
		ctrl:     ctrl,
		store:    mocks.NewMockStore(ctrl),
		subgraph: mocks.NewMockSubgraphClient(ctrl),
		chain:    mocks.NewMockEthereumClient(ctrl),
		clock:    mocks.NewMockClock(ctrl),
	}

	tm.clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Millisecond).AnyTimes()

	engine := reconcile.NewEngine(config, tm.store, tm.subgraph, tm.chain, tm.clock)
	return tm, engine
}

func testEngineConfig() *reconcile.Config {
	return &reconcile.Config{
		Interval:        time.Minute,
		LookbackWindow:  0,
		WorkerPoolSize:  2,
		WorkerQueueSize: 16,
	}
}

func TestEngine_ReconcileLaunchedCollections_NoOpWhenCursorMatches(t *testing.T) {
	tm, engine := setupTestEngine(t, testEngineConfig())
	defer tm.ctrl.Finish()

	ctx := context.Background()

	tm.store.EXPECT().GetLaunchCursor(gomock.Any()).Return(int64(5), nil)
	tm.subgraph.EXPECT().DeployedCollectionCount(gomock.Any()).Return(uint64(5), nil)

	result, err := engine.ReconcileLaunchedCollections(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), result.DeployedCount)
	assert.Equal(t, int64(5), result.CursorBefore)
	assert.Equal(t, int64(5), result.CursorAfter)
	assert.Zero(t, result.Launched)
	assert.Zero(t, result.Orphaned)
}

func TestEngine_ReconcileLaunchedCollections_NoOpWhenSubgraphBehindCursor(t *testing.T) {
	tm, engine := setupTestEngine(t, testEngineConfig())
	defer tm.ctrl.Finish()

	ctx := context.Background()

	// Subgraph redeploy still catching up: fewer deployments than the cursor
	tm.store.EXPECT().GetLaunchCursor(gomock.Any()).Return(int64(8), nil)
	tm.subgraph.EXPECT().DeployedCollectionCount(gomock.Any()).Return(uint64(3), nil)

	result, err := engine.ReconcileLaunchedCollections(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.Launched)
	assert.Equal(t, int64(8), result.CursorAfter)
}

func TestEngine_ReconcileLaunchedCollections_AppliesNewDeployments(t *testing.T) {
	tm, engine := setupTestEngine(t, testEngineConfig())
	defer tm.ctrl.Finish()

	ctx := context.Background()

	records := []domain.DeployedCollection{
		{Index: 4, CollectionID: 4, CollectionAddress: "0xdddd000000000000000000000000000000000004", Name: "Fourth"},
		{Index: 3, CollectionID: 3, CollectionAddress: "0xcccc000000000000000000000000000000000003", Name: "Third"},
	}

	tm.store.EXPECT().GetLaunchCursor(gomock.Any()).Return(int64(2), nil)
	tm.subgraph.EXPECT().DeployedCollectionCount(gomock.Any()).Return(uint64(4), nil)
	tm.subgraph.EXPECT().NewlyDeployedCollections(gomock.Any(), 2).Return(records, nil)

	tm.store.EXPECT().
		MarkCollectionLaunched(gomock.Any(), int64(4), "0xdddd000000000000000000000000000000000004").
		Return(true, nil)
	tm.store.EXPECT().
		MarkCollectionLaunched(gomock.Any(), int64(3), "0xcccc000000000000000000000000000000000003").
		Return(true, nil)
	tm.store.EXPECT().AdvanceLaunchCursor(gomock.Any(), int64(1)).Return(int64(0), nil).Times(2)

	// Cursor re-read after the cycle
	tm.store.EXPECT().GetLaunchCursor(gomock.Any()).Return(int64(4), nil)

	result, err := engine.ReconcileLaunchedCollections(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Launched)
	assert.Zero(t, result.Orphaned)
	assert.Equal(t, int64(2), result.CursorBefore)
	assert.Equal(t, int64(4), result.CursorAfter)
}

func TestEngine_ReconcileLaunchedCollections_OrphanDeployment(t *testing.T) {
	tm, engine := setupTestEngine(t, testEngineConfig())
	defer tm.ctrl.Finish()

	ctx := context.Background()

	records := []domain.DeployedCollection{
		{Index: 3, CollectionID: 99, CollectionAddress: "0xaaaa000000000000000000000000000000000099"},
	}

	tm.store.EXPECT().GetLaunchCursor(gomock.Any()).Return(int64(2), nil)
	tm.subgraph.EXPECT().DeployedCollectionCount(gomock.Any()).Return(uint64(3), nil)
	tm.subgraph.EXPECT().NewlyDeployedCollections(gomock.Any(), 1).Return(records, nil)

	// No local collection matches the deployment
	tm.store.EXPECT().
		MarkCollectionLaunched(gomock.Any(), int64(99), gomock.Any()).
		Return(false, nil)
	tm.store.EXPECT().
		GetCollectionByIncID(gomock.Any(), int64(99)).
		Return(nil, domain.ErrCollectionNotFound)

	tm.store.EXPECT().GetLaunchCursor(gomock.Any()).Return(int64(2), nil)

	result, err := engine.ReconcileLaunchedCollections(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.Launched)
	assert.Equal(t, 1, result.Orphaned)

	// The cursor never moves for orphans, so it stays below the remote count
	assert.Equal(t, int64(2), result.CursorAfter)
}

func TestEngine_ReconcileLaunchedCollections_LookbackRetriesOrphans(t *testing.T) {
	config := testEngineConfig()
	config.LookbackWindow = 1
	tm, engine := setupTestEngine(t, config)
	defer tm.ctrl.Finish()

	ctx := context.Background()

	records := []domain.DeployedCollection{
		{Index: 2, CollectionID: 2, CollectionAddress: "0xbbbb000000000000000000000000000000000002"},
		{Index: 1, CollectionID: 1, CollectionAddress: "0xaaaa000000000000000000000000000000000001"},
	}

	tm.store.EXPECT().GetLaunchCursor(gomock.Any()).Return(int64(1), nil)
	tm.subgraph.EXPECT().DeployedCollectionCount(gomock.Any()).Return(uint64(2), nil)
	// Diff is 1 but the lookback widens the fetch to 2
	tm.subgraph.EXPECT().NewlyDeployedCollections(gomock.Any(), 2).Return(records, nil)

	tm.store.EXPECT().
		MarkCollectionLaunched(gomock.Any(), int64(2), gomock.Any()).
		Return(true, nil)
	tm.store.EXPECT().AdvanceLaunchCursor(gomock.Any(), int64(1)).Return(int64(2), nil)

	// The older record was applied in an earlier cycle: conditional no-op
	tm.store.EXPECT().
		MarkCollectionLaunched(gomock.Any(), int64(1), gomock.Any()).
		Return(false, nil)
	tm.store.EXPECT().
		GetCollectionByIncID(gomock.Any(), int64(1)).
		Return(&schema.Collection{ID: 1, CollectionIncID: 1, IsLaunch: true}, nil)

	tm.store.EXPECT().GetLaunchCursor(gomock.Any()).Return(int64(2), nil)

	result, err := engine.ReconcileLaunchedCollections(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Launched)
	assert.Zero(t, result.Orphaned)
}

func TestEngine_ReconcileLaunchedCollections_VerifiesContractCode(t *testing.T) {
	config := testEngineConfig()
	config.VerifyContractCode = true
	tm, engine := setupTestEngine(t, config)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	address := "0xcccc000000000000000000000000000000000003"

	records := []domain.DeployedCollection{
		{Index: 3, CollectionID: 3, CollectionAddress: address},
	}

	tm.store.EXPECT().GetLaunchCursor(gomock.Any()).Return(int64(2), nil)
	tm.subgraph.EXPECT().DeployedCollectionCount(gomock.Any()).Return(uint64(3), nil)
	tm.subgraph.EXPECT().NewlyDeployedCollections(gomock.Any(), 1).Return(records, nil)

	// The code check only warns; a missing bytecode never blocks the update
	tm.chain.EXPECT().HasContractCode(gomock.Any(), address).Return(false, nil)
	tm.store.EXPECT().MarkCollectionLaunched(gomock.Any(), int64(3), address).Return(true, nil)
	tm.store.EXPECT().AdvanceLaunchCursor(gomock.Any(), int64(1)).Return(int64(3), nil)
	tm.store.EXPECT().GetLaunchCursor(gomock.Any()).Return(int64(3), nil)

	result, err := engine.ReconcileLaunchedCollections(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Launched)
}

func TestEngine_ReconcileLaunchedCollections_SubgraphError(t *testing.T) {
	tm, engine := setupTestEngine(t, testEngineConfig())
	defer tm.ctrl.Finish()

	ctx := context.Background()

	tm.store.EXPECT().GetLaunchCursor(gomock.Any()).Return(int64(2), nil)
	tm.subgraph.EXPECT().
		DeployedCollectionCount(gomock.Any()).
		Return(uint64(0), errors.New("subgraph unavailable"))

	result, err := engine.ReconcileLaunchedCollections(ctx)
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestEngine_ReconcileLaunchedCollections_CursorReadError(t *testing.T) {
	tm, engine := setupTestEngine(t, testEngineConfig())
	defer tm.ctrl.Finish()

	ctx := context.Background()

	tm.store.EXPECT().
		GetLaunchCursor(gomock.Any()).
		Return(int64(0), errors.New("connection refused"))

	result, err := engine.ReconcileLaunchedCollections(ctx)
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestEngine_ReconcileMintedNFTs_UnknownCollection(t *testing.T) {
	tm, engine := setupTestEngine(t, testEngineConfig())
	defer tm.ctrl.Finish()

	ctx := context.Background()
	address := "0xdead000000000000000000000000000000000000"

	tm.store.EXPECT().
		GetCollectionByAddress(gomock.Any(), address).
		Return(nil, domain.ErrCollectionNotFound)

	result, err := engine.ReconcileMintedNFTs(ctx, address)
	assert.ErrorIs(t, err, domain.ErrCollectionNotFound)
	assert.Nil(t, result)
}

func TestEngine_ReconcileMintedNFTs_NoOpWhenCountsMatch(t *testing.T) {
	tm, engine := setupTestEngine(t, testEngineConfig())
	defer tm.ctrl.Finish()

	ctx := context.Background()
	address := "0xaaaa000000000000000000000000000000000001"

	tm.store.EXPECT().
		GetCollectionByAddress(gomock.Any(), address).
		Return(&schema.Collection{ID: 7}, nil)
	tm.store.EXPECT().CountMintedNfts(gomock.Any(), int64(7)).Return(int64(3), nil)
	tm.subgraph.EXPECT().
		CollectionStats(gomock.Any(), address).
		Return(&domain.CollectionStats{TotalTokens: 3}, nil)

	result, err := engine.ReconcileMintedNFTs(ctx, address)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), result.RemoteMinted)
	assert.Equal(t, int64(3), result.LocalMinted)
	assert.Zero(t, result.Updated)
}

func TestEngine_ReconcileMintedNFTs_MarksNewMints(t *testing.T) {
	tm, engine := setupTestEngine(t, testEngineConfig())
	defer tm.ctrl.Finish()

	ctx := context.Background()
	address := "0xaaaa000000000000000000000000000000000001"
	mintedAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tm.store.EXPECT().
		GetCollectionByAddress(gomock.Any(), address).
		Return(&schema.Collection{ID: 7}, nil)
	tm.store.EXPECT().CountMintedNfts(gomock.Any(), int64(7)).Return(int64(1), nil)
	tm.subgraph.EXPECT().
		CollectionStats(gomock.Any(), address).
		Return(&domain.CollectionStats{TotalTokens: 3}, nil)

	tokens := []domain.MintedToken{
		{TokenID: 3, CreatedAt: mintedAt},
		{TokenID: 2, CreatedAt: mintedAt.Add(-time.Hour)},
	}
	tm.subgraph.EXPECT().NewlyMintedTokens(gomock.Any(), address, 2).Return(tokens, nil)

	tm.store.EXPECT().
		MarkNftMinted(gomock.Any(), int64(7), int64(3), mintedAt).
		Return(true, nil)
	tm.store.EXPECT().
		MarkNftMinted(gomock.Any(), int64(7), int64(2), mintedAt.Add(-time.Hour)).
		Return(true, nil)

	result, err := engine.ReconcileMintedNFTs(ctx, address)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Updated)
	assert.Zero(t, result.Orphaned)
}

func TestEngine_ReconcileMintedNFTs_NormalizesAddress(t *testing.T) {
	tm, engine := setupTestEngine(t, testEngineConfig())
	defer tm.ctrl.Finish()

	ctx := context.Background()
	lowered := "0xaaaa0000000000000000000000000000000000ff"

	tm.store.EXPECT().
		GetCollectionByAddress(gomock.Any(), lowered).
		Return(&schema.Collection{ID: 7}, nil)
	tm.store.EXPECT().CountMintedNfts(gomock.Any(), int64(7)).Return(int64(0), nil)
	tm.subgraph.EXPECT().
		CollectionStats(gomock.Any(), lowered).
		Return(&domain.CollectionStats{TotalTokens: 0}, nil)

	_, err := engine.ReconcileMintedNFTs(ctx, "0xAAAA0000000000000000000000000000000000FF")
	require.NoError(t, err)
}

func TestEngine_ReconcileMintedNFTs_OrphanToken(t *testing.T) {
	tm, engine := setupTestEngine(t, testEngineConfig())
	defer tm.ctrl.Finish()

	ctx := context.Background()
	address := "0xaaaa000000000000000000000000000000000001"
	mintedAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tm.store.EXPECT().
		GetCollectionByAddress(gomock.Any(), address).
		Return(&schema.Collection{ID: 7}, nil)
	tm.store.EXPECT().CountMintedNfts(gomock.Any(), int64(7)).Return(int64(0), nil)
	tm.subgraph.EXPECT().
		CollectionStats(gomock.Any(), address).
		Return(&domain.CollectionStats{TotalTokens: 1}, nil)
	tm.subgraph.EXPECT().
		NewlyMintedTokens(gomock.Any(), address, 1).
		Return([]domain.MintedToken{{TokenID: 42, CreatedAt: mintedAt}}, nil)

	// Token 42 has no local NFT row
	tm.store.EXPECT().
		MarkNftMinted(gomock.Any(), int64(7), int64(42), mintedAt).
		Return(false, nil)
	tm.store.EXPECT().
		GetNft(gomock.Any(), int64(7), int64(42)).
		Return(nil, domain.ErrNftNotFound)

	result, err := engine.ReconcileMintedNFTs(ctx, address)
	require.NoError(t, err)
	assert.Zero(t, result.Updated)
	assert.Equal(t, 1, result.Orphaned)
}

func TestEngine_ReconcileMintedNFTs_UnindexedCollection(t *testing.T) {
	tm, engine := setupTestEngine(t, testEngineConfig())
	defer tm.ctrl.Finish()

	ctx := context.Background()
	address := "0xaaaa000000000000000000000000000000000001"

	tm.store.EXPECT().
		GetCollectionByAddress(gomock.Any(), address).
		Return(&schema.Collection{ID: 7}, nil)
	tm.store.EXPECT().CountMintedNfts(gomock.Any(), int64(7)).Return(int64(0), nil)
	// The subgraph has no collection entity for this contract yet
	tm.subgraph.EXPECT().CollectionStats(gomock.Any(), address).Return(nil, nil)

	result, err := engine.ReconcileMintedNFTs(ctx, address)
	require.NoError(t, err)
	assert.Zero(t, result.RemoteMinted)
	assert.Zero(t, result.Updated)
}

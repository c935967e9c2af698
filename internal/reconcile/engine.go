package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/intrana/discovery-backend/internal/adapter"
	"github.com/intrana/discovery-backend/internal/domain"
	"github.com/intrana/discovery-backend/internal/logger"
	"github.com/intrana/discovery-backend/internal/providers/ethereum"
	"github.com/intrana/discovery-backend/internal/store"
	"github.com/intrana/discovery-backend/internal/subgraph"
)

// Config holds configuration for the reconciliation engine and its scheduler
type Config struct {
	Interval           time.Duration // Time between scheduled launch reconcile cycles
	LookbackWindow     int           // Extra deployments fetched beyond the cursor diff
	VerifyContractCode bool          // Check bytecode exists at reported addresses
	WorkerPoolSize     int           // Concurrent workers applying launch records
	WorkerQueueSize    int           // Pending task limit for the worker pool
}

// LaunchResult summarizes one collection launch reconcile cycle
type LaunchResult struct {
	DeployedCount uint64 // Deployments the subgraph has indexed in total
	CursorBefore  int64  // Launch cursor before the cycle
	CursorAfter   int64  // Launch cursor after the cycle
	Launched      int    // Collections marked launched this cycle
	Orphaned      int    // Deployments with no matching local collection
}

// MintResult summarizes one minted NFT reconcile call for a single collection
type MintResult struct {
	CollectionID int64  // Local collection the reconcile ran against
	RemoteMinted uint64 // Tokens the subgraph reports minted for the contract
	LocalMinted  int64  // NFTs marked minted locally before the call
	Updated      int    // NFTs marked minted this call
	Orphaned     int    // Subgraph tokens with no matching local NFT
}

// Engine reconciles local marketplace state against the on-chain view
// served by the subgraph
//
//go:generate mockgen -source=engine.go -destination=../mocks/reconcile_engine.go -package=mocks -mock_names=Engine=MockReconcileEngine
type Engine interface {
	// ReconcileLaunchedCollections diffs the persisted launch cursor against
	// the subgraph's deployment count and marks newly deployed collections
	// launched. The cursor advances once per collection actually modified.
	ReconcileLaunchedCollections(ctx context.Context) (*LaunchResult, error)

	// ReconcileMintedNFTs recounts the minted NFTs of the collection at the
	// given contract address and marks newly minted tokens. It keeps no
	// cursor; the local count is recomputed on every call.
	ReconcileMintedNFTs(ctx context.Context, collectionAddress string) (*MintResult, error)
}

type engine struct {
	config   *Config
	store    store.Store
	subgraph subgraph.Client
	chain    ethereum.EthereumClient // nil when contract code verification is off
	clock    adapter.Clock
}

// NewEngine creates a reconciliation engine. chain may be nil; it is only
// consulted when config.VerifyContractCode is set.
func NewEngine(
	config *Config,
	st store.Store,
	sg subgraph.Client,
	chain ethereum.EthereumClient,
	clock adapter.Clock,
) Engine {
	return &engine{
		config:   config,
		store:    st,
		subgraph: sg,
		chain:    chain,
		clock:    clock,
	}
}

// ReconcileLaunchedCollections implements the Engine interface
func (e *engine) ReconcileLaunchedCollections(ctx context.Context) (*LaunchResult, error) {
	startTime := e.clock.Now()

	cursor, err := e.store.GetLaunchCursor(ctx)
	if err != nil {
		launchCyclesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to read launch cursor: %w", err)
	}

	deployed, err := e.subgraph.DeployedCollectionCount(ctx)
	if err != nil {
		launchCyclesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to get deployed collection count: %w", err)
	}

	result := &LaunchResult{
		DeployedCount: deployed,
		CursorBefore:  cursor,
		CursorAfter:   cursor,
	}

	if int64(deployed) == cursor {
		launchCyclesTotal.WithLabelValues("noop").Inc()
		launchCycleDuration.Observe(e.clock.Since(startTime).Seconds())
		return result, nil
	}

	if int64(deployed) < cursor {
		// The subgraph moved backwards, likely a redeploy that is still
		// catching up. Nothing safe to apply until it passes the cursor.
		logger.WarnCtx(ctx, "Subgraph reports fewer deployments than launch cursor",
			zap.Uint64("deployed", deployed),
			zap.Int64("cursor", cursor),
		)
		launchCyclesTotal.WithLabelValues("noop").Inc()
		launchCycleDuration.Observe(e.clock.Since(startTime).Seconds())
		return result, nil
	}

	// Fetch a little past the diff so a deployment that was orphaned in an
	// earlier cycle gets retried once its local collection shows up.
	// Re-applying an already launched record is a conditional no-op.
	fetchCount := int(int64(deployed)-cursor) + e.config.LookbackWindow

	records, err := e.subgraph.NewlyDeployedCollections(ctx, fetchCount)
	if err != nil {
		launchCyclesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to get newly deployed collections: %w", err)
	}

	logger.InfoCtx(ctx, "Applying deployed collections",
		zap.Uint64("deployed", deployed),
		zap.Int64("cursor", cursor),
		zap.Int("fetched", len(records)),
	)

	var launchedCount, orphanedCount atomic.Int32

	pool := pond.NewPool(
		e.config.WorkerPoolSize,
		pond.WithQueueSize(e.config.WorkerQueueSize),
		pond.WithContext(ctx),
	)

	for _, record := range records {
		pool.Submit(func() {
			e.applyDeployment(ctx, record, &launchedCount, &orphanedCount)
		})
	}

	pool.StopAndWait()

	result.Launched = int(launchedCount.Load())
	result.Orphaned = int(orphanedCount.Load())

	cursorAfter, err := e.store.GetLaunchCursor(ctx)
	if err != nil {
		launchCyclesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to re-read launch cursor: %w", err)
	}
	result.CursorAfter = cursorAfter

	launchCyclesTotal.WithLabelValues("applied").Inc()
	launchCycleDuration.Observe(e.clock.Since(startTime).Seconds())

	logger.InfoCtx(ctx, "Launch reconcile cycle completed",
		zap.Int("launched", result.Launched),
		zap.Int("orphaned", result.Orphaned),
		zap.Int64("cursor_before", result.CursorBefore),
		zap.Int64("cursor_after", result.CursorAfter),
	)

	return result, nil
}

// applyDeployment applies a single subgraph deployment record to the local
// collection it references. The cursor only advances when the conditional
// update actually modified a row, so replays and orphans never move it.
func (e *engine) applyDeployment(
	ctx context.Context,
	record domain.DeployedCollection,
	launchedCount, orphanedCount *atomic.Int32,
) {
	if e.config.VerifyContractCode && e.chain != nil {
		hasCode, err := e.chain.HasContractCode(ctx, record.CollectionAddress)
		if err != nil {
			logger.WarnCtx(ctx, "Contract code check failed",
				zap.Error(err),
				zap.String("collection_address", record.CollectionAddress),
			)
		} else if !hasCode {
			logger.WarnCtx(ctx, "No bytecode at reported collection address",
				zap.String("collection_address", record.CollectionAddress),
				zap.Uint64("collection_id", record.CollectionID),
			)
		}
	}

	modified, err := e.store.MarkCollectionLaunched(ctx, int64(record.CollectionID), record.CollectionAddress)
	if err != nil {
		logger.ErrorCtx(ctx, err,
			zap.Uint64("collection_id", record.CollectionID),
			zap.String("collection_address", record.CollectionAddress),
		)
		return
	}

	if modified {
		if _, err := e.store.AdvanceLaunchCursor(ctx, 1); err != nil {
			// The collection is launched but the cursor lags; the next
			// cycle recomputes the diff, so this heals on its own.
			logger.ErrorCtx(ctx, err,
				zap.Uint64("collection_id", record.CollectionID),
			)
			return
		}
		launchedCount.Add(1)
		collectionsLaunchedTotal.Inc()
		logger.InfoCtx(ctx, "Collection launched",
			zap.Uint64("collection_id", record.CollectionID),
			zap.String("collection_address", record.CollectionAddress),
			zap.String("name", record.Name),
		)
		return
	}

	// Not modified: either the record was applied in an earlier cycle or
	// there is no local collection for it at all.
	_, err = e.store.GetCollectionByIncID(ctx, int64(record.CollectionID))
	if errors.Is(err, domain.ErrCollectionNotFound) {
		orphanedCount.Add(1)
		orphanDeploymentsTotal.Inc()
		logger.WarnCtx(ctx, "Orphan deployment, no local collection matches",
			zap.Uint64("collection_id", record.CollectionID),
			zap.String("collection_address", record.CollectionAddress),
		)
		return
	}
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.Uint64("collection_id", record.CollectionID))
	}
}

// ReconcileMintedNFTs implements the Engine interface
func (e *engine) ReconcileMintedNFTs(ctx context.Context, collectionAddress string) (*MintResult, error) {
	address := domain.NormalizeAddress(collectionAddress)

	collection, err := e.store.GetCollectionByAddress(ctx, address)
	if err != nil {
		return nil, err
	}

	localMinted, err := e.store.CountMintedNfts(ctx, collection.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count minted NFTs: %w", err)
	}

	result := &MintResult{
		CollectionID: collection.ID,
		LocalMinted:  localMinted,
	}

	stats, err := e.subgraph.CollectionStats(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to get collection stats: %w", err)
	}
	if stats == nil {
		// The subgraph has not indexed this contract yet
		logger.InfoCtx(ctx, "Collection not indexed by subgraph yet",
			zap.String("collection_address", address),
		)
		return result, nil
	}
	result.RemoteMinted = stats.TotalTokens

	if stats.TotalTokens <= uint64(localMinted) {
		return result, nil
	}

	diff := int(stats.TotalTokens - uint64(localMinted))
	tokens, err := e.subgraph.NewlyMintedTokens(ctx, address, diff)
	if err != nil {
		return nil, fmt.Errorf("failed to get newly minted tokens: %w", err)
	}

	for _, token := range tokens {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		modified, err := e.store.MarkNftMinted(ctx, collection.ID, int64(token.TokenID), token.CreatedAt)
		if err != nil {
			return result, fmt.Errorf("failed to mark NFT %d minted: %w", token.TokenID, err)
		}
		if modified {
			result.Updated++
			nftsMintedTotal.Inc()
			continue
		}

		// Either already minted locally or the token has no local NFT row
		_, err = e.store.GetNft(ctx, collection.ID, int64(token.TokenID))
		if errors.Is(err, domain.ErrNftNotFound) {
			result.Orphaned++
			orphanTokensTotal.Inc()
			logger.WarnCtx(ctx, "Orphan token, no local NFT matches",
				zap.Int64("collection_id", collection.ID),
				zap.Uint64("token_id", token.TokenID),
				zap.String("collection_address", address),
			)
			continue
		}
		if err != nil {
			return result, err
		}
	}

	logger.InfoCtx(ctx, "Mint reconcile completed",
		zap.String("collection_address", address),
		zap.Uint64("remote_minted", result.RemoteMinted),
		zap.Int64("local_minted", result.LocalMinted),
		zap.Int("updated", result.Updated),
		zap.Int("orphaned", result.Orphaned),
	)

	return result, nil
}

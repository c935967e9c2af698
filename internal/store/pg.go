package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/intrana/discovery-backend/internal/domain"
	"github.com/intrana/discovery-backend/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// CreateCollection inserts a collection, allocating its sequential CollectionIncID.
// The sequence allocation and the insert happen in one transaction so a failed
// insert never burns a number observable to readers.
func (s *pgStore) CreateCollection(ctx context.Context, collection *schema.Collection) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&schema.Collection{}).
			Where("name = ?", collection.Name).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check collection name: %w", err)
		}
		if count > 0 {
			return domain.ErrDuplicateCollectionName
		}

		incID, err := incrementCounter(ctx, tx, counterCollectionSeq, 1)
		if err != nil {
			return err
		}
		collection.CollectionIncID = incID

		if err := tx.Create(collection).Error; err != nil {
			return fmt.Errorf("failed to create collection: %w", err)
		}
		return nil
	})
}

// GetCollectionByID retrieves a collection by its internal ID
func (s *pgStore) GetCollectionByID(ctx context.Context, id int64) (*schema.Collection, error) {
	var collection schema.Collection
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCollectionNotFound
		}
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	return &collection, nil
}

// GetCollectionByIncID retrieves a collection by its sequential marketplace number
func (s *pgStore) GetCollectionByIncID(ctx context.Context, incID int64) (*schema.Collection, error) {
	var collection schema.Collection
	err := s.db.WithContext(ctx).Where("collection_inc_id = ?", incID).First(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCollectionNotFound
		}
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	return &collection, nil
}

// GetCollectionByAddress retrieves a collection by its deployed contract address.
// The address is normalized to lowercase before lookup.
func (s *pgStore) GetCollectionByAddress(ctx context.Context, address string) (*schema.Collection, error) {
	var collection schema.Collection
	err := s.db.WithContext(ctx).
		Where("collection_address = ?", domain.NormalizeAddress(address)).
		First(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCollectionNotFound
		}
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	return &collection, nil
}

// ListCollections retrieves collections matching the filter, newest first
func (s *pgStore) ListCollections(ctx context.Context, filter CollectionFilter) ([]*schema.Collection, error) {
	query := s.db.WithContext(ctx).Model(&schema.Collection{})

	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.IsLaunch != nil {
		query = query.Where("is_launch = ?", *filter.IsLaunch)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var collections []*schema.Collection
	err := query.Order("collection_inc_id DESC").Find(&collections).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	return collections, nil
}

// MarkCollectionLaunched records a confirmed on-chain deployment for the collection
// with the given sequential number. The update is conditional on is_launch = false
// so replayed deployment events are no-ops.
func (s *pgStore) MarkCollectionLaunched(ctx context.Context, incID int64, address string) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Collection{}).
		Where("collection_inc_id = ? AND is_launch = ?", incID, false).
		Updates(map[string]interface{}{
			"is_launch":          true,
			"collection_address": domain.NormalizeAddress(address),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark collection launched: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// CreateNft inserts a token, allocating its sequential NftID within the collection.
// The owning collection's total count is bumped in the same transaction.
func (s *pgStore) CreateNft(ctx context.Context, nft *schema.Nft) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&schema.Collection{}).
			Where("id = ?", nft.CollectionID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check collection: %w", err)
		}
		if count == 0 {
			return domain.ErrCollectionNotFound
		}

		nftID, err := incrementCounter(ctx, tx, nftSeqCounter(nft.CollectionID), 1)
		if err != nil {
			return err
		}
		nft.NftID = nftID

		if err := tx.Create(nft).Error; err != nil {
			return fmt.Errorf("failed to create nft: %w", err)
		}

		if err := tx.Model(&schema.Collection{}).
			Where("id = ?", nft.CollectionID).
			UpdateColumn("total_nft_count", gorm.Expr("total_nft_count + 1")).Error; err != nil {
			return fmt.Errorf("failed to bump collection nft count: %w", err)
		}
		return nil
	})
}

// GetNft retrieves a token by collection and token number
func (s *pgStore) GetNft(ctx context.Context, collectionID, nftID int64) (*schema.Nft, error) {
	var nft schema.Nft
	err := s.db.WithContext(ctx).
		Where("collection_id = ? AND nft_id = ?", collectionID, nftID).
		First(&nft).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNftNotFound
		}
		return nil, fmt.Errorf("failed to get nft: %w", err)
	}
	return &nft, nil
}

// ListNfts retrieves tokens of a collection matching the filter, newest first
func (s *pgStore) ListNfts(ctx context.Context, collectionID int64, filter NftFilter) ([]*schema.Nft, error) {
	query := s.db.WithContext(ctx).Model(&schema.Nft{}).Where("collection_id = ?", collectionID)

	if filter.IsMinted != nil {
		query = query.Where("is_minted = ?", *filter.IsMinted)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var nfts []*schema.Nft
	err := query.Order("nft_id DESC").Find(&nfts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list nfts: %w", err)
	}

	return nfts, nil
}

// CountMintedNfts returns the number of tokens of a collection confirmed minted
func (s *pgStore) CountMintedNfts(ctx context.Context, collectionID int64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Nft{}).
		Where("collection_id = ? AND is_minted = ?", collectionID, true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count minted nfts: %w", err)
	}
	return count, nil
}

// MarkNftMinted records a confirmed on-chain mint for a token. The update is
// conditional on is_minted = false so a token never flips back to unminted.
func (s *pgStore) MarkNftMinted(ctx context.Context, collectionID, nftID int64, mintedAt time.Time) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Nft{}).
		Where("collection_id = ? AND nft_id = ? AND is_minted = ?", collectionID, nftID, false).
		Updates(map[string]interface{}{
			"is_minted": true,
			"minted_at": mintedAt,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark nft minted: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// Ping verifies database connectivity
func (s *pgStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

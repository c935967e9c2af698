package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/intrana/discovery-backend/internal/store/schema"
)

const (
	// counterCollectionSeq allocates sequential collection numbers
	counterCollectionSeq = "collection_seq"
	// counterLaunchCursor tracks how many on-chain deployments have been reconciled
	counterLaunchCursor = "launch_cursor"
)

// nftSeqCounter returns the counter name allocating token numbers for a collection
func nftSeqCounter(collectionID int64) string {
	return fmt.Sprintf("nft_seq:%d", collectionID)
}

// incrementCounter atomically adds delta to the named counter and returns the
// new value. The counter is created at delta if it does not exist yet.
func incrementCounter(ctx context.Context, db *gorm.DB, name string, delta int64) (int64, error) {
	var value int64
	err := db.WithContext(ctx).Raw(`
		INSERT INTO counters (name, value, created_at, updated_at)
		VALUES (?, ?, now(), now())
		ON CONFLICT (name) DO UPDATE
		SET value = counters.value + EXCLUDED.value, updated_at = now()
		RETURNING value`, name, delta).Scan(&value).Error
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter %s: %w", name, err)
	}
	return value, nil
}

// readCounter returns the current value of the named counter, 0 if it does not exist
func readCounter(ctx context.Context, db *gorm.DB, name string) (int64, error) {
	var counter schema.Counter
	err := db.WithContext(ctx).Where("name = ?", name).First(&counter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read counter %s: %w", name, err)
	}
	return counter.Value, nil
}

// GetLaunchCursor retrieves the number of deployments already reconciled
func (s *pgStore) GetLaunchCursor(ctx context.Context) (int64, error) {
	return readCounter(ctx, s.db, counterLaunchCursor)
}

// AdvanceLaunchCursor atomically adds delta to the reconciled-deployment count
func (s *pgStore) AdvanceLaunchCursor(ctx context.Context, delta int64) (int64, error) {
	return incrementCounter(ctx, s.db, counterLaunchCursor, delta)
}

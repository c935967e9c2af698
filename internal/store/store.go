package store

import (
	"context"
	"time"

	"github.com/intrana/discovery-backend/internal/store/schema"
)

// CollectionFilter narrows ListCollections results
type CollectionFilter struct {
	UserID   string
	IsLaunch *bool
	Limit    int
	Offset   int
}

// NftFilter narrows ListNfts results
type NftFilter struct {
	IsMinted *bool
	Limit    int
	Offset   int
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateCollection inserts a collection, allocating its sequential CollectionIncID
	CreateCollection(ctx context.Context, collection *schema.Collection) error
	// GetCollectionByID retrieves a collection by its internal ID
	GetCollectionByID(ctx context.Context, id int64) (*schema.Collection, error)
	// GetCollectionByIncID retrieves a collection by its sequential marketplace number
	GetCollectionByIncID(ctx context.Context, incID int64) (*schema.Collection, error)
	// GetCollectionByAddress retrieves a collection by its deployed contract address
	GetCollectionByAddress(ctx context.Context, address string) (*schema.Collection, error)
	// ListCollections retrieves collections matching the filter, newest first
	ListCollections(ctx context.Context, filter CollectionFilter) ([]*schema.Collection, error)
	// MarkCollectionLaunched records a confirmed on-chain deployment for the collection
	// with the given sequential number. Returns true if the row transitioned from
	// unlaunched to launched, false if it was already launched or does not exist.
	MarkCollectionLaunched(ctx context.Context, incID int64, address string) (bool, error)

	// CreateNft inserts a token, allocating its sequential NftID within the collection
	CreateNft(ctx context.Context, nft *schema.Nft) error
	// GetNft retrieves a token by collection and token number
	GetNft(ctx context.Context, collectionID, nftID int64) (*schema.Nft, error)
	// ListNfts retrieves tokens of a collection matching the filter, newest first
	ListNfts(ctx context.Context, collectionID int64, filter NftFilter) ([]*schema.Nft, error)
	// CountMintedNfts returns the number of tokens of a collection confirmed minted
	CountMintedNfts(ctx context.Context, collectionID int64) (int64, error)
	// MarkNftMinted records a confirmed on-chain mint for a token. Returns true if
	// the row transitioned from unminted to minted, false otherwise.
	MarkNftMinted(ctx context.Context, collectionID, nftID int64, mintedAt time.Time) (bool, error)

	// GetLaunchCursor retrieves the number of deployments already reconciled
	GetLaunchCursor(ctx context.Context) (int64, error)
	// AdvanceLaunchCursor atomically adds delta to the reconciled-deployment count
	// and returns the new value
	AdvanceLaunchCursor(ctx context.Context, delta int64) (int64, error)

	// Ping verifies database connectivity
	Ping(ctx context.Context) error
}

package schema

import (
	"time"
)

// Collection represents the collections table - one row per marketplace collection.
// A collection is created off-chain first; CollectionAddress stays nil until the
// reconciliation engine observes the matching deployment on chain.
type Collection struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CollectionIncID is the sequential marketplace-wide collection number.
	// It is the join key between database rows and on-chain deployment events.
	CollectionIncID int64 `gorm:"column:collection_inc_id;not null;uniqueIndex"`
	// Name is the collection name, unique across the marketplace
	Name string `gorm:"column:name;not null;uniqueIndex;type:text"`
	// Symbol is the token symbol used at deployment
	Symbol string `gorm:"column:symbol;type:text"`
	// Description is the free-form collection description
	Description string `gorm:"column:description;type:text"`
	// CollectionImage is the URL of the collection's display image
	CollectionImage string `gorm:"column:collection_image;type:text"`
	// CoverImage is the URL of the collection's banner image
	CoverImage string `gorm:"column:cover_image;type:text"`
	// UserID identifies the creator who owns this collection
	UserID string `gorm:"column:user_id;not null;type:text;index"`
	// Chain identifies the blockchain network (e.g., "eip155:1")
	Chain string `gorm:"column:chain;not null;type:text"`
	// CollectionAddress is the deployed contract address, lowercase hex.
	// Nil until the collection is observed on chain.
	CollectionAddress *string `gorm:"column:collection_address;type:text;index"`
	// IsLaunch indicates the collection's deployment has been confirmed on chain
	IsLaunch bool `gorm:"column:is_launch;not null;default:false"`
	// RoyaltyBps is the creator royalty in basis points
	RoyaltyBps int `gorm:"column:royalty_bps;not null;default:0"`
	// TotalNftCount is the number of NFT records attached to this collection
	TotalNftCount int64 `gorm:"column:total_nft_count;not null;default:0"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp of the last modification
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Associations
	Nfts []Nft `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Collection model
func (Collection) TableName() string {
	return "collections"
}

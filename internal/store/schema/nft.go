package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Nft represents the nfts table - one row per token within a collection.
// A token is created off-chain at upload time; IsMinted flips to true once the
// reconciliation engine observes the mint on chain.
type Nft struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CollectionID references the owning collection
	CollectionID int64 `gorm:"column:collection_id;not null;uniqueIndex:idx_nfts_collection_nft,priority:1"`
	// NftID is the sequential token number within the collection.
	// It matches the on-chain tokenID once the token is minted.
	NftID int64 `gorm:"column:nft_id;not null;uniqueIndex:idx_nfts_collection_nft,priority:2"`
	// Name is the token display name
	Name string `gorm:"column:name;not null;type:text"`
	// Description is the free-form token description
	Description string `gorm:"column:description;type:text"`
	// Image is the URL of the token media
	Image string `gorm:"column:image;type:text"`
	// Attributes holds the token trait list as JSON
	Attributes datatypes.JSON `gorm:"column:attributes;type:jsonb"`
	// Price is the listing price in wei (string to support very large numbers)
	Price string `gorm:"column:price;type:text"`
	// UserID identifies the creator who uploaded this token
	UserID string `gorm:"column:user_id;not null;type:text;index"`
	// IsMinted indicates the token's mint has been confirmed on chain
	IsMinted bool `gorm:"column:is_minted;not null;default:false"`
	// MintedAt records when the mint was confirmed (nil while unminted)
	MintedAt *time.Time `gorm:"column:minted_at"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp of the last modification
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for the Nft model
func (Nft) TableName() string {
	return "nfts"
}

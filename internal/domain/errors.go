package domain

import "errors"

var (
	// ErrCollectionNotFound is returned when a collection is not found
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrNftNotFound is returned when an NFT is not found
	ErrNftNotFound = errors.New("nft not found")

	// ErrDuplicateCollectionName is returned when creating a collection whose name is taken
	ErrDuplicateCollectionName = errors.New("collection name already exists")
)

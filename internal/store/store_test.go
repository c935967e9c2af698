package store

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/intrana/discovery-backend/internal/domain"
	"github.com/intrana/discovery-backend/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestCollection creates a collection record with a unique name
func buildTestCollection(name string) *schema.Collection {
	return &schema.Collection{
		Name:            name,
		Symbol:          "TST",
		Description:     "test collection",
		CollectionImage: "https://cdn.example.com/" + name + ".png",
		UserID:          "user-1",
		Chain:           string(domain.ChainEthereumSepolia),
		RoyaltyBps:      250,
	}
}

// buildTestNft creates a token record for the given collection
func buildTestNft(collectionID int64, name string) *schema.Nft {
	attrs, _ := json.Marshal([]domain.NftAttribute{
		{TraitType: "background", Value: "blue"},
	})
	return &schema.Nft{
		CollectionID: collectionID,
		Name:         name,
		Description:  "test nft",
		Image:        "https://cdn.example.com/" + name + ".png",
		Attributes:   datatypes.JSON(attrs),
		Price:        "1000000000000000000",
		UserID:       "user-1",
	}
}

// =============================================================================
// Test: Collections
// =============================================================================

func testCreateCollection(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("allocates sequential collection numbers", func(t *testing.T) {
		first := buildTestCollection("seq-a")
		require.NoError(t, store.CreateCollection(ctx, first))
		second := buildTestCollection("seq-b")
		require.NoError(t, store.CreateCollection(ctx, second))

		assert.Positive(t, first.CollectionIncID)
		assert.Equal(t, first.CollectionIncID+1, second.CollectionIncID)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		collection := buildTestCollection("dup-name")
		require.NoError(t, store.CreateCollection(ctx, collection))

		err := store.CreateCollection(ctx, buildTestCollection("dup-name"))
		assert.ErrorIs(t, err, domain.ErrDuplicateCollectionName)
	})

	t.Run("new collection starts unlaunched with no address", func(t *testing.T) {
		collection := buildTestCollection("fresh")
		require.NoError(t, store.CreateCollection(ctx, collection))

		got, err := store.GetCollectionByIncID(ctx, collection.CollectionIncID)
		require.NoError(t, err)
		assert.False(t, got.IsLaunch)
		assert.Nil(t, got.CollectionAddress)
		assert.Zero(t, got.TotalNftCount)
	})
}

func testGetCollection(t *testing.T, store Store) {
	ctx := context.Background()

	collection := buildTestCollection("lookup")
	require.NoError(t, store.CreateCollection(ctx, collection))

	t.Run("by internal id", func(t *testing.T) {
		got, err := store.GetCollectionByID(ctx, collection.ID)
		require.NoError(t, err)
		assert.Equal(t, "lookup", got.Name)
	})

	t.Run("by inc id", func(t *testing.T) {
		got, err := store.GetCollectionByIncID(ctx, collection.CollectionIncID)
		require.NoError(t, err)
		assert.Equal(t, collection.ID, got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := store.GetCollectionByID(ctx, 999999)
		assert.ErrorIs(t, err, domain.ErrCollectionNotFound)

		_, err = store.GetCollectionByIncID(ctx, 999999)
		assert.ErrorIs(t, err, domain.ErrCollectionNotFound)

		_, err = store.GetCollectionByAddress(ctx, "0x0000000000000000000000000000000000000001")
		assert.ErrorIs(t, err, domain.ErrCollectionNotFound)
	})

	t.Run("by address after launch, case insensitive", func(t *testing.T) {
		modified, err := store.MarkCollectionLaunched(ctx, collection.CollectionIncID,
			"0xAbCdEF1234567890123456789012345678901234")
		require.NoError(t, err)
		require.True(t, modified)

		got, err := store.GetCollectionByAddress(ctx, "0xABCDEF1234567890123456789012345678901234")
		require.NoError(t, err)
		assert.Equal(t, collection.ID, got.ID)
		require.NotNil(t, got.CollectionAddress)
		assert.Equal(t, "0xabcdef1234567890123456789012345678901234", *got.CollectionAddress)
	})
}

func testListCollections(t *testing.T, store Store) {
	ctx := context.Background()

	for i := range 5 {
		collection := buildTestCollection(fmt.Sprintf("list-%d", i))
		if i >= 3 {
			collection.UserID = "user-2"
		}
		require.NoError(t, store.CreateCollection(ctx, collection))
		if i < 2 {
			_, err := store.MarkCollectionLaunched(ctx, collection.CollectionIncID,
				fmt.Sprintf("0x%040d", i))
			require.NoError(t, err)
		}
	}

	t.Run("newest first", func(t *testing.T) {
		collections, err := store.ListCollections(ctx, CollectionFilter{})
		require.NoError(t, err)
		require.Len(t, collections, 5)
		assert.Equal(t, "list-4", collections[0].Name)
		assert.Equal(t, "list-0", collections[4].Name)
	})

	t.Run("filter by user", func(t *testing.T) {
		collections, err := store.ListCollections(ctx, CollectionFilter{UserID: "user-2"})
		require.NoError(t, err)
		assert.Len(t, collections, 2)
	})

	t.Run("filter by launch state", func(t *testing.T) {
		launched := true
		collections, err := store.ListCollections(ctx, CollectionFilter{IsLaunch: &launched})
		require.NoError(t, err)
		assert.Len(t, collections, 2)
	})

	t.Run("limit and offset", func(t *testing.T) {
		collections, err := store.ListCollections(ctx, CollectionFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		require.Len(t, collections, 2)
		assert.Equal(t, "list-3", collections[0].Name)
	})
}

func testMarkCollectionLaunched(t *testing.T, store Store) {
	ctx := context.Background()

	collection := buildTestCollection("launchable")
	require.NoError(t, store.CreateCollection(ctx, collection))

	t.Run("first launch succeeds", func(t *testing.T) {
		modified, err := store.MarkCollectionLaunched(ctx, collection.CollectionIncID,
			"0x1111111111111111111111111111111111111111")
		require.NoError(t, err)
		assert.True(t, modified)

		got, err := store.GetCollectionByIncID(ctx, collection.CollectionIncID)
		require.NoError(t, err)
		assert.True(t, got.IsLaunch)
	})

	t.Run("replayed launch is a no-op", func(t *testing.T) {
		modified, err := store.MarkCollectionLaunched(ctx, collection.CollectionIncID,
			"0x2222222222222222222222222222222222222222")
		require.NoError(t, err)
		assert.False(t, modified)

		// Address from the first launch sticks
		got, err := store.GetCollectionByIncID(ctx, collection.CollectionIncID)
		require.NoError(t, err)
		require.NotNil(t, got.CollectionAddress)
		assert.Equal(t, "0x1111111111111111111111111111111111111111", *got.CollectionAddress)
	})

	t.Run("unknown collection number reports no match", func(t *testing.T) {
		modified, err := store.MarkCollectionLaunched(ctx, 999999,
			"0x3333333333333333333333333333333333333333")
		require.NoError(t, err)
		assert.False(t, modified)
	})
}

// =============================================================================
// Test: NFTs
// =============================================================================

func testCreateNft(t *testing.T, store Store) {
	ctx := context.Background()

	collection := buildTestCollection("nft-home")
	require.NoError(t, store.CreateCollection(ctx, collection))

	t.Run("allocates sequential token numbers per collection", func(t *testing.T) {
		first := buildTestNft(collection.ID, "token-a")
		require.NoError(t, store.CreateNft(ctx, first))
		second := buildTestNft(collection.ID, "token-b")
		require.NoError(t, store.CreateNft(ctx, second))

		assert.Equal(t, int64(1), first.NftID)
		assert.Equal(t, int64(2), second.NftID)
	})

	t.Run("bumps the collection token count", func(t *testing.T) {
		got, err := store.GetCollectionByID(ctx, collection.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.TotalNftCount)
	})

	t.Run("sequences are independent across collections", func(t *testing.T) {
		other := buildTestCollection("nft-other")
		require.NoError(t, store.CreateCollection(ctx, other))

		nft := buildTestNft(other.ID, "token-c")
		require.NoError(t, store.CreateNft(ctx, nft))
		assert.Equal(t, int64(1), nft.NftID)
	})

	t.Run("unknown collection is rejected", func(t *testing.T) {
		err := store.CreateNft(ctx, buildTestNft(999999, "orphan"))
		assert.ErrorIs(t, err, domain.ErrCollectionNotFound)
	})
}

func testMarkNftMinted(t *testing.T, store Store) {
	ctx := context.Background()

	collection := buildTestCollection("mintable")
	require.NoError(t, store.CreateCollection(ctx, collection))

	nft := buildTestNft(collection.ID, "token-m")
	require.NoError(t, store.CreateNft(ctx, nft))

	mintedAt := time.Now().UTC().Truncate(time.Second)

	t.Run("first mint succeeds", func(t *testing.T) {
		modified, err := store.MarkNftMinted(ctx, collection.ID, nft.NftID, mintedAt)
		require.NoError(t, err)
		assert.True(t, modified)

		got, err := store.GetNft(ctx, collection.ID, nft.NftID)
		require.NoError(t, err)
		assert.True(t, got.IsMinted)
		require.NotNil(t, got.MintedAt)
		assert.WithinDuration(t, mintedAt, *got.MintedAt, time.Second)
	})

	t.Run("replayed mint is a no-op", func(t *testing.T) {
		modified, err := store.MarkNftMinted(ctx, collection.ID, nft.NftID, time.Now().UTC())
		require.NoError(t, err)
		assert.False(t, modified)
	})

	t.Run("unknown token reports no match", func(t *testing.T) {
		modified, err := store.MarkNftMinted(ctx, collection.ID, 999999, time.Now().UTC())
		require.NoError(t, err)
		assert.False(t, modified)
	})
}

func testCountMintedNfts(t *testing.T, store Store) {
	ctx := context.Background()

	collection := buildTestCollection("countable")
	require.NoError(t, store.CreateCollection(ctx, collection))

	for i := range 4 {
		nft := buildTestNft(collection.ID, fmt.Sprintf("token-%d", i))
		require.NoError(t, store.CreateNft(ctx, nft))
		if i < 3 {
			_, err := store.MarkNftMinted(ctx, collection.ID, nft.NftID, time.Now().UTC())
			require.NoError(t, err)
		}
	}

	count, err := store.CountMintedNfts(ctx, collection.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	t.Run("empty collection counts zero", func(t *testing.T) {
		other := buildTestCollection("count-empty")
		require.NoError(t, store.CreateCollection(ctx, other))

		count, err := store.CountMintedNfts(ctx, other.ID)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func testListNfts(t *testing.T, store Store) {
	ctx := context.Background()

	collection := buildTestCollection("listable")
	require.NoError(t, store.CreateCollection(ctx, collection))

	for i := range 5 {
		nft := buildTestNft(collection.ID, fmt.Sprintf("token-%d", i))
		require.NoError(t, store.CreateNft(ctx, nft))
		if i%2 == 0 {
			_, err := store.MarkNftMinted(ctx, collection.ID, nft.NftID, time.Now().UTC())
			require.NoError(t, err)
		}
	}

	t.Run("newest first", func(t *testing.T) {
		nfts, err := store.ListNfts(ctx, collection.ID, NftFilter{})
		require.NoError(t, err)
		require.Len(t, nfts, 5)
		assert.Equal(t, int64(5), nfts[0].NftID)
	})

	t.Run("filter minted", func(t *testing.T) {
		minted := true
		nfts, err := store.ListNfts(ctx, collection.ID, NftFilter{IsMinted: &minted})
		require.NoError(t, err)
		assert.Len(t, nfts, 3)
	})

	t.Run("filter unminted with limit", func(t *testing.T) {
		minted := false
		nfts, err := store.ListNfts(ctx, collection.ID, NftFilter{IsMinted: &minted, Limit: 1})
		require.NoError(t, err)
		require.Len(t, nfts, 1)
		assert.Equal(t, int64(4), nfts[0].NftID)
	})
}

// =============================================================================
// Test: Launch cursor
// =============================================================================

func testLaunchCursor(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("starts at zero", func(t *testing.T) {
		cursor, err := store.GetLaunchCursor(ctx)
		require.NoError(t, err)
		assert.Zero(t, cursor)
	})

	t.Run("advances atomically", func(t *testing.T) {
		value, err := store.AdvanceLaunchCursor(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(3), value)

		value, err = store.AdvanceLaunchCursor(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(5), value)

		cursor, err := store.GetLaunchCursor(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(5), cursor)
	})
}

// RunStoreTests runs the shared store test suite against an implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"CreateCollection", testCreateCollection},
		{"GetCollection", testGetCollection},
		{"ListCollections", testListCollections},
		{"MarkCollectionLaunched", testMarkCollectionLaunched},
		{"CreateNft", testCreateNft},
		{"MarkNftMinted", testMarkNftMinted},
		{"CountMintedNfts", testCountMintedNfts},
		{"ListNfts", testListNfts},
		{"LaunchCursor", testLaunchCursor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			tt.fn(t, store)
		})
	}
}

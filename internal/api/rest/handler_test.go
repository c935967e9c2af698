package rest_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intrana/discovery-backend/internal/api/rest"
	"github.com/intrana/discovery-backend/internal/domain"
	"github.com/intrana/discovery-backend/internal/logger"
	"github.com/intrana/discovery-backend/internal/mocks"
	"github.com/intrana/discovery-backend/internal/reconcile"
	"github.com/intrana/discovery-backend/internal/store"
	"github.com/intrana/discovery-backend/internal/store/schema"
)

const (
	testContractAddress = "0xabc0000000000000000000000000000000000001"
)

// testHandlerMocks contains all the mocks needed for testing the handlers
type testHandlerMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	subgraph *mocks.MockSubgraphClient
	engine   *mocks.MockReconcileEngine
}

// setupTestRouter creates the mocks and a router with all routes registered
func setupTestRouter(t *testing.T) (*testHandlerMocks, *gin.Engine) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)

	tm := &testHandlerMocks{
		ctrl:     ctrl,
		store:    mocks.NewMockStore(ctrl),
		subgraph: mocks.NewMockSubgraphClient(ctrl),
		engine:   mocks.NewMockReconcileEngine(ctrl),
	}

	handler := rest.NewHandler(domain.ChainEthereumSepolia, tm.store, tm.subgraph, tm.engine)
	router := gin.New()
	rest.SetupRoutes(router, handler)

	return tm, router
}

// performRequest issues an HTTP request against the test router
func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

// decodeBody unmarshals a recorded JSON response body
func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
}

func TestHandler_CreateCollection_Success(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().
		CreateCollection(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, collection *schema.Collection) error {
			assert.Equal(t, "Genesis", collection.Name)
			assert.Equal(t, "user-1", collection.UserID)
			// Chain omitted in the request should fall back to the default
			assert.Equal(t, string(domain.ChainEthereumSepolia), collection.Chain)
			collection.ID = 10
			collection.CollectionIncID = 7
			return nil
		})

	recorder := performRequest(router, http.MethodPost, "/api/v1/collections", gin.H{
		"name":    "Genesis",
		"symbol":  "GEN",
		"user_id": "user-1",
	})

	require.Equal(t, http.StatusCreated, recorder.Code)

	var response rest.CollectionResponse
	decodeBody(t, recorder, &response)
	assert.Equal(t, int64(7), response.CollectionIncID)
	assert.Equal(t, "Genesis", response.Name)
	assert.Equal(t, "GEN", response.Symbol)
	assert.False(t, response.IsLaunch)
	assert.Nil(t, response.CollectionAddress)
}

func TestHandler_CreateCollection_DuplicateName(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().
		CreateCollection(gomock.Any(), gomock.Any()).
		Return(domain.ErrDuplicateCollectionName)

	recorder := performRequest(router, http.MethodPost, "/api/v1/collections", gin.H{
		"name":    "Genesis",
		"user_id": "user-1",
	})

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestHandler_CreateCollection_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body gin.H
	}{
		{
			name: "missing name",
			body: gin.H{"user_id": "user-1"},
		},
		{
			name: "missing user id",
			body: gin.H{"name": "Genesis"},
		},
		{
			name: "unsupported chain",
			body: gin.H{"name": "Genesis", "user_id": "user-1", "chain": "eip155:999"},
		},
		{
			name: "royalty out of range",
			body: gin.H{"name": "Genesis", "user_id": "user-1", "royalty_bps": 20000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm, router := setupTestRouter(t)
			defer tm.ctrl.Finish()

			recorder := performRequest(router, http.MethodPost, "/api/v1/collections", tt.body)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestHandler_ListCollections_PassesFilter(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().
		ListCollections(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, filter store.CollectionFilter) ([]*schema.Collection, error) {
			assert.Equal(t, "user-1", filter.UserID)
			require.NotNil(t, filter.IsLaunch)
			assert.True(t, *filter.IsLaunch)
			assert.Equal(t, 5, filter.Limit)
			assert.Equal(t, 10, filter.Offset)
			return []*schema.Collection{
				{CollectionIncID: 1, Name: "Genesis", UserID: "user-1", IsLaunch: true},
			}, nil
		})

	recorder := performRequest(router, http.MethodGet,
		"/api/v1/collections?user_id=user-1&is_launch=true&limit=5&offset=10", nil)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response rest.ListCollectionsResponse
	decodeBody(t, recorder, &response)
	require.Len(t, response.Collections, 1)
	assert.Equal(t, "Genesis", response.Collections[0].Name)
	assert.Equal(t, 5, response.Limit)
	assert.Equal(t, 10, response.Offset)
}

func TestHandler_GetCollection_NotFound(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().
		GetCollectionByIncID(gomock.Any(), int64(9)).
		Return(nil, domain.ErrCollectionNotFound)

	recorder := performRequest(router, http.MethodGet, "/api/v1/collections/9", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_GetCollection_InvalidID(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	recorder := performRequest(router, http.MethodGet, "/api/v1/collections/abc", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_GetCollection_RefreshesMintedStateWhenLaunched(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	address := testContractAddress
	tm.store.EXPECT().
		GetCollectionByIncID(gomock.Any(), int64(3)).
		Return(&schema.Collection{
			CollectionIncID:   3,
			Name:              "Genesis",
			IsLaunch:          true,
			CollectionAddress: &address,
		}, nil)

	tm.engine.EXPECT().
		ReconcileMintedNFTs(gomock.Any(), address).
		Return(&reconcile.MintResult{Updated: 2}, nil)

	recorder := performRequest(router, http.MethodGet, "/api/v1/collections/3", nil)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response rest.CollectionResponse
	decodeBody(t, recorder, &response)
	assert.True(t, response.IsLaunch)
}

func TestHandler_GetCollection_RefreshFailureDoesNotBreakRead(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	address := testContractAddress
	tm.store.EXPECT().
		GetCollectionByIncID(gomock.Any(), int64(3)).
		Return(&schema.Collection{
			CollectionIncID:   3,
			IsLaunch:          true,
			CollectionAddress: &address,
		}, nil)

	tm.engine.EXPECT().
		ReconcileMintedNFTs(gomock.Any(), address).
		Return(nil, errors.New("subgraph unavailable"))

	recorder := performRequest(router, http.MethodGet, "/api/v1/collections/3", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_GetCollection_NoRefreshWhenUnlaunched(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().
		GetCollectionByIncID(gomock.Any(), int64(3)).
		Return(&schema.Collection{CollectionIncID: 3}, nil)

	recorder := performRequest(router, http.MethodGet, "/api/v1/collections/3", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_CreateNft_Success(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().
		GetCollectionByIncID(gomock.Any(), int64(3)).
		Return(&schema.Collection{ID: 30, CollectionIncID: 3}, nil)

	tm.store.EXPECT().
		CreateNft(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, nft *schema.Nft) error {
			assert.Equal(t, int64(30), nft.CollectionID)
			assert.Equal(t, "Token One", nft.Name)
			nft.ID = 100
			nft.NftID = 1
			return nil
		})

	recorder := performRequest(router, http.MethodPost, "/api/v1/collections/3/nfts", gin.H{
		"name":    "Token One",
		"user_id": "user-1",
		"price":   "1000000000000000000",
		"attributes": []gin.H{
			{"trait_type": "Background", "value": "Blue"},
		},
	})

	require.Equal(t, http.StatusCreated, recorder.Code)

	var response rest.NftResponse
	decodeBody(t, recorder, &response)
	assert.Equal(t, int64(3), response.CollectionIncID)
	assert.Equal(t, int64(1), response.NftID)
	assert.Equal(t, "Token One", response.Name)
	assert.False(t, response.IsMinted)
}

func TestHandler_CreateNft_CollectionNotFound(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().
		GetCollectionByIncID(gomock.Any(), int64(3)).
		Return(nil, domain.ErrCollectionNotFound)

	recorder := performRequest(router, http.MethodPost, "/api/v1/collections/3/nfts", gin.H{
		"name":    "Token One",
		"user_id": "user-1",
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_GetNft_NotFound(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().
		GetCollectionByIncID(gomock.Any(), int64(3)).
		Return(&schema.Collection{ID: 30, CollectionIncID: 3}, nil)
	tm.store.EXPECT().
		GetNft(gomock.Any(), int64(30), int64(4)).
		Return(nil, domain.ErrNftNotFound)

	recorder := performRequest(router, http.MethodGet, "/api/v1/collections/3/nfts/4", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_ListNfts_PassesFilter(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().
		GetCollectionByIncID(gomock.Any(), int64(3)).
		Return(&schema.Collection{ID: 30, CollectionIncID: 3}, nil)
	tm.store.EXPECT().
		ListNfts(gomock.Any(), int64(30), gomock.Any()).
		DoAndReturn(func(_ interface{}, _ int64, filter store.NftFilter) ([]*schema.Nft, error) {
			require.NotNil(t, filter.IsMinted)
			assert.False(t, *filter.IsMinted)
			return []*schema.Nft{
				{NftID: 1, Name: "Token One", UserID: "user-1"},
			}, nil
		})

	recorder := performRequest(router, http.MethodGet, "/api/v1/collections/3/nfts?is_minted=false", nil)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response rest.ListNftsResponse
	decodeBody(t, recorder, &response)
	require.Len(t, response.Nfts, 1)
	assert.Equal(t, int64(3), response.Nfts[0].CollectionIncID)
	assert.Equal(t, "Token One", response.Nfts[0].Name)
}

func TestHandler_GetCollectionTokens_NotLaunched(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().
		GetCollectionByIncID(gomock.Any(), int64(3)).
		Return(&schema.Collection{CollectionIncID: 3}, nil)

	recorder := performRequest(router, http.MethodGet, "/api/v1/collections/3/tokens", nil)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestHandler_GetCollectionTokens_Success(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	address := testContractAddress
	tm.store.EXPECT().
		GetCollectionByIncID(gomock.Any(), int64(3)).
		Return(&schema.Collection{
			CollectionIncID:   3,
			IsLaunch:          true,
			CollectionAddress: &address,
		}, nil)

	tm.subgraph.EXPECT().
		CollectionTokens(gomock.Any(), address, 20, 0).
		Return(
			&domain.CollectionStats{Name: "Genesis", TotalTokens: 2},
			[]domain.SubgraphToken{
				{TokenID: 1, SaleType: "fixedsale", MarketPrice: "1000"},
				{TokenID: 2},
			},
			nil,
		)

	recorder := performRequest(router, http.MethodGet, "/api/v1/collections/3/tokens", nil)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response rest.CollectionTokensResponse
	decodeBody(t, recorder, &response)
	require.NotNil(t, response.Collection)
	assert.Equal(t, uint64(2), response.Collection.TotalTokens)
	require.Len(t, response.Tokens, 2)
	assert.Equal(t, uint64(1), response.Tokens[0].TokenID)
	assert.Equal(t, "fixedsale", response.Tokens[0].SaleType)
}

func TestHandler_ListFixedSales_NormalizesArtist(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	tm.subgraph.EXPECT().
		FixedSaleListings(gomock.Any(), "0xartist", 20, 0).
		Return([]domain.FixedSale{{FixedSaleIndex: 1, Artist: "0xartist"}}, nil)

	recorder := performRequest(router, http.MethodGet, "/api/v1/market/fixed-sales?artist=0xARTIST", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "fixed_sales")
}

func TestHandler_GetFixedSaleOffers_InvalidIndex(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	recorder := performRequest(router, http.MethodGet, "/api/v1/market/fixed-sales/abc/offers", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_GetAuction_NotFound(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	tm.subgraph.EXPECT().
		AuctionByIndex(gomock.Any(), uint64(12)).
		Return(nil, nil)

	recorder := performRequest(router, http.MethodGet, "/api/v1/market/auctions/12", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_GetAuction_Success(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	tm.subgraph.EXPECT().
		AuctionByIndex(gomock.Any(), uint64(12)).
		Return(&domain.Auction{
			AuctionIndex: 12,
			StartPrice:   "5000",
			Bids: []domain.AuctionBid{
				{Bidder: "0xbidder", Amount: "6000"},
			},
		}, nil)

	recorder := performRequest(router, http.MethodGet, "/api/v1/market/auctions/12", nil)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response rest.AuctionResponse
	decodeBody(t, recorder, &response)
	assert.Equal(t, uint64(12), response.AuctionIndex)
	require.Len(t, response.Bids, 1)
	assert.Equal(t, "6000", response.Bids[0].Amount)
}

func TestHandler_GetTokenOffers_InvalidContract(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	recorder := performRequest(router, http.MethodGet, "/api/v1/market/tokens/not-an-address/1/offers", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_GetTokenOffers_Success(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	tm.subgraph.EXPECT().
		OffersForToken(gomock.Any(), testContractAddress, uint64(5)).
		Return([]domain.TokenOffer{
			{NftContract: testContractAddress, TokenID: 5, OfferAmount: "900"},
		}, nil)

	path := fmt.Sprintf("/api/v1/market/tokens/%s/5/offers", testContractAddress)
	recorder := performRequest(router, http.MethodGet, path, nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "offers")
}

func TestHandler_UpdateIsLaunchCollection_Success(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	tm.engine.EXPECT().
		ReconcileLaunchedCollections(gomock.Any()).
		Return(&reconcile.LaunchResult{Launched: 2, Orphaned: 1}, nil)

	recorder := performRequest(router, http.MethodGet, "/updateIsLaunchCollectionForApi", nil)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response rest.ReconcileLaunchResponse
	decodeBody(t, recorder, &response)
	assert.Equal(t, "collection deployed successfully", response.Message)
	assert.Equal(t, 2, response.Launched)
	assert.Equal(t, 1, response.Orphaned)
}

func TestHandler_UpdateIsLaunchCollection_EngineError(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	tm.engine.EXPECT().
		ReconcileLaunchedCollections(gomock.Any()).
		Return(nil, errors.New("subgraph unavailable"))

	recorder := performRequest(router, http.MethodGet, "/updateIsLaunchCollectionForApi", nil)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestHandler_UpdateMintedNft_MissingAddress(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	recorder := performRequest(router, http.MethodGet, "/updateMintedNftForApi", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_UpdateMintedNft_InvalidAddress(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	recorder := performRequest(router, http.MethodGet, "/updateMintedNftForApi?collectionAddress=nope", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_UpdateMintedNft_UnknownCollection(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	tm.engine.EXPECT().
		ReconcileMintedNFTs(gomock.Any(), testContractAddress).
		Return(nil, domain.ErrCollectionNotFound)

	path := "/updateMintedNftForApi?collectionAddress=" + testContractAddress
	recorder := performRequest(router, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_UpdateMintedNft_Success(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	tm.engine.EXPECT().
		ReconcileMintedNFTs(gomock.Any(), testContractAddress).
		Return(&reconcile.MintResult{Updated: 3}, nil)

	path := "/updateMintedNftForApi?collectionAddress=" + testContractAddress
	recorder := performRequest(router, http.MethodGet, path, nil)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response rest.ReconcileMintResponse
	decodeBody(t, recorder, &response)
	assert.Equal(t, "NFT minted successfully", response.Message)
	assert.Equal(t, 3, response.Updated)
	assert.Zero(t, response.Orphaned)
}

func TestHandler_HealthCheck(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().Ping(gomock.Any()).Return(nil)

	recorder := performRequest(router, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"ok"`)
}

func TestHandler_HealthCheck_DatabaseDown(t *testing.T) {
	tm, router := setupTestRouter(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

	recorder := performRequest(router, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"unavailable"`)
}

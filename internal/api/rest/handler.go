package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/intrana/discovery-backend/internal/domain"
	"github.com/intrana/discovery-backend/internal/logger"
	"github.com/intrana/discovery-backend/internal/reconcile"
	"github.com/intrana/discovery-backend/internal/store"
	"github.com/intrana/discovery-backend/internal/store/schema"
	"github.com/intrana/discovery-backend/internal/subgraph"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// CreateCollection creates a local collection and assigns its marketplace number
	// POST /api/v1/collections
	CreateCollection(c *gin.Context)

	// ListCollections retrieves collections with optional filters
	// GET /api/v1/collections?user_id=<id>&is_launch=<bool>&limit=<limit>&offset=<offset>
	ListCollections(c *gin.Context)

	// GetCollection retrieves a single collection by its marketplace number.
	// Reading a launched collection also refreshes its minted token state.
	// GET /api/v1/collections/:id
	GetCollection(c *gin.Context)

	// CreateNft creates a token inside a collection and assigns its token number
	// POST /api/v1/collections/:id/nfts
	CreateNft(c *gin.Context)

	// ListNfts retrieves the tokens of a collection
	// GET /api/v1/collections/:id/nfts?is_minted=<bool>&limit=<limit>&offset=<offset>
	ListNfts(c *gin.Context)

	// GetNft retrieves a single token by collection and token number
	// GET /api/v1/collections/:id/nfts/:nft_id
	GetNft(c *gin.Context)

	// GetCollectionTokens retrieves the on-chain token list of a launched collection
	// GET /api/v1/collections/:id/tokens?limit=<limit>&offset=<offset>
	GetCollectionTokens(c *gin.Context)

	// ListFixedSales retrieves fixed-price listings
	// GET /api/v1/market/fixed-sales?artist=<address>&limit=<limit>&offset=<offset>
	ListFixedSales(c *gin.Context)

	// GetFixedSaleOffers retrieves the offers made against a fixed-price listing
	// GET /api/v1/market/fixed-sales/:index/offers
	GetFixedSaleOffers(c *gin.Context)

	// ListAuctions retrieves auction listings
	// GET /api/v1/market/auctions?artist=<address>&limit=<limit>&offset=<offset>
	ListAuctions(c *gin.Context)

	// GetAuction retrieves a single auction by its index
	// GET /api/v1/market/auctions/:index
	GetAuction(c *gin.Context)

	// GetAuctionBids retrieves the bids placed on an auction
	// GET /api/v1/market/auctions/:index/bids
	GetAuctionBids(c *gin.Context)

	// GetTokenOffers retrieves offers made on a non-listed token
	// GET /api/v1/market/tokens/:contract/:token_id/offers
	GetTokenOffers(c *gin.Context)

	// UpdateIsLaunchCollection runs the collection launch reconcile on demand
	// GET /updateIsLaunchCollectionForApi
	UpdateIsLaunchCollection(c *gin.Context)

	// UpdateMintedNft runs the minted NFT reconcile for one collection on demand
	// GET /updateMintedNftForApi?collectionAddress=<address>
	UpdateMintedNft(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	defaultChain domain.Chain
	store        store.Store
	subgraph     subgraph.Client
	engine       reconcile.Engine
}

// NewHandler creates a new REST API handler
func NewHandler(defaultChain domain.Chain, st store.Store, sg subgraph.Client, engine reconcile.Engine) Handler {
	return &handler{
		defaultChain: defaultChain,
		store:        st,
		subgraph:     sg,
		engine:       engine,
	}
}

// collectionIncIDParam parses the :id path parameter
func collectionIncIDParam(c *gin.Context) (int64, error) {
	incID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || incID <= 0 {
		return 0, fmt.Errorf("invalid collection id: %s", c.Param("id"))
	}
	return incID, nil
}

// indexParam parses an unsigned :index style path parameter
func indexParam(c *gin.Context, name string) (uint64, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", name, c.Param(name))
	}
	return value, nil
}

// CreateCollection creates a local collection and assigns its marketplace number
func (h *handler) CreateCollection(c *gin.Context) {
	var req CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	chain := req.Chain
	if chain == "" {
		chain = string(h.defaultChain)
	}

	collection := &schema.Collection{
		Name:            req.Name,
		Symbol:          req.Symbol,
		Description:     req.Description,
		CollectionImage: req.CollectionImage,
		CoverImage:      req.CoverImage,
		UserID:          req.UserID,
		Chain:           chain,
		RoyaltyBps:      req.RoyaltyBps,
	}

	if err := h.store.CreateCollection(c.Request.Context(), collection); err != nil {
		if errors.Is(err, domain.ErrDuplicateCollectionName) {
			respondConflict(c, "Collection name already exists")
			return
		}
		respondInternalError(c, err, "Failed to create collection")
		return
	}

	c.JSON(http.StatusCreated, toCollectionResponse(collection))
}

// ListCollections retrieves collections with optional filters
func (h *handler) ListCollections(c *gin.Context) {
	queryParams, err := ParseListCollectionsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	collections, err := h.store.ListCollections(c.Request.Context(), store.CollectionFilter{
		UserID:   queryParams.UserID,
		IsLaunch: queryParams.IsLaunch,
		Limit:    queryParams.Limit,
		Offset:   queryParams.Offset,
	})
	if err != nil {
		respondInternalError(c, err, "Failed to list collections")
		return
	}

	response := ListCollectionsResponse{
		Collections: make([]CollectionResponse, 0, len(collections)),
		Limit:       queryParams.Limit,
		Offset:      queryParams.Offset,
	}
	for _, collection := range collections {
		response.Collections = append(response.Collections, toCollectionResponse(collection))
	}

	c.JSON(http.StatusOK, response)
}

// GetCollection retrieves a single collection by its marketplace number
func (h *handler) GetCollection(c *gin.Context) {
	incID, err := collectionIncIDParam(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	collection, err := h.store.GetCollectionByIncID(c.Request.Context(), incID)
	if errors.Is(err, domain.ErrCollectionNotFound) {
		respondNotFound(c, "Collection not found")
		return
	}
	if err != nil {
		respondInternalError(c, err, "Failed to get collection")
		return
	}

	// Refresh minted state from the chain on read. A stale or failing
	// subgraph must not break the detail view, so failures only log.
	if collection.IsLaunch && collection.CollectionAddress != nil {
		if _, err := h.engine.ReconcileMintedNFTs(c.Request.Context(), *collection.CollectionAddress); err != nil {
			logger.Warn("Minted NFT refresh failed on collection read",
				zap.Error(err),
				zap.Int64("collection_inc_id", incID),
			)
		}
	}

	c.JSON(http.StatusOK, toCollectionResponse(collection))
}

// CreateNft creates a token inside a collection and assigns its token number
func (h *handler) CreateNft(c *gin.Context) {
	incID, err := collectionIncIDParam(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	var req CreateNftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	collection, err := h.store.GetCollectionByIncID(c.Request.Context(), incID)
	if errors.Is(err, domain.ErrCollectionNotFound) {
		respondNotFound(c, "Collection not found")
		return
	}
	if err != nil {
		respondInternalError(c, err, "Failed to get collection")
		return
	}

	attributes, err := marshalAttributes(req.Attributes)
	if err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid attributes: %v", err))
		return
	}

	nft := &schema.Nft{
		CollectionID: collection.ID,
		Name:         req.Name,
		Description:  req.Description,
		Image:        req.Image,
		Attributes:   attributes,
		Price:        req.Price,
		UserID:       req.UserID,
	}

	if err := h.store.CreateNft(c.Request.Context(), nft); err != nil {
		respondInternalError(c, err, "Failed to create NFT")
		return
	}

	c.JSON(http.StatusCreated, toNftResponse(incID, nft))
}

// ListNfts retrieves the tokens of a collection
func (h *handler) ListNfts(c *gin.Context) {
	incID, err := collectionIncIDParam(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	queryParams, err := ParseListNftsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	collection, err := h.store.GetCollectionByIncID(c.Request.Context(), incID)
	if errors.Is(err, domain.ErrCollectionNotFound) {
		respondNotFound(c, "Collection not found")
		return
	}
	if err != nil {
		respondInternalError(c, err, "Failed to get collection")
		return
	}

	nfts, err := h.store.ListNfts(c.Request.Context(), collection.ID, store.NftFilter{
		IsMinted: queryParams.IsMinted,
		Limit:    queryParams.Limit,
		Offset:   queryParams.Offset,
	})
	if err != nil {
		respondInternalError(c, err, "Failed to list NFTs")
		return
	}

	response := ListNftsResponse{
		Nfts:   make([]NftResponse, 0, len(nfts)),
		Limit:  queryParams.Limit,
		Offset: queryParams.Offset,
	}
	for _, nft := range nfts {
		response.Nfts = append(response.Nfts, toNftResponse(incID, nft))
	}

	c.JSON(http.StatusOK, response)
}

// GetNft retrieves a single token by collection and token number
func (h *handler) GetNft(c *gin.Context) {
	incID, err := collectionIncIDParam(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	nftID, err := strconv.ParseInt(c.Param("nft_id"), 10, 64)
	if err != nil || nftID <= 0 {
		respondBadRequest(c, fmt.Sprintf("invalid nft id: %s", c.Param("nft_id")))
		return
	}

	collection, err := h.store.GetCollectionByIncID(c.Request.Context(), incID)
	if errors.Is(err, domain.ErrCollectionNotFound) {
		respondNotFound(c, "Collection not found")
		return
	}
	if err != nil {
		respondInternalError(c, err, "Failed to get collection")
		return
	}

	nft, err := h.store.GetNft(c.Request.Context(), collection.ID, nftID)
	if errors.Is(err, domain.ErrNftNotFound) {
		respondNotFound(c, "NFT not found")
		return
	}
	if err != nil {
		respondInternalError(c, err, "Failed to get NFT")
		return
	}

	c.JSON(http.StatusOK, toNftResponse(incID, nft))
}

// GetCollectionTokens retrieves the on-chain token list of a launched collection
func (h *handler) GetCollectionTokens(c *gin.Context) {
	incID, err := collectionIncIDParam(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	queryParams, err := ParseMarketQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	collection, err := h.store.GetCollectionByIncID(c.Request.Context(), incID)
	if errors.Is(err, domain.ErrCollectionNotFound) {
		respondNotFound(c, "Collection not found")
		return
	}
	if err != nil {
		respondInternalError(c, err, "Failed to get collection")
		return
	}

	if !collection.IsLaunch || collection.CollectionAddress == nil {
		respondConflict(c, "Collection is not launched yet")
		return
	}

	stats, tokens, err := h.subgraph.CollectionTokens(
		c.Request.Context(),
		*collection.CollectionAddress,
		queryParams.Limit,
		queryParams.Offset,
	)
	if err != nil {
		respondInternalError(c, err, "Failed to get collection tokens")
		return
	}

	c.JSON(http.StatusOK, CollectionTokensResponse{
		Collection: toCollectionStatsResponse(stats),
		Tokens:     toSubgraphTokenResponses(tokens),
	})
}

// ListFixedSales retrieves fixed-price listings
func (h *handler) ListFixedSales(c *gin.Context) {
	queryParams, err := ParseMarketQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	artist := domain.NormalizeAddress(queryParams.Artist)
	sales, err := h.subgraph.FixedSaleListings(c.Request.Context(), artist, queryParams.Limit, queryParams.Offset)
	if err != nil {
		respondInternalError(c, err, "Failed to list fixed sales")
		return
	}

	c.JSON(http.StatusOK, gin.H{"fixed_sales": toFixedSaleResponses(sales)})
}

// GetFixedSaleOffers retrieves the offers made against a fixed-price listing
func (h *handler) GetFixedSaleOffers(c *gin.Context) {
	index, err := indexParam(c, "index")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	offers, err := h.subgraph.FixedSaleOffers(c.Request.Context(), index)
	if err != nil {
		respondInternalError(c, err, "Failed to get fixed sale offers")
		return
	}

	c.JSON(http.StatusOK, gin.H{"offers": toSaleOfferResponses(offers)})
}

// ListAuctions retrieves auction listings
func (h *handler) ListAuctions(c *gin.Context) {
	queryParams, err := ParseMarketQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	artist := domain.NormalizeAddress(queryParams.Artist)
	auctions, err := h.subgraph.Auctions(c.Request.Context(), artist, queryParams.Limit, queryParams.Offset)
	if err != nil {
		respondInternalError(c, err, "Failed to list auctions")
		return
	}

	c.JSON(http.StatusOK, gin.H{"auctions": toAuctionResponses(auctions)})
}

// GetAuction retrieves a single auction by its index
func (h *handler) GetAuction(c *gin.Context) {
	index, err := indexParam(c, "index")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	auction, err := h.subgraph.AuctionByIndex(c.Request.Context(), index)
	if err != nil {
		respondInternalError(c, err, "Failed to get auction")
		return
	}
	if auction == nil {
		respondNotFound(c, "Auction not found")
		return
	}

	c.JSON(http.StatusOK, toAuctionResponse(auction))
}

// GetAuctionBids retrieves the bids placed on an auction
func (h *handler) GetAuctionBids(c *gin.Context) {
	index, err := indexParam(c, "index")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	bids, err := h.subgraph.AuctionBids(c.Request.Context(), index)
	if err != nil {
		respondInternalError(c, err, "Failed to get auction bids")
		return
	}

	c.JSON(http.StatusOK, gin.H{"bids": toAuctionBidResponses(bids)})
}

// GetTokenOffers retrieves offers made on a non-listed token
func (h *handler) GetTokenOffers(c *gin.Context) {
	contract := domain.NormalizeAddress(c.Param("contract"))
	if !domain.IsValidContractAddress(contract) {
		respondBadRequest(c, fmt.Sprintf("invalid contract address: %s", c.Param("contract")))
		return
	}

	tokenID, err := indexParam(c, "token_id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	offers, err := h.subgraph.OffersForToken(c.Request.Context(), contract, tokenID)
	if err != nil {
		respondInternalError(c, err, "Failed to get token offers")
		return
	}

	c.JSON(http.StatusOK, gin.H{"offers": toTokenOfferResponses(offers)})
}

// UpdateIsLaunchCollection runs the collection launch reconcile on demand
func (h *handler) UpdateIsLaunchCollection(c *gin.Context) {
	result, err := h.engine.ReconcileLaunchedCollections(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to sync collection launch state")
		return
	}

	c.JSON(http.StatusOK, ReconcileLaunchResponse{
		Message:  "collection deployed successfully",
		Launched: result.Launched,
		Orphaned: result.Orphaned,
	})
}

// UpdateMintedNft runs the minted NFT reconcile for one collection on demand
func (h *handler) UpdateMintedNft(c *gin.Context) {
	address := c.Query("collectionAddress")
	if address == "" {
		respondBadRequest(c, "collectionAddress is required")
		return
	}

	if !domain.IsValidContractAddress(address) {
		respondBadRequest(c, fmt.Sprintf("invalid collection address: %s", address))
		return
	}

	result, err := h.engine.ReconcileMintedNFTs(c.Request.Context(), address)
	if errors.Is(err, domain.ErrCollectionNotFound) {
		respondNotFound(c, "Collection not found")
		return
	}
	if err != nil {
		respondInternalError(c, err, "Failed to sync minted NFT state")
		return
	}

	c.JSON(http.StatusOK, ReconcileMintResponse{
		Message:  "NFT minted successfully",
		Updated:  result.Updated,
		Orphaned: result.Orphaned,
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		logger.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unavailable",
			"service": "discovery-api",
		})
		return
	}

	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "discovery-api",
	})
}

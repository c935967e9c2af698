package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	// On-demand reconcile endpoints (no version prefix, legacy paths)
	router.GET("/updateIsLaunchCollectionForApi", handler.UpdateIsLaunchCollection)
	router.GET("/updateMintedNftForApi", handler.UpdateMintedNft)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Collection endpoints
		v1.POST("/collections", handler.CreateCollection)
		v1.GET("/collections", handler.ListCollections)
		v1.GET("/collections/:id", handler.GetCollection)

		// NFT endpoints
		v1.POST("/collections/:id/nfts", handler.CreateNft)
		v1.GET("/collections/:id/nfts", handler.ListNfts)
		v1.GET("/collections/:id/nfts/:nft_id", handler.GetNft)

		// On-chain token list of a launched collection
		v1.GET("/collections/:id/tokens", handler.GetCollectionTokens)

		// Marketplace read endpoints (served from the subgraph)
		v1.GET("/market/fixed-sales", handler.ListFixedSales)
		v1.GET("/market/fixed-sales/:index/offers", handler.GetFixedSaleOffers)
		v1.GET("/market/auctions", handler.ListAuctions)
		v1.GET("/market/auctions/:index", handler.GetAuction)
		v1.GET("/market/auctions/:index/bids", handler.GetAuctionBids)
		v1.GET("/market/tokens/:contract/:token_id/offers", handler.GetTokenOffers)
	}
}

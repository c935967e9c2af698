package rest

import (
	"github.com/gin-gonic/gin"
)

const MAX_PAGE_SIZE = 100

// ListCollectionsQueryParams holds query parameters for GET /collections
type ListCollectionsQueryParams struct {
	// Filters
	UserID   string `form:"user_id"`
	IsLaunch *bool  `form:"is_launch"`

	// Pagination
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ParseListCollectionsQuery parses query parameters for GET /collections
func ParseListCollectionsQuery(c *gin.Context) (*ListCollectionsQueryParams, error) {
	var params ListCollectionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limit
	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}

	return &params, nil
}

// ListNftsQueryParams holds query parameters for GET /collections/:id/nfts
type ListNftsQueryParams struct {
	// Filters
	IsMinted *bool `form:"is_minted"`

	// Pagination
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ParseListNftsQuery parses query parameters for GET /collections/:id/nfts
func ParseListNftsQuery(c *gin.Context) (*ListNftsQueryParams, error) {
	var params ListNftsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limit
	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}

	return &params, nil
}

// MarketQueryParams holds query parameters for the marketplace listing endpoints
type MarketQueryParams struct {
	// Artist filters listings to a single seller address; empty means all
	Artist string `form:"artist"`

	// Pagination
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ParseMarketQuery parses query parameters for the marketplace listing endpoints
func ParseMarketQuery(c *gin.Context) (*MarketQueryParams, error) {
	var params MarketQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limit
	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}

	return &params, nil
}

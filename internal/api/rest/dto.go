package rest

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/intrana/discovery-backend/internal/domain"
	"github.com/intrana/discovery-backend/internal/store/schema"
)

// CreateCollectionRequest represents the request body for creating a collection
type CreateCollectionRequest struct {
	Name            string `json:"name"`
	Symbol          string `json:"symbol"`
	Description     string `json:"description"`
	CollectionImage string `json:"collection_image"`
	CoverImage      string `json:"cover_image"`
	UserID          string `json:"user_id"`
	Chain           string `json:"chain"`
	RoyaltyBps      int    `json:"royalty_bps"`
}

// Validate validates the request body
func (r *CreateCollectionRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if r.Chain != "" && !domain.IsValidChain(domain.Chain(r.Chain)) {
		return fmt.Errorf("unsupported chain: %s", r.Chain)
	}
	if r.RoyaltyBps < 0 || r.RoyaltyBps > 10000 {
		return fmt.Errorf("royalty_bps must be between 0 and 10000")
	}
	return nil
}

// CreateNftRequest represents the request body for creating an NFT
type CreateNftRequest struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Image       string                `json:"image"`
	Attributes  []domain.NftAttribute `json:"attributes"`
	Price       string                `json:"price"`
	UserID      string                `json:"user_id"`
}

// Validate validates the request body
func (r *CreateNftRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	return nil
}

// CollectionResponse represents a marketplace collection
type CollectionResponse struct {
	CollectionIncID   int64     `json:"collection_inc_id"`
	Name              string    `json:"name"`
	Symbol            string    `json:"symbol"`
	Description       string    `json:"description"`
	CollectionImage   string    `json:"collection_image"`
	CoverImage        string    `json:"cover_image"`
	UserID            string    `json:"user_id"`
	Chain             string    `json:"chain"`
	CollectionAddress *string   `json:"collection_address"`
	IsLaunch          bool      `json:"is_launch"`
	RoyaltyBps        int       `json:"royalty_bps"`
	TotalNftCount     int64     `json:"total_nft_count"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NftResponse represents a token within a collection
type NftResponse struct {
	CollectionIncID int64           `json:"collection_inc_id"`
	NftID           int64           `json:"nft_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Image           string          `json:"image"`
	Attributes      json.RawMessage `json:"attributes,omitempty"`
	Price           string          `json:"price"`
	UserID          string          `json:"user_id"`
	IsMinted        bool            `json:"is_minted"`
	MintedAt        *time.Time      `json:"minted_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ListCollectionsResponse wraps a collection page
type ListCollectionsResponse struct {
	Collections []CollectionResponse `json:"collections"`
	Limit       int                  `json:"limit"`
	Offset      int                  `json:"offset"`
}

// ListNftsResponse wraps a token page
type ListNftsResponse struct {
	Nfts   []NftResponse `json:"nfts"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// ReconcileLaunchResponse is returned by the launch sync endpoint
type ReconcileLaunchResponse struct {
	Message  string `json:"message"`
	Launched int    `json:"launched"`
	Orphaned int    `json:"orphaned"`
}

// ReconcileMintResponse is returned by the mint sync endpoint
type ReconcileMintResponse struct {
	Message  string `json:"message"`
	Updated  int    `json:"updated"`
	Orphaned int    `json:"orphaned"`
}

// CollectionStatsResponse represents the subgraph's per-contract aggregates
type CollectionStatsResponse struct {
	Name        string `json:"name"`
	Standard    string `json:"standard"`
	Owner       string `json:"owner"`
	Symbol      string `json:"symbol"`
	OwnerCount  uint64 `json:"owner_count"`
	Supply      uint64 `json:"supply"`
	TotalTokens uint64 `json:"total_tokens"`
	FloorPrice  string `json:"floor_price"`
}

// SubgraphTokenResponse represents an on-chain token row
type SubgraphTokenResponse struct {
	TokenID     uint64 `json:"token_id"`
	Supply      uint64 `json:"supply"`
	TokenURI    string `json:"token_uri"`
	SaleType    string `json:"sale_type"`
	MarketPrice string `json:"market_price"`
	Owner       string `json:"owner"`
}

// CollectionTokensResponse wraps the on-chain token list of a collection
type CollectionTokensResponse struct {
	Collection *CollectionStatsResponse `json:"collection"`
	Tokens     []SubgraphTokenResponse  `json:"tokens"`
}

// SaleOfferResponse represents an offer against a fixed-price listing
type SaleOfferResponse struct {
	Offerer   string    `json:"offerer"`
	Offer     string    `json:"offer"`
	Price     string    `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// FixedSaleResponse represents a fixed-price listing
type FixedSaleResponse struct {
	ID              string              `json:"id"`
	FixedSaleIndex  uint64              `json:"fixed_sale_index"`
	Artist          string              `json:"artist"`
	NftContract     string              `json:"nft_contract"`
	TokenContract   string              `json:"token_contract"`
	TokenID         uint64              `json:"token_id"`
	Price           string              `json:"price"`
	IsEnded         bool                `json:"is_ended"`
	Timestamp       time.Time           `json:"timestamp"`
	TransactionHash string              `json:"transaction_hash"`
	Offers          []SaleOfferResponse `json:"offers,omitempty"`
}

// AuctionBidResponse represents a bid placed on an auction
type AuctionBidResponse struct {
	Bidder    string    `json:"bidder"`
	Amount    string    `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// AuctionResponse represents an auction listing
type AuctionResponse struct {
	AuctionIndex              uint64               `json:"auction_index"`
	Artist                    string               `json:"artist"`
	NftContract               string               `json:"nft_contract"`
	TokenContract             string               `json:"token_contract"`
	TokenID                   uint64               `json:"token_id"`
	StartPrice                string               `json:"start_price"`
	MinBidIncrementPercentage uint64               `json:"min_bid_increment_percentage"`
	EndTime                   time.Time            `json:"end_time"`
	IsEnded                   bool                 `json:"is_ended"`
	Timestamp                 time.Time            `json:"timestamp"`
	TransactionHash           string               `json:"transaction_hash"`
	Bids                      []AuctionBidResponse `json:"bids,omitempty"`
}

// TokenOfferResponse represents an offer on a non-listed token
type TokenOfferResponse struct {
	NftContract string    `json:"nft_contract"`
	TokenID     uint64    `json:"token_id"`
	Offerer     string    `json:"offerer"`
	OfferAmount string    `json:"offer_amount"`
	IsAccepted  bool      `json:"is_accepted"`
	Timestamp   time.Time `json:"timestamp"`
}

func toCollectionResponse(c *schema.Collection) CollectionResponse {
	return CollectionResponse{
		CollectionIncID:   c.CollectionIncID,
		Name:              c.Name,
		Symbol:            c.Symbol,
		Description:       c.Description,
		CollectionImage:   c.CollectionImage,
		CoverImage:        c.CoverImage,
		UserID:            c.UserID,
		Chain:             c.Chain,
		CollectionAddress: c.CollectionAddress,
		IsLaunch:          c.IsLaunch,
		RoyaltyBps:        c.RoyaltyBps,
		TotalNftCount:     c.TotalNftCount,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func toNftResponse(collectionIncID int64, n *schema.Nft) NftResponse {
	return NftResponse{
		CollectionIncID: collectionIncID,
		NftID:           n.NftID,
		Name:            n.Name,
		Description:     n.Description,
		Image:           n.Image,
		Attributes:      json.RawMessage(n.Attributes),
		Price:           n.Price,
		UserID:          n.UserID,
		IsMinted:        n.IsMinted,
		MintedAt:        n.MintedAt,
		CreatedAt:       n.CreatedAt,
		UpdatedAt:       n.UpdatedAt,
	}
}

func toCollectionStatsResponse(s *domain.CollectionStats) *CollectionStatsResponse {
	if s == nil {
		return nil
	}
	return &CollectionStatsResponse{
		Name:        s.Name,
		Standard:    s.Standard,
		Owner:       s.Owner,
		Symbol:      s.Symbol,
		OwnerCount:  s.OwnerCount,
		Supply:      s.Supply,
		TotalTokens: s.TotalTokens,
		FloorPrice:  s.FloorPrice,
	}
}

func toSubgraphTokenResponses(tokens []domain.SubgraphToken) []SubgraphTokenResponse {
	result := make([]SubgraphTokenResponse, 0, len(tokens))
	for _, t := range tokens {
		result = append(result, SubgraphTokenResponse{
			TokenID:     t.TokenID,
			Supply:      t.Supply,
			TokenURI:    t.TokenURI,
			SaleType:    t.SaleType,
			MarketPrice: t.MarketPrice,
			Owner:       t.Owner,
		})
	}
	return result
}

func toSaleOfferResponses(offers []domain.SaleOffer) []SaleOfferResponse {
	result := make([]SaleOfferResponse, 0, len(offers))
	for _, o := range offers {
		result = append(result, SaleOfferResponse{
			Offerer:   o.Offerer,
			Offer:     o.Offer,
			Price:     o.Price,
			Timestamp: o.Timestamp,
		})
	}
	return result
}

func toFixedSaleResponses(sales []domain.FixedSale) []FixedSaleResponse {
	result := make([]FixedSaleResponse, 0, len(sales))
	for _, s := range sales {
		result = append(result, FixedSaleResponse{
			ID:              s.ID,
			FixedSaleIndex:  s.FixedSaleIndex,
			Artist:          s.Artist,
			NftContract:     s.NftContract,
			TokenContract:   s.TokenContract,
			TokenID:         s.TokenID,
			Price:           s.Price,
			IsEnded:         s.IsEnded,
			Timestamp:       s.Timestamp,
			TransactionHash: s.TransactionHash,
			Offers:          toSaleOfferResponses(s.Offers),
		})
	}
	return result
}

func toAuctionBidResponses(bids []domain.AuctionBid) []AuctionBidResponse {
	result := make([]AuctionBidResponse, 0, len(bids))
	for _, b := range bids {
		result = append(result, AuctionBidResponse{
			Bidder:    b.Bidder,
			Amount:    b.Amount,
			Timestamp: b.Timestamp,
		})
	}
	return result
}

func toAuctionResponse(a *domain.Auction) AuctionResponse {
	return AuctionResponse{
		AuctionIndex:              a.AuctionIndex,
		Artist:                    a.Artist,
		NftContract:               a.NftContract,
		TokenContract:             a.TokenContract,
		TokenID:                   a.TokenID,
		StartPrice:                a.StartPrice,
		MinBidIncrementPercentage: a.MinBidIncrementPercentage,
		EndTime:                   a.EndTime,
		IsEnded:                   a.IsEnded,
		Timestamp:                 a.Timestamp,
		TransactionHash:           a.TransactionHash,
		Bids:                      toAuctionBidResponses(a.Bids),
	}
}

func toAuctionResponses(auctions []domain.Auction) []AuctionResponse {
	result := make([]AuctionResponse, 0, len(auctions))
	for _, a := range auctions {
		result = append(result, toAuctionResponse(&a))
	}
	return result
}

func toTokenOfferResponses(offers []domain.TokenOffer) []TokenOfferResponse {
	result := make([]TokenOfferResponse, 0, len(offers))
	for _, o := range offers {
		result = append(result, TokenOfferResponse{
			NftContract: o.NftContract,
			TokenID:     o.TokenID,
			Offerer:     o.Offerer,
			OfferAmount: o.OfferAmount,
			IsAccepted:  o.IsAccepted,
			Timestamp:   o.Timestamp,
		})
	}
	return result
}

func marshalAttributes(attrs []domain.NftAttribute) (datatypes.JSON, error) {
	if len(attrs) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(attrs)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}

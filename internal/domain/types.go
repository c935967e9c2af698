package domain

import (
	"regexp"
	"strings"
	"time"
)

// Chain represents the blockchain network identifier using CAIP-2 format
type Chain string

const (
	ChainEthereumMainnet Chain = "eip155:1"
	ChainEthereumSepolia Chain = "eip155:11155111"
)

// IsValidChain checks if a chain is valid
func IsValidChain(chain Chain) bool {
	return chain == ChainEthereumMainnet || chain == ChainEthereumSepolia
}

// SaleType represents the on-chain sale mechanism a token is listed under
type SaleType string

const (
	SaleTypeFixedPrice SaleType = "fixed_price"
	SaleTypeAuction    SaleType = "auction"
)

var ethAddressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// IsValidContractAddress reports whether s looks like an Ethereum contract address
func IsValidContractAddress(s string) bool {
	return ethAddressPattern.MatchString(s)
}

// NormalizeAddress lowercases an address so it matches the subgraph's
// lowercased id fields
func NormalizeAddress(s string) string {
	return strings.ToLower(s)
}

// NftAttribute is a single trait on an NFT (e.g. "Background" = "Blue")
type NftAttribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// DeployedCollection is a collection deployment reported by the subgraph.
// CollectionID is the backend-assigned incremental id echoed by the contract
// at deployment time; it is the join key back to the local record.
type DeployedCollection struct {
	Index             uint64
	CollectionID      uint64
	CollectionAddress string
	Name              string
	Symbol            string
	Owner             string
}

// MintedToken is a newly minted token reported by the subgraph
type MintedToken struct {
	TokenID   uint64
	CreatedAt time.Time
}

// CollectionStats is the subgraph's per-contract aggregate view
type CollectionStats struct {
	Name        string
	Standard    string
	Owner       string
	Symbol      string
	OwnerCount  uint64
	Supply      uint64
	TotalTokens uint64
	FloorPrice  string
}

// FixedSale is an active fixed-price listing mirrored from the chain
type FixedSale struct {
	ID              string
	FixedSaleIndex  uint64
	Artist          string
	NftContract     string
	TokenContract   string
	TokenID         uint64
	Price           string
	IsEnded         bool
	Timestamp       time.Time
	TransactionHash string
	Offers          []SaleOffer
}

// SaleOffer is an offer made against a fixed-price listing
type SaleOffer struct {
	Offerer   string
	Offer     string
	Price     string
	Timestamp time.Time
}

// Auction is an active auction listing mirrored from the chain
type Auction struct {
	AuctionIndex              uint64
	Artist                    string
	NftContract               string
	TokenContract             string
	TokenID                   uint64
	StartPrice                string
	MinBidIncrementPercentage uint64
	EndTime                   time.Time
	IsEnded                   bool
	Timestamp                 time.Time
	TransactionHash           string
	Bids                      []AuctionBid
}

// AuctionBid is a bid placed on an auction
type AuctionBid struct {
	Bidder    string
	Amount    string
	Timestamp time.Time
}

// TokenOffer is an offer made on a non-listed token
type TokenOffer struct {
	NftContract string
	TokenID     uint64
	Offerer     string
	OfferAmount string
	IsAccepted  bool
	Timestamp   time.Time
}

// SubgraphToken is a token row from the subgraph's per-collection token list
type SubgraphToken struct {
	TokenID     uint64
	Supply      uint64
	TokenURI    string
	SaleType    string
	MarketPrice string
	Owner       string
}

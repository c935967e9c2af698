package subgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/intrana/discovery-backend/internal/adapter"
	"github.com/intrana/discovery-backend/internal/domain"
)

// GraphQLRequest represents a GraphQL request
type GraphQLRequest struct {
	Query string `json:"query"`
}

// graphQLEnvelope is the generic GraphQL response wrapper
type graphQLEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// The subgraph encodes BigInt and BigDecimal values as JSON strings,
// so every numeric field below is a string until converted.

type rawCollectionCreated struct {
	NftCollectionIndex string `json:"nftCollectionIndex"`
	Owner              string `json:"owner"`
	Symbol             string `json:"symbol"`
	Name               string `json:"name"`
	CollectionID       string `json:"collectionId"`
	CollectionAddress  string `json:"collectionAddress"`
}

type rawSubgraphToken struct {
	TokenID     string `json:"tokenID"`
	Supply      string `json:"supply"`
	TokenURI    string `json:"tokenURI"`
	CreatedAt   string `json:"createdAt"`
	SaleType    string `json:"saleType"`
	IndexID     string `json:"indexId"`
	MarketPrice string `json:"marketPrice"`
	Owner       *struct {
		ID string `json:"id"`
	} `json:"owner"`
}

type rawCollection struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	NftStandard string             `json:"nftStandard"`
	Owner       string             `json:"owner"`
	OwnerCount  string             `json:"ownerCount"`
	Supply      string             `json:"supply"`
	Symbol      string             `json:"symbol"`
	FloorPrice  string             `json:"floorPrice"`
	TotalTokens string             `json:"totalTokens"`
	Volume      string             `json:"volume"`
	Tokens      []rawSubgraphToken `json:"tokens"`
}

type rawSaleOffer struct {
	Offer          string `json:"offer"`
	Offerer        string `json:"offerer"`
	Price          string `json:"price"`
	BlockTimestamp string `json:"blockTimestamp"`
}

type rawFixedSale struct {
	ID              string         `json:"id"`
	FixedSaleIndex  string         `json:"fixedSaleIndex"`
	Artist          string         `json:"artist"`
	NftContract     string         `json:"nftContract"`
	Price           string         `json:"price"`
	TokenContract   string         `json:"tokenContract"`
	TokenID         string         `json:"tokenId"`
	IsEnded         bool           `json:"isEnded"`
	Timestamp       string         `json:"timestamp"`
	TransactionHash string         `json:"transactionHash"`
	Offers          []rawSaleOffer `json:"NFTOfferMadeOnFixedSales"`
}

type rawBid struct {
	Amount         string `json:"amount"`
	Bidder         string `json:"bidder"`
	BlockTimestamp string `json:"blockTimestamp"`
}

type rawAuction struct {
	AuctionIndex              string   `json:"auctionIndex"`
	Artist                    string   `json:"artist"`
	NftContract               string   `json:"nftContract"`
	TokenContract             string   `json:"tokenContract"`
	TokenID                   string   `json:"tokenId"`
	StartPrice                string   `json:"startPrice"`
	MinBidIncrementPercentage string   `json:"minBidIncrementPercentage"`
	EndTime                   string   `json:"endTime"`
	IsEnded                   bool     `json:"isEnded"`
	Timestamp                 string   `json:"timestamp"`
	TransactionHash           string   `json:"transactionHash"`
	Bids                      []rawBid `json:"NFTBidPlaced"`
}

type rawTokenOffer struct {
	NftContract string `json:"nftContract"`
	NonListIdx  string `json:"nonListIndex"`
	OfferAmount string `json:"offerAmount"`
	Offerer     string `json:"offerer"`
	Timestamp   string `json:"timestamp"`
	IsAccepted  bool   `json:"isAccepted"`
	TokenID     string `json:"tokenId"`
}

// Client defines the interface for subgraph operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../mocks/subgraph_client.go -package=mocks -mock_names=Client=MockSubgraphClient
type Client interface {
	// DeployedCollectionCount returns the highest deployment index observed on chain.
	// Deployment indexes start at 1, so this doubles as the deployed-collection count.
	DeployedCollectionCount(ctx context.Context) (uint64, error)
	// NewlyDeployedCollections returns the latest first deployments, newest first
	NewlyDeployedCollections(ctx context.Context, first int) ([]domain.DeployedCollection, error)
	// CollectionStats returns the subgraph's aggregate view of a deployed contract,
	// or nil if the contract is not indexed
	CollectionStats(ctx context.Context, contract string) (*domain.CollectionStats, error)
	// NewlyMintedTokens returns the latest first mints of a contract, newest first
	NewlyMintedTokens(ctx context.Context, contract string, first int) ([]domain.MintedToken, error)
	// CollectionTokens returns a page of a contract's tokens with market state
	CollectionTokens(ctx context.Context, contract string, first, skip int) (*domain.CollectionStats, []domain.SubgraphToken, error)
	// FixedSaleListings returns a page of active fixed-price listings,
	// optionally filtered by artist address
	FixedSaleListings(ctx context.Context, artist string, first, skip int) ([]domain.FixedSale, error)
	// FixedSaleOffers returns the offers made on one fixed-price listing
	FixedSaleOffers(ctx context.Context, fixedSaleIndex uint64) ([]domain.SaleOffer, error)
	// Auctions returns a page of active auctions, optionally filtered by artist address
	Auctions(ctx context.Context, artist string, first, skip int) ([]domain.Auction, error)
	// AuctionByIndex returns one auction with its full bid history, or nil if unknown
	AuctionByIndex(ctx context.Context, auctionIndex uint64) (*domain.Auction, error)
	// AuctionBids returns the bids placed on one auction, highest first
	AuctionBids(ctx context.Context, auctionIndex uint64) ([]domain.AuctionBid, error)
	// OffersForToken returns the offers made on one non-listed token
	OffersForToken(ctx context.Context, contract string, tokenID uint64) ([]domain.TokenOffer, error)
}

// SubgraphClient implements Client against a Graph Protocol HTTP endpoint
type SubgraphClient struct {
	httpClient adapter.HTTPClient
	apiURL     string
	json       adapter.JSON
}

// NewClient creates a new subgraph client
func NewClient(httpClient adapter.HTTPClient, apiURL string, json adapter.JSON) Client {
	return &SubgraphClient{
		httpClient: httpClient,
		apiURL:     apiURL,
		json:       json,
	}
}

// query posts a GraphQL query and unmarshals the data payload into result
func (c *SubgraphClient) query(ctx context.Context, query string, result interface{}) error {
	requestBody, err := c.json.Marshal(GraphQLRequest{Query: query})
	if err != nil {
		return fmt.Errorf("failed to marshal GraphQL request: %w", err)
	}

	responseBody, err := c.httpClient.Post(ctx, c.apiURL, "application/json", bytes.NewReader(requestBody))
	if err != nil {
		return fmt.Errorf("failed to call subgraph: %w", err)
	}

	var envelope graphQLEnvelope
	if err := c.json.Unmarshal(responseBody, &envelope); err != nil {
		return fmt.Errorf("failed to unmarshal subgraph response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		return fmt.Errorf("subgraph returned error: %s", envelope.Errors[0].Message)
	}

	if err := c.json.Unmarshal(envelope.Data, result); err != nil {
		return fmt.Errorf("failed to unmarshal subgraph data: %w", err)
	}

	return nil
}

// DeployedCollectionCount returns the highest deployment index observed on chain
func (c *SubgraphClient) DeployedCollectionCount(ctx context.Context) (uint64, error) {
	var data struct {
		Collections []rawCollectionCreated `json:"nftcollectionCreateds"`
	}
	if err := c.query(ctx, collectionIndexQuery(), &data); err != nil {
		return 0, err
	}

	// No deployments indexed yet
	if len(data.Collections) == 0 {
		return 0, nil
	}

	return parseUint(data.Collections[0].NftCollectionIndex)
}

// NewlyDeployedCollections returns the latest first deployments, newest first
func (c *SubgraphClient) NewlyDeployedCollections(ctx context.Context, first int) ([]domain.DeployedCollection, error) {
	var data struct {
		Collections []rawCollectionCreated `json:"nftcollectionCreateds"`
	}
	if err := c.query(ctx, newCollectionsQuery(first), &data); err != nil {
		return nil, err
	}

	deployed := make([]domain.DeployedCollection, 0, len(data.Collections))
	for _, raw := range data.Collections {
		index, err := parseUint(raw.NftCollectionIndex)
		if err != nil {
			return nil, fmt.Errorf("invalid nftCollectionIndex %q: %w", raw.NftCollectionIndex, err)
		}
		collectionID, err := parseUint(raw.CollectionID)
		if err != nil {
			return nil, fmt.Errorf("invalid collectionId %q: %w", raw.CollectionID, err)
		}

		deployed = append(deployed, domain.DeployedCollection{
			Index:             index,
			CollectionID:      collectionID,
			CollectionAddress: domain.NormalizeAddress(raw.CollectionAddress),
			Name:              raw.Name,
			Symbol:            raw.Symbol,
			Owner:             raw.Owner,
		})
	}

	return deployed, nil
}

// CollectionStats returns the subgraph's aggregate view of a deployed contract
func (c *SubgraphClient) CollectionStats(ctx context.Context, contract string) (*domain.CollectionStats, error) {
	var data struct {
		Collections []rawCollection `json:"collections"`
	}
	if err := c.query(ctx, collectionInfoQuery(domain.NormalizeAddress(contract)), &data); err != nil {
		return nil, err
	}

	if len(data.Collections) == 0 {
		return nil, nil
	}

	return convertCollectionStats(data.Collections[0])
}

// NewlyMintedTokens returns the latest first mints of a contract, newest first
func (c *SubgraphClient) NewlyMintedTokens(ctx context.Context, contract string, first int) ([]domain.MintedToken, error) {
	var data struct {
		Collections []rawCollection `json:"collections"`
	}
	query := collectionNewTokensQuery(domain.NormalizeAddress(contract), first)
	if err := c.query(ctx, query, &data); err != nil {
		return nil, err
	}

	if len(data.Collections) == 0 {
		return []domain.MintedToken{}, nil
	}

	tokens := data.Collections[0].Tokens
	minted := make([]domain.MintedToken, 0, len(tokens))
	for _, raw := range tokens {
		tokenID, err := parseUint(raw.TokenID)
		if err != nil {
			return nil, fmt.Errorf("invalid tokenID %q: %w", raw.TokenID, err)
		}

		minted = append(minted, domain.MintedToken{
			TokenID:   tokenID,
			CreatedAt: parseTimestamp(raw.CreatedAt),
		})
	}

	return minted, nil
}

// CollectionTokens returns a page of a contract's tokens with market state
func (c *SubgraphClient) CollectionTokens(ctx context.Context, contract string, first, skip int) (*domain.CollectionStats, []domain.SubgraphToken, error) {
	var data struct {
		Collections []rawCollection `json:"collections"`
	}
	query := collectionTokensQuery(domain.NormalizeAddress(contract), first, skip)
	if err := c.query(ctx, query, &data); err != nil {
		return nil, nil, err
	}

	if len(data.Collections) == 0 {
		return nil, nil, nil
	}

	raw := data.Collections[0]
	stats, err := convertCollectionStats(raw)
	if err != nil {
		return nil, nil, err
	}

	tokens := make([]domain.SubgraphToken, 0, len(raw.Tokens))
	for _, rawToken := range raw.Tokens {
		tokenID, err := parseUint(rawToken.TokenID)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid tokenID %q: %w", rawToken.TokenID, err)
		}
		supply, _ := parseUint(rawToken.Supply)

		token := domain.SubgraphToken{
			TokenID:     tokenID,
			Supply:      supply,
			TokenURI:    rawToken.TokenURI,
			SaleType:    rawToken.SaleType,
			MarketPrice: rawToken.MarketPrice,
		}
		if rawToken.Owner != nil {
			token.Owner = rawToken.Owner.ID
		}
		tokens = append(tokens, token)
	}

	return stats, tokens, nil
}

// FixedSaleListings returns a page of active fixed-price listings
func (c *SubgraphClient) FixedSaleListings(ctx context.Context, artist string, first, skip int) ([]domain.FixedSale, error) {
	query := allFixedSalesQuery(first, skip)
	if artist != "" {
		query = fixedSalesByArtistQuery(domain.NormalizeAddress(artist), first, skip)
	}

	var data struct {
		Sales []rawFixedSale `json:"nftlistedForSales"`
	}
	if err := c.query(ctx, query, &data); err != nil {
		return nil, err
	}

	sales := make([]domain.FixedSale, 0, len(data.Sales))
	for _, raw := range data.Sales {
		sale, err := convertFixedSale(raw)
		if err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}

	return sales, nil
}

// FixedSaleOffers returns the offers made on one fixed-price listing
func (c *SubgraphClient) FixedSaleOffers(ctx context.Context, fixedSaleIndex uint64) ([]domain.SaleOffer, error) {
	var data struct {
		Offers []rawSaleOffer `json:"nftofferMadeOnFixedSales"`
	}
	if err := c.query(ctx, fixedSaleOffersQuery(fixedSaleIndex), &data); err != nil {
		return nil, err
	}

	offers := make([]domain.SaleOffer, 0, len(data.Offers))
	for _, raw := range data.Offers {
		offers = append(offers, convertSaleOffer(raw))
	}

	return offers, nil
}

// Auctions returns a page of active auctions
func (c *SubgraphClient) Auctions(ctx context.Context, artist string, first, skip int) ([]domain.Auction, error) {
	query := allAuctionsQuery(first, skip)
	if artist != "" {
		query = auctionsByArtistQuery(domain.NormalizeAddress(artist), first, skip)
	}

	var data struct {
		Auctions []rawAuction `json:"nftlistedForAuctions"`
	}
	if err := c.query(ctx, query, &data); err != nil {
		return nil, err
	}

	auctions := make([]domain.Auction, 0, len(data.Auctions))
	for _, raw := range data.Auctions {
		auction, err := convertAuction(raw)
		if err != nil {
			return nil, err
		}
		auctions = append(auctions, auction)
	}

	return auctions, nil
}

// AuctionByIndex returns one auction with its full bid history
func (c *SubgraphClient) AuctionByIndex(ctx context.Context, auctionIndex uint64) (*domain.Auction, error) {
	var data struct {
		Auctions []rawAuction `json:"nftlistedForAuctions"`
	}
	if err := c.query(ctx, auctionByIndexQuery(auctionIndex), &data); err != nil {
		return nil, err
	}

	if len(data.Auctions) == 0 {
		return nil, nil
	}

	auction, err := convertAuction(data.Auctions[0])
	if err != nil {
		return nil, err
	}

	return &auction, nil
}

// AuctionBids returns the bids placed on one auction, highest first
func (c *SubgraphClient) AuctionBids(ctx context.Context, auctionIndex uint64) ([]domain.AuctionBid, error) {
	var data struct {
		Bids []rawBid `json:"nftbidPlaceds"`
	}
	if err := c.query(ctx, auctionBidsQuery(auctionIndex), &data); err != nil {
		return nil, err
	}

	bids := make([]domain.AuctionBid, 0, len(data.Bids))
	for _, raw := range data.Bids {
		bids = append(bids, domain.AuctionBid{
			Bidder:    raw.Bidder,
			Amount:    raw.Amount,
			Timestamp: parseTimestamp(raw.BlockTimestamp),
		})
	}

	return bids, nil
}

// OffersForToken returns the offers made on one non-listed token
func (c *SubgraphClient) OffersForToken(ctx context.Context, contract string, tokenID uint64) ([]domain.TokenOffer, error) {
	var data struct {
		Offers []rawTokenOffer `json:"offerMadeForNonListedNFTs"`
	}
	query := tokenOffersQuery(domain.NormalizeAddress(contract), tokenID)
	if err := c.query(ctx, query, &data); err != nil {
		return nil, err
	}

	offers := make([]domain.TokenOffer, 0, len(data.Offers))
	for _, raw := range data.Offers {
		offerTokenID, err := parseUint(raw.TokenID)
		if err != nil {
			return nil, fmt.Errorf("invalid tokenId %q: %w", raw.TokenID, err)
		}

		offers = append(offers, domain.TokenOffer{
			NftContract: raw.NftContract,
			TokenID:     offerTokenID,
			Offerer:     raw.Offerer,
			OfferAmount: raw.OfferAmount,
			IsAccepted:  raw.IsAccepted,
			Timestamp:   parseTimestamp(raw.Timestamp),
		})
	}

	return offers, nil
}

func convertCollectionStats(raw rawCollection) (*domain.CollectionStats, error) {
	totalTokens, err := parseUint(raw.TotalTokens)
	if err != nil {
		return nil, fmt.Errorf("invalid totalTokens %q: %w", raw.TotalTokens, err)
	}
	ownerCount, _ := parseUint(raw.OwnerCount)
	supply, _ := parseUint(raw.Supply)

	return &domain.CollectionStats{
		Name:        raw.Name,
		Standard:    raw.NftStandard,
		Owner:       raw.Owner,
		Symbol:      raw.Symbol,
		OwnerCount:  ownerCount,
		Supply:      supply,
		TotalTokens: totalTokens,
		FloorPrice:  raw.FloorPrice,
	}, nil
}

func convertFixedSale(raw rawFixedSale) (domain.FixedSale, error) {
	index, err := parseUint(raw.FixedSaleIndex)
	if err != nil {
		return domain.FixedSale{}, fmt.Errorf("invalid fixedSaleIndex %q: %w", raw.FixedSaleIndex, err)
	}
	tokenID, err := parseUint(raw.TokenID)
	if err != nil {
		return domain.FixedSale{}, fmt.Errorf("invalid tokenId %q: %w", raw.TokenID, err)
	}

	offers := make([]domain.SaleOffer, 0, len(raw.Offers))
	for _, rawOffer := range raw.Offers {
		offers = append(offers, convertSaleOffer(rawOffer))
	}

	return domain.FixedSale{
		ID:              raw.ID,
		FixedSaleIndex:  index,
		Artist:          raw.Artist,
		NftContract:     raw.NftContract,
		TokenContract:   raw.TokenContract,
		TokenID:         tokenID,
		Price:           raw.Price,
		IsEnded:         raw.IsEnded,
		Timestamp:       parseTimestamp(raw.Timestamp),
		TransactionHash: raw.TransactionHash,
		Offers:          offers,
	}, nil
}

func convertSaleOffer(raw rawSaleOffer) domain.SaleOffer {
	return domain.SaleOffer{
		Offerer:   raw.Offerer,
		Offer:     raw.Offer,
		Price:     raw.Price,
		Timestamp: parseTimestamp(raw.BlockTimestamp),
	}
}

func convertAuction(raw rawAuction) (domain.Auction, error) {
	index, err := parseUint(raw.AuctionIndex)
	if err != nil {
		return domain.Auction{}, fmt.Errorf("invalid auctionIndex %q: %w", raw.AuctionIndex, err)
	}
	tokenID, err := parseUint(raw.TokenID)
	if err != nil {
		return domain.Auction{}, fmt.Errorf("invalid tokenId %q: %w", raw.TokenID, err)
	}
	minBidIncrement, _ := parseUint(raw.MinBidIncrementPercentage)

	bids := make([]domain.AuctionBid, 0, len(raw.Bids))
	for _, rawBid := range raw.Bids {
		bids = append(bids, domain.AuctionBid{
			Bidder:    rawBid.Bidder,
			Amount:    rawBid.Amount,
			Timestamp: parseTimestamp(rawBid.BlockTimestamp),
		})
	}

	return domain.Auction{
		AuctionIndex:              index,
		Artist:                    raw.Artist,
		NftContract:               raw.NftContract,
		TokenContract:             raw.TokenContract,
		TokenID:                   tokenID,
		StartPrice:                raw.StartPrice,
		MinBidIncrementPercentage: minBidIncrement,
		EndTime:                   parseTimestamp(raw.EndTime),
		IsEnded:                   raw.IsEnded,
		Timestamp:                 parseTimestamp(raw.Timestamp),
		TransactionHash:           raw.TransactionHash,
		Bids:                      bids,
	}, nil
}

// parseUint converts a string-encoded BigInt, treating empty as zero
func parseUint(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseUint(s, 10, 64)
}

// parseTimestamp converts a string-encoded unix timestamp in seconds.
// Unparseable values yield the zero time.
func parseTimestamp(s string) time.Time {
	seconds, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(seconds, 0).UTC()
}

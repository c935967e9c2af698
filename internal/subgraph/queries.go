package subgraph

import "fmt"

// Query texts for the marketplace subgraph. Entity and field names follow the
// subgraph's generated schema, so casing is inconsistent between entities
// (nftcollectionCreateds vs NFTBidPlaced).

// collectionIndexQuery fetches the highest deployment index seen on chain
func collectionIndexQuery() string {
	return `{
  nftcollectionCreateds(
    orderBy: nftCollectionIndex
    orderDirection: desc
    first: 1
  ) {
    nftCollectionIndex
  }
}`
}

// newCollectionsQuery fetches the newest first deployments, newest first
func newCollectionsQuery(first int) string {
	return fmt.Sprintf(`{
  nftcollectionCreateds(
    orderBy: nftCollectionIndex
    orderDirection: desc
    first: %d
  ) {
    nftCollectionIndex
    owner
    symbol
    name
    collectionId
    collectionAddress
  }
}`, first)
}

// collectionInfoQuery fetches the aggregate view of one deployed collection
func collectionInfoQuery(address string) string {
	return fmt.Sprintf(`{
  collections(where: {id: "%s"}) {
    name
    nftStandard
    owner
    ownerCount
    supply
    symbol
    floorPrice
    totalTokens
  }
}`, address)
}

// collectionNewTokensQuery fetches the newest first tokens of a collection
func collectionNewTokensQuery(address string, first int) string {
	return fmt.Sprintf(`{
  collections(where: {id: "%s"}) {
    id
    name
    nftStandard
    owner
    ownerCount
    supply
    symbol
    tokens(first: %d, orderBy: createdAt, orderDirection: desc) {
      tokenID
      supply
      tokenURI
      createdAt
    }
  }
}`, address, first)
}

// collectionTokensQuery fetches a page of a collection's tokens with market state
func collectionTokensQuery(address string, first, skip int) string {
	return fmt.Sprintf(`{
  collections(where: {id: "%s"}) {
    name
    nftStandard
    owner
    ownerCount
    supply
    symbol
    id
    floorPrice
    totalTokens
    volume
    tokens(first: %d, skip: %d) {
      supply
      tokenID
      tokenURI
      saleType
      indexId
      marketPrice
      owner {
        id
      }
    }
  }
}`, address, first, skip)
}

// allFixedSalesQuery fetches a page of active fixed-price listings
func allFixedSalesQuery(first, skip int) string {
	return fmt.Sprintf(`{
  nftlistedForSales(first: %d, skip: %d, where: {isEnded: false}) {
    id
    fixedSaleIndex
    artist
    nftContract
    price
    tokenContract
    tokenId
    isEnded
    timestamp
    transactionHash
    NFTOfferMadeOnFixedSales {
      offer
      offerer
      price
      blockTimestamp
    }
  }
}`, first, skip)
}

// fixedSalesByArtistQuery fetches a page of an artist's active fixed-price listings
func fixedSalesByArtistQuery(artist string, first, skip int) string {
	return fmt.Sprintf(`{
  nftlistedForSales(first: %d, skip: %d, where: {artist: "%s", isEnded: false}) {
    id
    fixedSaleIndex
    artist
    nftContract
    price
    tokenContract
    tokenId
    isEnded
    timestamp
    transactionHash
    NFTOfferMadeOnFixedSales(first: %d, skip: %d) {
      offer
      offerer
      price
      blockTimestamp
    }
  }
}`, first, skip, artist, first, skip)
}

// fixedSaleOffersQuery fetches the offers made on one fixed-price listing
func fixedSaleOffersQuery(fixedSaleIndex uint64) string {
	return fmt.Sprintf(`{
  nftofferMadeOnFixedSales(where: {fixedSaleIndex: "%d"}) {
    blockTimestamp
    fixedSaleIndex
    nftContract
    offer
    offerer
    price
    tokenContract
    tokenId
    transactionHash
  }
}`, fixedSaleIndex)
}

// allAuctionsQuery fetches a page of active auctions with their leading bid
func allAuctionsQuery(first, skip int) string {
	return fmt.Sprintf(`{
  nftlistedForAuctions(first: %d, skip: %d, where: {isEnded: false}) {
    auctionIndex
    nftContract
    tokenContract
    artist
    startPrice
    timestamp
    endTime
    isEnded
    tokenId
    transactionHash
    minBidIncrementPercentage
    blockTimestamp
    NFTBidPlaced(first: 1, orderBy: blockTimestamp, orderDirection: desc) {
      blockTimestamp
      amount
    }
  }
}`, first, skip)
}

// auctionsByArtistQuery fetches a page of an artist's active auctions
func auctionsByArtistQuery(artist string, first, skip int) string {
	return fmt.Sprintf(`{
  nftlistedForAuctions(first: %d, skip: %d, where: {artist: "%s", isEnded: false}) {
    auctionIndex
    nftContract
    tokenContract
    artist
    startPrice
    timestamp
    endTime
    isEnded
    tokenId
    transactionHash
    minBidIncrementPercentage
    blockTimestamp
    NFTBidPlaced(first: %d, skip: %d, orderBy: blockTimestamp, orderDirection: desc) {
      blockTimestamp
      amount
    }
  }
}`, first, skip, artist, first, skip)
}

// auctionByIndexQuery fetches one auction with its full bid history
func auctionByIndexQuery(auctionIndex uint64) string {
	return fmt.Sprintf(`{
  nftlistedForAuctions(where: {auctionIndex: "%d"}) {
    artist
    auctionIndex
    blockTimestamp
    endTime
    isEnded
    minBidIncrementPercentage
    nftContract
    startPrice
    timestamp
    tokenContract
    tokenId
    transactionHash
    NFTBidPlaced(orderBy: blockTimestamp, orderDirection: desc) {
      amount
      bidder
      blockTimestamp
      nftContract
      timestamp
      tokenContract
      transactionHash
    }
  }
}`, auctionIndex)
}

// auctionBidsQuery fetches the bids placed on one auction, highest first
func auctionBidsQuery(auctionIndex uint64) string {
	return fmt.Sprintf(`{
  nftbidPlaceds(where: {auctionIndex: "%d"}, orderBy: amount, orderDirection: desc) {
    amount
    bidder
    blockTimestamp
    nftContract
    timestamp
    tokenContract
    tokenId
    transactionHash
  }
}`, auctionIndex)
}

// tokenOffersQuery fetches the offers made on one non-listed token
func tokenOffersQuery(contract string, tokenID uint64) string {
	return fmt.Sprintf(`{
  offerMadeForNonListedNFTs(
    where: {nftContract: "%s", tokenId: "%d"}
  ) {
    nftContract
    nonListIndex
    offerAmount
    offerer
    timestamp
    isAccepted
    tokenId
  }
}`, contract, tokenID)
}

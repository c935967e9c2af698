package reconcile

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	launchCyclesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "discovery_reconcile_launch_cycles_total",
		Help: "Total number of collection launch reconcile cycles, by outcome",
	}, []string{"outcome"})

	launchCycleDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "discovery_reconcile_launch_cycle_duration_seconds",
		Help:    "Time taken by a single collection launch reconcile cycle",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~40s
	})

	collectionsLaunchedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "discovery_reconcile_collections_launched_total",
		Help: "Total number of collections marked launched from subgraph deployments",
	})

	orphanDeploymentsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "discovery_reconcile_orphan_deployments_total",
		Help: "Total number of subgraph deployments with no matching local collection",
	})

	nftsMintedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "discovery_reconcile_nfts_minted_total",
		Help: "Total number of NFTs marked minted from subgraph tokens",
	})

	orphanTokensTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "discovery_reconcile_orphan_tokens_total",
		Help: "Total number of subgraph tokens with no matching local NFT",
	})
)

func init() {
	prometheus.MustRegister(
		launchCyclesTotal,
		launchCycleDuration,
		collectionsLaunchedTotal,
		orphanDeploymentsTotal,
		nftsMintedTotal,
		orphanTokensTotal,
	)
}

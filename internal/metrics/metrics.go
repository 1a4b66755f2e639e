package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OperationsTotal counts service operations by name and outcome
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubhouse_operations_total",
			Help: "Total number of clubhouse operations",
		},
		[]string{"operation", "status"},
	)

	// OperationDuration tracks service operation latency
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "clubhouse_operation_duration_seconds",
			Help:    "Clubhouse operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// GamesStarted counts opened sessions by identity kind
	GamesStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubhouse_games_started_total",
			Help: "Total number of game sessions started",
		},
		[]string{"identity_kind"},
	)

	// GamesEnded counts settled sessions by result
	GamesEnded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubhouse_games_ended_total",
			Help: "Total number of game sessions settled",
		},
		[]string{"result"},
	)

	// RewardsPaid tracks payout sizes in base units
	RewardsPaid = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "clubhouse_rewards_paid",
			Help:    "Reward payouts in base units",
			Buckets: prometheus.ExponentialBuckets(1, 10, 12),
		},
	)

	// StakesClaimed counts returned stakes
	StakesClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clubhouse_stakes_claimed_total",
			Help: "Total number of stakes returned to players",
		},
	)

	// CampaignsOpen tracks the campaigns currently open
	CampaignsOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "clubhouse_campaigns_open",
			Help: "Number of open campaigns seen by the last escrow audit",
		},
	)

	// EscrowShortfall tracks how far a reward vault is below the pool it backs
	EscrowShortfall = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "clubhouse_escrow_shortfall",
			Help: "Reward pool minus reward vault balance, zero when covered",
		},
		[]string{"campaign"},
	)

	// ReservedRewards tracks reservations held by open sessions
	ReservedRewards = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "clubhouse_reserved_rewards",
			Help: "Rewards reserved by open sessions per campaign",
		},
		[]string{"campaign"},
	)

	// AuditsTotal counts escrow audit runs by outcome
	AuditsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubhouse_escrow_audits_total",
			Help: "Total number of escrow audit runs",
		},
		[]string{"status"},
	)

	// FeedSubscribers tracks connected websocket clients
	FeedSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "clubhouse_feed_subscribers",
			Help: "Number of connected event feed subscribers",
		},
	)

	// FeedDropped counts events dropped for slow subscribers
	FeedDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clubhouse_feed_dropped_total",
			Help: "Total number of feed events dropped for slow subscribers",
		},
	)

	// HTTPRequests counts HTTP requests by route pattern and status code
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubhouse_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "code"},
	)
)

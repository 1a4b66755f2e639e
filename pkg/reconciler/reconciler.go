// Package reconciler audits campaign escrow against the ledger.
package reconciler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/ZenRepublic/Clubhouse/internal/checked"
	"github.com/ZenRepublic/Clubhouse/internal/metrics"
	"github.com/ZenRepublic/Clubhouse/pkg/campaign"
	"github.com/ZenRepublic/Clubhouse/pkg/ledger"
)

// Store provides the reads an audit needs.
type Store interface {
	ListCampaigns(ctx context.Context) ([]*campaign.Campaign, error)
	Balance(ctx context.Context, account ledger.Account) (uint64, error)
}

// Shortfall is a campaign whose reward vault holds less than its pool.
type Shortfall struct {
	Campaign common.Address
	Pool     uint64
	Balance  uint64
	Missing  uint64
}

// Report summarizes one audit run.
type Report struct {
	Campaigns  int
	Reserved   uint64
	Shortfalls []Shortfall
	// Insolvent lists campaigns whose reservations exceed their pool.
	Insolvent []common.Address
}

// Reconciler periodically checks that every open campaign's reward vault
// backs its rewards available and that reservations stay within the pool.
type Reconciler struct {
	store  Store
	logger *zap.Logger

	stopCh chan struct{}
	wg     sync.WaitGroup
}

// New creates a new Reconciler
func New(store Store, logger *zap.Logger) *Reconciler {
	return &Reconciler{
		store:  store,
		logger: logger,
		stopCh: make(chan struct{}),
	}
}

// ReconcileAll audits every open campaign and refreshes the escrow gauges.
func (r *Reconciler) ReconcileAll(ctx context.Context) (*Report, error) {
	start := time.Now()

	campaigns, err := r.store.ListCampaigns(ctx)
	if err != nil {
		metrics.AuditsTotal.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	metrics.EscrowShortfall.Reset()
	metrics.ReservedRewards.Reset()
	metrics.CampaignsOpen.Set(float64(len(campaigns)))

	report := &Report{Campaigns: len(campaigns)}
	for _, c := range campaigns {
		label := c.ID.Hex()
		metrics.ReservedRewards.WithLabelValues(label).Set(float64(c.ReservedRewards))
		report.Reserved = checked.SaturatingAdd(report.Reserved, c.ReservedRewards)

		if err := c.CheckSolvency(); err != nil {
			report.Insolvent = append(report.Insolvent, c.ID)
			r.logger.Error("Campaign reservations exceed pool",
				zap.String("campaign", label),
				zap.Uint64("rewards_available", c.RewardsAvailable),
				zap.Uint64("reserved_rewards", c.ReservedRewards))
		}

		balance, err := r.store.Balance(ctx, ledger.NewAccount(c.RewardVault(), c.RewardMint))
		if err != nil {
			metrics.AuditsTotal.WithLabelValues("failed").Inc()
			return nil, fmt.Errorf("failed to read reward vault of %s: %w", label, err)
		}
		missing := checked.SaturatingSub(c.RewardsAvailable, balance)
		metrics.EscrowShortfall.WithLabelValues(label).Set(float64(missing))
		if missing == 0 {
			continue
		}

		report.Shortfalls = append(report.Shortfalls, Shortfall{
			Campaign: c.ID,
			Pool:     c.RewardsAvailable,
			Balance:  balance,
			Missing:  missing,
		})
		r.logger.Error("Reward vault below pool",
			zap.String("campaign", label),
			zap.String("pool", ledger.FormatAmount(c.RewardsAvailable, c.RewardMintDecimals)),
			zap.String("balance", ledger.FormatAmount(balance, c.RewardMintDecimals)),
			zap.String("missing", ledger.FormatAmount(missing, c.RewardMintDecimals)))
	}

	status := "ok"
	if len(report.Shortfalls) > 0 || len(report.Insolvent) > 0 {
		status = "shortfall"
	}
	metrics.AuditsTotal.WithLabelValues(status).Inc()

	r.logger.Info("Escrow audit completed",
		zap.Int("campaigns", report.Campaigns),
		zap.Int("shortfalls", len(report.Shortfalls)),
		zap.Int("insolvent", len(report.Insolvent)),
		zap.Duration("duration", time.Since(start)))
	return report, nil
}

// StartPeriodicReconciliation starts a background goroutine that audits periodically
func (r *Reconciler) StartPeriodicReconciliation(interval time.Duration) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		r.logger.Info("Started periodic escrow audit", zap.Duration("interval", interval))

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
				if _, err := r.ReconcileAll(ctx); err != nil {
					r.logger.Error("Periodic escrow audit failed", zap.Error(err))
				}
				cancel()
			case <-r.stopCh:
				r.logger.Info("Stopping periodic escrow audit")
				return
			}
		}
	}()
}

// Stop stops the periodic reconciliation
func (r *Reconciler) Stop() {
	close(r.stopCh)
	r.wg.Wait()
}

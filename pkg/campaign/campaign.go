// Package campaign models a funded, time-windowed reward pool and its reservation ledger.
//
// RewardsAvailable is the escrowed pool minus cumulative payouts. ReservedRewards
// is the sum of worst-case payouts promised to open sessions. Every mutation keeps
// ReservedRewards <= RewardsAvailable.
package campaign

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/ZenRepublic/Clubhouse/internal/checked"
	"github.com/ZenRepublic/Clubhouse/pkg/energy"
	"github.com/ZenRepublic/Clubhouse/pkg/house"
	"github.com/ZenRepublic/Clubhouse/pkg/keys"
)

var (
	ErrRewardsUnavailable = errors.New("game cannot be started due to insufficient funds")
	ErrInvalidTimeSpan    = errors.New("invalid time span")
	ErrExpired            = errors.New("campaign is expired")
	ErrActive             = errors.New("campaign is active")
	ErrGamesInProgress    = errors.New("campaign has games in progress")
	ErrInvalidConfig      = errors.New("invalid campaign configuration")
	ErrInsolvent          = errors.New("reserved rewards exceed available rewards")
)

// TimeSpan is the campaign's active window in unix seconds, inclusive.
type TimeSpan struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// Valid reports whether the window is non-empty.
func (ts TimeSpan) Valid() bool { return ts.Start < ts.End }

// Expired reports whether the window has ended.
func (ts TimeSpan) Expired(now int64) bool { return ts.End < now }

// Pending reports whether the window has not started yet.
func (ts TimeSpan) Pending(now int64) bool { return ts.Start > now }

// Active reports whether now falls inside the window.
func (ts TimeSpan) Active(now int64) bool { return ts.Start <= now && now <= ts.End }

// NFTConfig gates the campaign to holders of a collection.
type NFTConfig struct {
	Collection      common.Address `json:"collection"`
	MaxPlayerEnergy uint8          `json:"max_player_energy"`
	// EnergyRechargeMinutes is the time to regain one unit, nil for no regeneration.
	EnergyRechargeMinutes *int64 `json:"energy_recharge_minutes,omitempty"`
}

// EnergyConfig returns the regeneration parameters for the gated campaign.
func (c *NFTConfig) EnergyConfig() energy.Config {
	if c == nil {
		return energy.Config{}
	}
	return energy.Config{RechargeMinutes: c.EnergyRechargeMinutes, MaxEnergy: c.MaxPlayerEnergy}
}

// TokenUse is what happens to the entry price paid by a player.
type TokenUse string

const (
	TokenUseStake TokenUse = "stake"
	TokenUseBurn  TokenUse = "burn"
	TokenUsePay   TokenUse = "pay"
)

// Valid reports whether u is a known mode.
func (u TokenUse) Valid() bool {
	switch u {
	case TokenUseStake, TokenUseBurn, TokenUsePay:
		return true
	default:
		return false
	}
}

// TokenConfig charges plain account players an entry price per game.
type TokenConfig struct {
	SpendingMint         common.Address `json:"spending_mint"`
	SpendingMintDecimals uint8          `json:"spending_mint_decimals"`
	EnergyPrice          uint64         `json:"energy_price"`
	Use                  TokenUse       `json:"use"`
}

// Campaign is the persisted reward pool record.
type Campaign struct {
	ID                  common.Address `json:"id"`
	Generation          uuid.UUID      `json:"generation"`
	House               common.Address `json:"house"`
	Creator             common.Address `json:"creator"`
	RewardMint          common.Address `json:"reward_mint"`
	RewardMintDecimals  uint8          `json:"reward_mint_decimals"`
	MaxRewardsPerGame   uint64         `json:"max_rewards_per_game"`
	RewardsClaimFee     uint64         `json:"rewards_claim_fee"`
	PlayerCount         uint64         `json:"player_count"`
	ActiveGames         uint64         `json:"active_games"`
	TotalGames          uint64         `json:"total_games"`
	TimeSpan            TimeSpan       `json:"time_span"`
	HouseConfigSnapshot house.Config   `json:"house_config_snapshot"`
	NFTConfig           *NFTConfig     `json:"nft_config,omitempty"`
	TokenConfig         *TokenConfig   `json:"token_config,omitempty"`
	UnclaimedNativeFees uint64         `json:"unclaimed_native_fees"`
	RewardsAvailable    uint64         `json:"rewards_available"`
	ReservedRewards     uint64         `json:"reserved_rewards"`
	Name                string         `json:"name"`
	URI                 *string        `json:"uri,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
}

// Params are the creator-supplied campaign settings.
type Params struct {
	Name               string
	URI                *string
	RewardMint         common.Address
	RewardMintDecimals uint8
	FundAmount         uint64
	MaxRewardsPerGame  uint64
	RewardsClaimFee    uint64
	TimeSpan           TimeSpan
	NFTConfig          *NFTConfig
	TokenConfig        *TokenConfig
}

// New builds a campaign in h funded with p.FundAmount, snapshotting the house config.
func New(h *house.House, creator common.Address, p Params, now time.Time) (*Campaign, error) {
	if !p.TimeSpan.Valid() {
		return nil, ErrInvalidTimeSpan
	}
	if p.TimeSpan.Expired(now.Unix()) {
		return nil, ErrExpired
	}
	if p.NFTConfig != nil && keys.IsZero(p.NFTConfig.Collection) {
		return nil, fmt.Errorf("%w: gating collection required", ErrInvalidConfig)
	}
	if p.NFTConfig != nil && p.NFTConfig.EnergyRechargeMinutes != nil && *p.NFTConfig.EnergyRechargeMinutes <= 0 {
		return nil, fmt.Errorf("%w: recharge minutes must be positive", ErrInvalidConfig)
	}
	if p.TokenConfig != nil && !p.TokenConfig.Use.Valid() {
		return nil, fmt.Errorf("%w: unknown token use %q", ErrInvalidConfig, p.TokenConfig.Use)
	}

	return &Campaign{
		ID:                  keys.CampaignID(h.ID, p.Name),
		Generation:          uuid.New(),
		House:               h.ID,
		Creator:             creator,
		RewardMint:          p.RewardMint,
		RewardMintDecimals:  p.RewardMintDecimals,
		MaxRewardsPerGame:   p.MaxRewardsPerGame,
		RewardsClaimFee:     p.RewardsClaimFee,
		TimeSpan:            p.TimeSpan,
		HouseConfigSnapshot: h.Config,
		NFTConfig:           p.NFTConfig,
		TokenConfig:         p.TokenConfig,
		RewardsAvailable:    p.FundAmount,
		Name:                p.Name,
		URI:                 p.URI,
		CreatedAt:           now,
	}, nil
}

// RewardVault returns the escrow owner of the reward pool.
func (c *Campaign) RewardVault() common.Address { return keys.RewardVault(c.ID) }

// DepositVault returns the escrow owner of player deposits and stakes for the
// live generation.
func (c *Campaign) DepositVault() common.Address { return keys.DepositVault(c.ID, c.Generation) }

// Authority returns the owner of the campaign's native fee balance.
func (c *Campaign) Authority() common.Address { return keys.CampaignAuthority(c.ID) }

// GatingCollection returns the collection players must prove membership of, or nil.
func (c *Campaign) GatingCollection() *common.Address {
	if c.NFTConfig == nil {
		return nil
	}
	col := c.NFTConfig.Collection
	return &col
}

// StakeMode reports whether entry prices accumulate as withdrawable stake.
func (c *Campaign) StakeMode() bool {
	return c.TokenConfig != nil && c.TokenConfig.Use == TokenUseStake
}

// Reserve promises amount of the pool to an opening session.
func (c *Campaign) Reserve(amount uint64) error {
	reserved, err := checked.Add(c.ReservedRewards, amount)
	if err != nil {
		return ErrRewardsUnavailable
	}
	if reserved > c.RewardsAvailable {
		return ErrRewardsUnavailable
	}
	c.ReservedRewards = reserved
	return nil
}

// Release returns a reservation, saturating at zero.
func (c *Campaign) Release(amount uint64) {
	c.ReservedRewards = checked.SaturatingSub(c.ReservedRewards, amount)
}

// Settle debits an actual payout from the pool.
func (c *Campaign) Settle(payout uint64) error {
	available, err := checked.Sub(c.RewardsAvailable, payout)
	if err != nil {
		return err
	}
	c.RewardsAvailable = available
	return nil
}

// CheckSolvency verifies the reservation invariant.
func (c *Campaign) CheckSolvency() error {
	if c.ReservedRewards > c.RewardsAvailable {
		return fmt.Errorf("%w: reserved %d, available %d", ErrInsolvent, c.ReservedRewards, c.RewardsAvailable)
	}
	return nil
}

// AccrueClaimFee adds to the campaign's unclaimed native fees.
func (c *Campaign) AccrueClaimFee(amount uint64) error {
	v, err := checked.Add(c.UnclaimedNativeFees, amount)
	if err != nil {
		return err
	}
	c.UnclaimedNativeFees = v
	return nil
}

// OpenGame counts a started session.
func (c *Campaign) OpenGame() error {
	return checked.Inc(&c.ActiveGames)
}

// CloseGame counts a settled session.
func (c *Campaign) CloseGame() error {
	c.ActiveGames = checked.SaturatingSub(c.ActiveGames, 1)
	return checked.Inc(&c.TotalGames)
}

// AddPlayer counts a newly created player record.
func (c *Campaign) AddPlayer() error {
	return checked.Inc(&c.PlayerCount)
}

// CanClose checks that the campaign may be torn down at now.
func (c *Campaign) CanClose(now int64, force bool) error {
	if c.ActiveGames > 0 {
		return ErrGamesInProgress
	}
	if !force && c.TimeSpan.Active(now) {
		return ErrActive
	}
	return nil
}

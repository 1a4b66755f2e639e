// Package house models the operator tenant that hosts campaigns and collects fees.
package house

import (
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ZenRepublic/Clubhouse/internal/checked"
	"github.com/ZenRepublic/Clubhouse/pkg/keys"
)

// MaxTaxBps is 100% expressed in basis points.
const MaxTaxBps = 10_000

var (
	ErrTaxTooHigh      = errors.New("tax above 100%")
	ErrInactive        = errors.New("house inactive")
	ErrActiveCampaigns = errors.New("active campaigns exist")
	ErrNotAdmin        = errors.New("caller is not the house admin")
)

// Config is the house fee configuration. Campaigns snapshot it at creation.
type Config struct {
	// OracleKey must co-sign every game settlement when set.
	OracleKey common.Address `json:"oracle_key"`
	// CampaignCreationFee is charged in house currency per new campaign.
	CampaignCreationFee uint64 `json:"campaign_creation_fee"`
	// CampaignManagerDiscount is subtracted from the creation fee for manager-credential holders.
	CampaignManagerDiscount uint64 `json:"campaign_manager_discount"`
	// ClaimFee is charged in native value on every winning settlement.
	ClaimFee      uint64 `json:"claim_fee"`
	RewardsTaxBps uint16 `json:"rewards_tax_bps"`
}

// Validate checks the configured bounds.
func (c Config) Validate() error {
	if c.RewardsTaxBps > MaxTaxBps {
		return ErrTaxTooHigh
	}
	return nil
}

// HasOracle reports whether settlements require an oracle co-signature.
func (c Config) HasOracle() bool {
	return !keys.IsZero(c.OracleKey)
}

// House is the persisted operator record.
type House struct {
	ID                    common.Address  `json:"id"`
	Admin                 common.Address  `json:"admin"`
	ManagerCollection     *common.Address `json:"manager_collection,omitempty"`
	Currency              common.Address  `json:"currency"`
	CurrencyDecimals      uint8           `json:"currency_decimals"`
	TotalCampaigns        uint64          `json:"total_campaigns"`
	OpenCampaigns         uint64          `json:"open_campaigns"`
	UniquePlayers         uint64          `json:"unique_players"`
	GamesPlayed           uint64          `json:"games_played"`
	UnclaimedNativeFees   uint64          `json:"unclaimed_native_fees"`
	UnclaimedCurrencyFees uint64          `json:"unclaimed_currency_fees"`
	Config                Config          `json:"config"`
	Active                bool            `json:"active"`
	Name                  string          `json:"name"`
	CreatedAt             time.Time       `json:"created_at"`
}

// New returns an active house keyed by its name.
func New(admin common.Address, managerCollection *common.Address, currency common.Address, decimals uint8, cfg Config, name string, now time.Time) (*House, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &House{
		ID:                keys.HouseID(name),
		Admin:             admin,
		ManagerCollection: managerCollection,
		Currency:          currency,
		CurrencyDecimals:  decimals,
		Config:            cfg,
		Active:            true,
		Name:              name,
		CreatedAt:         now,
	}, nil
}

// Vault returns the escrow owner of the house's fees.
func (h *House) Vault() common.Address {
	return keys.HouseVault(h.ID)
}

// IsAdmin reports whether key administers the house.
func (h *House) IsAdmin(key common.Address) bool {
	return h.Admin == key
}

// UpdateConfig replaces the fee configuration. Existing campaigns keep their snapshot.
func (h *House) UpdateConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	h.Config = cfg
	return nil
}

// CreationFee is the fee for a new campaign. Manager-credential creators get the
// configured discount, floored at zero.
func (h *House) CreationFee(manager bool) uint64 {
	if manager {
		return checked.SaturatingSub(h.Config.CampaignCreationFee, h.Config.CampaignManagerDiscount)
	}
	return h.Config.CampaignCreationFee
}

// AddCampaign records a newly opened campaign.
func (h *House) AddCampaign() error {
	if !h.Active {
		return ErrInactive
	}
	if err := checked.Inc(&h.TotalCampaigns); err != nil {
		return err
	}
	return checked.Inc(&h.OpenCampaigns)
}

// RemoveCampaign records a closed campaign.
func (h *House) RemoveCampaign() error {
	open, err := checked.Sub(h.OpenCampaigns, 1)
	if err != nil {
		return err
	}
	h.OpenCampaigns = open
	return nil
}

// AddPlayer counts a player record created in one of the house's campaigns.
func (h *House) AddPlayer() error {
	return checked.Inc(&h.UniquePlayers)
}

// RecordGame counts a settled game.
func (h *House) RecordGame() error {
	return checked.Inc(&h.GamesPlayed)
}

// AccrueNativeFee adds to the unclaimed native fee counter.
func (h *House) AccrueNativeFee(amount uint64) error {
	v, err := checked.Add(h.UnclaimedNativeFees, amount)
	if err != nil {
		return err
	}
	h.UnclaimedNativeFees = v
	return nil
}

// AccrueCurrencyFee adds to the unclaimed currency fee counter.
func (h *House) AccrueCurrencyFee(amount uint64) error {
	v, err := checked.Add(h.UnclaimedCurrencyFees, amount)
	if err != nil {
		return err
	}
	h.UnclaimedCurrencyFees = v
	return nil
}

// ClearFees zeroes the unclaimed counters after a withdrawal.
func (h *House) ClearFees() {
	h.UnclaimedNativeFees = 0
	h.UnclaimedCurrencyFees = 0
}

// Close deactivates the house. It fails while campaigns remain open.
func (h *House) Close() error {
	if h.OpenCampaigns > 0 {
		return ErrActiveCampaigns
	}
	h.Active = false
	return nil
}

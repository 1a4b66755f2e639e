// Package game holds the request and response types of the clubhouse operations.
package game

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ZenRepublic/Clubhouse/pkg/campaign"
	"github.com/ZenRepublic/Clubhouse/pkg/house"
	"github.com/ZenRepublic/Clubhouse/pkg/identity"
	"github.com/ZenRepublic/Clubhouse/pkg/ledger"
	"github.com/ZenRepublic/Clubhouse/pkg/player"
)

// ProgramAdminRequest grants or revokes the house creation capability.
type ProgramAdminRequest struct {
	Caller common.Address `json:"-"`
	Admin  common.Address `json:"admin"`
}

// CreateHouseRequest registers a new house.
type CreateHouseRequest struct {
	Caller            common.Address  `json:"-"`
	Name              string          `json:"name" validate:"required,clubname"`
	Admin             common.Address  `json:"admin"`
	ManagerCollection *common.Address `json:"manager_collection,omitempty"`
	Currency          common.Address  `json:"currency"`
	CurrencyDecimals  uint8           `json:"currency_decimals" validate:"lte=18"`
	Config            house.Config    `json:"config"`
}

// UpdateHouseRequest replaces a house's fee configuration.
type UpdateHouseRequest struct {
	Caller common.Address `json:"-"`
	House  common.Address `json:"-"`
	Config house.Config   `json:"config"`
}

// HouseRequest addresses a house administrative action.
type HouseRequest struct {
	Caller common.Address `json:"-"`
	House  common.Address `json:"-"`
}

// WithdrawResponse reports what a fee withdrawal or house closure moved to the admin.
type WithdrawResponse struct {
	House           common.Address `json:"house"`
	Currency        uint64         `json:"currency"`
	CurrencyDisplay string         `json:"currency_display"`
	Native          uint64         `json:"native"`
}

// CreateCampaignRequest creates and funds a campaign in a house.
type CreateCampaignRequest struct {
	Caller             common.Address        `json:"-"`
	House              common.Address        `json:"-"`
	Name               string                `json:"name" validate:"required,clubname"`
	URI                *string               `json:"uri,omitempty" validate:"omitempty,uri"`
	RewardMint         common.Address        `json:"reward_mint"`
	RewardMintDecimals uint8                 `json:"reward_mint_decimals" validate:"lte=18"`
	FundAmount         uint64                `json:"fund_amount"`
	MaxRewardsPerGame  uint64                `json:"max_rewards_per_game"`
	RewardsClaimFee    uint64                `json:"rewards_claim_fee"`
	TimeSpan           campaign.TimeSpan     `json:"time_span"`
	NFTConfig          *campaign.NFTConfig   `json:"nft_config,omitempty"`
	TokenConfig        *campaign.TokenConfig `json:"token_config,omitempty"`
	// ManagerProof lets a holder of the house's manager collection create campaigns.
	ManagerProof *identity.NFTProof `json:"manager_proof,omitempty"`
}

// Params converts the request into campaign parameters.
func (r *CreateCampaignRequest) Params() campaign.Params {
	return campaign.Params{
		Name:               r.Name,
		URI:                r.URI,
		RewardMint:         r.RewardMint,
		RewardMintDecimals: r.RewardMintDecimals,
		FundAmount:         r.FundAmount,
		MaxRewardsPerGame:  r.MaxRewardsPerGame,
		RewardsClaimFee:    r.RewardsClaimFee,
		TimeSpan:           r.TimeSpan,
		NFTConfig:          r.NFTConfig,
		TokenConfig:        r.TokenConfig,
	}
}

// CampaignRequest addresses a campaign administrative action.
type CampaignRequest struct {
	Caller   common.Address `json:"-"`
	Campaign common.Address `json:"-"`
}

// CloseCampaignResponse reports what was swept back to the creator.
type CloseCampaignResponse struct {
	Campaign common.Address `json:"campaign"`
	Rewards  uint64         `json:"rewards"`
	Deposits uint64         `json:"deposits"`
	Native   uint64         `json:"native"`
}

// StartGameRequest opens a session for the identity the proofs resolve to.
type StartGameRequest struct {
	Caller   common.Address  `json:"-"`
	Campaign common.Address  `json:"-"`
	Proofs   identity.Proofs `json:"proofs"`
}

// EndGameRequest settles the caller's open session.
type EndGameRequest struct {
	Caller    common.Address  `json:"-"`
	Campaign  common.Address  `json:"-"`
	Proofs    identity.Proofs `json:"proofs"`
	AmountWon uint64          `json:"amount_won"`
	// Oracle is the recovered co-signer, nil when none was supplied.
	Oracle *common.Address `json:"-"`
}

// PlayerRequest addresses the caller's own player record.
type PlayerRequest struct {
	Caller   common.Address  `json:"-"`
	Campaign common.Address  `json:"-"`
	Proofs   identity.Proofs `json:"proofs"`
}

// SessionResponse is returned by start and end.
type SessionResponse struct {
	Player           *player.Player `json:"player"`
	AmountWon        uint64         `json:"amount_won"`
	AmountWonDisplay string         `json:"amount_won_display"`
	RewardsAvailable uint64         `json:"rewards_available"`
	ReservedRewards  uint64         `json:"reserved_rewards"`
}

// ClaimStakeResponse reports the stake returned to the caller.
type ClaimStakeResponse struct {
	Campaign      common.Address `json:"campaign"`
	Mint          common.Address `json:"mint"`
	Amount        uint64         `json:"amount"`
	AmountDisplay string         `json:"amount_display"`
}

// NewClaimStakeResponse renders a claimed stake.
func NewClaimStakeResponse(c common.Address, s player.StakeInfo) *ClaimStakeResponse {
	return &ClaimStakeResponse{
		Campaign:      c,
		Mint:          s.StakedMint,
		Amount:        s.Amount,
		AmountDisplay: ledger.FormatAmount(s.Amount, s.StakedMintDecimals),
	}
}

// CampaignView is the read model of a campaign.
type CampaignView struct {
	*campaign.Campaign
	RewardsAvailableDisplay string `json:"rewards_available_display"`
	ReservedRewardsDisplay  string `json:"reserved_rewards_display"`
	Status                  string `json:"status"`
}

// NewCampaignView renders c at now.
func NewCampaignView(c *campaign.Campaign, now int64) *CampaignView {
	status := "active"
	switch {
	case c.TimeSpan.Pending(now):
		status = "pending"
	case c.TimeSpan.Expired(now):
		status = "expired"
	}
	return &CampaignView{
		Campaign:                c,
		RewardsAvailableDisplay: ledger.FormatAmount(c.RewardsAvailable, c.RewardMintDecimals),
		ReservedRewardsDisplay:  ledger.FormatAmount(c.ReservedRewards, c.RewardMintDecimals),
		Status:                  status,
	}
}

// HouseView is the read model of a house.
type HouseView struct {
	*house.House
	UnclaimedCurrencyFeesDisplay string `json:"unclaimed_currency_fees_display"`
}

// NewHouseView renders h.
func NewHouseView(h *house.House) *HouseView {
	return &HouseView{
		House:                        h,
		UnclaimedCurrencyFeesDisplay: ledger.FormatAmount(h.UnclaimedCurrencyFees, h.CurrencyDecimals),
	}
}

// Package player models a player's per-campaign record: energy, session flag,
// lifetime counters and optional stake.
package player

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/ZenRepublic/Clubhouse/internal/checked"
	"github.com/ZenRepublic/Clubhouse/pkg/campaign"
	"github.com/ZenRepublic/Clubhouse/pkg/energy"
	"github.com/ZenRepublic/Clubhouse/pkg/identity"
)

var (
	ErrInGame           = errors.New("player is already in a game")
	ErrNotInGame        = errors.New("player is not in a game")
	ErrIdentityMismatch = errors.New("identity does not match player record")
	ErrNoStake          = errors.New("no stake to claim")
	ErrStakeOutstanding = errors.New("unclaimed stake from a previous campaign generation")
	ErrStakeMismatch    = errors.New("stake record does not match campaign token mode")
)

// StakeInfo is the stake a player accumulated in a Stake-mode campaign.
type StakeInfo struct {
	Amount             uint64         `json:"amount"`
	CampaignEndTime    int64          `json:"campaign_end_time"`
	StakedMint         common.Address `json:"staked_mint"`
	StakedMintDecimals uint8          `json:"staked_mint_decimals"`
	CampaignName       string         `json:"campaign_name"`
	Vault              common.Address `json:"vault"`
}

// Player is the persisted (campaign, identity) record.
type Player struct {
	Identity           identity.Identity `json:"identity"`
	Campaign           common.Address    `json:"campaign"`
	CampaignGeneration uuid.UUID         `json:"campaign_generation"`
	House              common.Address    `json:"house"`
	Energy             uint8             `json:"energy"`
	RechargeStartTime  int64             `json:"recharge_start_time"`
	GameStartTime      int64             `json:"game_start_time"`
	GamesPlayed        uint64            `json:"games_played"`
	InGame             bool              `json:"in_game"`
	RewardsClaimed     uint64            `json:"rewards_claimed"`
	Stake              *StakeInfo        `json:"stake,omitempty"`
}

// New creates the record for id in c. It is the only constructor: stake presence
// follows the campaign's token mode and gated players start with full energy.
func New(c *campaign.Campaign, id identity.Identity, now int64) (*Player, error) {
	if !id.Valid() {
		return nil, identity.ErrInvalidIdentity
	}
	p := &Player{
		Identity:           id,
		Campaign:           c.ID,
		CampaignGeneration: c.Generation,
		House:              c.House,
		RechargeStartTime:  now,
	}
	if c.NFTConfig != nil {
		p.Energy = c.NFTConfig.MaxPlayerEnergy
	}
	if c.StakeMode() {
		p.Stake = newStakeInfo(c)
	}
	return p, nil
}

func newStakeInfo(c *campaign.Campaign) *StakeInfo {
	return &StakeInfo{
		CampaignEndTime:    c.TimeSpan.End,
		StakedMint:         c.TokenConfig.SpendingMint,
		StakedMintDecimals: c.TokenConfig.SpendingMintDecimals,
		CampaignName:       c.Name,
		Vault:              c.DepositVault(),
	}
}

// Current reports whether the record belongs to the campaign's live generation.
func (p *Player) Current(c *campaign.Campaign) bool {
	return p.Campaign == c.ID && p.CampaignGeneration == c.Generation
}

// Regenerate rebinds a record left over from a previous generation of c.
// An unclaimed stake blocks regeneration.
func Regenerate(old *Player, c *campaign.Campaign, id identity.Identity, now int64) (*Player, error) {
	if old != nil && old.Stake != nil && old.Stake.Amount > 0 {
		return nil, ErrStakeOutstanding
	}
	return New(c, id, now)
}

// Matches checks that id is the identity the record was created for.
func (p *Player) Matches(id identity.Identity) error {
	if p.Identity != id {
		return ErrIdentityMismatch
	}
	return nil
}

// Recharge brings energy up to now.
func (p *Player) Recharge(c *campaign.Campaign, now int64) error {
	s, err := energy.Recharge(energy.State{Energy: p.Energy, LastTick: p.RechargeStartTime}, c.NFTConfig.EnergyConfig(), now)
	if err != nil {
		return err
	}
	p.Energy, p.RechargeStartTime = s.Energy, s.LastTick
	return nil
}

// SpendEnergy removes n units for gated identities and is a no-op for plain accounts.
func (p *Player) SpendEnergy(n uint8) error {
	switch p.Identity.Kind {
	case identity.KindNFT, identity.KindAsset:
		left, err := energy.Spend(p.Energy, n)
		if err != nil {
			return err
		}
		p.Energy = left
		return nil
	case identity.KindUser:
		return nil
	case identity.KindNone:
		return identity.ErrInvalidIdentity
	default:
		return identity.ErrInvalidIdentity
	}
}

// AddStake accumulates amount into the stake record, opening a fresh one
// after a previous claim.
func (p *Player) AddStake(c *campaign.Campaign, amount uint64) error {
	if !c.StakeMode() {
		return ErrStakeMismatch
	}
	if p.Stake == nil {
		p.Stake = newStakeInfo(c)
	}
	total, err := checked.Add(p.Stake.Amount, amount)
	if err != nil {
		return err
	}
	p.Stake.Amount = total
	return nil
}

// Begin opens a session at now.
func (p *Player) Begin(now int64) error {
	if p.InGame {
		return ErrInGame
	}
	p.InGame = true
	p.GameStartTime = now
	return nil
}

// Finish closes the session and accrues the payout.
func (p *Player) Finish(won uint64) error {
	if !p.InGame {
		return ErrNotInGame
	}
	claimed, err := checked.Add(p.RewardsClaimed, won)
	if err != nil {
		return err
	}
	if err := checked.Inc(&p.GamesPlayed); err != nil {
		return err
	}
	p.RewardsClaimed = claimed
	p.InGame = false
	return nil
}

// TakeStake returns the full stake and clears the record.
func (p *Player) TakeStake() (StakeInfo, error) {
	if p.InGame {
		return StakeInfo{}, ErrInGame
	}
	if p.Stake == nil {
		return StakeInfo{}, ErrNoStake
	}
	s := *p.Stake
	p.Stake = nil
	return s, nil
}

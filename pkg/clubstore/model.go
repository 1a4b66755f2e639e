package clubstore

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/ZenRepublic/Clubhouse/pkg/campaign"
	"github.com/ZenRepublic/Clubhouse/pkg/house"
	"github.com/ZenRepublic/Clubhouse/pkg/identity"
	"github.com/ZenRepublic/Clubhouse/pkg/player"
)

// SchemaVersion is written to every record. Readers accept any version up to
// it; migrations backfill columns added after a record was written.
const SchemaVersion = 1

// ProgramAdminDao maps to the 'program_admins' table.
type ProgramAdminDao struct {
	bun.BaseModel `bun:"table:program_admins,alias:pa"`
	Admin         string    `bun:"admin,pk,type:varchar(42)"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// HouseDao maps to the 'houses' table.
type HouseDao struct {
	bun.BaseModel         `bun:"table:houses,alias:h"`
	ID                    string          `bun:"id,pk,type:varchar(42)"`
	Admin                 string          `bun:"admin,notnull,type:varchar(42)"`
	ManagerCollection     *string         `bun:"manager_collection,type:varchar(42)"`
	Currency              string          `bun:"currency,notnull,type:varchar(42)"`
	CurrencyDecimals      int16           `bun:"currency_decimals,notnull"`
	TotalCampaigns        int64           `bun:"total_campaigns,notnull"`
	OpenCampaigns         int64           `bun:"open_campaigns,notnull"`
	UniquePlayers         int64           `bun:"unique_players,notnull"`
	GamesPlayed           int64           `bun:"games_played,notnull"`
	UnclaimedNativeFees   decimal.Decimal `bun:"unclaimed_native_fees,notnull,type:numeric(20,0)"`
	UnclaimedCurrencyFees decimal.Decimal `bun:"unclaimed_currency_fees,notnull,type:numeric(20,0)"`
	Config                house.Config    `bun:"config,notnull,type:jsonb"`
	Active                bool            `bun:"active,notnull"`
	Name                  string          `bun:"name,notnull,type:varchar(32)"`
	SchemaVersion         int16           `bun:"schema_version,notnull,default:1"`
	CreatedAt             time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt             time.Time       `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// CampaignDao maps to the 'campaigns' table.
type CampaignDao struct {
	bun.BaseModel       `bun:"table:campaigns,alias:c"`
	ID                  string                `bun:"id,pk,type:varchar(42)"`
	Generation          uuid.UUID             `bun:"generation,notnull,type:uuid"`
	House               string                `bun:"house,notnull,type:varchar(42)"`
	Creator             string                `bun:"creator,notnull,type:varchar(42)"`
	RewardMint          string                `bun:"reward_mint,notnull,type:varchar(42)"`
	RewardMintDecimals  int16                 `bun:"reward_mint_decimals,notnull"`
	MaxRewardsPerGame   decimal.Decimal       `bun:"max_rewards_per_game,notnull,type:numeric(20,0)"`
	RewardsClaimFee     decimal.Decimal       `bun:"rewards_claim_fee,notnull,type:numeric(20,0)"`
	PlayerCount         int64                 `bun:"player_count,notnull"`
	ActiveGames         int64                 `bun:"active_games,notnull"`
	TotalGames          int64                 `bun:"total_games,notnull"`
	StartTime           int64                 `bun:"start_time,notnull"`
	EndTime             int64                 `bun:"end_time,notnull"`
	HouseConfigSnapshot house.Config          `bun:"house_config_snapshot,notnull,type:jsonb"`
	NFTConfig           *campaign.NFTConfig   `bun:"nft_config,type:jsonb"`
	TokenConfig         *campaign.TokenConfig `bun:"token_config,type:jsonb"`
	UnclaimedNativeFees decimal.Decimal       `bun:"unclaimed_native_fees,notnull,type:numeric(20,0)"`
	RewardsAvailable    decimal.Decimal       `bun:"rewards_available,notnull,type:numeric(20,0)"`
	ReservedRewards     decimal.Decimal       `bun:"reserved_rewards,notnull,type:numeric(20,0)"`
	Name                string                `bun:"name,notnull,type:varchar(32)"`
	URI                 *string               `bun:"uri,type:text"`
	SchemaVersion       int16                 `bun:"schema_version,notnull,default:1"`
	CreatedAt           time.Time             `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt           time.Time             `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// PlayerDao maps to the 'campaign_players' table.
type PlayerDao struct {
	bun.BaseModel      `bun:"table:campaign_players,alias:cp"`
	CampaignID         string            `bun:"campaign_id,pk,type:varchar(42)"`
	IdentityKey        string            `bun:"identity_key,pk,type:varchar(42)"`
	IdentityKind       string            `bun:"identity_kind,notnull,type:varchar(16)"`
	CampaignGeneration uuid.UUID         `bun:"campaign_generation,notnull,type:uuid"`
	House              string            `bun:"house,notnull,type:varchar(42)"`
	Energy             int16             `bun:"energy,notnull"`
	RechargeStartTime  int64             `bun:"recharge_start_time,notnull"`
	GameStartTime      int64             `bun:"game_start_time,notnull"`
	GamesPlayed        int64             `bun:"games_played,notnull"`
	InGame             bool              `bun:"in_game,notnull"`
	RewardsClaimed     decimal.Decimal   `bun:"rewards_claimed,notnull,type:numeric(20,0)"`
	Stake              *player.StakeInfo `bun:"stake,type:jsonb"`
	SchemaVersion      int16             `bun:"schema_version,notnull,default:1"`
	UpdatedAt          time.Time         `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// BalanceDao maps to the 'balances' table.
type BalanceDao struct {
	bun.BaseModel `bun:"table:balances,alias:b"`
	Owner         string          `bun:"owner,pk,type:varchar(42)"`
	Asset         string          `bun:"asset,pk,type:varchar(42)"`
	Amount        decimal.Decimal `bun:"amount,notnull,type:numeric(20,0)"`
	UpdatedAt     time.Time       `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// LedgerEntryDao maps to the 'ledger_entries' journal table.
type LedgerEntryDao struct {
	bun.BaseModel `bun:"table:ledger_entries,alias:le"`
	ID            uuid.UUID       `bun:"id,pk,type:uuid"`
	Kind          string          `bun:"kind,notnull,type:varchar(16)"`
	FromOwner     *string         `bun:"from_owner,type:varchar(42)"`
	ToOwner       *string         `bun:"to_owner,type:varchar(42)"`
	Asset         string          `bun:"asset,notnull,type:varchar(42)"`
	Amount        decimal.Decimal `bun:"amount,notnull,type:numeric(20,0)"`
	Authority     *string         `bun:"authority,type:varchar(42)"`
	CreatedAt     time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toNumeric(v uint64) decimal.Decimal {
	return decimal.NewFromUint64(v)
}

func fromNumeric(d decimal.Decimal) (uint64, error) {
	bi := d.BigInt()
	if d.IsNegative() || !bi.IsUint64() {
		return 0, fmt.Errorf("numeric %s out of range", d.String())
	}
	return bi.Uint64(), nil
}

func addrPtr(a *common.Address) *string {
	if a == nil {
		return nil
	}
	s := a.Hex()
	return &s
}

func ptrAddr(s *string) *common.Address {
	if s == nil {
		return nil
	}
	a := common.HexToAddress(*s)
	return &a
}

func toHouseDao(h *house.House) *HouseDao {
	return &HouseDao{
		ID:                    h.ID.Hex(),
		Admin:                 h.Admin.Hex(),
		ManagerCollection:     addrPtr(h.ManagerCollection),
		Currency:              h.Currency.Hex(),
		CurrencyDecimals:      int16(h.CurrencyDecimals),
		TotalCampaigns:        int64(h.TotalCampaigns),
		OpenCampaigns:         int64(h.OpenCampaigns),
		UniquePlayers:         int64(h.UniquePlayers),
		GamesPlayed:           int64(h.GamesPlayed),
		UnclaimedNativeFees:   toNumeric(h.UnclaimedNativeFees),
		UnclaimedCurrencyFees: toNumeric(h.UnclaimedCurrencyFees),
		Config:                h.Config,
		Active:                h.Active,
		Name:                  h.Name,
		SchemaVersion:         SchemaVersion,
		CreatedAt:             h.CreatedAt,
		UpdatedAt:             time.Now(),
	}
}

func toHouse(dao *HouseDao) (*house.House, error) {
	nativeFees, err := fromNumeric(dao.UnclaimedNativeFees)
	if err != nil {
		return nil, err
	}
	currencyFees, err := fromNumeric(dao.UnclaimedCurrencyFees)
	if err != nil {
		return nil, err
	}
	return &house.House{
		ID:                    common.HexToAddress(dao.ID),
		Admin:                 common.HexToAddress(dao.Admin),
		ManagerCollection:     ptrAddr(dao.ManagerCollection),
		Currency:              common.HexToAddress(dao.Currency),
		CurrencyDecimals:      uint8(dao.CurrencyDecimals),
		TotalCampaigns:        uint64(dao.TotalCampaigns),
		OpenCampaigns:         uint64(dao.OpenCampaigns),
		UniquePlayers:         uint64(dao.UniquePlayers),
		GamesPlayed:           uint64(dao.GamesPlayed),
		UnclaimedNativeFees:   nativeFees,
		UnclaimedCurrencyFees: currencyFees,
		Config:                dao.Config,
		Active:                dao.Active,
		Name:                  dao.Name,
		CreatedAt:             dao.CreatedAt,
	}, nil
}

func toCampaignDao(c *campaign.Campaign) *CampaignDao {
	return &CampaignDao{
		ID:                  c.ID.Hex(),
		Generation:          c.Generation,
		House:               c.House.Hex(),
		Creator:             c.Creator.Hex(),
		RewardMint:          c.RewardMint.Hex(),
		RewardMintDecimals:  int16(c.RewardMintDecimals),
		MaxRewardsPerGame:   toNumeric(c.MaxRewardsPerGame),
		RewardsClaimFee:     toNumeric(c.RewardsClaimFee),
		PlayerCount:         int64(c.PlayerCount),
		ActiveGames:         int64(c.ActiveGames),
		TotalGames:          int64(c.TotalGames),
		StartTime:           c.TimeSpan.Start,
		EndTime:             c.TimeSpan.End,
		HouseConfigSnapshot: c.HouseConfigSnapshot,
		NFTConfig:           c.NFTConfig,
		TokenConfig:         c.TokenConfig,
		UnclaimedNativeFees: toNumeric(c.UnclaimedNativeFees),
		RewardsAvailable:    toNumeric(c.RewardsAvailable),
		ReservedRewards:     toNumeric(c.ReservedRewards),
		Name:                c.Name,
		URI:                 c.URI,
		SchemaVersion:       SchemaVersion,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           time.Now(),
	}
}

func toCampaign(dao *CampaignDao) (*campaign.Campaign, error) {
	amounts := []decimal.Decimal{
		dao.MaxRewardsPerGame, dao.RewardsClaimFee, dao.UnclaimedNativeFees,
		dao.RewardsAvailable, dao.ReservedRewards,
	}
	vals := make([]uint64, len(amounts))
	for i, d := range amounts {
		v, err := fromNumeric(d)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return &campaign.Campaign{
		ID:                  common.HexToAddress(dao.ID),
		Generation:          dao.Generation,
		House:               common.HexToAddress(dao.House),
		Creator:             common.HexToAddress(dao.Creator),
		RewardMint:          common.HexToAddress(dao.RewardMint),
		RewardMintDecimals:  uint8(dao.RewardMintDecimals),
		MaxRewardsPerGame:   vals[0],
		RewardsClaimFee:     vals[1],
		PlayerCount:         uint64(dao.PlayerCount),
		ActiveGames:         uint64(dao.ActiveGames),
		TotalGames:          uint64(dao.TotalGames),
		TimeSpan:            campaign.TimeSpan{Start: dao.StartTime, End: dao.EndTime},
		HouseConfigSnapshot: dao.HouseConfigSnapshot,
		NFTConfig:           dao.NFTConfig,
		TokenConfig:         dao.TokenConfig,
		UnclaimedNativeFees: vals[2],
		RewardsAvailable:    vals[3],
		ReservedRewards:     vals[4],
		Name:                dao.Name,
		URI:                 dao.URI,
		CreatedAt:           dao.CreatedAt,
	}, nil
}

func toPlayerDao(p *player.Player) *PlayerDao {
	return &PlayerDao{
		CampaignID:         p.Campaign.Hex(),
		IdentityKey:        p.Identity.Key.Hex(),
		IdentityKind:       p.Identity.Kind.String(),
		CampaignGeneration: p.CampaignGeneration,
		House:              p.House.Hex(),
		Energy:             int16(p.Energy),
		RechargeStartTime:  p.RechargeStartTime,
		GameStartTime:      p.GameStartTime,
		GamesPlayed:        int64(p.GamesPlayed),
		InGame:             p.InGame,
		RewardsClaimed:     toNumeric(p.RewardsClaimed),
		Stake:              p.Stake,
		SchemaVersion:      SchemaVersion,
		UpdatedAt:          time.Now(),
	}
}

func toPlayer(dao *PlayerDao) (*player.Player, error) {
	kind, err := identity.ParseKind(dao.IdentityKind)
	if err != nil {
		return nil, err
	}
	claimed, err := fromNumeric(dao.RewardsClaimed)
	if err != nil {
		return nil, err
	}
	return &player.Player{
		Identity:           identity.Identity{Kind: kind, Key: common.HexToAddress(dao.IdentityKey)},
		Campaign:           common.HexToAddress(dao.CampaignID),
		CampaignGeneration: dao.CampaignGeneration,
		House:              common.HexToAddress(dao.House),
		Energy:             uint8(dao.Energy),
		RechargeStartTime:  dao.RechargeStartTime,
		GameStartTime:      dao.GameStartTime,
		GamesPlayed:        uint64(dao.GamesPlayed),
		InGame:             dao.InGame,
		RewardsClaimed:     claimed,
		Stake:              dao.Stake,
	}, nil
}

// Package clubstore persists houses, campaigns, players and ledger balances.
//
// Every mutating operation runs inside RunInTx. Records read through Tx are
// locked until the transaction ends, so operations touching the same house,
// campaign or player are serialized while disjoint ones run concurrently.
// Callers lock in house, campaign, player order.
package clubstore

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ZenRepublic/Clubhouse/pkg/campaign"
	"github.com/ZenRepublic/Clubhouse/pkg/house"
	"github.com/ZenRepublic/Clubhouse/pkg/ledger"
	"github.com/ZenRepublic/Clubhouse/pkg/player"
)

var (
	// ErrNotFound is returned when a lookup finds no matching record.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists is returned when creating a record whose key is taken.
	ErrAlreadyExists = errors.New("record already exists")
)

// Reader provides unlocked point reads.
type Reader interface {
	GetHouse(ctx context.Context, id common.Address) (*house.House, error)
	GetCampaign(ctx context.Context, id common.Address) (*campaign.Campaign, error)
	GetPlayer(ctx context.Context, campaignID, identityKey common.Address) (*player.Player, error)
	ListCampaigns(ctx context.Context) ([]*campaign.Campaign, error)
	Balance(ctx context.Context, account ledger.Account) (uint64, error)
}

// Tx is the transactional view handed to RunInTx callbacks. Ledger movements
// made through it commit or roll back together with the record writes.
type Tx interface {
	ledger.Ledger

	ProgramAdminExists(ctx context.Context, admin common.Address) (bool, error)
	CreateProgramAdmin(ctx context.Context, admin common.Address) error
	DeleteProgramAdmin(ctx context.Context, admin common.Address) error

	LockHouse(ctx context.Context, id common.Address) (*house.House, error)
	CreateHouse(ctx context.Context, h *house.House) error
	UpdateHouse(ctx context.Context, h *house.House) error

	LockCampaign(ctx context.Context, id common.Address) (*campaign.Campaign, error)
	CreateCampaign(ctx context.Context, c *campaign.Campaign) error
	UpdateCampaign(ctx context.Context, c *campaign.Campaign) error
	DeleteCampaign(ctx context.Context, id common.Address) error

	LockPlayer(ctx context.Context, campaignID, identityKey common.Address) (*player.Player, error)
	SavePlayer(ctx context.Context, p *player.Player) error
	DeletePlayer(ctx context.Context, campaignID, identityKey common.Address) error
}

// Store is the full persistence contract of the clubhouse service.
// Tests exercise it through MemoryStore rather than a generated mock.
type Store interface {
	Reader
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

package clubstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/ZenRepublic/Clubhouse/pkg/campaign"
	"github.com/ZenRepublic/Clubhouse/pkg/house"
	"github.com/ZenRepublic/Clubhouse/pkg/ledger"
	"github.com/ZenRepublic/Clubhouse/pkg/player"
)

const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the clubhouse store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func pgCode(err error) string {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C')
	}
	return ""
}

func (s *pgStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, &pgTx{db: tx})
	})
}

func (s *pgStore) GetHouse(ctx context.Context, id common.Address) (*house.House, error) {
	return getHouse(ctx, s.db, id, false)
}

func (s *pgStore) GetCampaign(ctx context.Context, id common.Address) (*campaign.Campaign, error) {
	return getCampaign(ctx, s.db, id, false)
}

func (s *pgStore) GetPlayer(ctx context.Context, campaignID, identityKey common.Address) (*player.Player, error) {
	return getPlayer(ctx, s.db, campaignID, identityKey, false)
}

func (s *pgStore) ListCampaigns(ctx context.Context) ([]*campaign.Campaign, error) {
	var daos []CampaignDao
	if err := s.db.NewSelect().Model(&daos).Order("created_at ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	out := make([]*campaign.Campaign, 0, len(daos))
	for i := range daos {
		c, err := toCampaign(&daos[i])
		if err != nil {
			return nil, fmt.Errorf("failed to decode campaign %s: %w", daos[i].ID, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *pgStore) Balance(ctx context.Context, account ledger.Account) (uint64, error) {
	return balance(ctx, s.db, account, false)
}

func getHouse(ctx context.Context, db bun.IDB, id common.Address, lock bool) (*house.House, error) {
	dao := new(HouseDao)
	q := db.NewSelect().Model(dao).Where("h.id = ?", id.Hex())
	if lock {
		q = q.For("UPDATE")
	}
	if err := q.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get house: %w", err)
	}
	return toHouse(dao)
}

func getCampaign(ctx context.Context, db bun.IDB, id common.Address, lock bool) (*campaign.Campaign, error) {
	dao := new(CampaignDao)
	q := db.NewSelect().Model(dao).Where("c.id = ?", id.Hex())
	if lock {
		q = q.For("UPDATE")
	}
	if err := q.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return toCampaign(dao)
}

func getPlayer(ctx context.Context, db bun.IDB, campaignID, identityKey common.Address, lock bool) (*player.Player, error) {
	dao := new(PlayerDao)
	q := db.NewSelect().
		Model(dao).
		Where("cp.campaign_id = ?", campaignID.Hex()).
		Where("cp.identity_key = ?", identityKey.Hex())
	if lock {
		q = q.For("UPDATE")
	}
	if err := q.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return toPlayer(dao)
}

// pgTx implements Tx on a bun transaction.
type pgTx struct {
	db bun.Tx
}

func (t *pgTx) ProgramAdminExists(ctx context.Context, admin common.Address) (bool, error) {
	exists, err := t.db.NewSelect().
		Model((*ProgramAdminDao)(nil)).
		Where("admin = ?", admin.Hex()).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check program admin: %w", err)
	}
	return exists, nil
}

func (t *pgTx) CreateProgramAdmin(ctx context.Context, admin common.Address) error {
	_, err := t.db.NewInsert().Model(&ProgramAdminDao{Admin: admin.Hex()}).Exec(ctx)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create program admin: %w", err)
	}
	return nil
}

func (t *pgTx) DeleteProgramAdmin(ctx context.Context, admin common.Address) error {
	res, err := t.db.NewDelete().
		Model((*ProgramAdminDao)(nil)).
		Where("admin = ?", admin.Hex()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete program admin: %w", err)
	}
	return expectOne(res)
}

func (t *pgTx) LockHouse(ctx context.Context, id common.Address) (*house.House, error) {
	return getHouse(ctx, t.db, id, true)
}

func (t *pgTx) CreateHouse(ctx context.Context, h *house.House) error {
	_, err := t.db.NewInsert().Model(toHouseDao(h)).Exec(ctx)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create house: %w", err)
	}
	return nil
}

func (t *pgTx) UpdateHouse(ctx context.Context, h *house.House) error {
	res, err := t.db.NewUpdate().
		Model(toHouseDao(h)).
		ExcludeColumn("created_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update house: %w", err)
	}
	return expectOne(res)
}

func (t *pgTx) LockCampaign(ctx context.Context, id common.Address) (*campaign.Campaign, error) {
	return getCampaign(ctx, t.db, id, true)
}

func (t *pgTx) CreateCampaign(ctx context.Context, c *campaign.Campaign) error {
	_, err := t.db.NewInsert().Model(toCampaignDao(c)).Exec(ctx)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create campaign: %w", err)
	}
	return nil
}

func (t *pgTx) UpdateCampaign(ctx context.Context, c *campaign.Campaign) error {
	res, err := t.db.NewUpdate().
		Model(toCampaignDao(c)).
		ExcludeColumn("created_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update campaign: %w", err)
	}
	return expectOne(res)
}

func (t *pgTx) DeleteCampaign(ctx context.Context, id common.Address) error {
	res, err := t.db.NewDelete().
		Model((*CampaignDao)(nil)).
		Where("id = ?", id.Hex()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	return expectOne(res)
}

func (t *pgTx) LockPlayer(ctx context.Context, campaignID, identityKey common.Address) (*player.Player, error) {
	return getPlayer(ctx, t.db, campaignID, identityKey, true)
}

func (t *pgTx) SavePlayer(ctx context.Context, p *player.Player) error {
	_, err := t.db.NewInsert().
		Model(toPlayerDao(p)).
		On("CONFLICT (campaign_id, identity_key) DO UPDATE").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}
	return nil
}

func (t *pgTx) DeletePlayer(ctx context.Context, campaignID, identityKey common.Address) error {
	res, err := t.db.NewDelete().
		Model((*PlayerDao)(nil)).
		Where("campaign_id = ?", campaignID.Hex()).
		Where("identity_key = ?", identityKey.Hex()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return expectOne(res)
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

package clubstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/ZenRepublic/Clubhouse/pkg/ledger"
)

const (
	entryTransfer = "transfer"
	entryBurn     = "burn"
	entryDeposit  = "deposit"
)

func balance(ctx context.Context, db bun.IDB, account ledger.Account, lock bool) (uint64, error) {
	dao := new(BalanceDao)
	q := db.NewSelect().
		Model(dao).
		Where("b.owner = ?", account.Owner.Hex()).
		Where("b.asset = ?", account.Asset.Hex())
	if lock {
		q = q.For("UPDATE")
	}
	if err := q.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return fromNumeric(dao.Amount)
}

func (t *pgTx) Balance(ctx context.Context, account ledger.Account) (uint64, error) {
	return balance(ctx, t.db, account, false)
}

func (t *pgTx) Transfer(ctx context.Context, amount uint64, from ledger.Account, to common.Address, authority common.Address) error {
	if err := ledger.Authorize(from, authority); err != nil {
		return err
	}
	if err := t.debit(ctx, from, amount); err != nil {
		return err
	}
	dest := ledger.NewAccount(to, from.Asset)
	if err := t.credit(ctx, dest, amount); err != nil {
		return err
	}
	return t.journal(ctx, entryTransfer, &from.Owner, &to, from.Asset, amount, &authority)
}

func (t *pgTx) Burn(ctx context.Context, amount uint64, from ledger.Account, authority common.Address) error {
	if err := ledger.Authorize(from, authority); err != nil {
		return err
	}
	if err := t.debit(ctx, from, amount); err != nil {
		return err
	}
	return t.journal(ctx, entryBurn, &from.Owner, nil, from.Asset, amount, &authority)
}

func (t *pgTx) Deposit(ctx context.Context, account ledger.Account, amount uint64) error {
	if err := t.credit(ctx, account, amount); err != nil {
		return err
	}
	return t.journal(ctx, entryDeposit, nil, &account.Owner, account.Asset, amount, nil)
}

// debit subtracts amount only when the row holds enough, so a short balance
// never goes negative.
func (t *pgTx) debit(ctx context.Context, account ledger.Account, amount uint64) error {
	if amount == 0 {
		return nil
	}
	res, err := t.db.NewUpdate().
		Model((*BalanceDao)(nil)).
		Set("amount = amount - ?::numeric", toNumeric(amount)).
		Set("updated_at = NOW()").
		Where("owner = ?", account.Owner.Hex()).
		Where("asset = ?", account.Asset.Hex()).
		Where("amount >= ?::numeric", toNumeric(amount)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to debit %s: %w", account.Owner.Hex(), err)
	}
	if err := expectOne(res); err != nil {
		return ledger.ErrInsufficientFunds
	}
	return nil
}

func (t *pgTx) credit(ctx context.Context, account ledger.Account, amount uint64) error {
	if amount == 0 {
		return nil
	}
	dao := &BalanceDao{
		Owner:  account.Owner.Hex(),
		Asset:  account.Asset.Hex(),
		Amount: toNumeric(amount),
	}
	_, err := t.db.NewInsert().
		Model(dao).
		On("CONFLICT (owner, asset) DO UPDATE").
		Set("amount = b.amount + EXCLUDED.amount").
		Set("updated_at = NOW()").
		Exec(ctx)
	if err != nil {
		if pgCode(err) == pgCheckViolation {
			return ledger.ErrOverflow
		}
		return fmt.Errorf("failed to credit %s: %w", account.Owner.Hex(), err)
	}
	return nil
}

func (t *pgTx) journal(ctx context.Context, kind string, from, to *common.Address, asset common.Address, amount uint64, authority *common.Address) error {
	if amount == 0 {
		return nil
	}
	_, err := t.db.NewInsert().Model(&LedgerEntryDao{
		ID:        uuid.New(),
		Kind:      kind,
		FromOwner: addrPtr(from),
		ToOwner:   addrPtr(to),
		Asset:     asset.Hex(),
		Amount:    toNumeric(amount),
		Authority: addrPtr(authority),
	}).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record ledger entry: %w", err)
	}
	return nil
}

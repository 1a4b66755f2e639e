package clubstore

import (
	"context"
	"errors"
	"testing"

	"github.com/ZenRepublic/Clubhouse/pkg/identity"
	"github.com/ZenRepublic/Clubhouse/pkg/ledger"
	"github.com/ZenRepublic/Clubhouse/pkg/pgutil"
	mghelper "github.com/ZenRepublic/Clubhouse/pkg/pgutil/migrations"
)

func setupStore(t *testing.T) (context.Context, *pgStore) {
	t.Helper()

	ctx := context.Background()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	if err := mghelper.CreateSchema(ctx, db,
		&ProgramAdminDao{}, &HouseDao{}, &CampaignDao{}, &PlayerDao{}, &BalanceDao{}, &LedgerEntryDao{},
	); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	if _, err := db.ExecContext(ctx, `ALTER TABLE balances ADD CONSTRAINT balances_amount_range
		CHECK (amount >= 0 AND amount <= 18446744073709551615)`); err != nil {
		t.Fatalf("failed to add balance constraint: %v", err)
	}

	return ctx, NewStore(db)
}

func TestPGStore_HouseCampaignRoundTrip(t *testing.T) {
	ctx, s := setupStore(t)
	h := newTestHouse(t)
	c := newTestCampaign(t, h)
	uri := "https://example.com/cup.json"
	c.URI = &uri

	err := s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		if err := tx.CreateHouse(ctx, h); err != nil {
			return err
		}
		return tx.CreateCampaign(ctx, c)
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	gotHouse, err := s.GetHouse(ctx, h.ID)
	if err != nil {
		t.Fatalf("GetHouse failed: %v", err)
	}
	if gotHouse.Name != h.Name || gotHouse.Config != h.Config || !gotHouse.Active {
		t.Fatalf("house mismatch: %+v", gotHouse)
	}

	gotCampaign, err := s.GetCampaign(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetCampaign failed: %v", err)
	}
	if gotCampaign.Generation != c.Generation {
		t.Fatalf("generation mismatch: got %s want %s", gotCampaign.Generation, c.Generation)
	}
	if gotCampaign.RewardsAvailable != 1_000 || gotCampaign.MaxRewardsPerGame != 100 {
		t.Fatalf("amount mismatch: %+v", gotCampaign)
	}
	if gotCampaign.TokenConfig == nil || gotCampaign.TokenConfig.EnergyPrice != 7 {
		t.Fatalf("token config mismatch: %+v", gotCampaign.TokenConfig)
	}
	if gotCampaign.URI == nil || *gotCampaign.URI != uri {
		t.Fatalf("uri mismatch: %v", gotCampaign.URI)
	}

	err = s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		return tx.CreateHouse(ctx, h)
	})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestPGStore_UpdateCampaignLocked(t *testing.T) {
	ctx, s := setupStore(t)
	h := newTestHouse(t)
	c := newTestCampaign(t, h)

	if err := s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		return tx.CreateCampaign(ctx, c)
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	err := s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		locked, err := tx.LockCampaign(ctx, c.ID)
		if err != nil {
			return err
		}
		if err := locked.Reserve(100); err != nil {
			return err
		}
		if err := locked.OpenGame(); err != nil {
			return err
		}
		return tx.UpdateCampaign(ctx, locked)
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, err := s.GetCampaign(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetCampaign failed: %v", err)
	}
	if got.ReservedRewards != 100 || got.ActiveGames != 1 {
		t.Fatalf("unexpected counters: reserved=%d active=%d", got.ReservedRewards, got.ActiveGames)
	}

	err = s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		return tx.DeleteCampaign(ctx, c.ID)
	})
	if err != nil {
		t.Fatalf("DeleteCampaign failed: %v", err)
	}
	if _, err := s.GetCampaign(ctx, c.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGStore_PlayerUpsert(t *testing.T) {
	ctx, s := setupStore(t)
	h := newTestHouse(t)
	c := newTestCampaign(t, h)
	p := newTestPlayer(t, c)

	if err := s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		return tx.SavePlayer(ctx, p)
	}); err != nil {
		t.Fatalf("SavePlayer failed: %v", err)
	}

	err := s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		locked, err := tx.LockPlayer(ctx, c.ID, walletAddr)
		if err != nil {
			return err
		}
		if err := locked.AddStake(c, 28); err != nil {
			return err
		}
		if err := locked.Begin(1_700_000_100); err != nil {
			return err
		}
		return tx.SavePlayer(ctx, locked)
	})
	if err != nil {
		t.Fatalf("update player failed: %v", err)
	}

	got, err := s.GetPlayer(ctx, c.ID, walletAddr)
	if err != nil {
		t.Fatalf("GetPlayer failed: %v", err)
	}
	if got.Identity != identity.User(walletAddr) {
		t.Fatalf("identity mismatch: %v", got.Identity)
	}
	if !got.InGame || got.GameStartTime != 1_700_000_100 {
		t.Fatalf("session not persisted: %+v", got)
	}
	if got.Stake == nil || got.Stake.Amount != 28 {
		t.Fatalf("stake not persisted: %+v", got.Stake)
	}

	err = s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		return tx.DeletePlayer(ctx, c.ID, walletAddr)
	})
	if err != nil {
		t.Fatalf("DeletePlayer failed: %v", err)
	}
	if _, err := s.GetPlayer(ctx, c.ID, walletAddr); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGStore_ProgramAdmins(t *testing.T) {
	ctx, s := setupStore(t)

	err := s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		if err := tx.CreateProgramAdmin(ctx, adminAddr); err != nil {
			return err
		}
		ok, err := tx.ProgramAdminExists(ctx, adminAddr)
		if err != nil {
			return err
		}
		if !ok {
			t.Error("expected admin to exist")
		}
		return tx.CreateProgramAdmin(ctx, adminAddr)
	})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestPGStore_Ledger(t *testing.T) {
	ctx, s := setupStore(t)
	from := ledger.NewAccount(walletAddr, currency)

	if err := s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		return tx.Deposit(ctx, from, 100)
	}); err != nil {
		t.Fatalf("Deposit failed: %v", err)
	}

	err := s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		return tx.Transfer(ctx, 101, from, otherAddr, walletAddr)
	})
	if !errors.Is(err, ledger.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	err = s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		if err := tx.Transfer(ctx, 60, from, otherAddr, walletAddr); err != nil {
			return err
		}
		return tx.Burn(ctx, 15, from, walletAddr)
	})
	if err != nil {
		t.Fatalf("transfer and burn failed: %v", err)
	}

	if bal, err := s.Balance(ctx, from); err != nil || bal != 25 {
		t.Fatalf("sender balance = %d (%v), want 25", bal, err)
	}
	if bal, err := s.Balance(ctx, ledger.NewAccount(otherAddr, currency)); err != nil || bal != 60 {
		t.Fatalf("receiver balance = %d (%v), want 60", bal, err)
	}
	if bal, err := s.Balance(ctx, ledger.Native(otherAddr)); err != nil || bal != 0 {
		t.Fatalf("untouched balance = %d (%v), want 0", bal, err)
	}

	// Deposit + Transfer + Burn each journal one entry.
	pgutil.AssertRowCount(t, s.db, "ledger_entries", 3)
}

func TestPGStore_CreditOverflow(t *testing.T) {
	ctx, s := setupStore(t)
	acct := ledger.Native(walletAddr)

	if err := s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		return tx.Deposit(ctx, acct, ^uint64(0))
	}); err != nil {
		t.Fatalf("Deposit failed: %v", err)
	}

	err := s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		return tx.Deposit(ctx, acct, 1)
	})
	if !errors.Is(err, ledger.ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}

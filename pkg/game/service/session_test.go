package service

import (
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"

	apperrors "github.com/ZenRepublic/Clubhouse/pkg/app/errors"
	"github.com/ZenRepublic/Clubhouse/pkg/campaign"
	"github.com/ZenRepublic/Clubhouse/pkg/clubstore"
	"github.com/ZenRepublic/Clubhouse/pkg/energy"
	"github.com/ZenRepublic/Clubhouse/pkg/game"
	"github.com/ZenRepublic/Clubhouse/pkg/house"
	"github.com/ZenRepublic/Clubhouse/pkg/identity"
	"github.com/ZenRepublic/Clubhouse/pkg/ledger"
	ledgermocks "github.com/ZenRepublic/Clubhouse/pkg/ledger/mocks"
	"github.com/ZenRepublic/Clubhouse/pkg/player"
)

func (f *fixture) start(t *testing.T, caller, campaignID common.Address) *game.SessionResponse {
	t.Helper()
	resp, err := f.svc.StartGame(f.ctx, &game.StartGameRequest{Caller: caller, Campaign: campaignID})
	if err != nil {
		t.Fatalf("start for %s failed: %v", caller.Hex(), err)
	}
	return resp
}

func (f *fixture) end(t *testing.T, caller, campaignID common.Address, won uint64) *game.SessionResponse {
	t.Helper()
	resp, err := f.svc.EndGame(f.ctx, &game.EndGameRequest{Caller: caller, Campaign: campaignID, AmountWon: won})
	if err != nil {
		t.Fatalf("end for %s failed: %v", caller.Hex(), err)
	}
	return resp
}

func assertSolvent(t *testing.T, c *campaign.Campaign) {
	t.Helper()
	if c.ReservedRewards > c.RewardsAvailable {
		t.Fatalf("reserved %d exceeds available %d", c.ReservedRewards, c.RewardsAvailable)
	}
}

func TestStartGame_ReservationLimitsOpenSessions(t *testing.T) {
	f := newFixture(t)
	h := f.createHouse(t, house.Config{})
	c := f.createCampaign(t, campaignRequest(h, "Weekly Cup"))

	for i := 0; i < 10; i++ {
		resp := f.start(t, wallet(i), c.ID)
		if resp.ReservedRewards != uint64(i+1)*100 {
			t.Fatalf("start %d: expected reserved %d, got %d", i, (i+1)*100, resp.ReservedRewards)
		}
		assertSolvent(t, f.campaign(t, c.ID))
	}

	_, err := f.svc.StartGame(f.ctx, &game.StartGameRequest{Caller: wallet(10), Campaign: c.ID})
	if !errors.Is(err, campaign.ErrRewardsUnavailable) {
		t.Fatalf("expected ErrRewardsUnavailable, got %v", err)
	}
	if !apperrors.Is(err, apperrors.CategoryUnprocessable) {
		t.Fatalf("expected unprocessable category, got %v", err)
	}
	if _, err := f.store.GetPlayer(f.ctx, c.ID, wallet(10)); !errors.Is(err, clubstore.ErrNotFound) {
		t.Fatalf("failed start must not create a player, got %v", err)
	}

	resp := f.end(t, wallet(0), c.ID, 30)
	if resp.RewardsAvailable != 970 || resp.ReservedRewards != 900 {
		t.Fatalf("expected 970/900 after settlement, got %d/%d", resp.RewardsAvailable, resp.ReservedRewards)
	}
	if got := f.balance(t, ledger.NewAccount(wallet(0), rewardMint)); got != 30 {
		t.Fatalf("expected payout 30, got %d", got)
	}
	if got := f.balance(t, ledger.NewAccount(c.RewardVault(), rewardMint)); got != 970 {
		t.Fatalf("expected reward vault 970, got %d", got)
	}

	// 900 reserved + 100 would exceed the 970 left in the pool.
	if _, err := f.svc.StartGame(f.ctx, &game.StartGameRequest{Caller: wallet(10), Campaign: c.ID}); !errors.Is(err, campaign.ErrRewardsUnavailable) {
		t.Fatalf("expected ErrRewardsUnavailable while 900 reserved of 970, got %v", err)
	}

	f.end(t, wallet(1), c.ID, 0)
	resp = f.start(t, wallet(10), c.ID)
	if resp.ReservedRewards != 900 || resp.RewardsAvailable != 970 {
		t.Fatalf("expected 970/900 after restart, got %d/%d", resp.RewardsAvailable, resp.ReservedRewards)
	}
	assertSolvent(t, f.campaign(t, c.ID))

	stored := f.campaign(t, c.ID)
	if stored.ActiveGames != 9 || stored.TotalGames != 2 || stored.PlayerCount != 11 {
		t.Fatalf("unexpected counters active=%d total=%d players=%d", stored.ActiveGames, stored.TotalGames, stored.PlayerCount)
	}
	if got := f.house(t, h.ID); got.GamesPlayed != 2 || got.UniquePlayers != 11 {
		t.Fatalf("unexpected house counters games=%d players=%d", got.GamesPlayed, got.UniquePlayers)
	}
}

func TestSession_LifecycleErrors(t *testing.T) {
	f := newFixture(t)
	h := f.createHouse(t, house.Config{})
	c := f.createCampaign(t, campaignRequest(h, "Weekly Cup"))
	p := wallet(1)

	_, err := f.svc.EndGame(f.ctx, &game.EndGameRequest{Caller: p, Campaign: c.ID})
	if !errors.Is(err, player.ErrNotInGame) {
		t.Fatalf("expected ErrNotInGame without a record, got %v", err)
	}
	if !apperrors.Is(err, apperrors.CategoryDataConflict) {
		t.Fatalf("expected conflict category, got %v", err)
	}

	f.start(t, p, c.ID)
	if _, err := f.svc.StartGame(f.ctx, &game.StartGameRequest{Caller: p, Campaign: c.ID}); !errors.Is(err, player.ErrInGame) {
		t.Fatalf("expected ErrInGame, got %v", err)
	}

	_, err = f.svc.EndGame(f.ctx, &game.EndGameRequest{Caller: p, Campaign: c.ID, AmountWon: 101})
	if !errors.Is(err, ErrAmountTooHigh) {
		t.Fatalf("expected ErrAmountTooHigh, got %v", err)
	}
	if stored, _ := f.store.GetPlayer(f.ctx, c.ID, p); !stored.InGame {
		t.Fatalf("rejected end must leave the session open")
	}

	f.end(t, p, c.ID, 100)
	if _, err := f.svc.EndGame(f.ctx, &game.EndGameRequest{Caller: p, Campaign: c.ID}); !errors.Is(err, player.ErrNotInGame) {
		t.Fatalf("expected ErrNotInGame after settlement, got %v", err)
	}

	stored, err := f.svc.GetPlayer(f.ctx, c.ID, p)
	if err != nil {
		t.Fatalf("get player failed: %v", err)
	}
	if stored.GamesPlayed != 1 || stored.RewardsClaimed != 100 || stored.InGame {
		t.Fatalf("unexpected player %+v", stored)
	}

	f.advance(2 * 24 * time.Hour)
	if _, err := f.svc.StartGame(f.ctx, &game.StartGameRequest{Caller: p, Campaign: c.ID}); !errors.Is(err, campaign.ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}

	want := []game.EventKind{game.EventCampaignCreated, game.EventGameStarted, game.EventGameEnded}
	got := f.pub.kinds()
	if len(got) != len(want) {
		t.Fatalf("expected events %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected events %v, got %v", want, got)
		}
	}
}

func TestStake_RoundTrip(t *testing.T) {
	f := newFixture(t)
	h := f.createHouse(t, house.Config{})
	req := campaignRequest(h, "Stake Cup")
	req.TokenConfig = &campaign.TokenConfig{SpendingMint: spendMint, SpendingMintDecimals: 2, EnergyPrice: 7, Use: campaign.TokenUseStake}
	c := f.createCampaign(t, req)
	p := wallet(1)
	f.seed(t, ledger.NewAccount(p, spendMint), 100)

	const games = 3
	for i := 0; i < games; i++ {
		resp := f.start(t, p, c.ID)
		if resp.Player.Stake == nil || resp.Player.Stake.Amount != uint64(i+1)*7 {
			t.Fatalf("game %d: unexpected stake %+v", i, resp.Player.Stake)
		}
		if i == games-1 {
			_, err := f.svc.ClaimStake(f.ctx, &game.PlayerRequest{Caller: p, Campaign: c.ID})
			if !errors.Is(err, player.ErrInGame) {
				t.Fatalf("expected ErrInGame while claiming mid-session, got %v", err)
			}
		}
		f.end(t, p, c.ID, 0)
	}
	if got := f.balance(t, ledger.NewAccount(c.DepositVault(), spendMint)); got != games*7 {
		t.Fatalf("expected deposit vault %d, got %d", games*7, got)
	}

	if err := f.svc.ClosePlayer(f.ctx, &game.PlayerRequest{Caller: p, Campaign: c.ID}); !errors.Is(err, player.ErrStakeOutstanding) {
		t.Fatalf("expected ErrStakeOutstanding, got %v", err)
	}

	// Stake-mode deposits survive campaign close.
	f.advance(2 * 24 * time.Hour)
	if _, err := f.svc.CloseCampaign(f.ctx, &game.CampaignRequest{Caller: adminKey, Campaign: c.ID}); err != nil {
		t.Fatalf("close campaign failed: %v", err)
	}

	resp, err := f.svc.ClaimStake(f.ctx, &game.PlayerRequest{Caller: p, Campaign: c.ID})
	if err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if resp.Amount != games*7 || resp.Mint != spendMint || resp.AmountDisplay != "0.21" {
		t.Fatalf("unexpected claim %+v", resp)
	}
	if got := f.balance(t, ledger.NewAccount(p, spendMint)); got != 100 {
		t.Fatalf("expected player balance restored to 100, got %d", got)
	}
	stored, err := f.store.GetPlayer(f.ctx, c.ID, p)
	if err != nil {
		t.Fatalf("get player failed: %v", err)
	}
	if stored.Stake != nil {
		t.Fatalf("expected stake cleared, got %+v", stored.Stake)
	}

	if _, err := f.svc.ClaimStake(f.ctx, &game.PlayerRequest{Caller: p, Campaign: c.ID}); !errors.Is(err, player.ErrNoStake) {
		t.Fatalf("expected ErrNoStake on second claim, got %v", err)
	}
	if _, err := f.svc.ClaimStake(f.ctx, &game.PlayerRequest{Caller: wallet(2), Campaign: c.ID}); !errors.Is(err, player.ErrNoStake) {
		t.Fatalf("expected ErrNoStake for unknown player, got %v", err)
	}

	if err := f.svc.ClosePlayer(f.ctx, &game.PlayerRequest{Caller: p, Campaign: c.ID}); err != nil {
		t.Fatalf("close player failed: %v", err)
	}
	if _, err := f.store.GetPlayer(f.ctx, c.ID, p); !errors.Is(err, clubstore.ErrNotFound) {
		t.Fatalf("expected player deleted, got %v", err)
	}
}

func TestClaimStake_SurvivesRebuiltPayCampaign(t *testing.T) {
	f := newFixture(t, WithForceClose(true))
	h := f.createHouse(t, house.Config{})

	stakeReq := campaignRequest(h, "Rebuilt Cup")
	stakeReq.TokenConfig = &campaign.TokenConfig{SpendingMint: spendMint, EnergyPrice: 7, Use: campaign.TokenUseStake}
	old := f.createCampaign(t, stakeReq)
	staker := wallet(1)
	f.seed(t, ledger.NewAccount(staker, spendMint), 7)
	f.start(t, staker, old.ID)
	f.end(t, staker, old.ID, 0)
	if _, err := f.svc.CloseCampaign(f.ctx, &game.CampaignRequest{Caller: adminKey, Campaign: old.ID}); err != nil {
		t.Fatalf("close stake campaign failed: %v", err)
	}

	payReq := campaignRequest(h, "Rebuilt Cup")
	payReq.TokenConfig = &campaign.TokenConfig{SpendingMint: spendMint, EnergyPrice: 5, Use: campaign.TokenUsePay}
	rebuilt := f.createCampaign(t, payReq)
	if rebuilt.ID != old.ID {
		t.Fatalf("expected the same campaign key, got %s and %s", rebuilt.ID.Hex(), old.ID.Hex())
	}
	if rebuilt.DepositVault() == old.DepositVault() {
		t.Fatal("rebuilt campaign must not share the old generation's deposit vault")
	}
	payer := wallet(2)
	f.seed(t, ledger.NewAccount(payer, spendMint), 5)
	f.start(t, payer, rebuilt.ID)
	f.end(t, payer, rebuilt.ID, 0)

	resp, err := f.svc.CloseCampaign(f.ctx, &game.CampaignRequest{Caller: adminKey, Campaign: rebuilt.ID})
	if err != nil {
		t.Fatalf("close pay campaign failed: %v", err)
	}
	if resp.Deposits != 5 {
		t.Fatalf("expected only the pay deposit swept, got %d", resp.Deposits)
	}
	if got := f.balance(t, ledger.NewAccount(adminKey, spendMint)); got != 5 {
		t.Fatalf("expected creator spend balance 5, got %d", got)
	}

	claim, err := f.svc.ClaimStake(f.ctx, &game.PlayerRequest{Caller: staker, Campaign: old.ID})
	if err != nil {
		t.Fatalf("claim of earlier-generation stake failed: %v", err)
	}
	if claim.Amount != 7 {
		t.Fatalf("expected stake 7 refunded, got %d", claim.Amount)
	}
	if got := f.balance(t, ledger.NewAccount(staker, spendMint)); got != 7 {
		t.Fatalf("expected staker balance 7, got %d", got)
	}
}

func TestStartGame_BurnAndPayModes(t *testing.T) {
	f := newFixture(t)
	h := f.createHouse(t, house.Config{})

	burn := campaignRequest(h, "Burn Cup")
	burn.TokenConfig = &campaign.TokenConfig{SpendingMint: spendMint, EnergyPrice: 4, Use: campaign.TokenUseBurn}
	cb := f.createCampaign(t, burn)

	pay := campaignRequest(h, "Pay Cup")
	pay.TokenConfig = &campaign.TokenConfig{SpendingMint: spendMint, EnergyPrice: 6, Use: campaign.TokenUsePay}
	cp := f.createCampaign(t, pay)

	p := wallet(1)
	f.seed(t, ledger.NewAccount(p, spendMint), 10)

	resp := f.start(t, p, cb.ID)
	if resp.Player.Stake != nil {
		t.Fatalf("burn mode must not track stake")
	}
	if got := f.balance(t, ledger.NewAccount(cb.DepositVault(), spendMint)); got != 0 {
		t.Fatalf("burn mode must not fill the deposit vault, got %d", got)
	}

	f.start(t, p, cp.ID)
	if got := f.balance(t, ledger.NewAccount(cp.DepositVault(), spendMint)); got != 6 {
		t.Fatalf("expected pay deposit 6, got %d", got)
	}
	if got := f.balance(t, ledger.NewAccount(p, spendMint)); got != 0 {
		t.Fatalf("expected player spend balance 0, got %d", got)
	}

	f.end(t, p, cb.ID, 0)
	_, err := f.svc.StartGame(f.ctx, &game.StartGameRequest{Caller: p, Campaign: cb.ID})
	if !errors.Is(err, ledger.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if got := f.campaign(t, cb.ID).ReservedRewards; got != 0 {
		t.Fatalf("failed start must not reserve, got %d", got)
	}
}

func TestStartGame_GatedEnergy(t *testing.T) {
	f := newFixture(t)
	h := f.createHouse(t, house.Config{})
	recharge := int64(10)
	req := campaignRequest(h, "Gated Cup")
	req.NFTConfig = &campaign.NFTConfig{Collection: gateCol, MaxPlayerEnergy: 2, EnergyRechargeMinutes: &recharge}
	// Gated players never pay the entry price.
	req.TokenConfig = &campaign.TokenConfig{SpendingMint: spendMint, EnergyPrice: 5, Use: campaign.TokenUsePay}
	c := f.createCampaign(t, req)

	holder := wallet(1)
	mint := common.HexToAddress("0x0000000000000000000000000000000000000d01")
	proofs := identity.Proofs{NFT: nftProof(holder, mint, gateCol)}

	if _, err := f.svc.StartGame(f.ctx, &game.StartGameRequest{Caller: holder, Campaign: c.ID}); !errors.Is(err, identity.ErrMissingProof) {
		t.Fatalf("expected ErrMissingProof, got %v", err)
	}
	foreign := identity.Proofs{NFT: nftProof(holder, mint, managerCol)}
	_, err := f.svc.StartGame(f.ctx, &game.StartGameRequest{Caller: holder, Campaign: c.ID, Proofs: foreign})
	if !errors.Is(err, identity.ErrCollectionMismatch) {
		t.Fatalf("expected ErrCollectionMismatch, got %v", err)
	}
	if !apperrors.Is(err, apperrors.CategoryForbidden) {
		t.Fatalf("expected forbidden category, got %v", err)
	}

	play := func(caller common.Address, pr identity.Proofs) (*game.SessionResponse, error) {
		resp, err := f.svc.StartGame(f.ctx, &game.StartGameRequest{Caller: caller, Campaign: c.ID, Proofs: pr})
		if err != nil {
			return nil, err
		}
		if _, err := f.svc.EndGame(f.ctx, &game.EndGameRequest{Caller: caller, Campaign: c.ID, Proofs: pr}); err != nil {
			t.Fatalf("end failed: %v", err)
		}
		return resp, nil
	}

	resp, err := play(holder, proofs)
	if err != nil {
		t.Fatalf("first game failed: %v", err)
	}
	if resp.Player.Identity != identity.NFT(mint) || resp.Player.Energy != 1 {
		t.Fatalf("unexpected player %+v", resp.Player)
	}
	if resp, err = play(holder, proofs); err != nil || resp.Player.Energy != 0 {
		t.Fatalf("second game: energy %v, err %v", resp, err)
	}
	if _, err := play(holder, proofs); !errors.Is(err, energy.ErrOutOfEnergy) {
		t.Fatalf("expected ErrOutOfEnergy, got %v", err)
	}

	// The record follows the NFT, not the wallet holding it.
	f.advance(10 * time.Minute)
	buyer := wallet(2)
	resp, err = play(buyer, identity.Proofs{NFT: nftProof(buyer, mint, gateCol)})
	if err != nil {
		t.Fatalf("game after transfer failed: %v", err)
	}
	if resp.Player.Energy != 0 {
		t.Fatalf("expected one recharged unit to be spent, energy %d", resp.Player.Energy)
	}
	if got := f.campaign(t, c.ID).PlayerCount; got != 1 {
		t.Fatalf("expected one player record, got %d", got)
	}
	if got := f.balance(t, ledger.NewAccount(c.DepositVault(), spendMint)); got != 0 {
		t.Fatalf("gated players must not be charged, got %d", got)
	}

	_, err = f.svc.StartGame(f.ctx, &game.StartGameRequest{Caller: buyer, Campaign: c.ID, Proofs: identity.Proofs{NFT: nftProof(holder, mint, gateCol)}})
	if !errors.Is(err, identity.ErrTokenOwnerMismatch) {
		t.Fatalf("expected ErrTokenOwnerMismatch, got %v", err)
	}
}

func TestEndGame_OracleAndClaimFees(t *testing.T) {
	f := newFixture(t)
	h := f.createHouse(t, house.Config{OracleKey: oracleKey, ClaimFee: 10})
	req := campaignRequest(h, "Oracle Cup")
	req.RewardsClaimFee = 3
	c := f.createCampaign(t, req)
	p := wallet(1)
	f.seed(t, ledger.Native(p), 13)

	f.start(t, p, c.ID)

	wrong := strangerKey
	for _, oracle := range []*common.Address{nil, &wrong} {
		_, err := f.svc.EndGame(f.ctx, &game.EndGameRequest{Caller: p, Campaign: c.ID, AmountWon: 50, Oracle: oracle})
		if !errors.Is(err, ErrOracleMismatch) {
			t.Fatalf("expected ErrOracleMismatch for %v, got %v", oracle, err)
		}
	}

	signer := oracleKey
	resp, err := f.svc.EndGame(f.ctx, &game.EndGameRequest{Caller: p, Campaign: c.ID, AmountWon: 50, Oracle: &signer})
	if err != nil {
		t.Fatalf("end failed: %v", err)
	}
	if resp.AmountWonDisplay != "0.00005" {
		t.Fatalf("unexpected display %q", resp.AmountWonDisplay)
	}
	if got := f.balance(t, ledger.Native(h.Vault())); got != 10 {
		t.Fatalf("expected house claim fee 10, got %d", got)
	}
	if got := f.balance(t, ledger.Native(c.Authority())); got != 3 {
		t.Fatalf("expected campaign claim fee 3, got %d", got)
	}
	if got := f.house(t, h.ID).UnclaimedNativeFees; got != 10 {
		t.Fatalf("expected house unclaimed native 10, got %d", got)
	}
	if got := f.campaign(t, c.ID).UnclaimedNativeFees; got != 3 {
		t.Fatalf("expected campaign unclaimed native 3, got %d", got)
	}

	// Winning without native value for the fees aborts the settlement.
	f.start(t, p, c.ID)
	_, err = f.svc.EndGame(f.ctx, &game.EndGameRequest{Caller: p, Campaign: c.ID, AmountWon: 1, Oracle: &signer})
	if !errors.Is(err, ledger.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if got := f.balance(t, ledger.NewAccount(p, rewardMint)); got != 50 {
		t.Fatalf("aborted settlement must not pay, balance %d", got)
	}
}

func TestEndGame_UnexpectedOracle(t *testing.T) {
	f := newFixture(t)
	h := f.createHouse(t, house.Config{})
	c := f.createCampaign(t, campaignRequest(h, "Weekly Cup"))
	p := wallet(1)
	f.start(t, p, c.ID)

	signer := oracleKey
	if _, err := f.svc.EndGame(f.ctx, &game.EndGameRequest{Caller: p, Campaign: c.ID, Oracle: &signer}); !errors.Is(err, ErrOracleMismatch) {
		t.Fatalf("expected ErrOracleMismatch, got %v", err)
	}
}

func TestStartGame_RegeneratesStaleRecord(t *testing.T) {
	f := newFixture(t)
	h := f.createHouse(t, house.Config{})
	c := f.createCampaign(t, campaignRequest(h, "Weekly Cup"))
	p := wallet(1)
	f.start(t, p, c.ID)
	f.end(t, p, c.ID, 0)

	f.advance(2 * 24 * time.Hour)
	if _, err := f.svc.CloseCampaign(f.ctx, &game.CampaignRequest{Caller: adminKey, Campaign: c.ID}); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	req := campaignRequest(h, "Weekly Cup")
	req.TimeSpan = campaign.TimeSpan{Start: f.now.Unix(), End: f.now.Unix() + 86_400}
	next := f.createCampaign(t, req)
	if next.ID != c.ID || next.Generation == c.Generation {
		t.Fatalf("expected same id with a new generation")
	}

	resp := f.start(t, p, next.ID)
	if resp.Player.CampaignGeneration != next.Generation || resp.Player.GamesPlayed != 0 {
		t.Fatalf("expected a fresh record, got %+v", resp.Player)
	}
	if got := f.campaign(t, next.ID).PlayerCount; got != 1 {
		t.Fatalf("expected player count 1, got %d", got)
	}
}

func TestStartGame_StaleStakeBlocksRegeneration(t *testing.T) {
	f := newFixture(t)
	h := f.createHouse(t, house.Config{})
	req := campaignRequest(h, "Stake Cup")
	req.TokenConfig = &campaign.TokenConfig{SpendingMint: spendMint, EnergyPrice: 7, Use: campaign.TokenUseStake}
	c := f.createCampaign(t, req)
	p := wallet(1)
	f.seed(t, ledger.NewAccount(p, spendMint), 7)
	f.start(t, p, c.ID)
	f.end(t, p, c.ID, 0)

	f.advance(2 * 24 * time.Hour)
	if _, err := f.svc.CloseCampaign(f.ctx, &game.CampaignRequest{Caller: adminKey, Campaign: c.ID}); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	req.TimeSpan = campaign.TimeSpan{Start: f.now.Unix(), End: f.now.Unix() + 86_400}
	next := f.createCampaign(t, req)

	_, err := f.svc.StartGame(f.ctx, &game.StartGameRequest{Caller: p, Campaign: next.ID})
	if !errors.Is(err, player.ErrStakeOutstanding) {
		t.Fatalf("expected ErrStakeOutstanding, got %v", err)
	}
}

func TestStartGame_LedgerFailureLeavesNoTrace(t *testing.T) {
	l := ledgermocks.NewLedger(t)
	f := newFixtureWithStore(t, clubstore.NewMemoryStore(clubstore.WithLedger(l)))
	h := f.createHouse(t, house.Config{})

	// Creation fee and reward fund.
	l.EXPECT().Transfer(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(2)
	req := campaignRequest(h, "Pay Cup")
	req.TokenConfig = &campaign.TokenConfig{SpendingMint: spendMint, EnergyPrice: 6, Use: campaign.TokenUsePay}
	c, err := f.svc.CreateCampaign(f.ctx, req)
	if err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}

	p := wallet(1)
	l.EXPECT().
		Transfer(mock.Anything, uint64(6), ledger.NewAccount(p, spendMint), c.DepositVault(), p).
		Return(errors.New("ledger unavailable")).
		Once()

	_, err = f.svc.StartGame(f.ctx, &game.StartGameRequest{Caller: p, Campaign: c.ID})
	if err == nil {
		t.Fatalf("expected start to fail")
	}
	if !apperrors.IsInternalError(err) {
		t.Fatalf("expected internal error, got %v", err)
	}

	stored := f.campaign(t, c.ID)
	if stored.ReservedRewards != 0 || stored.ActiveGames != 0 || stored.PlayerCount != 0 {
		t.Fatalf("failed start leaked state %+v", stored)
	}
	if _, err := f.store.GetPlayer(f.ctx, c.ID, p); !errors.Is(err, clubstore.ErrNotFound) {
		t.Fatalf("failed start must not create a player, got %v", err)
	}
	for _, kind := range f.pub.kinds() {
		if kind == game.EventGameStarted {
			t.Fatalf("failed start must not publish")
		}
	}
}

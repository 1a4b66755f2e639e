package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ZenRepublic/Clubhouse/internal/checked"
	"github.com/ZenRepublic/Clubhouse/internal/metrics"
	"github.com/ZenRepublic/Clubhouse/pkg/campaign"
	"github.com/ZenRepublic/Clubhouse/pkg/clubstore"
	"github.com/ZenRepublic/Clubhouse/pkg/game"
	"github.com/ZenRepublic/Clubhouse/pkg/house"
	"github.com/ZenRepublic/Clubhouse/pkg/identity"
	"github.com/ZenRepublic/Clubhouse/pkg/keys"
	"github.com/ZenRepublic/Clubhouse/pkg/ledger"
	"github.com/ZenRepublic/Clubhouse/pkg/names"
	"github.com/ZenRepublic/Clubhouse/pkg/player"
)

// energyPerGame is the energy a gated identity spends to open a session.
const energyPerGame = 1

var (
	ErrNotProgramAuthority = errors.New("caller is not the program authority")
	ErrNotProgramAdmin     = errors.New("caller is not a program admin")
	ErrNotHouseAdmin       = errors.New("caller is not the house admin or a campaign manager")
	ErrNotCreator          = errors.New("caller is not the campaign creator")
	ErrOracleMismatch      = errors.New("oracle signature does not match the configured oracle")
	ErrAmountTooHigh       = errors.New("amount won exceeds max rewards per game")
	ErrInvalidAdmin        = errors.New("admin address required")
)

// Publisher receives events after their operation commits.
type Publisher interface {
	Publish(ev game.Event)
}

// Service defines the clubhouse game economy operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	AddProgramAdmin(ctx context.Context, req *game.ProgramAdminRequest) error
	RemoveProgramAdmin(ctx context.Context, req *game.ProgramAdminRequest) error

	CreateHouse(ctx context.Context, req *game.CreateHouseRequest) (*house.House, error)
	UpdateHouse(ctx context.Context, req *game.UpdateHouseRequest) (*house.House, error)
	WithdrawHouseFees(ctx context.Context, req *game.HouseRequest) (*game.WithdrawResponse, error)
	CloseHouse(ctx context.Context, req *game.HouseRequest) (*game.WithdrawResponse, error)

	CreateCampaign(ctx context.Context, req *game.CreateCampaignRequest) (*campaign.Campaign, error)
	CloseCampaign(ctx context.Context, req *game.CampaignRequest) (*game.CloseCampaignResponse, error)

	StartGame(ctx context.Context, req *game.StartGameRequest) (*game.SessionResponse, error)
	EndGame(ctx context.Context, req *game.EndGameRequest) (*game.SessionResponse, error)
	ClaimStake(ctx context.Context, req *game.PlayerRequest) (*game.ClaimStakeResponse, error)
	ClosePlayer(ctx context.Context, req *game.PlayerRequest) error

	GetHouse(ctx context.Context, id common.Address) (*game.HouseView, error)
	GetCampaign(ctx context.Context, id common.Address) (*game.CampaignView, error)
	GetPlayer(ctx context.Context, campaignID, identityKey common.Address) (*player.Player, error)
}

type gameService struct {
	store            clubstore.Store
	logger           *zap.Logger
	validate         *validator.Validate
	clock            func() time.Time
	publisher        Publisher
	programAuthority common.Address
	forceClose       bool
	minNativeReserve uint64
}

// Option configures the game service.
type Option func(*gameService)

// WithClock replaces the wall clock. It is read once per operation.
func WithClock(clock func() time.Time) Option {
	return func(s *gameService) { s.clock = clock }
}

// WithPublisher broadcasts committed events to p.
func WithPublisher(p Publisher) Option {
	return func(s *gameService) { s.publisher = p }
}

// WithForceClose lets creators close campaigns inside their active window.
func WithForceClose(force bool) Option {
	return func(s *gameService) { s.forceClose = force }
}

// WithMinNativeReserve keeps reserve native units in a house vault on withdrawal.
func WithMinNativeReserve(reserve uint64) Option {
	return func(s *gameService) { s.minNativeReserve = reserve }
}

// NewService creates a new game service. programAuthority is the only key
// allowed to manage program admins.
func NewService(store clubstore.Store, programAuthority common.Address, logger *zap.Logger, opts ...Option) Service {
	s := &gameService{
		store:            store,
		logger:           logger,
		validate:         names.NewValidator(),
		clock:            time.Now,
		programAuthority: programAuthority,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *gameService) publish(ev game.Event) {
	if s.publisher != nil {
		s.publisher.Publish(ev)
	}
}

// AddProgramAdmin grants req.Admin the right to create houses
func (s *gameService) AddProgramAdmin(ctx context.Context, req *game.ProgramAdminRequest) error {
	if err := s.checkProgramAuthority(req); err != nil {
		return classify(err)
	}
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx clubstore.Tx) error {
		return tx.CreateProgramAdmin(ctx, req.Admin)
	})
	return classify(err)
}

// RemoveProgramAdmin revokes req.Admin. Existing houses are unaffected.
func (s *gameService) RemoveProgramAdmin(ctx context.Context, req *game.ProgramAdminRequest) error {
	if err := s.checkProgramAuthority(req); err != nil {
		return classify(err)
	}
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx clubstore.Tx) error {
		return tx.DeleteProgramAdmin(ctx, req.Admin)
	})
	return classify(err)
}

func (s *gameService) checkProgramAuthority(req *game.ProgramAdminRequest) error {
	if req.Caller != s.programAuthority {
		return ErrNotProgramAuthority
	}
	if keys.IsZero(req.Admin) {
		return ErrInvalidAdmin
	}
	return nil
}

// CreateHouse registers a house. The caller must be a program admin.
func (s *gameService) CreateHouse(ctx context.Context, req *game.CreateHouseRequest) (*house.House, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, classify(err)
	}
	now := s.clock()

	admin := req.Admin
	if keys.IsZero(admin) {
		admin = req.Caller
	}
	h, err := house.New(admin, req.ManagerCollection, req.Currency, req.CurrencyDecimals, req.Config, req.Name, now)
	if err != nil {
		return nil, classify(err)
	}

	err = s.store.RunInTx(ctx, func(ctx context.Context, tx clubstore.Tx) error {
		ok, err := tx.ProgramAdminExists(ctx, req.Caller)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotProgramAdmin
		}
		return tx.CreateHouse(ctx, h)
	})
	if err != nil {
		return nil, classify(err)
	}
	return h, nil
}

// UpdateHouse replaces the fee configuration. Campaigns keep their snapshot.
func (s *gameService) UpdateHouse(ctx context.Context, req *game.UpdateHouseRequest) (*house.House, error) {
	var out *house.House
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx clubstore.Tx) error {
		h, err := s.lockAdminHouse(ctx, tx, req.House, req.Caller)
		if err != nil {
			return err
		}
		if err := h.UpdateConfig(req.Config); err != nil {
			return err
		}
		if err := tx.UpdateHouse(ctx, h); err != nil {
			return err
		}
		out = h
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// WithdrawHouseFees sweeps the house vault to the admin, keeping the native reserve.
func (s *gameService) WithdrawHouseFees(ctx context.Context, req *game.HouseRequest) (*game.WithdrawResponse, error) {
	var out *game.WithdrawResponse
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx clubstore.Tx) error {
		h, err := s.lockAdminHouse(ctx, tx, req.House, req.Caller)
		if err != nil {
			return err
		}
		out, err = s.sweepHouse(ctx, tx, h, s.minNativeReserve)
		if err != nil {
			return err
		}
		return tx.UpdateHouse(ctx, h)
	})
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// CloseHouse deactivates a house with no open campaigns and empties its vault.
func (s *gameService) CloseHouse(ctx context.Context, req *game.HouseRequest) (*game.WithdrawResponse, error) {
	var out *game.WithdrawResponse
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx clubstore.Tx) error {
		h, err := s.lockAdminHouse(ctx, tx, req.House, req.Caller)
		if err != nil {
			return err
		}
		if err := h.Close(); err != nil {
			return err
		}
		out, err = s.sweepHouse(ctx, tx, h, 0)
		if err != nil {
			return err
		}
		return tx.UpdateHouse(ctx, h)
	})
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (s *gameService) lockAdminHouse(ctx context.Context, tx clubstore.Tx, id, caller common.Address) (*house.House, error) {
	h, err := tx.LockHouse(ctx, id)
	if err != nil {
		return nil, err
	}
	if !h.IsAdmin(caller) {
		return nil, house.ErrNotAdmin
	}
	return h, nil
}

// sweepHouse moves the vault's currency and native balance above reserve to
// the admin and clears the fee counters.
func (s *gameService) sweepHouse(ctx context.Context, tx clubstore.Tx, h *house.House, reserve uint64) (*game.WithdrawResponse, error) {
	vault := h.Vault()
	out := &game.WithdrawResponse{House: h.ID}

	currency := ledger.NewAccount(vault, h.Currency)
	if !currency.IsNative() {
		amount, err := sweep(ctx, tx, currency, h.Admin, 0)
		if err != nil {
			return nil, err
		}
		out.Currency = amount
	}
	out.CurrencyDisplay = ledger.FormatAmount(out.Currency, h.CurrencyDecimals)

	native, err := sweep(ctx, tx, ledger.Native(vault), h.Admin, reserve)
	if err != nil {
		return nil, err
	}
	out.Native = native

	h.ClearFees()
	return out, nil
}

// sweep transfers from's balance above reserve to the owner of to.
func sweep(ctx context.Context, tx clubstore.Tx, from ledger.Account, to common.Address, reserve uint64) (uint64, error) {
	balance, err := tx.Balance(ctx, from)
	if err != nil {
		return 0, err
	}
	amount := checked.SaturatingSub(balance, reserve)
	if amount == 0 {
		return 0, nil
	}
	if err := tx.Transfer(ctx, amount, from, to, from.Owner); err != nil {
		return 0, err
	}
	return amount, nil
}

// CreateCampaign charges the creation fee and escrows the reward fund.
func (s *gameService) CreateCampaign(ctx context.Context, req *game.CreateCampaignRequest) (*campaign.Campaign, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, classify(err)
	}
	now := s.clock()

	var out *campaign.Campaign
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx clubstore.Tx) error {
		h, err := tx.LockHouse(ctx, req.House)
		if err != nil {
			return err
		}
		if !h.Active {
			return house.ErrInactive
		}
		manager, err := creatorRole(h, req)
		if err != nil {
			return err
		}

		c, err := campaign.New(h, req.Caller, req.Params(), now)
		if err != nil {
			return err
		}

		fee := h.CreationFee(manager)
		if err := tx.Transfer(ctx, fee, ledger.NewAccount(req.Caller, h.Currency), h.Vault(), req.Caller); err != nil {
			return fmt.Errorf("creation fee: %w", err)
		}
		if err := h.AccrueCurrencyFee(fee); err != nil {
			return err
		}
		if err := tx.Transfer(ctx, req.FundAmount, ledger.NewAccount(req.Caller, req.RewardMint), c.RewardVault(), req.Caller); err != nil {
			return fmt.Errorf("reward fund: %w", err)
		}
		if err := h.AddCampaign(); err != nil {
			return err
		}
		if err := tx.CreateCampaign(ctx, c); err != nil {
			return err
		}
		if err := tx.UpdateHouse(ctx, h); err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	s.publish(campaignEvent(game.EventCampaignCreated, out, nil, 0, now))
	return out, nil
}

// creatorRole reports whether the caller creates as a manager-credential
// holder rather than as the house admin.
func creatorRole(h *house.House, req *game.CreateCampaignRequest) (bool, error) {
	if h.IsAdmin(req.Caller) {
		return false, nil
	}
	if req.ManagerProof == nil || h.ManagerCollection == nil {
		return false, ErrNotHouseAdmin
	}
	if err := identity.VerifyNFT(*h.ManagerCollection, req.Caller, req.ManagerProof); err != nil {
		return false, err
	}
	return true, nil
}

// CloseCampaign returns the remaining pool, Pay-mode deposits and native fees
// to the creator and removes the campaign. Stake-mode deposits stay claimable.
func (s *gameService) CloseCampaign(ctx context.Context, req *game.CampaignRequest) (*game.CloseCampaignResponse, error) {
	now := s.clock()
	current, err := s.store.GetCampaign(ctx, req.Campaign)
	if err != nil {
		return nil, classify(err)
	}

	var (
		out    *game.CloseCampaignResponse
		closed *campaign.Campaign
	)
	err = s.store.RunInTx(ctx, func(ctx context.Context, tx clubstore.Tx) error {
		h, err := tx.LockHouse(ctx, current.House)
		if err != nil {
			return err
		}
		c, err := tx.LockCampaign(ctx, req.Campaign)
		if err != nil {
			return err
		}
		if c.Creator != req.Caller {
			return ErrNotCreator
		}
		if err := c.CanClose(now.Unix(), s.forceClose); err != nil {
			return err
		}

		resp := &game.CloseCampaignResponse{Campaign: c.ID}
		if resp.Rewards, err = sweep(ctx, tx, ledger.NewAccount(c.RewardVault(), c.RewardMint), c.Creator, 0); err != nil {
			return err
		}
		if c.TokenConfig != nil && c.TokenConfig.Use == campaign.TokenUsePay {
			if resp.Deposits, err = sweep(ctx, tx, ledger.NewAccount(c.DepositVault(), c.TokenConfig.SpendingMint), c.Creator, 0); err != nil {
				return err
			}
		}
		if resp.Native, err = sweep(ctx, tx, ledger.Native(c.Authority()), c.Creator, 0); err != nil {
			return err
		}

		if err := h.RemoveCampaign(); err != nil {
			return err
		}
		if err := tx.UpdateHouse(ctx, h); err != nil {
			return err
		}
		if err := tx.DeleteCampaign(ctx, c.ID); err != nil {
			return err
		}
		out, closed = resp, c
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	s.publish(campaignEvent(game.EventCampaignClosed, closed, nil, out.Rewards, now))
	return out, nil
}

// StartGame opens a session: recharge, spend energy or the entry price,
// reserve the worst-case payout and mark the player in game.
func (s *gameService) StartGame(ctx context.Context, req *game.StartGameRequest) (*game.SessionResponse, error) {
	now := s.clock()
	current, err := s.store.GetCampaign(ctx, req.Campaign)
	if err != nil {
		return nil, classify(err)
	}

	var (
		out     *game.SessionResponse
		started *campaign.Campaign
	)
	err = s.store.RunInTx(ctx, func(ctx context.Context, tx clubstore.Tx) error {
		h, err := tx.LockHouse(ctx, current.House)
		if err != nil {
			return err
		}
		c, err := tx.LockCampaign(ctx, req.Campaign)
		if err != nil {
			return err
		}
		if c.TimeSpan.Expired(now.Unix()) {
			return campaign.ErrExpired
		}

		id, err := identity.Resolve(c.GatingCollection(), req.Caller, req.Proofs)
		if err != nil {
			return err
		}
		p, err := s.loadOrCreatePlayer(ctx, tx, h, c, id, now.Unix())
		if err != nil {
			return err
		}
		if p.InGame {
			return player.ErrInGame
		}

		if err := p.Recharge(c, now.Unix()); err != nil {
			return err
		}
		if err := p.SpendEnergy(energyPerGame); err != nil {
			return err
		}
		if err := chargeEntry(ctx, tx, c, p, req.Caller); err != nil {
			return err
		}
		if err := c.Reserve(c.MaxRewardsPerGame); err != nil {
			return err
		}
		if err := p.Begin(now.Unix()); err != nil {
			return err
		}
		if err := c.OpenGame(); err != nil {
			return err
		}
		if err := c.CheckSolvency(); err != nil {
			return err
		}

		if err := tx.SavePlayer(ctx, p); err != nil {
			return err
		}
		if err := tx.UpdateCampaign(ctx, c); err != nil {
			return err
		}
		if err := tx.UpdateHouse(ctx, h); err != nil {
			return err
		}
		out, started = sessionResponse(c, p, 0), c
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	metrics.GamesStarted.WithLabelValues(out.Player.Identity.Kind.String()).Inc()
	s.publish(campaignEvent(game.EventGameStarted, started, &out.Player.Identity, 0, now))
	return out, nil
}

// loadOrCreatePlayer returns the player record for id in c, creating it or
// rebinding a record from a previous campaign generation as needed.
func (s *gameService) loadOrCreatePlayer(
	ctx context.Context,
	tx clubstore.Tx,
	h *house.House,
	c *campaign.Campaign,
	id identity.Identity,
	now int64,
) (*player.Player, error) {
	p, err := tx.LockPlayer(ctx, c.ID, id.Key)
	switch {
	case errors.Is(err, clubstore.ErrNotFound):
		p, err = player.New(c, id, now)
	case err != nil:
		return nil, err
	case !p.Current(c):
		s.logger.Debug("Regenerating player record",
			zap.String("campaign", c.ID.Hex()),
			zap.String("identity", id.String()),
			zap.String("stale_generation", p.CampaignGeneration.String()),
		)
		p, err = player.Regenerate(p, c, id, now)
	default:
		return p, p.Matches(id)
	}
	if err != nil {
		return nil, err
	}
	if err := c.AddPlayer(); err != nil {
		return nil, err
	}
	if err := h.AddPlayer(); err != nil {
		return nil, err
	}
	return p, nil
}

// chargeEntry collects the entry price from plain account players.
func chargeEntry(ctx context.Context, tx clubstore.Tx, c *campaign.Campaign, p *player.Player, caller common.Address) error {
	tc := c.TokenConfig
	if tc == nil || p.Identity.Kind != identity.KindUser {
		return nil
	}
	from := ledger.NewAccount(caller, tc.SpendingMint)
	switch tc.Use {
	case campaign.TokenUsePay:
		return tx.Transfer(ctx, tc.EnergyPrice, from, c.DepositVault(), caller)
	case campaign.TokenUseStake:
		if err := tx.Transfer(ctx, tc.EnergyPrice, from, c.DepositVault(), caller); err != nil {
			return err
		}
		return p.AddStake(c, tc.EnergyPrice)
	case campaign.TokenUseBurn:
		return tx.Burn(ctx, tc.EnergyPrice, from, caller)
	default:
		return fmt.Errorf("%w: unknown token use %q", campaign.ErrInvalidConfig, tc.Use)
	}
}

// EndGame settles the caller's open session, paying amount won from the pool.
func (s *gameService) EndGame(ctx context.Context, req *game.EndGameRequest) (*game.SessionResponse, error) {
	now := s.clock()
	current, err := s.store.GetCampaign(ctx, req.Campaign)
	if err != nil {
		return nil, classify(err)
	}

	var (
		out   *game.SessionResponse
		ended *campaign.Campaign
	)
	err = s.store.RunInTx(ctx, func(ctx context.Context, tx clubstore.Tx) error {
		h, err := tx.LockHouse(ctx, current.House)
		if err != nil {
			return err
		}
		c, err := tx.LockCampaign(ctx, req.Campaign)
		if err != nil {
			return err
		}

		id, err := identity.Resolve(c.GatingCollection(), req.Caller, req.Proofs)
		if err != nil {
			return err
		}
		p, err := tx.LockPlayer(ctx, c.ID, id.Key)
		if errors.Is(err, clubstore.ErrNotFound) {
			return player.ErrNotInGame
		}
		if err != nil {
			return err
		}
		if !p.Current(c) {
			return player.ErrNotInGame
		}
		if err := p.Matches(id); err != nil {
			return err
		}
		if !p.InGame {
			return player.ErrNotInGame
		}
		if err := checkOracle(c.HouseConfigSnapshot, req.Oracle); err != nil {
			return err
		}

		won := req.AmountWon
		if won > 0 {
			if err := payout(ctx, tx, h, c, req.Caller, won); err != nil {
				return err
			}
		}

		c.Release(c.MaxRewardsPerGame)
		if err := c.Settle(won); err != nil {
			return err
		}
		if err := p.Finish(won); err != nil {
			return err
		}
		if err := c.CloseGame(); err != nil {
			return err
		}
		if err := h.RecordGame(); err != nil {
			return err
		}
		if err := c.CheckSolvency(); err != nil {
			return err
		}

		if err := tx.SavePlayer(ctx, p); err != nil {
			return err
		}
		if err := tx.UpdateCampaign(ctx, c); err != nil {
			return err
		}
		if err := tx.UpdateHouse(ctx, h); err != nil {
			return err
		}
		out, ended = sessionResponse(c, p, won), c
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	if out.AmountWon > 0 {
		metrics.GamesEnded.WithLabelValues("won").Inc()
		metrics.RewardsPaid.Observe(float64(out.AmountWon))
	} else {
		metrics.GamesEnded.WithLabelValues("lost").Inc()
	}
	s.publish(campaignEvent(game.EventGameEnded, ended, &out.Player.Identity, out.AmountWon, now))
	return out, nil
}

// checkOracle requires the snapshot oracle's co-signature when one is
// configured and rejects a co-signer when none is.
func checkOracle(cfg house.Config, oracle *common.Address) error {
	if !cfg.HasOracle() {
		if oracle != nil {
			return ErrOracleMismatch
		}
		return nil
	}
	if oracle == nil || *oracle != cfg.OracleKey {
		return ErrOracleMismatch
	}
	return nil
}

// payout transfers won from the reward vault to the caller and charges the
// house and campaign claim fees in native value.
func payout(ctx context.Context, tx clubstore.Tx, h *house.House, c *campaign.Campaign, caller common.Address, won uint64) error {
	if won > c.MaxRewardsPerGame {
		return ErrAmountTooHigh
	}
	vault := c.RewardVault()
	if err := tx.Transfer(ctx, won, ledger.NewAccount(vault, c.RewardMint), caller, vault); err != nil {
		return fmt.Errorf("reward payout: %w", err)
	}
	if fee := c.HouseConfigSnapshot.ClaimFee; fee > 0 {
		if err := tx.Transfer(ctx, fee, ledger.Native(caller), h.Vault(), caller); err != nil {
			return fmt.Errorf("house claim fee: %w", err)
		}
		if err := h.AccrueNativeFee(fee); err != nil {
			return err
		}
	}
	if fee := c.RewardsClaimFee; fee > 0 {
		if err := tx.Transfer(ctx, fee, ledger.Native(caller), c.Authority(), caller); err != nil {
			return fmt.Errorf("campaign claim fee: %w", err)
		}
		if err := c.AccrueClaimFee(fee); err != nil {
			return err
		}
	}
	return nil
}

// ClaimStake returns the caller's accumulated stake from the deposit vault.
// It does not need the campaign record, so stakes stay claimable after close.
func (s *gameService) ClaimStake(ctx context.Context, req *game.PlayerRequest) (*game.ClaimStakeResponse, error) {
	now := s.clock()
	var (
		out *game.ClaimStakeResponse
		id  identity.Identity
	)
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx clubstore.Tx) error {
		p, err := lockOwnedPlayer(ctx, tx, req)
		if errors.Is(err, clubstore.ErrNotFound) {
			return player.ErrNoStake
		}
		if err != nil {
			return err
		}
		stake, err := p.TakeStake()
		if err != nil {
			return err
		}
		vault := stake.Vault
		if keys.IsZero(vault) {
			vault = keys.DepositVault(p.Campaign, p.CampaignGeneration)
		}
		if stake.Amount > 0 {
			if err := tx.Transfer(ctx, stake.Amount, ledger.NewAccount(vault, stake.StakedMint), req.Caller, vault); err != nil {
				return fmt.Errorf("stake refund: %w", err)
			}
		}
		if err := tx.SavePlayer(ctx, p); err != nil {
			return err
		}
		out, id = game.NewClaimStakeResponse(p.Campaign, stake), p.Identity
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	metrics.StakesClaimed.Inc()
	s.publish(game.Event{Kind: game.EventStakeClaimed, Campaign: out.Campaign, Identity: &id, Amount: out.Amount, At: now})
	return out, nil
}

// ClosePlayer deletes the caller's player record once it holds no session or stake.
func (s *gameService) ClosePlayer(ctx context.Context, req *game.PlayerRequest) error {
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx clubstore.Tx) error {
		p, err := lockOwnedPlayer(ctx, tx, req)
		if err != nil {
			return err
		}
		if p.InGame {
			return player.ErrInGame
		}
		if p.Stake != nil && p.Stake.Amount > 0 {
			return player.ErrStakeOutstanding
		}
		return tx.DeletePlayer(ctx, p.Campaign, p.Identity.Key)
	})
	return classify(err)
}

// lockOwnedPlayer locks the record the proofs point at after checking the
// caller controls that identity.
func lockOwnedPlayer(ctx context.Context, tx clubstore.Tx, req *game.PlayerRequest) (*player.Player, error) {
	id, err := identity.Claimed(req.Caller, req.Proofs)
	if err != nil {
		return nil, err
	}
	if err := identity.Owns(id, req.Caller, req.Proofs); err != nil {
		return nil, err
	}
	p, err := tx.LockPlayer(ctx, req.Campaign, id.Key)
	if err != nil {
		return nil, err
	}
	if err := p.Matches(id); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *gameService) GetHouse(ctx context.Context, id common.Address) (*game.HouseView, error) {
	h, err := s.store.GetHouse(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	return game.NewHouseView(h), nil
}

func (s *gameService) GetCampaign(ctx context.Context, id common.Address) (*game.CampaignView, error) {
	now := s.clock()
	c, err := s.store.GetCampaign(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	return game.NewCampaignView(c, now.Unix()), nil
}

func (s *gameService) GetPlayer(ctx context.Context, campaignID, identityKey common.Address) (*player.Player, error) {
	p, err := s.store.GetPlayer(ctx, campaignID, identityKey)
	if err != nil {
		return nil, classify(err)
	}
	return p, nil
}

func sessionResponse(c *campaign.Campaign, p *player.Player, won uint64) *game.SessionResponse {
	return &game.SessionResponse{
		Player:           p,
		AmountWon:        won,
		AmountWonDisplay: ledger.FormatAmount(won, c.RewardMintDecimals),
		RewardsAvailable: c.RewardsAvailable,
		ReservedRewards:  c.ReservedRewards,
	}
}

func campaignEvent(kind game.EventKind, c *campaign.Campaign, id *identity.Identity, amount uint64, now time.Time) game.Event {
	return game.Event{
		Kind:             kind,
		House:            c.House,
		Campaign:         c.ID,
		Identity:         id,
		Amount:           amount,
		RewardsAvailable: c.RewardsAvailable,
		ReservedRewards:  c.ReservedRewards,
		ActiveGames:      c.ActiveGames,
		At:               now,
	}
}

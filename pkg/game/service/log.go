package service

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/ZenRepublic/Clubhouse/internal/metrics"
	"github.com/ZenRepublic/Clubhouse/pkg/campaign"
	"github.com/ZenRepublic/Clubhouse/pkg/game"
	"github.com/ZenRepublic/Clubhouse/pkg/house"
	"github.com/ZenRepublic/Clubhouse/pkg/player"
)

const serviceName = "GameService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the game Service.
// It logs method entry/exit, duration and errors, and records operation metrics.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) started(method string, fields ...zap.Field) time.Time {
	ls.logger.Info(method+" started", append([]zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
	}, fields...)...)
	return time.Now()
}

func (ls *logService) finished(method string, start time.Time, err error, fields ...zap.Field) {
	duration := time.Since(start)
	metrics.OperationDuration.WithLabelValues(method).Observe(duration.Seconds())

	base := []zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", duration),
	}
	if err != nil {
		metrics.OperationsTotal.WithLabelValues(method, "failed").Inc()
		ls.logger.Error(method+" failed", append(base, zap.Error(err))...)
		return
	}
	metrics.OperationsTotal.WithLabelValues(method, "completed").Inc()
	ls.logger.Info(method+" completed", append(base, fields...)...)
}

// AddProgramAdmin wraps the service method with logging
func (ls *logService) AddProgramAdmin(ctx context.Context, req *game.ProgramAdminRequest) (err error) {
	start := ls.started("AddProgramAdmin", zap.String("caller", req.Caller.Hex()), zap.String("admin", req.Admin.Hex()))
	defer func() { ls.finished("AddProgramAdmin", start, err) }()

	return ls.svc.AddProgramAdmin(ctx, req)
}

// RemoveProgramAdmin wraps the service method with logging
func (ls *logService) RemoveProgramAdmin(ctx context.Context, req *game.ProgramAdminRequest) (err error) {
	start := ls.started("RemoveProgramAdmin", zap.String("caller", req.Caller.Hex()), zap.String("admin", req.Admin.Hex()))
	defer func() { ls.finished("RemoveProgramAdmin", start, err) }()

	return ls.svc.RemoveProgramAdmin(ctx, req)
}

// CreateHouse wraps the service method with logging
func (ls *logService) CreateHouse(ctx context.Context, req *game.CreateHouseRequest) (h *house.House, err error) {
	start := ls.started("CreateHouse",
		zap.String("caller", req.Caller.Hex()),
		zap.String("name", req.Name),
		zap.String("currency", req.Currency.Hex()),
	)
	defer func() {
		if err != nil {
			ls.finished("CreateHouse", start, err)
			return
		}
		ls.finished("CreateHouse", start, nil,
			zap.String("house", h.ID.Hex()),
			zap.String("admin", h.Admin.Hex()),
		)
	}()

	return ls.svc.CreateHouse(ctx, req)
}

// UpdateHouse wraps the service method with logging
func (ls *logService) UpdateHouse(ctx context.Context, req *game.UpdateHouseRequest) (h *house.House, err error) {
	start := ls.started("UpdateHouse",
		zap.String("caller", req.Caller.Hex()),
		zap.String("house", req.House.Hex()),
		zap.Bool("oracle", req.Config.HasOracle()),
	)
	defer func() { ls.finished("UpdateHouse", start, err) }()

	return ls.svc.UpdateHouse(ctx, req)
}

// WithdrawHouseFees wraps the service method with logging
func (ls *logService) WithdrawHouseFees(ctx context.Context, req *game.HouseRequest) (resp *game.WithdrawResponse, err error) {
	start := ls.started("WithdrawHouseFees", zap.String("caller", req.Caller.Hex()), zap.String("house", req.House.Hex()))
	defer func() {
		if err != nil {
			ls.finished("WithdrawHouseFees", start, err)
			return
		}
		ls.finished("WithdrawHouseFees", start, nil,
			zap.Uint64("currency", resp.Currency),
			zap.Uint64("native", resp.Native),
		)
	}()

	return ls.svc.WithdrawHouseFees(ctx, req)
}

// CloseHouse wraps the service method with logging
func (ls *logService) CloseHouse(ctx context.Context, req *game.HouseRequest) (resp *game.WithdrawResponse, err error) {
	start := ls.started("CloseHouse", zap.String("caller", req.Caller.Hex()), zap.String("house", req.House.Hex()))
	defer func() {
		if err != nil {
			ls.finished("CloseHouse", start, err)
			return
		}
		ls.finished("CloseHouse", start, nil,
			zap.Uint64("currency", resp.Currency),
			zap.Uint64("native", resp.Native),
		)
	}()

	return ls.svc.CloseHouse(ctx, req)
}

// CreateCampaign wraps the service method with logging
func (ls *logService) CreateCampaign(ctx context.Context, req *game.CreateCampaignRequest) (c *campaign.Campaign, err error) {
	start := ls.started("CreateCampaign",
		zap.String("caller", req.Caller.Hex()),
		zap.String("house", req.House.Hex()),
		zap.String("name", req.Name),
		zap.Uint64("fund_amount", req.FundAmount),
		zap.Uint64("max_rewards_per_game", req.MaxRewardsPerGame),
		zap.Bool("manager", req.ManagerProof != nil),
	)
	defer func() {
		if err != nil {
			ls.finished("CreateCampaign", start, err)
			return
		}
		ls.finished("CreateCampaign", start, nil,
			zap.String("campaign", c.ID.Hex()),
			zap.String("generation", c.Generation.String()),
		)
	}()

	return ls.svc.CreateCampaign(ctx, req)
}

// CloseCampaign wraps the service method with logging
func (ls *logService) CloseCampaign(ctx context.Context, req *game.CampaignRequest) (resp *game.CloseCampaignResponse, err error) {
	start := ls.started("CloseCampaign", zap.String("caller", req.Caller.Hex()), zap.String("campaign", req.Campaign.Hex()))
	defer func() {
		if err != nil {
			ls.finished("CloseCampaign", start, err)
			return
		}
		ls.finished("CloseCampaign", start, nil,
			zap.Uint64("rewards", resp.Rewards),
			zap.Uint64("deposits", resp.Deposits),
			zap.Uint64("native", resp.Native),
		)
	}()

	return ls.svc.CloseCampaign(ctx, req)
}

// StartGame wraps the service method with logging
func (ls *logService) StartGame(ctx context.Context, req *game.StartGameRequest) (resp *game.SessionResponse, err error) {
	start := ls.started("StartGame",
		zap.String("caller", req.Caller.Hex()),
		zap.String("campaign", req.Campaign.Hex()),
		zap.Bool("nft_proof", req.Proofs.NFT != nil),
		zap.Bool("asset_proof", req.Proofs.Asset != nil),
	)
	defer func() {
		if err != nil {
			ls.finished("StartGame", start, err)
			return
		}
		ls.finished("StartGame", start, nil,
			zap.String("identity", resp.Player.Identity.String()),
			zap.Uint8("energy", resp.Player.Energy),
			zap.Uint64("reserved_rewards", resp.ReservedRewards),
		)
	}()

	return ls.svc.StartGame(ctx, req)
}

// EndGame wraps the service method with logging
func (ls *logService) EndGame(ctx context.Context, req *game.EndGameRequest) (resp *game.SessionResponse, err error) {
	start := ls.started("EndGame",
		zap.String("caller", req.Caller.Hex()),
		zap.String("campaign", req.Campaign.Hex()),
		zap.Uint64("amount_won", req.AmountWon),
		zap.Bool("oracle_signed", req.Oracle != nil),
	)
	defer func() {
		if err != nil {
			ls.finished("EndGame", start, err)
			return
		}
		ls.finished("EndGame", start, nil,
			zap.String("identity", resp.Player.Identity.String()),
			zap.Uint64("rewards_available", resp.RewardsAvailable),
			zap.Uint64("reserved_rewards", resp.ReservedRewards),
		)
	}()

	return ls.svc.EndGame(ctx, req)
}

// ClaimStake wraps the service method with logging
func (ls *logService) ClaimStake(ctx context.Context, req *game.PlayerRequest) (resp *game.ClaimStakeResponse, err error) {
	start := ls.started("ClaimStake", zap.String("caller", req.Caller.Hex()), zap.String("campaign", req.Campaign.Hex()))
	defer func() {
		if err != nil {
			ls.finished("ClaimStake", start, err)
			return
		}
		ls.finished("ClaimStake", start, nil,
			zap.String("mint", resp.Mint.Hex()),
			zap.Uint64("amount", resp.Amount),
		)
	}()

	return ls.svc.ClaimStake(ctx, req)
}

// ClosePlayer wraps the service method with logging
func (ls *logService) ClosePlayer(ctx context.Context, req *game.PlayerRequest) (err error) {
	start := ls.started("ClosePlayer", zap.String("caller", req.Caller.Hex()), zap.String("campaign", req.Campaign.Hex()))
	defer func() { ls.finished("ClosePlayer", start, err) }()

	return ls.svc.ClosePlayer(ctx, req)
}

// Reads are only logged on failure.

func (ls *logService) GetHouse(ctx context.Context, id common.Address) (*game.HouseView, error) {
	h, err := ls.svc.GetHouse(ctx, id)
	if err != nil {
		ls.logger.Debug("GetHouse failed", zap.String("service", serviceName), zap.String("house", id.Hex()), zap.Error(err))
	}
	return h, err
}

func (ls *logService) GetCampaign(ctx context.Context, id common.Address) (*game.CampaignView, error) {
	c, err := ls.svc.GetCampaign(ctx, id)
	if err != nil {
		ls.logger.Debug("GetCampaign failed", zap.String("service", serviceName), zap.String("campaign", id.Hex()), zap.Error(err))
	}
	return c, err
}

func (ls *logService) GetPlayer(ctx context.Context, campaignID, identityKey common.Address) (*player.Player, error) {
	p, err := ls.svc.GetPlayer(ctx, campaignID, identityKey)
	if err != nil {
		ls.logger.Debug("GetPlayer failed",
			zap.String("service", serviceName),
			zap.String("campaign", campaignID.Hex()),
			zap.String("identity", identityKey.Hex()),
			zap.Error(err),
		)
	}
	return p, err
}

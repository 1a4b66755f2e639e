package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ZenRepublic/Clubhouse/pkg/campaign"
	"github.com/ZenRepublic/Clubhouse/pkg/game"
	"github.com/ZenRepublic/Clubhouse/pkg/house"
	"github.com/ZenRepublic/Clubhouse/pkg/player"
)

// tracingService opens a span around every Service call
type tracingService struct {
	svc    Service
	tracer trace.Tracer
}

// NewTracing creates a tracing decorator for the game Service.
func NewTracing(svc Service, tracer trace.Tracer) Service {
	return &tracingService{svc: svc, tracer: tracer}
}

func (ts *tracingService) start(ctx context.Context, method string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return ts.tracer.Start(ctx, serviceName+"."+method, trace.WithAttributes(attrs...))
}

func end(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func addr(key string, a common.Address) attribute.KeyValue {
	return attribute.String(key, a.Hex())
}

func (ts *tracingService) AddProgramAdmin(ctx context.Context, req *game.ProgramAdminRequest) (err error) {
	ctx, span := ts.start(ctx, "AddProgramAdmin", addr("admin", req.Admin))
	defer func() { end(span, err) }()
	return ts.svc.AddProgramAdmin(ctx, req)
}

func (ts *tracingService) RemoveProgramAdmin(ctx context.Context, req *game.ProgramAdminRequest) (err error) {
	ctx, span := ts.start(ctx, "RemoveProgramAdmin", addr("admin", req.Admin))
	defer func() { end(span, err) }()
	return ts.svc.RemoveProgramAdmin(ctx, req)
}

func (ts *tracingService) CreateHouse(ctx context.Context, req *game.CreateHouseRequest) (_ *house.House, err error) {
	ctx, span := ts.start(ctx, "CreateHouse", attribute.String("name", req.Name))
	defer func() { end(span, err) }()
	return ts.svc.CreateHouse(ctx, req)
}

func (ts *tracingService) UpdateHouse(ctx context.Context, req *game.UpdateHouseRequest) (_ *house.House, err error) {
	ctx, span := ts.start(ctx, "UpdateHouse", addr("house", req.House))
	defer func() { end(span, err) }()
	return ts.svc.UpdateHouse(ctx, req)
}

func (ts *tracingService) WithdrawHouseFees(ctx context.Context, req *game.HouseRequest) (_ *game.WithdrawResponse, err error) {
	ctx, span := ts.start(ctx, "WithdrawHouseFees", addr("house", req.House))
	defer func() { end(span, err) }()
	return ts.svc.WithdrawHouseFees(ctx, req)
}

func (ts *tracingService) CloseHouse(ctx context.Context, req *game.HouseRequest) (_ *game.WithdrawResponse, err error) {
	ctx, span := ts.start(ctx, "CloseHouse", addr("house", req.House))
	defer func() { end(span, err) }()
	return ts.svc.CloseHouse(ctx, req)
}

func (ts *tracingService) CreateCampaign(ctx context.Context, req *game.CreateCampaignRequest) (_ *campaign.Campaign, err error) {
	ctx, span := ts.start(ctx, "CreateCampaign",
		addr("house", req.House),
		attribute.String("name", req.Name),
		attribute.Int64("fund_amount", int64(req.FundAmount)),
	)
	defer func() { end(span, err) }()
	return ts.svc.CreateCampaign(ctx, req)
}

func (ts *tracingService) CloseCampaign(ctx context.Context, req *game.CampaignRequest) (_ *game.CloseCampaignResponse, err error) {
	ctx, span := ts.start(ctx, "CloseCampaign", addr("campaign", req.Campaign))
	defer func() { end(span, err) }()
	return ts.svc.CloseCampaign(ctx, req)
}

func (ts *tracingService) StartGame(ctx context.Context, req *game.StartGameRequest) (_ *game.SessionResponse, err error) {
	ctx, span := ts.start(ctx, "StartGame", addr("campaign", req.Campaign))
	defer func() { end(span, err) }()
	return ts.svc.StartGame(ctx, req)
}

func (ts *tracingService) EndGame(ctx context.Context, req *game.EndGameRequest) (_ *game.SessionResponse, err error) {
	ctx, span := ts.start(ctx, "EndGame",
		addr("campaign", req.Campaign),
		attribute.Int64("amount_won", int64(req.AmountWon)),
	)
	defer func() { end(span, err) }()
	return ts.svc.EndGame(ctx, req)
}

func (ts *tracingService) ClaimStake(ctx context.Context, req *game.PlayerRequest) (_ *game.ClaimStakeResponse, err error) {
	ctx, span := ts.start(ctx, "ClaimStake", addr("campaign", req.Campaign))
	defer func() { end(span, err) }()
	return ts.svc.ClaimStake(ctx, req)
}

func (ts *tracingService) ClosePlayer(ctx context.Context, req *game.PlayerRequest) (err error) {
	ctx, span := ts.start(ctx, "ClosePlayer", addr("campaign", req.Campaign))
	defer func() { end(span, err) }()
	return ts.svc.ClosePlayer(ctx, req)
}

func (ts *tracingService) GetHouse(ctx context.Context, id common.Address) (_ *game.HouseView, err error) {
	ctx, span := ts.start(ctx, "GetHouse", addr("house", id))
	defer func() { end(span, err) }()
	return ts.svc.GetHouse(ctx, id)
}

func (ts *tracingService) GetCampaign(ctx context.Context, id common.Address) (_ *game.CampaignView, err error) {
	ctx, span := ts.start(ctx, "GetCampaign", addr("campaign", id))
	defer func() { end(span, err) }()
	return ts.svc.GetCampaign(ctx, id)
}

func (ts *tracingService) GetPlayer(ctx context.Context, campaignID, identityKey common.Address) (_ *player.Player, err error) {
	ctx, span := ts.start(ctx, "GetPlayer", addr("campaign", campaignID), addr("identity", identityKey))
	defer func() { end(span, err) }()
	return ts.svc.GetPlayer(ctx, campaignID, identityKey)
}

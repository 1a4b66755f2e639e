package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ZenRepublic/Clubhouse/internal/metrics"
	"github.com/ZenRepublic/Clubhouse/pkg/campaign"
	"github.com/ZenRepublic/Clubhouse/pkg/game"
	"github.com/ZenRepublic/Clubhouse/pkg/game/service/mocks"
	"github.com/ZenRepublic/Clubhouse/pkg/identity"
	"github.com/ZenRepublic/Clubhouse/pkg/player"
)

func TestTracing_RecordsSpanPerCall(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	inner := mocks.NewService(t)
	inner.EXPECT().
		EndGame(mock.Anything, mock.Anything).
		Return(nil, player.ErrNotInGame).
		Once()
	inner.EXPECT().
		GetHouse(mock.Anything, mock.Anything).
		Return(&game.HouseView{}, nil).
		Once()

	svc := NewTracing(inner, tp.Tracer("test"))
	campaignID := common.HexToAddress(testCampaign)
	if _, err := svc.EndGame(context.Background(), &game.EndGameRequest{Campaign: campaignID}); !errors.Is(err, player.ErrNotInGame) {
		t.Fatalf("expected ErrNotInGame, got %v", err)
	}
	if _, err := svc.GetHouse(context.Background(), common.Address{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	spans := recorder.Ended()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if spans[0].Name() != serviceName+".EndGame" {
		t.Fatalf("unexpected span name %q", spans[0].Name())
	}
	if spans[0].Status().Code != codes.Error {
		t.Fatalf("expected error status, got %v", spans[0].Status().Code)
	}
	if spans[1].Status().Code == codes.Error {
		t.Fatalf("successful call marked as error")
	}
}

func TestLog_LogsOutcomeAndCountsOperations(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	inner := mocks.NewService(t)
	inner.EXPECT().
		StartGame(mock.Anything, mock.Anything).
		Return(&game.SessionResponse{
			Player:          &player.Player{Identity: identity.User(common.HexToAddress(testSigner)), Energy: 1},
			ReservedRewards: 100,
		}, nil).
		Once()
	inner.EXPECT().
		StartGame(mock.Anything, mock.Anything).
		Return(nil, campaign.ErrRewardsUnavailable).
		Once()

	completed := metrics.OperationsTotal.WithLabelValues("StartGame", "completed")
	failed := metrics.OperationsTotal.WithLabelValues("StartGame", "failed")
	completedBefore, failedBefore := testutil.ToFloat64(completed), testutil.ToFloat64(failed)

	svc := NewLog(inner, zap.New(core))
	req := &game.StartGameRequest{Caller: common.HexToAddress(testSigner), Campaign: common.HexToAddress(testCampaign)}
	if _, err := svc.StartGame(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.StartGame(context.Background(), req); !errors.Is(err, campaign.ErrRewardsUnavailable) {
		t.Fatalf("expected ErrRewardsUnavailable, got %v", err)
	}

	if n := logs.FilterMessage("StartGame completed").Len(); n != 1 {
		t.Fatalf("expected 1 completed entry, got %d", n)
	}
	failures := logs.FilterMessage("StartGame failed").All()
	if len(failures) != 1 || failures[0].Level != zapcore.ErrorLevel {
		t.Fatalf("expected 1 error-level failure entry, got %+v", failures)
	}
	if got := testutil.ToFloat64(completed) - completedBefore; got != 1 {
		t.Fatalf("expected completed counter +1, got %v", got)
	}
	if got := testutil.ToFloat64(failed) - failedBefore; got != 1 {
		t.Fatalf("expected failed counter +1, got %v", got)
	}
}

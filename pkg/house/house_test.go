package house

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ZenRepublic/Clubhouse/internal/checked"
	"github.com/ZenRepublic/Clubhouse/pkg/keys"
)

var (
	admin    = common.HexToAddress("0x00000000000000000000000000000000000000ad")
	currency = common.HexToAddress("0x00000000000000000000000000000000000000cc")
)

func newHouse(t *testing.T, cfg Config) *House {
	t.Helper()
	h, err := New(admin, nil, currency, 6, cfg, "High Rollers", time.Unix(0, 0))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return h
}

func TestNew(t *testing.T) {
	h := newHouse(t, Config{})
	if h.ID != keys.HouseID("High Rollers") {
		t.Fatalf("house id not derived from name: %s", h.ID.Hex())
	}
	if !h.Active {
		t.Fatal("new house should be active")
	}

	_, err := New(admin, nil, currency, 6, Config{RewardsTaxBps: MaxTaxBps + 1}, "High Rollers", time.Now())
	if !errors.Is(err, ErrTaxTooHigh) {
		t.Fatalf("expected ErrTaxTooHigh, got %v", err)
	}
}

func TestCreationFee(t *testing.T) {
	h := newHouse(t, Config{CampaignCreationFee: 100, CampaignManagerDiscount: 30})
	if got := h.CreationFee(false); got != 100 {
		t.Fatalf("admin fee = %d, want 100", got)
	}
	if got := h.CreationFee(true); got != 70 {
		t.Fatalf("manager fee = %d, want 70", got)
	}

	h.Config.CampaignManagerDiscount = 500
	if got := h.CreationFee(true); got != 0 {
		t.Fatalf("discount above fee should floor at zero, got %d", got)
	}
}

func TestCampaignCounters(t *testing.T) {
	h := newHouse(t, Config{})
	if err := h.AddCampaign(); err != nil {
		t.Fatalf("AddCampaign failed: %v", err)
	}
	if err := h.Close(); !errors.Is(err, ErrActiveCampaigns) {
		t.Fatalf("expected ErrActiveCampaigns, got %v", err)
	}
	if err := h.RemoveCampaign(); err != nil {
		t.Fatalf("RemoveCampaign failed: %v", err)
	}
	if err := h.RemoveCampaign(); !errors.Is(err, checked.ErrUnderflow) {
		t.Fatalf("expected ErrUnderflow, got %v", err)
	}
	if h.TotalCampaigns != 1 || h.OpenCampaigns != 0 {
		t.Fatalf("unexpected counters total=%d open=%d", h.TotalCampaigns, h.OpenCampaigns)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := h.AddCampaign(); !errors.Is(err, ErrInactive) {
		t.Fatalf("expected ErrInactive, got %v", err)
	}
}

func TestFeeAccrual(t *testing.T) {
	h := newHouse(t, Config{})
	if err := h.AccrueNativeFee(5); err != nil {
		t.Fatalf("AccrueNativeFee failed: %v", err)
	}
	if err := h.AccrueCurrencyFee(7); err != nil {
		t.Fatalf("AccrueCurrencyFee failed: %v", err)
	}
	if err := h.AccrueNativeFee(math.MaxUint64); !errors.Is(err, checked.ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
	if h.UnclaimedNativeFees != 5 || h.UnclaimedCurrencyFees != 7 {
		t.Fatalf("unexpected fees native=%d currency=%d", h.UnclaimedNativeFees, h.UnclaimedCurrencyFees)
	}
	h.ClearFees()
	if h.UnclaimedNativeFees != 0 || h.UnclaimedCurrencyFees != 0 {
		t.Fatal("ClearFees should zero both counters")
	}
}

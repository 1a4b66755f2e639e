package ledger

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   uint64
		decimals uint8
		want     string
	}{
		{amount: 0, decimals: 6, want: "0"},
		{amount: 1_500_000, decimals: 6, want: "1.5"},
		{amount: 42, decimals: 0, want: "42"},
		{amount: 1, decimals: 9, want: "0.000000001"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.amount, tt.decimals); got != tt.want {
			t.Errorf("FormatAmount(%d, %d) = %q, want %q", tt.amount, tt.decimals, got, tt.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	got, err := ParseAmount("1.25", 6)
	if err != nil {
		t.Fatalf("ParseAmount failed: %v", err)
	}
	if got != 1_250_000 {
		t.Fatalf("expected 1250000, got %d", got)
	}

	if _, err := ParseAmount("0.0000001", 6); err == nil {
		t.Fatal("expected error for excess precision")
	}
	if _, err := ParseAmount("-1", 6); err == nil {
		t.Fatal("expected error for negative amount")
	}
	if _, err := ParseAmount("18446744073709551616", 0); err == nil {
		t.Fatal("expected error for amount above uint64")
	}
}

func TestCreditDebit(t *testing.T) {
	if _, err := Credit(^uint64(0), 1); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
	if _, err := Debit(5, 6); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	got, err := Debit(10, 4)
	if err != nil || got != 6 {
		t.Fatalf("Debit(10, 4) = %d, %v", got, err)
	}
}

func TestAuthorize(t *testing.T) {
	owner := common.HexToAddress("0x01")
	other := common.HexToAddress("0x02")
	acct := Native(owner)

	if err := Authorize(acct, owner); err != nil {
		t.Fatalf("owner should be authorized: %v", err)
	}
	if err := Authorize(acct, other); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

// Package ledger defines the value-transfer collaborator the game economy settles through.
//
// The economy decides amounts and authorization; a Ledger moves value between
// accounts. Every call is atomic: a failed Transfer or Burn leaves no partial movement.
package ledger

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrInsufficientFunds is returned when the source account cannot cover the amount.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrUnauthorized is returned when the authority does not own the source account.
	ErrUnauthorized = errors.New("authority does not own source account")
	// ErrOverflow is returned when a credit would overflow the destination balance.
	ErrOverflow = errors.New("balance overflow")
)

// NativeAsset is the asset key of the platform's native value.
var NativeAsset = common.Address{}

// Account identifies a balance: an owner holding one asset.
type Account struct {
	Owner common.Address `json:"owner"`
	Asset common.Address `json:"asset"`
}

// NewAccount returns the account of owner for asset.
func NewAccount(owner, asset common.Address) Account {
	return Account{Owner: owner, Asset: asset}
}

// Native returns the native-value account of owner.
func Native(owner common.Address) Account {
	return Account{Owner: owner, Asset: NativeAsset}
}

// IsNative reports whether the account holds the native asset.
func (a Account) IsNative() bool {
	return a.Asset == NativeAsset
}

// Ledger moves value between accounts.
//
//go:generate mockery --name Ledger --output mocks --outpkg mocks --filename mock_ledger.go --with-expecter
type Ledger interface {
	// Transfer moves amount from one account to another of the same asset.
	// authority must own from.
	Transfer(ctx context.Context, amount uint64, from Account, to common.Address, authority common.Address) error
	// Burn destroys amount from the account. authority must own from.
	Burn(ctx context.Context, amount uint64, from Account, authority common.Address) error
	// Balance returns the current balance of the account.
	Balance(ctx context.Context, account Account) (uint64, error)
	// Deposit credits amount to the account from outside the program.
	Deposit(ctx context.Context, account Account, amount uint64) error
}

// Authorize checks that authority may debit from.
func Authorize(from Account, authority common.Address) error {
	if from.Owner != authority {
		return ErrUnauthorized
	}
	return nil
}

// Credit adds amount to balance, failing on overflow.
func Credit(balance, amount uint64) (uint64, error) {
	sum := balance + amount
	if sum < balance {
		return 0, ErrOverflow
	}
	return sum, nil
}

// Debit subtracts amount from balance, failing when the balance is too small.
func Debit(balance, amount uint64) (uint64, error) {
	if amount > balance {
		return 0, ErrInsufficientFunds
	}
	return balance - amount, nil
}

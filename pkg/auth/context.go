package auth

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// Context keys for authentication data
type contextKey string

const (
	// ContextKeySigner is the context key for the authenticated request signer
	ContextKeySigner contextKey = "signer"
	// ContextKeyOracle is the context key for the recovered oracle co-signer
	ContextKeyOracle contextKey = "oracle"
)

// WithSigner adds the authenticated signer to the context
func WithSigner(ctx context.Context, signer common.Address) context.Context {
	return context.WithValue(ctx, ContextKeySigner, signer)
}

// SignerFromContext retrieves the authenticated signer from the context
func SignerFromContext(ctx context.Context) (common.Address, bool) {
	addr, ok := ctx.Value(ContextKeySigner).(common.Address)
	return addr, ok
}

// WithOracle adds the oracle co-signer to the context
func WithOracle(ctx context.Context, oracle common.Address) context.Context {
	return context.WithValue(ctx, ContextKeyOracle, oracle)
}

// OracleFromContext returns the oracle co-signer, nil when the request carried none
func OracleFromContext(ctx context.Context) *common.Address {
	addr, ok := ctx.Value(ContextKeyOracle).(common.Address)
	if !ok {
		return nil
	}
	return &addr
}

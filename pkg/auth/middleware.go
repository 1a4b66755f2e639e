package auth

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/lru"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	apperrors "github.com/ZenRepublic/Clubhouse/pkg/app/errors"
	apphttp "github.com/ZenRepublic/Clubhouse/pkg/app/http"
	"github.com/ZenRepublic/Clubhouse/pkg/config"
)

// MessagePrefix starts every signed X-Message:
// "clubhouse:<unix seconds>:<request digest>".
const MessagePrefix = "clubhouse:"

// OraclePrefix starts the message an oracle co-signs for a caller's request.
const OraclePrefix = "clubhouse-oracle:"

// Request headers read by the middleware
const (
	HeaderSignature       = "X-Signature"
	HeaderMessage         = "X-Message"
	HeaderSigner          = "X-Signer"
	HeaderOracleSignature = "X-Oracle-Signature"
	HeaderOracle          = "X-Oracle"
)

const (
	maxBodyBytes           = 1 << 20
	defaultReplayCacheSize = 1 << 16
)

var (
	ErrMissingSignature  = errors.New("signature and message required")
	ErrMalformedMessage  = errors.New("malformed auth message")
	ErrStaleMessage      = errors.New("auth message expired")
	ErrInvalidSigner     = errors.New("invalid signer address")
	ErrDigestMismatch    = errors.New("auth message does not match request")
	ErrReplayedSignature = errors.New("auth message already used")
)

// RequestDigest hashes the method, request URI and body a message commits to.
func RequestDigest(method, uri string, body []byte) string {
	return hexutil.Encode(crypto.Keccak256([]byte(method), []byte{'\n'}, []byte(uri), []byte{'\n'}, body))
}

// Message builds the string a client signs for a request issued at t.
func Message(t time.Time, digest string) string {
	return MessagePrefix + strconv.FormatInt(t.Unix(), 10) + ":" + digest
}

// OracleMessage builds the string an oracle signs to co-sign caller's request.
// Binding the caller stops a co-signature from being lifted onto another
// signer's request; message already binds the route, body and time.
func OracleMessage(caller common.Address, message string) string {
	return OraclePrefix + caller.Hex() + ":" + message
}

// ParseMessage extracts the timestamp and request digest from a signed message.
func ParseMessage(msg string) (time.Time, string, error) {
	raw, ok := strings.CutPrefix(msg, MessagePrefix)
	if !ok {
		return time.Time{}, "", ErrMalformedMessage
	}
	ts, digest, ok := strings.Cut(raw, ":")
	if !ok || digest == "" {
		return time.Time{}, "", ErrMalformedMessage
	}
	secs, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	return time.Unix(secs, 0), digest, nil
}

// Authenticator resolves the request signer and oracle co-signer.
type Authenticator struct {
	trustSigner bool
	maxAge      time.Duration
	clock       func() time.Time
	logger      *zap.Logger

	mu   sync.Mutex
	seen lru.BasicLRU[common.Hash, struct{}]
}

// NewAuthenticator creates an Authenticator from the auth config.
func NewAuthenticator(cfg *config.AuthConfig, logger *zap.Logger) *Authenticator {
	size := cfg.ReplayCacheSize
	if size <= 0 {
		size = defaultReplayCacheSize
	}
	return &Authenticator{
		trustSigner: cfg.TrustSignerHeader,
		maxAge:      cfg.MaxMessageAge,
		clock:       time.Now,
		logger:      logger,
		seen:        lru.NewBasicLRU[common.Hash, struct{}](size),
	}
}

// Middleware rejects unauthenticated requests with 401 and stores the signer
// (and the oracle, when present) in the request context.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signer, oracle, err := a.Authenticate(r)
		if err != nil {
			a.logger.Warn("Authentication failed",
				zap.String("path", r.URL.Path),
				zap.Error(err))
			apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, err.Error()))
			return
		}
		ctx := WithSigner(r.Context(), signer)
		if oracle != nil {
			ctx = WithOracle(ctx, *oracle)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Authenticate returns the request signer and the optional oracle co-signer.
// A signed message commits to the request's method, URI and body, and is
// accepted once per signer. The body is restored for the next handler.
func (a *Authenticator) Authenticate(r *http.Request) (common.Address, *common.Address, error) {
	if a.trustSigner {
		if raw := r.Header.Get(HeaderSigner); raw != "" {
			return a.trusted(r, raw)
		}
	}

	signature := r.Header.Get(HeaderSignature)
	message := r.Header.Get(HeaderMessage)
	if signature == "" || message == "" {
		return common.Address{}, nil, ErrMissingSignature
	}

	issued, digest, err := ParseMessage(message)
	if err != nil {
		return common.Address{}, nil, err
	}
	if age := a.clock().Sub(issued); age > a.maxAge || age < -a.maxAge {
		return common.Address{}, nil, ErrStaleMessage
	}

	body, err := readBody(r)
	if err != nil {
		return common.Address{}, nil, err
	}
	if !strings.EqualFold(digest, RequestDigest(r.Method, r.URL.RequestURI(), body)) {
		return common.Address{}, nil, ErrDigestMismatch
	}

	signer, err := VerifyEIP191Signature(message, signature)
	if err != nil {
		return common.Address{}, nil, fmt.Errorf("invalid signature: %w", err)
	}

	var oracle *common.Address
	if sig := r.Header.Get(HeaderOracleSignature); sig != "" {
		addr, err := VerifyEIP191Signature(OracleMessage(signer, message), sig)
		if err != nil {
			return common.Address{}, nil, fmt.Errorf("invalid oracle signature: %w", err)
		}
		oracle = &addr
	}

	if !a.markUsed(signer, message) {
		return common.Address{}, nil, ErrReplayedSignature
	}
	return signer, oracle, nil
}

// markUsed records (signer, message) and reports false when it was already seen.
// Entries older than the message window fall out through the age check, so the
// cache only has to hold what is still fresh.
func (a *Authenticator) markUsed(signer common.Address, message string) bool {
	key := crypto.Keccak256Hash(signer.Bytes(), []byte(message))
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.seen.Contains(key) {
		return false
	}
	a.seen.Add(key, struct{}{})
	return true
}

func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}

// trusted reads the signer and oracle from plain headers. Development only.
func (a *Authenticator) trusted(r *http.Request, raw string) (common.Address, *common.Address, error) {
	if !ValidateEVMAddress(raw) {
		return common.Address{}, nil, ErrInvalidSigner
	}
	var oracle *common.Address
	if o := r.Header.Get(HeaderOracle); o != "" {
		if !ValidateEVMAddress(o) {
			return common.Address{}, nil, ErrInvalidSigner
		}
		addr := common.HexToAddress(o)
		oracle = &addr
	}
	return common.HexToAddress(raw), oracle, nil
}

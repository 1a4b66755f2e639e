package auth

import (
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/ZenRepublic/Clubhouse/pkg/config"
)

var testNow = time.Unix(1_750_000_000, 0)

func signEIP191(t *testing.T, key *ecdsa.PrivateKey, message string) string {
	t.Helper()
	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	sig, err := crypto.Sign(crypto.Keccak256Hash([]byte(prefixed)).Bytes(), key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	sig[64] += 27
	return "0x" + hex.EncodeToString(sig)
}

func newTestAuthenticator(trust bool) *Authenticator {
	a := NewAuthenticator(&config.AuthConfig{TrustSignerHeader: trust, MaxMessageAge: 5 * time.Minute}, zap.NewNop())
	a.clock = func() time.Time { return testNow }
	return a
}

func TestVerifyEIP191Signature_RecoversSigner(t *testing.T) {
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	want := crypto.PubkeyToAddress(key.PublicKey)

	got, err := VerifyEIP191Signature("hello", signEIP191(t, key, "hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("expected %s, got %s", want.Hex(), got.Hex())
	}
}

func TestVerifyEIP191Signature_RejectsBadInput(t *testing.T) {
	if _, err := VerifyEIP191Signature("hello", "0xzz"); err == nil {
		t.Fatalf("expected hex error")
	}
	if _, err := VerifyEIP191Signature("hello", "0x"+hex.EncodeToString(make([]byte, 64))); err == nil {
		t.Fatalf("expected length error")
	}
}

func TestValidateEVMAddress(t *testing.T) {
	cases := map[string]bool{
		"0x71C7656EC7ab88b098defB751B7401B5f6d8976F": true,
		"71C7656EC7ab88b098defB751B7401B5f6d8976F":   false,
		"0x71C7656EC7ab88b098defB751B7401B5f6d8976":  false,
		"0x71C7656EC7ab88b098defB751B7401B5f6d8976G": false,
	}
	for addr, want := range cases {
		if got := ValidateEVMAddress(addr); got != want {
			t.Fatalf("ValidateEVMAddress(%q) = %v, want %v", addr, got, want)
		}
	}
}

// signedRequest builds a request whose X-Message commits to method, uri and body.
func signedRequest(t *testing.T, key *ecdsa.PrivateKey, method, uri, body string, at time.Time) *http.Request {
	t.Helper()
	msg := Message(at, RequestDigest(method, uri, []byte(body)))
	r := httptest.NewRequest(method, uri, strings.NewReader(body))
	r.Header.Set(HeaderMessage, msg)
	r.Header.Set(HeaderSignature, signEIP191(t, key, msg))
	return r
}

func TestParseMessage(t *testing.T) {
	digest := RequestDigest(http.MethodPost, "/houses", []byte(`{"name":"High Rollers"}`))
	got, gotDigest, err := ParseMessage(Message(testNow, digest))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(testNow) || gotDigest != digest {
		t.Fatalf("expected %v/%s, got %v/%s", testNow, digest, got, gotDigest)
	}
	for _, bad := range []string{"other:123:0xab", "clubhouse:abc:0xab", "clubhouse:123", "clubhouse:123:"} {
		if _, _, err := ParseMessage(bad); !errors.Is(err, ErrMalformedMessage) {
			t.Fatalf("ParseMessage(%q): expected ErrMalformedMessage, got %v", bad, err)
		}
	}
}

func TestRequestDigest_CoversMethodURIAndBody(t *testing.T) {
	base := RequestDigest(http.MethodPost, "/campaigns/0xaa/games/end", []byte(`{"amount_won":0}`))
	for name, other := range map[string]string{
		"method": RequestDigest(http.MethodPut, "/campaigns/0xaa/games/end", []byte(`{"amount_won":0}`)),
		"uri":    RequestDigest(http.MethodPost, "/campaigns/0xbb/games/end", []byte(`{"amount_won":0}`)),
		"body":   RequestDigest(http.MethodPost, "/campaigns/0xaa/games/end", []byte(`{"amount_won":100}`)),
	} {
		if other == base {
			t.Fatalf("changing the %s must change the digest", name)
		}
	}
}

func TestAuthenticate_SignedRequestWithOracle(t *testing.T) {
	player, _ := crypto.GenerateKey()
	oracle, _ := crypto.GenerateKey()
	playerAddr := crypto.PubkeyToAddress(player.PublicKey)
	body := `{"amount_won":40}`

	r := signedRequest(t, player, http.MethodPost, "/campaigns/0xaa/games/end", body, testNow.Add(-time.Minute))
	r.Header.Set(HeaderOracleSignature, signEIP191(t, oracle, OracleMessage(playerAddr, r.Header.Get(HeaderMessage))))

	signer, co, err := newTestAuthenticator(false).Authenticate(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if signer != playerAddr {
		t.Fatalf("unexpected signer %s", signer.Hex())
	}
	if co == nil || *co != crypto.PubkeyToAddress(oracle.PublicKey) {
		t.Fatalf("unexpected oracle %v", co)
	}
	rest, err := io.ReadAll(r.Body)
	if err != nil || string(rest) != body {
		t.Fatalf("body not restored for the handler: %q, %v", rest, err)
	}
}

func TestAuthenticate_RejectsBodyAndPathSwap(t *testing.T) {
	key, _ := crypto.GenerateKey()
	a := newTestAuthenticator(false)

	signed := signedRequest(t, key, http.MethodPost, "/campaigns/0xaa/games/end", `{"amount_won":0}`, testNow)

	swapped := httptest.NewRequest(http.MethodPost, "/campaigns/0xaa/games/end", strings.NewReader(`{"amount_won":100}`))
	swapped.Header = signed.Header.Clone()
	if _, _, err := a.Authenticate(swapped); !errors.Is(err, ErrDigestMismatch) {
		t.Fatalf("expected ErrDigestMismatch for swapped body, got %v", err)
	}

	moved := httptest.NewRequest(http.MethodPost, "/campaigns/0xbb/games/end", strings.NewReader(`{"amount_won":0}`))
	moved.Header = signed.Header.Clone()
	if _, _, err := a.Authenticate(moved); !errors.Is(err, ErrDigestMismatch) {
		t.Fatalf("expected ErrDigestMismatch for another route, got %v", err)
	}
}

func TestAuthenticate_OracleSignatureBoundToCaller(t *testing.T) {
	honest, _ := crypto.GenerateKey()
	other, _ := crypto.GenerateKey()
	oracle, _ := crypto.GenerateKey()
	oracleAddr := crypto.PubkeyToAddress(oracle.PublicKey)
	a := newTestAuthenticator(false)

	cosigned := signedRequest(t, honest, http.MethodPost, "/campaigns/0xaa/games/end", `{"amount_won":0}`, testNow)
	oracleSig := signEIP191(t, oracle, OracleMessage(crypto.PubkeyToAddress(honest.PublicKey), cosigned.Header.Get(HeaderMessage)))

	// Another signer's request for a bigger payout carrying the lifted co-signature.
	lifted := signedRequest(t, other, http.MethodPost, "/campaigns/0xaa/games/end", `{"amount_won":100}`, testNow)
	lifted.Header.Set(HeaderOracleSignature, oracleSig)
	if _, co, err := a.Authenticate(lifted); err == nil && co != nil && *co == oracleAddr {
		t.Fatal("co-signature for one request must not authenticate the oracle on another")
	}

	// The request it was issued for still authenticates the oracle.
	original := httptest.NewRequest(http.MethodPost, "/campaigns/0xaa/games/end", strings.NewReader(`{"amount_won":0}`))
	original.Header = cosigned.Header.Clone()
	original.Header.Set(HeaderOracleSignature, oracleSig)
	if _, co, err := a.Authenticate(original); err != nil || co == nil || *co != oracleAddr {
		t.Fatalf("expected first use to authenticate the oracle, got %v, %v", co, err)
	}
}

func TestAuthenticate_RejectsReplay(t *testing.T) {
	key, _ := crypto.GenerateKey()
	a := newTestAuthenticator(false)
	first := signedRequest(t, key, http.MethodPost, "/campaigns/0xaa/games/start", `{}`, testNow)

	if _, _, err := a.Authenticate(first); err != nil {
		t.Fatalf("first use failed: %v", err)
	}
	again := httptest.NewRequest(http.MethodPost, "/campaigns/0xaa/games/start", strings.NewReader(`{}`))
	again.Header = first.Header.Clone()
	if _, _, err := a.Authenticate(again); !errors.Is(err, ErrReplayedSignature) {
		t.Fatalf("expected ErrReplayedSignature, got %v", err)
	}

	later := signedRequest(t, key, http.MethodPost, "/campaigns/0xaa/games/start", `{}`, testNow.Add(time.Second))
	if _, _, err := a.Authenticate(later); err != nil {
		t.Fatalf("fresh message rejected: %v", err)
	}
}

func TestAuthenticate_StaleMessage(t *testing.T) {
	key, _ := crypto.GenerateKey()
	r := signedRequest(t, key, http.MethodPost, "/", "", testNow.Add(-time.Hour))

	if _, _, err := newTestAuthenticator(false).Authenticate(r); !errors.Is(err, ErrStaleMessage) {
		t.Fatalf("expected ErrStaleMessage, got %v", err)
	}
}

func TestAuthenticate_SignerHeaderIgnoredUnlessTrusted(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	r.Header.Set(HeaderSigner, "0x71C7656EC7ab88b098defB751B7401B5f6d8976F")

	if _, _, err := newTestAuthenticator(false).Authenticate(r); err != ErrMissingSignature {
		t.Fatalf("expected ErrMissingSignature, got %v", err)
	}

	signer, oracle, err := newTestAuthenticator(true).Authenticate(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if signer != common.HexToAddress("0x71C7656EC7ab88b098defB751B7401B5f6d8976F") {
		t.Fatalf("unexpected signer %s", signer.Hex())
	}
	if oracle != nil {
		t.Fatalf("expected no oracle, got %s", oracle.Hex())
	}
}

func TestMiddleware_SetsSignerAndRejectsMissingAuth(t *testing.T) {
	var seen common.Address
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = SignerFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	h := newTestAuthenticator(true).Middleware(next)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}

	r := httptest.NewRequest(http.MethodPost, "/", nil)
	r.Header.Set(HeaderSigner, "0x71C7656EC7ab88b098defB751B7401B5f6d8976F")
	r.Header.Set(HeaderOracle, "0x00000000000000000000000000000000000000aa")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
	if seen != common.HexToAddress("0x71C7656EC7ab88b098defB751B7401B5f6d8976F") {
		t.Fatalf("unexpected signer in context %s", seen.Hex())
	}
}

func TestMiddleware_RejectsSwappedBodyWith401(t *testing.T) {
	key, _ := crypto.GenerateKey()
	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got = string(b)
		w.WriteHeader(http.StatusNoContent)
	})
	h := newTestAuthenticator(false).Middleware(next)

	signed := signedRequest(t, key, http.MethodPost, "/campaigns/0xaa/games/end", `{"amount_won":0}`, testNow)
	swapped := httptest.NewRequest(http.MethodPost, "/campaigns/0xaa/games/end", strings.NewReader(`{"amount_won":100}`))
	swapped.Header = signed.Header.Clone()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, swapped)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, signed)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
	if got != `{"amount_won":0}` {
		t.Fatalf("handler saw body %q", got)
	}
}

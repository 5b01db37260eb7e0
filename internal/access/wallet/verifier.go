// Package wallet authenticates anonymous buyers who must prove recent
// control of a wallet address to view their own orders. Buyers are never
// principals; this path is independent of the principal directory.
package wallet

import (
	"errors"
	"strings"
	"time"

	"shopaccess/internal/access/util"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	issuer = "shopaccess"

	// Audience marking a delegated session-claim token as a wallet session.
	audienceWalletSession = "wallet-session"
)

// ErrInvalidAddress indicates a proof token cannot be minted for the input.
var ErrInvalidAddress = errors.New("wallet address is required")

// SessionClaims carries the caller-supplied identity assertions that
// accompany a request. WalletAddress is set by the out-of-band wallet
// sign-in flow, not by this service.
type SessionClaims struct {
	SessionID     string
	WalletAddress string
}

// ProofClaims is the self-describing proof token shape: the wallet address
// travels inside the signed payload.
type ProofClaims struct {
	Wallet string `json:"wallet"`
	jwt.RegisteredClaims
}

type Verifier struct {
	secret []byte
}

func NewVerifier(secret []byte) *Verifier {
	return &Verifier{secret: secret}
}

// Verify reports whether the caller proved control of claimedAddress. It
// tries each channel in order and succeeds on the first match. A malformed
// or expired token is a failed channel, never an error: the verifier
// degrades to the next channel and only denies once every channel fails.
func (v *Verifier) Verify(claimedAddress, proofToken string, claims SessionClaims) bool {
	address := Normalize(claimedAddress)
	if address == "" {
		return v.deny("no_address")
	}

	channels := []struct {
		name  string
		match func() (string, bool)
	}{
		{"proof_token", func() (string, bool) { return v.proofTokenAddress(proofToken) }},
		{"delegated_token", func() (string, bool) { return v.delegatedTokenAddress(proofToken) }},
		{"session_claims", func() (string, bool) {
			addr := Normalize(claims.WalletAddress)
			return addr, addr != ""
		}},
	}

	for _, ch := range channels {
		if addr, ok := ch.match(); ok && addr == address {
			return v.allow(ch.name)
		}
	}
	return v.deny("exhausted")
}

// Issue mints a self-describing proof token for the address. The real
// signature check against the wallet key happens upstream before this is
// called; the token only binds the verified address to an expiry.
func (v *Verifier) Issue(claimedAddress string, ttl time.Duration) (string, error) {
	address := Normalize(claimedAddress)
	if address == "" {
		return "", ErrInvalidAddress
	}
	if ttl <= 0 {
		return "", errors.New("ttl must be greater than zero")
	}

	now := time.Now().UTC()
	claims := ProofClaims{
		Wallet: address,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   address,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}

// proofTokenAddress extracts the address from a self-describing proof token.
// Any parse or validation failure is reported as no match.
func (v *Verifier) proofTokenAddress(token string) (string, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	var claims ProofClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, v.keyFunc)
	if err != nil || !parsed.Valid {
		return "", false
	}
	addr := Normalize(claims.Wallet)
	return addr, addr != ""
}

// delegatedTokenAddress handles the session-claim token shape: the address
// is the subject and the audience marks the token as a wallet session.
func (v *Verifier) delegatedTokenAddress(token string) (string, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, v.keyFunc)
	if err != nil || !parsed.Valid {
		return "", false
	}
	if !hasAudience(claims.Audience, audienceWalletSession) {
		return "", false
	}
	addr := Normalize(claims.Subject)
	return addr, addr != ""
}

func (v *Verifier) keyFunc(t *jwt.Token) (any, error) {
	if t.Method != jwt.SigningMethodHS256 {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return v.secret, nil
}

// Normalize folds a wallet address for comparison; checksum casing varies
// between wallets.
func Normalize(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

func hasAudience(aud jwt.ClaimStrings, want string) bool {
	for _, a := range aud {
		if a == want {
			return true
		}
	}
	return false
}

func (v *Verifier) allow(channel string) bool {
	util.WalletVerifications.WithLabelValues("allow", channel).Inc()
	return true
}

func (v *Verifier) deny(channel string) bool {
	util.WalletVerifications.WithLabelValues("deny", channel).Inc()
	return false
}

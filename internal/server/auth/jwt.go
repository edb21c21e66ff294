// Package auth mints and verifies the signed, time-bounded tokens of the
// admin session: access/refresh pairs, pending two-factor tokens and
// password reset tokens.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/adminauth/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Kind tells token types apart so one can never stand in for another.
type Kind string

const (
	KindAccess           Kind = "access"
	KindRefresh          Kind = "refresh"
	KindPendingTwoFactor Kind = "pending-2fa"
	KindPasswordReset    Kind = "password-reset"
)

// tokenIssuer is the "iss" claim on every token.
const tokenIssuer = "adminauth"

// Identity is the principal data carried in every token.
type Identity struct {
	SubjectID string
	Email     string
	Role      string
}

// Claims are the registered claims plus the session fields. RegisteredClaims.ID
// is a per-token id; SessionID is shared by an access/refresh pair.
type Claims struct {
	jwt.RegisteredClaims
	Email     string `json:"email"`
	Role      string `json:"role"`
	SessionID string `json:"sid"`
	Kind      Kind   `json:"kind"`
	// PasswordFingerprint is only set on password reset tokens.
	PasswordFingerprint string `json:"pwf,omitempty"`
}

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	// ExpiresIn is the access token lifetime.
	ExpiresIn time.Duration
	SessionID string
}

// IssuerConfig carries the signing secret and per-kind lifetimes.
type IssuerConfig struct {
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	PendingTTL time.Duration
	ResetTTL   time.Duration
}

// Issuer signs tokens with HS256.
type Issuer struct {
	cfg   IssuerConfig
	now   func() time.Time
	newID func() string
}

// Option customizes an Issuer.
type Option func(*Issuer)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) { i.now = now }
}

func NewIssuer(cfg IssuerConfig, opts ...Option) *Issuer {
	i := &Issuer{cfg: cfg, now: time.Now, newID: uuid.NewString}
	for _, o := range opts {
		o(i)
	}
	return i
}

// IssuePair mints a fresh session id and an access/refresh pair sharing it.
func (i *Issuer) IssuePair(id Identity) (*TokenPair, error) {
	sid := i.newID()

	access, err := i.sign(id, sid, KindAccess, i.cfg.AccessTTL, "")
	if err != nil {
		return nil, err
	}
	refresh, err := i.sign(id, sid, KindRefresh, i.cfg.RefreshTTL, "")
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    i.cfg.AccessTTL,
		SessionID:    sid,
	}, nil
}

// IssuePending mints the short-lived token bridging a verified password to
// a verified second factor. Its SessionID doubles as the challenge id.
func (i *Issuer) IssuePending(id Identity) (string, error) {
	return i.sign(id, i.newID(), KindPendingTwoFactor, i.cfg.PendingTTL, "")
}

// IssuePasswordReset mints a reset token bound to a fingerprint of the
// current password hash.
func (i *Issuer) IssuePasswordReset(id Identity, fingerprint string) (string, error) {
	return i.sign(id, i.newID(), KindPasswordReset, i.cfg.ResetTTL, fingerprint)
}

func (i *Issuer) sign(id Identity, sid string, kind Kind, ttl time.Duration, fingerprint string) (string, error) {
	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   id.SubjectID,
			ID:        i.newID(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:               id.Email,
		Role:                id.Role,
		SessionID:           sid,
		Kind:                kind,
		PasswordFingerprint: fingerprint,
	})

	s, err := token.SignedString(i.cfg.Secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", kind, err)
	}
	return s, nil
}

// Verify checks the signature and expiry. It returns
// common.ErrTokenExpired past expiresAt and common.ErrTokenMalformed for
// anything else wrong with the token.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.cfg.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) && !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenMalformed
	}

	if !token.Valid || claims.Subject == "" || claims.SessionID == "" {
		return nil, common.ErrTokenMalformed
	}
	switch claims.Kind {
	case KindAccess, KindRefresh, KindPendingTwoFactor, KindPasswordReset:
	default:
		return nil, common.ErrTokenMalformed
	}

	return claims, nil
}

// VerifyKind is Verify plus a kind check; a valid token of another kind
// fails with common.ErrWrongTokenKind.
func (i *Issuer) VerifyKind(tokenString string, kind Kind) (*Claims, error) {
	claims, err := i.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Kind != kind {
		return nil, common.ErrWrongTokenKind
	}
	return claims, nil
}

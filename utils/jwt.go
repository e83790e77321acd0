package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenPurpose binds a token to the flow that issued it.
type TokenPurpose string

const (
	PurposeMagicLink TokenPurpose = "magic"
	PurposeSetup     TokenPurpose = "setup"
	PurposeSession   TokenPurpose = "session"
)

const (
	MagicLinkTTL = 15 * time.Minute
	SetupTTL     = time.Hour
	SessionTTL   = 7 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid or expired token")

type Claims struct {
	UserID  string       `json:"userId"`
	Purpose TokenPurpose `json:"purpose"`
	jwt.RegisteredClaims
}

// Tokens signs and verifies HS256 tokens with a shared secret.
type Tokens struct {
	secret []byte
	now    func() time.Time
}

func NewTokens(secret string) *Tokens {
	return &Tokens{secret: []byte(secret), now: time.Now}
}

func ttlFor(p TokenPurpose) time.Duration {
	switch p {
	case PurposeMagicLink:
		return MagicLinkTTL
	case PurposeSetup:
		return SetupTTL
	default:
		return SessionTTL
	}
}

func (t *Tokens) Issue(userID string, purpose TokenPurpose) (string, error) {
	now := t.now()
	claims := Claims{
		UserID:  userID,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttlFor(purpose))),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, expiry and purpose and returns the user id.
func (t *Tokens) Verify(tokenString string, purpose TokenPurpose) (string, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Purpose != purpose || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}

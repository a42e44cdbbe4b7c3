package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessTokenTTL  = 6 * time.Hour
	RefreshTokenTTL = 30 * 24 * time.Hour

	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type Claims struct {
	Type string `json:"typ"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256 identity tokens bound to a user id.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// IssueTokens returns an access token (6h) and a refresh token (30d) with the
// user id as subject. There is no refresh-exchange route; the refresh token
// is issued for clients that want to hold a longer-lived credential.
func (s *TokenService) IssueTokens(userID string) (access string, refresh string, err error) {
	access, err = s.sign(userID, TypeAccess, AccessTokenTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = s.sign(userID, TypeRefresh, RefreshTokenTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *TokenService) sign(userID, typ string, ttl time.Duration) (string, error) {
	claims := &Claims{
		Type: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Authenticate validates an access token and returns its subject user id.
// Refresh tokens are rejected here; only access tokens gate protected routes.
func (s *TokenService) Authenticate(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" || claims.Type != TypeAccess {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

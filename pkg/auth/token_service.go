package auth

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const tokenSeparator = ":"

// TokenService issues and checks admin tokens of the form
// base64("<username>:<unix millis>"). The token is not signed; anyone who can
// decode it can mint another one. Validity is purely an age check.
type TokenService struct {
	username      string
	tokenLifespan time.Duration
	now           func() time.Time
}

func NewTokenService(username string, tokenLifespan time.Duration) *TokenService {
	if tokenLifespan <= 0 {
		tokenLifespan = 24 * time.Hour
	}
	return &TokenService{
		username:      username,
		tokenLifespan: tokenLifespan,
		now:           time.Now,
	}
}

// WithClock replaces the time source. Tests only.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

func (s *TokenService) GenerateToken(username string) string {
	raw := username + tokenSeparator + strconv.FormatInt(s.now().UnixMilli(), 10)
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

type TokenClaims struct {
	Username string
	IssuedAt time.Time
}

func ParseToken(token string) (*TokenClaims, error) {
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return nil, fmt.Errorf("cannot decode token: %w", err)
	}
	username, ts, found := strings.Cut(string(decoded), tokenSeparator)
	if !found {
		return nil, fmt.Errorf("token has no separator")
	}
	millis, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid token timestamp: %w", err)
	}
	return &TokenClaims{Username: username, IssuedAt: time.UnixMilli(millis)}, nil
}

// ValidateToken never returns an error: anything that cannot be decoded is
// simply not valid.
func (s *TokenService) ValidateToken(token string) bool {
	claims, err := ParseToken(token)
	if err != nil {
		return false
	}
	if claims.Username != s.username {
		return false
	}
	return s.now().Sub(claims.IssuedAt) < s.tokenLifespan
}

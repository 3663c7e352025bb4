package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerateToken_DecodesToUsernameAndMillis(t *testing.T) {
	issued := time.Date(2026, 10, 15, 8, 30, 0, 0, time.UTC)
	svc := NewTokenService("ito", 24*time.Hour).WithClock(fixedClock(issued))

	token := svc.GenerateToken("ito")

	raw, err := base64.StdEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "ito:"))

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ito", claims.Username)
	assert.Equal(t, issued.UnixMilli(), claims.IssuedAt.UnixMilli())
}

func TestValidateToken(t *testing.T) {
	issued := time.Date(2026, 10, 15, 8, 30, 0, 0, time.UTC)
	token := NewTokenService("ito", 24*time.Hour).WithClock(fixedClock(issued)).GenerateToken("ito")

	cases := []struct {
		name  string
		token string
		now   time.Time
		valid bool
	}{
		{"fresh", token, issued.Add(time.Minute), true},
		{"just under a day", token, issued.Add(24*time.Hour - time.Millisecond), true},
		{"exactly a day", token, issued.Add(24 * time.Hour), false},
		{"a day and a millisecond", token, issued.Add(24*time.Hour + time.Millisecond), false},
		{"other user", base64.StdEncoding.EncodeToString([]byte("mallory:" + "1760517000000")), issued, false},
		{"not base64", "%%%not-base64%%%", issued, false},
		{"no separator", base64.StdEncoding.EncodeToString([]byte("ito")), issued, false},
		{"bad timestamp", base64.StdEncoding.EncodeToString([]byte("ito:yesterday")), issued, false},
		{"empty", "", issued, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewTokenService("ito", 24*time.Hour).WithClock(fixedClock(tc.now))
			assert.Equal(t, tc.valid, svc.ValidateToken(tc.token))
		})
	}
}

func TestPasswordHelpers(t *testing.T) {
	hash, err := HashPassword("ito31102002")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("ito31102002", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))

	assert.True(t, SecureEqual("ito", "ito"))
	assert.False(t, SecureEqual("ito", "Ito"))
	assert.False(t, SecureEqual("ito", "ito "))
}

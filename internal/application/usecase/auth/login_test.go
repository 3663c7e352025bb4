package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/personal-portfolio/pkg/apperror"
	"github.com/khoahotran/personal-portfolio/pkg/auth"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

type fakeAdminRepo struct {
	rows map[string]string
	err  error
}

func (f *fakeAdminRepo) EnsureExists(_ context.Context, username, passwordHash string) error {
	if f.err != nil {
		return f.err
	}
	if f.rows == nil {
		f.rows = map[string]string{}
	}
	if _, ok := f.rows[username]; !ok {
		f.rows[username] = passwordHash
	}
	return nil
}

var fixedNow = time.Date(2025, 10, 15, 8, 30, 0, 0, time.UTC)

func newLogin(t *testing.T, repo *fakeAdminRepo) *LoginUseCase {
	t.Helper()
	tokens := auth.NewTokenService("ito", 24*time.Hour).WithClock(func() time.Time { return fixedNow })
	uc, err := NewLoginUseCase(repo, tokens, Credentials{Username: "ito", Password: "ito31102002"}, logger.NewNopLogger())
	require.NoError(t, err)
	return uc
}

func TestLogin_Success(t *testing.T) {
	repo := &fakeAdminRepo{}
	uc := newLogin(t, repo)

	out, err := uc.Execute(context.Background(), LoginInput{Username: "ito", Password: "ito31102002"})
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(out.Token)
	require.NoError(t, err)
	user, ts, ok := strings.Cut(string(raw), ":")
	require.True(t, ok)
	assert.Equal(t, "ito", user)
	assert.Equal(t, "1760517000000", ts)

	require.Contains(t, repo.rows, "ito")
	assert.True(t, auth.CheckPasswordHash("ito31102002", repo.rows["ito"]))
}

func TestLogin_SecondLoginKeepsAdminRow(t *testing.T) {
	repo := &fakeAdminRepo{}
	uc := newLogin(t, repo)

	_, err := uc.Execute(context.Background(), LoginInput{Username: "ito", Password: "ito31102002"})
	require.NoError(t, err)
	first := repo.rows["ito"]

	_, err = uc.Execute(context.Background(), LoginInput{Username: "ito", Password: "ito31102002"})
	require.NoError(t, err)
	assert.Equal(t, first, repo.rows["ito"])
	assert.Len(t, repo.rows, 1)
}

func TestLogin_Rejected(t *testing.T) {
	cases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "ito", "wrong"},
		{"wrong username", "admin", "ito31102002"},
		{"case sensitive", "ITO", "ito31102002"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeAdminRepo{}
			uc := newLogin(t, repo)

			out, err := uc.Execute(context.Background(), LoginInput{Username: tc.username, Password: tc.password})
			assert.Nil(t, out)
			assert.ErrorIs(t, err, apperror.ErrUnauthorized)
			assert.Empty(t, repo.rows)
		})
	}
}

func TestLogin_RepositoryFailure(t *testing.T) {
	uc := newLogin(t, &fakeAdminRepo{err: apperror.NewInternal("db down", errors.New("boom"))})

	_, err := uc.Execute(context.Background(), LoginInput{Username: "ito", Password: "ito31102002"})
	assert.ErrorIs(t, err, apperror.ErrInternal)
}

func TestVerifyToken(t *testing.T) {
	now := fixedNow
	tokens := auth.NewTokenService("ito", 24*time.Hour).WithClock(func() time.Time { return now })
	token := tokens.GenerateToken("ito")
	uc := NewVerifyTokenUseCase(tokens)

	assert.True(t, uc.Execute(context.Background(), VerifyTokenInput{Token: token}).Valid)

	now = fixedNow.Add(24*time.Hour + time.Millisecond)
	assert.False(t, uc.Execute(context.Background(), VerifyTokenInput{Token: token}).Valid)

	assert.False(t, uc.Execute(context.Background(), VerifyTokenInput{Token: "%%%"}).Valid)
}

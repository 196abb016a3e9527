package userapp_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"yatube/internal/adapters/database"
	"yatube/internal/core/apperr"
	userapp "yatube/internal/core/user/service"
	userPort "yatube/internal/ports/user"
	"yatube/internal/testutil"
)

func newService(t *testing.T) *userapp.UserService {
	db := testutil.NewDB(t)
	return userapp.NewUserService(database.NewUserRepositoryDatabase(db), []byte("test-secret"), time.Hour, zap.NewNop())
}

func signup(username string) userPort.SignupInput {
	return userPort.SignupInput{
		FirstName: "Настя",
		LastName:  "Нестерова",
		Username:  username,
		Email:     username + "@example.com",
		Password1: "rnb852ranked",
		Password2: "rnb852ranked",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	u, err := s.RegisterUser(ctx, signup("anastasus"))
	require.NoError(t, err)
	assert.Equal(t, "anastasus", u.Username)
	assert.Equal(t, "Настя Нестерова", u.DisplayName)

	res, err := s.LoginUser(ctx, userPort.LoginInput{Username: "anastasus", Password: "rnb852ranked"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Greater(t, res.ExpiresAt, time.Now().Unix())

	claims, err := s.ParseToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "anastasus", claims.Username)
}

func TestRegisterValidation(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	_, err := s.RegisterUser(ctx, signup("taken"))
	require.NoError(t, err)

	mismatch := signup("other")
	mismatch.Password2 = "different-password"

	short := signup("short")
	short.Password1, short.Password2 = "abc", "abc"

	tests := []struct {
		name  string
		in    userPort.SignupInput
		field string
	}{
		{"duplicate username", signup("taken"), "username"},
		{"blank username", signup("   "), "username"},
		{"slash in username", signup("a/b"), "username"},
		{"question mark in username", signup("q?x"), "username"},
		{"space in username", signup("sp ace"), "username"},
		{"password mismatch", mismatch, "password2"},
		{"short password", short, "password1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.RegisterUser(ctx, tt.in)
			require.Error(t, err)
			assert.Contains(t, apperr.Fields(err), tt.field)
		})
	}

	for _, name := range []string{"anastasus", "user.name", "a@b+c-d_e", "Настя"} {
		in := signup(name)
		in.Email = ""
		_, err := s.RegisterUser(ctx, in)
		assert.NoError(t, err, name)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := newService(t)
	ctx := context.Background()
	_, err := s.RegisterUser(ctx, signup("auth"))
	require.NoError(t, err)

	_, err = s.LoginUser(ctx, userPort.LoginInput{Username: "auth", Password: "wrong-password"})
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	_, err = s.LoginUser(ctx, userPort.LoginInput{Username: "nobody", Password: "whatever1"})
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	_, err = s.LoginUser(ctx, userPort.LoginInput{})
	assert.True(t, apperr.IsValidation(err))
}

func TestParseTokenRejectsForeignSignature(t *testing.T) {
	s := newService(t)
	ctx := context.Background()
	_, err := s.RegisterUser(ctx, signup("auth"))
	require.NoError(t, err)
	res, err := s.LoginUser(ctx, userPort.LoginInput{Username: "auth", Password: "rnb852ranked"})
	require.NoError(t, err)

	other := userapp.NewUserService(nil, []byte("another-secret"), time.Hour, zap.NewNop())
	_, err = other.ParseToken(res.Token)
	assert.Error(t, err)

	_, err = s.ParseToken("not-a-token")
	assert.Error(t, err)
}

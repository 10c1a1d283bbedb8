package service

import (
	"context"
	"testing"
	"time"

	"github.com/GinYoshida/kanji-quize/internal/config"
	"github.com/GinYoshida/kanji-quize/internal/model"
	"github.com/GinYoshida/kanji-quize/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func authConfig(passcode, hash string) *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret-test-secret-test-secret",
			ExpireTime: time.Hour,
		},
		Parent: config.ParentConfig{
			Passcode:     passcode,
			PasscodeHash: hash,
			// throttling needs Redis, covered separately
			AttemptThrottle: false,
		},
	}
}

func TestAuthService_IssuePlayerToken(t *testing.T) {
	t.Parallel()

	s := NewAuthService(authConfig("1234", ""), nil)

	token, userID, err := s.IssuePlayerToken("")
	require.NoError(t, err)
	require.NotEmpty(t, userID, "anonymous players get a generated identity")

	claims, err := util.ParseJWT(token, "test-secret-test-secret-test-secret")
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, model.RolePlayer, claims.Role)
	assert.False(t, claims.IsOwner())

	_, again, err := s.IssuePlayerToken("kid-1")
	require.NoError(t, err)
	assert.Equal(t, "kid-1", again, "existing identity is kept")
}

func TestAuthService_VerifyPasscode(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("9876"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		cfg      *config.Config
		passcode string
		wantErr  error
	}{
		{name: "plain match", cfg: authConfig("1234", ""), passcode: "1234"},
		{name: "plain mismatch", cfg: authConfig("1234", ""), passcode: "0000", wantErr: util.ErrWrongPasscode},
		{name: "hash match", cfg: authConfig("", string(hash)), passcode: "9876"},
		{name: "hash mismatch", cfg: authConfig("", string(hash)), passcode: "1234", wantErr: util.ErrWrongPasscode},
		{
			name: "hash takes precedence over plain",
			cfg:  authConfig("1234", string(hash)),
			// the plain passcode must not unlock once a hash is configured
			passcode: "1234",
			wantErr:  util.ErrWrongPasscode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewAuthService(tt.cfg, nil)
			token, userID, err := s.VerifyPasscode(context.Background(), tt.passcode, "10.0.0.1", "")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "parent", userID)

			claims, err := util.ParseJWT(token, tt.cfg.JWT.Secret)
			require.NoError(t, err)
			assert.Equal(t, model.RoleParent, claims.Role)
			assert.True(t, claims.IsOwner())
		})
	}
}

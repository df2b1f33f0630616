package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/pocketpilot/internal/fixtures"
	"github.com/amirasaad/pocketpilot/pkg/config"
	"github.com/amirasaad/pocketpilot/pkg/domain/user"
	"github.com/amirasaad/pocketpilot/pkg/dto"
	authsvc "github.com/amirasaad/pocketpilot/pkg/service/auth"
	usersvc "github.com/amirasaad/pocketpilot/pkg/service/user"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jwtCfg = &config.Jwt{Secret: "test-secret", Expiry: 24 * time.Hour}

func newServices(t *testing.T) (*authsvc.Service, *usersvc.Service) {
	t.Helper()
	uow := fixtures.NewUoW(t)
	logger := fixtures.Logger()
	return authsvc.NewWithJWT(uow, jwtCfg, logger), usersvc.New(uow, logger)
}

func TestLogin(t *testing.T) {
	auth, users := newServices(t)
	ctx := context.Background()
	created, err := users.Signup(ctx, "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	t.Run("by username", func(t *testing.T) {
		u, err := auth.Login(ctx, "alice", "secret1")
		require.NoError(t, err)
		assert.Equal(t, created.ID, u.ID)
	})

	t.Run("by email", func(t *testing.T) {
		u, err := auth.Login(ctx, "alice@example.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		u, err := auth.Login(ctx, "alice", "nope")
		require.ErrorIs(t, err, user.ErrUserUnauthorized)
		assert.Nil(t, u)
	})

	t.Run("unknown user", func(t *testing.T) {
		u, err := auth.Login(ctx, "bob", "secret1")
		require.ErrorIs(t, err, user.ErrUserUnauthorized)
		assert.Nil(t, u)
	})
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	auth, users := newServices(t)
	ctx := context.Background()
	_, err := users.Signup(ctx, "carol", "carol@example.com", "secret1")
	require.NoError(t, err)
	u, err := auth.Login(ctx, "carol", "secret1")
	require.NoError(t, err)

	signed, err := auth.GenerateToken(ctx, u)
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(*jwt.Token) (any, error) {
		return []byte(jwtCfg.Secret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "carol", claims["username"])
	assert.Equal(t, "HS256", token.Method.Alg())

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp.Time, time.Minute)

	id, err := auth.GetCurrentUserId(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)
}

func TestGetCurrentUserId_BadClaims(t *testing.T) {
	auth, _ := newServices(t)

	_, err := auth.GetCurrentUserId(nil)
	assert.ErrorIs(t, err, user.ErrUserUnauthorized)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "not-a-uuid"})
	_, err = auth.GetCurrentUserId(token)
	assert.ErrorIs(t, err, user.ErrUserUnauthorized)

	token = jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": uuid.NewString()})
	_, err = auth.GetCurrentUserId(token)
	assert.NoError(t, err)
}

func TestUserIDFallsBackToSubject(t *testing.T) {
	auth, _ := newServices(t)
	id := uuid.New()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": id.String()})
	got, err := auth.GetCurrentUserId(token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestIssueUsesClock(t *testing.T) {
	issued := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	strategy := authsvc.NewJWTStrategy(fixtures.NewUoW(t), jwtCfg).
		WithClock(func() time.Time { return issued })
	u := &dto.UserRead{ID: uuid.New(), Username: "dana"}

	signed, err := strategy.Issue(u)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(signed, claims)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims["sub"])
	assert.Equal(t, float64(issued.Unix()), claims["iat"])
	assert.Equal(t, float64(issued.Add(24*time.Hour).Unix()), claims["exp"])
}

package auth_test

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/eaglebank/eaglebank/internal/fixtures"
	"github.com/eaglebank/eaglebank/pkg/config"
	userdomain "github.com/eaglebank/eaglebank/pkg/domain/user"
	"github.com/eaglebank/eaglebank/pkg/idgen"
	"github.com/eaglebank/eaglebank/pkg/service/auth"
	usersvc "github.com/eaglebank/eaglebank/pkg/service/user"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*auth.Service, string) {
	t.Helper()
	uow := fixtures.NewMemoryUoW()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := usersvc.New(uow, idgen.New(rand.NewSource(1)), logger)
	created, err := users.Create(context.Background(), usersvc.CreateInput{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Password:    "hunter22",
		PhoneNumber: "+447700900123",
		Address:     userdomain.Address{Line1: "1 High Street", Town: "London", County: "Greater London", Postcode: "E1 6AN"},
	})
	require.NoError(t, err)
	cfg := &config.Jwt{Secret: "test-secret", Expiry: time.Hour}
	return auth.New(uow, cfg, logger), created.ID
}

func TestLogin(t *testing.T) {
	svc, userID := setup(t)

	u, err := svc.Login(context.Background(), "jane@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, userID, u.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.Login(context.Background(), "jane@example.com", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.Login(context.Background(), "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestTokenRoundTrip(t *testing.T) {
	svc, userID := setup(t)

	u, err := svc.Login(context.Background(), "jane@example.com", "hunter22")
	require.NoError(t, err)

	signed, err := svc.GenerateToken(u)
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	got, err := svc.ParseUserID(parsed)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestParseUserID_MissingClaim(t *testing.T) {
	svc, _ := setup(t)

	token := jwt.New(jwt.SigningMethodHS256)
	_, err := svc.ParseUserID(token)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

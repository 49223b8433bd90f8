package services

import (
	"agrodirect/models"
	"agrodirect/repositories"
	"agrodirect/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestAuth(t *testing.T) (*AuthService, *SessionStore) {
	t.Helper()
	users, err := repositories.NewUserRepository("harvest")
	require.NoError(t, err)

	env := newTestEnv(t, nil)
	store := NewSessionStore(env.deps, time.Hour)
	t.Cleanup(store.Close)
	return NewAuthService(users, store, testSecret, time.Hour), store
}

func TestAuthService_Login(t *testing.T) {
	auth, store := newTestAuth(t)

	resp, err := auth.Login(models.LoginRequest{Phone: "+234 800 000 0000", Password: "harvest"})
	require.NoError(t, err)
	require.NotNil(t, resp.Session.User)
	assert.Equal(t, "u1", resp.Session.User.ID)
	assert.Equal(t, models.RoleFarmer, resp.Session.User.Role)
	assert.Contains(t, resp.Session.NavOptions, models.ViewFarmerDashboard)

	claims, err := utils.ValidateToken(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Session.ID, claims.SessionID)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "FARMER", claims.Role)

	_, err = store.Get(claims.SessionID)
	assert.NoError(t, err)
}

func TestAuthService_LoginRejected(t *testing.T) {
	auth, store := newTestAuth(t)

	_, err := auth.Login(models.LoginRequest{Phone: "+2348000000001", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(models.LoginRequest{Phone: "+2340000000000", Password: "harvest"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	assert.Zero(t, store.Len())
}

func TestAuthService_GuestAndLogout(t *testing.T) {
	auth, store := newTestAuth(t)

	resp, err := auth.Guest()
	require.NoError(t, err)
	assert.Nil(t, resp.Session.User)
	assert.Equal(t, models.ViewMarketplace, resp.Session.Screen)

	claims, err := utils.ValidateToken(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Empty(t, claims.UserID)

	auth.Logout(claims.SessionID)
	_, err = store.Get(claims.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mertdogan/expense-tracker-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenInfoServer(t *testing.T, aud string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id_token") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"aud":     aud,
			"sub":     "google-subject-1",
			"email":   "jane@example.com",
			"name":    "Jane Doe",
			"picture": "https://example.com/avatar.png",
		})
	}))
}

func TestIssueAndValidateToken(t *testing.T) {
	svc := NewAuthService(newTestDB(t), newTestConfig())

	token, err := svc.IssueToken(7)
	require.NoError(t, err)

	userID, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := newTestConfig()
	cfg.JWTExpiry = -time.Hour
	svc := NewAuthService(newTestDB(t), cfg)

	token, err := svc.IssueToken(7)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateTokenTampered(t *testing.T) {
	svc := NewAuthService(newTestDB(t), newTestConfig())

	token, err := svc.IssueToken(7)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	if tampered == token {
		tampered = token[:len(token)-2] + "yy"
	}
	_, err = svc.ValidateToken(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newTestConfig())

	other := newTestConfig()
	other.JWTSecret = "other-secret"
	otherSvc := NewAuthService(db, other)

	token, err := otherSvc.IssueToken(7)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestSignInCreatesUserAndSettingsOnce(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	server := newTokenInfoServer(t, cfg.GoogleClientID)
	defer server.Close()
	cfg.GoogleTokenInfoURL = server.URL

	svc := NewAuthService(db, cfg)

	resp, err := svc.SignIn(context.Background(), "valid-id-token")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "jane@example.com", resp.User.Email)
	assert.Equal(t, "Jane Doe", resp.User.Name)

	// Token is immediately usable and bound to the created user.
	userID, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)

	// Settings row was created alongside the user.
	var settingsCount int64
	require.NoError(t, db.Model(&models.UserSettings{}).Where("user_id = ?", resp.User.ID).Count(&settingsCount).Error)
	assert.Equal(t, int64(1), settingsCount)

	// Re-invocation with the same external identity is idempotent.
	again, err := svc.SignIn(context.Background(), "valid-id-token")
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, again.User.ID)

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(1), userCount)
}

func TestSignInRejectsWrongAudience(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	server := newTokenInfoServer(t, "someone-elses-client-id")
	defer server.Close()
	cfg.GoogleTokenInfoURL = server.URL

	svc := NewAuthService(db, cfg)

	_, err := svc.SignIn(context.Background(), "valid-id-token")
	assert.ErrorIs(t, err, ErrAuthentication)

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.Zero(t, userCount)
}

func TestCurrentUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newTestConfig())
	user := createTestUser(t, db, "g-1", "a@example.com")

	got, err := svc.CurrentUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = svc.CurrentUser(user.ID + 100)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

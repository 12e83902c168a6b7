// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Chastukhin

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dchas/praxis/internal/config"
	"github.com/dchas/praxis/models"
)

func newTestAccountAdapter(t *testing.T, serverURL string) *httpAccountAdapter {
	t.Helper()
	a := NewHTTPAccountAdapter(config.Account{
		BaseURL:        serverURL,
		RequestTimeout: 5 * time.Second,
	})
	return a.(*httpAccountAdapter)
}

func ownerToken(t *testing.T, ownerID string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": ownerID}).
		SignedString([]byte("server-side-key"))
	require.NoError(t, err)
	return token
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_AdoptsToken(t *testing.T) {
	token := ownerToken(t, "42")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "alice", user.Login)

		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAccountAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.User{Login: "alice", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.UserID, "owner id read from the token subject")
	assert.Equal(t, token, a.Token(), "token kept for subsequent requests")
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("bad credentials"))
	}))
	defer srv.Close()

	a := newTestAccountAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Login: "alice", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestLogin_MissingAuthorizationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAccountAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Login: "alice"})

	require.Error(t, err)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	token := ownerToken(t, "7")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAccountAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.User{Login: "bob", Name: "Bob"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("login already exists"))
	}))
	defer srv.Close()

	a := newTestAccountAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.User{Login: "bob"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

// ── Profile ──────────────────────────────────────────────────────────────────

func TestProfile_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/users/42/profile", r.URL.Path)
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Alice","verified":true,"domain":"music"}`))
	}))
	defer srv.Close()

	a := newTestAccountAdapter(t, srv.URL)
	a.SetToken("stored-token")

	profile, err := a.Profile(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), profile.OwnerID)
	assert.Equal(t, "Alice", profile.Name)
	assert.True(t, profile.Verified)
	assert.Equal(t, "music", profile.Domain)
}

func TestProfile_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAccountAdapter(t, srv.URL)
	_, err := a.Profile(context.Background(), 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── UpdateProfile ────────────────────────────────────────────────────────────

func TestUpdateProfile_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/users/42/profile", r.URL.Path)

		var profile models.Profile
		require.NoError(t, json.NewDecoder(r.Body).Decode(&profile))
		assert.Equal(t, "crafts", profile.Domain)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAccountAdapter(t, srv.URL)
	err := a.UpdateProfile(context.Background(), models.Profile{OwnerID: 42, Domain: "crafts"})
	require.NoError(t, err)
}

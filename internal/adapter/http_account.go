package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dchas/praxis/internal/config"
	"github.com/dchas/praxis/internal/utils"
	"github.com/dchas/praxis/models"
)

type httpAccountAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPAccountAdapter(cfg config.Account) AccountAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &httpAccountAdapter{client: cli}
}

func (h *httpAccountAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAccountAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAccountAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return models.Token{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	return h.adoptToken(resp.Header().Get("Authorization"))
}

func (h *httpAccountAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	return h.adoptToken(resp.Header().Get("Authorization"))
}

func (h *httpAccountAdapter) Profile(ctx context.Context, ownerID int64) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.authedRequest(ctx).
		SetResult(&profile).
		Get("/api/users/" + strconv.FormatInt(ownerID, 10) + "/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	profile.OwnerID = ownerID
	return profile, nil
}

func (h *httpAccountAdapter) UpdateProfile(ctx context.Context, profile models.Profile) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(profile).
		Put("/api/users/" + strconv.FormatInt(profile.OwnerID, 10) + "/profile")
	if err != nil {
		return fmt.Errorf("update profile request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAccountAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// adoptToken parses the bearer token from an Authorization header, extracts
// the owner id from its subject claim, and stores it for subsequent requests.
func (h *httpAccountAdapter) adoptToken(header string) (models.Token, error) {
	token, err := utils.ParseBearerToken(header)
	if err != nil {
		return models.Token{}, fmt.Errorf("parse bearer token: %w", err)
	}

	ownerID, err := utils.ParseOwnerIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("parse owner id: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: ownerID}, nil
}

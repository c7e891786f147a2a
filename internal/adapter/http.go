package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/team-lock/internal/config"
	"github.com/MKhiriev/team-lock/internal/logger"
	"github.com/MKhiriev/team-lock/internal/utils"
	"github.com/MKhiriev/team-lock/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) BaseURL() string {
	return h.baseURL
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// /auth/register and keeps the bearer token from the Authorization response
// header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/auth/register", user)
}

// Login implements [ServerAdapter]. It POSTs the credentials to /auth/login
// and keeps the bearer token from the Authorization response header.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/auth/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Login: user.Login, Password: user.Password, Name: user.Name}).
		Post(path)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s parse user id: %w", path, err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}

// GetVersion implements [ServerAdapter].
func (h *httpServerAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// CreateTeam implements [ServerAdapter].
func (h *httpServerAdapter) CreateTeam(ctx context.Context, req models.CreateTeamRequest) (models.Team, error) {
	return h.teamRequest(h.authedRequest(ctx).SetBody(req), http.MethodPost, "/teams")
}

// TeamSecurity implements [ServerAdapter]. GET /teams/{slug}/security.
func (h *httpServerAdapter) TeamSecurity(ctx context.Context, slug string) (models.Team, error) {
	return h.teamRequest(h.authedRequest(ctx), http.MethodGet, securityPath(slug, ""))
}

// SetLockEnabled implements [ServerAdapter]. PATCH /teams/{slug}/security.
func (h *httpServerAdapter) SetLockEnabled(ctx context.Context, slug string, enabled bool) (models.Team, error) {
	body := models.ToggleLockRequest{LockEnabled: enabled}
	return h.teamRequest(h.authedRequest(ctx).SetBody(body), http.MethodPatch, securityPath(slug, ""))
}

// SetupLock implements [ServerAdapter]. POST /teams/{slug}/security/setup.
func (h *httpServerAdapter) SetupLock(ctx context.Context, slug string, req models.SetupLockRequest) (models.Team, error) {
	return h.teamRequest(h.authedRequest(ctx).SetBody(req), http.MethodPost, securityPath(slug, "/setup"))
}

// ChangePassword implements [ServerAdapter]. POST /teams/{slug}/security/password.
func (h *httpServerAdapter) ChangePassword(ctx context.Context, slug string, req models.ChangePasswordRequest) (models.Team, error) {
	return h.teamRequest(h.authedRequest(ctx).SetBody(req), http.MethodPost, securityPath(slug, "/password"))
}

func (h *httpServerAdapter) teamRequest(req *resty.Request, method, path string) (models.Team, error) {
	var result models.TeamResponse

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetResult(&result).
		Execute(method, path)
	if err != nil {
		return models.Team{}, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Team{}, err
	}

	return result.Team, nil
}

func securityPath(slug, suffix string) string {
	return "/teams/" + url.PathEscape(slug) + "/security" + suffix
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/nutri-track/internal/config"
	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/MKhiriev/nutri-track/internal/utils"
	"github.com/MKhiriev/nutri-track/models"
)

type httpServerAdapter struct {
	client     *utils.HTTPClient
	cookieName string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of
// [ServerAdapter]. The server URL may omit the scheme; http is assumed.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	return &httpServerAdapter{
		client:     utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		cookieName: cfg.SessionCookieName,
		logger:     logger,
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

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register posts to /api/register and keeps the session cookie the server
// sets.
func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return h.authenticate(ctx, "/api/register", credentials)
}

// Login posts to /api/login and keeps the session cookie the server sets.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return h.authenticate(ctx, "/api/login", credentials)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, credentials models.Credentials) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&user).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token := h.sessionCookie(resp)
	if token == "" {
		return models.User{}, ErrNoSessionToken
	}
	h.SetToken(token)

	return user, nil
}

func (h *httpServerAdapter) sessionCookie(resp *resty.Response) string {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == h.cookieName && cookie.Value != "" {
			return cookie.Value
		}
	}
	return ""
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User
	if err := h.get(ctx, "/api/user", nil, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (h *httpServerAdapter) UpdateMetrics(ctx context.Context, metrics models.UserMetrics) (models.User, error) {
	var user models.User
	if err := h.post(ctx, "/api/user/metrics", metrics, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (h *httpServerAdapter) Summary(ctx context.Context, dateRange models.DateRange) (models.Summary, error) {
	var summary models.Summary
	if err := h.get(ctx, "/api/user/summary", rangeParams("startDate", "endDate", dateRange), &summary); err != nil {
		return models.Summary{}, err
	}
	return summary, nil
}

func (h *httpServerAdapter) AddExercise(ctx context.Context, exercise models.ExerciseRequest) (models.Exercise, error) {
	var created models.Exercise
	if err := h.post(ctx, "/api/exercises", exercise, &created); err != nil {
		return models.Exercise{}, err
	}
	return created, nil
}

func (h *httpServerAdapter) ListExercises(ctx context.Context, dateRange models.DateRange) ([]models.Exercise, error) {
	var exercises []models.Exercise
	if err := h.get(ctx, "/api/exercises", rangeParams("start", "end", dateRange), &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (h *httpServerAdapter) AddFoodEntry(ctx context.Context, entry models.FoodEntryRequest) (models.FoodEntry, error) {
	var created models.FoodEntry
	if err := h.post(ctx, "/api/food-entries", entry, &created); err != nil {
		return models.FoodEntry{}, err
	}
	return created, nil
}

func (h *httpServerAdapter) ListFoodEntries(ctx context.Context, dateRange models.DateRange) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	if err := h.get(ctx, "/api/food-entries", rangeParams("startDate", "endDate", dateRange), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (h *httpServerAdapter) DeleteFoodEntry(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/api/food-entries/{id}")
	if err != nil {
		return fmt.Errorf("delete food entry request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Chat(ctx context.Context, prompt string) (models.ChatResponse, error) {
	var answer models.ChatResponse
	if err := h.post(ctx, "/api/gemini", models.ChatRequest{Prompt: prompt}, &answer); err != nil {
		return models.ChatResponse{}, err
	}
	return answer, nil
}

func (h *httpServerAdapter) EstimateCalories(ctx context.Context, request models.CalorieEstimateRequest) (models.CalorieEstimate, error) {
	var estimate models.CalorieEstimate
	if err := h.post(ctx, "/api/gemini/calories", request, &estimate); err != nil {
		return models.CalorieEstimate{}, err
	}
	return estimate, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	var version models.VersionResponse
	if err := h.get(ctx, "/api/version", nil, &version); err != nil {
		return "", err
	}
	return version.Version, nil
}

func (h *httpServerAdapter) get(ctx context.Context, path string, params map[string]string, result any) error {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(params).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) post(ctx context.Context, path string, body, result any) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(result).
		Post(path)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func rangeParams(startName, endName string, dateRange models.DateRange) map[string]string {
	params := make(map[string]string, 2)
	if !dateRange.Start.IsZero() {
		params[startName] = dateRange.Start.UTC().Format(time.RFC3339Nano)
	}
	if !dateRange.End.IsZero() {
		params[endName] = dateRange.End.UTC().Format(time.RFC3339Nano)
	}
	return params
}

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-list-sync/internal/config"
	"github.com/MKhiriev/go-list-sync/internal/logger"
	"github.com/MKhiriev/go-list-sync/internal/utils"
	"github.com/MKhiriev/go-list-sync/models"
	"github.com/go-resty/resty/v2"
)

const (
	// HashHeader carries the hex HMAC-SHA256 of the request body.
	HashHeader = "HashSHA256"
	// TraceIDHeader propagates the trace id stored in the request context.
	TraceIDHeader = "X-Trace-ID"

	entitiesPath = "/api/entities"
	searchPath   = "/api/entities/search"
)

type httpRepositoryAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	logger *logger.Logger
}

// NewHTTPRepositoryAdapter constructs an HTTP/REST implementation of
// [RepositoryAdapter]. It normalises and validates the server address from
// cfg.ServerAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout. When cfg.HashKey is set every
// upsert body is signed with the [HashHeader] header.
//
// Returns an error if cfg.ServerAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRepositoryAdapter(cfg *config.ClientConfig, logger *logger.Logger) (RepositoryAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpRepositoryAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	if cfg.HashKey != "" {
		a.hasher = utils.NewHasher(cfg.HashKey)
	}

	return a, nil
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

func (h *httpRepositoryAdapter) GetAll(ctx context.Context) ([]models.Entity, error) {
	resp, err := h.request(ctx).Get(entitiesPath)
	if err != nil {
		return nil, h.transportErr("*httpRepositoryAdapter.GetAll", err)
	}

	return decodeList(resp)
}

func (h *httpRepositoryAdapter) GetByID(ctx context.Context, id string) (models.Entity, error) {
	resp, err := h.request(ctx).Get(entitiesPath + "/" + url.PathEscape(id))
	if err != nil {
		return models.Entity{}, h.transportErr("*httpRepositoryAdapter.GetByID", err)
	}

	return decodeOne(resp)
}

func (h *httpRepositoryAdapter) Search(ctx context.Context, prefix string) ([]models.Entity, error) {
	resp, err := h.request(ctx).
		SetQueryParam("value", prefix).
		Get(searchPath)
	if err != nil {
		return nil, h.transportErr("*httpRepositoryAdapter.Search", err)
	}

	return decodeList(resp)
}

func (h *httpRepositoryAdapter) Upsert(ctx context.Context, entity models.Entity) (models.Entity, error) {
	body, err := json.Marshal(entity)
	if err != nil {
		return models.Entity{}, fmt.Errorf("encode upsert request: %w", err)
	}

	req := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if h.hasher != nil {
		req.SetHeader(HashHeader, h.hasher.SumHex(body))
	}

	resp, err := req.Post(entitiesPath)
	if err != nil {
		return models.Entity{}, h.transportErr("*httpRepositoryAdapter.Upsert", err)
	}

	return decodeOne(resp)
}

func (h *httpRepositoryAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(TraceIDHeader, traceID)
	}
	return req
}

func (h *httpRepositoryAdapter) transportErr(funcName string, err error) error {
	h.logger.Err(err).Str("func", funcName).Msg("request to server failed")
	return fmt.Errorf("%w: %w", ErrTransport, err)
}

func decodeList(resp *resty.Response) ([]models.Entity, error) {
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}
	if isNullBody(resp.Body()) {
		return nil, ErrNullResult
	}

	items := make([]models.Entity, 0)
	if err := json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrServer, ErrMalformedResponse, err)
	}

	return items, nil
}

func decodeOne(resp *resty.Response) (models.Entity, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Entity{}, err
	}
	if isNullBody(resp.Body()) {
		return models.Entity{}, ErrNullResult
	}

	var entity models.Entity
	if err := json.Unmarshal(resp.Body(), &entity); err != nil {
		return models.Entity{}, fmt.Errorf("%w: %w: %w", ErrServer, ErrMalformedResponse, err)
	}

	return entity, nil
}

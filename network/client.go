package network

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/automoto/herbclinic/shared/messages"
	"go.uber.org/zap"
)

const maxResponseBody = 1 << 20

// Client talks to the game backend over HTTP+JSON. It replaces the global
// network manager: scenes get one injected and share it.
// The token is protected by mu; requests may run on any goroutine.
type Client struct {
	mu    sync.RWMutex
	token string

	baseURL string
	http    *http.Client
	log     *zap.SugaredLogger
}

func NewClient(baseURL string, timeout time.Duration, log *zap.SugaredLogger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// SetToken sets the bearer token attached to every following request.
// An empty token sends no Authorization header.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// SyncPosition uploads the position and returns the canonical record.
func (c *Client) SyncPosition(ctx context.Context, req messages.PositionRequest) (*messages.PlayerRecord, error) {
	var rec messages.PlayerRecord
	if err := c.post(ctx, "/player/position", req, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) FetchPlayer(ctx context.Context, playerID string) (*messages.PlayerRecord, error) {
	if playerID == "" {
		return nil, ErrNoPlayer
	}
	var rec messages.PlayerRecord
	if err := c.get(ctx, "/player/"+url.PathEscape(playerID), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) ListSaves(ctx context.Context) ([]messages.PlayerRecord, error) {
	var saves []messages.PlayerRecord
	if err := c.get(ctx, "/player/list-saves", &saves); err != nil {
		return nil, err
	}
	return saves, nil
}

func (c *Client) CreateSave(ctx context.Context, nickname string) (*messages.PlayerRecord, error) {
	var rec messages.PlayerRecord
	if err := c.post(ctx, "/player/create-save", messages.CreateSaveRequest{Nickname: nickname}, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) DeleteSave(ctx context.Context, playerID string) (*messages.Status, error) {
	if playerID == "" {
		return nil, ErrNoPlayer
	}
	var st messages.Status
	if err := c.post(ctx, "/player/delete-save", messages.DeleteSaveRequest{PlayerID: playerID}, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *Client) Buy(ctx context.Context, req messages.BuyRequest) (*messages.Status, error) {
	if req.PlayerID == "" {
		return nil, ErrNoPlayer
	}
	var st messages.Status
	if err := c.post(ctx, "/market/buy", req, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *Client) ChangeMap(ctx context.Context, req messages.ChangeMapRequest) (*messages.Status, error) {
	if req.PlayerID == "" {
		return nil, ErrNoPlayer
	}
	var st messages.Status
	if err := c.post(ctx, "/player/change-map", req, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// FetchItems returns every item definition.
func (c *Client) FetchItems(ctx context.Context) ([]messages.ItemDef, error) {
	var items []messages.ItemDef
	if err := c.get(ctx, "/item", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) FetchItem(ctx context.Context, itemID string) (*messages.ItemDef, error) {
	var item messages.ItemDef
	if err := c.get(ctx, "/item/"+url.PathEscape(itemID), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warnf("[api] %s %s failed: %v", method, path, err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return fmt.Errorf("read %s response: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(method, path, resp.StatusCode, data)
		c.log.Warnf("[api] %v", apiErr)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.log.Warnf("[api] decode %s %s: %v", method, path, err)
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// IsCanceled reports whether err came from a canceled context. Timeouts are
// not cancellations.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/mkalens/wallpaper/internal/client/models"
)

// HTTPClient talks to the board server over its JSON API and maps HTTP
// statuses to the package sentinel errors.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// statusError turns a non-2xx response into a sentinel error, wrapping the
// server-provided message when there is one.
func statusError(status int, body []byte) error {
	var sentinel error
	switch status {
	case http.StatusBadRequest:
		sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusNotFound:
		sentinel = ErrNotFound
	default:
		sentinel = ErrUnavailable
	}

	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error != "" {
		return fmt.Errorf("%w: %s", sentinel, er.Error)
	}
	return sentinel
}

func (c *HTTPClient) post(ctx context.Context, path string, reqBody any, out any) error {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *HTTPClient) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	return c.do(req, out)
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return statusError(resp.StatusCode, body)
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) Unlock(ctx context.Context, password string) (*models.AuthState, error) {
	var resp struct {
		Success  bool   `json:"success"`
		WallID   string `json:"wallId"`
		WallName string `json:"wallName"`
	}

	req := map[string]string{"password": password}
	if err := c.post(ctx, "/auth", req, &resp); err != nil {
		return nil, err
	}

	return &models.AuthState{
		IsAuthenticated: true,
		WallID:          resp.WallID,
		WallName:        resp.WallName,
	}, nil
}

func (c *HTTPClient) CreateMemo(ctx context.Context, wallID, content, color, password string) (*models.Memo, error) {
	var resp struct {
		Success bool         `json:"success"`
		Memo    *models.Memo `json:"memo"`
	}

	req := map[string]string{
		"wall_id":  wallID,
		"content":  content,
		"color":    color,
		"password": password,
	}
	if err := c.post(ctx, "/memos/create", req, &resp); err != nil {
		return nil, err
	}
	return resp.Memo, nil
}

func (c *HTTPClient) ListMemos(ctx context.Context, wallID string) ([]*models.Memo, error) {
	var resp struct {
		Success bool           `json:"success"`
		Memos   []*models.Memo `json:"memos"`
	}

	q := url.Values{"wall_id": {wallID}}
	if err := c.get(ctx, "/memos", q, &resp); err != nil {
		return nil, err
	}
	return resp.Memos, nil
}

func (c *HTTPClient) VerifyMemo(ctx context.Context, memoID, password string) error {
	req := map[string]string{"memoId": memoID, "password": password}
	return c.post(ctx, "/memos/verify", req, nil)
}

func (c *HTTPClient) UpdateMemo(ctx context.Context, memoID, password string, content *string, color *string, isPinned *bool) (*models.Memo, error) {
	var resp struct {
		Success bool         `json:"success"`
		Memo    *models.Memo `json:"memo"`
	}

	req := map[string]any{"memoId": memoID, "password": password}
	if content != nil {
		req["content"] = *content
	}
	if color != nil {
		req["color"] = *color
	}
	if isPinned != nil {
		req["is_pinned"] = *isPinned
	}

	if err := c.post(ctx, "/memos/update", req, &resp); err != nil {
		return nil, err
	}
	return resp.Memo, nil
}

func (c *HTTPClient) DeleteMemo(ctx context.Context, memoID, password string) error {
	req := map[string]string{"memoId": memoID, "password": password}
	return c.post(ctx, "/memos/delete", req, nil)
}

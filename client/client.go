// Package client is a small Go consumer of the carpool API. It covers what
// the web frontend needs: authenticated JSON calls and a polling watcher
// for the caller's ride list.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"carpool-backend/dto"
	"carpool-backend/internal/models"
)

type Client struct {
	BaseURL string
	Token   string

	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewBuffer(data)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Message == "" {
			apiErr.Message = resp.Status
		}
		return fmt.Errorf("%s %s: %s", method, path, apiErr.Message)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Login stores the returned token on the client for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	var resp dto.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", dto.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	c.Token = resp.Token
	return resp.User, nil
}

func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	var resp dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	c.Token = resp.Token
	return resp.User, nil
}

// MyCarpools is the call the poller refreshes.
func (c *Client) MyCarpools(ctx context.Context) ([]models.Carpool, error) {
	var carpools []models.Carpool
	if err := c.do(ctx, http.MethodGet, "/carpools/mine", nil, &carpools); err != nil {
		return nil, err
	}
	return carpools, nil
}

func (c *Client) SearchCarpools(ctx context.Context, draft SearchDraft) ([]models.Carpool, error) {
	query := url.Values{}
	if draft.From != "" {
		query.Set("from", draft.From)
	}
	if draft.To != "" {
		query.Set("to", draft.To)
	}
	if !draft.Date.IsZero() {
		query.Set("date", draft.Date.Format("2006-01-02"))
	}
	path := "/carpools"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	var carpools []models.Carpool
	if err := c.do(ctx, http.MethodGet, path, nil, &carpools); err != nil {
		return nil, err
	}
	return carpools, nil
}

func (c *Client) OfferCarpool(ctx context.Context, req dto.CreateCarpoolRequest) (*models.Carpool, error) {
	var cp models.Carpool
	if err := c.do(ctx, http.MethodPost, "/carpools", req, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (c *Client) JoinCarpool(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/carpools/"+id+"/join", nil, nil)
}

func (c *Client) Notifications(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := c.do(ctx, http.MethodGet, "/notifications", nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

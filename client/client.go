// Package client is a thin Go client for the sacristy HTTP API, with a short
// TTL cache over immutable lookups (parishes and dioceses are create-only).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	sacristy "github.com/openparish/sacristy"
	"github.com/openparish/sacristy/internal/domain"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	client  *http.Client
	cache   *cache.Cache
	baseURL string
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		client:  &http.Client{Timeout: defaultTimeout},
		cache:   cache.New(5*time.Minute, 10*time.Minute),
		baseURL: baseURL,
	}
}

// Login authenticates and stores the access token for subsequent calls.
func (c *Client) Login(ctx context.Context, username, password string) (sacristy.LoginResponse, error) {
	var resp sacristy.LoginResponse
	err := c.post(ctx, "/api/auth/login", sacristy.LoginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return sacristy.LoginResponse{}, err
	}
	c.token = resp.Token
	return resp, nil
}

// Refresh exchanges a refresh token for a new pair and adopts the new access
// token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (sacristy.LoginResponse, error) {
	var resp sacristy.LoginResponse
	err := c.post(ctx, "/api/auth/refresh", sacristy.RefreshRequest{RefreshToken: refreshToken}, &resp)
	if err != nil {
		return sacristy.LoginResponse{}, err
	}
	c.token = resp.Token
	return resp, nil
}

func (c *Client) ListDioceses(ctx context.Context) ([]domain.Diocese, error) {
	var dioceses []domain.Diocese
	err := c.get(ctx, "/api/dioceses", &dioceses)
	return dioceses, err
}

func (c *Client) CreateDiocese(ctx context.Context, name string) (domain.Diocese, error) {
	var diocese domain.Diocese
	err := c.post(ctx, "/api/dioceses", sacristy.CreateDioceseRequest{Name: name}, &diocese)
	return diocese, err
}

// ListParishes caches per diocese; parishes are create-only so a short TTL
// only delays visibility of additions.
func (c *Client) ListParishes(ctx context.Context, dioceseID int64) ([]domain.Parish, error) {
	key := fmt.Sprintf("parishes:%d", dioceseID)
	if cached, ok := c.cache.Get(key); ok {
		return cached.([]domain.Parish), nil
	}

	var parishes []domain.Parish
	if err := c.get(ctx, fmt.Sprintf("/api/dioceses/%d/parishes", dioceseID), &parishes); err != nil {
		return nil, err
	}
	c.cache.Set(key, parishes, cache.DefaultExpiration)
	return parishes, nil
}

func (c *Client) CreateParish(ctx context.Context, dioceseID int64, req sacristy.CreateParishRequest) (domain.Parish, error) {
	var parish domain.Parish
	err := c.post(ctx, fmt.Sprintf("/api/dioceses/%d/parishes", dioceseID), req, &parish)
	if err == nil {
		c.cache.Delete(fmt.Sprintf("parishes:%d", dioceseID))
	}
	return parish, err
}

func (c *Client) ListBaptisms(ctx context.Context, parishID int64) ([]domain.BaptismView, error) {
	var baptisms []domain.BaptismView
	err := c.get(ctx, fmt.Sprintf("/api/parishes/%d/baptisms", parishID), &baptisms)
	return baptisms, err
}

func (c *Client) GetBaptism(ctx context.Context, id int64) (domain.BaptismView, error) {
	var baptism domain.BaptismView
	err := c.get(ctx, fmt.Sprintf("/api/baptisms/%d", id), &baptism)
	return baptism, err
}

func (c *Client) CreateBaptism(ctx context.Context, parishID int64, req sacristy.CreateBaptismRequest) (domain.Baptism, error) {
	var baptism domain.Baptism
	err := c.post(ctx, fmt.Sprintf("/api/parishes/%d/baptisms", parishID), req, &baptism)
	return baptism, err
}

func (c *Client) UpdateBaptismNote(ctx context.Context, id int64, note string) (domain.BaptismView, error) {
	var baptism domain.BaptismView
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/baptisms/%d", id), sacristy.UpdateBaptismRequest{Note: note}, &baptism)
	return baptism, err
}

func (c *Client) BaptismNotes(ctx context.Context, id int64) ([]domain.BaptismNote, error) {
	var notes []domain.BaptismNote
	err := c.get(ctx, fmt.Sprintf("/api/baptisms/%d/notes", id), &notes)
	return notes, err
}

func (c *Client) EmailBaptismCertificate(ctx context.Context, id int64, email string) error {
	return c.post(ctx, fmt.Sprintf("/api/baptisms/%d/email-certificate", id), map[string]string{"email": email}, nil)
}

func (c *Client) ListCommunions(ctx context.Context, parishID int64) ([]domain.CommunionView, error) {
	var communions []domain.CommunionView
	err := c.get(ctx, fmt.Sprintf("/api/parishes/%d/communions", parishID), &communions)
	return communions, err
}

func (c *Client) CreateCommunion(ctx context.Context, req sacristy.CreateCommunionRequest) (domain.Communion, error) {
	var communion domain.Communion
	err := c.post(ctx, "/api/communions", req, &communion)
	return communion, err
}

func (c *Client) ListConfirmations(ctx context.Context, parishID int64) ([]domain.ConfirmationView, error) {
	var confirmations []domain.ConfirmationView
	err := c.get(ctx, fmt.Sprintf("/api/parishes/%d/confirmations", parishID), &confirmations)
	return confirmations, err
}

func (c *Client) GetConfirmation(ctx context.Context, id int64) (domain.ConfirmationView, error) {
	var confirmation domain.ConfirmationView
	err := c.get(ctx, fmt.Sprintf("/api/confirmations/%d", id), &confirmation)
	return confirmation, err
}

func (c *Client) CreateConfirmation(ctx context.Context, req sacristy.CreateConfirmationRequest) (domain.Confirmation, error) {
	var confirmation domain.Confirmation
	err := c.post(ctx, "/api/confirmations", req, &confirmation)
	return confirmation, err
}

func (c *Client) ListMarriages(ctx context.Context, parishID int64) ([]domain.MarriageView, error) {
	var marriages []domain.MarriageView
	err := c.get(ctx, fmt.Sprintf("/api/parishes/%d/marriages", parishID), &marriages)
	return marriages, err
}

func (c *Client) GetMarriage(ctx context.Context, id int64) (domain.MarriageView, error) {
	var marriage domain.MarriageView
	err := c.get(ctx, fmt.Sprintf("/api/marriages/%d", id), &marriage)
	return marriage, err
}

func (c *Client) CreateMarriage(ctx context.Context, req sacristy.CreateMarriageRequest) (domain.MarriageView, error) {
	var marriage domain.MarriageView
	err := c.post(ctx, "/api/marriages", req, &marriage)
	return marriage, err
}

func (c *Client) ListHolyOrders(ctx context.Context) ([]domain.HolyOrderView, error) {
	var orders []domain.HolyOrderView
	err := c.get(ctx, "/api/holy-orders", &orders)
	return orders, err
}

func (c *Client) GetHolyOrder(ctx context.Context, id int64) (domain.HolyOrderView, error) {
	var order domain.HolyOrderView
	err := c.get(ctx, fmt.Sprintf("/api/holy-orders/%d", id), &order)
	return order, err
}

func (c *Client) CreateHolyOrder(ctx context.Context, req sacristy.CreateHolyOrderRequest) (domain.HolyOrder, error) {
	var order domain.HolyOrder
	err := c.post(ctx, "/api/holy-orders", req, &order)
	return order, err
}

func (c *Client) Health(ctx context.Context) error {
	var resp struct {
		OK bool `json:"ok"`
	}
	return c.get(ctx, "/api/health", &resp)
}

func (c *Client) get(ctx context.Context, path string, response any) error {
	return c.do(ctx, http.MethodGet, path, nil, response)
}

func (c *Client) post(ctx context.Context, path string, body, response any) error {
	return c.do(ctx, http.MethodPost, path, body, response)
}

func (c *Client) do(ctx context.Context, method, path string, body, response any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "perform request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: unexpected status code %d", method, path, resp.StatusCode)
	}

	if response == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(response)
}

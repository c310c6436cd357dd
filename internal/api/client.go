// Package api is the REST client for the storefront backend. Every call
// is JSON over HTTPS with bearer-token auth; screens consume it through
// tea.Cmd wrappers and never see the transport.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"tundeajayi/vendaterm/internal/models"
	"tundeajayi/vendaterm/internal/types"
)

type Client struct {
	httpClient *http.Client
	config     Config
	cache      *CatalogCache
	mu         sync.RWMutex
	status     ConnStatus
	token      types.Sensitive
}

const (
	DefaultBaseURL    = "https://api.vendaterm.app"
	DefaultTimeout    = 30 * time.Second
	DefaultRetryCount = 3
	DefaultRetryDelay = 2 * time.Second
	DefaultCacheTTL   = 30 * time.Second
)

func NewClient(config Config) (*Client, error) {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	if config.RetryCount == 0 {
		config.RetryCount = DefaultRetryCount
	}
	if config.RetryDelay == 0 {
		config.RetryDelay = DefaultRetryDelay
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = DefaultCacheTTL
	}

	return &Client{
		httpClient: &http.Client{Timeout: config.Timeout},
		config:     config,
		cache:      NewCatalogCache(config.CacheTTL),
		status: ConnStatus{
			BaseURL:     config.BaseURL,
			Connected:   false,
			LastChecked: time.Now(),
		},
	}, nil
}

// CheckConnection probes the backend health endpoint and records the
// result in the connection status
func (c *Client) CheckConnection() error {
	var health healthResponse
	if err := c.doRequest(http.MethodGet, "/health", nil, &health); err != nil {
		c.updateStatus(false, "")
		return err
	}

	c.updateStatus(true, health.Version)
	return nil
}

func (c *Client) updateStatus(connected bool, version string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.status.Connected = connected
	c.status.Version = version
	c.status.LastChecked = time.Now()
}

func (c *Client) GetStatus() ConnStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.status
}

// SetToken installs the bearer token used on authenticated calls
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = types.Sensitive(token)
}

func (c *Client) ClearToken() {
	c.SetToken("")
}

func (c *Client) HasToken() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return !c.token.IsZero()
}

// Login exchanges credentials for a token and the vendor profile. The
// token is installed on the client for subsequent calls.
func (c *Client) Login(creds Credentials) (*LoginResult, error) {
	var result LoginResult
	if err := c.doRequest(http.MethodPost, "/auth/login", creds, &result); err != nil {
		return nil, err
	}

	c.SetToken(result.Token)
	return &result, nil
}

// Register creates a vendor account and logs it in
func (c *Client) Register(req RegisterRequest) (*LoginResult, error) {
	var result LoginResult
	if err := c.doRequest(http.MethodPost, "/auth/register", req, &result); err != nil {
		return nil, err
	}

	c.SetToken(result.Token)
	return &result, nil
}

// Logout invalidates the token server-side and clears it locally. The
// local clear happens regardless of what the server says.
func (c *Client) Logout() error {
	err := c.doRequest(http.MethodPost, "/auth/logout", nil, nil)
	c.ClearToken()
	c.cache.Invalidate()
	return err
}

func (c *Client) GetProfile() (*models.Vendor, error) {
	var vendor models.Vendor
	if err := c.getWithRetry("/profile", &vendor); err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (c *Client) UpdateProfile(update ProfileUpdate) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := c.doRequest(http.MethodPut, "/profile", update, &vendor); err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (c *Client) ChangePassword(current, newPassword string) error {
	change := PasswordChange{CurrentPassword: current, NewPassword: newPassword}
	return c.doRequest(http.MethodPut, "/profile/password", change, nil)
}

// GetProducts returns the vendor's catalog, served from the TTL cache
// when fresh
func (c *Client) GetProducts() (*models.Catalog, error) {
	if cached, found := c.cache.Get(); found {
		return cached, nil
	}

	var catalog models.Catalog
	if err := c.getWithRetry("/products", &catalog); err != nil {
		return nil, err
	}

	c.cache.Set(&catalog)
	return &catalog, nil
}

func (c *Client) CreateProduct(input ProductInput) (*models.Product, error) {
	var product models.Product
	if err := c.doRequest(http.MethodPost, "/products", input, &product); err != nil {
		return nil, err
	}

	c.cache.Invalidate()
	return &product, nil
}

func (c *Client) UpdateProduct(id string, input ProductInput) (*models.Product, error) {
	var product models.Product
	if err := c.doRequest(http.MethodPut, "/products/"+id, input, &product); err != nil {
		return nil, err
	}

	c.cache.Invalidate()
	return &product, nil
}

func (c *Client) DeleteProduct(id string) error {
	if err := c.doRequest(http.MethodDelete, "/products/"+id, nil, nil); err != nil {
		return err
	}

	c.cache.Invalidate()
	return nil
}

func (c *Client) GetOrders() (*models.OrderList, error) {
	var orders models.OrderList
	if err := c.getWithRetry("/orders", &orders); err != nil {
		return nil, err
	}
	return &orders, nil
}

func (c *Client) UpdateOrderStatus(id string, status models.OrderStatus) (*models.Order, error) {
	body := map[string]string{"status": string(status)}

	var order models.Order
	if err := c.doRequest(http.MethodPatch, "/orders/"+id+"/status", body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// getWithRetry wraps reads in a retry loop with linear backoff. Writes
// go straight to doRequest: replaying a non-idempotent request on an
// ambiguous failure could duplicate it.
func (c *Client) getWithRetry(path string, out interface{}) error {
	var lastErr error

	for attempt := 0; attempt < c.config.RetryCount; attempt++ {
		if attempt > 0 {
			time.Sleep(c.config.RetryDelay * time.Duration(attempt))
		}

		err := c.doRequest(http.MethodGet, path, nil, out)
		if err == nil {
			return nil
		}

		lastErr = err
		if apiErr := Classify(err); apiErr != nil && !apiErr.IsRetryable() {
			break
		}
	}

	return lastErr
}

func (c *Client) doRequest(method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.config.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if !token.IsZero() {
		req.Header.Set("Authorization", "Bearer "+token.Reveal())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		return NewStatusError(resp.StatusCode, envelope.Message)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

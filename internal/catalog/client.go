package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client is a read-only HTTP client for the remote product catalog.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog responded with status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode catalog response: %w", err)
	}

	return nil
}

// ListProducts fetches the full product collection. The order is whatever the
// catalog returns.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.get(ctx, fmt.Sprintf("%s/products", c.baseURL), &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id int) (*Product, error) {
	var p Product
	if err := c.get(ctx, fmt.Sprintf("%s/products/%d", c.baseURL, id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListCategories fetches the category names the catalog knows about.
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.get(ctx, fmt.Sprintf("%s/products/categories", c.baseURL), &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

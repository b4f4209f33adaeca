package product

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client talks to the external product service. Auth failures (401/422) are
// mapped and returned, never handled here: the caller decides whether to
// prompt for re-authentication.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// List fetches products matching the canonical query parameters
// (q, category, min_price, max_price, sort_by, order).
func (c *Client) List(ctx context.Context, params url.Values) ([]Product, error) {
	endpoint := c.baseURL + "/products/"
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var products []Product
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Get(ctx context.Context, id int64) (Product, error) {
	var p Product
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/products/%d", c.baseURL, id), nil, &p)
	return p, err
}

// ==================== ADMIN ====================

func (c *Client) Create(ctx context.Context, req CreateProductRequest) (Product, error) {
	var p Product
	err := c.do(ctx, http.MethodPost, c.baseURL+"/admin/products", req, &p)
	return p, err
}

func (c *Client) Update(ctx context.Context, id int64, req UpdateProductRequest) (Product, error) {
	var p Product
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/admin/products/%d", c.baseURL, id), req, &p)
	return p, err
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/admin/products/%d", c.baseURL, id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return ErrServiceUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrProductNotFound
	case resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusUnprocessableEntity:
		return ErrServiceRejected
	case resp.StatusCode >= 400:
		return ErrServiceUnavailable
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return ErrServiceUnavailable
	}
	return nil
}

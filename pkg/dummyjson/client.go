// Package dummyjson wraps the external dummyjson-style product catalog API.
// Only the product service talks to it; handlers never import this package.
package dummyjson

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"catalog/internal/models"
)

// HTTPError is returned when the remote API answers with a non-success status
// other than 404. A 404 is a normal empty result for get, list, and delete.
type HTTPError struct {
	Op         string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("catalog API: %s returned status %d", e.Op, e.StatusCode)
}

// Client calls the remote product catalog and normalizes its responses into
// the local product shape.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client for the catalog API rooted at baseURL, e.g.
// "https://dummyjson.com/products".
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
	}
}

// remoteProduct is the raw shape the API returns.
type remoteProduct struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       float64         `json:"price"`
	Rating      float64         `json:"rating"`
	Stock       int             `json:"stock"`
	Brand       string          `json:"brand"`
	Images      []string        `json:"images"`
	Tags        []string        `json:"tags"`
	Reviews     []models.Review `json:"reviews"`
}

type listResponse struct {
	Products []remoteProduct `json:"products"`
	Total    int             `json:"total"`
}

func toProduct(r remoteProduct) models.Product {
	return models.Product{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		Rating:      r.Rating,
		Stock:       r.Stock,
		Brand:       r.Brand,
		Images:      r.Images,
		Tags:        r.Tags,
		Reviews:     r.Reviews,
	}
}

func toProducts(rs []remoteProduct) []models.Product {
	products := make([]models.Product, 0, len(rs))
	for _, r := range rs {
		products = append(products, toProduct(r))
	}
	return products
}

// do issues the request and decodes the body into out. A 404 reports itself
// through the bool so each operation can decide what "not found" means.
func (c *Client) do(ctx context.Context, op, method, rawURL string, body any, out any) (found bool, err error) {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return false, fmt.Errorf("failed to marshal %s request: %w", op, err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return false, fmt.Errorf("failed to create %s request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to call %s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, &HTTPError{Op: op, StatusCode: resp.StatusCode}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return false, fmt.Errorf("failed to decode %s response: %w", op, err)
		}
	}
	return true, nil
}

// ListProducts fetches the full remote catalog.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var res listResponse
	found, err := c.do(ctx, "list products", http.MethodGet, c.baseURL, nil, &res)
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.Product{}, nil
	}
	return toProducts(res.Products), nil
}

// GetProduct fetches one product, or nil when the remote does not have it.
func (c *Client) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	var r remoteProduct
	found, err := c.do(ctx, "get product", http.MethodGet, fmt.Sprintf("%s/%d", c.baseURL, id), nil, &r)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	product := toProduct(r)
	return &product, nil
}

// SearchProducts runs a remote text search.
func (c *Client) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	var res listResponse
	searchURL := fmt.Sprintf("%s/search?q=%s", c.baseURL, url.QueryEscape(query))
	found, err := c.do(ctx, "search products", http.MethodGet, searchURL, nil, &res)
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.Product{}, nil
	}
	return toProducts(res.Products), nil
}

// ProductsByCategory lists a remote category. An unknown category is an empty
// list, not an error.
func (c *Client) ProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	var res listResponse
	categoryURL := fmt.Sprintf("%s/category/%s", c.baseURL, url.PathEscape(category))
	found, err := c.do(ctx, "products by category", http.MethodGet, categoryURL, nil, &res)
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.Product{}, nil
	}
	return toProducts(res.Products), nil
}

// CreateProduct creates a product on the remote catalog. The remote echoes
// the payload with an id; the rating always starts at zero.
func (c *Client) CreateProduct(ctx context.Context, dto models.CreateProductDTO) (*models.Product, error) {
	var r remoteProduct
	_, err := c.do(ctx, "create product", http.MethodPost, c.baseURL+"/add", dto, &r)
	if err != nil {
		return nil, err
	}
	product := toProduct(r)
	product.Rating = 0
	return &product, nil
}

// UpdateProduct updates a remote product, or returns nil when it is absent.
func (c *Client) UpdateProduct(ctx context.Context, id int, dto models.UpdateProductDTO) (*models.Product, error) {
	var r remoteProduct
	found, err := c.do(ctx, "update product", http.MethodPut, fmt.Sprintf("%s/%d", c.baseURL, id), dto, &r)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	product := toProduct(r)
	return &product, nil
}

// DeleteProduct deletes a remote product and reports whether it existed.
func (c *Client) DeleteProduct(ctx context.Context, id int) (bool, error) {
	return c.do(ctx, "delete product", http.MethodDelete, fmt.Sprintf("%s/%d", c.baseURL, id), nil, nil)
}

// ListCategories fetches the flat list of category names.
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	found, err := c.do(ctx, "list categories", http.MethodGet, c.baseURL+"/category-list", nil, &categories)
	if err != nil {
		return nil, err
	}
	if !found {
		return []string{}, nil
	}
	return categories, nil
}

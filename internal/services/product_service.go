package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"catalog/internal/models"
	"catalog/internal/repositories"
)

// CatalogClient is the read surface of the remote product catalog the service
// falls back to when the local store cannot answer.
type CatalogClient interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int) (*models.Product, error)
	SearchProducts(ctx context.Context, query string) ([]models.Product, error)
	ProductsByCategory(ctx context.Context, category string) ([]models.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
}

// EventPublisher publishes product lifecycle events. *rabbitmq.Client
// satisfies it; a nil publisher disables events.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// ProductService merges the local product store with the remote catalog.
// Reads prefer local data and fall through to the remote; writes are always
// local, with the store owning id assignment.
type ProductService struct {
	store    repositories.ProductStore
	catalog  CatalogClient
	mqClient EventPublisher
}

// NewProductService creates a new ProductService. mqClient may be nil, in
// which case no events are published.
func NewProductService(store repositories.ProductStore, catalog CatalogClient, mqClient EventPublisher) *ProductService {
	return &ProductService{
		store:    store,
		catalog:  catalog,
		mqClient: mqClient,
	}
}

// GetAllProducts returns the local records when any exist. Otherwise it
// fetches the remote catalog and seeds the store with it, so the remote is
// consulted at most once for the full list.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	local, err := s.store.GetAll()
	if err != nil {
		return nil, err
	}
	if len(local) > 0 {
		return local, nil
	}

	remote, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	// Seeding is opportunistic; a store failure must not fail the read.
	if err := s.store.Seed(remote); err != nil {
		log.Printf("Warning: failed to seed local store with %d remote products: %v", len(remote), err)
	}
	return remote, nil
}

// GetProductByID returns the local record when present, otherwise asks the
// remote catalog. A miss on both sides is (nil, nil).
func (s *ProductService) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	local, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if local != nil {
		return local, nil
	}
	return s.catalog.GetProduct(ctx, id)
}

// SearchProducts matches the query case-insensitively against title or
// description of the local records; when nothing matches locally it falls
// through to the remote search.
func (s *ProductService) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	local, err := s.store.GetAll()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matched := make([]models.Product, 0)
	for _, p := range local {
		if strings.Contains(strings.ToLower(p.Title), q) || strings.Contains(strings.ToLower(p.Description), q) {
			matched = append(matched, p)
		}
	}
	if len(matched) > 0 {
		return matched, nil
	}
	return s.catalog.SearchProducts(ctx, query)
}

// GetProductsByCategory matches the category case-insensitively and exactly
// against the local records, falling through to the remote when nothing
// matches locally.
func (s *ProductService) GetProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	local, err := s.store.GetAll()
	if err != nil {
		return nil, err
	}

	matched := make([]models.Product, 0)
	for _, p := range local {
		if strings.EqualFold(p.Category, category) {
			matched = append(matched, p)
		}
	}
	if len(matched) > 0 {
		return matched, nil
	}
	return s.catalog.ProductsByCategory(ctx, category)
}

// GetAllCategories is always proxied live to the remote catalog; categories
// are never cached locally.
func (s *ProductService) GetAllCategories(ctx context.Context) ([]string, error) {
	return s.catalog.ListCategories(ctx)
}

// CreateProduct stores a new product locally. The rating always starts at 0
// and the id comes from the store, never the caller.
func (s *ProductService) CreateProduct(ctx context.Context, dto models.CreateProductDTO) (*models.Product, error) {
	product := models.Product{
		Title:       dto.Title,
		Description: dto.Description,
		Category:    dto.Category,
		Price:       dto.Price,
		Rating:      0,
		Stock:       int(dto.Stock),
		Brand:       dto.Brand,
		Images:      dto.Images,
		Tags:        dto.Tags,
	}

	created, err := s.store.Add(product)
	if err != nil {
		return nil, err
	}
	s.publishEvent("product.created", created)
	return created, nil
}

// UpdateProduct applies a partial update to the local record, or returns
// (nil, nil) when the id is absent.
func (s *ProductService) UpdateProduct(ctx context.Context, id int, dto models.UpdateProductDTO) (*models.Product, error) {
	updated, err := s.store.Update(id, dto)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}
	s.publishEvent("product.updated", updated)
	return updated, nil
}

// DeleteProduct removes the local record and reports whether one was removed.
func (s *ProductService) DeleteProduct(ctx context.Context, id int) (bool, error) {
	removed, err := s.store.Delete(id)
	if err != nil {
		return false, err
	}
	if removed {
		s.publishEvent("product.deleted", map[string]int{"id": id})
	}
	return removed, nil
}

// publishEvent sends a product event when a publisher is configured. Event
// failures are logged and never fail the write that triggered them.
func (s *ProductService) publishEvent(event string, payload any) {
	if s.mqClient == nil {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", event, err)
		return
	}
	if err := s.mqClient.Publish(event, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}

package repositories

import (
	"sync"

	"catalog/internal/models"
)

// MemoryProductStore is an in-memory implementation of ProductStore. Records
// live in a slice so GetAll preserves insertion order; everything is lost on
// process restart.
type MemoryProductStore struct {
	mu       sync.RWMutex
	products []models.Product
	nextID   int
}

// NewMemoryProductStore creates an empty in-memory store.
func NewMemoryProductStore() *MemoryProductStore {
	return &MemoryProductStore{
		nextID: firstID,
	}
}

// Add stores the product under the next id and returns the stored record.
func (s *MemoryProductStore) Add(product models.Product) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product.ID = s.nextID
	s.nextID++
	s.products = append(s.products, product)

	stored := product
	return &stored, nil
}

// GetAll returns a copy of all records in insertion order.
func (s *MemoryProductStore) GetAll() ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// GetByID returns the record or nil when absent.
func (s *MemoryProductStore) GetByID(id int) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

// Update merges present fields over the stored record, or returns nil when
// the id is absent.
func (s *MemoryProductStore) Update(id int, updates models.UpdateProductDTO) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			updates.Apply(&s.products[i])
			updated := s.products[i]
			return &updated, nil
		}
	}
	return nil, nil
}

// Delete removes the record and reports whether one was removed.
func (s *MemoryProductStore) Delete(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Seed inserts records keeping their ids and advances the counter past the
// highest one.
func (s *MemoryProductStore) Seed(products []models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range products {
		s.products = append(s.products, p)
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
	return nil
}

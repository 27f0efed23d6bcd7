package repositories

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"catalog/internal/models"
)

// FileProductStore is a file-backed implementation of ProductStore. The whole
// record set lives in one JSON array file, loaded lazily at most once per
// process and rewritten in full on every mutation. A missing or unparsable
// file means an empty store, never an error.
//
// There is no file locking: concurrent writers can race and the later write
// wins in full. The system runs a single in-process store instance, which is
// why this is acceptable.
type FileProductStore struct {
	mu       sync.RWMutex
	loadOnce sync.Once
	path     string
	products []models.Product
	nextID   int
}

// NewFileProductStore creates a store backed by the JSON file at path. The
// file is not touched until the first operation.
func NewFileProductStore(path string) *FileProductStore {
	return &FileProductStore{
		path:   path,
		nextID: firstID,
	}
}

// load reads the backing file once. Concurrent callers during the initial
// load block on the sync.Once rather than double-loading.
func (s *FileProductStore) load() {
	s.loadOnce.Do(func() {
		data, err := os.ReadFile(s.path)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Printf("Could not read product file %s, starting empty: %v", s.path, err)
			}
			return
		}

		var products []models.Product
		if err := json.Unmarshal(data, &products); err != nil {
			log.Printf("Could not parse product file %s, starting empty: %v", s.path, err)
			return
		}

		s.products = products
		// Restarts must never reuse an id.
		for _, p := range products {
			if p.ID >= s.nextID {
				s.nextID = p.ID + 1
			}
		}
	})
}

// persist serializes the entire record set back to the backing file. Caller
// must hold the write lock.
func (s *FileProductStore) persist() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory %s: %w", dir, err)
		}
	}

	data, err := json.MarshalIndent(s.products, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal products: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write product file %s: %w", s.path, err)
	}
	return nil
}

// Add stores the product under the next id, persists, and returns the record.
func (s *FileProductStore) Add(product models.Product) (*models.Product, error) {
	s.load()
	s.mu.Lock()
	defer s.mu.Unlock()

	product.ID = s.nextID
	s.nextID++
	s.products = append(s.products, product)

	if err := s.persist(); err != nil {
		return nil, err
	}
	stored := product
	return &stored, nil
}

// GetAll returns a copy of all records in insertion order.
func (s *FileProductStore) GetAll() ([]models.Product, error) {
	s.load()
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// GetByID returns the record or nil when absent.
func (s *FileProductStore) GetByID(id int) (*models.Product, error) {
	s.load()
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

// Update merges present fields over the stored record and persists, or
// returns nil when the id is absent.
func (s *FileProductStore) Update(id int, updates models.UpdateProductDTO) (*models.Product, error) {
	s.load()
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			updates.Apply(&s.products[i])
			if err := s.persist(); err != nil {
				return nil, err
			}
			updated := s.products[i]
			return &updated, nil
		}
	}
	return nil, nil
}

// Delete removes the record, persists, and reports whether one was removed.
func (s *FileProductStore) Delete(id int) (bool, error) {
	s.load()
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			if err := s.persist(); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Seed inserts records keeping their ids, advances the counter past them,
// and persists.
func (s *FileProductStore) Seed(products []models.Product) error {
	s.load()
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range products {
		s.products = append(s.products, p)
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
	return s.persist()
}

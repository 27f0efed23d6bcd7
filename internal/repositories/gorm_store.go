package repositories

import (
	"errors"
	"fmt"

	"catalog/internal/models"

	"gorm.io/gorm"
)

// GormProductStore is a database-backed implementation of ProductStore. It
// keeps the same id and merge semantics as the in-memory and file variants so
// the service layer cannot tell the drivers apart.
type GormProductStore struct {
	db *gorm.DB
}

// NewGormProductStore migrates the product table and returns the store.
func NewGormProductStore(db *gorm.DB) (*GormProductStore, error) {
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		return nil, fmt.Errorf("failed to migrate products table: %w", err)
	}
	return &GormProductStore{db: db}, nil
}

// nextID returns the id for a new record: one past the highest stored id,
// never below the local range floor.
func (s *GormProductStore) nextID() (int, error) {
	var maxID int
	err := s.db.Model(&models.Product{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&maxID).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute next product id: %w", err)
	}
	if maxID+1 > firstID {
		return maxID + 1, nil
	}
	return firstID, nil
}

// Add stores the product under a freshly assigned id.
func (s *GormProductStore) Add(product models.Product) (*models.Product, error) {
	id, err := s.nextID()
	if err != nil {
		return nil, err
	}
	product.ID = id

	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

// GetAll returns all records in insertion (id) order.
func (s *GormProductStore) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID returns the record or nil when absent.
func (s *GormProductStore) GetByID(id int) (*models.Product, error) {
	var product models.Product
	err := s.db.First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return &product, nil
}

// Update merges present fields over the stored record, or returns nil when
// the id is absent.
func (s *GormProductStore) Update(id int, updates models.UpdateProductDTO) (*models.Product, error) {
	product, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	updates.Apply(product)
	if err := s.db.Save(product).Error; err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", id, err)
	}
	return product, nil
}

// Delete removes the record and reports whether one was removed.
func (s *GormProductStore) Delete(id int) (bool, error) {
	res := s.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete product %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Seed inserts records keeping their ids.
func (s *GormProductStore) Seed(products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	if err := s.db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	return nil
}

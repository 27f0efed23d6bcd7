package repositories

import (
	"catalog/internal/models"
)

// ProductStore defines the interface for the local product collection that
// overrides and supplements the remote catalog.
//
// All lookups are fail-soft: a missing id yields (nil, nil) from GetByID and
// Update and (false, nil) from Delete. Errors are reserved for storage
// failures (file I/O, database errors).
type ProductStore interface {
	// Add stores the product under a freshly assigned id and returns the
	// stored record. Any id on the input is ignored.
	Add(product models.Product) (*models.Product, error)
	// GetAll returns a copy of every record in insertion order.
	GetAll() ([]models.Product, error)
	// GetByID returns the record or nil when absent.
	GetByID(id int) (*models.Product, error)
	// Update merges the fields present in the DTO over the stored record and
	// returns the result, or nil when the id is absent.
	Update(id int, updates models.UpdateProductDTO) (*models.Product, error)
	// Delete removes the record and reports whether one was removed.
	Delete(id int) (bool, error)
	// Seed inserts records keeping their existing ids, advancing the id
	// counter past them. Used to populate the store from the remote catalog.
	Seed(products []models.Product) error
}

// firstID is where locally assigned product ids start. Seeded remote records
// keep their own (lower) ids, so the two ranges stay disjoint.
const firstID = 1000

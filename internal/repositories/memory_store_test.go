package repositories_test

import (
	"testing"

	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func pen() models.Product {
	return models.Product{
		Title:       "Pen",
		Description: "A ballpoint pen",
		Category:    "stationery",
		Price:       1.5,
		Stock:       10,
		Brand:       "Bic",
		Images:      []string{"https://cdn.example.com/pen.png"},
	}
}

func TestMemoryStore_AddAssignsSequentialIDs(t *testing.T) {
	store := repositories.NewMemoryProductStore()

	first, err := store.Add(pen())
	assert.NoError(t, err)
	assert.Equal(t, 1000, first.ID)

	second, err := store.Add(pen())
	assert.NoError(t, err)
	assert.Equal(t, 1001, second.ID)

	all, err := store.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, 1000, all[0].ID)
	assert.Equal(t, 1001, all[1].ID)
}

func TestMemoryStore_GetByID(t *testing.T) {
	store := repositories.NewMemoryProductStore()
	created, _ := store.Add(pen())

	found, err := store.GetByID(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created, found)

	missing, err := store.GetByID(9999)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryStore_UpdateMergesOnlyPresentFields(t *testing.T) {
	store := repositories.NewMemoryProductStore()
	created, _ := store.Add(pen())

	price := 9.99
	updated, err := store.Update(created.ID, models.UpdateProductDTO{Price: &price})

	assert.NoError(t, err)
	assert.Equal(t, 9.99, updated.Price)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Stock, updated.Stock)
	assert.Equal(t, created.Brand, updated.Brand)
	assert.Equal(t, created.Images, updated.Images)
}

func TestMemoryStore_UpdateExplicitEmptySliceOverwrites(t *testing.T) {
	store := repositories.NewMemoryProductStore()
	created, _ := store.Add(pen())

	empty := []string{}
	updated, err := store.Update(created.ID, models.UpdateProductDTO{Images: &empty})

	assert.NoError(t, err)
	assert.Empty(t, updated.Images)
}

func TestMemoryStore_UpdateMissingID(t *testing.T) {
	store := repositories.NewMemoryProductStore()

	title := "Anything"
	updated, err := store.Update(42, models.UpdateProductDTO{Title: &title})

	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func TestMemoryStore_DeleteIsIdempotentlyFalse(t *testing.T) {
	store := repositories.NewMemoryProductStore()
	created, _ := store.Add(pen())

	removed, err := store.Delete(created.ID)
	assert.NoError(t, err)
	assert.True(t, removed)

	found, _ := store.GetByID(created.ID)
	assert.Nil(t, found)

	removed, err = store.Delete(created.ID)
	assert.NoError(t, err)
	assert.False(t, removed)
}

func TestMemoryStore_GetAllReturnsACopy(t *testing.T) {
	store := repositories.NewMemoryProductStore()
	store.Add(pen())

	all, _ := store.GetAll()
	all[0].Title = "Mutated"

	again, _ := store.GetAll()
	assert.Equal(t, "Pen", again[0].Title)
}

func TestMemoryStore_SeedKeepsIDsAndAdvancesCounter(t *testing.T) {
	store := repositories.NewMemoryProductStore()

	seeded := []models.Product{
		{ID: 1, Title: "Remote One"},
		{ID: 2, Title: "Remote Two"},
	}
	assert.NoError(t, store.Seed(seeded))

	all, _ := store.GetAll()
	assert.Len(t, all, 2)
	assert.Equal(t, 1, all[0].ID)

	// Locally created records still land in the local id range.
	created, _ := store.Add(pen())
	assert.Equal(t, 1000, created.ID)
}

func TestMemoryStore_SeedWithHighIDsBumpsCounter(t *testing.T) {
	store := repositories.NewMemoryProductStore()

	assert.NoError(t, store.Seed([]models.Product{{ID: 2000, Title: "High"}}))

	created, _ := store.Add(pen())
	assert.Equal(t, 2001, created.ID)
}

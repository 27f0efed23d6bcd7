package validators_test

import (
	"strings"
	"testing"

	"catalog/internal/models"
	"catalog/internal/validators"

	"github.com/stretchr/testify/assert"
)

func validCreate() models.CreateProductDTO {
	return models.CreateProductDTO{
		Title:       "Ballpoint Pen",
		Description: "A fine blue ballpoint pen",
		Category:    "stationery",
		Price:       1.5,
		Stock:       10,
		Brand:       "Bic",
		Images:      []string{"https://cdn.example.com/pen.png"},
	}
}

func TestValidateCreateProduct_Valid(t *testing.T) {
	assert.Empty(t, validators.ValidateCreateProduct(validCreate()))
}

func TestValidateCreateProduct_MissingEverything(t *testing.T) {
	errs := validators.ValidateCreateProduct(models.CreateProductDTO{})

	assert.Contains(t, errs, "Title is required")
	assert.Contains(t, errs, "Description is required")
	assert.Contains(t, errs, "Category is required")
	assert.Contains(t, errs, "Price must be greater than 0")
	assert.Contains(t, errs, "Stock must be greater than 0")
	assert.Contains(t, errs, "Brand is required")
	assert.Contains(t, errs, "Images must be a non-empty array of strings")
}

func TestValidateCreateProduct_CollectsAllViolations(t *testing.T) {
	p := validCreate()
	p.Title = "ab"
	p.Price = 0
	p.Stock = 1.5
	p.Images = []string{}

	errs := validators.ValidateCreateProduct(p)

	assert.GreaterOrEqual(t, len(errs), 4)
	assert.Contains(t, errs, "Title must be between 3 and 60 characters long")
	assert.Contains(t, errs, "Price must be greater than 0")
	assert.Contains(t, errs, "Stock must be an integer")
	assert.Contains(t, errs, "Images must be a non-empty array of strings")
}

func TestValidateCreateProduct_LengthLimits(t *testing.T) {
	p := validCreate()
	p.Title = strings.Repeat("x", 61)
	p.Description = strings.Repeat("x", 501)
	p.Brand = strings.Repeat("x", 61)

	errs := validators.ValidateCreateProduct(p)

	assert.Contains(t, errs, "Title must be between 3 and 60 characters long")
	assert.Contains(t, errs, "Description must be less than 500 characters long")
	assert.Contains(t, errs, "Brand must be less than 60 characters long")
}

func TestValidateCreateProduct_RejectsNonURLImages(t *testing.T) {
	p := validCreate()
	p.Images = []string{"not a url"}

	assert.Contains(t, validators.ValidateCreateProduct(p), "Images must be valid URLs")
}

func TestValidateUpdateProduct_EmptyPayloadIsValid(t *testing.T) {
	assert.Empty(t, validators.ValidateUpdateProduct(models.UpdateProductDTO{}))
}

func TestValidateUpdateProduct_OnlyChecksPresentFields(t *testing.T) {
	title := "ab"
	p := models.UpdateProductDTO{Title: &title}

	errs := validators.ValidateUpdateProduct(p)

	assert.Equal(t, []string{"Title must be between 3 and 60 characters long"}, errs)
}

func TestValidateUpdateProduct_ExplicitEmptyImagesRejected(t *testing.T) {
	images := []string{}
	p := models.UpdateProductDTO{Images: &images}

	assert.Contains(t, validators.ValidateUpdateProduct(p), "Images must be a non-empty array of strings")
}

func TestValidateUpdateProduct_FractionalStock(t *testing.T) {
	stock := 2.5
	p := models.UpdateProductDTO{Stock: &stock}

	assert.Contains(t, validators.ValidateUpdateProduct(p), "Stock must be an integer")
}

func TestValidateProductID(t *testing.T) {
	assert.Empty(t, validators.ValidateProductID("1000"))
	assert.Contains(t, validators.ValidateProductID("abc"), "ID must be a valid number")
	assert.Contains(t, validators.ValidateProductID(""), "ID must be a valid number")
	assert.Contains(t, validators.ValidateProductID("0"), "ID must be greater than 0")
	assert.Contains(t, validators.ValidateProductID("-5"), "ID must be greater than 0")
}

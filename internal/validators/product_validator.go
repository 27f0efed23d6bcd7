// Package validators checks incoming product payloads and id strings. Each
// function returns an ordered list of human-readable messages; any message
// means the request is rejected with the full list.
package validators

import (
	"math"
	"strconv"

	"catalog/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateCreateProduct checks a create payload. Every field is required.
func ValidateCreateProduct(p models.CreateProductDTO) []string {
	var errors []string

	if p.Title == "" {
		errors = append(errors, "Title is required")
	} else if len(p.Title) < 3 || len(p.Title) > 60 {
		errors = append(errors, "Title must be between 3 and 60 characters long")
	}

	if p.Description == "" {
		errors = append(errors, "Description is required")
	} else if len(p.Description) > 500 {
		errors = append(errors, "Description must be less than 500 characters long")
	}

	if p.Category == "" {
		errors = append(errors, "Category is required")
	}

	if p.Price <= 0 {
		errors = append(errors, "Price must be greater than 0")
	}

	if p.Stock <= 0 {
		errors = append(errors, "Stock must be greater than 0")
	} else if p.Stock != math.Trunc(p.Stock) {
		errors = append(errors, "Stock must be an integer")
	}

	if p.Brand == "" {
		errors = append(errors, "Brand is required")
	} else if len(p.Brand) > 60 {
		errors = append(errors, "Brand must be less than 60 characters long")
	}

	if len(p.Images) == 0 {
		errors = append(errors, "Images must be a non-empty array of strings")
	} else if !validImageURLs(p.Images) {
		errors = append(errors, "Images must be valid URLs")
	}

	return errors
}

// ValidateUpdateProduct checks a partial update payload. The same per-field
// rules as create, applied only to fields present in the payload.
func ValidateUpdateProduct(p models.UpdateProductDTO) []string {
	var errors []string

	if p.Title != nil && (len(*p.Title) < 3 || len(*p.Title) > 60) {
		errors = append(errors, "Title must be between 3 and 60 characters long")
	}

	if p.Description != nil && len(*p.Description) > 500 {
		errors = append(errors, "Description must be less than 500 characters long")
	}

	if p.Category != nil && len(*p.Category) > 60 {
		errors = append(errors, "Category must be less than 60 characters long")
	}

	if p.Price != nil && *p.Price <= 0 {
		errors = append(errors, "Price must be greater than 0")
	}

	if p.Stock != nil {
		if *p.Stock <= 0 {
			errors = append(errors, "Stock must be greater than 0")
		} else if *p.Stock != math.Trunc(*p.Stock) {
			errors = append(errors, "Stock must be an integer")
		}
	}

	if p.Brand != nil && len(*p.Brand) > 60 {
		errors = append(errors, "Brand must be less than 60 characters long")
	}

	if p.Images != nil {
		if len(*p.Images) == 0 {
			errors = append(errors, "Images must be a non-empty array of strings")
		} else if !validImageURLs(*p.Images) {
			errors = append(errors, "Images must be valid URLs")
		}
	}

	return errors
}

// ValidateProductID checks that an id path segment parses to a positive integer.
func ValidateProductID(id string) []string {
	var errors []string

	productID, err := strconv.Atoi(id)
	if err != nil {
		errors = append(errors, "ID must be a valid number")
	} else if productID <= 0 {
		errors = append(errors, "ID must be greater than 0")
	}
	return errors
}

func validImageURLs(images []string) bool {
	for _, img := range images {
		if validate.Var(img, "url") != nil {
			return false
		}
	}
	return true
}

package handlers

import (
	"log"
	"strconv"
	"strings"

	"catalog/internal/models"
	"catalog/internal/pagination"
	"catalog/internal/services"
	"catalog/internal/validators"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app. The static
// segments must be registered before the :id routes so "categories" and
// "search" are not swallowed as ids.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Get("/categories", h.HandleGetCategories)
	productRoutes.Get("/search", h.HandleSearchProducts)
	productRoutes.Get("/category/:category", h.HandleGetProductsByCategory)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Patch("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// pageParams reads the page and limit query parameters with their defaults.
// ok is false when either is below 1, which is the caller's error.
func pageParams(c *fiber.Ctx) (page, limit int, ok bool) {
	page = c.QueryInt("page", 1)
	limit = c.QueryInt("limit", 20)
	return page, limit, page >= 1 && limit >= 1
}

// HandleGetProducts retrieves the merged product list, paginated.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	page, limit, ok := pageParams(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(
			errorResponse("Page and limit must be greater than 0", nil))
	}

	products, err := h.service.GetAllProducts(c.UserContext())
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			errorResponse("Failed to get products", nil))
	}

	return c.JSON(paginatedResponse(pagination.Paginate(products, page, limit)))
}

// HandleCreateProduct creates a new product in the local store.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var dto models.CreateProductDTO
	if err := c.BodyParser(&dto); err != nil {
		log.Printf("Error parsing create product body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(
			errorResponse("Invalid request body", nil))
	}

	if errs := validators.ValidateCreateProduct(dto); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(
			errorResponse("Validation errors", errs))
	}

	created, err := h.service.CreateProduct(c.UserContext(), dto)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			errorResponse("Failed to create product", nil))
	}

	return c.Status(fiber.StatusCreated).JSON(successResponse(created))
}

// HandleGetProductByID retrieves a single product by its numeric id.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	idParam := c.Params("id")
	if errs := validators.ValidateProductID(idParam); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(
			errorResponse("Invalid product ID", errs))
	}
	id, _ := strconv.Atoi(idParam)

	product, err := h.service.GetProductByID(c.UserContext(), id)
	if err != nil {
		log.Printf("Error fetching product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			errorResponse("Error fetching product", nil))
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(
			errorResponse("Product not found", nil))
	}

	return c.JSON(successResponse(product))
}

// HandleUpdateProduct applies a partial update to a product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	idParam := c.Params("id")
	if errs := validators.ValidateProductID(idParam); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(
			errorResponse("Invalid product ID", errs))
	}
	id, _ := strconv.Atoi(idParam)

	var dto models.UpdateProductDTO
	if err := c.BodyParser(&dto); err != nil {
		log.Printf("Error parsing update product body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(
			errorResponse("Invalid request body", nil))
	}

	if errs := validators.ValidateUpdateProduct(dto); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(
			errorResponse("Validation errors", errs))
	}

	updated, err := h.service.UpdateProduct(c.UserContext(), id, dto)
	if err != nil {
		log.Printf("Error updating product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			errorResponse("Error updating product", nil))
	}
	if updated == nil {
		return c.Status(fiber.StatusNotFound).JSON(
			errorResponse("Product not found", nil))
	}

	return c.JSON(successResponse(updated))
}

// HandleDeleteProduct removes a product from the local store.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	idParam := c.Params("id")
	if errs := validators.ValidateProductID(idParam); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(
			errorResponse("Invalid product ID", errs))
	}
	id, _ := strconv.Atoi(idParam)

	removed, err := h.service.DeleteProduct(c.UserContext(), id)
	if err != nil {
		log.Printf("Error deleting product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			errorResponse("Error deleting product", nil))
	}
	if !removed {
		return c.Status(fiber.StatusNotFound).JSON(
			errorResponse("Product not found", nil))
	}

	return c.JSON(successResponse(fiber.Map{"message": "Product deleted"}))
}

// HandleGetCategories lists the category names, proxied live from the remote
// catalog.
func (h *ProductHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories(c.UserContext())
	if err != nil {
		log.Printf("Error fetching categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			errorResponse("Error fetching categories", nil))
	}
	return c.JSON(successResponse(categories))
}

// HandleSearchProducts runs a text search over title and description,
// paginated.
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	query := c.Query("q")
	if strings.TrimSpace(query) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(
			errorResponse("Search reference is required", nil))
	}

	page, limit, ok := pageParams(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(
			errorResponse("Page and limit must be greater than 0", nil))
	}

	products, err := h.service.SearchProducts(c.UserContext(), query)
	if err != nil {
		log.Printf("Error searching products for %q: %v", query, err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			errorResponse("Error searching products", nil))
	}

	return c.JSON(paginatedResponse(pagination.Paginate(products, page, limit)))
}

// HandleGetProductsByCategory lists the products of one category, paginated.
func (h *ProductHandler) HandleGetProductsByCategory(c *fiber.Ctx) error {
	category := strings.TrimSpace(c.Params("category"))
	if category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(
			errorResponse("Category is required", nil))
	}

	page, limit, ok := pageParams(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(
			errorResponse("Page and limit must be greater than 0", nil))
	}

	products, err := h.service.GetProductsByCategory(c.UserContext(), category)
	if err != nil {
		log.Printf("Error fetching products for category %q: %v", category, err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			errorResponse("Error fetching products by category", nil))
	}

	return c.JSON(paginatedResponse(pagination.Paginate(products, page, limit)))
}

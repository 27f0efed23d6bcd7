package handlers

import (
	"catalog/internal/pagination"

	"github.com/gofiber/fiber/v2"
)

// Every endpoint answers with the same envelope: {success, data} on success,
// {success, error, details?} on failure. Paginated list endpoints add a
// pagination block.

func successResponse(data any) fiber.Map {
	return fiber.Map{
		"success": true,
		"data":    data,
	}
}

func errorResponse(message string, details []string) fiber.Map {
	resp := fiber.Map{
		"success": false,
		"error":   message,
	}
	if len(details) > 0 {
		resp["details"] = details
	}
	return resp
}

func paginatedResponse[T any](res pagination.Result[T]) fiber.Map {
	return fiber.Map{
		"success": true,
		"data":    res.Items,
		"pagination": fiber.Map{
			"currentPage":  res.CurrentPage,
			"totalPages":   res.TotalPages,
			"totalItems":   res.TotalItems,
			"itemsPerPage": res.ItemsPerPage,
		},
	}
}

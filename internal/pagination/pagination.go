package pagination

import (
	"math"

	"github.com/gofiber/fiber/v2"
)

// Metadata describes one page of a paginated listing.
type Metadata struct {
	TotalCount  int64 `json:"totalCount"`
	PageSize    int   `json:"pageSize"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	HasPrevious bool  `json:"hasPrevious"`
	HasNext     bool  `json:"hasNext"`
}

// GetPaginationParams extracts pagination parameters from Fiber context with default values
func GetPaginationParams(c *fiber.Ctx, defaultPage, defaultPageSize int) (page int, pageSize int) {
	page = c.QueryInt("page", defaultPage)
	pageSize = c.QueryInt("pageSize", defaultPageSize)

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	return page, pageSize
}

// Calculate calculates the complete pagination metadata for a given total count, page, and page size
func Calculate(totalCount int64, page, pageSize int) Metadata {
	totalPages := int(math.Ceil(float64(totalCount) / float64(pageSize)))

	if totalPages < 0 {
		totalPages = 0
	}

	currentPage := page
	if currentPage > totalPages && totalPages > 0 {
		currentPage = totalPages
	}

	hasPrevious := currentPage > 1
	hasNext := currentPage < totalPages

	if totalCount == 0 {
		hasPrevious = false
		hasNext = false
	}

	return Metadata{
		TotalCount:  totalCount,
		PageSize:    pageSize,
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		HasPrevious: hasPrevious,
		HasNext:     hasNext,
	}
}

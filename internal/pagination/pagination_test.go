package pagination

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name            string
		totalCount      int64
		page            int
		pageSize        int
		expectedTotal   int64
		expectedPage    int
		expectedSize    int
		expectedPages   int
		expectedHasPrev bool
		expectedHasNext bool
	}{
		{
			name:            "Basic pagination",
			totalCount:      100,
			page:            1,
			pageSize:        10,
			expectedTotal:   100,
			expectedPage:    1,
			expectedSize:    10,
			expectedPages:   10,
			expectedHasPrev: false,
			expectedHasNext: true,
		},
		{
			name:            "Middle page",
			totalCount:      100,
			page:            5,
			pageSize:        10,
			expectedTotal:   100,
			expectedPage:    5,
			expectedSize:    10,
			expectedPages:   10,
			expectedHasPrev: true,
			expectedHasNext: true,
		},
		{
			name:            "Last page",
			totalCount:      100,
			page:            10,
			pageSize:        10,
			expectedTotal:   100,
			expectedPage:    10,
			expectedSize:    10,
			expectedPages:   10,
			expectedHasPrev: true,
			expectedHasNext: false,
		},
		{
			name:            "Partial last page",
			totalCount:      95,
			page:            10,
			pageSize:        10,
			expectedTotal:   95,
			expectedPage:    10,
			expectedSize:    10,
			expectedPages:   10,
			expectedHasPrev: true,
			expectedHasNext: false,
		},
		{
			name:            "Empty result set",
			totalCount:      0,
			page:            1,
			pageSize:        10,
			expectedTotal:   0,
			expectedPage:    1,
			expectedSize:    10,
			expectedPages:   0,
			expectedHasPrev: false,
			expectedHasNext: false,
		},
		{
			name:            "Single result",
			totalCount:      1,
			page:            1,
			pageSize:        10,
			expectedTotal:   1,
			expectedPage:    1,
			expectedSize:    10,
			expectedPages:   1,
			expectedHasPrev: false,
			expectedHasNext: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Calculate(tt.totalCount, tt.page, tt.pageSize)

			assert.Equal(t, tt.expectedTotal, result.TotalCount)
			assert.Equal(t, tt.expectedPage, result.CurrentPage)
			assert.Equal(t, tt.expectedSize, result.PageSize)
			assert.Equal(t, tt.expectedPages, result.TotalPages)
			assert.Equal(t, tt.expectedHasPrev, result.HasPrevious)
			assert.Equal(t, tt.expectedHasNext, result.HasNext)
		})
	}
}

func TestGetPaginationParams(t *testing.T) {
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		page, pageSize := GetPaginationParams(c, 1, 25)
		return c.JSON(fiber.Map{"page": page, "pageSize": pageSize})
	})

	tests := []struct {
		name         string
		url          string
		expectedPage int
		expectedSize int
	}{
		{"Defaults when absent", "/items", 1, 25},
		{"Explicit values", "/items?page=3&pageSize=10", 3, 10},
		{"Negative page clamped", "/items?page=-1&pageSize=10", 1, 10},
		{"Zero page size falls back", "/items?page=2&pageSize=0", 2, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.url, nil)
			resp, err := app.Test(req)
			assert.NoError(t, err)
			defer resp.Body.Close()

			var body struct {
				Page     int `json:"page"`
				PageSize int `json:"pageSize"`
			}
			assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.expectedPage, body.Page)
			assert.Equal(t, tt.expectedSize, body.PageSize)
		})
	}
}

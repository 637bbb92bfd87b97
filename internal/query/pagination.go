package query

import (
	"fmt"

	"github.com/emilythestrangee/qanda/backend/internal/models"
)

const (
	MinPageSize     = 1
	MaxPageSize     = 100
	DefaultPageSize = 20
)

// Page is one page of results plus the metadata a caller needs to render
// pagination controls.
type Page[T any] struct {
	Items       []T  `json:"items"`
	TotalCount  int  `json:"total_count"`
	TotalPages  int  `json:"total_pages"`
	PageSize    int  `json:"page_size"`
	CurrentPage int  `json:"current_page"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// ClampPageSize forces a page size into [MinPageSize, MaxPageSize].
func ClampPageSize(size int) int {
	if size < MinPageSize {
		return MinPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

// Paginate derives page metadata from the total count, page size and
// current page. Requesting a page past the end of the result set is not
// an error: the items are empty and the metadata stays correct.
func Paginate[T any](items []T, totalCount, pageSize, currentPage int) (Page[T], error) {
	if currentPage < 0 {
		return Page[T]{}, &models.ValidationError{
			Field:   "page",
			Message: fmt.Sprintf("page must not be negative, got %d", currentPage),
		}
	}
	pageSize = ClampPageSize(pageSize)

	// Return empty array not null
	if items == nil {
		items = []T{}
	}

	totalPages := 0
	if totalCount > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}

	return Page[T]{
		Items:       items,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		PageSize:    pageSize,
		CurrentPage: currentPage,
		HasNext:     (currentPage+1)*pageSize < totalCount,
		HasPrevious: currentPage > 0,
	}, nil
}

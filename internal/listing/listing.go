// Package listing holds the query-string driven ordering and pagination
// parameters shared by the dashboard, the export and the JSON API.
package listing

import (
	"math"
	"slices"

	"gorm.io/gorm"
)

// Sort directions.
const (
	DirAsc  = "asc"
	DirDesc = "desc"
)

// SortRequest holds the raw sort parameters parsed from query strings.
type SortRequest struct {
	Sort string `form:"sort"`
	Dir  string `form:"dir"`
}

// Normalize replaces a sort key outside allowed with fallback and a
// direction other than asc/desc with defaultDir.
func (s SortRequest) Normalize(allowed []string, fallback, defaultDir string) SortRequest {
	if !slices.Contains(allowed, s.Sort) {
		s.Sort = fallback
	}
	if s.Dir != DirAsc && s.Dir != DirDesc {
		s.Dir = defaultDir
	}
	return s
}

// Desc reports whether the direction is descending.
func (s SortRequest) Desc() bool { return s.Dir == DirDesc }

// Reverse returns the opposite direction, used by column toggle links.
func (s SortRequest) Reverse() string {
	if s.Dir == DirAsc {
		return DirDesc
	}
	return DirAsc
}

// PageRequest holds pagination parameters parsed from query strings.
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// Defaults fills in default values when page or page_size are not provided.
func (p *PageRequest) Defaults() {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = 20
	}
}

// Offset returns the SQL OFFSET for the current page.
func (p *PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageResponse wraps a paginated list of items with metadata.
type PageResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// HasPrev reports whether a previous page exists.
func (r PageResponse[T]) HasPrev() bool { return r.Page > 1 }

// HasNext reports whether a following page exists.
func (r PageResponse[T]) HasNext() bool { return r.Page < r.TotalPages }

// NewPageResponse creates a PageResponse from the given data and total count.
func NewPageResponse[T any](data []T, page, pageSize int, totalItems int64) PageResponse[T] {
	totalPages := int(math.Ceil(float64(totalItems) / float64(pageSize)))
	if data == nil {
		data = []T{}
	}
	return PageResponse[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the given page request.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Offset()).Limit(req.PageSize)
	}
}

package models

import (
	"fmt"
	"strings"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// sortableColumns is the whitelist of menu-item columns a client may sort
// by; anything else falls back to the default to keep the ORDER BY clause
// parameter-safe.
var sortableColumns = map[string]bool{
	"id":       true,
	"name":     true,
	"price":    true,
	"category": true,
	"status":   true,
}

// PageRequest carries sanitized pagination and sort parameters. Page is
// zero-based.
type PageRequest struct {
	Page     int
	Size     int
	SortBy   string
	SortDesc bool
}

// NewPageRequest clamps raw query values into a usable request. sort is
// the "field,dir" form ("id,asc" when empty or unrecognized).
func NewPageRequest(page, size int, sort string) PageRequest {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	req := PageRequest{Page: page, Size: size, SortBy: "id"}
	field, dir, _ := strings.Cut(sort, ",")
	field = strings.ToLower(strings.TrimSpace(field))
	if sortableColumns[field] {
		req.SortBy = field
	}
	req.SortDesc = strings.EqualFold(strings.TrimSpace(dir), "desc")
	return req
}

// Order renders the ORDER BY clause. A secondary id sort keeps paging
// stable when the primary column has duplicates.
func (p PageRequest) Order() string {
	dir := "asc"
	if p.SortDesc {
		dir = "desc"
	}
	if p.SortBy == "id" {
		return "id " + dir
	}
	return fmt.Sprintf("%s %s, id asc", p.SortBy, dir)
}

// Offset is the row offset for the current page.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is the paginated response envelope.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// NewPage wraps content with pagination metadata.
func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	pages := int(total) / req.Size
	if int(total)%req.Size != 0 {
		pages++
	}
	return Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}

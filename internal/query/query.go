// internal/query/query.go

// Package query implements the catalog's filter, search and pagination
// semantics. A Criteria is normalized once and then applied identically by
// every store implementation, so SQL-backed and in-memory listings page the
// same way.
package query

import (
	"math"
	"strings"

	"github.com/machineryhub/b2b-backend/internal/models"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 20
)

// Criteria carries the optional filters and pagination parameters of a
// product listing request. Malformed values are never rejected; Normalized
// coerces them to safe defaults.
type Criteria struct {
	Category string
	Location string
	Search   string
	Page     int
	PerPage  int
}

// Normalized returns a copy with filters lowercased and trimmed and with
// pagination coerced: Page < 1 becomes 1, PerPage < 1 becomes 20.
func (c Criteria) Normalized() Criteria {
	c.Category = strings.ToLower(strings.TrimSpace(c.Category))
	c.Location = strings.ToLower(strings.TrimSpace(c.Location))
	c.Search = strings.ToLower(strings.TrimSpace(c.Search))
	if c.Page < 1 {
		c.Page = DefaultPage
	}
	if c.PerPage < 1 {
		c.PerPage = DefaultPerPage
	}
	return c
}

// Offset is the number of rows skipped before the requested page.
func (c Criteria) Offset() int {
	return (c.Page - 1) * c.PerPage
}

// Matches reports whether p satisfies every filter in c. Filters compose with
// AND; the search term matches when it is a substring of the lowercased
// product name, supplier or description. c must be normalized.
func (c Criteria) Matches(p *models.Product) bool {
	if c.Category != "" && strings.ToLower(p.Category) != c.Category {
		return false
	}
	if c.Location != "" && strings.ToLower(p.Location) != c.Location {
		return false
	}
	if c.Search != "" {
		if !strings.Contains(strings.ToLower(p.ProductName), c.Search) &&
			!strings.Contains(strings.ToLower(p.Supplier), c.Search) &&
			!strings.Contains(strings.ToLower(p.Description), c.Search) {
			return false
		}
	}
	return true
}

// TotalPages is ceil(total/perPage), 0 when nothing matched.
func TotalPages(total int64, perPage int) int {
	if total == 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(perPage)))
}

// Result is one page of a product listing.
type Result struct {
	Total      int64
	Page       int
	PerPage    int
	TotalPages int
	Items      []models.Product
}

// internal/query/query_test.go
package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/machineryhub/b2b-backend/internal/models"
)

func TestNormalizedDefaults(t *testing.T) {
	tests := []struct {
		name        string
		in          Criteria
		wantPage    int
		wantPerPage int
	}{
		{"zero values", Criteria{}, 1, 20},
		{"negative page", Criteria{Page: -3, PerPage: 10}, 1, 10},
		{"zero per_page", Criteria{Page: 2, PerPage: 0}, 2, 20},
		{"valid values kept", Criteria{Page: 4, PerPage: 5}, 4, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalized()
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPerPage, got.PerPage)
		})
	}
}

func TestNormalizedLowercasesFilters(t *testing.T) {
	got := Criteria{Category: " CNC ", Location: "China", Search: " Drill Press "}.Normalized()

	assert.Equal(t, "cnc", got.Category)
	assert.Equal(t, "china", got.Location)
	assert.Equal(t, "drill press", got.Search)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Criteria{Page: 1, PerPage: 20}.Offset())
	assert.Equal(t, 40, Criteria{Page: 3, PerPage: 20}.Offset())
	assert.Equal(t, 10, Criteria{Page: 3, PerPage: 5}.Offset())
}

func TestMatches(t *testing.T) {
	p := &models.Product{
		ProductName: "CNC Vertical Machining Center",
		Supplier:    "Shanghai Precision Machinery Ltd.",
		Category:    "cnc",
		Location:    "china",
		Description: "High precision 3-axis machining center",
	}

	tests := []struct {
		name string
		c    Criteria
		want bool
	}{
		{"no filters", Criteria{}, true},
		{"category match", Criteria{Category: "CNC"}, true},
		{"category mismatch", Criteria{Category: "lathe"}, false},
		{"location match", Criteria{Location: "China"}, true},
		{"location mismatch", Criteria{Location: "india"}, false},
		{"search in name", Criteria{Search: "vertical"}, true},
		{"search in supplier", Criteria{Search: "shanghai"}, true},
		{"search in description", Criteria{Search: "3-axis"}, true},
		{"search no match", Criteria{Search: "hydraulic"}, false},
		{"filters compose with AND", Criteria{Category: "cnc", Location: "india"}, false},
		{"all filters match", Criteria{Category: "cnc", Location: "china", Search: "precision"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Normalized().Matches(p))
		})
	}
}

func TestMatchesEmptyDescription(t *testing.T) {
	p := &models.Product{ProductName: "Radial Drill", Supplier: "USA Manufacturing Corp"}

	// A missing description only fails that field of the OR.
	assert.True(t, Criteria{Search: "drill"}.Normalized().Matches(p))
	assert.False(t, Criteria{Search: "precision"}.Normalized().Matches(p))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(1, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 4, TotalPages(10, 3))
}

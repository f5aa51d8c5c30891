// internal/store/memory_test.go
package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machineryhub/b2b-backend/internal/models"
	"github.com/machineryhub/b2b-backend/internal/query"
)

func testProducts() []*models.Product {
	return []*models.Product{
		{ProductName: "CNC Vertical Machining Center", Supplier: "Shanghai Precision Machinery Ltd.", PriceUSD: "$2,500.00", Category: "cnc", Location: "china", Description: "High precision machining center", ImageURL: "http://img/1"},
		{ProductName: "Heavy Duty Metal Lathe", Supplier: "German Precision Engineering", PriceUSD: "$5,800.00", Category: "lathe", Location: "germany", Description: "Precision metal lathe", ImageURL: "http://img/2"},
		{ProductName: "Precision Radial Drill Machine", Supplier: "USA Manufacturing Corp", PriceUSD: "$4,200.00", Category: "drill", Location: "usa", Description: "Industrial radial drill"},
		{ProductName: "Desktop Mini CNC Machine", Supplier: "Guangzhou Electronics", PriceUSD: "$600.00", Category: "cnc", Location: "china", Description: "Compact desktop CNC", ImageURL: "http://img/4"},
	}
}

func seededMemory(t *testing.T) *MemoryStore {
	t.Helper()
	s := NewMemory()
	require.NoError(t, s.CreateBatch(context.Background(), testProducts()))
	return s
}

func TestMemoryCreateAssignsMonotonicIDs(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	first := &models.Product{ProductName: "A", Supplier: "S", Category: "cnc", Location: "china"}
	second := &models.Product{ProductName: "B", Supplier: "S", Category: "cnc", Location: "china"}
	require.NoError(t, s.Create(ctx, first))
	require.NoError(t, s.Create(ctx, second))

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestMemoryGetByID(t *testing.T) {
	s := seededMemory(t)
	ctx := context.Background()

	p, err := s.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Heavy Duty Metal Lathe", p.ProductName)

	_, err = s.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySearchFilters(t *testing.T) {
	s := seededMemory(t)
	ctx := context.Background()

	items, total, err := s.Search(ctx, query.Criteria{Category: "CNC"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, p := range items {
		assert.Equal(t, "cnc", p.Category)
	}

	items, total, err = s.Search(ctx, query.Criteria{Search: "Precision"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, items, 3)

	items, total, err = s.Search(ctx, query.Criteria{Category: "cnc", Location: "china", Search: "desktop"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "Desktop Mini CNC Machine", items[0].ProductName)
}

func TestMemorySearchPagination(t *testing.T) {
	s := seededMemory(t)
	ctx := context.Background()

	items, total, err := s.Search(ctx, query.Criteria{Page: 2, PerPage: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	require.Len(t, items, 1)
	assert.Equal(t, uint(4), items[0].ID)

	// Natural order is ascending id.
	items, _, err = s.Search(ctx, query.Criteria{Page: 1, PerPage: 3})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, uint(1), items[0].ID)
	assert.Equal(t, uint(3), items[2].ID)

	// Beyond the last page: empty items, totals intact.
	items, total, err = s.Search(ctx, query.Criteria{Page: 9, PerPage: 20})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int64(4), total)
}

func TestMemoryMissingImagesAndBackfill(t *testing.T) {
	s := seededMemory(t)
	ctx := context.Background()

	missing, err := s.MissingImages(ctx)
	require.NoError(t, err)
	require.Len(t, missing, 1)
	assert.Equal(t, "Precision Radial Drill Machine", missing[0].ProductName)

	require.NoError(t, s.SetImages(ctx, map[uint]string{missing[0].ID: "http://img/3"}))

	missing, err = s.MissingImages(ctx)
	require.NoError(t, err)
	assert.Empty(t, missing)

	p, err := s.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "http://img/3", p.ImageURL)
}

func TestMemoryStats(t *testing.T) {
	s := seededMemory(t)

	st, err := s.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), st.TotalProducts)
	assert.Equal(t, int64(4), st.TotalSuppliers)
	assert.Equal(t, int64(2), st.Categories["cnc"])
	assert.Equal(t, int64(1), st.Categories["lathe"])
	assert.Equal(t, int64(2), st.Locations["china"])
	assert.NotContains(t, st.Categories, "press")
}

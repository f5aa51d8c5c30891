// internal/store/store.go

// Package store defines the record store behind the catalog service and
// provides a Postgres-backed and an in-memory implementation.
package store

import (
	"context"
	"errors"

	"github.com/machineryhub/b2b-backend/internal/models"
	"github.com/machineryhub/b2b-backend/internal/query"
)

// ErrNotFound is returned when a product id does not exist.
var ErrNotFound = errors.New("product not found")

// Stats is a live snapshot of the catalog. Zero-count categories and
// locations are omitted.
type Stats struct {
	TotalProducts  int64
	TotalSuppliers int64
	Categories     map[string]int64
	Locations      map[string]int64
}

// Store is the durable keyed collection of products. Multi-row writes
// (CreateBatch, SetImages) are atomic: every row lands or none do. Listings
// follow the store's natural order, ascending id.
type Store interface {
	Create(ctx context.Context, p *models.Product) error
	CreateBatch(ctx context.Context, batch []*models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, c query.Criteria) ([]models.Product, int64, error)
	MissingImages(ctx context.Context) ([]models.Product, error)
	SetImages(ctx context.Context, urls map[uint]string) error
	Stats(ctx context.Context) (*Stats, error)
}

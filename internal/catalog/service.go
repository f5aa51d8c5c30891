// internal/catalog/service.go

// Package catalog implements the catalog service: listing, detail, supplier
// contact, statistics, seeding and synthetic demo data.
package catalog

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/machineryhub/b2b-backend/internal/models"
	"github.com/machineryhub/b2b-backend/internal/observability"
	"github.com/machineryhub/b2b-backend/internal/query"
	"github.com/machineryhub/b2b-backend/internal/store"
)

var (
	syntheticCategories = []string{"cnc", "lathe", "drill", "press", "grinder"}
	syntheticLocations  = []string{"china", "india", "usa", "germany", "japan", "taiwan"}
)

// Service answers catalog requests against an explicitly injected store.
// All operations are stateless request/response transactions.
type Service struct {
	store    store.Store
	notifier Notifier
	images   ImagePicker
	rng      *rand.Rand
}

func NewService(st store.Store, notifier Notifier, images ImagePicker) *Service {
	return &Service{
		store:    st,
		notifier: notifier,
		images:   images,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// List returns one page of products matching the criteria. Malformed
// pagination or filter input is coerced, never rejected.
func (s *Service) List(ctx context.Context, c query.Criteria) (*query.Result, error) {
	c = c.Normalized()

	items, total, err := s.store.Search(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	observability.ListQueriesTotal.Inc()
	return &query.Result{
		Total:      total,
		Page:       c.Page,
		PerPage:    c.PerPage,
		TotalPages: query.TotalPages(total, c.PerPage),
		Items:      items,
	}, nil
}

// GetDetail returns a single product or store.ErrNotFound.
func (s *Service) GetDetail(ctx context.Context, id uint) (*models.Product, error) {
	return s.store.GetByID(ctx, id)
}

// ContactRequest is a buyer inquiry for a listed product.
type ContactRequest struct {
	ProductID  int    `json:"product_id" validate:"required"`
	BuyerName  string `json:"buyer_name" validate:"required"`
	BuyerEmail string `json:"buyer_email" validate:"required,email"`
	Message    string `json:"message" validate:"required"`
}

// Contact emits a structured notification for the product's supplier and
// returns the confirmation message. No inquiry record is persisted.
func (s *Service) Contact(ctx context.Context, req ContactRequest) (string, error) {
	if req.ProductID < 1 {
		return "", store.ErrNotFound
	}

	p, err := s.store.GetByID(ctx, uint(req.ProductID))
	if err != nil {
		return "", err
	}

	s.notifier.NotifyContact(ctx, ContactEvent{
		InquiryID:   uuid.New(),
		ProductID:   p.ID,
		ProductName: p.ProductName,
		Supplier:    p.Supplier,
		BuyerName:   req.BuyerName,
		BuyerEmail:  req.BuyerEmail,
		Message:     req.Message,
		Timestamp:   time.Now(),
	})

	observability.ContactRequestsTotal.Inc()
	return fmt.Sprintf("Your inquiry has been sent to %s", p.Supplier), nil
}

// Stats reflects the live state of the store at call time.
func (s *Service) Stats(ctx context.Context) (*store.Stats, error) {
	return s.store.Stats(ctx)
}

// SeedIfEmpty populates an empty store with the sample catalog. On a
// non-empty store it only backfills images for legacy rows missing one.
// Calling it repeatedly never duplicates rows.
func (s *Service) SeedIfEmpty(ctx context.Context) error {
	n, err := s.store.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}

	if n == 0 {
		batch := make([]*models.Product, 0, len(seedProducts))
		for _, p := range seedProducts {
			p := p
			p.ImageURL = s.images.Pick(p.Category)
			batch = append(batch, &p)
		}
		if err := s.store.CreateBatch(ctx, batch); err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
		observability.SeededProductsTotal.Add(float64(len(batch)))
		return nil
	}

	missing, err := s.store.MissingImages(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch products without images: %w", err)
	}
	if len(missing) == 0 {
		return nil
	}

	urls := make(map[uint]string, len(missing))
	for _, p := range missing {
		urls[p.ID] = s.images.Pick(p.Category)
	}
	if err := s.store.SetImages(ctx, urls); err != nil {
		return fmt.Errorf("failed to backfill product images: %w", err)
	}
	return nil
}

// GenerateSyntheticBatch inserts n randomized demo products in one
// transaction and returns the new total count. It stands in for the real
// supplier scraping that was never built.
func (s *Service) GenerateSyntheticBatch(ctx context.Context, n int) (int64, error) {
	batch := make([]*models.Product, 0, n)
	for i := 0; i < n; i++ {
		category := syntheticCategories[s.rng.Intn(len(syntheticCategories))]
		batch = append(batch, &models.Product{
			ProductName: fmt.Sprintf("Industrial Machine Model %d", i+1),
			Supplier:    fmt.Sprintf("Supplier Company %d", s.rng.Intn(50)+1),
			PriceUSD:    fmt.Sprintf("$%d.00", s.rng.Intn(9501)+500),
			Category:    category,
			Location:    syntheticLocations[s.rng.Intn(len(syntheticLocations))],
			Description: "High-quality industrial machinery equipment",
			MinOrder:    s.rng.Intn(5) + 1,
			Rating:      math.Round((4.0+s.rng.Float64())*10) / 10,
			Specs:       "Standard industrial specifications",
			ImageURL:    s.images.Pick(category),
		})
	}

	if err := s.store.CreateBatch(ctx, batch); err != nil {
		return 0, fmt.Errorf("failed to insert synthetic products: %w", err)
	}
	observability.SyntheticProductsTotal.Add(float64(n))

	total, err := s.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return total, nil
}

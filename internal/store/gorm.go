// internal/store/gorm.go
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/machineryhub/b2b-backend/internal/models"
	"github.com/machineryhub/b2b-backend/internal/query"
)

// GormStore is the Postgres-backed record store.
type GormStore struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Create(ctx context.Context, p *models.Product) error {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (s *GormStore) CreateBatch(ctx context.Context, batch []*models.Product) error {
	if len(batch) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range batch {
			if err := tx.Create(p).Error; err != nil {
				return fmt.Errorf("failed to create product: %w", err)
			}
		}
		return nil
	})
}

func (s *GormStore) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return &p, nil
}

func (s *GormStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Product{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}

func (s *GormStore) Search(ctx context.Context, c query.Criteria) ([]models.Product, int64, error) {
	c = c.Normalized()

	q := s.db.WithContext(ctx).Model(&models.Product{})
	if c.Category != "" {
		q = q.Where("LOWER(category) = ?", c.Category)
	}
	if c.Location != "" {
		q = q.Where("LOWER(location) = ?", c.Location)
	}
	if c.Search != "" {
		term := "%" + c.Search + "%"
		q = q.Where(
			"LOWER(product_name) LIKE ? OR LOWER(supplier) LIKE ? OR LOWER(description) LIKE ?",
			term, term, term,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var items []models.Product
	if err := q.Order("id ASC").Offset(c.Offset()).Limit(c.PerPage).Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}
	return items, total, nil
}

func (s *GormStore) MissingImages(ctx context.Context) ([]models.Product, error) {
	var items []models.Product
	if err := s.db.WithContext(ctx).
		Where("image_url = ''").
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products without images: %w", err)
	}
	return items, nil
}

func (s *GormStore) SetImages(ctx context.Context, urls map[uint]string) error {
	if len(urls) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, url := range urls {
			if err := tx.Model(&models.Product{}).
				Where("id = ?", id).
				Update("image_url", url).Error; err != nil {
				return fmt.Errorf("failed to update image for product %d: %w", id, err)
			}
		}
		return nil
	})
}

func (s *GormStore) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{
		Categories: make(map[string]int64),
		Locations:  make(map[string]int64),
	}

	if err := s.db.WithContext(ctx).Model(&models.Product{}).Count(&st.TotalProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	if err := s.db.WithContext(ctx).Model(&models.Product{}).
		Distinct("supplier").Count(&st.TotalSuppliers).Error; err != nil {
		return nil, fmt.Errorf("failed to count suppliers: %w", err)
	}

	type bucket struct {
		Key string
		N   int64
	}

	var byCategory []bucket
	if err := s.db.WithContext(ctx).Model(&models.Product{}).
		Select("category AS key, COUNT(id) AS n").
		Group("category").
		Scan(&byCategory).Error; err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	for _, b := range byCategory {
		st.Categories[b.Key] = b.N
	}

	var byLocation []bucket
	if err := s.db.WithContext(ctx).Model(&models.Product{}).
		Select("location AS key, COUNT(id) AS n").
		Group("location").
		Scan(&byLocation).Error; err != nil {
		return nil, fmt.Errorf("failed to count locations: %w", err)
	}
	for _, b := range byLocation {
		st.Locations[b.Key] = b.N
	}

	return st, nil
}

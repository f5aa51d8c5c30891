// internal/store/memory.go
package store

import (
	"context"
	"sync"
	"time"

	"github.com/machineryhub/b2b-backend/internal/models"
	"github.com/machineryhub/b2b-backend/internal/query"
)

// MemoryStore keeps products in process memory. It backs the DB_DRIVER=memory
// mode for running without Postgres and is the deterministic store used in
// tests. Rows are held in insertion order, which is also id order.
type MemoryStore struct {
	mtx    sync.RWMutex
	rows   []models.Product
	nextID uint
}

func NewMemory() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) Create(ctx context.Context, p *models.Product) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.insert(p)
	return nil
}

func (s *MemoryStore) CreateBatch(ctx context.Context, batch []*models.Product) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	for _, p := range batch {
		s.insert(p)
	}
	return nil
}

// insert assigns the next id and appends. Caller holds the lock.
func (s *MemoryStore) insert(p *models.Product) {
	p.ID = s.nextID
	s.nextID++
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	s.rows = append(s.rows, *p)
}

func (s *MemoryStore) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	for i := range s.rows {
		if s.rows[i].ID == id {
			p := s.rows[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) Count(ctx context.Context) (int64, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return int64(len(s.rows)), nil
}

func (s *MemoryStore) Search(ctx context.Context, c query.Criteria) ([]models.Product, int64, error) {
	c = c.Normalized()

	s.mtx.RLock()
	defer s.mtx.RUnlock()

	matched := make([]models.Product, 0, len(s.rows))
	for i := range s.rows {
		if c.Matches(&s.rows[i]) {
			matched = append(matched, s.rows[i])
		}
	}

	total := int64(len(matched))
	start := c.Offset()
	if start >= len(matched) {
		return []models.Product{}, total, nil
	}
	end := start + c.PerPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (s *MemoryStore) MissingImages(ctx context.Context) ([]models.Product, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	var missing []models.Product
	for i := range s.rows {
		if s.rows[i].ImageURL == "" {
			missing = append(missing, s.rows[i])
		}
	}
	return missing, nil
}

func (s *MemoryStore) SetImages(ctx context.Context, urls map[uint]string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	for i := range s.rows {
		if url, ok := urls[s.rows[i].ID]; ok {
			s.rows[i].ImageURL = url
		}
	}
	return nil
}

func (s *MemoryStore) Stats(ctx context.Context) (*Stats, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	st := &Stats{
		TotalProducts: int64(len(s.rows)),
		Categories:    make(map[string]int64),
		Locations:     make(map[string]int64),
	}

	suppliers := make(map[string]struct{})
	for i := range s.rows {
		suppliers[s.rows[i].Supplier] = struct{}{}
		st.Categories[s.rows[i].Category]++
		st.Locations[s.rows[i].Location]++
	}
	st.TotalSuppliers = int64(len(suppliers))
	return st, nil
}

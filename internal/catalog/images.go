// internal/catalog/images.go
package catalog

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

// categoryImages maps a category token to its pool of stock photo URLs.
// Unknown categories fall back to the cnc pool.
var categoryImages = map[string][]string{
	"cnc": {
		"https://images.unsplash.com/photo-1581092918056-0c4c3acd3789?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1578749556568-bc2c40e68b61?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1581092161562-40038fbba5e7?w=400&h=300&fit=crop",
	},
	"lathe": {
		"https://images.unsplash.com/photo-1581092162561-40038fbba5e7?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1581092913537-8b23f7eb63d4?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1581092917550-e323b2c0a613?w=400&h=300&fit=crop",
	},
	"drill": {
		"https://images.unsplash.com/photo-1504384308090-c894fdcc538d?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1581092162561-40038fbba5e7?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1581093918056-0c4c3acd3789?w=400&h=300&fit=crop",
	},
	"press": {
		"https://images.unsplash.com/photo-1621905251918-48416bd8575a?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1581092913537-8b23f7eb63d4?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1581092162561-40038fbba5e7?w=400&h=300&fit=crop",
	},
	"grinder": {
		"https://images.unsplash.com/photo-1581092915550-e323b2c0a613?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1581092913537-8b23f7eb63d4?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1581092162561-40038fbba5e7?w=400&h=300&fit=crop",
	},
}

// ImagePicker selects an image URL for a product category. It is an injected
// collaborator so tests can substitute a deterministic picker.
type ImagePicker interface {
	Pick(category string) string
}

// RandomImagePicker picks uniformly from the category's pool.
type RandomImagePicker struct {
	mtx sync.Mutex
	rng *rand.Rand
}

func NewRandomImagePicker() *RandomImagePicker {
	return &RandomImagePicker{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (p *RandomImagePicker) Pick(category string) string {
	pool, ok := categoryImages[strings.ToLower(category)]
	if !ok {
		pool = categoryImages["cnc"]
	}
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return pool[p.rng.Intn(len(pool))]
}

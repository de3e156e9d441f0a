package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/veloura/storefront/internal/model"
)

var (
	// ErrProductNotFound is returned when no product in the catalog has the
	// requested ID.
	ErrProductNotFound = errors.New("product not found")

	// ErrEmptyCatalog is returned when the catalog file contains no products.
	ErrEmptyCatalog = errors.New("catalog is empty")
)

// Store holds the product catalog. It is populated once from the catalog file
// and read-only afterwards, so it is safe to share across requests.
type Store struct {
	products []model.Product
}

// NewStore creates a Store from an already-loaded product list, preserving
// its order.
func NewStore(products []model.Product) *Store {
	return &Store{products: products}
}

// LoadStore reads the catalog JSON file and validates every record.
func LoadStore(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[int]bool, len(products))
	for i, p := range products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("catalog entry %d: id must be a positive integer", i)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("catalog entry %d: duplicate id %d", i, p.ID)
		}
		seen[p.ID] = true
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("catalog entry %d: name must not be empty", i)
		}
		if p.Price <= 0 {
			return nil, fmt.Errorf("catalog entry %d: price must be positive", i)
		}
	}

	return &Store{products: products}, nil
}

// All returns the catalog in load order. Callers must not mutate the
// returned slice.
func (s *Store) All() []model.Product {
	return s.products
}

// Len returns the number of products in the catalog.
func (s *Store) Len() int {
	return len(s.products)
}

// FindByID returns the product with the given ID or ErrProductNotFound.
func (s *Store) FindByID(id int) (model.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
}

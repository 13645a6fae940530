// Package catalog generates synthetic marketplace fixture data: a small
// two-level category tree and a large set of products spread across
// sequential sellers, persisted as JSON files keyed by identifier.
package catalog

import (
	"errors"
	"math/rand"

	"github.com/jaguzmanb1/meliload/internal/meliid"
)

// SeederOptions configure one fixture generation run.
type SeederOptions struct {
	Sellers           int
	ProductsPerSeller int
	RootCategories    int
	LeavesPerRoot     int
	ItemsPath         string
	CategoriesPath    string
	Rand              *rand.Rand
}

// Result reports how many entities a seeding run wrote.
type Result struct {
	Categories int
	Products   int
}

// Seeder generates categories and products and persists both collections.
// Generation is strictly sequential; files are written once at the end.
type Seeder struct {
	opts SeederOptions
}

// NewSeeder creates a seeder for the given options.
func NewSeeder(opts SeederOptions) *Seeder {
	return &Seeder{opts: opts}
}

// Run generates every category and product and saves the two JSON files,
// categories first. Product identifiers are strictly increasing across
// the whole run, starting at 1.
func (s *Seeder) Run() (Result, error) {
	categories, leafIDs := NewCategoryFactory(s.opts.RootCategories, s.opts.LeavesPerRoot).Build()

	totalProducts := s.opts.Sellers * s.opts.ProductsPerSeller
	if totalProducts > 0 && len(leafIDs) == 0 {
		return Result{}, errors.New("no leaf categories available for product assignment")
	}

	categoryRepo := NewRepository[Category]()
	categoryRepo.BulkAdd(categories)

	productRepo := NewRepository[Product]()
	factory := NewProductFactory(s.opts.Rand, leafIDs)

	index := 1
	for seller := 1; seller <= s.opts.Sellers; seller++ {
		sellerID := meliid.Seller(seller)
		for p := 0; p < s.opts.ProductsPerSeller; p++ {
			product := factory.Create(index, sellerID)
			productRepo.Add(product.ID, product)
			index++
		}
	}

	if err := categoryRepo.Save(s.opts.CategoriesPath); err != nil {
		return Result{}, err
	}
	if err := productRepo.Save(s.opts.ItemsPath); err != nil {
		return Result{}, err
	}

	return Result{Categories: categoryRepo.Len(), Products: productRepo.Len()}, nil
}

package catalog

import (
	"math"
	"math/rand"
	"time"

	"github.com/jaguzmanb1/meliload/internal/meliid"
)

// Vocabularies for generated product titles.
var (
	productAdjectives = []string{"Super", "Mega", "Ultra", "Pro", "Basic", "Smart"}
	productNouns      = []string{"Laptop", "Phone", "Chair", "Watch", "Headphones", "Shoes"}
)

// TimestampLayout renders UTC timestamps with microsecond precision,
// matching the format the items service expects in its fixtures.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// Product is one generated catalog item. The identifier doubles as the
// collection key and is not repeated in the serialized attributes.
type Product struct {
	ID          string  `json:"-"`
	SellerID    string  `json:"seller_id"`
	Title       string  `json:"title"`
	CategoryID  string  `json:"category_id"`
	Price       float64 `json:"price"`
	DateCreated string  `json:"date_created"`
	LastUpdated string  `json:"last_updated"`
}

// ProductFactory builds products assigned to existing leaf categories.
// All randomness flows through the injected generator so callers control
// reproducibility.
type ProductFactory struct {
	rng     *rand.Rand
	leafIDs []string
	now     func() time.Time
}

// NewProductFactory creates a factory drawing category assignments from
// the given leaf identifiers.
func NewProductFactory(rng *rand.Rand, leafIDs []string) *ProductFactory {
	return &ProductFactory{rng: rng, leafIDs: leafIDs, now: time.Now}
}

// Create builds the product for a global index and owning seller.
func (f *ProductFactory) Create(index int, sellerID string) Product {
	created, updated := f.dates()
	return Product{
		ID:          meliid.Item(index),
		SellerID:    sellerID,
		Title:       f.title(),
		CategoryID:  f.leafIDs[f.rng.Intn(len(f.leafIDs))],
		Price:       f.price(),
		DateCreated: created,
		LastUpdated: updated,
	}
}

func (f *ProductFactory) title() string {
	adjective := productAdjectives[f.rng.Intn(len(productAdjectives))]
	noun := productNouns[f.rng.Intn(len(productNouns))]
	return adjective + " " + noun
}

// price returns a uniform value in [10.00, 2000.00] rounded to cents.
func (f *ProductFactory) price() float64 {
	value := 10.0 + f.rng.Float64()*(2000.0-10.0)
	return math.Round(value*100) / 100
}

// dates returns a creation timestamp 30-365 days in the past and an
// update timestamp 1-29 days after creation.
func (f *ProductFactory) dates() (string, string) {
	now := f.now().UTC()
	created := now.AddDate(0, 0, -(30 + f.rng.Intn(336)))
	updated := created.AddDate(0, 0, 1+f.rng.Intn(29))
	return created.Format(TimestampLayout), updated.Format(TimestampLayout)
}

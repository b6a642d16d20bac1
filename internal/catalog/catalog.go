package catalog

import (
	"errors"
	"fmt"
	"io"

	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/toko-cli/internal/pricing"
)

// ErrDuplicateProduct is returned when two seeds share the same name.
var ErrDuplicateProduct = errors.New("duplicate product name")

// Seed describes a catalog entry before it is priced and registered.
type Seed struct {
	Name       string `validate:"required"`
	PriceMinor int64  `validate:"gte=0"`
	Strategy   string `validate:"required,oneof=simple discount"`
}

// Product is a catalog entry. LastQuantity is overwritten every time the product
// is added to a cart, so every cart line for the product reports the latest value.
type Product struct {
	ID           uuid.UUID
	Name         string
	BasePrice    decimal.Decimal
	Strategy     pricing.Strategy
	LastQuantity int
}

// Price applies the product strategy to the last requested quantity.
func (p *Product) Price() decimal.Decimal {
	return p.Strategy.Calculate(p.BasePrice, p.LastQuantity)
}

// Catalog holds the fixed set of products offered in a session, in seed order.
type Catalog struct {
	products []*Product
}

// DefaultSeeds returns the two products the shop starts with.
func DefaultSeeds() []Seed {
	return []Seed{
		{Name: "Producto 1", PriceMinor: 1000, Strategy: pricing.KindSimple},
		{Name: "Producto 2", PriceMinor: 2000, Strategy: pricing.KindDiscount},
	}
}

// New validates the seeds and builds a catalog from them.
func New(seeds []Seed) (*Catalog, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	seen := make(map[string]struct{}, len(seeds))
	c := &Catalog{products: make([]*Product, 0, len(seeds))}
	for _, seed := range seeds {
		if err := validate.Struct(seed); err != nil {
			return nil, fmt.Errorf("catalog: seed %q: %w", seed.Name, err)
		}
		if _, dup := seen[seed.Name]; dup {
			return nil, fmt.Errorf("catalog: %q: %w", seed.Name, ErrDuplicateProduct)
		}
		strategy, err := pricing.StrategyFor(seed.Strategy)
		if err != nil {
			return nil, fmt.Errorf("catalog: seed %q: %w", seed.Name, err)
		}
		seen[seed.Name] = struct{}{}
		c.products = append(c.products, &Product{
			ID:        uuid.New(),
			Name:      seed.Name,
			BasePrice: decimal.New(seed.PriceMinor, -2),
			Strategy:  strategy,
		})
	}
	return c, nil
}

// Lookup finds a product by exact, case-sensitive name.
func (c *Catalog) Lookup(name string) (*Product, bool) {
	for _, p := range c.products {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Products returns the catalog entries in seed order.
func (c *Catalog) Products() []*Product {
	out := make([]*Product, len(c.products))
	copy(out, c.products)
	return out
}

// WriteListing prints every product with its base price. Strategies are not shown.
func (c *Catalog) WriteListing(w io.Writer) {
	fmt.Fprintln(w, "\nProductos disponibles:")
	for _, p := range c.products {
		fmt.Fprintf(w, "- %s - Precio: %s\n", p.Name, pricing.Format(p.BasePrice))
	}
}

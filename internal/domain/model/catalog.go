package model

import (
	"errors"
	"fmt"
)

// Catalog is the immutable set of credit products the service offers. It is
// built once at startup and shared read-only between calculations, so
// concurrent lookups need no locking.
type Catalog struct {
	products []CreditProduct
	byType   map[string]CreditProduct
}

// NewCatalog builds a catalog, rejecting duplicate product names.
func NewCatalog(products []CreditProduct) (Catalog, error) {
	if len(products) == 0 {
		return Catalog{}, errors.New("catalog must contain at least one product")
	}
	byType := make(map[string]CreditProduct, len(products))
	copied := make([]CreditProduct, len(products))
	copy(copied, products)
	for _, p := range copied {
		if _, exists := byType[p.Type()]; exists {
			return Catalog{}, fmt.Errorf("duplicate product type %q", p.Type())
		}
		byType[p.Type()] = p
	}
	return Catalog{products: copied, byType: byType}, nil
}

// Products returns the full catalog in load order.
func (c Catalog) Products() []CreditProduct {
	out := make([]CreditProduct, len(c.products))
	copy(out, c.products)
	return out
}

// Find looks up a product by its type name.
func (c Catalog) Find(creditType string) (CreditProduct, bool) {
	p, ok := c.byType[creditType]
	return p, ok
}

// Len returns the number of products in the catalog.
func (c Catalog) Len() int { return len(c.products) }

// Package domain defines core business types and interfaces.
package domain

// Product is a single catalog entry. Products are loaded once at startup
// and never mutated afterwards.
type Product struct {
	ID            int      `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Brand         string   `json:"brand" yaml:"brand"`
	Category      string   `json:"category" yaml:"category"`
	Price         float64  `json:"price" yaml:"price"`
	OriginalPrice float64  `json:"originalPrice,omitempty" yaml:"originalPrice,omitempty"`
	Rating        float64  `json:"rating" yaml:"rating"`
	Reviews       int      `json:"reviews" yaml:"reviews"`
	InStock       bool     `json:"inStock" yaml:"inStock"`
	FastDelivery  bool     `json:"fastDelivery" yaml:"fastDelivery"`
	Features      []string `json:"features,omitempty" yaml:"features,omitempty"`
	Image         string   `json:"image,omitempty" yaml:"image,omitempty"`
	Description   string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// DiscountPercent returns the markdown relative to OriginalPrice as a
// percentage, or 0 when the product has no original price.
func (p Product) DiscountPercent() float64 {
	if p.OriginalPrice <= 0 {
		return 0
	}
	return (p.OriginalPrice - p.Price) / p.OriginalPrice * 100
}

// ValidateProduct checks catalog-level invariants on a product.
func ValidateProduct(p Product) error {
	if p.ID <= 0 {
		return NewInvalidProductError("id", "must be positive", p.ID)
	}
	if p.Name == "" {
		return NewInvalidProductError("name", "cannot be empty", p.Name)
	}
	if p.Price < 0 {
		return NewInvalidProductError("price", "must be non-negative", p.Price)
	}
	if p.OriginalPrice != 0 && p.OriginalPrice < p.Price {
		return NewInvalidProductError("originalPrice", "must be at least price", p.OriginalPrice)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return NewInvalidProductError("rating", "must be between 0 and 5", p.Rating)
	}
	if p.Reviews < 0 {
		return NewInvalidProductError("reviews", "must be non-negative", p.Reviews)
	}
	return nil
}

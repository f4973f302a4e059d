package domain

// CartLine is one (product, quantity) pair in the cart. The product is a
// snapshot taken at add time, keyed by its catalog id.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is the persisted shape of the ledger: an ordered line list with at
// most one line per product id and strictly positive quantities.
type Cart struct {
	Items []CartLine `json:"items"`
}

// Total is the sum of price multiplied by quantity over all lines.
func (c Cart) Total() float64 {
	var total float64
	for _, l := range c.Items {
		total += l.Product.Price * float64(l.Quantity)
	}
	return total
}

// Count is the sum of quantities over all lines.
func (c Cart) Count() int {
	var n int
	for _, l := range c.Items {
		n += l.Quantity
	}
	return n
}

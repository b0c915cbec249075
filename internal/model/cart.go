package model

// CartLine holds one distinct product in a cart. The invariant is one
// line per product id; repeated adds bump Quantity instead of appending.
type CartLine struct {
	Product  ProductRef `json:"product"`
	Quantity int        `json:"quantity"`
}

func (l CartLine) Subtotal() float64 {
	return l.Product.UnitPrice * float64(l.Quantity)
}

// Cart is the session's set of reserved lines, ordered by first add.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// FindLine returns a pointer into Lines for in-place quantity updates,
// or nil when the product is not in the cart.
func (c *Cart) FindLine(productID int64) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			return &c.Lines[i]
		}
	}
	return nil
}

// Total is the cart total in base currency.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.Lines {
		total += l.Subtotal()
	}
	return total
}

// QuantityOf reports how many units of a product the cart currently
// reserves.
func (c *Cart) QuantityOf(productID int64) int {
	if line := c.FindLine(productID); line != nil {
		return line.Quantity
	}
	return 0
}

// Clone returns a deep copy, used to snapshot lines into a purchase
// record without aliasing the live cart.
func (c *Cart) Clone() []CartLine {
	out := make([]CartLine, len(c.Lines))
	copy(out, c.Lines)
	return out
}

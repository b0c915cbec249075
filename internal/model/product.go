package model

// Product is a catalog entry. UnitPrice is always in the base currency
// (USD); display conversion never touches this value.
type Product struct {
	ID        int64   `json:"id" db:"id"`
	Name      string  `json:"name" db:"name"`
	UnitPrice float64 `json:"unit_price" db:"unit_price"`
	Stock     int     `json:"stock" db:"stock"`
	ImageURL  string  `json:"image_url,omitempty" db:"image_url"`
}

// ProductRef is the stock-free snapshot of a product embedded in cart
// lines and purchase records. Stock lives only on the catalog entry.
type ProductRef struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	ImageURL  string  `json:"image_url,omitempty"`
}

func (p Product) Ref() ProductRef {
	return ProductRef{
		ID:        p.ID,
		Name:      p.Name,
		UnitPrice: p.UnitPrice,
		ImageURL:  p.ImageURL,
	}
}

package models

// Product mirrors one row of the products table. CreatedAt is kept as the
// stored string (UTC RFC 3339) rather than a time.Time so edits can carry it
// through untouched.
type Product struct {
	ID        int     `json:"id"`
	Image     string  `json:"image"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	About     string  `json:"about"`
	Cloth     string  `json:"cloth"`
	Category  string  `json:"category"`
	BoughtBy  string  `json:"bought_by"`
	SareeType string  `json:"saree_type"`
	CreatedAt string  `json:"created_at"`
	CreatedBy string  `json:"created_by"`
	IsActive  int     `json:"is_active"`
}

// ProductFields carries the caller-supplied attributes of a create or edit.
// Identity, timestamps and the active flag are managed by the repository.
type ProductFields struct {
	Image     string
	Title     string
	Price     float64
	About     string
	Cloth     string
	Category  string
	BoughtBy  string
	SareeType string
	Email     string // author, stored as created_by
}

// ProductWithFlags decorates a product with the caller's like and cart
// membership.
type ProductWithFlags struct {
	Product
	IsProductLiked  bool `json:"is_product_liked"`
	IsProductInCart bool `json:"is_product_in_cart"`
}

// CartProduct is a cart listing entry: the flagged product plus the stored
// quantity.
type CartProduct struct {
	ProductWithFlags
	Quantity int `json:"quantity"`
}

// FilteredProducts is one page of the catalog search. Total counts every
// match, not just the page.
type FilteredProducts struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

package models

// Like is one row of the liked_products table. A row exists only while the
// like is active; toggling off removes it.
type Like struct {
	ID        int `json:"id"`
	UserID    int `json:"userId"`
	ProductID int `json:"productId"`
}

// CartItem is one row of the cart_products table, with the same
// present-only-while-active semantics as Like.
type CartItem struct {
	ID        int `json:"id"`
	UserID    int `json:"userId"`
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

package models

// Order rows are append-only; there is no update or delete path.
type Order struct {
	ID        int     `json:"id"`
	UserID    int     `json:"userId"`
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

package repository

import (
	"context"
	"strconv"

	"github.com/Gkeerthanasilkskanchi/silks-api/models"
	"github.com/Gkeerthanasilkskanchi/silks-api/store"
)

type Orders struct {
	store store.Store
}

// Create appends an order row. Orders are never deduplicated, updated or
// deleted.
func (r *Orders) Create(ctx context.Context, userID, productID, quantity int, price float64) error {
	rows, err := r.store.ReadRange(ctx, ordersTable, firstDataRow, store.OpenEnd, 1, orderCols)
	if err != nil {
		return err
	}

	order := models.Order{
		ID:        nextID(rows),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
	}
	return r.store.AppendRow(ctx, ordersTable, []string{
		strconv.Itoa(order.ID),
		strconv.Itoa(order.UserID),
		strconv.Itoa(order.ProductID),
		strconv.Itoa(order.Quantity),
		formatFloat(order.Price),
	})
}

package repository

import (
	"context"
	"strconv"

	"github.com/Gkeerthanasilkskanchi/silks-api/models"
	"github.com/Gkeerthanasilkskanchi/silks-api/store"
)

const (
	MsgAddedToCart     = "Product Added Successfully"
	MsgRemovedFromCart = "Product removed Successfully"
)

type Cart struct {
	store store.Store
}

// Toggle adds (userID, productID) to the cart with the given quantity, or
// removes it when already present. Quantity on an existing row is not
// adjusted; toggling is the only mutation.
func (r *Cart) Toggle(ctx context.Context, userID, productID, quantity int) (string, error) {
	rows, err := r.store.ReadRange(ctx, cartTable, firstDataRow, store.OpenEnd, 1, cartCols)
	if err != nil {
		return "", err
	}

	for i, row := range rows {
		if blank(row) {
			continue
		}
		if cellInt(row, 1) == userID && cellInt(row, 2) == productID {
			if err := r.store.ClearRow(ctx, cartTable, i+firstDataRow); err != nil {
				return "", err
			}
			return MsgRemovedFromCart, nil
		}
	}

	item := models.CartItem{ID: nextID(rows), UserID: userID, ProductID: productID, Quantity: quantity}
	err = r.store.AppendRow(ctx, cartTable, []string{
		strconv.Itoa(item.ID), strconv.Itoa(item.UserID), strconv.Itoa(item.ProductID), strconv.Itoa(item.Quantity),
	})
	if err != nil {
		return "", err
	}
	return MsgAddedToCart, nil
}

// ListByUser joins active products against the user's cart rows. Products
// without a cart row are excluded entirely; included ones carry the stored
// quantity and the user's like flag.
func (r *Cart) ListByUser(ctx context.Context, userID int) ([]models.CartProduct, error) {
	rows, err := r.store.ReadRange(ctx, productsTable, firstDataRow, store.OpenEnd, 1, productCols)
	if err != nil {
		return nil, err
	}

	quantities, err := r.quantities(ctx, userID)
	if err != nil {
		return nil, err
	}
	liked, err := relationSet(ctx, r.store, likesTable, likeCols, userID)
	if err != nil {
		return nil, err
	}

	products := []models.CartProduct{}
	for _, row := range rows {
		product, ok := productFromRow(row)
		if !ok || product.IsActive != 1 {
			continue
		}
		quantity, inCart := quantities[product.ID]
		if !inCart {
			continue
		}
		products = append(products, models.CartProduct{
			ProductWithFlags: models.ProductWithFlags{
				Product:         product,
				IsProductLiked:  liked[product.ID],
				IsProductInCart: true,
			},
			Quantity: quantity,
		})
	}
	return products, nil
}

func (r *Cart) quantities(ctx context.Context, userID int) (map[int]int, error) {
	rows, err := r.store.ReadRange(ctx, cartTable, firstDataRow, store.OpenEnd, 1, cartCols)
	if err != nil {
		return nil, err
	}

	quantities := make(map[int]int)
	for _, row := range rows {
		if blank(row) {
			continue
		}
		if cellInt(row, 1) == userID {
			quantities[cellInt(row, 2)] = cellInt(row, 3)
		}
	}
	return quantities, nil
}

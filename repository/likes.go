package repository

import (
	"context"
	"strconv"

	"github.com/Gkeerthanasilkskanchi/silks-api/models"
	"github.com/Gkeerthanasilkskanchi/silks-api/store"
)

const (
	MsgLiked   = "Product Liked Successfully"
	MsgUnliked = "Product Unliked Successfully"
)

type Likes struct {
	store store.Store
}

// Toggle flips the like relationship for (userID, productID): absent rows
// are appended with a fresh ID, present rows are removed. The returned
// message tells the caller which way it went.
func (r *Likes) Toggle(ctx context.Context, userID, productID int) (string, error) {
	rows, err := r.store.ReadRange(ctx, likesTable, firstDataRow, store.OpenEnd, 1, likeCols)
	if err != nil {
		return "", err
	}

	for i, row := range rows {
		if blank(row) {
			continue
		}
		if cellInt(row, 1) == userID && cellInt(row, 2) == productID {
			if err := r.store.ClearRow(ctx, likesTable, i+firstDataRow); err != nil {
				return "", err
			}
			return MsgUnliked, nil
		}
	}

	like := models.Like{ID: nextID(rows), UserID: userID, ProductID: productID}
	err = r.store.AppendRow(ctx, likesTable, []string{
		strconv.Itoa(like.ID), strconv.Itoa(like.UserID), strconv.Itoa(like.ProductID),
	})
	if err != nil {
		return "", err
	}
	return MsgLiked, nil
}

// ListByUser returns the user's liked products (active ones only), each
// also flagged with cart membership.
func (r *Likes) ListByUser(ctx context.Context, userID int) ([]models.ProductWithFlags, error) {
	rows, err := r.store.ReadRange(ctx, productsTable, firstDataRow, store.OpenEnd, 1, productCols)
	if err != nil {
		return nil, err
	}

	liked, err := relationSet(ctx, r.store, likesTable, likeCols, userID)
	if err != nil {
		return nil, err
	}
	inCart, err := relationSet(ctx, r.store, cartTable, cartCols, userID)
	if err != nil {
		return nil, err
	}

	products := []models.ProductWithFlags{}
	for _, row := range rows {
		product, ok := productFromRow(row)
		if !ok || product.IsActive != 1 || !liked[product.ID] {
			continue
		}
		products = append(products, models.ProductWithFlags{
			Product:         product,
			IsProductLiked:  true,
			IsProductInCart: inCart[product.ID],
		})
	}
	return products, nil
}

package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/Gkeerthanasilkskanchi/silks-api/models"
	"github.com/Gkeerthanasilkskanchi/silks-api/store"
)

// pageSize is the fixed page length of the filtered catalog listing.
const pageSize = 10

type Products struct {
	store store.Store
}

// Create appends a product row: fresh ID, current UTC creation stamp,
// active flag set.
func (r *Products) Create(ctx context.Context, fields models.ProductFields) error {
	rows, err := r.store.ReadRange(ctx, productsTable, firstDataRow, store.OpenEnd, 1, productCols)
	if err != nil {
		return err
	}

	product := models.Product{
		ID:        nextID(rows),
		Image:     fields.Image,
		Title:     fields.Title,
		Price:     fields.Price,
		About:     fields.About,
		Cloth:     fields.Cloth,
		Category:  fields.Category,
		BoughtBy:  fields.BoughtBy,
		SareeType: fields.SareeType,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		CreatedBy: fields.Email,
		IsActive:  1,
	}
	return r.store.AppendRow(ctx, productsTable, productToRow(product))
}

// Edit rewrites the row matching id in place, carrying the original
// created_at, created_by and is_active cells through unchanged. A missing id
// is a silent no-op, as it always was.
func (r *Products) Edit(ctx context.Context, id int, fields models.ProductFields) error {
	rows, err := r.store.ReadRange(ctx, productsTable, firstDataRow, store.OpenEnd, 1, productCols)
	if err != nil {
		return err
	}

	for i, row := range rows {
		if cellInt(row, 0) != id || blank(row) {
			continue
		}
		updated := []string{
			strconv.Itoa(id),
			fields.Image,
			fields.Title,
			formatFloat(fields.Price),
			fields.About,
			fields.Cloth,
			fields.Category,
			fields.BoughtBy,
			fields.SareeType,
			cell(row, 9),  // created_at
			cell(row, 10), // created_by
			cell(row, 11), // is_active
		}
		return r.store.UpdateRow(ctx, productsTable, i+firstDataRow, updated)
	}
	return nil
}

// SetActive flips only the is_active cell. Soft deletion goes through here;
// the row itself is never removed.
func (r *Products) SetActive(ctx context.Context, id int, active bool) error {
	rows, err := r.store.ReadRange(ctx, productsTable, firstDataRow, store.OpenEnd, 1, productCols)
	if err != nil {
		return err
	}

	for i, row := range rows {
		if cellInt(row, 0) != id || blank(row) {
			continue
		}
		flag := "0"
		if active {
			flag = "1"
		}
		updated := pad(row, productCols)
		updated[11] = flag
		return r.store.UpdateRow(ctx, productsTable, i+firstDataRow, updated)
	}
	return nil
}

// GetByID returns nil for unknown ids and for inactive products alike:
// a soft-deleted product is invisible here.
func (r *Products) GetByID(ctx context.Context, id int) (*models.Product, error) {
	products, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id && products[i].IsActive == 1 {
			return &products[i], nil
		}
	}
	return nil, nil
}

// ListFiltered pages through active products matching the keyword. The
// keyword is a case-insensitive substring test over title, category and
// saree type; blank keywords match everything. Pages are 1-based and an
// out-of-range page yields an empty slice with the true total.
func (r *Products) ListFiltered(ctx context.Context, page int, keyword string) (models.FilteredProducts, error) {
	products, err := r.loadActive(ctx)
	if err != nil {
		return models.FilteredProducts{}, err
	}

	keyword = strings.TrimSpace(keyword)
	filtered := products
	if keyword != "" {
		needle := strings.ToLower(keyword)
		filtered = filtered[:0:0]
		for _, p := range products {
			if containsFold(p.Title, needle) ||
				containsFold(p.Category, needle) ||
				containsFold(p.SareeType, needle) {
				filtered = append(filtered, p)
			}
		}
	}

	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return models.FilteredProducts{
		Products: filtered[start:end],
		Total:    len(filtered),
	}, nil
}

// ListWithFlags returns every active product annotated with the user's like
// and cart membership, joined on product ID. userID 0 means anonymous:
// all flags false.
func (r *Products) ListWithFlags(ctx context.Context, userID int) ([]models.ProductWithFlags, error) {
	products, err := r.loadActive(ctx)
	if err != nil {
		return nil, err
	}

	liked, inCart := map[int]bool{}, map[int]bool{}
	if userID != 0 {
		if liked, err = relationSet(ctx, r.store, likesTable, likeCols, userID); err != nil {
			return nil, err
		}
		if inCart, err = relationSet(ctx, r.store, cartTable, cartCols, userID); err != nil {
			return nil, err
		}
	}

	flagged := make([]models.ProductWithFlags, 0, len(products))
	for _, p := range products {
		flagged = append(flagged, models.ProductWithFlags{
			Product:         p,
			IsProductLiked:  liked[p.ID],
			IsProductInCart: inCart[p.ID],
		})
	}
	return flagged, nil
}

// Categories lists the distinct categories of active products in first-seen
// order.
func (r *Products) Categories(ctx context.Context) ([]string, error) {
	products, err := r.loadActive(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	categories := []string{}
	for _, p := range products {
		category := strings.TrimSpace(p.Category)
		if category == "" {
			continue
		}
		key := strings.ToLower(category)
		if seen[key] {
			continue
		}
		seen[key] = true
		categories = append(categories, category)
	}
	return categories, nil
}

// ListByCategory returns the active products of one category, matched
// case-insensitively.
func (r *Products) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	products, err := r.loadActive(ctx)
	if err != nil {
		return nil, err
	}

	matched := []models.Product{}
	for _, p := range products {
		if strings.EqualFold(strings.TrimSpace(p.Category), strings.TrimSpace(category)) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (r *Products) loadAll(ctx context.Context) ([]models.Product, error) {
	rows, err := r.store.ReadRange(ctx, productsTable, firstDataRow, store.OpenEnd, 1, productCols)
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		if product, ok := productFromRow(row); ok {
			products = append(products, product)
		}
	}
	return products, nil
}

func (r *Products) loadActive(ctx context.Context) ([]models.Product, error) {
	products, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	active := products[:0:0]
	for _, p := range products {
		if p.IsActive == 1 {
			active = append(active, p)
		}
	}
	return active, nil
}

func productFromRow(row []string) (models.Product, bool) {
	if blank(row) {
		return models.Product{}, false
	}
	id, err := strconv.Atoi(strings.TrimSpace(cell(row, 0)))
	if err != nil {
		return models.Product{}, false
	}
	return models.Product{
		ID:        id,
		Image:     cell(row, 1),
		Title:     cell(row, 2),
		Price:     cellFloat(row, 3),
		About:     cell(row, 4),
		Cloth:     cell(row, 5),
		Category:  cell(row, 6),
		BoughtBy:  cell(row, 7),
		SareeType: cell(row, 8),
		CreatedAt: cell(row, 9),
		CreatedBy: cell(row, 10),
		IsActive:  cellInt(row, 11),
	}, true
}

func productToRow(p models.Product) []string {
	return []string{
		strconv.Itoa(p.ID),
		p.Image,
		p.Title,
		formatFloat(p.Price),
		p.About,
		p.Cloth,
		p.Category,
		p.BoughtBy,
		p.SareeType,
		p.CreatedAt,
		p.CreatedBy,
		strconv.Itoa(p.IsActive),
	}
}

func pad(row []string, width int) []string {
	padded := make([]string, width)
	copy(padded, row)
	return padded
}

func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}

// relationSet collects the product IDs a user has rows for in one of the
// relationship tables.
func relationSet(ctx context.Context, s store.Store, table string, width, userID int) (map[int]bool, error) {
	rows, err := s.ReadRange(ctx, table, firstDataRow, store.OpenEnd, 1, width)
	if err != nil {
		return nil, err
	}

	ids := make(map[int]bool)
	for _, row := range rows {
		if blank(row) {
			continue
		}
		if cellInt(row, 1) == userID {
			ids[cellInt(row, 2)] = true
		}
	}
	return ids, nil
}

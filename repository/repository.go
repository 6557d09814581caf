// Package repository maps the catalog tables onto typed records: ID
// allocation, lookups, toggle relationships, soft deletion and the
// like/cart joins.
package repository

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Gkeerthanasilkskanchi/silks-api/store"
)

const (
	usersTable    = "users"          // id, email, password, role, userName
	productsTable = "products"       // id, image, title, price, about, cloth, category, bought_by, saree_type, created_at, created_by, is_active
	likesTable    = "liked_products" // id, userId, productId
	cartTable     = "cart_products"  // id, userId, productId, quantity
	ordersTable   = "orders"         // id, userId, productId, quantity, price
)

const (
	userCols    = 5
	productCols = 12
	likeCols    = 3
	cartCols    = 4
	orderCols   = 5
)

// firstDataRow is the persisted address of the row an in-memory scan sees at
// index 0 (row 1 holds headers).
const firstDataRow = 2

// ErrNotFound reports a lookup miss, typically an email with no user row.
var ErrNotFound = errors.New("not found")

// Repositories bundles one repository per table, all sharing a store handle.
type Repositories struct {
	Users    *Users
	Products *Products
	Likes    *Likes
	Cart     *Cart
	Orders   *Orders
}

func New(s store.Store) *Repositories {
	return &Repositories{
		Users:    &Users{store: s},
		Products: &Products{store: s},
		Likes:    &Likes{store: s},
		Cart:     &Cart{store: s},
		Orders:   &Orders{store: s},
	}
}

// nextID allocates the next identity value for a table: one past the largest
// parseable ID in column 1, or 1 for an empty table. Concurrent writers can
// read the same maximum and collide; see the package tests.
func nextID(rows [][]string) int {
	max := 0
	for _, row := range rows {
		id, err := strconv.Atoi(strings.TrimSpace(cell(row, 0)))
		if err != nil {
			continue
		}
		if id > max {
			max = id
		}
	}
	return max + 1
}

// cell reads column i of a row, tolerating rows shorter than the table width.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func cellInt(row []string, i int) int {
	n, _ := strconv.Atoi(strings.TrimSpace(cell(row, i)))
	return n
}

func cellFloat(row []string, i int) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(cell(row, i)), 64)
	return f
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// blank reports whether a row holds no data at all. The spreadsheet-era
// store left gaps where relationship rows were cleared; scans skip them.
func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

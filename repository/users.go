package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/Gkeerthanasilkskanchi/silks-api/models"
	"github.com/Gkeerthanasilkskanchi/silks-api/store"
)

type Users struct {
	store store.Store
}

// Create appends a user row with a freshly allocated ID. The caller is
// responsible for hashing the password and checking for duplicates first.
func (r *Users) Create(ctx context.Context, email, hashedPassword, role, userName string) error {
	rows, err := r.store.ReadRange(ctx, usersTable, firstDataRow, store.OpenEnd, 1, userCols)
	if err != nil {
		return err
	}
	id := nextID(rows)
	return r.store.AppendRow(ctx, usersTable, []string{
		strconv.Itoa(id), email, hashedPassword, role, userName,
	})
}

func (r *Users) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.store.ReadRange(ctx, usersTable, firstDataRow, store.OpenEnd, 1, userCols)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(rows))
	for _, row := range rows {
		if user, ok := userFromRow(row); ok {
			users = append(users, user)
		}
	}
	return users, nil
}

// GetByEmail returns nil when no user matches. Emails compare trimmed and
// case-insensitively.
func (r *Users) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if sameEmail(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, nil
}

// IDByEmail resolves the email clients transmit to the numeric user ID the
// relationship tables key on. Returns ErrNotFound on a miss.
func (r *Users) IDByEmail(ctx context.Context, email string) (int, error) {
	user, err := r.GetByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, ErrNotFound
	}
	return user.ID, nil
}

func userFromRow(row []string) (models.User, bool) {
	if blank(row) {
		return models.User{}, false
	}
	id, err := strconv.Atoi(strings.TrimSpace(cell(row, 0)))
	if err != nil {
		return models.User{}, false
	}
	return models.User{
		ID:       id,
		Email:    cell(row, 1),
		Password: cell(row, 2),
		Role:     cell(row, 3),
		UserName: cell(row, 4),
	}, true
}

func sameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

package store

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestMemStoreReadRangeWindows(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	s := NewMemStore()

	c.Assert(s.AppendRow(ctx, "products", []string{"1", "a", "b", "c"}), qt.IsNil)
	c.Assert(s.AppendRow(ctx, "products", []string{"2", "d", "e", "f"}), qt.IsNil)
	c.Assert(s.AppendRow(ctx, "products", []string{"3", "g", "h", "i"}), qt.IsNil)

	all, err := s.ReadRange(ctx, "products", 2, OpenEnd, 1, 4)
	c.Assert(err, qt.IsNil)
	c.Assert(all, qt.DeepEquals, [][]string{
		{"1", "a", "b", "c"},
		{"2", "d", "e", "f"},
		{"3", "g", "h", "i"},
	})

	// bounded rows, trimmed columns
	middle, err := s.ReadRange(ctx, "products", 3, 3, 2, 3)
	c.Assert(err, qt.IsNil)
	c.Assert(middle, qt.DeepEquals, [][]string{{"d", "e"}})

	// column range wider than the row is trimmed, not padded
	wide, err := s.ReadRange(ctx, "products", 2, 2, 1, 9)
	c.Assert(err, qt.IsNil)
	c.Assert(wide, qt.DeepEquals, [][]string{{"1", "a", "b", "c"}})

	// past the last row
	none, err := s.ReadRange(ctx, "products", 10, OpenEnd, 1, 4)
	c.Assert(err, qt.IsNil)
	c.Assert(none, qt.HasLen, 0)
}

func TestMemStoreUnknownTableIsEmpty(t *testing.T) {
	c := qt.New(t)

	rows, err := NewMemStore().ReadRange(context.Background(), "nope", 2, OpenEnd, 1, 5)
	c.Assert(err, qt.IsNil)
	c.Assert(rows, qt.HasLen, 0)
}

func TestMemStoreUpdateRow(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	s := NewMemStore()

	c.Assert(s.AppendRow(ctx, "users", []string{"1", "old"}), qt.IsNil)
	c.Assert(s.UpdateRow(ctx, "users", 2, []string{"1", "new"}), qt.IsNil)

	rows, err := s.ReadRange(ctx, "users", 2, OpenEnd, 1, 2)
	c.Assert(err, qt.IsNil)
	c.Assert(rows, qt.DeepEquals, [][]string{{"1", "new"}})
}

func TestMemStoreClearRowCompacts(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	s := NewMemStore()

	c.Assert(s.AppendRow(ctx, "likes", []string{"1", "7", "42"}), qt.IsNil)
	c.Assert(s.AppendRow(ctx, "likes", []string{"2", "7", "43"}), qt.IsNil)
	c.Assert(s.AppendRow(ctx, "likes", []string{"3", "8", "42"}), qt.IsNil)

	c.Assert(s.ClearRow(ctx, "likes", 3), qt.IsNil)

	rows, err := s.ReadRange(ctx, "likes", 2, OpenEnd, 1, 3)
	c.Assert(err, qt.IsNil)
	c.Assert(rows, qt.DeepEquals, [][]string{
		{"1", "7", "42"},
		{"3", "8", "42"},
	})

	// the surviving rows answer to their shifted addresses
	c.Assert(s.UpdateRow(ctx, "likes", 3, []string{"3", "8", "99"}), qt.IsNil)
	rows, err = s.ReadRange(ctx, "likes", 3, 3, 1, 3)
	c.Assert(err, qt.IsNil)
	c.Assert(rows, qt.DeepEquals, [][]string{{"3", "8", "99"}})
}

func TestColumnName(t *testing.T) {
	c := qt.New(t)

	c.Assert(columnName(1), qt.Equals, "A")
	c.Assert(columnName(12), qt.Equals, "L")
	c.Assert(columnName(26), qt.Equals, "Z")
	c.Assert(columnName(27), qt.Equals, "AA")
}

func TestRangeRef(t *testing.T) {
	c := qt.New(t)

	c.Assert(rangeRef("products", 2, OpenEnd, 1, 12), qt.Equals, "products!A2:L")
	c.Assert(rangeRef("products", 5, 5, 1, 12), qt.Equals, "products!A5:L5")
	c.Assert(rangeRef("orders", OpenEnd, OpenEnd, 1, 5), qt.Equals, "orders!A:E")
}

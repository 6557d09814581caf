// Package store provides range-based access to named tables of string cells,
// the persistence contract the catalog repositories are written against.
// Tables are addressed like spreadsheet ranges: rows are 1-based and row 1 is
// reserved for the header, so the first data row is row 2.
package store

import (
	"context"
	"errors"
	"fmt"
)

// OpenEnd leaves the end of a row range unbounded.
const OpenEnd = 0

// ErrStoreUnavailable marks failures of the backing store itself (network,
// auth, driver). Repositories propagate it unchanged.
var ErrStoreUnavailable = errors.New("store unavailable")

// Store is a minimal tabular store. Row indices passed to UpdateRow and
// ClearRow are absolute (header included): a row seen at position i of a
// ReadRange starting at row 2 lives at index i+2.
//
// ClearRow removes the row entirely and compacts the table, so indices of
// later rows shift down by one. Callers must re-read before addressing rows
// again. Row IDs kept in column 1 are allocated max+1 over present rows,
// which means the ID of a removed maximum row can be reissued.
type Store interface {
	// ReadRange returns the rows rowStart..rowEnd (inclusive, OpenEnd for
	// "to the last row"), each trimmed to columns colStart..colEnd
	// (1-based, inclusive). Short rows are returned short, not padded.
	ReadRange(ctx context.Context, table string, rowStart, rowEnd, colStart, colEnd int) ([][]string, error)

	// AppendRow adds row after the last row of the table.
	AppendRow(ctx context.Context, table string, row []string) error

	// UpdateRow replaces the row at rowIndex.
	UpdateRow(ctx context.Context, table string, rowIndex int, row []string) error

	// ClearRow removes the row at rowIndex and compacts the table.
	ClearRow(ctx context.Context, table string, rowIndex int) error
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

// window trims a full row to the 1-based column range colStart..colEnd.
func window(row []string, colStart, colEnd int) []string {
	if colStart < 1 {
		colStart = 1
	}
	if colEnd == OpenEnd || colEnd > len(row) {
		colEnd = len(row)
	}
	if colStart > len(row) {
		return nil
	}
	return row[colStart-1 : colEnd]
}

package store

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// tableRow is the single relational table backing every catalog table: one
// record per data row, cells kept as a JSON array of strings. RowIndex uses
// the same addressing as the adapter contract, so the first data row is 2.
type tableRow struct {
	ID       uint           `gorm:"primaryKey"`
	Sheet    string         `gorm:"size:64;uniqueIndex:idx_sheet_row,priority:1"`
	RowIndex int            `gorm:"uniqueIndex:idx_sheet_row,priority:2"`
	Cells    datatypes.JSON `gorm:"not null"`
}

// SQLStore implements Store on a relational database through GORM.
type SQLStore struct {
	db *gorm.DB
}

func NewSQLStore(db *gorm.DB) (*SQLStore, error) {
	if err := db.AutoMigrate(&tableRow{}); err != nil {
		return nil, unavailable(err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) ReadRange(ctx context.Context, table string, rowStart, rowEnd, colStart, colEnd int) ([][]string, error) {
	query := s.db.WithContext(ctx).
		Where("sheet = ? AND row_index >= ?", table, rowStart).
		Order("row_index")
	if rowEnd != OpenEnd {
		query = query.Where("row_index <= ?", rowEnd)
	}

	var records []tableRow
	if err := query.Find(&records).Error; err != nil {
		return nil, unavailable(err)
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		var cells []string
		if err := json.Unmarshal(record.Cells, &cells); err != nil {
			return nil, unavailable(err)
		}
		rows = append(rows, window(cells, colStart, colEnd))
	}
	return rows, nil
}

func (s *SQLStore) AppendRow(ctx context.Context, table string, row []string) error {
	cells, err := json.Marshal(row)
	if err != nil {
		return unavailable(err)
	}

	return s.translate(s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last tableRow
		next := 2 // row 1 is the header
		err := tx.Where("sheet = ?", table).Order("row_index DESC").First(&last).Error
		switch {
		case err == nil:
			next = last.RowIndex + 1
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		return tx.Create(&tableRow{Sheet: table, RowIndex: next, Cells: cells}).Error
	}))
}

func (s *SQLStore) UpdateRow(ctx context.Context, table string, rowIndex int, row []string) error {
	cells, err := json.Marshal(row)
	if err != nil {
		return unavailable(err)
	}
	result := s.db.WithContext(ctx).Model(&tableRow{}).
		Where("sheet = ? AND row_index = ?", table, rowIndex).
		Update("cells", datatypes.JSON(cells))
	return s.translate(result.Error)
}

func (s *SQLStore) ClearRow(ctx context.Context, table string, rowIndex int) error {
	return s.translate(s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sheet = ? AND row_index = ?", table, rowIndex).
			Delete(&tableRow{}).Error; err != nil {
			return err
		}
		// compact: later rows shift up to keep addresses dense. Ascending
		// order keeps the unique (sheet, row_index) index satisfied at
		// every step of the bulk update.
		return tx.Exec(
			"UPDATE table_rows SET row_index = row_index - 1 WHERE sheet = ? AND row_index > ? ORDER BY row_index",
			table, rowIndex,
		).Error
	}))
}

func (s *SQLStore) translate(err error) error {
	if err == nil {
		return nil
	}
	return unavailable(err)
}

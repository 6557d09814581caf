package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-resty/resty/v2"
)

const sheetsAPIBase = "https://sheets.googleapis.com/v4/spreadsheets"

// SheetStore implements Store against the Google Sheets v4 values API, the
// backend the catalog originally ran on. Each table is a sheet (tab) whose
// first row holds headers.
type SheetStore struct {
	client        *resty.Client
	spreadsheetID string

	mu       sync.Mutex
	sheetIDs map[string]int64 // tab title -> numeric sheet id, for row deletion
}

func NewSheetStore(spreadsheetID, accessToken string) *SheetStore {
	client := resty.New().
		SetBaseURL(sheetsAPIBase+"/"+spreadsheetID).
		SetAuthToken(accessToken).
		SetHeader("Accept", "application/json")
	return &SheetStore{
		client:        client,
		spreadsheetID: spreadsheetID,
		sheetIDs:      make(map[string]int64),
	}
}

func (s *SheetStore) ReadRange(ctx context.Context, table string, rowStart, rowEnd, colStart, colEnd int) ([][]string, error) {
	var result struct {
		Values [][]string `json:"values"`
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/values/" + rangeRef(table, rowStart, rowEnd, colStart, colEnd))
	if err != nil {
		return nil, unavailable(err)
	}
	if resp.IsError() {
		return nil, unavailable(fmt.Errorf("sheets read failed with status %d: %s", resp.StatusCode(), resp.Body()))
	}
	return result.Values, nil
}

func (s *SheetStore) AppendRow(ctx context.Context, table string, row []string) error {
	body := map[string]any{"values": [][]string{row}}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("valueInputOption", "USER_ENTERED").
		SetBody(body).
		Post("/values/" + rangeRef(table, OpenEnd, OpenEnd, 1, len(row)) + ":append")
	if err != nil {
		return unavailable(err)
	}
	if resp.IsError() {
		return unavailable(fmt.Errorf("sheets append failed with status %d: %s", resp.StatusCode(), resp.Body()))
	}
	return nil
}

func (s *SheetStore) UpdateRow(ctx context.Context, table string, rowIndex int, row []string) error {
	body := map[string]any{"values": [][]string{row}}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("valueInputOption", "USER_ENTERED").
		SetBody(body).
		Put("/values/" + rangeRef(table, rowIndex, rowIndex, 1, len(row)))
	if err != nil {
		return unavailable(err)
	}
	if resp.IsError() {
		return unavailable(fmt.Errorf("sheets update failed with status %d: %s", resp.StatusCode(), resp.Body()))
	}
	return nil
}

// ClearRow deletes the sheet row itself rather than blanking its cells, so
// repeated like/cart toggles no longer grow the sheet with empty rows.
func (s *SheetStore) ClearRow(ctx context.Context, table string, rowIndex int) error {
	sheetID, err := s.sheetID(ctx, table)
	if err != nil {
		return err
	}

	body := map[string]any{
		"requests": []map[string]any{{
			"deleteDimension": map[string]any{
				"range": map[string]any{
					"sheetId":    sheetID,
					"dimension":  "ROWS",
					"startIndex": rowIndex - 1, // batchUpdate indices are 0-based
					"endIndex":   rowIndex,
				},
			},
		}},
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(sheetsAPIBase + "/" + s.spreadsheetID + ":batchUpdate")
	if err != nil {
		return unavailable(err)
	}
	if resp.IsError() {
		return unavailable(fmt.Errorf("sheets row delete failed with status %d: %s", resp.StatusCode(), resp.Body()))
	}
	return nil
}

// sheetID resolves a tab title to its numeric id, caching the spreadsheet
// metadata after the first lookup.
func (s *SheetStore) sheetID(ctx context.Context, table string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.sheetIDs[table]; ok {
		return id, nil
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("fields", "sheets.properties").
		Get(sheetsAPIBase + "/" + s.spreadsheetID)
	if err != nil {
		return 0, unavailable(err)
	}
	if resp.IsError() {
		return 0, unavailable(fmt.Errorf("sheets metadata failed with status %d: %s", resp.StatusCode(), resp.Body()))
	}

	var meta struct {
		Sheets []struct {
			Properties struct {
				SheetID int64  `json:"sheetId"`
				Title   string `json:"title"`
			} `json:"properties"`
		} `json:"sheets"`
	}
	if err := json.Unmarshal(resp.Body(), &meta); err != nil {
		return 0, unavailable(err)
	}

	for _, sheet := range meta.Sheets {
		s.sheetIDs[sheet.Properties.Title] = sheet.Properties.SheetID
	}

	id, ok := s.sheetIDs[table]
	if !ok {
		return 0, unavailable(fmt.Errorf("sheet %q not found in spreadsheet %s", table, s.spreadsheetID))
	}
	return id, nil
}

// rangeRef builds an A1-notation range like "products!A2:L" with OpenEnd
// leaving the row bound off.
func rangeRef(table string, rowStart, rowEnd, colStart, colEnd int) string {
	from := columnName(colStart)
	if rowStart != OpenEnd {
		from += fmt.Sprint(rowStart)
	}
	to := columnName(colEnd)
	if rowEnd != OpenEnd {
		to += fmt.Sprint(rowEnd)
	}
	return fmt.Sprintf("%s!%s:%s", table, from, to)
}

// columnName converts a 1-based column number to its letter form (1 -> A,
// 27 -> AA).
func columnName(col int) string {
	if col < 1 {
		col = 1
	}
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+col%26)) + name
		col /= 26
	}
	return name
}

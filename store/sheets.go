package store

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Sheets is a TableStore backed by one Google Sheets spreadsheet. Every
// sheet tab is one table; the first row of a tab is its header.
type Sheets struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewSheets creates a Sheets store from service-account credentials JSON.
func NewSheets(ctx context.Context, spreadsheetID string, credsJSON []byte) (*Sheets, error) {
	svc, err := sheets.NewService(ctx, option.WithCredentialsJSON(credsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Sheets{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func (s *Sheets) ListTables(ctx context.Context) ([]string, error) {
	resp, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list sheets: %w", err)
	}
	names := make([]string, 0, len(resp.Sheets))
	for _, sh := range resp.Sheets {
		if sh.Properties != nil {
			names = append(names, sh.Properties.Title)
		}
	}
	return names, nil
}

func (s *Sheets) ReadRows(ctx context.Context, table string) ([][]string, error) {
	rng := fmt.Sprintf("'%s'!A2:Z", table)
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		// A range that cannot be parsed means the tab does not exist;
		// that is "no data yet", not a failure.
		if apiErr, ok := err.(*googleapi.Error); ok && apiErr.Code == 400 {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %q: %w", table, err)
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		cells := make([]string, len(raw))
		for i, v := range raw {
			cells[i] = strings.TrimSpace(fmt.Sprint(v))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func (s *Sheets) AppendRows(ctx context.Context, table string, rows [][]string) error {
	values := make([][]interface{}, len(rows))
	for i, r := range rows {
		row := make([]interface{}, len(r))
		for j, c := range r {
			row[j] = c
		}
		values[i] = row
	}
	rng := fmt.Sprintf("'%s'!A1", table)
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, rng, &sheets.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append to %q: %w", table, err)
	}
	return nil
}

func (s *Sheets) UpdateRow(ctx context.Context, table string, index int, cells []string) error {
	row := make([]interface{}, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	// Data rows start below the header, so row index 0 lives at sheet row 2.
	rng := fmt.Sprintf("'%s'!A%d", table, index+2)
	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, rng, &sheets.ValueRange{Values: [][]interface{}{row}}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update row %d of %q: %w", index, table, err)
	}
	return nil
}

func (s *Sheets) EnsureTable(ctx context.Context, table string, header []string) error {
	existing, err := s.ListTables(ctx)
	if err != nil {
		return err
	}
	for _, name := range existing {
		if name == table {
			return nil
		}
	}
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: table},
			},
		}},
	}
	if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to create table %q: %w", table, err)
	}
	if len(header) > 0 {
		row := make([]interface{}, len(header))
		for i, h := range header {
			row[i] = h
		}
		rng := fmt.Sprintf("'%s'!A1", table)
		_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, rng, &sheets.ValueRange{Values: [][]interface{}{row}}).
			ValueInputOption("RAW").
			Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("failed to write header of %q: %w", table, err)
		}
	}
	return nil
}

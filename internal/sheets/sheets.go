// Package sheets appends inventory log rows to a Google Sheet. The sheet is
// an external collaborator: failures here must never block the item store.
package sheets

import (
	"context"
	"fmt"
	"time"

	"shopbot/internal/domain"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Row format: Timestamp, Item Name, Quantity, Status, Sender Phone, Supplier, Type
const statusLowStock = "Low Stock"

// Log writes inventory rows to one worksheet of one spreadsheet
type Log struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
}

// New creates a sheet log authenticated with service-account JSON credentials
func New(ctx context.Context, credentialsJSON []byte, spreadsheetID, sheetName string) (*Log, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Log{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// AppendRow appends a single inventory row
func (l *Log) AppendRow(item string, qty int, sender, supplierName string, itemType domain.ItemType) error {
	return l.append([][]any{rowValues(item, qty, sender, supplierName, itemType)})
}

// AppendRows appends a batch of rows in one API call
func (l *Log) AppendRows(rows []domain.LogRow, sender string) error {
	if len(rows) == 0 {
		return nil
	}
	values := make([][]any, 0, len(rows))
	for _, r := range rows {
		values = append(values, rowValues(r.Item, r.Quantity, sender, r.Supplier, r.Type))
	}
	return l.append(values)
}

func (l *Log) append(values [][]any) error {
	_, err := l.svc.Spreadsheets.Values.
		Append(l.spreadsheetID, l.sheetName, &sheets.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Do()
	if err != nil {
		return fmt.Errorf("failed to append to sheet: %w", err)
	}
	return nil
}

func rowValues(item string, qty int, sender, supplierName string, itemType domain.ItemType) []any {
	timestamp := time.Now().UTC().Format("2006-01-02 15:04:05 UTC")
	return []any{timestamp, item, qty, statusLowStock, sender, supplierName, string(itemType)}
}

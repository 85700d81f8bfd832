// Package sheets loads event rows from Google Sheets and caches them so the
// dashboard does not hit the Sheets API on every request.
package sheets

import (
	"context"
	"fmt"
	"strings"

	"github.com/Mayank-kush24/Consolidated-Dahsboards/analytics"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/logging"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// RowSource loads the raw event rows for one spreadsheet.
type RowSource interface {
	LoadRows(ctx context.Context, sheetID string) ([]analytics.EventRecord, error)
}

// GoogleSheetsSource reads the first worksheet of a spreadsheet using a
// service-account credentials file.
type GoogleSheetsSource struct {
	CredentialsPath string
}

func (s *GoogleSheetsSource) LoadRows(ctx context.Context, sheetID string) ([]analytics.EventRecord, error) {
	service, err := sheetsapi.NewService(ctx,
		option.WithScopes(sheetsapi.SpreadsheetsReadonlyScope),
		option.WithCredentialsFile(s.CredentialsPath))
	if err != nil {
		logging.Log.Errorf("SHEETS: failed to create service: %v", err)
		return nil, err
	}

	meta, err := service.Spreadsheets.Get(sheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		logging.Log.Errorf("SHEETS: failed to read spreadsheet %s: %v", sheetID, err)
		return nil, err
	}
	if len(meta.Sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet %s has no worksheets", sheetID)
	}
	title := meta.Sheets[0].Properties.Title

	values, err := service.Spreadsheets.Values.Get(sheetID, title).Context(ctx).Do()
	if err != nil {
		logging.Log.Errorf("SHEETS: failed to read values from %s!%s: %v", sheetID, title, err)
		return nil, err
	}

	rows := RecordsFromValues(values.Values)
	logging.Log.Infof("SHEETS: loaded %d rows from %s", len(rows), sheetID)
	return rows, nil
}

// RecordsFromValues turns a header row plus data rows into records keyed by
// trimmed header name. Rows shorter than the header are padded with empties.
func RecordsFromValues(values [][]any) []analytics.EventRecord {
	if len(values) < 2 {
		return []analytics.EventRecord{}
	}

	headers := make([]string, 0, len(values[0]))
	for _, cell := range values[0] {
		headers = append(headers, strings.TrimSpace(fmt.Sprintf("%v", cell)))
	}

	records := make([]analytics.EventRecord, 0, len(values)-1)
	for _, row := range values[1:] {
		record := analytics.EventRecord{}
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(row) {
				record[header] = row[i]
			} else {
				record[header] = ""
			}
		}
		records = append(records, record)
	}
	return records
}

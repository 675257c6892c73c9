package ledger

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Spreadsheet adapters around the six-column import/export boundary. The
// workbook layout matches what the 가계부 spreadsheets in the wild look like:
// a 거래내역 (transactions) sheet plus a 계정별잔액 (balances) summary sheet.

const (
	sheetTransactions = "거래내역"
	sheetBalances     = "계정별잔액"
)

// ReadXLSX parses the first sheet of a workbook into raw records keyed by
// the header row, ready for ImportRecords.
func ReadXLSX(r io.Reader) ([]map[string]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportFormat, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrImportFormat)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportFormat, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				record[name] = row[i]
			}
		}
		records = append(records, record)
	}
	return records, nil
}

// WriteXLSX renders the ledger as a workbook: the transaction rows on one
// sheet and the non-zero balance summary on another.
func (s *Store) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetTransactions)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	if err := writeSheet(f, sheetTransactions, s.ExportRows()); err != nil {
		return err
	}
	f.SetColWidth(sheetTransactions, "A", "A", 12)
	f.SetColWidth(sheetTransactions, "B", "B", 30)
	f.SetColWidth(sheetTransactions, "C", "F", 15)

	if _, err := f.NewSheet(sheetBalances); err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	if err := writeSheet(f, sheetBalances, s.ExportBalanceRows()); err != nil {
		return err
	}
	f.SetColWidth(sheetBalances, "A", "C", 15)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, rows [][]string) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet the ingestor looks for first. Workbooks made
// from the template always carry it; hand-built workbooks fall back to the
// active sheet.
const SheetName = "Scenarios"

// ReadExcel loads scenario rows from an XLSX workbook.
func ReadExcel(path string) (*Result, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}
	defer book.Close()

	sheet := SheetName
	if idx, err := book.GetSheetIndex(sheet); err != nil || idx < 0 {
		sheet = book.GetSheetName(book.GetActiveSheetIndex())
	}

	records, err := book.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: reading sheet %s: %v", ErrSourceUnreadable, sheet, err)
	}

	return fromRecords(records)
}

package lexicon

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

type xlsxReader struct {
	columns Columns
	// sheet defaults to the first sheet of the workbook.
	sheet string
}

func (x *xlsxReader) Read(r io.Reader) (chan Row, chan error) {
	rows := make(chan Row)
	errs := make(chan error)
	go x.read(r, rows, errs)
	return rows, errs
}

func (x *xlsxReader) read(r io.Reader, rows chan Row, errs chan error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		errs <- fmt.Errorf("open workbook: %w", err)
		return
	}
	defer f.Close()

	sheet := x.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			errs <- fmt.Errorf("workbook has no sheets")
			return
		}
		sheet = sheets[0]
	}

	records, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		errs <- fmt.Errorf("read sheet %q: %w", sheet, err)
		return
	}
	if len(records) == 0 {
		errs <- &MalformedSourceError{Line: 1, Column: x.columns.Word}
		return
	}

	parser, err := newRowParser(x.columns, records[0])
	if err != nil {
		errs <- err
		return
	}

	for i, record := range records[1:] {
		row, keep, err := parser.parse(record, i+2)
		if err != nil {
			errs <- err
			return
		}
		if keep {
			rows <- row
		}
	}
	errs <- io.EOF
}

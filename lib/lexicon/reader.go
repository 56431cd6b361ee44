package lexicon

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

type Format string

const (
	XlsxFormat Format = "xlsx"
	TsvFormat  Format = "tsv"
	CsvFormat  Format = "csv"
)

// Columns names the header cells the readers look for.
type Columns struct {
	Word       string `mapstructure:"word"`
	SpellCheck string `mapstructure:"spell_check"`
	Subtlex    string `mapstructure:"subtlex"`
	Google     string `mapstructure:"google"`
}

func DefaultColumns() Columns {
	return Columns{
		Word:       "Word",
		SpellCheck: "spell-check OK (1/0)",
		Subtlex:    "ZipfSUBTLEX",
		Google:     "ZipfGoogle",
	}
}

// Row is one kept lexicon row. Line is 1-based and counts the header.
type Row struct {
	Line   int
	Word   string
	Rarity float64
}

// MalformedSourceError reports a lexicon source that cannot be compiled.
type MalformedSourceError struct {
	Line   int
	Column string
	Err    error
}

func (e *MalformedSourceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("malformed lexicon source: row %d: missing column %q", e.Line, e.Column)
	}
	return fmt.Sprintf("malformed lexicon source: row %d, column %q: %v", e.Line, e.Column, e.Err)
}

func (e *MalformedSourceError) Unwrap() error {
	return e.Err
}

type Reader interface {
	Read(r io.Reader) (chan Row, chan error)
}

func NewReader(format Format, columns Columns, sheet string) (Reader, error) {
	switch format {
	case XlsxFormat:
		return &xlsxReader{columns: columns, sheet: sheet}, nil
	case TsvFormat:
		return &delimitedReader{columns: columns, comma: '\t'}, nil
	case CsvFormat:
		return &delimitedReader{columns: columns, comma: ','}, nil
	default:
		return nil, fmt.Errorf("unsupported lexicon format %v", format)
	}
}

// ReadWithCallback executes onRow for each kept row of the source.
func ReadWithCallback(r io.Reader, reader Reader, onRow func(Row) error) error {
	rows, errs := reader.Read(r)

	for {
		select {
		case err := <-errs:
			if err == io.EOF {
				return nil
			}
			return err
		case row := <-rows:
			if err := onRow(row); err != nil {
				go drain(rows, errs)
				return err
			}
		}
	}
}

// drain unblocks a reader whose consumer stopped early. Every reader ends by sending
// exactly one value on errs.
func drain(rows chan Row, errs chan error) {
	for {
		select {
		case <-rows:
		case <-errs:
			return
		}
	}
}

// rowParser turns raw records into rows once the header has located the columns.
type rowParser struct {
	columns Columns

	word, spell, subtlex, google int
}

func newRowParser(columns Columns, header []string) (*rowParser, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}

	p := &rowParser{columns: columns}
	for _, c := range []struct {
		name string
		dst  *int
	}{
		{columns.Word, &p.word},
		{columns.SpellCheck, &p.spell},
		{columns.Subtlex, &p.subtlex},
		{columns.Google, &p.google},
	} {
		i, ok := index[c.name]
		if !ok {
			return nil, &MalformedSourceError{Line: 1, Column: c.name}
		}
		*c.dst = i
	}
	return p, nil
}

func cell(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// parse returns false for rows that did not pass the spell check.
func (p *rowParser) parse(record []string, line int) (Row, bool, error) {
	flag, err := strconv.ParseFloat(cell(record, p.spell), 64)
	if err != nil || flag != 1 {
		return Row{}, false, nil
	}

	word := cell(record, p.word)
	if word == "" {
		log.Warn().Int("row", line).Msg("skipping lexicon row without a word")
		return Row{}, false, nil
	}

	subtlex, err := strconv.ParseFloat(cell(record, p.subtlex), 64)
	if err != nil {
		return Row{}, false, &MalformedSourceError{Line: line, Column: p.columns.Subtlex, Err: err}
	}
	google, err := strconv.ParseFloat(cell(record, p.google), 64)
	if err != nil {
		return Row{}, false, &MalformedSourceError{Line: line, Column: p.columns.Google, Err: err}
	}

	return Row{Line: line, Word: word, Rarity: (subtlex + google) / 2}, true, nil
}

type delimitedReader struct {
	columns Columns
	comma   rune
}

func (d *delimitedReader) Read(r io.Reader) (chan Row, chan error) {
	rows := make(chan Row)
	errs := make(chan error)
	go d.read(r, rows, errs)
	return rows, errs
}

func (d *delimitedReader) read(r io.Reader, rows chan Row, errs chan error) {
	reader := csv.NewReader(r)
	reader.Comma = d.comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			err = &MalformedSourceError{Line: 1, Column: d.columns.Word}
		}
		errs <- err
		return
	}
	parser, err := newRowParser(d.columns, header)
	if err != nil {
		errs <- err
		return
	}

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			errs <- io.EOF
			return
		} else if err != nil {
			errs <- err
			return
		}
		line++

		row, keep, err := parser.parse(record, line)
		if err != nil {
			errs <- err
			return
		}
		if keep {
			rows <- row
		}
	}
}

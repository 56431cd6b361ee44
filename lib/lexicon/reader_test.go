package lexicon

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const tsvSource = "Word\tspell-check OK (1/0)\tZipfSUBTLEX\tZipfGoogle\n" +
	"Haus\t1\t5.0\t5.2\n" +
	"Hsau\t0\t1.0\t1.2\n" +
	"Ähre\t1\t1.5\t2.0\n"

func readAll(t *testing.T, reader Reader, source string) ([]Row, error) {
	t.Helper()
	var rows []Row
	err := ReadWithCallback(strings.NewReader(source), reader, func(row Row) error {
		rows = append(rows, row)
		return nil
	})
	return rows, err
}

func TestDelimitedReader(t *testing.T) {
	for _, tt := range []struct {
		name   string
		format Format
		source string
	}{
		{name: "tsv", format: TsvFormat, source: tsvSource},
		{name: "csv", format: CsvFormat, source: strings.ReplaceAll(tsvSource, "\t", ",")},
		{name: "byte order mark", format: TsvFormat, source: "\ufeff" + tsvSource},
	} {
		t.Log(tt.name)
		reader, err := NewReader(tt.format, DefaultColumns(), "")
		require.NoError(t, err)

		rows, err := readAll(t, reader, tt.source)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, 2, rows[0].Line)
		assert.Equal(t, "Haus", rows[0].Word)
		assert.InDelta(t, 5.1, rows[0].Rarity, 1e-9)
		assert.Equal(t, "Ähre", rows[1].Word)
		assert.InDelta(t, 1.75, rows[1].Rarity, 1e-9)
	}
}

func TestDelimitedReader_Malformed(t *testing.T) {
	for _, tt := range []struct {
		name     string
		source   string
		wantLine int
		wantCol  string
	}{
		{
			name:     "missing column",
			source:   "Word\tZipfSUBTLEX\tZipfGoogle\nHaus\t5\t5\n",
			wantLine: 1,
			wantCol:  "spell-check OK (1/0)",
		},
		{
			name:     "unparsable measure in kept row",
			source:   "Word\tspell-check OK (1/0)\tZipfSUBTLEX\tZipfGoogle\nHaus\t1\t5.0\t5.2\nBaum\t1\tviel\t4.0\n",
			wantLine: 3,
			wantCol:  "ZipfSUBTLEX",
		},
		{
			name:     "missing measure in kept row",
			source:   "Word\tspell-check OK (1/0)\tZipfSUBTLEX\tZipfGoogle\nHaus\t1\t5.0\n",
			wantLine: 2,
			wantCol:  "ZipfGoogle",
		},
		{
			name:     "empty source",
			source:   "",
			wantLine: 1,
			wantCol:  "Word",
		},
	} {
		t.Log(tt.name)
		reader, err := NewReader(TsvFormat, DefaultColumns(), "")
		require.NoError(t, err)

		_, err = readAll(t, reader, tt.source)
		var malformed *MalformedSourceError
		require.True(t, errors.As(err, &malformed), "got %v", err)
		assert.Equal(t, tt.wantLine, malformed.Line)
		assert.Equal(t, tt.wantCol, malformed.Column)
	}
}

func TestDelimitedReader_RejectedRowsAreNotParsed(t *testing.T) {
	reader, err := NewReader(TsvFormat, DefaultColumns(), "")
	require.NoError(t, err)

	rows, err := readAll(t, reader, "Word\tspell-check OK (1/0)\tZipfSUBTLEX\tZipfGoogle\nHsau\t0\tkaputt\t\nHaus\t1\t5\t5\n")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Haus", rows[0].Word)
}

func TestDelimitedReader_CustomColumns(t *testing.T) {
	columns := Columns{Word: "lemma", SpellCheck: "ok", Subtlex: "a", Google: "b"}
	reader, err := NewReader(CsvFormat, columns, "")
	require.NoError(t, err)

	rows, err := readAll(t, reader, "b,a,ok,lemma\n2,4,1,Baum\n")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, Row{Line: 2, Word: "Baum", Rarity: 3}, rows[0])
}

// scriptedReader sends rows then io.EOF and closes done once its goroutine returns.
type scriptedReader struct {
	rows []Row
	done chan struct{}
}

func (s *scriptedReader) Read(io.Reader) (chan Row, chan error) {
	rows := make(chan Row)
	errs := make(chan error)
	go func() {
		defer close(s.done)
		for _, row := range s.rows {
			rows <- row
		}
		errs <- io.EOF
	}()
	return rows, errs
}

func TestReadWithCallback_StopsEarly(t *testing.T) {
	reader := &scriptedReader{
		rows: []Row{{Line: 2, Word: "Haus"}, {Line: 3, Word: "Ähre"}, {Line: 4, Word: "Kater"}},
		done: make(chan struct{}),
	}
	stop := errors.New("stop")

	var seen []string
	err := ReadWithCallback(strings.NewReader(""), reader, func(row Row) error {
		seen = append(seen, row.Word)
		return stop
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"Haus"}, seen)
	select {
	case <-reader.done:
	case <-time.After(time.Second):
		t.Fatal("reader goroutine still blocked after the callback failed")
	}
}

func TestNewReader_UnknownFormat(t *testing.T) {
	_, err := NewReader("pickle", DefaultColumns(), "")
	assert.Error(t, err)
}

func writeWorkbook(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), "lexicon.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestXlsxReader(t *testing.T) {
	path := writeWorkbook(t, "Lexikon", [][]interface{}{
		{"Word", "spell-check OK (1/0)", "ZipfSUBTLEX", "ZipfGoogle"},
		{"Haus", 1, 5.0, 5.2},
		{"Hsau", 0, 1.0, 1.2},
		{"Ähre", 1, 1.5, 2.0},
	})

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	reader, err := NewReader(XlsxFormat, DefaultColumns(), "")
	require.NoError(t, err)

	var rows []Row
	require.NoError(t, ReadWithCallback(file, reader, func(row Row) error {
		rows = append(rows, row)
		return nil
	}))

	require.Len(t, rows, 2)
	assert.Equal(t, "Haus", rows[0].Word)
	assert.InDelta(t, 5.1, rows[0].Rarity, 1e-9)
	assert.Equal(t, 4, rows[1].Line)
	assert.InDelta(t, 1.75, rows[1].Rarity, 1e-9)
}

func TestXlsxReader_MissingSheet(t *testing.T) {
	path := writeWorkbook(t, "Lexikon", [][]interface{}{{"Word"}})
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	reader, err := NewReader(XlsxFormat, DefaultColumns(), "Sheet9")
	require.NoError(t, err)

	err = ReadWithCallback(file, reader, func(Row) error { return nil })
	assert.Error(t, err)
}

// Package export writes selected items as a table, one row per item.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/weit-project/eit-toolkit/lib/sampler"
	"github.com/xuri/excelize/v2"
)

type Format string

const (
	XlsxFormat Format = "xlsx"
	CsvFormat  Format = "csv"
	TsvFormat  Format = "tsv"

	DefaultSheet = "Sentences"
)

var Header = []string{"Sentence", "Syllables", "LowestZipfWord", "LowestZipfScore", "NoPropNouns", "NoNumbers", "HasVerb", "NoAbbrev"}

type Options struct {
	Path   string `mapstructure:"path"`
	Format Format `mapstructure:"format"`
	// Sheet is only used for xlsx.
	Sheet string `mapstructure:"sheet"`
}

// Sorted orders items by syllable count, then sentence.
func Sorted(items []sampler.Item) []sampler.Item {
	sorted := make([]sampler.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Syllables != sorted[j].Syllables {
			return sorted[i].Syllables < sorted[j].Syllables
		}
		return sorted[i].Sentence < sorted[j].Sentence
	})
	return sorted
}

func record(item sampler.Item) []string {
	return []string{
		item.Sentence,
		strconv.Itoa(item.Syllables),
		item.RarestWord,
		strconv.FormatFloat(item.RarestScore, 'f', -1, 64),
		strconv.FormatBool(item.NoPropNouns),
		strconv.FormatBool(item.NoNumbers),
		strconv.FormatBool(item.HasVerb),
		strconv.FormatBool(item.NoAbbrev),
	}
}

// Write creates opts.Path in the requested format.
func Write(items []sampler.Item, opts Options) error {
	if opts.Path == "" {
		return fmt.Errorf("no export path configured")
	}
	if dir := filepath.Dir(opts.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	var err error
	switch opts.Format {
	case XlsxFormat, "":
		err = writeXlsx(Sorted(items), opts)
	case CsvFormat, TsvFormat:
		err = writeDelimitedFile(Sorted(items), opts)
	default:
		return fmt.Errorf("unsupported export format %v", opts.Format)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", opts.Path, err)
	}

	log.Info().Str("path", opts.Path).Int("items", len(items)).Msg("exported items")
	return nil
}

func writeDelimitedFile(items []sampler.Item, opts Options) error {
	file, err := os.Create(opts.Path)
	if err != nil {
		return err
	}
	comma := ','
	if opts.Format == TsvFormat {
		comma = '\t'
	}
	if err := WriteDelimited(file, items, comma); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// WriteDelimited writes items to w in the given order.
func WriteDelimited(w io.Writer, items []sampler.Item, comma rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = comma
	if err := writer.Write(Header); err != nil {
		return err
	}
	for _, item := range items {
		if err := writer.Write(record(item)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeXlsx(items []sampler.Item, opts Options) error {
	sheet := opts.Sheet
	if sheet == "" {
		sheet = DefaultSheet
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return err
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, item := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			item.Sentence,
			item.Syllables,
			item.RarestWord,
			item.RarestScore,
			item.NoPropNouns,
			item.NoNumbers,
			item.HasVerb,
			item.NoAbbrev,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(opts.Path)
}

package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kelly-tou/scum-code/compress"
	"github.com/kelly-tou/scum-code/errs"
	"github.com/kelly-tou/scum-code/internal/hash"
	"github.com/kelly-tou/scum-code/internal/options"
)

// CellParser converts a single cell's text to a value.
type CellParser func(cell string) (float64, error)

// readConfig holds configuration for Read.
type readConfig struct {
	parsersByName  map[string]CellParser
	parsersByIndex map[int]CellParser
	defaultParser  CellParser
}

// ReadOption is a functional option for Read.
type ReadOption = options.Option[*readConfig]

// WithCellParser overrides the cell parser of the named column.
func WithCellParser(column string, parser CellParser) ReadOption {
	return options.New(func(cfg *readConfig) error {
		if parser == nil {
			return fmt.Errorf("%w: nil parser for column %q", errs.ErrInvalidCell, column)
		}
		cfg.parsersByName[column] = parser

		return nil
	})
}

// WithDefaultCellParser replaces the float parser used for columns without
// a name or position override.
func WithDefaultCellParser(parser CellParser) ReadOption {
	return options.New(func(cfg *readConfig) error {
		if parser == nil {
			return fmt.Errorf("%w: nil default parser", errs.ErrInvalidCell)
		}
		cfg.defaultParser = parser

		return nil
	})
}

// WithCellParserAt overrides the cell parser of the column at the given
// position. Position overrides take precedence over name overrides.
func WithCellParserAt(index int, parser CellParser) ReadOption {
	return options.New(func(cfg *readConfig) error {
		if parser == nil {
			return fmt.Errorf("%w: nil parser for column %d", errs.ErrInvalidCell, index)
		}
		if index < 0 {
			return fmt.Errorf("%w: %d", errs.ErrColumnOutOfRange, index)
		}
		cfg.parsersByIndex[index] = parser

		return nil
	})
}

// Read loads a capture file into a Table.
//
// The file's compression codec is selected from its extension; plain files
// pass through unchanged. Lines starting with '#' are skipped, the first
// remaining row is the header, and every following row must have one cell
// per header column.
//
// Returns:
//   - *Table: The parsed table
//   - error: errs.ErrEmptyTable for files without header or data rows,
//     errs.ErrRaggedRow for rows with a mismatched cell count,
//     errs.ErrInvalidCell when a cell fails to parse, or the underlying
//     read/decompression error
func Read(path string, opts ...ReadOption) (*Table, error) {
	cfg := readConfig{
		parsersByName:  make(map[string]CellParser),
		parsersByIndex: make(map[int]CellParser),
	}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read capture %s: %w", path, err)
	}

	codec, err := compress.GetCodec(compress.FromPath(path))
	if err != nil {
		return nil, err
	}
	decoded, err := codec.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress capture %s: %w", path, err)
	}

	table, err := parseTable(path, decoded, &cfg)
	if err != nil {
		return nil, err
	}
	table.Fingerprint = hash.Sum(raw)

	return table, nil
}

// parseTable parses decompressed capture bytes into a Table.
func parseTable(path string, data []byte, cfg *readConfig) (*Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comment = '#'
	reader.FieldsPerRecord = -1 // Row widths are validated against the header below
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s has no header row", errs.ErrEmptyTable, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse capture %s: %w", path, err)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
	}

	parsers := resolveParsers(columns, cfg)

	columnData := make([][]float64, len(columns))
	row := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse capture %s: %w", path, err)
		}
		if len(record) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d cells, header has %d columns",
				errs.ErrRaggedRow, row, len(record), len(columns))
		}

		for i, cell := range record {
			value, err := parsers[i](strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("%w: row %d, column %q: %v", errs.ErrInvalidCell, row, columns[i], err)
			}
			columnData[i] = append(columnData[i], value)
		}
		row++
	}

	if row == 0 {
		return nil, fmt.Errorf("%w: %s has no data rows", errs.ErrEmptyTable, path)
	}

	return &Table{
		Path:    path,
		Columns: columns,
		data:    columnData,
	}, nil
}

// resolveParsers assigns one parser per column: position overrides first,
// then name overrides, then the default parser.
func resolveParsers(columns []string, cfg *readConfig) []CellParser {
	fallback := cfg.defaultParser
	if fallback == nil {
		fallback = parseFloat
	}

	parsers := make([]CellParser, len(columns))
	for i, name := range columns {
		switch {
		case cfg.parsersByIndex[i] != nil:
			parsers[i] = cfg.parsersByIndex[i]
		case cfg.parsersByName[name] != nil:
			parsers[i] = cfg.parsersByName[name]
		default:
			parsers[i] = fallback
		}
	}

	return parsers
}

// parseFloat is the default cell parser.
func parseFloat(cell string) (float64, error) {
	return strconv.ParseFloat(cell, 64)
}

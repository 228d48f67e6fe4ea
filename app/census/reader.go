// Package census reads Census Bureau population estimates CSV exports.
package census

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/findabatherapy/citygen/app/rules"
)

const (
	EncodingLatin1 = "latin1"
	EncodingUTF8   = "utf8"
)

type Reader struct {
	columns  rules.Columns
	encoding string
}

func NewReader(columns rules.Columns, encoding string) *Reader {
	return &Reader{columns: columns, encoding: encoding}
}

// ReadFile reads every row of the export at path.
func (r *Reader) ReadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	rows, err := r.Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return rows, nil
}

// Read decodes src and returns its rows in file order. A row that is shorter
// than the header yields empty strings for the missing fields.
func (r *Reader) Read(src io.Reader) ([]Row, error) {
	decoded, err := r.decode(src)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("input is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	idx, err := r.columnIndexes(header)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV: %w", err)
		}

		line, _ := cr.FieldPos(0)
		rows = append(rows, Row{
			Line:         line,
			CategoryCode: field(record, idx.category),
			StateName:    field(record, idx.state),
			PlaceName:    field(record, idx.place),
			Population:   field(record, idx.population),
		})
	}

	return rows, nil
}

func (r *Reader) decode(src io.Reader) (io.Reader, error) {
	switch r.encoding {
	case EncodingLatin1:
		return transform.NewReader(src, charmap.ISO8859_1.NewDecoder()), nil
	case EncodingUTF8, "":
		return transform.NewReader(src, unicode.BOMOverride(unicode.UTF8.NewDecoder())), nil
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", r.encoding)
	}
}

type columnIndexes struct {
	category, state, place, population int
}

func (r *Reader) columnIndexes(header []string) (columnIndexes, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(trimBOM(name))
		if _, seen := positions[name]; !seen {
			positions[name] = i
		}
	}

	var missing []string
	lookup := func(name string) int {
		pos, ok := positions[name]
		if !ok {
			missing = append(missing, name)
		}
		return pos
	}

	idx := columnIndexes{
		category:   lookup(r.columns.Category),
		state:      lookup(r.columns.State),
		place:      lookup(r.columns.Place),
		population: lookup(r.columns.Population),
	}
	if len(missing) > 0 {
		return columnIndexes{}, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

// trimBOM strips a byte order mark, including one that went through the
// Latin-1 decoder as "\u00ef\u00bb\u00bf".
func trimBOM(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	return strings.TrimPrefix(s, "\u00ef\u00bb\u00bf")
}

func field(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}

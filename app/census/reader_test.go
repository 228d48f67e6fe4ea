package census

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/findabatherapy/citygen/app/rules"
)

func defaultColumns() rules.Columns {
	return rules.Default().Columns
}

const sampleCSV = `SUMLEV,STATE,PLACE,STNAME,NAME,POPESTIMATE2022,POPESTIMATE2023
040,01,00000,Alabama,Alabama,5074296,5108468
162,01,07000,Alabama,Birmingham city,196357,196644
170,06,99999,California,East Los Angeles CDP,118786,117409
`

func TestReadMapsColumnsByHeader(t *testing.T) {
	reader := NewReader(defaultColumns(), EncodingUTF8)

	rows, err := reader.Read(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}

	got := rows[1]
	if got.CategoryCode != "162" {
		t.Errorf("Expected category '162', got '%s'", got.CategoryCode)
	}
	if got.StateName != "Alabama" {
		t.Errorf("Expected state 'Alabama', got '%s'", got.StateName)
	}
	if got.PlaceName != "Birmingham city" {
		t.Errorf("Expected place 'Birmingham city', got '%s'", got.PlaceName)
	}
	if got.Population != "196644" {
		t.Errorf("Expected population '196644' from POPESTIMATE2023, got '%s'", got.Population)
	}
	if got.Line != 3 {
		t.Errorf("Expected line 3, got %d", got.Line)
	}
}

func TestReadLatin1(t *testing.T) {
	// "Cañon City" with ñ encoded as the single Latin-1 byte 0xF1.
	data := []byte("SUMLEV,STNAME,NAME,POPESTIMATE2023\n162,Colorado,Ca\xf1on City city,17000\n")

	rows, err := NewReader(defaultColumns(), EncodingLatin1).Read(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if rows[0].PlaceName != "Cañon City city" {
		t.Errorf("Expected 'Cañon City city', got %q", rows[0].PlaceName)
	}
}

func TestReadStripsByteOrderMark(t *testing.T) {
	data := "\ufeffSUMLEV,STNAME,NAME,POPESTIMATE2023\n162,Ohio,Akron city,190000\n"

	for _, enc := range []string{EncodingUTF8, EncodingLatin1} {
		t.Run(enc, func(t *testing.T) {
			rows, err := NewReader(defaultColumns(), enc).Read(strings.NewReader(data))
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if rows[0].CategoryCode != "162" {
				t.Errorf("Expected category '162', got '%s'", rows[0].CategoryCode)
			}
		})
	}
}

func TestReadShortRow(t *testing.T) {
	data := "SUMLEV,STNAME,NAME,POPESTIMATE2023\n162,Ohio,Akron city\n"

	rows, err := NewReader(defaultColumns(), EncodingUTF8).Read(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Expected short rows to be tolerated, got: %v", err)
	}
	if rows[0].Population != "" {
		t.Errorf("Expected empty population for short row, got '%s'", rows[0].Population)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		encoding string
	}{
		{"empty input", "", EncodingUTF8},
		{"missing column", "SUMLEV,STNAME,NAME\n162,Ohio,Akron city\n", EncodingUTF8},
		{"bad quoting", "SUMLEV,STNAME,NAME,POPESTIMATE2023\n162,Ohio,\"Akron\" city\",1\n", EncodingUTF8},
		{"unknown encoding", sampleCSV, "ebcdic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewReader(defaultColumns(), tt.encoding).Read(strings.NewReader(tt.data)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "census.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0644); err != nil {
		t.Fatal(err)
	}

	rows, err := NewReader(defaultColumns(), EncodingLatin1).ReadFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("Expected 3 rows, got %d", len(rows))
	}

	if _, err := NewReader(defaultColumns(), EncodingLatin1).ReadFile(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("Expected error for missing file")
	}
}

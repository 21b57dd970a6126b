package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"catalog/sitegen/internal/domain"

	log "github.com/sirupsen/logrus"
)

// Source produces the catalog's products in source order.
type Source interface {
	Load(ctx context.Context) ([]*domain.Product, error)
	Name() string
}

type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return s.path
}

// Load reads the CSV file at the source path. A missing file yields an error
// matching fs.ErrNotExist.
func (s *FileSource) Load(ctx context.Context) ([]*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	products, err := ReadProducts(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", s.path, err)
	}

	log.Debugf("Read %d products from %s", len(products), s.path)
	return products, nil
}

// ReadProducts parses CSV with a header row into products, in row order.
// Quotes inside unquoted fields are kept as text, so 12" Latex Balloon reads
// as written.
func ReadProducts(r io.Reader) ([]*domain.Product, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("%w: %w", ErrDataFormat, err)
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	if len(records) == 0 {
		return []*domain.Product{}, nil
	}

	return BuildProducts(records[0], records[1:])
}

// BuildProducts turns header-named rows into products. Cells past the header
// are ignored and missing cells read as "", except for specifications which
// must be present in every row.
func BuildProducts(header []string, rows [][]string) ([]*domain.Product, error) {
	for _, column := range domain.RequiredColumns {
		if !slices.Contains(header, column.String()) {
			return nil, fmt.Errorf("%w: missing required column %q", ErrDataFormat, column)
		}
	}

	// Later duplicates of a header name win, like the cells they label.
	column := func(c domain.Column) int {
		for i := len(header) - 1; i >= 0; i-- {
			if header[i] == c.String() {
				return i
			}
		}
		return -1
	}
	idIdx := column(domain.ColumnID)
	categoryIdx := column(domain.ColumnCategory)
	specsIdx := column(domain.ColumnSpecifications)

	products := make([]*domain.Product, 0, len(rows))
	for n, row := range rows {
		if specsIdx >= len(row) {
			return nil, fmt.Errorf("%w: row %d has no %s value", ErrDataFormat, n+1, domain.ColumnSpecifications)
		}

		fields := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				fields[name] = row[i]
			} else {
				fields[name] = ""
			}
		}

		specs, err := ParseSpecifications(row[specsIdx])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+1, err)
		}

		products = append(products, &domain.Product{
			ID:             cell(row, idIdx),
			Category:       cell(row, categoryIdx),
			Specifications: specs,
			Fields:         fields,
		})
	}

	return products, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

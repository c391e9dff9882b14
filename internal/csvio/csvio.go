// Package csvio adapts the alignment core to CSV files: one row of
// hypothesis tokens, one row of reference tokens, and one row of
// reference speaker labels in, the aligned grid and post-processing
// results back out. This is deliberately outside the core (see DESIGN.md)
// and uses only the standard library's encoding/csv.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/dialogalign/msalign/internal/msa"
	"github.com/dialogalign/msalign/internal/result"
	"github.com/dialogalign/msalign/internal/token"
)

// Document is the parsed content of a CSV file: every row, uninterpreted.
type Document [][]string

// Read parses r as CSV into a Document. Ragged rows are allowed (fields
// per record is not fixed), since each requested line plays a different
// role and may have a different width.
func Read(r io.Reader) (Document, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csvio: read: %w", err)
	}
	return Document(rows), nil
}

// Hypothesis returns the line'th row as a hypothesis strand.
func (d Document) Hypothesis(line int) (token.Strand, error) {
	row, err := d.row(line)
	if err != nil {
		return nil, err
	}
	return token.Strand(row), nil
}

// ReferenceWithLabel returns the referenceLine'th row as reference tokens
// and the labelLine'th row as their positional speaker labels.
func (d Document) ReferenceWithLabel(referenceLine, labelLine int) (token.Strand, []string, error) {
	refRow, err := d.row(referenceLine)
	if err != nil {
		return nil, nil, err
	}
	labelRow, err := d.row(labelLine)
	if err != nil {
		return nil, nil, err
	}
	return token.Strand(refRow), labelRow, nil
}

func (d Document) row(line int) ([]string, error) {
	if line < 0 || line >= len(d) {
		return nil, fmt.Errorf("csvio: line %d out of range (document has %d rows)", line, len(d))
	}
	return d[line], nil
}

// WriteGrid writes an alignment grid as CSV, one row per aligned strand.
func WriteGrid(w io.Writer, grid msa.Grid) error {
	cw := csv.NewWriter(w)
	for _, row := range grid {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csvio: write grid: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCategories writes a single row of match-category strings.
func WriteCategories(w io.Writer, categories []result.Category) error {
	row := make([]string, len(categories))
	for i, c := range categories {
		row[i] = string(c)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(row); err != nil {
		return fmt.Errorf("csvio: write categories: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// WriteIndices writes a 2D slice of ints, one CSV row per inner slice.
func WriteIndices(w io.Writer, indices [][]int) error {
	cw := csv.NewWriter(w)
	for _, row := range indices {
		strs := make([]string, len(row))
		for i, v := range row {
			strs[i] = fmt.Sprintf("%d", v)
		}
		if err := cw.Write(strs); err != nil {
			return fmt.Errorf("csvio: write indices: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteLabels writes a single row of strings, used for both the unique
// speaker list and the aligned hypothesis speaker labels.
func WriteLabels(w io.Writer, labels []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(labels); err != nil {
		return fmt.Errorf("csvio: write labels: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

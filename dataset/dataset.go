// Package dataset loads delimited tables of jet variables into memory.
//
// Files carry a header row naming the columns, followed by one numeric
// row per jet. Both comma-delimited and whitespace-delimited layouts are
// accepted; lines starting with '#' are ignored.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	btag "github.com/jamesainslie/go-btag"
)

// ErrMissingColumn indicates a requested column name is absent from the table.
var ErrMissingColumn = errors.New("dataset: column not found")

// Table is an in-memory column store of float64 values. Columns are
// addressed by the names from the header row. A loaded Table is never
// mutated.
type Table struct {
	names []string
	index map[string]int
	cols  [][]float64
}

// Load reads a table from a file.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening table: %w", err)
	}
	defer func() { _ = f.Close() }()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return t, nil
}

// Parse reads a table from r. The first non-comment line is the header.
func Parse(r io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var t *Table
	var split func(string) []string
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if t == nil {
			// Header row fixes the delimiter for the whole file.
			if strings.Contains(line, ",") {
				split = splitComma
			} else {
				split = strings.Fields
			}

			names := split(line)
			t = &Table{
				names: names,
				index: make(map[string]int, len(names)),
				cols:  make([][]float64, len(names)),
			}
			for i, name := range names {
				if name == "" {
					return nil, fmt.Errorf("line %d: empty column name", lineNo)
				}
				if _, dup := t.index[name]; dup {
					return nil, fmt.Errorf("line %d: duplicate column %q", lineNo, name)
				}
				t.index[name] = i
			}
			continue
		}

		fields := split(line)
		if len(fields) != len(t.names) {
			return nil, fmt.Errorf("line %d: %d fields, want %d", lineNo, len(fields), len(t.names))
		}
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: column %q: parsing %q: %w",
					lineNo, t.names[i], field, err)
			}
			t.cols[i] = append(t.cols[i], v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}

	if t == nil {
		return nil, errors.New("dataset: no header row")
	}
	if t.Len() == 0 {
		return nil, errors.New("dataset: no data rows")
	}
	return t, nil
}

func splitComma(line string) []string {
	fields := strings.Split(line, ",")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0])
}

// Columns returns the column names in file order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Column returns a copy of the named column.
func (t *Table) Column(name string) ([]float64, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrMissingColumn, name, strings.Join(t.names, ", "))
	}
	out := make([]float64, len(t.cols[i]))
	copy(out, t.cols[i])
	return out, nil
}

// BinaryColumn returns the named column as labels. Every value must be
// exactly 0 or 1.
func (t *Table) BinaryColumn(name string) (btag.Labels, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}

	labels := make(btag.Labels, len(col))
	for i, v := range col {
		switch v {
		case 0:
			labels[i] = 0
		case 1:
			labels[i] = 1
		default:
			return nil, fmt.Errorf("%w: column %q row %d = %v", btag.ErrNotBinary, name, i, v)
		}
	}
	return labels, nil
}

// Matrix returns the named columns as a rows×len(names) dense matrix.
func (t *Table) Matrix(names ...string) (*mat.Dense, error) {
	if len(names) == 0 {
		return nil, errors.New("dataset: no columns requested")
	}

	m := mat.NewDense(t.Len(), len(names), nil)
	for j, name := range names {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		m.SetCol(j, col)
	}
	return m, nil
}

// Rows32 returns the named columns as float32 feature rows, ready for
// model inference.
func (t *Table) Rows32(names ...string) ([][]float32, error) {
	if len(names) == 0 {
		return nil, errors.New("dataset: no columns requested")
	}

	cols := make([][]float64, len(names))
	for j, name := range names {
		i, ok := t.index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		cols[j] = t.cols[i]
	}

	rows := make([][]float32, t.Len())
	for i := range rows {
		row := make([]float32, len(names))
		for j := range names {
			row[j] = float32(cols[j][i])
		}
		rows[i] = row
	}
	return rows, nil
}

// Summary holds descriptive statistics for one column.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Describe computes descriptive statistics for the named column.
func (t *Table) Describe(name string) (Summary, error) {
	col, err := t.Column(name)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		N:      len(col),
		Mean:   stat.Mean(col, nil),
		StdDev: stat.StdDev(col, nil),
		Min:    floats.Min(col),
		Max:    floats.Max(col),
	}, nil
}

package dataset

import (
	"errors"
	"math"
	"strings"
	"testing"

	btag "github.com/jamesainslie/go-btag"
)

const whitespaceTable = `# sample jets
energy nnbjet isb
30.5 0.91 1
22.1 0.12 0
41.7 0.55 1
28.0 0.33 0
`

const commaTable = `energy, nnbjet, isb
30.5, 0.91, 1
22.1, 0.12, 0
`

func TestParse_Whitespace(t *testing.T) {
	table, err := Parse(strings.NewReader(whitespaceTable))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if table.Len() != 4 {
		t.Errorf("Len() = %d, want 4", table.Len())
	}
	want := []string{"energy", "nnbjet", "isb"}
	got := table.Columns()
	if len(got) != len(want) {
		t.Fatalf("Columns() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Columns()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	col, err := table.Column("nnbjet")
	if err != nil {
		t.Fatalf("Column() error = %v", err)
	}
	if col[0] != 0.91 || col[3] != 0.33 {
		t.Errorf("nnbjet = %v, want [0.91 ... 0.33]", col)
	}
}

func TestParse_Comma(t *testing.T) {
	table, err := Parse(strings.NewReader(commaTable))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}

	col, err := table.Column("energy")
	if err != nil {
		t.Fatalf("Column() error = %v", err)
	}
	if col[0] != 30.5 || col[1] != 22.1 {
		t.Errorf("energy = %v, want [30.5 22.1]", col)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"header only", "energy nnbjet isb\n"},
		{"comments only", "# nothing here\n"},
		{"ragged row", "a b c\n1 2 3\n1 2\n"},
		{"non-numeric cell", "a b\n1 x\n"},
		{"duplicate column", "a a\n1 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestColumn_Missing(t *testing.T) {
	table, err := Parse(strings.NewReader(whitespaceTable))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	_, err = table.Column("spheri")
	if err == nil {
		t.Fatal("expected error for missing column")
	}
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("expected ErrMissingColumn, got: %v", err)
	}
	if !strings.Contains(err.Error(), "spheri") {
		t.Errorf("error should name the missing column: %v", err)
	}
}

func TestColumn_ReturnsCopy(t *testing.T) {
	table, err := Parse(strings.NewReader(whitespaceTable))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	col, _ := table.Column("energy")
	col[0] = -1

	again, _ := table.Column("energy")
	if again[0] != 30.5 {
		t.Errorf("table mutated through returned column: %v", again[0])
	}
}

func TestBinaryColumn(t *testing.T) {
	table, err := Parse(strings.NewReader(whitespaceTable))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	labels, err := table.BinaryColumn("isb")
	if err != nil {
		t.Fatalf("BinaryColumn() error = %v", err)
	}
	want := btag.Labels{1, 0, 1, 0}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("labels[%d] = %d, want %d", i, labels[i], want[i])
		}
	}
}

func TestBinaryColumn_NotBinary(t *testing.T) {
	table, err := Parse(strings.NewReader(whitespaceTable))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	_, err = table.BinaryColumn("energy")
	if err == nil {
		t.Fatal("expected error for non-binary column")
	}
	if !errors.Is(err, btag.ErrNotBinary) {
		t.Errorf("expected ErrNotBinary, got: %v", err)
	}
}

func TestMatrix(t *testing.T) {
	table, err := Parse(strings.NewReader(whitespaceTable))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	m, err := table.Matrix("energy", "nnbjet")
	if err != nil {
		t.Fatalf("Matrix() error = %v", err)
	}
	rows, cols := m.Dims()
	if rows != 4 || cols != 2 {
		t.Fatalf("Dims() = (%d, %d), want (4, 2)", rows, cols)
	}
	if got := m.At(2, 1); got != 0.55 {
		t.Errorf("At(2, 1) = %v, want 0.55", got)
	}
}

func TestRows32(t *testing.T) {
	table, err := Parse(strings.NewReader(whitespaceTable))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	rows, err := table.Rows32("energy", "isb")
	if err != nil {
		t.Fatalf("Rows32() error = %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}
	if rows[0][0] != 30.5 || rows[0][1] != 1 {
		t.Errorf("rows[0] = %v, want [30.5 1]", rows[0])
	}

	_, err = table.Rows32("nope")
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("expected ErrMissingColumn, got: %v", err)
	}
}

func TestDescribe(t *testing.T) {
	table, err := Parse(strings.NewReader("x\n1\n2\n3\n4\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	s, err := table.Describe("x")
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}
	if s.N != 4 {
		t.Errorf("N = %d, want 4", s.N)
	}
	if s.Mean != 2.5 {
		t.Errorf("Mean = %v, want 2.5", s.Mean)
	}
	if s.Min != 1 || s.Max != 4 {
		t.Errorf("Min, Max = %v, %v, want 1, 4", s.Min, s.Max)
	}
	// Sample standard deviation of 1..4
	if want := math.Sqrt(5.0 / 3.0); math.Abs(s.StdDev-want) > 1e-12 {
		t.Errorf("StdDev = %v, want %v", s.StdDev, want)
	}
}

func TestLoad_SampleFile(t *testing.T) {
	table, err := Load("../testdata/bjets.dat")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if table.Len() == 0 {
		t.Fatal("expected non-empty table")
	}
	for _, col := range []string{"energy", "prob_b", "nnbjet", "isb"} {
		if _, err := table.Column(col); err != nil {
			t.Errorf("Column(%q) error = %v", col, err)
		}
	}

	truth, err := table.BinaryColumn("isb")
	if err != nil {
		t.Fatalf("BinaryColumn() error = %v", err)
	}
	if len(truth) != table.Len() {
		t.Errorf("got %d labels, want %d", len(truth), table.Len())
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load("../testdata/nonexistent.dat")
	if err == nil {
		t.Error("expected error for missing file")
	}
}

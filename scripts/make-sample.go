//go:build ignore

// Downsample a raw ALEPH-style jet dump into the benchmark sample.
// Keeps the header, validates that the truth and benchmark columns are
// present, and writes a shuffled fixed-size subset.
// Usage: go run ./scripts/make-sample.go <input> <output> [rows]
package main

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
)

var requiredColumns = []string{"nnbjet", "isb"}

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: make-sample.go <input> <output> [rows]")
		os.Exit(1)
	}
	inPath, outPath := os.Args[1], os.Args[2]
	keep := 1000
	if len(os.Args) > 3 {
		n, err := strconv.Atoi(os.Args[3])
		if err != nil || n < 1 {
			fmt.Fprintf(os.Stderr, "invalid row count %q\n", os.Args[3])
			os.Exit(1)
		}
		keep = n
	}

	in, err := os.Open(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening input: %v\n", err)
		os.Exit(1)
	}
	defer in.Close()

	var header string
	var rows []string

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if header == "" {
			header = line
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "reading input: %v\n", err)
		os.Exit(1)
	}

	names := strings.Fields(header)
	for _, want := range requiredColumns {
		found := false
		for _, name := range names {
			if name == want {
				found = true
				break
			}
		}
		if !found {
			fmt.Fprintf(os.Stderr, "input is missing required column %q\n", want)
			os.Exit(1)
		}
	}

	rand.Shuffle(len(rows), func(i, j int) {
		rows[i], rows[j] = rows[j], rows[i]
	})
	if len(rows) > keep {
		rows = rows[:keep]
	}

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating output: %v\n", err)
		os.Exit(1)
	}
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "# Sample of %d jets drawn from %s\n", len(rows), inPath)
	fmt.Fprintln(w, header)
	for _, row := range rows {
		fmt.Fprintln(w, row)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "writing output: %v\n", err)
		os.Exit(1)
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "closing output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d jets to %s\n", len(rows), outPath)
}

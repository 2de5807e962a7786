// SPDX-License-Identifier: MIT

// Package matrix - plain-text system reader.
//
// Format:
//   - One equation per line; tokens separated by any run of whitespace.
//   - An n-unknown system has n lines of n+1 real numbers; the last number
//     on each line is the right-hand side.
//   - Blank lines are ignored.
//
// Every structural problem is reported as ErrMalformedInput wrapped with the
// line (and, for bad tokens, the column) where it was detected.

package matrix

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
)

const (
	opParse    = "Parse"
	opReadFile = "ReadFile"

	// maxLineBytes bounds a single row; 1 MiB fits ~50k values per line.
	maxLineBytes = 1 << 20
)

// Parse reads an augmented system from r.
// The first non-blank line fixes the width w; the system then has n = w-1
// unknowns and exactly n non-blank lines are expected.
func Parse(r io.Reader) (*System, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		rows   [][]float64
		width  int
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if width == 0 {
			width = len(fields)
			if width < 2 {
				return nil, fmt.Errorf("%s: line %d: need at least one coefficient and a constant: %w",
					opParse, lineNo, ErrMalformedInput)
			}
		}
		if len(fields) != width {
			return nil, fmt.Errorf("%s: line %d: got %d values, want %d: %w",
				opParse, lineNo, len(fields), width, ErrMalformedInput)
		}
		row := make([]float64, width)
		for j, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: line %d, column %d: %q: %w",
					opParse, lineNo, j+1, tok, ErrMalformedInput)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: line %d: %v: %w", opParse, lineNo+1, err, ErrMalformedInput)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: no rows: %w", opParse, ErrMalformedInput)
	}
	if len(rows) != width-1 {
		return nil, fmt.Errorf("%s: %d rows of %d values is not a square augmented system: %w",
			opParse, len(rows), width, ErrMalformedInput)
	}
	s, err := NewSystemFromRows(rows)
	if err != nil {
		// ParseFloat accepts "Inf"/"NaN"; those surface here.
		return nil, fmt.Errorf("%s: %v: %w", opParse, err, ErrMalformedInput)
	}

	return s, nil
}

// ReadFile memory-maps path read-only and parses it with Parse.
// A missing or unreadable file is returned as the wrapped OS error; an empty
// file is ErrMalformedInput (a zero-length mapping is not valid).
func ReadFile(path string) (*System, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReadFile, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReadFile, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: %s is a directory: %w", opReadFile, path, ErrMalformedInput)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%s: %s is empty: %w", opReadFile, path, ErrMalformedInput)
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: mmap %s: %w", opReadFile, path, err)
	}
	defer data.Unmap()

	s, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", opReadFile, path, err)
	}

	return s, nil
}

// SPDX-License-Identifier: MIT

// Package prompt is the interactive input boundary of the console program.
//
// Ask walks the user through three questions:
//
//  1. matrix file name (empty line = generate random systems),
//  2. matrix dimension,
//  3. trial count, asked only when generating.
//
// An invalid number (not an integer, or below 1) restarts the sequence from
// question 1. A file-loaded run always has exactly one trial.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompt texts.
const (
	askFile   = "Enter the matrix file name (leave empty to generate): "
	askDim    = "Enter the matrix dimension: "
	askTrials = "Enter the number of generated systems: "
)

var (
	// ErrInvalidNumber marks an answer that is not a positive integer.
	// Ask recovers from it by re-prompting; it is exported for ParsePositive.
	ErrInvalidNumber = errors.New("prompt: expected a positive integer")

	// ErrInputClosed is returned when the input ends before all questions
	// were answered.
	ErrInputClosed = errors.New("prompt: input closed")
)

// Input is the answered questionnaire.
type Input struct {
	File   string // empty when generating
	Dim    int
	Trials int
}

// Generate reports whether systems are to be generated randomly.
func (in Input) Generate() bool { return in.File == "" }

// ParsePositive parses s (surrounding spaces ignored) as an integer ≥ 1.
func ParsePositive(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%q: %w", strings.TrimSpace(s), ErrInvalidNumber)
	}

	return v, nil
}

// Ask prompts on out and reads answers from in until a valid Input is formed.
// Each rejected answer is reported on out before starting over.
func Ask(in io.Reader, out io.Writer) (Input, error) {
	sc := bufio.NewScanner(in)
	readLine := func(question string) (string, error) {
		if _, err := io.WriteString(out, question); err != nil {
			return "", err
		}
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("%w: %w", ErrInputClosed, io.ErrUnexpectedEOF)
		}
		return strings.TrimSpace(sc.Text()), nil
	}

	for {
		file, err := readLine(askFile)
		if err != nil {
			return Input{}, err
		}

		answer, err := readLine(askDim)
		if err != nil {
			return Input{}, err
		}
		dim, err := ParsePositive(answer)
		if err != nil {
			fmt.Fprintf(out, "invalid dimension %v\n", err)
			continue
		}

		if file != "" {
			return Input{File: file, Dim: dim, Trials: 1}, nil
		}

		answer, err = readLine(askTrials)
		if err != nil {
			return Input{}, err
		}
		trials, err := ParsePositive(answer)
		if err != nil {
			fmt.Fprintf(out, "invalid trial count %v\n", err)
			continue
		}

		return Input{Dim: dim, Trials: trials}, nil
	}
}

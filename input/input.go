package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrEmptyLine indicates a blank line between two reports.
	ErrEmptyLine = errors.New("input: empty line")

	// ErrBadToken indicates a level that is not an unsigned decimal integer.
	ErrBadToken = errors.New("input: level must be an unsigned decimal integer")
)

// LineError locates a parse failure.
type LineError struct {
	Line  int    // 1-based line number
	Token string // offending token, empty for ErrEmptyLine
	Err   error  // ErrEmptyLine or ErrBadToken
}

func (e *LineError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}

	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Token)
}

func (e *LineError) Unwrap() error { return e.Err }

// maxLine bounds a single report line.
const maxLine = 1 << 20

// Parse reads every report from r.
// Trailing blank lines are ignored; blank lines between reports are not.
func Parse(r io.Reader) ([][]int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)

	var (
		reports [][]int
		blankAt int
		lineNo  int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		fields := strings.Fields(line)
		if len(fields) == 0 {
			if blankAt == 0 {
				blankAt = lineNo
			}
			continue
		}
		if blankAt != 0 {
			return nil, &LineError{Line: blankAt, Err: ErrEmptyLine}
		}
		report, err := parseLine(lineNo, fields)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read: %w", err)
	}

	return reports, nil
}

// ParseFile opens path and parses it; "-" reads standard input.
func ParseFile(path string) ([][]int, error) {
	if path == "-" {
		return Parse(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

func parseLine(lineNo int, fields []string) ([]int, error) {
	report := make([]int, len(fields))
	for i, tok := range fields {
		v, err := strconv.ParseUint(tok, 10, 32)
		if err != nil {
			return nil, &LineError{Line: lineNo, Token: tok, Err: ErrBadToken}
		}
		report[i] = int(v)
	}

	return report, nil
}

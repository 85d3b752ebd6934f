// Package prompt implements line-based numeric input with validation and
// re-prompting. Parse and range failures never escape Float; they print a
// message and ask again. Only quit tokens (ErrQuit) and exhausted input
// (io.EOF) are returned to the caller.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Rule constrains one numeric field.
type Rule struct {
	AllowZero bool
	HasMin    bool
	Min       float64
	HasMax    bool
	Max       float64
}

// Between returns a Rule bounding values to [min, max]. Zero stays disallowed.
func Between(min, max float64) Rule {
	return Rule{HasMin: true, Min: min, HasMax: true, Max: max}
}

// Prompter reads validated values from a line-based input stream.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a Prompter reading from r and writing prompts and validation
// messages to w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(r), out: w}
}

// Float prints label and reads lines until one parses as a float64 satisfying
// rule. It returns ErrQuit when the user types a quit token and io.EOF when
// input runs out.
func (p *Prompter) Float(label string, rule Rule) (float64, error) {
	for {
		line, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		if IsQuit(line) {
			return 0, ErrQuit
		}
		x, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a valid number (or type 'q' to quit).")
			continue
		}
		if !rule.AllowZero && x == 0 {
			fmt.Fprintln(p.out, "Value cannot be zero. Enter a non-zero value, or type 'q' to quit.")
			continue
		}
		if rule.HasMin && x < rule.Min {
			fmt.Fprintf(p.out, "Value must be >= %g. Try again, or type 'q' to quit.\n", rule.Min)
			continue
		}
		if rule.HasMax && x > rule.Max {
			fmt.Fprintf(p.out, "Value must be <= %g. Try again, or type 'q' to quit.\n", rule.Max)
			continue
		}
		return x, nil
	}
}

// Line prints label and reads one line, trimmed of surrounding whitespace.
// It returns io.EOF when input runs out.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// IsQuit reports whether s is a quit token, case-insensitively.
func IsQuit(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "q", "quit", "exit":
		return true
	}
	return false
}

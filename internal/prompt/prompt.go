// Package prompt abstracts the interactive questions the pipeline may ask
// (completeness override, per-filter PSF and delta-mag values, the final
// submit gate) behind a small interface so the pipeline stays deterministic
// and testable without a terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Prompter supplies the three interactive decisions the pipeline can suspend
// on. Implementations must be safe to call sequentially from a single
// goroutine; concurrent use is not required.
type Prompter interface {
	// Confirm asks a yes/no question. With defaultYes false only an explicit
	// "y" answers true; with defaultYes true every answer except "n" does.
	Confirm(question string, defaultYes bool) (bool, error)

	// AskFloat repeats question until the answer parses as a number, then
	// returns the raw answer string.
	AskFloat(question string) (string, error)

	// AskOptionalFloat behaves like AskFloat but also accepts an empty
	// answer, returned as "".
	AskOptionalFloat(question string) (string, error)
}

// Terminal is the stdin/stdout Prompter used in real runs.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal returns a Prompter reading stdin and writing stdout.
func NewTerminal() *Terminal {
	return &Terminal{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

// NewTerminalWith returns a Terminal over explicit streams, for tests.
func NewTerminalWith(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

func (t *Terminal) readLine(question string) (string, error) {
	fmt.Fprint(t.out, question)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm implements [Prompter].
func (t *Terminal) Confirm(question string, defaultYes bool) (bool, error) {
	ans, err := t.readLine(question)
	if err != nil {
		return false, err
	}
	ans = strings.ToLower(ans)
	if defaultYes {
		return ans != "n", nil
	}
	return ans == "y", nil
}

// AskFloat implements [Prompter].
func (t *Terminal) AskFloat(question string) (string, error) {
	for {
		ans, err := t.readLine(question)
		if err != nil {
			return "", err
		}
		if _, err := strconv.ParseFloat(ans, 64); err == nil {
			return ans, nil
		}
		fmt.Fprintln(t.out, "Please enter a numeric value.")
	}
}

// AskOptionalFloat implements [Prompter].
func (t *Terminal) AskOptionalFloat(question string) (string, error) {
	for {
		ans, err := t.readLine(question)
		if err != nil {
			return "", err
		}
		if ans == "" {
			return "", nil
		}
		if _, err := strconv.ParseFloat(ans, 64); err == nil {
			return ans, nil
		}
		fmt.Fprintln(t.out, "Please enter a numeric value or leave blank.")
	}
}

package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"sharemycar/internal/utils"
)

// prompter reads interactive answers line by line. io.EOF propagates so the
// caller can treat a closed stdin as a normal exit.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) prompter {
	return prompter{in: bufio.NewScanner(in), out: out}
}

func (p prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p prompter) line(msg string) (string, error) {
	fmt.Fprint(p.out, msg)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p prompter) requiredString(msg string) (string, error) {
	for {
		s, err := p.line(msg)
		if err != nil {
			return "", err
		}
		if s != "" {
			return s, nil
		}
		p.printf("A value is required.\n")
	}
}

func (p prompter) int64Value(msg string) (int64, error) {
	for {
		s, err := p.requiredString(msg)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.ParseInt(s, 10, 64)
		if convErr == nil {
			return n, nil
		}
		p.printf("Please enter a whole number.\n")
	}
}

func (p prompter) float64Value(msg string) (float64, error) {
	for {
		s, err := p.requiredString(msg)
		if err != nil {
			return 0, err
		}
		f, convErr := strconv.ParseFloat(s, 64)
		if convErr == nil {
			return f, nil
		}
		p.printf("Please enter a number.\n")
	}
}

func (p prompter) confirm(msg string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		s, err := p.line(fmt.Sprintf("%s (%s): ", msg, hint))
		if err != nil {
			return false, err
		}
		switch strings.ToLower(s) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		p.printf("Please answer y or n.\n")
	}
}

// optionalDate accepts an empty answer (no filter) or a YYYY-MM-DD date.
func (p prompter) optionalDate(msg string) (string, error) {
	for {
		s, err := p.line(msg)
		if err != nil {
			return "", err
		}
		if s == "" {
			return "", nil
		}
		if _, parseErr := utils.ParseDate(s); parseErr == nil {
			return s, nil
		}
		p.printf("Please enter a valid date in YYYY-MM-DD format.\n")
	}
}

// choose renders a numbered menu and returns the selected option index.
func (p prompter) choose(title string, options []string) (int, error) {
	p.printf("\n%s\n", title)
	for i, opt := range options {
		p.printf("  %d) %s\n", i+1, opt)
	}
	for {
		n, err := p.int64Value("Select an option: ")
		if err != nil {
			return 0, err
		}
		if n >= 1 && n <= int64(len(options)) {
			return int(n - 1), nil
		}
		p.printf("Please choose between 1 and %d.\n", len(options))
	}
}

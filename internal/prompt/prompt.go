// Package prompt implements the interactive stdin prompts used by cnctl
// commands when a value was not supplied on the command line. Every prompt
// re-asks until it gets valid input, and only fails when the input stream
// ends.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads interactive answers from in and writes questions to out.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (p *Prompter) line(msg string) (string, error) {
	fmt.Fprint(p.out, msg)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Int asks for an integer until one is entered.
func (p *Prompter) Int(msg string) (int, error) {
	for {
		answer, err := p.line(msg)
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintln(p.out, "The input value is not a number.")
			continue
		}
		return value, nil
	}
}

// IntInRange asks for an integer until one within [min, max] is entered.
func (p *Prompter) IntInRange(msg string, min, max int) (int, error) {
	for {
		value, err := p.Int(msg)
		if err != nil {
			return 0, err
		}
		if value < min || value > max {
			fmt.Fprintf(p.out, "The entered number is out of the range of %d to %d.\n", min, max)
			continue
		}
		return value, nil
	}
}

// YesNo asks the classic [Y]es/[N]o question until it gets either answer.
func (p *Prompter) YesNo(msg string) (bool, error) {
	for {
		answer, err := p.line(msg + "[Y]es/[N]o?: ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please input [Y]es/[N]o.")
	}
}

// Choice asks until the answer matches one of options (case-insensitive)
// and returns the matched option. invalidMsg is printed on a mismatch.
func (p *Prompter) Choice(msg, invalidMsg string, options ...string) (string, error) {
	for {
		answer, err := p.line(msg)
		if err != nil {
			return "", err
		}
		for _, opt := range options {
			if strings.EqualFold(answer, opt) {
				return opt, nil
			}
		}
		fmt.Fprintln(p.out, invalidMsg)
	}
}

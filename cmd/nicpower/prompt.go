package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var errInputClosed = errors.New("input closed before an answer was given")

// prompter asks questions on out and re-asks until the answer is valid.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

func (p *prompter) line() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return p.in.Text(), nil
}

// selectIndex asks for an index in [0, n).
func (p *prompter) selectIndex(n int) (int, error) {
	for {
		fmt.Fprintf(p.out, "Select media instance (0-%d) >> ", n-1)
		s, err := p.line()
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseUint(s, 10, 64)
		if err == nil && v < uint64(n) {
			return int(v), nil
		}
	}
}

// confirm asks a y/n question.
func (p *prompter) confirm() (bool, error) {
	for {
		fmt.Fprint(p.out, "Do you want to proceed? (y/n) >> ")
		s, err := p.line()
		if err != nil {
			return false, err
		}
		switch s {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
	}
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errNoAnswer = errors.New("no answer given")

type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

func (p *prompter) readLine() (string, error) {
	input, err := p.in.ReadString('\n')
	input = strings.TrimSpace(input)
	if err != nil && input == "" {
		if errors.Is(err, io.EOF) {
			return "", errNoAnswer
		}
		return "", err
	}
	return input, nil
}

// required prompts until a non-empty value is provided.
func (p *prompter) required(label string) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s: ", label)
		input, err := p.readLine()
		if err != nil {
			return "", err
		}
		if input != "" {
			return input, nil
		}
		fmt.Fprintln(p.out, "  Value required")
	}
}

// choose lists options and returns the index of the one picked by number.
func (p *prompter) choose(label string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("nothing to choose from")
	}
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d: %s\n", i+1, opt)
	}
	for {
		fmt.Fprintf(p.out, "%s [1-%d]: ", label, len(options))
		input, err := p.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(input)
		if err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		fmt.Fprintf(p.out, "  Enter a number between 1 and %d\n", len(options))
	}
}

package view

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter collects user input for the view. Implementations may block on
// user input; the network call that follows a prompt is separate.
type Prompter interface {
	// Prompt asks for a value. It returns ok=false when the user cancelled
	// (empty input with no default).
	Prompt(label string, defaultValue string) (value string, ok bool)
	// Confirm asks a yes/no question.
	Confirm(message string) bool
}

// StdioPrompter reads answers line by line from in and writes questions to out.
type StdioPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewStdioPrompter(in io.Reader, out io.Writer) *StdioPrompter {
	return &StdioPrompter{in: bufio.NewReader(in), out: out}
}

func (p *StdioPrompter) Prompt(label string, defaultValue string) (string, bool) {
	if defaultValue != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, defaultValue)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		return "", false
	}
	line = strings.TrimSpace(line)
	if line == "" {
		if defaultValue == "" {
			return "", false
		}
		return defaultValue, true
	}
	return line, true
}

func (p *StdioPrompter) Confirm(message string) bool {
	fmt.Fprintf(p.out, "%s [y/N]: ", message)
	line, err := p.in.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// StubPrompter feeds canned answers to tests.
type StubPrompter struct {
	Answers   []string
	Confirmed bool
}

func (p *StubPrompter) Prompt(label string, defaultValue string) (string, bool) {
	if len(p.Answers) == 0 {
		return "", false
	}
	answer := p.Answers[0]
	p.Answers = p.Answers[1:]
	if answer == "" {
		if defaultValue == "" {
			return "", false
		}
		return defaultValue, true
	}
	return answer, true
}

func (p *StubPrompter) Confirm(message string) bool {
	return p.Confirmed
}

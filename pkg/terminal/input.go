package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Input is a form field filled in from the terminal
type Input struct {
	mu    sync.Mutex
	value string
}

// NewInput creates a field holding value
func NewInput(value string) *Input {
	return &Input{value: value}
}

// Value implements form.Field
func (i *Input) Value() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.value
}

// Set replaces the field's value
func (i *Input) Set(value string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.value = value
}

// Prompter asks questions on out and reads answers line by line from in
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask prints label and returns the line typed, without its line ending.
// io.EOF is returned once input is exhausted and nothing was typed.
func (p *Prompter) Ask(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm asks a yes/no question, defaulting to no
func (p *Prompter) Confirm(question string) bool {
	answer, err := p.Ask(question + " (y/N)")
	if err != nil {
		return false
	}

	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}

package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MrSnakeDoc/tabgen/internal/domain"
)

// ErrNoInput is returned when input ends before an answer was given.
var ErrNoInput = errors.New("no input")

// Prompter asks questions on out and reads answers line by line from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints label and returns the trimmed answer.
func (p *Prompter) Ask(label string) (string, error) {
	if _, err := fmt.Fprint(p.out, label); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read answer: %w", err)
		}
		if line == "" {
			return "", ErrNoInput
		}
	}
	return strings.TrimSpace(line), nil
}

// Answer is the raw result of AskEntry. Category is lowercased but not validated.
type Answer struct {
	Title    string
	Category string
}

// AskEntry asks for a title then a category.
func (p *Prompter) AskEntry() (Answer, error) {
	title, err := p.Ask("Enter tab title: ")
	if err != nil {
		return Answer{}, err
	}
	category, err := p.Ask(fmt.Sprintf("Category (%s): ", domain.CategoryNames(" / ")))
	if err != nil {
		return Answer{}, err
	}
	// Ask already trimmed the answer; only lowercasing is left.
	return Answer{Title: title, Category: domain.NormalizeCategory(category)}, nil
}

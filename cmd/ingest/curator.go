package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hqanh/theorytrainer/internal/model"
	"github.com/hqanh/theorytrainer/internal/service"
)

// stdinCurator drives curation over a terminal, one prompt per candidate.
type stdinCurator struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newStdinCurator(in io.Reader, out io.Writer) *stdinCurator {
	return &stdinCurator{scanner: bufio.NewScanner(in), out: out}
}

func (c *stdinCurator) readLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.scanner.Text()), nil
}

func (c *stdinCurator) PromptDecision(concept, definition string) (service.Decision, error) {
	preview := definition
	if len(preview) > 80 {
		preview = preview[:80] + "..."
	}
	fmt.Fprintf(c.out, "\n%s  ->  %s\n", concept, preview)
	fmt.Fprint(c.out, "[A]ccept / [E]dit / [S]kip ? ")

	line, err := c.readLine()
	if err != nil {
		return service.Decision{}, err
	}

	switch strings.ToLower(firstChar(line)) {
	case "s":
		return service.Decision{Action: service.ActionSkip}, nil
	case "e":
		fmt.Fprint(c.out, "New concept: ")
		newConcept, err := c.readLine()
		if err != nil {
			return service.Decision{}, err
		}
		fmt.Fprint(c.out, "New definition: ")
		newDefinition, err := c.readLine()
		if err != nil {
			return service.Decision{}, err
		}
		return service.Decision{
			Action:     service.ActionEdit,
			Concept:    newConcept,
			Definition: newDefinition,
		}, nil
	default:
		// Empty input accepts, matching the historical prompt.
		return service.Decision{Action: service.ActionAccept}, nil
	}
}

// PromptCategory asks for a category index. Anything unparsable or out of
// range returns -1 and the workflow applies the default.
func (c *stdinCurator) PromptCategory(choices []model.Category) int {
	fmt.Fprint(c.out, "Pick category")
	for i, choice := range choices {
		fmt.Fprintf(c.out, " %d-%s", i, choice)
	}
	fmt.Fprintf(c.out, " (default %s): ", model.DefaultCategory)

	line, err := c.readLine()
	if err != nil || line == "" {
		return -1
	}
	idx, err := strconv.Atoi(line)
	if err != nil {
		return -1
	}
	return idx
}

func firstChar(s string) string {
	if s == "" {
		return ""
	}
	return s[:1]
}

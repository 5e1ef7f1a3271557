// Package extract turns raw document text into concept/definition
// candidates for curation.
package extract

import (
	"regexp"
	"strings"
)

// Candidate is one extracted concept/definition pair, pre-curation.
type Candidate struct {
	Concept    string
	Definition string
}

// blockPattern matches "Capitalized heading: rest of line is the
// definition", anchored per line.
var blockPattern = regexp.MustCompile(`(?m)^([A-Z].+?):\s*(.+)$`)

// ParseBlocks scans text for heading:definition lines and returns the
// candidates in document order. Lines that do not match are skipped;
// text with no matches yields an empty slice. A definition that wraps
// onto a following line is truncated to its first line.
func ParseBlocks(text string) []Candidate {
	matches := blockPattern.FindAllStringSubmatch(text, -1)
	candidates := make([]Candidate, 0, len(matches))
	for _, m := range matches {
		concept := strings.TrimSpace(m[1])
		definition := strings.TrimSpace(m[2])
		if concept == "" || definition == "" {
			continue
		}
		candidates = append(candidates, Candidate{Concept: concept, Definition: definition})
	}
	return candidates
}

package flow

import (
	"strings"
	"unicode"

	"memoflow/internal/domain"
)

// Placeholder is shown when no note has displayable content
const Placeholder = "Create a new memo!"

// Pool is the set of strings eligible for display in the marquee.
// After the first Refresh it is never empty.
type Pool struct {
	items       []string
	placeholder string
	rnd         Random
}

// NewPool creates an empty pool. An empty placeholder falls back to Placeholder.
func NewPool(rnd Random, placeholder string) *Pool {
	if strings.TrimSpace(placeholder) == "" {
		placeholder = Placeholder
	}
	return &Pool{
		placeholder: placeholder,
		rnd:         rnd,
	}
}

// Refresh rebuilds the pool from the content of notes
func (p *Pool) Refresh(notes []domain.Note) {
	items := make([]string, 0, len(notes))
	for _, n := range notes {
		if text := DisplayText(n.Content); text != "" {
			items = append(items, text)
		}
	}
	if len(items) == 0 {
		items = append(items, p.placeholder)
	}
	p.items = items
}

// Sample returns one string chosen uniformly from the pool
func (p *Pool) Sample() string {
	if len(p.items) == 0 {
		// Sampling before Refresh is a caller bug; show the placeholder anyway.
		return p.placeholder
	}
	return p.items[p.rnd.IntN(len(p.items))]
}

// Items returns a copy of the current pool
func (p *Pool) Items() []string {
	return append([]string(nil), p.items...)
}

// Len returns the number of strings in the pool
func (p *Pool) Len() int {
	return len(p.items)
}

// Placeholder returns the string used when the pool has no content
func (p *Pool) Placeholder() string {
	return p.placeholder
}

// DisplayText coerces note content into a single marquee line: invalid UTF-8 is
// replaced, control characters become spaces and whitespace runs collapse to one
// space, with surrounding whitespace trimmed.
func DisplayText(content string) string {
	s := strings.ToValidUTF8(content, "\uFFFD")
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

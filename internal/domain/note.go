package domain

import (
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UntitledTitle is used when a note is saved without a title
const UntitledTitle = "Untitled"

// FilterAll selects every note regardless of labels
const FilterAll = "all"

// Palette is the fixed set of card colors a note can take
var Palette = []string{
	"#F28B82", "#FBBC04", "#FFF475", "#CCFF90", "#A7FFEB",
	"#CBF0F8", "#AECBFA", "#D7AEFB", "#FDCFE8", "#E6C9A8", "#E8EAED",
}

// Note is a single sticky note
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Color     string    `json:"color"`
	Labels    []string  `json:"labels"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NoteDraft holds raw user input for a note before it is committed
type NoteDraft struct {
	Title   string
	Content string
	Labels  string // comma-separated
}

// Normalize trims the draft fields and splits labels
func (d NoteDraft) Normalize() (title, content string, labels []string) {
	return strings.TrimSpace(d.Title), strings.TrimSpace(d.Content), ParseLabels(d.Labels)
}

// IsEmpty reports whether the draft carries nothing worth saving
func (d NoteDraft) IsEmpty() bool {
	title, content, labels := d.Normalize()
	return title == "" && content == "" && len(labels) == 0
}

// NewNote builds a note from a draft with a fresh ID and a random palette color.
// The caller is expected to have checked IsEmpty.
func NewNote(d NoteDraft, now time.Time) Note {
	title, content, labels := d.Normalize()
	if title == "" {
		title = UntitledTitle
	}
	return Note{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Color:     Palette[rand.IntN(len(Palette))],
		Labels:    labels,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Apply overwrites title, content and labels from the draft, keeping ID and color
func (n *Note) Apply(d NoteDraft, now time.Time) {
	title, content, labels := d.Normalize()
	if title == "" {
		title = UntitledTitle
	}
	n.Title = title
	n.Content = content
	n.Labels = labels
	n.UpdatedAt = now
}

// HasLabel reports whether the note carries the given label
func (n Note) HasLabel(label string) bool {
	return slices.Contains(n.Labels, label)
}

// LabelString joins labels back into the comma-separated form used for editing
func (n Note) LabelString() string {
	return strings.Join(n.Labels, ", ")
}

// IsPaletteColor reports whether c is one of the palette colors
func IsPaletteColor(c string) bool {
	return slices.Contains(Palette, strings.ToUpper(c))
}

// ParseLabels splits a comma-separated label list, trimming and dropping empties.
// Order is preserved and duplicates are removed.
func ParseLabels(raw string) []string {
	return CleanLabels(strings.Split(raw, ","))
}

// CleanLabels trims labels and drops empties and duplicates, keeping order
func CleanLabels(raw []string) []string {
	labels := []string{}
	for _, part := range raw {
		l := strings.TrimSpace(part)
		if l == "" || slices.Contains(labels, l) {
			continue
		}
		labels = append(labels, l)
	}
	return labels
}

// CollectLabels returns the sorted set of labels used across notes
func CollectLabels(notes []Note) []string {
	seen := make(map[string]struct{})
	for _, n := range notes {
		for _, l := range n.Labels {
			seen[l] = struct{}{}
		}
	}
	labels := make([]string, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	slices.Sort(labels)
	return labels
}

// FilterByLabel returns the notes carrying label, or all notes for FilterAll
func FilterByLabel(notes []Note, label string) []Note {
	if label == "" || label == FilterAll {
		return notes
	}
	var out []Note
	for _, n := range notes {
		if n.HasLabel(label) {
			out = append(out, n)
		}
	}
	return out
}

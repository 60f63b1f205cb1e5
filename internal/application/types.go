package application

import "memoflow/internal/domain"

// Re-export domain types for use by adapters
type (
	Note      = domain.Note
	NoteDraft = domain.NoteDraft
)

// FilterAll selects every note in label filters
const FilterAll = domain.FilterAll

package tabs

import (
	"github.com/MrSnakeDoc/tabgen/internal/domain"
)

// Rejected is a config entry that could not be turned into a domain.Entry.
type Rejected struct {
	Title    string
	Category string
	Reason   error
}

// Mapped is one config entry after defaults and validation. Exactly one of
// Entry or Rejected is set.
type Mapped struct {
	Entry    *domain.Entry
	Rejected *Rejected
}

// Mapper converts tabs config entries to domain.Entry values
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapEntries applies defaults and validates every entry, keeping input order.
// Invalid entries are returned as Rejected rather than failing the batch.
func (m *Mapper) MapEntries(config TabsConfig) []Mapped {
	mapped := make([]Mapped, 0, len(config))
	for _, props := range config {
		mapped = append(mapped, m.mapEntry(props))
	}
	return mapped
}

func (m *Mapper) mapEntry(props *TabProps) Mapped {
	title := domain.DefaultTitle
	category := domain.MissingCategory
	if props != nil {
		if props.Title != nil {
			title = *props.Title
		}
		if props.Category != nil {
			category = *props.Category
		}
	}

	c, err := domain.ParseCategory(category)
	if err != nil {
		return Mapped{Rejected: &Rejected{
			Title:    title,
			Category: domain.NormalizeCategory(category),
			Reason:   err,
		}}
	}
	return Mapped{Entry: &domain.Entry{Title: title, Category: c}}
}

// ValidEntries returns only the accepted entries of mapped.
func ValidEntries(mapped []Mapped) []domain.Entry {
	entries := make([]domain.Entry, 0, len(mapped))
	for _, m := range mapped {
		if m.Entry != nil {
			entries = append(entries, *m.Entry)
		}
	}
	return entries
}

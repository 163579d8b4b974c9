package domain

import (
	"fmt"
	"path"
	"strings"
)

// Category selects the favicon of a generated tab page.
type Category string

const (
	CategoryPMB   Category = "pmb"
	CategoryWork  Category = "work"
	CategoryOther Category = "other"
)

// DefaultTitle is used when a config entry has no title.
const DefaultTitle = "Untitled"

// MissingCategory is substituted when a config entry has no category.
// It is deliberately not a valid category, so the entry gets skipped.
const MissingCategory = "o"

// ValidCategories lists the accepted categories in prompt order.
var ValidCategories = []Category{CategoryPMB, CategoryWork, CategoryOther}

var faviconFiles = map[Category]string{
	CategoryPMB:   "p_favicon.png",
	CategoryWork:  "a_favicon.png",
	CategoryOther: "o_favicon.png",
}

// Entry is one title/category pair to render into a page.
type Entry struct {
	Title    string
	Category Category
}

// InvalidCategoryError is returned by ParseCategory for unknown values.
type InvalidCategoryError struct {
	Value string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid category '%s'", e.Value)
}

// NormalizeCategory lowercases raw input. Whitespace is kept: a padded
// category from a config file does not match any known category.
func NormalizeCategory(raw string) string {
	return strings.ToLower(raw)
}

// ParseCategory validates raw (case-insensitive) against the known categories.
func ParseCategory(raw string) (Category, error) {
	normalized := NormalizeCategory(raw)
	for _, c := range ValidCategories {
		if string(c) == normalized {
			return c, nil
		}
	}
	return "", &InvalidCategoryError{Value: normalized}
}

// Favicon returns the favicon path for c under assetsDir.
// Unknown categories fall back to the "other" favicon.
func Favicon(assetsDir string, c Category) string {
	file, ok := faviconFiles[c]
	if !ok {
		file = faviconFiles[CategoryOther]
	}
	if assetsDir == "" {
		return file
	}
	return path.Join(assetsDir, file)
}

// SanitizeTitle derives the output file stem: lowercase, spaces -> underscores.
// Nothing else is touched, so punctuation and non-ASCII pass through.
func SanitizeTitle(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "_")
}

// CategoryNames returns the valid categories joined by sep.
func CategoryNames(sep string) string {
	names := make([]string, 0, len(ValidCategories))
	for _, c := range ValidCategories {
		names = append(names, string(c))
	}
	return strings.Join(names, sep)
}

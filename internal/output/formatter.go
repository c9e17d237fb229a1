package output

import (
	"sort"
	"strings"

	"github.com/anka/patrimony-planner/internal/domain"
	"golang.org/x/text/language"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(results *domain.ComparisonResult) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.ComparisonResult) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.ComparisonResult) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                      { return ff.ID }

// localizable formatters render numbers for a language
type localizable interface {
	WithLanguage(tag language.Tag) Formatter
}

// Localize returns f configured for tag when f renders localized numbers
func Localize(f Formatter, tag language.Tag) Formatter {
	if l, ok := f.(localizable); ok {
		return l.WithLanguage(tag)
	}
	return f
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVSeriesExporter{},
	CSVDetailedExporter{},
	HTMLFormatter{},
	JSONFormatter{},
	PDFFormatter{},
	XLSXFormatter{},
	YAMLFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":         "console",
	"table":        "console",
	"csv-wide":     "csv",
	"csv-detailed": "detailed-csv",
	"html-report":  "html",
	"json-pretty":  "json",
	"excel":        "xlsx",
	"yml":          "yaml",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// extensions maps formatter names to file extensions when they differ
var extensions = map[string]string{
	"console":      "txt",
	"detailed-csv": "detailed.csv",
}

// Extension returns the file extension for a formatter name
func Extension(name string) string {
	n := NormalizeFormatName(name)
	if ext, ok := extensions[n]; ok {
		return ext
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/anka/patrimony-planner/internal/domain"
	"golang.org/x/text/language"
)

// ErrUnsupportedFormat is returned for format names with no registered formatter
var ErrUnsupportedFormat = errors.New("unsupported output format")

// WriteFormatted runs a formatter and writes output to a timestamped file with extension inside dir.
func WriteFormatted(f Formatter, results *domain.ComparisonResult, dir, ext string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filename := filepath.Join(dir, fmt.Sprintf("patrimony_report_%s.%s", time.Now().Format("20060102_150405"), ext))
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", err
	}
	return filename, nil
}

// ResolveFormatter looks a format up by name or alias
func ResolveFormatter(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	// enrich error with available formatters and aliases
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// ReportOptions controls where reports are written and how numbers are localized
type ReportOptions struct {
	Dir      string
	Language language.Tag
}

// GenerateReport writes one report file per requested format and returns the written paths.
// "all" expands to every registered formatter.
func GenerateReport(results *domain.ComparisonResult, opts ReportOptions, formats ...string) ([]string, error) {
	if len(formats) == 1 && NormalizeFormatName(formats[0]) == "all" {
		formats = AvailableFormatterNames()
	}
	written := make([]string, 0, len(formats))
	for _, format := range formats {
		f, err := ResolveFormatter(format)
		if err != nil {
			return written, err
		}
		path, err := WriteFormatted(Localize(f, opts.Language), results, opts.Dir, Extension(f.Name()))
		if err != nil {
			return written, fmt.Errorf("failed to write %s report: %w", f.Name(), err)
		}
		written = append(written, path)
	}
	return written, nil
}

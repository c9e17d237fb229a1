package output

import (
	"encoding/json"

	"github.com/anka/patrimony-planner/internal/domain"
)

// JSONFormatter renders the full comparison as indented JSON
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.ComparisonResult) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}

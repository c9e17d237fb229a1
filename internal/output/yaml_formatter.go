package output

import (
	"github.com/anka/patrimony-planner/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter renders the full comparison as YAML
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(results *domain.ComparisonResult) ([]byte, error) {
	return yaml.Marshal(results)
}

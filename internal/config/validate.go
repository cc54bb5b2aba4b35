package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ariel-frischer/bumpgen/internal/classify"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ValidationError represents a configuration validation error with context.
type ValidationError struct {
	FilePath string
	Field    string
	Message  string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: field '%s': %s", e.FilePath, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

// ValidateYAMLSyntax checks if the YAML file has valid syntax.
// Missing and empty files are valid - defaults apply.
func ValidateYAMLSyntax(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		var typeError *yaml.TypeError
		if errors.As(err, &typeError) {
			return &ValidationError{FilePath: filePath, Message: typeError.Error()}
		}
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}

	return nil
}

var validate = validator.New()

// ValidateConfigValues checks the merged configuration for semantic errors:
// missing required fields and malformed rule entries.
func ValidateConfigValues(cfg *Configuration) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &ValidationError{
				FilePath: "config",
				Field:    verrs[0].Field(),
				Message:  fmt.Sprintf("failed '%s' validation", verrs[0].Tag()),
			}
		}
		return err
	}

	for i, rule := range cfg.Rules {
		if err := validateRule(i, rule); err != nil {
			return err
		}
	}

	return nil
}

// validateRule checks a single release rule for a usable predicate and
// a known severity.
func validateRule(index int, rule classify.Rule) error {
	if !rule.Breaking && !rule.Revert && rule.Type == "" {
		return &ValidationError{
			FilePath: "config",
			Field:    fmt.Sprintf("rules[%d]", index),
			Message:  "rule needs one of: breaking, revert, type",
		}
	}

	switch rule.Release {
	case classify.Major, classify.Minor, classify.Patch, classify.None:
		return nil
	default:
		return &ValidationError{
			FilePath: "config",
			Field:    fmt.Sprintf("rules[%d].release", index),
			Message:  fmt.Sprintf("unknown severity %q", rule.Release),
		}
	}
}

package planfile

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.yaml.in/yaml/v3"
)

// ErrDuplicateField reports two manifest fields sharing one name.
var ErrDuplicateField = errors.New("planfile: duplicate field name")

// Field names one stream position to extract.
type Field struct {
	Name  string `yaml:"name" mapstructure:"name" validate:"required"`
	Index int    `yaml:"index" mapstructure:"index" validate:"gte=0"`
}

// Manifest is a named set of positional extractions.
type Manifest struct {
	Name   string  `yaml:"name" mapstructure:"name" validate:"required"`
	Fields []Field `yaml:"fields" mapstructure:"fields" validate:"min=1,dive"`
}

// Parse decodes a manifest from YAML. Unknown keys are rejected, and the
// decoded manifest is validated before it is returned.
func Parse(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("planfile: parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks struct tags and rejects duplicate field names.
// Duplicate indices are allowed.
func (m *Manifest) Validate() error {
	if err := getValidator().Struct(m); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("planfile: invalid manifest: %s", formatFieldErrors(verrs))
		}
		return fmt.Errorf("planfile: invalid manifest: %w", err)
	}

	seen := make(map[string]int, len(m.Fields))
	for i, f := range m.Fields {
		if prev, dup := seen[f.Name]; dup {
			return fmt.Errorf("planfile: fields[%d] and fields[%d] both named %q: %w", prev, i, f.Name, ErrDuplicateField)
		}
		seen[f.Name] = i
	}
	return nil
}

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Use yaml tag names for field names in error messages
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return strings.ToLower(fld.Name)
			}
			return name
		})
	})
	return validate
}

func formatFieldErrors(verrs validator.ValidationErrors) string {
	messages := make([]string, 0, len(verrs))
	for _, e := range verrs {
		messages = append(messages, e.Namespace()+" "+formatValidationError(e))
	}
	return strings.Join(messages, "; ")
}

// formatValidationError creates a human-readable error message.
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be at least " + e.Param()
	case "min":
		return "must have at least " + e.Param() + " entries"
	default:
		return "is invalid"
	}
}

package config

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"

	"smacli/internal/errors"
)

// Config is a validated run configuration.
type Config struct {
	Seed    int64
	Window  int
	Version string
}

// document mirrors the YAML shape with pointer fields so that absent keys
// are distinguishable from zero values during validation.
type document struct {
	Seed    *int64  `yaml:"seed" validate:"required"`
	Window  *int    `yaml:"window" validate:"required,gt=0"`
	Version *string `yaml:"version" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report validation failures under the YAML key name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Load reads and validates the configuration document at path.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.NotFoundf("Config file not found: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes and validates a configuration document from r.
func Parse(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate.Struct(&doc); err != nil {
		return nil, validationError(err)
	}

	return &Config{
		Seed:    *doc.Seed,
		Window:  *doc.Window,
		Version: *doc.Version,
	}, nil
}

// validationError maps the first validator failure onto the pipeline error
// taxonomy, keeping the message keyed by the offending YAML key.
func validationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return errors.Wrap(errors.CodeValidation, err, err.Error())
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return errors.Validationf("Missing required config key: %s", fe.Field())
	case "gt":
		return errors.Validationf("Config key %q must be greater than %s", fe.Field(), fe.Param())
	default:
		return errors.Validationf("Invalid config key %q: failed %s check", fe.Field(), fe.Tag())
	}
}

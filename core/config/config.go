// Package config loads and validates the front-end configuration.
package config

import (
	_ "embed"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"

	"github.com/josephlewis42/lowsh/core/shell"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	ConfigurationName = "config.yaml"

	ModeInteractive = "interactive"
	ModeBatch       = "batch"
)

type Configuration struct {
	// Mode is the default lowering mode for the REPL and scripts.
	Mode string `json:"mode" validate:"required,oneof=interactive batch"`

	// Prompt is shown by the REPL.
	Prompt string `json:"prompt" validate:"required"`

	// Color enables colorized diagnostics.
	Color bool `json:"color"`

	// Builtins extends the default builtin command names.
	Builtins []string `json:"builtins" validate:"unique"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// LoweringMode maps the configured mode to the lowering pass's own type.
func (c *Configuration) LoweringMode() (shell.Mode, error) {
	switch c.Mode {
	case ModeInteractive:
		return shell.Interactive, nil
	case ModeBatch:
		return shell.Batch, nil
	default:
		return shell.Interactive, fmt.Errorf("unknown mode %q", c.Mode)
	}
}

// ShellBuiltins returns the default builtin set extended with any
// configured names.
func (c *Configuration) ShellBuiltins() shell.Builtins {
	return shell.DefaultBuiltins().With(c.Builtins...)
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}

package config

import (
	"io/ioutil"
	"log"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/josephlewis42/lowsh/core/shell"
)

func TestBuiltinConfig(t *testing.T) {
	rawConfig := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultConfigData, &rawConfig))

	knownFields := make(map[string]bool)
	rt := reflect.TypeOf(Configuration{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		jsonField := strings.Split(jsonTag, ",")[0]
		knownFields[jsonField] = true

		if _, ok := rawConfig[jsonField]; !ok {
			assert.False(t, true, "default config missing field: %q", jsonField)
		}
	}

	for k := range rawConfig {
		_, ok := knownFields[k]
		assert.True(t, ok, "default config contains invalid field: %q", k)
	}
}

func TestDefaultConfig(t *testing.T) {
	// Will panic() on load failure because it should never happen at runtime.
	cfg := defaultConfig()
	require.NotNil(t, cfg)
	assert.Nil(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		mutate  func(*Configuration)
		wantErr bool
	}{
		"default is valid": {
			mutate:  func(c *Configuration) {},
			wantErr: false,
		},
		"batch mode is valid": {
			mutate:  func(c *Configuration) { c.Mode = ModeBatch },
			wantErr: false,
		},
		"unknown mode": {
			mutate:  func(c *Configuration) { c.Mode = "turbo" },
			wantErr: true,
		},
		"missing prompt": {
			mutate:  func(c *Configuration) { c.Prompt = "" },
			wantErr: true,
		},
		"extra builtins": {
			mutate:  func(c *Configuration) { c.Builtins = []string{"hist", "jobs"} },
			wantErr: false,
		},
		"duplicate builtins": {
			mutate:  func(c *Configuration) { c.Builtins = []string{"hist", "hist"} },
			wantErr: true,
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestLoweringMode(t *testing.T) {
	cfg := defaultConfig()

	cfg.Mode = ModeInteractive
	mode, err := cfg.LoweringMode()
	require.NoError(t, err)
	assert.Equal(t, shell.Interactive, mode)

	cfg.Mode = ModeBatch
	mode, err = cfg.LoweringMode()
	require.NoError(t, err)
	assert.Equal(t, shell.Batch, mode)

	cfg.Mode = "turbo"
	_, err = cfg.LoweringMode()
	assert.Error(t, err)
}

func TestShellBuiltins(t *testing.T) {
	cfg := defaultConfig()
	cfg.Builtins = []string{"hist"}

	builtins := cfg.ShellBuiltins()
	assert.True(t, builtins["hist"])
	assert.True(t, builtins["cd"])
	assert.False(t, shell.DefaultBuiltins()["hist"])
}

func TestInitializeAndLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	logger := log.New(ioutil.Discard, "", 0)

	require.NoError(t, Initialize(fs, ".", logger))

	cfg, err := Load(fs, ".")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	// A second Initialize leaves the existing file alone.
	require.NoError(t, afero.WriteFile(fs, ConfigurationName, []byte("mode: batch\nprompt: '$ '\n"), 0600))
	require.NoError(t, Initialize(fs, ".", logger))

	cfg, err = Load(fs, ".")
	require.NoError(t, err)
	assert.Equal(t, ModeBatch, cfg.Mode)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, ConfigurationName,
		[]byte("mode: batch\nprompt: '$ '\nshellx: true\n"), 0600))

	_, err := Load(fs, ".")
	assert.Error(t, err)
}

func TestLoadAcceptsConfigFilePath(t *testing.T) {
	fs := afero.NewMemMapFs()
	logger := log.New(ioutil.Discard, "", 0)
	require.NoError(t, Initialize(fs, ".", logger))

	cfg, err := Load(fs, ConfigurationName)
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

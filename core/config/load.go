package config

import (
	"log"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory.
func Load(fs afero.Fs, path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	configContents, err := afero.ReadFile(fs, filepath.Join(path, ConfigurationName))
	if err != nil {
		return nil, err
	}
	var out Configuration
	if err := yaml.UnmarshalStrict(configContents, &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Initialize writes the default configuration into the directory, leaving
// an existing configuration alone.
func Initialize(fs afero.Fs, path string, logger *log.Logger) error {
	configPath := filepath.Join(path, ConfigurationName)

	exists, err := afero.Exists(fs, configPath)
	if err != nil {
		return err
	}
	if exists {
		logger.Printf("%s already exists, leaving it as-is", configPath)
		return nil
	}

	logger.Printf("writing %s", configPath)
	return afero.WriteFile(fs, configPath, defaultConfigData, 0600)
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package docstore

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/suparena/docstore/datastore/mongodb"
	"github.com/suparena/docstore/registry"
)

// FileConfig is the on-disk configuration: one connection block plus the
// bindings that name each logical store's database and collection.
//
//	connection:
//	  username: app
//	  password: secret
//	  host: cluster0.example.mongodb.net
//	bindings:
//	  users:
//	    database: app
//	    collection: users
type FileConfig struct {
	Connection mongodb.Config              `yaml:"connection"`
	Bindings   map[string]registry.Binding `yaml:"bindings"`
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return &cfg, nil
}

// RegisterBindings publishes every binding from the file into the binding
// registry, making the stores resolvable through Open.
func (fc *FileConfig) RegisterBindings() {
	for name, binding := range fc.Bindings {
		registry.RegisterBinding(name, binding)
	}
}

// Copyright 2024 by Harald Albrecht
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Supported log formats.
const (
	TextFormat = "text"
	JSONFormat = "json"
)

// Config describes how to set up a logger.
type Config struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	Timestamps bool   `yaml:"timestamps"`
}

// DefaultConfig returns the logging configuration used in absence of any
// logging configuration file.
func DefaultConfig() Config {
	return Config{
		Level:  logrus.InfoLevel.String(),
		Format: TextFormat,
	}
}

// LoadConfig reads the YAML logging configuration file at the specified path.
// Fields not present in the file keep their defaults, while unknown fields are
// rejected.
func LoadConfig(path string) (Config, error) {
	yamltext, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read logging configuration, reason: %w", err)
	}
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(yamltext))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("malformed logging configuration %q, reason: %w", path, err)
	}
	return cfg, nil
}

// New returns a new logger writing to the specified writer, as described by
// the passed configuration.
func New(cfg Config, w io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(w)
	level := logrus.InfoLevel
	if cfg.Level != "" {
		var err error
		level, err = logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid logging level, reason: %w", err)
		}
	}
	log.SetLevel(level)
	switch cfg.Format {
	case "", TextFormat:
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    cfg.Timestamps,
			DisableTimestamp: !cfg.Timestamps,
		})
	case JSONFormat:
		log.SetFormatter(&logrus.JSONFormatter{
			DisableTimestamp: !cfg.Timestamps,
		})
	default:
		return nil, fmt.Errorf("unsupported logging format %q", cfg.Format)
	}
	return log, nil
}

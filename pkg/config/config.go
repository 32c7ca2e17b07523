/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"sigs.k8s.io/release-utils/env"
	"sigs.k8s.io/yaml"

	"sigs.k8s.io/landprobe/pkg/probe"
	"sigs.k8s.io/landprobe/pkg/registry"
)

// Environment variables providing defaults.
const (
	RepoPathEnvKey = "LANDPROBE_REPO_PATH"
	BackendEnvKey  = "LANDPROBE_BACKEND"
	RegistryEnvKey = "LANDPROBE_REGISTRY"
)

// Config is the complete landprobe configuration.
type Config struct {
	Git      Git              `json:"git"`
	Probe    probe.Options    `json:"probe"`
	Registry registry.Options `json:"registry"`
}

// Git configures the repository the revisions are taken from.
type Git struct {
	// RepoPath is the local path to the repository.
	RepoPath string `json:"repoPath"`

	// Fetch updates the remote before searching.
	Fetch bool `json:"fetch,omitempty"`
}

// Default returns the default configuration, taking the environment into
// account.
func Default() *Config {
	return &Config{
		Git: Git{
			RepoPath: env.Default(RepoPathEnvKey, "."),
		},
		Probe: *probe.DefaultOptions(),
		Registry: registry.Options{
			Backend:  env.Default(BackendEnvKey, registry.BackendECR),
			Registry: env.Default(RegistryEnvKey, ""),
		},
	}
}

// Load reads the YAML file at path on top of the default configuration.
// Unknown fields are rejected.
func Load(path string) (*Config, error) {
	logrus.Infof("Reading configuration file %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read configuration file: %w", err)
	}

	cfg := Default()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("decode configuration file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Git.RepoPath) == "" {
		return fmt.Errorf("repository path must not be empty")
	}
	if err := c.Probe.Validate(); err != nil {
		return fmt.Errorf("probe: %w", err)
	}
	if err := c.Registry.Validate(); err != nil {
		return fmt.Errorf("registry: %w", err)
	}
	return nil
}

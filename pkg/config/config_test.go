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
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"sigs.k8s.io/landprobe/pkg/config"
	"sigs.k8s.io/landprobe/pkg/probe"
	"sigs.k8s.io/landprobe/pkg/registry"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "landprobe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	t.Setenv(config.RepoPathEnvKey, "/some/repo")
	t.Setenv(config.BackendEnvKey, registry.BackendOCI)
	t.Setenv(config.RegistryEnvKey, "gcr.io/project")

	cfg := config.Default()
	require.Equal(t, "/some/repo", cfg.Git.RepoPath)
	require.Equal(t, registry.BackendOCI, cfg.Registry.Backend)
	require.Equal(t, "gcr.io/project", cfg.Registry.Registry)
	require.Equal(t, *probe.DefaultOptions(), cfg.Probe)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		content string
		assert  func(*testing.T, *config.Config, error)
	}{
		{
			name: "full config",
			content: `
git:
  repoPath: /src/libra
  fetch: true
probe:
  repositories:
  - a
  - b
  ref: upstream/main
  window: 10
  tagPrefix: ci_
  shortLength: 12
  maxWorkers: 2
  ignoreRegistryErrors: true
registry:
  backend: oci
  registry: gcr.io/project
`,
			assert: func(t *testing.T, cfg *config.Config, err error) {
				require.NoError(t, err)
				require.NoError(t, cfg.Validate())
				require.Equal(t, config.Git{RepoPath: "/src/libra", Fetch: true}, cfg.Git)
				require.Equal(t, probe.Options{
					Repositories:         []string{"a", "b"},
					Ref:                  "upstream/main",
					Window:               10,
					TagPrefix:            "ci_",
					ShortLength:          12,
					MaxWorkers:           2,
					IgnoreRegistryErrors: true,
				}, cfg.Probe)
				require.Equal(t, registry.BackendOCI, cfg.Registry.Backend)
				require.Equal(t, "gcr.io/project", cfg.Registry.Registry)
			},
		},
		{
			name: "partial config keeps defaults",
			content: `
probe:
  window: 5
`,
			assert: func(t *testing.T, cfg *config.Config, err error) {
				require.NoError(t, err)
				require.Equal(t, 5, cfg.Probe.Window)
				require.Equal(t, probe.DefaultRepositories, cfg.Probe.Repositories)
				require.Equal(t, probe.DefaultTagPrefix, cfg.Probe.TagPrefix)
				require.Equal(t, probe.DefaultRef, cfg.Probe.Ref)
			},
		},
		{
			name: "failure on unknown field",
			content: `
probe:
  windows: 5
`,
			assert: func(t *testing.T, cfg *config.Config, err error) {
				require.Error(t, err)
				require.Nil(t, cfg)
			},
		},
		{
			name:    "failure on invalid yaml",
			content: "probe: [",
			assert: func(t *testing.T, cfg *config.Config, err error) {
				require.Error(t, err)
				require.Nil(t, cfg)
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.Load(writeConfig(t, tc.content))
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		modify func(*config.Config)
	}{
		{name: "empty repo path", modify: func(c *config.Config) { c.Git.RepoPath = "" }},
		{name: "invalid probe", modify: func(c *config.Config) { c.Probe.Window = -1 }},
		{name: "invalid registry", modify: func(c *config.Config) { c.Registry.Backend = "unknown" }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := &config.Config{
				Git:      config.Git{RepoPath: "."},
				Probe:    *probe.DefaultOptions(),
				Registry: registry.Options{Backend: registry.BackendECR},
			}
			require.NoError(t, cfg.Validate())

			tc.modify(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

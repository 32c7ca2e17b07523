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
package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/google/go-containerregistry/pkg/name"
	ggcrregistry "github.com/google/go-containerregistry/pkg/registry"
	"github.com/google/go-containerregistry/pkg/v1/random"
	"github.com/google/go-containerregistry/pkg/v1/remote"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"sigs.k8s.io/landprobe/pkg/config"
	"sigs.k8s.io/landprobe/pkg/probe"
	"sigs.k8s.io/landprobe/pkg/registry"
)

func parseFlags(t *testing.T, args ...string) (*pflag.FlagSet, *rootOptions) {
	t.Helper()

	opts := &rootOptions{}
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addFlags(flags, opts)
	require.NoError(t, flags.Parse(args))
	return flags, opts
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	configFile := filepath.Join(t.TempDir(), "landprobe.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(`
probe:
  window: 10
  tagPrefix: ci_
  repositories:
  - from/file
registry:
  backend: oci
  registry: gcr.io/from-file
`), 0o600))

	for _, tc := range []struct {
		name   string
		args   []string
		assert func(*testing.T, *config.Config, error)
	}{
		{
			name: "flags only",
			args: []string{
				"--backend", "oci",
				"--registry", "localhost:5000",
				"--repository", "a",
				"--repository", "b",
				"--window", "3",
				"--max-workers", "2",
				"--ignore-registry-errors",
			},
			assert: func(t *testing.T, cfg *config.Config, err error) {
				require.NoError(t, err)
				require.Equal(t, []string{"a", "b"}, cfg.Probe.Repositories)
				require.Equal(t, 3, cfg.Probe.Window)
				require.Equal(t, 2, cfg.Probe.MaxWorkers)
				require.True(t, cfg.Probe.IgnoreRegistryErrors)
				require.Equal(t, probe.DefaultTagPrefix, cfg.Probe.TagPrefix)
				require.Equal(t, registry.BackendOCI, cfg.Registry.Backend)
				require.Equal(t, "localhost:5000", cfg.Registry.Registry)
			},
		},
		{
			name: "config file",
			args: []string{"--config", configFile},
			assert: func(t *testing.T, cfg *config.Config, err error) {
				require.NoError(t, err)
				require.Equal(t, 10, cfg.Probe.Window)
				require.Equal(t, "ci_", cfg.Probe.TagPrefix)
				require.Equal(t, []string{"from/file"}, cfg.Probe.Repositories)
				require.Equal(t, "gcr.io/from-file", cfg.Registry.Registry)
			},
		},
		{
			name: "flags override config file",
			args: []string{
				"--config", configFile,
				"--window", "0",
				"--registry", "gcr.io/from-flag",
				"--ref", "upstream/main",
			},
			assert: func(t *testing.T, cfg *config.Config, err error) {
				require.NoError(t, err)
				require.Equal(t, 0, cfg.Probe.Window)
				require.Equal(t, "ci_", cfg.Probe.TagPrefix)
				require.Equal(t, "upstream/main", cfg.Probe.Ref)
				require.Equal(t, "gcr.io/from-flag", cfg.Registry.Registry)
			},
		},
		{
			name: "failure on missing config file",
			args: []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")},
			assert: func(t *testing.T, cfg *config.Config, err error) {
				require.Error(t, err)
				require.Nil(t, cfg)
			},
		},
		{
			name: "failure on duplicate repositories",
			args: []string{"--backend", "ecr", "--repository", "a", "--repository", "a"},
			assert: func(t *testing.T, cfg *config.Config, err error) {
				require.Error(t, err)
				require.Nil(t, cfg)
			},
		},
		{
			name: "failure on negative window",
			args: []string{"--backend", "ecr", "--window", "-1"},
			assert: func(t *testing.T, cfg *config.Config, err error) {
				require.Error(t, err)
				require.Nil(t, cfg)
			},
		},
		{
			name: "failure on oci backend without registry",
			args: []string{"--backend", "oci", "--registry", ""},
			assert: func(t *testing.T, cfg *config.Config, err error) {
				require.Error(t, err)
				require.Nil(t, cfg)
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			flags, opts := parseFlags(t, tc.args...)
			cfg, err := buildConfig(flags, opts)
			tc.assert(t, cfg, err)
		})
	}
}

func TestPrintResult(t *testing.T) {
	t.Parallel()

	res := &probe.Result{Tag: "land_aaaa1111", Revision: "aaaa1111bbbb", Offset: 2}

	out := &bytes.Buffer{}
	require.NoError(t, printResult(out, res, outputTag))
	require.Equal(t, "land_aaaa1111\n", out.String())

	out.Reset()
	require.NoError(t, printResult(out, res, outputJSON))
	decoded := &probe.Result{}
	require.NoError(t, json.Unmarshal(out.Bytes(), decoded))
	require.Equal(t, res, decoded)
}

func TestRunUnsupportedOutput(t *testing.T) {
	t.Parallel()

	flags, opts := parseFlags(t, "--output", "yaml")
	err := run(context.Background(), flags, opts, &bytes.Buffer{})
	require.ErrorContains(t, err, "unsupported output format")
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	versionCmd, args, err := rootCmd.Find([]string{"version", "--json"})
	require.NoError(t, err)
	require.Equal(t, "version", versionCmd.Name())
	require.Equal(t, []string{"--json"}, args)
	require.NotNil(t, versionCmd.Flags().Lookup("json"))
}

// newTestRepo creates a repository with the provided number of commits and
// points origin/master to the last one. It returns the commit IDs oldest
// first.
func newTestRepo(t *testing.T, commits int) (dir string, hashes []string) {
	t.Helper()

	dir = t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	worktree, err := repo.Worktree()
	require.NoError(t, err)

	var head plumbing.Hash
	for i := range commits {
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, "file"), []byte(fmt.Sprintf("content %d", i)), 0o600,
		))
		_, err := worktree.Add("file")
		require.NoError(t, err)

		head, err = worktree.Commit(fmt.Sprintf("commit %d", i), &gogit.CommitOptions{
			Author: &object.Signature{
				Name:  "Test",
				Email: "test@example.com",
				When:  time.Unix(int64(1600000000+i), 0),
			},
		})
		require.NoError(t, err)
		hashes = append(hashes, head.String())
	}

	require.NoError(t, repo.Storer.SetReference(plumbing.NewHashReference(
		plumbing.NewRemoteReferenceName("origin", "master"), head,
	)))

	return dir, hashes
}

func TestRun(t *testing.T) {
	t.Parallel()

	dir, hashes := newTestRepo(t, 4)

	server := httptest.NewServer(ggcrregistry.New())
	t.Cleanup(server.Close)
	host := strings.TrimPrefix(server.URL, "http://")

	// The newest revision only has one of both images, the one before has
	// both of them.
	pushed := map[string][]string{
		"libra/validator": {hashes[3], hashes[2]},
		"libra/faucet":    {hashes[2], hashes[1]},
	}
	for repository, revisions := range pushed {
		for _, revision := range revisions {
			img, err := random.Image(256, 1)
			require.NoError(t, err)

			ref, err := name.ParseReference(
				fmt.Sprintf("%s/%s:land_%s", host, repository, revision[:8]),
			)
			require.NoError(t, err)
			require.NoError(t, remote.Write(ref, img))
		}
	}

	baseArgs := []string{
		"--repo-path", dir,
		"--backend", registry.BackendOCI,
		"--registry", host,
		"--insecure",
		"--repository", "libra/validator",
		"--repository", "libra/faucet",
	}

	for _, tc := range []struct {
		name   string
		args   []string
		assert func(*testing.T, string, error)
	}{
		{
			name: "tag output",
			assert: func(t *testing.T, out string, err error) {
				require.NoError(t, err)
				require.Equal(t, "land_"+hashes[2][:8]+"\n", out)
			},
		},
		{
			name: "json output with parallel checks",
			args: []string{"--output", "json", "--max-workers", "2"},
			assert: func(t *testing.T, out string, err error) {
				require.NoError(t, err)
				res := &probe.Result{}
				require.NoError(t, json.Unmarshal([]byte(out), res))
				require.Equal(t, probe.Result{
					Tag:      "land_" + hashes[2][:8],
					Revision: hashes[2],
					Offset:   1,
				}, *res)
			},
		},
		{
			name: "window too small",
			args: []string{"--window", "0"},
			assert: func(t *testing.T, out string, err error) {
				require.ErrorIs(t, err, probe.ErrWindowExhausted)
				require.Empty(t, out)
			},
		},
		{
			name: "history too short",
			args: []string{"--repository", "libra/init"},
			assert: func(t *testing.T, out string, err error) {
				require.ErrorIs(t, err, probe.ErrWindowExhausted)
				require.Empty(t, out)
			},
		},
		{
			name: "failure on missing repository path",
			args: []string{"--repo-path", filepath.Join(t.TempDir(), "missing")},
			assert: func(t *testing.T, out string, err error) {
				require.Error(t, err)
				require.Empty(t, out)
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			flags, opts := parseFlags(t, append(append([]string{}, baseArgs...), tc.args...)...)
			out := &bytes.Buffer{}
			err := run(context.Background(), flags, opts, out)
			tc.assert(t, out.String(), err)
		})
	}
}

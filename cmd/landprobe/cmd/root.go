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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"sigs.k8s.io/release-utils/log"
	"sigs.k8s.io/release-utils/version"

	"sigs.k8s.io/landprobe/pkg/config"
	"sigs.k8s.io/landprobe/pkg/probe"
	"sigs.k8s.io/landprobe/pkg/registry"
	"sigs.k8s.io/landprobe/pkg/revision"
)

// All supported output formats.
const (
	outputTag  = "tag"
	outputJSON = "json"
)

const (
	configFlag               = "config"
	repoPathFlag             = "repo-path"
	fetchFlag                = "fetch"
	refFlag                  = "ref"
	windowFlag               = "window"
	prefixFlag               = "prefix"
	shortLengthFlag          = "short-length"
	repositoryFlag           = "repository"
	maxWorkersFlag           = "max-workers"
	ignoreRegistryErrorsFlag = "ignore-registry-errors"
	backendFlag              = "backend"
	registryFlag             = "registry"
	insecureFlag             = "insecure"
	awsRegionFlag            = "aws-region"
	registryIDFlag           = "registry-id"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "landprobe",
	Short: "landprobe → Find the newest revision having all land blocking images",
	Long: `landprobe → Find the newest revision having all land blocking images

This tool walks the git history backwards from a reference (origin/master by
default) and derives an image tag for every revision. The first revision whose
tag exists in all configured image repositories gets printed to stdout.

The tool exits with a non zero code if no revision within the lookback window
qualifies, which is the expected outcome as long as no land blocking image
build has finished yet.`,
	Example:           "landprobe --backend oci --registry gcr.io/my-project --repository libra/validator",
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initLogging,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context(), cmd.Flags(), rootOpts, os.Stdout)
	},
}

type rootOptions struct {
	logLevel   string
	logFile    string
	configPath string
	output     string
	timeout    time.Duration

	repoPath string
	fetch    bool

	ref                  string
	window               int
	tagPrefix            string
	shortLength          int
	repositories         []string
	maxWorkers           int
	ignoreRegistryErrors bool

	backend    string
	registry   string
	insecure   bool
	awsRegion  string
	registryID string
}

var rootOpts = &rootOptions{}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&rootOpts.logLevel,
		"log-level",
		"info",
		fmt.Sprintf("the logging verbosity, either %s", log.LevelNames()),
	)

	rootCmd.PersistentFlags().StringVar(
		&rootOpts.logFile,
		"log-file",
		"",
		"additionally write the log output to the provided file",
	)

	addFlags(rootCmd.Flags(), rootOpts)

	rootCmd.AddCommand(version.WithFont("doom"))
}

// addFlags registers the probe flags. Their defaults reflect the defaults of
// the configuration, including environment overrides.
func addFlags(flags *pflag.FlagSet, opts *rootOptions) {
	defaults := config.Default()

	flags.StringVarP(
		&opts.configPath,
		configFlag,
		"c",
		"",
		"YAML configuration file, explicitly set flags take precedence",
	)

	flags.StringVarP(
		&opts.output,
		"output",
		"o",
		outputTag,
		fmt.Sprintf("output format of the result, either %q or %q", outputTag, outputJSON),
	)

	flags.DurationVar(
		&opts.timeout,
		"timeout",
		0,
		"abort the search after the provided duration, zero means no timeout",
	)

	flags.StringVar(
		&opts.repoPath,
		repoPathFlag,
		defaults.Git.RepoPath,
		fmt.Sprintf("the local path to the git repository (env %s)", config.RepoPathEnvKey),
	)

	flags.BoolVar(
		&opts.fetch,
		fetchFlag,
		defaults.Git.Fetch,
		"fetch the remote of the reference before searching",
	)

	flags.StringVar(
		&opts.ref,
		refFlag,
		defaults.Probe.Ref,
		"the git reference the lookback window starts from",
	)

	flags.IntVar(
		&opts.window,
		windowFlag,
		defaults.Probe.Window,
		"the highest number of commits behind the reference to be checked",
	)

	flags.StringVar(
		&opts.tagPrefix,
		prefixFlag,
		defaults.Probe.TagPrefix,
		"the prefix of every image tag",
	)

	flags.IntVar(
		&opts.shortLength,
		shortLengthFlag,
		defaults.Probe.ShortLength,
		"the number of commit ID characters used in the image tag, zero uses the full ID",
	)

	flags.StringSliceVarP(
		&opts.repositories,
		repositoryFlag,
		"r",
		defaults.Probe.Repositories,
		"image repositories which all need to contain the tag, can be set multiple times",
	)

	flags.IntVar(
		&opts.maxWorkers,
		maxWorkersFlag,
		defaults.Probe.MaxWorkers,
		"the number of repositories checked in parallel per revision",
	)

	flags.BoolVar(
		&opts.ignoreRegistryErrors,
		ignoreRegistryErrorsFlag,
		defaults.Probe.IgnoreRegistryErrors,
		"treat failed registry requests like missing images instead of aborting",
	)

	flags.StringVar(
		&opts.backend,
		backendFlag,
		defaults.Registry.Backend,
		fmt.Sprintf(
			"the registry backend, either %q or %q (env %s)",
			registry.BackendOCI, registry.BackendECR, config.BackendEnvKey,
		),
	)

	flags.StringVar(
		&opts.registry,
		registryFlag,
		defaults.Registry.Registry,
		fmt.Sprintf("the registry prefix of the repositories for the %s backend (env %s)",
			registry.BackendOCI, config.RegistryEnvKey,
		),
	)

	flags.BoolVar(
		&opts.insecure,
		insecureFlag,
		defaults.Registry.Insecure,
		"allow plain HTTP connections to the registry",
	)

	flags.StringVar(
		&opts.awsRegion,
		awsRegionFlag,
		defaults.Registry.AWSRegion,
		fmt.Sprintf("the AWS region for the %s backend, defaults to the AWS configuration", registry.BackendECR),
	)

	flags.StringVar(
		&opts.registryID,
		registryIDFlag,
		defaults.Registry.RegistryID,
		fmt.Sprintf("the AWS account ID of the registry for the %s backend", registry.BackendECR),
	)
}

func initLogging(*cobra.Command, []string) error {
	if err := log.SetupGlobalLogger(rootOpts.logLevel); err != nil {
		return err
	}
	if rootOpts.logFile != "" {
		return log.ToFile(rootOpts.logFile)
	}
	return nil
}

// buildConfig layers the configuration file and the explicitly set flags on
// top of the defaults.
func buildConfig(flags *pflag.FlagSet, opts *rootOptions) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	for flag, apply := range map[string]func(){
		repoPathFlag:             func() { cfg.Git.RepoPath = opts.repoPath },
		fetchFlag:                func() { cfg.Git.Fetch = opts.fetch },
		refFlag:                  func() { cfg.Probe.Ref = opts.ref },
		windowFlag:               func() { cfg.Probe.Window = opts.window },
		prefixFlag:               func() { cfg.Probe.TagPrefix = opts.tagPrefix },
		shortLengthFlag:          func() { cfg.Probe.ShortLength = opts.shortLength },
		repositoryFlag:           func() { cfg.Probe.Repositories = opts.repositories },
		maxWorkersFlag:           func() { cfg.Probe.MaxWorkers = opts.maxWorkers },
		ignoreRegistryErrorsFlag: func() { cfg.Probe.IgnoreRegistryErrors = opts.ignoreRegistryErrors },
		backendFlag:              func() { cfg.Registry.Backend = opts.backend },
		registryFlag:             func() { cfg.Registry.Registry = opts.registry },
		insecureFlag:             func() { cfg.Registry.Insecure = opts.insecure },
		awsRegionFlag:            func() { cfg.Registry.AWSRegion = opts.awsRegion },
		registryIDFlag:           func() { cfg.Registry.RegistryID = opts.registryID },
	} {
		if flags.Changed(flag) {
			apply()
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return cfg, nil
}

func run(ctx context.Context, flags *pflag.FlagSet, opts *rootOptions, out io.Writer) error {
	if opts.output != outputTag && opts.output != outputJSON {
		return fmt.Errorf("unsupported output format %q", opts.output)
	}

	cfg, err := buildConfig(flags, opts)
	if err != nil {
		return err
	}

	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	source := revision.New(cfg.Probe.Ref)
	if err := source.Open(cfg.Git.RepoPath); err != nil {
		return err
	}
	if cfg.Git.Fetch {
		if err := source.Fetch(); err != nil {
			return err
		}
	}

	checker, err := registry.New(ctx, &cfg.Registry)
	if err != nil {
		return err
	}

	logrus.Infof(
		"Using %s registry backend for repositories: %s",
		cfg.Registry.Backend, strings.Join(cfg.Probe.Repositories, ", "),
	)

	res, err := probe.New(source, checker, &cfg.Probe).Probe(ctx)
	if err != nil {
		return err
	}

	return printResult(out, res, opts.output)
}

func printResult(out io.Writer, res *probe.Result, format string) error {
	if format == outputJSON {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	_, err := fmt.Fprintln(out, res.Tag)
	return err
}

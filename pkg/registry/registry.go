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
package registry

import (
	"context"
	"fmt"
	"strings"

	"sigs.k8s.io/landprobe/pkg/probe"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// All available registry backends.
const (
	BackendOCI = "oci"
	BackendECR = "ecr"
)

// Options configure the registry backend.
type Options struct {
	// Backend is either BackendOCI or BackendECR.
	Backend string `json:"backend"`

	// Registry is the host and optional path prefix the repositories live
	// in, for example "gcr.io/my-project". Only used by the OCI backend.
	Registry string `json:"registry,omitempty"`

	// Insecure allows plain HTTP connections to the OCI registry.
	Insecure bool `json:"insecure,omitempty"`

	// AWSRegion overrides the region of the default AWS configuration.
	AWSRegion string `json:"awsRegion,omitempty"`

	// RegistryID is the AWS account ID of the ECR registry. Empty means the
	// default registry of the caller.
	RegistryID string `json:"registryID,omitempty"`
}

// Validate checks if the options are usable.
func (o *Options) Validate() error {
	switch o.Backend {
	case BackendOCI:
		if strings.TrimSpace(o.Registry) == "" {
			return fmt.Errorf("registry is required for the %s backend", BackendOCI)
		}
	case BackendECR:
	default:
		return fmt.Errorf(
			"unknown registry backend %q, must be one of: %s",
			o.Backend, strings.Join([]string{BackendOCI, BackendECR}, ", "),
		)
	}
	return nil
}

// New creates the registry checker for the configured backend.
func New(ctx context.Context, opts *Options) (probe.RegistryChecker, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validating registry options: %w", err)
	}

	if opts.Backend == BackendECR {
		checker, err := NewECR(ctx, opts)
		if err != nil {
			return nil, err
		}
		return checker, nil
	}

	return NewOCI(opts), nil
}

func validateImage(repository, tag string) error {
	if strings.TrimSpace(repository) == "" {
		return probe.ErrEmptyRepository
	}
	if strings.TrimSpace(tag) == "" {
		return probe.ErrEmptyTag
	}
	return nil
}

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

package probe

import (
	"errors"
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

const (
	// DefaultRef is the reference whose history gets searched.
	DefaultRef = "origin/master"

	// DefaultWindow is the highest offset behind DefaultRef to be checked.
	DefaultWindow = 50

	// DefaultTagPrefix is prepended to every derived image tag.
	DefaultTagPrefix = "land_"

	// DefaultShortLength is the number of revision ID characters used in a
	// tag.
	DefaultShortLength = 8

	// maxWindow limits the lookback to keep the number of registry requests
	// sane.
	maxWindow = 1000
)

// DefaultRepositories are the images built for every land blocking revision.
var DefaultRepositories = []string{
	"libra/validator",
	"libra/init",
	"libra/faucet",
	"libra/cluster_test",
}

// Options are the settings of a Prober.
type Options struct {
	// Repositories which all need to contain the derived tag.
	Repositories []string `json:"repositories,omitempty"`

	// Ref is the revision the lookback window starts from.
	Ref string `json:"ref,omitempty"`

	// Window is the highest offset behind Ref to be considered, the offsets
	// 0 to Window (inclusive) get scanned.
	Window int `json:"window"`

	// TagPrefix is prepended to the shortened revision ID.
	TagPrefix string `json:"tagPrefix"`

	// ShortLength is the number of revision ID characters used within the
	// tag, zero means the full ID.
	ShortLength int `json:"shortLength"`

	// MaxWorkers is the number of repositories checked in parallel for a
	// single tag. Values lower than two check sequentially.
	MaxWorkers int `json:"maxWorkers,omitempty"`

	// IgnoreRegistryErrors treats failed registry requests like missing
	// images instead of aborting the probe.
	IgnoreRegistryErrors bool `json:"ignoreRegistryErrors,omitempty"`
}

// DefaultOptions returns the options matching the land blocking setup.
func DefaultOptions() *Options {
	return &Options{
		Repositories: append([]string{}, DefaultRepositories...),
		Ref:          DefaultRef,
		Window:       DefaultWindow,
		TagPrefix:    DefaultTagPrefix,
		ShortLength:  DefaultShortLength,
		MaxWorkers:   1,
	}
}

// Validate checks if the options are usable.
func (o *Options) Validate() error {
	if strings.TrimSpace(o.Ref) == "" {
		return errors.New("ref must not be empty")
	}

	if o.Window < 0 || o.Window > maxWindow {
		return fmt.Errorf("window %d is not within 0 and %d", o.Window, maxWindow)
	}

	if o.ShortLength < 0 {
		return fmt.Errorf("short length %d must not be negative", o.ShortLength)
	}

	if o.MaxWorkers < 0 {
		return fmt.Errorf("max workers %d must not be negative", o.MaxWorkers)
	}

	if len(o.Repositories) == 0 {
		return errors.New("at least one repository is required")
	}

	seen := sets.New[string]()
	for _, repository := range o.Repositories {
		if strings.TrimSpace(repository) == "" {
			return ErrEmptyRepository
		}
		if seen.Has(repository) {
			return fmt.Errorf("repository %s specified more than once", repository)
		}
		seen.Insert(repository)
	}

	return nil
}

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
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/nozzle/throttler"
	"github.com/sirupsen/logrus"
)

var (
	// ErrWindowExhausted is returned if no revision inside the lookback window
	// has all images available.
	ErrWindowExhausted = errors.New("no revision with all images found")

	// ErrEmptyTag is returned if an image existence check gets called
	// without a tag.
	ErrEmptyTag = errors.New("image tag must not be empty")

	// ErrEmptyRepository is returned if an image existence check gets called
	// without a repository name.
	ErrEmptyRepository = errors.New("image repository must not be empty")

	// ErrEndOfHistory is returned by revision sources if the requested offset
	// points behind the root commit.
	ErrEndOfHistory = errors.New("offset exceeds revision history")

	errImageMissing = errors.New("image missing")
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate . RevisionSource
//go:generate /usr/bin/env bash -c "cat ../../hack/boilerplate/boilerplate.generatego.txt probefakes/fake_revision_source.go > probefakes/_fake_revision_source.go && mv probefakes/_fake_revision_source.go probefakes/fake_revision_source.go"

// RevisionSource maps an offset behind a reference tip to a revision ID.
type RevisionSource interface {
	Resolve(ctx context.Context, offset int) (string, error)
}

//counterfeiter:generate . RegistryChecker
//go:generate /usr/bin/env bash -c "cat ../../hack/boilerplate/boilerplate.generatego.txt probefakes/fake_registry_checker.go > probefakes/_fake_registry_checker.go && mv probefakes/_fake_registry_checker.go probefakes/fake_registry_checker.go"

// RegistryChecker answers whether an image repository contains a tag. A
// missing image is not an error, only transport or authentication failures
// are.
type RegistryChecker interface {
	ImageExists(ctx context.Context, repository, tag string) (bool, error)
}

// Result is the outcome of a successful probe.
type Result struct {
	// Tag is the image tag available in all repositories.
	Tag string `json:"tag"`

	// Revision is the full revision ID the tag has been derived from.
	Revision string `json:"revision"`

	// Offset is the distance of Revision to the reference tip.
	Offset int `json:"offset"`
}

// Prober searches the newest revision for which all images exist.
type Prober struct {
	revisions RevisionSource
	registry  RegistryChecker
	tags      *TagDeriver
	options   *Options
}

// New creates a new Prober instance.
func New(revisions RevisionSource, registry RegistryChecker, opts *Options) *Prober {
	return &Prober{
		revisions: revisions,
		registry:  registry,
		tags:      NewTagDeriver(opts.TagPrefix, opts.ShortLength),
		options:   opts,
	}
}

// Probe walks the revisions from the reference tip backwards and returns the
// first one which has an image in every repository. It returns
// ErrWindowExhausted if no such revision exists within the window.
func (p *Prober) Probe(ctx context.Context) (*Result, error) {
	if err := p.options.Validate(); err != nil {
		return nil, fmt.Errorf("validating probe options: %w", err)
	}

	logrus.Infof(
		"Searching revisions %s~0 to %s~%d for images in %d repositories",
		p.options.Ref, p.options.Ref, p.options.Window, len(p.options.Repositories),
	)

	checked := 0
	for offset := 0; offset <= p.options.Window; offset++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("probe interrupted at offset %d: %w", offset, err)
		}

		revision, err := p.revisions.Resolve(ctx, offset)
		if err != nil {
			if errors.Is(err, ErrEndOfHistory) {
				logrus.Infof("Reached end of history at offset %d", offset)
				break
			}
			return nil, fmt.Errorf("resolve revision at offset %d: %w", offset, err)
		}

		tag, err := p.tags.Derive(revision)
		if err != nil {
			return nil, fmt.Errorf("derive tag for revision %s: %w", revision, err)
		}

		logrus.Infof("Checking revision %s (offset %d) using tag %s", revision, offset, tag)
		checked++

		found, err := p.allImagesExist(ctx, tag)
		if err != nil {
			return nil, err
		}

		if found {
			logrus.Infof("All images available for tag %s", tag)
			return &Result{Tag: tag, Revision: revision, Offset: offset}, nil
		}
	}

	return nil, fmt.Errorf(
		"%w: checked %d revisions behind %s", ErrWindowExhausted, checked, p.options.Ref,
	)
}

func (p *Prober) allImagesExist(ctx context.Context, tag string) (bool, error) {
	if p.options.MaxWorkers > 1 && len(p.options.Repositories) > 1 {
		return p.allImagesExistParallel(ctx, tag)
	}

	for _, repository := range p.options.Repositories {
		exists, err := p.imageExists(ctx, repository, tag)
		if err != nil {
			return false, err
		}
		if !exists {
			return false, nil
		}
	}

	return true, nil
}

// allImagesExistParallel stops scheduling new checks as soon as one of them
// reports a missing image or fails. Checks already in flight get canceled and
// are waited for before returning.
func (p *Prober) allImagesExistParallel(ctx context.Context, tag string) (bool, error) {
	repositories := p.options.Repositories
	t := throttler.New(p.options.MaxWorkers, len(repositories))

	checkCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		errs    []error
		missing atomic.Bool
	)
	for _, repository := range repositories {
		wg.Add(1)
		go func(repository string) {
			defer wg.Done()

			exists, err := p.imageExists(checkCtx, repository, tag)
			switch {
			case err != nil:
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				cancel()
				t.Done(err)
			case !exists:
				missing.Store(true)
				cancel()
				t.Done(errImageMissing)
			default:
				t.Done(nil)
			}
		}(repository)

		if t.Throttle() > 0 {
			break
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("check images for tag %s: %w", tag, err)
	}

	// Cancellations caused by an earlier miss or failure are not reported.
	for _, err := range errs {
		if !errors.Is(err, context.Canceled) {
			return false, err
		}
	}

	return !missing.Load() && len(errs) == 0, nil
}

// imageExists wraps the registry check and applies the registry error policy.
func (p *Prober) imageExists(ctx context.Context, repository, tag string) (bool, error) {
	if tag == "" {
		return false, ErrEmptyTag
	}

	exists, err := p.registry.ImageExists(ctx, repository, tag)
	if err != nil {
		if errors.Is(err, ErrEmptyTag) || errors.Is(err, ErrEmptyRepository) ||
			!p.options.IgnoreRegistryErrors || ctx.Err() != nil {
			return false, fmt.Errorf("check image %s:%s: %w", repository, tag, err)
		}
		logrus.Warnf("Treating image %s:%s as not found: %v", repository, tag, err)
		return false, nil
	}

	if exists {
		logrus.Infof("Found image %s:%s", repository, tag)
	} else {
		logrus.Infof("Image %s:%s not found", repository, tag)
	}

	return exists, nil
}

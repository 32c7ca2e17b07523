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
package revision

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"sigs.k8s.io/release-sdk/git"

	"sigs.k8s.io/landprobe/pkg/probe"
)

// Source resolves offsets behind a reference of a local git repository.
type Source struct {
	impl impl
	repo *git.Repo
	ref  string
}

// New creates a new Source for the provided reference, for example
// "origin/master".
func New(ref string) *Source {
	return &Source{
		impl: &defaultImpl{},
		ref:  ref,
	}
}

// Open opens the repository at repoPath. The path may point into a
// subdirectory of the working tree.
func (s *Source) Open(repoPath string) error {
	logrus.Infof("Opening git repository %s", repoPath)
	repo, err := s.impl.OpenRepo(repoPath)
	if err != nil {
		return fmt.Errorf("open repository %s: %w", repoPath, err)
	}
	s.repo = repo
	return nil
}

// Fetch updates the remote the reference belongs to.
func (s *Source) Fetch() error {
	if s.repo == nil {
		return errors.New("repository not opened")
	}

	remote := s.Remote()
	logrus.Infof("Fetching remote %s", remote)
	updated, err := s.impl.FetchRemote(s.repo, remote)
	if err != nil {
		return fmt.Errorf("fetch remote %s: %w", remote, err)
	}
	if updated {
		logrus.Infof("Remote %s had new objects", remote)
	}
	return nil
}

// Remote returns the remote name of the reference, falling back to the
// default remote for local branches.
func (s *Source) Remote() string {
	if remote, _, found := strings.Cut(s.ref, "/"); found && remote != "" {
		return remote
	}
	return git.DefaultRemote
}

// Resolve returns the full commit ID offset commits behind the reference tip.
// It returns an error wrapping probe.ErrEndOfHistory if the offset points
// behind the root commit.
func (s *Source) Resolve(ctx context.Context, offset int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.repo == nil {
		return "", errors.New("repository not opened")
	}
	if offset < 0 {
		return "", fmt.Errorf("offset %d must not be negative", offset)
	}

	rev := s.ref
	if offset > 0 {
		rev = fmt.Sprintf("%s~%d", s.ref, offset)
	}

	sha, err := s.impl.RevParse(s.repo, rev)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %s", probe.ErrEndOfHistory, rev)
		}
		return "", fmt.Errorf("rev-parse %s: %w", rev, err)
	}

	logrus.Debugf("Resolved %s to %s", rev, sha)
	return sha, nil
}

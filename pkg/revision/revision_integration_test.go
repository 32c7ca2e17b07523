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
package revision_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"

	"sigs.k8s.io/landprobe/pkg/revision"
)

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

func TestResolveRepository(t *testing.T) {
	t.Parallel()

	dir, hashes := newTestRepo(t, 3)

	sut := revision.New("origin/master")
	require.NoError(t, sut.Open(dir))

	for offset := range 3 {
		sha, err := sut.Resolve(context.Background(), offset)
		require.NoError(t, err)
		require.Equal(t, hashes[len(hashes)-1-offset], sha)
	}

	sha, err := sut.Resolve(context.Background(), 3)
	require.Error(t, err)
	require.Empty(t, sha)
}

func TestResolveUnknownRef(t *testing.T) {
	t.Parallel()

	dir, _ := newTestRepo(t, 1)

	sut := revision.New("origin/does-not-exist")
	require.NoError(t, sut.Open(dir))

	_, err := sut.Resolve(context.Background(), 0)
	require.Error(t, err)
}

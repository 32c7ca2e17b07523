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
	"sigs.k8s.io/release-sdk/git"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate . impl
//go:generate /usr/bin/env bash -c "cat ../../hack/boilerplate/boilerplate.generatego.txt revisionfakes/fake_impl.go > revisionfakes/_fake_impl.go && mv revisionfakes/_fake_impl.go revisionfakes/fake_impl.go"
type impl interface {
	OpenRepo(repoPath string) (*git.Repo, error)
	FetchRemote(repo *git.Repo, remote string) (bool, error)
	RevParse(repo *git.Repo, rev string) (string, error)
}

type defaultImpl struct{}

func (*defaultImpl) OpenRepo(repoPath string) (*git.Repo, error) {
	return git.OpenRepo(repoPath)
}

func (*defaultImpl) FetchRemote(repo *git.Repo, remote string) (bool, error) {
	return repo.FetchRemote(remote)
}

func (*defaultImpl) RevParse(repo *git.Repo, rev string) (string, error) {
	return repo.RevParse(rev)
}

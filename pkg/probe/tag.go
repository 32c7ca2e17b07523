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
	"strings"
)

// TagDeriver turns revision IDs into image tags.
type TagDeriver struct {
	prefix string
	length int
}

// NewTagDeriver creates a new TagDeriver. A length of zero keeps the full
// revision ID.
func NewTagDeriver(prefix string, length int) *TagDeriver {
	return &TagDeriver{prefix: prefix, length: length}
}

// Derive returns the prefix followed by the shortened revision ID.
func (t *TagDeriver) Derive(revision string) (string, error) {
	revision = strings.TrimSpace(revision)
	if revision == "" {
		return "", errors.New("revision must not be empty")
	}

	short := revision
	if t.length > 0 && len(short) > t.length {
		short = short[:t.length]
	}

	return t.prefix + short, nil
}

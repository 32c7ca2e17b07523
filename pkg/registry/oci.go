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
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-containerregistry/pkg/authn"
	"github.com/google/go-containerregistry/pkg/name"
	v1 "github.com/google/go-containerregistry/pkg/v1"
	"github.com/google/go-containerregistry/pkg/v1/google"
	"github.com/google/go-containerregistry/pkg/v1/remote"
	"github.com/google/go-containerregistry/pkg/v1/remote/transport"
	"github.com/sirupsen/logrus"
)

//counterfeiter:generate . ociClient
//go:generate /usr/bin/env bash -c "cat ../../hack/boilerplate/boilerplate.generatego.txt registryfakes/fake_oci_client.go > registryfakes/_fake_oci_client.go && mv registryfakes/_fake_oci_client.go registryfakes/fake_oci_client.go"
type ociClient interface {
	Head(ctx context.Context, ref name.Reference) (*v1.Descriptor, error)
}

type defaultOCIClient struct {
	keychain authn.Keychain
}

func (d *defaultOCIClient) Head(ctx context.Context, ref name.Reference) (*v1.Descriptor, error) {
	return remote.Head(ref,
		remote.WithContext(ctx),
		remote.WithAuthFromKeychain(d.keychain),
	)
}

// OCI checks images in a registry speaking the OCI distribution API.
type OCI struct {
	client      ociClient
	registry    string
	nameOptions []name.Option
}

// NewOCI creates a new OCI checker. Credentials are taken from the docker
// config and the Google application default credentials.
func NewOCI(opts *Options) *OCI {
	nameOptions := []name.Option{name.StrictValidation}
	if opts.Insecure {
		nameOptions = append(nameOptions, name.Insecure)
	}

	return &OCI{
		client: &defaultOCIClient{
			keychain: authn.NewMultiKeychain(authn.DefaultKeychain, google.Keychain),
		},
		registry:    strings.TrimSuffix(opts.Registry, "/"),
		nameOptions: nameOptions,
	}
}

// ImageExists returns true if the registry serves a manifest for
// repository:tag.
func (o *OCI) ImageExists(ctx context.Context, repository, tag string) (bool, error) {
	if err := validateImage(repository, tag); err != nil {
		return false, err
	}

	image := fmt.Sprintf("%s/%s:%s", o.registry, repository, tag)
	ref, err := name.ParseReference(image, o.nameOptions...)
	if err != nil {
		return false, fmt.Errorf("parse image reference %s: %w", image, err)
	}

	desc, err := o.client.Head(ctx, ref)
	if err != nil {
		if IsNotFound(err) {
			logrus.Debugf("Registry has no manifest for %s: %v", ref, err)
			return false, nil
		}
		return false, fmt.Errorf("get manifest of %s: %w", ref, err)
	}

	logrus.Debugf("Image %s has digest %s", ref, desc.Digest)
	return true, nil
}

// IsNotFound returns true if the error indicates a missing manifest or
// repository.
func IsNotFound(err error) bool {
	var terr *transport.Error
	if !errors.As(err, &terr) {
		return false
	}

	if terr.StatusCode == http.StatusNotFound {
		return true
	}

	for _, diagnostic := range terr.Errors {
		switch diagnostic.Code {
		case transport.ManifestUnknownErrorCode, transport.NameUnknownErrorCode:
			return true
		default:
		}
	}

	return false
}

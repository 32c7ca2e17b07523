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

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/ecr/types"
	"github.com/sirupsen/logrus"
)

//counterfeiter:generate . ecrClient
//go:generate /usr/bin/env bash -c "cat ../../hack/boilerplate/boilerplate.generatego.txt registryfakes/fake_ecr_client.go > registryfakes/_fake_ecr_client.go && mv registryfakes/_fake_ecr_client.go registryfakes/fake_ecr_client.go"
type ecrClient interface {
	DescribeImages(ctx context.Context, input *ecr.DescribeImagesInput) (*ecr.DescribeImagesOutput, error)
}

type defaultECRClient struct {
	client *ecr.Client
}

func (d *defaultECRClient) DescribeImages(
	ctx context.Context, input *ecr.DescribeImagesInput,
) (*ecr.DescribeImagesOutput, error) {
	return d.client.DescribeImages(ctx, input)
}

// ECR checks images in an Amazon Elastic Container Registry.
type ECR struct {
	client     ecrClient
	registryID string
}

// NewECR creates a new ECR checker using the default AWS credential chain.
func NewECR(ctx context.Context, opts *Options) (*ECR, error) {
	loadOptions := []func(*config.LoadOptions) error{}
	if opts.AWSRegion != "" {
		loadOptions = append(loadOptions, config.WithRegion(opts.AWSRegion))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOptions...)
	if err != nil {
		return nil, fmt.Errorf("load AWS configuration: %w", err)
	}

	return &ECR{
		client:     &defaultECRClient{client: ecr.NewFromConfig(cfg)},
		registryID: opts.RegistryID,
	}, nil
}

// ImageExists returns true if the ECR repository contains the tag.
func (e *ECR) ImageExists(ctx context.Context, repository, tag string) (bool, error) {
	if err := validateImage(repository, tag); err != nil {
		return false, err
	}

	input := &ecr.DescribeImagesInput{
		RepositoryName: aws.String(repository),
		ImageIds:       []types.ImageIdentifier{{ImageTag: aws.String(tag)}},
	}
	if e.registryID != "" {
		input.RegistryId = aws.String(e.registryID)
	}

	out, err := e.client.DescribeImages(ctx, input)
	if err != nil {
		if isECRNotFound(err) {
			logrus.Debugf("ECR has no image %s:%s: %v", repository, tag, err)
			return false, nil
		}
		return false, fmt.Errorf("describe image %s:%s: %w", repository, tag, err)
	}

	return len(out.ImageDetails) > 0, nil
}

// isECRNotFound returns true if the error indicates a missing image or
// repository, matching IsNotFound of the OCI backend.
func isECRNotFound(err error) bool {
	var (
		imageNotFound      *types.ImageNotFoundException
		repositoryNotFound *types.RepositoryNotFoundException
	)
	return errors.As(err, &imageNotFound) || errors.As(err, &repositoryNotFound)
}

// Package awsclient loads the AWS configuration shared by the Route 53
// and EC2 clients and converts AWS API errors to provider errors.
package awsclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/smithy-go"
	ddnserrors "github.com/ykanggit/goDaddy-API/internal/provider/errors"
)

type Settings struct {
	Profile         string
	AccessKeyID     string
	SecretAccessKey string
	Region          string
}

// LoadConfig loads the AWS configuration using static credentials if
// they are set, and the shared configuration files otherwise.
func LoadConfig(ctx context.Context, settings Settings, client *http.Client) (
	cfg aws.Config, err error) {
	options := []func(*config.LoadOptions) error{
		config.WithRegion(settings.Region),
		config.WithHTTPClient(client),
	}

	switch {
	case settings.AccessKeyID != "" && settings.SecretAccessKey != "":
		provider := credentials.NewStaticCredentialsProvider(
			settings.AccessKeyID, settings.SecretAccessKey, "")
		options = append(options, config.WithCredentialsProvider(provider))
	case settings.Profile != "":
		options = append(options, config.WithSharedConfigProfile(settings.Profile))
	}

	cfg, err = config.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return cfg, fmt.Errorf("loading AWS configuration: %w", err)
	}
	return cfg, nil
}

// WrapError converts an error returned by an AWS SDK client into
// a *errors.ProviderError if the API answered, and into a network
// error otherwise.
func WrapError(err error) error {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %w", ddnserrors.ErrNetwork, err)
	}

	providerErr := &ddnserrors.ProviderError{
		Code:    apiErr.ErrorCode(),
		Message: apiErr.ErrorMessage(),
	}
	var responseErr *awshttp.ResponseError
	if errors.As(err, &responseErr) {
		providerErr.StatusCode = responseErr.HTTPStatusCode()
	}
	return providerErr
}

// Package awsenv turns the resolved infrastructure configuration into an AWS
// SDK configuration, so that clients created by provisioning code target the
// same region as the resources they name.
package awsenv

import (
	"context"

	"github.com/animalet/infraenv/pkg/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Options tunes how the AWS SDK configuration is loaded. The zero value uses
// the SDK default credential chain and shared configuration.
type Options struct {
	Endpoint        string // Optional: for LocalStack or custom endpoints
	AccessKeyID     string
	SecretAccessKey string
	Profile         string
}

// Validate checks that static credentials are either complete or absent.
func (o Options) Validate() error {
	if (o.AccessKeyID == "") != (o.SecretAccessKey == "") {
		return errors.New("access_key_id and secret_access_key must be set together")
	}
	return nil
}

// Load builds an aws.Config for cfg. When AWS_REGION resolved empty the
// region is left to the SDK resolution chain (environment, shared profile).
func Load(ctx context.Context, cfg config.Config, opts Options) (aws.Config, error) {
	if err := opts.Validate(); err != nil {
		return aws.Config{}, errors.Wrap(err, "invalid AWS options")
	}

	var configOpts []func(*awsconfig.LoadOptions) error
	if cfg.AWSRegion() != "" {
		configOpts = append(configOpts, awsconfig.WithRegion(cfg.AWSRegion()))
	}
	if opts.Endpoint != "" {
		configOpts = append(configOpts, awsconfig.WithBaseEndpoint(opts.Endpoint))
	}
	if opts.Profile != "" {
		configOpts = append(configOpts, awsconfig.WithSharedConfigProfile(opts.Profile))
	}
	// Without static keys the default chain applies (env vars, IAM role, SSO)
	if opts.AccessKeyID != "" {
		configOpts = append(configOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, configOpts...)
	if err != nil {
		return aws.Config{}, errors.Wrapf(err, "failed to load AWS configuration for %s", cfg.Prefix())
	}

	log.Debug().
		Str("prefix", cfg.Prefix()).
		Str("region", awsCfg.Region).
		Str("account_id", cfg.AWSAccountID()).
		Msg("Loaded AWS configuration")
	return awsCfg, nil
}

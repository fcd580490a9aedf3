// Package config exposes the infrastructure identifiers shared by every
// provisioned resource: application id, deployment environment, AWS region,
// AWS account id, VPC id, image tag and the derived resource-name prefix.
//
// Values come from the process environment. Absent or empty variables fall
// back to documented defaults and nothing is ever rejected. The process-wide
// values are resolved once, on first use, and never change afterwards:
//
//	bucket := config.Prefix() + "-assets" // "demo-dev-assets" with no overrides
//
// The package performs no I/O besides that single environment read, does not
// log and has no error conditions. Callers needing stricter rules, such as a
// mandatory AWS_REGION in production, check the values themselves.
package config

import "sync"

// Config is a resolved, immutable set of configuration values.
// Obtain one with Load or Current.
type Config struct {
	applicationID string
	environment   string
	awsRegion     string
	awsAccountID  string
	awsVPCID      string
	imageTag      string
	prefix        string
}

// Load resolves every recognized key against src and derives PREFIX from the
// resolved application id and environment. A nil src yields all defaults.
func Load(src Source) Config {
	cfg := Config{
		applicationID: resolve(src, KeyApplicationID),
		environment:   resolve(src, KeyEnvironment),
		awsRegion:     resolve(src, KeyAWSRegion),
		awsAccountID:  resolve(src, KeyAWSAccountID),
		awsVPCID:      resolve(src, KeyAWSVPCID),
		imageTag:      resolve(src, KeyImageTag),
	}
	cfg.prefix = cfg.applicationID + prefixSeparator + cfg.environment
	return cfg
}

var current = sync.OnceValue(func() Config {
	return Load(EnvSource{})
})

// Current returns the process-wide configuration. The environment is read on
// the first call only; later changes to it are not observed.
func Current() Config {
	return current()
}

func (c Config) ApplicationID() string { return c.applicationID }
func (c Config) Environment() string   { return c.environment }
func (c Config) AWSRegion() string     { return c.awsRegion }
func (c Config) AWSAccountID() string  { return c.awsAccountID }
func (c Config) AWSVPCID() string      { return c.awsVPCID }
func (c Config) ImageTag() string      { return c.imageTag }

// Prefix is APPLICATION_ID and ENVIRONMENT joined by a hyphen.
func (c Config) Prefix() string { return c.prefix }

// Get returns the value published under key, PREFIX included. Unknown keys
// yield the empty string.
func (c Config) Get(key Key) string {
	switch key {
	case KeyApplicationID:
		return c.applicationID
	case KeyEnvironment:
		return c.environment
	case KeyAWSRegion:
		return c.awsRegion
	case KeyAWSAccountID:
		return c.awsAccountID
	case KeyAWSVPCID:
		return c.awsVPCID
	case KeyImageTag:
		return c.imageTag
	case KeyPrefix:
		return c.prefix
	default:
		return ""
	}
}

// Values returns all seven published names and their values in a new map.
func (c Config) Values() map[string]string {
	out := make(map[string]string, len(recognized)+1)
	for _, k := range Names() {
		out[string(k)] = c.Get(k)
	}
	return out
}

// ApplicationID returns the process-wide APPLICATION_ID.
func ApplicationID() string { return Current().applicationID }

// Environment returns the process-wide ENVIRONMENT.
func Environment() string { return Current().environment }

// AWSRegion returns the process-wide AWS_REGION.
func AWSRegion() string { return Current().awsRegion }

// AWSAccountID returns the process-wide AWS_ACCOUNT_ID.
func AWSAccountID() string { return Current().awsAccountID }

// AWSVPCID returns the process-wide AWS_VPC_ID.
func AWSVPCID() string { return Current().awsVPCID }

// ImageTag returns the process-wide IMAGE_TAG.
func ImageTag() string { return Current().imageTag }

// Prefix returns the process-wide PREFIX.
func Prefix() string { return Current().prefix }

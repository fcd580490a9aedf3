package config

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws/arn"
)

const (
	partition    = "aws"
	ecrHostShape = ".dkr.ecr."
	ecrDomain    = ".amazonaws.com/"
)

// ResourceName prefixes parts with PREFIX, skipping empty parts:
//
//	cfg.ResourceName("assets")          // "demo-dev-assets"
//	cfg.ResourceName("api", "", "logs") // "demo-dev-api-logs"
func (c Config) ResourceName(parts ...string) string {
	var b strings.Builder
	b.WriteString(c.prefix)
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(prefixSeparator)
		b.WriteString(p)
	}
	return b.String()
}

// ARN builds an ARN in the resolved account and region. Services whose ARNs
// omit the region or account (S3 buckets, IAM) should build their own.
func (c Config) ARN(service, resource string) arn.ARN {
	return arn.ARN{
		Partition: partition,
		Service:   service,
		Region:    c.awsRegion,
		AccountID: c.awsAccountID,
		Resource:  resource,
	}
}

// ImageURI returns the ECR reference of repository in the resolved account
// and region, tagged with IMAGE_TAG when one is set.
func (c Config) ImageURI(repository string) string {
	uri := c.awsAccountID + ecrHostShape + c.awsRegion + ecrDomain + repository
	if c.imageTag != "" {
		uri += ":" + c.imageTag
	}
	return uri
}

// Tags returns the tags every resource carries. ImageTag is present only
// when IMAGE_TAG is set.
func (c Config) Tags() map[string]string {
	tags := map[string]string{
		"Application": c.applicationID,
		"Environment": c.environment,
	}
	if c.imageTag != "" {
		tags["ImageTag"] = c.imageTag
	}
	return tags
}

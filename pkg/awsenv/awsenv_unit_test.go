//go:build unit

package awsenv_test

import (
	"context"
	"os"
	"path/filepath"

	"github.com/animalet/infraenv/pkg/awsenv"
	"github.com/animalet/infraenv/pkg/config"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func setEnv(key, value string) {
	old, had := os.LookupEnv(key)
	Expect(os.Setenv(key, value)).To(Succeed())
	DeferCleanup(func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

var _ = Describe("Options", func() {
	It("should accept empty options", func() {
		Expect(awsenv.Options{}.Validate()).To(Succeed())
	})

	It("should accept complete static credentials", func() {
		opts := awsenv.Options{AccessKeyID: "AKID", SecretAccessKey: "secret"}
		Expect(opts.Validate()).To(Succeed())
	})

	It("should reject an access key without a secret", func() {
		err := awsenv.Options{AccessKeyID: "AKID"}.Validate()
		Expect(err).To(MatchError(ContainSubstring("must be set together")))
	})

	It("should reject a secret without an access key", func() {
		Expect(awsenv.Options{SecretAccessKey: "secret"}.Validate()).NotTo(Succeed())
	})
})

var _ = Describe("Load", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
		dir := GinkgoT().TempDir()
		// Keep the developer's shared configuration out of the way
		setEnv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
		setEnv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
		setEnv("AWS_PROFILE", "")
	})

	It("should use the resolved region", func() {
		cfg := config.Load(config.MapSource{"AWS_REGION": "eu-west-1"})

		awsCfg, err := awsenv.Load(ctx, cfg, awsenv.Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(awsCfg.Region).To(Equal("eu-west-1"))
	})

	It("should fall back to the SDK region chain when the region is empty", func() {
		setEnv("AWS_REGION", "ap-south-1")

		awsCfg, err := awsenv.Load(ctx, config.Load(config.MapSource{}), awsenv.Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(awsCfg.Region).To(Equal("ap-south-1"))
	})

	It("should install static credentials", func() {
		cfg := config.Load(config.MapSource{"AWS_REGION": "us-east-1"})
		opts := awsenv.Options{AccessKeyID: "AKID", SecretAccessKey: "secret"}

		awsCfg, err := awsenv.Load(ctx, cfg, opts)
		Expect(err).NotTo(HaveOccurred())

		creds, err := awsCfg.Credentials.Retrieve(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(creds.AccessKeyID).To(Equal("AKID"))
		Expect(creds.SecretAccessKey).To(Equal("secret"))
	})

	It("should set a custom endpoint", func() {
		cfg := config.Load(config.MapSource{"AWS_REGION": "us-east-1"})

		awsCfg, err := awsenv.Load(ctx, cfg, awsenv.Options{Endpoint: "http://localhost:4566"})
		Expect(err).NotTo(HaveOccurred())
		Expect(awsCfg.BaseEndpoint).NotTo(BeNil())
		Expect(*awsCfg.BaseEndpoint).To(Equal("http://localhost:4566"))
	})

	It("should fail on invalid options", func() {
		_, err := awsenv.Load(ctx, config.Load(nil), awsenv.Options{AccessKeyID: "AKID"})
		Expect(err).To(MatchError(ContainSubstring("invalid AWS options")))
	})

	It("should fail on an unknown shared profile", func() {
		cfg := config.Load(config.MapSource{"AWS_REGION": "us-east-1"})

		_, err := awsenv.Load(ctx, cfg, awsenv.Options{Profile: "does-not-exist"})
		Expect(err).To(MatchError(ContainSubstring("failed to load AWS configuration for demo-dev")))
	})
})

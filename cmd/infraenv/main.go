package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/animalet/infraenv/pkg/awsenv"
	"github.com/animalet/infraenv/pkg/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Version information set during build
var (
	version = "dev"
)

const (
	exitSuccess = 0
	exitError   = 1
)

type options struct {
	format      string
	debug       bool
	showVersion bool
	showHelp    bool
	command     string
	args        []string
}

func main() {
	os.Exit(runWithArgs(os.Args[1:]))
}

func runWithArgs(args []string) int {
	opts, err := parseFlags(args)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage(os.Stderr)
		return exitError
	}

	if opts.showHelp {
		printUsage(os.Stdout)
		return exitSuccess
	}

	if opts.showVersion {
		_, _ = fmt.Fprintf(os.Stdout, "%s version %s\n", "infraenv", version)
		return exitSuccess
	}

	setupLogging(opts.debug)

	cfg := config.Current()
	if err := run(context.Background(), os.Stdout, cfg, opts); err != nil {
		log.Error().Err(err).Str("command", opts.command).Msg("Command failed")
		return exitError
	}
	return exitSuccess
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("infraenv", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	opts := &options{}
	fs.StringVar(&opts.format, "format", formatEnv, "Output format for show: env, json, yaml or toml")
	fs.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showHelp, "help", false, "Show this help message")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			opts.showHelp = true
			return opts, nil
		}
		return nil, err
	}

	opts.command = commandShow
	if rest := fs.Args(); len(rest) > 0 {
		opts.command = rest[0]
		opts.args = rest[1:]
	}
	return opts, nil
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprint(w, `Usage: infraenv [flags] [command] [args]

Prints the infrastructure configuration resolved from the environment
(APPLICATION_ID, ENVIRONMENT, AWS_REGION, AWS_ACCOUNT_ID, AWS_VPC_ID,
IMAGE_TAG) and names derived from it.

Flags:
  --format string   Output format for show: env, json, yaml or toml (default "env")
  --debug           Enable debug logging
  --version         Show version information
  --help, -h        Show this help message

Commands:
  show                        Print the resolved values and PREFIX (default)
  name <part>...              Print a resource name under PREFIX
  arn <service> <resource>    Print an ARN in the resolved account and region
  image <repository>          Print the ECR image reference tagged with IMAGE_TAG
  aws                         Print the region the AWS SDK resolves

More information: https://github.com/animalet/infraenv
`)
}

func setupLogging(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    false,
		TimeFormat: "2006-01-02 15:04:05",
	})
}

// loadAWS is replaced in tests to avoid touching the shared AWS configuration.
var loadAWS = func(ctx context.Context, cfg config.Config) (string, error) {
	awsCfg, err := awsenv.Load(ctx, cfg, awsenv.Options{})
	if err != nil {
		return "", err
	}
	return awsCfg.Region, nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/animalet/infraenv/pkg/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	commandShow  = "show"
	commandName  = "name"
	commandARN   = "arn"
	commandImage = "image"
	commandAWS   = "aws"
)

func run(ctx context.Context, w io.Writer, cfg config.Config, opts *options) error {
	log.Debug().
		Str("command", opts.command).
		Strs("args", opts.args).
		Str("prefix", cfg.Prefix()).
		Msg("Running command")

	switch opts.command {
	case commandShow:
		if len(opts.args) != 0 {
			return errors.Errorf("%s takes no arguments", commandShow)
		}
		return render(w, cfg, opts.format)
	case commandName:
		if len(opts.args) == 0 {
			return errors.Errorf("%s needs at least one part", commandName)
		}
		return writeLine(w, cfg.ResourceName(opts.args...))
	case commandARN:
		if len(opts.args) != 2 {
			return errors.Errorf("%s needs <service> <resource>", commandARN)
		}
		return writeLine(w, cfg.ARN(opts.args[0], opts.args[1]).String())
	case commandImage:
		if len(opts.args) != 1 {
			return errors.Errorf("%s needs <repository>", commandImage)
		}
		return writeLine(w, cfg.ImageURI(opts.args[0]))
	case commandAWS:
		region, err := loadAWS(ctx, cfg)
		if err != nil {
			return err
		}
		if region == "" {
			log.Warn().Msg("No AWS region resolved from AWS_REGION or the shared configuration")
		}
		return writeLine(w, region)
	default:
		return errors.Errorf("unknown command %q (expected one of %s)", opts.command,
			strings.Join([]string{commandShow, commandName, commandARN, commandImage, commandAWS}, ", "))
	}
}

func writeLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return errors.Wrap(err, "failed to write output")
}

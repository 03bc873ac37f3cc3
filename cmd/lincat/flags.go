// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/lvlin/internal/logger"
)

const (
	flagFormat    = "format"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagConfig    = "config"
	flagOp        = "op"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var errUsage = errors.New("lincat: invalid usage")

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagFormat,
			Aliases: []string{"f"},
			Usage:   "output format (text, json, yaml)",
			Value:   formatText,
		},
		&cli.StringFlag{
			Name:  flagLogLevel,
			Usage: "log level (debug, info, warn, error)",
			Value: "warn",
		},
		&cli.StringFlag{
			Name:  flagLogFormat,
			Usage: "log format (text, json)",
			Value: formatText,
		},
		&cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			Usage:   "path to a YAML config file (default: <user config dir>/lvlin/lincat.yaml)",
		},
	}
}

// settings is the resolved global configuration handed to subcommands.
type settings struct {
	format    string
	logLevel  string
	logFormat string
	ops       []string
}

type settingsKey struct{}

func settingsFrom(ctx context.Context) settings {
	if s, ok := ctx.Value(settingsKey{}).(settings); ok {
		return s
	}

	return settings{format: formatText, logLevel: "warn", logFormat: formatText}
}

// setup resolves flags over the config file and installs the logger.
func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := LoadConfig(cmd.String(flagConfig))
	if err != nil {
		return ctx, err
	}
	s := settings{
		format:    cmd.String(flagFormat),
		logLevel:  cmd.String(flagLogLevel),
		logFormat: cmd.String(flagLogFormat),
	}
	applyConfig(cmd, cfg, &s)

	s.format = strings.ToLower(strings.TrimSpace(s.format))
	switch s.format {
	case formatText, formatJSON, formatYAML:
	default:
		return ctx, errors.Wrapf(errUsage, "unknown format %q", s.format)
	}

	log := newLogger(cmd.Root().ErrWriter, s)
	log.Debug("lincat configured", "format", s.format, "config_ops", len(s.ops))
	ctx = logger.WithContext(ctx, log)

	return context.WithValue(ctx, settingsKey{}, s), nil
}

func newLogger(w io.Writer, s settings) logger.Logger {
	level := logger.ParseLevel(s.logLevel)
	if strings.EqualFold(s.logFormat, formatJSON) {
		return logger.JSON(w, level)
	}

	return logger.Text(w, level)
}

// argN returns the n-th positional argument or a usage error naming it.
func argN(cmd *cli.Command, n int, name string) (string, error) {
	if cmd.Args().Len() <= n {
		return "", errors.Wrapf(errUsage, "%s: missing %s", cmd.Name, name)
	}

	return cmd.Args().Get(n), nil
}

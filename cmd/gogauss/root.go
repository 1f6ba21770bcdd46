/*
 * root.go, part of gogauss.
 *
 *
 * Copyright 2026 Raul Mera <rmeraa{at}academicosdotutadotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

// globals are the flags shared by all the commands.
type globals struct {
	cfgFile string
	verbose bool
	jsonLog bool
	cfg     *Config
}

// setLogger replaces the default logger with one writing to w.
func setLogger(w io.Writer, verbose, json bool) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	var h slog.Handler = slog.NewTextHandler(w, opts)
	if json {
		h = slog.NewJSONHandler(w, opts)
	}
	slog.SetDefault(slog.New(h))
}

func newRootCommand() *cobra.Command {
	g := new(globals)
	cmd := &cobra.Command{
		Use:   "gogauss",
		Short: "Run Gaussian calculations and collect their results",
		Long: `gogauss prepares and runs Gaussian calculations, and parses the
transcript and formatted checkpoint they leave into a single flat record.

Settings for the Gaussian installation are read from a TOML or YAML file
given with --config, named in $GOGAUSS_CONFIG, or found in the current
directory as gogauss.toml or gogauss.yaml.`,
		Version:      version,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&g.cfgFile, "config", "", "config file (TOML or YAML)")
	cmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&g.jsonLog, "json-log", false, "log in JSON format")
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		setLogger(cmd.ErrOrStderr(), g.verbose, g.jsonLog)
		cfg, err := LoadConfig(g.cfgFile)
		if err != nil {
			return err
		}
		g.cfg = cfg
		return nil
	}

	cmd.AddCommand(newRunCommand(g))
	cmd.AddCommand(newParseCommand(g))
	cmd.AddCommand(newFchkCommand(g))
	cmd.AddCommand(newPlotCommand(g))

	return cmd
}

func execute(ctx context.Context) error {
	return newRootCommand().ExecuteContext(ctx)
}

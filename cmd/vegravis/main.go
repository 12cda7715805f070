// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command vegravis checks, renders, watches and highlights vector
// drawing programs.
package main

import (
	"context"
	"os"
	"os/signal"

	"cogentcore.org/vegravis/base/errors"
	"cogentcore.org/vegravis/cmd/vegravis/cmd"
	"cogentcore.org/vegravis/config"
	"cogentcore.org/vegravis/logx"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func main() {
	logx.SetDefaultLogger()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds the state shared by all commands.
type app struct {
	configPath string
	logLevel   string
	settings   *config.Settings
	errOut     *termenv.Output
}

func newRootCmd() *cobra.Command {
	a := &app{errOut: termenv.NewOutput(os.Stderr)}
	root := &cobra.Command{
		Use:           "vegravis",
		Short:         "Vector graphics visualizer for a small drawing language",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return a.init()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "settings file (.toml or .yaml), default "+config.DefaultPath)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(a.checkCmd(), a.renderCmd(), a.watchCmd(), a.highlightCmd(), a.commandsCmd(), a.samplesCmd(), a.stylesCmd(), a.configCmd())
	return root
}

func (a *app) init() error {
	s, err := config.Open(a.configPath)
	if err != nil {
		return errors.Log(err)
	}
	a.settings = s
	lv := s.LogLevel
	if a.logLevel != "" {
		lv = a.logLevel
	}
	l, err := logx.LevelFromString(lv)
	if err != nil {
		return errors.Log(err)
	}
	logx.UserLevel.Set(l)
	return nil
}

// report prints a formatted error to stderr.
func (a *app) report(path string, err error) {
	if err != nil {
		a.errOut.WriteString(cmd.FormatError(a.errOut, path, err) + "\n")
	}
}

// fail reports the error and returns it, so that the process exits with 1.
func (a *app) fail(path string, err error) error {
	a.report(path, err)
	return err
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Parse drawing programs and report errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			var errs []error
			for _, path := range args {
				if err := cmd.Check(c.OutOrStdout(), a.settings, path); err != nil {
					errs = append(errs, a.fail(path, err))
				}
			}
			return errors.Join(errs...)
		},
	}
}

func (a *app) newJob(c *cobra.Command, path string) (*cmd.Job, error) {
	out, err := c.Flags().GetString("output")
	if err != nil {
		return nil, err
	}
	progress, err := c.Flags().GetInt("progress")
	if err != nil {
		return nil, err
	}
	s := a.settings
	if c.Flags().Changed("width") || c.Flags().Changed("height") {
		s = s.Clone()
		if c.Flags().Changed("width") {
			s.Width, _ = c.Flags().GetInt("width")
		}
		if c.Flags().Changed("height") {
			s.Height, _ = c.Flags().GetInt("height")
		}
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	return &cmd.Job{Settings: s, Source: path, Output: out, Progress: progress}, nil
}

func addJobFlags(c *cobra.Command) {
	c.Flags().StringP("output", "o", "out.svg", "output image file, .svg or .png")
	c.Flags().IntP("progress", "p", -1, "only draw the first N commands")
	c.Flags().Int("width", 0, "image width in pixels, overriding the settings")
	c.Flags().Int("height", 0, "image height in pixels, overriding the settings")
}

func (a *app) renderCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a drawing program to an SVG or PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			j, err := a.newJob(c, args[0])
			if err != nil {
				return err
			}
			return a.fail(args[0], j.Run())
		},
	}
	addJobFlags(c)
	return c
}

func (a *app) watchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "watch FILE",
		Short: "Render a drawing program again every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			j, err := a.newJob(c, args[0])
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return cmd.Watch(ctx, j, func(err error) { a.report(args[0], err) })
		},
	}
	addJobFlags(c)
	return c
}

func (a *app) highlightCmd() *cobra.Command {
	var html bool
	c := &cobra.Command{
		Use:   "highlight FILE",
		Short: "Print a drawing program with syntax highlighting",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			format := cmd.Terminal
			switch {
			case html:
				format = cmd.HTML
			case c.OutOrStdout() == os.Stdout && !isatty.IsTerminal(os.Stdout.Fd()):
				format = cmd.Plain
			}
			return a.fail(args[0], cmd.Highlight(c.OutOrStdout(), a.settings, args[0], format))
		},
	}
	c.Flags().BoolVar(&html, "html", false, "write a standalone HTML page")
	return c
}

func (a *app) commandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the drawing commands and their number of arguments",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.Commands(c.OutOrStdout())
		},
	}
}

func (a *app) samplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "samples [NAME]",
		Short: "List the sample programs, or print one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return a.fail(name, cmd.Samples(c.OutOrStdout(), name))
		},
	}
}

func (a *app) stylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the syntax highlighting styles",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.Styles(c.OutOrStdout())
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	var yml bool
	var save string
	c := &cobra.Command{
		Use:   "config",
		Short: "Print the current settings, or save them to a file",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if save != "" {
				return a.fail(save, a.settings.Save(save))
			}
			b, err := a.settings.Encode(yml)
			if err != nil {
				return err
			}
			_, err = c.OutOrStdout().Write(b)
			return err
		},
	}
	c.Flags().BoolVar(&yml, "yaml", false, "print as YAML instead of TOML")
	c.Flags().StringVar(&save, "save", "", "write the settings to this file (.toml or .yaml) instead of printing them")
	return c
}

// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cybrota/bbst/balanced"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// appEnv is what every command needs: settings with flags applied, a logger
// and the session built from both.
type appEnv struct {
	config  *Config
	kind    balanced.Kind
	logger  zerolog.Logger
	closer  io.Closer
	styles  *Styles
	session *Session
}

func (env *appEnv) Close() error {
	return env.closer.Close()
}

// newAppEnv loads ~/.bbst.yaml and lets explicitly set flags override it.
func newAppEnv(cmd *cobra.Command, interactive bool) (*appEnv, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		config.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("bloom") {
		config.Search.BloomPrefilter, _ = flags.GetBool("bloom")
	}
	if flags.Changed("size") {
		config.Bench.Size, _ = flags.GetInt("size")
	}

	kind := config.Kind()
	if flags.Changed("engine") {
		name, _ := flags.GetString("engine")
		if kind, err = balanced.ParseKind(name); err != nil {
			return nil, err
		}
	}

	logger, closer, err := newLogger(config.Log, interactive)
	if err != nil {
		return nil, err
	}

	session, err := NewSession(kind, SessionOptionsFromConfig(config, logger))
	if err != nil {
		closer.Close()
		return nil, err
	}

	logger.Debug().Stringer("engine", kind).Bool("bloom", config.Search.BloomPrefilter).Msg("session ready")
	return &appEnv{
		config:  config,
		kind:    kind,
		logger:  logger,
		closer:  closer,
		styles:  NewStyles(),
		session: session,
	}, nil
}

func runInteractiveCmd(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv(cmd, true)
	if err != nil {
		return err
	}
	defer env.Close()
	return runInteractive(env.session, env.logger)
}

func main() {
	asciiLogo := `
██████╗ ██████╗ ███████╗████████╗
██╔══██╗██╔══██╗██╔════╝╚══██╔══╝
██████╔╝██████╔╝███████╗   ██║
██╔══██╗██╔══██╗╚════██║   ██║
██████╔╝██████╔╝███████║   ██║
╚═════╝ ╚═════╝ ╚══════╝   ╚═╝
AVL and Red-Black trees in your terminal [Version: %s]

Copyright @ Naren Yellavula
`
	asciiLogo = fmt.Sprintf(asciiLogo, version)

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the interactive tree menu",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run opens an interactive session on an empty tree`),
		Args:  cobra.NoArgs,
		RunE:  runInteractiveCmd,
	}

	var cmdScript = &cobra.Command{
		Use:   "script FILE",
		Short: "Runs session commands from a file",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Script executes one session command per line. Use - to read standard input."),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv(cmd, false)
			if err != nil {
				return err
			}
			defer env.Close()

			in := os.Stdin
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open script: %w", err)
				}
				defer f.Close()
				in = f
			}
			return runScript(in, cmd.OutOrStdout(), env.session, env.styles)
		},
	}

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Plays a short scripted walk-through",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv(cmd, false)
			if err != nil {
				return err
			}
			defer env.Close()
			return runDemo(cmd.OutOrStdout(), env.session, env.styles)
		},
	}

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Compares both engines on ascending inserts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv(cmd, false)
			if err != nil {
				return err
			}
			defer env.Close()
			env.logger.Info().Int("size", env.config.Bench.Size).Msg("benchmark started")
			return runBenchmark(cmd.OutOrStdout(), env.config.Bench.Size, true)
		},
	}
	cmdBench.Flags().Int("size", defaultConfig.Bench.Size, "number of keys inserted into each engine")

	var cmdChart = &cobra.Command{
		Use:   "chart",
		Short: "Plots tree height against the number of keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv(cmd, true)
			if err != nil {
				return err
			}
			defer env.Close()
			return runChart(env.config.Bench.Size)
		},
	}
	cmdChart.Flags().Int("size", defaultConfig.Bench.Size, "number of keys to plot")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show bbst configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Displays ~/.bbst.yaml, creating it with defaults when missing"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(cmd.OutOrStdout())
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print bbst usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print bbst version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "bbst",
		Version:       version,
		Long:          asciiLogo,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Default to run command when no subcommand is provided
		RunE: runInteractiveCmd,
	}
	rootCmd.PersistentFlags().StringP("engine", "e", "", "tree engine: avl | rb (default from settings)")
	rootCmd.PersistentFlags().String("log-level", "", "trace | debug | info | warn | error")
	rootCmd.PersistentFlags().Bool("bloom", false, "answer lookups of absent keys from a Bloom filter")

	rootCmd.AddCommand(cmdRun, cmdScript, cmdDemo, cmdBench, cmdChart, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, NewStyles().FormatError(err))
		os.Exit(1)
	}
}

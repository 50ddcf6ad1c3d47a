// Copyright 2025 go-highway Authors
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
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-ml/crosscheck"
	"github.com/ajroetker/go-ml/ml"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mlcheck",
		Short:         "Inspect and verify the go-ml vector backends",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newVersionCmd(), newInfoCmd(), newCrosscheckCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mlcheck %s (%s) backend=%s\n", version, commit, ml.Backend)
		},
	}
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the backend, dispatch level and CPU features",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			info := ml.Info()
			switch format {
			case "text":
				_, err := fmt.Fprintln(cmd.OutOrStdout(), info)
				return err
			case "yaml":
				return yaml.NewEncoder(cmd.OutOrStdout()).Encode(info)
			default:
				return fmt.Errorf("unknown format %q (want text or yaml)", format)
			}
		},
	}
	cmd.Flags().String("format", "text", "Output format: text or yaml")
	return cmd
}

func newCrosscheckCmd() *cobra.Command {
	def := crosscheck.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "crosscheck",
		Short: "Compare the scalar and simd results on random inputs",
		Long: `Runs randomized trials of every Vec4 and Mat4x4 operation on both
implementations. Component arithmetic must match exactly; dot and matrix
products must agree within --tolerance relative to the magnitude of their
terms. Exits non-zero on any mismatch.`,
		Args: cobra.NoArgs,
		RunE: runCrosscheck,
	}
	cmd.Flags().Int("trials", getEnvInt("MLCHECK_TRIALS", def.Trials), "Random trials per operation")
	cmd.Flags().Uint64("seed", getEnvUint("MLCHECK_SEED", def.Seed), "Random seed")
	cmd.Flags().Float64("tolerance", getEnvFloat("MLCHECK_TOLERANCE", def.Tolerance), "Relative tolerance for inexact operations")
	cmd.Flags().StringSlice("ops", nil, "Operations to run (default all)")
	cmd.Flags().String("config", "", "YAML config file; flags given explicitly override it")
	cmd.Flags().String("format", "text", "Output format: text or yaml")
	return cmd
}

func runCrosscheck(cmd *cobra.Command, args []string) error {
	cfg, err := crosscheckConfig(cmd)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "yaml" {
		return fmt.Errorf("unknown format %q (want text or yaml)", format)
	}

	report, err := crosscheck.Run(cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if format == "yaml" {
		b, err := report.YAML()
		if err != nil {
			return err
		}
		if _, err := out.Write(b); err != nil {
			return err
		}
	} else if err := report.WriteText(out); err != nil {
		return err
	}
	return report.Err()
}

// crosscheckConfig layers defaults, environment, the config file and
// explicit flags, in increasing precedence.
func crosscheckConfig(cmd *cobra.Command) (crosscheck.Config, error) {
	flags := cmd.Flags()
	cfg := crosscheck.DefaultConfig()
	cfg.Trials, _ = flags.GetInt("trials")
	cfg.Seed, _ = flags.GetUint64("seed")
	cfg.Tolerance, _ = flags.GetFloat64("tolerance")

	if path, _ := flags.GetString("config"); path != "" {
		var err error
		if cfg, err = crosscheck.DecodeConfigFile(path, cfg); err != nil {
			return crosscheck.Config{}, err
		}
		if flags.Changed("trials") {
			cfg.Trials, _ = flags.GetInt("trials")
		}
		if flags.Changed("seed") {
			cfg.Seed, _ = flags.GetUint64("seed")
		}
		if flags.Changed("tolerance") {
			cfg.Tolerance, _ = flags.GetFloat64("tolerance")
		}
	}
	if flags.Changed("ops") {
		cfg.Ops, _ = flags.GetStringSlice("ops")
	}
	return cfg, cfg.Validate()
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvUint(key string, defaultVal uint64) uint64 {
	if val := os.Getenv(key); val != "" {
		if u, err := strconv.ParseUint(val, 10, 64); err == nil {
			return u
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

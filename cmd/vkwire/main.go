// Copyright 2026 Blink Labs Software
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
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/blinklabs-io/vkwire"
	"github.com/blinklabs-io/vkwire/batch"
	"github.com/blinklabs-io/vkwire/tree"
)

type globalFlags struct {
	flagset     *pflag.FlagSet
	configFile  string
	format      string
	ignoredTags []string
	maxDepth    int
	unwrap      bool
	logLevel    string
	workers     int
}

func newGlobalFlags() *globalFlags {
	f := &globalFlags{
		flagset: pflag.NewFlagSet(os.Args[0], pflag.ExitOnError),
	}
	f.flagset.StringVarP(
		&f.configFile,
		"config",
		"c",
		"",
		"path to YAML config file",
	)
	f.flagset.StringVarP(
		&f.format,
		"format",
		"f",
		"",
		"input format (json, cbor, msgpack)",
	)
	f.flagset.StringSliceVar(
		&f.ignoredTags,
		"ignore",
		nil,
		"attachment types to drop silently (replaces the default list)",
	)
	f.flagset.IntVar(
		&f.maxDepth,
		"max-depth",
		0,
		"maximum nesting of reposts and parent stories",
	)
	f.flagset.BoolVar(
		&f.unwrap,
		"unwrap",
		false,
		"input is a full API reply with a response or error envelope",
	)
	f.flagset.StringVar(
		&f.logLevel,
		"log-level",
		"",
		"log level (debug, info, warn, error)",
	)
	f.flagset.IntVar(
		&f.workers,
		"workers",
		0,
		"number of inputs decoded in parallel",
	)
	return f
}

// apply overrides cfg with the flags that were set on the command line
func (f *globalFlags) apply(cfg *Config) {
	if f.flagset.Changed("format") {
		cfg.Format = f.format
	}
	if f.flagset.Changed("ignore") {
		cfg.IgnoredTags = f.ignoredTags
	}
	if f.flagset.Changed("max-depth") {
		cfg.MaxDepth = f.maxDepth
	}
	if f.flagset.Changed("unwrap") {
		cfg.Unwrap = f.unwrap
	}
	if f.flagset.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if f.flagset.Changed("workers") {
		cfg.Workers = f.workers
	}
}

func main() {
	f := newGlobalFlags()
	if err := f.flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	if f.flagset.NArg() < 1 {
		fmt.Printf("You must specify a subcommand (%s)\n", subcommandList())
		os.Exit(1)
	}
	cfg, err := LoadConfig(f.configFile)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	f.apply(cfg)
	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	decoder, err := newDecoder(cfg, logger)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	cmd, ok := subcommands[f.flagset.Arg(0)]
	if !ok {
		fmt.Printf("Unknown subcommand: %s\n", f.flagset.Arg(0))
		os.Exit(1)
	}
	inputs := f.flagset.Args()[1:]
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	items, err := decodeInputs(context.Background(), cfg, logger, inputs, func(data []byte) (any, error) {
		return cmd(decoder, data)
	})
	if err != nil {
		logger.Error("failed to read input", "error", err)
		os.Exit(1)
	}
	failed := false
	for _, item := range items {
		if item.Err != nil {
			logger.Error("failed to decode input", "input", item.Source, "error", item.Err)
			failed = true
			continue
		}
		if err := printResult(item.Result); err != nil {
			logger.Error("failed to print result", "input", item.Source, "error", err)
			os.Exit(1)
		}
	}
	if failed {
		os.Exit(1)
	}
}

// decodeInputs reads every input, then decodes them in parallel. Results
// keep the order of inputs.
func decodeInputs(
	ctx context.Context,
	cfg *Config,
	logger *slog.Logger,
	inputs []string,
	decode batch.DecodeFunc,
) ([]*batch.Item, error) {
	data := make([][]byte, 0, len(inputs))
	for _, input := range inputs {
		raw, err := readInput(input)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", input, err)
		}
		data = append(data, raw)
	}
	options := []batch.PoolOption{
		batch.WithLogger(logger),
	}
	if cfg.Workers > 0 {
		options = append(options, batch.WithWorkers(cfg.Workers))
	}
	pool := batch.NewPool(decode, options...)
	items := batch.NewItems(inputs, data)
	if err := pool.Run(ctx, items); err != nil {
		return nil, err
	}
	stats := pool.Stats()
	logger.Debug(
		"decoded inputs",
		"decoded", stats.Decoded,
		"failed", stats.Failed,
		"duration", stats.DecodeTime,
	)
	return items, nil
}

func newLogger(cfg *Config) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	return slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	), nil
}

func newDecoder(cfg *Config, logger *slog.Logger) (*vkwire.Decoder, error) {
	format, err := tree.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	options := []vkwire.DecoderOptionFunc{
		vkwire.WithFormat(format),
		vkwire.WithLogger(logger),
		vkwire.WithUnwrapResponse(cfg.Unwrap),
	}
	if cfg.IgnoredTags != nil {
		options = append(options, vkwire.WithIgnoredTags(cfg.IgnoredTags...))
	}
	if cfg.MaxDepth > 0 {
		options = append(options, vkwire.WithMaxDepth(cfg.MaxDepth))
	}
	return vkwire.NewDecoder(options...)
}

// printResult writes a decoded record as a YAML document. A raw tree is
// written as an indented dump since it has no exported fields.
func printResult(ret any) error {
	if n, ok := ret.(tree.Node); ok {
		fmt.Print(tree.Dump(n, ""))
		return nil
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(ret); err != nil {
		return err
	}
	return enc.Close()
}

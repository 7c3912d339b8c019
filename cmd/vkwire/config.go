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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const envPrefix = "VKWIRE_"

// Config holds the decoder settings. Values come from the config file, then
// the environment, then command line flags, each overriding the last.
type Config struct {
	Format      string   `yaml:"format"`
	IgnoredTags []string `yaml:"ignoredTags"`
	MaxDepth    int      `yaml:"maxDepth"`
	Unwrap      bool     `yaml:"unwrap"`
	LogLevel    string   `yaml:"logLevel"`
	// Workers is the number of inputs decoded in parallel; 0 scales with the CPU count
	Workers int `yaml:"workers"`
}

func defaultConfig() *Config {
	return &Config{
		Format:   "json",
		LogLevel: "info",
	}
}

// LoadConfig reads the optional YAML file at path and applies VKWIRE_*
// environment variables, including ones from a .env file in the working directory
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	// A missing .env file is not an error
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(envPrefix + "FORMAT"); ok {
		c.Format = v
	}
	if v, ok := os.LookupEnv(envPrefix + "IGNORED_TAGS"); ok {
		c.IgnoredTags = splitList(v)
	}
	if v, ok := os.LookupEnv(envPrefix + "MAX_DEPTH"); ok {
		depth, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sMAX_DEPTH: %w", envPrefix, err)
		}
		c.MaxDepth = depth
	}
	if v, ok := os.LookupEnv(envPrefix + "UNWRAP"); ok {
		unwrap, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sUNWRAP: %w", envPrefix, err)
		}
		c.Unwrap = unwrap
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(envPrefix + "WORKERS"); ok {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sWORKERS: %w", envPrefix, err)
		}
		c.Workers = workers
	}
	return nil
}

// Level maps LogLevel to a slog level
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func splitList(v string) []string {
	ret := []string{}
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			ret = append(ret, item)
		}
	}
	return ret
}

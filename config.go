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
	"path/filepath"

	"github.com/cybrota/bbst/balanced"
	"gopkg.in/yaml.v3"
)

const configFileName = ".bbst.yaml"

type TreeConfig struct {
	Engine string `yaml:"engine"`
}

type SearchConfig struct {
	BloomPrefilter bool    `yaml:"bloom_prefilter"`
	BloomCapacity  uint    `yaml:"bloom_capacity"`
	BloomFPRate    float64 `yaml:"bloom_fp_rate"`
}

type BenchConfig struct {
	Size int `yaml:"size"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type Config struct {
	Tree   TreeConfig   `yaml:"tree"`
	Search SearchConfig `yaml:"search"`
	Bench  BenchConfig  `yaml:"bench"`
	Log    LogConfig    `yaml:"log"`
}

var defaultConfig = Config{
	Tree: TreeConfig{
		Engine: balanced.KindAVL.String(),
	},
	Search: SearchConfig{
		BloomPrefilter: false,
		BloomCapacity:  balanced.DefaultFilterCapacity,
		BloomFPRate:    balanced.DefaultFilterFPRate,
	},
	Bench: BenchConfig{
		Size: 200,
	},
	Log: LogConfig{
		Level: "info",
	},
}

// LoadConfig reads ~/.bbst.yaml. Any problem with the file falls back to the
// default settings.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := defaultConfig
		return &config, nil
	}
	return loadConfigFrom(configPath), nil
}

// loadConfigFrom decodes path over the defaults, so keys missing from the
// file keep their default values.
func loadConfigFrom(path string) *Config {
	config := defaultConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return &config
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		config = defaultConfig
	}
	return &config
}

// Kind returns the engine named in the settings, AVL when the name is unknown.
func (c *Config) Kind() balanced.Kind {
	kind, err := balanced.ParseKind(c.Tree.Engine)
	if err != nil {
		return balanced.KindAVL
	}
	return kind
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeConfigFile(path string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return writeConfigFile(configPath, &defaultConfig)
}

func displaySettings(w io.Writer) error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			return err
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config := loadConfigFrom(configPath)
	styles := NewStyles()

	fmt.Fprintf(w, "🔧 bbst Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s\n\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n\n", configPath)
	}

	setting := func(name string, value any, desc string) {
		fmt.Fprintf(w, "  • %s: %v\n    %s\n", styles.HelpKey.Render(name), value, styles.HelpDesc.Render(desc))
	}

	fmt.Fprintln(w, styles.Title.Render("🌳 Tree"))
	setting("engine", config.Tree.Engine, "Engine used when --engine is not given (avl | rb)")

	fmt.Fprintln(w, styles.Title.Render("🔍 Search"))
	setting("bloom_prefilter", config.Search.BloomPrefilter, "Answer most misses from a Bloom filter before walking the tree")
	setting("bloom_capacity", config.Search.BloomCapacity, "Expected number of keys the filter is sized for")
	setting("bloom_fp_rate", config.Search.BloomFPRate, "Target false positive rate of the filter")

	fmt.Fprintln(w, styles.Title.Render("⏱  Bench"))
	setting("size", config.Bench.Size, "Keys inserted by the bench and chart commands")

	fmt.Fprintln(w, styles.Title.Render("📜 Log"))
	setting("level", config.Log.Level, "trace | debug | info | warn | error")
	setting("file", config.Log.File, "Log destination while the interactive UI owns the terminal")

	fmt.Fprintf(w, "\n💡 Edit %s to change these defaults.\n", configPath)
	return nil
}

// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

// hwprobe prints the hardware inventory of the host as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/hwprobe/hwprobe"
	"github.com/hwprobe/hwprobe/internal/log"
)

type config struct {
	// LogLevel is a seelog level name (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
	// Modules restricts the run to the named collectors; empty means all
	Modules []string `yaml:"modules"`
}

func loadConfig(path string) (config, error) {
	cfg := config{LogLevel: "info"}
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, err
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}

func selectCollectors(all []hwprobe.Collector, names []string) ([]hwprobe.Collector, error) {
	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]hwprobe.Collector, len(all))
	for _, collector := range all {
		byName[collector.Name()] = collector
	}

	selected := make([]hwprobe.Collector, 0, len(names))
	for _, name := range names {
		collector, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown module %q", name)
		}
		selected = append(selected, collector)
	}
	return selected, nil
}

func run() error {
	var (
		configPath string
		logLevel   string
		modules    []string
		pretty     bool
	)
	flag.StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	flag.StringVarP(&logLevel, "log-level", "l", "", "log level (debug, info, warn, error)")
	flag.StringSliceVarP(&modules, "modules", "m", nil, "comma-separated modules to collect (default: all)")
	flag.BoolVar(&pretty, "pretty", false, "indent the JSON output")
	flag.Parse()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if len(modules) != 0 {
		cfg.Modules = modules
	}

	if err := log.SetupDefaultLogger(cfg.LogLevel); err != nil {
		return err
	}
	defer log.Flush()

	collectors, err := selectCollectors(hwprobe.DefaultCollectors(), cfg.Modules)
	if err != nil {
		return err
	}

	report := hwprobe.CollectAll(collectors)

	encoder := json.NewEncoder(os.Stdout)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(report)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hwprobe: %v\n", err)
		os.Exit(1)
	}
}

// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

// Package hwprobe inventories the host hardware: each sub-package collects
// one concern (cpu, memory, displays, ...) and this package runs them all
// and folds the per-field outcomes into one report.
package hwprobe

import (
	"sort"

	"github.com/hwprobe/hwprobe/audio"
	"github.com/hwprobe/hwprobe/cpu"
	"github.com/hwprobe/hwprobe/display"
	"github.com/hwprobe/hwprobe/filesystem"
	"github.com/hwprobe/hwprobe/gpu"
	"github.com/hwprobe/hwprobe/internal/log"
	"github.com/hwprobe/hwprobe/memory"
	"github.com/hwprobe/hwprobe/network"
	"github.com/hwprobe/hwprobe/platform"
)

// Collector is one inventory module: a name and a collection which returns
// the collected value, the per-field warnings, and the error which prevented
// collecting anything at all.
type Collector interface {
	Name() string
	Collect() (interface{}, []string, error)
}

// Status summarizes how much of a module could be collected.
type Status string

// A module collection is a success when every field was collected, partial
// when some fields are missing, and failed when nothing could be collected.
const (
	StatusSuccess Status = "success"
	StatusPartial Status = "partial"
	StatusFailed  Status = "failed"
)

// ModuleResult is the immutable outcome of one collector run.
type ModuleResult struct {
	// Value is the collected data, nil when the module failed
	Value interface{} `json:"value,omitempty"`
	// Status tells whether the module collected everything it knows about
	Status Status `json:"status"`
	// Messages carries the reasons fields are missing
	Messages []string `json:"messages,omitempty"`
}

// Fold builds the result for one collector outcome.
func Fold(value interface{}, warns []string, err error) ModuleResult {
	if err != nil {
		return ModuleResult{Status: StatusFailed, Messages: []string{err.Error()}}
	}
	result := ModuleResult{Value: value, Status: StatusSuccess, Messages: warns}
	if len(warns) != 0 {
		result.Status = StatusPartial
	}
	return result
}

// DefaultCollectors returns every inventory module, ordered by name.
func DefaultCollectors() []Collector {
	collectors := []Collector{
		new(audio.Audio),
		new(cpu.Cpu),
		new(display.Display),
		new(filesystem.FileSystem),
		new(gpu.Gpu),
		new(memory.Memory),
		new(network.Network),
		new(platform.Platform),
	}
	sort.Slice(collectors, func(i, j int) bool {
		return collectors[i].Name() < collectors[j].Name()
	})
	return collectors
}

// CollectAll runs the given collectors and returns one result per module. A
// failing module never aborts the run; it simply reports as failed.
func CollectAll(collectors []Collector) map[string]ModuleResult {
	report := make(map[string]ModuleResult, len(collectors))
	for _, collector := range collectors {
		value, warns, err := collector.Collect()
		if err != nil {
			log.Warnf("hwprobe: %s collection failed: %v", collector.Name(), err)
		}
		report[collector.Name()] = Fold(value, warns, err)
	}
	return report
}

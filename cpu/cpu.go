// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

// Package cpu regroups collecting information about the CPU
package cpu

import "github.com/hwprobe/hwprobe/utils"

// Info holds metadata about the host CPU
type Info struct {
	// VendorID is the CPU vendor, eg. GenuineIntel
	VendorID utils.Value[string] `json:"vendor_id"`
	// ModelName is the commercial model name
	ModelName utils.Value[string] `json:"model_name"`
	// Family is the CPU family identifier
	Family utils.Value[string] `json:"family"`
	// Model is the CPU model identifier
	Model utils.Value[string] `json:"model"`
	// Stepping is the CPU stepping
	Stepping utils.Value[string] `json:"stepping"`
	// CPUCores is the number of physical cores
	CPUCores utils.Value[uint64] `json:"cpu_cores"`
	// CPULogicalProcessors is the number of logical processors
	CPULogicalProcessors utils.Value[uint64] `json:"cpu_logical_processors"`
	// Mhz is the base frequency in MHz
	Mhz utils.Value[float64] `json:"mhz"`
}

// CollectInfo collects the CPU information for the current platform.
func CollectInfo() *Info {
	return collectInfo()
}

// AsJSON renders the collected fields, with the errors of the fields which
// could not be collected.
func (info *Info) AsJSON() (interface{}, []string, error) {
	return utils.AsJSON(info, false)
}

// Cpu is the inventory collector for this package.
//
//nolint:revive
type Cpu struct{}

// Name returns the name of the collector
func (*Cpu) Name() string { return "cpu" }

// Collect collects the CPU information
func (*Cpu) Collect() (interface{}, []string, error) {
	return CollectInfo().AsJSON()
}

// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

// Package memory regroups collecting information about the memory
package memory

import "github.com/hwprobe/hwprobe/utils"

// Info holds memory metadata about the host
type Info struct {
	// TotalBytes is the total physical memory
	TotalBytes utils.Value[uint64] `json:"total_bytes"`
	// SwapTotalBytes is the size of the swap space, or the page file on
	// Windows
	SwapTotalBytes utils.Value[uint64] `json:"swap_total_bytes"`
}

// CollectInfo collects the memory information for the current platform.
func CollectInfo() *Info {
	return collectInfo()
}

// AsJSON renders the collected fields, with the errors of the fields which
// could not be collected.
func (info *Info) AsJSON() (interface{}, []string, error) {
	return utils.AsJSON(info, false)
}

// Memory is the inventory collector for this package.
type Memory struct{}

// Name returns the name of the collector
func (*Memory) Name() string { return "memory" }

// Collect collects the memory information
func (*Memory) Collect() (interface{}, []string, error) {
	return CollectInfo().AsJSON()
}

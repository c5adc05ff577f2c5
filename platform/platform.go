// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

// Package platform regroups collecting information about the platform
package platform

import "github.com/hwprobe/hwprobe/utils"

// Info holds metadata about the host and its operating system
type Info struct {
	// KernelName is the name of the kernel, as reported by `uname -s`
	KernelName utils.Value[string] `json:"kernel_name"`
	// KernelRelease is the kernel release, as reported by `uname -r`
	KernelRelease utils.Value[string] `json:"kernel_release"`
	// KernelVersion is the kernel version, as reported by `uname -v`.
	// Not collected on Windows.
	KernelVersion utils.Value[string] `json:"kernel_version"`
	// Hostname is the hostname of the host
	Hostname utils.Value[string] `json:"hostname"`
	// Machine is the machine hardware name, as reported by `uname -m`
	Machine utils.Value[string] `json:"machine"`
	// OS is the name of the operating system
	OS utils.Value[string] `json:"os"`
	// Processor is the processor type, as reported by `uname -p`
	Processor utils.Value[string] `json:"processor"`
	// HardwarePlatform is the hardware platform, as reported by `uname -i`
	HardwarePlatform utils.Value[string] `json:"hardware_platform"`
}

// CollectInfo collects the platform information for the current platform.
func CollectInfo() *Info {
	return collectInfo()
}

// AsJSON renders the collected fields, with the errors of the fields which
// could not be collected.
func (info *Info) AsJSON() (interface{}, []string, error) {
	return utils.AsJSON(info, false)
}

// Platform is the inventory collector for this package.
type Platform struct{}

// Name returns the name of the collector
func (*Platform) Name() string { return "platform" }

// Collect collects the platform information
func (*Platform) Collect() (interface{}, []string, error) {
	return CollectInfo().AsJSON()
}

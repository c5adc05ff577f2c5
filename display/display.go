// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

// Package display regroups collecting information about the attached
// displays, decoded from the EDID blocks the platform exposes
package display

import "github.com/hwprobe/hwprobe/edid"

// Monitor is one attached display
type Monitor struct {
	// Connector names where the display is attached: the DRM connector on
	// Linux, the device instance on Windows, the profiler name on macOS
	Connector string `json:"connector,omitempty"`
	// Descriptor is the decoded EDID identity of the display
	Descriptor *edid.DisplayDescriptor `json:"descriptor"`
}

// Info holds every detected display
type Info struct {
	// Monitors lists the displays in discovery order
	Monitors []Monitor `json:"monitors"`
}

// CollectInfo collects the attached displays for the current platform. A
// display whose EDID could not be decoded is skipped with a warning; the
// others are unaffected.
func CollectInfo() (*Info, []string, error) {
	return collectInfo()
}

// AsJSON collects the display information and renders it as a marshallable
// object.
func AsJSON() (interface{}, []string, error) {
	info, warns, err := CollectInfo()
	if err != nil {
		return nil, warns, err
	}
	return info, warns, nil
}

// Display is the inventory collector for this package.
type Display struct{}

// Name returns the name of the collector
func (*Display) Name() string { return "display" }

// Collect collects the display information
func (*Display) Collect() (interface{}, []string, error) {
	return AsJSON()
}

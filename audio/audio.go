// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

// Package audio regroups collecting information about the audio devices
package audio

// Card is one audio device
type Card struct {
	// Name is the device name the platform reports
	Name string `json:"name"`
	// Driver is the kernel driver bound to the device, when known
	Driver string `json:"driver,omitempty"`
	// Manufacturer is the device manufacturer, when known
	Manufacturer string `json:"manufacturer,omitempty"`
}

// Info holds every detected audio device
type Info struct {
	// Cards lists the devices in discovery order
	Cards []Card `json:"cards"`
}

// CollectInfo collects the audio devices for the current platform.
func CollectInfo() (*Info, []string, error) {
	return collectInfo()
}

// AsJSON collects the audio information and renders it as a marshallable
// object.
func AsJSON() (interface{}, []string, error) {
	info, warns, err := CollectInfo()
	if err != nil {
		return nil, warns, err
	}
	return info, warns, nil
}

// Audio is the inventory collector for this package.
type Audio struct{}

// Name returns the name of the collector
func (*Audio) Name() string { return "audio" }

// Collect collects the audio information
func (*Audio) Collect() (interface{}, []string, error) {
	return AsJSON()
}

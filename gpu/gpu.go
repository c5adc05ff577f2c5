// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

// Package gpu regroups collecting information about the graphics adapters
package gpu

import (
	"regexp"
	"strings"
)

// Device is one graphics adapter
type Device struct {
	// VendorID is the PCI vendor, 0x-prefixed hex, for example 0x10de
	VendorID string `json:"vendor_id,omitempty"`
	// DeviceID is the PCI device, 0x-prefixed hex
	DeviceID string `json:"device_id,omitempty"`
	// SubsystemVendorID identifies the board vendor, when reported
	SubsystemVendorID string `json:"subsystem_vendor_id,omitempty"`
	// SubsystemDeviceID identifies the board model, when reported
	SubsystemDeviceID string `json:"subsystem_device_id,omitempty"`
	// Name is the marketing name of the adapter, when the platform knows it
	Name string `json:"name,omitempty"`
	// Manufacturer is the adapter manufacturer, when the platform knows it
	Manufacturer string `json:"manufacturer,omitempty"`
	// ACPIPath is the firmware namespace path of the adapter
	ACPIPath string `json:"acpi_path,omitempty"`
	// PCIPath is the UEFI device-path notation of the adapter
	PCIPath string `json:"pci_path,omitempty"`
}

// Info holds every detected graphics adapter
type Info struct {
	// Devices lists the adapters in discovery order
	Devices []Device `json:"devices"`
}

// CollectInfo collects the graphics adapters for the current platform. A
// device which could only be partially described is still listed; the
// returned warnings carry what was skipped.
func CollectInfo() (*Info, []string, error) {
	return collectInfo()
}

// AsJSON collects the graphics information and renders it as a marshallable
// object.
func AsJSON() (interface{}, []string, error) {
	info, warns, err := CollectInfo()
	if err != nil {
		return nil, warns, err
	}
	return info, warns, nil
}

// Gpu is the inventory collector for this package.
//
//nolint:revive
type Gpu struct{}

// Name returns the name of the collector
func (*Gpu) Name() string { return "gpu" }

// Collect collects the graphics information
func (*Gpu) Collect() (interface{}, []string, error) {
	return AsJSON()
}

// pnpIDPattern pulls the vendor, device and subsystem fields out of a PnP
// device ID such as
// PCI\VEN_10DE&DEV_2482&SUBSYS_880610DE&REV_A1\4&12AB34CD&0&0008.
// The subsystem value packs the board model in the high four digits and the
// board vendor in the low four.
var pnpIDPattern = regexp.MustCompile(`VEN_([0-9A-Fa-f]{4}).*DEV_([0-9A-Fa-f]{4}).*SUBSYS_([0-9A-Fa-f]{4})([0-9A-Fa-f]{4})`)

// parsePNPDeviceID extracts the PCI identifiers from a PnP device ID,
// 0x-prefixed and lower-cased. It reports false when the string carries no
// VEN/DEV/SUBSYS triple, as USB and software devices do.
func parsePNPDeviceID(pnpDeviceID string) (vendor, device, subsysDevice, subsysVendor string, ok bool) {
	m := pnpIDPattern.FindStringSubmatch(pnpDeviceID)
	if m == nil {
		return "", "", "", "", false
	}
	return "0x" + strings.ToLower(m[1]), "0x" + strings.ToLower(m[2]),
		"0x" + strings.ToLower(m[3]), "0x" + strings.ToLower(m[4]), true
}

// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

//go:build linux

package gpu

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hwprobe/hwprobe/devpath"
	"github.com/hwprobe/hwprobe/internal/log"
)

// displayControllerBaseClass is the PCI base class of display controllers;
// the class file carries three hex bytes with the base class leftmost.
const displayControllerBaseClass = 0x03

func collectInfo() (*Info, []string, error) {
	return collectFromSysfs("/sys")
}

// collectFromSysfs walks the PCI device registry under root and keeps the
// functions whose class marks them as display controllers.
func collectFromSysfs(root string) (*Info, []string, error) {
	registry := filepath.Join(root, "bus", "pci", "devices")
	entries, err := os.ReadDir(registry)
	if err != nil {
		// WSL and most containers have no PCI registry at all
		return nil, nil, fmt.Errorf("gpu: %w", err)
	}

	info := &Info{}
	var warns []string
	resolver := devpath.SysfsResolver{Root: root}

	for _, entry := range entries {
		devicePath := filepath.Join(registry, entry.Name())

		isGPU, err := isDisplayController(devicePath)
		if err != nil {
			warns = append(warns, fmt.Sprintf("%s: %v", entry.Name(), err))
			continue
		}
		if !isGPU {
			continue
		}

		device := Device{
			VendorID: readSysfsValue(devicePath, "vendor"),
			DeviceID: readSysfsValue(devicePath, "device"),
		}
		if sub := readSysfsValue(devicePath, "subsystem_vendor"); sub != "" {
			device.SubsystemVendorID = sub
		}
		if sub := readSysfsValue(devicePath, "subsystem_device"); sub != "" {
			device.SubsystemDeviceID = sub
		}

		canonical := resolver.Resolve(devicePath)
		device.ACPIPath = canonical.ACPI
		device.PCIPath = canonical.PCI
		if canonical == (devpath.CanonicalDevicePath{}) {
			log.Debugf("gpu: no firmware topology for %s", entry.Name())
		}

		info.Devices = append(info.Devices, device)
	}

	return info, warns, nil
}

// isDisplayController reads the device class and checks its base class byte.
func isDisplayController(devicePath string) (bool, error) {
	raw, err := os.ReadFile(filepath.Join(devicePath, "class"))
	if err != nil {
		return false, err
	}
	class, err := strconv.ParseUint(strings.TrimSpace(string(raw)), 0, 32)
	if err != nil {
		return false, fmt.Errorf("gpu: bad class value %q", strings.TrimSpace(string(raw)))
	}
	return class>>16 == displayControllerBaseClass, nil
}

func readSysfsValue(devicePath, name string) string {
	raw, err := os.ReadFile(filepath.Join(devicePath, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

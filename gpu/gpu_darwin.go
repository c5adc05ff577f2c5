// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

//go:build darwin

package gpu

import (
	"encoding/json"
	"os/exec"
	"strings"
)

// system_profiler exposes one entry per display controller; the key set
// differs between built-in and discrete adapters, so every field is optional.
type spDisplaysReport struct {
	Controllers []spDisplayController `json:"SPDisplaysDataType"`
}

type spDisplayController struct {
	Name     string `json:"_name"`
	Model    string `json:"sppci_model"`
	Vendor   string `json:"spdisplays_vendor"`
	VendorID string `json:"spdisplays_vendor-id"`
	DeviceID string `json:"spdisplays_device-id"`
}

func collectInfo() (*Info, []string, error) {
	output, err := exec.Command("system_profiler", "-json", "SPDisplaysDataType").Output()
	if err != nil {
		return nil, nil, err
	}
	return parseSPDisplays(output)
}

func parseSPDisplays(raw []byte) (*Info, []string, error) {
	var report spDisplaysReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, nil, err
	}

	info := &Info{}
	for _, controller := range report.Controllers {
		device := Device{
			Name:         controller.Name,
			Manufacturer: cleanVendor(controller.Vendor),
			VendorID:     controller.VendorID,
			DeviceID:     controller.DeviceID,
		}
		if device.Name == "" {
			device.Name = controller.Model
		}
		info.Devices = append(info.Devices, device)
	}
	return info, nil, nil
}

// cleanVendor strips the sppci_vendor_ prefix system_profiler wraps vendor
// names in for built-in adapters.
func cleanVendor(vendor string) string {
	return strings.TrimPrefix(vendor, "sppci_vendor_")
}

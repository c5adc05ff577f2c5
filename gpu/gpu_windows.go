// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

//go:build windows

package gpu

import (
	"errors"
	"fmt"

	"github.com/yusufpapurcu/wmi"

	"github.com/hwprobe/hwprobe/devpath"
	"github.com/hwprobe/hwprobe/internal/log"
	"github.com/hwprobe/hwprobe/internal/winutil"
)

var errNoVideoController = errors.New("gpu: WMI returned no Win32_VideoController rows")

// https://docs.microsoft.com/en-us/windows/win32/cimwin32prov/win32-videocontroller
//
//nolint:revive
type Win32_VideoController struct {
	Name                 string
	AdapterCompatibility *string
	PNPDeviceID          string
}

func collectInfo() (*Info, []string, error) {
	var controllers []Win32_VideoController
	query := wmi.CreateQuery(&controllers, "")
	err := wmi.Query(query, &controllers)
	if err == nil && len(controllers) == 0 {
		err = errNoVideoController
	}
	if err != nil {
		return nil, nil, err
	}

	info := &Info{}
	var warns []string
	for _, controller := range controllers {
		device := Device{Name: controller.Name}
		if controller.AdapterCompatibility != nil {
			device.Manufacturer = *controller.AdapterCompatibility
		}

		if vendor, dev, subsysDev, subsysVen, ok := parsePNPDeviceID(controller.PNPDeviceID); ok {
			device.VendorID = vendor
			device.DeviceID = dev
			device.SubsystemDeviceID = subsysDev
			device.SubsystemVendorID = subsysVen
		} else {
			warns = append(warns, fmt.Sprintf("gpu: no PCI identifiers in %q", controller.PNPDeviceID))
		}

		locations, err := winutil.DeviceLocationPaths(controller.PNPDeviceID)
		if err != nil {
			log.Debugf("gpu: location paths for %s: %v", controller.PNPDeviceID, err)
		} else {
			canonical := devpath.ResolveLocationPaths(locations)
			device.ACPIPath = canonical.ACPI
			device.PCIPath = canonical.PCI
		}

		info.Devices = append(info.Devices, device)
	}

	return info, warns, nil
}

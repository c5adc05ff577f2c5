// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

//go:build windows

package platform

import (
	"errors"
	"os"

	"github.com/yusufpapurcu/wmi"

	"github.com/hwprobe/hwprobe/utils"
)

var errNoOSRow = errors.New("platform: WMI returned no Win32_OperatingSystem rows")

// https://docs.microsoft.com/en-us/windows/win32/cimwin32prov/win32-operatingsystem
//
//nolint:revive
type Win32_OperatingSystem struct {
	Caption        string
	Version        string
	OSArchitecture string
}

// archToMachine maps the localizable OSArchitecture strings to the uname -m
// vocabulary the other platforms report.
func archToMachine(arch string) string {
	switch arch {
	case "64-bit", "64 bits":
		return "x86_64"
	case "32-bit", "32 bits":
		return "i686"
	case "ARM 64-bit Processor":
		return "arm64"
	}
	return arch
}

func collectInfo() *Info {
	info := &Info{}

	var rows []Win32_OperatingSystem
	query := wmi.CreateQuery(&rows, "")
	err := wmi.Query(query, &rows)
	if err == nil && len(rows) == 0 {
		err = errNoOSRow
	}
	if err != nil {
		info.OS = utils.NewErrorValue[string](err)
		info.KernelRelease = utils.NewErrorValue[string](err)
		info.Machine = utils.NewErrorValue[string](err)
		info.Processor = utils.NewErrorValue[string](err)
	} else {
		first := rows[0]
		info.OS = utils.NewValue(first.Caption)
		info.KernelRelease = utils.NewValue(first.Version)
		machine := archToMachine(first.OSArchitecture)
		info.Machine = utils.NewValue(machine)
		info.Processor = utils.NewValue(machine)
	}

	info.KernelName = utils.NewValue("Windows")
	info.Hostname = utils.NewValueFrom(os.Hostname())

	// no uname equivalents on Windows for these
	info.KernelVersion = utils.NewErrorValue[string](utils.ErrNotCollectable)
	info.HardwarePlatform = utils.NewErrorValue[string](utils.ErrNotCollectable)

	return info
}

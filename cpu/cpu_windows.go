// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

//go:build windows

package cpu

import (
	"errors"
	"strconv"

	"github.com/yusufpapurcu/wmi"

	"github.com/hwprobe/hwprobe/utils"
)

var errNoProcessor = errors.New("cpu: WMI returned no Win32_Processor rows")

// https://docs.microsoft.com/en-us/windows/win32/cimwin32prov/win32-processor
//
//nolint:revive
type Win32_Processor struct {
	Manufacturer              string
	Name                      string
	Family                    uint16
	Stepping                  *string
	NumberOfCores             uint32
	NumberOfLogicalProcessors uint32
	MaxClockSpeed             uint32
}

func collectInfo() *Info {
	info := &Info{}

	var procs []Win32_Processor
	query := wmi.CreateQuery(&procs, "")
	err := wmi.Query(query, &procs)
	if err == nil && len(procs) == 0 {
		err = errNoProcessor
	}
	if err != nil {
		info.VendorID = utils.NewErrorValue[string](err)
		info.ModelName = utils.NewErrorValue[string](err)
		info.Family = utils.NewErrorValue[string](err)
		info.Model = utils.NewErrorValue[string](err)
		info.Stepping = utils.NewErrorValue[string](err)
		info.CPUCores = utils.NewErrorValue[uint64](err)
		info.CPULogicalProcessors = utils.NewErrorValue[uint64](err)
		info.Mhz = utils.NewErrorValue[float64](err)
		return info
	}

	first := procs[0]
	info.VendorID = utils.NewValue(first.Manufacturer)
	info.ModelName = utils.NewValue(first.Name)
	info.Family = utils.NewValue(strconv.FormatUint(uint64(first.Family), 10))
	// Win32_Processor has no separate model field; the name carries it
	info.Model = utils.NewValue(first.Name)
	if first.Stepping != nil {
		info.Stepping = utils.NewValue(*first.Stepping)
	} else {
		info.Stepping = utils.NewErrorValue[string](errors.New("cpu: stepping not reported"))
	}

	// sum cores over every socket
	var cores, logical uint64
	for _, proc := range procs {
		cores += uint64(proc.NumberOfCores)
		logical += uint64(proc.NumberOfLogicalProcessors)
	}
	info.CPUCores = utils.NewValue(cores)
	info.CPULogicalProcessors = utils.NewValue(logical)
	info.Mhz = utils.NewValue(float64(first.MaxClockSpeed))

	return info
}

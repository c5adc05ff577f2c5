// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

//go:build linux

package cpu

import (
	"errors"
	"strconv"

	"github.com/shirou/gopsutil/v4/cpu"

	"github.com/hwprobe/hwprobe/utils"
)

var errNoCPUInfo = errors.New("cpu: no processor entries")

func collectInfo() *Info {
	info := &Info{}

	stats, err := cpu.Info()
	if err == nil && len(stats) == 0 {
		err = errNoCPUInfo
	}
	if err != nil {
		info.VendorID = utils.NewErrorValue[string](err)
		info.ModelName = utils.NewErrorValue[string](err)
		info.Family = utils.NewErrorValue[string](err)
		info.Model = utils.NewErrorValue[string](err)
		info.Stepping = utils.NewErrorValue[string](err)
		info.Mhz = utils.NewErrorValue[float64](err)
	} else {
		applyStat(info, stats[0])
	}

	physical, err := cpu.Counts(false)
	info.CPUCores = utils.NewValueFrom(uint64(physical), err)
	logical, err := cpu.Counts(true)
	info.CPULogicalProcessors = utils.NewValueFrom(uint64(logical), err)

	return info
}

// applyStat fills the identity fields from the first processor entry.
// gopsutil reports the stepping as a number; the other platforms report it as
// a string, so it is rendered here.
func applyStat(info *Info, first cpu.InfoStat) {
	info.VendorID = utils.NewValue(first.VendorID)
	info.ModelName = utils.NewValue(first.ModelName)
	info.Family = utils.NewValue(first.Family)
	info.Model = utils.NewValue(first.Model)
	info.Stepping = utils.NewValue(strconv.Itoa(int(first.Stepping)))
	info.Mhz = utils.NewValue(first.Mhz)
}

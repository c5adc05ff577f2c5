// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright © 2015 Kentaro Kuribayashi <kentarok@gmail.com>
// Copyright 2014-present Datadog, Inc.

//go:build darwin

package cpu

import (
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/hwprobe/hwprobe/utils"
)

// use `man 3 sysctl` to see the type returned by each option
func collectInfo() *Info {
	info := &Info{}

	info.VendorID = utils.NewValueFrom(unix.Sysctl("machdep.cpu.vendor"))
	info.ModelName = utils.NewValueFrom(unix.Sysctl("machdep.cpu.brand_string"))

	sysctlInt := func(option string) utils.Value[string] {
		value, err := unix.SysctlUint32(option)
		return utils.NewValueFrom(strconv.FormatUint(uint64(value), 10), err)
	}
	info.Family = sysctlInt("machdep.cpu.family")
	info.Model = sysctlInt("machdep.cpu.model")
	info.Stepping = sysctlInt("machdep.cpu.stepping")

	cores, err := unix.SysctlUint32("hw.physicalcpu")
	info.CPUCores = utils.NewValueFrom(uint64(cores), err)
	logical, err := unix.SysctlUint32("hw.logicalcpu")
	info.CPULogicalProcessors = utils.NewValueFrom(uint64(logical), err)

	// hw.cpufrequency reports Hz; absent on Apple Silicon
	freq, err := unix.SysctlUint64("hw.cpufrequency")
	info.Mhz = utils.NewValueFrom(float64(freq)/1000000, err)

	return info
}

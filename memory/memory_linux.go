// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

//go:build linux

package memory

import (
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/hwprobe/hwprobe/utils"
)

func collectInfo() *Info {
	info := &Info{}

	virtual, err := mem.VirtualMemory()
	if err != nil {
		info.TotalBytes = utils.NewErrorValue[uint64](err)
	} else {
		info.TotalBytes = utils.NewValue(virtual.Total)
	}

	swap, err := mem.SwapMemory()
	if err != nil {
		info.SwapTotalBytes = utils.NewErrorValue[uint64](err)
	} else {
		info.SwapTotalBytes = utils.NewValue(swap.Total)
	}

	return info
}

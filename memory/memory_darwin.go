// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

//go:build darwin

package memory

import (
	"golang.org/x/sys/unix"

	"github.com/hwprobe/hwprobe/utils"
)

func collectInfo() *Info {
	info := &Info{}

	total, err := unix.SysctlUint64("hw.memsize")
	info.TotalBytes = utils.NewValueFrom(total, err)

	// vm.swapusage reports a struct we don't decode; swap is rarely
	// meaningful on macOS anyway
	info.SwapTotalBytes = utils.NewErrorValue[uint64](utils.ErrNotCollectable)

	return info
}

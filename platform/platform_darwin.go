// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright © 2015 Kentaro Kuribayashi <kentarok@gmail.com>
// Copyright 2014-present Datadog, Inc.

//go:build darwin

package platform

import (
	"strings"

	"golang.org/x/sys/unix"

	"github.com/hwprobe/hwprobe/utils"
)

// getUnameProcessor returns the same value as `uname -p` on macOS: "arm" on
// Apple Silicon and "i386" on Intel.
func getUnameProcessor(machine string) string {
	if strings.HasPrefix(machine, "arm") {
		return "arm"
	}
	return "i386"
}

func collectInfo() *Info {
	info := &Info{}

	var uname unix.Utsname
	if err := unix.Uname(&uname); err != nil {
		info.KernelName = utils.NewErrorValue[string](err)
		info.Hostname = utils.NewErrorValue[string](err)
		info.KernelRelease = utils.NewErrorValue[string](err)
		info.KernelVersion = utils.NewErrorValue[string](err)
		info.Machine = utils.NewErrorValue[string](err)
		info.Processor = utils.NewErrorValue[string](err)
	} else {
		info.KernelName = utils.NewValue(unix.ByteSliceToString(uname.Sysname[:]))
		info.Hostname = utils.NewValue(unix.ByteSliceToString(uname.Nodename[:]))
		info.KernelRelease = utils.NewValue(unix.ByteSliceToString(uname.Release[:]))
		info.KernelVersion = utils.NewValue(unix.ByteSliceToString(uname.Version[:]))

		machine := unix.ByteSliceToString(uname.Machine[:])
		info.Machine = utils.NewValue(machine)
		info.Processor = utils.NewValue(getUnameProcessor(machine))
	}

	info.OS = utils.NewValue("Mac OS X")
	// uname -i is not a thing on macOS
	info.HardwarePlatform = utils.NewErrorValue[string](utils.ErrNotCollectable)

	return info
}

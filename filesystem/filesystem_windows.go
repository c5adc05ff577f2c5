// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright © 2015 Kentaro Kuribayashi <kentarok@gmail.com>
// Copyright 2014-present Datadog, Inc.

//go:build windows

package filesystem

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// InvalidHandle is the value FindFirstVolumeW returns on failure
const InvalidHandle windows.Handle = ^windows.Handle(0)

var (
	kernel32           = windows.NewLazySystemDLL("kernel32.dll")
	procGetDiskSpace   = kernel32.NewProc("GetDiskFreeSpaceExW")
	procGetVolumePaths = kernel32.NewProc("GetVolumePathNamesForVolumeNameW")
	procFindFirstVol   = kernel32.NewProc("FindFirstVolumeW")
	procFindNextVol    = kernel32.NewProc("FindNextVolumeW")
	procFindVolClose   = kernel32.NewProc("FindVolumeClose")
)

// splitMultiSz splits a REG_MULTI_SZ-shaped buffer: NUL-separated strings
// ended by a double NUL.
func splitMultiSz(buf []uint16) []string {
	var result []string
	start := 0
	for i, c := range buf {
		if c != 0 {
			continue
		}
		if i == start {
			break
		}
		result = append(result, windows.UTF16ToString(buf[start:i]))
		start = i + 1
	}
	return result
}

func volumeSize(volume string) uint64 {
	volumePtr, err := windows.UTF16PtrFromString(volume)
	if err != nil {
		return 0
	}
	var total, free uint64
	status, _, _ := procGetDiskSpace.Call(uintptr(unsafe.Pointer(volumePtr)),
		uintptr(0),
		uintptr(unsafe.Pointer(&total)),
		uintptr(unsafe.Pointer(&free)))
	if status == 0 {
		return 0
	}
	return total
}

// volumeMountPoints returns the paths a volume GUID is mounted on, which may
// be empty for volumes without a drive letter or folder mount.
func volumeMountPoints(volume string) []string {
	volumePtr, err := windows.UTF16PtrFromString(volume)
	if err != nil {
		return nil
	}

	var needed uint32
	status, _, errno := procGetVolumePaths.Call(uintptr(unsafe.Pointer(volumePtr)),
		uintptr(unsafe.Pointer(&needed)),
		2,
		uintptr(unsafe.Pointer(&needed)))
	if status != 0 || errno != windows.ERROR_MORE_DATA {
		return nil
	}

	buf := make([]uint16, needed)
	status, _, _ = procGetVolumePaths.Call(uintptr(unsafe.Pointer(volumePtr)),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(needed),
		uintptr(unsafe.Pointer(&needed)))
	if status == 0 {
		return nil
	}
	return splitMultiSz(buf)
}

func collectInfo() ([]MountInfo, error) {
	buf := make([]uint16, windows.MAX_LONG_PATH)
	handle, _, _ := procFindFirstVol.Call(uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if windows.Handle(handle) == InvalidHandle {
		return nil, windows.GetLastError()
	}
	//nolint:errcheck
	defer procFindVolClose.Call(handle)

	var result []MountInfo
	for {
		volume := windows.UTF16ToString(buf)

		var mountedOn string
		if mounts := volumeMountPoints(volume); len(mounts) > 0 {
			mountedOn = mounts[0]
		}
		result = append(result, MountInfo{
			Name:      volume,
			SizeKB:    volumeSize(volume) / 1024,
			MountedOn: mountedOn,
		})

		status, _, _ := procFindNextVol.Call(handle,
			uintptr(unsafe.Pointer(&buf[0])),
			uintptr(len(buf)))
		if status == 0 {
			break
		}
	}
	return result, nil
}

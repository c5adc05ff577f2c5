// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

// Package winutil wraps the Windows configuration-manager calls the
// collectors need to locate devices in the firmware topology.
package winutil

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	cfgmgr32               = windows.NewLazySystemDLL("cfgmgr32.dll")
	procLocateDevNode      = cfgmgr32.NewProc("CM_Locate_DevNodeW")
	procGetDevNodeProperty = cfgmgr32.NewProc("CM_Get_DevNode_PropertyW")
)

// devPropKey is the DEVPROPKEY structure: a format GUID plus a property id.
type devPropKey struct {
	fmtid windows.GUID
	pid   uint32
}

// DEVPKEY_Device_LocationPaths, the firmware location paths of a device.
var devpkeyLocationPaths = devPropKey{
	fmtid: windows.GUID{
		Data1: 0xA45C254E, Data2: 0xDF1C, Data3: 0x4EFD,
		Data4: [8]byte{0x80, 0x20, 0x67, 0xD1, 0x46, 0xA8, 0x50, 0xE0},
	},
	pid: 37,
}

// configuration-manager return codes
const (
	crSuccess     = 0x00
	crBufferSmall = 0x1A
)

// DeviceLocationPaths returns the firmware location paths of the device with
// the given PnP device ID, root-first. A device typically reports one
// PCIROOT-style path and one ACPI-style path.
func DeviceLocationPaths(pnpDeviceID string) ([]string, error) {
	idPtr, err := windows.UTF16PtrFromString(pnpDeviceID)
	if err != nil {
		return nil, err
	}

	var devNode uint32
	ret, _, _ := procLocateDevNode.Call(
		uintptr(unsafe.Pointer(&devNode)),
		uintptr(unsafe.Pointer(idPtr)),
		0, // CM_LOCATE_DEVNODE_NORMAL
	)
	if ret != crSuccess {
		return nil, fmt.Errorf("winutil: CM_Locate_DevNodeW(%s) returned 0x%02X", pnpDeviceID, ret)
	}

	// first call sizes the buffer, second fills it
	var propType uint32
	var size uint32
	ret, _, _ = procGetDevNodeProperty.Call(
		uintptr(devNode),
		uintptr(unsafe.Pointer(&devpkeyLocationPaths)),
		uintptr(unsafe.Pointer(&propType)),
		0,
		uintptr(unsafe.Pointer(&size)),
		0,
	)
	if ret != crBufferSmall || size == 0 {
		return nil, fmt.Errorf("winutil: CM_Get_DevNode_PropertyW size query returned 0x%02X", ret)
	}

	buf := make([]byte, size)
	ret, _, _ = procGetDevNodeProperty.Call(
		uintptr(devNode),
		uintptr(unsafe.Pointer(&devpkeyLocationPaths)),
		uintptr(unsafe.Pointer(&propType)),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(unsafe.Pointer(&size)),
		0,
	)
	if ret != crSuccess {
		return nil, fmt.Errorf("winutil: CM_Get_DevNode_PropertyW returned 0x%02X", ret)
	}

	return decodeMultiSz(buf[:size]), nil
}

// decodeMultiSz turns a UTF-16 multi-sz buffer into its list of strings.
func decodeMultiSz(raw []byte) []string {
	u16 := make([]uint16, len(raw)/2)
	for i := range u16 {
		u16[i] = uint16(raw[2*i]) | uint16(raw[2*i+1])<<8
	}

	var result []string
	start := 0
	for i, c := range u16 {
		if c != 0 {
			continue
		}
		if i == start {
			break
		}
		result = append(result, windows.UTF16ToString(u16[start:i]))
		start = i + 1
	}
	return result
}

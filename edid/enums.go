// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

package edid

import "strconv"

// BitDepth is the color depth in bits per primary, 0 when the display left
// the field at its undefined value.
type BitDepth int

// Bit depths representable in the video-input byte.
const (
	BitDepthUndefined BitDepth = 0
	BitDepth6         BitDepth = 6
	BitDepth8         BitDepth = 8
	BitDepth10        BitDepth = 10
	BitDepth12        BitDepth = 12
	BitDepth14        BitDepth = 14
	BitDepth16        BitDepth = 16
)

// bitDepthFromBits maps the 4-bit color-depth field to bits per primary.
func bitDepthFromBits(bits byte) BitDepth {
	switch bits {
	case 1:
		return BitDepth6
	case 2:
		return BitDepth8
	case 3:
		return BitDepth10
	case 4:
		return BitDepth12
	case 5:
		return BitDepth14
	case 6:
		return BitDepth16
	default:
		return BitDepthUndefined
	}
}

func (b BitDepth) String() string {
	if b == BitDepthUndefined {
		return "Undefined"
	}
	return strconv.Itoa(int(b))
}

// MarshalJSON renders defined depths as numbers and the undefined value as
// the string "Undefined".
func (b BitDepth) MarshalJSON() ([]byte, error) {
	if b == BitDepthUndefined {
		return []byte(`"Undefined"`), nil
	}
	return []byte(strconv.Itoa(int(b))), nil
}

// Interface is the digital video interface declared in the video-input byte.
type Interface int

// Interfaces representable in the video-input byte. InterfaceUnknown covers
// the reserved encodings.
const (
	InterfaceUndefined Interface = iota
	InterfaceDVI
	InterfaceHDMI
	InterfaceHDMIB
	InterfaceMDDI
	InterfaceDisplayPort
	InterfaceUnknown
)

var interfaceNames = map[Interface]string{
	InterfaceUndefined:   "Undefined",
	InterfaceDVI:         "DVI",
	InterfaceHDMI:        "HDMI",
	InterfaceHDMIB:       "HDMI (B)",
	InterfaceMDDI:        "MDDI",
	InterfaceDisplayPort: "DisplayPort",
	InterfaceUnknown:     "Unknown",
}

// interfaceFromBits maps the low three bits of the video-input byte.
func interfaceFromBits(bits byte) Interface {
	if bits > 5 {
		return InterfaceUnknown
	}
	return Interface(bits)
}

func (i Interface) String() string {
	if name, ok := interfaceNames[i]; ok {
		return name
	}
	return "Unknown"
}

// MarshalJSON renders the interface by name.
func (i Interface) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

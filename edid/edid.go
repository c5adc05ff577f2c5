// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

// Package edid decodes the 128-byte EDID base block a display exposes into
// identity, physical size and timing information.
//
// Only the v1.4 base block is handled; extension blocks after the first 128
// bytes are ignored.
package edid

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"strings"
)

// BaseBlockSize is the size of the EDID base block. Decode needs at least
// this many bytes.
const BaseBlockSize = 128

// ErrTooShort is returned when the input holds less than a full base block.
var ErrTooShort = errors.New("edid: block shorter than 128 bytes")

// Field offsets within the base block.
const (
	vendorOffset    = 8    // big-endian u16, three packed 5-bit letters
	productOffset   = 10   // little-endian u16
	yearOffset      = 0x11 // years since 1990
	inputTypeOffset = 0x14
	widthCmOffset   = 21
	heightCmOffset  = 22

	descriptorBase   = 0x36
	descriptorSize   = 18
	descriptorSlots  = 4
	descriptorTagOff = 3
	descriptorTextLo = 5
)

// Display-descriptor tags carried in byte 3 of an 18-byte block whose first
// two bytes are zero.
const (
	tagSerialNumber = 0xFF
	tagDataString   = 0xFE
	tagProductName  = 0xFC
)

// Resolution is one decoded timing: active pixels and the refresh rate
// derived from the pixel clock.
type Resolution struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	RefreshRate float64 `json:"refresh_rate"`
}

// area is the tie-break key: more pixels wins, refresh only breaks ties.
func (r Resolution) area() int { return r.Width * r.Height }

func (r Resolution) betterThan(other Resolution) bool {
	if r.area() != other.area() {
		return r.area() > other.area()
	}
	return r.RefreshRate > other.RefreshRate
}

// DisplayDescriptor is the decoded identity of one display.
//
// A decode either fails entirely (ErrTooShort) or succeeds with whatever
// fields were present; empty strings, zero sizes and nil optionals mean the
// block did not carry that field.
type DisplayDescriptor struct {
	// ManufacturerCode is the three-letter PNP vendor code, for example
	// "DEL" or "SAM".
	ManufacturerCode string `json:"manufacturer_code"`
	VendorID         uint16 `json:"vendor_id"`
	ProductID        uint16 `json:"product_id"`

	// SerialNumber and Name come from the string descriptors (tags 0xFF and
	// 0xFC). Empty means the descriptor was absent or blank.
	SerialNumber string `json:"serial_number,omitempty"`
	Name         string `json:"name,omitempty"`

	ManufactureYear int `json:"manufacture_year"`

	WidthCm        int `json:"width_cm"`
	HeightCm       int `json:"height_cm"`
	DiagonalInches int `json:"diagonal_inches,omitempty"`

	// BitDepth and Interface are only set for digital displays; an analog
	// input byte leaves both nil.
	BitDepth  *BitDepth  `json:"digital_bit_depth,omitempty"`
	Interface *Interface `json:"interface,omitempty"`

	// Resolution is the best timing found across the descriptor blocks:
	// largest active area, ties broken by the higher refresh rate. Nil when
	// no valid timing descriptor was present.
	Resolution *Resolution `json:"resolution,omitempty"`
}

// Decode parses an EDID base block. Inputs shorter than BaseBlockSize return
// ErrTooShort; anything longer is accepted with the extension data ignored.
//
// Decode is deterministic and never fails on malformed field contents: a
// field which cannot be decoded is simply left absent in the result.
func Decode(raw []byte) (*DisplayDescriptor, error) {
	if len(raw) < BaseBlockSize {
		return nil, ErrTooShort
	}

	desc := &DisplayDescriptor{}

	vendor := binary.BigEndian.Uint16(raw[vendorOffset : vendorOffset+2])
	desc.VendorID = vendor
	desc.ManufacturerCode = decodeManufacturerCode(vendor)
	desc.ProductID = binary.LittleEndian.Uint16(raw[productOffset : productOffset+2])
	desc.ManufactureYear = int(raw[yearOffset]) + 1990

	desc.WidthCm = int(raw[widthCmOffset])
	desc.HeightCm = int(raw[heightCmOffset])
	desc.DiagonalInches = diagonalInches(desc.WidthCm, desc.HeightCm)

	classified := decodeInputType(raw[inputTypeOffset], desc)

	best := Resolution{}
	for slot := 0; slot < descriptorSlots; slot++ {
		block := raw[descriptorBase+slot*descriptorSize : descriptorBase+(slot+1)*descriptorSize]
		if block[0] == 0 && block[1] == 0 {
			decodeDisplayDescriptor(block, desc)
			continue
		}
		// Timing candidates are only scored once the input byte told us what
		// kind of display this is; an unclassified block keeps none.
		if !classified {
			continue
		}
		if timing, ok := decodeTimingDescriptor(block); ok && timing.betterThan(best) {
			best = timing
		}
	}
	if best != (Resolution{}) {
		desc.Resolution = &best
	}

	return desc, nil
}

// decodeManufacturerCode unpacks three 5-bit letter groups from the
// big-endian vendor field, 1 mapping to 'A' and 26 to 'Z'.
func decodeManufacturerCode(vendor uint16) string {
	return string([]byte{
		byte((vendor>>10)&0x1F) + 'A' - 1,
		byte((vendor>>5)&0x1F) + 'A' - 1,
		byte(vendor&0x1F) + 'A' - 1,
	})
}

// diagonalInches derives the screen diagonal from the physical size fields.
// A zero width or height means the display did not report its size.
func diagonalInches(widthCm, heightCm int) int {
	if widthCm <= 0 || heightCm <= 0 {
		return 0
	}
	diagCm := math.Sqrt(float64(widthCm*widthCm + heightCm*heightCm))
	return int(math.Round(diagCm / 2.54))
}

// decodeInputType reads the video-input byte. The MSB selects digital versus
// analog; only digital inputs carry a bit depth and an interface. It reports
// whether the display was classified at all.
func decodeInputType(input byte, desc *DisplayDescriptor) bool {
	if input>>7 != 1 {
		// analog input: no digital metadata to extract
		return true
	}

	depth := bitDepthFromBits((input >> 3) & 0x0F)
	desc.BitDepth = &depth

	iface := interfaceFromBits(input & 0x07)
	desc.Interface = &iface
	return true
}

// decodeDisplayDescriptor handles an 18-byte block whose first two bytes are
// zero: a string descriptor identified by its tag byte.
func decodeDisplayDescriptor(block []byte, desc *DisplayDescriptor) {
	switch block[descriptorTagOff] {
	case tagSerialNumber:
		if text := descriptorText(block); text != "" {
			desc.SerialNumber = text
		}
	case tagProductName:
		if text := descriptorText(block); text != "" {
			desc.Name = text
		}
	case tagDataString:
		// free-form alphanumeric string, nothing to keep
	}
}

// descriptorText extracts the ASCII payload of a string descriptor: bytes 5
// through 17, cut at the first 0x0A, with non-ASCII bytes dropped and
// surrounding whitespace trimmed.
func descriptorText(block []byte) string {
	payload := block[descriptorTextLo:descriptorSize]
	if i := bytes.IndexByte(payload, 0x0A); i >= 0 {
		payload = payload[:i]
	}

	ascii := make([]byte, 0, len(payload))
	for _, b := range payload {
		if b < 0x80 {
			ascii = append(ascii, b)
		}
	}
	return strings.TrimSpace(string(ascii))
}

// decodeTimingDescriptor decodes one 18-byte detailed timing block into its
// active resolution and refresh rate. It reports false for blocks whose
// timing totals would be degenerate.
func decodeTimingDescriptor(block []byte) (Resolution, bool) {
	pixelClockHz := (int(block[0]) | int(block[1])<<8) * 10000

	horizontal := (int(block[4]&0xF0) << 4) | int(block[2])
	vertical := (int(block[7]&0xF0) << 4) | int(block[5])
	hBlank := (int(block[4]&0x0F) << 8) | int(block[3])
	vBlank := (int(block[7]&0x0F) << 8) | int(block[6])

	total := (horizontal + hBlank) * (vertical + vBlank)
	if total == 0 {
		return Resolution{}, false
	}

	refresh := float64(pixelClockHz) / float64(total)
	return Resolution{
		Width:       horizontal,
		Height:      vertical,
		RefreshRate: math.Round(refresh*100) / 100,
	}, true
}

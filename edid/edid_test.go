// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

package edid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// packVendor packs a three-letter code into the big-endian vendor field.
func packVendor(code string) uint16 {
	return uint16(code[0]-'A'+1)<<10 | uint16(code[1]-'A'+1)<<5 | uint16(code[2]-'A'+1)
}

// baseBlock builds a 128-byte block with a digital HDMI input and no
// descriptor content, then applies the given mutations.
func baseBlock(mods ...func([]byte)) []byte {
	block := make([]byte, BaseBlockSize)

	vendor := packVendor("DEL")
	block[vendorOffset] = byte(vendor >> 8)
	block[vendorOffset+1] = byte(vendor)
	block[productOffset] = 0xA0
	block[productOffset+1] = 0xB1
	block[yearOffset] = 30 // 2020
	block[inputTypeOffset] = 0x80 | 2<<3 | 2 // digital, 8-bit, HDMI
	block[widthCmOffset] = 60
	block[heightCmOffset] = 34

	for _, mod := range mods {
		mod(block)
	}
	return block
}

// withTiming writes a detailed timing descriptor into the given slot.
func withTiming(slot, width, height int, refresh float64) func([]byte) {
	return func(block []byte) {
		const hBlank, vBlank = 160, 62
		total := (width + hBlank) * (height + vBlank)
		clock := int(math.Round(refresh * float64(total) / 10000))

		b := block[descriptorBase+slot*descriptorSize:]
		b[0] = byte(clock)
		b[1] = byte(clock >> 8)
		b[2] = byte(width)
		b[3] = byte(hBlank)
		b[4] = byte(width>>8)<<4 | byte(hBlank>>8)
		b[5] = byte(height)
		b[6] = byte(vBlank)
		b[7] = byte(height>>8)<<4 | byte(vBlank>>8)
	}
}

// withStringDescriptor writes a display descriptor with the given tag and
// text, padded the way real blocks are (0x0A then spaces).
func withStringDescriptor(slot int, tag byte, text string) func([]byte) {
	return func(block []byte) {
		b := block[descriptorBase+slot*descriptorSize:]
		b[0], b[1], b[2] = 0, 0, 0
		b[descriptorTagOff] = tag
		payload := b[descriptorTextLo:descriptorSize]
		for i := range payload {
			payload[i] = ' '
		}
		n := copy(payload, text)
		if n < len(payload) {
			payload[n] = 0x0A
		}
	}
}

func TestDecodeTooShort(t *testing.T) {
	for _, size := range []int{0, 1, 64, BaseBlockSize - 1} {
		desc, err := Decode(make([]byte, size))
		require.ErrorIs(t, err, ErrTooShort)
		require.Nil(t, desc)
	}
}

func TestDecodeIdentity(t *testing.T) {
	desc, err := Decode(baseBlock())
	require.NoError(t, err)

	assert.Equal(t, "DEL", desc.ManufacturerCode)
	assert.Equal(t, packVendor("DEL"), desc.VendorID)
	assert.Equal(t, uint16(0xB1A0), desc.ProductID)
	assert.Equal(t, 2020, desc.ManufactureYear)
	assert.Equal(t, 60, desc.WidthCm)
	assert.Equal(t, 34, desc.HeightCm)
	// sqrt(60^2 + 34^2) / 2.54 rounds to 27
	assert.Equal(t, 27, desc.DiagonalInches)
}

func TestDecodeDeterministic(t *testing.T) {
	block := baseBlock(
		withStringDescriptor(0, tagProductName, "U2720Q"),
		withTiming(1, 2560, 1440, 60),
	)
	first, err := Decode(block)
	require.NoError(t, err)
	second, err := Decode(block)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestManufacturerCodeRoundTrip(t *testing.T) {
	// the packed example from the EDID standard
	assert.Equal(t, "ABC", decodeManufacturerCode(1<<10|2<<5|3))

	for a := byte('A'); a <= 'Z'; a++ {
		for b := byte('A'); b <= 'Z'; b++ {
			for c := byte('A'); c <= 'Z'; c++ {
				code := string([]byte{a, b, c})
				if decoded := decodeManufacturerCode(packVendor(code)); decoded != code {
					t.Fatalf("round trip %q -> %q", code, decoded)
				}
			}
		}
	}
}

func TestDecodeDigitalInput(t *testing.T) {
	tests := []struct {
		name  string
		input byte
		depth BitDepth
		iface Interface
	}{
		{"8bit HDMI", 0x80 | 2<<3 | 2, BitDepth8, InterfaceHDMI},
		{"10bit DisplayPort", 0x80 | 3<<3 | 5, BitDepth10, InterfaceDisplayPort},
		{"6bit DVI", 0x80 | 1<<3 | 1, BitDepth6, InterfaceDVI},
		{"16bit HDMI B", 0x80 | 6<<3 | 3, BitDepth16, InterfaceHDMIB},
		{"14bit MDDI", 0x80 | 5<<3 | 4, BitDepth14, InterfaceMDDI},
		{"undefined depth and interface", 0x80, BitDepthUndefined, InterfaceUndefined},
		{"reserved depth", 0x80 | 7<<3, BitDepthUndefined, InterfaceUndefined},
		{"reserved interface", 0x80 | 2<<3 | 6, BitDepth8, InterfaceUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := Decode(baseBlock(func(b []byte) { b[inputTypeOffset] = tt.input }))
			require.NoError(t, err)
			require.NotNil(t, desc.BitDepth)
			require.NotNil(t, desc.Interface)
			assert.Equal(t, tt.depth, *desc.BitDepth)
			assert.Equal(t, tt.iface, *desc.Interface)
		})
	}
}

func TestDecodeAnalogInput(t *testing.T) {
	desc, err := Decode(baseBlock(func(b []byte) { b[inputTypeOffset] = 0x00 }))
	require.NoError(t, err)
	assert.Nil(t, desc.BitDepth)
	assert.Nil(t, desc.Interface)
}

func TestDecodeStringDescriptors(t *testing.T) {
	desc, err := Decode(baseBlock(
		withStringDescriptor(0, tagSerialNumber, "HX1B23C"),
		withStringDescriptor(1, tagProductName, "DELL U2720Q"),
	))
	require.NoError(t, err)
	assert.Equal(t, "HX1B23C", desc.SerialNumber)
	assert.Equal(t, "DELL U2720Q", desc.Name)
}

func TestDescriptorTextTruncatesAtNewline(t *testing.T) {
	desc, err := Decode(baseBlock(
		withStringDescriptor(0, tagProductName, "SHORT"),
		func(b []byte) {
			// bytes after the 0x0A terminator must not leak into the name
			payload := b[descriptorBase+descriptorTextLo:]
			copy(payload[6:], "JUNK")
		},
	))
	require.NoError(t, err)
	assert.Equal(t, "SHORT", desc.Name)
}

func TestDescriptorTextDropsNonASCII(t *testing.T) {
	desc, err := Decode(baseBlock(
		withStringDescriptor(0, tagProductName, "AB"),
		func(b []byte) {
			b[descriptorBase+descriptorTextLo+1] = 0xC3 // invalid byte inside the text
		},
	))
	require.NoError(t, err)
	assert.Equal(t, "A", desc.Name)
}

func TestBlankStringDescriptorIsAbsent(t *testing.T) {
	desc, err := Decode(baseBlock(
		withStringDescriptor(0, tagSerialNumber, "   "),
	))
	require.NoError(t, err)
	assert.Empty(t, desc.SerialNumber)
}

func TestDataStringDescriptorIgnored(t *testing.T) {
	desc, err := Decode(baseBlock(
		withStringDescriptor(0, tagDataString, "NOT A NAME"),
	))
	require.NoError(t, err)
	assert.Empty(t, desc.Name)
	assert.Empty(t, desc.SerialNumber)
}

func TestNumericSerialFieldIgnored(t *testing.T) {
	// Older decoders read a 32-bit serial at offset 0x0C. The descriptor
	// string is the only supported source: the numeric field alone must not
	// produce a serial, and the descriptor wins when both are present.
	numeric := func(b []byte) {
		b[0x0C], b[0x0D], b[0x0E], b[0x0F] = 0x12, 0x34, 0x56, 0x78
	}

	desc, err := Decode(baseBlock(numeric))
	require.NoError(t, err)
	assert.Empty(t, desc.SerialNumber)

	desc, err = Decode(baseBlock(numeric, withStringDescriptor(0, tagSerialNumber, "SN42")))
	require.NoError(t, err)
	assert.Equal(t, "SN42", desc.SerialNumber)
}

func TestResolutionSelectionPrefersArea(t *testing.T) {
	desc, err := Decode(baseBlock(
		withTiming(0, 1920, 1080, 60),
		withTiming(1, 2560, 1440, 60),
		withTiming(2, 1920, 1080, 144),
	))
	require.NoError(t, err)
	require.NotNil(t, desc.Resolution)

	// the larger area wins over the higher refresh at a smaller area
	assert.Equal(t, 2560, desc.Resolution.Width)
	assert.Equal(t, 1440, desc.Resolution.Height)
	assert.InDelta(t, 60, desc.Resolution.RefreshRate, 0.01)
}

func TestResolutionSelectionTieBreaksOnRefresh(t *testing.T) {
	desc, err := Decode(baseBlock(
		withTiming(0, 1920, 1080, 60),
		withTiming(1, 1920, 1080, 144),
	))
	require.NoError(t, err)
	require.NotNil(t, desc.Resolution)
	assert.InDelta(t, 144, desc.Resolution.RefreshRate, 0.01)
}

func TestNoTimingDescriptors(t *testing.T) {
	desc, err := Decode(baseBlock(
		withStringDescriptor(0, tagProductName, "NAME"),
	))
	require.NoError(t, err)
	assert.Nil(t, desc.Resolution)
}

func TestDegenerateTimingSkipped(t *testing.T) {
	desc, err := Decode(baseBlock(func(b []byte) {
		// nonzero pixel clock but zero geometry: not a usable timing
		b[descriptorBase] = 0x01
	}))
	require.NoError(t, err)
	assert.Nil(t, desc.Resolution)
}

func TestExtensionDataIgnored(t *testing.T) {
	block := baseBlock(withTiming(0, 1920, 1080, 60))
	extended := append(append([]byte{}, block...), make([]byte, 128)...)

	fromBase, err := Decode(block)
	require.NoError(t, err)
	fromExtended, err := Decode(extended)
	require.NoError(t, err)
	assert.Equal(t, fromBase, fromExtended)
}

// Package xbox360 decodes the classic Xbox 360 wired/wireless controller
// HID report.
//
// There is no encoder: this bridge has no way to make a Linux USB HID
// gadget impersonate an Xbox 360 controller convincingly (the real thing
// speaks a vendor-specific, non-HID-compliant protocol over its own
// interface layout), so xbox360 is registered decode-only and the
// descriptor's Supported flag is false. It can still be used as an input
// source — just never as the bridge's output target.
package xbox360

const (
	VendorID  uint16 = 0x045E
	ProductID uint16 = 0x028E

	DisplayName = "Xbox 360 Controller"

	// MinInputLen is the shortest raw report Decode will accept: the
	// real report is 20 bytes, but only the first 14 carry anything this
	// decoder reads (buttons, triggers, both sticks).
	MinInputLen = 14

	// ReportLen documents the real device's report size. It plays no
	// role here since this descriptor has no Encode function.
	ReportLen = 20
)

// byte 2 bits.
const (
	bitDpadUp    uint8 = 0x01
	bitDpadDown  uint8 = 0x02
	bitDpadLeft  uint8 = 0x04
	bitDpadRight uint8 = 0x08
	bitStart     uint8 = 0x10
	bitBack      uint8 = 0x20
	bitThumbL    uint8 = 0x40
	bitThumbR    uint8 = 0x80
)

// byte 3 bits.
const (
	bitLB    uint8 = 0x01
	bitRB    uint8 = 0x02
	bitGuide uint8 = 0x04
	bitA     uint8 = 0x10
	bitB     uint8 = 0x20
	bitX     uint8 = 0x40
	bitY     uint8 = 0x80
)

const (
	offDpadButtons = 2
	offFaceButtons = 3
	offTrigL       = 4
	offTrigR       = 5
	offLeftX       = 6
	offLeftY       = 8
	offRightX      = 10
	offRightY      = 12
)

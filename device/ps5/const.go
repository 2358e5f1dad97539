// Package ps5 decodes and encodes the DualSense-family HID report used by
// Sony's PS5 controller, both over its Bluetooth HOGP input transport and
// the bridge's own USB gadget output transport.
//
// The wire layout follows the exact byte offsets pinned by the bridge's
// specification: bytes 2-7 carry the two analog sticks and both triggers,
// byte 9 packs the four main buttons and the dpad direction nibble, byte 10
// packs bumpers/stick-clicks/specials as independent bits, and byte 11
// carries the logo and touchpad-click buttons.
package ps5

const (
	VendorID  uint16 = 0x054C
	ProductID uint16 = 0x0CE6

	DisplayName = "DualSense (PS5)"

	// MinInputLen is the shortest raw report Decode will accept: it must
	// be able to read through byte 11 inclusive.
	MinInputLen = 12

	// ReportLen is the fixed size of the encoded USB HID input report
	// this bridge emits when DualSense is the chosen output target.
	ReportLen = 64

	ReportIDInput = 0x01
)

// Byte offsets shared by Decode and Encode.
const (
	offLeftX    = 2
	offLeftY    = 3
	offRightX   = 4
	offRightY   = 5
	offTrigL    = 6
	offTrigR    = 7
	offReserved = 8
	offMainDpad = 9
	offBitfield = 10
	offLogoTP   = 11

	offGyroX  = 13
	offGyroY  = 15
	offGyroZ  = 17
	offAccelX = 19
	offAccelY = 21
	offAccelZ = 23

	offBattery     = 30
	offBatteryFlag = 31
	offTouch1Meta  = 32
	offTouch1XY    = 33
	offTouch2Meta  = 36
	offTouch2XY    = 37
)

// byte 9 main-button bits.
const (
	bitMainUpper uint8 = 0x80
	bitMainRight uint8 = 0x40
	bitMainLower uint8 = 0x20
	bitMainLeft  uint8 = 0x10
	maskDpad     uint8 = 0x0F
)

// byte 10 bits. This is a genuine bitfield: each button is an independent
// bit, so any combination (e.g. a bumper held together with a stick click)
// decodes correctly. An earlier revision of this decoder tested byte 10
// against exact decimal values with a switch, which only ever matched one
// button at a time — that bug is why this is spelled out as distinct masks
// rather than a value table.
const (
	bitBumperLeft   uint8 = 0x01
	bitBumperRight  uint8 = 0x02
	bitSpecialLeft  uint8 = 0x10
	bitSpecialRight uint8 = 0x20
	bitStickLeft    uint8 = 0x40
	bitStickRight   uint8 = 0x80
)

// byte 11 bits.
const (
	bitLogo     uint8 = 0x01
	bitTouchpad uint8 = 0x02
)

const touchInactiveFlag uint8 = 0x80

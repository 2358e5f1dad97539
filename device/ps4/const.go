// Package ps4 decodes and encodes the DualShock4-family HID report used by
// Sony's PS4 controller.
//
// The report layout mirrors the one Sony's own USB HID descriptor uses:
// bytes 1-4 carry the two analog sticks, byte 5 packs the dpad hat nibble
// and the four face buttons, byte 6 packs the bumpers, share/options, and
// stick-click buttons, and byte 7 carries the PS and touchpad-click buttons
// alongside a free-running counter in its upper six bits.
package ps4

const (
	VendorID  uint16 = 0x054C
	ProductID uint16 = 0x05C4

	DisplayName = "DualShock 4 (PS4)"

	// MinInputLen is the shortest raw report Decode will accept: it must
	// be able to read through byte 7 inclusive (sticks, dpad, face
	// buttons, bumpers, specials).
	MinInputLen = 8

	ReportLen = 64

	ReportIDInput = 0x01
)

// Byte offsets shared by Decode and Encode.
const (
	offLeftX  = 1
	offLeftY  = 2
	offRightX = 3
	offRightY = 4

	offDpadFace = 5
	offBumpers  = 6
	offSpecials = 7

	offTrigL = 8
	offTrigR = 9

	offGyroX  = 13
	offGyroY  = 15
	offGyroZ  = 17
	offAccelX = 19
	offAccelY = 21
	offAccelZ = 23

	offBattery    = 30
	offTouch1Meta = 35
	offTouch1XY   = 36
	offTouch2Meta = 39
	offTouch2XY   = 40
)

// byte 5: low nibble is the dpad hat (same 0-7/8-released encoding as
// gamepad.DPadFromNibble), high nibble is the four face buttons.
const (
	maskDpad      uint8 = 0x0F
	bitFaceSquare uint8 = 0x10 // mapped to MainButtons.Left
	bitFaceCross  uint8 = 0x20 // mapped to MainButtons.Lower
	bitFaceCircle uint8 = 0x40 // mapped to MainButtons.Right
	bitFaceTri    uint8 = 0x80 // mapped to MainButtons.Upper
)

// byte 6 bits.
const (
	bitBumperLeft  uint8 = 0x01
	bitBumperRight uint8 = 0x02
	bitShare       uint8 = 0x10 // mapped to Specials.Left
	bitOptions     uint8 = 0x20 // mapped to Specials.Right
	bitStickLeft   uint8 = 0x40
	bitStickRight  uint8 = 0x80
)

// byte 7 bits. The upper six bits are a free-running report counter and
// are not part of the universal model; Decode ignores them and Encode
// writes its own.
const (
	bitPS       uint8 = 0x01
	bitTouchpad uint8 = 0x02
	counterMask uint8 = 0xFC
	counterBit  uint8 = 0x04
)

const (
	batteryLevelMask    uint8 = 0x0F
	batteryChargingFlag uint8 = 0x10
)

const touchInactiveFlag uint8 = 0x80

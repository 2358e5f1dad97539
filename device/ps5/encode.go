package ps5

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/padbridge/gamepad-bridge/gamepad"
)

// counter is the descriptor's mutable companion state: a monotonic report
// counter written into byte 1 of every encoded report. Real DualSense hosts
// tolerate a report with counter 0, but some finicky ones expect it to
// advance, so the bridge always advances it rather than trying to detect
// which kind of host it is talking to (see the counter-bytes open question
// in the design notes).
var counter uint32

// Encode renders a UniversalGamepad as a DualSense-shaped USB HID input
// report. It writes into the same byte offsets Decode reads from, so that
// Decode(Encode(u)) reproduces u for every field this model represents.
func Encode(u gamepad.UniversalGamepad) ([]byte, error) {
	b := make([]byte, ReportLen)

	b[0] = ReportIDInput
	b[1] = uint8(atomic.AddUint32(&counter, 1))

	b[offLeftX] = u.Sticks.Left.X
	b[offLeftY] = u.Sticks.Left.Y
	b[offRightX] = u.Sticks.Right.X
	b[offRightY] = u.Sticks.Right.Y
	b[offTrigL] = u.Triggers.Left
	b[offTrigR] = u.Triggers.Right

	main := uint8(0)
	if u.Buttons.Main.Upper {
		main |= bitMainUpper
	}
	if u.Buttons.Main.Right {
		main |= bitMainRight
	}
	if u.Buttons.Main.Lower {
		main |= bitMainLower
	}
	if u.Buttons.Main.Left {
		main |= bitMainLeft
	}
	b[offMainDpad] = main | gamepad.NibbleFromDPad(u.Buttons.DPad)

	bitfield := uint8(0)
	if u.Buttons.Bumpers.Left {
		bitfield |= bitBumperLeft
	}
	if u.Buttons.Bumpers.Right {
		bitfield |= bitBumperRight
	}
	if u.Buttons.Specials.Left {
		bitfield |= bitSpecialLeft
	}
	if u.Buttons.Specials.Right {
		bitfield |= bitSpecialRight
	}
	if u.Sticks.Left.Pressed {
		bitfield |= bitStickLeft
	}
	if u.Sticks.Right.Pressed {
		bitfield |= bitStickRight
	}
	b[offBitfield] = bitfield

	logoTP := uint8(0)
	if u.Buttons.Specials.Logo {
		logoTP |= bitLogo
	}
	if u.Buttons.Specials.Touchpad {
		logoTP |= bitTouchpad
	}
	b[offLogoTP] = logoTP

	binary.LittleEndian.PutUint16(b[offGyroX:offGyroX+2], uint16(u.Motion.GyroX))
	binary.LittleEndian.PutUint16(b[offGyroY:offGyroY+2], uint16(u.Motion.GyroY))
	binary.LittleEndian.PutUint16(b[offGyroZ:offGyroZ+2], uint16(u.Motion.GyroZ))
	binary.LittleEndian.PutUint16(b[offAccelX:offAccelX+2], uint16(u.Motion.AccelX))
	binary.LittleEndian.PutUint16(b[offAccelY:offAccelY+2], uint16(u.Motion.AccelY))
	binary.LittleEndian.PutUint16(b[offAccelZ:offAccelZ+2], uint16(u.Motion.AccelZ))

	b[offBattery] = u.Battery.Percent
	if u.Battery.Charging {
		b[offBatteryFlag] = 1
	}

	b[offTouch1Meta], b[offTouch1XY], b[offTouch1XY+1], b[offTouch1XY+2] = packTouch(u.Touchpad.Point1)
	b[offTouch2Meta], b[offTouch2XY], b[offTouch2XY+1], b[offTouch2XY+2] = packTouch(u.Touchpad.Point2)

	return b, nil
}

// packTouch encodes a touch contact into its active-flag byte and 12-bit-X
// / 12-bit-Y packed coordinate triplet. Inactive or sentinel-coordinate
// points encode as inactive with zeroed coordinates; unpackTouch restores
// the TouchpadUnknownCoord sentinel for those on the way back.
func packTouch(p gamepad.TouchPoint) (meta, x0, x1y0, y1 byte) {
	if !p.Active || p.X == gamepad.TouchpadUnknownCoord || p.Y == gamepad.TouchpadUnknownCoord {
		return touchInactiveFlag, 0, 0, 0
	}
	x := p.X & 0x0FFF
	y := p.Y & 0x0FFF
	return 0, byte(x & 0xFF), byte((x>>8)&0x0F) | byte((y&0x0F)<<4), byte(y >> 4)
}

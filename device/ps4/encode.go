package ps4

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/padbridge/gamepad-bridge/gamepad"
)

// counter is the descriptor's mutable companion state: the free-running
// report counter DualShock4 hosts expect in the upper six bits of byte 7.
var counter uint32

// Encode renders a UniversalGamepad as a DualShock4-shaped USB HID input
// report, writing into the same byte offsets Decode reads from.
func Encode(u gamepad.UniversalGamepad) ([]byte, error) {
	b := make([]byte, ReportLen)

	b[0] = ReportIDInput
	b[offLeftX] = u.Sticks.Left.X
	b[offLeftY] = u.Sticks.Left.Y
	b[offRightX] = u.Sticks.Right.X
	b[offRightY] = u.Sticks.Right.Y

	face := uint8(0)
	if u.Buttons.Main.Upper {
		face |= bitFaceTri
	}
	if u.Buttons.Main.Right {
		face |= bitFaceCircle
	}
	if u.Buttons.Main.Lower {
		face |= bitFaceCross
	}
	if u.Buttons.Main.Left {
		face |= bitFaceSquare
	}
	b[offDpadFace] = face | gamepad.NibbleFromDPad(u.Buttons.DPad)

	bumpers := uint8(0)
	if u.Buttons.Bumpers.Left {
		bumpers |= bitBumperLeft
	}
	if u.Buttons.Bumpers.Right {
		bumpers |= bitBumperRight
	}
	if u.Buttons.Specials.Left {
		bumpers |= bitShare
	}
	if u.Buttons.Specials.Right {
		bumpers |= bitOptions
	}
	if u.Sticks.Left.Pressed {
		bumpers |= bitStickLeft
	}
	if u.Sticks.Right.Pressed {
		bumpers |= bitStickRight
	}
	b[offBumpers] = bumpers

	specials := uint8(0)
	if u.Buttons.Specials.Logo {
		specials |= bitPS
	}
	if u.Buttons.Specials.Touchpad {
		specials |= bitTouchpad
	}
	c := uint8(atomic.AddUint32(&counter, 1)) & 0x3F
	b[offSpecials] = specials | (c << 2 & counterMask)

	b[offTrigL] = u.Triggers.Left
	b[offTrigR] = u.Triggers.Right

	binary.LittleEndian.PutUint16(b[offGyroX:offGyroX+2], uint16(u.Motion.GyroX))
	binary.LittleEndian.PutUint16(b[offGyroY:offGyroY+2], uint16(u.Motion.GyroY))
	binary.LittleEndian.PutUint16(b[offGyroZ:offGyroZ+2], uint16(u.Motion.GyroZ))
	binary.LittleEndian.PutUint16(b[offAccelX:offAccelX+2], uint16(u.Motion.AccelX))
	binary.LittleEndian.PutUint16(b[offAccelY:offAccelY+2], uint16(u.Motion.AccelY))
	binary.LittleEndian.PutUint16(b[offAccelZ:offAccelZ+2], uint16(u.Motion.AccelZ))

	b[offBattery] = encodeBattery(u.Battery)

	b[offTouch1Meta], b[offTouch1XY], b[offTouch1XY+1], b[offTouch1XY+2] = packTouch(u.Touchpad.Point1)
	b[offTouch2Meta], b[offTouch2XY], b[offTouch2XY+1], b[offTouch2XY+2] = packTouch(u.Touchpad.Point2)

	return b, nil
}

func encodeBattery(bat gamepad.Battery) uint8 {
	if bat.Percent == gamepad.BatteryUnknown {
		return 0
	}
	level := uint8(uint16(bat.Percent) * 10 / 100)
	v := level & batteryLevelMask
	if bat.Charging {
		v |= batteryChargingFlag
	}
	return v
}

// packTouch encodes a touch contact into its active-flag byte and 12-bit-X
// / 12-bit-Y packed coordinate triplet; the inverse of unpackTouch.
func packTouch(p gamepad.TouchPoint) (meta, x0, x1y0, y1 byte) {
	if !p.Active || p.X == gamepad.TouchpadUnknownCoord || p.Y == gamepad.TouchpadUnknownCoord {
		return touchInactiveFlag, 0, 0, 0
	}
	x := p.X & 0x0FFF
	y := p.Y & 0x0FFF
	return 0, byte(x & 0xFF), byte((x>>8)&0x0F) | byte((y&0x0F)<<4), byte(y >> 4)
}

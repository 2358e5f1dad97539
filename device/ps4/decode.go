package ps4

import (
	"encoding/binary"

	"github.com/padbridge/gamepad-bridge/gamepad"
)

// Decode parses a raw DualShock4 HID input report into a UniversalGamepad.
// It fails fast on a short buffer and never reads past len(raw).
func Decode(raw []byte) (gamepad.UniversalGamepad, error) {
	if len(raw) < MinInputLen {
		return gamepad.UniversalGamepad{}, gamepad.ErrBufferTooShort
	}

	u := gamepad.UniversalGamepad{
		Sticks: gamepad.Sticks{
			Left: gamepad.Stick{
				X:       raw[offLeftX],
				Y:       raw[offLeftY],
				Pressed: raw[offBumpers]&bitStickLeft != 0,
			},
			Right: gamepad.Stick{
				X:       raw[offRightX],
				Y:       raw[offRightY],
				Pressed: raw[offBumpers]&bitStickRight != 0,
			},
		},
		Buttons: gamepad.Buttons{
			Bumpers: gamepad.Bumpers{
				Left:  raw[offBumpers]&bitBumperLeft != 0,
				Right: raw[offBumpers]&bitBumperRight != 0,
			},
			Main: gamepad.MainButtons{
				Upper: raw[offDpadFace]&bitFaceTri != 0,
				Right: raw[offDpadFace]&bitFaceCircle != 0,
				Lower: raw[offDpadFace]&bitFaceCross != 0,
				Left:  raw[offDpadFace]&bitFaceSquare != 0,
			},
			DPad: gamepad.DPadFromNibble(raw[offDpadFace] & maskDpad),
			Specials: gamepad.SpecialButtons{
				Left:     raw[offBumpers]&bitShare != 0,
				Right:    raw[offBumpers]&bitOptions != 0,
				Logo:     raw[offSpecials]&bitPS != 0,
				Touchpad: raw[offSpecials]&bitTouchpad != 0,
			},
		},
	}

	if len(raw) > offTrigR {
		u.Triggers = gamepad.Triggers{
			Left:  raw[offTrigL],
			Right: raw[offTrigR],
		}
	}

	if len(raw) >= offAccelZ+2 {
		u.Motion = gamepad.Motion{
			GyroX:  int16(binary.LittleEndian.Uint16(raw[offGyroX : offGyroX+2])),
			GyroY:  int16(binary.LittleEndian.Uint16(raw[offGyroY : offGyroY+2])),
			GyroZ:  int16(binary.LittleEndian.Uint16(raw[offGyroZ : offGyroZ+2])),
			AccelX: int16(binary.LittleEndian.Uint16(raw[offAccelX : offAccelX+2])),
			AccelY: int16(binary.LittleEndian.Uint16(raw[offAccelY : offAccelY+2])),
			AccelZ: int16(binary.LittleEndian.Uint16(raw[offAccelZ : offAccelZ+2])),
		}
	}

	if len(raw) >= offTouch2XY+3 {
		u.Battery = decodeBattery(raw[offBattery])
		u.Touchpad = gamepad.Touchpad{
			Point1: unpackTouch(raw[offTouch1Meta], raw[offTouch1XY:offTouch1XY+3]),
			Point2: unpackTouch(raw[offTouch2Meta], raw[offTouch2XY:offTouch2XY+3]),
		}
	} else {
		u.Battery.Percent = gamepad.BatteryUnknown
		u.Touchpad = gamepad.Touchpad{
			Point1: gamepad.TouchPoint{X: gamepad.TouchpadUnknownCoord, Y: gamepad.TouchpadUnknownCoord},
			Point2: gamepad.TouchPoint{X: gamepad.TouchpadUnknownCoord, Y: gamepad.TouchpadUnknownCoord},
		}
	}

	return u, nil
}

// decodeBattery maps the controller's 0-10 battery level nibble to a 0-100
// percentage and pulls the charging flag out of the same byte.
func decodeBattery(b uint8) gamepad.Battery {
	level := b & batteryLevelMask
	if level > 10 {
		level = 10
	}
	return gamepad.Battery{
		Percent:  uint8(uint16(level) * 100 / 10),
		Charging: b&batteryChargingFlag != 0,
	}
}

// unpackTouch decodes a touch contact's active flag and its 12-bit-X /
// 12-bit-Y packed coordinate triplet, matching packTouch in encode.go.
func unpackTouch(meta uint8, xy []byte) gamepad.TouchPoint {
	active := meta&touchInactiveFlag == 0
	x := uint16(xy[0]) | (uint16(xy[1]&0x0F) << 8)
	y := (uint16(xy[1]) >> 4) | (uint16(xy[2]) << 4)
	if !active {
		x, y = gamepad.TouchpadUnknownCoord, gamepad.TouchpadUnknownCoord
	}
	return gamepad.TouchPoint{X: x, Y: y, Active: active}
}

package ps5

import (
	"encoding/binary"

	"github.com/padbridge/gamepad-bridge/gamepad"
)

// Decode parses a raw DualSense HID input report (as delivered over
// Bluetooth HOGP) into a UniversalGamepad. It fails fast on a short buffer
// and never reads past len(raw).
func Decode(raw []byte) (gamepad.UniversalGamepad, error) {
	if len(raw) < MinInputLen {
		return gamepad.UniversalGamepad{}, gamepad.ErrBufferTooShort
	}

	u := gamepad.UniversalGamepad{
		Sticks: gamepad.Sticks{
			Left: gamepad.Stick{
				X:       raw[offLeftX],
				Y:       raw[offLeftY],
				Pressed: raw[offBitfield]&bitStickLeft != 0,
			},
			Right: gamepad.Stick{
				X:       raw[offRightX],
				Y:       raw[offRightY],
				Pressed: raw[offBitfield]&bitStickRight != 0,
			},
		},
		Triggers: gamepad.Triggers{
			Left:  raw[offTrigL],
			Right: raw[offTrigR],
		},
		Buttons: gamepad.Buttons{
			Bumpers: gamepad.Bumpers{
				Left:  raw[offBitfield]&bitBumperLeft != 0,
				Right: raw[offBitfield]&bitBumperRight != 0,
			},
			Main: gamepad.MainButtons{
				Upper: raw[offMainDpad]&bitMainUpper != 0,
				Right: raw[offMainDpad]&bitMainRight != 0,
				Lower: raw[offMainDpad]&bitMainLower != 0,
				Left:  raw[offMainDpad]&bitMainLeft != 0,
			},
			DPad: gamepad.DPadFromNibble(raw[offMainDpad] & maskDpad),
			Specials: gamepad.SpecialButtons{
				Left:     raw[offBitfield]&bitSpecialLeft != 0,
				Right:    raw[offBitfield]&bitSpecialRight != 0,
				Logo:     raw[offLogoTP]&bitLogo != 0,
				Touchpad: raw[offLogoTP]&bitTouchpad != 0,
			},
		},
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
		u.Battery = gamepad.Battery{
			Percent:  raw[offBattery],
			Charging: raw[offBatteryFlag] != 0,
		}
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

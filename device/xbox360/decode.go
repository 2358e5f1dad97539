package xbox360

import (
	"encoding/binary"

	"github.com/padbridge/gamepad-bridge/gamepad"
)

// Decode parses a raw Xbox 360 HID input report into a UniversalGamepad.
// Motion, touchpad, and battery are not part of this controller's report
// and are left at their sentinel/zero values.
func Decode(raw []byte) (gamepad.UniversalGamepad, error) {
	if len(raw) < MinInputLen {
		return gamepad.UniversalGamepad{}, gamepad.ErrBufferTooShort
	}

	u := gamepad.UniversalGamepad{
		Sticks: gamepad.Sticks{
			Left: gamepad.Stick{
				X:       signedToUnsigned(raw[offLeftX : offLeftX+2]),
				Y:       signedToUnsigned(raw[offLeftY : offLeftY+2]),
				Pressed: raw[offDpadButtons]&bitThumbL != 0,
			},
			Right: gamepad.Stick{
				X:       signedToUnsigned(raw[offRightX : offRightX+2]),
				Y:       signedToUnsigned(raw[offRightY : offRightY+2]),
				Pressed: raw[offDpadButtons]&bitThumbR != 0,
			},
		},
		Triggers: gamepad.Triggers{
			Left:  raw[offTrigL],
			Right: raw[offTrigR],
		},
		Buttons: gamepad.Buttons{
			Bumpers: gamepad.Bumpers{
				Left:  raw[offFaceButtons]&bitLB != 0,
				Right: raw[offFaceButtons]&bitRB != 0,
			},
			Main: gamepad.MainButtons{
				Upper: raw[offFaceButtons]&bitY != 0,
				Right: raw[offFaceButtons]&bitB != 0,
				Lower: raw[offFaceButtons]&bitA != 0,
				Left:  raw[offFaceButtons]&bitX != 0,
			},
			DPad: gamepad.DPad{
				Up:    raw[offDpadButtons]&bitDpadUp != 0,
				Right: raw[offDpadButtons]&bitDpadRight != 0,
				Down:  raw[offDpadButtons]&bitDpadDown != 0,
				Left:  raw[offDpadButtons]&bitDpadLeft != 0,
			},
			Specials: gamepad.SpecialButtons{
				Left:  raw[offDpadButtons]&bitBack != 0,
				Right: raw[offDpadButtons]&bitStart != 0,
				Logo:  raw[offFaceButtons]&bitGuide != 0,
			},
		},
		Battery: gamepad.Battery{Percent: gamepad.BatteryUnknown},
		Touchpad: gamepad.Touchpad{
			Point1: gamepad.TouchPoint{X: gamepad.TouchpadUnknownCoord, Y: gamepad.TouchpadUnknownCoord},
			Point2: gamepad.TouchPoint{X: gamepad.TouchpadUnknownCoord, Y: gamepad.TouchpadUnknownCoord},
		},
	}

	return u, nil
}

// signedToUnsigned rescales a little-endian signed 16-bit stick axis
// (-32768..32767) to the universal model's unsigned 8-bit axis
// (0..255, centered at 128).
func signedToUnsigned(b []byte) uint8 {
	v := int32(int16(binary.LittleEndian.Uint16(b)))
	return uint8((v + 32768) >> 8)
}

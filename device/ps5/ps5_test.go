package ps5

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padbridge/gamepad-bridge/gamepad"
)

func neutralRaw() []byte {
	raw := make([]byte, MinInputLen)
	raw[offLeftX] = 128
	raw[offLeftY] = 128
	raw[offRightX] = 128
	raw[offRightY] = 128
	raw[offMainDpad] = 8
	return raw
}

func TestDecode_S1_Neutral(t *testing.T) {
	raw := neutralRaw()

	u, err := Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, uint8(128), u.Sticks.Left.X)
	assert.Equal(t, uint8(128), u.Sticks.Left.Y)
	assert.Equal(t, uint8(128), u.Sticks.Right.X)
	assert.Equal(t, uint8(128), u.Sticks.Right.Y)
	assert.Equal(t, uint8(0), u.Triggers.Left)
	assert.Equal(t, uint8(0), u.Triggers.Right)
	assert.Equal(t, gamepad.MainButtons{}, u.Buttons.Main)
	assert.Equal(t, gamepad.DPad{}, u.Buttons.DPad)
	assert.Equal(t, gamepad.SpecialButtons{}, u.Buttons.Specials)
	assert.Equal(t, gamepad.Bumpers{}, u.Buttons.Bumpers)
	assert.False(t, u.Sticks.Left.Pressed)
	assert.False(t, u.Sticks.Right.Pressed)
}

func TestDecode_S2_LowerMainButtonOnly(t *testing.T) {
	raw := neutralRaw()
	raw[offMainDpad] = 0x28 // dpad=8 (released) | lower=bit5 (0x20)

	u, err := Decode(raw)
	require.NoError(t, err)

	assert.True(t, u.Buttons.Main.Lower)
	assert.False(t, u.Buttons.Main.Upper)
	assert.False(t, u.Buttons.Main.Right)
	assert.False(t, u.Buttons.Main.Left)
	assert.Equal(t, gamepad.DPad{}, u.Buttons.DPad)
}

func TestDecode_S3_DpadNortheast(t *testing.T) {
	raw := neutralRaw()
	raw[offMainDpad] = 1 // low nibble only

	u, err := Decode(raw)
	require.NoError(t, err)

	assert.True(t, u.Buttons.DPad.Up)
	assert.True(t, u.Buttons.DPad.Right)
	assert.False(t, u.Buttons.DPad.Down)
	assert.False(t, u.Buttons.DPad.Left)
}

func TestDecode_S4_BumperAndStickClickTogether(t *testing.T) {
	raw := neutralRaw()
	raw[offBitfield] = 0x01 | 0x40 // bumper left | stick left pressed

	u, err := Decode(raw)
	require.NoError(t, err)

	assert.True(t, u.Buttons.Bumpers.Left)
	assert.True(t, u.Sticks.Left.Pressed)
	assert.False(t, u.Buttons.Bumpers.Right)
	assert.False(t, u.Sticks.Right.Pressed)
}

func TestDecode_BufferTooShort(t *testing.T) {
	_, err := Decode(make([]byte, MinInputLen-1))
	assert.ErrorIs(t, err, gamepad.ErrBufferTooShort)
}

func TestDecode_ShortReportLeavesBatteryAndTouchAtSentinels(t *testing.T) {
	raw := neutralRaw()

	u, err := Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, gamepad.BatteryUnknown, u.Battery.Percent)
	assert.Equal(t, gamepad.TouchpadUnknownCoord, u.Touchpad.Point1.X)
	assert.Equal(t, gamepad.TouchpadUnknownCoord, u.Touchpad.Point1.Y)
	assert.Equal(t, gamepad.TouchpadUnknownCoord, u.Touchpad.Point2.X)
	assert.Equal(t, gamepad.TouchpadUnknownCoord, u.Touchpad.Point2.Y)
}

func TestEncode_ProducesFixedReportLen(t *testing.T) {
	b, err := Encode(gamepad.Neutral())
	require.NoError(t, err)
	assert.Len(t, b, ReportLen)
	assert.Equal(t, uint8(ReportIDInput), b[0])
}

func TestRoundTrip_DecodeEncodeDecode(t *testing.T) {
	u := gamepad.Neutral()
	u.Buttons.Bumpers.Left = true
	u.Sticks.Left.Pressed = true
	u.Buttons.DPad = gamepad.DPadFromNibble(1)
	u.Buttons.Main.Lower = true
	u.Sticks.Left.X, u.Sticks.Left.Y = 10, 250
	u.Triggers.Right = 200
	u.Motion = gamepad.Motion{GyroX: -100, AccelZ: 16384}
	u.Battery = gamepad.Battery{Percent: 77, Charging: true}
	u.Touchpad.Point1 = gamepad.TouchPoint{X: 1200, Y: 900, Active: true}

	encoded, err := Encode(u)
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)

	assert.Equal(t, u.Sticks, decoded.Sticks)
	assert.Equal(t, u.Triggers, decoded.Triggers)
	assert.Equal(t, u.Buttons, decoded.Buttons)
	assert.Equal(t, u.Motion, decoded.Motion)
	assert.Equal(t, u.Battery, decoded.Battery)
	assert.Equal(t, u.Touchpad.Point1, decoded.Touchpad.Point1)
}

func TestRoundTrip_InactiveTouchStaysSentinel(t *testing.T) {
	u := gamepad.Neutral()

	encoded, err := Encode(u)
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)

	assert.False(t, decoded.Touchpad.Point1.Active)
	assert.Equal(t, gamepad.TouchpadUnknownCoord, decoded.Touchpad.Point1.X)
}

func TestEncode_CounterAdvancesAcrossCalls(t *testing.T) {
	a, err := Encode(gamepad.Neutral())
	require.NoError(t, err)
	b, err := Encode(gamepad.Neutral())
	require.NoError(t, err)
	assert.NotEqual(t, a[1], b[1])
}

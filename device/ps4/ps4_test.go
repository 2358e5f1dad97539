package ps4

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
	raw[offDpadFace] = 8
	return raw
}

func TestDecode_Neutral(t *testing.T) {
	u, err := Decode(neutralRaw())
	require.NoError(t, err)

	assert.Equal(t, uint8(128), u.Sticks.Left.X)
	assert.Equal(t, uint8(128), u.Sticks.Right.Y)
	assert.Equal(t, gamepad.MainButtons{}, u.Buttons.Main)
	assert.Equal(t, gamepad.DPad{}, u.Buttons.DPad)
	assert.False(t, u.Sticks.Left.Pressed)
}

func TestDecode_CrossButtonOnly(t *testing.T) {
	raw := neutralRaw()
	raw[offDpadFace] = 8 | bitFaceCross

	u, err := Decode(raw)
	require.NoError(t, err)

	assert.True(t, u.Buttons.Main.Lower)
	assert.False(t, u.Buttons.Main.Upper)
	assert.False(t, u.Buttons.Main.Right)
	assert.False(t, u.Buttons.Main.Left)
}

func TestDecode_DpadSouthwest(t *testing.T) {
	raw := neutralRaw()
	raw[offDpadFace] = 5 // low nibble only: down+left

	u, err := Decode(raw)
	require.NoError(t, err)

	assert.True(t, u.Buttons.DPad.Down)
	assert.True(t, u.Buttons.DPad.Left)
	assert.False(t, u.Buttons.DPad.Up)
	assert.False(t, u.Buttons.DPad.Right)
}

func TestDecode_BumperAndStickClickTogether(t *testing.T) {
	raw := neutralRaw()
	raw[offBumpers] = bitBumperRight | bitStickRight

	u, err := Decode(raw)
	require.NoError(t, err)

	assert.True(t, u.Buttons.Bumpers.Right)
	assert.True(t, u.Sticks.Right.Pressed)
	assert.False(t, u.Buttons.Bumpers.Left)
}

func TestDecode_ShareAndOptions(t *testing.T) {
	raw := neutralRaw()
	raw[offBumpers] = bitShare | bitOptions

	u, err := Decode(raw)
	require.NoError(t, err)

	assert.True(t, u.Buttons.Specials.Left)
	assert.True(t, u.Buttons.Specials.Right)
	assert.False(t, u.Buttons.Bumpers.Left)
	assert.False(t, u.Buttons.Bumpers.Right)
}

func TestDecode_BufferTooShort(t *testing.T) {
	_, err := Decode(make([]byte, MinInputLen-1))
	assert.ErrorIs(t, err, gamepad.ErrBufferTooShort)
}

func TestEncode_ProducesFixedReportLen(t *testing.T) {
	b, err := Encode(gamepad.Neutral())
	require.NoError(t, err)
	assert.Len(t, b, ReportLen)
	assert.Equal(t, uint8(ReportIDInput), b[0])
}

func TestRoundTrip_DecodeEncodeDecode(t *testing.T) {
	u := gamepad.Neutral()
	u.Buttons.Main.Lower = true
	u.Buttons.DPad = gamepad.DPadFromNibble(5)
	u.Buttons.Bumpers.Right = true
	u.Buttons.Specials.Left = true
	u.Sticks.Right.Pressed = true
	u.Triggers.Left = 90
	u.Motion = gamepad.Motion{GyroY: 321, AccelX: -200}
	u.Battery = gamepad.Battery{Percent: 70, Charging: true}
	u.Touchpad.Point2 = gamepad.TouchPoint{X: 500, Y: 300, Active: true}

	encoded, err := Encode(u)
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)

	assert.Equal(t, u.Sticks, decoded.Sticks)
	assert.Equal(t, u.Triggers, decoded.Triggers)
	assert.Equal(t, u.Buttons, decoded.Buttons)
	assert.Equal(t, u.Motion, decoded.Motion)
	assert.Equal(t, u.Battery, decoded.Battery)
	assert.Equal(t, u.Touchpad.Point2, decoded.Touchpad.Point2)
}

// Package gamepad defines the neutral intermediate representation that
// sits between an input gamepad's HID report and an output gamepad's HID
// report: UniversalGamepad. It also carries the static descriptor table
// that binds each supported model to its decoder, encoder, and the
// invariants a bridge needs to enforce (report length, minimum input size).
package gamepad

// Stick is one analog stick: raw unsigned axes plus its click button.
// X and Y are 0..=255 with 128 meaning centered; no signed interpretation
// is ever performed on them.
type Stick struct {
	X, Y    uint8
	Pressed bool
}

// Sticks holds both analog sticks.
type Sticks struct {
	Left, Right Stick
}

// Triggers holds both analog trigger axes. 0 is released, 255 is fully
// pressed.
type Triggers struct {
	Left, Right uint8
}

// Bumpers holds the two shoulder buttons (L1/R1 in PlayStation naming).
type Bumpers struct {
	Left, Right bool
}

// MainButtons names the four face buttons geometrically rather than by
// letter or symbol, so a decoder or encoder never has to know which vendor's
// label scheme it is translating.
type MainButtons struct {
	Upper, Right, Lower, Left bool
}

// DPad is the directional pad exploded into four independent booleans.
// Diagonals are represented as two simultaneous true values; opposing pairs
// (Up+Down, Left+Right) must never both be true — see DPadFromNibble.
type DPad struct {
	Up, Right, Down, Left bool
}

// SpecialButtons covers the buttons that sit outside the main face/bumper/
// trigger layout: share/options, the system logo button, and a touchpad
// click (where the source device has one).
type SpecialButtons struct {
	Left, Right, Logo, Touchpad bool
}

// Buttons aggregates every boolean-valued control on the pad.
type Buttons struct {
	Bumpers  Bumpers
	Main     MainButtons
	DPad     DPad
	Specials SpecialButtons
}

// Motion carries gyroscope and accelerometer samples for models that report
// them. Units are the device's raw fixed-point counts; a decoder that has no
// motion data leaves this at its neutral (all-zero) value.
type Motion struct {
	GyroX, GyroY, GyroZ    int16
	AccelX, AccelY, AccelZ int16
}

// TouchpadUnknownCoord is the sentinel written into a TouchPoint's X/Y when
// a decoder cannot recover a trustworthy coordinate (see the touchpad X
// open question in the design notes): callers must treat this value as
// "no reliable position", never as a real coordinate.
const TouchpadUnknownCoord uint16 = 0xFFFF

// TouchPoint is a single tracked contact on a touchpad-equipped pad.
type TouchPoint struct {
	X, Y   uint16
	Active bool
}

// Touchpad holds up to two simultaneous touch contacts.
type Touchpad struct {
	Point1, Point2 TouchPoint
}

// BatteryUnknown is the sentinel level for a decoder that has no battery
// telemetry to report.
const BatteryUnknown uint8 = 0xFF

// Battery is optional power-state telemetry.
type Battery struct {
	Percent  uint8
	Charging bool
}

// UniversalGamepad is the neutral intermediate representation at the core
// of the bridge. It is a plain value: no device handles, no buffers, safe
// to copy across goroutines and to compare with ==.
type UniversalGamepad struct {
	Sticks   Sticks
	Triggers Triggers
	Buttons  Buttons
	Motion   Motion
	Touchpad Touchpad
	Battery  Battery
}

// Neutral returns the well-defined rest state: every boolean false, both
// sticks centered at 128, both triggers at 0, motion zeroed, touchpad
// contacts inactive with unknown coordinates, and battery unknown.
func Neutral() UniversalGamepad {
	return UniversalGamepad{
		Sticks: Sticks{
			Left:  Stick{X: 128, Y: 128},
			Right: Stick{X: 128, Y: 128},
		},
		Touchpad: Touchpad{
			Point1: TouchPoint{X: TouchpadUnknownCoord, Y: TouchpadUnknownCoord},
			Point2: TouchPoint{X: TouchpadUnknownCoord, Y: TouchpadUnknownCoord},
		},
		Battery: Battery{Percent: BatteryUnknown},
	}
}

// DPadFromNibble expands the common 8-way HID dpad nibble encoding
// (0=N,1=NE,2=E,3=SE,4=S,5=SW,6=W,7=NW,8=released) into the four exploded
// booleans used by DPad. Any value other than 0..8 decodes to released,
// which keeps a corrupt nibble from ever producing an opposing-pair state.
func DPadFromNibble(n uint8) DPad {
	if n > 7 {
		return DPad{}
	}
	return DPad{
		Up:    n == 7 || n == 0 || n == 1,
		Right: n == 1 || n == 2 || n == 3,
		Down:  n == 3 || n == 4 || n == 5,
		Left:  n == 5 || n == 6 || n == 7,
	}
}

// NibbleFromDPad is the inverse of DPadFromNibble: it packs the exploded
// booleans back into the 8-way nibble, used by encoders that emit the
// nibble form. An invalid (opposing-pair) input maps to released (8),
// since no nibble value can represent it.
func NibbleFromDPad(d DPad) uint8 {
	switch {
	case (d.Up && d.Down) || (d.Left && d.Right):
		return 8
	case d.Up && d.Right:
		return 1
	case d.Right && d.Down:
		return 3
	case d.Down && d.Left:
		return 5
	case d.Left && d.Up:
		return 7
	case d.Up:
		return 0
	case d.Right:
		return 2
	case d.Down:
		return 4
	case d.Left:
		return 6
	default:
		return 8
	}
}

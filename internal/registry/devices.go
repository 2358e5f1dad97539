// Package registry's sole purpose is to blank-import every device package so
// their init() functions register with the gamepad descriptor table before
// main runs.
package registry

import (
	_ "github.com/padbridge/gamepad-bridge/device/ps4"     // Register DualShock4 descriptor
	_ "github.com/padbridge/gamepad-bridge/device/ps5"     // Register DualSense descriptor
	_ "github.com/padbridge/gamepad-bridge/device/xbox360" // Register Xbox 360 descriptor (decode-only)
)

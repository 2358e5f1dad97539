package hidlocator

import "errors"

// ErrNoBluetoothDevice is returned when no HID device on the system is
// attached over a Bluetooth transport.
var ErrNoBluetoothDevice = errors.New("hidlocator: no HID device connected over bluetooth")

// ErrNoSupportedDevice is returned when Bluetooth HID devices exist but
// none match a registered descriptor's (vendor, product) pair.
var ErrNoSupportedDevice = errors.New("hidlocator: no bluetooth HID device matches a supported gamepad")

// ErrOpenFailed is returned when a matching device was found but the OS
// refused to open it.
var ErrOpenFailed = errors.New("hidlocator: failed to open matched HID device")

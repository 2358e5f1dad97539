// Package hidlocator enumerates HID devices, filters them to the Bluetooth
// transport, and opens the one matching a registered gamepad descriptor.
package hidlocator

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/karalabe/hid"

	"github.com/padbridge/gamepad-bridge/gamepad"
)

// Locator owns the process-wide HID enumeration entry point. It is
// constructed once at startup and passed explicitly; each FindBluetoothHID
// call enumerates the system's HID devices afresh.
type Locator struct {
	logger *slog.Logger
}

// New constructs a Locator. logger may be nil, in which case diagnostics
// are discarded.
func New(logger *slog.Logger) *Locator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Locator{logger: logger}
}

// FindBluetoothHID returns every HID device attached over Bluetooth.
// It returns ErrNoBluetoothDevice if the system has no HID devices at all,
// or none of them are Bluetooth-attached.
func (l *Locator) FindBluetoothHID() ([]hid.DeviceInfo, error) {
	all, err := hid.Enumerate(0, 0)
	if err != nil {
		return nil, fmt.Errorf("enumerate HID devices: %w", err)
	}

	var bluetooth []hid.DeviceInfo
	for _, info := range all {
		bus, err := ClassifyBus(info.Path)
		if err != nil {
			l.logger.Debug("could not classify HID device bus, skipping", "path", info.Path, "error", err)
			continue
		}
		if bus == BusBluetooth {
			bluetooth = append(bluetooth, info)
		}
	}

	if len(bluetooth) == 0 {
		return nil, ErrNoBluetoothDevice
	}
	return bluetooth, nil
}

// OpenSupported finds a Bluetooth HID device whose (vendor, product) pair
// matches a registered gamepad descriptor and opens it. Devices that don't
// match any descriptor are accumulated and logged once; they never abort
// the search.
func (l *Locator) OpenSupported() (hid.Device, gamepad.Descriptor, error) {
	bluetooth, err := l.FindBluetoothHID()
	if err != nil {
		return nil, gamepad.Descriptor{}, err
	}

	type unmatched struct {
		vendorID, productID uint16
		product             string
	}
	var skipped []unmatched
	logSkipped := func() {
		for _, u := range skipped {
			l.logger.Info("bluetooth HID device connected but not a supported gamepad",
				"vendor", fmt.Sprintf("%#04x", u.vendorID), "product", fmt.Sprintf("%#04x", u.productID), "name", u.product)
		}
	}

	for _, info := range bluetooth {
		d, ok := gamepad.LookupByVendorProduct(info.VendorID, info.ProductID)
		if !ok {
			skipped = append(skipped, unmatched{info.VendorID, info.ProductID, info.Product})
			continue
		}

		logSkipped()
		dev, err := info.Open()
		if err != nil {
			return nil, gamepad.Descriptor{}, fmt.Errorf("%w: %s (vendor %#04x product %#04x): %v",
				ErrOpenFailed, d.DisplayName, info.VendorID, info.ProductID, err)
		}
		return dev, d, nil
	}

	logSkipped()
	return nil, gamepad.Descriptor{}, ErrNoSupportedDevice
}

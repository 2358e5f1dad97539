package pipeline

import (
	"context"
	"log/slog"

	"github.com/padbridge/gamepad-bridge/gamepad"
	"github.com/padbridge/gamepad-bridge/internal/log"
)

// InputDevice is the subset of hid.Device the reader needs. Declaring it
// locally keeps this package testable with a fake, rather than requiring a
// real HID handle.
type InputDevice interface {
	Read(b []byte) (int, error)
}

// readBufferSize is large enough to hold the raw input report of every
// descriptor this bridge registers; Decode only reads the bytes it needs.
const readBufferSize = 64

// RunReader blocks reading input reports from dev, decodes each with d, and
// publishes the result to pub. It returns when ctx is cancelled or the
// device read fails (the latter signals the HID handle was dropped).
// Decode errors are skipped, and each distinct error is logged once; they
// never stop the loop, since a single malformed report must not take down
// the bridge.
func RunReader(ctx context.Context, dev InputDevice, d gamepad.Descriptor, pub Publisher, logger *slog.Logger) error {
	buf := make([]byte, readBufferSize)
	loggedDecodeErrs := make(map[string]bool)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		n, err := dev.Read(buf)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.Error("HID input read failed, reader exiting", "error", err)
			return err
		}

		raw := make([]byte, n)
		copy(raw, buf[:n])
		log.TraceReport(logger, "in", raw)

		u, err := d.Decode(raw)
		if err != nil {
			if key := err.Error(); !loggedDecodeErrs[key] {
				loggedDecodeErrs[key] = true
				logger.Debug("dropping unreadable input report", "error", err, "len", n)
			}
			continue
		}

		pub.Publish(u)
	}
}

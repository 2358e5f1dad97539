package pipeline

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/padbridge/gamepad-bridge/gamepad"
	internallog "github.com/padbridge/gamepad-bridge/internal/log"
)

// writeReport opens gadgetPath write-only and non-appending, writes the
// encoded report in a single syscall, and closes it. A partial write is
// reported as an error for the caller to treat as transient.
//
// It is a package variable rather than a plain function so tests can wrap
// it to count invocations without touching a real gadget device.
var writeReport = func(gadgetPath string, d gamepad.Descriptor, u gamepad.UniversalGamepad, logger *slog.Logger) error {
	report, err := d.EncodeChecked(u)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	internallog.TraceReport(logger, "out", report)

	f, err := os.OpenFile(gadgetPath, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open gadget: %w", err)
	}
	defer f.Close()

	n, err := f.Write(report)
	if err != nil {
		return fmt.Errorf("write gadget: %w", err)
	}
	if n != len(report) {
		return fmt.Errorf("partial gadget write: wrote %d of %d bytes", n, len(report))
	}
	return nil
}

package log

import (
	"bytes"
	"context"
	"log/slog"
)

// HexDump renders data as a space-separated lowercase hex string, suitable
// for attaching to a trace-level log record of a raw HID report.
func HexDump(data []byte) string {
	var buf bytes.Buffer
	const hexdigits = "0123456789abcdef"
	for i, b := range data {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteByte(hexdigits[b>>4])
		buf.WriteByte(hexdigits[b&0x0f])
	}
	return buf.String()
}

// TraceReport logs a raw HID report at LevelTrace, tagged with its direction
// ("in" for a report read from the gamepad, "out" for a report written to
// the gadget). It is a no-op unless the logger's handler is enabled for
// LevelTrace, so callers may call it unconditionally from hot loops.
func TraceReport(logger *slog.Logger, direction string, data []byte) {
	if logger == nil || !logger.Enabled(context.Background(), LevelTrace) {
		return
	}
	logger.Log(context.Background(), LevelTrace, "raw report", "dir", direction, "len", len(data), "hex", HexDump(data))
}

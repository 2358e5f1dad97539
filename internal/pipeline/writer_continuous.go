package pipeline

import (
	"context"
	"log/slog"

	"github.com/padbridge/gamepad-bridge/gamepad"
)

// ContinuousWriter consumes decoded reports from a channel and writes each
// to the gadget file. When the channel backlog exceeds Threshold, it drains
// every pending value and keeps only the newest — the latest-wins
// coalescing policy — rather than falling behind the input rate.
type ContinuousWriter struct {
	GadgetPath string
	Descriptor gamepad.Descriptor
	Threshold  int
	Logger     *slog.Logger
}

// Run blocks consuming from in until ctx is cancelled or in is closed.
func (w *ContinuousWriter) Run(ctx context.Context, in chan gamepad.UniversalGamepad) {
	for {
		var u gamepad.UniversalGamepad
		select {
		case <-ctx.Done():
			return
		case v, ok := <-in:
			if !ok {
				return
			}
			u = v
		}

		if len(in) > w.Threshold {
		drain:
			for len(in) > 0 {
				select {
				case v, ok := <-in:
					if !ok {
						break drain
					}
					u = v
				default:
					break drain
				}
			}
		}

		if err := writeReport(w.GadgetPath, w.Descriptor, u, w.Logger); err != nil {
			w.Logger.Warn("gadget write failed, continuing", "error", err)
		}
	}
}

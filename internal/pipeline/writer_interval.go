package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/padbridge/gamepad-bridge/gamepad"
)

// pollInterval is how often the interval writer re-checks the clock. It is
// far shorter than any realistic Period so the cycle boundary is never
// missed by more than this much, while still not spinning the CPU.
const pollInterval = 100 * time.Microsecond

// IntervalWriter samples a shared latest value at a fixed period P and
// writes it to the gadget when the write lands within MaxDeviation of the
// start of its cycle. See shouldWrite for the timing rule.
type IntervalWriter struct {
	GadgetPath   string
	Descriptor   gamepad.Descriptor
	Period       time.Duration
	MaxDeviation float64
	Logger       *slog.Logger
}

// Run blocks sampling slot and writing to the gadget until ctx is
// cancelled.
func (w *IntervalWriter) Run(ctx context.Context, slot *LatestSlot) {
	start := time.Now()
	prevCycle := int64(-1)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		write, cycleIndex := shouldWrite(time.Since(start), w.Period, prevCycle, w.MaxDeviation)
		if write {
			prevCycle = cycleIndex
			if u, ok := slot.Load(); ok {
				if err := writeReport(w.GadgetPath, w.Descriptor, u, w.Logger); err != nil {
					w.Logger.Warn("gadget write failed, continuing", "error", err)
				}
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(pollInterval):
		}
	}
}

// shouldWrite implements the interval writer's timing rule: a write fires
// once per cycle, only if it is observed within maxDeviation of the cycle's
// start. maxDeviation == 0 forbids any write later than the exact boundary
// (rarely observed given discrete polling); maxDeviation == 1 disables
// timing, firing on the first poll of every new cycle.
func shouldWrite(elapsed, period time.Duration, prevCycle int64, maxDeviation float64) (write bool, cycleIndex int64) {
	cycleIndex = int64(elapsed / period)
	phase := float64(elapsed%period) / float64(period)
	write = cycleIndex > prevCycle && phase <= maxDeviation
	return write, cycleIndex
}

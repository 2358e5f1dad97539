package pipeline

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padbridge/gamepad-bridge/device/ps5"
	"github.com/padbridge/gamepad-bridge/gamepad"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ps5Descriptor(t *testing.T) gamepad.Descriptor {
	t.Helper()
	d, ok := gamepad.LookupByAlias("ps5")
	require.True(t, ok)
	return d
}

// fakeDevice is a trivial InputDevice that replays a fixed sequence of raw
// reports, one per Read call, then blocks until the context is done.
type fakeDevice struct {
	reports [][]byte
	i       int
	done    <-chan struct{}
}

func (f *fakeDevice) Read(b []byte) (int, error) {
	if f.i < len(f.reports) {
		n := copy(b, f.reports[f.i])
		f.i++
		return n, nil
	}
	<-f.done
	return 0, context.Canceled
}

func neutralPS5Report(counterByte uint8) []byte {
	b := make([]byte, 64)
	b[2], b[3], b[4], b[5] = 128, 128, 128, 128
	b[9] = 8
	b[1] = counterByte
	return b
}

func TestContinuousWriter_CoalescesBacklogToNewest(t *testing.T) {
	d := ps5Descriptor(t)
	gadget := filepath.Join(t.TempDir(), "hidg0")
	require.NoError(t, os.WriteFile(gadget, nil, 0o644))

	in := make(chan gamepad.UniversalGamepad, 32)
	for i := 0; i < 20; i++ {
		u := gamepad.Neutral()
		u.Triggers.Left = uint8(i + 1)
		in <- u
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &ContinuousWriter{GadgetPath: gadget, Descriptor: d, Threshold: 5, Logger: discardLogger()}

	done := make(chan struct{})
	go func() {
		w.Run(ctx, in)
		close(done)
	}()

	// Give the writer a moment to drain the backlog, then cancel it.
	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	raw, err := os.ReadFile(gadget)
	require.NoError(t, err)
	require.Len(t, raw, d.ReportLen)
	assert.Equal(t, uint8(20), raw[6]) // offTrigL holds Triggers.Left
}

func TestRunReader_DecodesAndPublishes(t *testing.T) {
	d := ps5Descriptor(t)
	stop := make(chan struct{})
	fd := &fakeDevice{
		reports: [][]byte{neutralPS5Report(1), neutralPS5Report(2), neutralPS5Report(3)},
		done:    stop,
	}

	ch := make(chan gamepad.UniversalGamepad, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errc := make(chan error, 1)
	go func() {
		errc <- RunReader(ctx, fd, d, ChannelPublisher{Ch: ch, Done: ctx.Done()}, discardLogger())
	}()

	for i := 0; i < 3; i++ {
		select {
		case u := <-ch:
			assert.Equal(t, uint8(128), u.Sticks.Left.X)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for decoded report")
		}
	}

	cancel()
	close(stop)
	<-errc
}

func TestLatestSlot_OverwritesWithoutBlocking(t *testing.T) {
	var slot LatestSlot

	_, ok := slot.Load()
	assert.False(t, ok)

	slot.Publish(gamepad.Neutral())
	u, ok := slot.Load()
	require.True(t, ok)
	assert.Equal(t, uint8(128), u.Sticks.Left.X)

	u2 := gamepad.Neutral()
	u2.Triggers.Right = 55
	slot.Publish(u2)

	u3, ok := slot.Load()
	require.True(t, ok)
	assert.Equal(t, uint8(55), u3.Triggers.Right)
}

func TestShouldWrite_FiresOncePerCycleWithinDeviation(t *testing.T) {
	period := 4 * time.Millisecond

	// Near the start of cycle 0: within a tight deviation budget, fires.
	write, cycle := shouldWrite(100*time.Microsecond, period, -1, 0.05)
	assert.True(t, write)
	assert.Equal(t, int64(0), cycle)

	// Same cycle again: must not re-fire even though phase still small.
	write, _ = shouldWrite(200*time.Microsecond, period, 0, 0.05)
	assert.False(t, write)

	// Late in the cycle, past the deviation budget: does not fire.
	write, _ = shouldWrite(3900*time.Microsecond, period, -1, 0.05)
	assert.False(t, write)

	// maxDeviation of 1 disables timing: fires every new cycle regardless
	// of phase.
	write, cycle = shouldWrite(3900*time.Microsecond, period, -1, 1)
	assert.True(t, write)
	assert.Equal(t, int64(0), cycle)
}

func TestIntervalWriter_WritesDuringTwoHundredMilliseconds(t *testing.T) {
	d := ps5Descriptor(t)
	gadget := filepath.Join(t.TempDir(), "hidg0")
	require.NoError(t, os.WriteFile(gadget, nil, 0o644))

	var slot LatestSlot
	slot.Publish(gamepad.Neutral())

	w := &IntervalWriter{
		GadgetPath:   gadget,
		Descriptor:   d,
		Period:       4 * time.Millisecond,
		MaxDeviation: 0.05,
		Logger:       discardLogger(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	writeCount := 0
	orig := writeReport
	writeReport = func(path string, desc gamepad.Descriptor, u gamepad.UniversalGamepad, logger *slog.Logger) error {
		writeCount++
		return orig(path, desc, u, logger)
	}
	defer func() { writeReport = orig }()

	w.Run(ctx, &slot)

	// Over ~200ms at a 4ms period we expect roughly 50 cycles; allow a
	// generous band since this runs on a shared test machine's scheduler.
	assert.Greater(t, writeCount, 0)
}

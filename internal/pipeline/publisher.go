// Package pipeline implements the bridge's dataflow: a reader loop on the
// HID input device, a coalescing or interval-timed writer, and the gadget
// file I/O between them.
package pipeline

import (
	"sync"

	"github.com/padbridge/gamepad-bridge/gamepad"
)

// Publisher is how the reader hands a freshly decoded value to whichever
// writer strategy is active. The continuous strategy publishes into a
// channel; the interval strategy overwrites a single shared slot.
type Publisher interface {
	Publish(u gamepad.UniversalGamepad)
}

// ChannelPublisher publishes into a bounded channel without blocking: if
// the channel is full it discards the oldest pending value to make room.
// Once Done is closed it publishes nothing.
type ChannelPublisher struct {
	Ch   chan gamepad.UniversalGamepad
	Done <-chan struct{}
}

func (p ChannelPublisher) Publish(u gamepad.UniversalGamepad) {
	for {
		select {
		case <-p.Done:
			return
		case p.Ch <- u:
			return
		default:
		}
		select {
		case <-p.Ch:
		default:
		}
	}
}

// LatestSlot is the mutex-protected single-value register the interval
// writer samples. The reader overwrites it on every decoded report; it
// never blocks and never queues.
type LatestSlot struct {
	mu    sync.Mutex
	value gamepad.UniversalGamepad
	has   bool
}

func (s *LatestSlot) Publish(u gamepad.UniversalGamepad) {
	s.mu.Lock()
	s.value = u
	s.has = true
	s.mu.Unlock()
}

// Load returns the most recently published value, and false if nothing has
// been published yet.
func (s *LatestSlot) Load() (gamepad.UniversalGamepad, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.has
}

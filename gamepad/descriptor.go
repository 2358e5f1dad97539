package gamepad

import (
	"fmt"
	"strings"
	"sync"
)

// Decoder maps a raw vendor-specific HID input report to a UniversalGamepad.
// Implementations must never read past len(raw) and must return
// ErrBufferTooShort if raw is shorter than the owning Descriptor's
// MinInputLen.
type Decoder func(raw []byte) (UniversalGamepad, error)

// Encoder maps a UniversalGamepad to a raw HID output report of exactly the
// owning Descriptor's ReportLen bytes. Fields the target model doesn't
// represent are written as their neutral bit pattern.
type Encoder func(u UniversalGamepad) ([]byte, error)

// Descriptor is the immutable, program-lifetime record binding one
// supported gamepad model to its identity, its wire-format constants, and
// its codec functions. It owns no runtime state: any mutable per-device
// companion state (a report counter, for instance) lives in the device
// package that builds the Encoder closure, not here.
type Descriptor struct {
	// DisplayName is shown in CLI help and diagnostics.
	DisplayName string
	// Aliases are matched against the CLI's target argument by substring
	// containment (see Selector).
	Aliases []string
	// VendorID and ProductID identify this model when it appears as a
	// physical input device (used by the HID locator).
	VendorID, ProductID uint16
	// MinInputLen is the shortest raw input report Decode will accept.
	MinInputLen int
	// ReportLen is the exact length Encode must produce.
	ReportLen int
	Decode    Decoder
	Encode    Encoder
	// Supported is false when Decode exists but Encode does not: such a
	// descriptor may still be matched as an input source, but the
	// Selector must refuse it as an output target.
	Supported bool
}

// HasEncoder reports whether the descriptor can be used as an output
// target, independent of the Supported flag (kept distinct so a descriptor
// can flag itself unsupported for reasons other than a missing encoder).
func (d Descriptor) HasEncoder() bool {
	return d.Encode != nil
}

// EncodeChecked calls Encode and asserts the result is exactly ReportLen
// bytes. A mismatch is a programming error in the descriptor table — it
// panics rather than returning a recoverable error, per the encoder
// contract.
func (d Descriptor) EncodeChecked(u UniversalGamepad) ([]byte, error) {
	if d.Encode == nil {
		return nil, ErrEncoderUnsupported
	}
	b, err := d.Encode(u)
	if err != nil {
		return nil, err
	}
	if len(b) != d.ReportLen {
		panic(fmt.Sprintf("gamepad: %s encoder produced %d bytes, want %d: %v", d.DisplayName, len(b), d.ReportLen, ErrReportLengthMismatch))
	}
	return b, nil
}

var (
	tableMu sync.Mutex
	table   []Descriptor
)

// Register adds a descriptor to the static table. It is called from each
// device package's init(), before main runs; the table is never mutated
// again afterward.
func Register(d Descriptor) {
	tableMu.Lock()
	defer tableMu.Unlock()
	table = append(table, d)
}

// Table returns the full set of registered descriptors, in registration
// order. The returned slice is a copy; callers cannot mutate the live
// table through it.
func Table() []Descriptor {
	tableMu.Lock()
	defer tableMu.Unlock()
	out := make([]Descriptor, len(table))
	copy(out, table)
	return out
}

// LookupByVendorProduct returns the descriptor matching a (vendor, product)
// pair, used by the HID locator to identify an already-open input device.
// ok is false when no registered descriptor matches.
func LookupByVendorProduct(vendorID, productID uint16) (Descriptor, bool) {
	for _, d := range Table() {
		if d.VendorID == vendorID && d.ProductID == productID {
			return d, true
		}
	}
	return Descriptor{}, false
}

// LookupByAlias matches arg against each descriptor's alias list by
// substring containment (case-insensitive), used by the Selector to turn a
// CLI argument into a target descriptor. ok is false when no alias matches.
func LookupByAlias(arg string) (Descriptor, bool) {
	needle := strings.ToLower(arg)
	for _, d := range Table() {
		for _, alias := range d.Aliases {
			if strings.Contains(strings.ToLower(alias), needle) || strings.Contains(needle, strings.ToLower(alias)) {
				return d, true
			}
		}
	}
	return Descriptor{}, false
}

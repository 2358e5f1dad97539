package gamepad

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoTargetArgument is returned when the CLI was not given a target
// argument at all.
var ErrNoTargetArgument = errors.New("gamepad: no target gamepad specified")

// ErrUnknownTarget is returned when the given argument matched no
// descriptor's alias list.
var ErrUnknownTarget = errors.New("gamepad: unrecognized target gamepad")

// ErrTargetUnsupported is returned when the matched descriptor exists but
// cannot be used as an output target (its encoder is not implemented).
var ErrTargetUnsupported = errors.New("gamepad: target gamepad has no output encoder")

// SelectTarget resolves a CLI positional argument to an output descriptor.
// It fails closed: an empty argument, an unmatched alias, or a descriptor
// flagged unsupported are all errors, never a silent fallback.
func SelectTarget(arg string) (Descriptor, error) {
	if strings.TrimSpace(arg) == "" {
		return Descriptor{}, ErrNoTargetArgument
	}
	d, ok := LookupByAlias(arg)
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownTarget, arg)
	}
	if !d.Supported || !d.HasEncoder() {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrTargetUnsupported, d.DisplayName)
	}
	return d, nil
}

// SupportedTargetsHelp renders the list of descriptors that may be selected
// as an output target, for use in the CLI's usage diagnostic.
func SupportedTargetsHelp() string {
	var b strings.Builder
	b.WriteString("supported target gamepads:\n")
	for _, d := range Table() {
		if !d.Supported || !d.HasEncoder() {
			continue
		}
		fmt.Fprintf(&b, "  %-12s aliases: %s\n", d.DisplayName, strings.Join(d.Aliases, ", "))
	}
	return b.String()
}

package gamepad

import "errors"

// ErrBufferTooShort is returned by a Decoder when the raw report is shorter
// than the descriptor's MinInputLen. Decoders must return it instead of
// reading past the end of the buffer.
var ErrBufferTooShort = errors.New("gamepad: input buffer shorter than descriptor minimum")

// ErrEncoderUnsupported is returned by Descriptor.EncodeChecked for a
// descriptor whose Encode field is nil: its decoder exists, but it has no
// output encoder.
var ErrEncoderUnsupported = errors.New("gamepad: encoder not implemented for this descriptor")

// ErrReportLengthMismatch indicates an Encoder produced a buffer whose
// length does not equal the descriptor's ReportLen. This is a programming
// error in the descriptor table, not a recoverable runtime condition.
var ErrReportLengthMismatch = errors.New("gamepad: encoded report length mismatch")

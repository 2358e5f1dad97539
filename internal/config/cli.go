// Package config defines the bridge's command-line and file-based
// configuration surface, layered with kong: flags and environment variables
// override whatever a discovered JSON/YAML/TOML config file sets.
package config

// CLI is the root command structure parsed by kong. Target is the single
// positional argument selecting the output gamepad model by alias.
type CLI struct {
	Target string `arg:"" name:"target" help:"Target gamepad to emulate on the USB gadget (e.g. ps5, ps4)."`

	Gadget string `help:"Path to the USB HID gadget device the bridge writes encoded reports to." default:"/dev/hidg0"`

	Writer WriterConfig `embed:"" prefix:"writer-"`

	Log LogConfig `embed:"" prefix:"log-"`

	Config string `help:"Path to a JSON/YAML/TOML config file." env:"GAMEPAD_BRIDGE_CONFIG"`
}

// WriterConfig controls the Pipeline Runtime's writer strategy and timing.
type WriterConfig struct {
	Strategy string `help:"Writer strategy: 'continuous' or 'interval'." enum:"continuous,interval" default:"continuous"`

	// ChannelCapacity is the continuous writer's bounded channel size.
	ChannelCapacity int `help:"Bounded channel capacity between the reader and the continuous writer." default:"8"`

	// CoalesceThreshold is the backlog size (T in the spec) past which the
	// continuous writer drains the channel and keeps only the newest value.
	CoalesceThreshold int `help:"Channel backlog size past which the writer coalesces to the newest report." default:"5"`

	// IntervalPeriodMS is P, the interval writer's fixed sampling period.
	IntervalPeriodMS int `help:"Interval writer sampling period, in milliseconds." default:"4"`

	// MaxDeviation bounds how late into a cycle a write may still fire.
	MaxDeviation float64 `help:"Interval writer max phase deviation in [0,1]; 0 forbids late writes, 1 disables timing." default:"0.05"`
}

// LogConfig controls structured logging destination and verbosity.
type LogConfig struct {
	Level string `help:"Log level: trace, debug, info, warn, or error." enum:"trace,debug,info,warn,error" default:"info"`
	File  string `help:"Write logs to this file instead of stdout/stderr."`
}

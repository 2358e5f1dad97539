package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/padbridge/gamepad-bridge/internal/config"
	"github.com/padbridge/gamepad-bridge/internal/configpaths"
	"github.com/padbridge/gamepad-bridge/internal/hidlocator"
	"github.com/padbridge/gamepad-bridge/internal/log"
	"github.com/padbridge/gamepad-bridge/internal/pipeline"

	_ "github.com/padbridge/gamepad-bridge/internal/registry" // Register all device descriptors

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/padbridge/gamepad-bridge/gamepad"
)

// Exit codes per the bridge's external interface contract.
const (
	exitOK            = 0
	exitConfiguration = 1
	exitHIDSubsystem  = 2
)

func main() {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	parser, err := kong.New(&cli,
		kong.Name("gamepad-bridge"),
		kong.Description("Bridges a physical Bluetooth gamepad's HID reports into a different vendor's HID reports on a USB gadget."),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gamepad-bridge: building CLI parser:", err)
		os.Exit(exitConfiguration)
	}
	if _, err := parser.Parse(os.Args[1:]); err != nil {
		parser.FatalIfErrorf(err)
		os.Exit(exitConfiguration)
	}

	logger, closer, err := log.Setup(cli.Log.Level, cli.Log.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gamepad-bridge: setting up logger:", err)
		os.Exit(exitConfiguration)
	}
	if closer != nil {
		defer closer.Close()
	}

	target, err := gamepad.SelectTarget(cli.Target)
	if err != nil {
		logger.Error("configuration error", "error", err)
		fmt.Fprintln(os.Stderr, gamepad.SupportedTargetsHelp())
		os.Exit(exitConfiguration)
	}
	logger.Info("target gamepad selected", "name", target.DisplayName)

	locator := hidlocator.New(logger)
	dev, source, err := locator.OpenSupported()
	if err != nil {
		if errors.Is(err, hidlocator.ErrNoBluetoothDevice) || errors.Is(err, hidlocator.ErrNoSupportedDevice) {
			logger.Error("discovery failed", "error", err)
			os.Exit(exitConfiguration)
		}
		logger.Error("HID subsystem unavailable", "error", err)
		os.Exit(exitHIDSubsystem)
	}
	defer dev.Close()
	logger.Info("input gamepad discovered", "name", source.DisplayName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runPipeline(ctx, cli, dev, target, logger)

	logger.Info("shutting down")
	os.Exit(exitOK)
}

// runPipeline wires the reader goroutine to the configured writer strategy
// and blocks until ctx is cancelled.
func runPipeline(ctx context.Context, cli config.CLI, dev pipeline.InputDevice, target gamepad.Descriptor, logger *slog.Logger) {
	var wg sync.WaitGroup

	switch cli.Writer.Strategy {
	case "interval":
		var slot pipeline.LatestSlot
		pub := &slotPublisher{slot: &slot}

		w := &pipeline.IntervalWriter{
			GadgetPath:   cli.Gadget,
			Descriptor:   target,
			Period:       time.Duration(cli.Writer.IntervalPeriodMS) * time.Millisecond,
			MaxDeviation: cli.Writer.MaxDeviation,
			Logger:       logger,
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Run(ctx, &slot)
		}()

		if err := pipeline.RunReader(ctx, dev, target, pub, logger); err != nil {
			logger.Error("reader exited with error", "error", err)
		}

	default: // "continuous"
		ch := make(chan gamepad.UniversalGamepad, cli.Writer.ChannelCapacity)
		pub := pipeline.ChannelPublisher{Ch: ch, Done: ctx.Done()}

		w := &pipeline.ContinuousWriter{
			GadgetPath: cli.Gadget,
			Descriptor: target,
			Threshold:  cli.Writer.CoalesceThreshold,
			Logger:     logger,
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Run(ctx, ch)
		}()

		if err := pipeline.RunReader(ctx, dev, target, pub, logger); err != nil {
			logger.Error("reader exited with error", "error", err)
		}
	}

	wg.Wait()
}

// slotPublisher adapts a *pipeline.LatestSlot, whose Publish signature
// already matches pipeline.Publisher, but is declared here so the interval
// branch above reads symmetrically with the continuous one.
type slotPublisher struct {
	slot *pipeline.LatestSlot
}

func (p *slotPublisher) Publish(u gamepad.UniversalGamepad) {
	p.slot.Publish(u)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v := os.Getenv("GAMEPAD_BRIDGE_CONFIG"); v != "" {
		return v
	}
	return ""
}

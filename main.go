package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/atomicstack/popup-shell/internal/app"
	"github.com/atomicstack/popup-shell/internal/config"
	"github.com/atomicstack/popup-shell/internal/logging"
	"github.com/atomicstack/popup-shell/internal/logging/events"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	logging.Infof("starting run %s", logging.RunID())

	events.App.Start(startupTracePayload(cfg, standardProbes()))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload bundles runtime context for the first trace entry.
func startupTracePayload(cfg config.Config, probes []ttyProbe) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   flags,
		"config":  cfg,
		"logPath": logging.Path(),
		"watch":   len(cfg.App.Watch),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails(probes)
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

type ttyProbe struct {
	name string
	fd   int
}

func standardProbes() []ttyProbe {
	return []ttyProbe{
		{"stdin", int(os.Stdin.Fd())},
		{"stdout", int(os.Stdout.Fd())},
		{"stderr", int(os.Stderr.Fd())},
	}
}

// collectTTYDetails reports which descriptors are terminals and the first
// size found. The terminal shell sizes itself from the same descriptors.
func collectTTYDetails(probes []ttyProbe) ttyDetails {
	details := ttyDetails{Probes: make([]ttyProbeResult, 0, len(probes))}
	for _, probe := range probes {
		result := ttyProbeResult{Name: probe.name}
		if probe.fd < 0 || !term.IsTerminal(probe.fd) {
			details.Probes = append(details.Probes, result)
			continue
		}
		result.IsTerminal = true
		width, height, err := term.GetSize(probe.fd)
		if err != nil {
			result.Error = err.Error()
		} else {
			result.Width, result.Height = width, height
			if details.Detected == nil {
				details.Detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
			}
		}
		details.Probes = append(details.Probes, result)
	}
	return details
}

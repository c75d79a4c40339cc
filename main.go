package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/chatroom/internal/app"
	"github.com/atomicstack/chatroom/internal/config"
	"github.com/atomicstack/chatroom/internal/logging"
	"github.com/atomicstack/chatroom/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	err := app.Run(runtimeCfg.App)
	events.App.Exit(err)
	if err != nil {
		logging.Error(err)
		logging.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logging.Close()
}

func traceStartup(cfg config.Config) {
	if !logging.TraceEnabled() {
		return
	}
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload records how the process was launched and what the
// terminal looked like at that moment.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
		"tickRate": cfg.App.TickRate.String(),
		"tty":      collectTTYDetails(),
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	return payload
}

type ttyDetails struct {
	Detected *ttySize   `json:"detected,omitempty"`
	Probes   []ttyProbe `json:"probes"`
}

type ttySize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails probes the standard descriptors; the first terminal with
// a readable size becomes the detected size.
func collectTTYDetails() ttyDetails {
	descriptors := []struct {
		name string
		file *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	}
	details := ttyDetails{Probes: make([]ttyProbe, 0, len(descriptors))}
	for _, d := range descriptors {
		probe := ttyProbe{Name: d.name}
		fd := int(d.file.Fd())
		if term.IsTerminal(fd) {
			probe.IsTerminal = true
			width, height, err := term.GetSize(fd)
			if err != nil {
				probe.Error = err.Error()
			} else {
				probe.Width, probe.Height = width, height
				if details.Detected == nil {
					details.Detected = &ttySize{Source: d.name, Width: width, Height: height}
				}
			}
		}
		details.Probes = append(details.Probes, probe)
	}
	return details
}

package main

import (
	"testing"
	"time"

	"github.com/atomicstack/chatroom/internal/app"
	"github.com/atomicstack/chatroom/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			TickRate: 100 * time.Millisecond,
			Width:    80,
			Height:   24,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"tickRate": "100ms",
			"width":    "80",
			"height":   "24",
		},
		Args: []string{"-tick-rate", "100ms"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["tickRate"] != "100ms" {
		t.Fatalf("expected tick rate flag 100ms, got %v", flagsValue["tickRate"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if payload["tickRate"] != "100ms" {
		t.Fatalf("expected tick rate in payload, got %v", payload["tickRate"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

package config

import (
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/chatroom/internal/source"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.TickRate != source.DefaultTickRate {
		t.Fatalf("expected default tick rate, got %s", cfg.App.TickRate)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected unpinned size, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if cfg.Logging.Trace || cfg.Logging.FilePath != "" {
		t.Fatalf("expected logging defaults, got %#v", cfg.Logging)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadArgsEnvironmentFallbacks(t *testing.T) {
	env := []string{
		envTickRate + "=100ms",
		envWidth + "=90",
		envHeight + "=30",
		envTrace + "=true",
		envLogFile + "=/tmp/chatroom.log",
		"MALFORMED",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.TickRate != 100*time.Millisecond {
		t.Fatalf("expected 100ms, got %s", cfg.App.TickRate)
	}
	if cfg.App.Width != 90 || cfg.App.Height != 30 {
		t.Fatalf("expected 90x30, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/chatroom.log" {
		t.Fatalf("unexpected logging config %#v", cfg.Logging)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{envTickRate + "=100ms", envWidth + "=90"}
	cfg, err := LoadArgs([]string{"-tick-rate", "1s", "-width", "40"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.TickRate != time.Second || cfg.App.Width != 40 {
		t.Fatalf("expected flags to win, got %s / %d", cfg.App.TickRate, cfg.App.Width)
	}
	if cfg.Flags["tickRate"] != "1s" || cfg.Flags["width"] != "40" {
		t.Fatalf("unexpected flag snapshot %#v", cfg.Flags)
	}
	if len(cfg.Args) != 4 {
		t.Fatalf("expected args to be recorded, got %#v", cfg.Args)
	}
}

func TestLoadArgsInvalidEnvironmentFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{envTickRate + "=soon", envWidth + "=wide", envTrace + "=maybe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.TickRate != source.DefaultTickRate || cfg.App.Width != 0 || cfg.Logging.Trace {
		t.Fatalf("expected fallbacks, got %#v", cfg)
	}
}

func TestLoadArgsRejectsInvalidValues(t *testing.T) {
	cases := map[string][]string{
		"negative width":  {"-width", "-1"},
		"negative height": {"-height", "-5"},
		"zero tick":       {"-tick-rate", "0s"},
		"unknown flag":    {"-nope"},
	}
	for name, args := range cases {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestValidateRejectsNonPositiveTickRate(t *testing.T) {
	err := Validate(Config{})
	if err == nil || !strings.Contains(err.Error(), "tick rate") {
		t.Fatalf("expected tick rate error, got %v", err)
	}
}

package main

import (
	"testing"
	"time"

	"github.com/atomicstack/menuctl/internal/app"
	"github.com/atomicstack/menuctl/internal/config"
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
			ItemsPath:     "items.yaml",
			ShowTips:      true,
			TipDuration:   4 * time.Second,
			CaseSensitive: true,
			Verbose:       true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"items":         "items.yaml",
			"tips":          "true",
			"tipDuration":   "4s",
			"caseSensitive": "true",
			"verbose":       "true",
		},
		Args: []string{"--items", "items.yaml"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["items"] != "items.yaml" {
		t.Fatalf("expected items flag %q, got %v", "items.yaml", flagsValue["items"])
	}
	if flagsValue["tips"] != "true" {
		t.Fatalf("expected tips flag true, got %v", flagsValue["tips"])
	}
	if flagsValue["tipDuration"] != "4s" {
		t.Fatalf("expected tip duration 4s, got %v", flagsValue["tipDuration"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
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

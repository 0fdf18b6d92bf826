package app

import (
	"testing"
)

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app, err := New("1.0.0", "abc123", "2024-01-01")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.Config() == nil {
		t.Error("Config() returned nil")
	}
}

// TestApp_Muster_Singleton verifies that Muster() returns one instance.
func TestApp_Muster_Singleton(t *testing.T) {
	app, err := New("1.0.0", "test", "2024-01-01")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	app.config.UseEmbeddedData = true

	m1, err := app.Muster()
	if err != nil {
		t.Fatalf("Muster() failed: %v", err)
	}
	m2, err := app.Muster()
	if err != nil {
		t.Fatalf("Muster() failed on second call: %v", err)
	}
	if m1 != m2 {
		t.Error("Muster() returned different instances")
	}
}

// TestApp_PipelineOptions verifies config translates into options.
func TestApp_PipelineOptions(t *testing.T) {
	app, err := New("1.0.0", "test", "2024-01-01")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	app.config.UseEmbeddedData = true
	if len(app.pipelineOptions()) == 0 {
		t.Error("pipelineOptions() returned no options")
	}
}

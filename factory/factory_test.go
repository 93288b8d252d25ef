package factory

import (
	"testing"

	"github.com/allape/bongocat/bongo/host/headless"
	"github.com/allape/bongocat/bongo/input/dummy"
	"github.com/allape/bongocat/config"
)

func dummyConfig() config.Config {
	conf := config.Default()
	conf.Input.Type = config.InputDummy
	conf.Input.MonitorWidth = 800
	conf.Input.MonitorHeight = 600
	conf.Input.Seed = 7
	conf.Input.Ext = `key_every:"30" click_every:"45" period:"120"`
	conf.Surface.Type = config.SurfaceHeadless
	conf.Surface.Dir = ""
	conf.Surface.Frames = 3
	return conf
}

func TestInputFromConfig(t *testing.T) {
	device, err := InputFromConfig(dummyConfig())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	d, ok := device.(*dummy.Device)
	if !ok {
		t.Fatalf("Expected *dummy.Device, got %T", device)
	}
	if d.KeyEvery != 30 || d.ClickEvery != 45 || d.Period != 120 || d.FailEvery != 0 {
		t.Fatalf("Expected schedules from ext, got %+v", d)
	}

	screen, err := d.Screen()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if screen.Width != 800 || screen.Height != 600 {
		t.Fatalf("Expected 800x600 monitor, got %dx%d", screen.Width, screen.Height)
	}
}

func TestInputFromConfigRejects(t *testing.T) {
	conf := dummyConfig()
	conf.Input.Ext = `key_every:"often"`
	if _, err := InputFromConfig(conf); err == nil {
		t.Fatalf("Expected error for non-numeric ext value")
	}

	conf = dummyConfig()
	conf.Input.Type = "joystick"
	if _, err := InputFromConfig(conf); err == nil {
		t.Fatalf("Expected error for unknown input driver")
	}
}

func TestHostFromConfig(t *testing.T) {
	host, err := HostFromConfig(dummyConfig())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	h, ok := host.(*headless.Host)
	if !ok {
		t.Fatalf("Expected *headless.Host, got %T", host)
	}
	if h.Frames != 3 || h.Ticks != 0 {
		t.Fatalf("Expected a 3 frame limit without tick limit, got %d frames, %d ticks", h.Frames, h.Ticks)
	}

	conf := dummyConfig()
	conf.Surface.Type = "framebuffer"
	if _, err := HostFromConfig(conf); err == nil {
		t.Fatalf("Expected error for unknown surface driver")
	}
}

func TestOverlayFromConfigRuns(t *testing.T) {
	conf := dummyConfig()

	device, err := InputFromConfig(conf)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	host, err := HostFromConfig(conf)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	overlay, err := OverlayFromConfig(conf, device)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	h := host.(*headless.Host)
	h.Interval = 0
	if err := host.Run(overlay); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if overlay.Frames() != 3 {
		t.Fatalf("Expected 3 frames, got %d", overlay.Frames())
	}
}

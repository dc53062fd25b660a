package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_NoFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.General.Currencies) == 0 {
		t.Fatal("default currencies missing")
	}
	if !HasCurrency(cfg, "USD") {
		t.Error("USD should be a default currency")
	}
}

func TestSaveLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DataDir = "/tmp/budget"
	cfg.General.Currencies = []string{"USD", "EUR"}
	cfg.Rates.BaseURL = "http://localhost:8080"

	if err := Save(cfg); err != nil {
		t.Fatal(err)
	}

	got, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.General.DataDir != "/tmp/budget" {
		t.Errorf("DataDir = %q", got.General.DataDir)
	}
	if got.Rates.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q", got.Rates.BaseURL)
	}
	if len(got.General.Currencies) != 2 {
		t.Errorf("Currencies = %v", got.General.Currencies)
	}
}

func TestDataDir_Override(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.DataDir = "/custom"
	if got := DataDir(cfg); got != "/custom" {
		t.Errorf("DataDir = %q, want /custom", got)
	}

	t.Setenv("XDG_DATA_HOME", "/xdg-data")
	cfg.General.DataDir = ""
	want := filepath.Join("/xdg-data", "cashflow")
	if got := DataDir(cfg); got != want {
		t.Errorf("DataDir = %q, want %q", got, want)
	}
}

func TestHasCurrency(t *testing.T) {
	cfg := Config{General: GeneralConfig{Currencies: []string{"USD", "EUR"}}}
	if !HasCurrency(cfg, "EUR") {
		t.Error("EUR should be present")
	}
	if HasCurrency(cfg, "JPY") {
		t.Error("JPY should be absent")
	}
}

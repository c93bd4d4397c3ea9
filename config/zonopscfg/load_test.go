package zonopscfg

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zonops.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
version: v1
azure:
  subscription_id: 6f3bdd18-8a0e-466f-9b41-ba9f49b1b09c
  auth_method: azure_cli
defaults:
  resource_group: dns-rg
  ttl: 600
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Azure.SubscriptionID != "6f3bdd18-8a0e-466f-9b41-ba9f49b1b09c" {
		t.Errorf("subscription_id = %q", cfg.Azure.SubscriptionID)
	}
	if cfg.Azure.AuthMethod != "azure_cli" {
		t.Errorf("auth_method = %q", cfg.Azure.AuthMethod)
	}
	if cfg.Defaults.ResourceGroup != "dns-rg" || cfg.Defaults.TTL != 600 {
		t.Errorf("defaults = %+v", cfg.Defaults)
	}
}

func TestLoadSubscriptionFromEnv(t *testing.T) {
	path := writeConfig(t, "version: v1\nazure:\n  auth_method: azure_cli\n")
	t.Setenv("AZURE_SUBSCRIPTION_ID", "c0ffee00-0000-4000-8000-000000000001")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Azure.SubscriptionID != "c0ffee00-0000-4000-8000-000000000001" {
		t.Errorf("subscription_id = %q, want env fallback", cfg.Azure.SubscriptionID)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "azure: [not a map\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

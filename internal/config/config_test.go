package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigs(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestMustLoad(t *testing.T) {
	dir := writeConfigs(t,
		"address: ':8080'\naccess_token_ttl: 15m\nrefresh_token_ttl: 720h\nlog_level: debug\n",
		"pg:\n  host: localhost\n  port: 5432\n  user: u\n  password: p\n  dbname: forum\naccess_token_key: 'ak'\nrefresh_token_key: 'rk'\n",
	)

	cfg := MustLoad(dir)

	if cfg.Public.Address != ":8080" {
		t.Errorf("unexpected address: %q", cfg.Public.Address)
	}
	if cfg.Public.AccessTokenTTL != 15*time.Minute {
		t.Errorf("unexpected access token ttl: %v", cfg.Public.AccessTokenTTL)
	}
	if cfg.AccessTokenKey() != "ak" || cfg.RefreshTokenKey() != "rk" {
		t.Errorf("unexpected token keys")
	}
	if cfg.Private.Pg.Dbname != "forum" {
		t.Errorf("unexpected dbname: %q", cfg.Private.Pg.Dbname)
	}
}

func TestMustLoad_RequiredFields(t *testing.T) {
	// access_token_key intentionally missing
	dir := writeConfigs(t,
		"address: ':8080'\naccess_token_ttl: 15m\nrefresh_token_ttl: 720h\n",
		"refresh_token_key: 'rk'\n",
	)

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic due to missing required field, got none")
		}
	}()

	_ = MustLoad(dir)
}

func TestMustLoad_SameSigningKeys(t *testing.T) {
	dir := writeConfigs(t,
		"address: ':8080'\naccess_token_ttl: 15m\nrefresh_token_ttl: 720h\n",
		"access_token_key: 'k'\nrefresh_token_key: 'k'\n",
	)

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic when access and refresh keys match, got none")
		}
	}()

	_ = MustLoad(dir)
}

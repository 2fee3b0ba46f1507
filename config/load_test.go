package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEnvKeyPath_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"payment": map[string]any{
			"secretHash":  "",
			"redirectUrl": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "PAYMENT_SECRETHASH", want: "payment.secretHash"},
		{envKey: "PAYMENT_REDIRECT_URL", want: "payment.redirect.url"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := envKeyPath(tt.envKey, existing); got != tt.want {
				t.Fatalf("envKeyPath(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.Admin.ForcedSignOutDelay != 2*time.Second {
		t.Fatalf("ForcedSignOutDelay = %s, want 2s", cfg.Admin.ForcedSignOutDelay)
	}
	if cfg.Catalog.FeaturedLimit != 6 || cfg.Catalog.HomeCategoryLimit != 8 {
		t.Fatalf("catalog limits = %d/%d, want 6/8", cfg.Catalog.FeaturedLimit, cfg.Catalog.HomeCategoryLimit)
	}
	if cfg.Payment.Currency != defaultCurrency {
		t.Fatalf("Currency = %q, want %q", cfg.Payment.Currency, defaultCurrency)
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Admin:   &AdminConfig{ForcedSignOutDelay: 5 * time.Second},
		Catalog: &CatalogConfig{FeaturedLimit: 12},
		Payment: &PaymentConfig{Currency: "USD"},
	}

	applyDefaults(cfg)

	if cfg.Admin.ForcedSignOutDelay != 5*time.Second {
		t.Fatalf("ForcedSignOutDelay = %s, want 5s", cfg.Admin.ForcedSignOutDelay)
	}
	if cfg.Catalog.FeaturedLimit != 12 {
		t.Fatalf("FeaturedLimit = %d, want 12", cfg.Catalog.FeaturedLimit)
	}
	if cfg.Catalog.HomeCategoryLimit != defaultHomeCategoryLimit {
		t.Fatalf("HomeCategoryLimit = %d, want %d", cfg.Catalog.HomeCategoryLimit, defaultHomeCategoryLimit)
	}
	if cfg.Payment.Currency != "USD" {
		t.Fatalf("Currency = %q, want USD", cfg.Payment.Currency)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	content := []byte("payment:\n  currency: NGN\n  secretHash: from-file\nadmin:\n  forcedSignOutDelay: 3s\n")
	if err := os.WriteFile(filepath.Join(dir, "crave-test.yaml"), content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Chdir(dir)
	t.Setenv("PAYMENT_SECRETHASH", "from-env")

	cfg, err := Load[Config]("crave-test")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Payment.SecretHash != "from-env" {
		t.Fatalf("SecretHash = %q, want from-env", cfg.Payment.SecretHash)
	}
	if cfg.Payment.Currency != "NGN" {
		t.Fatalf("Currency = %q, want NGN", cfg.Payment.Currency)
	}
	if cfg.Admin.ForcedSignOutDelay != 3*time.Second {
		t.Fatalf("ForcedSignOutDelay = %s, want 3s", cfg.Admin.ForcedSignOutDelay)
	}
}

func TestLoad_FallsBackToSearchDirs(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "config"), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := []byte("payment:\n  currency: GHS\n")
	if err := os.WriteFile(filepath.Join(dir, "config", "crave-test.yaml"), content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Chdir(dir)

	cfg, err := Load[Config]("crave-test", "config")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Payment.Currency != "GHS" {
		t.Fatalf("Currency = %q, want GHS", cfg.Payment.Currency)
	}

	if _, err := Load[Config]("missing"); err == nil {
		t.Fatal("Load() of a missing file succeeded")
	}
}

func TestReplicasFromEnv_StopsAtFirstGap(t *testing.T) {
	env := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-a",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_1_HOST":     "replica-b",
		"POSTGRES_REPLICAS_2_HOST":     "replica-c",
		"POSTGRES_REPLICAS_2_PORT":     "5432",
	}

	replicas := replicasFromEnv(func(key string) string { return env[key] })

	if len(replicas) != 1 {
		t.Fatalf("len(replicas) = %d, want 1", len(replicas))
	}
	if replicas[0].Host != "replica-a" || replicas[0].UserName != "reader" {
		t.Fatalf("replica = %+v", replicas[0])
	}
}

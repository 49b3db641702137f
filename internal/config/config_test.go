package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	// Viper treats empty env vars as unset, so this clears any ambient values.
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("STRIPE_SECRET_KEY", "")
	t.Setenv("FRONTEND_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "5000" {
		t.Errorf("Port = %q, want 5000", cfg.Port)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("DatabaseURL = %q, want empty", cfg.DatabaseURL)
	}
	if cfg.StripeSecretKey != "" {
		t.Errorf("StripeSecretKey = %q, want empty", cfg.StripeSecretKey)
	}
	if cfg.FrontendURL != "https://lumina-vietii.ro" {
		t.Errorf("FrontendURL = %q", cfg.FrontendURL)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://localhost/lumina")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("FRONTEND_URL", "https://staging.lumina-vietii.ro/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://localhost/lumina" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.StripeSecretKey != "sk_test_123" {
		t.Errorf("StripeSecretKey = %q", cfg.StripeSecretKey)
	}
	if cfg.FrontendURL != "https://staging.lumina-vietii.ro" {
		t.Errorf("FrontendURL should be trimmed of the trailing slash, got %q", cfg.FrontendURL)
	}
}

func TestAddr(t *testing.T) {
	tests := []struct {
		port string
		want string
	}{
		{"5000", ":5000"},
		{":5000", ":5000"},
		{"8080", ":8080"},
	}

	for _, tt := range tests {
		c := &Config{Port: tt.port}
		if got := c.Addr(); got != tt.want {
			t.Errorf("Addr() with port %q = %q, want %q", tt.port, got, tt.want)
		}
	}
}

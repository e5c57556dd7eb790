package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.ScoreLambda != 1.35 {
		t.Fatalf("unexpected ScoreLambda: %v", cfg.ScoreLambda)
	}
	if cfg.SimulationRuns != 2000 {
		t.Fatalf("unexpected SimulationRuns: %d", cfg.SimulationRuns)
	}
	if cfg.SimulationWorkers != 4 {
		t.Fatalf("unexpected SimulationWorkers: %d", cfg.SimulationWorkers)
	}
	if cfg.DBURL != "" {
		t.Fatalf("expected empty DBURL by default, got %q", cfg.DBURL)
	}
	if cfg.GatekeeperTimeout != 3*time.Second {
		t.Fatalf("unexpected GatekeeperTimeout: %s", cfg.GatekeeperTimeout)
	}
}

func TestLoad_ScoreLambdaValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SCORE_LAMBDA", "-1.5")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative SCORE_LAMBDA")
	}
}

func TestLoad_SimulationValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SIMULATION_RUNS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for SIMULATION_RUNS=0")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_PyroscopeRequiresServerWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

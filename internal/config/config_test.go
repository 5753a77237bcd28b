package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("WAKEPREP_DB", "")
	t.Setenv("WAKEPREP_LEARNER", "")
	t.Setenv("WAKEPREP_SEED", "")
	t.Setenv("WAKEPREP_TOP_N", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LearnerID != "default" {
		t.Errorf("LearnerID = %q, want default", cfg.LearnerID)
	}
	if cfg.Seed != 0 || cfg.TopN != 0 {
		t.Errorf("Seed/TopN = %d/%d, want zero values", cfg.Seed, cfg.TopN)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("WAKEPREP_DB", "/tmp/x.db")
	t.Setenv("WAKEPREP_LEARNER", "ankur")
	t.Setenv("WAKEPREP_SEED", "42")
	t.Setenv("WAKEPREP_TOP_N", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/x.db" || cfg.LearnerID != "ankur" {
		t.Errorf("DBPath/LearnerID = %q/%q", cfg.DBPath, cfg.LearnerID)
	}
	if cfg.Seed != 42 || cfg.TopN != 3 {
		t.Errorf("Seed/TopN = %d/%d, want 42/3", cfg.Seed, cfg.TopN)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("WAKEPREP_SEED", "not-a-number")
	if _, err := Load(); err == nil {
		t.Error("expected error for unparseable seed")
	}

	t.Setenv("WAKEPREP_SEED", "")
	t.Setenv("WAKEPREP_TOP_N", "0")
	if _, err := Load(); err == nil {
		t.Error("expected error for top-n below 1")
	}
}

package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Setenv("APP_NAME", "talent-rank")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Ranking.SkillWeight != 0.45 || cfg.Ranking.ExperienceWeight != 0.35 || cfg.Ranking.SeniorityWeight != 0.20 {
		t.Fatalf("weights = %+v", cfg.Ranking)
	}
	if cfg.Ranking.GraphDepth != 1 {
		t.Fatalf("graph depth = %d", cfg.Ranking.GraphDepth)
	}
	if !cfg.Ranking.BiasMitigation {
		t.Fatalf("bias mitigation should default on")
	}
	if cfg.JWT.AccessExpiresIn != 15*time.Minute {
		t.Fatalf("access expiry = %s", cfg.JWT.AccessExpiresIn)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing APP_NAME")
	}
}

func TestLoad_WeightOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("RANK_SKILL_WEIGHT", "0.5")
	t.Setenv("RANK_EXPERIENCE_WEIGHT", "0.3")
	t.Setenv("RANK_SENIORITY_WEIGHT", "0.2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Ranking.SkillWeight != 0.5 {
		t.Fatalf("skill weight = %.2f", cfg.Ranking.SkillWeight)
	}
}

func TestLoad_WeightsMustSumToOne(t *testing.T) {
	setRequired(t)
	t.Setenv("RANK_SKILL_WEIGHT", "0.9")
	t.Setenv("RANK_EXPERIENCE_WEIGHT", "0.9")
	t.Setenv("RANK_SENIORITY_WEIGHT", "0.9")

	if _, err := Load(); err == nil {
		t.Fatalf("expected weight validation error")
	}
}

func TestLoad_DurationFormats(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_ACCESS_EXPIRES_IN", "30m")
	t.Setenv("DB_CONNECT_TIMEOUT", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.JWT.AccessExpiresIn != 30*time.Minute {
		t.Fatalf("access expiry = %s", cfg.JWT.AccessExpiresIn)
	}
	if cfg.Database.ConnectTimeout != 10*time.Second {
		t.Fatalf("connect timeout = %s", cfg.Database.ConnectTimeout)
	}
}

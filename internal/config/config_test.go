package config

import (
	"testing"
	"time"
)

func TestGetters(t *testing.T) {
	t.Setenv("TOUR_TEST_STR", "abc")
	t.Setenv("TOUR_TEST_INT", "12")
	t.Setenv("TOUR_TEST_BAD_INT", "twelve")
	t.Setenv("TOUR_TEST_DUR", "90s")
	t.Setenv("TOUR_TEST_BOOL", "true")

	if got := Get("TOUR_TEST_STR", "x"); got != "abc" {
		t.Errorf("Get = %q, want abc", got)
	}
	if got := Get("TOUR_TEST_UNSET", "x"); got != "x" {
		t.Errorf("Get fallback = %q, want x", got)
	}
	if got := GetInt("TOUR_TEST_INT", 1); got != 12 {
		t.Errorf("GetInt = %d, want 12", got)
	}
	if got := GetInt("TOUR_TEST_BAD_INT", 7); got != 7 {
		t.Errorf("GetInt bad value = %d, want fallback 7", got)
	}
	if !GetBool("TOUR_TEST_BOOL", false) {
		t.Error("GetBool = false, want true")
	}
	if got := GetDuration("TOUR_TEST_DUR", time.Second); got != 90*time.Second {
		t.Errorf("GetDuration = %v, want 90s", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "ORS_PROFILE", "MAX_EXACT_WAYPOINTS", "LABEL_PREFIX", "REDIS_ADDR"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.ORSProfile != "foot-walking" {
		t.Errorf("ORSProfile = %q, want foot-walking", cfg.ORSProfile)
	}
	if cfg.MaxExactWaypoints != 10 {
		t.Errorf("MaxExactWaypoints = %d, want 10", cfg.MaxExactWaypoints)
	}
	if cfg.LabelPrefix != "Point" {
		t.Errorf("LabelPrefix = %q, want Point", cfg.LabelPrefix)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr = %q, want empty", cfg.RedisAddr)
	}
}

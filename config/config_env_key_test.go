package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
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
		"telegram": map[string]any{
			"botToken": "",
		},
		"alerts": map[string]any{
			"checkInterval": "10m",
		},
		"proximity": map[string]any{
			"preFilterRadiusMultiplier": 1.3,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "TELEGRAM_BOTTOKEN", want: "telegram.botToken"},
		{envKey: "ALERTS_CHECKINTERVAL", want: "alerts.checkInterval"},
		{envKey: "PROXIMITY_PREFILTERRADIUSMULTIPLIER", want: "proximity.preFilterRadiusMultiplier"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 10*time.Minute, cfg.Alerts.CheckInterval)
	assert.InDelta(t, 10.0, cfg.Alerts.MaxThreshold, 1e-9)
	assert.InDelta(t, 10.0, cfg.Proximity.DefaultRadiusKm, 1e-9)
	assert.InDelta(t, 1.3, cfg.Proximity.PreFilterRadiusMultiplier, 1e-9)
	assert.Equal(t, "postgres", cfg.Stations.Backend)
	assert.Equal(t, "Atlantic/Canary", cfg.Stations.Timezone)
	assert.Equal(t, "file", cfg.Feed.Source)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.NotNil(t, cfg.Telegram)
	assert.NotNil(t, cfg.PubSub)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Alerts:    &AlertsConfig{CheckInterval: time.Minute, MaxThreshold: 5},
		Proximity: &ProximityConfig{DefaultRadiusKm: 3, MaxRadiusKm: 20, PreFilterRadiusMultiplier: 2},
		Stations:  &StationsConfig{Backend: "memory"},
	}
	applyDefaults(cfg)

	assert.Equal(t, time.Minute, cfg.Alerts.CheckInterval)
	assert.InDelta(t, 5.0, cfg.Alerts.MaxThreshold, 1e-9)
	assert.InDelta(t, 3.0, cfg.Proximity.DefaultRadiusKm, 1e-9)
	assert.InDelta(t, 20.0, cfg.Proximity.MaxRadiusKm, 1e-9)
	assert.InDelta(t, 2.0, cfg.Proximity.PreFilterRadiusMultiplier, 1e-9)
	assert.Equal(t, "memory", cfg.Stations.Backend)
}

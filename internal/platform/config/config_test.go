// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalamanch/directory/internal/platform/config"
)

/*
TestLoad_Defaults verifies that the service boots with no environment at all.
*/
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SNAPSHOT_SOURCE", "seed")
	t.Setenv("DATABASE_URL", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, config.SourceSeed, cfg.SnapshotSource)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.InDelta(t, 50.0, cfg.RateLimitRPS, 1e-9)
	assert.Equal(t, 100, cfg.RateLimitBurst)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.UsePostgres())
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), cfg.NewJoinerCutoff())
}

/*
TestLoad_CrossFieldValidation covers the checks run after parsing.
*/
func TestLoad_CrossFieldValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{"postgres_without_dsn", map[string]string{"SNAPSHOT_SOURCE": "postgres", "DATABASE_URL": ""}, true},
		{"postgres_with_dsn", map[string]string{"SNAPSHOT_SOURCE": "postgres", "DATABASE_URL": "postgres://localhost/kalamanch"}, false},
		{"unknown_source", map[string]string{"SNAPSHOT_SOURCE": "csv"}, true},
		{"bad_cutoff", map[string]string{"SNAPSHOT_SOURCE": "seed", "NEW_JOINER_SINCE": "01/01/2023"}, true},
		{"zero_rate_limit", map[string]string{"SNAPSHOT_SOURCE": "seed", "RATE_LIMIT_RPS": "0"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			_, err := config.Load()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

/*
TestAllowedOrigins splits and trims the origin list.
*/
func TestAllowedOrigins(t *testing.T) {
	cfg := &config.Config{ExtraOrigins: " https://a.example , ,https://b.example"}
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
}

//go:build !integration

package app

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		logPretty string
		wantLevel zerolog.Level
	}{
		{
			name:      "default level is info",
			wantLevel: zerolog.InfoLevel,
		},
		{
			name:      "debug level from env",
			logLevel:  "debug",
			wantLevel: zerolog.DebugLevel,
		},
		{
			name:      "warn level with pretty output",
			logLevel:  "warn",
			logPretty: "true",
			wantLevel: zerolog.WarnLevel,
		},
		{
			name:      "invalid level falls back to info",
			logLevel:  "shouting",
			wantLevel: zerolog.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.logLevel != "" {
				t.Setenv("LOG_LEVEL", tt.logLevel)
			} else {
				t.Setenv("LOG_LEVEL", "")
			}
			if tt.logPretty != "" {
				t.Setenv("LOG_PRETTY", tt.logPretty)
			}

			InitializeLogger()

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

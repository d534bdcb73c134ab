package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdslim/pkg/config"
)

func TestOutputFormatIsValid(t *testing.T) {
	tests := []struct {
		name   string
		format config.OutputFormat
		want   bool
	}{
		{"text", config.FormatText, true},
		{"summary", config.FormatSummary, true},
		{"json", config.FormatJSON, true},
		{"empty", config.OutputFormat(""), false},
		{"unknown", config.OutputFormat("yaml"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.IsValid())
		})
	}
}

func TestNewDefaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, config.DefaultSource, cfg.Source)
	assert.Equal(t, config.DefaultDest, cfg.Dest)
	assert.True(t, cfg.PreserveCode)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Zero(t, cfg.Jobs)
	assert.Empty(t, cfg.Extensions)
}

func TestEffectiveExtensions(t *testing.T) {
	cfg := config.New()
	assert.Equal(t, []string{".md", ".markdown"}, cfg.EffectiveExtensions())

	cfg.Extensions = []string{".mdx"}
	assert.Equal(t, []string{".mdx"}, cfg.EffectiveExtensions())
}

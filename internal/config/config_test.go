package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://backend:8000/")
	t.Setenv("PREVIEW_ROW_LIMIT", "not-a-number")

	cfg := Load()

	assert.Equal(t, "http://backend:8000", cfg.Backend.BaseURL)
	assert.Equal(t, "/invoke", cfg.Backend.SaveConfigPath)
	assert.Equal(t, "/chat", cfg.Backend.InvokePath)
	assert.Equal(t, 50, cfg.Preview.RowLimit)
	assert.Equal(t, "uploads", cfg.Storage.Bucket)
}

func TestErrorMarkersFromEnv(t *testing.T) {
	t.Run("comma separated list", func(t *testing.T) {
		t.Setenv("SUBMISSION_ERROR_MARKERS", " FAILED: , ,Traceback")
		cfg := Load()
		assert.Equal(t, []string{"FAILED:", "Traceback"}, cfg.Wizard.ErrorMarkers)
	})

	t.Run("blank falls back to defaults", func(t *testing.T) {
		t.Setenv("SUBMISSION_ERROR_MARKERS", " , ")
		cfg := Load()
		assert.Equal(t, DefaultErrorMarkers, cfg.Wizard.ErrorMarkers)
	})
}

package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestOutcomeChecker(t *testing.T) {
	checker := NewOutcomeChecker([]string{"ERROR:", " CRITICAL ERROR: ", ""})
	assert.Equal(t, []string{"ERROR:", "CRITICAL ERROR:"}, checker.Markers())

	tests := []struct {
		name      string
		sessionID *string
		analysis  string
		reported  *string
		wantID    string
		wantErr   error
	}{
		{"clean analysis navigates", strPtr("s-1"), "Revenue grew 12%.", nil, "s-1", nil},
		{"trimmed id", strPtr("  s-2 "), "fine", nil, "s-2", nil},
		{"marker blocks navigation", strPtr("s-1"), "Chunk 1 Error: ERROR: model timeout", nil, "", ErrAnalysisFailed},
		{"missing id", nil, "fine", nil, "", ErrMissingSessionID},
		{"empty id", strPtr(""), "fine", nil, "", ErrMissingSessionID},
		{"placeholder id", strPtr("NO_SESSION_ID"), "fine", nil, "", ErrMissingSessionID},
		{"structured error", strPtr("s-1"), "fine", strPtr("ERROR: no data"), "", ErrAnalysisFailed},
		{"blank structured error ignored", strPtr("s-1"), "fine", strPtr("  "), "s-1", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := checker.Check(tt.sessionID, tt.analysis, tt.reported)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestMarkersAreConfigurable(t *testing.T) {
	checker := NewOutcomeChecker([]string{"Traceback"})

	id, err := checker.Check(strPtr("s-1"), "ERROR: is not a marker here", nil)
	require.NoError(t, err)
	assert.Equal(t, "s-1", id)

	_, err = checker.Check(strPtr("s-1"), "Traceback (most recent call last)", nil)
	assert.ErrorIs(t, err, ErrAnalysisFailed)
}

package wizard

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingSessionID = errors.New("analysis did not return a session")
	ErrAnalysisFailed   = errors.New("analysis reported an error")
)

// placeholderSessionID is what the backend returns when a run produced no session.
const placeholderSessionID = "NO_SESSION_ID"

// OutcomeChecker decides whether a submission response is a success. The
// backend reports some failures only inside the analysis text, so the
// checker also looks for known failure phrases there.
type OutcomeChecker struct {
	markers []string
}

func NewOutcomeChecker(markers []string) *OutcomeChecker {
	clean := make([]string, 0, len(markers))
	for _, m := range markers {
		if m = strings.TrimSpace(m); m != "" {
			clean = append(clean, m)
		}
	}
	return &OutcomeChecker{markers: clean}
}

func (c *OutcomeChecker) Markers() []string {
	return append([]string(nil), c.markers...)
}

// Check returns the session id to navigate to, or why the submission failed.
func (c *OutcomeChecker) Check(sessionID *string, analysis string, reportedErr *string) (string, error) {
	if reportedErr != nil && strings.TrimSpace(*reportedErr) != "" {
		return "", fmt.Errorf("%w: %s", ErrAnalysisFailed, strings.TrimSpace(*reportedErr))
	}
	if marker, ok := c.match(analysis); ok {
		return "", fmt.Errorf("%w: analysis contains %q", ErrAnalysisFailed, marker)
	}
	if sessionID == nil {
		return "", ErrMissingSessionID
	}
	id := strings.TrimSpace(*sessionID)
	if id == "" || id == placeholderSessionID {
		return "", ErrMissingSessionID
	}
	return id, nil
}

func (c *OutcomeChecker) match(text string) (string, bool) {
	for _, m := range c.markers {
		if strings.Contains(text, m) {
			return m, true
		}
	}
	return "", false
}

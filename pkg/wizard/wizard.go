// Package wizard models the two-step data source setup: choose sources,
// then fill one field per source and submit the result for analysis.
package wizard

import (
	"errors"
	"net/url"
	"time"
)

type Phase string

const (
	PhaseSelecting   Phase = "selecting"
	PhaseConfiguring Phase = "configuring"
	PhaseSubmitting  Phase = "submitting"
)

// SelectingPath is where a client lands when the configuring step has no selection.
const SelectingPath = "/setup"

var (
	ErrSubmitting   = errors.New("submission already in progress")
	ErrNotSubmitted = errors.New("no submission in progress")
)

// Values holds the form entries keyed by field key.
type Values map[string]string

func (v Values) clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Wizard is the configuring step. It can only be built from a Selection,
// so a configuring wizard without chosen sources does not exist.
type Wizard struct {
	id        string
	selection Selection
	values    Values
	phase     Phase
	lastError string
	updatedAt time.Time
}

func NewConfiguring(id string, sel Selection) (*Wizard, error) {
	if sel.IsEmpty() {
		return nil, ErrEmptySelection
	}
	return &Wizard{
		id:        id,
		selection: sel,
		values:    Values{},
		phase:     PhaseConfiguring,
		updatedAt: time.Now(),
	}, nil
}

func (w *Wizard) ID() string           { return w.id }
func (w *Wizard) Selection() Selection { return w.selection }
func (w *Wizard) Phase() Phase         { return w.phase }
func (w *Wizard) LastError() string    { return w.lastError }
func (w *Wizard) UpdatedAt() time.Time { return w.updatedAt }

// Values returns a copy of the entered values.
func (w *Wizard) Values() Values {
	return w.values.clone()
}

// SetValue records one form entry. Entries are locked while a submission runs.
func (w *Wizard) SetValue(key, value string) error {
	if w.phase == PhaseSubmitting {
		return ErrSubmitting
	}
	w.values[key] = value
	w.updatedAt = time.Now()
	return nil
}

// BeginSubmit moves to submitting and returns the values to send.
func (w *Wizard) BeginSubmit() (Values, error) {
	if w.phase == PhaseSubmitting {
		return nil, ErrSubmitting
	}
	w.phase = PhaseSubmitting
	w.lastError = ""
	w.updatedAt = time.Now()
	return w.values.clone(), nil
}

// Fail returns to configuring with an inline message. Entered values stay.
func (w *Wizard) Fail(message string) error {
	if w.phase != PhaseSubmitting {
		return ErrNotSubmitted
	}
	w.phase = PhaseConfiguring
	w.lastError = message
	w.updatedAt = time.Now()
	return nil
}

// Succeed ends the submission and returns the dashboard path to navigate to.
func (w *Wizard) Succeed(sessionID string) (string, error) {
	if w.phase != PhaseSubmitting {
		return "", ErrNotSubmitted
	}
	w.phase = PhaseConfiguring
	w.updatedAt = time.Now()
	return DashboardPath(sessionID), nil
}

func DashboardPath(sessionID string) string {
	return "/dashboard/" + url.PathEscape(sessionID)
}

package wizard

import "time"

// Snapshot is the storable form of a Wizard.
type Snapshot struct {
	ID        string            `json:"id"`
	Selection []string          `json:"selection"`
	Values    map[string]string `json:"values"`
	Phase     Phase             `json:"phase"`
	Error     string            `json:"error,omitempty"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func (w *Wizard) Snapshot() Snapshot {
	return Snapshot{
		ID:        w.id,
		Selection: w.selection.Names(),
		Values:    w.values.clone(),
		Phase:     w.phase,
		Error:     w.lastError,
		UpdatedAt: w.updatedAt,
	}
}

// FromSnapshot rebuilds a Wizard. A snapshot with no selection yields
// ErrEmptySelection, which callers treat as "back to selecting".
func FromSnapshot(s Snapshot) (*Wizard, error) {
	sel, err := NewSelection(s.Selection...)
	if err != nil {
		return nil, err
	}
	w, err := NewConfiguring(s.ID, sel)
	if err != nil {
		return nil, err
	}
	if s.Values != nil {
		w.values = Values(s.Values).clone()
	}
	if s.Phase == PhaseSubmitting {
		w.phase = PhaseSubmitting
	}
	w.lastError = s.Error
	if !s.UpdatedAt.IsZero() {
		w.updatedAt = s.UpdatedAt
	}
	return w, nil
}

package contract

import (
	"context"

	"insights-console-be/pkg/wizard"
)

// WizardRepository persists in-progress setup wizards between requests.
// Find returns (nil, nil) when nothing is stored under id.
type WizardRepository interface {
	Save(ctx context.Context, w *wizard.Wizard) error
	Find(ctx context.Context, id string) (*wizard.Wizard, error)
	Delete(ctx context.Context, id string) error
}

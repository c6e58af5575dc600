package dto

import (
	"time"

	"insights-console-be/internal/catalog"
)

type StartWizardRequest struct {
	Selection []string `json:"selection" validate:"required,min=1,dive,required"`
}

// SetValuesRequest maps field keys to their text or email values.
type SetValuesRequest map[string]string

// WizardResponse is the wizard as the client renders it. When Phase is
// "selecting" only Redirect is meaningful.
type WizardResponse struct {
	Id        string                  `json:"id,omitempty"`
	Phase     string                  `json:"phase"`
	Redirect  string                  `json:"redirect,omitempty"`
	Selection []string                `json:"selection,omitempty"`
	Fields    []catalog.ProviderField `json:"fields,omitempty"`
	Values    map[string]string       `json:"values,omitempty"`
	Error     string                  `json:"error,omitempty"`
	UpdatedAt *time.Time              `json:"updated_at,omitempty"`
}

type SubmitWizardResponse struct {
	SessionId string `json:"session_id"`
	Redirect  string `json:"redirect"`
}

type CatalogResponse struct {
	Categories []catalog.Category `json:"categories"`
}

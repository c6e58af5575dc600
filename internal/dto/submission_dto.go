package dto

import "time"

type SubmissionResponse struct {
	Id        string            `json:"id"`
	WizardId  string            `json:"wizard_id"`
	Selection []string          `json:"selection"`
	Config    map[string]string `json:"config"`
	FilePaths []string          `json:"file_paths"`
	Status    string            `json:"status"`
	SessionId *string           `json:"session_id,omitempty"`
	Error     string            `json:"error,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt *time.Time        `json:"updated_at,omitempty"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubmissionStatus string

const (
	SubmissionPending   SubmissionStatus = "pending"
	SubmissionSucceeded SubmissionStatus = "succeeded"
	SubmissionFailed    SubmissionStatus = "failed"
)

// Submission is one attempt to start an analysis from the wizard.
type Submission struct {
	Id        uuid.UUID
	WizardId  string
	Selection []string
	Config    map[string]string
	FilePaths []string
	Status    SubmissionStatus
	SessionId *string
	Error     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
